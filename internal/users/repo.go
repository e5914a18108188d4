package users

import (
	"context"

	"gorm.io/gorm"

	"github.com/CardonaSantos/gustito-pos/pkg/db/models"
)

type repository struct {
	db *gorm.DB
}

// NewRepository builds a users repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindByCorreo(ctx context.Context, correo string) (*models.Usuario, error) {
	var usuario models.Usuario
	err := r.db.WithContext(ctx).
		Where("correo = ?", correo).
		First(&usuario).Error
	if err != nil {
		return nil, err
	}
	return &usuario, nil
}

func (r *repository) FindByID(ctx context.Context, id int64) (*models.Usuario, error) {
	var usuario models.Usuario
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&usuario).Error; err != nil {
		return nil, err
	}
	return &usuario, nil
}

func (r *repository) Create(ctx context.Context, usuario *models.Usuario) (*models.Usuario, error) {
	if err := r.db.WithContext(ctx).Create(usuario).Error; err != nil {
		return nil, err
	}
	return usuario, nil
}

func (r *repository) List(ctx context.Context, sucursalID int64) ([]models.Usuario, error) {
	query := r.db.WithContext(ctx).Model(&models.Usuario{})
	if sucursalID > 0 {
		query = query.Where("sucursal_id = ?", sucursalID)
	}

	var usuarios []models.Usuario
	if err := query.Order("nombre ASC").Find(&usuarios).Error; err != nil {
		return nil, err
	}
	return usuarios, nil
}
