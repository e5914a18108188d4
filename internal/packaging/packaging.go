package packaging

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/CardonaSantos/gustito-pos/pkg/db/models"
	pkgerrors "github.com/CardonaSantos/gustito-pos/pkg/errors"
)

// Repository defines persistence operations for packaging units.
type Repository interface {
	ListActive(ctx context.Context) ([]models.Empaque, error)
	Create(ctx context.Context, empaque *models.Empaque) (*models.Empaque, error)
	SetActivo(ctx context.Context, id int64, activo bool) (bool, error)
}

type repository struct {
	db *gorm.DB
}

// NewRepository builds a packaging repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) ListActive(ctx context.Context) ([]models.Empaque, error) {
	var empaques []models.Empaque
	err := r.db.WithContext(ctx).
		Where("activo = ?", true).
		Order("nombre ASC").
		Find(&empaques).Error
	if err != nil {
		return nil, err
	}
	return empaques, nil
}

func (r *repository) Create(ctx context.Context, empaque *models.Empaque) (*models.Empaque, error) {
	if err := r.db.WithContext(ctx).Create(empaque).Error; err != nil {
		return nil, err
	}
	return empaque, nil
}

func (r *repository) SetActivo(ctx context.Context, id int64, activo bool) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Empaque{}).
		Where("id = ?", id).
		UpdateColumn("activo", activo)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// CrearEmpaqueInput creates a packaging unit.
type CrearEmpaqueInput struct {
	Nombre      string  `json:"nombre" validate:"required"`
	Descripcion *string `json:"descripcion"`
}

// Service defines packaging operations.
type Service interface {
	List(ctx context.Context) ([]models.Empaque, error)
	Crear(ctx context.Context, input CrearEmpaqueInput) (*models.Empaque, error)
	Desactivar(ctx context.Context, id int64) error
}

type service struct {
	repo Repository
}

// NewService builds a packaging service.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("packaging repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) List(ctx context.Context) ([]models.Empaque, error) {
	empaques, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list empaques")
	}
	return empaques, nil
}

func (s *service) Crear(ctx context.Context, input CrearEmpaqueInput) (*models.Empaque, error) {
	nombre := strings.TrimSpace(input.Nombre)
	if nombre == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "nombre required")
	}
	empaque, err := s.repo.Create(ctx, &models.Empaque{
		Nombre:      nombre,
		Descripcion: input.Descripcion,
		Activo:      true,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create empaque")
	}
	return empaque, nil
}

func (s *service) Desactivar(ctx context.Context, id int64) error {
	if id <= 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "empaque id required")
	}
	found, err := s.repo.SetActivo(ctx, id, false)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "deactivate empaque")
	}
	if !found {
		return pkgerrors.New(pkgerrors.CodeNotFound, "empaque no encontrado")
	}
	return nil
}
