package customers

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/CardonaSantos/gustito-pos/pkg/db/models"
	pkgerrors "github.com/CardonaSantos/gustito-pos/pkg/errors"
)

// Repository defines persistence operations for the customer directory.
type Repository interface {
	List(ctx context.Context, buscar string) ([]models.Cliente, error)
	FindByID(ctx context.Context, id int64) (*models.Cliente, error)
	Create(ctx context.Context, cliente *models.Cliente) (*models.Cliente, error)
	Update(ctx context.Context, id int64, updates map[string]any) error
}

type repository struct {
	db *gorm.DB
}

// NewRepository builds a customers repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) List(ctx context.Context, buscar string) ([]models.Cliente, error) {
	query := r.db.WithContext(ctx).Model(&models.Cliente{})
	if buscar != "" {
		pattern := "%" + buscar + "%"
		query = query.Where("nombre LIKE ? OR telefono LIKE ? OR dpi LIKE ?", pattern, pattern, pattern)
	}

	var clientes []models.Cliente
	if err := query.Order("nombre ASC").Find(&clientes).Error; err != nil {
		return nil, err
	}
	return clientes, nil
}

func (r *repository) FindByID(ctx context.Context, id int64) (*models.Cliente, error) {
	var cliente models.Cliente
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&cliente).Error; err != nil {
		return nil, err
	}
	return &cliente, nil
}

func (r *repository) Create(ctx context.Context, cliente *models.Cliente) (*models.Cliente, error) {
	if err := r.db.WithContext(ctx).Create(cliente).Error; err != nil {
		return nil, err
	}
	return cliente, nil
}

func (r *repository) Update(ctx context.Context, id int64, updates map[string]any) error {
	return r.db.WithContext(ctx).
		Model(&models.Cliente{}).
		Where("id = ?", id).
		Updates(updates).Error
}

// CrearClienteInput registers a customer in the directory.
type CrearClienteInput struct {
	Nombre        string  `json:"nombre" validate:"required"`
	Telefono      *string `json:"telefono"`
	Direccion     *string `json:"direccion"`
	DPI           *string `json:"dpi"`
	Observaciones *string `json:"observaciones"`
}

// Service defines customer directory operations.
type Service interface {
	List(ctx context.Context, buscar string) ([]models.Cliente, error)
	FindByID(ctx context.Context, id int64) (*models.Cliente, error)
	Crear(ctx context.Context, input CrearClienteInput) (*models.Cliente, error)
}

type service struct {
	repo Repository
}

// NewService builds a customers service.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("customers repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) List(ctx context.Context, buscar string) ([]models.Cliente, error) {
	clientes, err := s.repo.List(ctx, strings.TrimSpace(buscar))
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list clientes")
	}
	return clientes, nil
}

func (s *service) FindByID(ctx context.Context, id int64) (*models.Cliente, error) {
	if id <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cliente id required")
	}
	cliente, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "cliente no encontrado")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load cliente")
	}
	return cliente, nil
}

func (s *service) Crear(ctx context.Context, input CrearClienteInput) (*models.Cliente, error) {
	nombre := strings.TrimSpace(input.Nombre)
	if nombre == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "nombre required")
	}
	cliente, err := s.repo.Create(ctx, &models.Cliente{
		Nombre:        nombre,
		Telefono:      input.Telefono,
		Direccion:     input.Direccion,
		DPI:           input.DPI,
		Observaciones: input.Observaciones,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create cliente")
	}
	return cliente, nil
}
