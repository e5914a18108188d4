package pricerequests

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/CardonaSantos/gustito-pos/pkg/db/models"
	"github.com/CardonaSantos/gustito-pos/pkg/enums"
	pkgerrors "github.com/CardonaSantos/gustito-pos/pkg/errors"
)

// Repository defines persistence operations for special price requests.
type Repository interface {
	Create(ctx context.Context, solicitud *models.SolicitudPrecio) (*models.SolicitudPrecio, error)
	FindByID(ctx context.Context, id int64) (*models.SolicitudPrecio, error)
	List(ctx context.Context, estado *enums.EstadoSolicitud) ([]models.SolicitudPrecio, error)
	Decide(ctx context.Context, id int64, estado enums.EstadoSolicitud, decididoPorID int64, decididoEn time.Time) (bool, error)
}

type repository struct {
	db *gorm.DB
}

// NewRepository builds a price request repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, solicitud *models.SolicitudPrecio) (*models.SolicitudPrecio, error) {
	if err := r.db.WithContext(ctx).Create(solicitud).Error; err != nil {
		return nil, err
	}
	return solicitud, nil
}

func (r *repository) FindByID(ctx context.Context, id int64) (*models.SolicitudPrecio, error) {
	var solicitud models.SolicitudPrecio
	err := r.db.WithContext(ctx).
		Preload("Producto").
		Where("id = ?", id).
		First(&solicitud).Error
	if err != nil {
		return nil, err
	}
	return &solicitud, nil
}

func (r *repository) List(ctx context.Context, estado *enums.EstadoSolicitud) ([]models.SolicitudPrecio, error) {
	query := r.db.WithContext(ctx).Model(&models.SolicitudPrecio{})
	if estado != nil {
		query = query.Where("estado = ?", *estado)
	}

	var solicitudes []models.SolicitudPrecio
	err := query.
		Preload("Producto").
		Order("created_at DESC, id DESC").
		Find(&solicitudes).Error
	if err != nil {
		return nil, err
	}
	return solicitudes, nil
}

// Decide flips a pending request in one guarded update, so two admins
// deciding at once cannot both win.
func (r *repository) Decide(ctx context.Context, id int64, estado enums.EstadoSolicitud, decididoPorID int64, decididoEn time.Time) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&models.SolicitudPrecio{}).
		Where("id = ? AND estado = ?", id, enums.EstadoSolicitudPendiente).
		Updates(map[string]any{
			"estado":          estado,
			"decidido_por_id": decididoPorID,
			"decidido_en":     decididoEn,
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// CrearSolicitudInput raises a one-time special price request.
type CrearSolicitudInput struct {
	ProductoID       int64           `json:"productoId" validate:"required,gt=0"`
	PrecioSolicitado decimal.Decimal `json:"precioSolicitado" validate:"required"`
	Motivo           *string         `json:"motivo"`
	SolicitadoPorID  int64           `json:"-"`
}

// DecisionInput resolves a pending request.
type DecisionInput struct {
	SolicitudID   int64
	Aprobar       bool
	DecididoPorID int64
}

// Service defines special price request operations.
type Service interface {
	Crear(ctx context.Context, input CrearSolicitudInput) (*models.SolicitudPrecio, error)
	List(ctx context.Context, estado *enums.EstadoSolicitud) ([]models.SolicitudPrecio, error)
	Decidir(ctx context.Context, input DecisionInput) (*models.SolicitudPrecio, error)
}

type service struct {
	repo Repository
}

// NewService builds a price request service.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("price request repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) Crear(ctx context.Context, input CrearSolicitudInput) (*models.SolicitudPrecio, error) {
	if input.ProductoID <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "producto id required")
	}
	if input.SolicitadoPorID <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "usuario identity missing")
	}
	if !input.PrecioSolicitado.IsPositive() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "precio solicitado debe ser mayor a cero")
	}

	solicitud, err := s.repo.Create(ctx, &models.SolicitudPrecio{
		ProductoID:       input.ProductoID,
		SolicitadoPorID:  input.SolicitadoPorID,
		PrecioSolicitado: input.PrecioSolicitado,
		Motivo:           input.Motivo,
		Estado:           enums.EstadoSolicitudPendiente,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create solicitud")
	}
	return solicitud, nil
}

func (s *service) List(ctx context.Context, estado *enums.EstadoSolicitud) ([]models.SolicitudPrecio, error) {
	if estado != nil && !estado.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "estado no reconocido")
	}
	solicitudes, err := s.repo.List(ctx, estado)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list solicitudes")
	}
	return solicitudes, nil
}

// Decidir approves or rejects a pending request. Approval never mutates the
// product's tier set; the approved price reaches the sale as a manual line
// price typed at the register.
func (s *service) Decidir(ctx context.Context, input DecisionInput) (*models.SolicitudPrecio, error) {
	if input.SolicitudID <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "solicitud id required")
	}
	if input.DecididoPorID <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "usuario identity missing")
	}

	estado := enums.EstadoSolicitudRechazada
	if input.Aprobar {
		estado = enums.EstadoSolicitudAprobada
	}

	updated, err := s.repo.Decide(ctx, input.SolicitudID, estado, input.DecididoPorID, time.Now().UTC())
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "decide solicitud")
	}
	if !updated {
		// distinguish missing from already decided
		if _, err := s.repo.FindByID(ctx, input.SolicitudID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, pkgerrors.New(pkgerrors.CodeNotFound, "solicitud no encontrada")
			}
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load solicitud")
		}
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict, "la solicitud ya fue decidida")
	}

	solicitud, err := s.repo.FindByID(ctx, input.SolicitudID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "reload solicitud")
	}
	return solicitud, nil
}
