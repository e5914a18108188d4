package registers

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

// Repository defines persistence operations for cash register shifts.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, registro *models.RegistroCaja) (*models.RegistroCaja, error)
	FindByID(ctx context.Context, id int64) (*models.RegistroCaja, error)
	FindAbierto(ctx context.Context, sucursalID int64) (*models.RegistroCaja, error)
	Close(ctx context.Context, id int64, updates map[string]any) (bool, error)
	SumCashSales(ctx context.Context, sucursalID int64, desde, hasta time.Time) (decimal.Decimal, error)
}

type repository struct {
	db *gorm.DB
}

// NewRepository builds a registers repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{db: tx}
}

func (r *repository) Create(ctx context.Context, registro *models.RegistroCaja) (*models.RegistroCaja, error) {
	if err := r.db.WithContext(ctx).Create(registro).Error; err != nil {
		return nil, err
	}
	return registro, nil
}

func (r *repository) FindByID(ctx context.Context, id int64) (*models.RegistroCaja, error) {
	var registro models.RegistroCaja
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&registro).Error; err != nil {
		return nil, err
	}
	return &registro, nil
}

func (r *repository) FindAbierto(ctx context.Context, sucursalID int64) (*models.RegistroCaja, error) {
	var registro models.RegistroCaja
	err := r.db.WithContext(ctx).
		Where("sucursal_id = ? AND estado = ?", sucursalID, enums.EstadoRegistroAbierto).
		First(&registro).Error
	if err != nil {
		return nil, err
	}
	return &registro, nil
}

// Close flips an open shift to closed in one guarded update.
func (r *repository) Close(ctx context.Context, id int64, updates map[string]any) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&models.RegistroCaja{}).
		Where("id = ? AND estado = ?", id, enums.EstadoRegistroAbierto).
		Updates(updates)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// SumCashSales totals CONTADO sales at a branch within the shift window.
func (r *repository) SumCashSales(ctx context.Context, sucursalID int64, desde, hasta time.Time) (decimal.Decimal, error) {
	var total decimal.NullDecimal
	err := r.db.WithContext(ctx).
		Model(&models.Venta{}).
		Select("SUM(total_venta)").
		Where("sucursal_id = ? AND metodo_pago = ? AND fecha_venta >= ? AND fecha_venta <= ?",
			sucursalID, enums.MetodoPagoContado, desde, hasta).
		Scan(&total).Error
	if err != nil {
		return decimal.Zero, err
	}
	if !total.Valid {
		return decimal.Zero, nil
	}
	return total.Decimal, nil
}

// AbrirInput opens a shift with the counted starting cash.
type AbrirInput struct {
	SucursalID   int64           `json:"sucursalId"`
	UsuarioID    int64           `json:"-"`
	SaldoInicial decimal.Decimal `json:"saldoInicial" validate:"required"`
	Comentario   *string         `json:"comentario"`
}

// CerrarInput closes a shift with the counted ending cash.
type CerrarInput struct {
	RegistroID     int64           `json:"-"`
	UsuarioID      int64           `json:"-"`
	MontoDeclarado decimal.Decimal `json:"montoDeclarado" validate:"required"`
	Comentario     *string         `json:"comentario"`
}

// Service defines cash register shift operations.
type Service interface {
	Abrir(ctx context.Context, input AbrirInput) (*models.RegistroCaja, error)
	Cerrar(ctx context.Context, input CerrarInput) (*models.RegistroCaja, error)
	Abierto(ctx context.Context, sucursalID int64) (*models.RegistroCaja, error)
}

type service struct {
	repo Repository
}

// NewService builds a registers service.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("registers repository required")
	}
	return &service{repo: repo}, nil
}

// Abrir opens a shift at the branch. Only one shift may be open per branch
// at a time.
func (s *service) Abrir(ctx context.Context, input AbrirInput) (*models.RegistroCaja, error) {
	if input.SucursalID <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "sucursal id required")
	}
	if input.UsuarioID <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "usuario identity missing")
	}
	if input.SaldoInicial.IsNegative() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "saldo inicial no puede ser negativo")
	}

	if _, err := s.repo.FindAbierto(ctx, input.SucursalID); err == nil {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict, "ya existe un registro abierto en la sucursal")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "check registro abierto")
	}

	registro, err := s.repo.Create(ctx, &models.RegistroCaja{
		SucursalID:   input.SucursalID,
		UsuarioID:    input.UsuarioID,
		SaldoInicial: input.SaldoInicial,
		Estado:       enums.EstadoRegistroAbierto,
		Comentario:   input.Comentario,
		AbiertoEn:    time.Now().UTC(),
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create registro")
	}
	return registro, nil
}

// Cerrar closes the shift and reconciles the drawer: expected cash is the
// opening balance plus CONTADO sales registered at the branch during the
// shift, and the desvio is declared minus expected.
func (s *service) Cerrar(ctx context.Context, input CerrarInput) (*models.RegistroCaja, error) {
	if input.RegistroID <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "registro id required")
	}
	if input.UsuarioID <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "usuario identity missing")
	}
	if input.MontoDeclarado.IsNegative() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "monto declarado no puede ser negativo")
	}

	registro, err := s.repo.FindByID(ctx, input.RegistroID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "registro no encontrado")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load registro")
	}
	if registro.Estado != enums.EstadoRegistroAbierto {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict, "el registro ya fue cerrado")
	}

	cerradoEn := time.Now().UTC()
	ventasContado, err := s.repo.SumCashSales(ctx, registro.SucursalID, registro.AbiertoEn, cerradoEn)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "sum cash sales")
	}

	esperado := registro.SaldoInicial.Add(ventasContado)
	desvio := input.MontoDeclarado.Sub(esperado)

	updates := map[string]any{
		"estado":          enums.EstadoRegistroCerrado,
		"monto_esperado":  esperado,
		"monto_declarado": input.MontoDeclarado,
		"desvio":          desvio,
		"cerrado_en":      cerradoEn,
	}
	if input.Comentario != nil {
		updates["comentario"] = *input.Comentario
	}

	closed, err := s.repo.Close(ctx, registro.ID, updates)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "close registro")
	}
	if !closed {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict, "el registro ya fue cerrado")
	}

	reloaded, err := s.repo.FindByID(ctx, registro.ID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "reload registro")
	}
	return reloaded, nil
}

// Abierto returns the open shift at the branch, if any.
func (s *service) Abierto(ctx context.Context, sucursalID int64) (*models.RegistroCaja, error) {
	if sucursalID <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "sucursal id required")
	}
	registro, err := s.repo.FindAbierto(ctx, sucursalID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "no hay registro abierto")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load registro abierto")
	}
	return registro, nil
}
