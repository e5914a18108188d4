package sales

import (
	"context"

	"gorm.io/gorm"

	"github.com/CardonaSantos/gustito-pos/pkg/db/models"
	pkgerrors "github.com/CardonaSantos/gustito-pos/pkg/errors"
	"github.com/CardonaSantos/gustito-pos/pkg/pagination"
)

type repository struct {
	db *gorm.DB
}

// NewRepository builds a sales repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{db: tx}
}

func (r *repository) Create(ctx context.Context, venta *models.Venta) (*models.Venta, error) {
	if err := r.db.WithContext(ctx).Create(venta).Error; err != nil {
		return nil, err
	}
	return venta, nil
}

func (r *repository) FindByID(ctx context.Context, id int64) (*models.Venta, error) {
	var venta models.Venta
	err := r.db.WithContext(ctx).
		Preload("Lineas").
		Preload("Lineas.Producto").
		Preload("Empaques").
		Preload("Empaques.Empaque").
		Preload("Cliente").
		Where("id = ?", id).
		First(&venta).Error
	if err != nil {
		return nil, err
	}
	return &venta, nil
}

func (r *repository) List(ctx context.Context, params pagination.Params, filters Filters) (*VentaList, error) {
	limit := pagination.LimitWithBuffer(params.Limit)
	normalized := pagination.NormalizeLimit(params.Limit)

	query := r.db.WithContext(ctx).Model(&models.Venta{}).
		Where("sucursal_id = ?", filters.SucursalID)
	if filters.MetodoPago != nil {
		query = query.Where("metodo_pago = ?", *filters.MetodoPago)
	}
	if filters.Desde != nil {
		query = query.Where("fecha_venta >= ?", *filters.Desde)
	}
	if filters.Hasta != nil {
		query = query.Where("fecha_venta < ?", *filters.Hasta)
	}

	cursor, err := pagination.ParseCursor(params.Cursor)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid cursor")
	}
	if cursor != nil {
		query = query.Where("(fecha_venta, id) < (?, ?)", cursor.FechaVenta, cursor.ID)
	}

	var ventas []models.Venta
	err = query.
		Preload("Lineas").
		Preload("Cliente").
		Order("fecha_venta DESC, id DESC").
		Limit(limit).
		Find(&ventas).Error
	if err != nil {
		return nil, err
	}

	list := &VentaList{Ventas: ventas}
	if len(ventas) > normalized {
		next := ventas[normalized]
		list.Ventas = ventas[:normalized]
		list.NextCursor = &pagination.Cursor{FechaVenta: next.FechaVenta, ID: next.ID}
	}
	return list, nil
}

// DeductStock atomically decrements the branch stock row, failing when the
// remaining quantity cannot cover the sale.
func (r *repository) DeductStock(ctx context.Context, productoID, sucursalID int64, cantidad int) error {
	result := r.db.WithContext(ctx).
		Model(&models.Stock{}).
		Where("producto_id = ? AND sucursal_id = ? AND cantidad >= ?", productoID, sucursalID, cantidad).
		UpdateColumn("cantidad", gorm.Expr("cantidad - ?", cantidad))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return pkgerrors.New(pkgerrors.CodeConflict, "stock insuficiente para el producto")
	}
	return nil
}
