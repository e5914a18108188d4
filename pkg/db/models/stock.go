package models

import "time"

// Stock holds the available quantity of a Producto at one Sucursal.
type Stock struct {
	ID         int64     `gorm:"column:id;primaryKey;autoIncrement"`
	ProductoID int64     `gorm:"column:producto_id;not null;uniqueIndex:idx_stock_producto_sucursal"`
	SucursalID int64     `gorm:"column:sucursal_id;not null;uniqueIndex:idx_stock_producto_sucursal"`
	Cantidad   int       `gorm:"column:cantidad;not null;default:0"`
	UpdatedAt  time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
