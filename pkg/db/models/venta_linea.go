package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// VentaLinea snapshots one product line inside a Venta. PrecioID is nil when
// the line was sold at a manually approved price with no matching tier.
type VentaLinea struct {
	ID          int64           `gorm:"column:id;primaryKey;autoIncrement"`
	VentaID     int64           `gorm:"column:venta_id;not null;index"`
	ProductoID  int64           `gorm:"column:producto_id;not null"`
	Producto    *Producto       `gorm:"foreignKey:ProductoID"`
	Cantidad    int             `gorm:"column:cantidad;not null"`
	PrecioID    *int64          `gorm:"column:precio_id"`
	PrecioVenta decimal.Decimal `gorm:"column:precio_venta;type:numeric(12,2);not null"`
	Subtotal    decimal.Decimal `gorm:"column:subtotal;type:numeric(12,2);not null"`
	CreatedAt   time.Time       `gorm:"column:created_at;autoCreateTime"`
}
