package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PrecioProducto is one sellable price tier for a Producto. Orden ranks tiers
// for display; rows without an Orden fall back to price ordering.
type PrecioProducto struct {
	ID         int64           `gorm:"column:id;primaryKey;autoIncrement"`
	ProductoID int64           `gorm:"column:producto_id;not null;index"`
	Precio     decimal.Decimal `gorm:"column:precio;type:numeric(12,2);not null"`
	Orden      *int            `gorm:"column:orden"`
	CreatedAt  time.Time       `gorm:"column:created_at;autoCreateTime"`
}
