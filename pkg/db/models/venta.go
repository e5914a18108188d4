package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/CardonaSantos/gustito-pos/pkg/enums"
)

// Venta is a completed sale as registered at the counter. The final-customer
// columns hold free-text contact data for anonymous sales above the
// customer-required threshold.
type Venta struct {
	ID         int64            `gorm:"column:id;primaryKey;autoIncrement"`
	SucursalID int64            `gorm:"column:sucursal_id;not null;index"`
	UsuarioID  int64            `gorm:"column:usuario_id;not null"`
	ClienteID  *int64           `gorm:"column:cliente_id;index"`
	Cliente    *Cliente         `gorm:"foreignKey:ClienteID"`
	MetodoPago enums.MetodoPago `gorm:"column:metodo_pago;not null"`
	TotalVenta decimal.Decimal  `gorm:"column:total_venta;type:numeric(12,2);not null"`

	NombreClienteFinal    *string `gorm:"column:nombre_cliente_final"`
	TelefonoClienteFinal  *string `gorm:"column:telefono_cliente_final"`
	DireccionClienteFinal *string `gorm:"column:direccion_cliente_final"`
	DPIClienteFinal       *string `gorm:"column:dpi_cliente_final"`
	IMEI                  *string `gorm:"column:imei"`

	FechaVenta time.Time      `gorm:"column:fecha_venta;not null"`
	Lineas     []VentaLinea   `gorm:"foreignKey:VentaID;constraint:OnDelete:CASCADE"`
	Empaques   []VentaEmpaque `gorm:"foreignKey:VentaID;constraint:OnDelete:CASCADE"`
	CreatedAt  time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt  time.Time      `gorm:"column:updated_at;autoUpdateTime"`
}
