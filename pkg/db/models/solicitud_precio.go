package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/CardonaSantos/gustito-pos/pkg/enums"
)

// SolicitudPrecio is a one-time special price request raised from the
// register and decided by an admin. Approval does not mutate the catalog;
// the approved price is applied as a manual line price on the sale.
type SolicitudPrecio struct {
	ID               int64                 `gorm:"column:id;primaryKey;autoIncrement"`
	ProductoID       int64                 `gorm:"column:producto_id;not null;index"`
	Producto         *Producto             `gorm:"foreignKey:ProductoID"`
	SolicitadoPorID  int64                 `gorm:"column:solicitado_por_id;not null"`
	PrecioSolicitado decimal.Decimal       `gorm:"column:precio_solicitado;type:numeric(12,2);not null"`
	Motivo           *string               `gorm:"column:motivo"`
	Estado           enums.EstadoSolicitud `gorm:"column:estado;not null;default:'PENDIENTE'"`
	DecididoPorID    *int64                `gorm:"column:decidido_por_id"`
	DecididoEn       *time.Time            `gorm:"column:decidido_en"`
	CreatedAt        time.Time             `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt        time.Time             `gorm:"column:updated_at;autoUpdateTime"`
}
