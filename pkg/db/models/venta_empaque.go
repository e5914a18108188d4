package models

import "time"

// VentaEmpaque records a packaging add-on bundled into a Venta.
type VentaEmpaque struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement"`
	VentaID   int64     `gorm:"column:venta_id;not null;index"`
	EmpaqueID int64     `gorm:"column:empaque_id;not null"`
	Empaque   *Empaque  `gorm:"foreignKey:EmpaqueID"`
	Cantidad  int       `gorm:"column:cantidad;not null"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}
