package models

import "time"

// Empaque is a packaging unit (bag, box) bundled into a sale as an add-on.
type Empaque struct {
	ID          int64     `gorm:"column:id;primaryKey;autoIncrement"`
	Nombre      string    `gorm:"column:nombre;not null"`
	Descripcion *string   `gorm:"column:descripcion"`
	Activo      bool      `gorm:"column:activo;not null;default:true"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
