package models

import "time"

// Sucursal is a branch of the business.
type Sucursal struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement"`
	Nombre    string    `gorm:"column:nombre;not null"`
	Direccion *string   `gorm:"column:direccion"`
	Telefono  *string   `gorm:"column:telefono"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
