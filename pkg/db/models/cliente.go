package models

import "time"

// Cliente is a registered customer in the directory.
type Cliente struct {
	ID            int64     `gorm:"column:id;primaryKey;autoIncrement"`
	Nombre        string    `gorm:"column:nombre;not null"`
	Telefono      *string   `gorm:"column:telefono"`
	Direccion     *string   `gorm:"column:direccion"`
	DPI           *string   `gorm:"column:dpi"`
	Observaciones *string   `gorm:"column:observaciones"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
