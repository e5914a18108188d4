package models

import (
	"time"

	"github.com/CardonaSantos/gustito-pos/pkg/enums"
)

// Usuario is a register operator.
type Usuario struct {
	ID           int64            `gorm:"column:id;primaryKey;autoIncrement"`
	Nombre       string           `gorm:"column:nombre;not null"`
	Correo       string           `gorm:"column:correo;not null;uniqueIndex"`
	PasswordHash string           `gorm:"column:password_hash;not null"`
	Rol          enums.RolUsuario `gorm:"column:rol;not null;default:'VENDEDOR'"`
	SucursalID   int64            `gorm:"column:sucursal_id;not null"`
	Activo       bool             `gorm:"column:activo;not null;default:true"`
	CreatedAt    time.Time        `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time        `gorm:"column:updated_at;autoUpdateTime"`
}
