package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/CardonaSantos/gustito-pos/pkg/enums"
)

// RegistroCaja is one cash-register shift. MontoEsperado and Desvio are
// computed at close: expected = saldo inicial + cash sales during the shift.
type RegistroCaja struct {
	ID             int64                `gorm:"column:id;primaryKey;autoIncrement"`
	SucursalID     int64                `gorm:"column:sucursal_id;not null;index"`
	UsuarioID      int64                `gorm:"column:usuario_id;not null"`
	SaldoInicial   decimal.Decimal      `gorm:"column:saldo_inicial;type:numeric(12,2);not null"`
	MontoEsperado  *decimal.Decimal     `gorm:"column:monto_esperado;type:numeric(12,2)"`
	MontoDeclarado *decimal.Decimal     `gorm:"column:monto_declarado;type:numeric(12,2)"`
	Desvio         *decimal.Decimal     `gorm:"column:desvio;type:numeric(12,2)"`
	Estado         enums.EstadoRegistro `gorm:"column:estado;not null;default:'ABIERTO'"`
	Comentario     *string              `gorm:"column:comentario"`
	AbiertoEn      time.Time            `gorm:"column:abierto_en;not null"`
	CerradoEn      *time.Time           `gorm:"column:cerrado_en"`
	CreatedAt      time.Time            `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt      time.Time            `gorm:"column:updated_at;autoUpdateTime"`
}
