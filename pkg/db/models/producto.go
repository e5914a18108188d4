package models

import (
	"time"

	"github.com/lib/pq"
)

// Producto represents a sellable catalog item.
type Producto struct {
	ID          int64            `gorm:"column:id;primaryKey;autoIncrement"`
	Nombre      string           `gorm:"column:nombre;not null"`
	Codigo      string           `gorm:"column:codigo;not null;uniqueIndex"`
	Descripcion *string          `gorm:"column:descripcion"`
	Categorias  pq.StringArray   `gorm:"column:categorias;type:text[]"`
	Activo      bool             `gorm:"column:activo;not null;default:true"`
	Precios     []PrecioProducto `gorm:"foreignKey:ProductoID;constraint:OnDelete:CASCADE"`
	Stock       []Stock          `gorm:"foreignKey:ProductoID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time        `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time        `gorm:"column:updated_at;autoUpdateTime"`
}

// StockTotal sums the available quantity across every sucursal.
func (p Producto) StockTotal() int {
	total := 0
	for _, entry := range p.Stock {
		total += entry.Cantidad
	}
	return total
}
