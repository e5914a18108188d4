package catalog

import (
	"github.com/shopspring/decimal"
)

// ListFilters narrows the catalog listing.
type ListFilters struct {
	// Buscar matches against nombre and codigo.
	Buscar    string
	Categoria string
}

// PrecioView is one selectable price option in display order.
type PrecioView struct {
	ID     int64           `json:"id"`
	Precio decimal.Decimal `json:"precio"`
	Orden  *int            `json:"orden,omitempty"`
}

// ProductoView is one catalog row shaped for the register screen: the
// default price preselected plus the full ordered dropdown and branch stock.
type ProductoView struct {
	ID            int64           `json:"id"`
	Nombre        string          `json:"nombre"`
	Codigo        string          `json:"codigo"`
	Descripcion   *string         `json:"descripcion,omitempty"`
	Categorias    []string        `json:"categorias"`
	PrecioID      int64           `json:"precioId"`
	Precio        decimal.Decimal `json:"precio"`
	Precios       []PrecioView    `json:"precios"`
	StockSucursal int             `json:"stockSucursal"`
	StockTotal    int             `json:"stockTotal"`
}

// CrearProductoInput creates a catalog item with its initial price tiers.
type CrearProductoInput struct {
	Nombre      string        `json:"nombre" validate:"required"`
	Codigo      string        `json:"codigo" validate:"required"`
	Descripcion *string       `json:"descripcion"`
	Categorias  []string      `json:"categorias"`
	Precios     []PrecioInput `json:"precios" validate:"required,min=1,dive"`
}

// PrecioInput is one tier in a create or replace request.
type PrecioInput struct {
	Precio decimal.Decimal `json:"precio" validate:"required"`
	Orden  *int            `json:"orden"`
}
