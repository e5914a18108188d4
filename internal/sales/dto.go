package sales

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/CardonaSantos/gustito-pos/pkg/db/models"
	"github.com/CardonaSantos/gustito-pos/pkg/enums"
	"github.com/CardonaSantos/gustito-pos/pkg/pagination"
)

// LineaInput is one submitted product line: quantity plus the price the
// cashier left selected (or typed, after approval).
type LineaInput struct {
	ProductoID  int64           `json:"productoId" validate:"required,gt=0"`
	Cantidad    int             `json:"cantidad" validate:"required,gt=0"`
	PrecioVenta decimal.Decimal `json:"precioVenta" validate:"required"`
}

// EmpaqueInput is one packaging selection bundled into the sale.
type EmpaqueInput struct {
	EmpaqueID int64 `json:"empaqueId" validate:"required,gt=0"`
	Cantidad  int   `json:"cantidad" validate:"gte=0"`
}

// RegistrarInput is a full sale submission from the register. The sucursal
// and usuario are taken from the authenticated session, not the body.
type RegistrarInput struct {
	SucursalID int64            `json:"-"`
	UsuarioID  int64            `json:"-"`
	MetodoPago enums.MetodoPago `json:"metodoPago" validate:"required"`
	Lineas     []LineaInput     `json:"lineas" validate:"required,min=1,dive"`
	Empaques   []EmpaqueInput   `json:"empaques" validate:"dive"`

	ClienteID        *int64  `json:"clienteId"`
	NombreCliente    *string `json:"nombreCliente"`
	TelefonoCliente  *string `json:"telefonoCliente"`
	DireccionCliente *string `json:"direccionCliente"`
	DPICliente       *string `json:"dpiCliente"`
	IMEI             *string `json:"imei"`
}

// Filters narrows the sale listing.
type Filters struct {
	SucursalID int64
	MetodoPago *enums.MetodoPago
	Desde      *time.Time
	Hasta      *time.Time
}

// VentaList is one page of sales plus the cursor for the next page.
type VentaList struct {
	Ventas     []models.Venta
	NextCursor *pagination.Cursor
}
