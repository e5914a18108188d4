package sales

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/CardonaSantos/gustito-pos/internal/cart"
	"github.com/CardonaSantos/gustito-pos/pkg/db/models"
	"github.com/CardonaSantos/gustito-pos/pkg/enums"
)

// ErrorKind distinguishes the assembly rejections the register UI
// handles differently.
type ErrorKind string

const (
	// KindMissingContext means sucursal or usuario identity was absent.
	KindMissingContext ErrorKind = "MISSING_CONTEXT"
	// KindCustomerRequired means the total crossed the threshold and the
	// sale carried neither a registered cliente nor full contact data.
	KindCustomerRequired ErrorKind = "CUSTOMER_REQUIRED"
	// KindEmptyCart means there were no product lines to sell.
	KindEmptyCart ErrorKind = "EMPTY_CART"
	// KindInvalidPayment means the payment method was not recognized.
	KindInvalidPayment ErrorKind = "INVALID_PAYMENT"
)

// ValidationError is an assembly rejection with a machine-readable kind.
type ValidationError struct {
	Kind    ErrorKind
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// CustomerInfo carries either a registered cliente reference or the
// free-text contact details collected at the counter.
type CustomerInfo struct {
	ClienteID *int64
	Nombre    *string
	Telefono  *string
	Direccion *string
	DPI       *string
}

func (c CustomerInfo) hasFullContact() bool {
	return present(c.Nombre) && present(c.Telefono) && present(c.Direccion)
}

func present(s *string) bool {
	return s != nil && *s != ""
}

// BuildInput is everything the assembler needs to turn an in-progress
// cart into a persistable Venta.
type BuildInput struct {
	SucursalID int64
	UsuarioID  int64
	MetodoPago enums.MetodoPago
	Cart       cart.Cart
	Packaging  []cart.Selection
	Customer   CustomerInfo
	IMEI       *string
	FechaVenta time.Time
}

// Assembler turns carts into Venta rows, enforcing the counter rules
// that do not need the database.
type Assembler struct {
	customerRequiredThreshold decimal.Decimal
}

// NewAssembler builds an assembler with the configured anonymous-sale
// threshold.
func NewAssembler(customerRequiredThreshold decimal.Decimal) Assembler {
	return Assembler{customerRequiredThreshold: customerRequiredThreshold}
}

// Build validates the input and assembles the Venta with its lines and
// packaging. Context checks run before the customer-required check so a
// submission with no identity is rejected for that reason even when the
// total also crosses the threshold.
func (a Assembler) Build(in BuildInput) (*models.Venta, error) {
	if in.SucursalID == 0 || in.UsuarioID == 0 {
		return nil, &ValidationError{
			Kind:    KindMissingContext,
			Message: "sucursal y usuario son requeridos",
		}
	}
	if len(in.Cart.Lines) == 0 {
		return nil, &ValidationError{
			Kind:    KindEmptyCart,
			Message: "la venta no tiene productos",
		}
	}
	if !in.MetodoPago.IsValid() {
		return nil, &ValidationError{
			Kind:    KindInvalidPayment,
			Message: "metodo de pago no reconocido",
		}
	}

	monto := cart.Total(in.Cart)
	if monto.GreaterThan(a.customerRequiredThreshold) &&
		in.Customer.ClienteID == nil && !in.Customer.hasFullContact() {
		return nil, &ValidationError{
			Kind:    KindCustomerRequired,
			Message: "ventas mayores al umbral requieren cliente o datos de contacto completos",
		}
	}

	fecha := in.FechaVenta
	if fecha.IsZero() {
		fecha = time.Now().UTC()
	}

	venta := &models.Venta{
		SucursalID: in.SucursalID,
		UsuarioID:  in.UsuarioID,
		ClienteID:  in.Customer.ClienteID,
		MetodoPago: in.MetodoPago,
		TotalVenta: monto,
		IMEI:       in.IMEI,
		FechaVenta: fecha,
	}
	if in.Customer.ClienteID == nil {
		venta.NombreClienteFinal = in.Customer.Nombre
		venta.TelefonoClienteFinal = in.Customer.Telefono
		venta.DireccionClienteFinal = in.Customer.Direccion
		venta.DPIClienteFinal = in.Customer.DPI
	}

	for _, line := range in.Cart.Lines {
		var precioID *int64
		if line.PrecioID != 0 {
			id := line.PrecioID
			precioID = &id
		}
		venta.Lineas = append(venta.Lineas, models.VentaLinea{
			ProductoID:  line.ItemID,
			Cantidad:    line.Cantidad,
			PrecioID:    precioID,
			PrecioVenta: line.Precio,
			Subtotal:    line.Precio.Mul(decimal.NewFromInt(int64(line.Cantidad))),
		})
	}

	for _, sel := range cart.ActiveSelections(in.Packaging) {
		venta.Empaques = append(venta.Empaques, models.VentaEmpaque{
			EmpaqueID: sel.EmpaqueID,
			Cantidad:  sel.Cantidad,
		})
	}

	return venta, nil
}
