package enums

import "fmt"

// MetodoPago describes how the customer settles a sale at the counter.
type MetodoPago string

const (
	MetodoPagoContado       MetodoPago = "CONTADO"
	MetodoPagoTarjeta       MetodoPago = "TARJETA"
	MetodoPagoTransferencia MetodoPago = "TRANSFERENCIA"
)

var validMetodosPago = []MetodoPago{
	MetodoPagoContado,
	MetodoPagoTarjeta,
	MetodoPagoTransferencia,
}

// String implements fmt.Stringer.
func (m MetodoPago) String() string {
	return string(m)
}

// IsValid reports whether the value is a known MetodoPago.
func (m MetodoPago) IsValid() bool {
	for _, candidate := range validMetodosPago {
		if candidate == m {
			return true
		}
	}
	return false
}

// ParseMetodoPago converts raw input into a MetodoPago.
func ParseMetodoPago(value string) (MetodoPago, error) {
	for _, candidate := range validMetodosPago {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid metodo de pago %q", value)
}
