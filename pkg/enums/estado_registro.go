package enums

import "fmt"

// EstadoRegistro tracks the lifecycle of a cash-register shift.
type EstadoRegistro string

const (
	EstadoRegistroAbierto EstadoRegistro = "ABIERTO"
	EstadoRegistroCerrado EstadoRegistro = "CERRADO"
)

var validEstadosRegistro = []EstadoRegistro{
	EstadoRegistroAbierto,
	EstadoRegistroCerrado,
}

// String implements fmt.Stringer.
func (e EstadoRegistro) String() string {
	return string(e)
}

// IsValid reports whether the value is a known EstadoRegistro.
func (e EstadoRegistro) IsValid() bool {
	for _, candidate := range validEstadosRegistro {
		if candidate == e {
			return true
		}
	}
	return false
}

// ParseEstadoRegistro converts raw input into an EstadoRegistro.
func ParseEstadoRegistro(value string) (EstadoRegistro, error) {
	for _, candidate := range validEstadosRegistro {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid estado de registro %q", value)
}
