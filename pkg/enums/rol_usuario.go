package enums

import "fmt"

// RolUsuario determines what an operator can do at the register.
type RolUsuario string

const (
	RolAdmin    RolUsuario = "ADMIN"
	RolVendedor RolUsuario = "VENDEDOR"
)

var validRolesUsuario = []RolUsuario{
	RolAdmin,
	RolVendedor,
}

// String implements fmt.Stringer.
func (r RolUsuario) String() string {
	return string(r)
}

// IsValid reports whether the value is a known RolUsuario.
func (r RolUsuario) IsValid() bool {
	for _, candidate := range validRolesUsuario {
		if candidate == r {
			return true
		}
	}
	return false
}

// ParseRolUsuario converts raw input into a RolUsuario.
func ParseRolUsuario(value string) (RolUsuario, error) {
	for _, candidate := range validRolesUsuario {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid rol %q", value)
}
