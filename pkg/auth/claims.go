package auth

import (
	"github.com/golang-jwt/jwt/v5"

	"github.com/CardonaSantos/gustito-pos/pkg/enums"
)

// AccessTokenPayload captures the data available when minting a JWT.
type AccessTokenPayload struct {
	UsuarioID  int64
	SucursalID int64
	Nombre     string
	Rol        enums.RolUsuario
	JTI        string
}

// AccessTokenClaims represents the typed JWT issued to register operators.
type AccessTokenClaims struct {
	UsuarioID  int64            `json:"usuario_id"`
	SucursalID int64            `json:"sucursal_id"`
	Nombre     string           `json:"nombre,omitempty"`
	Rol        enums.RolUsuario `json:"rol"`
	jwt.RegisteredClaims
}
