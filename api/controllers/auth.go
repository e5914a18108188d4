package controllers

import (
	"net/http"

	"github.com/CardonaSantos/gustito-pos/api/responses"
	"github.com/CardonaSantos/gustito-pos/api/validators"
	"github.com/CardonaSantos/gustito-pos/internal/users"
	"github.com/CardonaSantos/gustito-pos/pkg/logger"
)

type loginResponse struct {
	Token   string          `json:"token"`
	Usuario usuarioResponse `json:"usuario"`
}

type usuarioResponse struct {
	ID         int64  `json:"id"`
	Nombre     string `json:"nombre"`
	Correo     string `json:"correo"`
	Rol        string `json:"rol"`
	SucursalID int64  `json:"sucursalId"`
}

// AuthLogin authenticates a register operator and returns a bearer token.
func AuthLogin(svc users.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input users.LoginInput
		if err := validators.DecodeJSONBody(r, &input); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.Login(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, loginResponse{
			Token:   result.Token,
			Usuario: toUsuarioResponse(result.Usuario),
		})
	}
}
