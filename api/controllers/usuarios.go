package controllers

import (
	"math"
	"net/http"

	"github.com/CardonaSantos/gustito-pos/api/responses"
	"github.com/CardonaSantos/gustito-pos/api/validators"
	"github.com/CardonaSantos/gustito-pos/internal/users"
	"github.com/CardonaSantos/gustito-pos/pkg/db/models"
	"github.com/CardonaSantos/gustito-pos/pkg/logger"
)

// CreateUsuario registers a register operator. Admin only.
func CreateUsuario(svc users.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input users.CrearUsuarioInput
		if err := validators.DecodeJSONBody(r, &input); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		usuario, err := svc.Crear(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, toUsuarioResponse(usuario))
	}
}

// ListUsuarios returns operators, optionally scoped to a branch.
func ListUsuarios(svc users.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sucursalID, err := validators.ParseQueryInt(r, "sucursalId", 0, 1, math.MaxInt32)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		usuarios, err := svc.List(r.Context(), int64(sucursalID))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		out := make([]usuarioResponse, 0, len(usuarios))
		for i := range usuarios {
			out = append(out, toUsuarioResponse(&usuarios[i]))
		}
		responses.WriteSuccess(w, out)
	}
}

// password hashes never leave the service layer
func toUsuarioResponse(usuario *models.Usuario) usuarioResponse {
	return usuarioResponse{
		ID:         usuario.ID,
		Nombre:     usuario.Nombre,
		Correo:     usuario.Correo,
		Rol:        string(usuario.Rol),
		SucursalID: usuario.SucursalID,
	}
}
