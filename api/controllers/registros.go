package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/CardonaSantos/gustito-pos/api/middleware"
	"github.com/CardonaSantos/gustito-pos/api/responses"
	"github.com/CardonaSantos/gustito-pos/api/validators"
	"github.com/CardonaSantos/gustito-pos/internal/registers"
	"github.com/CardonaSantos/gustito-pos/pkg/logger"
)

// OpenRegistro opens a cash register shift at the operator's branch.
func OpenRegistro(svc registers.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input registers.AbrirInput
		if err := validators.DecodeJSONBody(r, &input); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if input.SucursalID == 0 {
			input.SucursalID = middleware.SucursalIDFromContext(r.Context())
		}
		input.UsuarioID = middleware.UsuarioIDFromContext(r.Context())

		registro, err := svc.Abrir(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, registro)
	}
}

// CloseRegistro closes a shift and reconciles the drawer.
func CloseRegistro(svc registers.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParsePathID(chi.URLParam(r, "registroId"), "registroId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var input registers.CerrarInput
		if err := validators.DecodeJSONBody(r, &input); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		input.RegistroID = id
		input.UsuarioID = middleware.UsuarioIDFromContext(r.Context())

		registro, err := svc.Cerrar(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, registro)
	}
}

// GetRegistroAbierto returns the open shift at the operator's branch.
func GetRegistroAbierto(svc registers.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		registro, err := svc.Abierto(r.Context(), middleware.SucursalIDFromContext(r.Context()))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, registro)
	}
}
