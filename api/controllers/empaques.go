package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/CardonaSantos/gustito-pos/api/responses"
	"github.com/CardonaSantos/gustito-pos/api/validators"
	"github.com/CardonaSantos/gustito-pos/internal/packaging"
	"github.com/CardonaSantos/gustito-pos/pkg/logger"
)

// ListEmpaques returns the active packaging units for the register.
func ListEmpaques(svc packaging.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		empaques, err := svc.List(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, empaques)
	}
}

// CreateEmpaque registers a packaging unit.
func CreateEmpaque(svc packaging.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input packaging.CrearEmpaqueInput
		if err := validators.DecodeJSONBody(r, &input); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		empaque, err := svc.Crear(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, empaque)
	}
}

// DeactivateEmpaque removes a packaging unit from the register options.
func DeactivateEmpaque(svc packaging.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParsePathID(chi.URLParam(r, "empaqueId"), "empaqueId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.Desactivar(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]bool{"ok": true})
	}
}
