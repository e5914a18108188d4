package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/CardonaSantos/gustito-pos/api/middleware"
	"github.com/CardonaSantos/gustito-pos/api/responses"
	"github.com/CardonaSantos/gustito-pos/api/validators"
	"github.com/CardonaSantos/gustito-pos/internal/pricerequests"
	"github.com/CardonaSantos/gustito-pos/pkg/enums"
	pkgerrors "github.com/CardonaSantos/gustito-pos/pkg/errors"
	"github.com/CardonaSantos/gustito-pos/pkg/logger"
)

type decisionRequest struct {
	Aprobar bool `json:"aprobar"`
}

// CreatePriceRequest raises a one-time special price request.
func CreatePriceRequest(svc pricerequests.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input pricerequests.CrearSolicitudInput
		if err := validators.DecodeJSONBody(r, &input); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		input.SolicitadoPorID = middleware.UsuarioIDFromContext(r.Context())

		solicitud, err := svc.Crear(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, solicitud)
	}
}

// ListPriceRequests returns special price requests, optionally by estado.
func ListPriceRequests(svc pricerequests.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var estado *enums.EstadoSolicitud
		if raw := strings.TrimSpace(r.URL.Query().Get("estado")); raw != "" {
			parsed, err := enums.ParseEstadoSolicitud(raw)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid estado"))
				return
			}
			estado = &parsed
		}

		solicitudes, err := svc.List(r.Context(), estado)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, solicitudes)
	}
}

// DecidePriceRequest approves or rejects a pending request.
func DecidePriceRequest(svc pricerequests.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParsePathID(chi.URLParam(r, "solicitudId"), "solicitudId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body decisionRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		solicitud, err := svc.Decidir(r.Context(), pricerequests.DecisionInput{
			SolicitudID:   id,
			Aprobar:       body.Aprobar,
			DecididoPorID: middleware.UsuarioIDFromContext(r.Context()),
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, solicitud)
	}
}
