package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/CardonaSantos/gustito-pos/api/middleware"
	"github.com/CardonaSantos/gustito-pos/api/responses"
	"github.com/CardonaSantos/gustito-pos/api/validators"
	"github.com/CardonaSantos/gustito-pos/internal/sales"
	"github.com/CardonaSantos/gustito-pos/pkg/enums"
	pkgerrors "github.com/CardonaSantos/gustito-pos/pkg/errors"
	"github.com/CardonaSantos/gustito-pos/pkg/logger"
	"github.com/CardonaSantos/gustito-pos/pkg/pagination"
)

type ventaListResponse struct {
	Ventas     any     `json:"ventas"`
	NextCursor *string `json:"nextCursor,omitempty"`
}

// RegisterVenta accepts a sale submission from the register.
func RegisterVenta(svc sales.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input sales.RegistrarInput
		if err := validators.DecodeJSONBody(r, &input); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input.UsuarioID = middleware.UsuarioIDFromContext(r.Context())
		input.SucursalID = middleware.SucursalIDFromContext(r.Context())

		venta, err := svc.Registrar(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, venta)
	}
}

// GetVenta returns one sale with its lines and packaging.
func GetVenta(svc sales.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParsePathID(chi.URLParam(r, "ventaId"), "ventaId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		venta, err := svc.FindByID(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, venta)
	}
}

// ListVentas returns the branch's sales, newest first.
func ListVentas(svc sales.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, err := validators.ParseQueryInt(r, "limit", 0, 1, pagination.MaxLimit)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		filters := sales.Filters{SucursalID: middleware.SucursalIDFromContext(r.Context())}

		if raw := strings.TrimSpace(r.URL.Query().Get("metodoPago")); raw != "" {
			metodo, parseErr := enums.ParseMetodoPago(raw)
			if parseErr != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, parseErr, "invalid metodoPago"))
				return
			}
			filters.MetodoPago = &metodo
		}
		if filters.Desde, err = validators.ParseQueryDate(r, "desde"); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if filters.Hasta, err = validators.ParseQueryDate(r, "hasta"); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		params := pagination.Params{
			Limit:  limit,
			Cursor: strings.TrimSpace(r.URL.Query().Get("cursor")),
		}

		list, err := svc.List(r.Context(), params, filters)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		resp := ventaListResponse{Ventas: list.Ventas}
		if list.NextCursor != nil {
			cursor := pagination.EncodeCursor(*list.NextCursor)
			resp.NextCursor = &cursor
		}
		responses.WriteSuccess(w, resp)
	}
}
