package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/CardonaSantos/gustito-pos/api/responses"
	"github.com/CardonaSantos/gustito-pos/api/validators"
	"github.com/CardonaSantos/gustito-pos/internal/catalog"
	"github.com/CardonaSantos/gustito-pos/pkg/logger"
)

// ListProductsForSucursal returns the catalog shaped for one branch's
// register screen.
func ListProductsForSucursal(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sucursalID, err := validators.ParsePathID(chi.URLParam(r, "sucursalId"), "sucursalId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		filters := catalog.ListFilters{
			Buscar:    strings.TrimSpace(r.URL.Query().Get("buscar")),
			Categoria: strings.TrimSpace(r.URL.Query().Get("categoria")),
		}

		views, err := svc.ListForSucursal(r.Context(), sucursalID, filters)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, views)
	}
}

// CreateProduct registers a catalog item with its initial price tiers.
func CreateProduct(svc catalog.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input catalog.CrearProductoInput
		if err := validators.DecodeJSONBody(r, &input); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		producto, err := svc.Crear(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, producto)
	}
}
