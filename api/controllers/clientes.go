package controllers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/CardonaSantos/gustito-pos/api/responses"
	"github.com/CardonaSantos/gustito-pos/api/validators"
	"github.com/CardonaSantos/gustito-pos/internal/customers"
	"github.com/CardonaSantos/gustito-pos/pkg/logger"
)

// ListClientes returns the customer directory, optionally filtered.
func ListClientes(svc customers.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		clientes, err := svc.List(r.Context(), strings.TrimSpace(r.URL.Query().Get("buscar")))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, clientes)
	}
}

// GetCliente returns a single customer.
func GetCliente(svc customers.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParsePathID(chi.URLParam(r, "clienteId"), "clienteId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		cliente, err := svc.FindByID(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, cliente)
	}
}

// CreateCliente registers a customer.
func CreateCliente(svc customers.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input customers.CrearClienteInput
		if err := validators.DecodeJSONBody(r, &input); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		cliente, err := svc.Crear(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, cliente)
	}
}
