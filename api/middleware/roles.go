package middleware

import (
	"net/http"

	"github.com/CardonaSantos/gustito-pos/api/responses"
	pkgerrors "github.com/CardonaSantos/gustito-pos/pkg/errors"
	"github.com/CardonaSantos/gustito-pos/pkg/logger"
)

func RequireRole(rol string, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if RolFromContext(r.Context()) != rol {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeForbidden, "rol required"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
