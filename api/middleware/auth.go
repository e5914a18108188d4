package middleware

import (
	"net/http"
	"strings"

	"github.com/CardonaSantos/gustito-pos/api/responses"
	pkgauth "github.com/CardonaSantos/gustito-pos/pkg/auth"
	"github.com/CardonaSantos/gustito-pos/pkg/config"
	pkgerrors "github.com/CardonaSantos/gustito-pos/pkg/errors"
	"github.com/CardonaSantos/gustito-pos/pkg/logger"
)

// Auth validates a bearer token and seeds the request context with the claims.
func Auth(cfg config.JWTConfig, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := strings.TrimSpace(r.Header.Get("Authorization"))
			if raw == "" {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials"))
				return
			}

			token := raw
			if strings.HasPrefix(strings.ToLower(token), "bearer ") {
				token = strings.TrimSpace(token[7:])
			}
			if token == "" {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials"))
				return
			}

			claims, err := pkgauth.ParseAccessToken(cfg, token)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeUnauthorized, err, "invalid token"))
				return
			}

			ctx := WithUsuarioID(r.Context(), claims.UsuarioID)
			ctx = WithSucursalID(ctx, claims.SucursalID)
			ctx = WithRol(ctx, string(claims.Rol))

			if logg != nil {
				ctx = logg.WithFields(ctx, map[string]any{
					"usuario_id":  formatID(claims.UsuarioID),
					"sucursal_id": formatID(claims.SucursalID),
					"rol":         string(claims.Rol),
				})
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
