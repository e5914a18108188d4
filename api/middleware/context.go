package middleware

import (
	"context"
	"strconv"
)

type contextKey string

const (
	ctxUsuarioID  contextKey = "usuario_id"
	ctxRol        contextKey = "rol"
	ctxSucursalID contextKey = "sucursal_id"
)

func UsuarioIDFromContext(ctx context.Context) int64 {
	if ctx == nil {
		return 0
	}
	if v, ok := ctx.Value(ctxUsuarioID).(int64); ok {
		return v
	}
	return 0
}

func RolFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if v, ok := ctx.Value(ctxRol).(string); ok {
		return v
	}
	return ""
}

func SucursalIDFromContext(ctx context.Context) int64 {
	if ctx == nil {
		return 0
	}
	if v, ok := ctx.Value(ctxSucursalID).(int64); ok {
		return v
	}
	return 0
}

// WithUsuarioID injects the operator identifier into the context.
func WithUsuarioID(ctx context.Context, usuarioID int64) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, ctxUsuarioID, usuarioID)
}

// WithSucursalID injects the branch identifier into the context.
func WithSucursalID(ctx context.Context, sucursalID int64) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, ctxSucursalID, sucursalID)
}

// WithRol injects the operator role into the context.
func WithRol(ctx context.Context, rol string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, ctxRol, rol)
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}
