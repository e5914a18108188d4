package users

import (
	"context"

	"github.com/CardonaSantos/gustito-pos/pkg/db/models"
)

// Repository defines persistence operations for register operators.
type Repository interface {
	FindByCorreo(ctx context.Context, correo string) (*models.Usuario, error)
	FindByID(ctx context.Context, id int64) (*models.Usuario, error)
	Create(ctx context.Context, usuario *models.Usuario) (*models.Usuario, error)
	List(ctx context.Context, sucursalID int64) ([]models.Usuario, error)
}
