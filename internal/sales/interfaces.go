package sales

import (
	"context"

	"gorm.io/gorm"

	"github.com/CardonaSantos/gustito-pos/pkg/db/models"
	"github.com/CardonaSantos/gustito-pos/pkg/pagination"
)

// Repository defines persistence operations for sales.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, venta *models.Venta) (*models.Venta, error)
	FindByID(ctx context.Context, id int64) (*models.Venta, error)
	List(ctx context.Context, params pagination.Params, filters Filters) (*VentaList, error)
	DeductStock(ctx context.Context, productoID, sucursalID int64, cantidad int) error
}
