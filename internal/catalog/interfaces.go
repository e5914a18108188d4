package catalog

import (
	"context"

	"gorm.io/gorm"

	"github.com/CardonaSantos/gustito-pos/pkg/db/models"
)

// Repository defines persistence operations for the product catalog.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	ListActive(ctx context.Context, filters ListFilters) ([]models.Producto, error)
	FindByIDs(ctx context.Context, ids []int64) ([]models.Producto, error)
	FindByID(ctx context.Context, id int64) (*models.Producto, error)
	CreateProducto(ctx context.Context, producto *models.Producto) (*models.Producto, error)
	UpdateProducto(ctx context.Context, id int64, updates map[string]any) error
	ReplacePrecios(ctx context.Context, productoID int64, precios []models.PrecioProducto) error
	UpsertStock(ctx context.Context, productoID, sucursalID int64, cantidad int) error
}
