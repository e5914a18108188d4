package catalog

import (
	"context"

	"gorm.io/gorm"

	"github.com/CardonaSantos/gustito-pos/pkg/db/models"
)

type repository struct {
	db *gorm.DB
}

// NewRepository builds a catalog repository bound to the provided DB.
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{db: tx}
}

func (r *repository) ListActive(ctx context.Context, filters ListFilters) ([]models.Producto, error) {
	query := r.db.WithContext(ctx).Model(&models.Producto{}).
		Where("activo = ?", true)
	if filters.Buscar != "" {
		pattern := "%" + filters.Buscar + "%"
		query = query.Where("nombre LIKE ? OR codigo LIKE ?", pattern, pattern)
	}
	if filters.Categoria != "" {
		query = query.Where("? = ANY(categorias)", filters.Categoria)
	}

	var productos []models.Producto
	err := query.
		Preload("Precios", func(db *gorm.DB) *gorm.DB {
			return db.Order("precio_productos.id ASC")
		}).
		Preload("Stock").
		Order("nombre ASC").
		Find(&productos).Error
	if err != nil {
		return nil, err
	}
	return productos, nil
}

func (r *repository) FindByIDs(ctx context.Context, ids []int64) ([]models.Producto, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var productos []models.Producto
	err := r.db.WithContext(ctx).
		Preload("Precios").
		Preload("Stock").
		Where("id IN ? AND activo = ?", ids, true).
		Find(&productos).Error
	if err != nil {
		return nil, err
	}
	return productos, nil
}

func (r *repository) FindByID(ctx context.Context, id int64) (*models.Producto, error) {
	var producto models.Producto
	err := r.db.WithContext(ctx).
		Preload("Precios").
		Preload("Stock").
		Where("id = ?", id).
		First(&producto).Error
	if err != nil {
		return nil, err
	}
	return &producto, nil
}

func (r *repository) CreateProducto(ctx context.Context, producto *models.Producto) (*models.Producto, error) {
	if err := r.db.WithContext(ctx).Create(producto).Error; err != nil {
		return nil, err
	}
	return producto, nil
}

func (r *repository) UpdateProducto(ctx context.Context, id int64, updates map[string]any) error {
	return r.db.WithContext(ctx).
		Model(&models.Producto{}).
		Where("id = ?", id).
		Updates(updates).Error
}

// ReplacePrecios swaps the full tier set of a product in one shot. Sale
// lines reference tiers by id, so rows are deleted rather than updated to
// keep historical precio ids from silently changing meaning.
func (r *repository) ReplacePrecios(ctx context.Context, productoID int64, precios []models.PrecioProducto) error {
	err := r.db.WithContext(ctx).
		Where("producto_id = ?", productoID).
		Delete(&models.PrecioProducto{}).Error
	if err != nil {
		return err
	}
	if len(precios) == 0 {
		return nil
	}
	for i := range precios {
		precios[i].ProductoID = productoID
	}
	return r.db.WithContext(ctx).Create(&precios).Error
}

func (r *repository) UpsertStock(ctx context.Context, productoID, sucursalID int64, cantidad int) error {
	result := r.db.WithContext(ctx).
		Model(&models.Stock{}).
		Where("producto_id = ? AND sucursal_id = ?", productoID, sucursalID).
		UpdateColumn("cantidad", cantidad)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected > 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&models.Stock{
		ProductoID: productoID,
		SucursalID: sucursalID,
		Cantidad:   cantidad,
	}).Error
}
