package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/CardonaSantos/gustito-pos/internal/pricing"
	"github.com/CardonaSantos/gustito-pos/pkg/db/models"
	pkgerrors "github.com/CardonaSantos/gustito-pos/pkg/errors"
)

// Service defines catalog operations for the register and back office.
type Service interface {
	ListForSucursal(ctx context.Context, sucursalID int64, filters ListFilters) ([]ProductoView, error)
	FindForSale(ctx context.Context, sucursalID int64, ids []int64) ([]models.Producto, error)
	Crear(ctx context.Context, input CrearProductoInput) (*models.Producto, error)
}

type service struct {
	repo Repository
}

// NewService builds a catalog service.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("catalog repository required")
	}
	return &service{repo: repo}, nil
}

// ListForSucursal shapes the catalog for one branch's register: each product
// carries its default price, the ordered dropdown of selectable tiers, and
// the stock available at that branch.
func (s *service) ListForSucursal(ctx context.Context, sucursalID int64, filters ListFilters) ([]ProductoView, error) {
	if sucursalID <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "sucursal id required")
	}

	productos, err := s.repo.ListActive(ctx, filters)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list productos")
	}

	views := make([]ProductoView, 0, len(productos))
	for _, producto := range productos {
		views = append(views, buildView(producto, sucursalID))
	}
	return views, nil
}

func buildView(producto models.Producto, sucursalID int64) ProductoView {
	tiers := make([]pricing.Tier, 0, len(producto.Precios))
	for _, precio := range producto.Precios {
		tiers = append(tiers, pricing.Tier{ID: precio.ID, Precio: precio.Precio, Orden: precio.Orden})
	}

	sel := pricing.SelectBase(tiers)
	dropdown := pricing.SortTiers(pricing.Selectable(tiers))
	precios := make([]PrecioView, 0, len(dropdown))
	for _, tier := range dropdown {
		precios = append(precios, PrecioView{ID: tier.ID, Precio: tier.Precio, Orden: tier.Orden})
	}

	stockSucursal := 0
	for _, entry := range producto.Stock {
		if entry.SucursalID == sucursalID {
			stockSucursal = entry.Cantidad
			break
		}
	}

	return ProductoView{
		ID:            producto.ID,
		Nombre:        producto.Nombre,
		Codigo:        producto.Codigo,
		Descripcion:   producto.Descripcion,
		Categorias:    producto.Categorias,
		PrecioID:      sel.TierID,
		Precio:        sel.Precio,
		Precios:       precios,
		StockSucursal: stockSucursal,
		StockTotal:    producto.StockTotal(),
	}
}

// FindForSale resolves the products referenced by a sale submission. The
// sucursal id is accepted for symmetry with the register call but stock
// enforcement happens at deduction time.
func (s *service) FindForSale(ctx context.Context, sucursalID int64, ids []int64) ([]models.Producto, error) {
	productos, err := s.repo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	return productos, nil
}

func (s *service) Crear(ctx context.Context, input CrearProductoInput) (*models.Producto, error) {
	codigo := strings.TrimSpace(input.Codigo)
	if codigo == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "codigo required")
	}
	for _, precio := range input.Precios {
		if !precio.Precio.IsPositive() {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "precio debe ser mayor a cero")
		}
	}

	producto := &models.Producto{
		Nombre:      strings.TrimSpace(input.Nombre),
		Codigo:      codigo,
		Descripcion: input.Descripcion,
		Categorias:  input.Categorias,
		Activo:      true,
	}
	for _, precio := range input.Precios {
		producto.Precios = append(producto.Precios, models.PrecioProducto{
			Precio: precio.Precio,
			Orden:  precio.Orden,
		})
	}

	created, err := s.repo.CreateProducto(ctx, producto)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "codigo ya registrado")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create producto")
	}
	return created, nil
}
