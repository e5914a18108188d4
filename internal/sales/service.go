package sales

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/CardonaSantos/gustito-pos/internal/cart"
	"github.com/CardonaSantos/gustito-pos/internal/pricing"
	"github.com/CardonaSantos/gustito-pos/pkg/db/models"
	pkgerrors "github.com/CardonaSantos/gustito-pos/pkg/errors"
	"github.com/CardonaSantos/gustito-pos/pkg/logger"
	"github.com/CardonaSantos/gustito-pos/pkg/metrics"
	"github.com/CardonaSantos/gustito-pos/pkg/pagination"
)

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// ProductLoader resolves the catalog rows a sale references, scoped to
// the selling branch so stock reflects what the register can actually move.
type ProductLoader interface {
	FindForSale(ctx context.Context, sucursalID int64, ids []int64) ([]models.Producto, error)
}

// Service defines register-side sale operations.
type Service interface {
	Registrar(ctx context.Context, input RegistrarInput) (*models.Venta, error)
	FindByID(ctx context.Context, id int64) (*models.Venta, error)
	List(ctx context.Context, params pagination.Params, filters Filters) (*VentaList, error)
}

type service struct {
	repo      Repository
	productos ProductLoader
	tx        txRunner
	assembler Assembler
	metrics   *metrics.SalesMetrics
	log       *logger.Logger
}

// NewService builds a sales service with the required dependencies.
func NewService(repo Repository, productos ProductLoader, tx txRunner, assembler Assembler, salesMetrics *metrics.SalesMetrics, log *logger.Logger) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("sales repository required")
	}
	if productos == nil {
		return nil, fmt.Errorf("product loader required")
	}
	if tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &service{
		repo:      repo,
		productos: productos,
		tx:        tx,
		assembler: assembler,
		metrics:   salesMetrics,
		log:       log,
	}, nil
}

// Registrar rebuilds the submitted cart through the reducers, validates it,
// and persists the Venta with its lines, packaging and stock deductions in
// one transaction.
func (s *service) Registrar(ctx context.Context, input RegistrarInput) (*models.Venta, error) {
	builtCart, err := s.rebuildCart(ctx, input)
	if err != nil {
		return nil, err
	}

	packaging := make([]cart.Selection, 0, len(input.Empaques))
	for _, emp := range input.Empaques {
		packaging = cart.SetSelection(packaging, emp.EmpaqueID, emp.Cantidad)
	}

	venta, err := s.assembler.Build(BuildInput{
		SucursalID: input.SucursalID,
		UsuarioID:  input.UsuarioID,
		MetodoPago: input.MetodoPago,
		Cart:       builtCart,
		Packaging:  packaging,
		Customer: CustomerInfo{
			ClienteID: input.ClienteID,
			Nombre:    input.NombreCliente,
			Telefono:  input.TelefonoCliente,
			Direccion: input.DireccionCliente,
			DPI:       input.DPICliente,
		},
		IMEI:       input.IMEI,
		FechaVenta: time.Now().UTC(),
	})
	if err != nil {
		var vErr *ValidationError
		if errors.As(err, &vErr) {
			s.metrics.IncRejected(string(vErr.Kind))
			return nil, pkgerrors.New(pkgerrors.CodeValidation, vErr.Message).
				WithDetails(map[string]string{"motivo": string(vErr.Kind)})
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "assemble venta")
	}

	err = s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		for _, linea := range venta.Lineas {
			if err := repo.DeductStock(ctx, linea.ProductoID, venta.SucursalID, linea.Cantidad); err != nil {
				return err
			}
		}
		if _, err := repo.Create(ctx, venta); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "persist venta")
		}
		return nil
	})
	if err != nil {
		if pkgerrors.As(err) != nil && pkgerrors.As(err).Code() == pkgerrors.CodeConflict {
			s.metrics.IncRejected("stock_insuficiente")
		}
		return nil, err
	}

	s.metrics.IncRegistered(string(venta.MetodoPago))
	s.log.Info(s.log.WithFields(ctx, map[string]any{
		"venta_id":    venta.ID,
		"sucursal_id": venta.SucursalID,
		"total":       venta.TotalVenta.String(),
		"metodo_pago": string(venta.MetodoPago),
	}), "venta registrada")

	return venta, nil
}

// rebuildCart replays the submission through the cart reducers against the
// current catalog, so tier linkage and totals are derived server-side rather
// than trusted from the register.
func (s *service) rebuildCart(ctx context.Context, input RegistrarInput) (cart.Cart, error) {
	if len(input.Lineas) == 0 {
		return cart.Cart{}, pkgerrors.New(pkgerrors.CodeValidation, "la venta no tiene productos")
	}

	ids := make([]int64, 0, len(input.Lineas))
	seen := make(map[int64]bool, len(input.Lineas))
	for _, linea := range input.Lineas {
		if linea.Cantidad <= 0 {
			return cart.Cart{}, pkgerrors.New(pkgerrors.CodeValidation, "cantidad debe ser mayor a cero")
		}
		if seen[linea.ProductoID] {
			return cart.Cart{}, pkgerrors.New(pkgerrors.CodeValidation, "producto repetido en la venta")
		}
		seen[linea.ProductoID] = true
		ids = append(ids, linea.ProductoID)
	}

	productos, err := s.productos.FindForSale(ctx, input.SucursalID, ids)
	if err != nil {
		return cart.Cart{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load productos")
	}
	byID := make(map[int64]models.Producto, len(productos))
	for _, producto := range productos {
		byID[producto.ID] = producto
	}

	built := cart.Cart{}
	for _, linea := range input.Lineas {
		producto, ok := byID[linea.ProductoID]
		if !ok {
			return cart.Cart{}, pkgerrors.New(pkgerrors.CodeNotFound, "producto no encontrado").
				WithDetails(map[string]int64{"productoId": linea.ProductoID})
		}
		built = cart.Add(built, cartItem(producto))
		built = cart.SetQuantity(built, producto.ID, linea.Cantidad)
		built = cart.SetPrice(built, producto.ID, linea.PrecioVenta)
	}
	return built, nil
}

func cartItem(producto models.Producto) cart.Item {
	tiers := make([]pricing.Tier, 0, len(producto.Precios))
	for _, precio := range producto.Precios {
		tiers = append(tiers, pricing.Tier{
			ID:     precio.ID,
			Precio: precio.Precio,
			Orden:  precio.Orden,
		})
	}
	return cart.Item{
		ID:         producto.ID,
		Nombre:     producto.Nombre,
		Tiers:      pricing.Selectable(tiers),
		StockTotal: producto.StockTotal(),
	}
}

func (s *service) FindByID(ctx context.Context, id int64) (*models.Venta, error) {
	if id <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "venta id required")
	}
	venta, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "venta no encontrada")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load venta")
	}
	return venta, nil
}

func (s *service) List(ctx context.Context, params pagination.Params, filters Filters) (*VentaList, error) {
	if filters.SucursalID <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "sucursal id required")
	}
	if filters.MetodoPago != nil && !filters.MetodoPago.IsValid() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "metodo de pago no reconocido")
	}
	list, err := s.repo.List(ctx, params, filters)
	if err != nil {
		if pkgErr := pkgerrors.As(err); pkgErr != nil {
			return nil, pkgErr
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list ventas")
	}
	return list, nil
}
