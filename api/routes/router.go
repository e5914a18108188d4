package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/CardonaSantos/gustito-pos/api/controllers"
	"github.com/CardonaSantos/gustito-pos/api/middleware"
	"github.com/CardonaSantos/gustito-pos/internal/catalog"
	"github.com/CardonaSantos/gustito-pos/internal/customers"
	"github.com/CardonaSantos/gustito-pos/internal/packaging"
	"github.com/CardonaSantos/gustito-pos/internal/pricerequests"
	"github.com/CardonaSantos/gustito-pos/internal/registers"
	"github.com/CardonaSantos/gustito-pos/internal/sales"
	"github.com/CardonaSantos/gustito-pos/internal/users"
	"github.com/CardonaSantos/gustito-pos/pkg/config"
	"github.com/CardonaSantos/gustito-pos/pkg/enums"
	"github.com/CardonaSantos/gustito-pos/pkg/logger"
	"github.com/CardonaSantos/gustito-pos/pkg/metrics"
	pkgredis "github.com/CardonaSantos/gustito-pos/pkg/redis"
)

type Deps struct {
	Config       *config.Config
	Logger       *logger.Logger
	DBPinger     controllers.Pinger
	RedisPinger  controllers.Pinger
	Idempotency  pkgredis.IdempotencyStore
	HTTPMetrics  *metrics.HTTPMetrics
	PromRegistry *prometheus.Registry

	Users         users.Service
	Catalog       catalog.Service
	Packaging     packaging.Service
	Customers     customers.Service
	Sales         sales.Service
	PriceRequests pricerequests.Service
	Registers     registers.Service
}

func NewRouter(deps Deps) http.Handler {
	cfg := deps.Config
	logg := deps.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
		middleware.Metrics(deps.HTTPMetrics),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, map[string]controllers.Pinger{
			"db":    deps.DBPinger,
			"redis": deps.RedisPinger,
		}))
	})

	if deps.PromRegistry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(deps.PromRegistry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1/auth", func(r chi.Router) {
		r.Post("/login", controllers.AuthLogin(deps.Users, logg))
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, logg))
		r.Use(middleware.Idempotency(deps.Idempotency, logg))

		r.Route("/venta", func(r chi.Router) {
			r.Post("/", controllers.RegisterVenta(deps.Sales, logg))
			r.Get("/", controllers.ListVentas(deps.Sales, logg))
			r.Get("/{ventaId}", controllers.GetVenta(deps.Sales, logg))
		})

		r.Route("/products", func(r chi.Router) {
			r.Get("/sucursal/{sucursalId}", controllers.ListProductsForSucursal(deps.Catalog, logg))
			r.With(middleware.RequireRole(enums.RolAdmin.String(), logg)).
				Post("/", controllers.CreateProduct(deps.Catalog, logg))
		})

		r.Route("/empaque", func(r chi.Router) {
			r.Get("/", controllers.ListEmpaques(deps.Packaging, logg))
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireRole(enums.RolAdmin.String(), logg))
				r.Post("/", controllers.CreateEmpaque(deps.Packaging, logg))
				r.Delete("/{empaqueId}", controllers.DeactivateEmpaque(deps.Packaging, logg))
			})
		})

		r.Route("/clientes", func(r chi.Router) {
			r.Get("/", controllers.ListClientes(deps.Customers, logg))
			r.Post("/", controllers.CreateCliente(deps.Customers, logg))
			r.Get("/{clienteId}", controllers.GetCliente(deps.Customers, logg))
		})

		r.Route("/price-request", func(r chi.Router) {
			r.Post("/", controllers.CreatePriceRequest(deps.PriceRequests, logg))
			r.Get("/", controllers.ListPriceRequests(deps.PriceRequests, logg))
			r.With(middleware.RequireRole(enums.RolAdmin.String(), logg)).
				Post("/{solicitudId}/decision", controllers.DecidePriceRequest(deps.PriceRequests, logg))
		})

		r.Route("/registro-caja", func(r chi.Router) {
			r.Post("/", controllers.OpenRegistro(deps.Registers, logg))
			r.Get("/abierto", controllers.GetRegistroAbierto(deps.Registers, logg))
			r.Post("/{registroId}/cierre", controllers.CloseRegistro(deps.Registers, logg))
		})

		r.Route("/usuarios", func(r chi.Router) {
			r.Use(middleware.RequireRole(enums.RolAdmin.String(), logg))
			r.Get("/", controllers.ListUsuarios(deps.Users, logg))
			r.Post("/", controllers.CreateUsuario(deps.Users, logg))
		})
	})

	return r
}
