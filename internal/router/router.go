package router

import (
	"math/rand"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/davielsant/santalla-core/internal/config"
	"github.com/davielsant/santalla-core/internal/handler"
	"github.com/davielsant/santalla-core/internal/middleware"
	"github.com/davielsant/santalla-core/internal/repository"
	"github.com/davielsant/santalla-core/internal/service"
	"github.com/davielsant/santalla-core/internal/store"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← Store
func New(cfg *config.Config, st store.Store) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(cfg.RateLimitPerMin, time.Minute))

	// ── Repositories ─────────────────────────────────────────────────────────
	productoRepo := repository.NewProductoRepository(st)
	ajustesRepo := repository.NewAjustesRepository(st)
	estadisticasRepo := repository.NewEstadisticasRepository(st)
	ventaRepo := repository.NewVentaRepository(st)

	// ── Services ─────────────────────────────────────────────────────────────
	catalogoSvc := service.NewCatalogoService(productoRepo)
	ajustesSvc := service.NewAjustesService(ajustesRepo)
	cajaSvc := service.NewCajaService(st, estadisticasRepo, ventaRepo)
	ventaSvc := service.NewVentaService(st, ventaRepo, productoRepo, estadisticasRepo)
	reporteSvc := service.NewReporteService(catalogoSvc, cajaSvc, ajustesSvc)

	// ── Handlers ─────────────────────────────────────────────────────────────
	productosH := handler.NewProductosHandler(catalogoSvc)
	ajustesH := handler.NewAjustesHandler(ajustesSvc)
	cajaH := handler.NewCajaHandler(cajaSvc)
	ventasH := handler.NewVentasHandler(ventaSvc)
	reportesH := handler.NewReportesHandler(reporteSvc)

	// ── Routes ───────────────────────────────────────────────────────────────
	r.GET("/health", handler.Health(st))

	api := r.Group("/api")
	{
		api.GET("/productos", productosH.Listar)
		api.POST("/productos", productosH.Crear)
		api.DELETE("/productos/:id", productosH.Eliminar)
		api.DELETE("/productos", productosH.Vaciar)

		api.GET("/ajustes", ajustesH.Obtener)
		api.PUT("/ajustes", ajustesH.Guardar)

		api.GET("/caja/estadisticas", cajaH.Estadisticas)
		api.POST("/caja/repartir-propinas", cajaH.RepartirPropinas)
		api.POST("/caja/reset", cajaH.Resetear)

		api.GET("/ventas", ventasH.Listar)
		api.DELETE("/ventas", ventasH.Vaciar)
		api.POST("/ventas/checkout", ventasH.Checkout)

		api.GET("/reportes/dashboard", reportesH.Dashboard)
	}

	return r
}

// NewSeeder builds the startup bootstrapper with the same repositories the
// router wires, so main can run it before serving.
func NewSeeder(cfg *config.Config, st store.Store) *service.Seeder {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	return service.NewSeeder(
		st,
		repository.NewProductoRepository(st),
		repository.NewAjustesRepository(st),
		repository.NewEstadisticasRepository(st),
		repository.NewVentaRepository(st),
		rng,
		cfg.SeedDemoData,
	)
}
