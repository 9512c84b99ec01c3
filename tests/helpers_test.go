package tests

import (
	"context"
	"math/rand"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/davielsant/santalla-core/internal/model"
	"github.com/davielsant/santalla-core/internal/repository"
	"github.com/davielsant/santalla-core/internal/service"
	"github.com/davielsant/santalla-core/internal/store"
)

// env bundles a memory-backed store with every service wired the way the
// router wires them.
type env struct {
	st       *store.MemoryStore
	catalogo service.CatalogoService
	ajustes  service.AjustesService
	caja     service.CajaService
	ventas   service.VentaService
	reportes service.ReporteService

	productoRepo     repository.ProductoRepository
	ajustesRepo      repository.AjustesRepository
	estadisticasRepo repository.EstadisticasRepository
	ventaRepo        repository.VentaRepository
}

func newEnv() *env {
	st := store.NewMemoryStore()
	productoRepo := repository.NewProductoRepository(st)
	ajustesRepo := repository.NewAjustesRepository(st)
	estadisticasRepo := repository.NewEstadisticasRepository(st)
	ventaRepo := repository.NewVentaRepository(st)

	catalogo := service.NewCatalogoService(productoRepo)
	ajustes := service.NewAjustesService(ajustesRepo)
	caja := service.NewCajaService(st, estadisticasRepo, ventaRepo)
	ventas := service.NewVentaService(st, ventaRepo, productoRepo, estadisticasRepo)
	reportes := service.NewReporteService(catalogo, caja, ajustes)

	return &env{
		st:               st,
		catalogo:         catalogo,
		ajustes:          ajustes,
		caja:             caja,
		ventas:           ventas,
		reportes:         reportes,
		productoRepo:     productoRepo,
		ajustesRepo:      ajustesRepo,
		estadisticasRepo: estadisticasRepo,
		ventaRepo:        ventaRepo,
	}
}

func (e *env) seeder(demoVentas bool) *service.Seeder {
	rng := rand.New(rand.NewSource(1))
	return service.NewSeeder(e.st, e.productoRepo, e.ajustesRepo, e.estadisticasRepo, e.ventaRepo, rng, demoVentas)
}

// seedProducto writes a product with a fixed id directly through the repo,
// bypassing the service's clock-based id assignment.
func seedProducto(t *testing.T, e *env, id int64, nombre string, precio float64, stock int) model.Producto {
	t.Helper()
	productos, err := e.productoRepo.List(context.Background())
	if err != nil {
		productos = nil
	}
	p := model.Producto{
		ID:        id,
		Nombre:    nombre,
		SKU:       "TST-001",
		Precio:    decimal.NewFromFloat(precio),
		Costo:     decimal.NewFromFloat(precio / 2),
		Stock:     stock,
		Categoria: "Pruebas",
	}
	productos = append(productos, p)
	require.NoError(t, e.productoRepo.Replace(context.Background(), productos))
	return p
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }
