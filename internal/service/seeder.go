package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/davielsant/santalla-core/internal/model"
	"github.com/davielsant/santalla-core/internal/repository"
	"github.com/davielsant/santalla-core/internal/store"
)

// DefaultCatalogo is the catalog a fresh install starts with.
func DefaultCatalogo() []model.Producto {
	return []model.Producto{
		{ID: 1, Nombre: "Coca Cola Original 600ml", SKU: "BEB-001", Precio: decimal.NewFromFloat(18.00), Costo: decimal.NewFromFloat(12.00), Stock: 50, Imagen: "https://images.unsplash.com/photo-1622483767028-3f66f32aef97?auto=format&fit=crop&w=150&q=80", Categoria: "Bebidas", Barcode: "7501055300075"},
		{ID: 2, Nombre: "Agua Mineral Topo Chico", SKU: "BEB-002", Precio: decimal.NewFromFloat(22.00), Costo: decimal.NewFromFloat(15.00), Stock: 8, Imagen: "https://images.unsplash.com/photo-1624517452488-04869289c4ca?auto=format&fit=crop&w=150&q=80", Categoria: "Bebidas", Barcode: "7501055310807"},
		{ID: 3, Nombre: "Papas Sabritas Sal", SKU: "SNK-001", Precio: decimal.NewFromFloat(18.50), Costo: decimal.NewFromFloat(14.00), Stock: 20, Imagen: "https://images.unsplash.com/photo-1566478919030-26174a2912fb?auto=format&fit=crop&w=150&q=80", Categoria: "Snacks", Barcode: "7501011123456"},
		{ID: 4, Nombre: "Gansito Marinela", SKU: "SNK-002", Precio: decimal.NewFromFloat(15.00), Costo: decimal.NewFromFloat(10.00), Stock: 5, Imagen: "https://images.unsplash.com/photo-1630384060421-a4323ce66488?auto=format&fit=crop&w=150&q=80", Categoria: "Snacks", Barcode: "7501000111222"},
		{ID: 5, Nombre: "Cafe Americano 12oz", SKU: "CAF-001", Precio: decimal.NewFromFloat(35.00), Costo: decimal.NewFromFloat(15.00), Stock: 100, Imagen: "https://images.unsplash.com/photo-1559496417-e7f25cb247f3?auto=format&fit=crop&w=150&q=80", Categoria: "Cafetería", Barcode: "CAFE001"},
		{ID: 6, Nombre: "Nike Air Max", SKU: "ZAP-001", Precio: decimal.NewFromFloat(2400.00), Costo: decimal.NewFromFloat(1200.00), Stock: 12, Imagen: "https://images.unsplash.com/photo-1542291026-7eec264c27ff?auto=format&fit=crop&w=150&q=80", Categoria: "Calzado", Barcode: "NIKE001"},
		{ID: 7, Nombre: "Sony WH-1000XM5", SKU: "AUD-001", Precio: decimal.NewFromFloat(6500.00), Costo: decimal.NewFromFloat(4500.00), Stock: 8, Imagen: "https://images.unsplash.com/photo-1618366712010-f4ae9c647dcb?auto=format&fit=crop&w=150&q=80", Categoria: "Electrónica", Barcode: "SONY001"},
	}
}

const (
	ventasSemilla = 150
	diasHistoria  = 180
)

var vendedoresSemilla = []string{"Carlos Ruiz", "Juan Pérez", "Ana Lopez"}

// Seeder bootstraps missing documents at startup. Reads stay pure: no
// accessor ever seeds as a side effect. Running it twice is a no-op for
// every document that already exists.
type Seeder struct {
	st         store.Store
	productos  repository.ProductoRepository
	ajustes    repository.AjustesRepository
	stats      repository.EstadisticasRepository
	ventas     repository.VentaRepository
	rng        *rand.Rand
	demoVentas bool
}

func NewSeeder(
	st store.Store,
	productos repository.ProductoRepository,
	ajustes repository.AjustesRepository,
	stats repository.EstadisticasRepository,
	ventas repository.VentaRepository,
	rng *rand.Rand,
	demoVentas bool,
) *Seeder {
	return &Seeder{
		st:         st,
		productos:  productos,
		ajustes:    ajustes,
		stats:      stats,
		ventas:     ventas,
		rng:        rng,
		demoVentas: demoVentas,
	}
}

// Run ensures every document exists. Synthetic sales history is only
// generated when demoVentas is set; a production install starts with an
// honest empty history instead.
func (s *Seeder) Run(ctx context.Context) error {
	if _, err := s.productos.List(ctx); errors.Is(err, store.ErrKeyNotFound) {
		if err := s.productos.Replace(ctx, DefaultCatalogo()); err != nil {
			return almacenamiento("sembrar catálogo", err)
		}
		log.Info().Int("productos", len(DefaultCatalogo())).Msg("catálogo inicial sembrado")
	} else if err != nil {
		return almacenamiento("leer catálogo", err)
	}

	if _, err := s.ajustes.Get(ctx); errors.Is(err, store.ErrKeyNotFound) {
		if err := s.ajustes.Save(ctx, model.DefaultAjustes()); err != nil {
			return almacenamiento("sembrar ajustes", err)
		}
	} else if err != nil {
		return almacenamiento("leer ajustes", err)
	}

	if _, err := s.stats.Get(ctx); errors.Is(err, store.ErrKeyNotFound) {
		if err := s.stats.Save(ctx, model.DefaultEstadisticas()); err != nil {
			return almacenamiento("sembrar estadisticas", err)
		}
	} else if err != nil {
		return almacenamiento("leer estadisticas", err)
	}

	if !s.demoVentas {
		return nil
	}
	if _, err := s.ventas.List(ctx); err == nil {
		return nil
	} else if !errors.Is(err, store.ErrKeyNotFound) {
		return almacenamiento("leer ventas", err)
	}

	registros := s.generarHistorial()

	// History plus the stats back-fill land together.
	err := s.st.Update(ctx, func(tx store.Tx) error {
		if err := s.ventas.ReplaceTx(tx, registros); err != nil {
			return err
		}
		stats, err := s.stats.GetTx(tx)
		if errors.Is(err, store.ErrKeyNotFound) {
			stats = model.DefaultEstadisticas()
		} else if err != nil {
			return err
		}
		if !stats.VentasTotales.IsZero() {
			return nil
		}
		total := decimal.Zero
		for _, v := range registros {
			total = total.Add(v.Total)
		}
		stats.VentasTotales = total
		stats.TransaccionesCount = len(registros)
		return s.stats.SaveTx(tx, stats)
	})
	if err != nil {
		return almacenamiento("sembrar historial", err)
	}
	log.Info().Int("ventas", len(registros)).Msg("historial de demostración sembrado")
	return nil
}

// generarHistorial fabricates 150 sales over the last 180 days, skewed
// toward recent dates by squaring a uniform draw, sorted newest first.
func (s *Seeder) generarHistorial() []model.Venta {
	catalogo := DefaultCatalogo()
	ahora := time.Now().UTC()
	registros := make([]model.Venta, 0, ventasSemilla)

	estados := []string{
		model.EstadoCompletado, model.EstadoCompletado,
		model.EstadoCompletado, model.EstadoPendiente,
	}

	for i := 0; i < ventasSemilla; i++ {
		u := s.rng.Float64()
		haceDias := int(u * u * diasHistoria)
		fecha := ahora.AddDate(0, 0, -haceDias)

		p := catalogo[s.rng.Intn(len(catalogo))]
		cantidad := s.rng.Intn(4) + 1
		total := p.Precio.Mul(decimal.NewFromInt(int64(cantidad)))

		metodo := model.MetodoEfectivo
		if s.rng.Float64() > 0.5 {
			metodo = model.MetodoTarjeta
		}

		registros = append(registros, model.Venta{
			ID:         fmt.Sprintf("ORD-%d", 1000+i),
			Fecha:      fecha.Format(time.RFC3339),
			Vendedor:   vendedoresSemilla[s.rng.Intn(len(vendedoresSemilla))],
			Estado:     estados[s.rng.Intn(len(estados))],
			MetodoPago: metodo,
			Total:      total,
			Items: []model.VentaItem{{
				ProductoID: p.ID,
				Nombre:     p.Nombre,
				Imagen:     p.Imagen,
				Categoria:  p.Categoria,
				Cantidad:   cantidad,
				Precio:     p.Precio,
				Total:      total,
			}},
		})
	}

	sort.Slice(registros, func(i, j int) bool {
		return registros[i].Fecha > registros[j].Fecha
	})
	return registros
}
