package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/davielsant/santalla-core/internal/dto"
	"github.com/davielsant/santalla-core/internal/model"
	"github.com/davielsant/santalla-core/internal/repository"
	"github.com/davielsant/santalla-core/internal/store"
)

// tasaIVA is the sales-tax rate applied when the caller does not supply a
// precomputed total.
var tasaIVA = decimal.NewFromFloat(0.16)

// vendedorPorDefecto stands in until a real session layer exists; the
// checkout endpoint lets callers override it per request.
const vendedorPorDefecto = "Carlos Ruiz"

// VentaService owns the sales history and the one multi-entity write of the
// system: processing a checkout.
type VentaService interface {
	// Listar returns the history most-recent-first. It is a pure read;
	// demo-data seeding happens at startup, never here.
	Listar(ctx context.Context) ([]model.Venta, error)
	// VaciarHistorial empties the history and deliberately leaves the
	// register counters alone (see CajaService.ResetearCaja).
	VaciarHistorial(ctx context.Context) error
	// Procesar decrements stock, appends one sale record and updates the
	// register counters as a single atomic unit: either all of it lands or
	// none of it does.
	Procesar(ctx context.Context, req dto.CheckoutRequest) (*dto.CheckoutResponse, error)
}

type ventaService struct {
	st        store.Store
	repo      repository.VentaRepository
	productos repository.ProductoRepository
	stats     repository.EstadisticasRepository
}

func NewVentaService(
	st store.Store,
	repo repository.VentaRepository,
	productos repository.ProductoRepository,
	stats repository.EstadisticasRepository,
) VentaService {
	return &ventaService{st: st, repo: repo, productos: productos, stats: stats}
}

func (s *ventaService) Listar(ctx context.Context) ([]model.Venta, error) {
	ventas, err := s.repo.List(ctx)
	if errors.Is(err, store.ErrKeyNotFound) {
		return []model.Venta{}, nil
	}
	if err != nil {
		return nil, almacenamiento("listar ventas", err)
	}
	if ventas == nil {
		ventas = []model.Venta{}
	}
	return ventas, nil
}

func (s *ventaService) VaciarHistorial(ctx context.Context) error {
	if err := s.repo.Replace(ctx, []model.Venta{}); err != nil {
		return almacenamiento("vaciar historial", err)
	}
	return nil
}

// ── Procesar ─────────────────────────────────────────────────────────────────
// One transaction, in order:
//  1. decrement each line's stock, floored at zero
//  2. persist the catalog
//  3. build the sale record from line snapshots (status Completado)
//  4. prepend it to the history
//  5. propina = max(0, pagado − total)
//  6. caja += total, propinas += propina, ventas totales += total, count += 1

func (s *ventaService) Procesar(ctx context.Context, req dto.CheckoutRequest) (*dto.CheckoutResponse, error) {
	if len(req.Items) == 0 {
		return nil, validacion("el carrito está vacío")
	}
	vendedor := req.Vendedor
	if vendedor == "" {
		vendedor = vendedorPorDefecto
	}
	metodo := req.MetodoPago
	if metodo == "" {
		metodo = model.MetodoEfectivo
	}
	if metodo != model.MetodoEfectivo && metodo != model.MetodoTarjeta {
		return nil, validacion("método de pago desconocido: %s", metodo)
	}

	var (
		venta   model.Venta
		propina decimal.Decimal
	)
	err := s.st.Update(ctx, func(tx store.Tx) error {
		productos, err := s.productos.ListTx(tx)
		if err != nil && !errors.Is(err, store.ErrKeyNotFound) {
			return err
		}
		porID := make(map[int64]int, len(productos))
		for i, p := range productos {
			porID[p.ID] = i
		}

		// Snapshot each line from the live catalog so the record keeps the
		// price, name and image as they were at sale time.
		items := make([]model.VentaItem, 0, len(req.Items))
		subtotal := decimal.Zero
		for _, linea := range req.Items {
			idx, ok := porID[linea.ProductoID]
			if !ok {
				return validacion("producto %d no existe en el catálogo", linea.ProductoID)
			}
			if linea.Cantidad < 1 {
				return validacion("cantidad inválida para el producto %d", linea.ProductoID)
			}
			p := &productos[idx]
			lineaTotal := p.Precio.Mul(decimal.NewFromInt(int64(linea.Cantidad)))
			items = append(items, model.VentaItem{
				ProductoID: p.ID,
				Nombre:     p.Nombre,
				Imagen:     p.Imagen,
				Categoria:  p.Categoria,
				Cantidad:   linea.Cantidad,
				Precio:     p.Precio,
				Total:      lineaTotal,
			})
			subtotal = subtotal.Add(lineaTotal)

			// Floor at zero: the selling surface enforces stock limits at
			// add-to-cart time, this guard keeps the invariant if it didn't.
			p.Stock -= linea.Cantidad
			if p.Stock < 0 {
				p.Stock = 0
			}
		}

		total := subtotal.Add(subtotal.Mul(tasaIVA)).Round(2)
		if req.Total != nil {
			total = *req.Total
		}
		if req.MontoPagado.LessThan(total) {
			return validacion("el monto pagado es insuficiente")
		}

		if err := s.productos.ReplaceTx(tx, productos); err != nil {
			return err
		}

		ventas, err := s.repo.ListTx(tx)
		if err != nil && !errors.Is(err, store.ErrKeyNotFound) {
			return err
		}
		venta = model.Venta{
			ID:         nuevaVentaID(ventas),
			Fecha:      time.Now().UTC().Format(time.RFC3339),
			Items:      items,
			Total:      total,
			Vendedor:   vendedor,
			Estado:     model.EstadoCompletado,
			MetodoPago: metodo,
		}
		ventas = append([]model.Venta{venta}, ventas...)
		if err := s.repo.ReplaceTx(tx, ventas); err != nil {
			return err
		}

		stats, err := s.stats.GetTx(tx)
		if errors.Is(err, store.ErrKeyNotFound) {
			stats = model.DefaultEstadisticas()
		} else if err != nil {
			return err
		}
		propina = req.MontoPagado.Sub(total)
		if propina.IsNegative() {
			propina = decimal.Zero
		}
		stats.CajaActual = stats.CajaActual.Add(total)
		stats.Propinas = stats.Propinas.Add(propina)
		stats.VentasTotales = stats.VentasTotales.Add(total)
		stats.TransaccionesCount++
		return s.stats.SaveTx(tx, stats)
	})
	if err != nil {
		if errors.Is(err, ErrValidacion) {
			return nil, err
		}
		return nil, almacenamiento("procesar venta", err)
	}

	return &dto.CheckoutResponse{Propina: propina, Venta: venta}, nil
}

// nuevaVentaID derives an order id from the millisecond clock, falling back
// to a UUID fragment when two sales land in the same millisecond.
func nuevaVentaID(existentes []model.Venta) string {
	ms := fmt.Sprintf("%d", time.Now().UnixMilli())
	id := "ORD-" + ms[len(ms)-6:]
	for _, v := range existentes {
		if v.ID == id {
			return "ORD-" + uuid.NewString()[:8]
		}
	}
	return id
}
