package service

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/davielsant/santalla-core/internal/dto"
	"github.com/davielsant/santalla-core/internal/model"
)

// stockBajoUmbral marks products the dashboard flags for replenishment.
const stockBajoUmbral = 10

// ReporteService produces the read-only aggregates behind the dashboard and
// inventory summaries. It consumes the other services' accessors and never
// writes back into the store.
type ReporteService interface {
	Dashboard(ctx context.Context) (*dto.DashboardResponse, error)
}

type reporteService struct {
	catalogo CatalogoService
	caja     CajaService
	ajustes  AjustesService
}

func NewReporteService(catalogo CatalogoService, caja CajaService, ajustes AjustesService) ReporteService {
	return &reporteService{catalogo: catalogo, caja: caja, ajustes: ajustes}
}

func (s *reporteService) Dashboard(ctx context.Context) (*dto.DashboardResponse, error) {
	productos, err := s.catalogo.Listar(ctx)
	if err != nil {
		return nil, err
	}
	stats, err := s.caja.Obtener(ctx)
	if err != nil {
		return nil, err
	}
	ajustes, err := s.ajustes.Obtener(ctx)
	if err != nil {
		return nil, err
	}

	valorInventario := decimal.Zero
	unidades := 0
	stockBajo := make([]model.Producto, 0)
	for _, p := range productos {
		valorInventario = valorInventario.Add(p.Costo.Mul(decimal.NewFromInt(int64(p.Stock))))
		unidades += p.Stock
		if p.Stock > 0 && p.Stock < stockBajoUmbral {
			stockBajo = append(stockBajo, p)
		}
	}

	enUSD := conversorUSD(ajustes.TipoCambio)
	return &dto.DashboardResponse{
		CajaActual:      enUSD(stats.CajaActual),
		Propinas:        enUSD(stats.Propinas),
		VentasTotales:   enUSD(stats.VentasTotales),
		Transacciones:   stats.TransaccionesCount,
		ValorInventario: enUSD(valorInventario),
		UnidadesTotales: unidades,
		StockBajo:       stockBajo,
		TipoCambio:      ajustes.TipoCambio,
	}, nil
}

// conversorUSD returns a converter that omits the USD figure entirely when
// the exchange rate is zero or negative, so a bad setting can never cause a
// division by zero.
func conversorUSD(tipoCambio decimal.Decimal) func(decimal.Decimal) dto.MontoUSD {
	return func(local decimal.Decimal) dto.MontoUSD {
		m := dto.MontoUSD{Local: local}
		if tipoCambio.IsPositive() {
			usd := local.DivRound(tipoCambio, 2)
			m.USD = &usd
		}
		return m
	}
}
