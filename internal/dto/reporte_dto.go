package dto

import (
	"github.com/shopspring/decimal"

	"github.com/davielsant/santalla-core/internal/model"
)

// MontoUSD pairs a local-currency amount with its USD conversion. USD is nil
// when the configured exchange rate is zero or negative.
type MontoUSD struct {
	Local decimal.Decimal  `json:"local"`
	USD   *decimal.Decimal `json:"usd,omitempty"`
}

// DashboardResponse aggregates the read-only figures the dashboard and
// inventory screens render. It never writes back into the core.
type DashboardResponse struct {
	CajaActual      MontoUSD         `json:"cashInBox"`
	Propinas        MontoUSD         `json:"tips"`
	VentasTotales   MontoUSD         `json:"totalSales"`
	Transacciones   int              `json:"transactionCount"`
	ValorInventario MontoUSD         `json:"inventoryValue"`
	UnidadesTotales int              `json:"totalUnits"`
	StockBajo       []model.Producto `json:"lowStock"`
	TipoCambio      decimal.Decimal  `json:"exchangeRate"`
}
