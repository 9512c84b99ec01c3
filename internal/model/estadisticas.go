package model

import "github.com/shopspring/decimal"

// Estadisticas is the singleton document of running financial counters,
// maintained independently of individual sale records.
//
// CajaActual and VentasTotales only decrease on an explicit register reset;
// Propinas only decreases when tips are distributed. TransaccionesCount
// equals the number of successfully processed sales since the last reset.
type Estadisticas struct {
	CajaActual         decimal.Decimal `json:"cashInBox"`
	Propinas           decimal.Decimal `json:"tips"`
	VentasTotales      decimal.Decimal `json:"totalSales"`
	TransaccionesCount int             `json:"transactionCount"`
}

// DefaultEstadisticas returns the opening state of a fresh register:
// a 1500.00 cash float and everything else at zero.
func DefaultEstadisticas() Estadisticas {
	return Estadisticas{
		CajaActual:         decimal.NewFromFloat(1500.00),
		Propinas:           decimal.Zero,
		VentasTotales:      decimal.Zero,
		TransaccionesCount: 0,
	}
}
