package model

import "github.com/shopspring/decimal"

// Ajustes is the singleton application configuration document.
// TipoCambio is local-currency units per 1 USD and is used exclusively for
// display conversion. Overwrite semantics — no history retained.
type Ajustes struct {
	TipoCambio decimal.Decimal `json:"exchangeRate"`
}

// DefaultAjustes returns the configuration served before any explicit save.
func DefaultAjustes() Ajustes {
	return Ajustes{TipoCambio: decimal.NewFromFloat(18.50)}
}
