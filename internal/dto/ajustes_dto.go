package dto

import "github.com/shopspring/decimal"

// GuardarAjustesRequest is a full overwrite of the settings document.
// Any exchange rate is accepted, including zero; consumers of the rate
// guard division themselves.
type GuardarAjustesRequest struct {
	TipoCambio decimal.Decimal `json:"exchangeRate"`
}
