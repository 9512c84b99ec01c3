package model

import "github.com/shopspring/decimal"

// Producto is a sellable catalog entry. Precio and Costo are expressed in
// local currency; USD figures are derived at display time from the configured
// exchange rate, never stored.
type Producto struct {
	// ID is assigned by the catalog service at insertion time (millisecond
	// clock, bumped on collision). Caller-supplied values are overwritten.
	ID        int64           `json:"id"`
	Nombre    string          `json:"name"`
	SKU       string          `json:"sku"`
	Precio    decimal.Decimal `json:"price"`
	Costo     decimal.Decimal `json:"cost"`
	Stock     int             `json:"stock"`
	Imagen    string          `json:"image"`
	Categoria string          `json:"category"`
	Barcode   string          `json:"barcode,omitempty"`
}
