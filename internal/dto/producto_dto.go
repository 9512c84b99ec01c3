package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

// CrearProductoRequest is the draft submitted by the inventory screen.
// Precio must be positive and Stock non-negative; those rules involve
// decimal comparisons and are enforced in the service, not by tags.
type CrearProductoRequest struct {
	Nombre    string          `json:"name"      validate:"required,min=1,max=120"`
	SKU       string          `json:"sku"       validate:"max=40"`
	Precio    decimal.Decimal `json:"price"`
	Costo     decimal.Decimal `json:"cost"`
	Stock     int             `json:"stock"     validate:"min=0"`
	Imagen    string          `json:"image"     validate:"omitempty,url"`
	Categoria string          `json:"category"  validate:"max=60"`
	Barcode   string          `json:"barcode"   validate:"max=20"`
}
