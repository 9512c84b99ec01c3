package dto

import (
	"github.com/shopspring/decimal"

	"github.com/davielsant/santalla-core/internal/model"
)

// ─── Checkout ────────────────────────────────────────────────────────────────

type LineaVentaRequest struct {
	ProductoID int64 `json:"productId" validate:"required"`
	Cantidad   int   `json:"qty"       validate:"required,min=1"`
}

// CheckoutRequest carries the cart and the tendered payment. Total is
// optional: when omitted the service computes subtotal + IVA the same way
// the selling surface does. Vendedor and MetodoPago default to the
// register's session values when empty.
type CheckoutRequest struct {
	Items      []LineaVentaRequest `json:"items"         validate:"required,min=1,dive"`
	MontoPagado decimal.Decimal    `json:"paymentAmount"`
	Total      *decimal.Decimal    `json:"total"`
	Vendedor   string              `json:"seller"        validate:"max=80"`
	MetodoPago string              `json:"paymentMethod" validate:"omitempty,oneof=Efectivo Tarjeta"`
}

// CheckoutResponse reports the processed sale and the tip accrued from the
// excess payment.
type CheckoutResponse struct {
	Propina decimal.Decimal `json:"tipAmount"`
	Venta   model.Venta     `json:"sale"`
}
