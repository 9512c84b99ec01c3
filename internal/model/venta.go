package model

import "github.com/shopspring/decimal"

// Estado values for a Venta.
const (
	EstadoCompletado = "Completado"
	EstadoPendiente  = "Pendiente"
	EstadoCancelado  = "Cancelado"
)

// Metodo de pago values.
const (
	MetodoEfectivo = "Efectivo"
	MetodoTarjeta  = "Tarjeta"
)

// VentaItem is a line-item snapshot taken at sale time. Name, image,
// category and unit price are denormalized on purpose: deleting or repricing
// the product later must never change historical records.
type VentaItem struct {
	ProductoID int64           `json:"productId"`
	Nombre     string          `json:"productName"`
	Imagen     string          `json:"productImage"`
	Categoria  string          `json:"category"`
	Cantidad   int             `json:"qty"`
	Precio     decimal.Decimal `json:"price"`
	Total      decimal.Decimal `json:"total"`
}

// Venta is one completed transaction in the sales history. Immutable after
// creation — the history only supports bulk clearing, never per-record edits.
type Venta struct {
	ID         string          `json:"id"`
	Fecha      string          `json:"date"` // RFC 3339
	Items      []VentaItem     `json:"items"`
	Total      decimal.Decimal `json:"total"`
	Vendedor   string          `json:"seller"`
	Estado     string          `json:"status"`
	MetodoPago string          `json:"paymentMethod"`
}
