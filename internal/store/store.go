// Package store provides the key-value document store backing all persisted
// state. Four independently keyed JSON documents make up the whole data set;
// repositories encode/decode them, services decide when to write.
//
// The design assumes a single writer process (one terminal). Update gives the
// sale processor its all-or-nothing boundary: every Set staged inside the
// callback lands together or not at all.
package store

import "context"

// Document keys. One JSON document per key.
const (
	KeyProductos    = "santalla_products"
	KeyAjustes      = "santalla_settings"
	KeyEstadisticas = "santalla_stats"
	KeyVentas       = "santalla_sales_history"
)

// Tx is the handle passed to Update callbacks. Get observes writes already
// staged in the same transaction.
type Tx interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte)
}

// Store is the persistence contract injected into every repository.
type Store interface {
	// Get returns the raw document, or ErrKeyNotFound when it was never written.
	Get(ctx context.Context, key string) ([]byte, error)
	// Set overwrites a single document.
	Set(ctx context.Context, key string, value []byte) error
	// Update runs fn and commits all staged writes atomically. A non-nil
	// error from fn aborts the transaction with no effects.
	Update(ctx context.Context, fn func(tx Tx) error) error
	Close() error
}
