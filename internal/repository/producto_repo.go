package repository

import (
	"context"

	"github.com/davielsant/santalla-core/internal/model"
	"github.com/davielsant/santalla-core/internal/store"
)

// ProductoRepository defines the data access contract for the catalog
// document. Services depend on this interface, not on the store directly.
type ProductoRepository interface {
	List(ctx context.Context) ([]model.Producto, error)
	Replace(ctx context.Context, productos []model.Producto) error

	// Tx variants run inside a store.Update transaction.
	ListTx(tx store.Tx) ([]model.Producto, error)
	ReplaceTx(tx store.Tx, productos []model.Producto) error
}

type productoRepo struct{ st store.Store }

func NewProductoRepository(st store.Store) ProductoRepository { return &productoRepo{st: st} }

func (r *productoRepo) List(ctx context.Context) ([]model.Producto, error) {
	var productos []model.Producto
	err := loadDoc(func(k string) ([]byte, error) { return r.st.Get(ctx, k) }, store.KeyProductos, &productos)
	return productos, err
}

func (r *productoRepo) Replace(ctx context.Context, productos []model.Producto) error {
	raw, err := encodeDoc(productos)
	if err != nil {
		return err
	}
	return r.st.Set(ctx, store.KeyProductos, raw)
}

func (r *productoRepo) ListTx(tx store.Tx) ([]model.Producto, error) {
	var productos []model.Producto
	err := loadDoc(tx.Get, store.KeyProductos, &productos)
	return productos, err
}

func (r *productoRepo) ReplaceTx(tx store.Tx, productos []model.Producto) error {
	raw, err := encodeDoc(productos)
	if err != nil {
		return err
	}
	tx.Set(store.KeyProductos, raw)
	return nil
}
