package repository

import (
	"context"

	"github.com/davielsant/santalla-core/internal/model"
	"github.com/davielsant/santalla-core/internal/store"
)

// VentaRepository reads and writes the sales-history document. The document
// is kept most-recent-first; prepending is the service's responsibility.
type VentaRepository interface {
	List(ctx context.Context) ([]model.Venta, error)
	Replace(ctx context.Context, ventas []model.Venta) error

	ListTx(tx store.Tx) ([]model.Venta, error)
	ReplaceTx(tx store.Tx, ventas []model.Venta) error
}

type ventaRepo struct{ st store.Store }

func NewVentaRepository(st store.Store) VentaRepository { return &ventaRepo{st: st} }

func (r *ventaRepo) List(ctx context.Context) ([]model.Venta, error) {
	var ventas []model.Venta
	err := loadDoc(func(k string) ([]byte, error) { return r.st.Get(ctx, k) }, store.KeyVentas, &ventas)
	return ventas, err
}

func (r *ventaRepo) Replace(ctx context.Context, ventas []model.Venta) error {
	raw, err := encodeDoc(ventas)
	if err != nil {
		return err
	}
	return r.st.Set(ctx, store.KeyVentas, raw)
}

func (r *ventaRepo) ListTx(tx store.Tx) ([]model.Venta, error) {
	var ventas []model.Venta
	err := loadDoc(tx.Get, store.KeyVentas, &ventas)
	return ventas, err
}

func (r *ventaRepo) ReplaceTx(tx store.Tx, ventas []model.Venta) error {
	raw, err := encodeDoc(ventas)
	if err != nil {
		return err
	}
	tx.Set(store.KeyVentas, raw)
	return nil
}
