package repository

import (
	"context"

	"github.com/davielsant/santalla-core/internal/model"
	"github.com/davielsant/santalla-core/internal/store"
)

// EstadisticasRepository reads and writes the singleton stats document.
type EstadisticasRepository interface {
	Get(ctx context.Context) (model.Estadisticas, error)
	Save(ctx context.Context, e model.Estadisticas) error

	GetTx(tx store.Tx) (model.Estadisticas, error)
	SaveTx(tx store.Tx, e model.Estadisticas) error
}

type estadisticasRepo struct{ st store.Store }

func NewEstadisticasRepository(st store.Store) EstadisticasRepository {
	return &estadisticasRepo{st: st}
}

func (r *estadisticasRepo) Get(ctx context.Context) (model.Estadisticas, error) {
	var e model.Estadisticas
	err := loadDoc(func(k string) ([]byte, error) { return r.st.Get(ctx, k) }, store.KeyEstadisticas, &e)
	return e, err
}

func (r *estadisticasRepo) Save(ctx context.Context, e model.Estadisticas) error {
	raw, err := encodeDoc(e)
	if err != nil {
		return err
	}
	return r.st.Set(ctx, store.KeyEstadisticas, raw)
}

func (r *estadisticasRepo) GetTx(tx store.Tx) (model.Estadisticas, error) {
	var e model.Estadisticas
	err := loadDoc(tx.Get, store.KeyEstadisticas, &e)
	return e, err
}

func (r *estadisticasRepo) SaveTx(tx store.Tx, e model.Estadisticas) error {
	raw, err := encodeDoc(e)
	if err != nil {
		return err
	}
	tx.Set(store.KeyEstadisticas, raw)
	return nil
}
