package repository

import (
	"context"

	"github.com/davielsant/santalla-core/internal/model"
	"github.com/davielsant/santalla-core/internal/store"
)

// AjustesRepository reads and writes the singleton settings document.
type AjustesRepository interface {
	Get(ctx context.Context) (model.Ajustes, error)
	Save(ctx context.Context, a model.Ajustes) error
}

type ajustesRepo struct{ st store.Store }

func NewAjustesRepository(st store.Store) AjustesRepository { return &ajustesRepo{st: st} }

func (r *ajustesRepo) Get(ctx context.Context) (model.Ajustes, error) {
	var a model.Ajustes
	err := loadDoc(func(k string) ([]byte, error) { return r.st.Get(ctx, k) }, store.KeyAjustes, &a)
	return a, err
}

func (r *ajustesRepo) Save(ctx context.Context, a model.Ajustes) error {
	raw, err := encodeDoc(a)
	if err != nil {
		return err
	}
	return r.st.Set(ctx, store.KeyAjustes, raw)
}
