package service

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/davielsant/santalla-core/internal/model"
	"github.com/davielsant/santalla-core/internal/repository"
	"github.com/davielsant/santalla-core/internal/store"
)

// CajaService maintains the running financial counters: cash in box,
// accumulated tips, accumulated sales total, and transaction count.
//
// ResetearCaja and VaciarHistorial (on VentaService) are deliberately
// asymmetric: the register reset also wipes the sales history, while
// clearing the history leaves the counters untouched.
type CajaService interface {
	Obtener(ctx context.Context) (model.Estadisticas, error)
	// RepartirPropinas zeroes the tip pool. Where the money went is a
	// payroll concern outside this service.
	RepartirPropinas(ctx context.Context) (model.Estadisticas, error)
	// ResetearCaja zeroes cash, sales total and transaction count AND
	// clears the sales history, in one atomic unit.
	ResetearCaja(ctx context.Context) (model.Estadisticas, error)
}

type cajaService struct {
	st     store.Store
	repo   repository.EstadisticasRepository
	ventas repository.VentaRepository
}

func NewCajaService(st store.Store, repo repository.EstadisticasRepository, ventas repository.VentaRepository) CajaService {
	return &cajaService{st: st, repo: repo, ventas: ventas}
}

func (s *cajaService) Obtener(ctx context.Context) (model.Estadisticas, error) {
	e, err := s.repo.Get(ctx)
	if errors.Is(err, store.ErrKeyNotFound) {
		return model.DefaultEstadisticas(), nil
	}
	if err != nil {
		return model.Estadisticas{}, almacenamiento("leer estadisticas", err)
	}
	return e, nil
}

func (s *cajaService) RepartirPropinas(ctx context.Context) (model.Estadisticas, error) {
	e, err := s.Obtener(ctx)
	if err != nil {
		return model.Estadisticas{}, err
	}
	e.Propinas = decimal.Zero
	if err := s.repo.Save(ctx, e); err != nil {
		return model.Estadisticas{}, almacenamiento("guardar estadisticas", err)
	}
	return e, nil
}

func (s *cajaService) ResetearCaja(ctx context.Context) (model.Estadisticas, error) {
	var e model.Estadisticas
	err := s.st.Update(ctx, func(tx store.Tx) error {
		var err error
		e, err = s.repo.GetTx(tx)
		if errors.Is(err, store.ErrKeyNotFound) {
			e = model.DefaultEstadisticas()
		} else if err != nil {
			return err
		}

		e.CajaActual = decimal.Zero
		e.VentasTotales = decimal.Zero
		e.TransaccionesCount = 0
		if err := s.repo.SaveTx(tx, e); err != nil {
			return err
		}
		return s.ventas.ReplaceTx(tx, []model.Venta{})
	})
	if err != nil {
		return model.Estadisticas{}, almacenamiento("resetear caja", err)
	}
	return e, nil
}
