package service

import (
	"context"
	"errors"

	"github.com/davielsant/santalla-core/internal/dto"
	"github.com/davielsant/santalla-core/internal/model"
	"github.com/davielsant/santalla-core/internal/repository"
	"github.com/davielsant/santalla-core/internal/store"
)

// AjustesService reads and overwrites the singleton settings document.
type AjustesService interface {
	Obtener(ctx context.Context) (model.Ajustes, error)
	Guardar(ctx context.Context, req dto.GuardarAjustesRequest) (model.Ajustes, error)
}

type ajustesService struct {
	repo repository.AjustesRepository
}

func NewAjustesService(repo repository.AjustesRepository) AjustesService {
	return &ajustesService{repo: repo}
}

func (s *ajustesService) Obtener(ctx context.Context) (model.Ajustes, error) {
	a, err := s.repo.Get(ctx)
	if errors.Is(err, store.ErrKeyNotFound) {
		return model.DefaultAjustes(), nil
	}
	if err != nil {
		return model.Ajustes{}, almacenamiento("leer ajustes", err)
	}
	return a, nil
}

// Guardar accepts any exchange rate, including zero and negatives. Rejecting
// them here would change observable behavior the product owner has not signed
// off on; every USD conversion downstream guards the division instead.
func (s *ajustesService) Guardar(ctx context.Context, req dto.GuardarAjustesRequest) (model.Ajustes, error) {
	a := model.Ajustes{TipoCambio: req.TipoCambio}
	if err := s.repo.Save(ctx, a); err != nil {
		return model.Ajustes{}, almacenamiento("guardar ajustes", err)
	}
	return a, nil
}
