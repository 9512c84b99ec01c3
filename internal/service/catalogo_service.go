package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/davielsant/santalla-core/internal/dto"
	"github.com/davielsant/santalla-core/internal/model"
	"github.com/davielsant/santalla-core/internal/repository"
	"github.com/davielsant/santalla-core/internal/store"
)

// CatalogoService owns the product collection. Stock decrements are the
// sale processor's business; everything else about products happens here.
type CatalogoService interface {
	Listar(ctx context.Context) ([]model.Producto, error)
	Crear(ctx context.Context, req dto.CrearProductoRequest) (*model.Producto, error)
	// Eliminar is idempotent: a missing id is a no-op, not an error.
	Eliminar(ctx context.Context, id int64) error
	Vaciar(ctx context.Context) error
}

type catalogoService struct {
	repo repository.ProductoRepository
}

func NewCatalogoService(repo repository.ProductoRepository) CatalogoService {
	return &catalogoService{repo: repo}
}

func (s *catalogoService) Listar(ctx context.Context) ([]model.Producto, error) {
	productos, err := s.repo.List(ctx)
	if errors.Is(err, store.ErrKeyNotFound) {
		return []model.Producto{}, nil
	}
	if err != nil {
		return nil, almacenamiento("listar productos", err)
	}
	if productos == nil {
		productos = []model.Producto{}
	}
	return productos, nil
}

func (s *catalogoService) Crear(ctx context.Context, req dto.CrearProductoRequest) (*model.Producto, error) {
	nombre := strings.TrimSpace(req.Nombre)
	if nombre == "" {
		return nil, validacion("el nombre del producto es obligatorio")
	}
	if !req.Precio.IsPositive() {
		return nil, validacion("el precio debe ser mayor a cero")
	}
	if req.Stock < 0 {
		return nil, validacion("el stock no puede ser negativo")
	}
	costo := req.Costo
	if costo.IsNegative() {
		costo = decimal.Zero
	}

	productos, err := s.Listar(ctx)
	if err != nil {
		return nil, err
	}

	producto := model.Producto{
		ID:        nuevoProductoID(productos),
		Nombre:    nombre,
		SKU:       req.SKU,
		Precio:    req.Precio,
		Costo:     costo,
		Stock:     req.Stock,
		Imagen:    req.Imagen,
		Categoria: req.Categoria,
		Barcode:   req.Barcode,
	}

	productos = append(productos, producto)
	if err := s.repo.Replace(ctx, productos); err != nil {
		return nil, almacenamiento("guardar productos", err)
	}
	return &producto, nil
}

func (s *catalogoService) Eliminar(ctx context.Context, id int64) error {
	productos, err := s.repo.List(ctx)
	if errors.Is(err, store.ErrKeyNotFound) {
		return nil
	}
	if err != nil {
		return almacenamiento("listar productos", err)
	}

	filtrados := make([]model.Producto, 0, len(productos))
	for _, p := range productos {
		if p.ID != id {
			filtrados = append(filtrados, p)
		}
	}
	if len(filtrados) == len(productos) {
		return nil // id ausente: no-op
	}
	if err := s.repo.Replace(ctx, filtrados); err != nil {
		return almacenamiento("guardar productos", err)
	}
	return nil
}

func (s *catalogoService) Vaciar(ctx context.Context) error {
	if err := s.repo.Replace(ctx, []model.Producto{}); err != nil {
		return almacenamiento("vaciar productos", err)
	}
	return nil
}

// nuevoProductoID assigns a millisecond-clock id, bumping past collisions
// so two inserts in the same millisecond still get distinct ids.
func nuevoProductoID(productos []model.Producto) int64 {
	usados := make(map[int64]struct{}, len(productos))
	for _, p := range productos {
		usados[p.ID] = struct{}{}
	}
	id := time.Now().UnixMilli()
	for {
		if _, ok := usados[id]; !ok {
			return id
		}
		id++
	}
}
