package tests

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davielsant/santalla-core/internal/dto"
	"github.com/davielsant/santalla-core/internal/service"
)

func TestCrearProducto_AsignaIDYCostoCero(t *testing.T) {
	e := newEnv()

	// Sin costo: debe quedar en 0 y recibir un id generado.
	p, err := e.catalogo.Crear(context.Background(), dto.CrearProductoRequest{
		Nombre: "Test",
		Precio: decimal.NewFromInt(10),
		Stock:  5,
	})
	require.NoError(t, err)
	assert.True(t, p.Costo.IsZero())
	assert.Greater(t, p.ID, int64(0))
	assert.Equal(t, 5, p.Stock)

	productos, err := e.catalogo.Listar(context.Background())
	require.NoError(t, err)
	require.Len(t, productos, 1)
	assert.Equal(t, p.ID, productos[0].ID)
}

func TestCrearProducto_IDsUnicos(t *testing.T) {
	e := newEnv()

	// Dos altas en el mismo milisegundo deben recibir ids distintos.
	p1, err := e.catalogo.Crear(context.Background(), dto.CrearProductoRequest{
		Nombre: "Uno", Precio: decimal.NewFromInt(10), Stock: 1,
	})
	require.NoError(t, err)
	p2, err := e.catalogo.Crear(context.Background(), dto.CrearProductoRequest{
		Nombre: "Dos", Precio: decimal.NewFromInt(10), Stock: 1,
	})
	require.NoError(t, err)
	assert.NotEqual(t, p1.ID, p2.ID)
}

func TestCrearProducto_Validacion(t *testing.T) {
	e := newEnv()

	casos := []dto.CrearProductoRequest{
		{Nombre: "", Precio: decimal.NewFromInt(10), Stock: 1},
		{Nombre: "   ", Precio: decimal.NewFromInt(10), Stock: 1},
		{Nombre: "Sin precio", Precio: decimal.Zero, Stock: 1},
		{Nombre: "Precio negativo", Precio: decimal.NewFromInt(-5), Stock: 1},
		{Nombre: "Stock negativo", Precio: decimal.NewFromInt(5), Stock: -1},
	}
	for _, caso := range casos {
		_, err := e.catalogo.Crear(context.Background(), caso)
		assert.ErrorIs(t, err, service.ErrValidacion)
	}

	// Ninguna alta fallida debe haber tocado el catálogo.
	productos, err := e.catalogo.Listar(context.Background())
	require.NoError(t, err)
	assert.Empty(t, productos)
}

func TestCrearProducto_CostoNegativoSeNormaliza(t *testing.T) {
	e := newEnv()

	p, err := e.catalogo.Crear(context.Background(), dto.CrearProductoRequest{
		Nombre: "Costo raro",
		Precio: decimal.NewFromInt(10),
		Costo:  decimal.NewFromInt(-3),
		Stock:  1,
	})
	require.NoError(t, err)
	assert.True(t, p.Costo.IsZero())
}

func TestEliminarProducto_Idempotente(t *testing.T) {
	e := newEnv()
	seedProducto(t, e, 1, "Permanece", 10, 5)

	// Borrar un id inexistente no es un error y no toca el catálogo.
	require.NoError(t, e.catalogo.Eliminar(context.Background(), 9999))

	productos, err := e.catalogo.Listar(context.Background())
	require.NoError(t, err)
	assert.Len(t, productos, 1)

	// Borrar el existente sí lo remueve; repetirlo sigue sin error.
	require.NoError(t, e.catalogo.Eliminar(context.Background(), 1))
	require.NoError(t, e.catalogo.Eliminar(context.Background(), 1))

	productos, err = e.catalogo.Listar(context.Background())
	require.NoError(t, err)
	assert.Empty(t, productos)
}

func TestVaciarCatalogo(t *testing.T) {
	e := newEnv()
	seedProducto(t, e, 1, "Uno", 10, 5)
	seedProducto(t, e, 2, "Dos", 20, 3)

	require.NoError(t, e.catalogo.Vaciar(context.Background()))

	productos, err := e.catalogo.Listar(context.Background())
	require.NoError(t, err)
	assert.Empty(t, productos)
}

func TestListar_OrdenDeInsercionEstable(t *testing.T) {
	e := newEnv()
	seedProducto(t, e, 3, "Primero", 10, 5)
	seedProducto(t, e, 1, "Segundo", 20, 3)
	seedProducto(t, e, 2, "Tercero", 30, 1)

	productos, err := e.catalogo.Listar(context.Background())
	require.NoError(t, err)
	require.Len(t, productos, 3)
	assert.Equal(t, "Primero", productos[0].Nombre)
	assert.Equal(t, "Segundo", productos[1].Nombre)
	assert.Equal(t, "Tercero", productos[2].Nombre)
}
