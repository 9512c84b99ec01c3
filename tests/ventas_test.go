package tests

import (
	"context"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davielsant/santalla-core/internal/dto"
	"github.com/davielsant/santalla-core/internal/model"
	"github.com/davielsant/santalla-core/internal/service"
)

func totalPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func TestProcesar_EscenarioCompleto(t *testing.T) {
	e := newEnv()
	seedProducto(t, e, 1, "Coca Cola", 18.00, 50)

	// 3 × 18.00 = 54.00; pago 60.00 → propina 6.00
	resp, err := e.ventas.Procesar(context.Background(), dto.CheckoutRequest{
		Items:       []dto.LineaVentaRequest{{ProductoID: 1, Cantidad: 3}},
		MontoPagado: dec("60.00"),
		Total:       totalPtr("54.00"),
	})
	require.NoError(t, err)
	assert.True(t, resp.Propina.Equal(dec("6.00")))

	// Stock decrementado
	productos, err := e.catalogo.Listar(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 47, productos[0].Stock)

	// Registro con snapshot de línea
	ventas, err := e.ventas.Listar(context.Background())
	require.NoError(t, err)
	require.Len(t, ventas, 1)
	v := ventas[0]
	assert.True(t, v.Total.Equal(dec("54.00")))
	assert.Equal(t, model.EstadoCompletado, v.Estado)
	assert.Equal(t, model.MetodoEfectivo, v.MetodoPago)
	assert.Equal(t, "Carlos Ruiz", v.Vendedor)
	require.Len(t, v.Items, 1)
	assert.Equal(t, int64(1), v.Items[0].ProductoID)
	assert.Equal(t, 3, v.Items[0].Cantidad)
	assert.True(t, v.Items[0].Precio.Equal(dec("18.00")))
	assert.True(t, v.Items[0].Total.Equal(dec("54.00")))

	// Estadísticas: deltas exactos sobre los valores por defecto
	stats, err := e.caja.Obtener(context.Background())
	require.NoError(t, err)
	assert.True(t, stats.CajaActual.Equal(dec("1554.00")))
	assert.True(t, stats.Propinas.Equal(dec("6.00")))
	assert.True(t, stats.VentasTotales.Equal(dec("54.00")))
	assert.Equal(t, 1, stats.TransaccionesCount)
}

func TestProcesar_ConservacionDeTotales(t *testing.T) {
	e := newEnv()
	seedProducto(t, e, 1, "Agua", 22.00, 100)

	antes, err := e.caja.Obtener(context.Background())
	require.NoError(t, err)

	resp, err := e.ventas.Procesar(context.Background(), dto.CheckoutRequest{
		Items:       []dto.LineaVentaRequest{{ProductoID: 1, Cantidad: 2}},
		MontoPagado: dec("50.00"),
		Total:       totalPtr("44.00"),
	})
	require.NoError(t, err)

	despues, err := e.caja.Obtener(context.Background())
	require.NoError(t, err)

	assert.True(t, despues.CajaActual.Sub(antes.CajaActual).Equal(dec("44.00")))
	assert.True(t, despues.VentasTotales.Sub(antes.VentasTotales).Equal(dec("44.00")))
	assert.True(t, despues.Propinas.Sub(antes.Propinas).Equal(dec("6.00")))
	assert.Equal(t, antes.TransaccionesCount+1, despues.TransaccionesCount)
	assert.True(t, resp.Propina.Equal(dec("6.00")))
}

func TestProcesar_PagoExactoNoGeneraPropina(t *testing.T) {
	e := newEnv()
	seedProducto(t, e, 1, "Cafe", 35.00, 10)

	resp, err := e.ventas.Procesar(context.Background(), dto.CheckoutRequest{
		Items:       []dto.LineaVentaRequest{{ProductoID: 1, Cantidad: 1}},
		MontoPagado: dec("35.00"),
		Total:       totalPtr("35.00"),
	})
	require.NoError(t, err)
	assert.True(t, resp.Propina.IsZero())
}

func TestProcesar_StockNuncaNegativo(t *testing.T) {
	e := newEnv()
	seedProducto(t, e, 1, "Gansito", 15.00, 2)

	// Cantidad mayor al stock: el piso es cero, nunca negativo.
	_, err := e.ventas.Procesar(context.Background(), dto.CheckoutRequest{
		Items:       []dto.LineaVentaRequest{{ProductoID: 1, Cantidad: 5}},
		MontoPagado: dec("100.00"),
		Total:       totalPtr("75.00"),
	})
	require.NoError(t, err)

	productos, err := e.catalogo.Listar(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, productos[0].Stock)
}

func TestProcesar_OrdenMasRecientePrimero(t *testing.T) {
	e := newEnv()
	seedProducto(t, e, 1, "Refresco", 10.00, 100)

	var ids []string
	for i := 0; i < 5; i++ {
		resp, err := e.ventas.Procesar(context.Background(), dto.CheckoutRequest{
			Items:       []dto.LineaVentaRequest{{ProductoID: 1, Cantidad: 1}},
			MontoPagado: dec("10.00"),
			Total:       totalPtr("10.00"),
		})
		require.NoError(t, err)
		ids = append(ids, resp.Venta.ID)
	}

	ventas, err := e.ventas.Listar(context.Background())
	require.NoError(t, err)
	require.Len(t, ventas, 5)
	// La venta N queda en [0], la primera en [N-1].
	for i := 0; i < 5; i++ {
		assert.Equal(t, ids[len(ids)-1-i], ventas[i].ID, fmt.Sprintf("posición %d", i))
	}
}

func TestProcesar_IDsDeVentaUnicos(t *testing.T) {
	e := newEnv()
	seedProducto(t, e, 1, "Chicle", 5.00, 100)

	vistos := make(map[string]bool)
	for i := 0; i < 10; i++ {
		resp, err := e.ventas.Procesar(context.Background(), dto.CheckoutRequest{
			Items:       []dto.LineaVentaRequest{{ProductoID: 1, Cantidad: 1}},
			MontoPagado: dec("5.00"),
			Total:       totalPtr("5.00"),
		})
		require.NoError(t, err)
		assert.False(t, vistos[resp.Venta.ID], "id repetido: %s", resp.Venta.ID)
		vistos[resp.Venta.ID] = true
	}
}

func TestProcesar_CarritoVacio(t *testing.T) {
	e := newEnv()
	_, err := e.ventas.Procesar(context.Background(), dto.CheckoutRequest{
		MontoPagado: dec("10.00"),
	})
	assert.ErrorIs(t, err, service.ErrValidacion)
}

func TestProcesar_PagoInsuficiente(t *testing.T) {
	e := newEnv()
	seedProducto(t, e, 1, "Tenis", 2400.00, 12)

	_, err := e.ventas.Procesar(context.Background(), dto.CheckoutRequest{
		Items:       []dto.LineaVentaRequest{{ProductoID: 1, Cantidad: 1}},
		MontoPagado: dec("100.00"),
		Total:       totalPtr("2400.00"),
	})
	assert.ErrorIs(t, err, service.ErrValidacion)

	// Nada debe haber cambiado.
	productos, _ := e.catalogo.Listar(context.Background())
	assert.Equal(t, 12, productos[0].Stock)
	ventas, _ := e.ventas.Listar(context.Background())
	assert.Empty(t, ventas)
	stats, _ := e.caja.Obtener(context.Background())
	assert.Equal(t, 0, stats.TransaccionesCount)
}

func TestProcesar_ProductoInexistenteNoDejaEfectosParciales(t *testing.T) {
	e := newEnv()
	seedProducto(t, e, 1, "Valido", 10.00, 20)

	// La primera línea es válida, la segunda no: la transacción entera
	// debe abortar sin tocar el stock de la primera.
	_, err := e.ventas.Procesar(context.Background(), dto.CheckoutRequest{
		Items: []dto.LineaVentaRequest{
			{ProductoID: 1, Cantidad: 5},
			{ProductoID: 9999, Cantidad: 1},
		},
		MontoPagado: dec("100.00"),
		Total:       totalPtr("60.00"),
	})
	assert.ErrorIs(t, err, service.ErrValidacion)

	productos, err := e.catalogo.Listar(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 20, productos[0].Stock)
	ventas, _ := e.ventas.Listar(context.Background())
	assert.Empty(t, ventas)
}

func TestProcesar_TotalCalculadoConIVA(t *testing.T) {
	e := newEnv()
	seedProducto(t, e, 1, "Papas", 100.00, 10)

	// Sin total explícito: subtotal 100 + IVA 16% = 116.00
	resp, err := e.ventas.Procesar(context.Background(), dto.CheckoutRequest{
		Items:       []dto.LineaVentaRequest{{ProductoID: 1, Cantidad: 1}},
		MontoPagado: dec("120.00"),
	})
	require.NoError(t, err)
	assert.True(t, resp.Venta.Total.Equal(dec("116.00")))
	assert.True(t, resp.Propina.Equal(dec("4.00")))
}

func TestProcesar_VendedorYMetodoPersonalizados(t *testing.T) {
	e := newEnv()
	seedProducto(t, e, 1, "Audifonos", 6500.00, 8)

	resp, err := e.ventas.Procesar(context.Background(), dto.CheckoutRequest{
		Items:       []dto.LineaVentaRequest{{ProductoID: 1, Cantidad: 1}},
		MontoPagado: dec("6500.00"),
		Total:       totalPtr("6500.00"),
		Vendedor:    "Ana Lopez",
		MetodoPago:  model.MetodoTarjeta,
	})
	require.NoError(t, err)
	assert.Equal(t, "Ana Lopez", resp.Venta.Vendedor)
	assert.Equal(t, model.MetodoTarjeta, resp.Venta.MetodoPago)
}

func TestProcesar_PrecioHistoricoNoCambiaConElCatalogo(t *testing.T) {
	e := newEnv()
	seedProducto(t, e, 1, "Cambiante", 18.00, 50)

	_, err := e.ventas.Procesar(context.Background(), dto.CheckoutRequest{
		Items:       []dto.LineaVentaRequest{{ProductoID: 1, Cantidad: 1}},
		MontoPagado: dec("18.00"),
		Total:       totalPtr("18.00"),
	})
	require.NoError(t, err)

	// Borrar el producto no debe corromper el historial.
	require.NoError(t, e.catalogo.Eliminar(context.Background(), 1))

	ventas, err := e.ventas.Listar(context.Background())
	require.NoError(t, err)
	require.Len(t, ventas, 1)
	assert.Equal(t, "Cambiante", ventas[0].Items[0].Nombre)
	assert.True(t, ventas[0].Items[0].Precio.Equal(dec("18.00")))
}
