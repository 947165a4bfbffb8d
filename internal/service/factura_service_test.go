package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/EmSanchezM/posweb-backend/internal/apierror"
	"github.com/EmSanchezM/posweb-backend/internal/dto"
	"github.com/EmSanchezM/posweb-backend/internal/model"
	"github.com/EmSanchezM/posweb-backend/internal/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type facturaFixture struct {
	svc          service.FacturaService
	facturaRepo  *stubFacturaRepo
	ordenRepo    *stubOrdenRepo
	empleadoRepo *stubEmpleadoRepo
}

func newFacturaFixture() *facturaFixture {
	f := &facturaFixture{
		facturaRepo:  newStubFacturaRepo(),
		ordenRepo:    newStubOrdenRepo(),
		empleadoRepo: newStubEmpleadoRepo(),
	}
	f.svc = service.NewFacturaService(f.facturaRepo, f.ordenRepo, f.empleadoRepo, nil)
	return f
}

func (f *facturaFixture) seedEmpleado() *model.Empleado {
	e := &model.Empleado{CodigoEmpleado: "0801_Mejia", Activo: true}
	_ = f.empleadoRepo.Crear(context.Background(), e)
	return e
}

// seedOrdenAbierta stores an open order with two active detalles and one
// inactive one that must not count toward the totals.
func (f *facturaFixture) seedOrdenAbierta() *model.Orden {
	orden := &model.Orden{NumeroOrden: 1, Canal: model.CanalMesa, TipoOrden: model.TipoComerAqui, Estado: model.OrdenAbierta, Activo: true}
	_ = f.ordenRepo.CrearTx(nil, orden)

	detalles := []model.OrdenDetalle{
		{
			OrdenID:    orden.ID,
			ProductoID: uuid.New(),
			Cantidad:   2,
			Precio:     decimal.NewFromFloat(100),
			Subtotal:   decimal.NewFromFloat(200),
			Impuesto:   decimal.NewFromFloat(30),
			Total:      decimal.NewFromFloat(230),
			Activo:     true,
		},
		{
			OrdenID:    orden.ID,
			ProductoID: uuid.New(),
			Cantidad:   1,
			Precio:     decimal.NewFromFloat(50),
			Subtotal:   decimal.NewFromFloat(50),
			Impuesto:   decimal.NewFromFloat(7.5),
			Descuento:  decimal.NewFromFloat(10),
			Total:      decimal.NewFromFloat(47.5),
			Activo:     true,
		},
		{
			OrdenID:    orden.ID,
			ProductoID: uuid.New(),
			Cantidad:   1,
			Precio:     decimal.NewFromFloat(999),
			Subtotal:   decimal.NewFromFloat(999),
			Activo:     false,
		},
	}
	_ = f.ordenRepo.CrearDetallesTx(nil, detalles)
	return orden
}

func TestCrearFactura_TotalesDesdeDetalles(t *testing.T) {
	f := newFacturaFixture()
	empleado := f.seedEmpleado()
	orden := f.seedOrdenAbierta()
	orden.Envio = &model.Envio{Costo: decimal.NewFromFloat(40)}

	resp, err := f.svc.Crear(context.Background(), dto.CrearFacturaRequest{
		OrdenID:    orden.ID.String(),
		EmpleadoID: empleado.ID.String(),
		Propina:    decimal.NewFromFloat(25),
		MetodoPago: "efectivo",
	})
	require.NoError(t, err)

	// subtotal 250, impuesto 37.5, descuento 10, propina 25, envio 40
	assert.True(t, decimal.NewFromFloat(250).Equal(resp.Subtotal))
	assert.True(t, decimal.NewFromFloat(37.5).Equal(resp.Impuesto))
	assert.True(t, decimal.NewFromFloat(10).Equal(resp.Descuento))
	assert.True(t, decimal.NewFromFloat(40).Equal(resp.CostoEnvio))
	assert.True(t, decimal.NewFromFloat(342.5).Equal(resp.Total))

	// The order is closed in the same operation.
	cerrada, err := f.ordenRepo.ObtenerPorID(context.Background(), orden.ID)
	require.NoError(t, err)
	assert.Equal(t, model.OrdenFacturada, cerrada.Estado)
}

func TestCrearFactura_OrdenYaFacturada(t *testing.T) {
	f := newFacturaFixture()
	empleado := f.seedEmpleado()
	orden := f.seedOrdenAbierta()
	orden.Estado = model.OrdenFacturada

	_, err := f.svc.Crear(context.Background(), dto.CrearFacturaRequest{
		OrdenID:    orden.ID.String(),
		EmpleadoID: empleado.ID.String(),
		MetodoPago: "tarjeta",
	})
	require.Error(t, err)
	var apiErr *apierror.Error
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, apierror.KindConflict, apiErr.Kind)
	assert.Equal(t, "La orden ya fue facturada", apiErr.Message)
}

func TestCrearFactura_OrdenSinDetalles(t *testing.T) {
	f := newFacturaFixture()
	empleado := f.seedEmpleado()
	orden := &model.Orden{NumeroOrden: 2, Canal: model.CanalMesa, TipoOrden: model.TipoComerAqui, Estado: model.OrdenAbierta, Activo: true}
	require.NoError(t, f.ordenRepo.CrearTx(nil, orden))

	_, err := f.svc.Crear(context.Background(), dto.CrearFacturaRequest{
		OrdenID:    orden.ID.String(),
		EmpleadoID: empleado.ID.String(),
		MetodoPago: "efectivo",
	})
	require.Error(t, err)
	var apiErr *apierror.Error
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, apierror.KindValidation, apiErr.Kind)
}

func TestCrearFactura_EmpleadoNoExiste(t *testing.T) {
	f := newFacturaFixture()
	orden := f.seedOrdenAbierta()

	_, err := f.svc.Crear(context.Background(), dto.CrearFacturaRequest{
		OrdenID:    orden.ID.String(),
		EmpleadoID: uuid.NewString(),
		MetodoPago: "efectivo",
	})
	require.Error(t, err)
	var apiErr *apierror.Error
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, apierror.KindNotFound, apiErr.Kind)
	assert.Equal(t, "Empleado no encontrado", apiErr.Message)
}

func TestCrearFactura_IDInvalido(t *testing.T) {
	f := newFacturaFixture()
	_, err := f.svc.Crear(context.Background(), dto.CrearFacturaRequest{
		OrdenID:    "abc",
		EmpleadoID: uuid.NewString(),
		MetodoPago: "efectivo",
	})
	require.Error(t, err)
	var apiErr *apierror.Error
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, apierror.KindBadID, apiErr.Kind)
	assert.Equal(t, "abc no es un identificador valido", apiErr.Message)
}

func TestActualizarFactura_SoloCamposPermitidos(t *testing.T) {
	f := newFacturaFixture()
	empleado := f.seedEmpleado()
	orden := f.seedOrdenAbierta()

	resp, err := f.svc.Crear(context.Background(), dto.CrearFacturaRequest{
		OrdenID:    orden.ID.String(),
		EmpleadoID: empleado.ID.String(),
		MetodoPago: "efectivo",
	})
	require.NoError(t, err)

	metodo := "tarjeta"
	rtn := "08011999012345"
	actualizada, err := f.svc.Actualizar(context.Background(), uuid.MustParse(resp.ID), dto.ActualizarFacturaRequest{
		MetodoPago: &metodo,
		RTN:        &rtn,
	})
	require.NoError(t, err)
	assert.Equal(t, "tarjeta", actualizada.MetodoPago)
	assert.Equal(t, "08011999012345", actualizada.RTN)
	// Totals are immutable after emission.
	assert.True(t, resp.Total.Equal(actualizada.Total))
}

func TestDesactivarFactura_NoEncontrada(t *testing.T) {
	f := newFacturaFixture()
	err := f.svc.Desactivar(context.Background(), uuid.New())
	require.Error(t, err)
	var apiErr *apierror.Error
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, apierror.KindNotFound, apiErr.Kind)
}
