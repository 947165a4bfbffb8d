package worker

import (
	"context"
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/EmSanchezM/posweb-backend/internal/model"
	"github.com/EmSanchezM/posweb-backend/internal/repository"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// fixedFacturaRepo serves exactly one factura.
type fixedFacturaRepo struct{ factura *model.Factura }

func (r *fixedFacturaRepo) CrearTx(_ *gorm.DB, _ *model.Factura) error { return nil }
func (r *fixedFacturaRepo) ObtenerPorID(_ context.Context, id uuid.UUID) (*model.Factura, error) {
	if r.factura == nil || r.factura.ID != id {
		return nil, gorm.ErrRecordNotFound
	}
	return r.factura, nil
}
func (r *fixedFacturaRepo) Listar(_ context.Context) ([]model.Factura, error) { return nil, nil }
func (r *fixedFacturaRepo) Actualizar(_ context.Context, _ *model.Factura) error { return nil }
func (r *fixedFacturaRepo) Desactivar(_ context.Context, _ uuid.UUID) error { return nil }
func (r *fixedFacturaRepo) DB() *gorm.DB { return nil }

var _ repository.FacturaRepository = (*fixedFacturaRepo)(nil)

// fixedOrdenRepo serves exactly one orden.
type fixedOrdenRepo struct{ orden *model.Orden }

func (r *fixedOrdenRepo) CrearTx(_ *gorm.DB, _ *model.Orden) error { return nil }
func (r *fixedOrdenRepo) CrearDetallesTx(_ *gorm.DB, _ []model.OrdenDetalle) error { return nil }
func (r *fixedOrdenRepo) ObtenerPorID(_ context.Context, id uuid.UUID) (*model.Orden, error) {
	if r.orden == nil || r.orden.ID != id {
		return nil, gorm.ErrRecordNotFound
	}
	return r.orden, nil
}
func (r *fixedOrdenRepo) Listar(_ context.Context) ([]model.Orden, error) { return nil, nil }
func (r *fixedOrdenRepo) Actualizar(_ context.Context, _ *model.Orden) error { return nil }
func (r *fixedOrdenRepo) ActualizarEstadoTx(_ *gorm.DB, _ uuid.UUID, _ string) error {
	return nil
}
func (r *fixedOrdenRepo) Desactivar(_ context.Context, _ uuid.UUID) error { return nil }
func (r *fixedOrdenRepo) ObtenerDetallePorID(_ context.Context, _ uuid.UUID) (*model.OrdenDetalle, error) {
	return nil, gorm.ErrRecordNotFound
}
func (r *fixedOrdenRepo) ListarDetalles(_ context.Context) ([]model.OrdenDetalle, error) {
	return nil, nil
}
func (r *fixedOrdenRepo) ListarDetallesPorOrden(_ context.Context, _ uuid.UUID) ([]model.OrdenDetalle, error) {
	return nil, nil
}
func (r *fixedOrdenRepo) CrearDetalle(_ context.Context, _ *model.OrdenDetalle) error { return nil }
func (r *fixedOrdenRepo) ActualizarDetalle(_ context.Context, _ *model.OrdenDetalle) error { return nil }
func (r *fixedOrdenRepo) DesactivarDetalle(_ context.Context, _ uuid.UUID) error { return nil }
func (r *fixedOrdenRepo) DB() *gorm.DB { return nil }

var _ repository.OrdenRepository = (*fixedOrdenRepo)(nil)

func TestFacturaWorker_RenderizaPDF(t *testing.T) {
	orden := &model.Orden{
		ID:          uuid.New(),
		NumeroOrden: 42,
		Detalles: []model.OrdenDetalle{
			{
				Cantidad: 2,
				Total:    decimal.NewFromFloat(230),
				Producto: &model.Producto{Nombre: "Plato tipico"},
			},
		},
	}
	factura := &model.Factura{
		ID:         uuid.New(),
		OrdenID:    orden.ID,
		Fecha:      time.Now(),
		Subtotal:   decimal.NewFromFloat(200),
		Impuesto:   decimal.NewFromFloat(30),
		Total:      decimal.NewFromFloat(230),
		MetodoPago: "efectivo",
	}

	dir := t.TempDir()
	w := NewFacturaWorker(&fixedFacturaRepo{factura: factura}, &fixedOrdenRepo{orden: orden}, nil, dir, "POSWeb")

	raw, err := json.Marshal(FacturaJobPayload{FacturaID: factura.ID.String()})
	require.NoError(t, err)
	require.NoError(t, w.Process(context.Background(), raw))

	// The PDF landed in the storage dir.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Contains(t, entries[0].Name(), factura.ID.String())
}

func TestFacturaWorker_PayloadMalformadoNoReintenta(t *testing.T) {
	w := NewFacturaWorker(&fixedFacturaRepo{}, &fixedOrdenRepo{}, nil, t.TempDir(), "POSWeb")

	// Garbage payloads return nil: retrying them can never succeed.
	assert.NoError(t, w.Process(context.Background(), json.RawMessage("{malformed")))
	assert.NoError(t, w.Process(context.Background(), json.RawMessage(`{"factura_id":"no-uuid"}`)))
}

func TestFacturaWorker_FacturaInexistenteEsReintentable(t *testing.T) {
	w := NewFacturaWorker(&fixedFacturaRepo{}, &fixedOrdenRepo{}, nil, t.TempDir(), "POSWeb")

	raw, err := json.Marshal(FacturaJobPayload{FacturaID: uuid.NewString()})
	require.NoError(t, err)
	// The factura row may not be visible yet; the error bubbles up so the
	// pool retries the job.
	assert.Error(t, w.Process(context.Background(), raw))
}

func TestWithRetry_ReintentaHastaExito(t *testing.T) {
	intentos := 0
	err := withRetry(context.Background(), 3, func(int) error {
		intentos++
		if intentos < 2 {
			return assert.AnError
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 2, intentos)
}

func TestWithRetry_AgotaIntentos(t *testing.T) {
	intentos := 0
	err := withRetry(context.Background(), 3, func(int) error {
		intentos++
		return assert.AnError
	})
	require.Error(t, err)
	assert.Equal(t, 3, intentos)
}

func TestPopBackoff_SoloAnteErroresReales(t *testing.T) {
	assert.Zero(t, popBackoff(nil))
	assert.Zero(t, popBackoff(redis.Nil))
	assert.Equal(t, 2*time.Second, popBackoff(assert.AnError))
}
