package service

import (
	"context"
	"time"

	"github.com/EmSanchezM/posweb-backend/internal/apierror"
	"github.com/EmSanchezM/posweb-backend/internal/dto"
	"github.com/EmSanchezM/posweb-backend/internal/model"
	"github.com/EmSanchezM/posweb-backend/internal/repository"
	"github.com/EmSanchezM/posweb-backend/internal/worker"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type FacturaService interface {
	Crear(ctx context.Context, req dto.CrearFacturaRequest) (*dto.FacturaResponse, error)
	ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.FacturaResponse, error)
	Listar(ctx context.Context) ([]dto.FacturaResponse, error)
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarFacturaRequest) (*dto.FacturaResponse, error)
	Desactivar(ctx context.Context, id uuid.UUID) error
}

type facturaService struct {
	repo         repository.FacturaRepository
	ordenRepo    repository.OrdenRepository
	empleadoRepo repository.EmpleadoRepository
	dispatcher   *worker.Dispatcher
}

func NewFacturaService(
	repo repository.FacturaRepository,
	ordenRepo repository.OrdenRepository,
	empleadoRepo repository.EmpleadoRepository,
	dispatcher *worker.Dispatcher,
) FacturaService {
	return &facturaService{repo: repo, ordenRepo: ordenRepo, empleadoRepo: empleadoRepo, dispatcher: dispatcher}
}

func mapFactura(f *model.Factura) *dto.FacturaResponse {
	return &dto.FacturaResponse{
		ID:         f.ID.String(),
		OrdenID:    f.OrdenID.String(),
		EmpleadoID: f.EmpleadoID.String(),
		Fecha:      f.Fecha.Format(time.RFC3339),
		Subtotal:   f.Subtotal,
		Impuesto:   f.Impuesto,
		Descuento:  f.Descuento,
		Propina:    f.Propina,
		CostoEnvio: f.CostoEnvio,
		Total:      f.Total,
		MetodoPago: f.MetodoPago,
		RTN:        f.RTN,
		Detalles:   f.Detalles,
		Activo:     f.Activo,
	}
}

// ── Crear ─────────────────────────────────────────────────────────────────────
// Closes an open order: totals are recomputed from the persisted detalles
// (never taken from the request), the factura row and the estado flip to
// "facturada" commit in one transaction, and the PDF/email rendering runs
// async so billing latency never depends on SMTP.

func (s *facturaService) Crear(ctx context.Context, req dto.CrearFacturaRequest) (*dto.FacturaResponse, error) {
	ordenID, err := uuid.Parse(req.OrdenID)
	if err != nil {
		return nil, apierror.BadID(req.OrdenID)
	}
	empleadoID, err := uuid.Parse(req.EmpleadoID)
	if err != nil {
		return nil, apierror.BadID(req.EmpleadoID)
	}

	orden, err := s.ordenRepo.ObtenerPorID(ctx, ordenID)
	if err != nil {
		return nil, notFound(err, "Orden no encontrada")
	}
	if orden.Estado != model.OrdenAbierta {
		return nil, apierror.Conflict("La orden ya fue facturada")
	}
	if len(orden.Detalles) == 0 {
		return nil, apierror.Validation("order", "La orden no tiene detalles")
	}
	if _, err := s.empleadoRepo.ObtenerPorID(ctx, empleadoID); err != nil {
		return nil, notFound(err, "Empleado no encontrado")
	}

	subtotal := decimal.Zero
	impuesto := decimal.Zero
	descuento := decimal.Zero
	for _, d := range orden.Detalles {
		if !d.Activo {
			continue
		}
		subtotal = subtotal.Add(d.Subtotal)
		impuesto = impuesto.Add(d.Impuesto)
		descuento = descuento.Add(d.Descuento)
	}
	costoEnvio := decimal.Zero
	if orden.Envio != nil {
		costoEnvio = orden.Envio.Costo
	}
	total := subtotal.Add(impuesto).Sub(descuento).Add(req.Propina).Add(costoEnvio)

	factura := &model.Factura{
		OrdenID:    ordenID,
		EmpleadoID: empleadoID,
		Fecha:      time.Now().UTC(),
		Subtotal:   subtotal,
		Impuesto:   impuesto,
		Descuento:  descuento,
		Propina:    req.Propina,
		CostoEnvio: costoEnvio,
		Total:      total,
		MetodoPago: req.MetodoPago,
		RTN:        req.RTN,
		Detalles:   req.Detalles,
		Activo:     true,
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.CrearTx(tx, factura); err != nil {
			return err
		}
		return s.ordenRepo.ActualizarEstadoTx(tx, ordenID, model.OrdenFacturada)
	})
	if txErr != nil {
		return nil, apierror.Wrap(txErr)
	}

	if s.dispatcher != nil {
		payload := worker.FacturaJobPayload{FacturaID: factura.ID.String()}
		if req.EmailCliente != "" {
			email := req.EmailCliente
			payload.EmailCliente = &email
		}
		if err := s.dispatcher.EnqueueFactura(ctx, payload); err != nil {
			// The factura is already committed; rendering can be retried later.
			log.Warn().Err(err).Str("factura_id", factura.ID.String()).Msg("failed to enqueue factura job")
		}
	}

	return mapFactura(factura), nil
}

func (s *facturaService) ObtenerPorID(ctx context.Context, id uuid.UUID) (*dto.FacturaResponse, error) {
	f, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, notFound(err, "Factura no encontrada")
	}
	return mapFactura(f), nil
}

func (s *facturaService) Listar(ctx context.Context) ([]dto.FacturaResponse, error) {
	list, err := s.repo.Listar(ctx)
	if err != nil {
		return nil, apierror.Internal(err)
	}
	result := make([]dto.FacturaResponse, 0, len(list))
	for i := range list {
		result = append(result, *mapFactura(&list[i]))
	}
	return result, nil
}

func (s *facturaService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarFacturaRequest) (*dto.FacturaResponse, error) {
	f, err := s.repo.ObtenerPorID(ctx, id)
	if err != nil {
		return nil, notFound(err, "Factura no encontrada")
	}

	if req.MetodoPago != nil {
		f.MetodoPago = *req.MetodoPago
	}
	if req.RTN != nil {
		f.RTN = *req.RTN
	}
	if req.Detalles != nil {
		f.Detalles = *req.Detalles
	}

	if err := s.repo.Actualizar(ctx, f); err != nil {
		return nil, apierror.Internal(err)
	}
	return mapFactura(f), nil
}

func (s *facturaService) Desactivar(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.ObtenerPorID(ctx, id); err != nil {
		return notFound(err, "Factura no encontrada")
	}
	if err := s.repo.Desactivar(ctx, id); err != nil {
		return apierror.Internal(err)
	}
	return nil
}
