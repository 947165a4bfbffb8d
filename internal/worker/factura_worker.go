package worker

// factura_worker.go
// Renders the PDF for a freshly created factura and, when the customer left
// an email, enqueues the send as a separate email job.

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/EmSanchezM/posweb-backend/internal/infra"
	"github.com/EmSanchezM/posweb-backend/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// FacturaJobPayload is the job envelope sent to QueueFactura.
type FacturaJobPayload struct {
	FacturaID    string  `json:"factura_id"`
	EmailCliente *string `json:"email_cliente,omitempty"`
}

type FacturaWorker struct {
	facturaRepo    repository.FacturaRepository
	ordenRepo      repository.OrdenRepository
	dispatcher     *Dispatcher
	pdfStoragePath string
	nombreNegocio  string
}

func NewFacturaWorker(
	facturaRepo repository.FacturaRepository,
	ordenRepo repository.OrdenRepository,
	dispatcher *Dispatcher,
	pdfStoragePath string,
	nombreNegocio string,
) *FacturaWorker {
	return &FacturaWorker{
		facturaRepo:    facturaRepo,
		ordenRepo:      ordenRepo,
		dispatcher:     dispatcher,
		pdfStoragePath: pdfStoragePath,
		nombreNegocio:  nombreNegocio,
	}
}

// Process handles a single factura job:
//  1. Fetch the Factura and its Orden (with detalles) from DB
//  2. Render the PDF receipt
//  3. Enqueue an email job when the customer left an address
func (w *FacturaWorker) Process(ctx context.Context, raw json.RawMessage) error {
	var payload FacturaJobPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("factura_worker: invalid payload")
		return nil // malformed payloads are not retryable
	}

	facturaID, err := uuid.Parse(payload.FacturaID)
	if err != nil {
		log.Error().Str("factura_id", payload.FacturaID).Msg("factura_worker: invalid factura_id")
		return nil
	}

	factura, err := w.facturaRepo.ObtenerPorID(ctx, facturaID)
	if err != nil {
		log.Error().Err(err).Str("factura_id", payload.FacturaID).Msg("factura_worker: factura not found")
		return err
	}
	orden, err := w.ordenRepo.ObtenerPorID(ctx, factura.OrdenID)
	if err != nil {
		log.Error().Err(err).Str("factura_id", payload.FacturaID).Msg("factura_worker: orden not found")
		return err
	}

	pdfPath, err := infra.GenerateFacturaPDF(w.nombreNegocio, factura, orden, w.pdfStoragePath)
	if err != nil {
		log.Error().Err(err).Str("factura_id", payload.FacturaID).Msg("factura_worker: PDF generation failed")
		return err
	}
	log.Info().Str("pdf", pdfPath).Str("factura_id", payload.FacturaID).Msg("factura_worker: PDF generated")

	if payload.EmailCliente != nil && *payload.EmailCliente != "" {
		emailJob := EmailJobPayload{
			ToEmail: *payload.EmailCliente,
			Subject: fmt.Sprintf("Factura %s — Orden #%d", w.nombreNegocio, orden.NumeroOrden),
			Body:    fmt.Sprintf("Adjunto encontrara su factura.\nTotal: L %s", factura.Total.StringFixed(2)),
			PDFPath: pdfPath,
		}
		if err := w.dispatcher.EnqueueEmail(ctx, emailJob); err != nil {
			log.Warn().Err(err).Str("email", *payload.EmailCliente).Msg("factura_worker: failed to enqueue email")
		}
	}
	return nil
}
