package worker

import (
	"context"
	"encoding/json"

	"github.com/EmSanchezM/posweb-backend/internal/infra"

	"github.com/rs/zerolog/log"
)

// EmailJobPayload is the envelope the factura worker enqueues once the PDF
// is rendered.
type EmailJobPayload struct {
	ToEmail string `json:"to_email"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
	PDFPath string `json:"pdf_path"`
}

// EmailWorker delivers invoice emails through the SMTP mailer.
type EmailWorker struct {
	mailer *infra.Mailer
}

func NewEmailWorker(mailer *infra.Mailer) *EmailWorker {
	return &EmailWorker{mailer: mailer}
}

// Process sends one queued email. Malformed or addressless payloads are
// dropped rather than retried.
func (w *EmailWorker) Process(_ context.Context, raw json.RawMessage) error {
	var payload EmailJobPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("email worker: invalid payload")
		return nil
	}
	if payload.ToEmail == "" {
		log.Warn().Msg("email worker: payload without recipient, skipping")
		return nil
	}

	err := w.mailer.SendFactura(infra.FacturaMail{
		To:      payload.ToEmail,
		Subject: payload.Subject,
		Body:    payload.Body,
		PDFPath: payload.PDFPath,
	})
	if err != nil {
		log.Error().Err(err).Str("to", payload.ToEmail).Msg("email worker: send failed")
		return err
	}
	log.Info().Str("to", payload.ToEmail).Msg("email worker: factura enviada")
	return nil
}
