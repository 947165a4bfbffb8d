package infra

import (
	"fmt"
	"net/smtp"

	"github.com/EmSanchezM/posweb-backend/internal/config"

	"github.com/jordan-wright/email"
)

// FacturaMail describes one outgoing invoice notification. PDFPath may be
// empty for a text-only message.
type FacturaMail struct {
	To      string
	Subject string
	Body    string
	PDFPath string
}

// Mailer sends invoice emails over plain-auth SMTP.
type Mailer struct {
	host string
	addr string
	auth smtp.Auth
	from string
}

func NewMailer(cfg *config.Config) *Mailer {
	return &Mailer{
		host: cfg.SMTPHost,
		addr: fmt.Sprintf("%s:%d", cfg.SMTPHost, cfg.SMTPPort),
		auth: smtp.PlainAuth("", cfg.SMTPUser, cfg.SMTPPassword, cfg.SMTPHost),
		from: cfg.SMTPUser,
	}
}

// SendFactura delivers the invoice, attaching the rendered PDF when a path
// is given.
func (m *Mailer) SendFactura(msg FacturaMail) error {
	e := email.NewEmail()
	e.From = m.from
	e.To = []string{msg.To}
	e.Subject = msg.Subject
	e.Text = []byte(msg.Body)

	if msg.PDFPath != "" {
		if _, err := e.AttachFile(msg.PDFPath); err != nil {
			return fmt.Errorf("mailer: attach pdf: %w", err)
		}
	}
	return e.Send(m.addr, m.auth)
}
