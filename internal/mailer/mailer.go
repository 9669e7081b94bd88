// Package mailer sends the booking-confirmation email. The interface exists
// so confirmation logic never depends on a live SMTP server; without a
// configured host the service falls back to log-only delivery.
package mailer

import (
	"bytes"
	"context"
	"html/template"
	"log/slog"
	"net/smtp"

	"barber-booking/internal/domain/booking"
	"barber-booking/internal/pkg/config"
	"barber-booking/internal/pkg/errs"
)

type Mailer interface {
	SendConfirmation(ctx context.Context, rec booking.Record) error
}

func NewFromConfig(cfg config.MailConfig, slogger *slog.Logger) Mailer {
	if !cfg.Enabled() {
		slogger.Info("no SMTP host configured, confirmation emails will only be logged")
		return &LogMailer{slogger: slogger}
	}
	return &SMTPMailer{cfg: cfg, slogger: slogger}
}

type SMTPMailer struct {
	cfg     config.MailConfig
	slogger *slog.Logger
}

func (m *SMTPMailer) SendConfirmation(_ context.Context, rec booking.Record) error {
	if rec.Email == "" {
		return errs.New("booking has no email address")
	}

	body, err := renderConfirmation(rec)
	if err != nil {
		return errs.Wrap(err, "failed to render confirmation email")
	}

	msg := bytes.Buffer{}
	msg.WriteString("From: " + m.cfg.From + "\r\n")
	msg.WriteString("To: " + rec.Email + "\r\n")
	msg.WriteString("Subject: Booking Confirmed - Max Barber\r\n")
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	msg.WriteString("\r\n")
	msg.Write(body)

	auth := smtp.PlainAuth("", m.cfg.User, m.cfg.Password, m.cfg.Host)
	if err := smtp.SendMail(m.cfg.Addr(), auth, m.cfg.User, []string{rec.Email}, msg.Bytes()); err != nil {
		return errs.Wrap(err, "failed to send confirmation email")
	}

	m.slogger.Info("confirmation email sent", "to", rec.Email, "booking_id", rec.ID.String())
	return nil
}

// LogMailer stands in when SMTP is not configured.
type LogMailer struct {
	slogger *slog.Logger
}

func (m *LogMailer) SendConfirmation(_ context.Context, rec booking.Record) error {
	m.slogger.Info("simulated confirmation email",
		"to", rec.Email,
		"service", rec.Service,
		"date", rec.Date,
		"time", rec.Time,
	)
	return nil
}

var confirmationTmpl = template.Must(template.New("confirmation").Parse(`
<div style="font-family: 'Oswald', sans-serif; color: #333; max-width: 600px; margin: auto; border: 1px solid #c5a059; padding: 20px;">
    <h2 style="color: #c5a059; border-bottom: 2px solid #c5a059; padding-bottom: 10px;">Booking Confirmed</h2>
    <p>Hi <strong>{{.Name}}</strong>,</p>
    <p>Great news! Your booking at <strong>Max Barber</strong> has been confirmed.</p>
    <div style="background: #f9f9f9; padding: 15px; border-radius: 5px; margin: 20px 0;">
        <p><strong>Service:</strong> {{.Service}}</p>
        <p><strong>Date:</strong> {{.Date}}</p>
        <p><strong>Time:</strong> {{.Time}}</p>
    </div>
    <p>We look forward to seeing you!</p>
    <p style="font-size: 0.8rem; color: #888;">- Max Barber Team</p>
</div>
`))

func renderConfirmation(rec booking.Record) ([]byte, error) {
	var buf bytes.Buffer
	if err := confirmationTmpl.Execute(&buf, rec); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
