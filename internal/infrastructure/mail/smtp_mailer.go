// Package mail адаптер відправки замовлень через SMTP (wneessen/go-mail).
package mail

import (
	"fmt"

	gomail "github.com/wneessen/go-mail"

	"github.com/fotosvit/fotosvit-api/internal/application/usecase"
	"github.com/fotosvit/fotosvit-api/pkg/config"
)

var _ usecase.Mailer = (*SMTPMailer)(nil)

// SMTPMailer відправляє листи через SMTP із TLS. З'єднання створюється на
// кожну відправку: замовлення рідкісні, тримати постійне з'єднання немає сенсу.
type SMTPMailer struct {
	cfg config.SMTPConfig
}

// NewSMTPMailer будує адаптер пошти.
func NewSMTPMailer(cfg config.SMTPConfig) *SMTPMailer {
	return &SMTPMailer{cfg: cfg}
}

// Send відправляє HTML-лист на адресу студії.
func (m *SMTPMailer) Send(subject, htmlBody string) error {
	msg := gomail.NewMsg()
	if err := msg.From(m.cfg.User); err != nil {
		return fmt.Errorf("адреса відправника: %w", err)
	}
	if err := msg.To(m.cfg.To); err != nil {
		return fmt.Errorf("адреса отримувача: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(gomail.TypeTextHTML, htmlBody)

	client, err := gomail.NewClient(m.cfg.Host,
		gomail.WithPort(m.cfg.Port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(m.cfg.User),
		gomail.WithPassword(m.cfg.Password),
		gomail.WithTLSPolicy(gomail.TLSMandatory),
	)
	if err != nil {
		return fmt.Errorf("SMTP-клієнт: %w", err)
	}
	return client.DialAndSend(msg)
}
