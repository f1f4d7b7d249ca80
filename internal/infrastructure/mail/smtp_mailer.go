// Package mail envío de correos salientes por SMTP.
package mail

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/jhoicas/evcharge-admin-api/internal/application/ports"
	"github.com/jhoicas/evcharge-admin-api/pkg/config"
)

var _ ports.Mailer = (*SMTPMailer)(nil)

const credentialsSubject = "Your Charging Point Operator account"

const credentialsBody = `<p>Your Charging Point Operator account has been created.</p>
<p>Username: <b>%s</b><br/>Temporary password: <b>%s</b></p>
<p>Please change your password after your first login.</p>`

// Sender envía mensajes ya armados; *gomail.Dialer lo implementa.
type Sender interface {
	DialAndSend(m ...*gomail.Message) error
}

// SMTPMailer implementa ports.Mailer.
type SMTPMailer struct {
	sender Sender
	from   string
}

// NewSMTPMailer construye el mailer con un gomail.Dialer.
func NewSMTPMailer(cfg config.SMTPConfig) *SMTPMailer {
	return NewMailer(gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password), cfg.From)
}

// NewMailer construye el mailer sobre un Sender arbitrario.
func NewMailer(sender Sender, from string) *SMTPMailer {
	return &SMTPMailer{sender: sender, from: from}
}

// SendCPOCredentials envía usuario y contraseña temporal al contacto del CPO.
func (m *SMTPMailer) SendCPOCredentials(ctx context.Context, to, username, password string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", credentialsSubject)
	msg.SetBody("text/html", fmt.Sprintf(credentialsBody, username, password))

	if err := m.sender.DialAndSend(msg); err != nil {
		return fmt.Errorf("smtp: %w", err)
	}
	return nil
}
