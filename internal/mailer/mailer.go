package mailer

import (
	"fmt"

	"github.com/landsetu/landsetu/internal/app/config"
	"gopkg.in/gomail.v2"
)

// Mailer sends inquiry notifications to sellers over SMTP.
type Mailer struct {
	dialer *gomail.Dialer
	from   string
}

func New(cfg config.SMTPConfig) *Mailer {
	username := cfg.Username
	if username == "" {
		username = cfg.SenderEmail
	}
	return &Mailer{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, username, cfg.Password),
		from:   cfg.SenderEmail,
	}
}

func (m *Mailer) SendInquiryNotification(to, landTitle, inquirerName, message string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", fmt.Sprintf("New inquiry for your listing: %s", landTitle))
	msg.SetBody("text/plain", fmt.Sprintf(
		"%s is interested in your listing '%s'.\n\nMessage:\n%s\n\nLog in to your dashboard to respond.",
		inquirerName, landTitle, message,
	))

	return m.dialer.DialAndSend(msg)
}
