package mailing

import (
	"Food-Inventory/internal/utils"

	"gopkg.in/gomail.v2"
)

type MailConfig struct {
	SMTPHost     string
	SMTPPort     int
	SMTPSender   string
	SMTPEmail    string
	SMTPPassword string
}

func LoadMailConfig(cfg *utils.Config) MailConfig {
	return MailConfig{
		SMTPHost:     cfg.SMTPHost,
		SMTPPort:     cfg.SMTPPort,
		SMTPSender:   cfg.SMTPSenderName,
		SMTPEmail:    cfg.SMTPAuthEmail,
		SMTPPassword: cfg.SMTPAuthPassword,
	}
}

type Sender interface {
	SendMail(toEmail string, subject string, body string) error
}

type Mailer struct {
	config MailConfig
	dialer *gomail.Dialer
}

func NewMailer(config MailConfig) *Mailer {
	return &Mailer{
		config: config,
		dialer: gomail.NewDialer(
			config.SMTPHost,
			config.SMTPPort,
			config.SMTPEmail,
			config.SMTPPassword,
		),
	}
}

func (m *Mailer) NewMessage(toEmail string, subject string, body string) *gomail.Message {
	mailer := gomail.NewMessage()
	if m.config.SMTPSender != "" {
		mailer.SetAddressHeader("From", m.config.SMTPEmail, m.config.SMTPSender)
	} else {
		mailer.SetHeader("From", m.config.SMTPEmail)
	}
	mailer.SetHeader("To", toEmail)
	mailer.SetHeader("Subject", subject)
	mailer.SetBody("text/html", body)
	return mailer
}

func (m *Mailer) SendMail(toEmail string, subject string, body string) error {
	return m.dialer.DialAndSend(m.NewMessage(toEmail, subject, body))
}
