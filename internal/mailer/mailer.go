package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"austay/internal/config"
)

// Sender delivers outbound notifications. Delivery failures are the
// caller's to log; they are never turned into request errors.
type Sender interface {
	Send(to, subject, body string) error
}

// SMTPSender sends mail through the configured SMTP relay.
type SMTPSender struct {
	cfg config.SMTPConfig
}

func NewSMTPSender(cfg config.SMTPConfig) *SMTPSender {
	return &SMTPSender{cfg: cfg}
}

func (s *SMTPSender) Send(to, subject, body string) error {
	if s.cfg.Host == "" || s.cfg.User == "" {
		return fmt.Errorf("smtp credentials not configured")
	}

	from := s.cfg.From
	if from == "" {
		from = s.cfg.User
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", from, "Suporte Austay")
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(s.cfg.Host, s.cfg.Port, s.cfg.User, s.cfg.Password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

// ResetTokenBody renders the password recovery email. ttlMinutes is the
// configured lifetime of the verification code.
func ResetTokenBody(userName, token string, ttlMinutes int) string {
	if userName == "" {
		userName = "usuário"
	}
	return fmt.Sprintf(
		`<p>Olá, %s.</p>
<p>Recebemos um pedido de recuperação de senha para a sua conta.</p>
<p>Seu código de verificação é: <strong>%s</strong></p>
<p>O código expira em %d minutos. Se você não pediu a recuperação, ignore este e-mail.</p>
<p>Suporte Austay</p>`,
		userName, token, ttlMinutes,
	)
}
