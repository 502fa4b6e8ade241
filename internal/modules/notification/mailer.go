package notification

import (
	"context"

	"gopkg.in/gomail.v2"
)

// Gmail relay, matching the account the credentials belong to.
const (
	smtpHost = "smtp.gmail.com"
	smtpPort = 587
)

// Mailer delivers composed emails over an authenticated SMTP relay.
type Mailer struct {
	host     string
	port     int
	user     string
	password string
}

func NewMailer(user, password string) *Mailer {
	return &Mailer{
		host:     smtpHost,
		port:     smtpPort,
		user:     user,
		password: password,
	}
}

// Configured reports whether both relay credentials are present.
func (m *Mailer) Configured() bool {
	return m.user != "" && m.password != ""
}

// Send delivers one email. No retries; a failed send surfaces to the caller.
func (m *Mailer) Send(ctx context.Context, e Email) error {
	msg := gomail.NewMessage()
	msg.SetAddressHeader("From", m.user, e.FromName)
	msg.SetHeader("To", e.To)
	msg.SetHeader("Subject", e.Subject)
	msg.SetBody("text/plain", e.Text)
	msg.AddAlternative("text/html", e.HTML)

	if err := ctx.Err(); err != nil {
		return err
	}

	d := gomail.NewDialer(m.host, m.port, m.user, m.password)
	return d.DialAndSend(msg)
}
