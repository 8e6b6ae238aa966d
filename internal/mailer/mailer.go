// Package mailer delivers outbound email over SMTP. It is consumed by
// the queue consumer only; request handlers never talk SMTP directly.
package mailer

import (
	"fmt"
	"net/smtp"
	"strings"
)

// Mailer sends mail through a single authenticated SMTP account.
// SendMail negotiates STARTTLS when the server advertises it, which
// covers the submission port 587 setup this service runs against.
type Mailer struct {
	host string
	port string
	from string
	auth smtp.Auth
}

// New builds a Mailer for the given SMTP endpoint and credentials.
func New(host, port, username, password, from string) *Mailer {
	return &Mailer{
		host: host,
		port: port,
		from: from,
		auth: smtp.PlainAuth("", username, password, host),
	}
}

// Send delivers a single message. The body is sent as text/html when
// html is true, text/plain otherwise. A nil error means the SMTP server
// accepted the message, not that it reached the inbox.
func (m *Mailer) Send(to, subject, body string, html bool) error {
	contentType := "text/plain; charset=\"utf-8\""
	if html {
		contentType = "text/html; charset=\"utf-8\""
	}
	var msg strings.Builder
	fmt.Fprintf(&msg, "From: %s\r\n", m.from)
	fmt.Fprintf(&msg, "To: %s\r\n", to)
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	msg.WriteString("MIME-Version: 1.0\r\n")
	fmt.Fprintf(&msg, "Content-Type: %s\r\n", contentType)
	msg.WriteString("\r\n")
	msg.WriteString(body)

	addr := m.host + ":" + m.port
	return smtp.SendMail(addr, m.auth, m.from, []string{to}, []byte(msg.String()))
}
