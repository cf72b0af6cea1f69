// internal/app/system/mailer/mailer.go

// Package mailer sends transactional email over SMTP. The Mailer is
// constructed once at startup from config and injected into handlers;
// there is no lazily-initialized global.
package mailer

import (
	"fmt"
	"mime"
	"net/smtp"
	"strings"
)

// Email is one outbound message. TextBody is required; HTMLBody, when set,
// is sent alongside it as a multipart/alternative part.
type Email struct {
	To       string
	Subject  string
	TextBody string
	HTMLBody string
}

// Mailer holds SMTP connection settings.
// Works with Mailpit locally (host localhost, port 1025, no auth) and
// authenticated relays like SES in production.
type Mailer struct {
	host     string
	port     int
	username string
	password string
	from     string
	fromName string
}

// New creates a Mailer. If username is empty, Send connects without
// authentication.
func New(host string, port int, username, password, from, fromName string) *Mailer {
	return &Mailer{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
		fromName: fromName,
	}
}

const boundary = "treadhub-alt-3f9a1c"

// Send delivers the message. Header-bound values pass through
// sanitizeHeader first so user-supplied names and subjects cannot inject
// CRLF sequences into the SMTP conversation.
func (m *Mailer) Send(e Email) error {
	to := sanitizeHeader(e.To)
	if to == "" {
		return fmt.Errorf("mailer: empty recipient")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "From: %s <%s>\r\n",
		mime.QEncoding.Encode("utf-8", sanitizeHeader(m.fromName)), sanitizeHeader(m.from))
	fmt.Fprintf(&b, "To: %s\r\n", to)
	fmt.Fprintf(&b, "Subject: %s\r\n",
		mime.QEncoding.Encode("utf-8", sanitizeHeader(e.Subject)))
	b.WriteString("MIME-Version: 1.0\r\n")

	if e.HTMLBody != "" {
		fmt.Fprintf(&b, "Content-Type: multipart/alternative; boundary=%q\r\n\r\n", boundary)

		fmt.Fprintf(&b, "--%s\r\n", boundary)
		b.WriteString("Content-Type: text/plain; charset=utf-8\r\n\r\n")
		b.WriteString(e.TextBody)
		b.WriteString("\r\n")

		fmt.Fprintf(&b, "--%s\r\n", boundary)
		b.WriteString("Content-Type: text/html; charset=utf-8\r\n\r\n")
		b.WriteString(e.HTMLBody)
		b.WriteString("\r\n")

		fmt.Fprintf(&b, "--%s--\r\n", boundary)
	} else {
		b.WriteString("Content-Type: text/plain; charset=utf-8\r\n\r\n")
		b.WriteString(e.TextBody)
		b.WriteString("\r\n")
	}

	addr := fmt.Sprintf("%s:%d", m.host, m.port)

	var auth smtp.Auth
	if m.username != "" {
		auth = smtp.PlainAuth("", m.username, m.password, m.host)
	}

	if err := smtp.SendMail(addr, auth, m.from, []string{to}, []byte(b.String())); err != nil {
		return fmt.Errorf("mailer: send to %s: %w", to, err)
	}
	return nil
}

// sanitizeHeader strips CR and LF so a value can be placed in a header
// without terminating it early.
func sanitizeHeader(s string) string {
	s = strings.ReplaceAll(s, "\r", "")
	s = strings.ReplaceAll(s, "\n", "")
	return strings.TrimSpace(s)
}
