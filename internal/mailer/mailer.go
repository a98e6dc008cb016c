// Package mailer delivers contact-form submissions over SMTP. Port 465
// speaks implicit TLS; every other port upgrades the session with STARTTLS.
package mailer

import (
	"crypto/tls"
	"errors"
	"fmt"
	"net"
	"net/smtp"
	"strings"
	"time"

	"github.com/mediavault/instafetch/internal/logger"
)

// ErrNotConfigured is returned when no SMTP host or sender is set.
var ErrNotConfigured = errors.New("mailer: smtp is not configured")

const dialTimeout = 20 * time.Second

// Options configures a Mailer.
type Options struct {
	Host     string
	Port     int
	Username string
	Password string
	// From is the envelope sender. Falls back to Username when empty.
	From string
	// To is the fixed recipient for contact submissions.
	To     string
	Logger logger.Logger
}

// Message is one contact-form submission.
type Message struct {
	Name    string
	Email   string
	Subject string
	Body    string
}

// Mailer sends contact mail through a single SMTP account.
type Mailer struct {
	opts Options
	log  logger.Logger
}

// New creates a Mailer. A Mailer with no host is valid and reports
// ErrNotConfigured on Send, so the contact route can stay mounted.
func New(opts Options) *Mailer {
	if opts.Logger == nil {
		opts.Logger = logger.NewNop()
	}
	if opts.From == "" {
		opts.From = opts.Username
	}
	return &Mailer{opts: opts, log: opts.Logger}
}

// Configured reports whether Send can do anything useful.
func (m *Mailer) Configured() bool {
	return m.opts.Host != "" && m.opts.From != "" && m.opts.To != ""
}

// Send delivers one contact message.
func (m *Mailer) Send(msg Message) error {
	if !m.Configured() {
		return ErrNotConfigured
	}

	payload := m.render(msg)
	addr := net.JoinHostPort(m.opts.Host, fmt.Sprintf("%d", m.opts.Port))

	var err error
	if m.opts.Port == 465 {
		err = m.sendImplicitTLS(addr, payload)
	} else {
		err = m.sendStartTLS(addr, payload)
	}
	if err != nil {
		m.log.Error("Contact mail delivery failed",
			logger.String("host", m.opts.Host),
			logger.Int("port", m.opts.Port),
			logger.Error(err),
		)
		return fmt.Errorf("mailer: send: %w", err)
	}

	m.log.Info("Contact mail delivered", logger.String("to", m.opts.To))
	return nil
}

func (m *Mailer) render(msg Message) []byte {
	subject := msg.Subject
	if subject == "" {
		subject = "New message from Media Vault"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", m.opts.From)
	fmt.Fprintf(&b, "To: %s\r\n", m.opts.To)
	if msg.Email != "" {
		fmt.Fprintf(&b, "Reply-To: %s\r\n", msg.Email)
	}
	fmt.Fprintf(&b, "Subject: %s\r\n", subject)
	b.WriteString("MIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n")
	fmt.Fprintf(&b, "Name: %s\r\n", orDash(msg.Name))
	fmt.Fprintf(&b, "Email: %s\r\n\r\n", orDash(msg.Email))
	fmt.Fprintf(&b, "Message:\r\n%s\r\n", msg.Body)
	return []byte(b.String())
}

func (m *Mailer) sendImplicitTLS(addr string, payload []byte) error {
	dialer := &net.Dialer{Timeout: dialTimeout}
	conn, err := tls.DialWithDialer(dialer, "tcp", addr, &tls.Config{ServerName: m.opts.Host})
	if err != nil {
		return err
	}

	client, err := smtp.NewClient(conn, m.opts.Host)
	if err != nil {
		conn.Close()
		return err
	}
	return m.transact(client, payload)
}

func (m *Mailer) sendStartTLS(addr string, payload []byte) error {
	conn, err := net.DialTimeout("tcp", addr, dialTimeout)
	if err != nil {
		return err
	}

	client, err := smtp.NewClient(conn, m.opts.Host)
	if err != nil {
		conn.Close()
		return err
	}
	if err := client.StartTLS(&tls.Config{ServerName: m.opts.Host}); err != nil {
		client.Close()
		return err
	}
	return m.transact(client, payload)
}

func (m *Mailer) transact(client *smtp.Client, payload []byte) error {
	defer client.Close()

	if m.opts.Username != "" && m.opts.Password != "" {
		auth := smtp.PlainAuth("", m.opts.Username, m.opts.Password, m.opts.Host)
		if err := client.Auth(auth); err != nil {
			return err
		}
	}
	if err := client.Mail(m.opts.From); err != nil {
		return err
	}
	if err := client.Rcpt(m.opts.To); err != nil {
		return err
	}
	w, err := client.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write(payload); err != nil {
		w.Close()
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}
	return client.Quit()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
