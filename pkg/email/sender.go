package email

import (
	"context"
	"fmt"
	"net/mail"
	"net/smtp"
	"strconv"
	"strings"

	"github.com/fangbc5/flare/pkg/notification"
)

// submitFunc matches smtp.SendMail so tests can intercept the wire call
// without a live SMTP server.
type submitFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// Sender delivers notifications over SMTP. It implements
// notification.Sender for the email channel: no signing, no payload
// shaping, just address validation and message assembly.
type Sender struct {
	addr   string
	host   string
	user   string
	pass   string
	submit submitFunc
}

// Option configures a Sender.
type Option func(*Sender)

// WithSubmitFunc replaces the SMTP submission call, primarily for tests.
// Nil funcs are ignored.
func WithSubmitFunc(f submitFunc) Option {
	return func(s *Sender) {
		if f != nil {
			s.submit = f
		}
	}
}

// NewSender creates an SMTP-backed email sender. Credentials are
// validated up front so a misconfigured process fails at startup rather
// than on the first message.
func NewSender(cfg Config, opts ...Option) (*Sender, error) {
	if cfg.SMTPServer == "" {
		return nil, fmt.Errorf("%w: SMTPServer is required", notification.ErrInvalidConfig)
	}
	if cfg.SMTPUser == "" {
		return nil, fmt.Errorf("%w: SMTPUser is required", notification.ErrInvalidConfig)
	}
	if cfg.SMTPPass == "" {
		return nil, fmt.Errorf("%w: SMTPPass is required", notification.ErrInvalidConfig)
	}
	port := cfg.SMTPPort
	if port == 0 {
		port = 587
	}

	s := &Sender{
		addr:   cfg.SMTPServer + ":" + strconv.Itoa(port),
		host:   cfg.SMTPServer,
		user:   cfg.SMTPUser,
		pass:   cfg.SMTPPass,
		submit: smtp.SendMail,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Send validates the from/to addresses, assembles an RFC 822 message, and
// submits it in a single SMTP transaction. Address parsing happens before
// any network call so malformed input never reaches the relay.
func (s *Sender) Send(ctx context.Context, n notification.Notification) error {
	from, err := mail.ParseAddress(n.From)
	if err != nil {
		return fmt.Errorf("%w: from address %q: %w", notification.ErrInvalidConfig, n.From, err)
	}
	to, err := mail.ParseAddress(n.To)
	if err != nil {
		return fmt.Errorf("%w: to address %q: %w", notification.ErrInvalidConfig, n.To, err)
	}

	// smtp.SendMail is not context-aware; honor cancellation up to the
	// point the transaction starts.
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", notification.ErrSendFailed, err)
	}

	msg := buildMessage(from, to, n.Subject, n.Body)
	auth := smtp.PlainAuth("", s.user, s.pass, s.host)
	if err := s.submit(s.addr, auth, from.Address, []string{to.Address}, msg); err != nil {
		return fmt.Errorf("%w: smtp %s: %w", notification.ErrSendFailed, s.addr, err)
	}
	return nil
}

func buildMessage(from, to *mail.Address, subject, body string) []byte {
	var b strings.Builder
	b.WriteString("From: " + from.String() + "\r\n")
	b.WriteString("To: " + to.String() + "\r\n")
	b.WriteString("Subject: " + subject + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(body)
	return []byte(b.String())
}
