package email

import (
	"context"
	"errors"
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/dmitrymomot/sitenotify/pkg/settings"
)

// SMTPSender sends mail through the SMTP transport configured in the
// settings document. It dials per message; dispatch is synchronous and
// request-scoped, so there is no connection pooling.
type SMTPSender struct {
	dialer    *gomail.Dialer
	fromEmail string
	fromName  string
}

// NewSMTPSender builds a sender from the document's SMTP block.
// The default account (or the first configured one) provides the From
// identity and, when auth is enabled, the credentials.
func NewSMTPSender(cfg settings.SMTPSettings) (*SMTPSender, error) {
	if !cfg.Enabled {
		return nil, fmt.Errorf("%w: SMTP transport is disabled", ErrInvalidConfig)
	}
	if cfg.Host == "" {
		return nil, fmt.Errorf("%w: SMTP host is required", ErrInvalidConfig)
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("%w: SMTP port %d is out of range", ErrInvalidConfig, cfg.Port)
	}

	account, ok := cfg.Account()
	if !ok {
		return nil, fmt.Errorf("%w: no SMTP account configured", ErrInvalidConfig)
	}

	var username, password string
	if cfg.Auth {
		username = account.Username
		password = account.Password
	}

	d := gomail.NewDialer(cfg.Host, cfg.Port, username, password)
	// Encryption "ssl" means implicit TLS on connect; "tls" relies on
	// gomail's opportunistic STARTTLS, which is the mode port 587 expects.
	d.SSL = cfg.Encryption == settings.EncryptionSSL

	return &SMTPSender{
		dialer:    d,
		fromEmail: account.Email,
		fromName:  account.Name,
	}, nil
}

// Send delivers one HTML message. The context is accepted for interface
// compatibility; gomail's dial-and-send is a single blocking call.
func (s *SMTPSender) Send(ctx context.Context, msg Message) error {
	if err := msg.Validate(); err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.fromEmail, s.fromName)
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/html", msg.BodyHTML)

	if err := s.dialer.DialAndSend(m); err != nil {
		return errors.Join(ErrFailedToSend, err)
	}
	return nil
}

// From returns the sender identity the transport was built with.
func (s *SMTPSender) From() (email, name string) {
	return s.fromEmail, s.fromName
}
