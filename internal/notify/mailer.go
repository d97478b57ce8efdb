// Package notify delivers transactional e-mails through the active SMTP profile.
package notify

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/and161185/gatekeeper/internal/model"
	"github.com/wneessen/go-mail"
	"go.uber.org/zap"
)

// ConfigSource yields the active delivery profile.
type ConfigSource interface {
	GetActive(ctx context.Context) (*model.EmailConfig, error)
}

// Decrypter opens stored SMTP passwords.
type Decrypter interface {
	Decrypt(ciphertext string) (string, error)
}

// SendFunc delivers msg using cfg. password is the decrypted SMTP secret.
type SendFunc func(ctx context.Context, cfg model.EmailConfig, password string, msg *mail.Msg) error

// Mailer builds plain-text messages and hands them to a SendFunc.
type Mailer struct {
	configs  ConfigSource
	secrets  Decrypter
	resetURL string
	resetTTL time.Duration
	send     SendFunc
	now      func() time.Time
	log      *zap.Logger
}

// Option customizes Mailer.
type Option func(*Mailer)

// WithSender replaces SMTP delivery.
func WithSender(f SendFunc) Option { return func(m *Mailer) { m.send = f } }

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option { return func(m *Mailer) { m.log = l } }

// WithClock overrides the Date header source.
func WithClock(now func() time.Time) Option { return func(m *Mailer) { m.now = now } }

// New constructs a Mailer. resetURL is the page that accepts ?token=.
func New(configs ConfigSource, secrets Decrypter, resetURL string, resetTTL time.Duration, opts ...Option) *Mailer {
	m := &Mailer{
		configs:  configs,
		secrets:  secrets,
		resetURL: resetURL,
		resetTTL: resetTTL,
		send:     SMTPSend,
		now:      time.Now,
		log:      zap.NewNop(),
	}
	for _, o := range opts {
		o(m)
	}
	return m
}

// SendPasswordReset mails a reset link carrying resetToken.
func (m *Mailer) SendPasswordReset(ctx context.Context, recipient, userName, resetToken string) error {
	link, err := m.resetLink(resetToken)
	if err != nil {
		return err
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Hello %s,\n\n", userName)
	b.WriteString("We received a request to reset your password. Open the link below to choose a new one:\n\n")
	fmt.Fprintf(&b, "%s\n\n", link)
	fmt.Fprintf(&b, "The link expires in %s and can be used once.\n", humanDuration(m.resetTTL))
	b.WriteString("If you did not request this, you can ignore this message; your password stays the same.\n")
	return m.deliverActive(ctx, recipient, "Password reset", b.String())
}

// SendPasswordChanged confirms a completed password change.
func (m *Mailer) SendPasswordChanged(ctx context.Context, recipient, userName string) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Hello %s,\n\n", userName)
	b.WriteString("Your password was changed successfully.\n")
	b.WriteString("If you did not make this change, contact your administrator immediately.\n")
	return m.deliverActive(ctx, recipient, "Your password was changed", b.String())
}

// SendTest mails recipient through cfg, which need not be the active profile.
func (m *Mailer) SendTest(ctx context.Context, recipient string, cfg model.EmailConfig) error {
	var b strings.Builder
	b.WriteString("This is a test message from the administration panel.\n\n")
	fmt.Fprintf(&b, "Provider: %s\nServer: %s:%d\nTLS: %t\nSSL: %t\n", cfg.Provider, cfg.SMTPHost, cfg.SMTPPort, cfg.UseTLS, cfg.UseSSL)
	b.WriteString("\nIf you received it, e-mail delivery is configured correctly.\n")
	return m.deliver(ctx, cfg, recipient, "Test e-mail", b.String())
}

func (m *Mailer) deliverActive(ctx context.Context, recipient, subject, body string) error {
	cfg, err := m.configs.GetActive(ctx)
	if err != nil {
		return fmt.Errorf("active email config: %w", err)
	}
	return m.deliver(ctx, *cfg, recipient, subject, body)
}

func (m *Mailer) deliver(ctx context.Context, cfg model.EmailConfig, recipient, subject, body string) error {
	msg, err := m.compose(cfg, recipient, subject, body)
	if err != nil {
		return err
	}
	password, err := m.secrets.Decrypt(cfg.PasswordEnc)
	if err != nil {
		return fmt.Errorf("smtp password: %w", err)
	}
	if err := m.send(ctx, cfg, password, msg); err != nil {
		return fmt.Errorf("send via %s: %w", cfg.SMTPHost, err)
	}
	m.log.Debug("mail sent", zap.String("subject", subject), zap.String("config_id", cfg.ID.String()))
	return nil
}

// compose builds a plain-text message from the profile's sender to recipient.
func (m *Mailer) compose(cfg model.EmailConfig, recipient, subject, body string) (*mail.Msg, error) {
	msg := mail.NewMsg(mail.WithCharset(mail.CharsetUTF8))
	var err error
	if cfg.SenderName != "" {
		err = msg.FromFormat(cfg.SenderName, cfg.SenderEmail)
	} else {
		err = msg.From(cfg.SenderEmail)
	}
	if err != nil {
		return nil, fmt.Errorf("sender: %w", err)
	}
	if err := msg.To(recipient); err != nil {
		return nil, fmt.Errorf("recipient: %w", err)
	}
	msg.Subject(subject)
	msg.SetDateWithValue(m.now())
	msg.SetMessageID()
	msg.SetBodyString(mail.TypeTextPlain, body)
	return msg, nil
}

func (m *Mailer) resetLink(token string) (string, error) {
	u, err := url.Parse(m.resetURL)
	if err != nil {
		return "", fmt.Errorf("reset url: %w", err)
	}
	q := u.Query()
	q.Set("token", token)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

func humanDuration(d time.Duration) string {
	switch {
	case d >= time.Hour && d%time.Hour == 0:
		h := int(d / time.Hour)
		if h == 1 {
			return "1 hour"
		}
		return fmt.Sprintf("%d hours", h)
	case d >= time.Minute && d%time.Minute == 0:
		return fmt.Sprintf("%d minutes", int(d/time.Minute))
	default:
		return d.String()
	}
}
