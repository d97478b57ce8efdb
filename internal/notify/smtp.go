package notify

import (
	"context"
	"crypto/tls"
	"time"

	"github.com/and161185/gatekeeper/internal/model"
	"github.com/wneessen/go-mail"
)

// SMTPSend is the default SendFunc. UseSSL dials implicit TLS; UseTLS upgrades with STARTTLS
// and fails if the server does not offer it. PLAIN auth is used when a username is set.
func SMTPSend(ctx context.Context, cfg model.EmailConfig, password string, msg *mail.Msg) error {
	opts := []mail.Option{
		mail.WithPort(cfg.SMTPPort),
		mail.WithTLSConfig(&tls.Config{ServerName: cfg.SMTPHost, MinVersion: tls.VersionTLS12}),
	}
	switch {
	case cfg.UseSSL:
		opts = append(opts, mail.WithSSL())
	case cfg.UseTLS:
		opts = append(opts, mail.WithTLSPolicy(mail.TLSMandatory))
	default:
		opts = append(opts, mail.WithTLSPolicy(mail.NoTLS))
	}
	if cfg.SMTPUsername != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.SMTPUsername),
			mail.WithPassword(password),
		)
	}
	if deadline, ok := ctx.Deadline(); ok {
		if left := time.Until(deadline); left > 0 {
			opts = append(opts, mail.WithTimeout(left))
		}
	}

	c, err := mail.NewClient(cfg.SMTPHost, opts...)
	if err != nil {
		return err
	}
	return c.DialAndSendWithContext(ctx, msg)
}
