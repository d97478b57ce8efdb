package service

import (
	"context"
	"fmt"
	"net/mail"
	"strings"

	"github.com/and161185/gatekeeper/internal/errs"
	"github.com/and161185/gatekeeper/internal/metrics"
	"github.com/and161185/gatekeeper/internal/model"
	"github.com/and161185/gatekeeper/internal/repository"
	"github.com/gofrs/uuid/v5"
	"go.uber.org/zap"
)

// SecretStore encrypts secrets at rest. Implemented by *secretbox.Box.
type SecretStore interface {
	Encrypt(plaintext string) (string, error)
	Decrypt(ciphertext string) (string, error)
}

// EmailConfigService manages SMTP delivery profiles.
type EmailConfigService interface {
	List(ctx context.Context) ([]model.EmailConfig, error)
	Get(ctx context.Context, id uuid.UUID) (*model.EmailConfig, error)
	Active(ctx context.Context) (*model.EmailConfig, error)
	Create(ctx context.Context, in model.EmailConfigInput) (*model.EmailConfig, error)
	Update(ctx context.Context, id uuid.UUID, upd model.EmailConfigUpdate) (*model.EmailConfig, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Activate(ctx context.Context, id uuid.UUID) (*model.EmailConfig, error)
	Presets() []model.EmailPreset
	SendTest(ctx context.Context, recipient string) error
}

// EmailConfigServiceImpl implements EmailConfigService.
type EmailConfigServiceImpl struct {
	repo     repository.EmailConfigRepository
	secrets  SecretStore
	notifier Notifier
	log      *zap.Logger
	met      *metrics.Metrics
}

// NewEmailConfigService constructs EmailConfigServiceImpl. log and met may be nil.
func NewEmailConfigService(repo repository.EmailConfigRepository, secrets SecretStore, notifier Notifier, log *zap.Logger, met *metrics.Metrics) *EmailConfigServiceImpl {
	if log == nil {
		log = zap.NewNop()
	}
	return &EmailConfigServiceImpl{repo: repo, secrets: secrets, notifier: notifier, log: log, met: met}
}

var presets = []model.EmailPreset{
	{Name: "Gmail", SMTPHost: "smtp.gmail.com", SMTPPort: 587, UseTLS: true,
		Instructions: "Use your Gmail address and an App Password. Two-step verification must be enabled to create one."},
	{Name: "Outlook/Hotmail", SMTPHost: "smtp-mail.outlook.com", SMTPPort: 587, UseTLS: true,
		Instructions: "Use your Outlook or Hotmail address and its regular password."},
	{Name: "Yahoo", SMTPHost: "smtp.mail.yahoo.com", SMTPPort: 587, UseTLS: true,
		Instructions: "Use your Yahoo address and an app password."},
	{Name: "Office365", SMTPHost: "smtp.office365.com", SMTPPort: 587, UseTLS: true,
		Instructions: "Use your Office365 work address and password."},
	{Name: "Custom SMTP", SMTPHost: "smtp.example.com", SMTPPort: 587, UseTLS: true,
		Instructions: "Enter your SMTP server settings manually. Ask your provider for the details."},
}

// Presets returns suggested settings for well-known providers.
func (s *EmailConfigServiceImpl) Presets() []model.EmailPreset {
	out := make([]model.EmailPreset, len(presets))
	copy(out, presets)
	return out
}

// List returns every profile.
func (s *EmailConfigServiceImpl) List(ctx context.Context) ([]model.EmailConfig, error) {
	return s.repo.List(ctx)
}

// Get returns one profile or errs.ErrNotFound.
func (s *EmailConfigServiceImpl) Get(ctx context.Context, id uuid.UUID) (*model.EmailConfig, error) {
	return s.repo.GetByID(ctx, id)
}

// Active returns the active profile or errs.ErrNotFound.
func (s *EmailConfigServiceImpl) Active(ctx context.Context) (*model.EmailConfig, error) {
	return s.repo.GetActive(ctx)
}

// Create validates in, encrypts the SMTP password and stores the profile.
func (s *EmailConfigServiceImpl) Create(ctx context.Context, in model.EmailConfigInput) (*model.EmailConfig, error) {
	if err := validateSMTP(in.SMTPHost, in.SMTPPort, in.SenderEmail); err != nil {
		return nil, err
	}
	enc, err := s.secrets.Encrypt(in.SMTPPassword)
	if err != nil {
		return nil, fmt.Errorf("encrypt smtp password: %w", err)
	}
	c := &model.EmailConfig{
		ID:           uuid.Must(uuid.NewV4()),
		Provider:     in.Provider,
		SMTPHost:     strings.TrimSpace(in.SMTPHost),
		SMTPPort:     in.SMTPPort,
		SMTPUsername: in.SMTPUsername,
		PasswordEnc:  enc,
		SenderEmail:  in.SenderEmail,
		SenderName:   in.SenderName,
		UseTLS:       in.UseTLS,
		UseSSL:       in.UseSSL,
		IsActive:     in.IsActive,
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	s.log.Info("email config created", zap.String("id", c.ID.String()), zap.Bool("active", c.IsActive))
	return c, nil
}

// Update applies a partial update. A new SMTP password is encrypted before storage.
func (s *EmailConfigServiceImpl) Update(ctx context.Context, id uuid.UUID, upd model.EmailConfigUpdate) (*model.EmailConfig, error) {
	if upd.SMTPHost != nil && strings.TrimSpace(*upd.SMTPHost) == "" {
		return nil, fmt.Errorf("%w: smtp host is required", errs.ErrInvalidInput)
	}
	if upd.SMTPPort != nil && !validPort(*upd.SMTPPort) {
		return nil, fmt.Errorf("%w: smtp port must be within 1..65535", errs.ErrInvalidInput)
	}
	if upd.SenderEmail != nil && !validAddress(*upd.SenderEmail) {
		return nil, fmt.Errorf("%w: sender e-mail is not an address", errs.ErrInvalidInput)
	}
	upd.PasswordEnc = nil
	if upd.SMTPPassword != nil {
		enc, err := s.secrets.Encrypt(*upd.SMTPPassword)
		if err != nil {
			return nil, fmt.Errorf("encrypt smtp password: %w", err)
		}
		upd.PasswordEnc = &enc
		upd.SMTPPassword = nil
	}
	c, err := s.repo.Update(ctx, id, upd)
	if err != nil {
		return nil, err
	}
	s.log.Info("email config updated", zap.String("id", id.String()))
	return c, nil
}

// Delete removes a profile.
func (s *EmailConfigServiceImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info("email config deleted", zap.String("id", id.String()))
	return nil
}

// Activate makes id the only active profile.
func (s *EmailConfigServiceImpl) Activate(ctx context.Context, id uuid.UUID) (*model.EmailConfig, error) {
	c, err := s.repo.Activate(ctx, id)
	if err != nil {
		return nil, err
	}
	s.log.Info("email config activated", zap.String("id", id.String()))
	return c, nil
}

// SendTest mails recipient through the active profile. Unlike the other notifications
// a delivery failure is returned, wrapped in errs.ErrDeliveryFailed.
func (s *EmailConfigServiceImpl) SendTest(ctx context.Context, recipient string) error {
	if !validAddress(recipient) {
		return fmt.Errorf("%w: recipient is not an address", errs.ErrInvalidInput)
	}
	active, err := s.repo.GetActive(ctx)
	if err != nil {
		return err
	}
	if err := s.notifier.SendTest(ctx, recipient, *active); err != nil {
		s.log.Warn("test e-mail failed", zap.String("config_id", active.ID.String()), zap.Error(err))
		s.met.Notification("test", metrics.OutcomeError)
		return fmt.Errorf("%w: %v", errs.ErrDeliveryFailed, err)
	}
	s.met.Notification("test", metrics.OutcomeOK)
	return nil
}

func validateSMTP(host string, port int, sender string) error {
	switch {
	case strings.TrimSpace(host) == "":
		return fmt.Errorf("%w: smtp host is required", errs.ErrInvalidInput)
	case !validPort(port):
		return fmt.Errorf("%w: smtp port must be within 1..65535", errs.ErrInvalidInput)
	case !validAddress(sender):
		return fmt.Errorf("%w: sender e-mail is not an address", errs.ErrInvalidInput)
	}
	return nil
}

func validPort(p int) bool { return p >= 1 && p <= 65535 }

func validAddress(s string) bool {
	a, err := mail.ParseAddress(s)
	return err == nil && a.Address == s
}
