// Package service contains the credential lifecycle and e-mail configuration services.
package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/and161185/gatekeeper/internal/authz"
	pkgcrypto "github.com/and161185/gatekeeper/internal/crypto"
	"github.com/and161185/gatekeeper/internal/errs"
	"github.com/and161185/gatekeeper/internal/limiter"
	"github.com/and161185/gatekeeper/internal/metrics"
	"github.com/and161185/gatekeeper/internal/model"
	"github.com/and161185/gatekeeper/internal/repository"
	"github.com/gofrs/uuid/v5"
	"go.uber.org/zap"
)

// MinPasswordLen is the shortest accepted new password.
const MinPasswordLen = 8

// Default lifetimes of opaque credentials.
const (
	DefaultRefreshTTL    = 7 * 24 * time.Hour
	DefaultResetTTL      = 24 * time.Hour
	DefaultNotifyTimeout = 15 * time.Second
)

// Notification kinds, used as log fields and metric labels.
const (
	kindPasswordReset   = "password_reset"
	kindPasswordChanged = "password_changed"
)

// PasswordHasher hashes and verifies passwords. Implemented by *crypto.Hasher.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, digest string) bool
}

// AccessTokens issues and verifies stateless access tokens. Implemented by *token.Codec.
type AccessTokens interface {
	Issue(subject string) (string, time.Time, error)
	Verify(raw string) (string, error)
}

// Notifier delivers transactional e-mails.
type Notifier interface {
	SendPasswordReset(ctx context.Context, recipient, userName, resetToken string) error
	SendPasswordChanged(ctx context.Context, recipient, userName string) error
	SendTest(ctx context.Context, recipient string, cfg model.EmailConfig) error
}

// AuthService defines the credential lifecycle.
type AuthService interface {
	// Login checks credentials and issues a token pair.
	Login(ctx context.Context, username, password, ip string) (model.Tokens, error)
	// Refresh exchanges a refresh token for a new pair; the presented token is spent.
	Refresh(ctx context.Context, refreshToken string) (model.Tokens, error)
	// Logout revokes a refresh token owned by userID. It always succeeds for absent tokens.
	Logout(ctx context.Context, refreshToken string, userID uuid.UUID) error
	// ForgotPassword issues a reset token in the background when the e-mail is known.
	// The result and latency depend only on the lookup, never on which branch ran.
	ForgotPassword(ctx context.Context, email string) error
	// ResetPassword consumes a reset token and sets a new password.
	ResetPassword(ctx context.Context, resetToken, newPassword string) error
	// ChangePassword replaces the password after re-verifying the current one.
	ChangePassword(ctx context.Context, userID uuid.UUID, currentPassword, newPassword string) error
	// Authenticate resolves an access token into a principal with its loaded role graph.
	Authenticate(ctx context.Context, accessToken string) (authz.Principal, error)
}

// AuthServiceImpl implements AuthService.
type AuthServiceImpl struct {
	users    repository.UserRepository
	refresh  repository.RefreshTokenRepository
	resets   repository.ResetTokenRepository
	hasher   PasswordHasher
	tokens   AccessTokens
	notifier Notifier

	lim           limiter.Limiter
	log           *zap.Logger
	met           *metrics.Metrics
	now           func() time.Time
	refreshTTL    time.Duration
	resetTTL      time.Duration
	notifyTimeout time.Duration

	dummyOnce sync.Once
	dummy     string
	inflight  sync.WaitGroup
}

// AuthOption customizes AuthServiceImpl.
type AuthOption func(*AuthServiceImpl)

// WithClock overrides the time source.
func WithClock(now func() time.Time) AuthOption { return func(s *AuthServiceImpl) { s.now = now } }

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) AuthOption { return func(s *AuthServiceImpl) { s.log = l } }

// WithMetrics sets the metrics sink.
func WithMetrics(m *metrics.Metrics) AuthOption { return func(s *AuthServiceImpl) { s.met = m } }

// WithLimiter enables login throttling.
func WithLimiter(l limiter.Limiter) AuthOption { return func(s *AuthServiceImpl) { s.lim = l } }

// WithRefreshTTL sets the refresh token lifetime.
func WithRefreshTTL(d time.Duration) AuthOption { return func(s *AuthServiceImpl) { s.refreshTTL = d } }

// WithResetTTL sets the reset token lifetime.
func WithResetTTL(d time.Duration) AuthOption { return func(s *AuthServiceImpl) { s.resetTTL = d } }

// WithNotifyTimeout bounds each notification delivery.
func WithNotifyTimeout(d time.Duration) AuthOption {
	return func(s *AuthServiceImpl) { s.notifyTimeout = d }
}

// NewAuthService constructs AuthServiceImpl with required dependencies.
func NewAuthService(
	users repository.UserRepository,
	refresh repository.RefreshTokenRepository,
	resets repository.ResetTokenRepository,
	hasher PasswordHasher,
	tokens AccessTokens,
	notifier Notifier,
	opts ...AuthOption,
) *AuthServiceImpl {
	s := &AuthServiceImpl{
		users:         users,
		refresh:       refresh,
		resets:        resets,
		hasher:        hasher,
		tokens:        tokens,
		notifier:      notifier,
		log:           zap.NewNop(),
		now:           time.Now,
		refreshTTL:    DefaultRefreshTTL,
		resetTTL:      DefaultResetTTL,
		notifyTimeout: DefaultNotifyTimeout,
	}
	for _, o := range opts {
		o(s)
	}
	if s.log == nil {
		s.log = zap.NewNop()
	}
	return s
}

// Login authenticates with optional rate limiting by (username, ip).
// Unknown user, wrong password and inactive account are indistinguishable to the caller.
func (s *AuthServiceImpl) Login(ctx context.Context, username, password, ip string) (model.Tokens, error) {
	ipHash := limiter.HashIP(ip)
	if s.lim != nil {
		allowed, retry, err := s.lim.Allow(ctx, username, ipHash)
		if err != nil {
			return model.Tokens{}, fmt.Errorf("login limiter: %w", err)
		}
		if !allowed {
			s.log.Info("login throttled", zap.String("username", username), zap.Duration("retry_after", retry))
			s.met.Auth("login", metrics.OutcomeDenied)
			return model.Tokens{}, errs.ErrRateLimited
		}
	}

	var reason string
	u, err := s.users.GetByUsername(ctx, username)
	switch {
	case errors.Is(err, errs.ErrNotFound):
		// same hashing cost as a real account
		s.hasher.Verify(password, s.dummyDigest())
		reason = "unknown user"
	case err != nil:
		s.met.Auth("login", metrics.OutcomeError)
		return model.Tokens{}, fmt.Errorf("login lookup: %w", err)
	case !s.hasher.Verify(password, u.PasswordHash):
		reason = "wrong password"
	case !u.IsActive:
		reason = "inactive account"
	}

	if reason != "" {
		s.log.Info("login rejected", zap.String("username", username), zap.String("reason", reason))
		s.met.Auth("login", metrics.OutcomeDenied)
		if s.lim != nil {
			if blocked, _, ferr := s.lim.Failure(ctx, username, ipHash); ferr == nil && blocked {
				return model.Tokens{}, errs.ErrRateLimited
			} else if ferr != nil {
				s.log.Warn("login limiter failure not recorded", zap.Error(ferr))
			}
		}
		return model.Tokens{}, errs.ErrUnauthenticated
	}

	if s.lim != nil {
		if err := s.lim.Success(ctx, username, ipHash); err != nil {
			s.log.Warn("login limiter reset failed", zap.Error(err))
		}
	}

	tokens, successor, err := s.issuePair(u)
	if err != nil {
		s.met.Auth("login", metrics.OutcomeError)
		return model.Tokens{}, err
	}
	if err := s.refresh.Create(ctx, successor); err != nil {
		s.met.Auth("login", metrics.OutcomeError)
		return model.Tokens{}, fmt.Errorf("store refresh token: %w", err)
	}
	s.log.Info("login", zap.String("user_id", u.ID.String()))
	s.met.Auth("login", metrics.OutcomeOK)
	return tokens, nil
}

// Refresh rotates a refresh token. Every rejection is reported as errs.ErrInvalidToken.
func (s *AuthServiceImpl) Refresh(ctx context.Context, refreshToken string) (model.Tokens, error) {
	if refreshToken == "" {
		return model.Tokens{}, s.rejectRefresh("empty token")
	}
	now := s.now()
	hash := pkgcrypto.HashToken(refreshToken)

	stored, err := s.refresh.GetByHash(ctx, hash)
	if errors.Is(err, errs.ErrNotFound) {
		return model.Tokens{}, s.rejectRefresh("unknown token")
	}
	if err != nil {
		s.met.Auth("refresh", metrics.OutcomeError)
		return model.Tokens{}, fmt.Errorf("refresh lookup: %w", err)
	}
	if !pkgcrypto.EqualHash(stored.TokenHash, hash) {
		return model.Tokens{}, s.rejectRefresh("digest mismatch")
	}
	if !stored.IsValid(now) {
		return model.Tokens{}, s.rejectRefresh("revoked or expired")
	}

	u, err := s.users.GetByID(ctx, stored.UserID)
	if errors.Is(err, errs.ErrNotFound) {
		return model.Tokens{}, s.rejectRefresh("owner missing")
	}
	if err != nil {
		s.met.Auth("refresh", metrics.OutcomeError)
		return model.Tokens{}, fmt.Errorf("refresh owner: %w", err)
	}
	if !u.IsActive {
		return model.Tokens{}, s.rejectRefresh("owner inactive")
	}

	tokens, successor, err := s.issuePair(u)
	if err != nil {
		s.met.Auth("refresh", metrics.OutcomeError)
		return model.Tokens{}, err
	}
	if err := s.refresh.Rotate(ctx, hash, successor, now); err != nil {
		if errors.Is(err, errs.ErrInvalidToken) {
			return model.Tokens{}, s.rejectRefresh("lost rotation race")
		}
		s.met.Auth("refresh", metrics.OutcomeError)
		return model.Tokens{}, fmt.Errorf("rotate refresh token: %w", err)
	}
	s.met.Auth("refresh", metrics.OutcomeOK)
	return tokens, nil
}

func (s *AuthServiceImpl) rejectRefresh(reason string) error {
	s.log.Info("refresh rejected", zap.String("reason", reason))
	s.met.Auth("refresh", metrics.OutcomeDenied)
	return errs.ErrInvalidToken
}

// Logout revokes the caller's refresh token.
func (s *AuthServiceImpl) Logout(ctx context.Context, refreshToken string, userID uuid.UUID) error {
	if refreshToken == "" {
		return nil
	}
	if err := s.refresh.Revoke(ctx, pkgcrypto.HashToken(refreshToken), userID); err != nil {
		s.met.Auth("logout", metrics.OutcomeError)
		return fmt.Errorf("revoke refresh token: %w", err)
	}
	s.met.Auth("logout", metrics.OutcomeOK)
	return nil
}

// ForgotPassword answers after the e-mail lookup alone. For a known user the
// reset token is replaced and mailed by a background job tracked by Wait.
func (s *AuthServiceImpl) ForgotPassword(ctx context.Context, email string) error {
	u, err := s.users.GetByEmail(ctx, email)
	if errors.Is(err, errs.ErrNotFound) {
		s.log.Debug("password reset for unknown e-mail")
		s.met.Auth("forgot_password", metrics.OutcomeDenied)
		return nil
	}
	if err != nil {
		s.met.Auth("forgot_password", metrics.OutcomeError)
		return fmt.Errorf("forgot password lookup: %w", err)
	}

	userID, recipient, name := u.ID, u.Email, u.DisplayName()
	s.background(func(ctx context.Context) {
		raw, err := s.issueResetToken(ctx, userID)
		if err != nil {
			s.log.Warn("reset token not issued", zap.String("user_id", userID.String()), zap.Error(err))
			s.met.Auth("forgot_password", metrics.OutcomeError)
			return
		}
		s.met.Auth("forgot_password", metrics.OutcomeOK)
		if s.notifier == nil {
			return
		}
		s.report(kindPasswordReset, s.notifier.SendPasswordReset(ctx, recipient, name, raw))
	})
	return nil
}

// issueResetToken stores a fresh reset token for userID, dropping any unused one.
func (s *AuthServiceImpl) issueResetToken(ctx context.Context, userID uuid.UUID) (string, error) {
	raw, err := pkgcrypto.NewOpaqueToken()
	if err != nil {
		return "", err
	}
	t := &model.PasswordResetToken{
		ID:        uuid.Must(uuid.NewV4()),
		UserID:    userID,
		TokenHash: pkgcrypto.HashToken(raw),
		ExpiresAt: s.now().Add(s.resetTTL),
	}
	if err := s.resets.Replace(ctx, t); err != nil {
		return "", fmt.Errorf("store reset token: %w", err)
	}
	return raw, nil
}

// ResetPassword sets a new password using a reset token.
func (s *AuthServiceImpl) ResetPassword(ctx context.Context, resetToken, newPassword string) error {
	if len(newPassword) < MinPasswordLen {
		return fmt.Errorf("%w: password must be at least %d characters", errs.ErrInvalidInput, MinPasswordLen)
	}
	if resetToken == "" {
		s.met.Auth("reset_password", metrics.OutcomeDenied)
		return errs.ErrInvalidToken
	}
	digest, err := s.hasher.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	userID, err := s.resets.Consume(ctx, pkgcrypto.HashToken(resetToken), digest, s.now())
	if errors.Is(err, errs.ErrInvalidToken) {
		s.log.Info("password reset rejected")
		s.met.Auth("reset_password", metrics.OutcomeDenied)
		return errs.ErrInvalidToken
	}
	if err != nil {
		s.met.Auth("reset_password", metrics.OutcomeError)
		return fmt.Errorf("consume reset token: %w", err)
	}
	s.met.Auth("reset_password", metrics.OutcomeOK)
	s.log.Info("password reset", zap.String("user_id", userID.String()))

	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		s.log.Warn("password changed notice skipped", zap.Error(err))
		return nil
	}
	s.notifyChanged(u)
	return nil
}

// ChangePassword verifies currentPassword before replacing it.
func (s *AuthServiceImpl) ChangePassword(ctx context.Context, userID uuid.UUID, currentPassword, newPassword string) error {
	if len(newPassword) < MinPasswordLen {
		return fmt.Errorf("%w: password must be at least %d characters", errs.ErrInvalidInput, MinPasswordLen)
	}
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if !s.hasher.Verify(currentPassword, u.PasswordHash) {
		s.met.Auth("change_password", metrics.OutcomeDenied)
		return errs.ErrWrongPassword
	}
	digest, err := s.hasher.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	if err := s.users.UpdatePassword(ctx, u.ID, digest); err != nil {
		s.met.Auth("change_password", metrics.OutcomeError)
		return fmt.Errorf("update password: %w", err)
	}
	s.met.Auth("change_password", metrics.OutcomeOK)
	s.notifyChanged(u)
	return nil
}

// Authenticate verifies an access token and loads the caller with roles and permissions.
func (s *AuthServiceImpl) Authenticate(ctx context.Context, accessToken string) (authz.Principal, error) {
	subject, err := s.tokens.Verify(accessToken)
	if err != nil {
		return authz.Principal{}, errs.ErrUnauthenticated
	}
	u, err := s.users.GetByUsername(ctx, subject)
	if errors.Is(err, errs.ErrNotFound) {
		return authz.Principal{}, errs.ErrUnauthenticated
	}
	if err != nil {
		return authz.Principal{}, fmt.Errorf("authenticate lookup: %w", err)
	}
	if !u.IsActive {
		return authz.Principal{}, errs.ErrUnauthenticated
	}
	roles, err := s.users.Roles(ctx, u.ID)
	if err != nil {
		return authz.Principal{}, fmt.Errorf("load roles: %w", err)
	}
	return authz.NewPrincipal(*u, roles), nil
}

// Wait blocks until every pending notification has finished.
func (s *AuthServiceImpl) Wait() { s.inflight.Wait() }

func (s *AuthServiceImpl) issuePair(u *model.User) (model.Tokens, *model.RefreshToken, error) {
	access, accessExp, err := s.tokens.Issue(u.Username)
	if err != nil {
		return model.Tokens{}, nil, fmt.Errorf("issue access token: %w", err)
	}
	raw, err := pkgcrypto.NewOpaqueToken()
	if err != nil {
		return model.Tokens{}, nil, err
	}
	rt := &model.RefreshToken{
		ID:        uuid.Must(uuid.NewV4()),
		UserID:    u.ID,
		TokenHash: pkgcrypto.HashToken(raw),
		ExpiresAt: s.now().Add(s.refreshTTL),
	}
	return model.Tokens{
		AccessToken:      access,
		RefreshToken:     raw,
		AccessExpiresAt:  accessExp,
		RefreshExpiresAt: rt.ExpiresAt,
	}, rt, nil
}

func (s *AuthServiceImpl) dummyDigest() string {
	s.dummyOnce.Do(func() {
		d, err := s.hasher.Hash("gatekeeper-timing-equalizer")
		if err != nil {
			s.log.Warn("dummy digest unavailable", zap.Error(err))
		}
		s.dummy = d
	})
	return s.dummy
}

func (s *AuthServiceImpl) notifyChanged(u *model.User) {
	recipient, name := u.Email, u.DisplayName()
	s.dispatch(kindPasswordChanged, func(ctx context.Context) error {
		return s.notifier.SendPasswordChanged(ctx, recipient, name)
	})
}

// dispatch delivers a notification off the request path. The outcome is only logged and counted.
func (s *AuthServiceImpl) dispatch(kind string, send func(ctx context.Context) error) {
	if s.notifier == nil {
		return
	}
	s.background(func(ctx context.Context) {
		s.report(kind, send(ctx))
	})
}

// background runs job with its own deadline, detached from the caller's context.
func (s *AuthServiceImpl) background(job func(ctx context.Context)) {
	s.inflight.Add(1)
	go func() {
		defer s.inflight.Done()
		ctx, cancel := context.WithTimeout(context.Background(), s.notifyTimeout)
		defer cancel()
		job(ctx)
	}()
}

func (s *AuthServiceImpl) report(kind string, err error) {
	if err != nil {
		s.log.Warn("notification failed", zap.String("kind", kind), zap.Error(err))
		s.met.Notification(kind, metrics.OutcomeError)
		return
	}
	s.met.Notification(kind, metrics.OutcomeOK)
}
