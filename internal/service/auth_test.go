package service

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/and161185/gatekeeper/internal/authz"
	pkgcrypto "github.com/and161185/gatekeeper/internal/crypto"
	"github.com/and161185/gatekeeper/internal/errs"
	"github.com/and161185/gatekeeper/internal/metrics"
	"github.com/and161185/gatekeeper/internal/model"
	"github.com/and161185/gatekeeper/internal/token"
	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"
)

type authFixture struct {
	store    *memStore
	hasher   *fakeHasher
	notifier *fakeNotifier
	clock    *fakeClock
	codec    *token.Codec
	svc      *AuthServiceImpl
	alice    *model.User
}

func newAuthFixture(t *testing.T, opts ...AuthOption) *authFixture {
	t.Helper()
	codec, err := token.NewCodec([]byte(strings.Repeat("k", token.MinKeyLen)), 30*time.Minute)
	require.NoError(t, err)

	f := &authFixture{
		store:    newMemStore(),
		hasher:   &fakeHasher{},
		notifier: &fakeNotifier{},
		clock:    &fakeClock{t: time.Now()},
		codec:    codec,
	}
	f.alice = f.store.addUser(model.User{
		Username:     "alice",
		Email:        "alice@example.com",
		FirstName:    "Alice",
		PasswordHash: "plain:correct-horse",
		IsActive:     true,
	}, model.Role{Name: "Viewer", IsActive: true, Permissions: []model.Permission{{Code: authz.UserRead, IsActive: true}}})

	base := []AuthOption{WithClock(f.clock.Now), WithLogger(zaptest.NewLogger(t))}
	f.svc = NewAuthService(fakeUsers{f.store}, fakeRefresh{f.store}, fakeResets{f.store},
		f.hasher, codec, f.notifier, append(base, opts...)...)
	t.Cleanup(f.svc.Wait)
	return f
}

func TestLogin_AliceAndBob(t *testing.T) {
	t.Parallel()
	f := newAuthFixture(t)
	ctx := context.Background()

	tokens, err := f.svc.Login(ctx, "alice", "correct-horse", "10.0.0.1")
	require.NoError(t, err)
	require.NotEmpty(t, tokens.RefreshToken)
	require.Equal(t, f.clock.Now().Add(DefaultRefreshTTL), tokens.RefreshExpiresAt)

	sub, err := f.codec.Verify(tokens.AccessToken)
	require.NoError(t, err)
	require.Equal(t, "alice", sub)

	stored, err := fakeRefresh{f.store}.GetByHash(ctx, pkgcrypto.HashToken(tokens.RefreshToken))
	require.NoError(t, err)
	require.Equal(t, f.alice.ID, stored.UserID)
	require.True(t, stored.IsValid(f.clock.Now()))

	_, wrongErr := f.svc.Login(ctx, "alice", "wrong", "10.0.0.1")
	require.ErrorIs(t, wrongErr, errs.ErrUnauthenticated)

	before := f.hasher.verifies.Load()
	_, bobErr := f.svc.Login(ctx, "bob", "anything", "10.0.0.1")
	require.ErrorIs(t, bobErr, errs.ErrUnauthenticated)
	require.Equal(t, wrongErr.Error(), bobErr.Error())
	// an unknown user still costs one verification
	require.Equal(t, int32(1), f.hasher.verifies.Load()-before)
}

func TestLogin_InactiveUserRejected(t *testing.T) {
	t.Parallel()
	f := newAuthFixture(t)
	f.store.addUser(model.User{Username: "carol", Email: "carol@example.com", PasswordHash: "plain:pw-carol-1", IsActive: false})

	_, err := f.svc.Login(context.Background(), "carol", "pw-carol-1", "")
	require.ErrorIs(t, err, errs.ErrUnauthenticated)
}

func TestLogin_StoreErrorIsNotMasked(t *testing.T) {
	t.Parallel()
	f := newAuthFixture(t)
	boom := errors.New("connection reset")
	f.store.getErr = boom

	_, err := f.svc.Login(context.Background(), "alice", "correct-horse", "")
	require.ErrorIs(t, err, boom)
	require.False(t, errors.Is(err, errs.ErrUnauthenticated))
}

func TestLogin_Limiter(t *testing.T) {
	t.Parallel()

	t.Run("blocked before lookup", func(t *testing.T) {
		lim := &fakeLimiter{allowOK: false}
		f := newAuthFixture(t, WithLimiter(lim))
		_, err := f.svc.Login(context.Background(), "alice", "correct-horse", "1.1.1.1")
		require.ErrorIs(t, err, errs.ErrRateLimited)
		require.Equal(t, int32(0), f.hasher.verifies.Load())
	})

	t.Run("failure reaching threshold", func(t *testing.T) {
		lim := &fakeLimiter{allowOK: true, failBlocked: true}
		f := newAuthFixture(t, WithLimiter(lim))
		_, err := f.svc.Login(context.Background(), "alice", "nope", "1.1.1.1")
		require.ErrorIs(t, err, errs.ErrRateLimited)
		require.Equal(t, 1, lim.failureCalls)
	})

	t.Run("success resets", func(t *testing.T) {
		lim := &fakeLimiter{allowOK: true}
		f := newAuthFixture(t, WithLimiter(lim))
		_, err := f.svc.Login(context.Background(), "alice", "correct-horse", "1.1.1.1")
		require.NoError(t, err)
		require.Equal(t, 1, lim.successCalls)
		require.Equal(t, 0, lim.failureCalls)
	})

	t.Run("limiter outage", func(t *testing.T) {
		lim := &fakeLimiter{allowErr: errors.New("db down")}
		f := newAuthFixture(t, WithLimiter(lim))
		_, err := f.svc.Login(context.Background(), "alice", "correct-horse", "1.1.1.1")
		require.Error(t, err)
		require.False(t, errors.Is(err, errs.ErrUnauthenticated))
	})
}

func TestRefresh_RotatesOnce(t *testing.T) {
	t.Parallel()
	f := newAuthFixture(t)
	ctx := context.Background()

	first, err := f.svc.Login(ctx, "alice", "correct-horse", "")
	require.NoError(t, err)

	second, err := f.svc.Refresh(ctx, first.RefreshToken)
	require.NoError(t, err)
	require.NotEqual(t, first.RefreshToken, second.RefreshToken)

	refresh := fakeRefresh{f.store}
	old, err := refresh.GetByHash(ctx, pkgcrypto.HashToken(first.RefreshToken))
	require.NoError(t, err)
	require.False(t, old.IsValid(f.clock.Now()))
	next, err := refresh.GetByHash(ctx, pkgcrypto.HashToken(second.RefreshToken))
	require.NoError(t, err)
	require.True(t, next.IsValid(f.clock.Now()))
	require.Equal(t, old.UserID, next.UserID)

	_, err = f.svc.Refresh(ctx, first.RefreshToken)
	require.ErrorIs(t, err, errs.ErrInvalidToken)

	// no reuse detection: the successor stays usable
	_, err = f.svc.Refresh(ctx, second.RefreshToken)
	require.NoError(t, err)
}

func TestRefresh_Rejections(t *testing.T) {
	t.Parallel()
	f := newAuthFixture(t)
	ctx := context.Background()

	for _, raw := range []string{"", "not-a-token"} {
		_, err := f.svc.Refresh(ctx, raw)
		require.ErrorIs(t, err, errs.ErrInvalidToken, raw)
	}

	pair, err := f.svc.Login(ctx, "alice", "correct-horse", "")
	require.NoError(t, err)
	f.clock.Advance(DefaultRefreshTTL)
	_, err = f.svc.Refresh(ctx, pair.RefreshToken)
	require.ErrorIs(t, err, errs.ErrInvalidToken)
}

func TestRefresh_InactiveOwner(t *testing.T) {
	t.Parallel()
	f := newAuthFixture(t)
	ctx := context.Background()

	pair, err := f.svc.Login(ctx, "alice", "correct-horse", "")
	require.NoError(t, err)

	f.store.mu.Lock()
	f.store.users[f.alice.ID].IsActive = false
	f.store.mu.Unlock()

	_, err = f.svc.Refresh(ctx, pair.RefreshToken)
	require.ErrorIs(t, err, errs.ErrInvalidToken)
}

func TestRefresh_ConcurrentSingleWinner(t *testing.T) {
	t.Parallel()
	f := newAuthFixture(t)
	ctx := context.Background()

	pair, err := f.svc.Login(ctx, "alice", "correct-horse", "")
	require.NoError(t, err)

	const n = 16
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		wins    int
		invalid int
	)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.svc.Refresh(ctx, pair.RefreshToken)
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				wins++
			} else if errors.Is(err, errs.ErrInvalidToken) {
				invalid++
			}
		}()
	}
	wg.Wait()
	require.Equal(t, 1, wins)
	require.Equal(t, n-1, invalid)
}

func TestLogout_Idempotent(t *testing.T) {
	t.Parallel()
	f := newAuthFixture(t)
	ctx := context.Background()
	mallory := f.store.addUser(model.User{Username: "mallory", Email: "m@example.com", PasswordHash: "plain:x", IsActive: true})

	pair, err := f.svc.Login(ctx, "alice", "correct-horse", "")
	require.NoError(t, err)

	// someone else's token is left alone
	require.NoError(t, f.svc.Logout(ctx, pair.RefreshToken, mallory.ID))
	_, err = f.svc.Refresh(ctx, pair.RefreshToken)
	require.NoError(t, err)

	pair, err = f.svc.Login(ctx, "alice", "correct-horse", "")
	require.NoError(t, err)
	require.NoError(t, f.svc.Logout(ctx, pair.RefreshToken, f.alice.ID))
	require.NoError(t, f.svc.Logout(ctx, pair.RefreshToken, f.alice.ID))
	require.NoError(t, f.svc.Logout(ctx, "never-issued", f.alice.ID))
	require.NoError(t, f.svc.Logout(ctx, "", f.alice.ID))

	_, err = f.svc.Refresh(ctx, pair.RefreshToken)
	require.ErrorIs(t, err, errs.ErrInvalidToken)
}

func TestForgotPassword_UnknownEmailIsSilent(t *testing.T) {
	t.Parallel()
	f := newAuthFixture(t)

	require.NoError(t, f.svc.ForgotPassword(context.Background(), "nobody@example.com"))
	f.svc.Wait()
	require.Empty(t, f.notifier.mails())
}

func TestForgotPassword_AtMostOneUnusedToken(t *testing.T) {
	t.Parallel()
	f := newAuthFixture(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		require.NoError(t, f.svc.ForgotPassword(ctx, "alice@example.com"))
		f.svc.Wait()
		require.Len(t, f.store.unusedResets(f.alice.ID), 1)
	}

	mails := f.notifier.mails()
	require.Len(t, mails, 3)
	for _, m := range mails {
		require.Equal(t, kindPasswordReset, m.kind)
		require.Equal(t, "alice@example.com", m.recipient)
		require.Equal(t, "Alice", m.name)
	}

	unused := f.store.unusedResets(f.alice.ID)[0]
	require.Equal(t, f.clock.Now().Add(DefaultResetTTL), unused.ExpiresAt)
	matches := 0
	for _, m := range mails {
		if pkgcrypto.HashToken(m.token) == unused.TokenHash {
			matches++
		}
	}
	require.Equal(t, 1, matches)
}

func TestForgotPassword_ConcurrentKeepsOneUnused(t *testing.T) {
	t.Parallel()
	f := newAuthFixture(t)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = f.svc.ForgotPassword(context.Background(), "alice@example.com")
		}()
	}
	wg.Wait()
	f.svc.Wait()
	require.Len(t, f.store.unusedResets(f.alice.ID), 1)
}

func TestForgotPassword_ReturnsBeforeTokenIsStored(t *testing.T) {
	t.Parallel()
	f := newAuthFixture(t)
	gate := make(chan struct{})
	f.store.replaceGate = gate

	for _, email := range []string{"alice@example.com", "nobody@example.com"} {
		done := make(chan error, 1)
		go func() { done <- f.svc.ForgotPassword(context.Background(), email) }()
		select {
		case err := <-done:
			require.NoError(t, err, email)
		case <-time.After(2 * time.Second):
			t.Fatalf("ForgotPassword(%s) waited on the reset token store", email)
		}
	}
	require.Empty(t, f.store.unusedResets(f.alice.ID))
	require.Empty(t, f.notifier.mails())

	close(gate)
	f.svc.Wait()

	require.Len(t, f.store.unusedResets(f.alice.ID), 1)
	mails := f.notifier.mails()
	require.Len(t, mails, 1)
	require.Equal(t, "alice@example.com", mails[0].recipient)
}

func TestForgotPassword_StoreFailureIsLoggedOnly(t *testing.T) {
	t.Parallel()
	core, logs := observer.New(zap.InfoLevel)
	f := newAuthFixture(t, WithLogger(zap.New(core)))
	f.store.replaceErr = errors.New("connection reset")

	require.NoError(t, f.svc.ForgotPassword(context.Background(), "alice@example.com"))
	f.svc.Wait()

	require.Len(t, logs.FilterMessage("reset token not issued").All(), 1)
	require.Empty(t, f.notifier.mails())
}

func TestForgotPassword_DeliveryFailureIsLoggedOnly(t *testing.T) {
	t.Parallel()
	core, logs := observer.New(zap.InfoLevel)
	m := metrics.New()
	f := newAuthFixture(t, WithLogger(zap.New(core)), WithMetrics(m))
	f.notifier.err = errors.New("smtp: 535 auth failed")

	require.NoError(t, f.svc.ForgotPassword(context.Background(), "alice@example.com"))
	f.svc.Wait()

	entries := logs.FilterMessage("notification failed").All()
	require.Len(t, entries, 1)
	require.Equal(t, kindPasswordReset, entries[0].ContextMap()["kind"])

	srv := httptest.NewServer(m.Handler())
	defer srv.Close()
	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Contains(t, string(body), `gatekeeper_notifications_total{kind="password_reset",outcome="error"} 1`)
}

func requestReset(t *testing.T, f *authFixture) string {
	t.Helper()
	require.NoError(t, f.svc.ForgotPassword(context.Background(), "alice@example.com"))
	f.svc.Wait()
	mails := f.notifier.mails()
	require.NotEmpty(t, mails)
	return mails[len(mails)-1].token
}

func TestResetPassword(t *testing.T) {
	t.Parallel()
	f := newAuthFixture(t)
	ctx := context.Background()
	tok := requestReset(t, f)

	require.NoError(t, f.svc.ResetPassword(ctx, tok, "brand-new-pass"))
	f.svc.Wait()
	require.Equal(t, "plain:brand-new-pass", f.store.user(f.alice.ID).PasswordHash)
	require.Empty(t, f.store.unusedResets(f.alice.ID))

	mails := f.notifier.mails()
	require.Equal(t, kindPasswordChanged, mails[len(mails)-1].kind)

	_, err := f.svc.Login(ctx, "alice", "brand-new-pass", "")
	require.NoError(t, err)

	// a used token never mutates the password again
	require.ErrorIs(t, f.svc.ResetPassword(ctx, tok, "another-password"), errs.ErrInvalidToken)
	require.Equal(t, "plain:brand-new-pass", f.store.user(f.alice.ID).PasswordHash)
}

func TestResetPassword_Rejections(t *testing.T) {
	t.Parallel()
	f := newAuthFixture(t)
	ctx := context.Background()

	tok := requestReset(t, f)
	require.ErrorIs(t, f.svc.ResetPassword(ctx, tok, "short"), errs.ErrInvalidInput)
	require.ErrorIs(t, f.svc.ResetPassword(ctx, "", "long-enough-pw"), errs.ErrInvalidToken)
	require.ErrorIs(t, f.svc.ResetPassword(ctx, "forged", "long-enough-pw"), errs.ErrInvalidToken)

	f.clock.Advance(DefaultResetTTL + time.Second)
	require.ErrorIs(t, f.svc.ResetPassword(ctx, tok, "long-enough-pw"), errs.ErrInvalidToken)
	require.Equal(t, "plain:correct-horse", f.store.user(f.alice.ID).PasswordHash)
}

func TestResetPassword_SupersededTokenRejected(t *testing.T) {
	t.Parallel()
	f := newAuthFixture(t)

	older := requestReset(t, f)
	newer := requestReset(t, f)
	require.ErrorIs(t, f.svc.ResetPassword(context.Background(), older, "long-enough-pw"), errs.ErrInvalidToken)
	require.NoError(t, f.svc.ResetPassword(context.Background(), newer, "long-enough-pw"))
}

func TestChangePassword(t *testing.T) {
	t.Parallel()
	f := newAuthFixture(t)
	ctx := context.Background()

	err := f.svc.ChangePassword(ctx, f.alice.ID, "wrong", "new-password-1")
	require.ErrorIs(t, err, errs.ErrWrongPassword)
	require.Equal(t, "plain:correct-horse", f.store.user(f.alice.ID).PasswordHash)

	require.ErrorIs(t, f.svc.ChangePassword(ctx, f.alice.ID, "correct-horse", "tiny"), errs.ErrInvalidInput)
	require.ErrorIs(t, f.svc.ChangePassword(ctx, uuid.Must(uuid.NewV4()), "correct-horse", "new-password-1"), errs.ErrNotFound)

	require.NoError(t, f.svc.ChangePassword(ctx, f.alice.ID, "correct-horse", "new-password-1"))
	f.svc.Wait()
	require.Equal(t, "plain:new-password-1", f.store.user(f.alice.ID).PasswordHash)
	mails := f.notifier.mails()
	require.Len(t, mails, 1)
	require.Equal(t, kindPasswordChanged, mails[0].kind)
}

func TestAuthenticate(t *testing.T) {
	t.Parallel()
	f := newAuthFixture(t)
	ctx := context.Background()

	pair, err := f.svc.Login(ctx, "alice", "correct-horse", "")
	require.NoError(t, err)

	p, err := f.svc.Authenticate(ctx, pair.AccessToken)
	require.NoError(t, err)
	require.Equal(t, "alice", p.User.Username)
	require.True(t, authz.Authorize(p, authz.UserRead))
	require.False(t, authz.Authorize(p, authz.UserDelete))

	_, err = f.svc.Authenticate(ctx, pair.AccessToken+"x")
	require.ErrorIs(t, err, errs.ErrUnauthenticated)

	ghost, _, err := f.codec.Issue("ghost")
	require.NoError(t, err)
	_, err = f.svc.Authenticate(ctx, ghost)
	require.ErrorIs(t, err, errs.ErrUnauthenticated)

	f.store.mu.Lock()
	f.store.users[f.alice.ID].IsActive = false
	f.store.mu.Unlock()
	_, err = f.svc.Authenticate(ctx, pair.AccessToken)
	require.ErrorIs(t, err, errs.ErrUnauthenticated)
}
