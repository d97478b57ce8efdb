package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/and161185/gatekeeper/internal/errs"
	"github.com/and161185/gatekeeper/internal/limiter"
	"github.com/and161185/gatekeeper/internal/model"
	"github.com/and161185/gatekeeper/internal/repository"
	"github.com/gofrs/uuid/v5"
)

// memStore backs every fake repository; one mutex makes each method atomic.
type memStore struct {
	mu      sync.Mutex
	users   map[uuid.UUID]*model.User
	roles   map[uuid.UUID][]model.Role
	refresh map[string]*model.RefreshToken
	resets  map[string]*model.PasswordResetToken
	configs map[uuid.UUID]*model.EmailConfig
	seq     int

	getErr error
	// replaceGate, when set, holds every reset token Replace until it is closed.
	replaceGate chan struct{}
	replaceErr  error
}

func newMemStore() *memStore {
	return &memStore{
		users:   map[uuid.UUID]*model.User{},
		roles:   map[uuid.UUID][]model.Role{},
		refresh: map[string]*model.RefreshToken{},
		resets:  map[string]*model.PasswordResetToken{},
		configs: map[uuid.UUID]*model.EmailConfig{},
	}
}

func (m *memStore) addUser(u model.User, roles ...model.Role) *model.User {
	m.mu.Lock()
	defer m.mu.Unlock()
	if u.ID == uuid.Nil {
		u.ID = uuid.Must(uuid.NewV4())
	}
	m.users[u.ID] = &u
	m.roles[u.ID] = roles
	c := u
	return &c
}

func (m *memStore) user(id uuid.UUID) model.User {
	m.mu.Lock()
	defer m.mu.Unlock()
	return *m.users[id]
}

func (m *memStore) unusedResets(userID uuid.UUID) []model.PasswordResetToken {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []model.PasswordResetToken
	for _, t := range m.resets {
		if t.UserID == userID && !t.IsUsed {
			out = append(out, *t)
		}
	}
	return out
}

func (m *memStore) activeConfigs() []uuid.UUID {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []uuid.UUID
	for id, c := range m.configs {
		if c.IsActive {
			out = append(out, id)
		}
	}
	return out
}

/************ users ************/

type fakeUsers struct{ *memStore }

var _ repository.UserRepository = fakeUsers{}

func (f fakeUsers) Create(_ context.Context, u *model.User, roleIDs []uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, x := range f.users {
		if x.Username == u.Username || x.Email == u.Email {
			return errs.ErrConflict
		}
	}
	c := *u
	f.users[u.ID] = &c
	var roles []model.Role
	for _, id := range roleIDs {
		roles = append(roles, model.Role{ID: id, IsActive: true})
	}
	f.roles[u.ID] = roles
	return nil
}

func (f fakeUsers) find(match func(*model.User) bool) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return nil, f.getErr
	}
	for _, u := range f.users {
		if match(u) {
			c := *u
			return &c, nil
		}
	}
	return nil, errs.ErrNotFound
}

func (f fakeUsers) GetByID(_ context.Context, id uuid.UUID) (*model.User, error) {
	return f.find(func(u *model.User) bool { return u.ID == id })
}

func (f fakeUsers) GetByUsername(_ context.Context, username string) (*model.User, error) {
	return f.find(func(u *model.User) bool { return u.Username == username })
}

func (f fakeUsers) GetByEmail(_ context.Context, email string) (*model.User, error) {
	return f.find(func(u *model.User) bool { return u.Email == email })
}

func (f fakeUsers) UpdatePassword(_ context.Context, id uuid.UUID, hash string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return errs.ErrNotFound
	}
	u.PasswordHash = hash
	return nil
}

func (f fakeUsers) Roles(_ context.Context, userID uuid.UUID) ([]model.Role, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]model.Role(nil), f.roles[userID]...), nil
}

/************ refresh tokens ************/

type fakeRefresh struct{ *memStore }

var _ repository.RefreshTokenRepository = fakeRefresh{}

func (f fakeRefresh) Create(_ context.Context, t *model.RefreshToken) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, dup := f.refresh[t.TokenHash]; dup {
		return errs.ErrConflict
	}
	c := *t
	f.refresh[t.TokenHash] = &c
	return nil
}

func (f fakeRefresh) GetByHash(_ context.Context, hash string) (*model.RefreshToken, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	t, ok := f.refresh[hash]
	if !ok {
		return nil, errs.ErrNotFound
	}
	c := *t
	return &c, nil
}

func (f fakeRefresh) Rotate(_ context.Context, presented string, successor *model.RefreshToken, now time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	t, ok := f.refresh[presented]
	if !ok || !t.IsValid(now) || t.UserID != successor.UserID {
		return errs.ErrInvalidToken
	}
	t.IsRevoked = true
	c := *successor
	f.refresh[successor.TokenHash] = &c
	return nil
}

func (f fakeRefresh) Revoke(_ context.Context, hash string, userID uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if t, ok := f.refresh[hash]; ok && t.UserID == userID {
		t.IsRevoked = true
	}
	return nil
}

/************ reset tokens ************/

type fakeResets struct{ *memStore }

var _ repository.ResetTokenRepository = fakeResets{}

func (f fakeResets) Replace(_ context.Context, t *model.PasswordResetToken) error {
	if f.replaceGate != nil {
		<-f.replaceGate
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.replaceErr != nil {
		return f.replaceErr
	}
	if _, ok := f.users[t.UserID]; !ok {
		return errs.ErrNotFound
	}
	for _, old := range f.resets {
		if old.UserID == t.UserID {
			old.IsUsed = true
		}
	}
	c := *t
	f.resets[t.TokenHash] = &c
	return nil
}

func (f fakeResets) Consume(_ context.Context, hash, passwordHash string, now time.Time) (uuid.UUID, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	t, ok := f.resets[hash]
	if !ok || !t.IsValid(now) {
		return uuid.Nil, errs.ErrInvalidToken
	}
	u, ok := f.users[t.UserID]
	if !ok {
		return uuid.Nil, errs.ErrNotFound
	}
	t.IsUsed = true
	u.PasswordHash = passwordHash
	return u.ID, nil
}

/************ email configs ************/

type fakeConfigs struct{ *memStore }

var _ repository.EmailConfigRepository = fakeConfigs{}

func (f fakeConfigs) Create(_ context.Context, c *model.EmailConfig) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if c.IsActive {
		for _, o := range f.configs {
			o.IsActive = false
		}
	}
	f.seq++
	c.CreatedAt = time.Unix(int64(f.seq), 0)
	cp := *c
	f.configs[c.ID] = &cp
	return nil
}

func (f fakeConfigs) Update(_ context.Context, id uuid.UUID, upd model.EmailConfigUpdate) (*model.EmailConfig, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.configs[id]
	if !ok {
		return nil, errs.ErrNotFound
	}
	if upd.IsActive != nil && *upd.IsActive {
		for oid, o := range f.configs {
			if oid != id {
				o.IsActive = false
			}
		}
	}
	set := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	set(&c.Provider, upd.Provider)
	set(&c.SMTPHost, upd.SMTPHost)
	set(&c.SMTPUsername, upd.SMTPUsername)
	set(&c.PasswordEnc, upd.PasswordEnc)
	set(&c.SenderEmail, upd.SenderEmail)
	set(&c.SenderName, upd.SenderName)
	if upd.SMTPPort != nil {
		c.SMTPPort = *upd.SMTPPort
	}
	if upd.UseTLS != nil {
		c.UseTLS = *upd.UseTLS
	}
	if upd.UseSSL != nil {
		c.UseSSL = *upd.UseSSL
	}
	if upd.IsActive != nil {
		c.IsActive = *upd.IsActive
	}
	cp := *c
	return &cp, nil
}

func (f fakeConfigs) Activate(_ context.Context, id uuid.UUID) (*model.EmailConfig, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	target, ok := f.configs[id]
	if !ok {
		return nil, errs.ErrNotFound
	}
	for _, o := range f.configs {
		o.IsActive = false
	}
	target.IsActive = true
	cp := *target
	return &cp, nil
}

func (f fakeConfigs) Delete(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.configs[id]; !ok {
		return errs.ErrNotFound
	}
	delete(f.configs, id)
	return nil
}

func (f fakeConfigs) GetByID(_ context.Context, id uuid.UUID) (*model.EmailConfig, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.configs[id]
	if !ok {
		return nil, errs.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (f fakeConfigs) GetActive(_ context.Context) (*model.EmailConfig, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.configs {
		if c.IsActive {
			cp := *c
			return &cp, nil
		}
	}
	return nil, errs.ErrNotFound
}

func (f fakeConfigs) List(_ context.Context) ([]model.EmailConfig, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]model.EmailConfig, 0, len(f.configs))
	for _, c := range f.configs {
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

/************ collaborators ************/

// fakeHasher stores "plain:" digests and counts verifications.
type fakeHasher struct{ verifies atomic.Int32 }

func (h *fakeHasher) Hash(pw string) (string, error) {
	if pw == "" {
		return "", errors.New("empty password")
	}
	return "plain:" + pw, nil
}

func (h *fakeHasher) Verify(pw, digest string) bool {
	h.verifies.Add(1)
	want, ok := strings.CutPrefix(digest, "plain:")
	return ok && subtle.ConstantTimeCompare([]byte(pw), []byte(want)) == 1
}

type sentMail struct {
	kind      string
	recipient string
	name      string
	token     string
}

type fakeNotifier struct {
	mu   sync.Mutex
	sent []sentMail
	err  error
}

var _ Notifier = (*fakeNotifier)(nil)

func (n *fakeNotifier) record(m sentMail) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.err != nil {
		return n.err
	}
	n.sent = append(n.sent, m)
	return nil
}

func (n *fakeNotifier) SendPasswordReset(_ context.Context, recipient, name, token string) error {
	return n.record(sentMail{kind: kindPasswordReset, recipient: recipient, name: name, token: token})
}

func (n *fakeNotifier) SendPasswordChanged(_ context.Context, recipient, name string) error {
	return n.record(sentMail{kind: kindPasswordChanged, recipient: recipient, name: name})
}

func (n *fakeNotifier) SendTest(_ context.Context, recipient string, cfg model.EmailConfig) error {
	return n.record(sentMail{kind: "test", recipient: recipient, name: cfg.SenderName})
}

func (n *fakeNotifier) mails() []sentMail {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]sentMail(nil), n.sent...)
}

type fakeLimiter struct {
	allowOK  bool
	allowErr error

	failBlocked bool
	failErr     error

	allowCalls   int
	failureCalls int
	successCalls int
}

var _ limiter.Limiter = (*fakeLimiter)(nil)

func (l *fakeLimiter) Allow(context.Context, string, []byte) (bool, time.Duration, error) {
	l.allowCalls++
	return l.allowOK, time.Minute, l.allowErr
}

func (l *fakeLimiter) Success(context.Context, string, []byte) error {
	l.successCalls++
	return nil
}

func (l *fakeLimiter) Failure(context.Context, string, []byte) (bool, time.Duration, error) {
	l.failureCalls++
	return l.failBlocked, 0, l.failErr
}

type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}
