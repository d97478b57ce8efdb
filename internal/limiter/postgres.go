package limiter

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type pgxQuerier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PG keeps limiter state in the auth_limiter table, so every replica sees the same counters.
type PG struct {
	q      pgxQuerier
	policy Policy
	now    func() time.Time
}

// Option customizes PG.
type Option func(*PG)

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option { return func(l *PG) { l.now = now } }

// NewPG constructs a PostgreSQL-backed limiter over any pgx pool or connection.
func NewPG(q pgxQuerier, policy Policy, opts ...Option) *PG {
	l := &PG{q: q, policy: policy, now: time.Now}
	for _, o := range opts {
		o(l)
	}
	return l
}

// Allow reports whether the pair is currently unblocked.
func (l *PG) Allow(ctx context.Context, username string, ipHash []byte) (bool, time.Duration, error) {
	const q = `SELECT blocked_until FROM auth_limiter WHERE username=$1 AND ip_hash=$2`
	var blockedUntil time.Time
	err := l.q.QueryRow(ctx, q, username, ipHash).Scan(&blockedUntil)
	if errors.Is(err, pgx.ErrNoRows) {
		return true, 0, nil
	}
	if err != nil {
		return false, 0, err
	}
	if now := l.now(); blockedUntil.After(now) {
		return false, blockedUntil.Sub(now), nil
	}
	return true, 0, nil
}

// Success resets counters for the pair.
func (l *PG) Success(ctx context.Context, username string, ipHash []byte) error {
	const q = `
INSERT INTO auth_limiter (username, ip_hash, fail_count, blocked_until, updated_at)
VALUES ($1, $2, 0, 'epoch', $3)
ON CONFLICT (username, ip_hash)
DO UPDATE SET fail_count=0, blocked_until='epoch', updated_at=$3`
	_, err := l.q.Exec(ctx, q, username, ipHash, l.now())
	return err
}

// Failure bumps the streak and sets blocked_until in the same statement once the threshold is hit.
// A streak older than the window restarts from one.
func (l *PG) Failure(ctx context.Context, username string, ipHash []byte) (bool, time.Duration, error) {
	const q = `
INSERT INTO auth_limiter AS a (username, ip_hash, fail_count, blocked_until, updated_at)
VALUES ($1, $2, 1, CASE WHEN 1 >= $4 THEN $5 ELSE 'epoch'::timestamptz END, $3)
ON CONFLICT (username, ip_hash) DO UPDATE SET
  fail_count = CASE WHEN $3 - a.updated_at > $6::interval THEN 1 ELSE a.fail_count + 1 END,
  blocked_until = CASE
    WHEN (CASE WHEN $3 - a.updated_at > $6::interval THEN 1 ELSE a.fail_count + 1 END) >= $4 THEN $5
    ELSE a.blocked_until END,
  updated_at = $3
RETURNING fail_count, blocked_until`

	now := l.now()
	var (
		fails        int
		blockedUntil time.Time
	)
	err := l.q.QueryRow(ctx, q, username, ipHash, now, l.policy.MaxFails, now.Add(l.policy.BlockFor), l.policy.Window).
		Scan(&fails, &blockedUntil)
	if err != nil {
		return false, 0, err
	}
	if fails >= l.policy.MaxFails && blockedUntil.After(now) {
		return true, blockedUntil.Sub(now), nil
	}
	return false, 0, nil
}
