// Package leaselock provides a PostgreSQL-backed lease lock. A lease is
// held for a TTL and renewed in the background; if renewal fails the
// lease context is cancelled so the holder can stop its work. Used by
// the worker to keep two instances from analyzing the same folder at
// once.
package leaselock

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

var (
	// ErrHeld is returned when another holder owns an unexpired lease.
	ErrHeld = errors.New("lease held by another holder")
	// ErrLost is the cancellation cause when a lease cannot be renewed.
	ErrLost = errors.New("lease lost")
)

const (
	defaultTTL   = 2 * time.Minute
	renewTimeout = 15 * time.Second
)

type db interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type Locker struct {
	db  db
	ttl time.Duration
}

type Lease struct {
	// Context is cancelled when the lease is released or lost. Work
	// guarded by the lease should run under it.
	Context context.Context

	key    string
	token  string
	locker *Locker
	cancel context.CancelCauseFunc

	stopOnce sync.Once
	stopCh   chan struct{}
}

func New(pool *pgxpool.Pool) *Locker {
	return &Locker{db: pool, ttl: defaultTTL}
}

// WithFolderLease runs fn while holding the analysis lease for a folder.
// If the lease is already held, ErrHeld is returned without running fn.
func (c *Locker) WithFolderLease(ctx context.Context, folderID int64, fn func(ctx context.Context) error) error {
	lease, err := c.acquire(ctx, fmt.Sprintf("analysis:folder:%d", folderID))
	if err != nil {
		return err
	}
	defer func() {
		_ = lease.release(context.Background())
	}()
	return fn(lease.Context)
}

func (c *Locker) acquire(ctx context.Context, key string) (*Lease, error) {
	token, err := gonanoid.New()
	if err != nil {
		return nil, err
	}

	ttlMs := c.ttl.Milliseconds()
	var returnedKey string
	err = c.db.QueryRow(ctx, tryAcquireSQL, key, token, ttlMs).Scan(&returnedKey)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrHeld
	}
	if err != nil {
		return nil, err
	}

	leaseCtx, cancel := context.WithCancelCause(ctx)
	l := &Lease{
		Context: leaseCtx,
		key:     key,
		token:   token,
		locker:  c,
		cancel:  cancel,
		stopCh:  make(chan struct{}),
	}

	go l.renewLoop(ttlMs)

	return l, nil
}

func (l *Lease) release(ctx context.Context) error {
	l.stopOnce.Do(func() {
		close(l.stopCh)
		l.cancel(context.Canceled)
	})

	_, err := l.locker.db.Exec(ctx, releaseSQL, l.key, l.token)
	return err
}

func (l *Lease) renewLoop(ttlMs int64) {
	t := time.NewTicker(l.locker.ttl / 2)
	defer t.Stop()

	for {
		select {
		case <-l.stopCh:
			return
		case <-l.Context.Done():
			return
		case <-t.C:
			if err := l.renew(ttlMs); err != nil {
				l.cancel(err)
				return
			}
		}
	}
}

func (l *Lease) renew(ttlMs int64) error {
	renewCtx, cancel := context.WithTimeout(l.Context, renewTimeout)
	defer cancel()

	var returnedKey string
	err := l.locker.db.QueryRow(renewCtx, renewSQL, l.key, l.token, ttlMs).Scan(&returnedKey)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrLost
	}
	return err
}

// The upsert takes over a lock row only when it has expired or when the
// same token already owns it.
const tryAcquireSQL = `
INSERT INTO analysis_locks (lock_key, locked_by, expires_at)
VALUES ($1, $2, now() + ($3::bigint * interval '1 millisecond'))
ON CONFLICT (lock_key) DO UPDATE
SET locked_by  = EXCLUDED.locked_by,
    expires_at = EXCLUDED.expires_at
WHERE analysis_locks.expires_at < now()
   OR analysis_locks.locked_by = EXCLUDED.locked_by
RETURNING lock_key;
`

const renewSQL = `
UPDATE analysis_locks
SET expires_at = now() + ($3::bigint * interval '1 millisecond')
WHERE lock_key = $1 AND locked_by = $2
RETURNING lock_key;
`

const releaseSQL = `
DELETE FROM analysis_locks
WHERE lock_key = $1 AND locked_by = $2;
`
