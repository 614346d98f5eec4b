// Package mediadb implements the Postgres-backed metadata store for media
// assets, their offer associations, and projected subscriptions.
package mediadb

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spacemonkeygo/monkit/v3"
	"github.com/zeebo/errs"
	"go.uber.org/zap"
)

var (
	mon = monkit.Package()

	// Error is the default error class for the mediadb package.
	Error = errs.Class("mediadb")
	// ErrNotFound means the requested row does not exist or is not owned by
	// the caller.
	ErrNotFound = errs.Class("not found")
	// ErrAlreadyExists means a uniqueness constraint rejected the write.
	ErrAlreadyExists = errs.Class("already exists")
	// ErrReferenceNotFound means a foreign key constraint rejected the write.
	ErrReferenceNotFound = errs.Class("reference not found")
)

// Media is a single media asset row together with its associated offer ids.
//
// DataURL holds the object store key once bytes have been committed; it is
// empty while the media is pending. PendingUploadID is set only while a
// multipart upload is in flight.
type Media struct {
	ID            uuid.UUID
	MarketBoothID uuid.UUID
	UserID        string
	CreatedAt     time.Time
	UpdatedAt     time.Time
	Name          string
	DataURL       string
	SizeBytes     int64

	PendingUploadID *string

	OfferIDs []uuid.UUID
}

// Committed reports whether the media's bytes have been stored.
func (m *Media) Committed() bool { return m.DataURL != "" }

// MediaSubscription is the locally projected state of a commerce
// subscription, keyed by its upstream id.
type MediaSubscription struct {
	ID                 uuid.UUID
	BuyerUserID        string
	OfferID            uuid.UUID
	CurrentPeriodStart time.Time
	CurrentPeriodEnd   time.Time
	SubscriptionStatus string
	PayedAt            time.Time
	PayedUntil         time.Time
}

// DB wraps a pgx connection pool with the media service's queries.
type DB struct {
	log  *zap.Logger
	pool *pgxpool.Pool
}

// Open connects to Postgres and pings it.
func Open(ctx context.Context, log *zap.Logger, connString string) (*DB, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, Error.Wrap(err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, Error.Wrap(err)
	}
	return &DB{log: log, pool: pool}, nil
}

// Close releases the underlying pool.
func (db *DB) Close() { db.pool.Close() }

// withTx runs fn inside a transaction, committing on success and rolling
// back on error or panic.
func (db *DB) withTx(ctx context.Context, fn func(tx pgx.Tx) error) (err error) {
	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return Error.Wrap(err)
	}

	committed := false
	defer func() {
		if !committed {
			if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				db.log.Warn("rollback failed", zap.Error(rollbackErr))
			}
		}
	}()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return Error.Wrap(err)
	}
	committed = true
	return nil
}
