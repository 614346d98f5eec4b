package mediadb

import (
	"context"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// migration is one versioned schema step. Steps are append-only; never edit
// a released step.
type migration struct {
	version     int
	description string
	statements  []string
}

var migrations = []migration{
	{
		version:     1,
		description: "create medias",
		statements: []string{
			`CREATE TABLE IF NOT EXISTS medias (
				media_id UUID PRIMARY KEY,
				market_booth_id UUID NOT NULL,
				user_id TEXT NOT NULL,
				created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
				updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
				name TEXT NOT NULL,
				data_url TEXT NOT NULL DEFAULT '',
				size_bytes BIGINT NOT NULL DEFAULT 0
			)`,
			`CREATE INDEX IF NOT EXISTS medias_market_booth_id_idx ON medias ( market_booth_id )`,
			`CREATE INDEX IF NOT EXISTS medias_user_id_idx ON medias ( user_id )`,
		},
	},
	{
		version:     2,
		description: "create media_offers",
		statements: []string{
			`CREATE TABLE IF NOT EXISTS media_offers (
				media_id UUID NOT NULL REFERENCES medias ( media_id ) ON DELETE CASCADE,
				offer_id UUID NOT NULL,
				PRIMARY KEY ( media_id, offer_id )
			)`,
			`CREATE INDEX IF NOT EXISTS media_offers_offer_id_idx ON media_offers ( offer_id )`,
		},
	},
	{
		version:     3,
		description: "create media_subscriptions",
		statements: []string{
			`CREATE TABLE IF NOT EXISTS media_subscriptions (
				media_subscription_id UUID PRIMARY KEY,
				buyer_user_id TEXT NOT NULL,
				offer_id UUID NOT NULL,
				current_period_start TIMESTAMPTZ NOT NULL,
				current_period_end TIMESTAMPTZ NOT NULL,
				subscription_status TEXT NOT NULL,
				payed_at TIMESTAMPTZ NOT NULL,
				payed_until TIMESTAMPTZ NOT NULL
			)`,
			`CREATE INDEX IF NOT EXISTS media_subscriptions_buyer_offer_idx
				ON media_subscriptions ( buyer_user_id, offer_id )`,
		},
	},
	{
		version:     4,
		description: "track in-flight multipart uploads",
		statements: []string{
			`ALTER TABLE medias ADD COLUMN IF NOT EXISTS pending_upload_id TEXT`,
		},
	},
}

// Migrate applies all pending schema steps in order, each in its own
// transaction.
func (db *DB) Migrate(ctx context.Context) (err error) {
	defer mon.Task()(&ctx)(&err)

	_, err = db.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS schema_versions (
			version INTEGER PRIMARY KEY,
			applied_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)
	`)
	if err != nil {
		return Error.Wrap(err)
	}

	for _, step := range migrations {
		err := db.withTx(ctx, func(tx pgx.Tx) error {
			var exists bool
			err := tx.QueryRow(ctx,
				`SELECT EXISTS ( SELECT 1 FROM schema_versions WHERE version = $1 )`,
				step.version,
			).Scan(&exists)
			if err != nil {
				return Error.Wrap(err)
			}
			if exists {
				return nil
			}

			db.log.Info("applying migration",
				zap.Int("version", step.version),
				zap.String("description", step.description))

			for _, statement := range step.statements {
				if _, err := tx.Exec(ctx, statement); err != nil {
					return Error.New("migration %d: %w", step.version, err)
				}
			}

			_, err = tx.Exec(ctx, `INSERT INTO schema_versions ( version ) VALUES ( $1 )`, step.version)
			return Error.Wrap(err)
		})
		if err != nil {
			return err
		}
	}

	return nil
}
