package mediadb

import (
	"context"

	"github.com/google/uuid"
)

// PutMediaSubscription upserts the projected subscription state, keyed by
// the upstream subscription id. The projector replays events, so the write
// must be idempotent.
func (db *DB) PutMediaSubscription(ctx context.Context, sub *MediaSubscription) (err error) {
	defer mon.Task()(&ctx)(&err)

	_, err = db.pool.Exec(ctx, `
		INSERT INTO media_subscriptions (
			media_subscription_id, buyer_user_id, offer_id,
			current_period_start, current_period_end,
			subscription_status, payed_at, payed_until
		) VALUES ( $1, $2, $3, $4, $5, $6, $7, $8 )
		ON CONFLICT ( media_subscription_id ) DO UPDATE SET
			buyer_user_id = EXCLUDED.buyer_user_id,
			offer_id = EXCLUDED.offer_id,
			current_period_start = EXCLUDED.current_period_start,
			current_period_end = EXCLUDED.current_period_end,
			subscription_status = EXCLUDED.subscription_status,
			payed_at = EXCLUDED.payed_at,
			payed_until = EXCLUDED.payed_until
	`,
		sub.ID, sub.BuyerUserID, sub.OfferID,
		sub.CurrentPeriodStart, sub.CurrentPeriodEnd,
		sub.SubscriptionStatus, sub.PayedAt, sub.PayedUntil,
	)
	return classifyError(err)
}

// HasActiveSubscription reports whether the buyer holds a subscription to
// the offer that is payed through now.
func (db *DB) HasActiveSubscription(ctx context.Context, buyerUserID string, offerID uuid.UUID) (_ bool, err error) {
	defer mon.Task()(&ctx)(&err)

	var active bool
	err = db.pool.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM media_subscriptions
			WHERE buyer_user_id = $1 AND offer_id = $2 AND payed_until >= now()
		)
	`, buyerUserID, offerID).Scan(&active)
	if err != nil {
		return false, classifyError(err)
	}
	return active, nil
}
