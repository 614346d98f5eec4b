package server

import (
	"context"
	"time"

	"github.com/peoplesmarkets/media/internal/mediadb"
	mediav1 "github.com/peoplesmarkets/media/pkg/api/mediav1"
)

func (e *SubscriptionEndpoint) PutMediaSubscription(ctx context.Context, req *mediav1.PutMediaSubscriptionRequest) (_ *mediav1.PutMediaSubscriptionResponse, err error) {
	defer mon.Task()(&ctx)(&err)
	defer func() { err = convertErr(e.log, err) }()

	// The billing pipeline authenticates with a service token; the payload
	// itself is trusted.
	if _, err := authenticate(ctx, e.verifier); err != nil {
		return nil, err
	}

	subscriptionID, err := parseUUID("media_subscription_id", req.GetMediaSubscriptionId())
	if err != nil {
		return nil, err
	}
	offerID, err := parseUUID("offer_id", req.GetOfferId())
	if err != nil {
		return nil, err
	}
	if req.GetBuyerUserId() == "" {
		return nil, errInvalidArgument.New("buyer_user_id is empty")
	}

	sub := &mediadb.MediaSubscription{
		ID:                 subscriptionID,
		BuyerUserID:        req.GetBuyerUserId(),
		OfferID:            offerID,
		CurrentPeriodStart: time.Unix(int64(req.CurrentPeriodStart), 0).UTC(),
		CurrentPeriodEnd:   time.Unix(int64(req.CurrentPeriodEnd), 0).UTC(),
		SubscriptionStatus: req.GetSubscriptionStatus(),
		PayedAt:            time.Unix(int64(req.PayedAt), 0).UTC(),
		PayedUntil:         time.Unix(int64(req.PayedUntil), 0).UTC(),
	}

	dbCtx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	if err := e.db.PutMediaSubscription(dbCtx, sub); err != nil {
		return nil, err
	}

	return &mediav1.PutMediaSubscriptionResponse{}, nil
}
