// Package commerce wraps the commerce service's RPC surface behind a small
// client the media service uses to resolve offer access policies.
package commerce

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/spacemonkeygo/monkit/v3"
	"github.com/zeebo/errs"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"

	commercev1 "github.com/peoplesmarkets/media/pkg/api/commercev1"
)

var (
	mon = monkit.Package()

	// Error is the default error class for the commerce package.
	Error = errs.Class("commerce")
	// ErrOfferNotFound means the commerce service has no such offer.
	ErrOfferNotFound = errs.Class("offer not found")
)

// callTimeout bounds each GetOffer attempt.
const callTimeout = 2 * time.Second

// retryBackoff is the wait before each retry of an Unavailable call.
var retryBackoff = []time.Duration{50 * time.Millisecond, 200 * time.Millisecond, 800 * time.Millisecond}

// AccessPolicy mirrors the commerce service's offer access policy.
type AccessPolicy int

const (
	AccessUnspecified AccessPolicy = iota
	AccessPublic
	AccessSubscription
)

// Offer is the subset of the commerce offer the media service acts on.
type Offer struct {
	ID                  uuid.UUID
	UserID              string
	Policy              AccessPolicy
	SubscriptionOfferID *uuid.UUID
}

// Client resolves offers against the commerce service. The connection is
// dialed lazily on first use so startup does not depend on commerce being
// up.
type Client struct {
	log    *zap.Logger
	target string

	mu   sync.Mutex
	conn *grpc.ClientConn
	rpc  commercev1.OfferServiceClient
}

// NewClient prepares a client for the given commerce service address.
func NewClient(log *zap.Logger, target string) *Client {
	return &Client{log: log, target: target}
}

// Close tears down the connection if one was established.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn == nil {
		return nil
	}
	err := c.conn.Close()
	c.conn = nil
	c.rpc = nil
	return Error.Wrap(err)
}

func (c *Client) client() (commercev1.OfferServiceClient, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.rpc == nil {
		conn, err := grpc.Dial(c.target, grpc.WithTransportCredentials(insecure.NewCredentials()))
		if err != nil {
			return nil, Error.Wrap(err)
		}
		c.conn = conn
		c.rpc = commercev1.NewOfferServiceClient(conn)
	}
	return c.rpc, nil
}

// GetOffer fetches an offer, retrying transient transport failures.
func (c *Client) GetOffer(ctx context.Context, offerID uuid.UUID) (_ *Offer, err error) {
	defer mon.Task()(&ctx)(&err)

	rpc, err := c.client()
	if err != nil {
		return nil, err
	}

	var resp *commercev1.GetOfferResponse
	for attempt := 0; ; attempt++ {
		resp, err = c.getOfferOnce(ctx, rpc, offerID)
		if err == nil {
			break
		}
		if status.Code(err) != codes.Unavailable || attempt >= len(retryBackoff) {
			return nil, convertError(offerID, err)
		}

		c.log.Warn("commerce unavailable, retrying",
			zap.Stringer("offer_id", offerID),
			zap.Int("attempt", attempt+1))

		select {
		case <-time.After(retryBackoff[attempt]):
		case <-ctx.Done():
			return nil, Error.Wrap(ctx.Err())
		}
	}

	return convertOffer(resp.GetOffer())
}

func (c *Client) getOfferOnce(ctx context.Context, rpc commercev1.OfferServiceClient, offerID uuid.UUID) (*commercev1.GetOfferResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	return rpc.GetOffer(ctx, &commercev1.GetOfferRequest{OfferId: offerID.String()})
}

func convertOffer(offer *commercev1.OfferResponse) (*Offer, error) {
	if offer == nil {
		return nil, Error.New("empty offer response")
	}

	id, err := uuid.Parse(offer.GetOfferId())
	if err != nil {
		return nil, Error.New("malformed offer id %q: %w", offer.GetOfferId(), err)
	}

	converted := &Offer{
		ID:     id,
		UserID: offer.GetUserId(),
	}

	switch offer.GetAccessPolicy() {
	case commercev1.OfferAccessPolicy_OFFER_ACCESS_POLICY_PUBLIC:
		converted.Policy = AccessPublic
	case commercev1.OfferAccessPolicy_OFFER_ACCESS_POLICY_SUBSCRIPTION:
		converted.Policy = AccessSubscription
	}

	if raw := offer.GetSubscriptionOfferId(); raw != "" {
		subID, err := uuid.Parse(raw)
		if err != nil {
			return nil, Error.New("malformed subscription offer id %q: %w", raw, err)
		}
		converted.SubscriptionOfferID = &subID
	}

	return converted, nil
}

func convertError(offerID uuid.UUID, err error) error {
	if status.Code(err) == codes.NotFound {
		return ErrOfferNotFound.New("%s", offerID)
	}
	return Error.Wrap(err)
}
