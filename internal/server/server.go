// Package server implements the peoplesmarkets.media.v1 gRPC services on
// top of the metadata store, the object store, and the commerce client.
package server

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/spacemonkeygo/monkit/v3"
	"github.com/zeebo/errs"
	"go.uber.org/zap"

	"github.com/peoplesmarkets/media/internal/commerce"
	"github.com/peoplesmarkets/media/internal/mediadb"
	"github.com/peoplesmarkets/media/internal/objstore"
	mediav1 "github.com/peoplesmarkets/media/pkg/api/mediav1"
)

var (
	mon = monkit.Package()

	// Error is the default error class for the server package.
	Error = errs.Class("server")

	errInvalidArgument    = errs.Class("invalid argument")
	errPermissionDenied   = errs.Class("permission denied")
	errFailedPrecondition = errs.Class("failed precondition")
)

// Outbound call timeouts. Chunk uploads and completes get more room because
// they move real payloads.
const (
	dbTimeout       = 5 * time.Second
	objectTimeout   = 30 * time.Second
	completeTimeout = 60 * time.Second
)

// inlineDataLimit caps the object size the owner gets inlined on GetMedia.
const inlineDataLimit = 512 << 10

// MediaDB is the metadata surface the endpoints need. *mediadb.DB satisfies
// it; tests substitute an in-memory fake.
type MediaDB interface {
	CreateMedia(ctx context.Context, media *mediadb.Media, put func(ctx context.Context) error) error
	GetMedia(ctx context.Context, mediaID uuid.UUID) (*mediadb.Media, error)
	ListMedia(ctx context.Context, marketBoothID uuid.UUID, userID string, page mediadb.Page, order mediadb.Order, filter mediadb.Filter) ([]*mediadb.Media, error)
	ListMediaForOffer(ctx context.Context, offerID uuid.UUID, page mediadb.Page, order mediadb.Order, nameFilter string) ([]*mediadb.Media, error)
	ListSubscribedMedia(ctx context.Context, buyerUserID string, page mediadb.Page, order mediadb.Order, nameFilter string) ([]*mediadb.Media, error)
	UpdateMedia(ctx context.Context, mediaID uuid.UUID, userID string, name *string, file *mediadb.FileUpdate, put func(ctx context.Context) error) (*mediadb.Media, error)
	DeleteMedia(ctx context.Context, mediaID uuid.UUID, userID string, cleanup func(ctx context.Context) error) error
	BeginUpload(ctx context.Context, mediaID uuid.UUID, userID, uploadID string) error
	CommitUpload(ctx context.Context, mediaID uuid.UUID, userID, dataURL string, sizeBytes int64) (*mediadb.Media, error)
	AddMediaToOffer(ctx context.Context, mediaID, offerID uuid.UUID, userID string) error
	RemoveMediaFromOffer(ctx context.Context, mediaID, offerID uuid.UUID, userID string) error
	PutMediaSubscription(ctx context.Context, sub *mediadb.MediaSubscription) error
	HasActiveSubscription(ctx context.Context, buyerUserID string, offerID uuid.UUID) (bool, error)
}

// Offers resolves offer access policies against the commerce service.
type Offers interface {
	GetOffer(ctx context.Context, offerID uuid.UUID) (*commerce.Offer, error)
}

// TokenVerifier validates a bearer token and returns the caller's subject.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (subject string, err error)
}

// Endpoint implements mediav1.MediaServiceServer.
//
// architecture: Endpoint
type Endpoint struct {
	mediav1.UnimplementedMediaServiceServer

	log      *zap.Logger
	db       MediaDB
	store    objstore.Client
	offers   Offers
	verifier TokenVerifier

	fileMaxSize int64
}

// NewEndpoint wires a media service endpoint.
func NewEndpoint(log *zap.Logger, db MediaDB, store objstore.Client, offers Offers, verifier TokenVerifier, fileMaxSize int64) *Endpoint {
	return &Endpoint{
		log:         log,
		db:          db,
		store:       store,
		offers:      offers,
		verifier:    verifier,
		fileMaxSize: fileMaxSize,
	}
}

// SubscriptionEndpoint implements mediav1.MediaSubscriptionServiceServer,
// projecting billing-pipeline subscription state into the local store.
type SubscriptionEndpoint struct {
	mediav1.UnimplementedMediaSubscriptionServiceServer

	log      *zap.Logger
	db       MediaDB
	verifier TokenVerifier
}

// NewSubscriptionEndpoint wires the subscription projector endpoint.
func NewSubscriptionEndpoint(log *zap.Logger, db MediaDB, verifier TokenVerifier) *SubscriptionEndpoint {
	return &SubscriptionEndpoint{log: log, db: db, verifier: verifier}
}

// mediaResponse converts a row into its wire shape. data is inlined only on
// the owner's GetMedia path.
func mediaResponse(media *mediadb.Media, data []byte) *mediav1.MediaResponse {
	offerIDs := make([]string, 0, len(media.OfferIDs))
	for _, offerID := range media.OfferIDs {
		offerIDs = append(offerIDs, offerID.String())
	}

	return &mediav1.MediaResponse{
		MediaId:       media.ID.String(),
		OfferIds:      offerIDs,
		MarketBoothId: media.MarketBoothID.String(),
		UserId:        media.UserID,
		CreatedAt:     media.CreatedAt.Unix(),
		UpdatedAt:     media.UpdatedAt.Unix(),
		Name:          media.Name,
		Data:          data,
	}
}

func mediaResponses(medias []*mediadb.Media) []*mediav1.MediaResponse {
	responses := make([]*mediav1.MediaResponse, 0, len(medias))
	for _, media := range medias {
		responses = append(responses, mediaResponse(media, nil))
	}
	return responses
}
