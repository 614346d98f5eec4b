package server_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/peoplesmarkets/media/internal/commerce"
	"github.com/peoplesmarkets/media/internal/objstore"
	"github.com/peoplesmarkets/media/internal/server"
	mediav1 "github.com/peoplesmarkets/media/pkg/api/mediav1"
	paginationv1 "github.com/peoplesmarkets/media/pkg/api/paginationv1"
)

const testFileMaxSize = 10 << 20

type testEnv struct {
	endpoint *server.Endpoint
	subs     *server.SubscriptionEndpoint
	db       *fakeDB
	store    *objstore.TestClient
	offers   *fakeOffers
}

func newTestEnv(t *testing.T) *testEnv {
	log := zaptest.NewLogger(t)
	db := newFakeDB()
	store := objstore.NewTestClient()
	offers := &fakeOffers{offers: make(map[uuid.UUID]*commerce.Offer)}
	verifier := &fakeVerifier{subjects: map[string]string{
		"token-u1": "u1",
		"token-u2": "u2",
	}}

	return &testEnv{
		endpoint: server.NewEndpoint(log, db, store, offers, verifier, testFileMaxSize),
		subs:     server.NewSubscriptionEndpoint(log, db, verifier),
		db:       db,
		store:    store,
		offers:   offers,
	}
}

func callerCtx(token string) context.Context {
	md := metadata.Pairs("authorization", "Bearer "+token)
	return metadata.NewIncomingContext(context.Background(), md)
}

func (env *testEnv) createMedia(t *testing.T, ctx context.Context, boothID uuid.UUID, name string, file *mediav1.MediaUpload) *mediav1.MediaResponse {
	t.Helper()

	resp, err := env.endpoint.CreateMedia(ctx, &mediav1.CreateMediaRequest{
		MarketBoothId: boothID.String(),
		Name:          name,
		File:          file,
	})
	require.NoError(t, err)
	require.NotNil(t, resp.GetMedia())
	return resp.GetMedia()
}

func TestCreateMediaInline(t *testing.T) {
	env := newTestEnv(t)
	ctx := callerCtx("token-u1")

	boothID := uuid.New()
	payload := []byte{0xFF, 0xD8, 0x01, 0x02, 0xFF, 0xD9}

	media := env.createMedia(t, ctx, boothID, "cat.jpg", &mediav1.MediaUpload{
		ContentType: "image/jpeg",
		Data:        payload,
	})

	mediaID, err := uuid.Parse(media.GetMediaId())
	require.NoError(t, err)
	require.Equal(t, uuid.Version(4), mediaID.Version())
	require.Equal(t, "u1", media.GetUserId())

	// the bytes landed under the deterministic key
	key := objstore.ObjectKey(boothID, mediaID, "cat.jpg")
	stored, err := env.store.Get(context.Background(), key)
	require.NoError(t, err)
	require.Equal(t, payload, stored)

	// the owner gets small objects inlined on get
	got, err := env.endpoint.GetMedia(ctx, &mediav1.GetMediaRequest{MediaId: media.GetMediaId()})
	require.NoError(t, err)
	require.Equal(t, "cat.jpg", got.GetMedia().GetName())
	require.Equal(t, boothID.String(), got.GetMedia().GetMarketBoothId())
	require.Equal(t, payload, got.GetMedia().GetData())
}

type failingStore struct {
	objstore.Client
	failPut bool
}

func (s *failingStore) Put(ctx context.Context, key, contentType string, data []byte) error {
	if s.failPut {
		return objstore.Error.New("store down")
	}
	return s.Client.Put(ctx, key, contentType, data)
}

func TestCreateMediaStoreFailure(t *testing.T) {
	env := newTestEnv(t)

	store := &failingStore{Client: env.store, failPut: true}
	endpoint := server.NewEndpoint(zaptest.NewLogger(t), env.db, store, env.offers,
		&fakeVerifier{subjects: map[string]string{"token-u1": "u1"}}, testFileMaxSize)

	ctx := callerCtx("token-u1")
	boothID := uuid.New()

	_, err := endpoint.CreateMedia(ctx, &mediav1.CreateMediaRequest{
		MarketBoothId: boothID.String(),
		Name:          "cat.jpg",
		File:          &mediav1.MediaUpload{ContentType: "image/jpeg", Data: []byte{1, 2, 3}},
	})
	require.Equal(t, codes.Unavailable, status.Code(err))

	// neither row nor bytes survive the failure
	require.Empty(t, env.db.medias)
	list, listErr := env.endpoint.ListMedia(ctx, &mediav1.ListMediaRequest{MarketBoothId: boothID.String()})
	require.NoError(t, listErr)
	require.Empty(t, list.GetMedias())
}

func TestCreateMediaValidation(t *testing.T) {
	env := newTestEnv(t)
	ctx := callerCtx("token-u1")

	for _, tt := range []struct {
		name string
		req  *mediav1.CreateMediaRequest
	}{
		{"bad booth id", &mediav1.CreateMediaRequest{MarketBoothId: "nope", Name: "a"}},
		{"empty name", &mediav1.CreateMediaRequest{MarketBoothId: uuid.NewString()}},
		{"bad content type", &mediav1.CreateMediaRequest{
			MarketBoothId: uuid.NewString(), Name: "a",
			File: &mediav1.MediaUpload{ContentType: "application/x-evil", Data: []byte{1}},
		}},
		{"oversize", &mediav1.CreateMediaRequest{
			MarketBoothId: uuid.NewString(), Name: "a",
			File: &mediav1.MediaUpload{ContentType: "image/png", Data: make([]byte, testFileMaxSize+1)},
		}},
	} {
		_, err := env.endpoint.CreateMedia(ctx, tt.req)
		require.Equal(t, codes.InvalidArgument, status.Code(err), tt.name)
	}
}

func TestUnauthenticated(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.endpoint.GetMedia(context.Background(), &mediav1.GetMediaRequest{MediaId: uuid.NewString()})
	require.Equal(t, codes.Unauthenticated, status.Code(err))

	_, err = env.endpoint.GetMedia(callerCtx("bogus"), &mediav1.GetMediaRequest{MediaId: uuid.NewString()})
	require.Equal(t, codes.Unauthenticated, status.Code(err))
}

func TestGetMediaNonOwnerDenied(t *testing.T) {
	env := newTestEnv(t)

	media := env.createMedia(t, callerCtx("token-u1"), uuid.New(), "cat.jpg",
		&mediav1.MediaUpload{ContentType: "image/jpeg", Data: []byte{1}})

	_, err := env.endpoint.GetMedia(callerCtx("token-u2"), &mediav1.GetMediaRequest{MediaId: media.GetMediaId()})
	require.Equal(t, codes.PermissionDenied, status.Code(err))
}

func TestGetMediaNotFound(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.endpoint.GetMedia(callerCtx("token-u1"), &mediav1.GetMediaRequest{MediaId: uuid.NewString()})
	require.Equal(t, codes.NotFound, status.Code(err))
}

func TestPublicOfferGrantsAccess(t *testing.T) {
	env := newTestEnv(t)
	owner := callerCtx("token-u1")
	other := callerCtx("token-u2")

	media := env.createMedia(t, owner, uuid.New(), "cat.jpg",
		&mediav1.MediaUpload{ContentType: "image/jpeg", Data: []byte{1}})

	offerID := uuid.New()
	env.offers.offers[offerID] = &commerce.Offer{ID: offerID, UserID: "u1", Policy: commerce.AccessPublic}

	_, err := env.endpoint.AddMediaToOffer(owner, &mediav1.AddMediaToOfferRequest{
		MediaId: media.GetMediaId(), OfferId: offerID.String(),
	})
	require.NoError(t, err)

	// non-owner read is now granted
	got, err := env.endpoint.GetMedia(other, &mediav1.GetMediaRequest{MediaId: media.GetMediaId()})
	require.NoError(t, err)
	require.Nil(t, got.GetMedia().GetData())

	// and the offer-filtered accessible listing contains it
	list, err := env.endpoint.ListAccessibleMedia(other, &mediav1.ListAccessibleMediaRequest{
		Filter: &mediav1.MediaFilter{
			Field: mediav1.MediaFilterField_MEDIA_FILTER_FIELD_OFFER_ID,
			Query: offerID.String(),
		},
	})
	require.NoError(t, err)
	require.Len(t, list.GetMedias(), 1)
	require.Equal(t, media.GetMediaId(), list.GetMedias()[0].GetMediaId())
}

func TestSubscriptionGatedAccess(t *testing.T) {
	env := newTestEnv(t)
	owner := callerCtx("token-u1")
	buyer := callerCtx("token-u2")

	media := env.createMedia(t, owner, uuid.New(), "lesson.mp4",
		&mediav1.MediaUpload{ContentType: "video/mp4", Data: []byte{1, 2}})

	offerID := uuid.New()
	env.offers.offers[offerID] = &commerce.Offer{ID: offerID, UserID: "u1", Policy: commerce.AccessSubscription}

	_, err := env.endpoint.AddMediaToOffer(owner, &mediav1.AddMediaToOfferRequest{
		MediaId: media.GetMediaId(), OfferId: offerID.String(),
	})
	require.NoError(t, err)

	// gated without a subscription
	_, err = env.endpoint.GetMedia(buyer, &mediav1.GetMediaRequest{MediaId: media.GetMediaId()})
	require.Equal(t, codes.PermissionDenied, status.Code(err))

	// project a payed subscription, access opens up
	_, err = env.subs.PutMediaSubscription(buyer, &mediav1.PutMediaSubscriptionRequest{
		MediaSubscriptionId: uuid.NewString(),
		BuyerUserId:         "u2",
		OfferId:             offerID.String(),
		SubscriptionStatus:  "active",
		PayedUntil:          uint64(time.Now().Add(time.Hour).Unix()),
	})
	require.NoError(t, err)

	_, err = env.endpoint.GetMedia(buyer, &mediav1.GetMediaRequest{MediaId: media.GetMediaId()})
	require.NoError(t, err)

	// the unfiltered accessible listing includes it too
	list, err := env.endpoint.ListAccessibleMedia(buyer, &mediav1.ListAccessibleMediaRequest{})
	require.NoError(t, err)
	require.Len(t, list.GetMedias(), 1)
}

func TestExpiredSubscriptionDenied(t *testing.T) {
	env := newTestEnv(t)
	owner := callerCtx("token-u1")
	buyer := callerCtx("token-u2")

	media := env.createMedia(t, owner, uuid.New(), "lesson.mp4",
		&mediav1.MediaUpload{ContentType: "video/mp4", Data: []byte{1}})

	offerID := uuid.New()
	env.offers.offers[offerID] = &commerce.Offer{ID: offerID, UserID: "u1", Policy: commerce.AccessSubscription}

	_, err := env.endpoint.AddMediaToOffer(owner, &mediav1.AddMediaToOfferRequest{
		MediaId: media.GetMediaId(), OfferId: offerID.String(),
	})
	require.NoError(t, err)

	_, err = env.subs.PutMediaSubscription(buyer, &mediav1.PutMediaSubscriptionRequest{
		MediaSubscriptionId: uuid.NewString(),
		BuyerUserId:         "u2",
		OfferId:             offerID.String(),
		SubscriptionStatus:  "canceled",
		PayedUntil:          uint64(time.Now().Add(-time.Hour).Unix()),
	})
	require.NoError(t, err)

	_, err = env.endpoint.GetMedia(buyer, &mediav1.GetMediaRequest{MediaId: media.GetMediaId()})
	require.Equal(t, codes.PermissionDenied, status.Code(err))
}

func TestMultipartUpload(t *testing.T) {
	env := newTestEnv(t)
	ctx := callerCtx("token-u1")
	boothID := uuid.New()

	media := env.createMedia(t, ctx, boothID, "vid.mp4", nil)

	initiate, err := env.endpoint.InitiateMultipartUpload(ctx, &mediav1.InitiateMultipartUploadRequest{
		MediaId:     media.GetMediaId(),
		ContentType: "video/mp4",
	})
	require.NoError(t, err)
	require.NotEmpty(t, initiate.GetUploadId())

	partA := bytes.Repeat([]byte{0xAA}, 5<<20)
	partB := bytes.Repeat([]byte{0xBB}, 1<<20)

	var parts []*mediav1.Part
	for i, chunk := range [][]byte{partA, partB} {
		resp, err := env.endpoint.PutMultipartChunk(ctx, &mediav1.PutMultipartChunkRequest{
			MediaId:    media.GetMediaId(),
			UploadId:   initiate.GetUploadId(),
			PartNumber: uint32(i + 1),
			Chunk:      chunk,
		})
		require.NoError(t, err)
		require.Equal(t, uint32(i+1), resp.GetPart().GetPartNumber())
		require.NotEmpty(t, resp.GetPart().GetEtag())
		parts = append(parts, resp.GetPart())
	}

	_, err = env.endpoint.CompleteMultipartUpload(ctx, &mediav1.CompleteMultipartUploadRequest{
		MediaId:  media.GetMediaId(),
		UploadId: initiate.GetUploadId(),
		Parts:    parts,
	})
	require.NoError(t, err)

	stored, err := env.store.Get(context.Background(), initiate.GetKey())
	require.NoError(t, err)
	require.Equal(t, append(append([]byte(nil), partA...), partB...), stored)
	require.Zero(t, env.store.UploadCount())
}

func TestMultipartWrongUploadID(t *testing.T) {
	env := newTestEnv(t)
	ctx := callerCtx("token-u1")

	media := env.createMedia(t, ctx, uuid.New(), "vid.mp4", nil)

	_, err := env.endpoint.PutMultipartChunk(ctx, &mediav1.PutMultipartChunkRequest{
		MediaId:    media.GetMediaId(),
		UploadId:   "bogus",
		PartNumber: 1,
		Chunk:      []byte{1},
	})
	require.Equal(t, codes.FailedPrecondition, status.Code(err))

	_, err = env.endpoint.CompleteMultipartUpload(ctx, &mediav1.CompleteMultipartUploadRequest{
		MediaId:  media.GetMediaId(),
		UploadId: "bogus",
		Parts:    []*mediav1.Part{{PartNumber: 1, Etag: "x"}},
	})
	require.Equal(t, codes.FailedPrecondition, status.Code(err))
}

func TestMultipartPartValidation(t *testing.T) {
	env := newTestEnv(t)
	ctx := callerCtx("token-u1")

	media := env.createMedia(t, ctx, uuid.New(), "vid.mp4", nil)

	initiate, err := env.endpoint.InitiateMultipartUpload(ctx, &mediav1.InitiateMultipartUploadRequest{
		MediaId:     media.GetMediaId(),
		ContentType: "video/mp4",
	})
	require.NoError(t, err)

	_, err = env.endpoint.PutMultipartChunk(ctx, &mediav1.PutMultipartChunkRequest{
		MediaId:    media.GetMediaId(),
		UploadId:   initiate.GetUploadId(),
		PartNumber: 0,
		Chunk:      []byte{1},
	})
	require.Equal(t, codes.InvalidArgument, status.Code(err))

	// gap in the parts list
	_, err = env.endpoint.CompleteMultipartUpload(ctx, &mediav1.CompleteMultipartUploadRequest{
		MediaId:  media.GetMediaId(),
		UploadId: initiate.GetUploadId(),
		Parts:    []*mediav1.Part{{PartNumber: 1, Etag: "a"}, {PartNumber: 3, Etag: "b"}},
	})
	require.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestDeleteMediaCleansPrefix(t *testing.T) {
	env := newTestEnv(t)
	ctx := callerCtx("token-u1")
	boothID := uuid.New()

	media := env.createMedia(t, ctx, boothID, "vid.mp4", nil)
	mediaID := uuid.MustParse(media.GetMediaId())

	initiate, err := env.endpoint.InitiateMultipartUpload(ctx, &mediav1.InitiateMultipartUploadRequest{
		MediaId:     media.GetMediaId(),
		ContentType: "video/mp4",
	})
	require.NoError(t, err)

	chunk, err := env.endpoint.PutMultipartChunk(ctx, &mediav1.PutMultipartChunkRequest{
		MediaId:    media.GetMediaId(),
		UploadId:   initiate.GetUploadId(),
		PartNumber: 1,
		Chunk:      bytes.Repeat([]byte{1}, 6<<20),
	})
	require.NoError(t, err)

	_, err = env.endpoint.CompleteMultipartUpload(ctx, &mediav1.CompleteMultipartUploadRequest{
		MediaId:  media.GetMediaId(),
		UploadId: initiate.GetUploadId(),
		Parts:    []*mediav1.Part{chunk.GetPart()},
	})
	require.NoError(t, err)

	_, err = env.endpoint.DeleteMedia(ctx, &mediav1.DeleteMediaRequest{MediaId: media.GetMediaId()})
	require.NoError(t, err)

	_, err = env.store.Get(context.Background(), initiate.GetKey())
	require.True(t, objstore.ErrNotFound.Has(err))

	_, err = env.endpoint.GetMedia(ctx, &mediav1.GetMediaRequest{MediaId: mediaID.String()})
	require.Equal(t, codes.NotFound, status.Code(err))
}

func TestDeleteMediaAbortsPendingUpload(t *testing.T) {
	env := newTestEnv(t)
	ctx := callerCtx("token-u1")

	media := env.createMedia(t, ctx, uuid.New(), "vid.mp4", nil)

	_, err := env.endpoint.InitiateMultipartUpload(ctx, &mediav1.InitiateMultipartUploadRequest{
		MediaId:     media.GetMediaId(),
		ContentType: "video/mp4",
	})
	require.NoError(t, err)
	require.Equal(t, 1, env.store.UploadCount())

	_, err = env.endpoint.DeleteMedia(ctx, &mediav1.DeleteMediaRequest{MediaId: media.GetMediaId()})
	require.NoError(t, err)
	require.Zero(t, env.store.UploadCount())
}

func TestAddMediaToOfferIdempotent(t *testing.T) {
	env := newTestEnv(t)
	ctx := callerCtx("token-u1")

	media := env.createMedia(t, ctx, uuid.New(), "cat.jpg",
		&mediav1.MediaUpload{ContentType: "image/jpeg", Data: []byte{1}})
	mediaID := uuid.MustParse(media.GetMediaId())
	offerID := uuid.New()

	for i := 0; i < 2; i++ {
		_, err := env.endpoint.AddMediaToOffer(ctx, &mediav1.AddMediaToOfferRequest{
			MediaId: media.GetMediaId(), OfferId: offerID.String(),
		})
		require.NoError(t, err)
	}
	require.Equal(t, 1, env.db.associationCount(mediaID, offerID))

	// removing a pair that was never added succeeds
	_, err := env.endpoint.RemoveMediaFromOffer(ctx, &mediav1.RemoveMediaFromOfferRequest{
		MediaId: media.GetMediaId(), OfferId: uuid.NewString(),
	})
	require.NoError(t, err)

	_, err = env.endpoint.RemoveMediaFromOffer(ctx, &mediav1.RemoveMediaFromOfferRequest{
		MediaId: media.GetMediaId(), OfferId: offerID.String(),
	})
	require.NoError(t, err)
	require.Equal(t, 0, env.db.associationCount(mediaID, offerID))
}

func TestOfferOpsRequireOwner(t *testing.T) {
	env := newTestEnv(t)

	media := env.createMedia(t, callerCtx("token-u1"), uuid.New(), "cat.jpg",
		&mediav1.MediaUpload{ContentType: "image/jpeg", Data: []byte{1}})

	_, err := env.endpoint.AddMediaToOffer(callerCtx("token-u2"), &mediav1.AddMediaToOfferRequest{
		MediaId: media.GetMediaId(), OfferId: uuid.NewString(),
	})
	require.Equal(t, codes.PermissionDenied, status.Code(err))
}

func TestListMediaPagination(t *testing.T) {
	env := newTestEnv(t)
	ctx := callerCtx("token-u1")
	boothID := uuid.New()

	for i := 0; i < 25; i++ {
		env.createMedia(t, ctx, boothID, "img.png",
			&mediav1.MediaUpload{ContentType: "image/png", Data: []byte{byte(i)}})
	}

	seen := make(map[string]bool)
	sizes := []int{10, 10, 5}
	for page := 1; page <= 3; page++ {
		resp, err := env.endpoint.ListMedia(ctx, &mediav1.ListMediaRequest{
			MarketBoothId: boothID.String(),
			Pagination:    &paginationv1.Pagination{Page: uint32(page), Size: 10},
		})
		require.NoError(t, err)
		require.Len(t, resp.GetMedias(), sizes[page-1])
		require.Equal(t, uint32(page), resp.GetPagination().GetPage())
		require.Equal(t, uint32(10), resp.GetPagination().GetSize())

		for _, media := range resp.GetMedias() {
			require.False(t, seen[media.GetMediaId()], "duplicate across pages")
			seen[media.GetMediaId()] = true
		}
	}
	require.Len(t, seen, 25)
}

func TestListMediaInvalidPagination(t *testing.T) {
	env := newTestEnv(t)
	ctx := callerCtx("token-u1")

	_, err := env.endpoint.ListMedia(ctx, &mediav1.ListMediaRequest{
		MarketBoothId: uuid.NewString(),
		Pagination:    &paginationv1.Pagination{Page: 0, Size: 10},
	})
	require.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestListMediaDefaultsEchoed(t *testing.T) {
	env := newTestEnv(t)
	ctx := callerCtx("token-u1")

	resp, err := env.endpoint.ListMedia(ctx, &mediav1.ListMediaRequest{MarketBoothId: uuid.NewString()})
	require.NoError(t, err)
	require.Equal(t, uint32(1), resp.GetPagination().GetPage())
	require.Equal(t, uint32(10), resp.GetPagination().GetSize())
}

func TestUpdateMediaRename(t *testing.T) {
	env := newTestEnv(t)
	ctx := callerCtx("token-u1")
	boothID := uuid.New()

	media := env.createMedia(t, ctx, boothID, "old.png",
		&mediav1.MediaUpload{ContentType: "image/png", Data: []byte{1, 2, 3}})
	mediaID := uuid.MustParse(media.GetMediaId())

	newPayload := []byte{9, 9, 9, 9}
	updated, err := env.endpoint.UpdateMedia(ctx, &mediav1.UpdateMediaRequest{
		MediaId: media.GetMediaId(),
		Name:    "new.png",
		File:    &mediav1.MediaUpload{ContentType: "image/png", Data: newPayload},
	})
	require.NoError(t, err)
	require.Equal(t, "new.png", updated.GetMedia().GetName())

	// new key holds the new bytes, the old key is gone
	stored, err := env.store.Get(context.Background(), objstore.ObjectKey(boothID, mediaID, "new.png"))
	require.NoError(t, err)
	require.Equal(t, newPayload, stored)

	_, err = env.store.Get(context.Background(), objstore.ObjectKey(boothID, mediaID, "old.png"))
	require.True(t, objstore.ErrNotFound.Has(err))
}

func TestUpdateMediaRenameDuringUpload(t *testing.T) {
	env := newTestEnv(t)
	ctx := callerCtx("token-u1")
	boothID := uuid.New()

	media := env.createMedia(t, ctx, boothID, "vid.mp4", nil)

	initiate, err := env.endpoint.InitiateMultipartUpload(ctx, &mediav1.InitiateMultipartUploadRequest{
		MediaId:     media.GetMediaId(),
		ContentType: "video/mp4",
	})
	require.NoError(t, err)

	// the in-flight upload targets the key derived from the current name
	_, err = env.endpoint.UpdateMedia(ctx, &mediav1.UpdateMediaRequest{
		MediaId: media.GetMediaId(),
		Name:    "renamed.mp4",
	})
	require.Equal(t, codes.FailedPrecondition, status.Code(err))

	chunk, err := env.endpoint.PutMultipartChunk(ctx, &mediav1.PutMultipartChunkRequest{
		MediaId:    media.GetMediaId(),
		UploadId:   initiate.GetUploadId(),
		PartNumber: 1,
		Chunk:      []byte{1, 2, 3},
	})
	require.NoError(t, err)

	_, err = env.endpoint.CompleteMultipartUpload(ctx, &mediav1.CompleteMultipartUploadRequest{
		MediaId:  media.GetMediaId(),
		UploadId: initiate.GetUploadId(),
		Parts:    []*mediav1.Part{chunk.GetPart()},
	})
	require.NoError(t, err)

	// once the upload is committed the rename goes through
	updated, err := env.endpoint.UpdateMedia(ctx, &mediav1.UpdateMediaRequest{
		MediaId: media.GetMediaId(),
		Name:    "renamed.mp4",
	})
	require.NoError(t, err)
	require.Equal(t, "renamed.mp4", updated.GetMedia().GetName())
}

func TestUpdateMediaNothingToUpdate(t *testing.T) {
	env := newTestEnv(t)
	ctx := callerCtx("token-u1")

	media := env.createMedia(t, ctx, uuid.New(), "a.png",
		&mediav1.MediaUpload{ContentType: "image/png", Data: []byte{1}})

	_, err := env.endpoint.UpdateMedia(ctx, &mediav1.UpdateMediaRequest{MediaId: media.GetMediaId()})
	require.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestUpdateMediaNonOwner(t *testing.T) {
	env := newTestEnv(t)

	media := env.createMedia(t, callerCtx("token-u1"), uuid.New(), "a.png",
		&mediav1.MediaUpload{ContentType: "image/png", Data: []byte{1}})

	_, err := env.endpoint.UpdateMedia(callerCtx("token-u2"), &mediav1.UpdateMediaRequest{
		MediaId: media.GetMediaId(),
		Name:    "stolen.png",
	})
	require.Equal(t, codes.PermissionDenied, status.Code(err))
}

func TestPutMediaSubscriptionValidation(t *testing.T) {
	env := newTestEnv(t)
	ctx := callerCtx("token-u1")

	_, err := env.subs.PutMediaSubscription(ctx, &mediav1.PutMediaSubscriptionRequest{
		MediaSubscriptionId: "nope",
		BuyerUserId:         "u2",
		OfferId:             uuid.NewString(),
	})
	require.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = env.subs.PutMediaSubscription(ctx, &mediav1.PutMediaSubscriptionRequest{
		MediaSubscriptionId: uuid.NewString(),
		OfferId:             uuid.NewString(),
	})
	require.Equal(t, codes.InvalidArgument, status.Code(err))
}
