package mediadb

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/zeebo/errs"
	"go.uber.org/zap/zaptest"
)

// openTestDB connects to the database named by MEDIA_TEST_POSTGRES and runs
// the migrations. The query tests are skipped when the variable is unset.
func openTestDB(ctx context.Context, t *testing.T) *DB {
	t.Helper()

	connString := os.Getenv("MEDIA_TEST_POSTGRES")
	if connString == "" {
		t.Skip("postgres flag missing, example: MEDIA_TEST_POSTGRES=postgres://postgres@localhost/media_test?sslmode=disable")
	}

	db, err := Open(ctx, zaptest.NewLogger(t), connString)
	require.NoError(t, err)
	t.Cleanup(db.Close)

	require.NoError(t, db.Migrate(ctx))
	return db
}

func createTestMedia(ctx context.Context, t *testing.T, db *DB, boothID uuid.UUID, userID, name string) *Media {
	t.Helper()

	media := &Media{
		ID:            uuid.New(),
		MarketBoothID: boothID,
		UserID:        userID,
		Name:          name,
	}
	require.NoError(t, db.CreateMedia(ctx, media, nil))
	return media
}

func TestUpdateMediaQuery(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(ctx, t)

	user := "user-" + uuid.NewString()
	media := createTestMedia(ctx, t, db, uuid.New(), user, "draft")

	offerA, offerB := uuid.New(), uuid.New()
	require.NoError(t, db.AddMediaToOffer(ctx, media.ID, offerA, user))
	require.NoError(t, db.AddMediaToOffer(ctx, media.ID, offerB, user))

	name := "final"
	file := &FileUpdate{DataURL: "booth/media/final", SizeBytes: 42}
	putCalled := false
	updated, err := db.UpdateMedia(ctx, media.ID, user, &name, file, func(ctx context.Context) error {
		putCalled = true
		return nil
	})
	require.NoError(t, err)
	require.True(t, putCalled)
	require.Equal(t, "final", updated.Name)
	require.Equal(t, "booth/media/final", updated.DataURL)
	require.Equal(t, int64(42), updated.SizeBytes)
	require.False(t, updated.UpdatedAt.Before(media.UpdatedAt))
	require.ElementsMatch(t, []uuid.UUID{offerA, offerB}, updated.OfferIDs)

	_, err = db.UpdateMedia(ctx, media.ID, "someone-else", &name, nil, nil)
	require.True(t, ErrNotFound.Has(err))
}

func TestUpdateMediaRollsBackOnPutFailure(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(ctx, t)

	user := "user-" + uuid.NewString()
	media := createTestMedia(ctx, t, db, uuid.New(), user, "draft")

	name := "final"
	file := &FileUpdate{DataURL: "booth/media/final", SizeBytes: 42}
	_, err := db.UpdateMedia(ctx, media.ID, user, &name, file, func(context.Context) error {
		return errs.New("store unreachable")
	})
	require.Error(t, err)

	current, err := db.GetMedia(ctx, media.ID)
	require.NoError(t, err)
	require.Equal(t, "draft", current.Name)
	require.Empty(t, current.DataURL)
}

func TestCommitUploadQuery(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(ctx, t)

	user := "user-" + uuid.NewString()
	media := createTestMedia(ctx, t, db, uuid.New(), user, "clip")

	offerID := uuid.New()
	require.NoError(t, db.AddMediaToOffer(ctx, media.ID, offerID, user))
	require.NoError(t, db.BeginUpload(ctx, media.ID, user, "upload-1"))

	pending, err := db.GetMedia(ctx, media.ID)
	require.NoError(t, err)
	require.NotNil(t, pending.PendingUploadID)
	require.Equal(t, "upload-1", *pending.PendingUploadID)

	_, err = db.CommitUpload(ctx, media.ID, "someone-else", "booth/media/clip", 7)
	require.True(t, ErrNotFound.Has(err))

	committed, err := db.CommitUpload(ctx, media.ID, user, "booth/media/clip", 7)
	require.NoError(t, err)
	require.Equal(t, "booth/media/clip", committed.DataURL)
	require.Equal(t, int64(7), committed.SizeBytes)
	require.Nil(t, committed.PendingUploadID)
	require.True(t, committed.Committed())
	require.Equal(t, []uuid.UUID{offerID}, committed.OfferIDs)
}

func TestListMediaNameFilter(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(ctx, t)

	user := "user-" + uuid.NewString()
	booth := uuid.New()
	for _, name := range []string{"Invoice 2024.pdf", "100% cotton", "a_b", "axb"} {
		createTestMedia(ctx, t, db, booth, user, name)
	}

	list := func(name string) []string {
		medias, err := db.ListMedia(ctx, booth, user, Page{}, Order{}, Filter{Name: name})
		require.NoError(t, err)
		names := make([]string, 0, len(medias))
		for _, media := range medias {
			names = append(names, media.Name)
		}
		return names
	}

	require.ElementsMatch(t,
		[]string{"Invoice 2024.pdf", "100% cotton", "a_b", "axb"}, list(""))
	require.ElementsMatch(t, []string{"Invoice 2024.pdf"}, list("voice"))
	require.ElementsMatch(t, []string{"100% cotton"}, list("%"))
	require.ElementsMatch(t, []string{"a_b"}, list("_"))
	require.Empty(t, list("missing"))
}

func TestListSubscribedMediaQuery(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(ctx, t)

	owner := "owner-" + uuid.NewString()
	buyer := "buyer-" + uuid.NewString()
	offerID := uuid.New()

	media := &Media{
		ID:            uuid.New(),
		MarketBoothID: uuid.New(),
		UserID:        owner,
		Name:          "guide",
		DataURL:       "booth/media/guide",
		SizeBytes:     9,
	}
	require.NoError(t, db.CreateMedia(ctx, media, nil))
	require.NoError(t, db.AddMediaToOffer(ctx, media.ID, offerID, owner))

	medias, err := db.ListSubscribedMedia(ctx, buyer, Page{}, Order{}, "")
	require.NoError(t, err)
	require.Empty(t, medias)

	now := time.Now()
	require.NoError(t, db.PutMediaSubscription(ctx, &MediaSubscription{
		ID:                 uuid.New(),
		BuyerUserID:        buyer,
		OfferID:            offerID,
		CurrentPeriodStart: now,
		CurrentPeriodEnd:   now.Add(24 * time.Hour),
		SubscriptionStatus: "active",
		PayedAt:            now,
		PayedUntil:         now.Add(24 * time.Hour),
	}))

	active, err := db.HasActiveSubscription(ctx, buyer, offerID)
	require.NoError(t, err)
	require.True(t, active)

	medias, err = db.ListSubscribedMedia(ctx, buyer, Page{}, Order{}, "")
	require.NoError(t, err)
	require.Len(t, medias, 1)
	require.Equal(t, media.ID, medias[0].ID)
	require.Equal(t, []uuid.UUID{offerID}, medias[0].OfferIDs)
}
