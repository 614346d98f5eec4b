package server_test

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/peoplesmarkets/media/internal/auth"
	"github.com/peoplesmarkets/media/internal/commerce"
	"github.com/peoplesmarkets/media/internal/mediadb"
)

// fakeVerifier resolves tokens from a fixed map.
type fakeVerifier struct {
	subjects map[string]string
}

func (v *fakeVerifier) Verify(ctx context.Context, token string) (string, error) {
	subject, ok := v.subjects[token]
	if !ok {
		return "", auth.ErrUnauthenticated.New("unknown token")
	}
	return subject, nil
}

// fakeOffers serves offers from a fixed map.
type fakeOffers struct {
	offers map[uuid.UUID]*commerce.Offer
}

func (o *fakeOffers) GetOffer(ctx context.Context, offerID uuid.UUID) (*commerce.Offer, error) {
	offer, ok := o.offers[offerID]
	if !ok {
		return nil, commerce.ErrOfferNotFound.New("%s", offerID)
	}
	return offer, nil
}

// fakeDB mirrors the metadata store's semantics in memory, including the
// commit-after-put transaction ordering.
type fakeDB struct {
	mu     sync.Mutex
	medias map[uuid.UUID]*mediadb.Media
	offers map[uuid.UUID]map[uuid.UUID]bool
	subs   map[uuid.UUID]*mediadb.MediaSubscription

	now time.Time
}

func newFakeDB() *fakeDB {
	return &fakeDB{
		medias: make(map[uuid.UUID]*mediadb.Media),
		offers: make(map[uuid.UUID]map[uuid.UUID]bool),
		subs:   make(map[uuid.UUID]*mediadb.MediaSubscription),
		now:    time.Now().UTC(),
	}
}

// tick advances the fake clock so created_at/updated_at values are distinct.
func (db *fakeDB) tick() time.Time {
	db.now = db.now.Add(time.Second)
	return db.now
}

func copyMedia(media *mediadb.Media) *mediadb.Media {
	clone := *media
	clone.OfferIDs = append([]uuid.UUID(nil), media.OfferIDs...)
	if media.PendingUploadID != nil {
		value := *media.PendingUploadID
		clone.PendingUploadID = &value
	}
	return &clone
}

func (db *fakeDB) withOffers(media *mediadb.Media) *mediadb.Media {
	clone := copyMedia(media)
	clone.OfferIDs = nil
	for offerID, members := range db.offers {
		if members[media.ID] {
			clone.OfferIDs = append(clone.OfferIDs, offerID)
		}
	}
	sort.Slice(clone.OfferIDs, func(i, j int) bool {
		return clone.OfferIDs[i].String() < clone.OfferIDs[j].String()
	})
	return clone
}

func (db *fakeDB) CreateMedia(ctx context.Context, media *mediadb.Media, put func(ctx context.Context) error) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	if _, exists := db.medias[media.ID]; exists {
		return mediadb.ErrAlreadyExists.New("media %s", media.ID)
	}

	now := db.tick()
	media.CreatedAt = now
	media.UpdatedAt = now

	if put != nil {
		if err := put(ctx); err != nil {
			return err
		}
	}

	db.medias[media.ID] = copyMedia(media)
	return nil
}

func (db *fakeDB) GetMedia(ctx context.Context, mediaID uuid.UUID) (*mediadb.Media, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	media, ok := db.medias[mediaID]
	if !ok {
		return nil, mediadb.ErrNotFound.New("media %s", mediaID)
	}
	return db.withOffers(media), nil
}

func (db *fakeDB) list(match func(*mediadb.Media) bool, page mediadb.Page, order mediadb.Order, nameFilter string) []*mediadb.Media {
	var result []*mediadb.Media
	for _, media := range db.medias {
		if !match(media) {
			continue
		}
		if nameFilter != "" && !strings.Contains(strings.ToLower(media.Name), strings.ToLower(nameFilter)) {
			continue
		}
		result = append(result, db.withOffers(media))
	}

	sort.Slice(result, func(i, j int) bool {
		a, b := result[i], result[j]
		var less, equal bool
		switch order.Field {
		case mediadb.OrderUpdatedAt:
			less, equal = a.UpdatedAt.Before(b.UpdatedAt), a.UpdatedAt.Equal(b.UpdatedAt)
		case mediadb.OrderName:
			less, equal = a.Name < b.Name, a.Name == b.Name
		default:
			less, equal = a.CreatedAt.Before(b.CreatedAt), a.CreatedAt.Equal(b.CreatedAt)
		}
		if equal {
			return a.ID.String() < b.ID.String()
		}
		if order.Descending {
			return !less
		}
		return less
	})

	page = page.Normalize()
	offset := int(page.Number-1) * int(page.Size)
	if offset >= len(result) {
		return nil
	}
	end := offset + int(page.Size)
	if end > len(result) {
		end = len(result)
	}
	return result[offset:end]
}

func (db *fakeDB) ListMedia(ctx context.Context, marketBoothID uuid.UUID, userID string, page mediadb.Page, order mediadb.Order, filter mediadb.Filter) ([]*mediadb.Media, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	return db.list(func(media *mediadb.Media) bool {
		if media.MarketBoothID != marketBoothID || media.UserID != userID {
			return false
		}
		if filter.OfferID != nil && !db.offers[*filter.OfferID][media.ID] {
			return false
		}
		return true
	}, page, order, filter.Name), nil
}

func (db *fakeDB) ListMediaForOffer(ctx context.Context, offerID uuid.UUID, page mediadb.Page, order mediadb.Order, nameFilter string) ([]*mediadb.Media, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	return db.list(func(media *mediadb.Media) bool {
		return media.DataURL != "" && db.offers[offerID][media.ID]
	}, page, order, nameFilter), nil
}

func (db *fakeDB) ListSubscribedMedia(ctx context.Context, buyerUserID string, page mediadb.Page, order mediadb.Order, nameFilter string) ([]*mediadb.Media, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	active := make(map[uuid.UUID]bool)
	for _, sub := range db.subs {
		if sub.BuyerUserID == buyerUserID && !sub.PayedUntil.Before(time.Now()) {
			active[sub.OfferID] = true
		}
	}

	return db.list(func(media *mediadb.Media) bool {
		if media.DataURL == "" {
			return false
		}
		for offerID := range active {
			if db.offers[offerID][media.ID] {
				return true
			}
		}
		return false
	}, page, order, nameFilter), nil
}

func (db *fakeDB) UpdateMedia(ctx context.Context, mediaID uuid.UUID, userID string, name *string, file *mediadb.FileUpdate, put func(ctx context.Context) error) (*mediadb.Media, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	media, ok := db.medias[mediaID]
	if !ok || media.UserID != userID {
		return nil, mediadb.ErrNotFound.New("media %s", mediaID)
	}

	updated := copyMedia(media)
	if name != nil {
		updated.Name = *name
	}
	if file != nil {
		updated.DataURL = file.DataURL
		updated.SizeBytes = file.SizeBytes
	}
	updated.UpdatedAt = db.tick()

	if put != nil {
		if err := put(ctx); err != nil {
			return nil, err
		}
	}

	db.medias[mediaID] = updated
	return db.withOffers(updated), nil
}

func (db *fakeDB) DeleteMedia(ctx context.Context, mediaID uuid.UUID, userID string, cleanup func(ctx context.Context) error) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	media, ok := db.medias[mediaID]
	if !ok || media.UserID != userID {
		return mediadb.ErrNotFound.New("media %s", mediaID)
	}

	if cleanup != nil {
		if err := cleanup(ctx); err != nil {
			return err
		}
	}

	delete(db.medias, mediaID)
	for _, members := range db.offers {
		delete(members, mediaID)
	}
	return nil
}

func (db *fakeDB) BeginUpload(ctx context.Context, mediaID uuid.UUID, userID, uploadID string) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	media, ok := db.medias[mediaID]
	if !ok || media.UserID != userID {
		return mediadb.ErrNotFound.New("media %s", mediaID)
	}
	media.PendingUploadID = &uploadID
	media.UpdatedAt = db.tick()
	return nil
}

func (db *fakeDB) CommitUpload(ctx context.Context, mediaID uuid.UUID, userID, dataURL string, sizeBytes int64) (*mediadb.Media, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	media, ok := db.medias[mediaID]
	if !ok || media.UserID != userID {
		return nil, mediadb.ErrNotFound.New("media %s", mediaID)
	}
	media.DataURL = dataURL
	media.SizeBytes = sizeBytes
	media.PendingUploadID = nil
	media.UpdatedAt = db.tick()
	return db.withOffers(media), nil
}

func (db *fakeDB) AddMediaToOffer(ctx context.Context, mediaID, offerID uuid.UUID, userID string) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	media, ok := db.medias[mediaID]
	if !ok || media.UserID != userID {
		return mediadb.ErrNotFound.New("media %s", mediaID)
	}
	if db.offers[offerID] == nil {
		db.offers[offerID] = make(map[uuid.UUID]bool)
	}
	db.offers[offerID][media.ID] = true
	return nil
}

func (db *fakeDB) RemoveMediaFromOffer(ctx context.Context, mediaID, offerID uuid.UUID, userID string) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	media, ok := db.medias[mediaID]
	if !ok || media.UserID != userID {
		return mediadb.ErrNotFound.New("media %s", mediaID)
	}
	delete(db.offers[offerID], mediaID)
	return nil
}

func (db *fakeDB) PutMediaSubscription(ctx context.Context, sub *mediadb.MediaSubscription) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	clone := *sub
	db.subs[sub.ID] = &clone
	return nil
}

func (db *fakeDB) HasActiveSubscription(ctx context.Context, buyerUserID string, offerID uuid.UUID) (bool, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, sub := range db.subs {
		if sub.BuyerUserID == buyerUserID && sub.OfferID == offerID && !sub.PayedUntil.Before(time.Now()) {
			return true, nil
		}
	}
	return false, nil
}

// associationCount reports how many association rows exist for a pair.
func (db *fakeDB) associationCount(mediaID, offerID uuid.UUID) int {
	db.mu.Lock()
	defer db.mu.Unlock()

	if db.offers[offerID][mediaID] {
		return 1
	}
	return 0
}
