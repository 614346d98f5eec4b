package server

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/peoplesmarkets/media/internal/commerce"
	"github.com/peoplesmarkets/media/internal/mediadb"
	"github.com/peoplesmarkets/media/internal/objstore"
	mediav1 "github.com/peoplesmarkets/media/pkg/api/mediav1"
)

// getOwnedMedia loads a media and requires the caller to be its owner.
func (e *Endpoint) getOwnedMedia(ctx context.Context, caller, rawMediaID string) (*mediadb.Media, error) {
	mediaID, err := parseUUID("media_id", rawMediaID)
	if err != nil {
		return nil, err
	}

	dbCtx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	media, err := e.db.GetMedia(dbCtx, mediaID)
	if err != nil {
		return nil, err
	}
	if media.UserID != caller {
		return nil, errPermissionDenied.New("not the owner of media %s", mediaID)
	}
	return media, nil
}

// hasAccessGrant evaluates the non-owner read rule: the media must be linked
// to at least one offer that is public, or subscription-gated with a payed
// subscription held by the caller. Offers unknown to commerce are skipped.
func (e *Endpoint) hasAccessGrant(ctx context.Context, caller string, media *mediadb.Media) (bool, error) {
	for _, offerID := range media.OfferIDs {
		offer, err := e.offers.GetOffer(ctx, offerID)
		if err != nil {
			if commerce.ErrOfferNotFound.Has(err) {
				continue
			}
			return false, err
		}

		switch offer.Policy {
		case commerce.AccessPublic:
			return true, nil
		case commerce.AccessSubscription:
			subscriptionOfferID := offer.ID
			if offer.SubscriptionOfferID != nil {
				subscriptionOfferID = *offer.SubscriptionOfferID
			}

			dbCtx, cancel := context.WithTimeout(ctx, dbTimeout)
			active, err := e.db.HasActiveSubscription(dbCtx, caller, subscriptionOfferID)
			cancel()
			if err != nil {
				return false, err
			}
			if active {
				return true, nil
			}
		}
	}
	return false, nil
}

func (e *Endpoint) CreateMedia(ctx context.Context, req *mediav1.CreateMediaRequest) (_ *mediav1.CreateMediaResponse, err error) {
	defer mon.Task()(&ctx)(&err)
	defer func() { err = convertErr(e.log, err) }()

	caller, err := authenticate(ctx, e.verifier)
	if err != nil {
		return nil, err
	}

	marketBoothID, err := parseUUID("market_booth_id", req.GetMarketBoothId())
	if err != nil {
		return nil, err
	}
	if req.GetName() == "" {
		return nil, errInvalidArgument.New("name is empty")
	}
	if req.GetFile() != nil {
		if err := e.validateUpload(req.GetFile()); err != nil {
			return nil, err
		}
	}

	media := &mediadb.Media{
		ID:            uuid.New(),
		MarketBoothID: marketBoothID,
		UserID:        caller,
		Name:          req.GetName(),
	}

	var put func(ctx context.Context) error
	var key string
	uploaded := false

	if file := req.GetFile(); file != nil {
		key = objstore.ObjectKey(marketBoothID, media.ID, media.Name)
		media.DataURL = key
		media.SizeBytes = int64(len(file.GetData()))
		put = func(ctx context.Context) error {
			if err := e.store.Put(ctx, key, file.GetContentType(), file.GetData()); err != nil {
				return err
			}
			uploaded = true
			return nil
		}
	}

	txCtx, cancel := context.WithTimeout(ctx, objectTimeout)
	defer cancel()

	if err := e.db.CreateMedia(txCtx, media, put); err != nil {
		if uploaded {
			e.cleanupObject(ctx, key)
		}
		return nil, err
	}

	return &mediav1.CreateMediaResponse{Media: mediaResponse(media, nil)}, nil
}

func (e *Endpoint) GetMedia(ctx context.Context, req *mediav1.GetMediaRequest) (_ *mediav1.GetMediaResponse, err error) {
	defer mon.Task()(&ctx)(&err)
	defer func() { err = convertErr(e.log, err) }()

	caller, err := authenticate(ctx, e.verifier)
	if err != nil {
		return nil, err
	}

	mediaID, err := parseUUID("media_id", req.GetMediaId())
	if err != nil {
		return nil, err
	}

	dbCtx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	media, err := e.db.GetMedia(dbCtx, mediaID)
	if err != nil {
		return nil, err
	}

	if media.UserID != caller {
		granted, err := e.hasAccessGrant(ctx, caller, media)
		if err != nil {
			return nil, err
		}
		if !granted {
			return nil, errPermissionDenied.New("no access to media %s", mediaID)
		}
		return &mediav1.GetMediaResponse{Media: mediaResponse(media, nil)}, nil
	}

	return &mediav1.GetMediaResponse{Media: mediaResponse(media, e.inlineData(ctx, media))}, nil
}

// inlineData fetches the media's bytes for the owner when the stored object
// is small enough; failures degrade to a metadata-only response.
func (e *Endpoint) inlineData(ctx context.Context, media *mediadb.Media) []byte {
	if !media.Committed() {
		return nil
	}

	objCtx, cancel := context.WithTimeout(ctx, objectTimeout)
	defer cancel()

	attrs, err := e.store.Attrs(objCtx, media.DataURL)
	if err != nil || attrs.Size > inlineDataLimit {
		if err != nil && !objstore.ErrNotFound.Has(err) {
			e.log.Warn("skipping inline data", zap.String("key", media.DataURL), zap.Error(err))
		}
		return nil
	}

	data, err := e.store.Get(objCtx, media.DataURL)
	if err != nil {
		e.log.Warn("skipping inline data", zap.String("key", media.DataURL), zap.Error(err))
		return nil
	}
	return data
}

func (e *Endpoint) ListMedia(ctx context.Context, req *mediav1.ListMediaRequest) (_ *mediav1.ListMediaResponse, err error) {
	defer mon.Task()(&ctx)(&err)
	defer func() { err = convertErr(e.log, err) }()

	caller, err := authenticate(ctx, e.verifier)
	if err != nil {
		return nil, err
	}

	marketBoothID, err := parseUUID("market_booth_id", req.GetMarketBoothId())
	if err != nil {
		return nil, err
	}
	page, err := pageFromRequest(req.GetPagination())
	if err != nil {
		return nil, err
	}
	order, err := orderFromRequest(req.GetOrderBy())
	if err != nil {
		return nil, err
	}
	filter, err := filterFromRequest(req.GetFilter())
	if err != nil {
		return nil, err
	}

	dbCtx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	medias, err := e.db.ListMedia(dbCtx, marketBoothID, caller, page, order, filter)
	if err != nil {
		return nil, err
	}

	return &mediav1.ListMediaResponse{
		Medias:     mediaResponses(medias),
		Pagination: echoPagination(page),
	}, nil
}

func (e *Endpoint) ListAccessibleMedia(ctx context.Context, req *mediav1.ListAccessibleMediaRequest) (_ *mediav1.ListAccessibleMediaResponse, err error) {
	defer mon.Task()(&ctx)(&err)
	defer func() { err = convertErr(e.log, err) }()

	caller, err := authenticate(ctx, e.verifier)
	if err != nil {
		return nil, err
	}

	page, err := pageFromRequest(req.GetPagination())
	if err != nil {
		return nil, err
	}
	order, err := orderFromRequest(req.GetOrderBy())
	if err != nil {
		return nil, err
	}
	filter, err := filterFromRequest(req.GetFilter())
	if err != nil {
		return nil, err
	}

	var medias []*mediadb.Media
	if filter.OfferID != nil {
		medias, err = e.listOfferMedia(ctx, caller, *filter.OfferID, page, order)
	} else {
		dbCtx, cancel := context.WithTimeout(ctx, dbTimeout)
		defer cancel()
		medias, err = e.db.ListSubscribedMedia(dbCtx, caller, page, order, filter.Name)
	}
	if err != nil {
		return nil, err
	}

	return &mediav1.ListAccessibleMediaResponse{
		Medias:     mediaResponses(medias),
		Pagination: echoPagination(page),
	}, nil
}

// listOfferMedia resolves the offer's access policy and lists its media if
// the caller may see them. A gated offer without an active subscription
// yields an empty page rather than an error.
func (e *Endpoint) listOfferMedia(ctx context.Context, caller string, offerID uuid.UUID, page mediadb.Page, order mediadb.Order) ([]*mediadb.Media, error) {
	offer, err := e.offers.GetOffer(ctx, offerID)
	if err != nil {
		return nil, err
	}

	if offer.Policy == commerce.AccessSubscription && offer.UserID != caller {
		subscriptionOfferID := offer.ID
		if offer.SubscriptionOfferID != nil {
			subscriptionOfferID = *offer.SubscriptionOfferID
		}

		dbCtx, cancel := context.WithTimeout(ctx, dbTimeout)
		active, err := e.db.HasActiveSubscription(dbCtx, caller, subscriptionOfferID)
		cancel()
		if err != nil {
			return nil, err
		}
		if !active {
			return nil, nil
		}
	}

	dbCtx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()
	return e.db.ListMediaForOffer(dbCtx, offerID, page, order, "")
}

func (e *Endpoint) UpdateMedia(ctx context.Context, req *mediav1.UpdateMediaRequest) (_ *mediav1.UpdateMediaResponse, err error) {
	defer mon.Task()(&ctx)(&err)
	defer func() { err = convertErr(e.log, err) }()

	caller, err := authenticate(ctx, e.verifier)
	if err != nil {
		return nil, err
	}

	if req.GetName() == "" && req.GetFile() == nil {
		return nil, errInvalidArgument.New("nothing to update")
	}
	if req.GetFile() != nil {
		if err := e.validateUpload(req.GetFile()); err != nil {
			return nil, err
		}
	}

	media, err := e.getOwnedMedia(ctx, caller, req.GetMediaId())
	if err != nil {
		return nil, err
	}

	// The in-flight upload targets the key derived from the current name;
	// renaming now would strand it.
	if media.PendingUploadID != nil && req.GetName() != "" && req.GetName() != media.Name {
		return nil, errFailedPrecondition.New("media %s has an upload in progress", media.ID)
	}

	var name *string
	effectiveName := media.Name
	if req.GetName() != "" {
		value := req.GetName()
		name = &value
		effectiveName = value
	}

	var file *mediadb.FileUpdate
	var put func(ctx context.Context) error
	newKey := ""
	uploaded := false

	if upload := req.GetFile(); upload != nil {
		newKey = objstore.ObjectKey(media.MarketBoothID, media.ID, effectiveName)
		file = &mediadb.FileUpdate{
			DataURL:   newKey,
			SizeBytes: int64(len(upload.GetData())),
		}
		put = func(ctx context.Context) error {
			if err := e.store.Put(ctx, newKey, upload.GetContentType(), upload.GetData()); err != nil {
				return err
			}
			uploaded = true
			return nil
		}
	}

	txCtx, cancel := context.WithTimeout(ctx, objectTimeout)
	defer cancel()

	updated, err := e.db.UpdateMedia(txCtx, media.ID, caller, name, file, put)
	if err != nil {
		if uploaded && newKey != media.DataURL {
			e.cleanupObject(ctx, newKey)
		}
		return nil, err
	}

	// A rename with new bytes moves the object to a new slug; reap the old
	// one so the prefix holds a single object.
	if uploaded && media.Committed() && newKey != media.DataURL {
		e.cleanupObject(ctx, media.DataURL)
	}

	return &mediav1.UpdateMediaResponse{Media: mediaResponse(updated, nil)}, nil
}

func (e *Endpoint) DeleteMedia(ctx context.Context, req *mediav1.DeleteMediaRequest) (_ *mediav1.DeleteMediaResponse, err error) {
	defer mon.Task()(&ctx)(&err)
	defer func() { err = convertErr(e.log, err) }()

	caller, err := authenticate(ctx, e.verifier)
	if err != nil {
		return nil, err
	}

	media, err := e.getOwnedMedia(ctx, caller, req.GetMediaId())
	if err != nil {
		return nil, err
	}

	if media.PendingUploadID != nil {
		abortCtx, cancel := context.WithTimeout(ctx, objectTimeout)
		key := objstore.ObjectKey(media.MarketBoothID, media.ID, media.Name)
		if err := e.store.AbortMultipartUpload(abortCtx, key, *media.PendingUploadID); err != nil {
			e.log.Warn("aborting pending upload failed",
				zap.Stringer("media_id", media.ID), zap.Error(err))
		}
		cancel()
	}

	prefix := objstore.ObjectPrefix(media.MarketBoothID, media.ID)

	txCtx, cancel := context.WithTimeout(ctx, objectTimeout)
	defer cancel()

	err = e.db.DeleteMedia(txCtx, media.ID, caller, func(ctx context.Context) error {
		return e.store.DeletePrefix(ctx, prefix)
	})
	if err != nil {
		return nil, err
	}

	return &mediav1.DeleteMediaResponse{}, nil
}

// cleanupObject removes stray bytes after a failed or superseded write. Best
// effort; a failure only logs, the object is unreferenced either way.
func (e *Endpoint) cleanupObject(ctx context.Context, key string) {
	cleanupCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), objectTimeout)
	defer cancel()

	if err := e.store.Delete(cleanupCtx, key); err != nil {
		e.log.Warn("object cleanup failed", zap.String("key", key), zap.Error(err))
	}
}
