package mediadb

import (
	"context"

	"github.com/google/uuid"
)

// AddMediaToOffer associates a media the caller owns with an offer.
// Re-adding an existing association is a no-op.
func (db *DB) AddMediaToOffer(ctx context.Context, mediaID, offerID uuid.UUID, userID string) (err error) {
	defer mon.Task()(&ctx)(&err)

	tag, err := db.pool.Exec(ctx, `
		INSERT INTO media_offers ( media_id, offer_id )
		SELECT media_id, $2 FROM medias
		WHERE media_id = $1 AND user_id = $3
		ON CONFLICT DO NOTHING
	`, mediaID, offerID, userID)
	if err != nil {
		return classifyError(err)
	}

	// Zero rows means either the media is not the caller's or the
	// association already exists; disambiguate with an ownership check.
	if tag.RowsAffected() == 0 {
		var owned bool
		err := db.pool.QueryRow(ctx,
			`SELECT EXISTS ( SELECT 1 FROM medias WHERE media_id = $1 AND user_id = $2 )`,
			mediaID, userID,
		).Scan(&owned)
		if err != nil {
			return classifyError(err)
		}
		if !owned {
			return ErrNotFound.New("media %s", mediaID)
		}
	}

	return nil
}

// RemoveMediaFromOffer drops the association between a media the caller owns
// and an offer. Removing an absent association is a no-op as long as the
// media exists and is the caller's.
func (db *DB) RemoveMediaFromOffer(ctx context.Context, mediaID, offerID uuid.UUID, userID string) (err error) {
	defer mon.Task()(&ctx)(&err)

	var owned bool
	err = db.pool.QueryRow(ctx,
		`SELECT EXISTS ( SELECT 1 FROM medias WHERE media_id = $1 AND user_id = $2 )`,
		mediaID, userID,
	).Scan(&owned)
	if err != nil {
		return classifyError(err)
	}
	if !owned {
		return ErrNotFound.New("media %s", mediaID)
	}

	_, err = db.pool.Exec(ctx,
		`DELETE FROM media_offers WHERE media_id = $1 AND offer_id = $2`,
		mediaID, offerID)
	return classifyError(err)
}
