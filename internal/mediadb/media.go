package mediadb

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// mediaColumns is the shared select list; every media query aggregates the
// associated offer ids in the same shape so scanMedia applies everywhere.
const mediaColumns = `
	m.media_id, m.market_booth_id, m.user_id, m.created_at, m.updated_at,
	m.name, m.data_url, m.size_bytes, m.pending_upload_id,
	ARRAY_REMOVE(ARRAY_AGG(o.offer_id), NULL)
`

const mediaGroupBy = ` GROUP BY m.media_id`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMedia(row rowScanner) (*Media, error) {
	var media Media
	err := row.Scan(
		&media.ID, &media.MarketBoothID, &media.UserID,
		&media.CreatedAt, &media.UpdatedAt,
		&media.Name, &media.DataURL, &media.SizeBytes, &media.PendingUploadID,
		&media.OfferIDs,
	)
	if err != nil {
		return nil, classifyError(err)
	}
	return &media, nil
}

func scanMediaRows(rows pgx.Rows) (_ []*Media, err error) {
	defer rows.Close()

	var medias []*Media
	for rows.Next() {
		media, err := scanMedia(rows)
		if err != nil {
			return nil, err
		}
		medias = append(medias, media)
	}
	return medias, classifyError(rows.Err())
}

// CreateMedia inserts the media row and calls put before committing, so the
// row only becomes visible once the bytes (if any) are stored. put may be
// nil for a pending media without bytes.
func (db *DB) CreateMedia(ctx context.Context, media *Media, put func(ctx context.Context) error) (err error) {
	defer mon.Task()(&ctx)(&err)

	return db.withTx(ctx, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx, `
			INSERT INTO medias ( media_id, market_booth_id, user_id, name, data_url, size_bytes )
			VALUES ( $1, $2, $3, $4, $5, $6 )
			RETURNING created_at, updated_at
		`,
			media.ID, media.MarketBoothID, media.UserID, media.Name, media.DataURL, media.SizeBytes,
		).Scan(&media.CreatedAt, &media.UpdatedAt)
		if err != nil {
			return classifyError(err)
		}

		if put != nil {
			if err := put(ctx); err != nil {
				return err
			}
		}
		return nil
	})
}

// queryRower is the query surface shared by the pool and a transaction.
type queryRower interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func getMediaRow(ctx context.Context, q queryRower, mediaID uuid.UUID) (*Media, error) {
	row := q.QueryRow(ctx, `
		SELECT `+mediaColumns+`
		FROM medias m
		LEFT JOIN media_offers o ON o.media_id = m.media_id
		WHERE m.media_id = $1
	`+mediaGroupBy, mediaID)

	return scanMedia(row)
}

// GetMedia fetches a media row with its offer ids.
func (db *DB) GetMedia(ctx context.Context, mediaID uuid.UUID) (_ *Media, err error) {
	defer mon.Task()(&ctx)(&err)

	return getMediaRow(ctx, db.pool, mediaID)
}

// ListMedia pages over a shop owner's media for one market booth.
func (db *DB) ListMedia(ctx context.Context, marketBoothID uuid.UUID, userID string, page Page, order Order, filter Filter) (_ []*Media, err error) {
	defer mon.Task()(&ctx)(&err)

	limit, offset := page.limitOffset()
	rows, err := db.pool.Query(ctx, `
		SELECT `+mediaColumns+`
		FROM medias m
		LEFT JOIN media_offers o ON o.media_id = m.media_id
		WHERE m.market_booth_id = $1
			AND m.user_id = $2
			AND ( $3 = '' OR m.name ILIKE '%' || $3 || '%' ESCAPE '\' )
			AND ( $4::uuid IS NULL OR EXISTS (
				SELECT 1 FROM media_offers f
				WHERE f.media_id = m.media_id AND f.offer_id = $4
			) )
	`+mediaGroupBy+order.orderClause()+`
		LIMIT $5 OFFSET $6
	`, marketBoothID, userID, escapeLike(filter.Name), filter.OfferID, limit, offset)
	if err != nil {
		return nil, classifyError(err)
	}

	return scanMediaRows(rows)
}

// ListMediaForOffer pages over every committed media attached to an offer.
func (db *DB) ListMediaForOffer(ctx context.Context, offerID uuid.UUID, page Page, order Order, nameFilter string) (_ []*Media, err error) {
	defer mon.Task()(&ctx)(&err)

	limit, offset := page.limitOffset()
	rows, err := db.pool.Query(ctx, `
		SELECT `+mediaColumns+`
		FROM medias m
		JOIN media_offers mo ON mo.media_id = m.media_id AND mo.offer_id = $1
		LEFT JOIN media_offers o ON o.media_id = m.media_id
		WHERE m.data_url <> ''
			AND ( $2 = '' OR m.name ILIKE '%' || $2 || '%' ESCAPE '\' )
	`+mediaGroupBy+order.orderClause()+`
		LIMIT $3 OFFSET $4
	`, offerID, escapeLike(nameFilter), limit, offset)
	if err != nil {
		return nil, classifyError(err)
	}

	return scanMediaRows(rows)
}

// ListSubscribedMedia pages over every committed media the buyer can reach
// through a currently payed subscription.
func (db *DB) ListSubscribedMedia(ctx context.Context, buyerUserID string, page Page, order Order, nameFilter string) (_ []*Media, err error) {
	defer mon.Task()(&ctx)(&err)

	limit, offset := page.limitOffset()
	rows, err := db.pool.Query(ctx, `
		SELECT `+mediaColumns+`
		FROM medias m
		JOIN media_offers mo ON mo.media_id = m.media_id
		JOIN media_subscriptions s ON s.offer_id = mo.offer_id
			AND s.buyer_user_id = $1
			AND s.payed_until >= now()
		LEFT JOIN media_offers o ON o.media_id = m.media_id
		WHERE m.data_url <> ''
			AND ( $2 = '' OR m.name ILIKE '%' || $2 || '%' ESCAPE '\' )
	`+mediaGroupBy+order.orderClause()+`
		LIMIT $3 OFFSET $4
	`, buyerUserID, escapeLike(nameFilter), limit, offset)
	if err != nil {
		return nil, classifyError(err)
	}

	return scanMediaRows(rows)
}

// FileUpdate carries the new object location when an update replaces the
// media's bytes.
type FileUpdate struct {
	DataURL   string
	SizeBytes int64
}

// UpdateMedia updates the name and/or file of a media the caller owns. When
// file is non-nil, put is called before commit so the row never points at
// bytes that were not stored.
func (db *DB) UpdateMedia(ctx context.Context, mediaID uuid.UUID, userID string, name *string, file *FileUpdate, put func(ctx context.Context) error) (_ *Media, err error) {
	defer mon.Task()(&ctx)(&err)

	var media *Media
	err = db.withTx(ctx, func(tx pgx.Tx) error {
		var dataURL *string
		var sizeBytes *int64
		if file != nil {
			dataURL = &file.DataURL
			sizeBytes = &file.SizeBytes
		}

		tag, err := tx.Exec(ctx, `
			UPDATE medias SET
				name = COALESCE($3, name),
				data_url = COALESCE($4, data_url),
				size_bytes = COALESCE($5, size_bytes),
				updated_at = now()
			WHERE media_id = $1 AND user_id = $2
		`, mediaID, userID, name, dataURL, sizeBytes)
		if err != nil {
			return classifyError(err)
		}
		if tag.RowsAffected() == 0 {
			return ErrNotFound.New("media %s", mediaID)
		}

		// The offer aggregate cannot ride along on the update, so re-read
		// the row inside the same transaction.
		media, err = getMediaRow(ctx, tx, mediaID)
		if err != nil {
			return err
		}

		if put != nil {
			return put(ctx)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return media, nil
}

// DeleteMedia removes a media the caller owns and calls cleanup before
// commit; if the object sweep fails the row survives and the delete can be
// retried.
func (db *DB) DeleteMedia(ctx context.Context, mediaID uuid.UUID, userID string, cleanup func(ctx context.Context) error) (err error) {
	defer mon.Task()(&ctx)(&err)

	return db.withTx(ctx, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx,
			`DELETE FROM medias WHERE media_id = $1 AND user_id = $2`,
			mediaID, userID)
		if err != nil {
			return classifyError(err)
		}
		if tag.RowsAffected() == 0 {
			return ErrNotFound.New("media %s", mediaID)
		}

		if cleanup != nil {
			return cleanup(ctx)
		}
		return nil
	})
}

// BeginUpload records the multipart upload id on a media the caller owns,
// replacing any previously recorded one.
func (db *DB) BeginUpload(ctx context.Context, mediaID uuid.UUID, userID, uploadID string) (err error) {
	defer mon.Task()(&ctx)(&err)

	tag, err := db.pool.Exec(ctx, `
		UPDATE medias SET pending_upload_id = $3, updated_at = now()
		WHERE media_id = $1 AND user_id = $2
	`, mediaID, userID, uploadID)
	if err != nil {
		return classifyError(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound.New("media %s", mediaID)
	}
	return nil
}

// CommitUpload marks a multipart upload as committed: the data url and size
// are recorded and the pending upload id cleared.
func (db *DB) CommitUpload(ctx context.Context, mediaID uuid.UUID, userID, dataURL string, sizeBytes int64) (_ *Media, err error) {
	defer mon.Task()(&ctx)(&err)

	var media *Media
	err = db.withTx(ctx, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `
			UPDATE medias SET
				data_url = $3,
				size_bytes = $4,
				pending_upload_id = NULL,
				updated_at = now()
			WHERE media_id = $1 AND user_id = $2
		`, mediaID, userID, dataURL, sizeBytes)
		if err != nil {
			return classifyError(err)
		}
		if tag.RowsAffected() == 0 {
			return ErrNotFound.New("media %s", mediaID)
		}

		media, err = getMediaRow(ctx, tx, mediaID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return media, nil
}
