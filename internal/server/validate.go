package server

import (
	"github.com/google/uuid"

	"github.com/peoplesmarkets/media/internal/mediadb"
	mediav1 "github.com/peoplesmarkets/media/pkg/api/mediav1"
	orderingv1 "github.com/peoplesmarkets/media/pkg/api/orderingv1"
	paginationv1 "github.com/peoplesmarkets/media/pkg/api/paginationv1"
)

// allowedContentTypes is the closed set of upload content types.
var allowedContentTypes = map[string]bool{
	"image/jpeg":               true,
	"image/png":                true,
	"image/gif":                true,
	"image/webp":               true,
	"image/svg+xml":            true,
	"video/mp4":                true,
	"video/webm":               true,
	"audio/mpeg":               true,
	"audio/ogg":                true,
	"application/pdf":          true,
	"application/octet-stream": true,
}

func parseUUID(field, value string) (uuid.UUID, error) {
	id, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, errInvalidArgument.New("%s is not a valid UUID", field)
	}
	return id, nil
}

func validateContentType(contentType string) error {
	if !allowedContentTypes[contentType] {
		return errInvalidArgument.New("content type %q is not allowed", contentType)
	}
	return nil
}

func (e *Endpoint) validateUpload(file *mediav1.MediaUpload) error {
	if err := validateContentType(file.GetContentType()); err != nil {
		return err
	}
	if len(file.GetData()) == 0 {
		return errInvalidArgument.New("file data is empty")
	}
	if int64(len(file.GetData())) > e.fileMaxSize {
		return errInvalidArgument.New("file exceeds maximum size of %d bytes", e.fileMaxSize)
	}
	return nil
}

// pageFromRequest validates the request pagination and returns the effective
// page. An absent message gets the defaults; an explicit zero is rejected.
func pageFromRequest(pagination *paginationv1.Pagination) (mediadb.Page, error) {
	if pagination == nil {
		return mediadb.Page{}.Normalize(), nil
	}
	if pagination.GetPage() < 1 || pagination.GetSize() < 1 {
		return mediadb.Page{}, errInvalidArgument.New("pagination page and size must be >= 1")
	}
	return mediadb.Page{Number: pagination.GetPage(), Size: pagination.GetSize()}, nil
}

func echoPagination(page mediadb.Page) *paginationv1.Pagination {
	return &paginationv1.Pagination{Page: page.Number, Size: page.Size}
}

// orderFromRequest translates the wire ordering; the default is newest
// first.
func orderFromRequest(orderBy *mediav1.MediaOrderBy) (mediadb.Order, error) {
	order := mediadb.Order{Field: mediadb.OrderCreatedAt, Descending: true}
	if orderBy == nil {
		return order, nil
	}

	switch orderBy.GetField() {
	case mediav1.MediaOrderByField_MEDIA_ORDER_BY_FIELD_UNSPECIFIED,
		mediav1.MediaOrderByField_MEDIA_ORDER_BY_FIELD_CREATED_AT:
		order.Field = mediadb.OrderCreatedAt
	case mediav1.MediaOrderByField_MEDIA_ORDER_BY_FIELD_UPDATED_AT:
		order.Field = mediadb.OrderUpdatedAt
	default:
		return order, errInvalidArgument.New("unknown order by field %d", orderBy.GetField())
	}

	switch orderBy.GetDirection() {
	case orderingv1.Direction_DIRECTION_UNSPECIFIED, orderingv1.Direction_DIRECTION_DESC:
		order.Descending = true
	case orderingv1.Direction_DIRECTION_ASC:
		order.Descending = false
	default:
		return order, errInvalidArgument.New("unknown order direction %d", orderBy.GetDirection())
	}

	return order, nil
}

// filterFromRequest translates the wire filter into the store's shape.
func filterFromRequest(filter *mediav1.MediaFilter) (mediadb.Filter, error) {
	if filter == nil {
		return mediadb.Filter{}, nil
	}

	switch filter.GetField() {
	case mediav1.MediaFilterField_MEDIA_FILTER_FIELD_NAME:
		if filter.GetQuery() == "" {
			return mediadb.Filter{}, errInvalidArgument.New("name filter query is empty")
		}
		return mediadb.Filter{Name: filter.GetQuery()}, nil
	case mediav1.MediaFilterField_MEDIA_FILTER_FIELD_OFFER_ID:
		offerID, err := parseUUID("filter query", filter.GetQuery())
		if err != nil {
			return mediadb.Filter{}, err
		}
		return mediadb.Filter{OfferID: &offerID}, nil
	default:
		return mediadb.Filter{}, errInvalidArgument.New("unknown filter field %d", filter.GetField())
	}
}

// validateParts checks the client-echoed parts list: part numbers start at 1
// and increase without gaps.
func validateParts(parts []*mediav1.Part) error {
	if len(parts) == 0 {
		return errInvalidArgument.New("parts list is empty")
	}
	for i, part := range parts {
		if part.GetPartNumber() != uint32(i+1) {
			return errInvalidArgument.New("parts must be ascending and contiguous starting at 1")
		}
		if part.GetEtag() == "" {
			return errInvalidArgument.New("part %d is missing its etag", part.GetPartNumber())
		}
	}
	return nil
}
