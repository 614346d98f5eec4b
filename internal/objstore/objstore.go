// Package objstore provides the S3 adapter the media service stores bytes
// with.
package objstore

import (
	"context"

	"github.com/spacemonkeygo/monkit/v3"
	"github.com/zeebo/errs"
)

var (
	mon = monkit.Package()

	// Error is the default error class for the objstore package.
	Error = errs.Class("objstore")
	// ErrNotFound means no object exists at the given key.
	ErrNotFound = errs.Class("object not found")
)

const (
	// MinPartNumber and MaxPartNumber bound multipart part numbers, per the
	// S3 protocol.
	MinPartNumber = 1
	MaxPartNumber = 10000
)

// Part identifies one uploaded part of a multipart upload.
type Part struct {
	Number int32
	ETag   string
}

// ObjectAttrs describes a stored object without its payload.
type ObjectAttrs struct {
	Key  string
	ETag string
	Size int64
}

// Client is the contract the media service uses to store and retrieve bytes.
//
// architecture: Database
type Client interface {
	// Put stores data under key, overwriting any previous object.
	Put(ctx context.Context, key, contentType string, data []byte) error
	// Get returns the payload stored under key or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)
	// Attrs returns object metadata without the payload or ErrNotFound.
	Attrs(ctx context.Context, key string) (*ObjectAttrs, error)
	// Delete removes the object under key. Deleting an absent key is not an
	// error.
	Delete(ctx context.Context, key string) error
	// DeletePrefix removes every object under prefix. Per-key failures are
	// combined into the returned error but do not stop the sweep.
	DeletePrefix(ctx context.Context, prefix string) error

	// CreateMultipartUpload starts a multipart upload for key and returns
	// its upload id.
	CreateMultipartUpload(ctx context.Context, key, contentType string) (uploadID string, err error)
	// UploadPart uploads one part and returns its etag. partNumber must be
	// within [MinPartNumber, MaxPartNumber].
	UploadPart(ctx context.Context, key, uploadID string, partNumber int32, data []byte) (etag string, err error)
	// CompleteMultipartUpload stitches the given parts into the final
	// object. Parts are sorted by part number before completion.
	CompleteMultipartUpload(ctx context.Context, key, uploadID string, parts []Part) error
	// AbortMultipartUpload discards an in-progress multipart upload.
	AbortMultipartUpload(ctx context.Context, key, uploadID string) error
}
