package server

import (
	"context"

	"go.uber.org/zap"

	"github.com/peoplesmarkets/media/internal/objstore"
	mediav1 "github.com/peoplesmarkets/media/pkg/api/mediav1"
)

func (e *Endpoint) InitiateMultipartUpload(ctx context.Context, req *mediav1.InitiateMultipartUploadRequest) (_ *mediav1.InitiateMultipartUploadResponse, err error) {
	defer mon.Task()(&ctx)(&err)
	defer func() { err = convertErr(e.log, err) }()

	caller, err := authenticate(ctx, e.verifier)
	if err != nil {
		return nil, err
	}
	if err := validateContentType(req.GetContentType()); err != nil {
		return nil, err
	}

	media, err := e.getOwnedMedia(ctx, caller, req.GetMediaId())
	if err != nil {
		return nil, err
	}

	key := objstore.ObjectKey(media.MarketBoothID, media.ID, media.Name)

	objCtx, cancel := context.WithTimeout(ctx, objectTimeout)
	defer cancel()

	uploadID, err := e.store.CreateMultipartUpload(objCtx, key, req.GetContentType())
	if err != nil {
		return nil, err
	}

	dbCtx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	if err := e.db.BeginUpload(dbCtx, media.ID, caller, uploadID); err != nil {
		abortCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), objectTimeout)
		if abortErr := e.store.AbortMultipartUpload(abortCtx, key, uploadID); abortErr != nil {
			e.log.Warn("aborting orphaned upload failed",
				zap.String("upload_id", uploadID), zap.Error(abortErr))
		}
		cancel()
		return nil, err
	}

	return &mediav1.InitiateMultipartUploadResponse{Key: key, UploadId: uploadID}, nil
}

func (e *Endpoint) PutMultipartChunk(ctx context.Context, req *mediav1.PutMultipartChunkRequest) (_ *mediav1.PutMultipartChunkResponse, err error) {
	defer mon.Task()(&ctx)(&err)
	defer func() { err = convertErr(e.log, err) }()

	caller, err := authenticate(ctx, e.verifier)
	if err != nil {
		return nil, err
	}

	if req.GetPartNumber() < objstore.MinPartNumber || req.GetPartNumber() > objstore.MaxPartNumber {
		return nil, errInvalidArgument.New("part number must be within [%d,%d]",
			objstore.MinPartNumber, objstore.MaxPartNumber)
	}
	if len(req.GetChunk()) == 0 {
		return nil, errInvalidArgument.New("chunk is empty")
	}
	if int64(len(req.GetChunk())) > e.fileMaxSize {
		return nil, errInvalidArgument.New("chunk exceeds maximum size of %d bytes", e.fileMaxSize)
	}

	media, err := e.getOwnedMedia(ctx, caller, req.GetMediaId())
	if err != nil {
		return nil, err
	}
	if media.PendingUploadID == nil || *media.PendingUploadID != req.GetUploadId() {
		return nil, errFailedPrecondition.New("no upload %q in progress for media %s",
			req.GetUploadId(), media.ID)
	}

	key := objstore.ObjectKey(media.MarketBoothID, media.ID, media.Name)

	objCtx, cancel := context.WithTimeout(ctx, objectTimeout)
	defer cancel()

	etag, err := e.store.UploadPart(objCtx, key, req.GetUploadId(), int32(req.GetPartNumber()), req.GetChunk())
	if err != nil {
		return nil, err
	}

	return &mediav1.PutMultipartChunkResponse{
		Part: &mediav1.Part{PartNumber: req.GetPartNumber(), Etag: etag},
	}, nil
}

func (e *Endpoint) CompleteMultipartUpload(ctx context.Context, req *mediav1.CompleteMultipartUploadRequest) (_ *mediav1.CompleteMultipartUploadResponse, err error) {
	defer mon.Task()(&ctx)(&err)
	defer func() { err = convertErr(e.log, err) }()

	caller, err := authenticate(ctx, e.verifier)
	if err != nil {
		return nil, err
	}
	if err := validateParts(req.GetParts()); err != nil {
		return nil, err
	}

	media, err := e.getOwnedMedia(ctx, caller, req.GetMediaId())
	if err != nil {
		return nil, err
	}
	if media.PendingUploadID == nil || *media.PendingUploadID != req.GetUploadId() {
		return nil, errFailedPrecondition.New("no upload %q in progress for media %s",
			req.GetUploadId(), media.ID)
	}

	key := objstore.ObjectKey(media.MarketBoothID, media.ID, media.Name)

	parts := make([]objstore.Part, 0, len(req.GetParts()))
	for _, part := range req.GetParts() {
		parts = append(parts, objstore.Part{
			Number: int32(part.GetPartNumber()),
			ETag:   part.GetEtag(),
		})
	}

	objCtx, cancel := context.WithTimeout(ctx, completeTimeout)
	defer cancel()

	// On failure the media stays in the uploading state so the caller can
	// retry the complete call.
	if err := e.store.CompleteMultipartUpload(objCtx, key, req.GetUploadId(), parts); err != nil {
		return nil, err
	}

	var sizeBytes int64
	attrsCtx, cancel := context.WithTimeout(ctx, objectTimeout)
	if attrs, err := e.store.Attrs(attrsCtx, key); err == nil {
		sizeBytes = attrs.Size
	}
	cancel()

	dbCtx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	if _, err := e.db.CommitUpload(dbCtx, media.ID, caller, key, sizeBytes); err != nil {
		return nil, err
	}

	return &mediav1.CompleteMultipartUploadResponse{}, nil
}
