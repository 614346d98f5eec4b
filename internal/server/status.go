package server

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/peoplesmarkets/media/internal/auth"
	"github.com/peoplesmarkets/media/internal/commerce"
	"github.com/peoplesmarkets/media/internal/mediadb"
	"github.com/peoplesmarkets/media/internal/objstore"
)

// convertErr maps internal error classes onto gRPC status codes. Dependency
// failures are logged here with full context; the client gets an opaque
// message.
func convertErr(log *zap.Logger, err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errInvalidArgument.Has(err):
		return status.Error(codes.InvalidArgument, err.Error())
	case auth.ErrUnauthenticated.Has(err):
		return status.Error(codes.Unauthenticated, "unauthenticated")
	case errPermissionDenied.Has(err):
		return status.Error(codes.PermissionDenied, err.Error())
	case mediadb.ErrNotFound.Has(err), objstore.ErrNotFound.Has(err), commerce.ErrOfferNotFound.Has(err):
		return status.Error(codes.NotFound, err.Error())
	case mediadb.ErrAlreadyExists.Has(err):
		return status.Error(codes.AlreadyExists, err.Error())
	case mediadb.ErrReferenceNotFound.Has(err), errFailedPrecondition.Has(err):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, context.DeadlineExceeded), status.Code(err) == codes.DeadlineExceeded:
		return status.Error(codes.DeadlineExceeded, "deadline exceeded")
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, "canceled")
	case mediadb.Error.Has(err), objstore.Error.Has(err), commerce.Error.Has(err):
		log.Error("dependency failure", zap.Error(err))
		return status.Error(codes.Unavailable, "service unavailable")
	default:
		log.Error("internal error", zap.Error(err))
		return status.Error(codes.Internal, "internal error")
	}
}
