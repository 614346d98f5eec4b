package objstore

import (
	"context"

	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/s3"
)

// serviceAPI is the minimal subset of the AWS SDK the adapter uses, which
// keeps the mockable surface small.
type serviceAPI interface {
	PutObjectWithContext(context.Context, *s3.PutObjectInput, ...request.Option) (*s3.PutObjectOutput, error)
	GetObjectWithContext(context.Context, *s3.GetObjectInput, ...request.Option) (*s3.GetObjectOutput, error)
	HeadObjectWithContext(context.Context, *s3.HeadObjectInput, ...request.Option) (*s3.HeadObjectOutput, error)
	DeleteObjectWithContext(context.Context, *s3.DeleteObjectInput, ...request.Option) (*s3.DeleteObjectOutput, error)
	DeleteObjectsWithContext(context.Context, *s3.DeleteObjectsInput, ...request.Option) (*s3.DeleteObjectsOutput, error)

	ListObjectsV2PagesWithContext(
		context.Context, *s3.ListObjectsV2Input, func(*s3.ListObjectsV2Output, bool) bool, ...request.Option,
	) error

	CreateMultipartUploadWithContext(
		context.Context, *s3.CreateMultipartUploadInput, ...request.Option,
	) (*s3.CreateMultipartUploadOutput, error)

	UploadPartWithContext(context.Context, *s3.UploadPartInput, ...request.Option) (*s3.UploadPartOutput, error)

	CompleteMultipartUploadWithContext(
		context.Context, *s3.CompleteMultipartUploadInput, ...request.Option,
	) (*s3.CompleteMultipartUploadOutput, error)

	AbortMultipartUploadWithContext(
		context.Context, *s3.AbortMultipartUploadInput, ...request.Option,
	) (*s3.AbortMultipartUploadOutput, error)
}
