package objstore

import (
	"bytes"
	"context"
	"errors"
	"io"
	"sort"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/zeebo/errs"
	"go.uber.org/zap"
)

// deleteBatchSize is the maximum number of keys a single DeleteObjects call
// accepts.
const deleteBatchSize = 1000

// S3Client implements Client against an S3-compatible endpoint.
type S3Client struct {
	log        *zap.Logger
	serviceAPI serviceAPI
	bucket     string
}

var _ Client = (*S3Client)(nil)

// S3Options configures an S3Client.
type S3Options struct {
	Bucket          string
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
}

// NewS3Client dials an S3-compatible endpoint using static credentials and
// path-style addressing.
func NewS3Client(log *zap.Logger, opts S3Options) (*S3Client, error) {
	sess, err := session.NewSession(&aws.Config{
		Region:           aws.String("auto"),
		Endpoint:         aws.String(opts.Endpoint),
		S3ForcePathStyle: aws.Bool(true),
		Credentials:      credentials.NewStaticCredentials(opts.AccessKeyID, opts.SecretAccessKey, ""),
	})
	if err != nil {
		return nil, Error.Wrap(err)
	}

	return &S3Client{
		log:        log,
		serviceAPI: s3.New(sess),
		bucket:     opts.Bucket,
	}, nil
}

// newS3ClientWithAPI is used by tests to inject a fake SDK surface.
func newS3ClientWithAPI(log *zap.Logger, bucket string, api serviceAPI) *S3Client {
	return &S3Client{log: log, serviceAPI: api, bucket: bucket}
}

func (c *S3Client) Put(ctx context.Context, key, contentType string, data []byte) (err error) {
	defer mon.Task()(&ctx)(&err)

	input := &s3.PutObjectInput{
		Bucket:      aws.String(c.bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
		Body:        bytes.NewReader(data),
	}

	_, err = c.serviceAPI.PutObjectWithContext(ctx, input)
	return handleError(key, err)
}

func (c *S3Client) Get(ctx context.Context, key string) (_ []byte, err error) {
	defer mon.Task()(&ctx)(&err)

	input := &s3.GetObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),
	}

	resp, err := c.serviceAPI.GetObjectWithContext(ctx, input)
	if err != nil {
		return nil, handleError(key, err)
	}
	defer func() { err = errs.Combine(err, resp.Body.Close()) }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, Error.Wrap(err)
	}

	return data, nil
}

func (c *S3Client) Attrs(ctx context.Context, key string) (_ *ObjectAttrs, err error) {
	defer mon.Task()(&ctx)(&err)

	input := &s3.HeadObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),
	}

	resp, err := c.serviceAPI.HeadObjectWithContext(ctx, input)
	if err != nil {
		return nil, handleError(key, err)
	}

	return &ObjectAttrs{
		Key:  key,
		ETag: aws.StringValue(resp.ETag),
		Size: aws.Int64Value(resp.ContentLength),
	}, nil
}

func (c *S3Client) Delete(ctx context.Context, key string) (err error) {
	defer mon.Task()(&ctx)(&err)

	input := &s3.DeleteObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),
	}

	_, err = c.serviceAPI.DeleteObjectWithContext(ctx, input)
	if err != nil && !isNotFound(err) {
		return handleError(key, err)
	}

	return nil
}

func (c *S3Client) DeletePrefix(ctx context.Context, prefix string) (err error) {
	defer mon.Task()(&ctx)(&err)

	var keys []string

	input := &s3.ListObjectsV2Input{
		Bucket: aws.String(c.bucket),
		Prefix: aws.String(prefix),
	}

	err = c.serviceAPI.ListObjectsV2PagesWithContext(ctx, input,
		func(page *s3.ListObjectsV2Output, _ bool) bool {
			for _, object := range page.Contents {
				keys = append(keys, aws.StringValue(object.Key))
			}
			return true
		})
	if err != nil {
		return handleError(prefix, err)
	}

	var failures errs.Group
	for start := 0; start < len(keys); start += deleteBatchSize {
		end := start + deleteBatchSize
		if end > len(keys) {
			end = len(keys)
		}
		failures.Add(c.deleteBatch(ctx, keys[start:end]))
	}

	return failures.Err()
}

func (c *S3Client) deleteBatch(ctx context.Context, keys []string) error {
	objects := make([]*s3.ObjectIdentifier, 0, len(keys))
	for _, key := range keys {
		objects = append(objects, &s3.ObjectIdentifier{Key: aws.String(key)})
	}

	input := &s3.DeleteObjectsInput{
		Bucket: aws.String(c.bucket),
		Delete: &s3.Delete{
			Objects: objects,
			Quiet:   aws.Bool(true),
		},
	}

	resp, err := c.serviceAPI.DeleteObjectsWithContext(ctx, input)
	if err != nil {
		return handleError("", err)
	}

	var failures errs.Group
	for _, failed := range resp.Errors {
		c.log.Warn("failed to delete object",
			zap.String("key", aws.StringValue(failed.Key)),
			zap.String("code", aws.StringValue(failed.Code)))
		failures.Add(Error.New("delete %q: %s", aws.StringValue(failed.Key), aws.StringValue(failed.Message)))
	}

	return failures.Err()
}

func (c *S3Client) CreateMultipartUpload(ctx context.Context, key, contentType string) (_ string, err error) {
	defer mon.Task()(&ctx)(&err)

	input := &s3.CreateMultipartUploadInput{
		Bucket:      aws.String(c.bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	}

	resp, err := c.serviceAPI.CreateMultipartUploadWithContext(ctx, input)
	if err != nil {
		return "", handleError(key, err)
	}

	return aws.StringValue(resp.UploadId), nil
}

func (c *S3Client) UploadPart(ctx context.Context, key, uploadID string, partNumber int32, data []byte) (_ string, err error) {
	defer mon.Task()(&ctx)(&err)

	if partNumber < MinPartNumber || partNumber > MaxPartNumber {
		return "", Error.New("part number %d out of range [%d,%d]", partNumber, MinPartNumber, MaxPartNumber)
	}

	input := &s3.UploadPartInput{
		Bucket:     aws.String(c.bucket),
		Key:        aws.String(key),
		UploadId:   aws.String(uploadID),
		PartNumber: aws.Int64(int64(partNumber)),
		Body:       bytes.NewReader(data),
	}

	resp, err := c.serviceAPI.UploadPartWithContext(ctx, input)
	if err != nil {
		return "", handleError(key, err)
	}

	return aws.StringValue(resp.ETag), nil
}

func (c *S3Client) CompleteMultipartUpload(ctx context.Context, key, uploadID string, parts []Part) (err error) {
	defer mon.Task()(&ctx)(&err)

	sorted := make([]Part, len(parts))
	copy(sorted, parts)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Number < sorted[j].Number })

	converted := make([]*s3.CompletedPart, 0, len(sorted))
	for _, part := range sorted {
		converted = append(converted, &s3.CompletedPart{
			PartNumber: aws.Int64(int64(part.Number)),
			ETag:       aws.String(part.ETag),
		})
	}

	input := &s3.CompleteMultipartUploadInput{
		Bucket:          aws.String(c.bucket),
		Key:             aws.String(key),
		UploadId:        aws.String(uploadID),
		MultipartUpload: &s3.CompletedMultipartUpload{Parts: converted},
	}

	_, err = c.serviceAPI.CompleteMultipartUploadWithContext(ctx, input)
	return handleError(key, err)
}

func (c *S3Client) AbortMultipartUpload(ctx context.Context, key, uploadID string) (err error) {
	defer mon.Task()(&ctx)(&err)

	input := &s3.AbortMultipartUploadInput{
		Bucket:   aws.String(c.bucket),
		Key:      aws.String(key),
		UploadId: aws.String(uploadID),
	}

	_, err = c.serviceAPI.AbortMultipartUploadWithContext(ctx, input)
	return handleError(key, err)
}

// handleError converts SDK errors into the package's error classes. The key
// is included for context; credentials never are.
func handleError(key string, err error) error {
	if err == nil {
		return nil
	}
	if isNotFound(err) {
		if key != "" {
			return ErrNotFound.New("%s", key)
		}
		return ErrNotFound.New("object")
	}
	return Error.Wrap(err)
}

func isNotFound(err error) bool {
	var awsErr awserr.Error
	if !errors.As(err, &awsErr) {
		return false
	}
	switch awsErr.Code() {
	case s3.ErrCodeNoSuchKey, s3.ErrCodeNoSuchUpload, "NotFound":
		return true
	}
	return false
}
