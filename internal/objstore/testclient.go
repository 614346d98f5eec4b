package objstore

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"strconv"
	"strings"
	"sync"
)

// TestClient is an in-memory Client for tests.
type TestClient struct {
	mu       sync.Mutex
	objects  map[string]testObject
	uploads  map[string]*testUpload
	sequence int
}

type testObject struct {
	contentType string
	data        []byte
	etag        string
}

type testUpload struct {
	key         string
	contentType string
	parts       map[int32][]byte
	etags       map[int32]string
}

// NewTestClient returns an empty in-memory object store.
func NewTestClient() *TestClient {
	return &TestClient{
		objects: make(map[string]testObject),
		uploads: make(map[string]*testUpload),
	}
}

var _ Client = (*TestClient)(nil)

func etagOf(data []byte) string {
	sum := md5.Sum(data)
	return `"` + hex.EncodeToString(sum[:]) + `"`
}

func (c *TestClient) Put(ctx context.Context, key, contentType string, data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	stored := make([]byte, len(data))
	copy(stored, data)
	c.objects[key] = testObject{contentType: contentType, data: stored, etag: etagOf(stored)}
	return nil
}

func (c *TestClient) Get(ctx context.Context, key string) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	object, ok := c.objects[key]
	if !ok {
		return nil, ErrNotFound.New("%s", key)
	}

	data := make([]byte, len(object.data))
	copy(data, object.data)
	return data, nil
}

func (c *TestClient) Attrs(ctx context.Context, key string) (*ObjectAttrs, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	object, ok := c.objects[key]
	if !ok {
		return nil, ErrNotFound.New("%s", key)
	}

	return &ObjectAttrs{Key: key, ETag: object.etag, Size: int64(len(object.data))}, nil
}

func (c *TestClient) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.objects, key)
	return nil
}

func (c *TestClient) DeletePrefix(ctx context.Context, prefix string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for key := range c.objects {
		if strings.HasPrefix(key, prefix) {
			delete(c.objects, key)
		}
	}
	return nil
}

func (c *TestClient) CreateMultipartUpload(ctx context.Context, key, contentType string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.sequence++
	uploadID := "upload-" + strconv.Itoa(c.sequence)
	c.uploads[uploadID] = &testUpload{
		key:         key,
		contentType: contentType,
		parts:       make(map[int32][]byte),
		etags:       make(map[int32]string),
	}
	return uploadID, nil
}

func (c *TestClient) UploadPart(ctx context.Context, key, uploadID string, partNumber int32, data []byte) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if partNumber < MinPartNumber || partNumber > MaxPartNumber {
		return "", Error.New("part number %d out of range [%d,%d]", partNumber, MinPartNumber, MaxPartNumber)
	}

	upload, ok := c.uploads[uploadID]
	if !ok || upload.key != key {
		return "", ErrNotFound.New("upload %s", uploadID)
	}

	stored := make([]byte, len(data))
	copy(stored, data)
	upload.parts[partNumber] = stored
	upload.etags[partNumber] = etagOf(stored)
	return upload.etags[partNumber], nil
}

func (c *TestClient) CompleteMultipartUpload(ctx context.Context, key, uploadID string, parts []Part) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	upload, ok := c.uploads[uploadID]
	if !ok || upload.key != key {
		return ErrNotFound.New("upload %s", uploadID)
	}

	var data []byte
	for _, part := range parts {
		stored, ok := upload.parts[part.Number]
		if !ok {
			return Error.New("part %d was never uploaded", part.Number)
		}
		if upload.etags[part.Number] != part.ETag {
			return Error.New("part %d etag mismatch", part.Number)
		}
		data = append(data, stored...)
	}

	c.objects[key] = testObject{contentType: upload.contentType, data: data, etag: etagOf(data)}
	delete(c.uploads, uploadID)
	return nil
}

func (c *TestClient) AbortMultipartUpload(ctx context.Context, key, uploadID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	upload, ok := c.uploads[uploadID]
	if !ok || upload.key != key {
		return ErrNotFound.New("upload %s", uploadID)
	}

	delete(c.uploads, uploadID)
	return nil
}

// UploadCount reports the number of multipart uploads still in progress.
func (c *TestClient) UploadCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.uploads)
}
