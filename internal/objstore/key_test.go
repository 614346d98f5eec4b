package objstore_test

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/peoplesmarkets/media/internal/objstore"
)

func TestSlug(t *testing.T) {
	for _, tt := range []struct {
		name string
		want string
	}{
		{"photo.jpg", "photo.jpg"},
		{"My Photo.JPG", "my-photo.jpg"},
		{"a   b", "a-b"},
		{"  spaced  ", "spaced"},
		{"über_größe.png", "ber_gr-e.png"},
		{"///", "file"},
		{"", "file"},
		{"trailing---", "trailing"},
	} {
		require.Equal(t, tt.want, objstore.Slug(tt.name), "slug of %q", tt.name)
	}
}

func TestObjectKey(t *testing.T) {
	marketBoothID := uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")
	mediaID := uuid.MustParse("6ba7b811-9dad-11d1-80b4-00c04fd430c8")

	key := objstore.ObjectKey(marketBoothID, mediaID, "Cover Art.png")
	require.Equal(t,
		"6ba7b810-9dad-11d1-80b4-00c04fd430c8/6ba7b811-9dad-11d1-80b4-00c04fd430c8/cover-art.png",
		key)

	prefix := objstore.ObjectPrefix(marketBoothID, mediaID)
	require.True(t, strings.HasPrefix(key, prefix))
	require.True(t, strings.HasSuffix(prefix, "/"))
}
