package objstore

import (
	"strings"

	"github.com/google/uuid"
)

// ObjectKey builds the deterministic object key for a media's bytes:
// "{market_booth_id}/{media_id}/{slug(name)}". The media id path segment
// isolates the media's bytes so a prefix delete reaps any partial re-upload
// residue as well.
func ObjectKey(marketBoothID, mediaID uuid.UUID, name string) string {
	return marketBoothID.String() + "/" + mediaID.String() + "/" + Slug(name)
}

// ObjectPrefix returns the key prefix holding every object of a media.
func ObjectPrefix(marketBoothID, mediaID uuid.UUID) string {
	return marketBoothID.String() + "/" + mediaID.String() + "/"
}

// Slug normalizes a media name into a stable key segment: lowercased, with
// anything outside [a-z0-9._-] collapsed into single dashes.
func Slug(name string) string {
	var b strings.Builder
	b.Grow(len(name))

	dash := false
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '.', r == '_', r == '-':
			b.WriteRune(r)
			dash = false
		default:
			if !dash && b.Len() > 0 {
				b.WriteByte('-')
				dash = true
			}
		}
	}

	slug := strings.TrimRight(b.String(), "-")
	if slug == "" {
		return "file"
	}
	return slug
}
