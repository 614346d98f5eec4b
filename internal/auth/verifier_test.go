package auth_test

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"math/big"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/peoplesmarkets/media/internal/auth"
)

type keySetServer struct {
	key     *rsa.PrivateKey
	kid     string
	fetches atomic.Int64
	seenHost string
}

func newKeySetServer(t *testing.T) *keySetServer {
	t.Helper()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	return &keySetServer{key: key, kid: "test-key"}
}

func (s *keySetServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.fetches.Add(1)
	s.seenHost = r.Host

	pub := s.key.Public().(*rsa.PublicKey)
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"keys": []map[string]string{{
			"kty": "RSA",
			"kid": s.kid,
			"use": "sig",
			"n":   base64.RawURLEncoding.EncodeToString(pub.N.Bytes()),
			"e":   base64.RawURLEncoding.EncodeToString(big.NewInt(int64(pub.E)).Bytes()),
		}},
	})
}

func (s *keySetServer) sign(t *testing.T, subject string, expiresAt time.Time) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodRS256, jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(expiresAt),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	})
	token.Header["kid"] = s.kid

	signed, err := token.SignedString(s.key)
	require.NoError(t, err)
	return signed
}

func TestVerify(t *testing.T) {
	ctx := context.Background()

	srv := newKeySetServer(t)
	ts := httptest.NewServer(srv)
	defer ts.Close()

	verifier := auth.NewKeySetVerifier(zaptest.NewLogger(t), ts.URL, "auth.example.com")

	subject, err := verifier.Verify(ctx, srv.sign(t, "user-1", time.Now().Add(time.Hour)))
	require.NoError(t, err)
	require.Equal(t, "user-1", subject)

	// keys are cached between calls
	_, err = verifier.Verify(ctx, srv.sign(t, "user-2", time.Now().Add(time.Hour)))
	require.NoError(t, err)
	require.Equal(t, int64(1), srv.fetches.Load())

	// the host header override is pinned on the fetch
	require.Equal(t, "auth.example.com", srv.seenHost)
}

func TestVerifyExpired(t *testing.T) {
	ctx := context.Background()

	srv := newKeySetServer(t)
	ts := httptest.NewServer(srv)
	defer ts.Close()

	verifier := auth.NewKeySetVerifier(zaptest.NewLogger(t), ts.URL, "")

	_, err := verifier.Verify(ctx, srv.sign(t, "user-1", time.Now().Add(-time.Minute)))
	require.True(t, auth.ErrUnauthenticated.Has(err))
}

func TestVerifyMalformed(t *testing.T) {
	ctx := context.Background()

	srv := newKeySetServer(t)
	ts := httptest.NewServer(srv)
	defer ts.Close()

	verifier := auth.NewKeySetVerifier(zaptest.NewLogger(t), ts.URL, "")

	_, err := verifier.Verify(ctx, "")
	require.True(t, auth.ErrUnauthenticated.Has(err))

	_, err = verifier.Verify(ctx, "not.a.token")
	require.True(t, auth.ErrUnauthenticated.Has(err))
}

func TestVerifyUnknownKey(t *testing.T) {
	ctx := context.Background()

	srv := newKeySetServer(t)
	ts := httptest.NewServer(srv)
	defer ts.Close()

	other := newKeySetServer(t)
	other.kid = "other-key"

	verifier := auth.NewKeySetVerifier(zaptest.NewLogger(t), ts.URL, "")

	_, err := verifier.Verify(ctx, other.sign(t, "user-1", time.Now().Add(time.Hour)))
	require.True(t, auth.ErrUnauthenticated.Has(err))
}

func TestVerifyNoSubject(t *testing.T) {
	ctx := context.Background()

	srv := newKeySetServer(t)
	ts := httptest.NewServer(srv)
	defer ts.Close()

	verifier := auth.NewKeySetVerifier(zaptest.NewLogger(t), ts.URL, "")

	_, err := verifier.Verify(ctx, srv.sign(t, "", time.Now().Add(time.Hour)))
	require.True(t, auth.ErrUnauthenticated.Has(err))
}
