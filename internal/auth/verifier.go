// Package auth verifies bearer tokens against a remote JSON Web Key Set.
package auth

import (
	"context"
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"math/big"
	"net/http"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/spacemonkeygo/monkit/v3"
	"github.com/zeebo/errs"
	"go.uber.org/zap"
)

var (
	mon = monkit.Package()

	// Error is the default error class for the auth package.
	Error = errs.Class("auth")
	// ErrUnauthenticated is returned for missing, malformed or unverifiable
	// tokens.
	ErrUnauthenticated = errs.Class("unauthenticated")
)

const (
	// DefaultRefreshInterval is the minimum time between key set fetches.
	DefaultRefreshInterval = 2 * time.Minute
	// fetchTimeout bounds a single key set request.
	fetchTimeout = 5 * time.Second
	// maxKeySetSize caps the key set document we are willing to read.
	maxKeySetSize = 1 << 20
)

// KeySetVerifier validates compact signed tokens using a cached remote key
// set. The cache refreshes in the background; requests that arrive while a
// refresh is in flight verify against the previously cached keys.
type KeySetVerifier struct {
	log             *zap.Logger
	client          *http.Client
	url             string
	hostHeader      string
	refreshInterval time.Duration

	mu         sync.RWMutex
	keys       map[string]*rsa.PublicKey
	fetchedAt  time.Time
	refreshing bool
}

// NewKeySetVerifier returns a verifier fetching keys from url. A non-empty
// hostHeader is pinned on every request so the fetch resolves across private
// networks where the public name does not.
func NewKeySetVerifier(log *zap.Logger, url, hostHeader string) *KeySetVerifier {
	return &KeySetVerifier{
		log:             log,
		client:          &http.Client{Timeout: fetchTimeout},
		url:             url,
		hostHeader:      hostHeader,
		refreshInterval: DefaultRefreshInterval,
	}
}

// Verify checks the token signature and expiry and returns the subject claim.
func (v *KeySetVerifier) Verify(ctx context.Context, token string) (_ string, err error) {
	defer mon.Task()(&ctx)(&err)

	if token == "" {
		return "", ErrUnauthenticated.New("missing token")
	}

	if err := v.ensureKeys(ctx); err != nil {
		return "", err
	}
	v.maybeRefresh(ctx)

	claims := &jwt.RegisteredClaims{}
	_, err = jwt.ParseWithClaims(token, claims, v.keyFunc,
		jwt.WithValidMethods([]string{"RS256", "RS384", "RS512"}))
	if err != nil {
		return "", ErrUnauthenticated.Wrap(err)
	}
	if claims.Subject == "" {
		return "", ErrUnauthenticated.New("token has no subject")
	}

	return claims.Subject, nil
}

func (v *KeySetVerifier) keyFunc(token *jwt.Token) (interface{}, error) {
	kid, _ := token.Header["kid"].(string)

	v.mu.RLock()
	defer v.mu.RUnlock()

	if key, ok := v.keys[kid]; ok {
		return key, nil
	}
	// No kid match: with a single key in the set the kid header is often
	// omitted by issuers.
	if kid == "" && len(v.keys) == 1 {
		for _, key := range v.keys {
			return key, nil
		}
	}

	return nil, fmt.Errorf("no key for kid %q", kid)
}

// ensureKeys fetches the key set synchronously when the cache is empty.
func (v *KeySetVerifier) ensureKeys(ctx context.Context) error {
	v.mu.RLock()
	empty := len(v.keys) == 0
	v.mu.RUnlock()

	if !empty {
		return nil
	}
	return v.refresh(ctx)
}

// maybeRefresh starts a background key set refresh when the cache is stale.
// The caller proceeds with the cached keys.
func (v *KeySetVerifier) maybeRefresh(ctx context.Context) {
	v.mu.Lock()
	stale := time.Since(v.fetchedAt) >= v.refreshInterval
	if !stale || v.refreshing {
		v.mu.Unlock()
		return
	}
	v.refreshing = true
	v.mu.Unlock()

	go func() {
		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), fetchTimeout)
		defer cancel()

		if err := v.refresh(ctx); err != nil {
			v.log.Warn("key set refresh failed", zap.Error(err))
		}

		v.mu.Lock()
		v.refreshing = false
		v.mu.Unlock()
	}()
}

func (v *KeySetVerifier) refresh(ctx context.Context) (err error) {
	defer mon.Task()(&ctx)(&err)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, v.url, nil)
	if err != nil {
		return Error.Wrap(err)
	}
	if v.hostHeader != "" {
		req.Host = v.hostHeader
	}

	resp, err := v.client.Do(req)
	if err != nil {
		return Error.Wrap(err)
	}
	defer func() { err = errs.Combine(err, resp.Body.Close()) }()

	if resp.StatusCode != http.StatusOK {
		return Error.New("key set fetch returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxKeySetSize))
	if err != nil {
		return Error.Wrap(err)
	}

	keys, err := parseKeySet(body)
	if err != nil {
		return err
	}
	if len(keys) == 0 {
		return Error.New("key set contains no usable keys")
	}

	v.mu.Lock()
	v.keys = keys
	v.fetchedAt = time.Now()
	v.mu.Unlock()

	v.log.Debug("key set refreshed", zap.Int("keys", len(keys)))

	return nil
}

type jsonWebKey struct {
	Kty string `json:"kty"`
	Kid string `json:"kid"`
	Use string `json:"use"`
	N   string `json:"n"`
	E   string `json:"e"`
}

type jsonWebKeySet struct {
	Keys []jsonWebKey `json:"keys"`
}

func parseKeySet(data []byte) (map[string]*rsa.PublicKey, error) {
	var set jsonWebKeySet
	if err := json.Unmarshal(data, &set); err != nil {
		return nil, Error.Wrap(err)
	}

	keys := make(map[string]*rsa.PublicKey, len(set.Keys))
	for _, jwk := range set.Keys {
		if jwk.Kty != "RSA" || (jwk.Use != "" && jwk.Use != "sig") {
			continue
		}

		key, err := parseRSAKey(jwk)
		if err != nil {
			return nil, Error.New("invalid key %q: %w", jwk.Kid, err)
		}
		keys[jwk.Kid] = key
	}

	return keys, nil
}

func parseRSAKey(jwk jsonWebKey) (*rsa.PublicKey, error) {
	n, err := base64.RawURLEncoding.DecodeString(jwk.N)
	if err != nil {
		return nil, err
	}
	e, err := base64.RawURLEncoding.DecodeString(jwk.E)
	if err != nil {
		return nil, err
	}
	if len(n) == 0 || len(e) == 0 || len(e) > 8 {
		return nil, fmt.Errorf("malformed modulus or exponent")
	}

	return &rsa.PublicKey{
		N: new(big.Int).SetBytes(n),
		E: int(new(big.Int).SetBytes(e).Int64()),
	}, nil
}
