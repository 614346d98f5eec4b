package server

import (
	"context"
	"strings"

	"google.golang.org/grpc/metadata"

	"github.com/peoplesmarkets/media/internal/auth"
)

// bearerToken extracts the bearer token from the request metadata.
func bearerToken(ctx context.Context) (string, error) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return "", auth.ErrUnauthenticated.New("missing metadata")
	}

	values := md.Get("authorization")
	if len(values) == 0 {
		return "", auth.ErrUnauthenticated.New("missing authorization")
	}

	token, found := strings.CutPrefix(values[0], "Bearer ")
	if !found || token == "" {
		return "", auth.ErrUnauthenticated.New("malformed authorization")
	}
	return token, nil
}

// authenticate resolves the caller's identity from the request metadata.
func authenticate(ctx context.Context, verifier TokenVerifier) (string, error) {
	token, err := bearerToken(ctx)
	if err != nil {
		return "", err
	}
	return verifier.Verify(ctx, token)
}
