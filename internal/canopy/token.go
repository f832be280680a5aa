// Canopy STAPI - Satellite tasking API backend for Umbra Canopy
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stapi-canopy

package canopy

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type tokenContextKey struct{}

// ContextWithToken stores a caller-supplied bearer token. The client uses
// it instead of the configured token when forwarding is enabled.
func ContextWithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenContextKey{}, token)
}

// TokenFromContext returns the caller-supplied token, if any.
func TokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(tokenContextKey{}).(string)
	return token
}

// BearerToken extracts the token from an Authorization header value. It
// returns "" unless the header uses the Bearer scheme.
func BearerToken(header string) string {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

// TokenExpiry returns the exp claim of a JWT. ok is false for opaque
// tokens and JWTs without an expiry. The signature is not verified; Canopy
// does that.
func TokenExpiry(token string) (exp time.Time, ok bool) {
	if strings.Count(token, ".") != 2 {
		return time.Time{}, false
	}

	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return time.Time{}, false
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, false
	}
	return claims.ExpiresAt.Time, true
}

// checkTokenExpiry rejects JWTs whose exp claim has passed. Opaque tokens
// are accepted as-is.
func checkTokenExpiry(token string, now time.Time) error {
	exp, ok := TokenExpiry(token)
	if ok && !now.Before(exp) {
		return &AuthorizationError{
			Message: fmt.Sprintf("canopy_token expired at %s", exp.UTC().Format(time.RFC3339)),
		}
	}
	return nil
}
