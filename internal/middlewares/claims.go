package middlewares

import (
	"context"

	"github.com/sbilibin2017/hbnb/internal/jwt"
)

// contextKey is an unexported type for keys in context
type contextKey struct{ name string }

var (
	claimsKey    = contextKey{"claims"}
	requestIDKey = contextKey{"request_id"}
)

// WithClaims stores token claims in the context.
func WithClaims(ctx context.Context, claims *jwt.Claims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

// ClaimsFromContext returns the claims stored by AuthMiddleware, or nil.
func ClaimsFromContext(ctx context.Context) *jwt.Claims {
	claims, _ := ctx.Value(claimsKey).(*jwt.Claims)
	return claims
}

// IsAdmin is the authorization predicate for admin-only operations. It is
// true unless the session carries an explicit false admin claim. A request
// without a session is never admin.
func IsAdmin(ctx context.Context) bool {
	claims := ClaimsFromContext(ctx)
	if claims == nil {
		return false
	}
	return claims.Admin()
}

// RequestIDFromContext returns the id assigned by LoggingMiddleware.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
