package middlewares

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/hbnb/internal/jwt"
)

func TestIsAdmin(t *testing.T) {
	yes, no := true, false

	tests := []struct {
		name   string
		claims *jwt.Claims
		want   bool
	}{
		{name: "no session", claims: nil, want: false},
		{name: "explicit true", claims: &jwt.Claims{UserID: "u", IsAdmin: &yes}, want: true},
		{name: "explicit false", claims: &jwt.Claims{UserID: "u", IsAdmin: &no}, want: false},
		{name: "claim absent", claims: &jwt.Claims{UserID: "u"}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			if tt.claims != nil {
				ctx = WithClaims(ctx, tt.claims)
			}
			assert.Equal(t, tt.want, IsAdmin(ctx))
		})
	}
}

func TestClaimsFromContext_Empty(t *testing.T) {
	assert.Nil(t, ClaimsFromContext(context.Background()))
	assert.Empty(t, RequestIDFromContext(context.Background()))
}
