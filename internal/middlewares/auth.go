package middlewares

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/hbnb/internal/jwt"
	"github.com/sbilibin2017/hbnb/internal/logger"
)

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=middlewares

// Tokener defines the minimal interface needed by the middleware
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// RevocationChecker reports tokens revoked by logout.
type RevocationChecker interface {
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// errorResponse is the body of every rejected request.
type errorResponse struct {
	Error string `json:"Error"`
}

// AuthMiddleware returns a middleware that rejects requests without a valid
// bearer token and stores the token claims in the request context.
// revocations may be nil when logout is disabled.
func AuthMiddleware(tokener Tokener, revocations RevocationChecker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				reject(w, http.StatusUnauthorized, "Missing Authorization Header")
				return
			}

			claims, err := tokener.GetClaims(ctx, tokenString)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				reject(w, http.StatusUnauthorized, "Invalid token")
				return
			}

			if revocations != nil {
				revoked, err := revocations.IsRevoked(ctx, claims.ID)
				if err != nil {
					logger.Log.Errorw("failed to check token revocation", "token_id", claims.ID, "err", err)
					reject(w, http.StatusInternalServerError, "Internal server error")
					return
				}
				if revoked {
					logger.Log.Warnw("revoked token used", "token_id", claims.ID, "user_id", claims.UserID)
					reject(w, http.StatusUnauthorized, "Token has been revoked")
					return
				}
			}

			next.ServeHTTP(w, r.WithContext(WithClaims(ctx, claims)))
		})
	}
}

func reject(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(errorResponse{Error: msg})
}
