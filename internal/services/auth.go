package services

import (
	"context"
	"time"

	"github.com/doug-martin/goqu/v9"
	"golang.org/x/crypto/bcrypt"

	"github.com/sbilibin2017/hbnb/internal/logger"
	"github.com/sbilibin2017/hbnb/internal/models"
)

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=services

// TokenIssuer creates signed session tokens.
type TokenIssuer interface {
	Generate(ctx context.Context, userID string, isAdmin bool) (string, error)
}

// TokenRevoker records tokens invalidated before their expiry.
type TokenRevoker interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
}

// dummyHash is compared against when the email is unknown so that both
// failure paths cost one bcrypt comparison.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("hbnb-dummy-password"), bcrypt.DefaultCost)

// AuthService handles login and logout.
type AuthService struct {
	users   Finder[models.User]
	issuer  TokenIssuer
	revoker TokenRevoker
}

// NewAuthService creates a new AuthService instance. revoker may be nil when
// logout is not supported.
func NewAuthService(users Finder[models.User], issuer TokenIssuer, revoker TokenRevoker) *AuthService {
	return &AuthService{
		users:   users,
		issuer:  issuer,
		revoker: revoker,
	}
}

// Login verifies the credentials and returns a session token carrying the
// user id and admin flag. Unknown emails and wrong passwords fail the same way.
func (svc *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := svc.users.Get(ctx, goqu.Ex{"email": email})
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", err
	}

	hash := dummyHash
	if user != nil {
		hash = []byte(user.PasswordHash)
	}
	if err := bcrypt.CompareHashAndPassword(hash, []byte(password)); err != nil || user == nil {
		logger.Log.Warnw("invalid credentials", "email", email)
		return "", ErrInvalidLogin
	}

	token, err := svc.issuer.Generate(ctx, user.ID, user.IsAdmin)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return "", err
	}

	return token, nil
}

// Logout revokes the token until it expires.
func (svc *AuthService) Logout(ctx context.Context, tokenID string, ttl time.Duration) error {
	if err := svc.revoker.Revoke(ctx, tokenID, ttl); err != nil {
		logger.Log.Errorw("failed to revoke token", "token_id", tokenID, "err", err)
		return err
	}
	return nil
}

// HashPassword hashes a plaintext password with bcrypt.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return "", err
	}
	return string(hashed), nil
}
