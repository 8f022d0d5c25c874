package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/sbilibin2017/hbnb/internal/services"
)

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(t)
	user := f.user(t, "a@b.com")

	mockIssuer := services.NewMockTokenIssuer(ctrl)
	svc := services.NewAuthService(f.users, mockIssuer, nil)

	tests := []struct {
		name      string
		email     string
		password  string
		issue     bool
		issuerErr error
		wantToken string
		wantErr   error
	}{
		{
			name:      "successful login",
			email:     "a@b.com",
			password:  "secret",
			issue:     true,
			wantToken: "token123",
		},
		{
			name:     "wrong password",
			email:    "a@b.com",
			password: "wrong",
			wantErr:  services.ErrInvalidLogin,
		},
		{
			name:     "unknown email",
			email:    "nobody@b.com",
			password: "secret",
			wantErr:  services.ErrInvalidLogin,
		},
		{
			name:      "issuer error",
			email:     "a@b.com",
			password:  "secret",
			issue:     true,
			issuerErr: errors.New("sign error"),
			wantErr:   errors.New("sign error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.issue {
				mockIssuer.EXPECT().
					Generate(gomock.Any(), user.ID, false).
					Return(tt.wantToken, tt.issuerErr)
			}

			token, err := svc.Login(context.Background(), tt.email, tt.password)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Empty(t, token)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantToken, token)
			}
		})
	}
}

func TestAuthService_LoginErrorsAreIndistinguishable(t *testing.T) {
	f := newFixture(t)
	f.user(t, "a@b.com")
	svc := services.NewAuthService(f.users, nil, nil)

	_, wrongPassword := svc.Login(context.Background(), "a@b.com", "wrong")
	_, unknownEmail := svc.Login(context.Background(), "x@b.com", "wrong")

	assert.Equal(t, wrongPassword, unknownEmail)
	assert.Equal(t, services.KindUnauthorized, services.KindOf(unknownEmail))
}

func TestAuthService_Logout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRevoker := services.NewMockTokenRevoker(ctrl)
	svc := services.NewAuthService(nil, nil, mockRevoker)

	mockRevoker.EXPECT().Revoke(gomock.Any(), "jti-1", time.Minute).Return(nil)
	assert.NoError(t, svc.Logout(context.Background(), "jti-1", time.Minute))

	mockRevoker.EXPECT().Revoke(gomock.Any(), "jti-2", time.Minute).Return(errors.New("redis down"))
	assert.EqualError(t, svc.Logout(context.Background(), "jti-2", time.Minute), "redis down")
}

func TestHashPassword(t *testing.T) {
	hash, err := services.HashPassword("mypassword")
	require.NoError(t, err)
	assert.NotEqual(t, "mypassword", hash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("mypassword")))
}
