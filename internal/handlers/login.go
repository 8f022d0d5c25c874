package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/hbnb/internal/middlewares"
	"github.com/sbilibin2017/hbnb/internal/services"
)

// LoginRequest represents the JSON body for user login
// swagger:model LoginRequest
type LoginRequest struct {
	// Email
	// required: true
	// default: john@example.com
	Email string `json:"email"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password"`
}

// LoginResponse represents a successful login response
// swagger:model LoginResponse
type LoginResponse struct {
	// JWT token
	// default: JWT_TOKEN
	AccessToken string `json:"access_token"`
}

// NewLoginHandler returns an HTTP handler for user login.
// @Summary User login
// @Description Authenticate user and return JWT token carrying the user id and admin flag
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body handlers.LoginRequest true "Login Request"
// @Success 200 {object} handlers.LoginResponse "JWT token returned"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 401 {object} handlers.ErrorResponse "Wrong access input"
// @Router /login [post]
func NewLoginHandler(svc Loginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, r, services.ErrEmptyBody)
			return
		}

		token, err := svc.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, LoginResponse{
			AccessToken: token,
		})
	}
}

// NewLogoutHandler returns an HTTP handler revoking the presented token.
// @Summary User logout
// @Description Revoke the current JWT token until it expires
// @Tags auth
// @Produce json
// @Success 200 {object} handlers.SuccessResponse "Logged out"
// @Failure 401 {object} handlers.ErrorResponse "Missing Authorization Header"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /logout [post]
// @Security BearerAuth
func NewLogoutHandler(svc Logouter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.ClaimsFromContext(r.Context())
		if claims == nil {
			writeJSON(w, http.StatusUnauthorized, ErrorResponse{Error: "Missing Authorization Header"})
			return
		}

		if err := svc.Logout(r.Context(), claims.ID, claims.TTL()); err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, SuccessResponse{Success: "Logged out"})
	}
}
