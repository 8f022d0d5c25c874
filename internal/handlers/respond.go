package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/sbilibin2017/hbnb/internal/logger"
	"github.com/sbilibin2017/hbnb/internal/middlewares"
	"github.com/sbilibin2017/hbnb/internal/models"
	"github.com/sbilibin2017/hbnb/internal/repositories"
	"github.com/sbilibin2017/hbnb/internal/services"
)

// ErrorResponse represents an error response
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// default: Missing required field.
	Error string `json:"Error"`
}

// SuccessResponse represents a confirmation without a resource payload
// swagger:model SuccessResponse
type SuccessResponse struct {
	// Confirmation message
	// default: Place deleted
	Success string `json:"Success"`
}

// statusOf maps a service error kind to an HTTP status code.
var statusOf = map[services.Kind]int{
	services.KindValidation:   http.StatusBadRequest,
	services.KindUnauthorized: http.StatusUnauthorized,
	services.KindNotFound:     http.StatusNotFound,
	services.KindConflict:     http.StatusConflict,
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError answers with the status matching err. Errors without a kind are
// logged and reported as internal.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	if status, ok := statusOf[services.KindOf(err)]; ok {
		writeJSON(w, status, ErrorResponse{Error: err.Error()})
		return
	}
	logger.Log.Errorw("internal server error",
		"request_id", middlewares.RequestIDFromContext(r.Context()),
		"method", r.Method,
		"uri", r.RequestURI,
		"err", err,
	)
	writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
}

// decodeFields reads the request body as a JSON object. An empty body
// decodes to an empty object.
func decodeFields(r *http.Request) (services.Fields, error) {
	dec := json.NewDecoder(r.Body)
	dec.UseNumber()

	var body services.Fields
	if err := dec.Decode(&body); err != nil {
		if errors.Is(err, io.EOF) {
			return services.Fields{}, nil
		}
		return nil, services.ErrEmptyBody
	}
	if body == nil {
		return services.Fields{}, nil
	}
	return body, nil
}

// actorFrom returns the authenticated caller.
func actorFrom(r *http.Request) services.Actor {
	claims := middlewares.ClaimsFromContext(r.Context())
	if claims == nil {
		return services.Actor{}
	}
	return services.Actor{UserID: claims.UserID, IsAdmin: claims.Admin()}
}

// requireAdmin answers with an authorization error and returns false unless
// the session is an admin one.
func requireAdmin(w http.ResponseWriter, r *http.Request) bool {
	if middlewares.IsAdmin(r.Context()) {
		return true
	}
	logger.Log.Warnw("admin only operation refused",
		"request_id", middlewares.RequestIDFromContext(r.Context()),
		"uri", r.RequestURI,
	)
	writeError(w, r, services.ErrAdminOnly)
	return false
}

// writeEntity answers with {"Success": msg, name: entity}.
func writeEntity(w http.ResponseWriter, status int, msg, name string, e models.Entity) {
	writeJSON(w, status, map[string]any{
		"Success": msg,
		name:      repositories.Read(e),
	})
}
