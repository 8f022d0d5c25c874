package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/hbnb/internal/jwt"
	"github.com/sbilibin2017/hbnb/internal/middlewares"
	"github.com/sbilibin2017/hbnb/internal/models"
	"github.com/sbilibin2017/hbnb/internal/services"
)

// newRequest builds a request as the router would hand it to a handler:
// URL params resolved and, when userID is set, the session claims stored.
func newRequest(method, target, body string, params map[string]string, userID string, admin *bool) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
	if userID != "" {
		ctx = middlewares.WithClaims(ctx, &jwt.Claims{UserID: userID, IsAdmin: admin})
	}
	return req.WithContext(ctx)
}

func boolPtr(b bool) *bool { return &b }

func TestCreateUserHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockUserManager(ctrl)
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	user := &models.User{
		Base:         models.Base{ID: "u1", CreatedAt: now, UpdatedAt: now},
		Email:        "a@b.com",
		FirstName:    "Jo",
		LastName:     "Do",
		PasswordHash: "$2a$10$hash",
	}

	tests := []struct {
		name         string
		body         string
		mockSetup    func()
		expectedCode int
		expectedBody string
	}{
		{
			name: "created",
			body: `{"email":"a@b.com","first_name":"Jo","last_name":"Do","password":"x"}`,
			mockSetup: func() {
				mockSvc.EXPECT().
					Create(gomock.Any(), services.Fields{"email": "a@b.com", "first_name": "Jo", "last_name": "Do", "password": "x"}).
					Return(user, nil)
			},
			expectedCode: http.StatusCreated,
			expectedBody: `{"Success":"User added","User":{"id":"u1","created_at":"2024-05-01T12:00:00Z","updated_at":"2024-05-01T12:00:00Z","email":"a@b.com","first_name":"Jo","last_name":"Do","is_admin":false}}`,
		},
		{
			name:         "malformed body",
			body:         `[1,2`,
			mockSetup:    func() {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"Error":"Request body must be a JSON object."}`,
		},
		{
			name: "validation error",
			body: `{"email":"a@b.com"}`,
			mockSetup: func() {
				mockSvc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, services.ErrMissingField)
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"Error":"Missing required field."}`,
		},
		{
			name: "conflict",
			body: `{"email":"a@b.com","first_name":"Jo","last_name":"Do","password":"x"}`,
			mockSetup: func() {
				mockSvc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, services.ErrUserAlreadyExists)
			},
			expectedCode: http.StatusConflict,
			expectedBody: `{"Error":"User already exists"}`,
		},
		{
			name: "store failure",
			body: `{"email":"a@b.com","first_name":"Jo","last_name":"Do","password":"x"}`,
			mockSetup: func() {
				mockSvc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, errors.New("disk full"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"Error":"Internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			w := httptest.NewRecorder()
			NewCreateUserHandler(mockSvc).ServeHTTP(w, newRequest(http.MethodPost, "/users", tt.body, nil, "", nil))

			assert.Equal(t, tt.expectedCode, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
			assert.NotContains(t, w.Body.String(), "password")
		})
	}
}

func TestAdminOnlyHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	users := NewMockUserManager(ctrl)
	countries := NewMockCountryManager(ctrl)
	amenities := NewMockAmenityManager(ctrl)
	cities := NewMockCityManager(ctrl)

	handlers := map[string]http.HandlerFunc{
		"list users":     NewListUsersHandler(users),
		"create country": NewCreateCountryHandler(countries),
		"update amenity": NewUpdateAmenityHandler(amenities),
		"delete amenity": NewDeleteAmenityHandler(amenities),
		"update city":    NewUpdateCityHandler(cities),
		"delete city":    NewDeleteCityHandler(cities),
	}

	// No service call is expected: the mocks fail the test if one happens.
	for name, h := range handlers {
		t.Run(name, func(t *testing.T) {
			body := `{"name":"France","code":"FR","city_name":"Paris"}`
			w := httptest.NewRecorder()
			h.ServeHTTP(w, newRequest(http.MethodPost, "/", body, map[string]string{"id": "x"}, "u1", boolPtr(false)))

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.JSONEq(t, `{"Error":"Admin only !"}`, w.Body.String())
		})
	}

	t.Run("missing admin claim counts as admin", func(t *testing.T) {
		users.EXPECT().List(gomock.Any()).Return([]models.User{{Base: models.Base{ID: "u1"}}}, nil)

		w := httptest.NewRecorder()
		NewListUsersHandler(users).ServeHTTP(w, newRequest(http.MethodGet, "/users", "", nil, "u1", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestUpdatePlaceHandler_PassesActor(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockPlaceManager(ctrl)
	place := &models.Place{Base: models.Base{ID: "p1"}, Name: "Loft", MaxGuests: 4, HostID: "u1"}

	mockSvc.EXPECT().
		Update(gomock.Any(), services.Actor{UserID: "u1", IsAdmin: false}, "p1", services.Fields{"max_guests": json.Number("4")}).
		Return(place, nil)

	w := httptest.NewRecorder()
	req := newRequest(http.MethodPut, "/places/p1", `{"max_guests":4}`, map[string]string{"id": "p1"}, "u1", boolPtr(false))
	NewUpdatePlaceHandler(mockSvc).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Place updated.", resp["Success"])
	assert.Equal(t, float64(4), resp["Place"].(map[string]any)["max_guests"])
}

func TestDeleteReviewHandler_NotOwner(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockReviewManager(ctrl)
	mockSvc.EXPECT().Delete(gomock.Any(), services.Actor{UserID: "u2"}, "r1").Return(services.ErrNotOwner)

	w := httptest.NewRecorder()
	NewDeleteReviewHandler(mockSvc).ServeHTTP(w, newRequest(http.MethodDelete, "/reviews/r1", "", map[string]string{"id": "r1"}, "u2", boolPtr(false)))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"Error":"Not authorized"}`, w.Body.String())
}

func TestListHandlers_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	places := NewMockPlaceManager(ctrl)
	places.EXPECT().List(gomock.Any()).Return(nil, services.ErrPlaceNotFound)

	w := httptest.NewRecorder()
	NewListPlacesHandler(places).ServeHTTP(w, newRequest(http.MethodGet, "/places", "", nil, "", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"Error":"Place not found"}`, w.Body.String())
}

func TestGetCountryHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	countries := NewMockCountryManager(ctrl)
	countries.EXPECT().Get(gomock.Any(), "fr").Return(&models.Country{Name: "France", Code: "FR"}, nil)

	w := httptest.NewRecorder()
	NewGetCountryHandler(countries).ServeHTTP(w, newRequest(http.MethodGet, "/countries/fr", "", map[string]string{"code": "fr"}, "u1", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"name":"France","code":"FR"}`, w.Body.String())
}

func TestDecodeFields(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    services.Fields
		wantErr error
	}{
		{name: "empty body", body: "", want: services.Fields{}},
		{name: "null", body: "null", want: services.Fields{}},
		{name: "object", body: `{"rating":5}`, want: services.Fields{"rating": json.Number("5")}},
		{name: "array", body: `[1]`, wantErr: services.ErrEmptyBody},
		{name: "garbage", body: `{`, wantErr: services.ErrEmptyBody},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := decodeFields(httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body)))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
