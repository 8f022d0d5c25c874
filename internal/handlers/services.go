package handlers

import (
	"context"
	"time"

	"github.com/sbilibin2017/hbnb/internal/models"
	"github.com/sbilibin2017/hbnb/internal/services"
)

//go:generate mockgen -source=services.go -destination=services_mock.go -package=handlers

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, email, password string) (string, error)
}

// Logouter revokes a session token.
type Logouter interface {
	Logout(ctx context.Context, tokenID string, ttl time.Duration) error
}

// UserManager is the user service as seen by the user handlers.
type UserManager interface {
	Create(ctx context.Context, body services.Fields) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
	Get(ctx context.Context, id string) (*models.User, error)
	Update(ctx context.Context, actor services.Actor, id string, body services.Fields) (*models.User, error)
	Delete(ctx context.Context, actor services.Actor, id string) error
}

// PlaceManager is the place service as seen by the place handlers.
type PlaceManager interface {
	Create(ctx context.Context, actor services.Actor, body services.Fields) (*models.Place, error)
	List(ctx context.Context) ([]models.Place, error)
	Get(ctx context.Context, id string) (*models.Place, error)
	Update(ctx context.Context, actor services.Actor, id string, body services.Fields) (*models.Place, error)
	Delete(ctx context.Context, actor services.Actor, id string) error
	Amenities(ctx context.Context, placeID string) ([]models.Amenity, error)
	LinkAmenity(ctx context.Context, actor services.Actor, placeID, amenityID string) (*models.PlaceAmenity, error)
	UnlinkAmenity(ctx context.Context, actor services.Actor, placeID, amenityID string) error
}

// CityManager is the city service as seen by the city handlers.
type CityManager interface {
	Create(ctx context.Context, actor services.Actor, body services.Fields) (*models.City, error)
	List(ctx context.Context) ([]models.City, error)
	Get(ctx context.Context, id string) (*models.City, error)
	Update(ctx context.Context, actor services.Actor, id string, body services.Fields) (*models.City, error)
	Delete(ctx context.Context, actor services.Actor, id string) error
}

// CountryManager is the country service as seen by the country handlers.
type CountryManager interface {
	Create(ctx context.Context, actor services.Actor, body services.Fields) (*models.Country, error)
	List(ctx context.Context) ([]models.Country, error)
	Get(ctx context.Context, code string) (*models.Country, error)
	Cities(ctx context.Context, code string) ([]models.City, error)
}

// AmenityManager is the amenity service as seen by the amenity handlers.
type AmenityManager interface {
	Create(ctx context.Context, actor services.Actor, body services.Fields) (*models.Amenity, error)
	List(ctx context.Context) ([]models.Amenity, error)
	Get(ctx context.Context, id string) (*models.Amenity, error)
	Update(ctx context.Context, actor services.Actor, id string, body services.Fields) (*models.Amenity, error)
	Delete(ctx context.Context, actor services.Actor, id string) error
}

// ReviewManager is the review service as seen by the review handlers.
type ReviewManager interface {
	Create(ctx context.Context, actor services.Actor, placeID string, body services.Fields) (*models.Review, error)
	List(ctx context.Context) ([]models.Review, error)
	ByPlace(ctx context.Context, placeID string) ([]models.Review, error)
	ByUser(ctx context.Context, userID string) ([]models.Review, error)
	Get(ctx context.Context, id string) (*models.Review, error)
	Update(ctx context.Context, actor services.Actor, id string, body services.Fields) (*models.Review, error)
	Delete(ctx context.Context, actor services.Actor, id string) error
}
