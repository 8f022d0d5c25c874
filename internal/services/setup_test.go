package services_test

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/doug-martin/goqu/v9"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/hbnb/internal/facades"
	"github.com/sbilibin2017/hbnb/internal/models"
	"github.com/sbilibin2017/hbnb/internal/repositories"
	"github.com/sbilibin2017/hbnb/internal/services"
	"github.com/sbilibin2017/hbnb/internal/store"
)

// fixture wires every service to a fresh SQLite store.
type fixture struct {
	gw        *repositories.Gateway
	users     *repositories.Finder[models.User]
	places    *repositories.Finder[models.Place]
	cities    *repositories.Finder[models.City]
	countries *repositories.Finder[models.Country]
	amenities *repositories.Finder[models.Amenity]
	links     *repositories.Finder[models.PlaceAmenity]
	reviews   *repositories.Finder[models.Review]
	catalogue *facades.CountryCatalogue

	userSvc    *services.UserService
	placeSvc   *services.PlaceService
	citySvc    *services.CityService
	countrySvc *services.CountryService
	amenitySvc *services.AmenityService
	reviewSvc  *services.ReviewService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()
	db, err := store.Open(ctx, store.DriverSQLite, store.SQLiteDSN(filepath.Join(t.TempDir(), "hbnb.db")))
	require.NoError(t, err)
	require.NoError(t, store.Migrate(ctx, db, store.DriverSQLite))
	t.Cleanup(func() { db.Close() })

	dialect := store.Dialect(store.DriverSQLite)
	f := &fixture{
		gw:        repositories.NewGateway(db, dialect),
		users:     repositories.NewFinder[models.User](db, dialect, "users", "created_at"),
		places:    repositories.NewFinder[models.Place](db, dialect, "places", "created_at"),
		cities:    repositories.NewFinder[models.City](db, dialect, "cities", "created_at"),
		countries: repositories.NewFinder[models.Country](db, dialect, "countries", "code"),
		amenities: repositories.NewFinder[models.Amenity](db, dialect, "amenities", "created_at"),
		links:     repositories.NewFinder[models.PlaceAmenity](db, dialect, "place_amenities"),
		reviews:   repositories.NewFinder[models.Review](db, dialect, "reviews", "created_at"),
		catalogue: facades.NewCountryCatalogue(),
	}
	f.userSvc = services.NewUserService(f.users, f.gw, nil)
	f.placeSvc = services.NewPlaceService(f.places, f.users, f.cities, f.amenities, f.links, f.gw, nil)
	f.citySvc = services.NewCityService(f.catalogue, f.countries, f.cities, f.gw, nil)
	f.countrySvc = services.NewCountryService(f.catalogue, f.countries, f.cities, f.gw, nil)
	f.amenitySvc = services.NewAmenityService(f.amenities, f.gw, nil)
	f.reviewSvc = services.NewReviewService(f.reviews, f.places, f.users, f.gw, nil)
	return f
}

func (f *fixture) user(t *testing.T, email string) *models.User {
	t.Helper()
	u, err := f.userSvc.Create(context.Background(), services.Fields{
		"email": email, "first_name": "Jo", "last_name": "Do", "password": "secret",
	})
	require.NoError(t, err)
	return u
}

func (f *fixture) city(t *testing.T, code, name string) *models.City {
	t.Helper()
	ctx := context.Background()
	existing, err := f.countries.Get(ctx, goqu.Ex{"code": code})
	require.NoError(t, err)
	if existing == nil {
		ref, err := f.catalogue.Lookup(ctx, code)
		require.NoError(t, err)
		require.NotNil(t, ref)
		_, err = f.countrySvc.Create(ctx, admin, services.Fields{"name": ref.Name, "code": ref.Code})
		require.NoError(t, err)
	}
	c, err := f.citySvc.Create(ctx, admin, services.Fields{"city_name": name, "country_code": code})
	require.NoError(t, err)
	return c
}

func (f *fixture) place(t *testing.T, host *models.User, city *models.City) *models.Place {
	t.Helper()
	p, err := f.placeSvc.Create(context.Background(), services.Actor{UserID: host.ID}, placeBody(city.ID))
	require.NoError(t, err)
	return p
}

var admin = services.Actor{UserID: "admin", IsAdmin: true}

func placeBody(cityID string) services.Fields {
	return services.Fields{
		"name":            "Loft",
		"description":     "Sunny loft",
		"address":         "1 rue de Rivoli",
		"latitude":        num("48.85"),
		"longitude":       num("2.35"),
		"num_rooms":       num("2"),
		"num_bathrooms":   num("1"),
		"price_per_night": num("120.5"),
		"max_guests":      num("3"),
		"city_id":         cityID,
	}
}

func num(s string) json.Number { return json.Number(s) }
