package services

import (
	"context"

	"github.com/doug-martin/goqu/v9"

	"github.com/sbilibin2017/hbnb/internal/logger"
	"github.com/sbilibin2017/hbnb/internal/models"
)

// CityService manages cities.
type CityService struct {
	reference CountryReference
	countries Finder[models.Country]
	cities    Finder[models.City]
	gw        Persister
	events    EventPublisher
}

// NewCityService creates a new CityService instance.
func NewCityService(
	reference CountryReference,
	countries Finder[models.Country],
	cities Finder[models.City],
	gw Persister,
	events EventPublisher,
) *CityService {
	return &CityService{
		reference: reference,
		countries: countries,
		cities:    cities,
		gw:        gw,
		events:    events,
	}
}

// Create adds a city to a registered country. (city_name, country_code) is unique.
func (svc *CityService) Create(ctx context.Context, actor Actor, body Fields) (*models.City, error) {
	if err := body.Require("city_name", "country_code"); err != nil {
		return nil, err
	}
	name, err := body.String("city_name")
	if err != nil {
		return nil, err
	}
	code, err := body.String("country_code")
	if err != nil {
		return nil, err
	}
	if err := svc.checkCountry(ctx, code); err != nil {
		return nil, err
	}
	if err := svc.checkUnique(ctx, name, code, ""); err != nil {
		return nil, err
	}

	city := &models.City{CityName: name, CountryCode: code}
	if err := svc.gw.Create(ctx, city); err != nil {
		logger.Log.Errorw("failed to save city", "city_name", name, "country_code", code, "err", err)
		return nil, storeError(err, ErrCityAlreadyExists)
	}

	publish(ctx, svc.events, models.OperationCreated, city, actor.UserID)
	return city, nil
}

// List returns every city.
func (svc *CityService) List(ctx context.Context) ([]models.City, error) {
	cities, err := svc.cities.Select(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list cities", "err", err)
		return nil, err
	}
	if len(cities) == 0 {
		return nil, ErrCityNotFound
	}
	return cities, nil
}

// Get returns one city.
func (svc *CityService) Get(ctx context.Context, id string) (*models.City, error) {
	city, err := svc.cities.Get(ctx, goqu.Ex{"id": id})
	if err != nil {
		logger.Log.Errorw("failed to get city", "city_id", id, "err", err)
		return nil, err
	}
	if city == nil {
		return nil, ErrCityNotFound
	}
	return city, nil
}

// Update renames a city or moves it to another registered country.
func (svc *CityService) Update(ctx context.Context, actor Actor, id string, body Fields) (*models.City, error) {
	city, err := svc.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	changes := body.Only("city_name", "country_code")
	if len(changes) == 0 {
		return nil, ErrNoUpdate
	}

	name, code := city.CityName, city.CountryCode
	if _, ok := changes["city_name"]; ok {
		if !changes.Has("city_name") {
			return nil, ErrMissingField
		}
		if name, err = changes.String("city_name"); err != nil {
			return nil, err
		}
	}
	if _, ok := changes["country_code"]; ok {
		if !changes.Has("country_code") {
			return nil, ErrMissingField
		}
		if code, err = changes.String("country_code"); err != nil {
			return nil, err
		}
		if err := svc.checkCountry(ctx, code); err != nil {
			return nil, err
		}
	}
	if err := svc.checkUnique(ctx, name, code, city.ID); err != nil {
		return nil, err
	}

	if err := svc.gw.Update(ctx, city, changes); err != nil {
		logger.Log.Errorw("failed to update city", "city_id", id, "err", err)
		return nil, storeError(err, ErrCityAlreadyExists)
	}

	publish(ctx, svc.events, models.OperationUpdated, city, actor.UserID)
	return city, nil
}

// Delete removes a city and every place in it.
func (svc *CityService) Delete(ctx context.Context, actor Actor, id string) error {
	city, err := svc.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := svc.gw.Delete(ctx, city); err != nil {
		logger.Log.Errorw("failed to delete city", "city_id", id, "err", err)
		return err
	}

	publish(ctx, svc.events, models.OperationDeleted, city, actor.UserID)
	return nil
}

// checkCountry requires code to be a reference country registered locally.
func (svc *CityService) checkCountry(ctx context.Context, code string) error {
	ref, err := svc.reference.Lookup(ctx, code)
	if err != nil {
		return err
	}
	if ref == nil || ref.Code != code {
		return ErrUnknownCountry
	}
	country, err := svc.countries.Get(ctx, goqu.Ex{"code": code})
	if err != nil {
		logger.Log.Errorw("failed to get country", "code", code, "err", err)
		return err
	}
	if country == nil {
		return ErrCountryNotFound
	}
	return nil
}

func (svc *CityService) checkUnique(ctx context.Context, name, code, selfID string) error {
	existing, err := svc.cities.Get(ctx, goqu.Ex{"city_name": name, "country_code": code})
	if err != nil {
		logger.Log.Errorw("failed to check city exists", "city_name", name, "err", err)
		return err
	}
	if existing != nil && existing.ID != selfID {
		return ErrCityAlreadyExists
	}
	return nil
}
