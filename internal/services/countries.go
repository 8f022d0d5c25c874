package services

import (
	"context"

	"github.com/doug-martin/goqu/v9"

	"github.com/sbilibin2017/hbnb/internal/logger"
	"github.com/sbilibin2017/hbnb/internal/models"
)

// CountryService registers countries from the reference dataset and serves
// reads straight from that dataset.
type CountryService struct {
	reference CountryReference
	countries Finder[models.Country]
	cities    Finder[models.City]
	gw        Persister
	events    EventPublisher
}

// NewCountryService creates a new CountryService instance.
func NewCountryService(
	reference CountryReference,
	countries Finder[models.Country],
	cities Finder[models.City],
	gw Persister,
	events EventPublisher,
) *CountryService {
	return &CountryService{
		reference: reference,
		countries: countries,
		cities:    cities,
		gw:        gw,
		events:    events,
	}
}

// Create stores a country. The (name, code) pair must match the reference
// dataset exactly.
func (svc *CountryService) Create(ctx context.Context, actor Actor, body Fields) (*models.Country, error) {
	if err := body.Require("name", "code"); err != nil {
		return nil, err
	}
	name, err := body.String("name")
	if err != nil {
		return nil, err
	}
	code, err := body.String("code")
	if err != nil {
		return nil, err
	}

	ref, err := svc.reference.Lookup(ctx, code)
	if err != nil {
		logger.Log.Errorw("failed to look up country", "code", code, "err", err)
		return nil, err
	}
	if ref == nil || ref.Code != code || ref.Name != name {
		logger.Log.Warnw("country does not match reference", "code", code, "name", name)
		return nil, ErrCountryMismatch
	}

	existing, err := svc.countries.Get(ctx, goqu.Ex{"code": code})
	if err != nil {
		logger.Log.Errorw("failed to check country exists", "code", code, "err", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrCountryAlreadyExists
	}

	country := &models.Country{Name: ref.Name, Code: ref.Code}
	if err := svc.gw.Create(ctx, country); err != nil {
		logger.Log.Errorw("failed to save country", "code", code, "err", err)
		return nil, storeError(err, ErrCountryAlreadyExists)
	}

	publish(ctx, svc.events, models.OperationCreated, country, actor.UserID)
	return country, nil
}

// List returns the reference dataset.
func (svc *CountryService) List(ctx context.Context) ([]models.Country, error) {
	return svc.reference.List(ctx)
}

// Get returns one reference entry, matching the code case-insensitively.
func (svc *CountryService) Get(ctx context.Context, code string) (*models.Country, error) {
	country, err := svc.reference.Lookup(ctx, code)
	if err != nil {
		return nil, err
	}
	if country == nil {
		return nil, ErrCountryNotFound
	}
	return country, nil
}

// Cities returns the stored cities of a country.
func (svc *CountryService) Cities(ctx context.Context, code string) ([]models.City, error) {
	country, err := svc.Get(ctx, code)
	if err != nil {
		return nil, err
	}
	cities, err := svc.cities.Select(ctx, goqu.Ex{"country_code": country.Code})
	if err != nil {
		logger.Log.Errorw("failed to list cities of country", "code", country.Code, "err", err)
		return nil, err
	}
	if len(cities) == 0 {
		return nil, ErrCityNotFound
	}
	return cities, nil
}
