package services

import (
	"context"

	"github.com/doug-martin/goqu/v9"

	"github.com/sbilibin2017/hbnb/internal/logger"
	"github.com/sbilibin2017/hbnb/internal/models"
)

// AmenityService manages amenities.
type AmenityService struct {
	amenities Finder[models.Amenity]
	gw        Persister
	events    EventPublisher
}

// NewAmenityService creates a new AmenityService instance.
func NewAmenityService(amenities Finder[models.Amenity], gw Persister, events EventPublisher) *AmenityService {
	return &AmenityService{amenities: amenities, gw: gw, events: events}
}

// Create adds an amenity with a unique name.
func (svc *AmenityService) Create(ctx context.Context, actor Actor, body Fields) (*models.Amenity, error) {
	if err := body.Require("name"); err != nil {
		return nil, err
	}
	name, err := body.String("name")
	if err != nil {
		return nil, err
	}
	if err := svc.checkUnique(ctx, name, ""); err != nil {
		return nil, err
	}

	amenity := &models.Amenity{Name: name}
	if err := svc.gw.Create(ctx, amenity); err != nil {
		logger.Log.Errorw("failed to save amenity", "name", name, "err", err)
		return nil, storeError(err, ErrAmenityAlreadyExists)
	}

	publish(ctx, svc.events, models.OperationCreated, amenity, actor.UserID)
	return amenity, nil
}

// List returns every amenity.
func (svc *AmenityService) List(ctx context.Context) ([]models.Amenity, error) {
	amenities, err := svc.amenities.Select(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list amenities", "err", err)
		return nil, err
	}
	if len(amenities) == 0 {
		return nil, ErrAmenityNotFound
	}
	return amenities, nil
}

// Get returns one amenity.
func (svc *AmenityService) Get(ctx context.Context, id string) (*models.Amenity, error) {
	amenity, err := svc.amenities.Get(ctx, goqu.Ex{"id": id})
	if err != nil {
		logger.Log.Errorw("failed to get amenity", "amenity_id", id, "err", err)
		return nil, err
	}
	if amenity == nil {
		return nil, ErrAmenityNotFound
	}
	return amenity, nil
}

// Update renames an amenity.
func (svc *AmenityService) Update(ctx context.Context, actor Actor, id string, body Fields) (*models.Amenity, error) {
	amenity, err := svc.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	changes := body.Only("name")
	if len(changes) == 0 {
		return nil, ErrNoUpdate
	}
	if err := changes.Require("name"); err != nil {
		return nil, err
	}
	name, err := changes.String("name")
	if err != nil {
		return nil, err
	}
	if err := svc.checkUnique(ctx, name, amenity.ID); err != nil {
		return nil, err
	}

	if err := svc.gw.Update(ctx, amenity, changes); err != nil {
		logger.Log.Errorw("failed to update amenity", "amenity_id", id, "err", err)
		return nil, storeError(err, ErrAmenityAlreadyExists)
	}

	publish(ctx, svc.events, models.OperationUpdated, amenity, actor.UserID)
	return amenity, nil
}

// Delete removes an amenity and its links to places.
func (svc *AmenityService) Delete(ctx context.Context, actor Actor, id string) error {
	amenity, err := svc.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := svc.gw.Delete(ctx, amenity); err != nil {
		logger.Log.Errorw("failed to delete amenity", "amenity_id", id, "err", err)
		return err
	}

	publish(ctx, svc.events, models.OperationDeleted, amenity, actor.UserID)
	return nil
}

func (svc *AmenityService) checkUnique(ctx context.Context, name, selfID string) error {
	existing, err := svc.amenities.Get(ctx, goqu.Ex{"name": name})
	if err != nil {
		logger.Log.Errorw("failed to check amenity exists", "name", name, "err", err)
		return err
	}
	if existing != nil && existing.ID != selfID {
		return ErrAmenityAlreadyExists
	}
	return nil
}
