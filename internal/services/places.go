package services

import (
	"context"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"

	"github.com/sbilibin2017/hbnb/internal/logger"
	"github.com/sbilibin2017/hbnb/internal/models"
)

var (
	placeStringFields = []string{"name", "description", "address"}
	placeFloatFields  = []string{"latitude", "longitude", "price_per_night"}
	placeIntFields    = []string{"num_rooms", "num_bathrooms", "max_guests"}

	// placeFields are the client-settable columns of a place, all required on create.
	placeFields = []string{
		"name", "description", "address",
		"latitude", "longitude", "price_per_night",
		"num_rooms", "num_bathrooms", "max_guests",
		"city_id",
	}
)

// PlaceService manages places and their amenity links.
type PlaceService struct {
	places    Finder[models.Place]
	users     Finder[models.User]
	cities    Finder[models.City]
	amenities Finder[models.Amenity]
	links     Finder[models.PlaceAmenity]
	gw        Persister
	events    EventPublisher
}

// NewPlaceService creates a new PlaceService instance.
func NewPlaceService(
	places Finder[models.Place],
	users Finder[models.User],
	cities Finder[models.City],
	amenities Finder[models.Amenity],
	links Finder[models.PlaceAmenity],
	gw Persister,
	events EventPublisher,
) *PlaceService {
	return &PlaceService{
		places:    places,
		users:     users,
		cities:    cities,
		amenities: amenities,
		links:     links,
		gw:        gw,
		events:    events,
	}
}

// Create adds a place hosted by the actor. Admins may name another host.
// The optional amenity_ids are linked in the same transaction.
func (svc *PlaceService) Create(ctx context.Context, actor Actor, body Fields) (*models.Place, error) {
	if err := body.Require(placeFields...); err != nil {
		return nil, err
	}
	if err := validatePlace(body); err != nil {
		return nil, err
	}

	place := &models.Place{}
	place.Name, _ = body.String("name")
	place.Description, _ = body.String("description")
	place.Address, _ = body.String("address")
	place.Latitude, _ = body.Float("latitude")
	place.Longitude, _ = body.Float("longitude")
	place.PricePerNight, _ = body.Float("price_per_night")
	place.NumRooms, _ = body.Int("num_rooms")
	place.NumBathrooms, _ = body.Int("num_bathrooms")
	place.MaxGuests, _ = body.Int("max_guests")
	place.CityID, _ = body.String("city_id")

	place.HostID = actor.UserID
	if body.Has("host_id") {
		hostID, err := body.String("host_id")
		if err != nil {
			return nil, err
		}
		if hostID != actor.UserID && !actor.IsAdmin {
			return nil, ErrAdminOnly
		}
		place.HostID = hostID
	}

	if err := svc.checkCity(ctx, place.CityID); err != nil {
		return nil, err
	}
	host, err := svc.users.Get(ctx, goqu.Ex{"id": place.HostID})
	if err != nil {
		logger.Log.Errorw("failed to get host", "host_id", place.HostID, "err", err)
		return nil, err
	}
	if host == nil {
		return nil, ErrUserNotFound
	}
	hosted, err := svc.places.Get(ctx, goqu.Ex{"host_id": place.HostID})
	if err != nil {
		logger.Log.Errorw("failed to check hosted place", "host_id", place.HostID, "err", err)
		return nil, err
	}
	if hosted != nil {
		return nil, ErrAlreadyHosting
	}

	var amenityIDs []string
	if _, ok := body["amenity_ids"]; ok && body["amenity_ids"] != nil {
		if amenityIDs, err = body.Strings("amenity_ids"); err != nil {
			return nil, err
		}
	}

	place.ID = uuid.NewString()
	entities := []models.Entity{place}
	seen := make(map[string]struct{}, len(amenityIDs))
	for _, id := range amenityIDs {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		amenity, err := svc.amenities.Get(ctx, goqu.Ex{"id": id})
		if err != nil {
			logger.Log.Errorw("failed to get amenity", "amenity_id", id, "err", err)
			return nil, err
		}
		if amenity == nil {
			return nil, ErrAmenityNotFound
		}
		entities = append(entities, &models.PlaceAmenity{PlaceID: place.ID, AmenityID: id})
	}

	if err := svc.gw.Create(ctx, entities...); err != nil {
		logger.Log.Errorw("failed to save place", "name", place.Name, "err", err)
		return nil, storeError(err, ErrAlreadyHosting)
	}

	publish(ctx, svc.events, models.OperationCreated, place, actor.UserID)
	return place, nil
}

// List returns every place.
func (svc *PlaceService) List(ctx context.Context) ([]models.Place, error) {
	places, err := svc.places.Select(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list places", "err", err)
		return nil, err
	}
	if len(places) == 0 {
		return nil, ErrPlaceNotFound
	}
	return places, nil
}

// Get returns one place.
func (svc *PlaceService) Get(ctx context.Context, id string) (*models.Place, error) {
	place, err := svc.places.Get(ctx, goqu.Ex{"id": id})
	if err != nil {
		logger.Log.Errorw("failed to get place", "place_id", id, "err", err)
		return nil, err
	}
	if place == nil {
		return nil, ErrPlaceNotFound
	}
	return place, nil
}

// Update changes a place. Only its host or an admin may do so.
func (svc *PlaceService) Update(ctx context.Context, actor Actor, id string, body Fields) (*models.Place, error) {
	place, err := svc.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.owns(place.HostID) {
		return nil, ErrNotOwner
	}

	changes := body.Only(placeFields...)
	if len(changes) == 0 {
		return nil, ErrNoUpdate
	}
	for key := range changes {
		if !changes.Has(key) {
			return nil, ErrMissingField
		}
	}
	if err := validatePlace(changes); err != nil {
		return nil, err
	}
	if _, ok := changes["city_id"]; ok {
		cityID, err := changes.String("city_id")
		if err != nil {
			return nil, err
		}
		if err := svc.checkCity(ctx, cityID); err != nil {
			return nil, err
		}
	}

	if err := svc.gw.Update(ctx, place, changes); err != nil {
		logger.Log.Errorw("failed to update place", "place_id", id, "err", err)
		return nil, storeError(err, ErrAlreadyHosting)
	}

	publish(ctx, svc.events, models.OperationUpdated, place, actor.UserID)
	return place, nil
}

// Delete removes a place with its reviews and amenity links.
func (svc *PlaceService) Delete(ctx context.Context, actor Actor, id string) error {
	place, err := svc.Get(ctx, id)
	if err != nil {
		return err
	}
	if !actor.owns(place.HostID) {
		return ErrNotOwner
	}
	if err := svc.gw.Delete(ctx, place); err != nil {
		logger.Log.Errorw("failed to delete place", "place_id", id, "err", err)
		return err
	}

	publish(ctx, svc.events, models.OperationDeleted, place, actor.UserID)
	return nil
}

// Amenities returns the amenities linked to a place.
func (svc *PlaceService) Amenities(ctx context.Context, placeID string) ([]models.Amenity, error) {
	if _, err := svc.Get(ctx, placeID); err != nil {
		return nil, err
	}
	links, err := svc.links.Select(ctx, goqu.Ex{"place_id": placeID})
	if err != nil {
		logger.Log.Errorw("failed to list amenity links", "place_id", placeID, "err", err)
		return nil, err
	}
	if len(links) == 0 {
		return nil, ErrAmenityNotFound
	}
	ids := make([]string, len(links))
	for i, l := range links {
		ids[i] = l.AmenityID
	}
	amenities, err := svc.amenities.Select(ctx, goqu.C("id").In(ids))
	if err != nil {
		logger.Log.Errorw("failed to list amenities of place", "place_id", placeID, "err", err)
		return nil, err
	}
	return amenities, nil
}

// LinkAmenity attaches an amenity to a place.
func (svc *PlaceService) LinkAmenity(ctx context.Context, actor Actor, placeID, amenityID string) (*models.PlaceAmenity, error) {
	link, existing, err := svc.link(ctx, actor, placeID, amenityID)
	if err != nil {
		return nil, err
	}
	if existing {
		return nil, ErrAmenityAlreadyLinked
	}
	if err := svc.gw.Create(ctx, link); err != nil {
		logger.Log.Errorw("failed to link amenity", "place_id", placeID, "amenity_id", amenityID, "err", err)
		return nil, storeError(err, ErrAmenityAlreadyLinked)
	}

	publish(ctx, svc.events, models.OperationCreated, link, actor.UserID)
	return link, nil
}

// UnlinkAmenity detaches an amenity from a place.
func (svc *PlaceService) UnlinkAmenity(ctx context.Context, actor Actor, placeID, amenityID string) error {
	link, existing, err := svc.link(ctx, actor, placeID, amenityID)
	if err != nil {
		return err
	}
	if !existing {
		return ErrAmenityNotFound
	}
	if err := svc.gw.Delete(ctx, link); err != nil {
		logger.Log.Errorw("failed to unlink amenity", "place_id", placeID, "amenity_id", amenityID, "err", err)
		return err
	}

	publish(ctx, svc.events, models.OperationDeleted, link, actor.UserID)
	return nil
}

// link resolves both ends of a place/amenity link after checking the actor
// hosts the place, and reports whether the link is already stored.
func (svc *PlaceService) link(ctx context.Context, actor Actor, placeID, amenityID string) (*models.PlaceAmenity, bool, error) {
	place, err := svc.Get(ctx, placeID)
	if err != nil {
		return nil, false, err
	}
	if !actor.owns(place.HostID) {
		return nil, false, ErrNotOwner
	}
	amenity, err := svc.amenities.Get(ctx, goqu.Ex{"id": amenityID})
	if err != nil {
		logger.Log.Errorw("failed to get amenity", "amenity_id", amenityID, "err", err)
		return nil, false, err
	}
	if amenity == nil {
		return nil, false, ErrAmenityNotFound
	}

	link := &models.PlaceAmenity{PlaceID: place.ID, AmenityID: amenity.ID}
	existing, err := svc.links.Get(ctx, goqu.Ex(link.Key()))
	if err != nil {
		logger.Log.Errorw("failed to get amenity link", "place_id", placeID, "amenity_id", amenityID, "err", err)
		return nil, false, err
	}
	return link, existing != nil, nil
}

func (svc *PlaceService) checkCity(ctx context.Context, cityID string) error {
	city, err := svc.cities.Get(ctx, goqu.Ex{"id": cityID})
	if err != nil {
		logger.Log.Errorw("failed to get city", "city_id", cityID, "err", err)
		return err
	}
	if city == nil {
		return ErrCityNotFound
	}
	return nil
}

// validatePlace type-checks and range-checks the place fields present in f.
func validatePlace(f Fields) error {
	for _, key := range placeStringFields {
		if _, ok := f[key]; ok {
			if _, err := f.String(key); err != nil {
				return err
			}
		}
	}
	for _, key := range placeIntFields {
		if _, ok := f[key]; ok {
			n, err := f.Int(key)
			if err != nil {
				return err
			}
			if n < 0 {
				return ErrNegativeValue
			}
		}
	}
	for _, key := range placeFloatFields {
		if _, ok := f[key]; !ok {
			continue
		}
		n, err := f.Float(key)
		if err != nil {
			return err
		}
		switch {
		case key == "latitude" && (n < -90 || n > 90):
			return ErrInvalidLatitude
		case key == "longitude" && (n < -180 || n > 180):
			return ErrInvalidLongitude
		case key == "price_per_night" && n < 0:
			return ErrNegativeValue
		}
	}
	return nil
}
