package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sbilibin2017/hbnb/internal/repositories"
)

// NewCreatePlaceHandler returns an HTTP handler creating a place hosted by the caller.
// @Summary Create place
// @Description Every listed field is required. An admin may set host_id; amenity_ids are linked in the same transaction.
// @Tags places
// @Accept json
// @Produce json
// @Param place body object true "name, description, address, latitude, longitude, num_rooms, num_bathrooms, price_per_night, max_guests, city_id, amenity_ids"
// @Success 201 {object} map[string]interface{} "Place added"
// @Failure 400 {object} handlers.ErrorResponse "Invalid input"
// @Failure 404 {object} handlers.ErrorResponse "City, host or amenity not found"
// @Failure 409 {object} handlers.ErrorResponse "User already hosts a place."
// @Router /places [post]
// @Security BearerAuth
func NewCreatePlaceHandler(svc PlaceManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := decodeFields(r)
		if err != nil {
			writeError(w, r, err)
			return
		}

		place, err := svc.Create(r.Context(), actorFrom(r), body)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeEntity(w, http.StatusCreated, "Place added", "Place", place)
	}
}

// NewListPlacesHandler returns an HTTP handler listing places.
// @Summary List places
// @Tags places
// @Produce json
// @Success 200 {array} map[string]interface{} "Places"
// @Failure 404 {object} handlers.ErrorResponse "Place not found"
// @Router /places [get]
func NewListPlacesHandler(svc PlaceManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		places, err := svc.List(r.Context())
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, repositories.ReadAll(places))
	}
}

// NewGetPlaceHandler returns an HTTP handler reading one place.
// @Summary Get place
// @Tags places
// @Produce json
// @Param id path string true "Place ID"
// @Success 200 {object} map[string]interface{} "Place"
// @Failure 404 {object} handlers.ErrorResponse "Place not found"
// @Router /places/{id} [get]
func NewGetPlaceHandler(svc PlaceManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		place, err := svc.Get(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, repositories.Read(place))
	}
}

// NewUpdatePlaceHandler returns an HTTP handler updating a place.
// @Summary Update place
// @Description Host or admin only
// @Tags places
// @Accept json
// @Produce json
// @Param id path string true "Place ID"
// @Param changes body object true "Any place field"
// @Success 200 {object} map[string]interface{} "Place updated."
// @Failure 400 {object} handlers.ErrorResponse "Invalid input"
// @Failure 401 {object} handlers.ErrorResponse "Not authorized"
// @Failure 404 {object} handlers.ErrorResponse "Place not found"
// @Failure 409 {object} handlers.ErrorResponse "No update provided"
// @Router /places/{id} [put]
// @Security BearerAuth
func NewUpdatePlaceHandler(svc PlaceManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := decodeFields(r)
		if err != nil {
			writeError(w, r, err)
			return
		}

		place, err := svc.Update(r.Context(), actorFrom(r), chi.URLParam(r, "id"), body)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeEntity(w, http.StatusOK, "Place updated.", "Place", place)
	}
}

// NewDeletePlaceHandler returns an HTTP handler deleting a place and its reviews.
// @Summary Delete place
// @Description Host or admin only
// @Tags places
// @Produce json
// @Param id path string true "Place ID"
// @Success 200 {object} handlers.SuccessResponse "Place deleted"
// @Failure 401 {object} handlers.ErrorResponse "Not authorized"
// @Failure 404 {object} handlers.ErrorResponse "Place not found"
// @Router /places/{id} [delete]
// @Security BearerAuth
func NewDeletePlaceHandler(svc PlaceManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), actorFrom(r), chi.URLParam(r, "id")); err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, SuccessResponse{Success: "Place deleted"})
	}
}

// NewListPlaceAmenitiesHandler returns an HTTP handler listing the amenities of a place.
// @Summary List place amenities
// @Tags places
// @Produce json
// @Param id path string true "Place ID"
// @Success 200 {array} map[string]interface{} "Amenities"
// @Failure 404 {object} handlers.ErrorResponse "Place or amenity not found"
// @Router /places/{id}/amenities [get]
func NewListPlaceAmenitiesHandler(svc PlaceManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		amenities, err := svc.Amenities(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, repositories.ReadAll(amenities))
	}
}

// NewLinkPlaceAmenityHandler returns an HTTP handler attaching an amenity to a place.
// @Summary Link amenity
// @Description Host or admin only
// @Tags places
// @Produce json
// @Param id path string true "Place ID"
// @Param amenity_id path string true "Amenity ID"
// @Success 201 {object} map[string]interface{} "Amenity linked"
// @Failure 401 {object} handlers.ErrorResponse "Not authorized"
// @Failure 404 {object} handlers.ErrorResponse "Place or amenity not found"
// @Failure 409 {object} handlers.ErrorResponse "Amenity already linked to this place."
// @Router /places/{id}/amenities/{amenity_id} [post]
// @Security BearerAuth
func NewLinkPlaceAmenityHandler(svc PlaceManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		link, err := svc.LinkAmenity(r.Context(), actorFrom(r), chi.URLParam(r, "id"), chi.URLParam(r, "amenity_id"))
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeEntity(w, http.StatusCreated, "Amenity linked", "PlaceAmenity", link)
	}
}

// NewUnlinkPlaceAmenityHandler returns an HTTP handler detaching an amenity from a place.
// @Summary Unlink amenity
// @Description Host or admin only
// @Tags places
// @Produce json
// @Param id path string true "Place ID"
// @Param amenity_id path string true "Amenity ID"
// @Success 200 {object} handlers.SuccessResponse "Amenity unlinked"
// @Failure 401 {object} handlers.ErrorResponse "Not authorized"
// @Failure 404 {object} handlers.ErrorResponse "Place or amenity not found"
// @Router /places/{id}/amenities/{amenity_id} [delete]
// @Security BearerAuth
func NewUnlinkPlaceAmenityHandler(svc PlaceManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.UnlinkAmenity(r.Context(), actorFrom(r), chi.URLParam(r, "id"), chi.URLParam(r, "amenity_id")); err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, SuccessResponse{Success: "Amenity unlinked"})
	}
}
