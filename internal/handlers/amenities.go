package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sbilibin2017/hbnb/internal/repositories"
)

// NewCreateAmenityHandler returns an HTTP handler creating an amenity.
// @Summary Create amenity
// @Tags amenities
// @Accept json
// @Produce json
// @Param amenity body object true "name"
// @Success 201 {object} map[string]interface{} "Amenity added"
// @Failure 400 {object} handlers.ErrorResponse "Missing required field."
// @Failure 409 {object} handlers.ErrorResponse "Amenity already exists."
// @Router /amenities [post]
// @Security BearerAuth
func NewCreateAmenityHandler(svc AmenityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := decodeFields(r)
		if err != nil {
			writeError(w, r, err)
			return
		}

		amenity, err := svc.Create(r.Context(), actorFrom(r), body)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeEntity(w, http.StatusCreated, "Amenity added", "Amenity", amenity)
	}
}

// NewListAmenitiesHandler returns an HTTP handler listing amenities.
// @Summary List amenities
// @Tags amenities
// @Produce json
// @Success 200 {array} map[string]interface{} "Amenities"
// @Failure 404 {object} handlers.ErrorResponse "Amenity not found"
// @Router /amenities [get]
func NewListAmenitiesHandler(svc AmenityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		amenities, err := svc.List(r.Context())
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, repositories.ReadAll(amenities))
	}
}

// NewGetAmenityHandler returns an HTTP handler reading one amenity.
// @Summary Get amenity
// @Tags amenities
// @Produce json
// @Param id path string true "Amenity ID"
// @Success 200 {object} map[string]interface{} "Amenity"
// @Failure 404 {object} handlers.ErrorResponse "Amenity not found"
// @Router /amenities/{id} [get]
func NewGetAmenityHandler(svc AmenityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		amenity, err := svc.Get(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, repositories.Read(amenity))
	}
}

// NewUpdateAmenityHandler returns an HTTP handler renaming an amenity.
// @Summary Update amenity
// @Description Admin only
// @Tags amenities
// @Accept json
// @Produce json
// @Param id path string true "Amenity ID"
// @Param changes body object true "name"
// @Success 200 {object} map[string]interface{} "Amenity updated."
// @Failure 401 {object} handlers.ErrorResponse "Admin only !"
// @Failure 404 {object} handlers.ErrorResponse "Amenity not found"
// @Failure 409 {object} handlers.ErrorResponse "No update provided"
// @Router /amenities/{id} [put]
// @Security BearerAuth
func NewUpdateAmenityHandler(svc AmenityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireAdmin(w, r) {
			return
		}

		body, err := decodeFields(r)
		if err != nil {
			writeError(w, r, err)
			return
		}

		amenity, err := svc.Update(r.Context(), actorFrom(r), chi.URLParam(r, "id"), body)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeEntity(w, http.StatusOK, "Amenity updated.", "Amenity", amenity)
	}
}

// NewDeleteAmenityHandler returns an HTTP handler deleting an amenity.
// @Summary Delete amenity
// @Description Admin only
// @Tags amenities
// @Produce json
// @Param id path string true "Amenity ID"
// @Success 200 {object} handlers.SuccessResponse "Amenity deleted"
// @Failure 401 {object} handlers.ErrorResponse "Admin only !"
// @Failure 404 {object} handlers.ErrorResponse "Amenity not found"
// @Router /amenities/{id} [delete]
// @Security BearerAuth
func NewDeleteAmenityHandler(svc AmenityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireAdmin(w, r) {
			return
		}

		if err := svc.Delete(r.Context(), actorFrom(r), chi.URLParam(r, "id")); err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, SuccessResponse{Success: "Amenity deleted"})
	}
}
