package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sbilibin2017/hbnb/internal/repositories"
)

// NewCreateCityHandler returns an HTTP handler creating a city in a registered country.
// @Summary Create city
// @Tags cities
// @Accept json
// @Produce json
// @Param city body object true "city_name, country_code"
// @Success 201 {object} map[string]interface{} "City added"
// @Failure 400 {object} handlers.ErrorResponse "Invalid input"
// @Failure 404 {object} handlers.ErrorResponse "Country not found"
// @Failure 409 {object} handlers.ErrorResponse "City already exists in this country."
// @Router /cities [post]
// @Security BearerAuth
func NewCreateCityHandler(svc CityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := decodeFields(r)
		if err != nil {
			writeError(w, r, err)
			return
		}

		city, err := svc.Create(r.Context(), actorFrom(r), body)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeEntity(w, http.StatusCreated, "City added.", "City", city)
	}
}

// NewListCitiesHandler returns an HTTP handler listing cities.
// @Summary List cities
// @Tags cities
// @Produce json
// @Success 200 {array} map[string]interface{} "Cities"
// @Failure 404 {object} handlers.ErrorResponse "City not found"
// @Router /cities [get]
func NewListCitiesHandler(svc CityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cities, err := svc.List(r.Context())
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, repositories.ReadAll(cities))
	}
}

// NewGetCityHandler returns an HTTP handler reading one city.
// @Summary Get city
// @Tags cities
// @Produce json
// @Param id path string true "City ID"
// @Success 200 {object} map[string]interface{} "City"
// @Failure 404 {object} handlers.ErrorResponse "City not found"
// @Router /cities/{id} [get]
func NewGetCityHandler(svc CityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		city, err := svc.Get(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, repositories.Read(city))
	}
}

// NewUpdateCityHandler returns an HTTP handler updating a city.
// @Summary Update city
// @Description Admin only
// @Tags cities
// @Accept json
// @Produce json
// @Param id path string true "City ID"
// @Param changes body object true "city_name and/or country_code"
// @Success 200 {object} map[string]interface{} "City updated."
// @Failure 401 {object} handlers.ErrorResponse "Admin only !"
// @Failure 404 {object} handlers.ErrorResponse "City not found"
// @Failure 409 {object} handlers.ErrorResponse "No update provided"
// @Router /cities/{id} [put]
// @Security BearerAuth
func NewUpdateCityHandler(svc CityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireAdmin(w, r) {
			return
		}

		body, err := decodeFields(r)
		if err != nil {
			writeError(w, r, err)
			return
		}

		city, err := svc.Update(r.Context(), actorFrom(r), chi.URLParam(r, "id"), body)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeEntity(w, http.StatusOK, "City updated.", "City", city)
	}
}

// NewDeleteCityHandler returns an HTTP handler deleting a city and its places.
// @Summary Delete city
// @Description Admin only
// @Tags cities
// @Produce json
// @Param id path string true "City ID"
// @Success 200 {object} handlers.SuccessResponse "City deleted"
// @Failure 401 {object} handlers.ErrorResponse "Admin only !"
// @Failure 404 {object} handlers.ErrorResponse "City not found"
// @Router /cities/{id} [delete]
// @Security BearerAuth
func NewDeleteCityHandler(svc CityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireAdmin(w, r) {
			return
		}

		if err := svc.Delete(r.Context(), actorFrom(r), chi.URLParam(r, "id")); err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, SuccessResponse{Success: "City deleted"})
	}
}
