package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sbilibin2017/hbnb/internal/repositories"
)

// NewCreateCountryHandler returns an HTTP handler registering a country.
// @Summary Create country
// @Description Admin only. The (name, code) pair must match the ISO 3166 reference list exactly.
// @Tags countries
// @Accept json
// @Produce json
// @Param country body object true "name, code"
// @Success 201 {object} map[string]interface{} "Country added."
// @Failure 400 {object} handlers.ErrorResponse "Missing required field."
// @Failure 401 {object} handlers.ErrorResponse "Admin only !"
// @Failure 409 {object} handlers.ErrorResponse "Country already exists in database."
// @Router /countries [post]
// @Security BearerAuth
func NewCreateCountryHandler(svc CountryManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireAdmin(w, r) {
			return
		}

		body, err := decodeFields(r)
		if err != nil {
			writeError(w, r, err)
			return
		}

		country, err := svc.Create(r.Context(), actorFrom(r), body)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeEntity(w, http.StatusCreated, "Country added.", "Country", country)
	}
}

// NewListCountriesHandler returns an HTTP handler listing the reference countries.
// @Summary List countries
// @Tags countries
// @Produce json
// @Success 200 {array} map[string]interface{} "Countries"
// @Router /countries [get]
// @Security BearerAuth
func NewListCountriesHandler(svc CountryManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		countries, err := svc.List(r.Context())
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, repositories.ReadAll(countries))
	}
}

// NewGetCountryHandler returns an HTTP handler reading one reference country.
// @Summary Get country
// @Tags countries
// @Produce json
// @Param code path string true "ISO 3166-1 alpha-2 code"
// @Success 200 {object} map[string]interface{} "Country"
// @Failure 404 {object} handlers.ErrorResponse "Country not found"
// @Router /countries/{code} [get]
// @Security BearerAuth
func NewGetCountryHandler(svc CountryManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		country, err := svc.Get(r.Context(), chi.URLParam(r, "code"))
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, repositories.Read(country))
	}
}

// NewListCountryCitiesHandler returns an HTTP handler listing the cities of a country.
// @Summary List country cities
// @Tags countries
// @Produce json
// @Param code path string true "ISO 3166-1 alpha-2 code"
// @Success 200 {array} map[string]interface{} "Cities"
// @Failure 404 {object} handlers.ErrorResponse "Country or city not found"
// @Router /countries/{code}/cities [get]
// @Security BearerAuth
func NewListCountryCitiesHandler(svc CountryManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cities, err := svc.Cities(r.Context(), chi.URLParam(r, "code"))
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, repositories.ReadAll(cities))
	}
}
