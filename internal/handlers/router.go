package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/sbilibin2017/hbnb/internal/middlewares"
)

// Services groups the services the router dispatches to.
type Services struct {
	Auth      Loginer
	Logout    Logouter // nil disables POST /logout
	Users     UserManager
	Places    PlaceManager
	Cities    CityManager
	Countries CountryManager
	Amenities AmenityManager
	Reviews   ReviewManager
}

// NewRouter builds the HTTP API. Reads of places, cities and amenities and
// user sign-up are public; every other route needs a bearer token.
// revocations may be nil.
func NewRouter(
	svc Services,
	tokener middlewares.Tokener,
	revocations middlewares.RevocationChecker,
	swaggerURL string,
) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware)

	// Public routes
	r.Post("/login", NewLoginHandler(svc.Auth))
	r.Post("/users", NewCreateUserHandler(svc.Users))
	r.Get("/places", NewListPlacesHandler(svc.Places))
	r.Get("/places/{id}", NewGetPlaceHandler(svc.Places))
	r.Get("/places/{id}/amenities", NewListPlaceAmenitiesHandler(svc.Places))
	r.Get("/cities", NewListCitiesHandler(svc.Cities))
	r.Get("/cities/{id}", NewGetCityHandler(svc.Cities))
	r.Get("/amenities", NewListAmenitiesHandler(svc.Amenities))
	r.Get("/amenities/{id}", NewGetAmenityHandler(svc.Amenities))

	// Protected routes with JWT middleware
	r.Group(func(r chi.Router) {
		r.Use(middlewares.AuthMiddleware(tokener, revocations))

		if svc.Logout != nil {
			r.Post("/logout", NewLogoutHandler(svc.Logout))
		}

		r.Get("/users", NewListUsersHandler(svc.Users))
		r.Get("/users/{id}", NewGetUserHandler(svc.Users))
		r.Put("/users/{id}", NewUpdateUserHandler(svc.Users))
		r.Delete("/users/{id}", NewDeleteUserHandler(svc.Users))
		r.Get("/users/{id}/reviews", NewListUserReviewsHandler(svc.Reviews))

		r.Post("/places", NewCreatePlaceHandler(svc.Places))
		r.Put("/places/{id}", NewUpdatePlaceHandler(svc.Places))
		r.Delete("/places/{id}", NewDeletePlaceHandler(svc.Places))
		r.Post("/places/{id}/amenities/{amenity_id}", NewLinkPlaceAmenityHandler(svc.Places))
		r.Delete("/places/{id}/amenities/{amenity_id}", NewUnlinkPlaceAmenityHandler(svc.Places))
		r.Post("/places/{id}/reviews", NewCreateReviewHandler(svc.Reviews))
		r.Get("/places/{id}/reviews", NewListPlaceReviewsHandler(svc.Reviews))

		r.Get("/reviews", NewListReviewsHandler(svc.Reviews))
		r.Get("/reviews/{id}", NewGetReviewHandler(svc.Reviews))
		r.Put("/reviews/{id}", NewUpdateReviewHandler(svc.Reviews))
		r.Delete("/reviews/{id}", NewDeleteReviewHandler(svc.Reviews))

		r.Post("/amenities", NewCreateAmenityHandler(svc.Amenities))
		r.Put("/amenities/{id}", NewUpdateAmenityHandler(svc.Amenities))
		r.Delete("/amenities/{id}", NewDeleteAmenityHandler(svc.Amenities))

		r.Post("/cities", NewCreateCityHandler(svc.Cities))
		r.Put("/cities/{id}", NewUpdateCityHandler(svc.Cities))
		r.Delete("/cities/{id}", NewDeleteCityHandler(svc.Cities))

		r.Post("/countries", NewCreateCountryHandler(svc.Countries))
		r.Get("/countries", NewListCountriesHandler(svc.Countries))
		r.Get("/countries/{code}", NewGetCountryHandler(svc.Countries))
		r.Get("/countries/{code}/cities", NewListCountryCitiesHandler(svc.Countries))
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(swaggerURL),
	))

	return r
}
