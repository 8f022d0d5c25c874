package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sbilibin2017/hbnb/internal/repositories"
)

// NewCreateReviewHandler returns an HTTP handler reviewing a place as the caller.
// @Summary Create review
// @Description Rating is an integer from 1 to 5. Hosts cannot review their own place; one review per user and place.
// @Tags reviews
// @Accept json
// @Produce json
// @Param id path string true "Place ID"
// @Param review body object true "rating, comment"
// @Success 201 {object} map[string]interface{} "Review added"
// @Failure 400 {object} handlers.ErrorResponse "Invalid input"
// @Failure 404 {object} handlers.ErrorResponse "Place not found"
// @Failure 409 {object} handlers.ErrorResponse "You cannot review a place twice."
// @Router /places/{id}/reviews [post]
// @Security BearerAuth
func NewCreateReviewHandler(svc ReviewManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := decodeFields(r)
		if err != nil {
			writeError(w, r, err)
			return
		}

		review, err := svc.Create(r.Context(), actorFrom(r), chi.URLParam(r, "id"), body)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeEntity(w, http.StatusCreated, "Review added", "Review", review)
	}
}

// NewListReviewsHandler returns an HTTP handler listing every review.
// @Summary List reviews
// @Tags reviews
// @Produce json
// @Success 200 {array} map[string]interface{} "Reviews"
// @Failure 404 {object} handlers.ErrorResponse "Review not found"
// @Router /reviews [get]
// @Security BearerAuth
func NewListReviewsHandler(svc ReviewManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		reviews, err := svc.List(r.Context())
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, repositories.ReadAll(reviews))
	}
}

// NewListPlaceReviewsHandler returns an HTTP handler listing the reviews of a place.
// @Summary List place reviews
// @Tags reviews
// @Produce json
// @Param id path string true "Place ID"
// @Success 200 {array} map[string]interface{} "Reviews"
// @Failure 404 {object} handlers.ErrorResponse "Place or review not found"
// @Router /places/{id}/reviews [get]
// @Security BearerAuth
func NewListPlaceReviewsHandler(svc ReviewManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		reviews, err := svc.ByPlace(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, repositories.ReadAll(reviews))
	}
}

// NewListUserReviewsHandler returns an HTTP handler listing the reviews written by a user.
// @Summary List user reviews
// @Tags reviews
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {array} map[string]interface{} "Reviews"
// @Failure 404 {object} handlers.ErrorResponse "User or review not found"
// @Router /users/{id}/reviews [get]
// @Security BearerAuth
func NewListUserReviewsHandler(svc ReviewManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		reviews, err := svc.ByUser(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, repositories.ReadAll(reviews))
	}
}

// NewGetReviewHandler returns an HTTP handler reading one review.
// @Summary Get review
// @Tags reviews
// @Produce json
// @Param id path string true "Review ID"
// @Success 200 {object} map[string]interface{} "Review"
// @Failure 404 {object} handlers.ErrorResponse "Review not found"
// @Router /reviews/{id} [get]
// @Security BearerAuth
func NewGetReviewHandler(svc ReviewManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		review, err := svc.Get(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, repositories.Read(review))
	}
}

// NewUpdateReviewHandler returns an HTTP handler updating a review.
// @Summary Update review
// @Description Author or admin only
// @Tags reviews
// @Accept json
// @Produce json
// @Param id path string true "Review ID"
// @Param changes body object true "rating and/or comment"
// @Success 200 {object} map[string]interface{} "Review updated."
// @Failure 400 {object} handlers.ErrorResponse "Invalid input"
// @Failure 401 {object} handlers.ErrorResponse "Not authorized"
// @Failure 404 {object} handlers.ErrorResponse "Review not found"
// @Failure 409 {object} handlers.ErrorResponse "No update provided"
// @Router /reviews/{id} [put]
// @Security BearerAuth
func NewUpdateReviewHandler(svc ReviewManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := decodeFields(r)
		if err != nil {
			writeError(w, r, err)
			return
		}

		review, err := svc.Update(r.Context(), actorFrom(r), chi.URLParam(r, "id"), body)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeEntity(w, http.StatusOK, "Review updated.", "Review", review)
	}
}

// NewDeleteReviewHandler returns an HTTP handler deleting a review.
// @Summary Delete review
// @Description Author or admin only
// @Tags reviews
// @Produce json
// @Param id path string true "Review ID"
// @Success 200 {object} handlers.SuccessResponse "Review deleted"
// @Failure 401 {object} handlers.ErrorResponse "Not authorized"
// @Failure 404 {object} handlers.ErrorResponse "Review not found"
// @Router /reviews/{id} [delete]
// @Security BearerAuth
func NewDeleteReviewHandler(svc ReviewManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), actorFrom(r), chi.URLParam(r, "id")); err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, SuccessResponse{Success: "Review deleted"})
	}
}
