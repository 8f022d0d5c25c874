package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sbilibin2017/hbnb/internal/repositories"
)

// NewCreateUserHandler returns an HTTP handler registering a user.
// @Summary Create user
// @Description Register a user. Names must be ASCII letters, the email must be unique.
// @Tags users
// @Accept json
// @Produce json
// @Param user body object true "email, first_name, last_name, password"
// @Success 201 {object} map[string]interface{} "User added"
// @Failure 400 {object} handlers.ErrorResponse "Invalid input"
// @Failure 409 {object} handlers.ErrorResponse "User already exists"
// @Router /users [post]
func NewCreateUserHandler(svc UserManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := decodeFields(r)
		if err != nil {
			writeError(w, r, err)
			return
		}

		user, err := svc.Create(r.Context(), body)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeEntity(w, http.StatusCreated, "User added", "User", user)
	}
}

// NewListUsersHandler returns an HTTP handler listing users.
// @Summary List users
// @Description Admin only
// @Tags users
// @Produce json
// @Success 200 {array} map[string]interface{} "Users"
// @Failure 401 {object} handlers.ErrorResponse "Admin only !"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /users [get]
// @Security BearerAuth
func NewListUsersHandler(svc UserManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireAdmin(w, r) {
			return
		}

		users, err := svc.List(r.Context())
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, repositories.ReadAll(users))
	}
}

// NewGetUserHandler returns an HTTP handler reading one user.
// @Summary Get user
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} map[string]interface{} "User"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /users/{id} [get]
// @Security BearerAuth
func NewGetUserHandler(svc UserManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, err := svc.Get(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, repositories.Read(user))
	}
}

// NewUpdateUserHandler returns an HTTP handler updating a user.
// @Summary Update user
// @Description The user themselves or an admin. Only admins may change is_admin.
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param changes body object true "Any of email, first_name, last_name, password"
// @Success 200 {object} map[string]interface{} "User updated."
// @Failure 400 {object} handlers.ErrorResponse "Invalid input"
// @Failure 401 {object} handlers.ErrorResponse "Not authorized"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Failure 409 {object} handlers.ErrorResponse "No update provided"
// @Router /users/{id} [put]
// @Security BearerAuth
func NewUpdateUserHandler(svc UserManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := decodeFields(r)
		if err != nil {
			writeError(w, r, err)
			return
		}

		user, err := svc.Update(r.Context(), actorFrom(r), chi.URLParam(r, "id"), body)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeEntity(w, http.StatusOK, "User updated.", "User", user)
	}
}

// NewDeleteUserHandler returns an HTTP handler deleting a user with their place and reviews.
// @Summary Delete user
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} handlers.SuccessResponse "User deleted"
// @Failure 401 {object} handlers.ErrorResponse "Not authorized"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /users/{id} [delete]
// @Security BearerAuth
func NewDeleteUserHandler(svc UserManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), actorFrom(r), chi.URLParam(r, "id")); err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, SuccessResponse{Success: "User deleted"})
	}
}
