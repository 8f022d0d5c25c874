package services

import (
	"context"
	"errors"
	"strings"

	"github.com/doug-martin/goqu/v9"

	"github.com/sbilibin2017/hbnb/internal/logger"
	"github.com/sbilibin2017/hbnb/internal/models"
	"github.com/sbilibin2017/hbnb/internal/repositories"
)

// UserService manages user accounts.
type UserService struct {
	users  Finder[models.User]
	gw     Persister
	events EventPublisher
}

// NewUserService creates a new UserService instance.
func NewUserService(users Finder[models.User], gw Persister, events EventPublisher) *UserService {
	return &UserService{users: users, gw: gw, events: events}
}

// Create registers a new user. The password is stored as a bcrypt hash.
func (svc *UserService) Create(ctx context.Context, body Fields) (*models.User, error) {
	if err := body.Require("email", "first_name", "last_name", "password"); err != nil {
		return nil, err
	}
	email, err := body.String("email")
	if err != nil {
		return nil, err
	}
	firstName, err := body.String("first_name")
	if err != nil {
		return nil, err
	}
	lastName, err := body.String("last_name")
	if err != nil {
		return nil, err
	}
	password, err := body.String("password")
	if err != nil {
		return nil, err
	}
	if !asciiAlpha(firstName) {
		return nil, ErrInvalidFirst
	}
	if !asciiAlpha(lastName) {
		return nil, ErrInvalidLast
	}
	if !validEmail(email) {
		return nil, ErrInvalidEmail
	}

	existing, err := svc.users.Get(ctx, goqu.Ex{"email": email})
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return nil, err
	}
	if existing != nil {
		logger.Log.Warnw("user already exists", "email", email)
		return nil, ErrUserAlreadyExists
	}

	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:        email,
		FirstName:    firstName,
		LastName:     lastName,
		PasswordHash: hash,
	}
	if err := svc.gw.Create(ctx, user); err != nil {
		logger.Log.Errorw("failed to save user", "err", err)
		return nil, storeError(err, ErrUserAlreadyExists)
	}

	publish(ctx, svc.events, models.OperationCreated, user, user.ID)
	return user, nil
}

// EnsureAdmin creates an admin account with the given credentials unless a
// user with that email already exists.
func (svc *UserService) EnsureAdmin(ctx context.Context, email, password string) error {
	existing, err := svc.users.Get(ctx, goqu.Ex{"email": email})
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}
	hash, err := HashPassword(password)
	if err != nil {
		return err
	}
	admin := &models.User{
		Email:        email,
		FirstName:    "Admin",
		LastName:     "Admin",
		PasswordHash: hash,
		IsAdmin:      true,
	}
	if err := svc.gw.Create(ctx, admin); err != nil {
		if errors.Is(err, repositories.ErrUniqueViolation) {
			// another instance bootstrapped it first
			return nil
		}
		return err
	}
	logger.Log.Infow("admin account created", "email", email, "user_id", admin.ID)
	return nil
}

// List returns every user.
func (svc *UserService) List(ctx context.Context) ([]models.User, error) {
	users, err := svc.users.Select(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list users", "err", err)
		return nil, err
	}
	if len(users) == 0 {
		return nil, ErrUserNotFound
	}
	return users, nil
}

// Get returns one user.
func (svc *UserService) Get(ctx context.Context, id string) (*models.User, error) {
	user, err := svc.users.Get(ctx, goqu.Ex{"id": id})
	if err != nil {
		logger.Log.Errorw("failed to get user", "user_id", id, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// Update changes a user's profile. Users may update themselves; admins may
// update anyone and are the only ones allowed to change is_admin.
func (svc *UserService) Update(ctx context.Context, actor Actor, id string, body Fields) (*models.User, error) {
	user, err := svc.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.owns(user.ID) {
		return nil, ErrNotOwner
	}

	allowed := []string{"email", "first_name", "last_name", "password"}
	if actor.IsAdmin {
		allowed = append(allowed, "is_admin")
	}
	changes := body.Only(allowed...)
	if len(changes) == 0 {
		return nil, ErrNoUpdate
	}

	if _, ok := changes["email"]; ok {
		email, err := changes.String("email")
		if err != nil {
			return nil, err
		}
		if !validEmail(email) {
			return nil, ErrInvalidEmail
		}
		other, err := svc.users.Get(ctx, goqu.Ex{"email": email})
		if err != nil {
			return nil, err
		}
		if other != nil && other.ID != user.ID {
			return nil, ErrEmailInUse
		}
	}
	if _, ok := changes["first_name"]; ok {
		if name, _ := changes["first_name"].(string); !asciiAlpha(name) {
			return nil, ErrInvalidFirst
		}
	}
	if _, ok := changes["last_name"]; ok {
		if name, _ := changes["last_name"].(string); !asciiAlpha(name) {
			return nil, ErrInvalidLast
		}
	}
	if _, ok := changes["password"]; ok {
		password, err := changes.String("password")
		if err != nil {
			return nil, err
		}
		if strings.TrimSpace(password) == "" {
			return nil, ErrMissingField
		}
		hash, err := HashPassword(password)
		if err != nil {
			return nil, err
		}
		delete(changes, "password")
		changes["password_hash"] = hash
	}

	if err := svc.gw.Update(ctx, user, changes); err != nil {
		logger.Log.Errorw("failed to update user", "user_id", id, "err", err)
		return nil, storeError(err, ErrEmailInUse)
	}

	publish(ctx, svc.events, models.OperationUpdated, user, actor.UserID)
	return user, nil
}

// Delete removes a user together with the place they host and their reviews.
func (svc *UserService) Delete(ctx context.Context, actor Actor, id string) error {
	user, err := svc.Get(ctx, id)
	if err != nil {
		return err
	}
	if !actor.owns(user.ID) {
		return ErrNotOwner
	}
	if err := svc.gw.Delete(ctx, user); err != nil {
		logger.Log.Errorw("failed to delete user", "user_id", id, "err", err)
		return err
	}

	publish(ctx, svc.events, models.OperationDeleted, user, actor.UserID)
	return nil
}
