package services

import (
	"context"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"

	"github.com/sbilibin2017/hbnb/internal/logger"
	"github.com/sbilibin2017/hbnb/internal/models"
)

// ReviewService manages reviews of places.
type ReviewService struct {
	reviews Finder[models.Review]
	places  Finder[models.Place]
	users   Finder[models.User]
	gw      Persister
	events  EventPublisher
}

// NewReviewService creates a new ReviewService instance.
func NewReviewService(
	reviews Finder[models.Review],
	places Finder[models.Place],
	users Finder[models.User],
	gw Persister,
	events EventPublisher,
) *ReviewService {
	return &ReviewService{
		reviews: reviews,
		places:  places,
		users:   users,
		gw:      gw,
		events:  events,
	}
}

// Create stores the actor's review of a place. Hosts cannot review their own
// place and nobody can review the same place twice.
func (svc *ReviewService) Create(ctx context.Context, actor Actor, placeID string, body Fields) (*models.Review, error) {
	if err := body.Require("rating", "comment"); err != nil {
		return nil, err
	}
	rating, err := reviewRating(body)
	if err != nil {
		return nil, err
	}
	comment, err := body.String("comment")
	if err != nil {
		return nil, err
	}

	author, err := svc.users.Get(ctx, goqu.Ex{"id": actor.UserID})
	if err != nil {
		logger.Log.Errorw("failed to get author", "user_id", actor.UserID, "err", err)
		return nil, err
	}
	if author == nil {
		logger.Log.Warnw("review by deleted account", "user_id", actor.UserID)
		return nil, ErrUserNotFound
	}

	place, err := svc.places.Get(ctx, goqu.Ex{"id": placeID})
	if err != nil {
		logger.Log.Errorw("failed to get place", "place_id", placeID, "err", err)
		return nil, err
	}
	if place == nil {
		return nil, ErrPlaceNotFound
	}
	if place.HostID == actor.UserID {
		logger.Log.Warnw("host tried to review own place", "user_id", actor.UserID, "place_id", placeID)
		return nil, ErrOwnPlaceReview
	}

	existing, err := svc.reviews.Get(ctx, goqu.Ex{"user_id": actor.UserID, "place_id": placeID})
	if err != nil {
		logger.Log.Errorw("failed to check review exists", "user_id", actor.UserID, "place_id", placeID, "err", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicateReview
	}

	review := &models.Review{
		Rating:  rating,
		Comment: comment,
		UserID:  actor.UserID,
		PlaceID: placeID,
	}
	if err := svc.gw.Create(ctx, review); err != nil {
		logger.Log.Errorw("failed to save review", "user_id", actor.UserID, "place_id", placeID, "err", err)
		return nil, storeError(err, ErrDuplicateReview)
	}

	publish(ctx, svc.events, models.OperationCreated, review, actor.UserID)
	return review, nil
}

// List returns every review.
func (svc *ReviewService) List(ctx context.Context) ([]models.Review, error) {
	return svc.selectReviews(ctx)
}

// ByPlace returns the reviews of a place.
func (svc *ReviewService) ByPlace(ctx context.Context, placeID string) ([]models.Review, error) {
	place, err := svc.places.Get(ctx, goqu.Ex{"id": placeID})
	if err != nil {
		logger.Log.Errorw("failed to get place", "place_id", placeID, "err", err)
		return nil, err
	}
	if place == nil {
		return nil, ErrPlaceNotFound
	}
	return svc.selectReviews(ctx, goqu.Ex{"place_id": placeID})
}

// ByUser returns the reviews written by a user.
func (svc *ReviewService) ByUser(ctx context.Context, userID string) ([]models.Review, error) {
	user, err := svc.users.Get(ctx, goqu.Ex{"id": userID})
	if err != nil {
		logger.Log.Errorw("failed to get user", "user_id", userID, "err", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return svc.selectReviews(ctx, goqu.Ex{"user_id": userID})
}

// Get returns one review.
func (svc *ReviewService) Get(ctx context.Context, id string) (*models.Review, error) {
	review, err := svc.reviews.Get(ctx, goqu.Ex{"id": id})
	if err != nil {
		logger.Log.Errorw("failed to get review", "review_id", id, "err", err)
		return nil, err
	}
	if review == nil {
		return nil, ErrReviewNotFound
	}
	return review, nil
}

// Update changes the rating or comment of a review. Only its author or an
// admin may do so.
func (svc *ReviewService) Update(ctx context.Context, actor Actor, id string, body Fields) (*models.Review, error) {
	review, err := svc.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actor.owns(review.UserID) {
		return nil, ErrNotOwner
	}

	changes := body.Only("rating", "comment")
	if len(changes) == 0 {
		return nil, ErrNoUpdate
	}
	if _, ok := changes["rating"]; ok {
		if _, err := reviewRating(changes); err != nil {
			return nil, err
		}
	}
	if _, ok := changes["comment"]; ok {
		if !changes.Has("comment") {
			return nil, ErrMissingField
		}
		if _, err := changes.String("comment"); err != nil {
			return nil, err
		}
	}

	if err := svc.gw.Update(ctx, review, changes); err != nil {
		logger.Log.Errorw("failed to update review", "review_id", id, "err", err)
		return nil, storeError(err, ErrDuplicateReview)
	}

	publish(ctx, svc.events, models.OperationUpdated, review, actor.UserID)
	return review, nil
}

// Delete removes a review. Only its author or an admin may do so.
func (svc *ReviewService) Delete(ctx context.Context, actor Actor, id string) error {
	review, err := svc.Get(ctx, id)
	if err != nil {
		return err
	}
	if !actor.owns(review.UserID) {
		return ErrNotOwner
	}
	if err := svc.gw.Delete(ctx, review); err != nil {
		logger.Log.Errorw("failed to delete review", "review_id", id, "err", err)
		return err
	}

	publish(ctx, svc.events, models.OperationDeleted, review, actor.UserID)
	return nil
}

func (svc *ReviewService) selectReviews(ctx context.Context, where ...exp.Expression) ([]models.Review, error) {
	reviews, err := svc.reviews.Select(ctx, where...)
	if err != nil {
		logger.Log.Errorw("failed to list reviews", "err", err)
		return nil, err
	}
	if len(reviews) == 0 {
		return nil, ErrReviewNotFound
	}
	return reviews, nil
}

// reviewRating returns the rating of f, an integer from 1 to 5.
func reviewRating(f Fields) (int, error) {
	rating, err := f.Int("rating")
	if err != nil {
		return 0, err
	}
	if rating < 1 || rating > 5 {
		return 0, ErrInvalidRating
	}
	return rating, nil
}
