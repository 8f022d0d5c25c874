package services

import (
	"context"

	"github.com/doug-martin/goqu/v9/exp"

	"github.com/sbilibin2017/hbnb/internal/models"
)

// Persister creates, updates and deletes entities, one transaction per call.
type Persister interface {
	Create(ctx context.Context, entities ...models.Entity) error
	Update(ctx context.Context, entity models.Entity, changes map[string]any) error
	Delete(ctx context.Context, entity models.Entity) error
}

// Finder reads rows of one entity type. Get returns nil when nothing matches.
type Finder[T any] interface {
	Get(ctx context.Context, where ...exp.Expression) (*T, error)
	Select(ctx context.Context, where ...exp.Expression) ([]T, error)
}

// CountryReference is the external, read-only country dataset.
type CountryReference interface {
	List(ctx context.Context) ([]models.Country, error)
	Lookup(ctx context.Context, code string) (*models.Country, error)
}

// Actor is the authenticated caller of a mutating operation.
type Actor struct {
	UserID  string
	IsAdmin bool
}

// owns reports whether the actor may act on a resource owned by ownerID.
func (a Actor) owns(ownerID string) bool {
	return a.IsAdmin || (a.UserID != "" && a.UserID == ownerID)
}
