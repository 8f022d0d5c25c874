package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/hbnb/internal/services"
)

func TestAmenityService(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	user := services.Actor{UserID: "u1"}

	_, err := f.amenitySvc.List(ctx)
	assert.ErrorIs(t, err, services.ErrAmenityNotFound)

	_, err = f.amenitySvc.Create(ctx, user, services.Fields{})
	assert.ErrorIs(t, err, services.ErrMissingField)
	_, err = f.amenitySvc.Create(ctx, user, services.Fields{"name": num("3")})
	assert.Equal(t, services.KindValidation, services.KindOf(err))

	wifi, err := f.amenitySvc.Create(ctx, user, services.Fields{"name": "Wifi"})
	require.NoError(t, err)
	pool, err := f.amenitySvc.Create(ctx, user, services.Fields{"name": "Pool"})
	require.NoError(t, err)

	_, err = f.amenitySvc.Create(ctx, user, services.Fields{"name": "Wifi"})
	assert.ErrorIs(t, err, services.ErrAmenityAlreadyExists)

	all, err := f.amenitySvc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	_, err = f.amenitySvc.Update(ctx, admin, pool.ID, services.Fields{"name": "Wifi"})
	assert.ErrorIs(t, err, services.ErrAmenityAlreadyExists)
	_, err = f.amenitySvc.Update(ctx, admin, pool.ID, services.Fields{"other": 1})
	assert.ErrorIs(t, err, services.ErrNoUpdate)

	renamed, err := f.amenitySvc.Update(ctx, admin, wifi.ID, services.Fields{"name": "Wifi"})
	require.NoError(t, err, "renaming to its own name is allowed")
	assert.Equal(t, "Wifi", renamed.Name)

	require.NoError(t, f.amenitySvc.Delete(ctx, admin, pool.ID))
	_, err = f.amenitySvc.Get(ctx, pool.ID)
	assert.ErrorIs(t, err, services.ErrAmenityNotFound)
	assert.ErrorIs(t, f.amenitySvc.Delete(ctx, admin, pool.ID), services.ErrAmenityNotFound)
}
