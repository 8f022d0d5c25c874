package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/doug-martin/goqu/v9"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/hbnb/internal/models"
	"github.com/sbilibin2017/hbnb/internal/store"
)

func setupSQLite(t *testing.T) *sqlx.DB {
	t.Helper()
	ctx := context.Background()
	db, err := store.Open(ctx, store.DriverSQLite, store.SQLiteDSN(filepath.Join(t.TempDir(), "test.db")))
	require.NoError(t, err)
	require.NoError(t, store.Migrate(ctx, db, store.DriverSQLite))
	t.Cleanup(func() { db.Close() })
	return db
}

func seedPlace(t *testing.T, gw *Gateway) (*models.User, *models.City, *models.Place) {
	t.Helper()
	ctx := context.Background()
	host := &models.User{Email: "host@example.com", FirstName: "Ann", LastName: "Host", PasswordHash: "x"}
	country := &models.Country{Name: "France", Code: "FR"}
	city := &models.City{CityName: "Paris", CountryCode: "FR"}
	require.NoError(t, gw.Create(ctx, host, country, city))
	place := &models.Place{
		Name: "Loft", Description: "Sunny", Address: "1 rue", Latitude: 48.85, Longitude: 2.35,
		NumRooms: 2, NumBathrooms: 1, PricePerNight: 120.5, MaxGuests: 3,
		HostID: host.ID, CityID: city.ID,
	}
	require.NoError(t, gw.Create(ctx, place))
	return host, city, place
}

func TestGateway_CreateAndRead(t *testing.T) {
	db := setupSQLite(t)
	gw := NewGateway(db, store.Dialect(store.DriverSQLite))
	users := NewFinder[models.User](db, "sqlite3", "users")
	ctx := context.Background()

	user := &models.User{Email: "a@b.com", FirstName: "Jo", LastName: "Do", PasswordHash: "hash"}
	require.NoError(t, gw.Create(ctx, user))

	assert.NotEmpty(t, user.ID)
	assert.False(t, user.CreatedAt.IsZero())
	assert.False(t, user.CreatedAt.After(user.UpdatedAt))

	stored, err := users.Get(ctx, goqu.Ex{"id": user.ID})
	require.NoError(t, err)
	require.NotNil(t, stored)

	assert.Equal(t, Read(user), Read(stored))
	assert.Equal(t, Read(stored), Read(stored), "read must be stable")

	out := Read(stored)
	assert.Equal(t, "a@b.com", out["email"])
	assert.Equal(t, false, out["is_admin"])
	assert.NotContains(t, out, "password_hash")
	_, err = time.Parse(time.RFC3339Nano, out["created_at"].(string))
	assert.NoError(t, err)
}

func TestGateway_CreateUniqueViolationLeavesOriginal(t *testing.T) {
	db := setupSQLite(t)
	gw := NewGateway(db, "sqlite3")
	amenities := NewFinder[models.Amenity](db, "sqlite3", "amenities")
	ctx := context.Background()

	first := &models.Amenity{Name: "Wifi"}
	require.NoError(t, gw.Create(ctx, first))

	err := gw.Create(ctx, &models.Amenity{Name: "Pool"}, &models.Amenity{Name: "Wifi"})
	require.ErrorIs(t, err, ErrUniqueViolation)
	assert.NotErrorIs(t, err, ErrForeignKeyViolation)

	all, err := amenities.Select(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1, "failed batch must not leave partial rows")
	assert.Equal(t, first.ID, all[0].ID)
}

func TestGateway_UpdatePartial(t *testing.T) {
	db := setupSQLite(t)
	gw := NewGateway(db, "sqlite3")
	places := NewFinder[models.Place](db, "sqlite3", "places")
	ctx := context.Background()

	_, _, place := seedPlace(t, gw)
	before := *place

	gw.now = func() time.Time { return before.UpdatedAt.Add(time.Second) }

	err := gw.Update(ctx, place, map[string]any{
		"name":       "Big Loft",
		"max_guests": 5,
		"unknown":    "ignored",
		"id":         "hijack",
		"created_at": "2000-01-01T00:00:00Z",
	})
	require.NoError(t, err)

	stored, err := places.Get(ctx, goqu.Ex{"id": before.ID})
	require.NoError(t, err)
	require.NotNil(t, stored)

	assert.Equal(t, "Big Loft", stored.Name)
	assert.Equal(t, 5, stored.MaxGuests)
	assert.Equal(t, before.Description, stored.Description)
	assert.Equal(t, before.PricePerNight, stored.PricePerNight)
	assert.Equal(t, before.ID, stored.ID)
	assert.True(t, before.CreatedAt.Equal(stored.CreatedAt))
	assert.True(t, stored.UpdatedAt.After(before.UpdatedAt))
	assert.Equal(t, Read(place), Read(stored))
}

func TestGateway_UpdateTypeMismatch(t *testing.T) {
	db := setupSQLite(t)
	gw := NewGateway(db, "sqlite3")
	places := NewFinder[models.Place](db, "sqlite3", "places")
	ctx := context.Background()

	_, _, place := seedPlace(t, gw)

	err := gw.Update(ctx, place, map[string]any{"num_rooms": "three"})
	var fieldErr *FieldError
	require.True(t, errors.As(err, &fieldErr))
	assert.Equal(t, "num_rooms", fieldErr.Field)

	stored, err := places.Get(ctx, goqu.Ex{"id": place.ID})
	require.NoError(t, err)
	assert.Equal(t, 2, stored.NumRooms)
}

func TestGateway_DeleteCascades(t *testing.T) {
	db := setupSQLite(t)
	gw := NewGateway(db, "sqlite3")
	places := NewFinder[models.Place](db, "sqlite3", "places")
	reviews := NewFinder[models.Review](db, "sqlite3", "reviews")
	links := NewFinder[models.PlaceAmenity](db, "sqlite3", "place_amenities")
	ctx := context.Background()

	host, city, place := seedPlace(t, gw)
	guest := &models.User{Email: "guest@example.com", FirstName: "Bo", LastName: "Guest", PasswordHash: "x"}
	wifi := &models.Amenity{Name: "Wifi"}
	require.NoError(t, gw.Create(ctx, guest, wifi))
	require.NoError(t, gw.Create(ctx,
		&models.PlaceAmenity{PlaceID: place.ID, AmenityID: wifi.ID},
		&models.Review{Rating: 5, Comment: "great", UserID: guest.ID, PlaceID: place.ID},
	))

	t.Run("place removes reviews and links", func(t *testing.T) {
		require.NoError(t, gw.Delete(ctx, place))

		rs, err := reviews.Select(ctx, goqu.Ex{"place_id": place.ID})
		require.NoError(t, err)
		assert.Empty(t, rs)
		ls, err := links.Select(ctx)
		require.NoError(t, err)
		assert.Empty(t, ls)
	})

	t.Run("city removes places", func(t *testing.T) {
		other := &models.Place{Name: "Flat", Description: "d", Address: "a", HostID: guest.ID, CityID: city.ID,
			NumRooms: 1, NumBathrooms: 1, MaxGuests: 1}
		require.NoError(t, gw.Create(ctx, other))
		require.NoError(t, gw.Delete(ctx, city))

		ps, err := places.Select(ctx)
		require.NoError(t, err)
		assert.Empty(t, ps)
	})

	t.Run("user removes place and reviews", func(t *testing.T) {
		city2 := &models.City{CityName: "Lyon", CountryCode: "FR"}
		require.NoError(t, gw.Create(ctx, city2))
		hosted := &models.Place{Name: "House", Description: "d", Address: "a", HostID: host.ID, CityID: city2.ID,
			NumRooms: 1, NumBathrooms: 1, MaxGuests: 1}
		require.NoError(t, gw.Create(ctx, hosted))
		require.NoError(t, gw.Create(ctx, &models.Review{Rating: 4, Comment: "ok", UserID: guest.ID, PlaceID: hosted.ID}))

		require.NoError(t, gw.Delete(ctx, host))

		ps, err := places.Select(ctx, goqu.Ex{"host_id": host.ID})
		require.NoError(t, err)
		assert.Empty(t, ps)
		rs, err := reviews.Select(ctx)
		require.NoError(t, err)
		assert.Empty(t, rs)
	})
}

func TestGateway_ConstraintViolations(t *testing.T) {
	db := setupSQLite(t)
	gw := NewGateway(db, "sqlite3")
	ctx := context.Background()

	host, city, place := seedPlace(t, gw)

	tests := []struct {
		name    string
		run     func() error
		wantErr error
	}{
		{
			name: "duplicate email",
			run: func() error {
				return gw.Create(ctx, &models.User{Email: host.Email, FirstName: "Al", LastName: "Dup", PasswordHash: "x"})
			},
			wantErr: ErrUniqueViolation,
		},
		{
			name: "second place for host",
			run: func() error {
				return gw.Create(ctx, &models.Place{Name: "Flat", HostID: host.ID, CityID: city.ID})
			},
			wantErr: ErrUniqueViolation,
		},
		{
			name: "duplicate amenity link",
			run: func() error {
				wifi := &models.Amenity{Name: "Wifi"}
				link := func() models.Entity { return &models.PlaceAmenity{PlaceID: place.ID, AmenityID: wifi.ID} }
				if err := gw.Create(ctx, wifi, link()); err != nil {
					return err
				}
				return gw.Create(ctx, link())
			},
			wantErr: ErrUniqueViolation,
		},
		{
			name: "review by missing user",
			run: func() error {
				return gw.Create(ctx, &models.Review{Rating: 3, Comment: "ok", UserID: "gone", PlaceID: place.ID})
			},
			wantErr: ErrForeignKeyViolation,
		},
		{
			name: "rename onto existing email",
			run: func() error {
				other := &models.User{Email: "other@example.com", FirstName: "Bo", LastName: "Other", PasswordHash: "x"}
				if err := gw.Create(ctx, other); err != nil {
					return err
				}
				return gw.Update(ctx, other, map[string]any{"email": host.Email})
			},
			wantErr: ErrUniqueViolation,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.run(), tt.wantErr)
		})
	}
}

func TestConstraintError_Postgres(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr error
	}{
		{name: "unique", err: &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"}, wantErr: ErrUniqueViolation},
		{name: "foreign key", err: &pgconn.PgError{Code: "23503"}, wantErr: ErrForeignKeyViolation},
		{name: "other sqlstate", err: &pgconn.PgError{Code: "40001"}},
		{name: "not a driver error", err: sql.ErrConnDone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := constraintError(fmt.Errorf("exec: %w", tt.err))
			assert.ErrorIs(t, got, tt.err, "driver error stays in the chain")
			if tt.wantErr == nil {
				assert.NotErrorIs(t, got, ErrUniqueViolation)
				assert.NotErrorIs(t, got, ErrForeignKeyViolation)
				return
			}
			assert.ErrorIs(t, got, tt.wantErr)
		})
	}
	assert.NoError(t, constraintError(nil))
}

func TestGateway_RollbackOnExecError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	gw := NewGateway(sqlx.NewDb(db, "sqlmock"), "postgres")

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "amenities"`).WillReturnError(sql.ErrConnDone)
	mock.ExpectRollback()

	err = gw.Create(context.Background(), &models.Amenity{Name: "Wifi"})
	assert.ErrorIs(t, err, sql.ErrConnDone)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGateway_CommitError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	gw := NewGateway(sqlx.NewDb(db, "sqlmock"), "postgres")
	amenity := &models.Amenity{Base: models.Base{ID: "a-1"}, Name: "Wifi"}

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "amenities"`).
		WithArgs("a-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit().WillReturnError(sql.ErrTxDone)

	err = gw.Delete(context.Background(), amenity)
	assert.ErrorIs(t, err, sql.ErrTxDone)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGateway_BeginError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	gw := NewGateway(sqlx.NewDb(db, "sqlmock"), "postgres")
	mock.ExpectBegin().WillReturnError(sql.ErrConnDone)

	err = gw.Update(context.Background(), &models.Amenity{Base: models.Base{ID: "a-1"}}, map[string]any{"name": "Pool"})
	assert.ErrorIs(t, err, sql.ErrConnDone)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestColumnNames(t *testing.T) {
	assert.Equal(t, []string{"id", "created_at", "updated_at", "rating", "comment", "user_id", "place_id"},
		ColumnNames[models.Review]())
	assert.Equal(t, []string{"name", "code"}, ColumnNames[models.Country]())
}
