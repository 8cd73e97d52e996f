package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"rentora/internal/infra"
	"rentora/internal/models/db_models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })
	require.NoError(t, infra.Migrate(db))
	return db
}

func seedAccount(t *testing.T, db *gorm.DB, email string) *db_models.Account {
	t.Helper()
	acc := &db_models.Account{Name: "Host", Email: email, PasswordHash: "x", Role: db_models.RoleUser}
	require.NoError(t, NewAccountRepository(db).InsertTx(acc, context.Background()))
	return acc
}

func seedListing(t *testing.T, db *gorm.DB, owner uuid.UUID, category string, guests int) *db_models.Listing {
	t.Helper()
	l := &db_models.Listing{
		Title: category + " place", Description: "d", ImageSrc: "img", Category: category,
		RoomCount: 1, BathroomCount: 1, GuestCount: guests, LocationValue: "PT", Price: 100, UserID: owner,
	}
	_, err := NewListingRepository(db).Create(context.Background(), l)
	require.NoError(t, err)
	return l
}

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestAccountRepository_FindAndFavorites(t *testing.T) {
	db := newTestDB(t)
	repo := NewAccountRepository(db)
	ctx := context.Background()
	acc := seedAccount(t, db, "a@example.com")

	found, err := repo.FindByEmail(ctx, "a@example.com")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, acc.ID, found.ID)

	missing, err := repo.FindByEmail(ctx, "nobody@example.com")
	assert.NoError(t, err)
	assert.Nil(t, missing)

	require.NoError(t, repo.UpdateFavorites(ctx, acc.ID, []string{"l1", "l2"}))
	found, err = repo.FindById(ctx, acc.ID)
	require.NoError(t, err)
	assert.Equal(t, db_models.StringList{"l1", "l2"}, found.FavoriteIDs)

	assert.Error(t, repo.UpdateFavorites(ctx, uuid.New(), nil))
}

func TestListingRepository_GetWithUser(t *testing.T) {
	db := newTestDB(t)
	host := seedAccount(t, db, "h@example.com")
	l := seedListing(t, db, host.ID, "Beach", 2)
	repo := NewListingRepository(db)

	got, err := repo.GetByIDWithUser(context.Background(), l.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "h@example.com", got.User.Email)

	none, err := repo.GetByIDWithUser(context.Background(), uuid.New())
	assert.NoError(t, err)
	assert.Nil(t, none)
}

func TestListingRepository_ListFilters(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	host := seedAccount(t, db, "h@example.com")
	other := seedAccount(t, db, "o@example.com")
	beach := seedListing(t, db, host.ID, "Beach", 4)
	seedListing(t, db, host.ID, "Lake", 2)
	seedListing(t, db, other.ID, "Beach", 1)
	repo := NewListingRepository(db)

	all, err := repo.List(ctx, ListingQuery{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	mine, err := repo.List(ctx, ListingQuery{UserID: &host.ID})
	require.NoError(t, err)
	assert.Len(t, mine, 2)

	bigBeach, err := repo.List(ctx, ListingQuery{Category: "Beach", MinGuests: 3})
	require.NoError(t, err)
	require.Len(t, bigBeach, 1)
	assert.Equal(t, beach.ID, bigBeach[0].ID)

	byIDs, err := repo.List(ctx, ListingQuery{IDs: []uuid.UUID{}})
	require.NoError(t, err)
	assert.Empty(t, byIDs)

	paged, err := repo.List(ctx, ListingQuery{Page: 2, PageSize: 2})
	require.NoError(t, err)
	assert.Len(t, paged, 1)
}

func TestListingRepository_ListExcludesBookedListings(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	host := seedAccount(t, db, "h@example.com")
	guest := seedAccount(t, db, "g@example.com")
	booked := seedListing(t, db, host.ID, "Beach", 2)
	free := seedListing(t, db, host.ID, "Beach", 2)
	require.NoError(t, NewReservationRepository(db).CreateIfFree(ctx, &db_models.Reservation{
		UserID: guest.ID, ListingID: booked.ID,
		StartDate: date("2026-08-01"), EndDate: date("2026-08-05"), TotalPrice: 400,
	}))

	got, err := NewListingRepository(db).List(ctx, ListingQuery{
		FreeFrom: date("2026-08-03"), FreeUntil: date("2026-08-10"),
	})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, free.ID, got[0].ID)
}

func TestListingRepository_DeleteOwned(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	host := seedAccount(t, db, "h@example.com")
	l := seedListing(t, db, host.ID, "Beach", 2)
	repo := NewListingRepository(db)

	ok, err := repo.DeleteOwned(ctx, l.ID, uuid.New())
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = repo.DeleteOwned(ctx, l.ID, host.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	gone, err := repo.GetByIDWithUser(ctx, l.ID)
	assert.NoError(t, err)
	assert.Nil(t, gone)
}

func TestReservationRepository_CreateIfFree(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	host := seedAccount(t, db, "h@example.com")
	guest := seedAccount(t, db, "g@example.com")
	l := seedListing(t, db, host.ID, "Beach", 2)
	repo := NewReservationRepository(db)

	first := &db_models.Reservation{UserID: guest.ID, ListingID: l.ID,
		StartDate: date("2026-08-01"), EndDate: date("2026-08-05"), TotalPrice: 400}
	require.NoError(t, repo.CreateIfFree(ctx, first))

	clash := &db_models.Reservation{UserID: guest.ID, ListingID: l.ID,
		StartDate: date("2026-08-04"), EndDate: date("2026-08-06"), TotalPrice: 200}
	assert.ErrorIs(t, repo.CreateIfFree(ctx, clash), ErrOverlap)

	backToBack := &db_models.Reservation{UserID: guest.ID, ListingID: l.ID,
		StartDate: date("2026-08-05"), EndDate: date("2026-08-07"), TotalPrice: 200}
	assert.NoError(t, repo.CreateIfFree(ctx, backToBack))

	noListing := &db_models.Reservation{UserID: guest.ID, ListingID: uuid.New(),
		StartDate: date("2026-08-01"), EndDate: date("2026-08-02")}
	assert.Error(t, repo.CreateIfFree(ctx, noListing))
}

func TestReservationRepository_ListByAuthorAndDelete(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	host := seedAccount(t, db, "h@example.com")
	guest := seedAccount(t, db, "g@example.com")
	l := seedListing(t, db, host.ID, "Beach", 2)
	repo := NewReservationRepository(db)
	res := &db_models.Reservation{UserID: guest.ID, ListingID: l.ID,
		StartDate: date("2026-09-01"), EndDate: date("2026-09-03"), TotalPrice: 200}
	require.NoError(t, repo.CreateIfFree(ctx, res))

	forHost, err := repo.List(ctx, ReservationQuery{AuthorID: &host.ID})
	require.NoError(t, err)
	require.Len(t, forHost, 1)
	assert.Equal(t, l.ID, forHost[0].Listing.ID)

	trips, err := repo.List(ctx, ReservationQuery{UserID: &guest.ID})
	require.NoError(t, err)
	assert.Len(t, trips, 1)

	noneForGuestAsHost, err := repo.List(ctx, ReservationQuery{AuthorID: &guest.ID})
	require.NoError(t, err)
	assert.Empty(t, noneForGuestAsHost)

	require.NoError(t, repo.Delete(ctx, res.ID))
	got, err := repo.GetByID(ctx, res.ID)
	assert.NoError(t, err)
	assert.Nil(t, got)
}
