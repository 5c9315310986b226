package listings

import (
	"context"
	"testing"
	"time"

	"roost-backend/internal/domain"
	"roost-backend/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupStore(t *testing.T) *GormStore {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Listing{}))
	return &GormStore{DB: db}
}

func newListing(hostID uuid.UUID, title string) *models.Listing {
	return &models.Listing{
		HostID:        hostID,
		Title:         title,
		Location:      "Downtown",
		PricePerNight: decimal.RequireFromString("35.00"),
	}
}

func TestInsert_AssignsIDAndTimestamps(t *testing.T) {
	s := setupStore(t)
	l := newListing(uuid.New(), "Cozy studio")

	require.NoError(t, s.Insert(context.Background(), l))
	assert.NotEqual(t, uuid.Nil, l.ListingID)
	assert.False(t, l.CreatedAt.IsZero())
	assert.False(t, l.UpdatedAt.IsZero())
}

func TestInsert_MissingTitle(t *testing.T) {
	s := setupStore(t)
	l := newListing(uuid.New(), "")

	err := s.Insert(context.Background(), l)
	require.Error(t, err)
	ve, ok := domain.IsValidation(err)
	require.True(t, ok)
	assert.Equal(t, "title", ve.Field)
}

func TestInsert_MissingLocation(t *testing.T) {
	s := setupStore(t)
	l := newListing(uuid.New(), "Cozy studio")
	l.Location = ""

	err := s.Insert(context.Background(), l)
	require.Error(t, err)
	ve, ok := domain.IsValidation(err)
	require.True(t, ok)
	assert.Equal(t, "location", ve.Field)
}

func TestInsert_NegativePrice(t *testing.T) {
	s := setupStore(t)
	l := newListing(uuid.New(), "Cozy studio")
	l.PricePerNight = decimal.RequireFromString("-1.00")

	err := s.Insert(context.Background(), l)
	require.Error(t, err)
	ve, ok := domain.IsValidation(err)
	require.True(t, ok)
	assert.Equal(t, "price_per_night", ve.Field)
}

func TestInsert_TooManyDecimalPlaces(t *testing.T) {
	s := setupStore(t)
	l := newListing(uuid.New(), "Cozy studio")
	l.PricePerNight = decimal.RequireFromString("35.001")

	err := s.Insert(context.Background(), l)
	require.Error(t, err)
	ve, ok := domain.IsValidation(err)
	require.True(t, ok)
	assert.Equal(t, "price_per_night", ve.Field)
}

func TestGetByID_NotFound(t *testing.T) {
	s := setupStore(t)
	_, err := s.GetByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domain.ErrListingNotFound)
}

func TestList_OrdersByCreationDesc(t *testing.T) {
	s := setupStore(t)
	hostID := uuid.New()
	titles := []string{"first", "second", "third"}
	for _, title := range titles {
		require.NoError(t, s.Insert(context.Background(), newListing(hostID, title)))
		time.Sleep(5 * time.Millisecond)
	}

	out, err := s.List(context.Background(), Filter{})
	require.NoError(t, err)
	require.Len(t, out, 3)
	assert.Equal(t, "third", out[0].Title)
	assert.Equal(t, "second", out[1].Title)
	assert.Equal(t, "first", out[2].Title)
}

func TestList_FilterByHost(t *testing.T) {
	s := setupStore(t)
	hostA := uuid.New()
	hostB := uuid.New()
	require.NoError(t, s.Insert(context.Background(), newListing(hostA, "A's place")))
	require.NoError(t, s.Insert(context.Background(), newListing(hostB, "B's place")))

	out, err := s.List(context.Background(), Filter{HostID: hostA})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "A's place", out[0].Title)
}

func TestList_FilterByPriceRange(t *testing.T) {
	s := setupStore(t)
	hostID := uuid.New()
	cheap := newListing(hostID, "cheap")
	cheap.PricePerNight = decimal.RequireFromString("20.00")
	pricey := newListing(hostID, "pricey")
	pricey.PricePerNight = decimal.RequireFromString("90.00")
	require.NoError(t, s.Insert(context.Background(), cheap))
	require.NoError(t, s.Insert(context.Background(), pricey))

	min := decimal.RequireFromString("50.00")
	out, err := s.List(context.Background(), Filter{MinPrice: &min})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "pricey", out[0].Title)
}

func TestUpdate_RefreshesUpdatedAt(t *testing.T) {
	s := setupStore(t)
	l := newListing(uuid.New(), "Cozy studio")
	require.NoError(t, s.Insert(context.Background(), l))
	created := l.UpdatedAt
	time.Sleep(5 * time.Millisecond)

	out, err := s.Update(context.Background(), l.ListingID, map[string]interface{}{"title": "Renamed"})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", out.Title)
	assert.True(t, out.UpdatedAt.After(created))
	assert.Equal(t, l.CreatedAt.Unix(), out.CreatedAt.Unix())
}

func TestUpdate_NotFound(t *testing.T) {
	s := setupStore(t)
	_, err := s.Update(context.Background(), uuid.New(), map[string]interface{}{"title": "x"})
	assert.ErrorIs(t, err, domain.ErrListingNotFound)
}

func TestUpdate_RejectsEmptyTitle(t *testing.T) {
	s := setupStore(t)
	l := newListing(uuid.New(), "Cozy studio")
	require.NoError(t, s.Insert(context.Background(), l))

	_, err := s.Update(context.Background(), l.ListingID, map[string]interface{}{"title": ""})
	require.Error(t, err)
	ve, ok := domain.IsValidation(err)
	require.True(t, ok)
	assert.Equal(t, "title", ve.Field)
}

func TestUpdate_HostIsImmutable(t *testing.T) {
	s := setupStore(t)
	hostID := uuid.New()
	l := newListing(hostID, "Cozy studio")
	require.NoError(t, s.Insert(context.Background(), l))

	out, err := s.Update(context.Background(), l.ListingID, map[string]interface{}{
		"host_id": uuid.New(),
		"title":   "Renamed",
	})
	require.NoError(t, err)
	assert.Equal(t, hostID, out.HostID)
	assert.Equal(t, "Renamed", out.Title)
}

func TestDelete_ThenGetNotFound(t *testing.T) {
	s := setupStore(t)
	l := newListing(uuid.New(), "Cozy studio")
	require.NoError(t, s.Insert(context.Background(), l))

	require.NoError(t, s.Delete(context.Background(), l.ListingID))
	_, err := s.GetByID(context.Background(), l.ListingID)
	assert.ErrorIs(t, err, domain.ErrListingNotFound)
}

func TestDelete_RepeatedReportsNotFound(t *testing.T) {
	s := setupStore(t)
	l := newListing(uuid.New(), "Cozy studio")
	require.NoError(t, s.Insert(context.Background(), l))

	require.NoError(t, s.Delete(context.Background(), l.ListingID))
	assert.ErrorIs(t, s.Delete(context.Background(), l.ListingID), domain.ErrListingNotFound)
	assert.ErrorIs(t, s.Delete(context.Background(), l.ListingID), domain.ErrListingNotFound)
}
