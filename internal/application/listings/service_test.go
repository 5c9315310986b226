package listings

import (
	"context"
	"testing"

	"roost-backend/internal/domain"
	"roost-backend/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupService(t *testing.T) (*Service, *gorm.DB) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Listing{}))
	return &Service{Store: &GormStore{DB: db}}, db
}

func cozyStudio() CreateListingInput {
	return CreateListingInput{
		Title:         "Cozy studio",
		Location:      "Downtown",
		PricePerNight: decimal.RequireFromString("35.00"),
	}
}

func TestCreate_BindsHostToActor(t *testing.T) {
	svc, _ := setupService(t)
	actor := domain.UserActor(uuid.New(), "host1")

	l, err := svc.Create(context.Background(), actor, cozyStudio())
	require.NoError(t, err)
	assert.Equal(t, actor.ID, l.HostID)
	assert.Equal(t, l.CreatedAt.Unix(), l.UpdatedAt.Unix())
}

func TestCreate_Anonymous(t *testing.T) {
	svc, db := setupService(t)

	_, err := svc.Create(context.Background(), domain.Anonymous(), cozyStudio())
	assert.ErrorIs(t, err, domain.ErrAuthenticationRequired)

	var count int64
	db.Model(&models.Listing{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestCreate_Defaults(t *testing.T) {
	svc, _ := setupService(t)
	actor := domain.UserActor(uuid.New(), "host1")

	l, err := svc.Create(context.Background(), actor, cozyStudio())
	require.NoError(t, err)
	assert.Equal(t, 2, l.MaxGuests)
	assert.True(t, l.Available)
}

func TestCreate_InvalidPrice(t *testing.T) {
	svc, _ := setupService(t)
	actor := domain.UserActor(uuid.New(), "host1")
	in := cozyStudio()
	in.PricePerNight = decimal.RequireFromString("-0.01")

	_, err := svc.Create(context.Background(), actor, in)
	require.Error(t, err)
	ve, ok := domain.IsValidation(err)
	require.True(t, ok)
	assert.Equal(t, "price_per_night", ve.Field)
}

func TestUpdate_ByHost(t *testing.T) {
	svc, _ := setupService(t)
	actor := domain.UserActor(uuid.New(), "host1")
	l, err := svc.Create(context.Background(), actor, cozyStudio())
	require.NoError(t, err)

	newPrice := decimal.RequireFromString("42.50")
	out, err := svc.Update(context.Background(), actor, l.ListingID, UpdateListingInput{PricePerNight: &newPrice})
	require.NoError(t, err)
	assert.True(t, out.PricePerNight.Equal(newPrice))
	assert.Equal(t, actor.ID, out.HostID)
}

func TestUpdate_ByNonHost(t *testing.T) {
	svc, _ := setupService(t)
	host1 := domain.UserActor(uuid.New(), "host1")
	host2 := domain.UserActor(uuid.New(), "host2")
	l, err := svc.Create(context.Background(), host1, cozyStudio())
	require.NoError(t, err)

	newPrice := decimal.RequireFromString("999.00")
	_, err = svc.Update(context.Background(), host2, l.ListingID, UpdateListingInput{PricePerNight: &newPrice})
	assert.ErrorIs(t, err, domain.ErrPermissionDenied)

	// The stored record is unchanged.
	got, err := svc.Get(context.Background(), l.ListingID)
	require.NoError(t, err)
	assert.True(t, got.PricePerNight.Equal(decimal.RequireFromString("35.00")))
}

func TestUpdate_Anonymous(t *testing.T) {
	svc, _ := setupService(t)
	host := domain.UserActor(uuid.New(), "host1")
	l, err := svc.Create(context.Background(), host, cozyStudio())
	require.NoError(t, err)

	title := "Hijacked"
	_, err = svc.Update(context.Background(), domain.Anonymous(), l.ListingID, UpdateListingInput{Title: &title})
	assert.ErrorIs(t, err, domain.ErrPermissionDenied)
}

func TestUpdate_MissingListing(t *testing.T) {
	svc, _ := setupService(t)
	actor := domain.UserActor(uuid.New(), "host1")
	title := "x"
	_, err := svc.Update(context.Background(), actor, uuid.New(), UpdateListingInput{Title: &title})
	assert.ErrorIs(t, err, domain.ErrListingNotFound)
}

func TestDelete_ByHost(t *testing.T) {
	svc, _ := setupService(t)
	actor := domain.UserActor(uuid.New(), "host1")
	l, err := svc.Create(context.Background(), actor, cozyStudio())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), actor, l.ListingID))
	_, err = svc.Get(context.Background(), l.ListingID)
	assert.ErrorIs(t, err, domain.ErrListingNotFound)
	// Deleting again keeps reporting NotFound.
	assert.ErrorIs(t, svc.Delete(context.Background(), actor, l.ListingID), domain.ErrListingNotFound)
}

func TestDelete_ByNonHost(t *testing.T) {
	svc, _ := setupService(t)
	host1 := domain.UserActor(uuid.New(), "host1")
	host2 := domain.UserActor(uuid.New(), "host2")
	l, err := svc.Create(context.Background(), host1, cozyStudio())
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Delete(context.Background(), host2, l.ListingID), domain.ErrPermissionDenied)

	_, err = svc.Get(context.Background(), l.ListingID)
	assert.NoError(t, err)
}
