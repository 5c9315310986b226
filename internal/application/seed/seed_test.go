package seed

import (
	"context"
	"testing"

	"roost-backend/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupSeedDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Listing{}, &models.Booking{}, &models.Review{}))
	return db
}

func TestRun_CreatesSampleData(t *testing.T) {
	db := setupSeedDB(t)

	require.NoError(t, Run(context.Background(), db, Options{Count: 3, Reviews: 1, Bookings: 1}))

	var listings []models.Listing
	require.NoError(t, db.Find(&listings).Error)
	require.Len(t, listings, 3)

	var host models.User
	require.NoError(t, db.Where("username = ?", HostUsername).First(&host).Error)
	for _, l := range listings {
		assert.Equal(t, host.UserID, l.HostID)
	}

	var bookings, reviews int64
	db.Model(&models.Booking{}).Count(&bookings)
	db.Model(&models.Review{}).Count(&reviews)
	assert.Equal(t, int64(3), bookings)
	assert.Equal(t, int64(3), reviews)
}

func TestRun_BookingShape(t *testing.T) {
	db := setupSeedDB(t)
	require.NoError(t, Run(context.Background(), db, Options{Count: 1, Reviews: 0, Bookings: 1}))

	var guest models.User
	require.NoError(t, db.Where("username = ?", GuestUsername).First(&guest).Error)

	var b models.Booking
	require.NoError(t, db.First(&b).Error)
	assert.Equal(t, guest.UserID, b.GuestID)
	assert.Equal(t, models.BookingStatusConfirmed, b.Status)
	assert.True(t, b.EndDate.After(b.StartDate))

	var l models.Listing
	require.NoError(t, db.First(&l).Error)
	assert.True(t, b.TotalPrice.Equal(l.PricePerNight.Mul(decimal.NewFromInt(2))))
}

func TestRun_FixedUsersCreatedOnce(t *testing.T) {
	db := setupSeedDB(t)

	require.NoError(t, Run(context.Background(), db, Options{Count: 3, Reviews: 1, Bookings: 1}))
	require.NoError(t, Run(context.Background(), db, Options{Count: 3, Reviews: 1, Bookings: 1}))

	var users int64
	db.Model(&models.User{}).Count(&users)
	assert.Equal(t, int64(2), users)
}

func TestRun_CountCappedAtSamples(t *testing.T) {
	db := setupSeedDB(t)
	require.NoError(t, Run(context.Background(), db, Options{Count: 50}))

	var listings int64
	db.Model(&models.Listing{}).Count(&listings)
	assert.Equal(t, int64(3), listings)
}

func TestRun_RejectsNegativeCounts(t *testing.T) {
	db := setupSeedDB(t)
	assert.Error(t, Run(context.Background(), db, Options{Count: -1}))
}

func TestRun_AllOrNothing(t *testing.T) {
	db := setupSeedDB(t)
	// Make the booking step fail partway through the run.
	require.NoError(t, db.Migrator().DropTable(&models.Booking{}))

	err := Run(context.Background(), db, Options{Count: 3, Reviews: 1, Bookings: 1})
	require.Error(t, err)

	var listings, users int64
	db.Model(&models.Listing{}).Count(&listings)
	db.Model(&models.User{}).Count(&users)
	assert.Equal(t, int64(0), listings)
	assert.Equal(t, int64(0), users)
}
