package seed

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"roost-backend/internal/application/listings"
	"roost-backend/internal/domain"
	"roost-backend/internal/models"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Options controls how much sample data a seeding run produces.
type Options struct {
	Count    int // number of sample listings (max len(sampleListings))
	Reviews  int // reviews per listing
	Bookings int // bookings per listing
}

// Fixed sample users; lookup-or-create by username keeps reruns idempotent.
const (
	HostUsername  = "host_user"
	GuestUsername = "guest_user"
	seedPassword  = "password"
)

var sampleListings = []listings.CreateListingInput{
	{
		Title:         "Cozy studio near downtown",
		Description:   "Compact, clean studio perfect for solo travelers.",
		Location:      "Downtown",
		PricePerNight: decimal.RequireFromString("35.00"),
		MaxGuests:     2,
	},
	{
		Title:         "Spacious 2BR apartment",
		Description:   "Two bedroom apartment with kitchen and balcony.",
		Location:      "Uptown",
		PricePerNight: decimal.RequireFromString("85.00"),
		MaxGuests:     4,
	},
	{
		Title:         "Countryside cottage",
		Description:   "Peaceful cottage with a garden and river views.",
		Location:      "Countryside",
		PricePerNight: decimal.RequireFromString("60.00"),
		MaxGuests:     3,
	},
}

var amenitiesPool = []string{"WiFi", "Air Conditioning", "Kitchen", "Parking", "Washer", "Heating"}

var reviewComments = []string{
	"Great place!",
	"Very clean and cozy.",
	"Would stay again.",
	"Loved the location!",
}

// Run populates the database with sample listings, bookings, and reviews.
// The whole run executes inside one transaction: if any step fails, no
// partial sample data remains. Listings are created through the listing
// service, so seeding obeys the same contract as any other caller.
func Run(ctx context.Context, db *gorm.DB, opts Options) error {
	if opts.Count < 0 || opts.Reviews < 0 || opts.Bookings < 0 {
		return errors.New("seed counts must not be negative")
	}

	return db.Transaction(func(tx *gorm.DB) error {
		host, err := getOrCreateUser(tx, HostUsername, "host@example.com")
		if err != nil {
			return err
		}
		guest, err := getOrCreateUser(tx, GuestUsername, "guest@example.com")
		if err != nil {
			return err
		}

		svc := &listings.Service{Store: &listings.GormStore{DB: tx}}
		actor := domain.UserActor(host.UserID, host.Username)

		count := opts.Count
		if count > len(sampleListings) {
			count = len(sampleListings)
		}
		for i := 0; i < count; i++ {
			in := sampleListings[i]
			in.Amenities = randomAmenities()

			listing, err := svc.Create(ctx, actor, in)
			if err != nil {
				return err
			}
			log.Info().Str("title", listing.Title).Msg("Created listing")

			if err := createBookings(tx, listing, guest, opts.Bookings, i+1); err != nil {
				return err
			}
			if err := createReviews(tx, listing, guest, opts.Reviews); err != nil {
				return err
			}
		}

		log.Info().Int("listings", count).Msg("Seeding complete")
		return nil
	})
}

// getOrCreateUser finds a user by username or creates it with the default
// seed password. Created at most once even across repeated runs.
func getOrCreateUser(tx *gorm.DB, username, email string) (*models.User, error) {
	var u models.User
	err := tx.Where("username = ?", username).First(&u).Error
	if err == nil {
		return &u, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(seedPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	u = models.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := tx.Create(&u).Error; err != nil {
		return nil, err
	}
	log.Info().Str("username", username).Msg("Created user")
	return &u, nil
}

func createBookings(tx *gorm.DB, listing *models.Listing, guest *models.User, count, offset int) error {
	for j := 0; j < count; j++ {
		start := time.Now().AddDate(0, 0, offset+j*3).Truncate(24 * time.Hour)
		end := start.AddDate(0, 0, 2)
		b := models.Booking{
			ListingID:  listing.ListingID,
			GuestID:    guest.UserID,
			StartDate:  start,
			EndDate:    end,
			TotalPrice: listing.PricePerNight.Mul(decimal.NewFromInt(2)),
			Status:     models.BookingStatusConfirmed,
		}
		if err := tx.Create(&b).Error; err != nil {
			return err
		}
		log.Info().Str("title", listing.Title).Time("start", start).Msg("Booking added")
	}
	return nil
}

func createReviews(tx *gorm.DB, listing *models.Listing, guest *models.User, count int) error {
	for k := 0; k < count; k++ {
		r := models.Review{
			Rating:  3 + rand.Intn(3),
			Comment: reviewComments[rand.Intn(len(reviewComments))],
		}
		// One review per guest per listing; reruns update in place.
		err := tx.Where(models.Review{ListingID: listing.ListingID, UserID: guest.UserID}).
			Assign(models.Review{Rating: r.Rating, Comment: r.Comment}).
			FirstOrCreate(&models.Review{}).Error
		if err != nil {
			return err
		}
		log.Info().Str("title", listing.Title).Msg("Review added")
	}
	return nil
}

func randomAmenities() []string {
	n := 2 + rand.Intn(3)
	picked := rand.Perm(len(amenitiesPool))[:n]
	out := make([]string, 0, n)
	for _, i := range picked {
		out = append(out, amenitiesPool[i])
	}
	return out
}
