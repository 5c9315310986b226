package listings

import (
	"context"
	"errors"

	"roost-backend/internal/domain"
	"roost-backend/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Filter narrows List results. The zero value matches everything.
type Filter struct {
	HostID   uuid.UUID
	Location string
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
}

// Store is the persistence boundary for listings. Mutations are explicit
// calls; there is no save-on-mutate behavior anywhere above this interface.
type Store interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Listing, error)
	List(ctx context.Context, f Filter) ([]models.Listing, error)
	Insert(ctx context.Context, l *models.Listing) error
	Update(ctx context.Context, id uuid.UUID, changes map[string]interface{}) (*models.Listing, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// GormStore implements Store on a GORM DB (Postgres in prod, sqlite in tests).
type GormStore struct {
	DB *gorm.DB
}

func (s *GormStore) GetByID(ctx context.Context, id uuid.UUID) (*models.Listing, error) {
	var l models.Listing
	err := s.DB.WithContext(ctx).Preload("Host").Where("listing_id = ?", id).First(&l).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrListingNotFound
		}
		return nil, err
	}
	return &l, nil
}

// List returns listings ordered by creation time, most recent first.
func (s *GormStore) List(ctx context.Context, f Filter) ([]models.Listing, error) {
	q := s.DB.WithContext(ctx).Preload("Host").Order("created_at DESC")
	if f.HostID != uuid.Nil {
		q = q.Where("host_id = ?", f.HostID)
	}
	if f.Location != "" {
		q = q.Where("location LIKE ?", "%"+f.Location+"%")
	}
	if f.MinPrice != nil {
		q = q.Where("price_per_night >= ?", f.MinPrice)
	}
	if f.MaxPrice != nil {
		q = q.Where("price_per_night <= ?", f.MaxPrice)
	}
	var out []models.Listing
	if err := q.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (s *GormStore) Insert(ctx context.Context, l *models.Listing) error {
	if l.Title == "" {
		return domain.NewValidationError("title", "is required")
	}
	if l.Location == "" {
		return domain.NewValidationError("location", "is required")
	}
	if err := validatePrice(l.PricePerNight); err != nil {
		return err
	}
	if l.MaxGuests < 0 {
		return domain.NewValidationError("max_guests", "must not be negative")
	}
	return s.DB.WithContext(ctx).Create(l).Error
}

func (s *GormStore) Update(ctx context.Context, id uuid.UUID, changes map[string]interface{}) (*models.Listing, error) {
	// host is immutable after creation
	delete(changes, "host_id")

	if title, ok := changes["title"].(string); ok && title == "" {
		return nil, domain.NewValidationError("title", "is required")
	}
	if loc, ok := changes["location"].(string); ok && loc == "" {
		return nil, domain.NewValidationError("location", "is required")
	}
	if price, ok := changes["price_per_night"].(decimal.Decimal); ok {
		if err := validatePrice(price); err != nil {
			return nil, err
		}
	}

	var l models.Listing
	err := s.DB.WithContext(ctx).Where("listing_id = ?", id).First(&l).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrListingNotFound
		}
		return nil, err
	}

	if len(changes) > 0 {
		if err := s.DB.WithContext(ctx).Model(&l).Updates(changes).Error; err != nil {
			return nil, err
		}
	}
	return s.GetByID(ctx, id)
}

// Delete removes the row. Repeated deletes of the same id keep reporting
// ErrListingNotFound after the first.
func (s *GormStore) Delete(ctx context.Context, id uuid.UUID) error {
	res := s.DB.WithContext(ctx).Where("listing_id = ?", id).Delete(&models.Listing{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrListingNotFound
	}
	return nil
}

// validatePrice enforces the fixed-point price invariant: non-negative with
// at most 2 fractional digits.
func validatePrice(p decimal.Decimal) error {
	if p.IsNegative() {
		return domain.NewValidationError("price_per_night", "must not be negative")
	}
	if p.Exponent() < -2 {
		return domain.NewValidationError("price_per_night", "must have at most 2 decimal places")
	}
	return nil
}
