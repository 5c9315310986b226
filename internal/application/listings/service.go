package listings

import (
	"context"

	"roost-backend/internal/application/policies/ownership"
	"roost-backend/internal/domain"
	"roost-backend/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// Service is the authorized CRUD contract over the listing store. Reads are
// open; every mutation is gated by the ownership policy, with the host bound
// to the creating actor at create time.
type Service struct {
	Store Store
}

// CreateListingInput carries the client-writable fields of a new listing.
// Host, id and timestamps are not representable here on purpose.
type CreateListingInput struct {
	Title         string
	Description   string
	Location      string
	PricePerNight decimal.Decimal
	MaxGuests     int
	Amenities     []string
	Available     *bool
}

// UpdateListingInput carries partial changes; nil fields are left untouched.
type UpdateListingInput struct {
	Title         *string
	Description   *string
	Location      *string
	PricePerNight *decimal.Decimal
	MaxGuests     *int
	Amenities     *[]string
	Available     *bool
}

// Create inserts a new listing owned by actor. The host is always the
// creating actor, regardless of anything a client submitted upstream.
func (s *Service) Create(ctx context.Context, actor domain.Actor, in CreateListingInput) (*models.Listing, error) {
	if !actor.Authenticated {
		return nil, domain.ErrAuthenticationRequired
	}

	maxGuests := in.MaxGuests
	if maxGuests == 0 {
		maxGuests = 2
	}
	available := true
	if in.Available != nil {
		available = *in.Available
	}

	listing := &models.Listing{
		HostID:        actor.ID,
		Title:         in.Title,
		Description:   in.Description,
		Location:      in.Location,
		PricePerNight: in.PricePerNight,
		MaxGuests:     maxGuests,
		Amenities:     datatypes.NewJSONSlice(in.Amenities),
		Available:     available,
	}
	if err := s.Store.Insert(ctx, listing); err != nil {
		return nil, err
	}
	return s.Store.GetByID(ctx, listing.ListingID)
}

// Get fetches a listing by id. No authorization check: reads are public.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*models.Listing, error) {
	return s.Store.GetByID(ctx, id)
}

// List returns listings matching the filter, most recently created first.
func (s *Service) List(ctx context.Context, f Filter) ([]models.Listing, error) {
	return s.Store.List(ctx, f)
}

// Update applies partial changes to a listing after the ownership check.
func (s *Service) Update(ctx context.Context, actor domain.Actor, id uuid.UUID, in UpdateListingInput) (*models.Listing, error) {
	listing, err := s.Store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !ownership.CanWrite(actor, listing) {
		return nil, domain.ErrPermissionDenied
	}

	changes := map[string]interface{}{}
	if in.Title != nil {
		changes["title"] = *in.Title
	}
	if in.Description != nil {
		changes["description"] = *in.Description
	}
	if in.Location != nil {
		changes["location"] = *in.Location
	}
	if in.PricePerNight != nil {
		changes["price_per_night"] = *in.PricePerNight
	}
	if in.MaxGuests != nil {
		changes["max_guests"] = *in.MaxGuests
	}
	if in.Amenities != nil {
		changes["amenities"] = datatypes.NewJSONSlice(*in.Amenities)
	}
	if in.Available != nil {
		changes["available"] = *in.Available
	}

	return s.Store.Update(ctx, id, changes)
}

// Delete removes a listing after the ownership check.
func (s *Service) Delete(ctx context.Context, actor domain.Actor, id uuid.UUID) error {
	listing, err := s.Store.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !ownership.CanWrite(actor, listing) {
		return domain.ErrPermissionDenied
	}
	return s.Store.Delete(ctx, id)
}
