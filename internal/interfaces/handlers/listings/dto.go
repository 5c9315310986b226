package listings

import (
	"time"

	"roost-backend/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ListingResponse is the explicit allow-list of fields a listing exposes on
// the wire. host_display_name is derived and read-only.
type ListingResponse struct {
	ID              uuid.UUID       `json:"id"`
	Host            uuid.UUID       `json:"host"`
	HostDisplayName string          `json:"host_display_name"`
	Title           string          `json:"title"`
	Description     string          `json:"description"`
	Location        string          `json:"location"`
	PricePerNight   decimal.Decimal `json:"price_per_night"`
	MaxGuests       int             `json:"max_guests"`
	Amenities       []string        `json:"amenities"`
	Available       bool            `json:"available"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// CreateListingRequest accepts only client-writable fields. id, host,
// host_display_name and timestamps submitted by a client are dropped by
// construction: they are not representable here.
type CreateListingRequest struct {
	Title         string          `json:"title"`
	Description   string          `json:"description"`
	Location      string          `json:"location"`
	PricePerNight decimal.Decimal `json:"price_per_night"`
	MaxGuests     int             `json:"max_guests"`
	Amenities     []string        `json:"amenities"`
	Available     *bool           `json:"available"`
}

// UpdateListingRequest carries partial changes; absent fields stay untouched.
type UpdateListingRequest struct {
	Title         *string          `json:"title"`
	Description   *string          `json:"description"`
	Location      *string          `json:"location"`
	PricePerNight *decimal.Decimal `json:"price_per_night"`
	MaxGuests     *int             `json:"max_guests"`
	Amenities     *[]string        `json:"amenities"`
	Available     *bool            `json:"available"`
}

func toResponse(l *models.Listing) ListingResponse {
	displayName := ""
	if l.Host != nil {
		displayName = l.Host.Username
	}
	return ListingResponse{
		ID:              l.ListingID,
		Host:            l.HostID,
		HostDisplayName: displayName,
		Title:           l.Title,
		Description:     l.Description,
		Location:        l.Location,
		PricePerNight:   l.PricePerNight,
		MaxGuests:       l.MaxGuests,
		Amenities:       []string(l.Amenities),
		Available:       l.Available,
		CreatedAt:       l.CreatedAt,
		UpdatedAt:       l.UpdatedAt,
	}
}

func toResponseList(ls []models.Listing) []ListingResponse {
	out := make([]ListingResponse, 0, len(ls))
	for i := range ls {
		out = append(out, toResponse(&ls[i]))
	}
	return out
}
