package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Listing is a rentable property. Every listing has exactly one host, bound
// at creation; this layer never reassigns it.
type Listing struct {
	ListingID     uuid.UUID                   `gorm:"column:listing_id;type:uuid;primaryKey" json:"listing_id"`
	HostID        uuid.UUID                   `gorm:"column:host_id;type:uuid;not null;index" json:"host_id"`
	Host          *User                       `gorm:"foreignKey:HostID;references:UserID" json:"-"`
	Title         string                      `gorm:"column:title;size:200;not null" json:"title"`
	Description   string                      `gorm:"column:description;type:text" json:"description"`
	Location      string                      `gorm:"column:location;size:200;not null" json:"location"`
	PricePerNight decimal.Decimal             `gorm:"column:price_per_night;type:decimal(10,2);not null" json:"price_per_night"`
	MaxGuests     int                         `gorm:"column:max_guests;not null" json:"max_guests"`
	Amenities     datatypes.JSONSlice[string] `gorm:"column:amenities" json:"amenities"`
	Available     bool                        `gorm:"column:available;not null" json:"available"`
	CreatedAt     time.Time                   `json:"created_at"`
	UpdatedAt     time.Time                   `json:"updated_at"`
}

func (Listing) TableName() string {
	return "listings"
}

// BeforeCreate sets listing_id if not already set.
func (l *Listing) BeforeCreate(tx *gorm.DB) error {
	if l.ListingID == uuid.Nil {
		l.ListingID = uuid.New()
	}
	return nil
}
