package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Booking statuses.
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
)

// Booking is a guest's stay at a listing. Only the seed generator writes
// bookings in this service; no lifecycle is enforced here.
type Booking struct {
	BookingID  uuid.UUID       `gorm:"column:booking_id;type:uuid;primaryKey" json:"booking_id"`
	ListingID  uuid.UUID       `gorm:"column:listing_id;type:uuid;not null;index" json:"listing_id"`
	GuestID    uuid.UUID       `gorm:"column:guest_id;type:uuid;not null;index" json:"guest_id"`
	StartDate  time.Time       `gorm:"column:start_date;not null" json:"start_date"`
	EndDate    time.Time       `gorm:"column:end_date;not null" json:"end_date"`
	TotalPrice decimal.Decimal `gorm:"column:total_price;type:decimal(10,2);not null" json:"total_price"`
	Status     string          `gorm:"column:status;size:20;default:'pending'" json:"status"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

func (Booking) TableName() string {
	return "bookings"
}

func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.BookingID == uuid.Nil {
		b.BookingID = uuid.New()
	}
	return nil
}
