package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Review is a guest's rating of a listing, unique per (listing, user). Only
// the seed generator writes reviews in this service.
type Review struct {
	ReviewID  uuid.UUID `gorm:"column:review_id;type:uuid;primaryKey" json:"review_id"`
	ListingID uuid.UUID `gorm:"column:listing_id;type:uuid;not null;uniqueIndex:idx_reviews_listing_user" json:"listing_id"`
	UserID    uuid.UUID `gorm:"column:user_id;type:uuid;not null;uniqueIndex:idx_reviews_listing_user" json:"user_id"`
	Rating    int       `gorm:"column:rating;not null" json:"rating"`
	Comment   string    `gorm:"column:comment;type:text" json:"comment"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Review) TableName() string {
	return "reviews"
}

func (r *Review) BeforeCreate(tx *gorm.DB) error {
	if r.ReviewID == uuid.Nil {
		r.ReviewID = uuid.New()
	}
	return nil
}
