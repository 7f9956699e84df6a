package domain

import (
	"errors"
	"time"
)

var ErrReviewNotFound = errors.New("review not found")
var ErrInvalidReviewID = errors.New("invalid review ID")
var ErrDuplicateReview = errors.New("business already reviewed by this user")
var ErrNotReviewOwner = errors.New("not the review owner")
var ErrInvalidRating = errors.New("rating must be between 1 and 5")
var ErrEmptyReviewText = errors.New("review text is required")
var ErrAdminRequired = errors.New("admin access required")

const (
	MinRating = 1
	MaxRating = 5
)

// Review is a single user's review of a business. At most one review exists
// per (BusinessID, UserID) pair.
//
// Username is a best-effort enrichment resolved from the author's user record
// at read time; it is never persisted with the review.
type Review struct {
	ID         string    `json:"id" bson:"_id,omitempty"`
	BusinessID string    `json:"businessId" bson:"businessId"`
	UserID     string    `json:"userId" bson:"userId"`
	Rating     int       `json:"rating" bson:"rating"`
	Text       string    `json:"text" bson:"text"`
	CreatedAt  time.Time `json:"createdAt" bson:"createdAt"`
	Username   string    `json:"username,omitempty" bson:"-"`
}

// ValidRating reports whether r is inside the accepted rating scale.
func ValidRating(r int) bool {
	return r >= MinRating && r <= MaxRating
}
