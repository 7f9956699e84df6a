package domain

import (
	"errors"
	"time"
)

var ErrBusinessNotFound = errors.New("business not found")
var ErrInvalidBusinessID = errors.New("invalid business ID")

// Business is a directory listing. Rating and ReviewCount are derived from
// the review set and only ever written by the rating aggregator; they are
// never client-settable.
type Business struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	Name        string    `json:"name" bson:"name"`
	City        string    `json:"city" bson:"city"`
	State       string    `json:"state" bson:"state"`
	Address     string    `json:"address" bson:"address"`
	Category    string    `json:"category" bson:"category"`
	Phone       string    `json:"phone" bson:"phone"`
	Rating      float64   `json:"rating" bson:"rating"`
	ReviewCount int64     `json:"reviewCount" bson:"reviewCount"`
	CreatedAt   time.Time `json:"createdAt" bson:"createdAt"`
}
