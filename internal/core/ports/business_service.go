package ports

import (
	"context"

	"github.com/SyedUsman-Dev/Biz-directory/internal/core/domain"
)

// Pagination describes one page of a listing.
type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int64 `json:"pages"`
}

// BusinessPage is one page of business listings.
type BusinessPage struct {
	Items      []*domain.Business
	Pagination Pagination
}

// ListBusinessesInput carries the parameters of the plain listing endpoint.
type ListBusinessesInput struct {
	MinRating *float64
	Page      int
	Limit     int
}

// SearchBusinessesInput carries the parameters of the search endpoint.
// Empty text fields are unconstrained.
type SearchBusinessesInput struct {
	Name      string
	City      string
	State     string
	Category  string
	MinRating *float64
	Page      int
	Limit     int
}

// CreateBusinessInput carries the fields for a new business. Phone is
// optional and defaults to empty.
type CreateBusinessInput struct {
	Name     string
	City     string
	State    string
	Address  string
	Category string
	Phone    string
}

// BusinessService defines use-case operations for businesses.
type BusinessService interface {
	List(ctx context.Context, in ListBusinessesInput) (*BusinessPage, error)
	Search(ctx context.Context, in SearchBusinessesInput) (*BusinessPage, error)
	Get(ctx context.Context, id string) (*domain.Business, error)
	// Create requires any authenticated caller.
	Create(ctx context.Context, callerID string, in CreateBusinessInput) (*domain.Business, error)
	// Update requires the admin role and returns the updated business.
	Update(ctx context.Context, callerID, id string, upd BusinessUpdate) (*domain.Business, error)
	// Delete requires the admin role and cascades to the business's reviews.
	Delete(ctx context.Context, callerID, id string) error
}
