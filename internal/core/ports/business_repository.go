package ports

import (
	"context"

	"github.com/SyedUsman-Dev/Biz-directory/internal/core/domain"
)

// BusinessFilter carries the query constraints for listing and searching
// businesses. Text fields match case-insensitively as substrings when
// non-empty; all supplied constraints are ANDed.
type BusinessFilter struct {
	Name      string
	City      string
	State     string
	Category  string
	MinRating *float64 // rating >= MinRating when set
}

// BusinessUpdate holds the admin-editable fields of a business. Nil fields
// are left untouched. The derived rating fields are deliberately absent.
type BusinessUpdate struct {
	Name     *string
	City     *string
	State    *string
	Address  *string
	Category *string
	Phone    *string
}

// BusinessRepository defines persistence operations for businesses.
// Methods taking an id fail with domain.ErrInvalidBusinessID when the id does
// not parse and domain.ErrBusinessNotFound when no document matches.
type BusinessRepository interface {
	Insert(ctx context.Context, b *domain.Business) (*domain.Business, error)
	FindByID(ctx context.Context, id string) (*domain.Business, error)
	// List returns one page of businesses matching filter plus the total
	// match count. Page is 1-based.
	List(ctx context.Context, filter BusinessFilter, page, limit int) ([]*domain.Business, int64, error)
	UpdateFields(ctx context.Context, id string, upd BusinessUpdate) error
	// SetRatingSummary writes the denormalized rating fields. Only the rating
	// aggregator may call this.
	SetRatingSummary(ctx context.Context, id string, rating float64, reviewCount int64) error
	Delete(ctx context.Context, id string) error
}
