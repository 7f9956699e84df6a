package ports

import (
	"context"

	"github.com/SyedUsman-Dev/Biz-directory/internal/core/domain"
)

// ReviewUpdate holds the mutable fields of a review. Nil fields are left
// untouched.
type ReviewUpdate struct {
	Rating *int
	Text   *string
}

// ReviewRepository defines persistence operations for reviews.
// Methods taking a review id fail with domain.ErrInvalidReviewID when the id
// does not parse and domain.ErrReviewNotFound when no document matches.
type ReviewRepository interface {
	Insert(ctx context.Context, r *domain.Review) (*domain.Review, error)
	FindByID(ctx context.Context, id string) (*domain.Review, error)
	// FindByBusinessAndAuthor locates the single review a user may hold for a
	// business; domain.ErrReviewNotFound when absent.
	FindByBusinessAndAuthor(ctx context.Context, businessID, userID string) (*domain.Review, error)
	// ListByBusiness returns one page of reviews ordered by creation time
	// descending, plus the total count for the business.
	ListByBusiness(ctx context.Context, businessID string, page, limit int) ([]*domain.Review, int64, error)
	UpdateFields(ctx context.Context, id string, upd ReviewUpdate) error
	Delete(ctx context.Context, id string) error
	// DeleteByBusiness removes every review referencing the business and
	// returns how many were deleted.
	DeleteByBusiness(ctx context.Context, businessID string) (int64, error)
	// RatingSummary aggregates the business's reviews into (mean, count).
	// count == 0 signals an empty review set; avg is meaningless then.
	RatingSummary(ctx context.Context, businessID string) (avg float64, count int64, err error)
}
