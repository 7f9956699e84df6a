package ports

import (
	"context"

	"github.com/SyedUsman-Dev/Biz-directory/internal/core/domain"
)

// ReviewPage is one page of reviews for a business.
type ReviewPage struct {
	Items      []*domain.Review
	Pagination Pagination
}

// CreateReviewInput carries the author-supplied fields of a new review.
type CreateReviewInput struct {
	Rating int
	Text   string
}

// ReviewService defines use-case operations for reviews. Every mutation that
// changes the review set's ratings or membership triggers a synchronous
// rating recomputation on the parent business before returning.
type ReviewService interface {
	ListForBusiness(ctx context.Context, businessID string, page, limit int) (*ReviewPage, error)
	Get(ctx context.Context, id string) (*domain.Review, error)
	Create(ctx context.Context, businessID, authorID string, in CreateReviewInput) (*domain.Review, error)
	// Update is permitted to the review's author or an admin. The rating, if
	// present, is revalidated; a recompute runs only when it was present.
	Update(ctx context.Context, id, callerID string, upd ReviewUpdate) (*domain.Review, error)
	// Delete is permitted to the review's author or an admin.
	Delete(ctx context.Context, id, callerID string) error
}
