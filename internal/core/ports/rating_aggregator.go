package ports

import "context"

// RatingAggregator recomputes a business's denormalized rating summary from
// its live review set. It is the single writer of those fields: every review
// mutation site calls Recompute rather than patching the summary inline.
type RatingAggregator interface {
	Recompute(ctx context.Context, businessID string) error
}
