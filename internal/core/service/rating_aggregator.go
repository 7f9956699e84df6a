package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/rs/zerolog"

	"github.com/SyedUsman-Dev/Biz-directory/internal/api/metrics"
	"github.com/SyedUsman-Dev/Biz-directory/internal/core/ports"
	"github.com/SyedUsman-Dev/Biz-directory/internal/pkg/keymutex"
)

// RatingAggregator is the single writer of a business's denormalized
// rating/reviewCount fields. Every review mutation that changes the review
// set's ratings or membership calls Recompute synchronously; no other code
// path writes the summary.
//
// Recomputation is serialized per business id with a striped mutex so two
// in-process mutations on the same business cannot interleave their
// read-aggregate/write-summary steps.
type RatingAggregator struct {
	reviews    ports.ReviewRepository
	businesses ports.BusinessRepository
	locks      *keymutex.KeyMutex
	log        zerolog.Logger
}

func NewRatingAggregator(reviews ports.ReviewRepository, businesses ports.BusinessRepository, log zerolog.Logger) *RatingAggregator {
	return &RatingAggregator{
		reviews:    reviews,
		businesses: businesses,
		locks:      keymutex.New(0),
		log:        log,
	}
}

// Recompute rebuilds the business's rating summary from its live review set:
// reviewCount = count, rating = mean rounded to one decimal, or both zero
// when no reviews remain. Idempotent; safe to re-invoke to convergence.
func (a *RatingAggregator) Recompute(ctx context.Context, businessID string) error {
	start := time.Now()
	unlock := a.locks.Lock(businessID)
	defer unlock()

	avg, count, err := a.reviews.RatingSummary(ctx, businessID)
	if err != nil {
		metrics.RatingRecomputesTotal.WithLabelValues("error").Inc()
		return fmt.Errorf("recompute rating: %w", err)
	}

	rating := 0.0
	outcome := "empty"
	if count > 0 {
		rating = roundToTenth(avg)
		outcome = "ok"
	}

	if err := a.businesses.SetRatingSummary(ctx, businessID, rating, count); err != nil {
		metrics.RatingRecomputesTotal.WithLabelValues("error").Inc()
		return fmt.Errorf("recompute rating: %w", err)
	}

	metrics.RatingRecomputesTotal.WithLabelValues(outcome).Inc()
	metrics.RatingRecomputeDuration.Observe(time.Since(start).Seconds())

	a.log.Debug().
		Str("business_id", businessID).
		Float64("rating", rating).
		Int64("review_count", count).
		Msg("rating summary recomputed")

	return nil
}

// roundToTenth rounds half away from zero to one decimal place, so ties are
// deterministic (4.25 → 4.3).
func roundToTenth(v float64) float64 {
	return math.Round(v*10) / 10
}
