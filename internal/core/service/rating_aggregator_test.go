package service

import (
	"context"
	"testing"
	"time"

	"github.com/SyedUsman-Dev/Biz-directory/internal/core/domain"
)

func seedBusiness(t *testing.T, repo *stubBusinessRepo, name string) *domain.Business {
	t.Helper()
	b, err := repo.Insert(context.Background(), &domain.Business{
		Name:      name,
		City:      "Springfield",
		State:     "IL",
		Address:   "1 Main St",
		Category:  "coffee",
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("seed business: %v", err)
	}
	return b
}

func seedReview(t *testing.T, repo *stubReviewRepo, businessID, userID string, rating int) *domain.Review {
	t.Helper()
	r, err := repo.Insert(context.Background(), &domain.Review{
		BusinessID: businessID,
		UserID:     userID,
		Rating:     rating,
		Text:       "fine",
		CreatedAt:  time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("seed review: %v", err)
	}
	return r
}

func TestRatingAggregator_Recompute(t *testing.T) {
	tests := []struct {
		name       string
		ratings    []int
		wantRating float64
		wantCount  int64
	}{
		{name: "no reviews resets to zero", ratings: nil, wantRating: 0, wantCount: 0},
		{name: "single review", ratings: []int{5}, wantRating: 5.0, wantCount: 1},
		{name: "exact mean", ratings: []int{5, 4}, wantRating: 4.5, wantCount: 2},
		{name: "rounds to one decimal", ratings: []int{5, 4, 4}, wantRating: 4.3, wantCount: 3},
		{name: "tie rounds away from zero", ratings: []int{5, 5, 4, 3}, wantRating: 4.3, wantCount: 4}, // mean 4.25
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			businesses := newStubBusinessRepo()
			reviews := newStubReviewRepo()
			business := seedBusiness(t, businesses, "Joe's Coffee")
			for i, rating := range tt.ratings {
				seedReview(t, reviews, business.ID, "user-"+string(rune('a'+i)), rating)
			}

			agg := NewRatingAggregator(reviews, businesses, discardLogger)
			if err := agg.Recompute(context.Background(), business.ID); err != nil {
				t.Fatalf("recompute failed: %v", err)
			}

			got, err := businesses.FindByID(context.Background(), business.ID)
			if err != nil {
				t.Fatalf("find business: %v", err)
			}
			if got.Rating != tt.wantRating {
				t.Errorf("rating = %v, want %v", got.Rating, tt.wantRating)
			}
			if got.ReviewCount != tt.wantCount {
				t.Errorf("reviewCount = %d, want %d", got.ReviewCount, tt.wantCount)
			}
		})
	}
}

func TestRatingAggregator_Idempotent(t *testing.T) {
	businesses := newStubBusinessRepo()
	reviews := newStubReviewRepo()
	business := seedBusiness(t, businesses, "Joe's Coffee")
	seedReview(t, reviews, business.ID, "user-a", 4)

	agg := NewRatingAggregator(reviews, businesses, discardLogger)
	for i := 0; i < 3; i++ {
		if err := agg.Recompute(context.Background(), business.ID); err != nil {
			t.Fatalf("recompute %d failed: %v", i, err)
		}
	}

	got, _ := businesses.FindByID(context.Background(), business.ID)
	if got.Rating != 4.0 || got.ReviewCount != 1 {
		t.Errorf("summary drifted: rating=%v count=%d", got.Rating, got.ReviewCount)
	}
}

func TestRoundToTenth(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{4.333333, 4.3},
		{4.25, 4.3},
		{4.249, 4.2},
		{4.666666, 4.7},
		{5.0, 5.0},
	}
	for _, tt := range tests {
		if got := roundToTenth(tt.in); got != tt.want {
			t.Errorf("roundToTenth(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
