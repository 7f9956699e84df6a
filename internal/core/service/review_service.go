package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/SyedUsman-Dev/Biz-directory/internal/api/metrics"
	"github.com/SyedUsman-Dev/Biz-directory/internal/core/domain"
	"github.com/SyedUsman-Dev/Biz-directory/internal/core/ports"
)

// ReviewService implements review CRUD with the one-review-per-user
// constraint, ownership checks, and synchronous rating recomputation.
type ReviewService struct {
	reviews    ports.ReviewRepository
	businesses ports.BusinessRepository
	users      ports.UserRepository
	authz      ports.Authorizer
	aggregator ports.RatingAggregator
	log        zerolog.Logger
}

func NewReviewService(
	reviews ports.ReviewRepository,
	businesses ports.BusinessRepository,
	users ports.UserRepository,
	authz ports.Authorizer,
	aggregator ports.RatingAggregator,
	log zerolog.Logger,
) *ReviewService {
	return &ReviewService{
		reviews:    reviews,
		businesses: businesses,
		users:      users,
		authz:      authz,
		aggregator: aggregator,
		log:        log,
	}
}

// enrich attaches the author's username to the review. Best-effort: when the
// lookup fails the field stays empty and is omitted from the response.
func (s *ReviewService) enrich(ctx context.Context, r *domain.Review) {
	user, err := s.users.FindByID(ctx, r.UserID)
	if err != nil {
		return
	}
	r.Username = user.Username
}

func (s *ReviewService) ListForBusiness(ctx context.Context, businessID string, page, limit int) (*ports.ReviewPage, error) {
	if _, err := s.businesses.FindByID(ctx, businessID); err != nil {
		return nil, err
	}

	page, limit = normalizePage(page, limit)

	items, total, err := s.reviews.ListByBusiness(ctx, businessID, page, limit)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}

	for _, r := range items {
		s.enrich(ctx, r)
	}

	return &ports.ReviewPage{
		Items: items,
		Pagination: ports.Pagination{
			Page:  page,
			Limit: limit,
			Total: total,
			Pages: pageCount(total, limit),
		},
	}, nil
}

func (s *ReviewService) Get(ctx context.Context, id string) (*domain.Review, error) {
	review, err := s.reviews.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.enrich(ctx, review)
	return review, nil
}

// Create validates the payload, enforces the one-review-per-(business,user)
// constraint, and recomputes the parent's rating summary before returning.
func (s *ReviewService) Create(ctx context.Context, businessID, authorID string, in ports.CreateReviewInput) (*domain.Review, error) {
	if !domain.ValidRating(in.Rating) {
		return nil, domain.ErrInvalidRating
	}
	if strings.TrimSpace(in.Text) == "" {
		return nil, domain.ErrEmptyReviewText
	}

	if _, err := s.businesses.FindByID(ctx, businessID); err != nil {
		return nil, err
	}

	if _, err := s.reviews.FindByBusinessAndAuthor(ctx, businessID, authorID); err == nil {
		return nil, domain.ErrDuplicateReview
	} else if !errors.Is(err, domain.ErrReviewNotFound) {
		return nil, fmt.Errorf("create review: %w", err)
	}

	review := &domain.Review{
		BusinessID: businessID,
		UserID:     authorID,
		Rating:     in.Rating,
		Text:       in.Text,
		CreatedAt:  time.Now().UTC(),
	}

	created, err := s.reviews.Insert(ctx, review)
	if err != nil {
		return nil, err
	}

	if err := s.aggregator.Recompute(ctx, businessID); err != nil {
		return nil, err
	}

	metrics.ReviewsCreatedTotal.WithLabelValues(strconv.Itoa(created.Rating)).Inc()
	s.log.Info().
		Str("review_id", created.ID).
		Str("business_id", businessID).
		Str("user_id", authorID).
		Int("rating", created.Rating).
		Msg("review created")

	s.enrich(ctx, created)
	return created, nil
}

// Update lets the author or an admin change rating and/or text. Absent fields
// are untouched; the summary is recomputed only when the rating was present.
func (s *ReviewService) Update(ctx context.Context, id, callerID string, upd ports.ReviewUpdate) (*domain.Review, error) {
	review, err := s.reviews.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if _, err := s.authz.RequireOwnerOrAdmin(ctx, callerID, review.UserID); err != nil {
		return nil, err
	}

	if upd.Rating != nil && !domain.ValidRating(*upd.Rating) {
		return nil, domain.ErrInvalidRating
	}

	if err := s.reviews.UpdateFields(ctx, id, upd); err != nil {
		return nil, err
	}

	if upd.Rating != nil {
		if err := s.aggregator.Recompute(ctx, review.BusinessID); err != nil {
			return nil, err
		}
	}

	updated, err := s.reviews.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Str("review_id", id).
		Str("updated_by", callerID).
		Bool("rating_changed", upd.Rating != nil).
		Msg("review updated")

	s.enrich(ctx, updated)
	return updated, nil
}

// Delete lets the author or an admin remove the review, then recomputes the
// former business's rating summary.
func (s *ReviewService) Delete(ctx context.Context, id, callerID string) error {
	review, err := s.reviews.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if _, err := s.authz.RequireOwnerOrAdmin(ctx, callerID, review.UserID); err != nil {
		return err
	}

	if err := s.reviews.Delete(ctx, id); err != nil {
		return err
	}

	if err := s.aggregator.Recompute(ctx, review.BusinessID); err != nil {
		return err
	}

	metrics.ReviewsDeletedTotal.WithLabelValues("request").Inc()
	s.log.Info().
		Str("review_id", id).
		Str("business_id", review.BusinessID).
		Str("deleted_by", callerID).
		Msg("review deleted")

	return nil
}
