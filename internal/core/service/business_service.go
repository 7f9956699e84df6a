package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/SyedUsman-Dev/Biz-directory/internal/api/metrics"
	"github.com/SyedUsman-Dev/Biz-directory/internal/core/domain"
	"github.com/SyedUsman-Dev/Biz-directory/internal/core/ports"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// BusinessService implements listing, search, and the admin-gated mutations
// on businesses.
type BusinessService struct {
	businesses ports.BusinessRepository
	reviews    ports.ReviewRepository
	authz      ports.Authorizer
	log        zerolog.Logger
}

func NewBusinessService(businesses ports.BusinessRepository, reviews ports.ReviewRepository, authz ports.Authorizer, log zerolog.Logger) *BusinessService {
	return &BusinessService{businesses: businesses, reviews: reviews, authz: authz, log: log}
}

// normalizePage clamps pagination to a 1-based page and a bounded limit.
func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	return page, limit
}

// pageCount is ceil(total/limit).
func pageCount(total int64, limit int) int64 {
	return (total + int64(limit) - 1) / int64(limit)
}

func (s *BusinessService) List(ctx context.Context, in ports.ListBusinessesInput) (*ports.BusinessPage, error) {
	page, limit := normalizePage(in.Page, in.Limit)

	items, total, err := s.businesses.List(ctx, ports.BusinessFilter{MinRating: in.MinRating}, page, limit)
	if err != nil {
		return nil, fmt.Errorf("list businesses: %w", err)
	}

	return &ports.BusinessPage{
		Items: items,
		Pagination: ports.Pagination{
			Page:  page,
			Limit: limit,
			Total: total,
			Pages: pageCount(total, limit),
		},
	}, nil
}

func (s *BusinessService) Search(ctx context.Context, in ports.SearchBusinessesInput) (*ports.BusinessPage, error) {
	page, limit := normalizePage(in.Page, in.Limit)

	filter := ports.BusinessFilter{
		Name:      in.Name,
		City:      in.City,
		State:     in.State,
		Category:  in.Category,
		MinRating: in.MinRating,
	}

	items, total, err := s.businesses.List(ctx, filter, page, limit)
	if err != nil {
		return nil, fmt.Errorf("search businesses: %w", err)
	}

	return &ports.BusinessPage{
		Items: items,
		Pagination: ports.Pagination{
			Page:  page,
			Limit: limit,
			Total: total,
			Pages: pageCount(total, limit),
		},
	}, nil
}

func (s *BusinessService) Get(ctx context.Context, id string) (*domain.Business, error) {
	return s.businesses.FindByID(ctx, id)
}

// Create stores a new listing with a zeroed rating summary. Any authenticated
// caller may create; required-field validation happens at the transport edge.
func (s *BusinessService) Create(ctx context.Context, callerID string, in ports.CreateBusinessInput) (*domain.Business, error) {
	business := &domain.Business{
		Name:        in.Name,
		City:        in.City,
		State:       in.State,
		Address:     in.Address,
		Category:    in.Category,
		Phone:       in.Phone,
		Rating:      0,
		ReviewCount: 0,
		CreatedAt:   time.Now().UTC(),
	}

	created, err := s.businesses.Insert(ctx, business)
	if err != nil {
		return nil, err
	}

	metrics.BusinessesCreatedTotal.Inc()
	s.log.Info().
		Str("business_id", created.ID).
		Str("name", created.Name).
		Str("created_by", callerID).
		Msg("business created")

	return created, nil
}

// Update applies the allow-listed fields and returns the updated business.
// Admin only; the derived rating fields cannot be set through here.
func (s *BusinessService) Update(ctx context.Context, callerID, id string, upd ports.BusinessUpdate) (*domain.Business, error) {
	if _, err := s.authz.RequireAdmin(ctx, callerID); err != nil {
		return nil, err
	}

	if err := s.businesses.UpdateFields(ctx, id, upd); err != nil {
		return nil, err
	}

	updated, err := s.businesses.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("business_id", id).Str("updated_by", callerID).Msg("business updated")
	return updated, nil
}

// Delete removes the business and every review referencing it. The reviews go
// first so a crash in between cannot leave reviews pointing at a missing
// business; no recompute runs because the parent is removed.
func (s *BusinessService) Delete(ctx context.Context, callerID, id string) error {
	if _, err := s.authz.RequireAdmin(ctx, callerID); err != nil {
		return err
	}

	if _, err := s.businesses.FindByID(ctx, id); err != nil {
		return err
	}

	deleted, err := s.reviews.DeleteByBusiness(ctx, id)
	if err != nil {
		return fmt.Errorf("delete business reviews: %w", err)
	}
	if deleted > 0 {
		metrics.ReviewsDeletedTotal.WithLabelValues("cascade").Add(float64(deleted))
	}

	if err := s.businesses.Delete(ctx, id); err != nil {
		return err
	}

	s.log.Info().
		Str("business_id", id).
		Int64("reviews_deleted", deleted).
		Str("deleted_by", callerID).
		Msg("business deleted")

	return nil
}
