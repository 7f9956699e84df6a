package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"github.com/SyedUsman-Dev/Biz-directory/internal/core/domain"
	"github.com/SyedUsman-Dev/Biz-directory/internal/core/ports"
)

var discardLogger = zerolog.Nop()

// ---------------------------------------------------------------------------
// In-memory stub repositories shared by the service tests. They mirror the
// filtering, ordering, and error semantics of the real Mongo repositories.
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	byID   map[string]*domain.User
	nextID int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{byID: make(map[string]*domain.User)}
}

func (r *stubUserRepo) add(username, email, role string) *domain.User {
	r.nextID++
	u := &domain.User{
		ID:       fmt.Sprintf("user-%d", r.nextID),
		Username: username,
		Email:    email,
		Role:     role,
	}
	r.byID[u.ID] = u
	return u
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	r.nextID++
	clone := *user
	clone.ID = fmt.Sprintf("user-%d", r.nextID)
	r.byID[clone.ID] = &clone
	return &clone, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.byID {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	for _, u := range r.byID {
		if u.Username == username {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

type stubBusinessRepo struct {
	byID          map[string]*domain.Business
	nextID        int
	summaryWrites int // SetRatingSummary call count
	listErr       error
}

func newStubBusinessRepo() *stubBusinessRepo {
	return &stubBusinessRepo{byID: make(map[string]*domain.Business)}
}

func (r *stubBusinessRepo) Insert(_ context.Context, b *domain.Business) (*domain.Business, error) {
	r.nextID++
	clone := *b
	clone.ID = fmt.Sprintf("biz-%d", r.nextID)
	r.byID[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubBusinessRepo) FindByID(_ context.Context, id string) (*domain.Business, error) {
	b, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrBusinessNotFound
	}
	clone := *b
	return &clone, nil
}

// List applies the same filters the real Mongo repo would use.
func (r *stubBusinessRepo) List(_ context.Context, f ports.BusinessFilter, page, limit int) ([]*domain.Business, int64, error) {
	if r.listErr != nil {
		return nil, 0, r.listErr
	}

	contains := func(haystack, needle string) bool {
		return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
	}

	var matched []*domain.Business
	for _, b := range r.byID {
		if f.Name != "" && !contains(b.Name, f.Name) {
			continue
		}
		if f.City != "" && !contains(b.City, f.City) {
			continue
		}
		if f.State != "" && !contains(b.State, f.State) {
			continue
		}
		if f.Category != "" && !contains(b.Category, f.Category) {
			continue
		}
		if f.MinRating != nil && b.Rating < *f.MinRating {
			continue
		}
		clone := *b
		matched = append(matched, &clone)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID < matched[j].ID })

	total := int64(len(matched))
	skip := (page - 1) * limit
	if skip > len(matched) {
		return []*domain.Business{}, total, nil
	}
	end := skip + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[skip:end], total, nil
}

func (r *stubBusinessRepo) UpdateFields(_ context.Context, id string, upd ports.BusinessUpdate) error {
	b, ok := r.byID[id]
	if !ok {
		return domain.ErrBusinessNotFound
	}
	if upd.Name != nil {
		b.Name = *upd.Name
	}
	if upd.City != nil {
		b.City = *upd.City
	}
	if upd.State != nil {
		b.State = *upd.State
	}
	if upd.Address != nil {
		b.Address = *upd.Address
	}
	if upd.Category != nil {
		b.Category = *upd.Category
	}
	if upd.Phone != nil {
		b.Phone = *upd.Phone
	}
	return nil
}

func (r *stubBusinessRepo) SetRatingSummary(_ context.Context, id string, rating float64, reviewCount int64) error {
	b, ok := r.byID[id]
	if !ok {
		return domain.ErrBusinessNotFound
	}
	r.summaryWrites++
	b.Rating = rating
	b.ReviewCount = reviewCount
	return nil
}

func (r *stubBusinessRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrBusinessNotFound
	}
	delete(r.byID, id)
	return nil
}

type stubReviewRepo struct {
	byID   map[string]*domain.Review
	nextID int
}

func newStubReviewRepo() *stubReviewRepo {
	return &stubReviewRepo{byID: make(map[string]*domain.Review)}
}

func (r *stubReviewRepo) Insert(_ context.Context, rev *domain.Review) (*domain.Review, error) {
	r.nextID++
	clone := *rev
	clone.ID = fmt.Sprintf("rev-%d", r.nextID)
	r.byID[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubReviewRepo) FindByID(_ context.Context, id string) (*domain.Review, error) {
	rev, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrReviewNotFound
	}
	clone := *rev
	return &clone, nil
}

func (r *stubReviewRepo) FindByBusinessAndAuthor(_ context.Context, businessID, userID string) (*domain.Review, error) {
	for _, rev := range r.byID {
		if rev.BusinessID == businessID && rev.UserID == userID {
			clone := *rev
			return &clone, nil
		}
	}
	return nil, domain.ErrReviewNotFound
}

func (r *stubReviewRepo) ListByBusiness(_ context.Context, businessID string, page, limit int) ([]*domain.Review, int64, error) {
	var matched []*domain.Review
	for _, rev := range r.byID {
		if rev.BusinessID == businessID {
			clone := *rev
			matched = append(matched, &clone)
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].CreatedAt.After(matched[j].CreatedAt) })

	total := int64(len(matched))
	skip := (page - 1) * limit
	if skip > len(matched) {
		return []*domain.Review{}, total, nil
	}
	end := skip + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[skip:end], total, nil
}

func (r *stubReviewRepo) UpdateFields(_ context.Context, id string, upd ports.ReviewUpdate) error {
	rev, ok := r.byID[id]
	if !ok {
		return domain.ErrReviewNotFound
	}
	if upd.Rating != nil {
		rev.Rating = *upd.Rating
	}
	if upd.Text != nil {
		rev.Text = *upd.Text
	}
	return nil
}

func (r *stubReviewRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrReviewNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *stubReviewRepo) DeleteByBusiness(_ context.Context, businessID string) (int64, error) {
	var deleted int64
	for id, rev := range r.byID {
		if rev.BusinessID == businessID {
			delete(r.byID, id)
			deleted++
		}
	}
	return deleted, nil
}

func (r *stubReviewRepo) RatingSummary(_ context.Context, businessID string) (float64, int64, error) {
	var sum, count int64
	for _, rev := range r.byID {
		if rev.BusinessID == businessID {
			sum += int64(rev.Rating)
			count++
		}
	}
	if count == 0 {
		return 0, 0, nil
	}
	return float64(sum) / float64(count), count, nil
}
