package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/SyedUsman-Dev/Biz-directory/internal/api/middleware"
	"github.com/SyedUsman-Dev/Biz-directory/internal/core/domain"
	"github.com/SyedUsman-Dev/Biz-directory/internal/core/ports"
)

type stubBusinessService struct {
	listFn   func(ctx context.Context, in ports.ListBusinessesInput) (*ports.BusinessPage, error)
	searchFn func(ctx context.Context, in ports.SearchBusinessesInput) (*ports.BusinessPage, error)
	getFn    func(ctx context.Context, id string) (*domain.Business, error)
	createFn func(ctx context.Context, callerID string, in ports.CreateBusinessInput) (*domain.Business, error)
	updateFn func(ctx context.Context, callerID, id string, upd ports.BusinessUpdate) (*domain.Business, error)
	deleteFn func(ctx context.Context, callerID, id string) error
}

func (s *stubBusinessService) List(ctx context.Context, in ports.ListBusinessesInput) (*ports.BusinessPage, error) {
	return s.listFn(ctx, in)
}

func (s *stubBusinessService) Search(ctx context.Context, in ports.SearchBusinessesInput) (*ports.BusinessPage, error) {
	return s.searchFn(ctx, in)
}

func (s *stubBusinessService) Get(ctx context.Context, id string) (*domain.Business, error) {
	return s.getFn(ctx, id)
}

func (s *stubBusinessService) Create(ctx context.Context, callerID string, in ports.CreateBusinessInput) (*domain.Business, error) {
	return s.createFn(ctx, callerID, in)
}

func (s *stubBusinessService) Update(ctx context.Context, callerID, id string, upd ports.BusinessUpdate) (*domain.Business, error) {
	return s.updateFn(ctx, callerID, id, upd)
}

func (s *stubBusinessService) Delete(ctx context.Context, callerID, id string) error {
	return s.deleteFn(ctx, callerID, id)
}

func emptyPage(in ports.ListBusinessesInput) *ports.BusinessPage {
	return &ports.BusinessPage{
		Items:      []*domain.Business{},
		Pagination: ports.Pagination{Page: in.Page, Limit: in.Limit},
	}
}

func TestBusinessHandler_List_QueryParams(t *testing.T) {
	var got ports.ListBusinessesInput
	stub := &stubBusinessService{
		listFn: func(ctx context.Context, in ports.ListBusinessesInput) (*ports.BusinessPage, error) {
			got = in
			return emptyPage(in), nil
		},
	}
	handler := NewBusinessHandler(stub)

	c, rec := newTestContext(t, http.MethodGet, "/api/businesses?page=3&limit=10&rating=4.5", "")
	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got.Page != 3 || got.Limit != 10 {
		t.Errorf("page/limit = %d/%d, want 3/10", got.Page, got.Limit)
	}
	if got.MinRating == nil || *got.MinRating != 4.5 {
		t.Errorf("minRating = %v, want 4.5", got.MinRating)
	}
}

func TestBusinessHandler_List_MalformedParamsFallBack(t *testing.T) {
	var got ports.ListBusinessesInput
	stub := &stubBusinessService{
		listFn: func(ctx context.Context, in ports.ListBusinessesInput) (*ports.BusinessPage, error) {
			got = in
			return emptyPage(in), nil
		},
	}
	handler := NewBusinessHandler(stub)

	c, rec := newTestContext(t, http.MethodGet, "/api/businesses?page=abc&limit=-1&rating=high", "")
	if err := handler.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("malformed params must not fail the request, got %d", rec.Code)
	}
	if got.Page != 1 || got.Limit != 20 {
		t.Errorf("page/limit = %d/%d, want defaults 1/20", got.Page, got.Limit)
	}
	if got.MinRating != nil {
		t.Errorf("malformed rating must be ignored, got %v", *got.MinRating)
	}
}

func TestBusinessHandler_Search_ForwardsFilters(t *testing.T) {
	var got ports.SearchBusinessesInput
	stub := &stubBusinessService{
		searchFn: func(ctx context.Context, in ports.SearchBusinessesInput) (*ports.BusinessPage, error) {
			got = in
			return &ports.BusinessPage{Items: []*domain.Business{}}, nil
		},
	}
	handler := NewBusinessHandler(stub)

	c, _ := newTestContext(t, http.MethodGet, "/api/businesses/search?name=joe&city=new+york&category=coffee", "")
	if err := handler.Search(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if got.Name != "joe" || got.City != "new york" || got.Category != "coffee" {
		t.Errorf("filters not forwarded: %+v", got)
	}
}

func TestBusinessHandler_Create_Success(t *testing.T) {
	stub := &stubBusinessService{
		createFn: func(ctx context.Context, callerID string, in ports.CreateBusinessInput) (*domain.Business, error) {
			if callerID != "user-1" {
				t.Fatalf("unexpected caller: %s", callerID)
			}
			if in.Name != "Joe's Coffee" || in.Phone != "555-0100" {
				t.Fatalf("unexpected input: %+v", in)
			}
			return &domain.Business{ID: "biz-1", Name: in.Name, City: in.City, State: in.State}, nil
		},
	}
	handler := NewBusinessHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/api/businesses",
		`{"name":"Joe's Coffee","city":"New York","state":"NY","address":"1 Main St","category":"coffee","phone":"555-0100"}`)
	c.Set(middleware.ContextUserID, "user-1")

	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["message"] != "Business created successfully" {
		t.Fatalf("unexpected message: %v", resp["message"])
	}
}

func TestBusinessHandler_Create_MissingRequiredFields(t *testing.T) {
	stub := &stubBusinessService{
		createFn: func(ctx context.Context, callerID string, in ports.CreateBusinessInput) (*domain.Business, error) {
			t.Fatal("should not be called")
			return nil, nil
		},
	}
	handler := NewBusinessHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/api/businesses", `{"name":"Joe's Coffee"}`)
	c.Set(middleware.ContextUserID, "user-1")

	err := handler.Create(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestBusinessHandler_Update_ForwardsPartialFields(t *testing.T) {
	stub := &stubBusinessService{
		updateFn: func(ctx context.Context, callerID, id string, upd ports.BusinessUpdate) (*domain.Business, error) {
			if callerID != "admin-1" || id != "biz-1" {
				t.Fatalf("unexpected args: %s %s", callerID, id)
			}
			if upd.Name == nil || *upd.Name != "New Name" {
				t.Fatalf("name update missing: %+v", upd)
			}
			if upd.City != nil {
				t.Fatalf("city must be absent, got %v", *upd.City)
			}
			return &domain.Business{ID: id, Name: *upd.Name}, nil
		},
	}
	handler := NewBusinessHandler(stub)

	c, rec := newTestContext(t, http.MethodPut, "/api/businesses/biz-1", `{"name":"New Name"}`)
	c.SetParamNames("business_id")
	c.SetParamValues("biz-1")
	c.Set(middleware.ContextUserID, "admin-1")

	if err := handler.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestBusinessHandler_Delete_ForbiddenPropagates(t *testing.T) {
	stub := &stubBusinessService{
		deleteFn: func(ctx context.Context, callerID, id string) error {
			return domain.ErrAdminRequired
		},
	}
	handler := NewBusinessHandler(stub)

	c, _ := newTestContext(t, http.MethodDelete, "/api/businesses/biz-1", "")
	c.SetParamNames("business_id")
	c.SetParamValues("biz-1")
	c.Set(middleware.ContextUserID, "user-1")

	if err := handler.Delete(c); !errors.Is(err, domain.ErrAdminRequired) {
		t.Fatalf("expected ErrAdminRequired to propagate, got %v", err)
	}
}
