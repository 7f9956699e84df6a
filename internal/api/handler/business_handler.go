package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/SyedUsman-Dev/Biz-directory/internal/core/ports"
)

// BusinessHandler handles HTTP requests for business operations.
type BusinessHandler struct {
	service ports.BusinessService
}

func NewBusinessHandler(service ports.BusinessService) *BusinessHandler {
	return &BusinessHandler{service: service}
}

// pageParams reads the 1-based page and limit query params, falling back to
// defaults on absent or malformed values.
func pageParams(c echo.Context) (int, int) {
	page, err := strconv.Atoi(c.QueryParam("page"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(c.QueryParam("limit"))
	if err != nil || limit < 1 {
		limit = 20
	}
	return page, limit
}

// minRatingParam parses the optional rating threshold. A malformed value is
// silently ignored rather than rejected.
func minRatingParam(c echo.Context) *float64 {
	raw := c.QueryParam("rating")
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &v
}

// List handles GET /api/businesses.
//
// @Summary      List businesses
// @Tags         businesses
// @Produce      json
// @Param        page    query     int     false  "Page number (1-based)"
// @Param        limit   query     int     false  "Page size"
// @Param        rating  query     number  false  "Minimum rating threshold"
// @Success      200     {object}  businessListResponse
// @Failure      500     {object}  errorResponse
// @Router       /api/businesses [get]
func (h *BusinessHandler) List(c echo.Context) error {
	page, limit := pageParams(c)

	result, err := h.service.List(c.Request().Context(), ports.ListBusinessesInput{
		MinRating: minRatingParam(c),
		Page:      page,
		Limit:     limit,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, businessListResponse{
		Businesses: result.Items,
		Pagination: result.Pagination,
	})
}

// Search handles GET /api/businesses/search.
//
// @Summary      Search businesses
// @Tags         businesses
// @Produce      json
// @Param        name      query     string  false  "Name substring (case-insensitive)"
// @Param        city      query     string  false  "City substring (case-insensitive)"
// @Param        state     query     string  false  "State substring (case-insensitive)"
// @Param        category  query     string  false  "Category substring (case-insensitive)"
// @Param        rating    query     number  false  "Minimum rating threshold"
// @Param        page      query     int     false  "Page number (1-based)"
// @Param        limit     query     int     false  "Page size"
// @Success      200       {object}  businessListResponse
// @Failure      500       {object}  errorResponse
// @Router       /api/businesses/search [get]
func (h *BusinessHandler) Search(c echo.Context) error {
	page, limit := pageParams(c)

	result, err := h.service.Search(c.Request().Context(), ports.SearchBusinessesInput{
		Name:      c.QueryParam("name"),
		City:      c.QueryParam("city"),
		State:     c.QueryParam("state"),
		Category:  c.QueryParam("category"),
		MinRating: minRatingParam(c),
		Page:      page,
		Limit:     limit,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, businessListResponse{
		Businesses: result.Items,
		Pagination: result.Pagination,
	})
}

// Get handles GET /api/businesses/:business_id.
//
// @Summary      Get a business by id
// @Tags         businesses
// @Produce      json
// @Param        business_id  path      string  true  "Business id"
// @Success      200          {object}  businessResponse
// @Failure      400          {object}  errorResponse
// @Failure      404          {object}  errorResponse
// @Router       /api/businesses/{business_id} [get]
func (h *BusinessHandler) Get(c echo.Context) error {
	business, err := h.service.Get(c.Request().Context(), c.Param("business_id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, businessResponse{Business: business})
}

// Create handles POST /api/businesses.
//
// @Summary      Create a business
// @Tags         businesses
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createBusinessRequest  true  "Business details"
// @Success      201   {object}  businessMutationResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /api/businesses [post]
func (h *BusinessHandler) Create(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req createBusinessRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	business, err := h.service.Create(c.Request().Context(), userID, ports.CreateBusinessInput{
		Name:     req.Name,
		City:     req.City,
		State:    req.State,
		Address:  req.Address,
		Category: req.Category,
		Phone:    req.Phone,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, businessMutationResponse{
		Message:  "Business created successfully",
		Business: business,
	})
}

// Update handles PUT /api/businesses/:business_id (admin only).
//
// @Summary      Update a business
// @Tags         businesses
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        business_id  path      string                 true  "Business id"
// @Param        body         body      updateBusinessRequest  true  "Fields to update"
// @Success      200          {object}  businessMutationResponse
// @Failure      400          {object}  errorResponse
// @Failure      403          {object}  errorResponse
// @Failure      404          {object}  errorResponse
// @Router       /api/businesses/{business_id} [put]
func (h *BusinessHandler) Update(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req updateBusinessRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	business, err := h.service.Update(c.Request().Context(), userID, c.Param("business_id"), req.toUpdate())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, businessMutationResponse{
		Message:  "Business updated successfully",
		Business: business,
	})
}

// Delete handles DELETE /api/businesses/:business_id (admin only). Deleting a
// business also deletes every review referencing it.
//
// @Summary      Delete a business and its reviews
// @Tags         businesses
// @Produce      json
// @Security     BearerAuth
// @Param        business_id  path      string  true  "Business id"
// @Success      200          {object}  messageResponse
// @Failure      400          {object}  errorResponse
// @Failure      403          {object}  errorResponse
// @Failure      404          {object}  errorResponse
// @Router       /api/businesses/{business_id} [delete]
func (h *BusinessHandler) Delete(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), userID, c.Param("business_id")); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{
		Message: "Business and associated reviews deleted successfully",
	})
}
