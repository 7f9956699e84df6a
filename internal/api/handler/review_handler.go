package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/SyedUsman-Dev/Biz-directory/internal/core/ports"
)

// ReviewHandler handles HTTP requests for review operations.
type ReviewHandler struct {
	service ports.ReviewService
}

func NewReviewHandler(service ports.ReviewService) *ReviewHandler {
	return &ReviewHandler{service: service}
}

// ListForBusiness handles GET /api/businesses/:business_id/reviews.
//
// @Summary      List a business's reviews (most recent first)
// @Tags         reviews
// @Produce      json
// @Param        business_id  path      string  true   "Business id"
// @Param        page         query     int     false  "Page number (1-based)"
// @Param        limit        query     int     false  "Page size"
// @Success      200          {object}  reviewListResponse
// @Failure      400          {object}  errorResponse
// @Failure      404          {object}  errorResponse
// @Router       /api/businesses/{business_id}/reviews [get]
func (h *ReviewHandler) ListForBusiness(c echo.Context) error {
	page, limit := pageParams(c)

	result, err := h.service.ListForBusiness(c.Request().Context(), c.Param("business_id"), page, limit)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, reviewListResponse{
		Reviews:    result.Items,
		Pagination: result.Pagination,
	})
}

// Create handles POST /api/businesses/:business_id/reviews.
//
// @Summary      Create a review (one per user per business)
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        business_id  path      string               true  "Business id"
// @Param        body         body      createReviewRequest  true  "Review details"
// @Success      201          {object}  reviewMutationResponse
// @Failure      400          {object}  errorResponse
// @Failure      404          {object}  errorResponse
// @Failure      409          {object}  errorResponse
// @Router       /api/businesses/{business_id}/reviews [post]
func (h *ReviewHandler) Create(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req createReviewRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	review, err := h.service.Create(c.Request().Context(), c.Param("business_id"), userID, ports.CreateReviewInput{
		Rating: req.Rating,
		Text:   req.Text,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, reviewMutationResponse{
		Message: "Review created successfully",
		Review:  review,
	})
}

// Get handles GET /api/reviews/:review_id.
//
// @Summary      Get a review by id
// @Tags         reviews
// @Produce      json
// @Param        review_id  path      string  true  "Review id"
// @Success      200        {object}  reviewResponse
// @Failure      400        {object}  errorResponse
// @Failure      404        {object}  errorResponse
// @Router       /api/reviews/{review_id} [get]
func (h *ReviewHandler) Get(c echo.Context) error {
	review, err := h.service.Get(c.Request().Context(), c.Param("review_id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, reviewResponse{Review: review})
}

// Update handles PUT /api/reviews/:review_id (owner or admin).
//
// @Summary      Update a review
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        review_id  path      string               true  "Review id"
// @Param        body       body      updateReviewRequest  true  "Fields to update"
// @Success      200        {object}  reviewMutationResponse
// @Failure      400        {object}  errorResponse
// @Failure      403        {object}  errorResponse
// @Failure      404        {object}  errorResponse
// @Router       /api/reviews/{review_id} [put]
func (h *ReviewHandler) Update(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req updateReviewRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	review, err := h.service.Update(c.Request().Context(), c.Param("review_id"), userID, req.toUpdate())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, reviewMutationResponse{
		Message: "Review updated successfully",
		Review:  review,
	})
}

// Delete handles DELETE /api/reviews/:review_id (owner or admin).
//
// @Summary      Delete a review
// @Tags         reviews
// @Produce      json
// @Security     BearerAuth
// @Param        review_id  path      string  true  "Review id"
// @Success      200        {object}  messageResponse
// @Failure      400        {object}  errorResponse
// @Failure      403        {object}  errorResponse
// @Failure      404        {object}  errorResponse
// @Router       /api/reviews/{review_id} [delete]
func (h *ReviewHandler) Delete(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), c.Param("review_id"), userID); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "Review deleted successfully"})
}
