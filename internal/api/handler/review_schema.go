package handler

import (
	"github.com/SyedUsman-Dev/Biz-directory/internal/core/domain"
	"github.com/SyedUsman-Dev/Biz-directory/internal/core/ports"
)

// createReviewRequest leaves the rating range to the service so the 1-5
// violation message is identical no matter which layer catches it.
type createReviewRequest struct {
	Rating int    `json:"rating"`
	Text   string `json:"text" validate:"required"`
}

// updateReviewRequest carries the mutable review fields; absent fields are
// left untouched.
type updateReviewRequest struct {
	Rating *int    `json:"rating"`
	Text   *string `json:"text"`
}

func (r *updateReviewRequest) toUpdate() ports.ReviewUpdate {
	return ports.ReviewUpdate{Rating: r.Rating, Text: r.Text}
}

type reviewListResponse struct {
	Reviews    []*domain.Review `json:"reviews"`
	Pagination ports.Pagination `json:"pagination"`
}

type reviewResponse struct {
	Review *domain.Review `json:"review"`
}

type reviewMutationResponse struct {
	Message string         `json:"message"`
	Review  *domain.Review `json:"review"`
}
