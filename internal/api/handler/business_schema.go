package handler

import (
	"github.com/SyedUsman-Dev/Biz-directory/internal/core/domain"
	"github.com/SyedUsman-Dev/Biz-directory/internal/core/ports"
)

type createBusinessRequest struct {
	Name     string `json:"name"     validate:"required"`
	City     string `json:"city"     validate:"required"`
	State    string `json:"state"    validate:"required"`
	Address  string `json:"address"  validate:"required"`
	Category string `json:"category" validate:"required"`
	Phone    string `json:"phone"`
}

// updateBusinessRequest carries the admin-editable fields. Pointer fields
// distinguish "absent" from "set to empty"; absent fields are left untouched.
// The derived rating fields are not bindable.
type updateBusinessRequest struct {
	Name     *string `json:"name"`
	City     *string `json:"city"`
	State    *string `json:"state"`
	Address  *string `json:"address"`
	Category *string `json:"category"`
	Phone    *string `json:"phone"`
}

func (r *updateBusinessRequest) toUpdate() ports.BusinessUpdate {
	return ports.BusinessUpdate{
		Name:     r.Name,
		City:     r.City,
		State:    r.State,
		Address:  r.Address,
		Category: r.Category,
		Phone:    r.Phone,
	}
}

type businessListResponse struct {
	Businesses []*domain.Business `json:"businesses"`
	Pagination ports.Pagination   `json:"pagination"`
}

type businessResponse struct {
	Business *domain.Business `json:"business"`
}

type businessMutationResponse struct {
	Message  string           `json:"message"`
	Business *domain.Business `json:"business"`
}

type messageResponse struct {
	Message string `json:"message"`
}
