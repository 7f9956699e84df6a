package service

import (
	"context"

	"github.com/SyedUsman-Dev/Biz-directory/internal/core/domain"
	"github.com/SyedUsman-Dev/Biz-directory/internal/core/ports"
)

// Authorizer resolves token subjects against the identity store and applies
// the role/ownership predicates. The role is always read from the live user
// record, never from the token, so a role change takes effect on the next
// request.
type Authorizer struct {
	users ports.UserRepository
}

func NewAuthorizer(users ports.UserRepository) *Authorizer {
	return &Authorizer{users: users}
}

func (a *Authorizer) Resolve(ctx context.Context, subjectID string) (*domain.User, error) {
	return a.users.FindByID(ctx, subjectID)
}

func (a *Authorizer) RequireAdmin(ctx context.Context, subjectID string) (*domain.User, error) {
	user, err := a.Resolve(ctx, subjectID)
	if err != nil {
		return nil, err
	}
	if !user.IsAdmin() {
		return nil, domain.ErrAdminRequired
	}
	return user, nil
}

func (a *Authorizer) RequireOwnerOrAdmin(ctx context.Context, subjectID, ownerID string) (*domain.User, error) {
	user, err := a.Resolve(ctx, subjectID)
	if err != nil {
		return nil, err
	}
	if user.ID != ownerID && !user.IsAdmin() {
		return nil, domain.ErrNotReviewOwner
	}
	return user, nil
}
