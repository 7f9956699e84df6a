package ports

import (
	"context"

	"github.com/SyedUsman-Dev/Biz-directory/internal/core/domain"
)

// Authorizer resolves a token subject to a live user record and applies the
// two authorization predicates used across the API. Predicates are invoked
// explicitly by services with plain arguments; nothing is carried in ambient
// request state.
type Authorizer interface {
	// Resolve loads the subject. Fails with domain.ErrUserNotFound when the
	// account behind a still-valid token no longer exists.
	Resolve(ctx context.Context, subjectID string) (*domain.User, error)
	// RequireAdmin fails with domain.ErrAdminRequired unless the subject
	// holds the admin role.
	RequireAdmin(ctx context.Context, subjectID string) (*domain.User, error)
	// RequireOwnerOrAdmin fails with domain.ErrNotReviewOwner unless the
	// subject is the resource owner or holds the admin role.
	RequireOwnerOrAdmin(ctx context.Context, subjectID, ownerID string) (*domain.User, error)
}
