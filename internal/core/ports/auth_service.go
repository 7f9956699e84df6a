package ports

import (
	"context"

	"github.com/SyedUsman-Dev/Biz-directory/internal/core/domain"
)

type AuthService interface {
	// Register creates an account with the default "user" role. The email is
	// checked for collision before the username so the reported conflict is
	// deterministic.
	Register(ctx context.Context, username, email, password string) (*domain.User, error)
	// Login returns a signed bearer token and the authenticated user. Unknown
	// email and wrong password both fail with domain.ErrInvalidCredentials.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	// CurrentUser loads the account behind a resolved token subject.
	CurrentUser(ctx context.Context, userID string) (*domain.User, error)
}
