package handler

import "github.com/SyedUsman-Dev/Biz-directory/internal/core/domain"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

type registerRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

// userView is the public projection of an account; the digest and timestamps
// stay internal.
type userView struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

func toUserView(u *domain.User) userView {
	return userView{ID: u.ID, Username: u.Username, Email: u.Email, Role: u.Role}
}

type registerResponse struct {
	Message string   `json:"message"`
	User    userView `json:"user"`
}

type loginResponse struct {
	Message     string   `json:"message"`
	AccessToken string   `json:"access_token"`
	User        userView `json:"user"`
}

type currentUserResponse struct {
	User userView `json:"user"`
}
