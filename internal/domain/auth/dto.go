package auth

import (
	"context"
	"strings"

	"github.com/emstack/employee-records-go/internal/domain/user"
	"github.com/emstack/employee-records-go/internal/pkg/validator"
)

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role,omitempty"`
}

func (r RegisterRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Username) {
		errs = append(errs, validator.ValidationError{Field: "username", Message: "Username is required"})
	}

	switch {
	case validator.IsEmpty(r.Email):
		errs = append(errs, validator.ValidationError{Field: "email", Message: "Email is required"})
	case !validator.IsValidEmail(strings.TrimSpace(r.Email)):
		errs = append(errs, validator.ValidationError{Field: "email", Message: "Please enter a valid email"})
	}

	if len(r.Password) < 6 {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "Password must be at least 6 characters long"})
	}

	if r.Role != "" && !user.Role(r.Role).IsValid() {
		errs = append(errs, validator.ValidationError{Field: "role", Message: "Role must be admin or user"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UserResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

type TokenResponse struct {
	Token     string       `json:"token"`
	ExpiresAt int64        `json:"expiresAt"`
	User      UserResponse `json:"user"`
}

type AuthService interface {
	Register(ctx context.Context, req RegisterRequest) (UserResponse, error)
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)
	CurrentUser(ctx context.Context, userID string) (UserResponse, error)
}
