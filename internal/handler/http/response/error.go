package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/emstack/employee-records-go/internal/domain/auth"
	"github.com/emstack/employee-records-go/internal/domain/employee"
	"github.com/emstack/employee-records-go/internal/domain/user"
	"github.com/emstack/employee-records-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses. Anything unmapped is
// logged and answered with a generic 500 plus diagnostic text.
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		BadRequest(w, "Validation error", validationErrs.Messages())
		return
	}

	switch {
	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmailExists):
		BadRequest(w, "Employee with this email already exists", nil)

	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailTaken):
		BadRequest(w, "User with this email already exists", nil)
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")

	// Default
	default:
		slog.Error("Unhandled error", "error", err)
		InternalServerError(w, err.Error())
	}
}
