package employee

import (
	"strings"
	"time"

	"github.com/emstack/employee-records-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type AddressPayload struct {
	Street  string `json:"street,omitempty"`
	City    string `json:"city,omitempty"`
	State   string `json:"state,omitempty"`
	ZipCode string `json:"zipCode,omitempty"`
}

type CreateEmployeeRequest struct {
	FirstName     string           `json:"firstName"`
	LastName      string           `json:"lastName"`
	Email         string           `json:"email"`
	Phone         string           `json:"phone"`
	Department    string           `json:"department"`
	Position      string           `json:"position"`
	Salary        *decimal.Decimal `json:"salary"`
	DateOfJoining string           `json:"dateOfJoining"`
	Address       *AddressPayload  `json:"address,omitempty"`
	Status        string           `json:"status,omitempty"`
}

// UpdateEmployeeRequest is a patch: only the mutable business fields, each
// optional. Immutable fields (id, createdBy, timestamps) have no counterpart
// here, so a payload cannot overwrite them.
type UpdateEmployeeRequest struct {
	FirstName     *string          `json:"firstName,omitempty"`
	LastName      *string          `json:"lastName,omitempty"`
	Email         *string          `json:"email,omitempty"`
	Phone         *string          `json:"phone,omitempty"`
	Department    *string          `json:"department,omitempty"`
	Position      *string          `json:"position,omitempty"`
	Salary        *decimal.Decimal `json:"salary,omitempty"`
	DateOfJoining *string          `json:"dateOfJoining,omitempty"`
	Address       *AddressPayload  `json:"address,omitempty"`
	Status        *string          `json:"status,omitempty"`
}

type SearchEmployeeRequest struct {
	Text       string
	Department string
	Status     string
}

// Validate checks every field independently and collects all violations in
// field order. It never touches storage.
func (r CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	switch {
	case validator.IsEmpty(r.FirstName):
		errs = append(errs, validator.ValidationError{Field: "firstName", Message: "First name is required"})
	case len(strings.TrimSpace(r.FirstName)) < 2:
		errs = append(errs, validator.ValidationError{Field: "firstName", Message: "First name must be at least 2 characters long"})
	}

	switch {
	case validator.IsEmpty(r.LastName):
		errs = append(errs, validator.ValidationError{Field: "lastName", Message: "Last name is required"})
	case len(strings.TrimSpace(r.LastName)) < 2:
		errs = append(errs, validator.ValidationError{Field: "lastName", Message: "Last name must be at least 2 characters long"})
	}

	switch {
	case validator.IsEmpty(r.Email):
		errs = append(errs, validator.ValidationError{Field: "email", Message: "Email is required"})
	case !validator.IsValidEmail(strings.TrimSpace(r.Email)):
		errs = append(errs, validator.ValidationError{Field: "email", Message: "Please enter a valid email"})
	}

	switch {
	case validator.IsEmpty(r.Phone):
		errs = append(errs, validator.ValidationError{Field: "phone", Message: "Phone number is required"})
	case !validator.IsValidPhoneNumber(r.Phone):
		errs = append(errs, validator.ValidationError{Field: "phone", Message: "Please enter a valid 10-digit phone number"})
	}

	switch {
	case validator.IsEmpty(r.Department):
		errs = append(errs, validator.ValidationError{Field: "department", Message: "Department is required"})
	case !validator.IsInSlice(r.Department, Departments()):
		errs = append(errs, validator.ValidationError{Field: "department", Message: "Department must be one of " + strings.Join(Departments(), ", ")})
	}

	if validator.IsEmpty(r.Position) {
		errs = append(errs, validator.ValidationError{Field: "position", Message: "Position is required"})
	}

	switch {
	case r.Salary == nil:
		errs = append(errs, validator.ValidationError{Field: "salary", Message: "Salary is required"})
	case r.Salary.IsNegative():
		errs = append(errs, validator.ValidationError{Field: "salary", Message: "Salary cannot be negative"})
	}

	switch {
	case validator.IsEmpty(r.DateOfJoining):
		errs = append(errs, validator.ValidationError{Field: "dateOfJoining", Message: "Date of joining is required"})
	default:
		if _, ok := validator.IsValidDate(r.DateOfJoining); !ok {
			errs = append(errs, validator.ValidationError{Field: "dateOfJoining", Message: "Date of joining must be a valid date (YYYY-MM-DD)"})
		}
	}

	if r.Status != "" && !validator.IsInSlice(r.Status, Statuses()) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "Status must be one of " + strings.Join(Statuses(), ", ")})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	ID            string          `json:"id"`
	FirstName     string          `json:"firstName"`
	LastName      string          `json:"lastName"`
	Email         string          `json:"email"`
	Phone         string          `json:"phone"`
	Department    string          `json:"department"`
	Position      string          `json:"position"`
	Salary        float64         `json:"salary"`
	DateOfJoining string          `json:"dateOfJoining"`
	Address       *AddressPayload `json:"address,omitempty"`
	Status        string          `json:"status"`
	CreatedBy     string          `json:"createdBy"`
	UpdatedBy     *string         `json:"updatedBy,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// ToResponse maps the entity to its JSON representation.
func ToResponse(emp Employee) EmployeeResponse {
	var address *AddressPayload
	if emp.Address != nil {
		address = &AddressPayload{
			Street:  emp.Address.Street,
			City:    emp.Address.City,
			State:   emp.Address.State,
			ZipCode: emp.Address.ZipCode,
		}
	}

	return EmployeeResponse{
		ID:            emp.ID,
		FirstName:     emp.FirstName,
		LastName:      emp.LastName,
		Email:         emp.Email,
		Phone:         emp.Phone,
		Department:    string(emp.Department),
		Position:      emp.Position,
		Salary:        emp.Salary.InexactFloat64(),
		DateOfJoining: emp.DateOfJoining.Format("2006-01-02"),
		Address:       address,
		Status:        string(emp.Status),
		CreatedBy:     emp.CreatedBy,
		UpdatedBy:     emp.UpdatedBy,
		CreatedAt:     emp.CreatedAt,
		UpdatedAt:     emp.UpdatedAt,
	}
}

// ToResponseList maps a slice of entities, returning an empty (non-nil)
// slice when there are no rows so the JSON renders as [].
func ToResponseList(emps []Employee) []EmployeeResponse {
	responses := make([]EmployeeResponse, 0, len(emps))
	for _, emp := range emps {
		responses = append(responses, ToResponse(emp))
	}
	return responses
}
