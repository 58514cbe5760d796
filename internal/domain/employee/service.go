package employee

import "context"

// EmployeeService defines the store contract around employee records:
// validation and uniqueness on writes, creator/editor stamping, filtered reads.
type EmployeeService interface {
	// CreateEmployee validates and persists a new record, stamping createdBy.
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest, creatorID string) (EmployeeResponse, error)

	// GetEmployee retrieves a single employee by ID.
	GetEmployee(ctx context.Context, id string) (EmployeeResponse, error)

	// ListEmployees returns every record, most recently created first.
	ListEmployees(ctx context.Context) ([]EmployeeResponse, error)

	// SearchEmployees filters by free text and/or exact department/status.
	SearchEmployees(ctx context.Context, filter SearchEmployeeRequest) ([]EmployeeResponse, error)

	// UpdateEmployee merges the patch over the stored record, re-validates the
	// result, and stamps updatedBy.
	UpdateEmployee(ctx context.Context, id string, req UpdateEmployeeRequest, editorID string) (EmployeeResponse, error)

	// DeleteEmployee removes the record permanently.
	DeleteEmployee(ctx context.Context, id string) error
}
