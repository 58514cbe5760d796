package employee

import (
	"context"
	"fmt"
	"strings"

	"github.com/emstack/employee-records-go/internal/domain/employee"
	"github.com/emstack/employee-records-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{employeeRepo: employeeRepo}
}

// CreateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest, creatorID string) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	// Friendly pre-check; the unique index on email is what actually
	// guarantees exclusivity under concurrent creates.
	taken, err := s.employeeRepo.EmailExists(ctx, email, "")
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to check email uniqueness: %w", err)
	}
	if taken {
		return employee.EmployeeResponse{}, employee.ErrEmailExists
	}

	joinDate, _ := validator.IsValidDate(req.DateOfJoining)

	status := employee.StatusActive
	if req.Status != "" {
		status = employee.Status(req.Status)
	}

	newEmployee := employee.Employee{
		FirstName:     strings.TrimSpace(req.FirstName),
		LastName:      strings.TrimSpace(req.LastName),
		Email:         email,
		Phone:         req.Phone,
		Department:    employee.Department(req.Department),
		Position:      strings.TrimSpace(req.Position),
		Salary:        *req.Salary,
		DateOfJoining: joinDate,
		Address:       addressFromPayload(req.Address),
		Status:        status,
		CreatedBy:     creatorID,
	}

	created, err := s.employeeRepo.Create(ctx, newEmployee)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return employee.ToResponse(created), nil
}

// GetEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.ToResponse(emp), nil
}

// ListEmployees implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context) ([]employee.EmployeeResponse, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return employee.ToResponseList(employees), nil
}

// SearchEmployees implements employee.EmployeeService. An empty filter is the
// same as listing everything.
func (s *EmployeeServiceImpl) SearchEmployees(ctx context.Context, filter employee.SearchEmployeeRequest) ([]employee.EmployeeResponse, error) {
	employees, err := s.employeeRepo.Search(ctx, filter)
	if err != nil {
		return nil, err
	}
	return employee.ToResponseList(employees), nil
}

// UpdateEmployee implements employee.EmployeeService. The patch is merged over
// the stored record and the merged result re-validated, so a partial update
// can never leave an invalid record behind.
func (s *EmployeeServiceImpl) UpdateEmployee(ctx context.Context, id string, req employee.UpdateEmployeeRequest, editorID string) (employee.EmployeeResponse, error) {
	existing, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	merged := mergePatch(existing, req)

	if err := merged.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	email := strings.ToLower(strings.TrimSpace(merged.Email))
	if email != existing.Email {
		taken, err := s.employeeRepo.EmailExists(ctx, email, existing.ID)
		if err != nil {
			return employee.EmployeeResponse{}, fmt.Errorf("failed to check email uniqueness: %w", err)
		}
		if taken {
			return employee.EmployeeResponse{}, employee.ErrEmailExists
		}
	}

	joinDate, _ := validator.IsValidDate(merged.DateOfJoining)

	updated := employee.Employee{
		ID:            existing.ID,
		FirstName:     strings.TrimSpace(merged.FirstName),
		LastName:      strings.TrimSpace(merged.LastName),
		Email:         email,
		Phone:         merged.Phone,
		Department:    employee.Department(merged.Department),
		Position:      strings.TrimSpace(merged.Position),
		Salary:        *merged.Salary,
		DateOfJoining: joinDate,
		Address:       addressFromPayload(merged.Address),
		Status:        employee.Status(merged.Status),
		CreatedBy:     existing.CreatedBy,
		UpdatedBy:     &editorID,
	}

	persisted, err := s.employeeRepo.Update(ctx, updated)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return employee.ToResponse(persisted), nil
}

// DeleteEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) DeleteEmployee(ctx context.Context, id string) error {
	return s.employeeRepo.Delete(ctx, id)
}

// mergePatch lays the patch over the stored record and renders the result as
// a full candidate payload for re-validation.
func mergePatch(existing employee.Employee, req employee.UpdateEmployeeRequest) employee.CreateEmployeeRequest {
	merged := employee.CreateEmployeeRequest{
		FirstName:     existing.FirstName,
		LastName:      existing.LastName,
		Email:         existing.Email,
		Phone:         existing.Phone,
		Department:    string(existing.Department),
		Position:      existing.Position,
		Salary:        decimalPtr(existing.Salary),
		DateOfJoining: existing.DateOfJoining.Format("2006-01-02"),
		Status:        string(existing.Status),
	}
	if existing.Address != nil {
		merged.Address = &employee.AddressPayload{
			Street:  existing.Address.Street,
			City:    existing.Address.City,
			State:   existing.Address.State,
			ZipCode: existing.Address.ZipCode,
		}
	}

	if req.FirstName != nil {
		merged.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		merged.LastName = *req.LastName
	}
	if req.Email != nil {
		merged.Email = *req.Email
	}
	if req.Phone != nil {
		merged.Phone = *req.Phone
	}
	if req.Department != nil {
		merged.Department = *req.Department
	}
	if req.Position != nil {
		merged.Position = *req.Position
	}
	if req.Salary != nil {
		merged.Salary = req.Salary
	}
	if req.DateOfJoining != nil {
		merged.DateOfJoining = *req.DateOfJoining
	}
	if req.Address != nil {
		merged.Address = req.Address
	}
	if req.Status != nil {
		merged.Status = *req.Status
	}

	return merged
}

func addressFromPayload(p *employee.AddressPayload) *employee.Address {
	if p == nil {
		return nil
	}
	return &employee.Address{
		Street:  p.Street,
		City:    p.City,
		State:   p.State,
		ZipCode: p.ZipCode,
	}
}

func decimalPtr(d decimal.Decimal) *decimal.Decimal {
	return &d
}
