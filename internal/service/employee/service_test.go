package employee

import (
	"context"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/emstack/employee-records-go/internal/domain/employee"
	"github.com/emstack/employee-records-go/internal/pkg/validator"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeEmployeeRepo mirrors the store semantics in memory: unique email,
// creation-time ordering, substring search over the four text fields.
type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
	seq       int
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{employees: make(map[string]employee.Employee)}
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	for _, emp := range f.employees {
		if emp.Email == newEmployee.Email {
			return employee.Employee{}, employee.ErrEmailExists
		}
	}
	f.seq++
	newEmployee.ID = uuid.NewString()
	newEmployee.CreatedAt = time.Unix(int64(f.seq), 0)
	newEmployee.UpdatedAt = newEmployee.CreatedAt
	f.employees[newEmployee.ID] = newEmployee
	return newEmployee, nil
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	emp, ok := f.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (f *fakeEmployeeRepo) List(ctx context.Context) ([]employee.Employee, error) {
	return f.Search(ctx, employee.SearchEmployeeRequest{})
}

func (f *fakeEmployeeRepo) Search(ctx context.Context, filter employee.SearchEmployeeRequest) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, emp := range f.employees {
		if filter.Text != "" {
			needle := strings.ToLower(filter.Text)
			haystacks := []string{emp.FirstName, emp.LastName, emp.Email, emp.Position}
			matched := false
			for _, h := range haystacks {
				if strings.Contains(strings.ToLower(h), needle) {
					matched = true
					break
				}
			}
			if !matched {
				continue
			}
		}
		if filter.Department != "" && string(emp.Department) != filter.Department {
			continue
		}
		if filter.Status != "" && string(emp.Status) != filter.Status {
			continue
		}
		out = append(out, emp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeEmployeeRepo) Update(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	existing, ok := f.employees[emp.ID]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	emp.CreatedAt = existing.CreatedAt
	emp.UpdatedAt = existing.UpdatedAt.Add(time.Second)
	f.employees[emp.ID] = emp
	return emp, nil
}

func (f *fakeEmployeeRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.employees[id]; !ok {
		return employee.ErrEmployeeNotFound
	}
	delete(f.employees, id)
	return nil
}

func (f *fakeEmployeeRepo) EmailExists(ctx context.Context, email string, excludeID string) (bool, error) {
	for id, emp := range f.employees {
		if emp.Email == email && id != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func newTestService() (employee.EmployeeService, *fakeEmployeeRepo) {
	repo := newFakeEmployeeRepo()
	return NewEmployeeService(repo), repo
}

func createRequest(email string) employee.CreateEmployeeRequest {
	salary := decimal.NewFromInt(1000)
	return employee.CreateEmployeeRequest{
		FirstName:     "Jo",
		LastName:      "Lee",
		Email:         email,
		Phone:         "1234567890",
		Department:    "IT",
		Position:      "Dev",
		Salary:        &salary,
		DateOfJoining: "2024-01-01",
	}
}

const creatorID = "11111111-1111-1111-1111-111111111111"
const editorID = "22222222-2222-2222-2222-222222222222"

func TestCreateEmployee_Defaults(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	created, err := svc.CreateEmployee(ctx, createRequest("JO@X.COM"), creatorID)
	require.NoError(t, err)

	// Email is case-folded, status defaults to Active.
	assert.Equal(t, "jo@x.com", created.Email)
	assert.Equal(t, "Active", created.Status)
	assert.Equal(t, creatorID, created.CreatedBy)
	assert.Nil(t, created.UpdatedBy)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, float64(1000), created.Salary)
	assert.Equal(t, "2024-01-01", created.DateOfJoining)
}

func TestCreateEmployee_ThenGet_RoundTrip(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	req := createRequest("round@trip.io")
	req.Address = &employee.AddressPayload{Street: "1 Main St", City: "Springfield"}
	created, err := svc.CreateEmployee(ctx, req, creatorID)
	require.NoError(t, err)

	got, err := svc.GetEmployee(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
	require.NotNil(t, got.Address)
	assert.Equal(t, "Springfield", got.Address.City)
}

func TestCreateEmployee_ValidationFailed_NothingPersisted(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	req := createRequest("jo@x.com")
	req.Phone = "12345"

	_, err := svc.CreateEmployee(ctx, req, creatorID)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs.Messages(), "Please enter a valid 10-digit phone number")
	assert.Empty(t, repo.employees)
}

func TestCreateEmployee_DuplicateEmail_CaseInsensitive(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.CreateEmployee(ctx, createRequest("dup@x.com"), creatorID)
	require.NoError(t, err)

	second := createRequest("DUP@X.COM")
	second.FirstName = "Someone"
	second.LastName = "Else"
	_, err = svc.CreateEmployee(ctx, second, creatorID)
	assert.ErrorIs(t, err, employee.ErrEmailExists)
}

func TestGetEmployee_NotFound(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.GetEmployee(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestListEmployees_MostRecentFirst(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	first, err := svc.CreateEmployee(ctx, createRequest("a@x.com"), creatorID)
	require.NoError(t, err)
	second, err := svc.CreateEmployee(ctx, createRequest("b@x.com"), creatorID)
	require.NoError(t, err)

	list, err := svc.ListEmployees(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID)
	assert.Equal(t, first.ID, list[1].ID)
}

func TestUpdateEmployee_EmptyPatch_OnlyStampsEditor(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	created, err := svc.CreateEmployee(ctx, createRequest("patch@x.com"), creatorID)
	require.NoError(t, err)

	updated, err := svc.UpdateEmployee(ctx, created.ID, employee.UpdateEmployeeRequest{}, editorID)
	require.NoError(t, err)

	assert.Equal(t, created.FirstName, updated.FirstName)
	assert.Equal(t, created.LastName, updated.LastName)
	assert.Equal(t, created.Email, updated.Email)
	assert.Equal(t, created.Phone, updated.Phone)
	assert.Equal(t, created.Department, updated.Department)
	assert.Equal(t, created.Position, updated.Position)
	assert.Equal(t, created.Salary, updated.Salary)
	assert.Equal(t, created.DateOfJoining, updated.DateOfJoining)
	assert.Equal(t, created.Status, updated.Status)
	assert.Equal(t, created.CreatedBy, updated.CreatedBy)
	require.NotNil(t, updated.UpdatedBy)
	assert.Equal(t, editorID, *updated.UpdatedBy)
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt))
}

func TestUpdateEmployee_MergedRecordRevalidated(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	created, err := svc.CreateEmployee(ctx, createRequest("merge@x.com"), creatorID)
	require.NoError(t, err)

	badPhone := "999"
	_, err = svc.UpdateEmployee(ctx, created.ID, employee.UpdateEmployeeRequest{Phone: &badPhone}, editorID)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)

	// Record unchanged after the failed patch.
	got, err := svc.GetEmployee(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "1234567890", got.Phone)
}

func TestUpdateEmployee_EmailChangeChecksOtherRecords(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.CreateEmployee(ctx, createRequest("taken@x.com"), creatorID)
	require.NoError(t, err)
	target, err := svc.CreateEmployee(ctx, createRequest("free@x.com"), creatorID)
	require.NoError(t, err)

	// Changing to a taken email fails.
	taken := "Taken@X.com"
	_, err = svc.UpdateEmployee(ctx, target.ID, employee.UpdateEmployeeRequest{Email: &taken}, editorID)
	assert.ErrorIs(t, err, employee.ErrEmailExists)

	// Re-submitting the record's own email is not a collision.
	own := "FREE@x.com"
	updated, err := svc.UpdateEmployee(ctx, target.ID, employee.UpdateEmployeeRequest{Email: &own}, editorID)
	require.NoError(t, err)
	assert.Equal(t, "free@x.com", updated.Email)
}

func TestUpdateEmployee_NotFound(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.UpdateEmployee(context.Background(), uuid.NewString(), employee.UpdateEmployeeRequest{}, editorID)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestDeleteEmployee_ThenGet_NotFound(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	created, err := svc.CreateEmployee(ctx, createRequest("gone@x.com"), creatorID)
	require.NoError(t, err)

	require.NoError(t, svc.DeleteEmployee(ctx, created.ID))

	_, err = svc.GetEmployee(ctx, created.ID)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)

	assert.ErrorIs(t, svc.DeleteEmployee(ctx, created.ID), employee.ErrEmployeeNotFound)
}

func TestSearchEmployees_TextMatchesAnyOfFourFields(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	byPosition := createRequest("pos@x.com")
	byPosition.Position = "Engineer"
	_, err := svc.CreateEmployee(ctx, byPosition, creatorID)
	require.NoError(t, err)

	byDepartment := createRequest("dept@x.com")
	byDepartment.Department = "Engineering"
	byDepartment.Position = "Engineering Manager"
	_, err = svc.CreateEmployee(ctx, byDepartment, creatorID)
	require.NoError(t, err)

	neither := createRequest("none@x.com")
	neither.Position = "Accountant"
	_, err = svc.CreateEmployee(ctx, neither, creatorID)
	require.NoError(t, err)

	// Case-insensitive substring across first name, last name, email, position.
	results, err := svc.SearchEmployees(ctx, employee.SearchEmployeeRequest{Text: "eng"})
	require.NoError(t, err)
	require.Len(t, results, 2)
	emails := []string{results[0].Email, results[1].Email}
	assert.ElementsMatch(t, []string{"pos@x.com", "dept@x.com"}, emails)

	// Department filter is an exact match.
	results, err = svc.SearchEmployees(ctx, employee.SearchEmployeeRequest{Department: "Engineering"})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "dept@x.com", results[0].Email)

	// Text and department combine with AND.
	results, err = svc.SearchEmployees(ctx, employee.SearchEmployeeRequest{Text: "eng", Department: "IT"})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "pos@x.com", results[0].Email)

	// No match is an empty result, not an error.
	results, err = svc.SearchEmployees(ctx, employee.SearchEmployeeRequest{Text: "zzz"})
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestSearchEmployees_EmptyFilterReturnsAll(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.CreateEmployee(ctx, createRequest("one@x.com"), creatorID)
	require.NoError(t, err)
	_, err = svc.CreateEmployee(ctx, createRequest("two@x.com"), creatorID)
	require.NoError(t, err)

	results, err := svc.SearchEmployees(ctx, employee.SearchEmployeeRequest{})
	require.NoError(t, err)
	assert.Len(t, results, 2)
}
