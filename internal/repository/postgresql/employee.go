package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/emstack/employee-records-go/internal/domain/employee"
	"github.com/emstack/employee-records-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolationCode = "23505"

const employeeColumns = `id, first_name, last_name, email, phone, department, position, salary,
		date_of_joining, street, city, state, zip_code, status, created_by, updated_by, created_at, updated_at`

type employeeRepositoryImpl struct {
	db database.Querier
}

func NewEmployeeRepository(db database.Querier) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanEmployee(row rowScanner) (employee.Employee, error) {
	var emp employee.Employee
	var street, city, state, zipCode *string

	err := row.Scan(
		&emp.ID, &emp.FirstName, &emp.LastName, &emp.Email, &emp.Phone,
		&emp.Department, &emp.Position, &emp.Salary, &emp.DateOfJoining,
		&street, &city, &state, &zipCode, &emp.Status,
		&emp.CreatedBy, &emp.UpdatedBy, &emp.CreatedAt, &emp.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, err
	}

	if street != nil || city != nil || state != nil || zipCode != nil {
		emp.Address = &employee.Address{
			Street:  deref(street),
			City:    deref(city),
			State:   deref(state),
			ZipCode: deref(zipCode),
		}
	}

	return emp, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func addressColumns(a *employee.Address) (street, city, state, zipCode *string) {
	if a == nil {
		return nil, nil, nil, nil
	}
	return &a.Street, &a.City, &a.State, &a.ZipCode
}

// translatePgError maps a unique-constraint violation on the email index to
// the domain sentinel. The index is what makes concurrent duplicate creates
// mutually exclusive.
func translatePgError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
		return employee.ErrEmailExists
	}
	return err
}

// Create implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	query := `
		INSERT INTO employees (
			first_name, last_name, email, phone, department, position, salary,
			date_of_joining, street, city, state, zip_code, status, created_by
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14
		)
		RETURNING ` + employeeColumns

	street, city, state, zipCode := addressColumns(newEmployee.Address)

	created, err := scanEmployee(e.db.QueryRow(ctx, query,
		newEmployee.FirstName, newEmployee.LastName, newEmployee.Email, newEmployee.Phone,
		newEmployee.Department, newEmployee.Position, newEmployee.Salary, newEmployee.DateOfJoining,
		street, city, state, zipCode, newEmployee.Status, newEmployee.CreatedBy,
	))
	if err != nil {
		return employee.Employee{}, translatePgError(err)
	}
	return created, nil
}

// GetByID implements employee.EmployeeRepository. A malformed id behaves like
// an absent one.
func (e *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	if _, err := uuid.Parse(id); err != nil {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1`
	return scanEmployee(e.db.QueryRow(ctx, query, id))
}

// List implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) List(ctx context.Context) ([]employee.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees ORDER BY created_at DESC`

	rows, err := e.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectEmployees(rows)
}

// Search implements employee.EmployeeRepository. Free text matches any of
// first name, last name, email, or position; department and status narrow the
// result exactly.
func (e *employeeRepositoryImpl) Search(ctx context.Context, filter employee.SearchEmployeeRequest) ([]employee.Employee, error) {
	var conditions []string
	var args []interface{}

	if filter.Text != "" {
		args = append(args, "%"+filter.Text+"%")
		n := fmt.Sprintf("$%d", len(args))
		conditions = append(conditions, fmt.Sprintf(
			"(first_name ILIKE %s OR last_name ILIKE %s OR email ILIKE %s OR position ILIKE %s)", n, n, n, n))
	}
	if filter.Department != "" {
		args = append(args, filter.Department)
		conditions = append(conditions, fmt.Sprintf("department = $%d", len(args)))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		conditions = append(conditions, fmt.Sprintf("status = $%d", len(args)))
	}

	query := `SELECT ` + employeeColumns + ` FROM employees`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY created_at DESC"

	rows, err := e.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectEmployees(rows)
}

func collectEmployees(rows pgx.Rows) ([]employee.Employee, error) {
	var employees []employee.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, emp)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return employees, nil
}

// Update implements employee.EmployeeRepository. The write is a single
// statement, so a record deleted concurrently surfaces as not found instead
// of being resurrected.
func (e *employeeRepositoryImpl) Update(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	if _, err := uuid.Parse(emp.ID); err != nil {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}

	query := `
		UPDATE employees SET
			first_name = $1, last_name = $2, email = $3, phone = $4, department = $5,
			position = $6, salary = $7, date_of_joining = $8, street = $9, city = $10,
			state = $11, zip_code = $12, status = $13, updated_by = $14, updated_at = NOW()
		WHERE id = $15
		RETURNING ` + employeeColumns

	street, city, state, zipCode := addressColumns(emp.Address)

	updated, err := scanEmployee(e.db.QueryRow(ctx, query,
		emp.FirstName, emp.LastName, emp.Email, emp.Phone, emp.Department,
		emp.Position, emp.Salary, emp.DateOfJoining, street, city,
		state, zipCode, emp.Status, emp.UpdatedBy, emp.ID,
	))
	if err != nil {
		return employee.Employee{}, translatePgError(err)
	}
	return updated, nil
}

// Delete implements employee.EmployeeRepository. Hard delete.
func (e *employeeRepositoryImpl) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return employee.ErrEmployeeNotFound
	}

	query := `DELETE FROM employees WHERE id = $1 RETURNING id`

	var deletedID string
	if err := e.db.QueryRow(ctx, query, id).Scan(&deletedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.ErrEmployeeNotFound
		}
		return err
	}
	return nil
}

// EmailExists implements employee.EmployeeRepository. Emails are stored
// lowercased, so equality here is the case-insensitive comparison.
func (e *employeeRepositoryImpl) EmailExists(ctx context.Context, email string, excludeID string) (bool, error) {
	var (
		query string
		args  []interface{}
	)
	if excludeID == "" {
		query = `SELECT EXISTS(SELECT 1 FROM employees WHERE email = $1)`
		args = []interface{}{email}
	} else {
		query = `SELECT EXISTS(SELECT 1 FROM employees WHERE email = $1 AND id <> $2)`
		args = []interface{}{email, excludeID}
	}

	var exists bool
	if err := e.db.QueryRow(ctx, query, args...).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}
