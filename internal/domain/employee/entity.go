package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID            string
	FirstName     string
	LastName      string
	Email         string
	Phone         string
	Department    Department
	Position      string
	Salary        decimal.Decimal
	DateOfJoining time.Time
	Address       *Address
	Status        Status
	CreatedBy     string
	UpdatedBy     *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Address is free text, every field optional.
type Address struct {
	Street  string
	City    string
	State   string
	ZipCode string
}

type Department string

const (
	DepartmentIT          Department = "IT"
	DepartmentHR          Department = "HR"
	DepartmentFinance     Department = "Finance"
	DepartmentMarketing   Department = "Marketing"
	DepartmentSales       Department = "Sales"
	DepartmentOperations  Department = "Operations"
	DepartmentEngineering Department = "Engineering"
)

// Departments lists every valid department, in declaration order.
func Departments() []string {
	return []string{
		string(DepartmentIT),
		string(DepartmentHR),
		string(DepartmentFinance),
		string(DepartmentMarketing),
		string(DepartmentSales),
		string(DepartmentOperations),
		string(DepartmentEngineering),
	}
}

type Status string

const (
	StatusActive   Status = "Active"
	StatusInactive Status = "Inactive"
	StatusOnLeave  Status = "On Leave"
)

// Statuses lists every valid employment status.
func Statuses() []string {
	return []string{
		string(StatusActive),
		string(StatusInactive),
		string(StatusOnLeave),
	}
}
