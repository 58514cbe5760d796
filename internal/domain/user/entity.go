package user

import "time"

type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// IsValid reports whether the role is one of the known roles.
func (r Role) IsValid() bool {
	return r == RoleAdmin || r == RoleUser
}

// CanWrite reports whether the role may create, update, or delete employee
// records. Reads are open to every authenticated role.
func (r Role) CanWrite() bool {
	return r == RoleAdmin
}
