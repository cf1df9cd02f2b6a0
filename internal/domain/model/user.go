package model

import "time"

// Role names a coarse permission level granted to a user.
type Role string

const (
	RoleAdmin    Role = "ROLE_ADMIN"
	RoleEmployee Role = "ROLE_EMPLEADO"
	RoleCustomer Role = "ROLE_USUARIO"
)

// User represents a registered customer or staff member of the store.
type User struct {
	ID           int64
	Run          string
	CheckDigit   string
	Name         string
	Surname1     string
	Surname2     string
	Email        string
	Phone        string
	BirthDate    time.Time
	PasswordHash string
	CreatedAt    time.Time
	Roles        []Role
}

// HasRole reports whether the user carries any of the given roles.
func (u *User) HasRole(roles ...Role) bool {
	for _, want := range roles {
		for _, have := range u.Roles {
			if have == want {
				return true
			}
		}
	}
	return false
}

// PrimaryRole collapses the role set to the single strongest role, which is
// the vocabulary the frontend expects after login.
func (u *User) PrimaryRole() string {
	switch {
	case u.HasRole(RoleAdmin):
		return "admin"
	case u.HasRole(RoleEmployee):
		return "empleado"
	default:
		return "usuario"
	}
}
