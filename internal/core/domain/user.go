package domain

import (
	"errors"
	"time"
)

const (
	RoleAdmin      = "admin"
	RoleTechnician = "technician"
)

// KnownRole reports whether role belongs to the closed role set. The access
// evaluator never trusts any other value, even if the store holds one.
func KnownRole(role string) bool {
	return role == RoleAdmin || role == RoleTechnician
}

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUnauthenticated = errors.New("unauthenticated")
var ErrUserExists = errors.New("user already exists")
var ErrUserNotFound = errors.New("user not found")
var ErrRoleNotConfigured = errors.New("role not configured")

// Role is the stored role record users reference. The set is fixed and
// seeded at deployment; provisioning fails if the requested role is absent.
type Role struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// User models an authenticated actor in the system.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// PublicUser is the projection of a User safe to return to clients.
type PublicUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Public strips everything a client must never see, notably the password hash.
func (u *User) Public() PublicUser {
	return PublicUser{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role}
}
