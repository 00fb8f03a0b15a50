package model

import "time"

// User roles
const (
	RoleAdmin     = "admin"
	RoleDoctor    = "doctor"
	RoleReception = "reception"
)

// User represents a staff account. Accounts are provisioned through the
// operator CLI and never mutated by the API.
type User struct {
	ID           int64     `json:"id" db:"id"`
	Username     string    `json:"username" db:"username"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Role         string    `json:"role" db:"role"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// PublicUser is the projection returned to clients. The hash never leaves
// the server.
type PublicUser struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

func (u *User) Public() PublicUser {
	return PublicUser{Username: u.Username, Role: u.Role}
}

// ValidRole reports whether role is one of the closed role set.
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleDoctor, RoleReception:
		return true
	}
	return false
}
