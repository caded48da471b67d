package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Roles a principal can hold. Role checks are exact-string; admin does not
// satisfy a "user" requirement.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User represents a row in the users table.
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	Role         string
	CreatedAt    time.Time
}

// Claims is the payload carried by a bearer token. Subject holds the
// principal's email.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}
