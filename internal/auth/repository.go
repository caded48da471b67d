package auth

import (
	"context"
	"errors"
)

// ErrUserNotFound is returned when a user record is not found.
var ErrUserNotFound = errors.New("user not found")

// ErrDuplicateEmail is returned when the store rejects an insert on the
// unique email index.
var ErrDuplicateEmail = errors.New("email already exists")

// UserRepository provides operations on the users table. Implementations
// must enforce email uniqueness themselves.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*User, error)
	Create(ctx context.Context, user *User) error
	UpdateName(ctx context.Context, id int64, name string) (*User, error)
}
