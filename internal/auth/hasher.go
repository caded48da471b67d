package auth

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// MaxPasswordBytes is bcrypt's input ceiling.
const MaxPasswordBytes = 72

// ErrPasswordTooLong is returned for passwords whose UTF-8 encoding exceeds MaxPasswordBytes.
var ErrPasswordTooLong = errors.New("password too long (max 72 bytes)")

// Hasher hashes and verifies passwords with bcrypt at a fixed cost.
type Hasher struct {
	cost int
}

// NewHasher creates a Hasher. A cost outside bcrypt's accepted range falls
// back to bcrypt.DefaultCost.
func NewHasher(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Hasher{cost: cost}
}

// Hash returns a salted bcrypt hash of password.
func (h *Hasher) Hash(password string) (string, error) {
	pw, err := passwordBytes(password)
	if err != nil {
		return "", err
	}

	hash, err := bcrypt.GenerateFromPassword(pw, h.cost)
	if err != nil {
		return "", fmt.Errorf("hashing password: %w", err)
	}
	return string(hash), nil
}

// Verify reports whether password matches hash. A mismatch is (false, nil);
// an over-long password is (false, ErrPasswordTooLong).
func (h *Hasher) Verify(password, hash string) (bool, error) {
	pw, err := passwordBytes(password)
	if err != nil {
		return false, err
	}

	err = bcrypt.CompareHashAndPassword([]byte(hash), pw)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	return false, fmt.Errorf("comparing password hash: %w", err)
}

func passwordBytes(password string) ([]byte, error) {
	b := []byte(password)
	if len(b) > MaxPasswordBytes {
		return nil, ErrPasswordTooLong
	}
	return b, nil
}
