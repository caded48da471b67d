// Package authtest provides an in-memory auth.UserRepository for tests.
package authtest

import (
	"context"
	"sync"
	"time"

	"github.com/daap14/authprofile/internal/auth"
)

// MemoryRepository is a concurrency-safe UserRepository that enforces email
// uniqueness the way the users table's unique index does.
type MemoryRepository struct {
	mu      sync.Mutex
	nextID  int64
	byEmail map[string]auth.User

	// FindErr, CreateErr and UpdateErr, when set, are returned instead of
	// touching the store.
	FindErr   error
	CreateErr error
	UpdateErr error
}

// NewMemoryRepository creates an empty MemoryRepository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{byEmail: make(map[string]auth.User)}
}

// FindByEmail returns a copy of the stored user or auth.ErrUserNotFound.
func (m *MemoryRepository) FindByEmail(_ context.Context, email string) (*auth.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.FindErr != nil {
		return nil, m.FindErr
	}
	u, ok := m.byEmail[email]
	if !ok {
		return nil, auth.ErrUserNotFound
	}
	return &u, nil
}

// Create stores u, assigning ID and CreatedAt.
func (m *MemoryRepository) Create(_ context.Context, u *auth.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.CreateErr != nil {
		return m.CreateErr
	}
	if _, ok := m.byEmail[u.Email]; ok {
		return auth.ErrDuplicateEmail
	}
	m.nextID++
	u.ID = m.nextID
	u.CreatedAt = time.Now().UTC()
	m.byEmail[u.Email] = *u
	return nil
}

// UpdateName changes the name of the user with id and returns a copy.
func (m *MemoryRepository) UpdateName(_ context.Context, id int64, name string) (*auth.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.UpdateErr != nil {
		return nil, m.UpdateErr
	}
	for email, u := range m.byEmail {
		if u.ID == id {
			u.Name = name
			m.byEmail[email] = u
			return &u, nil
		}
	}
	return nil, auth.ErrUserNotFound
}

// SetRole changes a stored user's role, simulating an out-of-band privilege change.
func (m *MemoryRepository) SetRole(email, role string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if u, ok := m.byEmail[email]; ok {
		u.Role = role
		m.byEmail[email] = u
	}
}

// Delete removes a stored user.
func (m *MemoryRepository) Delete(email string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.byEmail, email)
}
