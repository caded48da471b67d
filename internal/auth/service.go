package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

var (
	// ErrEmailAlreadyRegistered is returned by Signup when the email is taken.
	ErrEmailAlreadyRegistered = errors.New("email already registered")

	// ErrInvalidCredentials is returned by Login for both unknown emails and
	// wrong passwords.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUnauthorized is returned when a bearer token cannot be resolved to a principal.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrInvalidRole is returned when a principal would be created with an unknown role.
	ErrInvalidRole = errors.New("invalid role")
)

// Service provides account and authentication operations.
type Service struct {
	userRepo UserRepository
	hasher   *Hasher
	tokens   *TokenCodec

	// dummyHash is compared against when the email is unknown so both login
	// failure paths cost one bcrypt comparison.
	dummyHash string
}

// NewService creates a new auth Service.
func NewService(userRepo UserRepository, hasher *Hasher, tokens *TokenCodec) *Service {
	dummy, err := hasher.Hash("authprofile-dummy-password")
	if err != nil {
		slog.Warn("failed to prepare dummy password hash", "error", err)
	}

	return &Service{
		userRepo:  userRepo,
		hasher:    hasher,
		tokens:    tokens,
		dummyHash: dummy,
	}
}

// Signup creates a new principal with the given role. The existence check is
// a fast path; the store's unique index decides concurrent signups.
func (s *Service) Signup(ctx context.Context, name, email, password, role string) (*User, error) {
	if role != RoleUser && role != RoleAdmin {
		return nil, fmt.Errorf("%w: %q", ErrInvalidRole, role)
	}

	_, err := s.userRepo.FindByEmail(ctx, email)
	switch {
	case err == nil:
		return nil, ErrEmailAlreadyRegistered
	case !errors.Is(err, ErrUserNotFound):
		return nil, fmt.Errorf("looking up email: %w", err)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	u := &User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
	}
	if err := s.userRepo.Create(ctx, u); err != nil {
		if errors.Is(err, ErrDuplicateEmail) {
			return nil, ErrEmailAlreadyRegistered
		}
		return nil, fmt.Errorf("creating user: %w", err)
	}

	return u, nil
}

// ProvisionAdmin creates a principal with the admin role. Only mounted in
// development environments.
func (s *Service) ProvisionAdmin(ctx context.Context, name, email, password string) (*User, error) {
	return s.Signup(ctx, name, email, password, RoleAdmin)
}

// Login resolves email and password to a principal. Unknown email and wrong
// password both yield ErrInvalidCredentials.
func (s *Service) Login(ctx context.Context, email, password string) (*User, error) {
	u, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			_, _ = s.hasher.Verify(password, s.dummyHash)
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("looking up email: %w", err)
	}

	ok, err := s.hasher.Verify(password, u.PasswordHash)
	if err != nil {
		if errors.Is(err, ErrPasswordTooLong) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("verifying password: %w", err)
	}
	if !ok {
		return nil, ErrInvalidCredentials
	}

	return u, nil
}

// IssueToken signs a bearer token for u.
func (s *Service) IssueToken(u *User) (string, error) {
	return s.tokens.Issue(u.Email, u.Role)
}

// Authenticate resolves a raw bearer token to the principal currently in the
// store. The returned user's Role comes from the store, not from the token.
func (s *Service) Authenticate(ctx context.Context, token string) (*User, error) {
	claims, err := s.tokens.Decode(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnauthorized, err)
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("%w: missing subject", ErrUnauthorized)
	}

	u, err := s.userRepo.FindByEmail(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, fmt.Errorf("%w: subject not found", ErrUnauthorized)
		}
		return nil, fmt.Errorf("looking up token subject: %w", err)
	}

	return u, nil
}

// UpdateName changes the display name of u. Other columns are left as the
// store has them, so the returned user reflects any concurrent role change.
func (s *Service) UpdateName(ctx context.Context, u *User, name string) (*User, error) {
	updated, err := s.userRepo.UpdateName(ctx, u.ID, name)
	if err != nil {
		return nil, fmt.Errorf("updating user: %w", err)
	}
	return updated, nil
}
