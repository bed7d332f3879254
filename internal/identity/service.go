package identity

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Service manages account registration and credential checks.
type Service struct {
	repo Repository
	cost int
}

// NewService creates an identity service. A cost outside bcrypt's range
// falls back to bcrypt.DefaultCost.
func NewService(repo Repository, cost int) *Service {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Service{repo: repo, cost: cost}
}

// Register validates the submission, hashes the password and stores the user.
func (s *Service) Register(ctx context.Context, reg Registration) (User, error) {
	username := strings.TrimSpace(reg.Username)
	email := normalizeEmail(reg.Email)

	switch {
	case username == "":
		return User{}, fmt.Errorf("%w: username is required", ErrInvalidInput)
	case email == "" || !strings.Contains(email, "@"):
		return User{}, fmt.Errorf("%w: a valid email is required", ErrInvalidInput)
	case reg.Password == "":
		return User{}, fmt.Errorf("%w: password is required", ErrInvalidInput)
	case len(reg.Password) > 72:
		return User{}, fmt.Errorf("%w: password must be at most 72 bytes", ErrInvalidInput)
	}

	if err := s.ensureAvailable(ctx, username, email); err != nil {
		return User{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(reg.Password), s.cost)
	if err != nil {
		return User{}, err
	}

	user := User{
		ID:           uuid.New().String(),
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return User{}, err
	}

	return user, nil
}

// Authenticate checks an email/password pair.
func (s *Service) Authenticate(ctx context.Context, email, password string) (User, error) {
	user, err := s.repo.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return User{}, ErrInvalidCredentials
		}
		return User{}, err
	}

	if err := bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(password)); err != nil {
		return User{}, ErrInvalidCredentials
	}

	return user, nil
}

// DeleteByEmail removes an account. Used for test cleanup.
func (s *Service) DeleteByEmail(ctx context.Context, email string) error {
	return s.repo.DeleteByEmail(ctx, normalizeEmail(email))
}

// ensureAvailable rejects a registration whose email or username is taken
// before any hashing work is done. The store's unique constraints still
// catch concurrent registrations.
func (s *Service) ensureAvailable(ctx context.Context, username, email string) error {
	if _, err := s.repo.FindByEmail(ctx, email); !errors.Is(err, ErrUserNotFound) {
		if err == nil {
			return ErrUserExists
		}
		return err
	}
	if _, err := s.repo.FindByUsername(ctx, username); !errors.Is(err, ErrUserNotFound) {
		if err == nil {
			return ErrUserExists
		}
		return err
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
