package identity

import (
	"errors"
	"time"
)

var (
	// ErrUserExists reports a duplicate email or username.
	ErrUserExists = errors.New("user already exists")
	// ErrUserNotFound is returned by stores when no record matches.
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidCredentials hides whether the email or the password was wrong.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrInvalidInput wraps registration validation failures.
	ErrInvalidInput = errors.New("invalid input")
)

// User is a registered account.
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash []byte
	CreatedAt    time.Time
}

// Registration carries the fields submitted to create an account.
type Registration struct {
	Username string
	Email    string
	Password string
}
