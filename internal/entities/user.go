package entities

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// User represents a registered account. Users are immutable after creation.
type User struct {
	ID           string    `json:"id"` // UUID
	Username     string    `json:"userName"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Never expose the hash in JSON
	CreatedAt    time.Time `json:"createdAt"`
}

// NewUser validates input and constructs a User with a fresh UUID.
// It is the only way to build a User, so invalid accounts never reach a repository.
// passwordHash must already be a bcrypt hash; plaintext never enters an entity.
func NewUser(username, email, passwordHash string) (*User, error) {
	if strings.TrimSpace(username) == "" {
		return nil, fmt.Errorf("%w: username cannot be empty", ErrValidation)
	}
	if !emailPattern.MatchString(email) {
		return nil, fmt.Errorf("%w: invalid email %q", ErrValidation, email)
	}
	if passwordHash == "" {
		return nil, fmt.Errorf("%w: password hash cannot be empty", ErrValidation)
	}

	return &User{
		ID:           uuid.NewString(),
		Username:     strings.TrimSpace(username),
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}, nil
}
