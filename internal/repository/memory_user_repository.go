package repository

import (
	"strings"
	"sync"

	"pokedex-api/internal/entities"
)

// MemoryUserRepository is the in-memory reference implementation of
// UserRepository. It backs the tests and documents the contract semantics
// without a database.
type MemoryUserRepository struct {
	mu    sync.RWMutex
	users map[string]*entities.User // keyed by ID
}

// NewMemoryUserRepository creates an empty in-memory user repository.
func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{users: make(map[string]*entities.User)}
}

// Create inserts a new user. The duplicate check and the insert happen under
// one lock, mirroring the unique-index atomicity of the Postgres store.
func (r *MemoryUserRepository) Create(user *entities.User) (*entities.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.users {
		if strings.EqualFold(existing.Email, user.Email) ||
			strings.EqualFold(existing.Username, user.Username) {
			return nil, ErrUserExists
		}
	}

	stored := *user
	r.users[stored.ID] = &stored

	created := stored
	return &created, nil
}

// FindByEmail finds a user by email, the canonical login identifier.
func (r *MemoryUserRepository) FindByEmail(email string) (*entities.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if strings.EqualFold(user.Email, email) {
			found := *user
			return &found, nil
		}
	}
	return nil, ErrUserNotFound
}

// FindByID finds a user by ID.
func (r *MemoryUserRepository) FindByID(id string) (*entities.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	found := *user
	return &found, nil
}

// Len reports the number of stored users.
func (r *MemoryUserRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.users)
}
