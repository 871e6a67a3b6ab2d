package repository

import "errors"

// Sentinel errors shared by every repository implementation. Services match
// them with errors.Is, so Postgres and in-memory stores stay interchangeable.
var (
	// ErrUserExists is returned when an insert would violate the username
	// or email uniqueness constraint.
	ErrUserExists = errors.New("user with this email or username already exists")

	// ErrUserNotFound is returned by user lookups when no row matches.
	ErrUserNotFound = errors.New("user not found")

	// ErrDuplicatePokedexID is returned when a write would leave two live
	// entries sharing the same pokedexId.
	ErrDuplicatePokedexID = errors.New("pokemon with this pokedexId already exists")
)
