package entities

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Pokemon is a catalog entry keyed by its National Pokédex number.
// PokedexID must be unique across all live entries; the repository enforces that.
type Pokemon struct {
	ID        string     `json:"id"` // UUID
	PokedexID int        `json:"pokedexId"`
	Name      string     `json:"name"`
	Type      string     `json:"type"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt"` // nil until the first update
}

// NewPokemon validates input and constructs a Pokemon with a fresh UUID and
// CreatedAt set to now. It is the only way to build a Pokemon, so invalid
// entries fail here before any persistence attempt.
func NewPokemon(pokedexID int, name, pokemonType string) (*Pokemon, error) {
	if pokedexID <= 0 {
		return nil, fmt.Errorf("%w: pokedexId must be greater than 0", ErrValidation)
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: name cannot be empty", ErrValidation)
	}

	pokemonType = strings.TrimSpace(pokemonType)
	if pokemonType == "" {
		return nil, fmt.Errorf("%w: type cannot be empty", ErrValidation)
	}

	return &Pokemon{
		ID:        uuid.NewString(),
		PokedexID: pokedexID,
		Name:      name,
		Type:      pokemonType,
		CreatedAt: time.Now().UTC(),
	}, nil
}
