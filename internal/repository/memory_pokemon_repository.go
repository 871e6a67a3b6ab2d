package repository

import (
	"strings"
	"sync"

	"pokedex-api/internal/entities"
)

// MemoryPokemonRepository is the in-memory reference implementation of
// PokemonRepository. GetAll returns entries in unspecified order (map
// iteration); callers must not rely on ordering across implementations.
type MemoryPokemonRepository struct {
	mu       sync.RWMutex
	pokemons map[string]*entities.Pokemon // keyed by ID
}

// NewMemoryPokemonRepository creates an empty in-memory catalog repository.
func NewMemoryPokemonRepository() *MemoryPokemonRepository {
	return &MemoryPokemonRepository{pokemons: make(map[string]*entities.Pokemon)}
}

// Add inserts a new entry. The duplicate check and the insert happen under one
// lock, so two concurrent Adds with the same pokedexId have exactly one winner.
func (r *MemoryPokemonRepository) Add(pokemon *entities.Pokemon) (*entities.Pokemon, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.pokemons {
		if existing.PokedexID == pokemon.PokedexID {
			return nil, ErrDuplicatePokedexID
		}
	}

	stored := *pokemon
	r.pokemons[stored.ID] = &stored

	created := stored
	return &created, nil
}

func (r *MemoryPokemonRepository) GetAll() ([]*entities.Pokemon, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]*entities.Pokemon, 0, len(r.pokemons))
	for _, p := range r.pokemons {
		found := *p
		all = append(all, &found)
	}
	return all, nil
}

func (r *MemoryPokemonRepository) GetByNameOrNumber(name *string, number *int) (*entities.Pokemon, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.pokemons {
		if name != nil && strings.EqualFold(p.Name, *name) {
			found := *p
			return &found, nil
		}
		if number != nil && p.PokedexID == *number {
			found := *p
			return &found, nil
		}
	}
	return nil, nil
}

func (r *MemoryPokemonRepository) Update(id string, pokemon *entities.Pokemon) (*entities.Pokemon, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.pokemons[id]
	if !ok {
		return nil, nil
	}

	for otherID, existing := range r.pokemons {
		if otherID != id && existing.PokedexID == pokemon.PokedexID {
			return nil, ErrDuplicatePokedexID
		}
	}

	stored.PokedexID = pokemon.PokedexID
	stored.Name = pokemon.Name
	stored.Type = pokemon.Type
	stored.UpdatedAt = pokemon.UpdatedAt

	updated := *stored
	return &updated, nil
}

func (r *MemoryPokemonRepository) Delete(id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.pokemons[id]; !ok {
		return false, nil
	}
	delete(r.pokemons, id)
	return true, nil
}

// Len reports the number of stored entries.
func (r *MemoryPokemonRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.pokemons)
}
