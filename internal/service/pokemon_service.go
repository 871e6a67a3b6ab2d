package service

import (
	"context"
	"time"

	"pokedex-api/internal/cache"
	"pokedex-api/internal/entities"
	"pokedex-api/internal/models"
	"pokedex-api/internal/repository"
)

const (
	listCacheKey = "pokemon:all"
	listCacheTTL = 1 * time.Hour
)

// PokemonService defines the interface for catalog business logic.
type PokemonService interface {
	Create(req *models.PokemonRequest) (*entities.Pokemon, error)
	GetAll() ([]*entities.Pokemon, error)
	GetByNameOrNumber(name *string, number *int) (*entities.Pokemon, error)
	Update(id string, req *models.PokemonRequest) (*entities.Pokemon, error)
	Delete(id string) (bool, error)
}

type pokemonService struct {
	repo  repository.PokemonRepository
	cache cache.Cache
	ctx   context.Context
}

// NewPokemonService creates a new catalog service. cacheClient may be nil,
// in which case every read goes straight to the repository.
func NewPokemonService(repo repository.PokemonRepository, cacheClient cache.Cache) PokemonService {
	svc := &pokemonService{
		repo: repo,
		ctx:  context.Background(),
	}
	if cacheClient != nil {
		svc.cache = cacheClient
	}
	return svc
}

// Create validates input through the entity constructor and inserts the entry.
// A duplicate pokedexId propagates as repository.ErrDuplicatePokedexID with no
// retry; uniqueness races are rejected, not resolved.
func (s *pokemonService) Create(req *models.PokemonRequest) (*entities.Pokemon, error) {
	pokemon, err := entities.NewPokemon(req.PokedexID, req.Name, req.Type)
	if err != nil {
		return nil, err
	}

	created, err := s.repo.Add(pokemon)
	if err != nil {
		return nil, err
	}

	s.invalidateListCache()
	return created, nil
}

// GetAll returns every catalog entry, serving from the cache when warm.
func (s *pokemonService) GetAll() ([]*entities.Pokemon, error) {
	if s.cache != nil {
		var cached []*entities.Pokemon
		if err := s.cache.GetJSON(s.ctx, listCacheKey, &cached); err == nil && cached != nil {
			return cached, nil
		}
	}

	pokemons, err := s.repo.GetAll()
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.SetJSON(s.ctx, listCacheKey, pokemons, listCacheTTL)
	}

	return pokemons, nil
}

// GetByNameOrNumber returns the first entry matching the name
// (case-insensitive) or the number; (nil, nil) when nothing matches.
func (s *pokemonService) GetByNameOrNumber(name *string, number *int) (*entities.Pokemon, error) {
	return s.repo.GetByNameOrNumber(name, number)
}

// Update replaces all caller-supplied fields wholesale and stamps updatedAt.
// Returns (nil, nil) when no entry with that id exists; never creates one.
func (s *pokemonService) Update(id string, req *models.PokemonRequest) (*entities.Pokemon, error) {
	replacement, err := entities.NewPokemon(req.PokedexID, req.Name, req.Type)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	replacement.UpdatedAt = &now

	updated, err := s.repo.Update(id, replacement)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, nil
	}

	s.invalidateListCache()
	return updated, nil
}

// Delete hard-removes the entry and reports whether a row was removed.
// A second delete of the same id returns false, not an error.
func (s *pokemonService) Delete(id string) (bool, error) {
	deleted, err := s.repo.Delete(id)
	if err != nil {
		return false, err
	}

	if deleted {
		s.invalidateListCache()
	}
	return deleted, nil
}

func (s *pokemonService) invalidateListCache() {
	if s.cache != nil {
		s.cache.Delete(s.ctx, listCacheKey)
	}
}
