package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"pokedex-api/internal/entities"
)

// PokemonRepository defines the interface for catalog persistence.
//
// Absence is not an error on read paths: GetByNameOrNumber and Update return
// (nil, nil) when nothing matches, and Delete returns false. Only duplicate
// keys and infrastructure failures surface as errors.
type PokemonRepository interface {
	// Add inserts a new entry. The pokedex_id uniqueness check must be atomic
	// with the insert; a duplicate returns ErrDuplicatePokedexID.
	Add(pokemon *entities.Pokemon) (*entities.Pokemon, error)
	// GetAll returns every stored entry.
	GetAll() ([]*entities.Pokemon, error)
	// GetByNameOrNumber returns the first entry matching the name
	// (case-insensitive) or the number. A match on either filter counts.
	GetByNameOrNumber(name *string, number *int) (*entities.Pokemon, error)
	// Update replaces pokedexId, name, type and updatedAt wholesale on the
	// entry with the given id. Never creates a row.
	Update(id string, pokemon *entities.Pokemon) (*entities.Pokemon, error)
	// Delete hard-removes the entry and reports whether a row was removed.
	Delete(id string) (bool, error)
}

type pokemonRepository struct {
	db *sql.DB
}

// NewPokemonRepository creates a Postgres-backed catalog repository.
// Its GetAll returns entries ordered by pokedex_id; other implementations do
// not promise any order.
func NewPokemonRepository(db *sql.DB) PokemonRepository {
	return &pokemonRepository{db: db}
}

func (r *pokemonRepository) Add(pokemon *entities.Pokemon) (*entities.Pokemon, error) {
	query := `
		INSERT INTO pokemon (id, pokedex_id, name, type, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, pokedex_id, name, type, created_at, updated_at
	`

	created, err := scanPokemon(r.db.QueryRow(query,
		pokemon.ID, pokemon.PokedexID, pokemon.Name, pokemon.Type, pokemon.CreatedAt, pokemon.UpdatedAt))
	if isUniqueViolation(err) {
		return nil, ErrDuplicatePokedexID
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create pokemon: %w", err)
	}

	return created, nil
}

func (r *pokemonRepository) GetAll() ([]*entities.Pokemon, error) {
	query := `
		SELECT id, pokedex_id, name, type, created_at, updated_at
		FROM pokemon
		ORDER BY pokedex_id
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list pokemon: %w", err)
	}
	defer rows.Close()

	pokemons := []*entities.Pokemon{}
	for rows.Next() {
		p, err := scanPokemon(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan pokemon: %w", err)
		}
		pokemons = append(pokemons, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list pokemon: %w", err)
	}

	return pokemons, nil
}

func (r *pokemonRepository) GetByNameOrNumber(name *string, number *int) (*entities.Pokemon, error) {
	// OR semantics: a match on either filter counts.
	query := `
		SELECT id, pokedex_id, name, type, created_at, updated_at
		FROM pokemon
		WHERE ($1::text IS NOT NULL AND LOWER(name) = LOWER($1))
		   OR ($2::int IS NOT NULL AND pokedex_id = $2)
		LIMIT 1
	`

	p, err := scanPokemon(r.db.QueryRow(query, name, number))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find pokemon: %w", err)
	}

	return p, nil
}

func (r *pokemonRepository) Update(id string, pokemon *entities.Pokemon) (*entities.Pokemon, error) {
	// created_at is deliberately untouched; only the caller-replaceable fields
	// and the update stamp change.
	query := `
		UPDATE pokemon
		SET pokedex_id = $1, name = $2, type = $3, updated_at = $4
		WHERE id = $5
		RETURNING id, pokedex_id, name, type, created_at, updated_at
	`

	updated, err := scanPokemon(r.db.QueryRow(query,
		pokemon.PokedexID, pokemon.Name, pokemon.Type, pokemon.UpdatedAt, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if isUniqueViolation(err) {
		return nil, ErrDuplicatePokedexID
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update pokemon: %w", err)
	}

	return updated, nil
}

func (r *pokemonRepository) Delete(id string) (bool, error) {
	result, err := r.db.Exec(`DELETE FROM pokemon WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete pokemon: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to delete pokemon: %w", err)
	}

	return affected > 0, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPokemon(row rowScanner) (*entities.Pokemon, error) {
	var p entities.Pokemon
	err := row.Scan(
		&p.ID,
		&p.PokedexID,
		&p.Name,
		&p.Type,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
