package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPokemon(t *testing.T) {
	t.Parallel()

	t.Run("valid input", func(t *testing.T) {
		t.Parallel()

		p, err := NewPokemon(25, "Pikachu", "Electric")
		require.NoError(t, err)

		assert.NotEmpty(t, p.ID)
		assert.Equal(t, 25, p.PokedexID)
		assert.Equal(t, "Pikachu", p.Name)
		assert.Equal(t, "Electric", p.Type)
		assert.False(t, p.CreatedAt.IsZero())
		assert.Nil(t, p.UpdatedAt)
	})

	t.Run("trims name and type", func(t *testing.T) {
		t.Parallel()

		p, err := NewPokemon(25, "  Pikachu ", " Electric  ")
		require.NoError(t, err)

		assert.Equal(t, "Pikachu", p.Name)
		assert.Equal(t, "Electric", p.Type)
	})

	t.Run("generates distinct ids", func(t *testing.T) {
		t.Parallel()

		a, err := NewPokemon(1, "Bulbasaur", "Grass/Poison")
		require.NoError(t, err)
		b, err := NewPokemon(4, "Charmander", "Fire")
		require.NoError(t, err)

		assert.NotEqual(t, a.ID, b.ID)
	})

	invalid := []struct {
		name      string
		pokedexID int
		pokeName  string
		pokeType  string
	}{
		{"zero pokedex id", 0, "Pikachu", "Electric"},
		{"negative pokedex id", -25, "Pikachu", "Electric"},
		{"empty name", 25, "", "Electric"},
		{"whitespace name", 25, "   ", "Electric"},
		{"empty type", 25, "Pikachu", ""},
		{"whitespace type", 25, "Pikachu", "\t "},
	}

	for _, tc := range invalid {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			p, err := NewPokemon(tc.pokedexID, tc.pokeName, tc.pokeType)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrValidation)
			assert.Nil(t, p)
		})
	}
}
