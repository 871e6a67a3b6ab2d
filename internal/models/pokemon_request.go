package models

// PokemonRequest represents the request body for creating or updating a
// catalog entry. The entity constructor remains the validation gate; the
// binding tags only reject structurally broken payloads early.
type PokemonRequest struct {
	PokedexID int    `json:"pokedexId" binding:"required,gt=0"`
	Name      string `json:"name" binding:"required"`
	Type      string `json:"type" binding:"required"`
}
