package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"pokedex-api/internal/entities"
	"pokedex-api/internal/models"
	"pokedex-api/internal/repository"
	"pokedex-api/internal/service"
)

type PokemonController struct {
	pokemonService service.PokemonService
}

func NewPokemonController(pokemonService service.PokemonService) *PokemonController {
	return &PokemonController{
		pokemonService: pokemonService,
	}
}

// GetAll handles GET /pokemon/getall
func (pc *PokemonController) GetAll(c *gin.Context) {
	pokemons, err := pc.pokemonService.GetAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to list pokemon",
		})
		return
	}

	c.JSON(http.StatusOK, pokemons)
}

// Search handles GET /pokemon/search?name=&number=
// Either filter matches; absence is a 404, never an error.
func (pc *PokemonController) Search(c *gin.Context) {
	var name *string
	if v := c.Query("name"); v != "" {
		name = &v
	}

	var number *int
	if v := c.Query("number"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "number must be an integer",
			})
			return
		}
		number = &n
	}

	pokemon, err := pc.pokemonService.GetByNameOrNumber(name, number)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to search pokemon",
		})
		return
	}
	if pokemon == nil {
		c.JSON(http.StatusNotFound, gin.H{
			"message": "No Pokémon found",
		})
		return
	}

	c.JSON(http.StatusOK, pokemon)
}

// Create handles POST /pokemon/create
func (pc *PokemonController) Create(c *gin.Context) {
	var req models.PokemonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request body",
		})
		return
	}

	pokemon, err := pc.pokemonService.Create(&req)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicatePokedexID) || errors.Is(err, entities.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": err.Error(),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to create pokemon",
		})
		return
	}

	c.JSON(http.StatusOK, pokemon)
}

// Update handles PUT /pokemon/:id
func (pc *PokemonController) Update(c *gin.Context) {
	id := c.Param("id")

	var req models.PokemonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request body",
		})
		return
	}

	pokemon, err := pc.pokemonService.Update(id, &req)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicatePokedexID) || errors.Is(err, entities.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": err.Error(),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to update pokemon",
		})
		return
	}
	if pokemon == nil {
		c.JSON(http.StatusNotFound, gin.H{
			"message": "Pokemon not found",
		})
		return
	}

	c.JSON(http.StatusOK, pokemon)
}

// Delete handles DELETE /pokemon/:id
func (pc *PokemonController) Delete(c *gin.Context) {
	id := c.Param("id")

	deleted, err := pc.pokemonService.Delete(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to delete pokemon",
		})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{
			"message": "Pokemon not found",
		})
		return
	}

	c.Status(http.StatusNoContent)
}
