package seed

import (
	"errors"
	"fmt"
	"log"

	"golang.org/x/crypto/bcrypt"

	"pokedex-api/internal/entities"
	"pokedex-api/internal/repository"
)

// Seeder loads demo trainers and a starter catalog for local development.
// Seeding is skipped when data is already present, so it is safe to run on
// every startup.
type Seeder struct {
	userRepo    repository.UserRepository
	pokemonRepo repository.PokemonRepository
}

func NewSeeder(userRepo repository.UserRepository, pokemonRepo repository.PokemonRepository) *Seeder {
	return &Seeder{
		userRepo:    userRepo,
		pokemonRepo: pokemonRepo,
	}
}

// Run seeds users then pokemon. Errors are returned for the caller to log;
// seeding failure is never fatal to the server.
func (s *Seeder) Run() error {
	if err := s.seedUsers(); err != nil {
		return fmt.Errorf("failed to seed users: %w", err)
	}
	if err := s.seedPokemon(); err != nil {
		return fmt.Errorf("failed to seed pokemon: %w", err)
	}
	return nil
}

func (s *Seeder) seedUsers() error {
	demoUsers := []struct {
		username string
		email    string
		password string
	}{
		{"trainer_ash", "ash@pokemon.com", "Pikachu123!"},
		{"trainer_misty", "misty@pokemon.com", "Starmie456!"},
		{"trainer_brock", "brock@pokemon.com", "Onix789!"},
	}

	if _, err := s.userRepo.FindByEmail(demoUsers[0].email); err == nil {
		log.Println("Demo users already exist, skipping user seeding")
		return nil
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return err
	}

	for _, demo := range demoUsers {
		hash, err := bcrypt.GenerateFromPassword([]byte(demo.password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}

		user, err := entities.NewUser(demo.username, demo.email, string(hash))
		if err != nil {
			return err
		}

		if _, err := s.userRepo.Create(user); err != nil {
			return err
		}
	}

	log.Printf("Seeded %d demo users", len(demoUsers))
	return nil
}

func (s *Seeder) seedPokemon() error {
	existing, err := s.pokemonRepo.GetAll()
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		log.Println("Pokemon data already exists, skipping pokemon seeding")
		return nil
	}

	demoPokemons := []struct {
		pokedexID int
		name      string
		pokeType  string
	}{
		{1, "Bulbasaur", "Grass/Poison"},
		{4, "Charmander", "Fire"},
		{7, "Squirtle", "Water"},
		{25, "Pikachu", "Electric"},
		{6, "Charizard", "Fire/Flying"},
		{9, "Blastoise", "Water"},
		{150, "Mewtwo", "Psychic"},
		{151, "Mew", "Psychic"},
		{94, "Gengar", "Ghost/Poison"},
		{143, "Snorlax", "Normal"},
	}

	for _, demo := range demoPokemons {
		pokemon, err := entities.NewPokemon(demo.pokedexID, demo.name, demo.pokeType)
		if err != nil {
			return err
		}

		if _, err := s.pokemonRepo.Add(pokemon); err != nil {
			return err
		}
	}

	log.Printf("Seeded %d demo pokemon", len(demoPokemons))
	return nil
}
