package service

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"pokedex-api/internal/entities"
	"pokedex-api/internal/jwt"
	"pokedex-api/internal/models"
	"pokedex-api/internal/repository"
)

// ErrInvalidCredentials is returned for both unknown email and wrong password.
// One uniform error keeps login responses from revealing whether an account
// exists.
var ErrInvalidCredentials = errors.New("invalid email or password")

// AuthService defines the interface for authentication business logic.
type AuthService interface {
	Register(req *models.RegisterRequest) (*entities.User, error)
	Login(req *models.LoginRequest) (string, error)
}

type authService struct {
	userRepo   repository.UserRepository
	jwtService *jwt.JWTService
}

// NewAuthService creates a new auth service.
func NewAuthService(userRepo repository.UserRepository, jwtService *jwt.JWTService) AuthService {
	return &authService{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

// Register creates a new user account with a bcrypt-hashed password.
// Uniqueness of username and email is enforced atomically by the repository;
// a duplicate surfaces as repository.ErrUserExists with no row written.
func (s *authService) Register(req *models.RegisterRequest) (*entities.User, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := entities.NewUser(req.UserName, req.Email, string(hashedPassword))
	if err != nil {
		return nil, err
	}

	created, err := s.userRepo.Create(user)
	if err != nil {
		return nil, err
	}

	return created, nil
}

// Login authenticates by email and password and returns a signed bearer token
// with the user ID as subject. Unknown email and failed hash verification
// return the identical ErrInvalidCredentials.
func (s *authService) Login(req *models.LoginRequest) (string, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return "", ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(user.ID, user.Username)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	return token, nil
}
