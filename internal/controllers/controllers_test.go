package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"pokedex-api/internal/jwt"
	"pokedex-api/internal/middleware"
	"pokedex-api/internal/repository"
	"pokedex-api/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// newTestRouter wires the full HTTP surface against in-memory repositories,
// mirroring the route layout in main.go.
func newTestRouter(t *testing.T) (*gin.Engine, *jwt.JWTService) {
	t.Helper()

	userRepo := repository.NewMemoryUserRepository()
	pokemonRepo := repository.NewMemoryPokemonRepository()
	jwtService := jwt.NewJWTService("test-secret", time.Hour)

	authController := NewAuthController(service.NewAuthService(userRepo, jwtService))
	pokemonController := NewPokemonController(service.NewPokemonService(pokemonRepo, nil))

	router := gin.New()

	users := router.Group("/users")
	{
		users.POST("/register", authController.Register)
		users.POST("/login", authController.Login)
	}

	pokemon := router.Group("/pokemon")
	pokemon.Use(middleware.AuthMiddleware(jwtService))
	{
		pokemon.GET("/getall", pokemonController.GetAll)
		pokemon.GET("/search", pokemonController.Search)
		pokemon.POST("/create", pokemonController.Create)
		pokemon.PUT("/:id", pokemonController.Update)
		pokemon.DELETE("/:id", pokemonController.Delete)
	}

	return router, jwtService
}

func doJSON(t *testing.T, router *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

// registerAndLogin registers a demo trainer and returns a valid bearer token.
func registerAndLogin(t *testing.T, router *gin.Engine) string {
	t.Helper()

	w := doJSON(t, router, http.MethodPost, "/users/register", "", map[string]string{
		"userName": "trainer_ash",
		"email":    "ash@pokemon.com",
		"password": "Pikachu123!",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodPost, "/users/login", "", map[string]string{
		"email":    "ash@pokemon.com",
		"password": "Pikachu123!",
	})
	require.Equal(t, http.StatusOK, w.Code)

	token, ok := decodeBody(t, w)["token"].(string)
	require.True(t, ok)
	require.NotEmpty(t, token)
	return token
}
