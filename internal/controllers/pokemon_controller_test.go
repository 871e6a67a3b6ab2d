package controllers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pikachuPayload() map[string]any {
	return map[string]any{"pokedexId": 25, "name": "Pikachu", "type": "Electric"}
}

func TestPokemonRoutes_RequireToken(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t)

	routes := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/pokemon/getall"},
		{http.MethodGet, "/pokemon/search?name=Pikachu"},
		{http.MethodPost, "/pokemon/create"},
		{http.MethodPut, "/pokemon/some-id"},
		{http.MethodDelete, "/pokemon/some-id"},
	}

	for _, r := range routes {
		w := doJSON(t, router, r.method, r.path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "%s %s", r.method, r.path)
	}
}

func TestPokemonCreateAndGetAll(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t)
	token := registerAndLogin(t, router)

	w := doJSON(t, router, http.MethodPost, "/pokemon/create", token, pikachuPayload())
	require.Equal(t, http.StatusOK, w.Code)

	created := decodeBody(t, w)
	assert.Equal(t, float64(25), created["pokedexId"])
	assert.Equal(t, "Pikachu", created["name"])
	assert.Equal(t, "Electric", created["type"])
	assert.Nil(t, created["updatedAt"])

	w = doJSON(t, router, http.MethodGet, "/pokemon/getall", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var list []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Len(t, list, 1)
}

func TestPokemonCreate_Duplicate(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t)
	token := registerAndLogin(t, router)

	w := doJSON(t, router, http.MethodPost, "/pokemon/create", token, pikachuPayload())
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodPost, "/pokemon/create", token,
		map[string]any{"pokedexId": 25, "name": "Raichu", "type": "Electric"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decodeBody(t, w), "error")
}

func TestPokemonSearch(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t)
	token := registerAndLogin(t, router)

	w := doJSON(t, router, http.MethodPost, "/pokemon/create", token, pikachuPayload())
	require.Equal(t, http.StatusOK, w.Code)

	t.Run("by name case-insensitive", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/pokemon/search?name=pikachu", token, nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Pikachu", decodeBody(t, w)["name"])
	})

	t.Run("by number", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/pokemon/search?number=25", token, nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, float64(25), decodeBody(t, w)["pokedexId"])
	})

	t.Run("either filter may match", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/pokemon/search?name=Pikachu&number=999", token, nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("absent is 404 with message", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/pokemon/search?name=Raichu", token, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, decodeBody(t, w), "message")
	})

	t.Run("non-numeric number is 400", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/pokemon/search?number=abc", token, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestPokemonUpdate(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t)
	token := registerAndLogin(t, router)

	w := doJSON(t, router, http.MethodPost, "/pokemon/create", token, pikachuPayload())
	require.Equal(t, http.StatusOK, w.Code)
	id := decodeBody(t, w)["id"].(string)

	w = doJSON(t, router, http.MethodPut, "/pokemon/"+id, token,
		map[string]any{"pokedexId": 25, "name": "Pikachu Updated", "type": "Electric"})
	require.Equal(t, http.StatusOK, w.Code)

	updated := decodeBody(t, w)
	assert.Equal(t, "Pikachu Updated", updated["name"])
	assert.NotNil(t, updated["updatedAt"])

	t.Run("absent id is 404", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPut, "/pokemon/no-such-id", token,
			map[string]any{"pokedexId": 25, "name": "Pikachu", "type": "Electric"})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestPokemonDelete(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t)
	token := registerAndLogin(t, router)

	w := doJSON(t, router, http.MethodPost, "/pokemon/create", token, pikachuPayload())
	require.Equal(t, http.StatusOK, w.Code)
	id := decodeBody(t, w)["id"].(string)

	w = doJSON(t, router, http.MethodDelete, "/pokemon/"+id, token, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	// Second delete of the same id is a 404, observable idempotence.
	w = doJSON(t, router, http.MethodDelete, "/pokemon/"+id, token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, decodeBody(t, w), "message")
}
