package api

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aptit/backend/internal/model"
)

func TestListRecipes(t *testing.T) {
	router, db := setupTestRouter(t, &stubGemini{})
	seedRecipe(t, db, "Pancakes")
	seedRecipe(t, db, "Beef Stew")

	w := performRequest(t, router, http.MethodGet, "/api/v1/recipes", nil)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decodeJSON[map[string][]model.Recipe](t, w)
	assert.Len(t, resp["recipes"], 2)
}

func TestListRecipesSearch(t *testing.T) {
	router, db := setupTestRouter(t, &stubGemini{})
	seedRecipe(t, db, "Pancakes")
	seedRecipe(t, db, "Beef Stew")

	w := performRequest(t, router, http.MethodGet, "/api/v1/recipes?q=stew", nil)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decodeJSON[map[string][]model.Recipe](t, w)
	require.Len(t, resp["recipes"], 1)
	assert.Equal(t, "Beef Stew", resp["recipes"][0].Title)
}

func TestGetRecipe(t *testing.T) {
	router, db := setupTestRouter(t, &stubGemini{})
	seeded := seedRecipe(t, db, "Pancakes")

	w := performRequest(t, router, http.MethodGet, "/api/v1/recipes/"+seeded.ID.String(), nil)
	require.Equal(t, http.StatusOK, w.Code)

	got := decodeJSON[model.Recipe](t, w)
	assert.Equal(t, seeded.ID, got.ID)
	assert.Equal(t, "Pancakes", got.Title)
	require.Len(t, got.IngredientSections, 1)
	assert.Len(t, got.IngredientSections[0].Ingredients, 3)
}

func TestGetRecipeErrors(t *testing.T) {
	router, _ := setupTestRouter(t, &stubGemini{})

	w := performRequest(t, router, http.MethodGet, "/api/v1/recipes/not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = performRequest(t, router, http.MethodGet, "/api/v1/recipes/"+uuid.NewString(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestReplaceRecipe(t *testing.T) {
	router, db := setupTestRouter(t, &stubGemini{})
	seeded := seedRecipe(t, db, "Pancakes")

	w := performRequest(t, router, http.MethodPut, "/api/v1/recipes/"+seeded.ID.String(), map[string]any{
		"title":             "Thin Pancakes",
		"ingredients":       []string{"600 g flour"},
		"instructions":      []string{"Whisk."},
		"baseServingsCount": 6,
	})
	require.Equal(t, http.StatusOK, w.Code)

	got := decodeJSON[model.Recipe](t, w)
	assert.Equal(t, seeded.ID, got.ID)
	assert.Equal(t, "Thin Pancakes", got.Title)
	assert.Equal(t, 6, got.BaseServingsCount)

	var stored model.Recipe
	require.NoError(t, db.First(&stored, "id = ?", seeded.ID).Error)
	assert.Equal(t, "Thin Pancakes", stored.Title)
}

func TestDeleteRecipe(t *testing.T) {
	router, db := setupTestRouter(t, &stubGemini{})
	seeded := seedRecipe(t, db, "Pancakes")

	w := performRequest(t, router, http.MethodDelete, "/api/v1/recipes/"+seeded.ID.String(), nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = performRequest(t, router, http.MethodGet, "/api/v1/recipes/"+seeded.ID.String(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = performRequest(t, router, http.MethodDelete, "/api/v1/recipes/"+uuid.NewString(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHealth(t *testing.T) {
	router, _ := setupTestRouter(t, &stubGemini{})

	w := performRequest(t, router, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decodeJSON[map[string]any](t, w)
	checks, ok := resp["checks"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "ok", checks["database"])
	assert.Equal(t, "disabled", checks["redis"])
}
