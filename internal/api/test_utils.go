package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/aptit/backend/internal/model"
	"github.com/aptit/backend/internal/recipe"
	"github.com/aptit/backend/internal/service"
)

// stubGemini returns a canned response so handler tests never touch the
// network.
type stubGemini struct {
	response string
	err      error
	lastReq  service.GenerateRequest
}

func (s *stubGemini) Generate(ctx context.Context, req service.GenerateRequest) (string, error) {
	s.lastReq = req
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

// setupTestRouter builds the full route table over an in-memory database,
// with no Redis and the given Gemini stub.
func setupTestRouter(t *testing.T, gemini service.GeminiAPI) (*gin.Engine, *gorm.DB) {
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.Recipe{}))

	router := gin.New()
	SetupAPI(router, db, nil, gemini, zap.NewNop())
	return router, db
}

// seedRecipe stores a small two-step recipe straight through gorm.
func seedRecipe(t *testing.T, db *gorm.DB, title string) *model.Recipe {
	rec := &model.Recipe{
		Title:       title,
		Description: "Seeded for tests",
		IngredientSections: model.IngredientSections{
			{Ingredients: []recipe.Ingredient{
				{Name: "flour", Amount: "500", Unit: "g"},
				{Name: "milk", Amount: "2", Unit: "dl"},
				{Name: "salt", Amount: "1", Unit: "tsp"},
			}},
		},
		Instructions: model.Instructions{
			{Text: "Whisk the flour and milk.", Ingredients: []recipe.Ingredient{{Name: "flour"}, {Name: "milk"}}},
			{Text: "Season with salt.", Ingredients: []recipe.Ingredient{{Name: "salt"}}},
			{Text: "Rest the batter."},
		},
		BaseServingsCount: 4,
		RecipeType:        "food",
		Language:          "en",
		MeasureSystem:     "metric",
		SourceURL:         "https://example.com/" + title,
	}
	require.NoError(t, db.Create(rec).Error)
	return rec
}

// performRequest runs one request through the router. A non-nil body is
// JSON-encoded.
func performRequest(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeJSON[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}
