package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/aptit/backend/internal/model"
)

// GeminiAPI is the surface the LLM-backed services need from the Gemini
// client; tests substitute a canned implementation.
type GeminiAPI interface {
	Generate(ctx context.Context, req GenerateRequest) (string, error)
}

// IExtractService defines the interface for recipe extraction
type IExtractService interface {
	ExtractRecipe(ctx context.Context, sourceURL, language, targetSystem string) (*model.Recipe, error)
}

// IConvertService defines the interface for unit-system conversion
type IConvertService interface {
	ConvertUnits(ctx context.Context, r *model.Recipe, targetSystem string) (*ConvertedData, error)
}

// IExplainService defines the interface for ingredient explanations
type IExplainService interface {
	ExplainIngredient(ctx context.Context, ingredient, language string) (*IngredientExplanation, error)
}

// IRecipeService defines the interface for recipe storage operations
type IRecipeService interface {
	CreateRecipe(ctx context.Context, r *model.Recipe) (*model.Recipe, error)
	GetRecipe(ctx context.Context, id uuid.UUID) (*model.Recipe, error)
	ListRecipes(ctx context.Context, query string) ([]*model.Recipe, error)
	DeleteRecipe(ctx context.Context, id uuid.UUID) error
	ReplaceRecipe(ctx context.Context, id uuid.UUID, r *model.Recipe) (*model.Recipe, error)
}
