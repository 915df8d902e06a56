package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/aptit/backend/internal/model"
)

// RecipeService handles recipe storage operations
type RecipeService struct {
	db *gorm.DB
}

// NewRecipeService creates a new RecipeService instance
func NewRecipeService(db *gorm.DB) *RecipeService {
	return &RecipeService{db: db}
}

// CreateRecipe persists a freshly extracted recipe.
func (s *RecipeService) CreateRecipe(ctx context.Context, rec *model.Recipe) (*model.Recipe, error) {
	rec.Normalize()
	if err := s.db.WithContext(ctx).Create(rec).Error; err != nil {
		return nil, err
	}
	return rec, nil
}

// GetRecipe retrieves a recipe by ID
func (s *RecipeService) GetRecipe(ctx context.Context, id uuid.UUID) (*model.Recipe, error) {
	var rec model.Recipe
	if err := s.db.WithContext(ctx).First(&rec, "id = ?", id).Error; err != nil {
		return nil, err
	}
	rec.Normalize()
	return &rec, nil
}

// ListRecipes returns recipes newest first, optionally filtered by a keyword
// against title, description and the ingredient JSON.
func (s *RecipeService) ListRecipes(ctx context.Context, query string) ([]*model.Recipe, error) {
	var recipes []model.Recipe

	dbQuery := s.db.WithContext(ctx).Order("created_at DESC")
	if query != "" {
		like := "%" + strings.ToLower(query) + "%"
		if s.db.Dialector.Name() == "postgres" {
			dbQuery = dbQuery.Where(
				"LOWER(title) LIKE ? OR LOWER(description) LIKE ? OR LOWER(ingredient_sections::text) LIKE ?",
				like, like, like)
		} else {
			dbQuery = dbQuery.Where(
				"LOWER(title) LIKE ? OR LOWER(description) LIKE ? OR LOWER(ingredient_sections) LIKE ?",
				like, like, like)
		}
	}
	if err := dbQuery.Find(&recipes).Error; err != nil {
		return nil, err
	}

	result := make([]*model.Recipe, len(recipes))
	for i := range recipes {
		recipes[i].Normalize()
		result[i] = &recipes[i]
	}
	return result, nil
}

// DeleteRecipe deletes a recipe
func (s *RecipeService) DeleteRecipe(ctx context.Context, id uuid.UUID) error {
	var rec model.Recipe
	if err := s.db.WithContext(ctx).First(&rec, "id = ?", id).Error; err != nil {
		return err
	}
	return s.db.WithContext(ctx).Delete(&model.Recipe{}, "id = ?", id).Error
}

// ReplaceRecipe swaps the stored recipe wholesale. Recipes are only ever
// mutated by full replacement, so there is no field-level update path.
func (s *RecipeService) ReplaceRecipe(ctx context.Context, id uuid.UUID, rec *model.Recipe) (*model.Recipe, error) {
	existing, err := s.GetRecipe(ctx, id)
	if err != nil {
		return nil, err
	}

	rec.ID = existing.ID
	rec.CreatedAt = existing.CreatedAt
	rec.Normalize()
	if err := s.db.WithContext(ctx).Save(rec).Error; err != nil {
		return nil, err
	}
	return rec, nil
}
