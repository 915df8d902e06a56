package api

import (
	"github.com/aptit/backend/internal/recipe"
)

// ExtractRecipeRequest asks the server to bookmark the recipe behind a URL.
type ExtractRecipeRequest struct {
	URL          string `json:"url" binding:"required,url"`
	Language     string `json:"language" binding:"omitempty,oneof=en sv"`
	TargetSystem string `json:"targetSystem" binding:"omitempty,oneof=metric imperial"`
}

// ConvertRecipeRequest switches a stored recipe to the other unit system.
type ConvertRecipeRequest struct {
	TargetSystem string `json:"targetSystem" binding:"required,oneof=metric imperial"`
}

// ExplainIngredientRequest asks what an ingredient is.
type ExplainIngredientRequest struct {
	Ingredient string `json:"ingredient" binding:"required"`
	Language   string `json:"language" binding:"omitempty,oneof=en sv"`
}

// Checklist action types.
const (
	ActionToggleIngredient     = "toggle-ingredient"
	ActionToggleStepIngredient = "toggle-step-ingredient"
	ActionToggleStep           = "toggle-step"
)

// ChecklistAction is one user interaction with the cooking checklist.
type ChecklistAction struct {
	Type  string `json:"type" binding:"required,oneof=toggle-ingredient toggle-step-ingredient toggle-step"`
	Step  int    `json:"step"`
	Index int    `json:"index"`
}

// ChecklistRequest carries the prior checklist state plus one action. The
// server holds no checklist state; the client round-trips it.
type ChecklistRequest struct {
	State  recipe.Checklist `json:"state"`
	Action ChecklistAction  `json:"action"`
}

// ChecklistResponse is the next checklist state.
type ChecklistResponse struct {
	State recipe.Checklist `json:"state"`
}

// IngredientView is one ingredient rendered at the requested scale.
type IngredientView struct {
	Name   string `json:"name"`
	Amount string `json:"amount,omitempty"`
	Unit   string `json:"unit,omitempty"`
	Line   string `json:"line"`
}

// SectionView is one ingredient section rendered at the requested scale.
type SectionView struct {
	Title       string           `json:"title,omitempty"`
	Ingredients []IngredientView `json:"ingredients"`
}

// InstructionView is one step with its resolved, scaled ingredients.
type InstructionView struct {
	Text        string           `json:"text"`
	Ingredients []IngredientView `json:"ingredients"`
}

// RecipeView is the full render model for the recipe detail screen: amounts
// resolved into steps and every scalable number multiplied up.
type RecipeView struct {
	ID            string            `json:"id"`
	Title         string            `json:"title"`
	Description   string            `json:"description,omitempty"`
	Sections      []SectionView     `json:"sections"`
	Instructions  []InstructionView `json:"instructions"`
	ServingsCount int               `json:"servingsCount"`
	BaseServings  int               `json:"baseServingsCount"`
	Multiplier    float64           `json:"multiplier"`
	PrepTime      string            `json:"prepTime,omitempty"`
	CookTime      string            `json:"cookTime,omitempty"`
	Servings      string            `json:"servings,omitempty"`
	RecipeType    string            `json:"recipeType"`
	MeasureSystem string            `json:"measureSystem"`
	Language      string            `json:"language"`
	SourceURL     string            `json:"sourceUrl,omitempty"`
	ImageURL      string            `json:"imageUrl,omitempty"`
	Original      bool              `json:"original"`
}
