package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/aptit/backend/internal/model"
	"github.com/aptit/backend/internal/recipe"
)

// ViewRecipe returns the render model for the detail screen: ingredient
// amounts resolved into steps and every scalable number multiplied for the
// requested serving count. ?count=N picks the servings (defaults to the
// recipe's baseline), ?original=true renders the pre-conversion snapshot.
func (h *RecipeHandler) ViewRecipe(c *gin.Context) {
	rec, ok := h.loadRecipe(c)
	if !ok {
		return
	}

	original := c.Query("original") == "true"
	sections := rec.Sections()
	steps := rec.Steps()
	if original && len(rec.OriginalIngredients) > 0 {
		sections = recipe.SectionList(rec.OriginalIngredients)
		if len(rec.OriginalInstructions) > 0 {
			steps = []recipe.Instruction(rec.OriginalInstructions)
		}
	} else {
		original = false
	}

	baseline := rec.ScaleBaseline()
	count := baseline
	if raw := c.Query("count"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "count must be a positive integer"})
			return
		}
		count = n
	}
	multiplier := float64(count) / float64(baseline)

	c.JSON(http.StatusOK, buildRecipeView(rec, sections, steps, count, multiplier, original))
}

func buildRecipeView(
	rec *model.Recipe,
	sections recipe.SectionList,
	steps []recipe.Instruction,
	count int,
	multiplier float64,
	original bool,
) RecipeView {
	top := sections.Flatten()

	sectionViews := make([]SectionView, 0, len(sections))
	for _, section := range sections {
		ingredients := make([]IngredientView, 0, len(section.Ingredients))
		for _, ing := range section.Ingredients {
			ingredients = append(ingredients, ingredientView(ing, multiplier))
		}
		sectionViews = append(sectionViews, SectionView{
			Title:       section.Title,
			Ingredients: ingredients,
		})
	}

	instructionViews := make([]InstructionView, 0, len(steps))
	for _, step := range steps {
		resolved := recipe.ResolveInstruction(step, top)
		ingredients := make([]IngredientView, 0, len(resolved.Ingredients))
		for _, ing := range resolved.Ingredients {
			ingredients = append(ingredients, ingredientView(ing, multiplier))
		}
		instructionViews = append(instructionViews, InstructionView{
			Text:        resolved.Text,
			Ingredients: ingredients,
		})
	}

	return RecipeView{
		ID:            rec.ID.String(),
		Title:         rec.Title,
		Description:   rec.Description,
		Sections:      sectionViews,
		Instructions:  instructionViews,
		ServingsCount: count,
		BaseServings:  rec.BaseServingsCount,
		Multiplier:    multiplier,
		PrepTime:      recipe.FormatDuration(rec.PrepTime),
		CookTime:      recipe.FormatDuration(rec.CookTime),
		Servings:      rec.Servings,
		RecipeType:    rec.RecipeType,
		MeasureSystem: rec.MeasureSystem,
		Language:      rec.Language,
		SourceURL:     rec.SourceURL,
		ImageURL:      rec.ImageURL,
		Original:      original,
	}
}

func ingredientView(ing recipe.Ingredient, multiplier float64) IngredientView {
	return IngredientView{
		Name:   ing.Name,
		Amount: recipe.ScaleAmount(ing.Amount, multiplier),
		Unit:   ing.Unit,
		Line:   recipe.FormatIngredientLine(ing, multiplier),
	}
}
