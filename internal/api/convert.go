package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ConvertRecipe re-expresses a stored recipe in the other unit system. The
// previous lists move into the original snapshot so the source units stay
// one toggle away.
func (h *RecipeHandler) ConvertRecipe(c *gin.Context) {
	rec, ok := h.loadRecipe(c)
	if !ok {
		return
	}

	var req ConvertRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.TargetSystem == rec.MeasureSystem {
		c.JSON(http.StatusOK, rec)
		return
	}

	data, err := h.convert.ConvertUnits(c.Request.Context(), rec, req.TargetSystem)
	if err != nil {
		h.logger.Error("unit conversion failed",
			zap.String("id", rec.ID.String()),
			zap.String("target", req.TargetSystem),
			zap.Error(err),
		)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to convert recipe"})
		return
	}

	replacement := *rec
	if len(rec.OriginalIngredients) == 0 {
		replacement.OriginalIngredients = rec.IngredientSections
		replacement.OriginalInstructions = rec.Instructions
	}
	replacement.IngredientSections = data.Ingredients
	replacement.Instructions = data.Instructions
	replacement.MeasureSystem = req.TargetSystem

	updated, err := h.recipes.ReplaceRecipe(c.Request.Context(), rec.ID, &replacement)
	if err != nil {
		h.logger.Error("failed to store converted recipe", zap.String("id", rec.ID.String()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save converted recipe"})
		return
	}
	c.JSON(http.StatusOK, updated)
}
