package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aptit/backend/internal/recipe"
)

// AdvanceChecklist applies one checklist action to the client's state and
// returns the next state. The server stores nothing; the checklist is a
// session overlay the client round-trips on every toggle.
func (h *RecipeHandler) AdvanceChecklist(c *gin.Context) {
	rec, ok := h.loadRecipe(c)
	if !ok {
		return
	}

	var req ChecklistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	top := rec.FlatIngredients()
	steps := rec.Steps()

	state := req.State

	var next recipe.Checklist
	switch req.Action.Type {
	case ActionToggleIngredient:
		next = state.ToggleIngredient(top, steps, req.Action.Index)
	case ActionToggleStepIngredient:
		next = state.ToggleStepIngredient(top, steps, req.Action.Step, req.Action.Index)
	case ActionToggleStep:
		next = state.ToggleStep(top, steps, req.Action.Step)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown checklist action"})
		return
	}

	c.JSON(http.StatusOK, ChecklistResponse{State: next})
}
