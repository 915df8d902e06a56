package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/aptit/backend/internal/model"
	"github.com/aptit/backend/internal/service"
)

// RecipeHandler serves the bookmarked-recipe endpoints.
type RecipeHandler struct {
	recipes service.IRecipeService
	extract service.IExtractService
	convert service.IConvertService
	logger  *zap.Logger
}

// NewRecipeHandler creates a new RecipeHandler instance.
func NewRecipeHandler(
	recipes service.IRecipeService,
	extract service.IExtractService,
	convert service.IConvertService,
	logger *zap.Logger,
) *RecipeHandler {
	return &RecipeHandler{
		recipes: recipes,
		extract: extract,
		convert: convert,
		logger:  logger,
	}
}

// RegisterRoutes wires the recipe endpoints onto the v1 group.
// extractLimiter guards the one endpoint that spends model tokens; pass nil
// to run without limiting.
func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup, extractLimiter gin.HandlerFunc) {
	recipes := router.Group("/recipes")
	{
		recipes.GET("", h.ListRecipes)
		recipes.GET("/:id", h.GetRecipe)
		recipes.GET("/:id/view", h.ViewRecipe)
		recipes.DELETE("/:id", h.DeleteRecipe)
		recipes.PUT("/:id", h.ReplaceRecipe)
		recipes.POST("/:id/checklist", h.AdvanceChecklist)
		recipes.POST("/:id/convert", h.ConvertRecipe)
		if extractLimiter != nil {
			recipes.POST("/extract", extractLimiter, h.ExtractRecipe)
		} else {
			recipes.POST("/extract", h.ExtractRecipe)
		}
	}
}

// ListRecipes returns all bookmarked recipes, newest first. ?q= filters by
// keyword.
func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	recipes, err := h.recipes.ListRecipes(c.Request.Context(), c.Query("q"))
	if err != nil {
		h.logger.Error("failed to list recipes", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch recipes"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"recipes": recipes})
}

// GetRecipe returns one stored recipe as persisted, unscaled.
func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	rec, ok := h.loadRecipe(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, rec)
}

// ReplaceRecipe swaps the stored recipe wholesale.
func (h *RecipeHandler) ReplaceRecipe(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid recipe ID"})
		return
	}

	var rec model.Recipe
	if err := c.ShouldBindJSON(&rec); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.recipes.ReplaceRecipe(c.Request.Context(), id, &rec)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
			return
		}
		h.logger.Error("failed to replace recipe", zap.String("id", id.String()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update recipe"})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteRecipe removes a bookmark.
func (h *RecipeHandler) DeleteRecipe(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid recipe ID"})
		return
	}

	if err := h.recipes.DeleteRecipe(c.Request.Context(), id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
			return
		}
		h.logger.Error("failed to delete recipe", zap.String("id", id.String()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete recipe"})
		return
	}
	c.Status(http.StatusNoContent)
}

// loadRecipe parses the :id param and fetches the recipe, writing the error
// response itself on failure.
func (h *RecipeHandler) loadRecipe(c *gin.Context) (*model.Recipe, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid recipe ID"})
		return nil, false
	}

	rec, err := h.recipes.GetRecipe(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
			return nil, false
		}
		h.logger.Error("failed to load recipe", zap.String("id", id.String()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch recipe"})
		return nil, false
	}
	return rec, true
}
