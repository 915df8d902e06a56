package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/aptit/backend/internal/service"
)

// IngredientHandler serves ingredient lookups that are not tied to a stored
// recipe.
type IngredientHandler struct {
	explain service.IExplainService
	logger  *zap.Logger
}

// NewIngredientHandler creates a new IngredientHandler instance.
func NewIngredientHandler(explain service.IExplainService, logger *zap.Logger) *IngredientHandler {
	return &IngredientHandler{explain: explain, logger: logger}
}

// RegisterRoutes wires the ingredient endpoints onto the v1 group.
func (h *IngredientHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/ingredients/explain", h.ExplainIngredient)
}

// ExplainIngredient describes an ingredient and suggests substitutes.
func (h *IngredientHandler) ExplainIngredient(c *gin.Context) {
	var req ExplainIngredientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Language == "" {
		req.Language = "en"
	}

	explanation, err := h.explain.ExplainIngredient(c.Request.Context(), req.Ingredient, req.Language)
	if err != nil {
		h.logger.Warn("ingredient explanation failed", zap.String("ingredient", req.Ingredient), zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to explain ingredient"})
		return
	}
	c.JSON(http.StatusOK, explanation)
}
