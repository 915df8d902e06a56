package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/aptit/backend/internal/service"
)

// ExtractRecipe bookmarks the recipe behind a URL: the extractor structures
// the page and the result is stored immediately.
func (h *RecipeHandler) ExtractRecipe(c *gin.Context) {
	var req ExtractRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Language == "" {
		req.Language = "en"
	}
	if req.TargetSystem == "" {
		req.TargetSystem = "metric"
	}

	rec, err := h.extract.ExtractRecipe(c.Request.Context(), req.URL, req.Language, req.TargetSystem)
	if err != nil {
		code := service.ExtractionCode(err)
		h.logger.Warn("extraction failed",
			zap.String("url", req.URL),
			zap.String("code", string(code)),
			zap.Error(err),
		)
		status := http.StatusBadGateway
		if code == service.ErrCodePageNotSupported {
			status = http.StatusUnprocessableEntity
		}
		c.JSON(status, gin.H{"error": "Failed to extract recipe", "code": code})
		return
	}

	stored, err := h.recipes.CreateRecipe(c.Request.Context(), rec)
	if err != nil {
		h.logger.Error("failed to store extracted recipe", zap.String("url", req.URL), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save recipe"})
		return
	}

	c.JSON(http.StatusCreated, stored)
}
