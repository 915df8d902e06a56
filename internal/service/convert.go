package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/aptit/backend/internal/model"
	"github.com/aptit/backend/internal/recipe"
)

// ConvertedData carries the re-measured ingredient and instruction lists
// produced by a unit-system conversion. The caller decides how to fold them
// back into the stored recipe.
type ConvertedData struct {
	Ingredients  model.IngredientSections `json:"ingredients"`
	Instructions model.Instructions       `json:"instructions"`
}

// ConvertService re-expresses a recipe's measurements in the other unit
// system via a Gemini call.
type ConvertService struct {
	gemini GeminiAPI
	logger *zap.Logger
}

// NewConvertService creates a new ConvertService instance.
func NewConvertService(gemini GeminiAPI, logger *zap.Logger) *ConvertService {
	return &ConvertService{gemini: gemini, logger: logger}
}

// ConvertUnits converts r's ingredients and instructions to targetSystem,
// keeping the recipe's language. Only the measurable lists are sent to the
// model; titles, timings and everything else stay untouched.
func (s *ConvertService) ConvertUnits(ctx context.Context, r *model.Recipe, targetSystem string) (*ConvertedData, error) {
	lang := "English"
	if r.Language == "sv" {
		lang = "Swedish"
	}
	system := fmt.Sprintf(`You are a conversion tool for professional recipes.
Convert the recipe to %s units.
Keep the language as %s.
Return ONLY JSON.`, strings.ToUpper(targetSystem), lang)

	subject, err := json.Marshal(map[string]any{
		"title":        r.Title,
		"ingredients":  r.IngredientSections,
		"instructions": r.Instructions,
	})
	if err != nil {
		return nil, fmt.Errorf("encoding recipe for conversion: %w", err)
	}
	prompt := fmt.Sprintf("Convert the following recipe to %s units: %s", targetSystem, subject)

	text, err := s.gemini.Generate(ctx, GenerateRequest{
		System:       system,
		Prompt:       prompt,
		JSONResponse: true,
	})
	if err != nil {
		return nil, err
	}

	payload, err := CarveJSON(text)
	if err != nil {
		return nil, err
	}

	var data ConvertedData
	if err := json.Unmarshal([]byte(payload), &data); err != nil {
		return nil, fmt.Errorf("decoding conversion payload: %w", err)
	}
	if len(recipe.SectionList(data.Ingredients).Flatten()) == 0 {
		return nil, fmt.Errorf("conversion returned no ingredients")
	}
	return &data, nil
}
