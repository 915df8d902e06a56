package service

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/aptit/backend/internal/model"
)

const extractCacheTTL = 24 * time.Hour

const metricInstructions = `
- Weight: Use grams (g) or kilograms (kg).
- Volume: Use deciliters (dl), milliliters (ml), or liters (l).
- Temperature: Use Celsius (°C).
- Spoons: Use tesked (tsp) and matsked (tbsp).`

const imperialInstructions = `
- Weight: Use ounces (oz) or pounds (lb).
- Volume: Use cups, fluid ounces (fl oz), or gallons.
- Temperature: Use Fahrenheit (°F).
- Spoons: Use teaspoons (tsp) and tablespoons (tbsp).`

// ExtractService turns a recipe URL into a structured Recipe by prompting
// Gemini with web search enabled. Successful extractions are cached in Redis
// so re-bookmarking the same page does not burn another model call.
type ExtractService struct {
	gemini GeminiAPI
	redis  *redis.Client
	logger *zap.Logger
}

// NewExtractService creates a new ExtractService instance. The Redis client
// may be nil, in which case caching is disabled.
func NewExtractService(gemini GeminiAPI, redisClient *redis.Client, logger *zap.Logger) *ExtractService {
	return &ExtractService{
		gemini: gemini,
		redis:  redisClient,
		logger: logger,
	}
}

// ExtractRecipe fetches and structures the recipe behind sourceURL,
// translated to language and with all measurements converted to targetSystem.
// Failures carry an ExtractionError code: PAGE_NOT_SUPPORTED when the page
// holds no usable recipe, EXTRACTION_FAILED for everything else.
func (s *ExtractService) ExtractRecipe(ctx context.Context, sourceURL, language, targetSystem string) (*model.Recipe, error) {
	cacheKey := extractCacheKey(sourceURL, language, targetSystem)
	if cached := s.cachedRecipe(ctx, cacheKey); cached != nil {
		return cached, nil
	}

	system := extractSystemInstruction(language, targetSystem)
	prompt := fmt.Sprintf(
		"Find and extract the full recipe from this URL: %s. Ensure all units are accurately converted to %s.",
		sourceURL, targetSystem,
	)

	text, err := s.gemini.Generate(ctx, GenerateRequest{
		System:    system,
		Prompt:    prompt,
		WebSearch: true,
	})
	if err != nil {
		return nil, extractionFailed(err)
	}

	payload, err := CarveJSON(text)
	if err != nil {
		return nil, extractionFailed(err)
	}

	var rec model.Recipe
	if err := json.Unmarshal([]byte(payload), &rec); err != nil {
		return nil, extractionFailed(fmt.Errorf("decoding extraction payload: %w", err))
	}
	if rec.Title == "" || len(rec.FlatIngredients()) == 0 {
		return nil, pageNotSupported(fmt.Errorf("no recipe found at %s", sourceURL))
	}

	rec.SourceURL = sourceURL
	rec.Language = language
	rec.MeasureSystem = targetSystem
	rec.Normalize()

	s.cacheRecipe(ctx, cacheKey, &rec)
	return &rec, nil
}

func extractSystemInstruction(language, targetSystem string) string {
	units := imperialInstructions
	if targetSystem == "metric" {
		units = metricInstructions
	}
	lang := "English"
	if language == "sv" {
		lang = "Swedish"
	}

	return fmt.Sprintf(`You are an expert professional chef and baker.
Your goal is to extract recipe details from the provided source.

CRITICAL RULES:
1. The target measurement system is: %s.
2. Convert ALL measurements to: %s
3. Provide the "originalIngredients" exactly from the source.
4. Translate to %s.

REQUIRED JSON STRUCTURE:
{
  "title": "string",
  "description": "string",
  "ingredients": ["string"],
  "originalIngredients": ["string"],
  "baseServingsCount": number,
  "instructions": [
    {
      "text": "string",
      "ingredients": ["string"]
    }
  ],
  "prepTime": "string",
  "cookTime": "string",
  "servings": "string",
  "imageUrl": "string"
}`, strings.ToUpper(targetSystem), units, lang)
}

func extractCacheKey(sourceURL, language, targetSystem string) string {
	sum := sha256.Sum256([]byte(sourceURL + "|" + language + "|" + targetSystem))
	return fmt.Sprintf("recipe:extract:%x", sum)
}

func (s *ExtractService) cachedRecipe(ctx context.Context, key string) *model.Recipe {
	if s.redis == nil {
		return nil
	}
	data, err := s.redis.Get(ctx, key).Bytes()
	if err != nil {
		return nil
	}
	var rec model.Recipe
	if err := json.Unmarshal(data, &rec); err != nil {
		s.logger.Warn("dropping unreadable extraction cache entry", zap.String("key", key), zap.Error(err))
		return nil
	}
	rec.Normalize()
	return &rec
}

func (s *ExtractService) cacheRecipe(ctx context.Context, key string, rec *model.Recipe) {
	if s.redis == nil {
		return
	}
	data, err := json.Marshal(rec)
	if err != nil {
		return
	}
	if err := s.redis.Set(ctx, key, data, extractCacheTTL).Err(); err != nil {
		s.logger.Warn("failed to cache extraction", zap.String("key", key), zap.Error(err))
	}
}
