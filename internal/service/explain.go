package service

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const explainCacheTTL = 7 * 24 * time.Hour

// IngredientExplanation is a short description of an ingredient plus a few
// common substitutes, in the requested language.
type IngredientExplanation struct {
	Description string   `json:"description"`
	Substitutes []string `json:"substitutes"`
}

// ExplainService answers "what is this ingredient" questions. Explanations
// are effectively static content, so they cache for a week.
type ExplainService struct {
	gemini GeminiAPI
	redis  *redis.Client
	logger *zap.Logger
}

// NewExplainService creates a new ExplainService instance. The Redis client
// may be nil, in which case caching is disabled.
func NewExplainService(gemini GeminiAPI, redisClient *redis.Client, logger *zap.Logger) *ExplainService {
	return &ExplainService{
		gemini: gemini,
		redis:  redisClient,
		logger: logger,
	}
}

// ExplainIngredient describes ingredient and lists 2-3 substitutes in the
// given language.
func (s *ExplainService) ExplainIngredient(ctx context.Context, ingredient, language string) (*IngredientExplanation, error) {
	key := explainCacheKey(ingredient, language)
	if s.redis != nil {
		if data, err := s.redis.Get(ctx, key).Bytes(); err == nil {
			var cached IngredientExplanation
			if err := json.Unmarshal(data, &cached); err == nil {
				return &cached, nil
			}
		}
	}

	lang := "English"
	if language == "sv" {
		lang = "Swedish"
	}

	text, err := s.gemini.Generate(ctx, GenerateRequest{
		System:       fmt.Sprintf("Culinary expert. Explain ingredient in %s. Return JSON.", lang),
		Prompt:       fmt.Sprintf("Explain what %q is and list 2-3 common substitutes.", ingredient),
		JSONResponse: true,
	})
	if err != nil {
		return nil, err
	}

	payload, err := CarveJSON(text)
	if err != nil {
		return nil, err
	}

	var explanation IngredientExplanation
	if err := json.Unmarshal([]byte(payload), &explanation); err != nil {
		return nil, fmt.Errorf("decoding explanation payload: %w", err)
	}
	if explanation.Description == "" {
		return nil, fmt.Errorf("explanation had no description")
	}

	if s.redis != nil {
		if data, err := json.Marshal(&explanation); err == nil {
			if err := s.redis.Set(ctx, key, data, explainCacheTTL).Err(); err != nil {
				s.logger.Warn("failed to cache explanation", zap.String("key", key), zap.Error(err))
			}
		}
	}
	return &explanation, nil
}

func explainCacheKey(ingredient, language string) string {
	sum := sha256.Sum256([]byte(ingredient + "|" + language))
	return fmt.Sprintf("ingredient:explain:%x", sum)
}
