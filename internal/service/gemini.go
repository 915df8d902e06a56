package service

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/aptit/backend/config"
)

const geminiBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// GeminiClient talks to the Gemini generateContent REST API, the extraction
// collaborator behind every LLM-backed operation in this service.
type GeminiClient struct {
	client *resty.Client
	model  string
	logger *zap.Logger
}

// GenerateRequest is one generation call. WebSearch lets the model ground
// itself on the live page when extracting; JSONResponse asks for a raw JSON
// body instead of prose.
type GenerateRequest struct {
	System       string
	Prompt       string
	JSONResponse bool
	WebSearch    bool
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiTool struct {
	GoogleSearch *struct{} `json:"googleSearch,omitempty"`
}

type geminiGenerationConfig struct {
	ResponseMIMEType string `json:"responseMimeType,omitempty"`
}

type geminiRequest struct {
	SystemInstruction *geminiContent          `json:"systemInstruction,omitempty"`
	Contents          []geminiContent         `json:"contents"`
	Tools             []geminiTool            `json:"tools,omitempty"`
	GenerationConfig  *geminiGenerationConfig `json:"generationConfig,omitempty"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

// NewGeminiClient creates a Gemini API client from configuration.
func NewGeminiClient(cfg *config.Config, logger *zap.Logger) *GeminiClient {
	client := resty.New().
		SetBaseURL(geminiBaseURL).
		SetTimeout(60 * time.Second).
		SetQueryParam("key", cfg.GeminiAPIKey)

	return &GeminiClient{
		client: client,
		model:  cfg.GeminiModel,
		logger: logger,
	}
}

// Generate sends one generation request and returns the text of the first
// candidate.
func (c *GeminiClient) Generate(ctx context.Context, req GenerateRequest) (string, error) {
	body := geminiRequest{
		Contents: []geminiContent{
			{Role: "user", Parts: []geminiPart{{Text: req.Prompt}}},
		},
	}
	if req.System != "" {
		body.SystemInstruction = &geminiContent{Parts: []geminiPart{{Text: req.System}}}
	}
	if req.WebSearch {
		body.Tools = []geminiTool{{GoogleSearch: &struct{}{}}}
	}
	if req.JSONResponse {
		body.GenerationConfig = &geminiGenerationConfig{ResponseMIMEType: "application/json"}
	}

	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(body).
		SetResult(&geminiResponse{}).
		Post(fmt.Sprintf("/models/%s:generateContent", c.model))
	if err != nil {
		return "", fmt.Errorf("gemini request failed: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		c.logger.Warn("gemini returned non-200",
			zap.Int("status", resp.StatusCode()),
			zap.String("model", c.model),
		)
		return "", fmt.Errorf("gemini API returned status %d", resp.StatusCode())
	}

	result, ok := resp.Result().(*geminiResponse)
	if !ok || len(result.Candidates) == 0 {
		return "", fmt.Errorf("gemini response had no candidates")
	}

	var b strings.Builder
	for _, part := range result.Candidates[0].Content.Parts {
		b.WriteString(part.Text)
	}
	text := b.String()
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("gemini response was empty")
	}
	return text, nil
}

// CarveJSON pulls the JSON object out of a model response: code fences are
// stripped and everything outside the outermost braces is discarded, since
// the model occasionally wraps its JSON in commentary.
func CarveJSON(text string) (string, error) {
	cleaned := strings.ReplaceAll(text, "```json", "")
	cleaned = strings.ReplaceAll(cleaned, "```", "")
	cleaned = strings.TrimSpace(cleaned)
	if cleaned == "" {
		return "", fmt.Errorf("empty response")
	}

	first := strings.Index(cleaned, "{")
	last := strings.LastIndex(cleaned, "}")
	if first == -1 || last == -1 || first >= last {
		return "", fmt.Errorf("no JSON object in response")
	}
	return cleaned[first : last+1], nil
}
