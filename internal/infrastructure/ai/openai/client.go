// Package openai provides recipe suggestion generation through an
// OpenAI-compatible chat completions API
package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/homehub/v2/internal/infrastructure/config"
	"github.com/homehub/v2/internal/ports/outbound"
)

const suggestionCount = 3

// Client implements outbound.RecipeGenerator against a chat
// completions endpoint. Failures are returned to the caller as-is;
// there is no silent fallback once this client is wired in.
type Client struct {
	cfg    config.AIConfig
	client *http.Client
	logger *zap.Logger
}

// NewClient creates a new chat completions client
func NewClient(cfg config.AIConfig, logger *zap.Logger) *Client {
	return &Client{
		cfg: cfg,
		client: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
		logger: logger.Named("openai-client"),
	}
}

type chatCompletionRequest struct {
	Model       string    `json:"model"`
	Messages    []message `json:"messages"`
	Temperature float64   `json:"temperature"`
	MaxTokens   int       `json:"max_tokens"`
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionResponse struct {
	Choices []choice `json:"choices"`
	Usage   usage    `json:"usage"`
}

type choice struct {
	Message      message `json:"message"`
	FinishReason string  `json:"finish_reason"`
}

type usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// Generate asks the model for recipe suggestions built from the given
// ingredient names
func (c *Client) Generate(ctx context.Context, ingredientNames []string, preference string) ([]outbound.GeneratedRecipe, error) {
	content, err := c.complete(ctx, buildSystemPrompt(), buildUserPrompt(ingredientNames, preference))
	if err != nil {
		return nil, err
	}

	recipes, err := parseSuggestions(content)
	if err != nil {
		c.logger.Error("Failed to parse model response", zap.Error(err))
		return nil, err
	}

	if len(recipes) != suggestionCount {
		c.logger.Warn("Model returned unexpected suggestion count",
			zap.Int("expected", suggestionCount),
			zap.Int("actual", len(recipes)),
		)
	}

	return recipes, nil
}

// buildSystemPrompt creates the system prompt for suggestion generation
func buildSystemPrompt() string {
	return fmt.Sprintf(`You are an expert home cook. Suggest exactly %d recipes that can be made with the ingredients the user names.

CRITICAL: Respond with ONLY a valid JSON object in the exact format below. No explanatory text, no markdown formatting.

{
  "recipes": [
    {
      "title": "Recipe Name",
      "description": "Brief description of the dish",
      "steps": [
        {"order": 1, "description": "First instruction"},
        {"order": 2, "description": "Second instruction"}
      ],
      "ingredients": [
        {"name": "ingredient name exactly as the user wrote it", "quantity": 1.5}
      ]
    }
  ]
}

Use each ingredient name exactly as the user wrote it. Do not invent ingredients beyond basic pantry staples, and only list ingredients from the user's list.`, suggestionCount)
}

// buildUserPrompt creates the user prompt for suggestion generation
func buildUserPrompt(ingredientNames []string, preference string) string {
	prompt := fmt.Sprintf("Available ingredients: %s", strings.Join(ingredientNames, ", "))
	if preference != "" {
		prompt += fmt.Sprintf("\nPreference: %s", preference)
	}
	return prompt
}

// complete makes a single chat completions call
func (c *Client) complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	reqBody := chatCompletionRequest{
		Model: c.cfg.Model,
		Messages: []message{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
		Temperature: c.cfg.Temperature,
		MaxTokens:   c.cfg.MaxTokens,
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+"/chat/completions", bytes.NewBuffer(jsonBody))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("API request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("API error %d: %s", resp.StatusCode, string(body))
	}

	var chatResp chatCompletionResponse
	if err := json.Unmarshal(body, &chatResp); err != nil {
		return "", fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if len(chatResp.Choices) == 0 {
		return "", fmt.Errorf("no response choices returned")
	}

	c.logger.Info("Chat completion succeeded",
		zap.Int("prompt_tokens", chatResp.Usage.PromptTokens),
		zap.Int("completion_tokens", chatResp.Usage.CompletionTokens),
	)

	return chatResp.Choices[0].Message.Content, nil
}
