package clients

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"google.golang.org/genai"
)

type GeminiClient struct {
	client *genai.Client
	model  string
}

func NewGeminiClient(ctx context.Context, apiKey, model string, timeout time.Duration) (*GeminiClient, error) {
	return newGeminiClient(ctx, apiKey, model, timeout, genai.HTTPOptions{})
}

func newGeminiClient(ctx context.Context, apiKey, model string, timeout time.Duration, httpOpts genai.HTTPOptions) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, errors.New("[GeminiClient] missing Google API key")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      apiKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPClient:  &http.Client{Timeout: timeout},
		HTTPOptions: httpOpts,
	})
	if err != nil {
		return nil, fmt.Errorf("[GeminiClient] failed to create GenAI client: %w", err)
	}

	slog.Info("[GeminiClient] Gemini client initialized",
		slog.String("model", model),
		slog.Duration("timeout", timeout))

	return &GeminiClient{client: client, model: model}, nil
}

func (c *GeminiClient) Name() string {
	return "gemini:" + c.model
}

// GenerateText issues one generateContent call with the prompt as the only
// user turn.
func (c *GeminiClient) GenerateText(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("gemini generate content failed: %w", err)
	}

	text := resp.Text()
	if strings.TrimSpace(text) == "" {
		return "", errors.New("gemini returned an empty response")
	}
	return text, nil
}
