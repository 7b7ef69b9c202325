package clients

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

type OpenAIClient struct {
	Client *openai.Client
	model  string
}

// NewOpenAIClient builds a chat client without retries. opts are applied
// after the defaults.
func NewOpenAIClient(apiKey, model string, timeout time.Duration, opts ...option.RequestOption) (*OpenAIClient, error) {
	if apiKey == "" {
		return nil, errors.New("[OpenAIClient] missing OpenAI API key")
	}

	client := openai.NewClient(append([]option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithHTTPClient(&http.Client{Timeout: timeout}),
		option.WithHeader("User-Agent", USER_AGENT),
		option.WithMaxRetries(0),
	}, opts...)...)
	slog.Info("[OpenAIClient] OpenAI client initialized with custom HTTP timeout",
		slog.String("model", model),
		slog.Duration("timeout", timeout))

	return &OpenAIClient{Client: client, model: model}, nil
}

func (c *OpenAIClient) Name() string {
	return "openai:" + c.model
}

// GenerateText sends the prompt as a single user message and returns the
// content of the first choice.
func (c *OpenAIClient) GenerateText(ctx context.Context, prompt string) (string, error) {
	chatCompletion, err := c.Client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages: openai.F([]openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		}),
		Model: openai.F(openai.ChatModel(c.model)),
	})
	if err != nil {
		return "", fmt.Errorf("openai chat completion failed: %w", err)
	}

	if len(chatCompletion.Choices) == 0 || strings.TrimSpace(chatCompletion.Choices[0].Message.Content) == "" {
		return "", errors.New("openai returned an empty response")
	}

	return chatCompletion.Choices[0].Message.Content, nil
}
