package classifier

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/spacesedan/commentlabeler/internal/models"
)

// Generator sends a single text prompt to a hosted model and returns its
// free-form reply.
type Generator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// Classifier labels one comment per model call. It is the only place where
// model failures are absorbed: Classify always returns a usable label.
type Classifier struct {
	gen Generator
}

func New(gen Generator) *Classifier {
	return &Classifier{gen: gen}
}

func (c *Classifier) Classify(ctx context.Context, text string) (result models.LabelResult) {
	start := time.Now()

	defer func() {
		if r := recover(); r != nil {
			result = models.Fallback(fmt.Errorf("model call panicked: %v", r))
		}
		if result.IsFallback() {
			slog.Warn("[Classifier] Falling back to default labels",
				slog.Int("text_length", len(text)),
				slog.Duration("elapsed", time.Since(start)),
				slog.String("error", result.Err.Error()))
		}
	}()

	raw, err := c.gen.GenerateText(ctx, BuildPrompt(text))
	if err != nil {
		return models.Fallback(err)
	}

	result = ParseLabelResponse(raw)
	if !result.IsFallback() {
		slog.Debug("[Classifier] Comment classified",
			slog.String("sentiment", result.Label.Sentiment),
			slog.String("stance", result.Label.Stance),
			slog.Duration("elapsed", time.Since(start)))
	}
	return result
}
