package sentiment

import (
	"context"
	"fmt"
	"html"
	"regexp"
	"strings"

	"github.com/jonreiter/govader"
	"github.com/russross/blackfriday/v2"

	"github.com/spacesedan/commentlabeler/internal/models"
)

const (
	positiveThreshold = 0.20
	negativeThreshold = -0.20
)

var (
	markdownLinkPattern = regexp.MustCompile(`\[(.*?)\]\((https?:\/\/[^\s\)]+)\)`)
	urlPattern          = regexp.MustCompile(`https?://\S+|www\.\S+`)
	htmlTagPattern      = regexp.MustCompile(`<[^>]+>`)
)

func RemoveLinks(input string) string {
	input = markdownLinkPattern.ReplaceAllString(input, "$1") // Keep only the text
	input = urlPattern.ReplaceAllString(input, "")

	return strings.Join(strings.Fields(input), " ")
}

// ConvertMarkdownToText renders markdown and drops the markup so that
// emphasis and links do not skew the lexicon lookup.
func ConvertMarkdownToText(input string) string {
	input = RemoveLinks(input)
	output := blackfriday.Run([]byte(input),
		blackfriday.WithNoExtensions(),
		// No smartypants: curly quotes would hide contractions from the lexicon.
		blackfriday.WithRenderer(blackfriday.NewHTMLRenderer(blackfriday.HTMLRendererParameters{})))
	plainText := html.UnescapeString(htmlTagPattern.ReplaceAllString(string(output), ""))

	return strings.Join(strings.Fields(plainText), " ")
}

// Labeler produces labels locally from VADER polarity scores. Only the
// sentiment is derived from the text; the remaining fields carry the same
// neutral defaults as the fallback record.
type Labeler struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

func NewLabeler() *Labeler {
	return &Labeler{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

func (l *Labeler) Name() string {
	return "vader"
}

// AnalyzeWithVADER returns the compound score and its sentiment label.
func (l *Labeler) AnalyzeWithVADER(text string) (float64, string) {
	plainText := ConvertMarkdownToText(text)

	score := l.analyzer.PolarityScores(plainText).Compound

	var label string
	if score >= positiveThreshold {
		label = "positive"
	} else if score <= negativeThreshold {
		label = "negative"
	} else {
		label = "neutral"
	}

	return score, label
}

func (l *Labeler) Classify(_ context.Context, text string) models.LabelResult {
	score, label := l.AnalyzeWithVADER(text)

	return models.LabelResult{
		Label: models.LabelRecord{
			Sentiment:   label,
			Stance:      "mixed",
			Toxicity:    "none",
			Topic:       "unknown",
			Explanation: fmt.Sprintf("VADER compound score %.2f (offline labeler)", score),
		},
	}
}
