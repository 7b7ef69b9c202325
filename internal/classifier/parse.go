package classifier

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/spacesedan/commentlabeler/internal/models"
)

var (
	jsonTagPattern = regexp.MustCompile(`(?i)^json`)

	errNotObject = errors.New("model response is not a JSON object")
)

// ParseLabelResponse turns raw model text into a label. It never fails: a
// response that cannot be decoded yields the fallback record, tagged with
// the decode error.
func ParseLabelResponse(text string) models.LabelResult {
	fields, err := decodeModelJSON(text)
	if err != nil {
		return models.Fallback(err)
	}

	return models.LabelResult{
		Label: models.LabelRecord{
			Sentiment:   fieldString(fields["sentiment"]),
			Stance:      fieldString(fields["stance"]),
			Toxicity:    fieldString(fields["toxicity"]),
			Topic:       fieldString(fields["topic"]),
			Explanation: fieldString(fields["explanation"]),
		},
	}
}

// cleanModelResponse strips a ``` fence and an optional json language tag.
func cleanModelResponse(text string) string {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```") {
		text = strings.Trim(text, "`")
		text = jsonTagPattern.ReplaceAllString(text, "")
		text = strings.TrimSpace(text)
	}
	return text
}

func decodeModelJSON(text string) (map[string]json.RawMessage, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(cleanModelResponse(text)), &fields); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, fmt.Errorf("%w (got %s)", errNotObject, typeErr.Value)
		}
		return nil, err
	}
	// A literal null decodes without error into a nil map.
	if fields == nil {
		return nil, fmt.Errorf("%w (got null)", errNotObject)
	}
	return fields, nil
}

// fieldString renders a JSON value as a CSV cell: strings unquoted, null and
// missing as empty, anything else as compact JSON.
func fieldString(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}

	var compact bytes.Buffer
	if err := json.Compact(&compact, raw); err != nil {
		return string(raw)
	}
	return compact.String()
}
