package classifier

import "fmt"

const classificationInstructions = `
You are an assistant that classifies public comments responding to an article.

For each comment, you MUST return a STRICT JSON object with:
- sentiment: one of ["positive", "neutral", "negative"]
- stance: one of ["supports_topic", "criticizes_topic", "mixed", "unrelated"]
- toxicity: one of ["none", "low", "medium", "high"]
- topic: a short phrase summarizing the main issue (e.g., "women in music", "nostalgia", "diversity", "industry sexism", "housing policy").
- explanation: 1-2 sentences explaining your labels in plain language.

Return ONLY valid JSON. Do not include code fences or extra commentary.
`

// BuildPrompt appends one comment to the fixed instruction block.
func BuildPrompt(comment string) string {
	return fmt.Sprintf("%s\n\nComment: \"%s\"\n\nRespond with JSON now.", classificationInstructions, comment)
}
