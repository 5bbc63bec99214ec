// File: services/intent/gemini.go
package intent

import (
	"context"
	"fmt"
	"strings"

	genai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const extractionPrompt = `You extract location names from travel queries.
Reply with ONLY the place name mentioned in the text below, nothing else.
If no place name is present, reply with exactly NONE.

Text: %s`

// GeminiExtractor asks Gemini for the place name in a query. It is a
// best-effort capability; callers must keep a deterministic fallback.
type GeminiExtractor struct {
	model *genai.GenerativeModel
}

func NewGeminiExtractor(apiKey string) (*GeminiExtractor, error) {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel("models/gemini-1.5-flash")
	return &GeminiExtractor{model: model}, nil
}

func (g *GeminiExtractor) ExtractPlace(ctx context.Context, text string) (string, error) {
	resp, err := g.model.GenerateContent(ctx, genai.Text(fmt.Sprintf(extractionPrompt, text)))
	if err != nil {
		return "", fmt.Errorf("gemini generate error: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("gemini returned no candidates")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			sb.WriteString(string(textPart))
		}
	}

	answer := strings.TrimSpace(sb.String())
	if strings.EqualFold(answer, "NONE") {
		return "", nil
	}
	return answer, nil
}
