// File: services/intent/classifier.go
package intent

import (
	"context"
	"regexp"
	"strings"

	"github.com/ujwal-s-r/travel-agent-deployed/models"

	"go.uber.org/zap"
)

// Classifier decides which capabilities a query is asking for and
// extracts a place-name candidate.
type Classifier interface {
	Classify(ctx context.Context, query string) models.Intent
}

// PlaceExtractor is an optional LLM-backed capability for pulling the
// place name out of free text. Implementations return ("", nil) when no
// place is present; errors trigger the rule-based fallback.
type PlaceExtractor interface {
	ExtractPlace(ctx context.Context, text string) (string, error)
}

var weatherKeywords = map[string]bool{
	"temperature":   true,
	"weather":       true,
	"rain":          true,
	"raining":       true,
	"forecast":      true,
	"climate":       true,
	"precipitation": true,
}

var placesKeywords = map[string]bool{
	"visit":       true,
	"visiting":    true,
	"attraction":  true,
	"attractions": true,
	"places":      true,
	"sightseeing": true,
	"tour":        true,
}

// Stop words the capitalized-word scan must skip: sentence openers and
// pronouns that happen to be capitalized in normal English.
var extractionStopWords = map[string]bool{
	"i": true, "i'm": true, "hey": true, "what": true, "what's": true,
	"and": true, "the": true, "is": true, "are": true, "am": true,
	"let's": true, "lets": true, "please": true, "tell": true, "hi": true,
}

// Phrase patterns tried in order; the first capture wins. The capture is
// the run of capitalized words following a travel preposition.
var placePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b(?:trip to|go(?:ing)? to|visit(?:ing)?)\s+([A-Z][a-zA-Z]*(?:\s+[A-Z][a-zA-Z]*)*)`),
	regexp.MustCompile(`\b(?:in|at|for)\s+([A-Z][a-zA-Z]*(?:\s+[A-Z][a-zA-Z]*)*)`),
}

// DefaultClassifier detects intent with keyword classes and extracts the
// place candidate via the optional LLM extractor, falling back to
// deterministic rules whenever the extractor is absent, fails, or returns
// an implausible answer.
type DefaultClassifier struct {
	Extractor PlaceExtractor
	Logger    *zap.Logger
}

func NewDefaultClassifier(extractor PlaceExtractor, logger *zap.Logger) *DefaultClassifier {
	return &DefaultClassifier{Extractor: extractor, Logger: logger}
}

func (c *DefaultClassifier) Classify(ctx context.Context, query string) models.Intent {
	wantsWeather, wantsPlaces := detectFlags(query)

	candidate := ""
	if c.Extractor != nil {
		extracted, err := c.Extractor.ExtractPlace(ctx, query)
		if err != nil {
			c.Logger.Warn("place extractor failed, using rule-based extraction", zap.Error(err))
		} else if plausiblePlaceName(extracted) {
			candidate = strings.TrimSpace(extracted)
		}
	}
	if candidate == "" {
		candidate = ExtractPlaceHeuristic(query)
	}

	return models.Intent{
		PlaceCandidate: candidate,
		WantsWeather:   wantsWeather,
		WantsPlaces:    wantsPlaces,
	}
}

// detectFlags matches keyword classes against the query tokens. When
// neither class is present both flags default to true: a bare "tell me
// about this place" query wants everything.
func detectFlags(query string) (wantsWeather, wantsPlaces bool) {
	lower := strings.ToLower(query)
	for _, token := range strings.Fields(lower) {
		token = strings.Trim(token, ",.?!:;\"'")
		if weatherKeywords[token] {
			wantsWeather = true
		}
		if placesKeywords[token] {
			wantsPlaces = true
		}
	}
	if strings.Contains(lower, "things to do") {
		wantsPlaces = true
	}
	if !wantsWeather && !wantsPlaces {
		wantsWeather = true
		wantsPlaces = true
	}
	return wantsWeather, wantsPlaces
}

// ExtractPlaceHeuristic pulls a place-name candidate from free text using
// phrase patterns, then a capitalized-word scan. It returns "" when no
// plausible candidate exists; it never invents a default.
func ExtractPlaceHeuristic(query string) string {
	query = strings.TrimSpace(query)
	if query == "" {
		return ""
	}

	for _, pattern := range placePatterns {
		if m := pattern.FindStringSubmatch(query); m != nil {
			if place := strings.TrimSpace(m[1]); place != "" {
				return place
			}
		}
	}

	// Scan for the first run of capitalized words that isn't a sentence
	// opener. Handles bare place names ("Bangalore") and names the
	// patterns missed.
	words := strings.Fields(query)
	for i, word := range words {
		trimmed := strings.Trim(word, ",.?!:;\"'")
		if len(trimmed) < 2 || !isCapitalized(trimmed) {
			continue
		}
		if extractionStopWords[strings.ToLower(trimmed)] {
			continue
		}
		parts := []string{trimmed}
		for _, next := range words[i+1:] {
			nextTrimmed := strings.Trim(next, ",.?!:;\"'")
			if !isCapitalized(nextTrimmed) || extractionStopWords[strings.ToLower(nextTrimmed)] {
				break
			}
			parts = append(parts, nextTrimmed)
		}
		return strings.Join(parts, " ")
	}

	return ""
}

func isCapitalized(word string) bool {
	if word == "" {
		return false
	}
	return word[0] >= 'A' && word[0] <= 'Z'
}

// plausiblePlaceName sanity-checks an LLM extraction before trusting it.
func plausiblePlaceName(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > 60 {
		return false
	}
	if strings.ContainsAny(s, "\n{}<>") {
		return false
	}
	upper := strings.ToUpper(s)
	if upper == "NONE" || upper == "N/A" || upper == "UNKNOWN" {
		return false
	}
	return true
}
