package gateway

import (
	"context"
	"encoding/json"
	"regexp"
	"strings"

	"github.com/pagechat/pagechat/models"
	"github.com/pagechat/pagechat/pkg/prompt"
)

const maxSuggestions = 5

var (
	// jsonArrayPattern extracts a bracketed span from free-form model
	// text. Best effort: the model is asked for a JSON array but not
	// guaranteed to produce one.
	jsonArrayPattern = regexp.MustCompile(`(?s)\[.*\]`)
	ordinalPrefix    = regexp.MustCompile(`^\d+\.\s*`)
)

// fallbackQuestions is the static page-type-keyed table used whenever
// generation or parsing fails. The general list is the catch-all.
var fallbackQuestions = map[models.PageType][]string{
	models.PageTypeDocs: {
		"How do I install this?",
		"What are the main features?",
		"Can you show me a code example?",
	},
	models.PageTypeECommerce: {
		"What are the product specifications?",
		"Is this product in stock?",
		"What payment methods are accepted?",
	},
	models.PageTypeResearch: {
		"What is the main finding of this paper?",
		"What methodology was used?",
		"What are the limitations of this study?",
	},
	models.PageTypeGeneral: {
		"What is this page about?",
		"Can you summarize the main points?",
		"How can I learn more about this topic?",
	},
}

// DefaultQuestions returns the fallback list for a page type, or the
// general list for anything unrecognized.
func DefaultQuestions(pageType models.PageType) []string {
	if questions, ok := fallbackQuestions[pageType]; ok {
		return questions
	}
	return fallbackQuestions[models.PageTypeGeneral]
}

// SuggestQuestions asks the model for questions a user might have about
// the page. It never fails: any generation or parse problem degrades to
// the static fallback table.
func (g *Gateway) SuggestQuestions(ctx context.Context, pctx *models.PageContext) []string {
	text, err := g.GenerateAnswer(ctx, prompt.SuggestionsRequest(pctx))
	if err != nil {
		g.logger.Warn("suggested questions generation failed", "error", err)
		return DefaultQuestions(pctx.PageType)
	}

	questions := ParseSuggestions(text)
	if len(questions) == 0 {
		return DefaultQuestions(pctx.PageType)
	}
	return questions
}

// ParseSuggestions recovers a question list from free-form model text:
// first a bracketed JSON array, else lines ending in "?" with leading
// ordinal markers stripped, capped at maxSuggestions.
func ParseSuggestions(text string) []string {
	if match := jsonArrayPattern.FindString(text); match != "" {
		var questions []string
		if err := json.Unmarshal([]byte(match), &questions); err == nil {
			return questions
		}
	}

	var questions []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasSuffix(line, "?") {
			continue
		}
		questions = append(questions, ordinalPrefix.ReplaceAllString(line, ""))
		if len(questions) == maxSuggestions {
			break
		}
	}
	return questions
}
