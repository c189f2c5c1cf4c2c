// Package prompt composes size-bounded model requests from page context
// and conversation history.
package prompt

import (
	"fmt"
	"strings"

	"github.com/pagechat/pagechat/models"
	"github.com/pagechat/pagechat/pkg/gemini"
)

const (
	// sectionExcerptLen bounds non-focus section content.
	sectionExcerptLen = 150
	// bodyFallbackLen bounds raw body text when a page has no sections.
	bodyFallbackLen = 1000
	// historyWindow is the number of recent turns forwarded to the model.
	historyWindow = 5
)

// Defaults for the focus marker. The keyword and ordinal identify the
// one section whose full text, rather than an excerpt, is worth the
// token budget.
const (
	DefaultFocusKeyword = "supervised fine-tuning"
	DefaultFocusOrdinal = "7"
)

// Composer builds model requests. The zero value composes with no focus
// section; NewComposer seeds the default focus marker.
type Composer struct {
	FocusKeyword string
	FocusOrdinal string
}

func NewComposer() Composer {
	return Composer{
		FocusKeyword: DefaultFocusKeyword,
		FocusOrdinal: DefaultFocusOrdinal,
	}
}

// ChatRequest renders the user's question with page context and the
// recent history window into a generation request. Deterministic and
// side-effect free.
func (c Composer) ChatRequest(query string, pctx *models.PageContext, history []models.ChatTurn) *gemini.GenerateRequest {
	text := fmt.Sprintf(`You are a helpful assistant that can answer questions about the current webpage.

Here is information about the current page:
%s

Previous conversation:
%s

User's question: %s

Please provide a helpful, accurate, and concise response based on the information provided about the webpage. If you don't have enough information to answer the question, acknowledge that and suggest what information might be needed.`,
		c.contextSummary(pctx), FormatHistory(history), query)

	return gemini.NewTextRequest(text)
}

// contextSummary renders the bounded page context block. Sections other
// than the focus section are truncated to a short excerpt.
func (c Composer) contextSummary(pctx *models.PageContext) string {
	if pctx == nil {
		return ""
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Page Title: %s\n", orUnknown(pctx.Title))
	fmt.Fprintf(&sb, "URL: %s\n", orUnknown(pctx.URL))
	fmt.Fprintf(&sb, "Page Type: %s\n", orUnknown(string(pctx.PageType)))

	if len(pctx.MainConcepts) > 0 {
		fmt.Fprintf(&sb, "Main Concepts: %s\n", strings.Join(pctx.MainConcepts, ", "))
	}

	sections := pctx.MainContent.Sections
	switch {
	case len(sections) > 0:
		sb.WriteString("\nPage Sections:\n")
		for i, section := range sections {
			fmt.Fprintf(&sb, "Section %d: %s\n", i+1, section.Title)
			if section.Content == "" {
				continue
			}
			if c.isFocusSection(section.Title) {
				fmt.Fprintf(&sb, "Content: %s\n\n", section.Content)
			} else {
				fmt.Fprintf(&sb, "Content: %s...\n", truncate(section.Content, sectionExcerptLen))
			}
		}
	case pctx.MainContent.Text != "":
		sb.WriteString("\nPage Content:\n")
		fmt.Fprintf(&sb, "%s...\n", truncate(pctx.MainContent.Text, bodyFallbackLen))
	}

	if p := pctx.Product; p != nil {
		sb.WriteString("\nProduct Information:\n")
		if p.Name != "" {
			fmt.Fprintf(&sb, "- Name: %s\n", p.Name)
		}
		if p.Price != "" {
			fmt.Fprintf(&sb, "- Price: %s\n", p.Price)
		}
		if p.Description != "" {
			fmt.Fprintf(&sb, "- Description: %s\n", p.Description)
		}
	}

	return sb.String()
}

// isFocusSection reports whether a section earns its full content in
// the prompt: its title contains the focus keyword (case-insensitive)
// or the focus ordinal.
func (c Composer) isFocusSection(title string) bool {
	if c.FocusKeyword != "" &&
		strings.Contains(strings.ToLower(title), strings.ToLower(c.FocusKeyword)) {
		return true
	}
	return c.FocusOrdinal != "" && strings.Contains(title, c.FocusOrdinal)
}

// FormatHistory renders the most recent turns as "Role: text" lines in
// chronological order. Never more than historyWindow turns.
func FormatHistory(history []models.ChatTurn) string {
	recent := models.LastTurns(history, historyWindow)
	lines := make([]string, 0, len(recent))
	for _, turn := range recent {
		role := "Assistant"
		if turn.Sender == models.SenderUser {
			role = "User"
		}
		lines = append(lines, fmt.Sprintf("%s: %s", role, turn.Text))
	}
	return strings.Join(lines, "\n")
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

func orUnknown(s string) string {
	if s == "" {
		return "Unknown"
	}
	return s
}
