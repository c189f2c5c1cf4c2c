package prompt

import (
	"fmt"
	"strings"
	"testing"

	"github.com/pagechat/pagechat/models"
)

func docsContext() *models.PageContext {
	return &models.PageContext{
		Title:        "Guide to Testing",
		URL:          "https://example.com/guide",
		Domain:       "example.com",
		PageType:     models.PageTypeDocs,
		MainConcepts: []string{"Intro", "Details"},
		MainContent: models.MainContent{
			Text: "Welcome to the guide.",
			Sections: []models.Section{
				{Title: "Intro", Content: "Welcome to the guide."},
				{Title: "Details", Content: strings.Repeat("x", 300)},
			},
		},
	}
}

func TestChatRequest_ContextBlock(t *testing.T) {
	req := NewComposer().ChatRequest("What is this?", docsContext(), nil)

	text := req.Contents[0].Parts[0].Text
	for _, want := range []string{
		"Page Title: Guide to Testing",
		"URL: https://example.com/guide",
		"Page Type: technical-documentation",
		"Main Concepts: Intro, Details",
		"Section 1: Intro",
		"Section 2: Details",
		"User's question: What is this?",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestChatRequest_SectionTruncation(t *testing.T) {
	req := NewComposer().ChatRequest("q", docsContext(), nil)
	text := req.Contents[0].Parts[0].Text

	// Short section content fits entirely but still gets the ellipsis.
	if !strings.Contains(text, "Content: Welcome to the guide....") {
		t.Errorf("prompt = %q, want short section with trailing ellipsis", text)
	}
	// Long non-focus content is cut to the excerpt length.
	want := "Content: " + strings.Repeat("x", 150) + "..."
	if !strings.Contains(text, want) {
		t.Error("prompt does not truncate long section content to 150 chars")
	}
	if strings.Contains(text, strings.Repeat("x", 151)) {
		t.Error("prompt carries more than 150 chars of non-focus section content")
	}
}

func TestChatRequest_FocusSectionFullContent(t *testing.T) {
	c := Composer{FocusKeyword: "details"}
	req := c.ChatRequest("q", docsContext(), nil)
	text := req.Contents[0].Parts[0].Text

	// Keyword match is case-insensitive and earns the full content.
	if !strings.Contains(text, strings.Repeat("x", 300)) {
		t.Error("focus section content was truncated")
	}
}

func TestChatRequest_FocusOrdinal(t *testing.T) {
	pctx := docsContext()
	pctx.MainContent.Sections[1].Title = "Chapter 7"
	c := Composer{FocusOrdinal: "7"}
	req := c.ChatRequest("q", pctx, nil)

	if !strings.Contains(req.Contents[0].Parts[0].Text, strings.Repeat("x", 300)) {
		t.Error("ordinal-matched section content was truncated")
	}
}

func TestChatRequest_BodyFallback(t *testing.T) {
	pctx := docsContext()
	pctx.MainContent.Sections = nil
	pctx.MainContent.Text = strings.Repeat("y", 1200)
	req := NewComposer().ChatRequest("q", pctx, nil)
	text := req.Contents[0].Parts[0].Text

	if !strings.Contains(text, "Page Content:\n"+strings.Repeat("y", 1000)+"...") {
		t.Error("body fallback not truncated to 1000 chars")
	}
	if strings.Contains(text, strings.Repeat("y", 1001)) {
		t.Error("body fallback carries more than 1000 chars")
	}
}

func TestChatRequest_ProductBlock(t *testing.T) {
	pctx := docsContext()
	pctx.Product = &models.ProductInfo{Name: "Acme Anvil", Price: "$19.99"}
	req := NewComposer().ChatRequest("q", pctx, nil)
	text := req.Contents[0].Parts[0].Text

	for _, want := range []string{"Product Information:", "- Name: Acme Anvil", "- Price: $19.99"} {
		if !strings.Contains(text, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
	if strings.Contains(text, "- Description:") {
		t.Error("prompt renders an empty description field")
	}
}

func TestChatRequest_NilContext(t *testing.T) {
	req := NewComposer().ChatRequest("q", nil, nil)
	if !strings.Contains(req.Contents[0].Parts[0].Text, "User's question: q") {
		t.Error("prompt missing the question for nil context")
	}
}

func TestFormatHistory_Window(t *testing.T) {
	var history []models.ChatTurn
	for i := 1; i <= 7; i++ {
		sender := models.SenderUser
		if i%2 == 0 {
			sender = models.SenderBot
		}
		history = append(history, models.ChatTurn{Sender: sender, Text: fmt.Sprintf("turn %d", i)})
	}

	got := FormatHistory(history)
	want := "User: turn 3\nAssistant: turn 4\nUser: turn 5\nAssistant: turn 6\nUser: turn 7"
	if got != want {
		t.Errorf("FormatHistory() = %q, want %q", got, want)
	}
}

func TestFormatHistory_Empty(t *testing.T) {
	if got := FormatHistory(nil); got != "" {
		t.Errorf("FormatHistory(nil) = %q, want empty", got)
	}
}

func TestSuggestionsRequest(t *testing.T) {
	pctx := docsContext()
	pctx.Product = &models.ProductInfo{Name: "Acme Anvil", Price: "$19.99"}
	req := SuggestionsRequest(pctx)

	text := req.Contents[0].Parts[0].Text
	for _, want := range []string{
		"generate 3-5 relevant questions",
		"Page Type: technical-documentation",
		"Page Title: Guide to Testing",
		"Product: Acme Anvil",
		"Price: $19.99",
		"Main Concepts: Intro, Details",
		"JSON array of strings",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("suggestions prompt missing %q", want)
		}
	}

	if req.GenerationConfig == nil {
		t.Fatal("GenerationConfig = nil")
	}
	if req.GenerationConfig.Temperature != 0.7 {
		t.Errorf("Temperature = %v, want 0.7", req.GenerationConfig.Temperature)
	}
	if req.GenerationConfig.MaxOutputTokens != 1024 {
		t.Errorf("MaxOutputTokens = %d, want 1024", req.GenerationConfig.MaxOutputTokens)
	}
}
