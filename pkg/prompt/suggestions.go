package prompt

import (
	"fmt"
	"strings"

	"github.com/pagechat/pagechat/models"
	"github.com/pagechat/pagechat/pkg/gemini"
)

// SuggestionsRequest builds the independent composer for suggested
// questions: page type, title, product, and concepts only, no history.
// The model is asked for 3-5 questions as a JSON array of strings.
func SuggestionsRequest(pctx *models.PageContext) *gemini.GenerateRequest {
	var sb strings.Builder
	sb.WriteString("Based on this webpage context, generate 3-5 relevant questions a user might ask:\n\n")
	fmt.Fprintf(&sb, "Page Type: %s\n", orUnknown(string(pctx.PageType)))
	fmt.Fprintf(&sb, "Page Title: %s\n", orUnknown(pctx.Title))
	if pctx.Product != nil {
		fmt.Fprintf(&sb, "Product: %s\n", pctx.Product.Name)
		fmt.Fprintf(&sb, "Price: %s\n", pctx.Product.Price)
	}
	if len(pctx.MainConcepts) > 0 {
		fmt.Fprintf(&sb, "Main Concepts: %s\n", strings.Join(pctx.MainConcepts, ", "))
	}
	sb.WriteString("\nFormat the questions as a JSON array of strings. Example: [\"Question 1?\", \"Question 2?\", \"Question 3?\"]")

	req := gemini.NewTextRequest(sb.String())
	req.GenerationConfig = &gemini.GenerationConfig{
		Temperature:     0.7,
		TopK:            40,
		TopP:            0.95,
		MaxOutputTokens: 1024,
	}
	return req
}
