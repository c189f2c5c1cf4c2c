package classifier

import (
	"fmt"
	"strings"

	"github.com/pagechat/pagechat/models"
)

// summaryExcerptLen is how much body text the summary quotes.
const summaryExcerptLen = 200

// Summarize renders a deterministic one-paragraph summary of a page
// context: joined main concepts, a short excerpt when body text exists,
// and a page-type-specific closing clause.
func Summarize(pctx *models.PageContext) string {
	if pctx == nil {
		return "No page context available."
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "This page is about %s. ", strings.Join(pctx.MainConcepts, ", "))

	if excerpt := pctx.MainContent.Excerpt(summaryExcerptLen); excerpt != "" {
		fmt.Fprintf(&sb, "Here's a brief excerpt: %q... ", excerpt)
	}

	switch pctx.PageType {
	case models.PageTypeECommerce:
		if pctx.Product != nil {
			name := pctx.Product.Name
			if name == "" {
				name = "a product"
			}
			fmt.Fprintf(&sb, "It's a product page for %s", name)
			if pctx.Product.Price != "" {
				fmt.Fprintf(&sb, " priced at %s", pctx.Product.Price)
			}
			sb.WriteString(".")
		} else {
			sb.WriteString("It's an e-commerce page.")
		}
	case models.PageTypeDocs:
		sb.WriteString("It's a technical documentation page.")
	case models.PageTypeResearch:
		sb.WriteString("It's a research paper.")
	default:
		fmt.Fprintf(&sb, "It's from the domain %s.", pctx.Domain)
	}

	return sb.String()
}
