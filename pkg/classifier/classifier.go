// Package classifier derives a bounded PageContext from raw extracted
// content: page type, main concepts, and a short summary.
package classifier

import (
	"strings"

	"github.com/pagechat/pagechat/models"
)

// titleConceptWords caps how many leading title words form the fallback
// concept for long titles.
const titleConceptWords = 4

// maxKeywords caps the frequency-derived keyword list on PageContext.
const maxKeywords = 10

// rule pairs a page type with its predicate. Rules are evaluated in
// declared order and the first match wins, so stronger signals must be
// listed first.
type rule struct {
	pageType models.PageType
	matches  func(*models.RawPageContent) bool
}

var rules = []rule{
	{models.PageTypeECommerce, isECommerce},
	{models.PageTypeDocs, isTechnicalDocs},
	{models.PageTypeResearch, isResearchPaper},
}

// Process turns one extraction pass into the context handed to the
// prompt composer. It is a pure function of its input.
func Process(raw *models.RawPageContent) *models.PageContext {
	return &models.PageContext{
		Title:        raw.Metadata.Title,
		URL:          raw.Metadata.URL,
		Domain:       raw.Metadata.Domain,
		PageType:     Classify(raw),
		MainConcepts: MainConcepts(raw),
		Keywords:     TopWords(raw.MainContent.Text, maxKeywords),
		Product:      raw.ProductInfo,
		MainContent:  raw.MainContent,
	}
}

// Classify maps content to exactly one of the four page types.
func Classify(raw *models.RawPageContent) models.PageType {
	for _, r := range rules {
		if r.matches(raw) {
			return r.pageType
		}
	}
	return models.PageTypeGeneral
}

func isECommerce(raw *models.RawPageContent) bool {
	if raw.ProductInfo != nil {
		return true
	}
	domain := raw.Metadata.Domain
	if strings.Contains(domain, "shop") || strings.Contains(domain, "store") {
		return true
	}
	if strings.Contains(raw.Metadata.URL, "/product/") {
		return true
	}
	text := raw.MainContent.Text
	return strings.Contains(text, "Add to Cart") || strings.Contains(text, "Buy Now")
}

func isTechnicalDocs(raw *models.RawPageContent) bool {
	if strings.Contains(raw.Metadata.Domain, "docs") {
		return true
	}
	url := raw.Metadata.URL
	if strings.Contains(url, "/docs/") ||
		strings.Contains(url, "/documentation/") ||
		strings.Contains(url, "/api/") {
		return true
	}
	text := raw.MainContent.Text
	return strings.Contains(text, "function(") || strings.Contains(text, "npm install")
}

func isResearchPaper(raw *models.RawPageContent) bool {
	text := raw.MainContent.Text
	if !strings.Contains(text, "Abstract") {
		return false
	}
	if !strings.Contains(text, "Conclusion") && !strings.Contains(text, "References") {
		return false
	}
	return strings.Contains(text, "et al.") || strings.Contains(text, "Fig.")
}

// MainConcepts collects topic strings in order of concern: level-1/2
// heading text, then the product name, then a title-derived fallback
// when fewer than two concepts were found. No deduplication.
func MainConcepts(raw *models.RawPageContent) []string {
	concepts := raw.MainContent.TopHeadings(2)

	if raw.ProductInfo != nil && raw.ProductInfo.Name != "" {
		concepts = append(concepts, raw.ProductInfo.Name)
	}

	if len(concepts) < 2 && raw.Metadata.Title != "" {
		words := strings.Fields(raw.Metadata.Title)
		if len(words) > 3 {
			if len(words) > titleConceptWords {
				words = words[:titleConceptWords]
			}
			concepts = append(concepts, strings.Join(words, " "))
		} else {
			concepts = append(concepts, raw.Metadata.Title)
		}
	}

	return concepts
}
