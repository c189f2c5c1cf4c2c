// Package models defines the data structures shared across extraction,
// classification, prompting, and the relay channel.
package models

import "strings"

// RawPageContent is the result of one extraction pass over a page.
// Every field is best-effort: extraction degrades to zero values
// instead of failing.
type RawPageContent struct {
	Metadata    PageMetadata `json:"metadata" yaml:"metadata"`
	MainContent MainContent  `json:"main_content" yaml:"main_content"`
	// ProductInfo is nil unless the page carries product indicators.
	ProductInfo *ProductInfo `json:"product_info,omitempty" yaml:"product_info,omitempty"`
}

// PageMetadata holds document-level metadata.
type PageMetadata struct {
	Title              string  `json:"title" yaml:"title"`
	URL                string  `json:"url" yaml:"url"`
	Domain             string  `json:"domain" yaml:"domain"`
	Language           string  `json:"language" yaml:"language"` // ISO-639-1 if possible
	LanguageConfidence float64 `json:"language_confidence,omitempty" yaml:"language_confidence,omitempty"`
	LastModified       string  `json:"last_modified,omitempty" yaml:"last_modified,omitempty"`

	// Readability enrichment
	Author   string `json:"author,omitempty" yaml:"author,omitempty"`
	Excerpt  string `json:"excerpt,omitempty" yaml:"excerpt,omitempty"`
	SiteName string `json:"site_name,omitempty" yaml:"site_name,omitempty"`
}

// MainContent is the meaningful body of a page after boilerplate removal.
type MainContent struct {
	Text     string    `json:"text" yaml:"text"`
	Headings []Heading `json:"headings" yaml:"headings"`
	Sections []Section `json:"sections" yaml:"sections"`
}

// Heading is a document heading in document order.
type Heading struct {
	Level int    `json:"level" yaml:"level"` // 1-6
	Text  string `json:"text" yaml:"text"`
}

// Section is a contiguous span of content bounded by headings of
// equal-or-higher rank. A page with no headings yields exactly one
// section titled with the document title.
type Section struct {
	Title   string `json:"title" yaml:"title"`
	Content string `json:"content" yaml:"content"`
}

// ProductInfo holds fields probed from e-commerce product pages.
type ProductInfo struct {
	Name        string `json:"name,omitempty" yaml:"name,omitempty"`
	Price       string `json:"price,omitempty" yaml:"price,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// TopHeadings returns the text of headings at or above the given level,
// in document order.
func (m MainContent) TopHeadings(maxLevel int) []string {
	var out []string
	for _, h := range m.Headings {
		if h.Level <= maxLevel {
			out = append(out, h.Text)
		}
	}
	return out
}

// Excerpt returns the first n characters of the body text.
func (m MainContent) Excerpt(n int) string {
	text := strings.TrimSpace(m.Text)
	if len(text) <= n {
		return text
	}
	return text[:n]
}
