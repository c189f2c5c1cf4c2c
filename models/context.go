package models

// PageType is the coarse classification of a page driving prompt and
// suggestion templates.
type PageType string

const (
	PageTypeECommerce PageType = "e-commerce"
	PageTypeDocs      PageType = "technical-documentation"
	PageTypeResearch  PageType = "research-paper"
	PageTypeGeneral   PageType = "general"
)

// Valid reports whether t is one of the four enumerated page types.
func (t PageType) Valid() bool {
	switch t {
	case PageTypeECommerce, PageTypeDocs, PageTypeResearch, PageTypeGeneral:
		return true
	}
	return false
}

// PageContext is the bounded, derived view of a page handed to the
// prompt composer. A new extraction pass replaces the previous value
// wholesale; there is no context history.
type PageContext struct {
	Title        string       `json:"title" yaml:"title"`
	URL          string       `json:"url" yaml:"url"`
	Domain       string       `json:"domain" yaml:"domain"`
	PageType     PageType     `json:"page_type" yaml:"page_type"`
	MainConcepts []string     `json:"main_concepts" yaml:"main_concepts"`
	Keywords     []string     `json:"keywords,omitempty" yaml:"keywords,omitempty"`
	Product      *ProductInfo `json:"product,omitempty" yaml:"product,omitempty"`
	MainContent  MainContent  `json:"main_content" yaml:"main_content"`
}
