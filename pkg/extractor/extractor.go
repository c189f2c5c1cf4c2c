// Package extractor scans an arbitrary HTML document and produces the
// best-effort structured content the rest of the pipeline consumes.
// Extraction never fails: individual steps degrade to empty values.
package extractor

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/pagechat/pagechat/models"
)

// minRootTextLen is the minimum rendered-text length below which the
// chosen content root is abandoned in favor of the whole body.
const minRootTextLen = 100

// mainContentSelectors are tried in order; the first selector with any
// match wins, and among its matches the element with the most rendered
// text is chosen. Semantic containers come first, then common
// framework- and LMS-specific class names.
var mainContentSelectors = []string{
	"main",
	"article",
	"#content",
	".content",
	".main-content",
	"#main-content",
	"#wiki_page_show",
	".user_content",
	".content-wrapper",
	".canvas-content",
	".page-content",
	".module-content",
	".assignment-content",
	".discussion-content",
}

// contentBlockSelector matches generic content-block-like elements used
// by the first fallback when no main selector matches.
const contentBlockSelector = "p, .content-block, .section, .module, .card, .item"

// strippedSelector matches non-content subtrees removed before text
// extraction.
const strippedSelector = "script, style, noscript, iframe, svg, nav, footer, header, .navigation, .nav, .menu, .sidebar, .footer, .header"

var whitespaceRun = regexp.MustCompile(`\s+`)

type Extractor struct {
	langs *languageDetector
}

// New builds an Extractor. The language detector is initialized once;
// it is the only state the extractor carries.
func New() *Extractor {
	return &Extractor{langs: newLanguageDetector()}
}

// Extract parses rawHTML and returns structured page content. A document
// that cannot be parsed at all yields metadata derived from the URL and
// empty content rather than an error.
func (e *Extractor) Extract(rawHTML, pageURL string) *models.RawPageContent {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return &models.RawPageContent{
			Metadata: metadataFromURL(pageURL),
		}
	}

	content := &models.RawPageContent{
		Metadata:    e.extractMetadata(doc, rawHTML, pageURL),
		ProductInfo: extractProductInfo(doc),
	}
	content.MainContent = extractMainContent(doc, content.Metadata.Title)
	return content
}

// extractMainContent locates the content root, extracts its text, and
// collects headings and sections document-wide.
func extractMainContent(doc *goquery.Document, title string) models.MainContent {
	root := findMainRoot(doc)

	mc := models.MainContent{
		Text:     extractText(root),
		Headings: extractHeadings(doc),
	}
	mc.Sections = extractSections(doc, title)
	return mc
}

// findMainRoot picks the candidate main-content element. Candidates are
// ranked by rendered-text length, not DOM size.
func findMainRoot(doc *goquery.Document) *goquery.Selection {
	for _, selector := range mainContentSelectors {
		matches := doc.Find(selector)
		if matches.Length() > 0 {
			return largestByText(matches)
		}
	}

	// Fallback 1: the parent of the single biggest content block.
	blocks := doc.Find(contentBlockSelector)
	var root *goquery.Selection
	if blocks.Length() > 0 {
		root = largestByText(blocks).Parent()
	}

	// Fallback 2: too little text under the candidate, use the body.
	if root == nil || len(strings.TrimSpace(root.Text())) < minRootTextLen {
		root = doc.Find("body").First()
	}
	return root
}

// largestByText returns the single element of sel with the greatest
// text length.
func largestByText(sel *goquery.Selection) *goquery.Selection {
	best := sel.First()
	bestLen := len(best.Text())
	sel.Each(func(i int, s *goquery.Selection) {
		if l := len(s.Text()); l > bestLen {
			best = s
			bestLen = l
		}
	})
	return best
}

// extractText renders the text of root with boilerplate subtrees
// stripped. The selection is cloned first; the parsed tree is never
// mutated.
func extractText(root *goquery.Selection) string {
	if root == nil || root.Length() == 0 {
		return ""
	}
	clone := root.Clone()
	clone.Find(strippedSelector).Remove()
	return collapseWhitespace(clone.Text())
}

func collapseWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(s, " "))
}
