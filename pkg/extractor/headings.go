package extractor

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/pagechat/pagechat/models"
)

// headingSelector matches semantic headings plus heading-like class
// conventions, collected across the whole document in document order.
const headingSelector = "h1, h2, h3, h4, h5, h6, .heading, .title, .subtitle"

// domHeading pairs a heading with its source node for section walking.
// The node reference is not retained past extraction.
type domHeading struct {
	level int
	text  string
	node  *html.Node
}

// extractHeadings collects every heading in document order.
func extractHeadings(doc *goquery.Document) []models.Heading {
	var out []models.Heading
	for _, h := range collectHeadings(doc) {
		out = append(out, models.Heading{Level: h.level, Text: h.text})
	}
	return out
}

func collectHeadings(doc *goquery.Document) []domHeading {
	var headings []domHeading
	doc.Find(headingSelector).Each(func(i int, s *goquery.Selection) {
		node := s.Get(0)
		headings = append(headings, domHeading{
			level: headingLevel(s, node),
			text:  strings.TrimSpace(s.Text()),
			node:  node,
		})
	})
	return headings
}

// headingLevel derives the level from the tag name when semantic, else
// from class-name convention: title is 1, subtitle is 2, anything else 3.
func headingLevel(s *goquery.Selection, node *html.Node) int {
	if lvl, ok := tagHeadingLevel(node); ok {
		return lvl
	}
	if s.HasClass("title") {
		return 1
	}
	if s.HasClass("subtitle") {
		return 2
	}
	return 3
}

// tagHeadingLevel reports the level of a semantic h1-h6 element node.
func tagHeadingLevel(node *html.Node) (int, bool) {
	if node == nil || node.Type != html.ElementNode {
		return 0, false
	}
	tag := node.Data
	if len(tag) == 2 && (tag[0] == 'h' || tag[0] == 'H') && tag[1] >= '1' && tag[1] <= '6' {
		return int(tag[1] - '0'), true
	}
	return 0, false
}

// extractSections segments the document into contiguous spans bounded
// by heading boundaries of equal-or-higher rank. With no headings the
// whole page becomes one section titled with the document title.
func extractSections(doc *goquery.Document, title string) []models.Section {
	headings := collectHeadings(doc)

	if len(headings) == 0 {
		return []models.Section{{
			Title:   title,
			Content: collapseWhitespace(doc.Find("body").Text()),
		}}
	}

	sections := make([]models.Section, 0, len(headings))
	for _, h := range headings {
		sections = append(sections, models.Section{
			Title:   h.text,
			Content: sectionContent(h),
		})
	}
	return sections
}

// sectionContent accumulates sibling content following the heading node
// until the next heading of equal-or-higher rank.
func sectionContent(h domHeading) string {
	var sb strings.Builder
	for n := h.node.NextSibling; n != nil; n = n.NextSibling {
		switch n.Type {
		case html.ElementNode:
			if lvl, ok := tagHeadingLevel(n); ok && lvl <= h.level {
				return collapseWhitespace(sb.String())
			}
			if isSkippedSectionTag(n.Data) {
				continue
			}
			sb.WriteString(nodeText(n))
			sb.WriteString(" ")
		case html.TextNode:
			sb.WriteString(n.Data)
			sb.WriteString(" ")
		}
	}
	return collapseWhitespace(sb.String())
}

func isSkippedSectionTag(tag string) bool {
	switch strings.ToLower(tag) {
	case "script", "style", "nav", "header", "footer":
		return true
	}
	return false
}

// nodeText renders the concatenated text of a node's subtree.
func nodeText(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}
