package extractor

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"
	"github.com/pemistahl/lingua-go"

	"github.com/pagechat/pagechat/models"
)

// detectionSample caps how much text is fed to language detection.
const detectionSample = 1000

// extractMetadata builds page metadata from the document, enriched with
// readability fields when the article parses cleanly.
func (e *Extractor) extractMetadata(doc *goquery.Document, rawHTML, pageURL string) models.PageMetadata {
	meta := metadataFromURL(pageURL)
	meta.Title = strings.TrimSpace(doc.Find("title").First().Text())
	meta.LastModified = lastModified(doc)

	meta.Language, meta.LanguageConfidence = e.pageLanguage(doc)

	if parsed, err := url.Parse(pageURL); err == nil {
		parser := readability.NewParser()
		article, err := parser.Parse(strings.NewReader(rawHTML), parsed)
		if err == nil {
			if meta.Title == "" {
				meta.Title = strings.TrimSpace(article.Title)
			}
			meta.Author = article.Byline
			meta.Excerpt = article.Excerpt
			meta.SiteName = article.SiteName
		}
	}
	return meta
}

// metadataFromURL fills the fields derivable from the URL alone; used
// as the floor when the document itself is unparseable.
func metadataFromURL(pageURL string) models.PageMetadata {
	meta := models.PageMetadata{URL: pageURL, Language: "en"}
	if parsed, err := url.Parse(pageURL); err == nil {
		meta.Domain = parsed.Hostname()
	}
	return meta
}

func lastModified(doc *goquery.Document) string {
	for _, selector := range []string{
		"meta[http-equiv='last-modified']",
		"meta[property='article:modified_time']",
	} {
		if v, ok := doc.Find(selector).First().Attr("content"); ok && v != "" {
			return v
		}
	}
	return ""
}

// pageLanguage prefers the declared html lang attribute and falls back
// to statistical detection over a text sample.
func (e *Extractor) pageLanguage(doc *goquery.Document) (string, float64) {
	if lang, ok := doc.Find("html").First().Attr("lang"); ok {
		lang = strings.ToLower(strings.TrimSpace(lang))
		if lang != "" {
			if i := strings.IndexByte(lang, '-'); i > 0 {
				lang = lang[:i]
			}
			return lang, 0
		}
	}

	sample := doc.Find("body").Text()
	if len(sample) > detectionSample {
		sample = sample[:detectionSample]
	}
	if code, conf, ok := e.langs.detect(sample); ok {
		return code, conf
	}
	return "en", 0
}

// languageDetector wraps lingua over a fixed set of common languages.
type languageDetector struct {
	detector lingua.LanguageDetector
}

func newLanguageDetector() *languageDetector {
	languages := []lingua.Language{
		lingua.English,
		lingua.Spanish,
		lingua.French,
		lingua.German,
		lingua.Italian,
		lingua.Portuguese,
		lingua.Dutch,
		lingua.Russian,
		lingua.Japanese,
		lingua.Chinese,
	}
	return &languageDetector{
		detector: lingua.NewLanguageDetectorBuilder().FromLanguages(languages...).Build(),
	}
}

// detect returns the ISO-639-1 code and confidence of the most likely
// language, or ok=false when the sample carries no signal.
func (d *languageDetector) detect(sample string) (string, float64, bool) {
	sample = strings.TrimSpace(sample)
	if sample == "" {
		return "", 0, false
	}
	lang, exists := d.detector.DetectLanguageOf(sample)
	if !exists {
		return "", 0, false
	}
	confidence := d.detector.ComputeLanguageConfidence(sample, lang)
	return strings.ToLower(lang.IsoCode639_1().String()), confidence, true
}
