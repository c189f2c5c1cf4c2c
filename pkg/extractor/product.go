package extractor

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/pagechat/pagechat/models"
)

// productIndicatorSelector gates product extraction: without at least
// one match the page is not treated as a product page at all.
const productIndicatorSelector = "[itemtype*='Product'], .product, #product, [data-product-id]"

var productNameSelectors = []string{
	"[itemprop='name']",
	".product-title",
	".product-name",
	"#product-title",
	"h1",
}

var productPriceSelectors = []string{
	"[itemprop='price']",
	".price",
	".product-price",
	"#price",
}

var productDescriptionSelectors = []string{
	"[itemprop='description']",
	".product-description",
	"#product-description",
}

// extractProductInfo probes the ordered selector lists independently,
// taking the first match per field. It returns nil, not an empty
// struct, when the page carries no product indicators.
func extractProductInfo(doc *goquery.Document) *models.ProductInfo {
	if doc.Find(productIndicatorSelector).Length() == 0 {
		return nil
	}

	return &models.ProductInfo{
		Name:        firstMatchText(doc, productNameSelectors),
		Price:       firstMatchText(doc, productPriceSelectors),
		Description: firstMatchText(doc, productDescriptionSelectors),
	}
}

func firstMatchText(doc *goquery.Document, selectors []string) string {
	for _, selector := range selectors {
		if el := doc.Find(selector).First(); el.Length() > 0 {
			return strings.TrimSpace(el.Text())
		}
	}
	return ""
}
