
package classifier

import (
	"strings"

	"brightedge-url-classifier/internal/models"
)

// Classifier assigns categories from URL text and page keywords. It holds no
// per-request state and is safe for concurrent use.
type Classifier struct {
	rules     []models.Rule
	retailers *RetailerList
}

// New copies rules, so later changes to the caller's slice are not seen.
func New(rules []models.Rule, retailers *RetailerList) *Classifier {
	own := make([]models.Rule, len(rules))
	copy(own, rules)
	return &Classifier{rules: own, retailers: retailers}
}

func (c *Classifier) Rules() []models.Rule {
	out := make([]models.Rule, len(c.rules))
	copy(out, c.rules)
	return out
}

// match returns the category of the first rule whose keyword text contains.
func (c *Classifier) match(text string) (models.Category, bool) {
	text = strings.ToLower(text)
	for _, r := range c.rules {
		if strings.Contains(text, r.Keyword) {
			return r.Category, true
		}
	}
	return "", false
}

// ClassifyURL tries the whole URL, then its tokens, against the rules. A URL
// that matches no rule but is on the retailer list yields models.Retailer,
// which callers must refine from page content.
func (c *Classifier) ClassifyURL(u string) (models.Category, bool) {
	if cat, ok := c.match(u); ok {
		return cat, true
	}
	for _, tok := range SplitURL(u) {
		if cat, ok := c.match(tok); ok {
			return cat, true
		}
	}
	if c.retailers.Contains(u) {
		return models.Retailer, true
	}
	return "", false
}

// ClassifyKeywords returns the category of the first keyword that matches a
// rule. Keywords are tried in rank order.
func (c *Classifier) ClassifyKeywords(keywords []string) (models.Category, bool) {
	for _, kw := range keywords {
		if cat, ok := c.match(kw); ok {
			return cat, true
		}
	}
	return "", false
}

var detailMarkers = []string{"specification", "description"}

// RefineRetailer decides between a product listing and a single product from
// the lowercased text of a retailer page.
func RefineRetailer(pageText string) models.Category {
	for _, m := range detailMarkers {
		if strings.Contains(pageText, m) {
			return models.ProductDetail
		}
	}
	return models.ProductCategory
}
