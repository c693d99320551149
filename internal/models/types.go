
package models

type Category string

const (
	PressRelease      Category = "PRESS RELEASE"
	StoreLocator      Category = "STORE LOCATOR"
	WhitePaper        Category = "WHITEPAPER"
	ProductDetail     Category = "PRODUCT DETAIL"
	Documentation     Category = "DOCUMENTATION"
	Infographic       Category = "INFOGRAPHIC"
	ProductComparison Category = "PRODUCT COMPARISON"
	ProductCategory   Category = "PRODUCT CATEGORY"

	// Retailer is provisional; the pipeline always refines it before output.
	Retailer Category = "retailer"
)

// Rule maps a keyword substring to a category. Rules are evaluated in order
// and the first match wins.
type Rule struct {
	Keyword  string   `json:"keyword" yaml:"keyword"`
	Category Category `json:"category" yaml:"category"`
}

// TagText groups cleaned text lines by the tag they were found under.
type TagText map[string][]string

// Summary is the keyword view of one fetched page.
type Summary struct {
	URL      string   `json:"url"`
	Keywords []string `json:"keywords"`
	// Text is the lowercased text of the pruned page.
	Text string `json:"-"`
}

type Result struct {
	Number         int      `json:"number"`
	Classification Category `json:"classification,omitempty"`
	URL            string   `json:"url"`
	Keywords       []string `json:"keywords,omitempty"`
	Error          string   `json:"error,omitempty"`
}
