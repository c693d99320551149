
package classifier

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"brightedge-url-classifier/internal/models"
)

// DefaultRules returns the built-in keyword table. Order matters: the first
// rule whose keyword is contained in the text decides the category.
func DefaultRules() []models.Rule {
	return []models.Rule{
		{Keyword: "news", Category: models.PressRelease},
		{Keyword: "release", Category: models.PressRelease},
		{Keyword: "press", Category: models.PressRelease},
		{Keyword: "archive", Category: models.PressRelease},
		{Keyword: "pressrelease", Category: models.PressRelease},
		{Keyword: "whitepaper", Category: models.WhitePaper},
		{Keyword: "library", Category: models.WhitePaper},
		{Keyword: "doc", Category: models.Documentation},
		{Keyword: "manual", Category: models.Documentation},
		{Keyword: "store", Category: models.StoreLocator},
		{Keyword: "locator", Category: models.StoreLocator},
		{Keyword: "location", Category: models.StoreLocator},
		{Keyword: "infographic", Category: models.Infographic},
		{Keyword: "graphic", Category: models.Infographic},
		{Keyword: "vs", Category: models.ProductComparison},
		{Keyword: "compariso", Category: models.ProductComparison},
		{Keyword: "compar", Category: models.ProductComparison},
	}
}

type ruleFile struct {
	Rules []models.Rule `yaml:"rules"`
}

// LoadRules reads an ordered rule table from a YAML file of the form
//
//	rules:
//	  - keyword: press
//	    category: PRESS RELEASE
func LoadRules(path string) ([]models.Rule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rules %s: %w", path, err)
	}
	var rf ruleFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return nil, fmt.Errorf("parse rules %s: %w", path, err)
	}
	if len(rf.Rules) == 0 {
		return nil, fmt.Errorf("rules %s: no rules defined", path)
	}
	out := make([]models.Rule, 0, len(rf.Rules))
	for i, r := range rf.Rules {
		kw := strings.ToLower(strings.TrimSpace(r.Keyword))
		if kw == "" || r.Category == "" {
			return nil, fmt.Errorf("rules %s: entry %d needs keyword and category", path, i+1)
		}
		out = append(out, models.Rule{Keyword: kw, Category: r.Category})
	}
	return out, nil
}
