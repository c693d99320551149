
package parser

import (
	"bytes"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html/charset"

	"brightedge-url-classifier/internal/models"
)

var (
	DefaultImportantTags = []string{"h6", "h5", "h4", "h3", "h2", "h1", "title", "meta", "div"}
	DefaultIgnoredTags   = []string{"script", "style"}
)

type Parser struct{}

func New() *Parser { return &Parser{} }

// Parse decodes r to UTF-8 using the content type and any in-document hints
// and builds a navigable document.
func (p *Parser) Parse(r io.Reader, contentType string) (*goquery.Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	enc, _, _ := charset.DetermineEncoding(data, contentType)
	utf8data, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		// fallback: if already utf-8, continue
		if !utf8.Valid(data) {
			return nil, err
		}
		utf8data = data
	}

	return goquery.NewDocumentFromReader(bytes.NewReader(utf8data))
}

// Prune removes every element whose tag is in ignored, in place.
func Prune(doc *goquery.Document, ignored []string) *goquery.Document {
	if len(ignored) == 0 {
		return doc
	}
	doc.Find(strings.Join(ignored, ",")).Remove()
	return doc
}

// GroupByTag collects the trimmed, newline-free text of every element under
// each tag. Tags with no non-blank text are left out. Document order is
// preserved within a tag.
func GroupByTag(doc *goquery.Document, tags []string) models.TagText {
	groups := models.TagText{}
	for _, tag := range tags {
		doc.Find(tag).Each(func(_ int, s *goquery.Selection) {
			line := ElementText(s)
			if strings.TrimSpace(line) == "" {
				return
			}
			groups[tag] = append(groups[tag], line)
		})
	}
	return groups
}

// ElementText is the element's text with surrounding space trimmed and
// newlines removed.
func ElementText(s *goquery.Selection) string {
	return strings.ReplaceAll(strings.TrimSpace(s.Text()), "\n", "")
}

// TagLength is the summed character count of the trimmed text of every
// element under tag.
func TagLength(doc *goquery.Document, tag string) int {
	n := 0
	doc.Find(tag).Each(func(_ int, s *goquery.Selection) {
		n += utf8.RuneCountInString(strings.TrimSpace(s.Text()))
	})
	return n
}

// LowerText returns the lowercased text content of the whole document.
func LowerText(doc *goquery.Document) string {
	return strings.ToLower(doc.Text())
}
