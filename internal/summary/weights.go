
package summary

import (
	"github.com/PuerkitoBio/goquery"

	"brightedge-url-classifier/internal/parser"
)

// tagWeigher computes per-tag discount weights for one page. Lengths are
// memoized for the life of the weigher, which must not outlive the page.
type tagWeigher struct {
	doc     *goquery.Document
	tags    []string
	lengths map[string]int
	// total is the sum of lengths over tags; valid once haveTotal is set.
	total     int
	haveTotal bool
}

func newTagWeigher(doc *goquery.Document, tags []string) *tagWeigher {
	return &tagWeigher{doc: doc, tags: tags, lengths: map[string]int{}}
}

func (w *tagWeigher) length(tag string) int {
	if n, ok := w.lengths[tag]; ok {
		return n
	}
	n := parser.TagLength(w.doc, tag)
	w.lengths[tag] = n
	return n
}

func (w *tagWeigher) totalLength() int {
	if !w.haveTotal {
		for _, tag := range w.tags {
			w.total += w.length(tag)
		}
		w.haveTotal = true
	}
	return w.total
}

// weight returns 1 - length(tag)/total. A page without any text under the
// tags of importance weighs every tag 0.
func (w *tagWeigher) weight(tag string) float64 {
	total := w.totalLength()
	if total == 0 {
		return 0
	}
	return 1 - float64(w.length(tag))/float64(total)
}
