
package summary

import (
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"

	"brightedge-url-classifier/internal/models"
)

const (
	unigramScore = 1.0
	bigramScore  = 2.0
)

var nonASCII = runes.Remove(runes.Predicate(func(r rune) bool { return r > unicode.MaxASCII }))

// normalizeToken lowercases tok, drops non-ASCII code points and trims space.
func normalizeToken(tok string) string {
	folded, _, err := transform.String(nonASCII, strings.ToLower(tok))
	if err != nil {
		folded = strings.ToLower(tok)
	}
	return strings.TrimSpace(folded)
}

// splitWords splits s at every whitespace rune. Unlike strings.Fields, runs
// of separators yield empty tokens.
func splitWords(s string) []string {
	return strings.Split(strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return ' '
		}
		return r
	}, s), " ")
}

// BuildFrequencies scores every word and adjacent word pair in groups. Each
// occurrence adds weight(tag) for a word and 2*weight(tag) for a pair.
// Lines are split on each whitespace rune, so runs of whitespace yield empty
// tokens; those score as words but never start a pair.
func BuildFrequencies(groups models.TagText, weight func(tag string) float64) map[string]float64 {
	tags := make([]string, 0, len(groups))
	for tag := range groups {
		tags = append(tags, tag)
	}
	// fixed order keeps float sums reproducible
	sort.Strings(tags)

	freq := map[string]float64{}
	for _, tag := range tags {
		wt := weight(tag)
		for _, line := range groups[tag] {
			words := splitWords(line)
			for i := range words {
				words[i] = normalizeToken(words[i])
			}
			for i, word := range words {
				freq[word] += unigramScore * wt
				if i+1 < len(words) && word != "" {
					freq[word+" "+words[i+1]] += bigramScore * wt
				}
			}
		}
	}
	return freq
}
