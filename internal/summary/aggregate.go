
package summary

import (
	"sort"

	"brightedge-url-classifier/internal/language"
)

// Lemmatize returns a new map keyed by lemma, summing the scores of keys that
// share one.
func Lemmatize(freq map[string]float64, lem language.Lemmatizer) map[string]float64 {
	out := make(map[string]float64, len(freq))
	for word, score := range freq {
		out[lem.Lemma(word)] += score
	}
	return out
}

// FilterStopWords deletes, in place, keys shorter than two characters, keys
// on the ignore list, stop words, and multi-word keys containing a stop word.
func FilterStopWords(freq map[string]float64, stop language.StopWords, ignore []string) {
	ignored := make(map[string]struct{}, len(ignore))
	for _, w := range ignore {
		ignored[w] = struct{}{}
	}
	for key := range freq {
		if drop(key, stop, ignored) {
			delete(freq, key)
		}
	}
}

func drop(key string, stop language.StopWords, ignored map[string]struct{}) bool {
	if len(key) < 2 {
		return true
	}
	if _, ok := ignored[key]; ok {
		return true
	}
	if stop.Contains(key) {
		return true
	}
	parts := splitWords(key)
	if len(parts) > 1 {
		for _, p := range parts {
			if stop.Contains(p) {
				return true
			}
		}
	}
	return false
}

// TopKeywords returns up to n keys by descending score. Equal scores are
// ordered by key.
func TopKeywords(freq map[string]float64, n int) []string {
	type kv struct {
		K string
		V float64
	}
	list := make([]kv, 0, len(freq))
	for k, v := range freq {
		list = append(list, kv{k, v})
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].V == list[j].V {
			return list[i].K < list[j].K
		}
		return list[i].V > list[j].V
	})
	if n > len(list) {
		n = len(list)
	}
	if n < 0 {
		n = 0
	}
	out := make([]string, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, list[i].K)
	}
	return out
}
