
package classifier

import "strings"

var urlDelimiters = []string{"%20", "=", "?", "-", "_"}

// SplitURL breaks a URL into words. The part before the first "/" is split on
// "." and the rest on "/". Every token is then split on each delimiter it
// contains, independently, and the pieces are split again the same way. All
// tokens and pieces are kept, so the result holds overlapping duplicates.
func SplitURL(u string) []string {
	host, path, hasPath := strings.Cut(u, "/")
	words := strings.Split(host, ".")
	if hasPath {
		words = append(words, strings.Split(path, "/")...)
	}

	var out []string
	for _, w := range words {
		out = appendPieces(out, w)
	}
	return out
}

func appendPieces(out []string, tok string) []string {
	out = append(out, tok)
	for _, d := range urlDelimiters {
		if !strings.Contains(tok, d) {
			continue
		}
		for _, piece := range strings.Split(tok, d) {
			out = appendPieces(out, piece)
		}
	}
	return out
}
