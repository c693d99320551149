
package crawler

import (
	"errors"
	"strings"

	"brightedge-url-classifier/internal/models"
)

// DefaultSkipMarkers flag pages rendered by server-side scripting frameworks
// that need a browser to produce content.
var DefaultSkipMarkers = []string{".jsp"}

// NormalizeURL makes a scheme-less URL fetchable: "example.com/a" becomes
// "https://www.example.com/a". URLs with a scheme are returned unchanged.
func NormalizeURL(raw string) string {
	if strings.Contains(raw, "http://") || strings.Contains(raw, "https://") {
		return raw
	}
	if !strings.HasPrefix(raw, "www") {
		raw = "www." + raw
	}
	return "https://" + raw
}

// ScriptDriven reports whether u contains any of markers.
func ScriptDriven(u string, markers []string) bool {
	for _, m := range markers {
		if m != "" && strings.Contains(u, m) {
			return true
		}
	}
	return false
}

// AsFetchError returns err unchanged if it already is a *models.FetchError,
// and wraps it in one otherwise.
func AsFetchError(u string, err error) error {
	var fe *models.FetchError
	if errors.As(err, &fe) {
		return err
	}
	return &models.FetchError{URL: u, Err: err}
}
