
package models

import (
	"errors"
	"fmt"
)

// ErrScriptDriven marks pages that need a browser engine and are never fetched.
var ErrScriptDriven = errors.New("script-driven page skipped")

// FetchError is a non-success response or a transport failure.
type FetchError struct {
	URL    string
	Status int
	Err    error
}

func (e *FetchError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("fetch %s: http status %d", e.URL, e.Status)
	}
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// ParseError is returned when fetched markup cannot be decoded or parsed.
type ParseError struct {
	URL string
	Err error
}

func (e *ParseError) Error() string { return fmt.Sprintf("parse %s: %v", e.URL, e.Err) }

func (e *ParseError) Unwrap() error { return e.Err }

// NoPage reports whether err means no page content is available for a URL.
func NoPage(err error) bool {
	var fe *FetchError
	var pe *ParseError
	return errors.Is(err, ErrScriptDriven) || errors.As(err, &fe) || errors.As(err, &pe)
}
