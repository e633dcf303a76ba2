// Package htmlsanitize strips markup from user-submitted free text.
//
// Post titles, descriptions, and names are plain text for this service;
// anything that looks like HTML in them is hostile or accidental and is
// removed before the value is persisted.
package htmlsanitize

import "github.com/microcosm-cc/bluemonday"

var strict = bluemonday.StrictPolicy()

// Strip removes all HTML elements and attributes from s, leaving only the
// text content.
func Strip(s string) string {
	return strict.Sanitize(s)
}
