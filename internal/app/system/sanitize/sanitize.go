// internal/app/system/sanitize/sanitize.go

// Package sanitize wraps the bluemonday policies used for rich HTML fields:
// newsletter bodies and work/project content. Both come from admin input but
// are rendered into other people's inboxes and browsers, so they pass through
// a UGC policy before every write.
package sanitize

import "github.com/microcosm-cc/bluemonday"

var (
	ugc    = bluemonday.UGCPolicy()
	strict = bluemonday.StrictPolicy()
)

// HTML sanitizes rich HTML, keeping common formatting tags and links.
func HTML(s string) string {
	return ugc.Sanitize(s)
}

// Text strips all HTML, leaving plain text. Used for fields that must never
// contain markup (names, subjects, messages).
func Text(s string) string {
	return strict.Sanitize(s)
}
