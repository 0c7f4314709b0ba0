package sanitize

import "github.com/microcosm-cc/bluemonday"

var strict = bluemonday.StrictPolicy()

// Text strips all markup from user-supplied text (bios, descriptions,
// announcement bodies). The result is safe to render in templates.
func Text(s string) string {
	return strict.Sanitize(s)
}
