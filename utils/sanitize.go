package utils

import "github.com/microcosm-cc/bluemonday"

var sanitizer = bluemonday.UGCPolicy()

// Sanitize cleans backend-provided text before it is rendered into a page.
// The backend is external; its content is treated as untrusted.
func Sanitize(input string) string {
	return sanitizer.Sanitize(input)
}
