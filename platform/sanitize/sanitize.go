// Package sanitize strips markup from free-text user input.
package sanitize

import (
	"regexp"
	"strings"
)

var (
	// htmlTagRegex matches HTML tags
	htmlTagRegex = regexp.MustCompile(`<[^>]*>`)

	entityReplacer = strings.NewReplacer(
		"&lt;", "<",
		"&gt;", ">",
		"&amp;", "&",
		"&quot;", "\"",
		"&#39;", "'",
	)
)

// StripHTML removes all HTML tags from s and decodes the common entities.
// Tags hidden behind entities are stripped on a second pass.
func StripHTML(s string) string {
	result := htmlTagRegex.ReplaceAllString(s, "")
	result = entityReplacer.Replace(result)
	result = htmlTagRegex.ReplaceAllString(result, "")
	return strings.TrimSpace(result)
}

// Name sanitizes a short single-line value such as a person's name: tags
// are stripped and runs of whitespace collapse to one space.
func Name(s string) string {
	return strings.Join(strings.Fields(StripHTML(s)), " ")
}
