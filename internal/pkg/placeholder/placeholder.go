// Package placeholder converts template bodies between the editor form, where
// placeholders appear as <name> markers, and the stored form, where they are
// kept as &lt;name&gt; so the body displays as literal text.
package placeholder

import (
	"html"
	"regexp"
	"strings"
)

var (
	rawToken     = regexp.MustCompile(`<([^<>]+)>`)
	encodedToken = regexp.MustCompile(`&lt;([^&]+)&gt;`)
)

// Extract returns the distinct placeholder names found in text, in
// first-occurrence order. A name is anything between < and > that contains
// no further angle brackets.
func Extract(text string) []string {
	var names []string
	seen := make(map[string]bool)
	for _, m := range rawToken.FindAllStringSubmatch(text, -1) {
		if !seen[m[1]] {
			seen[m[1]] = true
			names = append(names, m[1])
		}
	}
	return names
}

// Encode converts every <name> marker into &lt;name&gt;. Stray angle brackets
// that do not form a marker pass through untouched.
func Encode(text string) string {
	encoded := text
	for _, name := range Extract(text) {
		encoded = strings.ReplaceAll(encoded, "<"+name+">", "&lt;"+name+"&gt;")
	}
	return encoded
}

// Decode is the inverse of Encode: it HTML-entity-decodes the whole body and
// then rewrites any remaining &lt;name&gt; occurrences (from double-encoded
// bodies) back to <name>.
func Decode(text string) string {
	decoded := html.UnescapeString(text)
	for _, m := range encodedToken.FindAllStringSubmatch(decoded, -1) {
		decoded = strings.ReplaceAll(decoded, "&lt;"+m[1]+"&gt;", "<"+m[1]+">")
	}
	return decoded
}

// Join renders a name list as the comma-joined form stored on templates.
func Join(names []string) string {
	return strings.Join(names, ",")
}
