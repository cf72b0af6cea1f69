// internal/app/system/htmlsanitize/htmlsanitize.go

// Package htmlsanitize strips dangerous markup from customer-supplied text
// before it is echoed into HTML contexts, such as the quoted original
// message in an inquiry reply email.
package htmlsanitize

import (
	"html/template"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// policy allows common formatting (paragraphs, emphasis, lists, tables,
// links) and removes scripts, iframes, style blocks, event handler
// attributes, and javascript: URLs.
var policy = buildPolicy()

func buildPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowElements("u", "s", "sub", "sup", "mark")
	p.AllowAttrs("colspan", "rowspan").OnElements("td", "th")
	return p
}

// Sanitize returns s with unsafe HTML removed.
func Sanitize(s string) string {
	return policy.Sanitize(s)
}

// SanitizeToHTML sanitizes s and returns it as template.HTML for direct
// interpolation into html/template email bodies.
func SanitizeToHTML(s string) template.HTML {
	return template.HTML(policy.Sanitize(s))
}

// IsPlainText reports whether s contains no angle brackets. Inquiry
// subjects must pass this check: they are echoed into reply email subject
// lines, which get no sanitization pass.
func IsPlainText(s string) bool {
	return !strings.ContainsAny(s, "<>")
}
