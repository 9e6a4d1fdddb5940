package render

import (
	"regexp"
	"strings"
)

var fillAttrPattern = regexp.MustCompile(`fill="[^"]*"`)

// Recolor applies a single color to an SVG document by textual substitution.
// Every fill attribute in the document is replaced with the given color; if
// the document has no fill attribute at all, one is injected on the root
// <svg> tag. The input is untrusted text fetched over the network: no XML
// parsing or validation happens here, and malformed documents get the same
// best-effort substitution.
func Recolor(svg string, hex string) string {
	if fillAttrPattern.MatchString(svg) {
		return fillAttrPattern.ReplaceAllString(svg, `fill="`+hex+`"`)
	}

	idx := strings.Index(svg, "<svg")
	if idx < 0 {
		return svg
	}
	insert := idx + len("<svg")
	return svg[:insert] + ` fill="` + hex + `"` + svg[insert:]
}
