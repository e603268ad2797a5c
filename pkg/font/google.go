package font

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// weightAxis is the wght range requested for every family so that later weight
// changes never need another stylesheet request.
var weightAxis = func() string {
	parts := make([]string, len(Weights))
	for i, w := range Weights {
		parts[i] = strconv.Itoa(w)
	}
	return strings.Join(parts, ";")
}()

// Sanitize returns the CSS font-family identifier for a font name.
// Names containing a space are wrapped in single quotes; anything else is
// returned unchanged. Case, punctuation and Unicode are left alone.
func Sanitize(name string) string {
	if strings.Contains(name, " ") {
		return "'" + name + "'"
	}
	return name
}

// QueryName converts a font name to its Google Fonts family parameter,
// replacing every whitespace run with '+'.
func QueryName(name string) string {
	return whitespaceRun.ReplaceAllString(name, "+")
}

// StylesheetURL builds the CSS2 stylesheet URL for a family with all nine
// weights, e.g. https://fonts.googleapis.com/css2?family=Open+Sans:wght@100;...;900&display=swap
func StylesheetURL(base, name string) string {
	if base == "" {
		base = GoogleFontsBase
	}
	base = strings.TrimRight(base, "/")
	return fmt.Sprintf("%s/css2?family=%s:wght@%s&display=swap", base, QueryName(name), weightAxis)
}

// Skipped reports whether a name never needs a stylesheet request: blank
// names and the globally preloaded family.
func Skipped(name string) bool {
	return strings.TrimSpace(name) == "" || name == PreloadedFont
}
