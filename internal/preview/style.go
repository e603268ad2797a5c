package preview

import (
	"strconv"
	"strings"

	"github.com/joeblew999/plat-fonts/internal/panel"
)

// LineHeight is applied to the live preview whether or not it is bound.
const LineHeight = 1.6

// Style is the set of CSS properties applied to preview text. The zero value
// means browser defaults.
type Style struct {
	FontFamily    string
	FontSize      int
	FontWeight    int
	LetterSpacing float64
	Color         string
	set           bool
}

// StyleOf copies the five style fields of cfg verbatim.
func StyleOf(cfg panel.FontConfig) Style {
	return Style{
		FontFamily:    cfg.FontFamilyQuery,
		FontSize:      cfg.Size,
		FontWeight:    cfg.Weight,
		LetterSpacing: cfg.LetterSpacing,
		Color:         cfg.Color,
		set:           true,
	}
}

// IsZero reports whether s applies no font styling.
func (s Style) IsZero() bool {
	return !s.set
}

// CSS renders s as an inline style attribute value.
func (s Style) CSS() string {
	lh := "line-height: " + strconv.FormatFloat(LineHeight, 'f', -1, 64) + ";"
	if !s.set {
		return lh
	}

	var b strings.Builder
	b.WriteString("font-family: " + s.FontFamily + ";")
	b.WriteString(" font-size: " + strconv.Itoa(s.FontSize) + "px;")
	b.WriteString(" font-weight: " + strconv.Itoa(s.FontWeight) + ";")
	b.WriteString(" letter-spacing: " + strconv.FormatFloat(s.LetterSpacing, 'f', -1, 64) + "px;")
	b.WriteString(" color: " + s.Color + ";")
	b.WriteString(" " + lh)
	return b.String()
}
