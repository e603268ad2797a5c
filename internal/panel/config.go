// Package panel holds the per-panel font configuration and the controller
// that applies edits to it.
package panel

import (
	"fmt"

	"github.com/joeblew999/plat-fonts/pkg/font"
)

// DefaultSampleText is rendered in every panel and seeds the live preview.
const DefaultSampleText = "The quick brown fox jumps over the lazy dog. Pack my box with five dozen liquor jugs. 0123456789 ABCDEFGHIJKLMNOPQRSTUVWXYZ abcdefghijklmnopqrstuvwxyz !@#$%^&*()"

// Default styling for new panels.
const (
	DefaultSize          = 24
	DefaultWeight        = font.DefaultFontWeight
	DefaultLetterSpacing = 0.0
	DefaultColor         = "#333333"
)

// DefaultFonts are the families shown when a workspace is created.
var DefaultFonts = []string{"Roboto", "Open Sans", "Lato", "Montserrat"}

// FontConfig is the full styling of one panel.
type FontConfig struct {
	ID                      string  `json:"id"`
	Name                    string  `json:"name"`
	Size                    int     `json:"size"`
	Weight                  int     `json:"weight"`
	LetterSpacing           float64 `json:"letterSpacing"`
	Color                   string  `json:"color"`
	FontFamilyQuery         string  `json:"fontFamilyQuery"`
	AIRecommendation        string  `json:"aiRecommendation,omitempty"`
	IsLoadingRecommendation bool    `json:"isLoadingRecommendation"`
}

// New returns a panel config for name with default styling.
func New(id, name string) FontConfig {
	return FontConfig{
		ID:              id,
		Name:            name,
		Size:            DefaultSize,
		Weight:          DefaultWeight,
		LetterSpacing:   DefaultLetterSpacing,
		Color:           DefaultColor,
		FontFamilyQuery: font.Sanitize(name),
	}
}

// PanelID returns the identifier of the panel at index.
func PanelID(index int) string {
	return fmt.Sprintf("panel-%d", index+1)
}

// Defaults builds n panels cycling through DefaultFonts.
func Defaults(n int) []FontConfig {
	configs := make([]FontConfig, n)
	for i := range configs {
		configs[i] = New(PanelID(i), DefaultFonts[i%len(DefaultFonts)])
	}
	return configs
}

// Partial is a sparse set of field overrides. Nil fields keep their value.
// There is no ID or FontFamilyQuery: the first never changes
// and the second is derived from Name.
type Partial struct {
	Name          *string
	Size          *int
	Weight        *int
	LetterSpacing *float64
	Color         *string
}

// Empty reports whether p overrides nothing.
func (p Partial) Empty() bool {
	return p.Name == nil && p.Size == nil && p.Weight == nil && p.LetterSpacing == nil && p.Color == nil
}

// apply merges p into c and reports whether the name changed.
func (p Partial) apply(c *FontConfig) bool {
	nameChanged := false
	if p.Name != nil && *p.Name != c.Name {
		c.Name = *p.Name
		c.FontFamilyQuery = font.Sanitize(c.Name)
		nameChanged = true
	}
	if p.Size != nil {
		c.Size = *p.Size
	}
	if p.Weight != nil {
		c.Weight = *p.Weight
	}
	if p.LetterSpacing != nil {
		c.LetterSpacing = *p.LetterSpacing
	}
	if p.Color != nil {
		c.Color = *p.Color
	}
	return nameChanged
}

// Ptr returns a pointer to v. Handy for building a Partial.
func Ptr[T any](v T) *T {
	return &v
}
