package font

import "strconv"

const (
	// GoogleFontsBase is the default host for Google Fonts stylesheets
	GoogleFontsBase = "https://fonts.googleapis.com"

	// PreloadedFont is loaded globally by the page layout and never requested again
	PreloadedFont = "Inter"

	// DefaultFontWeight is the standard font weight used when not specified
	DefaultFontWeight = 400

	// MinSize and MaxSize bound the pixel font size accepted by the UI
	MinSize = 8
	MaxSize = 128

	// MinLetterSpacing and MaxLetterSpacing bound letter spacing in px
	MinLetterSpacing = -5.0
	MaxLetterSpacing = 20.0
)

// Weights lists the nine discrete weight steps requested for every family.
var Weights = []int{100, 200, 300, 400, 500, 600, 700, 800, 900}

var weightLabels = map[int]string{
	100: "Thin",
	200: "Extra Light",
	300: "Light",
	400: "Regular",
	500: "Medium",
	600: "Semi Bold",
	700: "Bold",
	800: "Extra Bold",
	900: "Black",
}

// PopularFonts is the curated list offered in the font picker
var PopularFonts = []string{
	"Roboto",
	"Open Sans",
	"Lato",
	"Montserrat",
	"Oswald",
	"Source Sans Pro",
	"Merriweather",
	"PT Sans",
	"Playfair Display",
	"Nunito",
	"Lora",
	"Poppins",
	"Inter",
	"Raleway",
	"Slabo 27px",
}

// WeightLabel returns the display label for a weight step, e.g. "Bold (700)".
func WeightLabel(weight int) string {
	if name, ok := weightLabels[weight]; ok {
		return name + " (" + strconv.Itoa(weight) + ")"
	}
	return strconv.Itoa(weight)
}

// IsWeightStep reports whether w is one of the nine weight steps.
func IsWeightStep(w int) bool {
	_, ok := weightLabels[w]
	return ok
}
