// Package recommend asks an external text-generation service what a font is
// best suited for.
package recommend

import (
	"bytes"
	"context"
	"errors"
	"text/template"
)

// Placeholder is shown in place of a recommendation when fetching fails.
const Placeholder = "Could not load a recommendation for this font. Please try again."

var (
	// ErrUnavailable is returned when no recommendation service is configured.
	ErrUnavailable = errors.New("recommendation service not configured")
	// ErrEmptyRecommendation is returned when the service answers with no text.
	ErrEmptyRecommendation = errors.New("empty recommendation")
	// ErrEmptyFontName is returned for a blank font name.
	ErrEmptyFontName = errors.New("font name is required")
)

// Request is sent to the recommendation service.
type Request struct {
	FontName string `json:"fontName"`
	Prompt   string `json:"prompt"`
}

// Response is returned by the recommendation service.
type Response struct {
	Recommendation string `json:"recommendation"`
}

// Recommender fetches a recommendation for a font name.
type Recommender interface {
	Recommend(ctx context.Context, fontName string) (*Response, error)
}

// Func adapts a function to a Recommender.
type Func func(ctx context.Context, fontName string) (*Response, error)

// Recommend calls f.
func (f Func) Recommend(ctx context.Context, fontName string) (*Response, error) {
	return f(ctx, fontName)
}

type unavailable struct{}

func (unavailable) Recommend(context.Context, string) (*Response, error) {
	return nil, ErrUnavailable
}

// Unavailable always fails with ErrUnavailable.
var Unavailable Recommender = unavailable{}

var promptTemplate = template.Must(template.New("prompt").Parse(
	`You are an AI assistant that specializes in providing recommendations for fonts. ` +
		`Given a font name, you will provide a recommendation for the font, including the type ` +
		`of content or design style it is best suited for.

Font Name: {{.FontName}}
Recommendation: `))

// Prompt renders the fixed prompt for fontName.
func Prompt(fontName string) string {
	var buf bytes.Buffer
	// the template only reads a string field and cannot fail
	_ = promptTemplate.Execute(&buf, struct{ FontName string }{fontName})
	return buf.String()
}
