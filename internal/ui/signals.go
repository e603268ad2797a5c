package ui

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/joeblew999/plat-fonts/internal/panel"
	"github.com/joeblew999/plat-fonts/pkg/font"
)

// Panel fields that can be updated from the page.
const (
	FieldName          = "name"
	FieldSize          = "size"
	FieldWeight        = "weight"
	FieldLetterSpacing = "letterSpacing"
	FieldColor         = "color"
)

var (
	ErrUnknownField = errors.New("unknown field")
	ErrMissingPanel = errors.New("panel signals missing")
	ErrInvalidValue = errors.New("invalid value")
)

var hexColor = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// panelSignals mirrors the p{i} signal object. Inputs may send numbers as
// JSON numbers or strings, so every field is decoded loosely.
type panelSignals struct {
	Name          any `json:"name"`
	Size          any `json:"size"`
	Weight        any `json:"weight"`
	LetterSpacing any `json:"letterSpacing"`
	Color         any `json:"color"`
}

// pageSignals is the full signal payload posted by the page.
type pageSignals map[string]json.RawMessage

func signalKey(index int) string {
	return "p" + strconv.Itoa(index)
}

func (s pageSignals) panel(index int) (panelSignals, error) {
	var p panelSignals
	raw, ok := s[signalKey(index)]
	if !ok {
		return p, fmt.Errorf("%w: %s", ErrMissingPanel, signalKey(index))
	}
	if err := json.Unmarshal(raw, &p); err != nil {
		return p, fmt.Errorf("decode %s: %w", signalKey(index), err)
	}
	return p, nil
}

func (s pageSignals) liveText() (string, error) {
	raw, ok := s["liveText"]
	if !ok {
		return "", fmt.Errorf("%w: liveText", ErrInvalidValue)
	}
	var text string
	if err := json.Unmarshal(raw, &text); err != nil {
		return "", fmt.Errorf("decode liveText: %w", err)
	}
	return text, nil
}

// partialFor turns one changed field into a typed Partial.
func partialFor(field string, p panelSignals) (panel.Partial, error) {
	switch field {
	case FieldName:
		name, err := ParseName(p.Name)
		if err != nil {
			return panel.Partial{}, err
		}
		return panel.Partial{Name: &name}, nil
	case FieldSize:
		size, err := ParseSize(p.Size)
		if err != nil {
			return panel.Partial{}, err
		}
		return panel.Partial{Size: &size}, nil
	case FieldWeight:
		weight, err := ParseWeight(p.Weight)
		if err != nil {
			return panel.Partial{}, err
		}
		return panel.Partial{Weight: &weight}, nil
	case FieldLetterSpacing:
		spacing, err := ParseLetterSpacing(p.LetterSpacing)
		if err != nil {
			return panel.Partial{}, err
		}
		return panel.Partial{LetterSpacing: &spacing}, nil
	case FieldColor:
		color, err := ParseColor(p.Color)
		if err != nil {
			return panel.Partial{}, err
		}
		return panel.Partial{Color: &color}, nil
	default:
		return panel.Partial{}, fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
}

// ParseName accepts any string, including empty.
func ParseName(v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w: name must be a string", ErrInvalidValue)
	}
	return s, nil
}

// ParseSize returns a whole pixel size clamped to [font.MinSize, font.MaxSize].
func ParseSize(v any) (int, error) {
	f, err := number(v)
	if err != nil {
		return 0, fmt.Errorf("size: %w", err)
	}
	return int(clamp(math.Round(f), font.MinSize, font.MaxSize)), nil
}

// ParseWeight snaps to the nearest weight step. Ties go to the lighter step.
func ParseWeight(v any) (int, error) {
	f, err := number(v)
	if err != nil {
		return 0, fmt.Errorf("weight: %w", err)
	}

	best := font.Weights[0]
	for _, w := range font.Weights[1:] {
		if math.Abs(f-float64(w)) < math.Abs(f-float64(best)) {
			best = w
		}
	}
	return best, nil
}

// ParseLetterSpacing clamps to [font.MinLetterSpacing, font.MaxLetterSpacing]
// with a precision of 0.1px.
func ParseLetterSpacing(v any) (float64, error) {
	f, err := number(v)
	if err != nil {
		return 0, fmt.Errorf("letter spacing: %w", err)
	}
	f = math.Round(f*10) / 10
	return clamp(f, font.MinLetterSpacing, font.MaxLetterSpacing), nil
}

// ParseColor accepts #rrggbb and returns it lowercased.
func ParseColor(v any) (string, error) {
	s, ok := v.(string)
	if !ok || !hexColor.MatchString(strings.TrimSpace(s)) {
		return "", fmt.Errorf("%w: color must be #rrggbb", ErrInvalidValue)
	}
	return strings.ToLower(strings.TrimSpace(s)), nil
}

func number(v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return 0, ErrInvalidValue
		}
		return n, nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidValue, n)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("%w: not a number", ErrInvalidValue)
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// panelSignalsOf is the signal object the page holds for cfg.
func panelSignalsOf(cfg panel.FontConfig) map[string]any {
	return map[string]any{
		FieldName:          cfg.Name,
		FieldSize:          cfg.Size,
		FieldWeight:        cfg.Weight,
		FieldLetterSpacing: cfg.LetterSpacing,
		FieldColor:         cfg.Color,
	}
}
