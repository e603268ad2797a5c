package font

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"single word", "Roboto", "Roboto"},
		{"with space", "Open Sans", "'Open Sans'"},
		{"multiple spaces", "Source Sans Pro", "'Source Sans Pro'"},
		{"digits", "Slabo 27px", "'Slabo 27px'"},
		{"empty", "", ""},
		{"case kept", "lato", "lato"},
		{"tab is not a space", "Open\tSans", "Open\tSans"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Sanitize(tt.in))
		})
	}
}

func TestSanitizeWrapsIffSpace(t *testing.T) {
	for _, name := range append(PopularFonts, "", " ", "A B", "Noto Sans JP") {
		got := Sanitize(name)
		if containsSpace(name) {
			assert.Equal(t, "'"+name+"'", got, name)
		} else {
			assert.Equal(t, name, got, name)
		}
	}
}

func containsSpace(s string) bool {
	for _, r := range s {
		if r == ' ' {
			return true
		}
	}
	return false
}

func TestStylesheetURL(t *testing.T) {
	t.Run("DefaultBase", func(t *testing.T) {
		assert.Equal(t,
			"https://fonts.googleapis.com/css2?family=Open+Sans:wght@100;200;300;400;500;600;700;800;900&display=swap",
			StylesheetURL("", "Open Sans"))
	})

	t.Run("WhitespaceRuns", func(t *testing.T) {
		assert.Contains(t, StylesheetURL(GoogleFontsBase, "Playfair   Display"), "family=Playfair+Display:")
	})

	t.Run("TrailingSlashBase", func(t *testing.T) {
		assert.Equal(t,
			"http://localhost:8080/css2?family=Lato:wght@100;200;300;400;500;600;700;800;900&display=swap",
			StylesheetURL("http://localhost:8080/", "Lato"))
	})
}

func TestLoaderEnsure(t *testing.T) {
	t.Run("Idempotent", func(t *testing.T) {
		var calls []string
		l := NewLoader(WithOnLoad(func(url string) { calls = append(calls, url) }))

		for i := 0; i < 5; i++ {
			url, _ := l.Ensure("Roboto")
			assert.Equal(t, StylesheetURL(GoogleFontsBase, "Roboto"), url)
		}

		assert.Len(t, calls, 1)
		assert.Equal(t, 1, l.Len())
	})

	t.Run("FirstCallReportsLoad", func(t *testing.T) {
		l := NewLoader()
		_, loaded := l.Ensure("Lato")
		assert.True(t, loaded)
		_, loaded = l.Ensure("Lato")
		assert.False(t, loaded)
	})

	t.Run("SkipsBlankAndPreloaded", func(t *testing.T) {
		calls := 0
		l := NewLoader(WithOnLoad(func(string) { calls++ }))

		for _, name := range []string{"", "   ", "\t", PreloadedFont} {
			url, loaded := l.Ensure(name)
			assert.Empty(t, url, "name %q", name)
			assert.False(t, loaded)
		}
		assert.Zero(t, calls)
		assert.Zero(t, l.Len())
	})

	t.Run("KeepsRequestOrder", func(t *testing.T) {
		l := NewLoader(WithBaseURL("http://fonts.test"))
		l.Ensure("Montserrat")
		l.Ensure("Lato")
		l.Ensure("Montserrat")

		require.Len(t, l.Loaded(), 2)
		assert.Contains(t, l.Loaded()[0], "Montserrat")
		assert.Contains(t, l.Loaded()[1], "Lato")
		assert.Contains(t, l.Loaded()[0], "http://fonts.test/css2")
	})

	t.Run("Concurrent", func(t *testing.T) {
		var mu sync.Mutex
		calls := 0
		l := NewLoader(WithOnLoad(func(string) {
			mu.Lock()
			calls++
			mu.Unlock()
		}))

		var wg sync.WaitGroup
		for i := 0; i < 50; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				l.Ensure(fmt.Sprintf("Font %d", i%5))
			}(i)
		}
		wg.Wait()

		assert.Equal(t, 5, calls)
		assert.Equal(t, 5, l.Len())
	})
}

func TestEnsureLoaded(t *testing.T) {
	set := Set{}

	url, next := EnsureLoaded("", "Open Sans", set)
	require.NotEmpty(t, url)
	assert.Len(t, next, 1)
	assert.Empty(t, set, "input set must not be mutated")

	again, same := EnsureLoaded("", "Open Sans", next)
	assert.Empty(t, again)
	assert.Len(t, same, 1)

	skipped, unchanged := EnsureLoaded("", PreloadedFont, next)
	assert.Empty(t, skipped)
	assert.Len(t, unchanged, 1)
}

func TestWeightLabel(t *testing.T) {
	assert.Equal(t, "Thin (100)", WeightLabel(100))
	assert.Equal(t, "Regular (400)", WeightLabel(400))
	assert.Equal(t, "Black (900)", WeightLabel(900))
	assert.Equal(t, "450", WeightLabel(450))
	assert.True(t, IsWeightStep(700))
	assert.False(t, IsWeightStep(750))
}

func TestDefaults(t *testing.T) {
	assert.Len(t, Weights, 9)
	assert.Len(t, PopularFonts, 15)
	assert.Equal(t, 400, DefaultFontWeight)
	assert.Contains(t, PopularFonts, PreloadedFont)
}
