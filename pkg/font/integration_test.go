//go:build integration

package font

import (
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Run with: go test -tags=integration ./pkg/font/...
func TestStylesheetURLResolves(t *testing.T) {
	client := &http.Client{Timeout: 15 * time.Second}

	for _, name := range []string{"Roboto", "Open Sans", "Playfair Display"} {
		t.Run(name, func(t *testing.T) {
			resp, err := client.Get(StylesheetURL(GoogleFontsBase, name))
			require.NoError(t, err)
			defer resp.Body.Close()

			require.Equal(t, http.StatusOK, resp.StatusCode)
			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)
			assert.Contains(t, string(body), "@font-face")
			assert.Contains(t, string(body), "font-family: '"+name+"'")
		})
	}
}
