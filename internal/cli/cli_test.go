package cli

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/joeblew999/plat-fonts/internal/analytics"
	"github.com/joeblew999/plat-fonts/internal/model"
	"github.com/joeblew999/plat-fonts/pkg/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestURLCommand(t *testing.T) {
	out, err := run(t, "url", "Open", "Sans")
	require.NoError(t, err)
	assert.Contains(t, out, "https://fonts.googleapis.com/css2?family=Open+Sans:wght@")
}

func TestURLCommandCustomBase(t *testing.T) {
	out, err := run(t, "url", "--base", "http://localhost:9000", "Lato")
	require.NoError(t, err)
	assert.Contains(t, out, "http://localhost:9000/css2?family=Lato")
}

func TestURLCommandPreloaded(t *testing.T) {
	out, err := run(t, "url", "Inter")
	require.NoError(t, err)
	assert.Contains(t, out, "preloaded")
}

func TestURLCommandRequiresName(t *testing.T) {
	_, err := run(t, "url")
	assert.Error(t, err)

	_, err = run(t, "url", "  ")
	assert.ErrorIs(t, err, errNameRequired)
}

func TestSanitizeCommand(t *testing.T) {
	out, err := run(t, "sanitize", "Playfair", "Display")
	require.NoError(t, err)
	assert.Equal(t, "'Playfair Display'\n", out)
}

func TestFontsCommand(t *testing.T) {
	out, err := run(t, "fonts")
	require.NoError(t, err)
	assert.Contains(t, out, "Montserrat")
	assert.Contains(t, out, "Bold (700)")
	assert.Contains(t, out, "panel-4: Montserrat")
}

func TestRecommendCommandWithoutEndpoint(t *testing.T) {
	_, err := run(t, "recommend", "--endpoint", "", "Lato")
	assert.Error(t, err)
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "fonts "+Version+"\n", out)

	out, err = run(t, "--version")
	require.NoError(t, err)
	assert.Equal(t, "fonts "+Version+"\n", out)
}

func TestStatsCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stats.db")

	database, err := db.Open(path)
	require.NoError(t, err)
	events := model.NewAnalyticsEventsModel(database.SqlConn())
	for i, typ := range []analytics.EventType{analytics.FontSelected, analytics.FontSelected, analytics.FeatureUsed} {
		_, err := events.Insert(context.Background(), &model.AnalyticsEvents{
			Id:        string(rune('a' + i)),
			SiteId:    "font-previewer",
			EventType: string(typ),
			CreatedAt: "2026-01-02T15:04:05Z",
		})
		require.NoError(t, err)
	}
	require.NoError(t, database.Close())

	out, err := run(t, "stats", "--db", path, "--recent", "2")
	require.NoError(t, err)
	assert.Contains(t, out, string(analytics.FontSelected))
	assert.Contains(t, out, "total")
	assert.Contains(t, out, "Recent:")
}

func TestStatsCommandMissingDatabase(t *testing.T) {
	_, err := run(t, "stats", "--db", filepath.Join(t.TempDir(), "missing.db"))
	assert.Error(t, err)
}
