package cmd

import (
	"bytes"
	"fmt"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/byxorna/standings/pkg/devserver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) string {
	t.Helper()
	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetErr(out)
	root.SetArgs(args)
	require.NoError(t, root.Execute(), out.String())
	return out.String()
}

func TestCommands(t *testing.T) {
	s, err := devserver.New("")
	require.NoError(t, err)
	srv := httptest.NewServer(s.Handler())
	defer srv.Close()

	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "standings.yaml")
	cfg := fmt.Sprintf(`environment: development
endpoints:
  development: %s
store:
  backend: fs
  path: %s
`, srv.URL, filepath.Join(dir, "favorites.json"))
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfg), 0644))

	out := run(t, "favorites", "-c", cfgPath, "--no-color")
	assert.Contains(t, out, "No favorite teams yet.")

	out = run(t, "favorites", "toggle", "2", "-c", cfgPath)
	assert.Contains(t, out, "Real Madrid added to favorites")

	out = run(t, "list", "-c", cfgPath, "--no-color", "--search", "real")
	assert.Contains(t, out, "Real Madrid")
	assert.Contains(t, out, "Real Betis")
	assert.NotContains(t, out, "Barcelona")

	out = run(t, "favorites", "-c", cfgPath, "--no-color")
	assert.Contains(t, out, "Real Madrid")
	assert.NotContains(t, out, "Barcelona")

	out = run(t, "favorites", "toggle", "2", "-c", cfgPath)
	assert.Contains(t, out, "Real Madrid removed from favorites")
}

func TestToggleUnknownTeam(t *testing.T) {
	s, err := devserver.New("")
	require.NoError(t, err)
	srv := httptest.NewServer(s.Handler())
	defer srv.Close()

	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "standings.yaml")
	cfg := fmt.Sprintf("environment: development\nendpoints:\n  development: %s\nstore:\n  backend: memory\n", srv.URL)
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfg), 0644))

	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"favorites", "toggle", "999", "-c", cfgPath})
	assert.ErrorContains(t, root.Execute(), "no team with id 999")
}
