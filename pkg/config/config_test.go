package config

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewFromReader(t *testing.T) {
	cfg, err := NewFromReader(strings.NewReader(`
server: https://standings.example.com
noticeTimeout: 5s
store:
  backend: sqlite
sort:
  key: wins
  direction: asc
`))
	require.NoError(t, err)
	require.Equal(t, "https://standings.example.com", cfg.Server)
	require.Equal(t, 5*time.Second, cfg.NoticeTimeout)
	require.Equal(t, StoreSQLite, cfg.Store.Backend)
	require.Equal(t, "wins", cfg.Sort.Key)
	require.Equal(t, "asc", cfg.Sort.Direction)

	// untouched fields keep their defaults
	require.Equal(t, Default.FavoritesKey, cfg.FavoritesKey)
	require.Equal(t, Default.Endpoints, cfg.Endpoints)
}

func TestNewFromReaderInvalid(t *testing.T) {
	testcases := map[string]string{
		"unknown backend":   "store:\n  backend: redis\n",
		"unknown sort key":  "sort:\n  key: goals\n",
		"bad direction":     "sort:\n  direction: sideways\n",
		"bad environment":   "environment: staging\n",
		"not yaml":          "server: [",
		"empty favoritekey": "favoritesKey: \"\"\n",
	}

	for name, in := range testcases {
		if _, err := NewFromReader(strings.NewReader(in)); err == nil {
			t.Fatalf("%s: expected an error loading %q", name, in)
		}
	}
}

func TestBaseURL(t *testing.T) {
	testcases := map[string]struct {
		env      string
		server   string
		expected string
	}{
		"development": {env: EnvDevelopment, server: "http://localhost:8080", expected: "http://localhost:3000"},
		"production":  {env: EnvProduction, server: "http://localhost:8080", expected: "http://localhost:8080/api"},
		"prod remote": {env: EnvProduction, server: "https://league.example.com/", expected: "https://league.example.com/api"},
	}

	for name, tc := range testcases {
		c := Default
		c.Environment = tc.env
		c.Server = tc.server
		got, err := c.BaseURL()
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if got != tc.expected {
			t.Fatalf("%s: expected %s but got %s", name, tc.expected, got)
		}
	}
}

func TestNewFromFileMissing(t *testing.T) {
	cfg, err := NewFromFile(t.TempDir() + "/nope.yaml")
	require.NoError(t, err)
	require.Equal(t, Default, *cfg)
}
