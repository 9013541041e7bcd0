package config

import (
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/byxorna/standings/pkg/runtime"
	"github.com/byxorna/standings/pkg/version"
	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/go-homedir"
	"gopkg.in/yaml.v3"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"

	StoreFS     = "fs"
	StoreSQLite = "sqlite"
	StoreMemory = "memory"
)

var (
	// Default is the configuration used when no file is present, and the base
	// that a config file is merged over.
	Default = Config{
		Server: "http://localhost:8080",
		Endpoints: Endpoints{
			Development: "http://localhost:3000",
			Production:  "/api",
		},
		Timeout:       10 * time.Second,
		UserAgent:     "standings/" + version.Version,
		FavoritesKey:  "footballFavorites",
		NoticeTimeout: 3 * time.Second,
		Store: Store{
			Backend: StoreFS,
		},
		Sort: Sort{
			Key:       "points",
			Direction: "desc",
		},
	}
)

type Config struct {
	// Environment overrides the build time environment when set
	Environment   string        `yaml:"environment,omitempty" validate:"omitempty,oneof=development production"`
	Server        string        `yaml:"server" validate:"required,url"`
	Endpoints     Endpoints     `yaml:"endpoints"`
	Timeout       time.Duration `yaml:"timeout" validate:"required,gt=0"`
	UserAgent     string        `yaml:"userAgent" validate:"required"`
	FavoritesKey  string        `yaml:"favoritesKey" validate:"required"`
	NoticeTimeout time.Duration `yaml:"noticeTimeout" validate:"required,gt=0"`
	Store         Store         `yaml:"store"`
	Sort          Sort          `yaml:"sort"`
	LogFile       string        `yaml:"logFile,omitempty"`
}

// Endpoints are the record source base paths per environment. A base that
// starts with "/" is relative to Server.
type Endpoints struct {
	Development string `yaml:"development" validate:"required"`
	Production  string `yaml:"production" validate:"required"`
}

type Store struct {
	Backend string `yaml:"backend" validate:"required,oneof=fs sqlite memory"`
	// Path defaults to a file under the XDG data directory
	Path string `yaml:"path,omitempty"`
}

type Sort struct {
	Key       string `yaml:"key" validate:"required,oneof=points wins draws losses"`
	Direction string `yaml:"direction" validate:"required,oneof=asc desc"`
}

func NewFromReader(r io.Reader) (*Config, error) {
	c := Default

	bytes, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("unable to read Config: %w", err)
	}
	err = yaml.Unmarshal(bytes, &c)
	if err != nil {
		return nil, fmt.Errorf("unable to unmarshal Config: %w", err)
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}

	return &c, nil
}

// NewFromFile loads path, falling back to Default when the file is missing.
func NewFromFile(path string) (*Config, error) {
	expandedPath, err := homedir.Expand(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(expandedPath)
	if os.IsNotExist(err) {
		c := Default
		return &c, nil
	}
	if err != nil {
		return nil, fmt.Errorf("unable to open %s: %w", expandedPath, err)
	}
	defer f.Close()

	cfg, err := NewFromReader(f)
	if err != nil {
		return nil, fmt.Errorf("unable to load configuration: %w", err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	validate := validator.New()
	err := validate.Struct(*c)
	if err != nil {
		return fmt.Errorf("config validation error: %w", err)
	}
	return nil
}

// Env is the effective environment: the configured one, or the one the
// binary was built for.
func (c *Config) Env() string {
	if c.Environment != "" {
		return c.Environment
	}
	if version.Environment == EnvProduction {
		return EnvProduction
	}
	return EnvDevelopment
}

// BaseURL resolves the record source base for the effective environment.
func (c *Config) BaseURL() (string, error) {
	base := c.Endpoints.Development
	if c.Env() == EnvProduction {
		base = c.Endpoints.Production
	}

	if !strings.HasPrefix(base, "/") {
		return strings.TrimRight(base, "/"), nil
	}

	server, err := url.Parse(c.Server)
	if err != nil {
		return "", fmt.Errorf("unable to parse server %q: %w", c.Server, err)
	}
	resolved := server.ResolveReference(&url.URL{Path: base})
	return strings.TrimRight(resolved.String(), "/"), nil
}

// StorePath is where the favorite store keeps its data.
func (c *Config) StorePath() (string, error) {
	if c.Store.Path != "" {
		return homedir.Expand(c.Store.Path)
	}
	name := "favorites.json"
	if c.Store.Backend == StoreSQLite {
		name = "favorites.db"
	}
	return runtime.DataFile(name)
}

// LogPath is where the interactive UI writes its log.
func (c *Config) LogPath() (string, error) {
	if c.LogFile != "" {
		return homedir.Expand(c.LogFile)
	}
	return runtime.StateFile(runtime.XDGName + ".log")
}
