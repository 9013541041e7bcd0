package model

import (
	"fmt"
	"io"

	"github.com/byxorna/standings/pkg/config"
	"github.com/byxorna/standings/pkg/db/remote"
	"github.com/byxorna/standings/pkg/favorites"
	"github.com/byxorna/standings/pkg/standings"
)

// NewFromConfig wires the record source and favorite store named by cfg into
// a Model. The returned closer releases the store.
func NewFromConfig(cfg *config.Config) (*Model, io.Closer, error) {
	sort, err := standings.ParseSort(cfg.Sort.Key, cfg.Sort.Direction)
	if err != nil {
		return nil, nil, err
	}

	source, err := remote.NewFromConfig(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("error initializing record source: %w", err)
	}

	kv, err := favorites.OpenKV(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("error initializing favorites store: %w", err)
	}

	m := New(Options{
		Source:        source,
		Store:         favorites.NewStore(kv, cfg.FavoritesKey),
		Sort:          sort,
		Timeout:       cfg.Timeout,
		NoticeTimeout: cfg.NoticeTimeout,
		Endpoint:      source.URL(),
	})
	return m, kv, nil
}

func NewFromConfigFile(path string) (*Model, io.Closer, error) {
	cfg, err := config.NewFromFile(path)
	if err != nil {
		return nil, nil, err
	}
	return NewFromConfig(cfg)
}
