package favorites

import (
	"fmt"

	"github.com/byxorna/standings/pkg/config"
	"github.com/byxorna/standings/pkg/db"
	"github.com/byxorna/standings/pkg/db/fs"
	"github.com/byxorna/standings/pkg/db/memory"
	"github.com/byxorna/standings/pkg/db/sqlite"
)

// OpenKV opens the backend named by the store config. The caller closes it.
func OpenKV(cfg *config.Config) (db.KVCloser, error) {
	if cfg.Store.Backend == config.StoreMemory {
		return memory.New(), nil
	}

	path, err := cfg.StorePath()
	if err != nil {
		return nil, fmt.Errorf("unable to locate favorites store: %w", err)
	}

	switch cfg.Store.Backend {
	case config.StoreSQLite:
		return sqlite.Open(path)
	case config.StoreFS, "":
		return fs.New(path)
	}
	return nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
}
