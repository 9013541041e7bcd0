package db

import (
	"context"
	"fmt"

	"github.com/byxorna/standings/pkg/types/v1"
)

var (
	ErrNotFound = fmt.Errorf("key not found")
)

// KV is a durable string keyed store. Get returns ErrNotFound for a key that
// was never set.
type KV interface {
	Get(key string) (string, error)
	Set(key, value string) error
}

// KVCloser is a KV holding resources that must be released.
type KVCloser interface {
	KV
	Close() error
}

// Source supplies the league table.
type Source interface {
	Teams(ctx context.Context) ([]v1.Team, error)
}
