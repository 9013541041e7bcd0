package favorites

import (
	"errors"
	"fmt"
	"strings"

	"github.com/byxorna/standings/pkg/db"
	"github.com/byxorna/standings/pkg/types/v1"
	"github.com/bytedance/sonic"
	"github.com/tidwall/gjson"
)

const DefaultKey = "footballFavorites"

var (
	ErrMalformed = fmt.Errorf("malformed favorites")
)

// Store persists a Set as a JSON array of ids under Key.
type Store struct {
	KV  db.KV
	Key string
}

func NewStore(kv db.KV, key string) *Store {
	if key == "" {
		key = DefaultKey
	}
	return &Store{KV: kv, Key: key}
}

// Load reads the stored ids. A missing key is an empty list. Both an array of
// ids and an array of team snapshots carrying an id are accepted.
func (s *Store) Load() ([]v1.ID, error) {
	raw, err := s.KV.Get(s.Key)
	if errors.Is(err, db.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("unable to read %s: %w", s.Key, err)
	}
	return Decode(raw)
}

func (s *Store) Save(set Set) error {
	b, err := sonic.Marshal(set.IDs())
	if err != nil {
		return err
	}
	if err := s.KV.Set(s.Key, string(b)); err != nil {
		return fmt.Errorf("unable to write %s: %w", s.Key, err)
	}
	return nil
}

// Decode parses a stored favorites value.
func Decode(raw string) ([]v1.ID, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	if !gjson.Valid(raw) {
		return nil, fmt.Errorf("%w: invalid json", ErrMalformed)
	}

	doc := gjson.Parse(raw)
	if doc.Type == gjson.Null {
		return nil, nil
	}
	if !doc.IsArray() {
		return nil, fmt.Errorf("%w: expected an array", ErrMalformed)
	}

	ids := []v1.ID{}
	var bad error
	doc.ForEach(func(_, item gjson.Result) bool {
		switch {
		case item.Type == gjson.Number:
			ids = append(ids, v1.ID(item.Int()))
		case item.IsObject() && item.Get("id").Type == gjson.Number:
			ids = append(ids, v1.ID(item.Get("id").Int()))
		default:
			bad = fmt.Errorf("%w: unexpected element %s", ErrMalformed, item.Raw)
			return false
		}
		return true
	})
	if bad != nil {
		return nil, bad
	}
	return ids, nil
}
