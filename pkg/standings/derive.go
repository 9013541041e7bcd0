package standings

import (
	"sort"
	"strings"

	"github.com/byxorna/standings/pkg/types/v1"
	"golang.org/x/text/cases"
)

// Sort is an ordering over one statistic. The zero value is points descending.
type Sort struct {
	Key       SortKey
	Direction Direction
}

func (s Sort) String() string { return s.Key.String() + " " + s.Direction.String() }

// Query is what the user asked to see: a name search plus an ordering.
type Query struct {
	Search string
	Sort   Sort
}

// Filter keeps the teams whose name contains search, ignoring case. An empty
// search keeps everything. Input order is preserved and entries is not modified.
func Filter(entries []v1.Team, search string) []v1.Team {
	out := make([]v1.Team, 0, len(entries))
	if search == "" {
		return append(out, entries...)
	}

	folder := cases.Fold()
	needle := folder.String(search)
	for _, t := range entries {
		if strings.Contains(folder.String(t.Name), needle) {
			out = append(out, t)
		}
	}
	return out
}

// SortBy returns a copy of entries ordered by s. Ties keep their input order
// in either direction.
func SortBy(entries []v1.Team, s Sort) []v1.Team {
	out := make([]v1.Team, len(entries))
	copy(out, entries)

	sort.SliceStable(out, func(i, j int) bool {
		a, b := s.Key.Value(out[i]), s.Key.Value(out[j])
		if s.Direction == Ascending {
			return a < b
		}
		return a > b
	})
	return out
}

// Derive produces the visible rows for q: filtered, then sorted.
func Derive(entries []v1.Team, q Query) []v1.Team {
	return SortBy(Filter(entries, q.Search), q.Sort)
}
