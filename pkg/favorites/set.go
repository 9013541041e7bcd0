package favorites

import (
	"fmt"

	"github.com/byxorna/standings/pkg/types/v1"
)

// Set is an ordered set of team ids. It is a value: Toggle returns a new Set
// and never changes the receiver.
type Set struct {
	ids []v1.ID
}

func NewSet(ids ...v1.ID) Set {
	var s Set
	for _, id := range ids {
		if !s.Has(id) {
			s.ids = append(s.ids, id)
		}
	}
	return s
}

func (s Set) Has(id v1.ID) bool {
	for _, x := range s.ids {
		if x == id {
			return true
		}
	}
	return false
}

func (s Set) Len() int { return len(s.ids) }

// IDs returns a copy of the members in insertion order.
func (s Set) IDs() []v1.ID {
	out := make([]v1.ID, len(s.ids))
	copy(out, s.ids)
	return out
}

// Toggle adds id when absent and removes it when present. added reports
// which one happened.
func (s Set) Toggle(id v1.ID) (next Set, added bool) {
	ids := make([]v1.ID, 0, len(s.ids)+1)
	for _, x := range s.ids {
		if x == id {
			continue
		}
		ids = append(ids, x)
	}
	if len(ids) == len(s.ids) {
		ids = append(ids, id)
		added = true
	}
	return Set{ids: ids}, added
}

// Select is the favorites sublist of entries, in set order. Members with no
// matching entry are skipped.
func (s Set) Select(entries []v1.Team) []v1.Team {
	byID := make(map[v1.ID]v1.Team, len(entries))
	for _, e := range entries {
		byID[e.ID] = e
	}

	out := make([]v1.Team, 0, len(s.ids))
	for _, id := range s.ids {
		if e, ok := byID[id]; ok {
			out = append(out, e)
		}
	}
	return out
}

// Restore rebuilds a Set from stored ids against the loaded entries. The
// result follows load order, and ids naming no loaded entry are dropped.
func Restore(stored []v1.ID, entries []v1.Team) Set {
	want := NewSet(stored...)
	var s Set
	for _, e := range entries {
		if want.Has(e.ID) && !s.Has(e.ID) {
			s.ids = append(s.ids, e.ID)
		}
	}
	return s
}

// ToggleMessage is the notice text for a toggle of the team called name.
func ToggleMessage(name string, added bool) string {
	if added {
		return fmt.Sprintf("%s added to favorites", name)
	}
	return fmt.Sprintf("%s removed from favorites", name)
}
