package standings

import (
	"fmt"
	"strings"

	"github.com/byxorna/standings/pkg/types/v1"
)

// SortKey is the statistic the table is ordered by.
type SortKey int

const (
	Points SortKey = iota
	Wins
	Draws
	Losses
)

// SortKeys lists every key in the order the UI cycles through them.
var SortKeys = []SortKey{Points, Wins, Draws, Losses}

func (k SortKey) String() string {
	switch k {
	case Points:
		return "points"
	case Wins:
		return "wins"
	case Draws:
		return "draws"
	case Losses:
		return "losses"
	}
	return fmt.Sprintf("SortKey(%d)", int(k))
}

// Title is the column header for the key.
func (k SortKey) Title() string {
	switch k {
	case Points:
		return "Pts"
	case Wins:
		return "W"
	case Draws:
		return "D"
	case Losses:
		return "L"
	}
	return "?"
}

// Value reads the statistic the key names off a team.
func (k SortKey) Value(t v1.Team) int {
	switch k {
	case Wins:
		return t.Wins
	case Draws:
		return t.Draws
	case Losses:
		return t.Losses
	default:
		return t.Points
	}
}

// Next is the key after k, wrapping around.
func (k SortKey) Next() SortKey {
	return SortKeys[(int(k)+1)%len(SortKeys)]
}

func ParseSortKey(s string) (SortKey, error) {
	for _, k := range SortKeys {
		if strings.EqualFold(s, k.String()) {
			return k, nil
		}
	}
	return Points, fmt.Errorf("unknown sort key %q", s)
}

// Direction of the sort. The zero value is Descending.
type Direction int

const (
	Descending Direction = iota
	Ascending
)

func (d Direction) String() string {
	if d == Ascending {
		return "asc"
	}
	return "desc"
}

// Arrow is a compact indicator for headers.
func (d Direction) Arrow() string {
	if d == Ascending {
		return "▲"
	}
	return "▼"
}

func (d Direction) Toggle() Direction {
	if d == Ascending {
		return Descending
	}
	return Ascending
}

func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(s) {
	case "desc", "descending":
		return Descending, nil
	case "asc", "ascending":
		return Ascending, nil
	}
	return Descending, fmt.Errorf("unknown sort direction %q", s)
}

// ParseSort reads a key and direction as they appear in config and flags.
func ParseSort(key, dir string) (Sort, error) {
	k, err := ParseSortKey(key)
	if err != nil {
		return Sort{}, err
	}
	d, err := ParseDirection(dir)
	if err != nil {
		return Sort{}, err
	}
	return Sort{Key: k, Direction: d}, nil
}
