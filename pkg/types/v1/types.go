package v1

import (
	"math"
	"strconv"
)

// DefaultBadge is shown for any team that does not carry its own badge.
const DefaultBadge = "/playbypoint_logo.png"

type ID int64

func (id ID) String() string { return strconv.FormatInt(int64(id), 10) }

// Team is one row of the standings table, as served by the record source.
type Team struct {
	ID           ID     `json:"id" yaml:"id"`
	Name         string `json:"name" yaml:"name"`
	Badge        string `json:"badge,omitempty" yaml:"badge,omitempty"`
	Wins         int    `json:"wins" yaml:"wins"`
	Draws        int    `json:"draws" yaml:"draws"`
	Losses       int    `json:"losses" yaml:"losses"`
	Points       int    `json:"points" yaml:"points"`
	GoalsFor     int    `json:"goalsFor" yaml:"goalsFor"`
	GoalsAgainst int    `json:"goalsAgainst" yaml:"goalsAgainst"`
	Description  string `json:"description" yaml:"description"`
	Stadium      string `json:"stadium" yaml:"stadium"`
	FoundedYear  int    `json:"foundedYear" yaml:"foundedYear"`
	Coach        string `json:"coach" yaml:"coach"`

	// BadgeURL is the older name of Badge. Only read, never written.
	BadgeURL string `json:"badgeUrl,omitempty" yaml:"-"`
}

// BadgeOrDefault returns the badge reference, falling back to DefaultBadge.
func (t Team) BadgeOrDefault() string {
	switch {
	case t.Badge != "":
		return t.Badge
	case t.BadgeURL != "":
		return t.BadgeURL
	}
	return DefaultBadge
}

func (t Team) GamesPlayed() int    { return t.Wins + t.Draws + t.Losses }
func (t Team) GoalDifference() int { return t.GoalsFor - t.GoalsAgainst }

// WinPercentage is wins over games played, rounded to a whole percent.
// A team with no games played has a win percentage of 0.
func (t Team) WinPercentage() int {
	played := t.GamesPlayed()
	if played <= 0 {
		return 0
	}
	return int(math.Round(float64(t.Wins) / float64(played) * 100))
}
