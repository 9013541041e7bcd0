package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/byxorna/standings/pkg/standings"
	"github.com/byxorna/standings/pkg/text"
	"github.com/byxorna/standings/pkg/types/v1"
	"github.com/muesli/reflow/ansi"
)

// Columns selects which set of columns a table shows.
type Columns int

const (
	StandingsColumns Columns = iota
	FavoritesColumns
)

type Table struct {
	Rows    []v1.Team
	Columns Columns
	Sort    standings.Sort
	// Search is highlighted in team names
	Search string
	// IsFavorite marks rows with a star. May be nil.
	IsFavorite func(v1.ID) bool
	// Cursor is the highlighted row, or -1 for none
	Cursor int
	// Offset is the first row drawn and Height the most rows drawn. A Height
	// of 0 draws every row.
	Offset int
	Height int
	Width  int
}

type column struct {
	title string
	width int
	right bool
	key   *standings.SortKey
	// styled values carry their own colors and are only padded
	styled bool
	value  func(i int, t v1.Team) string
}

func keyRef(k standings.SortKey) *standings.SortKey { return &k }

func (t Table) columns() []column {
	num := func(f func(v1.Team) int) func(int, v1.Team) string {
		return func(_ int, team v1.Team) string { return strconv.Itoa(f(team)) }
	}
	cols := []column{
		{title: "#", width: 3, right: true, value: func(i int, _ v1.Team) string { return strconv.Itoa(i + 1) }},
		{title: "", width: 2, styled: true, value: func(_ int, team v1.Team) string { return text.Crest(team.Name) }},
		{title: "Team", width: 0},
		{title: standings.Points.Title(), width: 4, right: true, key: keyRef(standings.Points), value: num(standings.Points.Value)},
		{title: standings.Wins.Title(), width: 3, right: true, key: keyRef(standings.Wins), value: num(standings.Wins.Value)},
		{title: standings.Draws.Title(), width: 3, right: true, key: keyRef(standings.Draws), value: num(standings.Draws.Value)},
		{title: standings.Losses.Title(), width: 3, right: true, key: keyRef(standings.Losses), value: num(standings.Losses.Value)},
	}
	switch t.Columns {
	case StandingsColumns:
		cols = append(cols,
			column{title: "GD", width: 4, right: true, value: func(_ int, team v1.Team) string {
				return fmt.Sprintf("%+d", team.GoalDifference())
			}},
			column{title: "Fav", width: 3, right: true, styled: true, value: t.star},
		)
	case FavoritesColumns:
		cols = append(cols,
			column{title: "W%", width: 4, right: true, value: func(_ int, team v1.Team) string {
				return strconv.Itoa(team.WinPercentage())
			}},
		)
	}
	return cols
}

func (t Table) star(_ int, team v1.Team) string {
	if t.IsFavorite != nil && t.IsFavorite(team.ID) {
		return FavoriteStar.Render("★")
	}
	return SubtleStyle.Render("☆")
}

// nameWidth is what is left for the team name once every other column and a
// one cell gutter per column is accounted for.
func (t Table) nameWidth(cols []column) int {
	const minName, defaultName = 12, 24
	if t.Width <= 0 {
		return defaultName
	}
	used := 2 // cursor gutter
	for _, c := range cols {
		used += c.width + 1
	}
	if w := t.Width - used; w > minName {
		return w
	}
	return minName
}

func (t Table) Header() string {
	cols := t.columns()
	nw := t.nameWidth(cols)

	cells := []string{"  "}
	for _, c := range cols {
		title := c.title
		style := HeaderStyle
		if c.key != nil && *c.key == t.Sort.Key {
			title += t.Sort.Direction.Arrow()
			style = SortedStyle
		}
		w := c.width
		if c.title == "Team" {
			w = nw
		}
		if c.right {
			cells = append(cells, style.Render(text.FitLeft(title, w)))
		} else {
			cells = append(cells, style.Render(text.Fit(title, w)))
		}
	}
	return strings.Join(cells, " ")
}

func (t Table) Row(i int) string {
	team := t.Rows[i]
	cols := t.columns()
	nw := t.nameWidth(cols)
	selected := i == t.Cursor

	gutter := "  "
	base := NormalStyle
	if selected {
		gutter = CursorStyle.Render("│ ")
		base = CursorStyle
	}

	cells := []string{gutter}
	for _, c := range cols {
		if c.title == "Team" {
			name := text.Fit(team.Name, nw)
			cells = append(cells, text.Highlight(name, t.Search, base, MatchStyle))
			continue
		}
		v := c.value(i, team)
		if c.styled {
			cells = append(cells, padStyled(v, c.width, c.right))
			continue
		}
		if c.right {
			v = text.FitLeft(v, c.width)
		} else {
			v = text.Fit(v, c.width)
		}
		if c.key != nil && *c.key == t.Sort.Key {
			cells = append(cells, SortedStyle.Render(v))
		} else {
			cells = append(cells, base.Render(v))
		}
	}
	return strings.Join(cells, " ")
}

func (t Table) View() string {
	lines := []string{t.Header()}

	start, end := 0, len(t.Rows)
	if t.Height > 0 {
		start = t.Offset
		if start > len(t.Rows) {
			start = len(t.Rows)
		}
		if start+t.Height < end {
			end = start + t.Height
		}
	}
	for i := start; i < end; i++ {
		lines = append(lines, t.Row(i))
	}
	return strings.Join(lines, "\n")
}

func padStyled(s string, width int, right bool) string {
	w := ansi.PrintableRuneWidth(s)
	if w >= width {
		return s
	}
	pad := strings.Repeat(" ", width-w)
	if right {
		return pad + s
	}
	return s + pad
}
