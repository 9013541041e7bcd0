package model

import (
	"fmt"
	"strings"

	"github.com/byxorna/standings/pkg/logging"
	"github.com/byxorna/standings/pkg/text"
	"github.com/byxorna/standings/pkg/types/v1"
	"github.com/byxorna/standings/pkg/ui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

const (
	overlayMaxWidth  = 76
	overlayMaxHeight = 26
	// header (name, win rate) and footer lines around the body viewport
	overlayChrome = 3
	winBarWidth   = 20
)

// detailMarkdown is the body of the overlay before rendering.
func detailMarkdown(t v1.Team) string {
	b := strings.Builder{}

	orDash := func(s string) string {
		if strings.TrimSpace(s) == "" {
			return "-"
		}
		return s
	}
	founded := "-"
	if t.FoundedYear > 0 {
		founded = fmt.Sprint(t.FoundedYear)
	}

	fmt.Fprintf(&b, "| | |\n|---|---|\n")
	fmt.Fprintf(&b, "| %s Founded | %s |\n", text.EmojiFounded, founded)
	fmt.Fprintf(&b, "| %s Stadium | %s |\n", text.EmojiStadium, orDash(t.Stadium))
	fmt.Fprintf(&b, "| %s Coach | %s |\n", text.EmojiCoach, orDash(t.Coach))
	fmt.Fprintf(&b, "| Badge | `%s` |\n\n", t.BadgeOrDefault())

	fmt.Fprintf(&b, "## %s Season\n\n", text.EmojiBall)
	fmt.Fprintf(&b, "| GP | W | D | L | GF | GA | GD | Pts |\n")
	fmt.Fprintf(&b, "|---:|---:|---:|---:|---:|---:|---:|---:|\n")
	fmt.Fprintf(&b, "| %d | %d | %d | %d | %d | %d | %+d | %d |\n\n",
		t.GamesPlayed(), t.Wins, t.Draws, t.Losses,
		t.GoalsFor, t.GoalsAgainst, t.GoalDifference(), t.Points)

	if d := strings.TrimSpace(t.Description); d != "" {
		fmt.Fprintf(&b, "## About\n\n%s\n", d)
	}
	return b.String()
}

func renderDetail(t v1.Team, width int) string {
	md := detailMarkdown(t)
	out, err := glamourRender(md, width)
	if err != nil {
		logging.Log.Warnf("error rendering details for %s: %v", t.Name, err)
		return md
	}
	return out
}

func glamourRender(markdown string, width int) (string, error) {
	if width <= 0 {
		width = overlayMaxWidth
	}
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(width))
	if err != nil {
		return "", err
	}

	out, err := r.Render(markdown)
	if err != nil {
		return "", err
	}

	// trim lines
	lines := strings.Split(out, "\n")
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], " ")
	}
	return strings.Trim(strings.Join(lines, "\n"), "\n"), nil
}

// overlayBounds is where the detail box sits on screen, border included.
func (m *Model) overlayBounds() (x, y, w, h int) {
	w = min(m.width-4, overlayMaxWidth)
	h = min(m.height-2, overlayMaxHeight)
	if w < 30 {
		w = m.width
	}
	if h < overlayChrome+5 {
		h = m.height
	}
	return max((m.width-w)/2, 0), max((m.height-h)/2, 0), w, h
}

func (m *Model) insideOverlay(px, py int) bool {
	x, y, w, h := m.overlayBounds()
	return px >= x && px < x+w && py >= y && py < y+h
}

// sizeDetail fits the body viewport to the overlay. Border and padding take
// two cells on each side horizontally and one line top and bottom.
func (m *Model) sizeDetail() {
	_, _, w, h := m.overlayBounds()
	m.detail.Width = max(w-4, 0)
	m.detail.Height = max(h-2-overlayChrome, 0)
}

// openDetail selects t and starts rendering its body.
func (m *Model) openDetail(t v1.Team) tea.Cmd {
	m.State.Selected = &t
	m.sizeDetail()
	m.detail.SetContent(detailMarkdown(t))
	m.detail.GotoTop()
	return renderDetailCmd(t, m.detail.Width)
}

func (m *Model) closeDetail() {
	m.State.Selected = nil
}

func (m *Model) detailView() string {
	t := *m.State.Selected
	x, y, w, h := m.overlayBounds()

	fav := ui.SubtleStyle.Render("☆ not a favorite")
	if m.State.Favorites.Has(t.ID) {
		fav = ui.FavoriteStar.Render("★ favorite")
	}
	name := lipgloss.NewStyle().Bold(true).Render(t.Name)
	header := fmt.Sprintf("%s %s  %s", text.Crest(t.Name), name, fav)

	pct := t.WinPercentage()
	winLine := fmt.Sprintf("%s Win rate %3d%% %s", text.EmojiTrophy, pct, text.Bar(pct, winBarWidth))

	footer := ui.SubtleStyle.Render(fmt.Sprintf("%s %3.f%%",
		m.detailHelpView(), m.detail.ScrollPercent()*100))

	box := ui.OverlayStyle.Copy().
		Width(max(w-2, 0)).
		Height(max(h-2, 0)).
		Render(lipgloss.JoinVertical(lipgloss.Left, header, winLine, m.detail.View(), footer))

	return lipgloss.NewStyle().MarginLeft(x).MarginTop(y).Render(box)
}

func (m *Model) detailHelpView() string {
	var items []string
	for _, b := range m.keys.detailHelp() {
		h := b.Help()
		items = append(items, h.Key+" "+h.Desc)
	}
	return strings.Join(items, divider)
}
