package model

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/byxorna/standings/pkg/favorites"
	"github.com/byxorna/standings/pkg/logging"
	"github.com/byxorna/standings/pkg/standings"
	"github.com/byxorna/standings/pkg/text"
	"github.com/byxorna/standings/pkg/types/v1"
	"github.com/byxorna/standings/pkg/ui"
	"github.com/byxorna/standings/pkg/version"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	// logo, tabs, search line, table header, blank and status bar
	tableChrome = 1 + 3 + 1 + 1 + 1 + 1
	suggestions = 3
)

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.searchInput.Width = max(msg.Width-len(m.searchInput.Prompt)-6, 10)
		m.clampCursor()
		if m.State.Selected != nil {
			m.sizeDetail()
			t := *m.State.Selected
			return m, renderDetailCmd(t, m.detail.Width)
		}
		return m, nil

	case teamsLoadedMsg:
		return m, m.handleLoaded(msg)

	case favoritesSavedMsg:
		if msg.err != nil {
			logging.Log.Errorf("unable to save favorites: %v", msg.err)
			return m, m.showNotice(Notice{Kind: NoticeError, Message: "Unable to save favorites"})
		}
		logging.Log.Debugf("saved %d favorites", m.State.Favorites.Len())
		return m, nil

	case noticeExpiredMsg:
		m.expireNotice(msg)
		return m, nil

	case detailRenderedMsg:
		if m.State.Selected != nil && m.State.Selected.ID == msg.id {
			m.detail.SetContent(msg.content)
		}
		return m, nil

	case spinner.TickMsg:
		if !m.State.Loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.MouseMsg:
		return m, m.handleMouse(msg)

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch {
		case m.State.Selected != nil:
			return m, m.handleDetail(msg)
		case m.searchState == searching:
			return m, m.handleSearching(msg)
		}
		return m, m.handleBrowsing(msg)
	}

	return m, nil
}

// handleLoaded stores the result of the one load. Favorites are restored
// and written back only when there is something to restore against.
func (m *Model) handleLoaded(msg teamsLoadedMsg) tea.Cmd {
	m.State.Loading = false
	m.State.LoadedAt = time.Now()

	if msg.err != nil {
		logging.Log.Errorf("unable to load teams from %s: %v", m.endpoint, msg.err)
		return nil
	}

	m.State.Entries = msg.teams
	logging.Log.Infof("loaded %d teams from %s", len(msg.teams), m.endpoint)
	if len(msg.teams) == 0 {
		return nil
	}

	if m.storeErr != nil {
		m.clampCursor()
		// favorites stay in memory only for this session
		return m.showNotice(Notice{Kind: NoticeError, Message: "Unable to read favorites, changes will not be saved"})
	}

	m.State.Favorites = favorites.Restore(m.storedFavorites, msg.teams)
	m.restored = true
	if dropped := len(m.storedFavorites) - m.State.Favorites.Len(); dropped > 0 {
		logging.Log.Infof("dropped %d stored favorites with no matching team", dropped)
	}
	m.clampCursor()
	return saveFavoritesCmd(m.store, m.State.Favorites)
}

func (m *Model) toggleFavorite(t v1.Team) tea.Cmd {
	next, added := m.State.Favorites.Toggle(t.ID)
	m.State.Favorites = next

	kind := NoticeInfo
	if added {
		kind = NoticeSuccess
	}
	cmds := []tea.Cmd{m.showNotice(Notice{Kind: kind, Message: favorites.ToggleMessage(t.Name, added)})}
	if m.restored {
		cmds = append(cmds, saveFavoritesCmd(m.store, m.State.Favorites))
	}
	m.clampCursor()
	return tea.Batch(cmds...)
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if m.State.Selected != nil {
		if msg.Type == tea.MouseLeft && !m.insideOverlay(msg.X, msg.Y) {
			m.closeDetail()
			return nil
		}
		var cmd tea.Cmd
		m.detail, cmd = m.detail.Update(msg)
		return cmd
	}

	switch msg.Type {
	case tea.MouseWheelUp:
		m.moveCursor(-1)
	case tea.MouseWheelDown:
		m.moveCursor(1)
	}
	return nil
}

// Updates for when the detail overlay is open.
func (m *Model) handleDetail(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Close):
		m.closeDetail()
		return nil
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.keys.DetailFavorite):
		return m.toggleFavorite(*m.State.Selected)
	}

	var cmd tea.Cmd
	m.detail, cmd = m.detail.Update(msg)
	return cmd
}

// Updates for when the user is typing a search.
func (m *Model) handleSearching(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		m.resetSearch()
		return nil
	case "enter", "tab", "shift+tab", "up", "down", "ctrl+k", "ctrl+j":
		m.searchInput.Blur()
		m.searchState = searchApplied
		if m.searchInput.Value() == "" {
			m.resetSearch()
		}
		return nil
	}

	var cmd tea.Cmd
	before := m.searchInput.Value()
	m.searchInput, cmd = m.searchInput.Update(msg)
	if after := m.searchInput.Value(); after != before {
		m.State.Query.Search = after
		m.setCursor(0)
	}
	return cmd
}

// Updates for when the user is browsing a table.
func (m *Model) handleBrowsing(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit

	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)
	case key.Matches(msg, m.keys.Top):
		m.setCursor(0)
	case key.Matches(msg, m.keys.Bottom):
		m.setCursor(len(m.State.Visible()) - 1)

	case key.Matches(msg, m.keys.NextTab):
		m.State.Tab = m.State.Tab.Next()
		m.clampCursor()
	case key.Matches(msg, m.keys.PrevTab):
		m.State.Tab = m.State.Tab.Prev()
		m.clampCursor()

	case key.Matches(msg, m.keys.Search):
		if m.State.Tab != StandingsTab {
			break
		}
		m.State.Notice = nil
		m.searchState = searching
		m.searchInput.CursorEnd()
		m.searchInput.Focus()
		return textinput.Blink

	case key.Matches(msg, m.keys.Clear):
		if m.searchState == searchApplied {
			m.resetSearch()
		}

	// choosing a new column always starts descending
	case key.Matches(msg, m.keys.Sort):
		m.setSort(standings.Sort{Key: m.State.Query.Sort.Key.Next()})
	case key.Matches(msg, m.keys.SortKey):
		n, _ := strconv.Atoi(msg.String())
		if n >= 1 && n <= len(standings.SortKeys) {
			m.setSort(standings.Sort{Key: standings.SortKeys[n-1], Direction: m.State.Query.Sort.Direction})
		}
	case key.Matches(msg, m.keys.Order):
		s := m.State.Query.Sort
		s.Direction = s.Direction.Toggle()
		m.setSort(s)

	case key.Matches(msg, m.keys.Favorite):
		if t, ok := m.current(); ok {
			return m.toggleFavorite(t)
		}
	case key.Matches(msg, m.keys.Open):
		if t, ok := m.current(); ok {
			return m.openDetail(t)
		}

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.clampCursor()
	}
	return nil
}

func (m *Model) setSort(s standings.Sort) {
	m.State.Query.Sort = s
	m.setCursor(0)
}

func (m *Model) resetSearch() {
	m.searchState = unsearched
	m.searchInput.Reset()
	m.searchInput.Blur()
	m.State.Query.Search = ""
	m.setCursor(0)
}

// current is the team under the cursor.
func (m *Model) current() (v1.Team, bool) {
	rows := m.State.Visible()
	i := m.cursor[m.State.Tab]
	if i < 0 || i >= len(rows) {
		return v1.Team{}, false
	}
	return rows[i], true
}

func (m *Model) moveCursor(delta int) {
	m.setCursor(m.cursor[m.State.Tab] + delta)
}

func (m *Model) setCursor(i int) {
	m.cursor[m.State.Tab] = i
	m.clampCursor()
}

// clampCursor keeps the cursor on a row and the row inside the window.
func (m *Model) clampCursor() {
	t := m.State.Tab
	n := len(m.State.Visible())
	c := min(m.cursor[t], n-1)
	c = max(c, 0)
	m.cursor[t] = c

	rows := m.tableRows()
	if rows <= 0 {
		m.offset[t] = 0
		return
	}
	if c < m.offset[t] {
		m.offset[t] = c
	}
	if c >= m.offset[t]+rows {
		m.offset[t] = c - rows + 1
	}
	m.offset[t] = max(min(m.offset[t], n-rows), 0)
}

// tableRows is how many rows fit on screen. Zero means no limit, before the
// first window size is known.
func (m *Model) tableRows() int {
	if m.height <= 0 {
		return 0
	}
	helpHeight := strings.Count(m.help.View(m.keys), "\n") + 1
	return max(m.height-tableChrome-helpHeight-docStyle.GetVerticalPadding(), 1)
}

// VIEW

func (m *Model) View() string {
	if m.State.Selected != nil {
		return m.detailView()
	}

	sections := []string{
		m.logoView(),
		m.tabsView(),
		m.searchView(),
		m.tableView(),
		"",
		m.statusBarView(),
		m.help.View(m.keys),
	}
	return docStyle.Render(strings.Join(sections, "\n"))
}

func (m *Model) logoView() string {
	s := ui.LogoStyle.Render(fmt.Sprintf("%s Standings", text.EmojiBall)) +
		ui.SubtleStyle.Render(fmt.Sprintf(" version %s", version.Version))
	if m.State.Loading {
		s += " " + m.spinner.View()
	}
	return s
}

func (m *Model) tabsView() string {
	var rendered []string
	for _, t := range tabs {
		var n int
		switch t {
		case StandingsTab:
			n = len(m.State.Standings())
		case FavoritesTab:
			n = len(m.State.FavoriteTeams())
		}
		label := fmt.Sprintf("%s %d", t, n)
		if t == m.State.Tab {
			rendered = append(rendered, activeTab.Render(label))
		} else {
			rendered = append(rendered, tab.Render(label))
		}
	}
	row := lipgloss.JoinHorizontal(lipgloss.Bottom, rendered...)
	gap := tabGap.Render(strings.Repeat(" ", max(0, m.width-lipgloss.Width(row)-6)))
	return lipgloss.JoinHorizontal(lipgloss.Bottom, row, gap)
}

func (m *Model) searchView() string {
	if m.State.Tab != StandingsTab {
		return ui.SubtleStyle.Render(fmt.Sprintf("%s your teams, sorted as you marked them", text.EmojiFavorite))
	}
	switch m.searchState {
	case searching:
		return m.searchInput.View()
	case searchApplied:
		return ui.SubtleStyle.Render(fmt.Sprintf("Filtered by “%s”%sesc to clear", m.State.Query.Search, divider))
	}
	return ui.SubtleStyle.Render("/ to search")
}

func (m *Model) tableView() string {
	if m.State.Loading {
		return emptyStyle.Render(m.spinner.View() + " Loading standings...")
	}
	if len(m.State.Entries) == 0 {
		return emptyStyle.Render("No teams to show.")
	}

	rows := m.State.Visible()
	if len(rows) == 0 {
		return emptyStyle.Render(m.emptyMessage())
	}

	t := ui.Table{
		Rows:       rows,
		Sort:       m.State.Query.Sort,
		IsFavorite: m.State.Favorites.Has,
		Cursor:     m.cursor[m.State.Tab],
		Offset:     m.offset[m.State.Tab],
		Height:     m.tableRows(),
		Width:      m.width - docStyle.GetHorizontalPadding(),
	}
	if m.State.Tab == FavoritesTab {
		t.Columns = ui.FavoritesColumns
	} else {
		t.Search = m.State.Query.Search
	}
	return t.View()
}

func (m *Model) emptyMessage() string {
	if m.State.Tab == FavoritesTab {
		return "No favorites yet. Press f on a team to add one."
	}

	s := fmt.Sprintf("No teams match “%s”.", m.State.Query.Search)
	names := make([]string, len(m.State.Entries))
	for i, e := range m.State.Entries {
		names[i] = e.Name
	}
	if found := text.Suggest(m.State.Query.Search, names, suggestions); len(found) > 0 {
		s += fmt.Sprintf(" %s Did you mean %s?", text.EmojiThinking, strings.Join(found, ", "))
	}
	return s
}

func (m *Model) statusBarView() string {
	w := lipgloss.Width

	count := countPillStyle.Render(fmt.Sprintf("%d/%d", len(m.State.Visible()), len(m.State.Entries)))
	sortPill := sortPillStyle.Render(fmt.Sprintf("%s %s", m.State.Query.Sort.Key, m.State.Query.Sort.Direction.Arrow()))

	var msg string
	switch {
	case m.State.Notice != nil:
		msg = m.State.Notice.View()
	case m.State.Loading:
		msg = "loading from " + m.endpoint
	case !m.State.LoadedAt.IsZero():
		msg = "updated " + text.RelativeTime(m.State.LoadedAt)
	}

	bar := statusText.Copy().
		Width(max(m.width-docStyle.GetHorizontalPadding()-w(count)-w(sortPill), 0)).
		Render(msg)

	return lipgloss.JoinHorizontal(lipgloss.Top, count, bar, sortPill)
}
