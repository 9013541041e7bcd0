package model

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/byxorna/standings/pkg/config"
	"github.com/byxorna/standings/pkg/db/memory"
	"github.com/byxorna/standings/pkg/favorites"
	"github.com/byxorna/standings/pkg/standings"
	"github.com/byxorna/standings/pkg/types/v1"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

var (
	barcelona = v1.Team{ID: 1, Name: "FC Barcelona", Points: 85, Wins: 25, Draws: 10, Losses: 3}
	madrid    = v1.Team{ID: 2, Name: "Real Madrid", Points: 82, Wins: 24, Draws: 10, Losses: 4}
	valencia  = v1.Team{ID: 3, Name: "Valencia CF", Points: 40, Wins: 10, Draws: 10, Losses: 18}
)

type fakeSource struct {
	teams []v1.Team
	err   error
	calls int
}

func (f *fakeSource) Teams(ctx context.Context) ([]v1.Team, error) {
	f.calls++
	return f.teams, f.err
}

func newTestModel(t *testing.T, stored string) (*Model, *memory.Store) {
	t.Helper()
	kv := memory.New()
	if stored != "" {
		require.NoError(t, kv.Set(favorites.DefaultKey, stored))
	}
	m := New(Options{
		Source:        &fakeSource{teams: []v1.Team{madrid, barcelona, valencia}},
		Store:         favorites.NewStore(kv, favorites.DefaultKey),
		NoticeTimeout: time.Millisecond,
	})
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return m, kv
}

// drain runs cmd and every command it batches, feeding the results back
// into m the way the program loop would.
func drain(m *Model, cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, c := range batch {
			drain(m, c)
		}
		return
	}
	switch msg.(type) {
	case favoritesSavedMsg, noticeExpiredMsg, teamsLoadedMsg, detailRenderedMsg:
		_, next := m.Update(msg)
		drain(m, next)
	}
}

func load(m *Model, teams ...v1.Team) {
	_, cmd := m.Update(teamsLoadedMsg{teams: teams})
	drain(m, cmd)
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(m *Model, msgs ...tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	for _, msg := range msgs {
		_, cmd = m.Update(msg)
	}
	return cmd
}

func visibleNames(m *Model) []string {
	var out []string
	for _, t := range m.State.Visible() {
		out = append(out, t.Name)
	}
	return out
}

func TestInitLoadsOnce(t *testing.T) {
	src := &fakeSource{teams: []v1.Team{barcelona}}
	m := New(Options{Source: src})
	require.True(t, m.State.Loading)

	msg := loadTeamsCmd(m.source, time.Second)()
	require.Equal(t, 1, src.calls)

	m.Update(msg)
	require.False(t, m.State.Loading)
	require.Equal(t, []v1.Team{barcelona}, m.State.Entries)
	require.False(t, m.State.LoadedAt.IsZero())
}

func TestLoadFailureLeavesEntriesEmpty(t *testing.T) {
	m, kv := newTestModel(t, "[1,2]")

	_, cmd := m.Update(teamsLoadedMsg{err: errors.New("connection refused")})
	require.Nil(t, cmd)
	require.False(t, m.State.Loading)
	require.Empty(t, m.State.Entries)
	require.Contains(t, m.View(), "No teams to show.")

	// nothing was restored, so nothing may be written
	raw, err := kv.Get(favorites.DefaultKey)
	require.NoError(t, err)
	require.Equal(t, "[1,2]", raw)
}

func TestLoadEmptyLeagueLooksLikeFailure(t *testing.T) {
	m, _ := newTestModel(t, "")
	_, cmd := m.Update(teamsLoadedMsg{teams: []v1.Team{}})
	require.Nil(t, cmd)
	require.Contains(t, m.View(), "No teams to show.")
}

func TestRestorePrunesAndWritesBack(t *testing.T) {
	m, kv := newTestModel(t, "[99,2]")
	require.Equal(t, 0, m.State.Favorites.Len(), "nothing is restored before load")

	load(m, barcelona, madrid)
	require.Equal(t, []v1.ID{2}, m.State.Favorites.IDs())

	raw, err := kv.Get(favorites.DefaultKey)
	require.NoError(t, err)
	require.Equal(t, "[2]", raw)
}

func TestRestoreMissingEntryIsDropped(t *testing.T) {
	m, _ := newTestModel(t, "[99]")
	load(m, barcelona, madrid)
	require.Equal(t, 0, m.State.Favorites.Len())
}

func TestMalformedStoreStartsEmpty(t *testing.T) {
	m, kv := newTestModel(t, `{"oops":`)
	load(m, barcelona, madrid)
	require.Equal(t, 0, m.State.Favorites.Len())

	raw, err := kv.Get(favorites.DefaultKey)
	require.NoError(t, err)
	require.Equal(t, "[]", raw)
}

func TestToggleFavoriteRealMadrid(t *testing.T) {
	m, kv := newTestModel(t, "")
	load(m, barcelona, madrid)

	// Barcelona sorts first, so move down to Real Madrid
	cmd := press(m, tea.KeyMsg{Type: tea.KeyDown}, keyRunes("f"))
	require.Equal(t, []v1.ID{2}, m.State.Favorites.IDs())
	require.NotNil(t, m.State.Notice)
	require.Equal(t, NoticeSuccess, m.State.Notice.Kind)
	require.Equal(t, "Real Madrid added to favorites", m.State.Notice.Message)

	drain(m, cmd)
	raw, err := kv.Get(favorites.DefaultKey)
	require.NoError(t, err)
	require.Equal(t, "[2]", raw)
	require.Nil(t, m.State.Notice, "the notice expires")

	press(m, keyRunes("f"))
	require.Equal(t, 0, m.State.Favorites.Len())
	require.Equal(t, NoticeInfo, m.State.Notice.Kind)
	require.Equal(t, "Real Madrid removed from favorites", m.State.Notice.Message)
}

func TestNoticeSingleSlot(t *testing.T) {
	m, _ := newTestModel(t, "")

	m.showNotice(Notice{Kind: NoticeSuccess, Message: "first"})
	m.showNotice(Notice{Kind: NoticeInfo, Message: "second"})

	// the first notice's timer fires late and must not clear the second
	m.Update(noticeExpiredMsg{seq: 1})
	require.NotNil(t, m.State.Notice)
	require.Equal(t, "second", m.State.Notice.Message)

	m.Update(noticeExpiredMsg{seq: 2})
	require.Nil(t, m.State.Notice)
}

func TestSortKeys(t *testing.T) {
	m, _ := newTestModel(t, "")
	load(m, barcelona, madrid, valencia)
	require.Equal(t, standings.Sort{Key: standings.Points}, m.State.Query.Sort)
	require.Equal(t, []string{"FC Barcelona", "Real Madrid", "Valencia CF"}, visibleNames(m))

	press(m, keyRunes("o"))
	require.Equal(t, standings.Ascending, m.State.Query.Sort.Direction)
	require.Equal(t, []string{"Valencia CF", "Real Madrid", "FC Barcelona"}, visibleNames(m))

	// a new column resets to descending
	press(m, keyRunes("s"))
	require.Equal(t, standings.Sort{Key: standings.Wins}, m.State.Query.Sort)

	press(m, keyRunes("o"), keyRunes("4"))
	require.Equal(t, standings.Sort{Key: standings.Losses, Direction: standings.Ascending}, m.State.Query.Sort)
	require.Equal(t, []string{"FC Barcelona", "Real Madrid", "Valencia CF"}, visibleNames(m))
}

func TestSearch(t *testing.T) {
	m, _ := newTestModel(t, "")
	load(m, barcelona, madrid, valencia)

	press(m, keyRunes("/"), keyRunes("r"), keyRunes("e"), keyRunes("a"), keyRunes("l"))
	require.Equal(t, "real", m.State.Query.Search)
	require.Equal(t, []string{"Real Madrid"}, visibleNames(m))

	// q is text while searching
	press(m, keyRunes("q"))
	require.Equal(t, "realq", m.State.Query.Search)
	require.Empty(t, m.State.Visible())

	press(m, tea.KeyMsg{Type: tea.KeyBackspace}, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, searchApplied, m.searchState)
	require.Equal(t, []string{"Real Madrid"}, visibleNames(m))

	press(m, tea.KeyMsg{Type: tea.KeyEsc})
	require.Equal(t, unsearched, m.searchState)
	require.Equal(t, "", m.State.Query.Search)
	require.Len(t, m.State.Visible(), 3)
}

func TestSearchSuggestions(t *testing.T) {
	m, _ := newTestModel(t, "")
	load(m, barcelona, madrid, valencia)

	press(m, keyRunes("/"), keyRunes("r"), keyRunes("m"), keyRunes("a"))
	require.Empty(t, m.State.Visible())
	require.Contains(t, m.View(), "Did you mean Real Madrid?")
}

func TestTabs(t *testing.T) {
	m, _ := newTestModel(t, "[3]")
	load(m, barcelona, madrid, valencia)

	press(m, tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, FavoritesTab, m.State.Tab)
	require.Equal(t, []string{"Valencia CF"}, visibleNames(m))

	press(m, tea.KeyMsg{Type: tea.KeyShiftTab})
	require.Equal(t, StandingsTab, m.State.Tab)
	require.Len(t, m.State.Visible(), 3)
}

func TestDetailOverlay(t *testing.T) {
	m, _ := newTestModel(t, "")
	load(m, barcelona, madrid)

	press(m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, m.State.Selected)
	require.Equal(t, "FC Barcelona", m.State.Selected.Name)
	require.Contains(t, m.View(), "Win rate  66%")

	// a click inside the box keeps it open
	m.Update(tea.MouseMsg{X: 50, Y: 20, Type: tea.MouseLeft})
	require.NotNil(t, m.State.Selected)

	// f toggles the open entry
	press(m, keyRunes("f"))
	require.True(t, m.State.Favorites.Has(1))

	// a click outside closes it
	m.Update(tea.MouseMsg{X: 0, Y: 0, Type: tea.MouseLeft})
	require.Nil(t, m.State.Selected)

	press(m, tea.KeyMsg{Type: tea.KeyEnter}, keyRunes("x"))
	require.Nil(t, m.State.Selected)

	press(m, keyRunes("i"), tea.KeyMsg{Type: tea.KeyEsc})
	require.Nil(t, m.State.Selected)
}

func TestDetailMarkdown(t *testing.T) {
	md := detailMarkdown(v1.Team{Name: "Newcomers", Stadium: "Campo"})
	require.Contains(t, md, "Campo")
	require.Contains(t, md, v1.DefaultBadge)
	require.Contains(t, md, "| 0 | 0 | 0 | 0 |")
	require.False(t, strings.Contains(md, "About"))
}

func TestQuit(t *testing.T) {
	m, _ := newTestModel(t, "")
	cmd := press(m, keyRunes("q"))
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	require.True(t, ok)
}

// lockedKV fails every read, like a busy sqlite database.
type lockedKV struct {
	writes []string
}

func (k *lockedKV) Get(key string) (string, error) {
	return "", errors.New("database is locked")
}

func (k *lockedKV) Set(key, value string) error {
	k.writes = append(k.writes, value)
	return nil
}

func TestStoreReadErrorNeverWrites(t *testing.T) {
	kv := &lockedKV{}
	m := New(Options{
		Source:        &fakeSource{},
		Store:         favorites.NewStore(kv, favorites.DefaultKey),
		NoticeTimeout: time.Millisecond,
	})
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})

	_, cmd := m.Update(teamsLoadedMsg{teams: []v1.Team{barcelona, madrid}})
	require.NotNil(t, m.State.Notice)
	require.Equal(t, NoticeError, m.State.Notice.Kind)
	drain(m, cmd)
	require.Empty(t, kv.writes)

	// toggling still works for the session but is not persisted
	drain(m, press(m, keyRunes("f")))
	require.True(t, m.State.Favorites.Has(1))
	require.Empty(t, kv.writes)
}

func TestCorruptFavoritesFileStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "favorites.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0600))

	cfg := config.Default
	cfg.Store.Backend = config.StoreFS
	cfg.Store.Path = path

	m, closer, err := NewFromConfig(&cfg)
	require.NoError(t, err)
	defer closer.Close()
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})

	load(m, barcelona, madrid)
	require.Equal(t, 0, m.State.Favorites.Len())

	// the pruned empty set replaced the corrupt file
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(b), `"footballFavorites": "[]"`)
}

func TestDetailOverlayKeys(t *testing.T) {
	m, _ := newTestModel(t, "")
	load(m, barcelona, madrid)

	press(m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, m.State.Selected)
	view := m.View()
	require.Contains(t, view, "esc/x close")
	require.Contains(t, view, "f favorite")

	// space only toggles from the table
	press(m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")})
	require.False(t, m.State.Favorites.Has(1))
	require.NotNil(t, m.State.Selected)

	cmd := press(m, keyRunes("q"))
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	require.True(t, ok)
}
