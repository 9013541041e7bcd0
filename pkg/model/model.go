package model

import (
	"errors"
	"time"

	"github.com/byxorna/standings/pkg/db"
	"github.com/byxorna/standings/pkg/favorites"
	"github.com/byxorna/standings/pkg/logging"
	"github.com/byxorna/standings/pkg/standings"
	"github.com/byxorna/standings/pkg/types/v1"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
)

// Tab is which table is showing.
type Tab int

const (
	StandingsTab Tab = iota
	FavoritesTab
)

var tabs = []Tab{StandingsTab, FavoritesTab}

func (t Tab) String() string {
	if t == FavoritesTab {
		return "Favorites"
	}
	return "Standings"
}

func (t Tab) Next() Tab { return tabs[(int(t)+1)%len(tabs)] }

func (t Tab) Prev() Tab { return tabs[(int(t)+len(tabs)-1)%len(tabs)] }

// ViewState is everything the views render from. Entries is set once when
// the load completes and never modified after.
type ViewState struct {
	Entries   []v1.Team
	Loading   bool
	Query     standings.Query
	Favorites favorites.Set
	Selected  *v1.Team
	Tab       Tab
	Notice    *Notice
	LoadedAt  time.Time
}

// Standings is the filtered and sorted table.
func (s ViewState) Standings() []v1.Team {
	return standings.Derive(s.Entries, s.Query)
}

// FavoriteTeams is the favorites sublist of the loaded entries.
func (s ViewState) FavoriteTeams() []v1.Team {
	return s.Favorites.Select(s.Entries)
}

// Visible is the list for the active tab.
func (s ViewState) Visible() []v1.Team {
	if s.Tab == FavoritesTab {
		return s.FavoriteTeams()
	}
	return s.Standings()
}

// searchState is the current filtering state of the standings tab.
type searchState int

const (
	unsearched    searchState = iota // no search set
	searching                        // user is typing a search
	searchApplied                    // a search is applied and the input is blurred
)

type Options struct {
	Source db.Source
	Store  *favorites.Store
	// Sort is the initial ordering
	Sort          standings.Sort
	Timeout       time.Duration
	NoticeTimeout time.Duration
	// Endpoint is shown in the footer
	Endpoint string
}

type Model struct {
	State ViewState

	source        db.Source
	store         *favorites.Store
	timeout       time.Duration
	noticeTimeout time.Duration
	endpoint      string

	// ids read from the store at startup, restored once entries load
	storedFavorites []v1.ID
	restored        bool
	// the store could not be read, so it must not be written either
	storeErr error

	noticeSeq int

	width  int
	height int

	// per tab
	cursor      [2]int
	offset      [2]int
	searchState searchState
	searchInput textinput.Model
	spinner     spinner.Model
	help        help.Model
	keys        keyMap
	detail      viewport.Model
}

func New(opts Options) *Model {
	if opts.Timeout <= 0 {
		opts.Timeout = 10 * time.Second
	}
	if opts.NoticeTimeout <= 0 {
		opts.NoticeTimeout = 3 * time.Second
	}

	si := textinput.New()
	si.Prompt = "Search: "
	si.Placeholder = "team name"
	si.CharLimit = 64

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := Model{
		State: ViewState{
			Loading: true,
			Query:   standings.Query{Sort: opts.Sort},
			Tab:     StandingsTab,
		},
		source:        opts.Source,
		store:         opts.Store,
		timeout:       opts.Timeout,
		noticeTimeout: opts.NoticeTimeout,
		endpoint:      opts.Endpoint,
		searchInput:   si,
		spinner:       sp,
		help:          help.New(),
		keys:          defaultKeyMap(),
		detail:        viewport.New(0, 0),
	}

	if m.store != nil {
		ids, err := m.store.Load()
		switch {
		case errors.Is(err, favorites.ErrMalformed):
			// discarded; the next write replaces it
			logging.Log.Warnf("ignoring stored favorites: %v", err)
		case err != nil:
			logging.Log.Errorf("unable to read stored favorites: %v", err)
			m.storeErr = err
		}
		m.storedFavorites = ids
	}

	return &m
}
