package model

import (
	"context"
	"time"

	"github.com/byxorna/standings/pkg/db"
	"github.com/byxorna/standings/pkg/favorites"
	"github.com/byxorna/standings/pkg/types/v1"
	tea "github.com/charmbracelet/bubbletea"
)

type teamsLoadedMsg struct {
	teams []v1.Team
	err   error
}

type favoritesSavedMsg struct {
	err error
}

type detailRenderedMsg struct {
	id      v1.ID
	content string
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, loadTeamsCmd(m.source, m.timeout))
}

// loadTeamsCmd makes the one request for the table. There is no retry.
func loadTeamsCmd(source db.Source, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		if source == nil {
			return teamsLoadedMsg{}
		}
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		teams, err := source.Teams(ctx)
		return teamsLoadedMsg{teams: teams, err: err}
	}
}

// saveFavoritesCmd writes the set in the background.
func saveFavoritesCmd(store *favorites.Store, set favorites.Set) tea.Cmd {
	if store == nil {
		return nil
	}
	return func() tea.Msg {
		return favoritesSavedMsg{err: store.Save(set)}
	}
}

func renderDetailCmd(t v1.Team, width int) tea.Cmd {
	return func() tea.Msg {
		return detailRenderedMsg{id: t.ID, content: renderDetail(t, width)}
	}
}
