package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/byxorna/standings/pkg/config"
	"github.com/byxorna/standings/pkg/db/remote"
	"github.com/byxorna/standings/pkg/favorites"
	"github.com/byxorna/standings/pkg/logging"
	"github.com/byxorna/standings/pkg/standings"
	"github.com/byxorna/standings/pkg/types/v1"
	"github.com/byxorna/standings/pkg/ui"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var (
	listFlags = struct {
		Sort    string
		Order   string
		Search  string
		NoColor bool
	}{}

	listCmd = &cobra.Command{
		Use:   "list",
		Short: "Print the standings table and exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			applyColor(listFlags.NoColor)

			key, dir := cfg.Sort.Key, cfg.Sort.Direction
			if listFlags.Sort != "" {
				key = listFlags.Sort
			}
			if listFlags.Order != "" {
				dir = listFlags.Order
			}
			sort, err := standings.ParseSort(key, dir)
			if err != nil {
				return err
			}

			teams, err := fetchTeams(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			set, err := loadFavorites(cfg, teams)
			if err != nil {
				return err
			}

			rows := standings.Derive(teams, standings.Query{Search: listFlags.Search, Sort: sort})
			if len(rows) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No teams to show.")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Table{
				Rows:       rows,
				Columns:    ui.StandingsColumns,
				Sort:       sort,
				Search:     listFlags.Search,
				IsFavorite: set.Has,
				Cursor:     -1,
				Width:      80,
			}.View())
			return nil
		},
	}
)

func init() {
	listCmd.Flags().StringVar(&listFlags.Sort, "sort", "", "sort key (points, wins, draws, losses)")
	listCmd.Flags().StringVar(&listFlags.Order, "order", "", "sort direction (asc, desc)")
	listCmd.Flags().StringVar(&listFlags.Search, "search", "", "only show teams whose name contains this")
	listCmd.PersistentFlags().BoolVar(&listFlags.NoColor, "no-color", false, "disable colored output")
	root.AddCommand(listCmd)
}

func applyColor(disabled bool) {
	if disabled {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}

func fetchTeams(ctx context.Context, cfg *config.Config) ([]v1.Team, error) {
	source, err := remote.NewFromConfig(cfg)
	if err != nil {
		return nil, err
	}
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()

	teams, err := source.Teams(ctx)
	if err != nil {
		return nil, fmt.Errorf("unable to load teams from %s: %w", source.URL(), err)
	}
	return teams, nil
}

func openFavorites(cfg *config.Config) (*favorites.Store, io.Closer, error) {
	kv, err := favorites.OpenKV(cfg)
	if err != nil {
		return nil, nil, err
	}
	return favorites.NewStore(kv, cfg.FavoritesKey), kv, nil
}

// restoreFavorites reads the stored favorites and prunes them against teams.
func restoreFavorites(store *favorites.Store, teams []v1.Team) (favorites.Set, error) {
	ids, err := store.Load()
	if errors.Is(err, favorites.ErrMalformed) {
		logging.Log.Warnf("ignoring stored favorites: %v", err)
	} else if err != nil {
		return favorites.Set{}, err
	}
	return favorites.Restore(ids, teams), nil
}

func loadFavorites(cfg *config.Config, teams []v1.Team) (favorites.Set, error) {
	store, closer, err := openFavorites(cfg)
	if err != nil {
		return favorites.Set{}, err
	}
	defer closer.Close()
	return restoreFavorites(store, teams)
}
