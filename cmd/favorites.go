package cmd

import (
	"fmt"
	"strconv"

	"github.com/byxorna/standings/pkg/favorites"
	"github.com/byxorna/standings/pkg/standings"
	"github.com/byxorna/standings/pkg/types/v1"
	"github.com/byxorna/standings/pkg/ui"
	"github.com/spf13/cobra"
)

var (
	favoritesCmd = &cobra.Command{
		Use:     "favorites",
		Aliases: []string{"fav"},
		Short:   "Print your favorite teams",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			applyColor(listFlags.NoColor)

			teams, err := fetchTeams(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			set, err := loadFavorites(cfg, teams)
			if err != nil {
				return err
			}
			if set.Len() == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No favorite teams yet.")
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.Table{
				Rows:       set.Select(teams),
				Columns:    ui.FavoritesColumns,
				Sort:       standings.Sort{Key: standings.Points, Direction: standings.Descending},
				IsFavorite: set.Has,
				Cursor:     -1,
				Width:      80,
			}.View())
			return nil
		},
	}

	favoritesToggleCmd = &cobra.Command{
		Use:   "toggle <team id>",
		Short: "Add a team to your favorites, or remove it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("bad team id %q", args[0])
			}
			id := v1.ID(raw)

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			teams, err := fetchTeams(cmd.Context(), cfg)
			if err != nil {
				return err
			}

			var team *v1.Team
			for i := range teams {
				if teams[i].ID == id {
					team = &teams[i]
					break
				}
			}
			if team == nil {
				return fmt.Errorf("no team with id %s", id)
			}

			store, closer, err := openFavorites(cfg)
			if err != nil {
				return err
			}
			defer closer.Close()

			set, err := restoreFavorites(store, teams)
			if err != nil {
				return err
			}
			set, added := set.Toggle(id)
			if err := store.Save(set); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), favorites.ToggleMessage(team.Name, added))
			return nil
		},
	}
)

func init() {
	favoritesCmd.PersistentFlags().BoolVar(&listFlags.NoColor, "no-color", false, "disable colored output")
	favoritesCmd.AddCommand(favoritesToggleCmd)
	root.AddCommand(favoritesCmd)
}
