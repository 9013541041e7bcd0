package cmd

import (
	"fmt"
	"os"

	"github.com/byxorna/standings/pkg/config"
	"github.com/byxorna/standings/pkg/logging"
	"github.com/byxorna/standings/pkg/model"
	"github.com/byxorna/standings/pkg/version"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var (
	flags = struct {
		ConfigFile  string
		Environment string
		LogLevel    string
	}{}

	root = &cobra.Command{
		Use:     "standings",
		Short:   "Standings is a terminal league table with favorites",
		Version: version.Version,
		Args:    cobra.MaximumNArgs(0),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if flags.LogLevel == "" {
				return nil
			}
			return logging.SetLogLevel(flags.LogLevel)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			logPath, err := cfg.LogPath()
			if err != nil {
				return err
			}
			logCloser, err := logging.ToFile(logPath)
			if err != nil {
				return err
			}
			defer logCloser.Close()

			m, store, err := model.NewFromConfig(cfg)
			if err != nil {
				return err
			}
			defer store.Close()

			logging.Log.Infof("starting %s (%s)", version.Version, cfg.Env())
			p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
			_, err = p.Run()
			return err
		},
	}
)

func init() {
	root.PersistentFlags().StringVarP(&flags.ConfigFile, "config", "c", "~/.standings.yaml", "configuration file")
	root.PersistentFlags().StringVar(&flags.Environment, "env", "", "record source environment (development or production)")
	root.PersistentFlags().StringVarP(&flags.LogLevel, "loglevel", "l", "", "log level (debug, info, warn, error)")
}

// loadConfig reads the config file and applies flag overrides.
func loadConfig() (*config.Config, error) {
	cfg, err := config.NewFromFile(flags.ConfigFile)
	if err != nil {
		return nil, err
	}
	if flags.Environment != "" {
		cfg.Environment = flags.Environment
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

func Execute() {
	err := root.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
