package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/byxorna/standings/pkg/devserver"
	"github.com/byxorna/standings/pkg/logging"
	"github.com/spf13/cobra"
)

var (
	serveFlags = struct {
		Addr string
		File string
	}{}

	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Serve a local league table for development",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if flags.LogLevel == "" {
				logging.SetLogLevel("info")
			}

			s, err := devserver.New(serveFlags.File)
			if err != nil {
				return err
			}
			if err := s.Watch(); err != nil {
				return err
			}
			defer s.Close()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			logging.Log.Infof("serving %d teams on %s", len(s.Teams()), serveFlags.Addr)
			return s.ListenAndServe(ctx, serveFlags.Addr)
		},
	}
)

func init() {
	serveCmd.Flags().StringVar(&serveFlags.Addr, "addr", ":3000", "listen address")
	serveCmd.Flags().StringVarP(&serveFlags.File, "file", "f", "", "teams fixture to serve and watch, instead of the built in one")
	root.AddCommand(serveCmd)
}
