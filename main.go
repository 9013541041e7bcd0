package main

import (
	_ "expvar"
	"net/http"
	_ "net/http/pprof"
	"os"

	"github.com/byxorna/standings/cmd"
	"github.com/byxorna/standings/pkg/logging"
)

func init() {
	// STANDINGS_PPROF=localhost:6060 exposes pprof and expvar
	if addr := os.Getenv("STANDINGS_PPROF"); addr != "" {
		go func() {
			logging.Log.Infof("listening for pprof on %s", addr)
			if err := http.ListenAndServe(addr, nil); err != nil {
				logging.Log.Errorf("pprof: %v", err)
			}
		}()
	}
}

func main() {
	cmd.Execute()
}
