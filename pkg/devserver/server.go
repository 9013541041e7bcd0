// Package devserver serves a league table fixture the way the production
// record source does, for running the UI locally.
package devserver

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/byxorna/standings/pkg/logging"
	"github.com/byxorna/standings/pkg/types/v1"
	"github.com/bytedance/sonic"
	"github.com/fsnotify/fsnotify"
	"github.com/gorilla/mux"
	"github.com/mitchellh/go-homedir"
	"github.com/sirupsen/logrus"
)

var (
	//go:embed teams.json
	defaultFixture []byte

	ErrDuplicateID = fmt.Errorf("duplicate team id")
)

type Server struct {
	mu    sync.RWMutex
	teams []v1.Team
	byID  map[v1.ID]int

	// Path is the fixture on disk, empty for the embedded one
	Path    string
	watcher *fsnotify.Watcher
	router  *mux.Router
}

// New loads the fixture at path, or the embedded fixture when path is empty.
func New(path string) (*Server, error) {
	s := &Server{}
	if path == "" {
		if err := s.load(defaultFixture); err != nil {
			return nil, fmt.Errorf("embedded fixture: %w", err)
		}
	} else {
		expandedPath, err := homedir.Expand(path)
		if err != nil {
			return nil, err
		}
		s.Path = expandedPath
		if err := s.reload(); err != nil {
			return nil, err
		}
	}

	r := mux.NewRouter()
	for _, prefix := range []string{"", "/api"} {
		r.HandleFunc(prefix+"/teams", s.listTeams).Methods(http.MethodGet)
		r.HandleFunc(prefix+"/teams/{id:[0-9]+}", s.getTeam).Methods(http.MethodGet)
	}
	r.Use(logRequests)
	s.router = r

	return s, nil
}

func (s *Server) Handler() http.Handler { return s.router }

func (s *Server) Teams() []v1.Team {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]v1.Team, len(s.teams))
	copy(out, s.teams)
	return out
}

func (s *Server) load(raw []byte) error {
	teams := []v1.Team{}
	if err := sonic.Unmarshal(raw, &teams); err != nil {
		return fmt.Errorf("unable to parse fixture: %w", err)
	}
	byID := make(map[v1.ID]int, len(teams))
	for i, t := range teams {
		if _, ok := byID[t.ID]; ok {
			return fmt.Errorf("%w: %d", ErrDuplicateID, t.ID)
		}
		byID[t.ID] = i
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.teams = teams
	s.byID = byID
	return nil
}

func (s *Server) reload() error {
	raw, err := os.ReadFile(s.Path)
	if err != nil {
		return fmt.Errorf("unable to read %s: %w", s.Path, err)
	}
	return s.load(raw)
}

// Watch reloads the fixture whenever it is written. A fixture that fails to
// parse is logged and the previous table keeps being served.
func (s *Server) Watch() error {
	if s.Path == "" {
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	// editors often replace the file, so watch the directory
	if err := watcher.Add(filepath.Dir(s.Path)); err != nil {
		watcher.Close()
		return fmt.Errorf("unable to watch %s: %w", s.Path, err)
	}
	s.watcher = watcher

	go func() {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Name != s.Path || event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
					continue
				}
				if err := s.reload(); err != nil {
					logging.Log.Warnf("keeping previous fixture: %v", err)
					continue
				}
				logging.Log.Infof("reloaded %d teams from %s", len(s.Teams()), s.Path)
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logging.Log.Errorf("watcher error: %v", err)
			}
		}
	}()
	return nil
}

func (s *Server) Close() error {
	if s.watcher == nil {
		return nil
	}
	return s.watcher.Close()
}

// ListenAndServe serves until ctx is done.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errs := make(chan error, 1)
	go func() {
		errs <- srv.ListenAndServe()
	}()

	select {
	case err := <-errs:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errs; !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

func (s *Server) listTeams(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.Teams())
}

func (s *Server) getTeam(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		http.Error(w, "bad id", http.StatusBadRequest)
		return
	}

	s.mu.RLock()
	i, ok := s.byID[v1.ID(id)]
	var t v1.Team
	if ok {
		t = s.teams[i]
	}
	s.mu.RUnlock()

	if !ok {
		http.Error(w, "no such team", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, t)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	b, err := sonic.Marshal(v)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(b)
}

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		logging.Log.WithFields(logrus.Fields{
			"method":   r.Method,
			"path":     r.URL.Path,
			"duration": time.Since(start).String(),
			"agent":    r.UserAgent(),
		}).Info("request")
	})
}
