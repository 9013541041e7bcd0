package fs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/byxorna/standings/pkg/db"
	"github.com/byxorna/standings/pkg/logging"
	"github.com/bytedance/sonic"
	"github.com/fsnotify/fsnotify"
	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/go-homedir"
)

// ErrCorrupt is returned by reload when the file on disk is not a JSON object.
var ErrCorrupt = errors.New("corrupt store file")

// Store keeps every key in a single JSON object on disk. Changes written by
// another process are picked up by a watcher on the containing directory.
type Store struct {
	*sync.Mutex
	Path      string `validate:"required"`
	Directory string `validate:"required,dir"`

	values  map[string]string
	watcher *fsnotify.Watcher
}

func New(path string) (*Store, error) {
	expandedPath, err := homedir.Expand(path)
	if err != nil {
		return nil, err
	}

	s := Store{
		Mutex:     &sync.Mutex{},
		Path:      expandedPath,
		Directory: filepath.Dir(expandedPath),
		values:    map[string]string{},
	}

	if err := os.MkdirAll(s.Directory, 0700); err != nil {
		return nil, fmt.Errorf("error creating %s: %w", s.Directory, err)
	}

	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("error validating store: %w", err)
	}

	// a corrupt file starts empty and is replaced by the next Set
	if err := s.reload(); errors.Is(err, ErrCorrupt) {
		logging.Log.Warnf("discarding %s: %v", s.Path, err)
	} else if err != nil {
		return nil, err
	}

	if err := s.startWatcher(); err != nil {
		return nil, fmt.Errorf("unable to create watcher: %w", err)
	}

	return &s, nil
}

func (s *Store) Validate() error {
	validate := validator.New()
	return validate.Struct(*s)
}

func (s *Store) Get(key string) (string, error) {
	s.Lock()
	defer s.Unlock()
	v, ok := s.values[key]
	if !ok {
		return "", db.ErrNotFound
	}
	return v, nil
}

func (s *Store) Set(key, value string) error {
	s.Lock()
	defer s.Unlock()

	next := make(map[string]string, len(s.values)+1)
	for k, v := range s.values {
		next[k] = v
	}
	next[key] = value

	if err := s.write(next); err != nil {
		return fmt.Errorf("unable to store %s: %w", key, err)
	}
	s.values = next
	return nil
}

func (s *Store) Close() error {
	s.Lock()
	defer s.Unlock()
	if s.watcher == nil {
		return nil
	}
	err := s.watcher.Close()
	s.watcher = nil
	return err
}

// write replaces the file atomically. Callers hold the lock.
func (s *Store) write(values map[string]string) error {
	b, err := sonic.ConfigStd.MarshalIndent(values, "", "  ")
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(s.Directory, ".kv-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(append(b, '\n')); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), s.Path)
}

// reload replaces the in memory values with the file on disk. A missing file
// is empty. On error the previous values are kept.
func (s *Store) reload() error {
	s.Lock()
	defer s.Unlock()

	b, err := os.ReadFile(s.Path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("unable to read %s: %w", s.Path, err)
	}

	values := map[string]string{}
	if len(b) > 0 {
		if err := sonic.Unmarshal(b, &values); err != nil {
			return fmt.Errorf("%w %s: %v", ErrCorrupt, s.Path, err)
		}
	}
	s.values = values
	return nil
}

func (s *Store) startWatcher() error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}

	err = watcher.Add(s.Directory)
	if err != nil {
		watcher.Close()
		return fmt.Errorf("unable to watch %s: %w", s.Directory, err)
	}

	s.watcher = watcher

	go func() {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Name != s.Path {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
					if err := s.reload(); err != nil {
						logging.Log.Warnf("error reloading %s: %v", s.Path, err)
					}
				}
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
