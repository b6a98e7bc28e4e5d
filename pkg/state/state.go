// Package state provides the JSON-backed store for the repository URL and
// the installed package set. The store is the single owner of packages.json:
// it is loaded once at process start and saved after every mutation.
//
// Concurrent invocations of the tool are not guarded against each other;
// last writer wins.
package state

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"

	"github.com/gopu-inc/initpkg/internal/logger"
	"github.com/gopu-inc/initpkg/pkg/errors"
	"github.com/gopu-inc/initpkg/pkg/fsutil"
	"github.com/gopu-inc/initpkg/pkg/model"
)

// DefaultRepository is the built-in package repository URL. It can be
// overridden per user through the persisted state.
const DefaultRepository = "https://raw.githubusercontent.com/gopu-inc/initlang-packages/main"

// State is the persisted form of the tool: the repository base URL and the
// installed package set. Unknown top-level keys found on disk are carried
// through load and save untouched so newer schema versions stay readable.
type State struct {
	Repository string
	Installed  map[string]model.InstalledEntry

	extra map[string]json.RawMessage
}

// Default returns a fresh state: built-in repository, nothing installed.
func Default() *State {
	return &State{
		Repository: DefaultRepository,
		Installed:  make(map[string]model.InstalledEntry),
	}
}

// UnmarshalJSON merges the on-disk document over the defaults, keeping any
// keys this version does not know about.
func (s *State) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	if v, ok := raw["repository"]; ok {
		if err := json.Unmarshal(v, &s.Repository); err != nil {
			return err
		}
		delete(raw, "repository")
	}
	if v, ok := raw["installed_packages"]; ok {
		if err := json.Unmarshal(v, &s.Installed); err != nil {
			return err
		}
		delete(raw, "installed_packages")
	}
	if s.Installed == nil {
		s.Installed = make(map[string]model.InstalledEntry)
	}
	s.extra = raw
	return nil
}

// MarshalJSON writes the known fields plus any preserved unknown keys.
func (s *State) MarshalJSON() ([]byte, error) {
	out := make(map[string]json.RawMessage, len(s.extra)+2)
	for k, v := range s.extra {
		out[k] = v
	}

	repo, err := json.Marshal(s.Repository)
	if err != nil {
		return nil, err
	}
	installed := s.Installed
	if installed == nil {
		installed = map[string]model.InstalledEntry{}
	}
	pkgs, err := json.Marshal(installed)
	if err != nil {
		return nil, err
	}
	out["repository"] = repo
	out["installed_packages"] = pkgs
	return json.Marshal(out)
}

// Store binds a State to its file on disk.
type Store struct {
	path  string
	state *State
}

// NewStore creates a store for the given state file path. The state is not
// read until Load is called.
func NewStore(path string) *Store {
	return &Store{path: path, state: Default()}
}

// Load reads the state file if present. Absence and corruption both fall
// back to the default state; corruption is never surfaced to the caller.
func (st *Store) Load() {
	st.state = Default()

	data, err := os.ReadFile(st.path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Debugf("cannot read state file %s: %v", st.path, err)
		}
		return
	}

	loaded := Default()
	if err := json.Unmarshal(data, loaded); err != nil {
		// Corrupt state is treated as "no state yet".
		logger.Debugf("corrupt state file %s, starting fresh: %v", st.path, err)
		return
	}
	st.state = loaded
}

// Save serializes the full state atomically: temp file in the destination
// directory, fsync, rename. A reader never observes a partial file.
func (st *Store) Save() (err error) {
	if err := fsutil.EnsureFileDir(st.path); err != nil {
		return errors.Wrap(errors.ErrStateSave, err.Error())
	}

	data, err := json.MarshalIndent(st.state, "", "  ")
	if err != nil {
		return errors.Wrap(errors.ErrStateSave, err.Error())
	}

	tmpFile, err := os.CreateTemp(filepath.Dir(st.path), "initpkg-state-*.tmp")
	if err != nil {
		return errors.Wrap(errors.ErrStateSave, err.Error())
	}
	tmpPath := tmpFile.Name()
	defer func() {
		if err != nil {
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return errors.Wrap(errors.ErrStateSave, err.Error())
	}
	if err := tmpFile.Sync(); err != nil {
		_ = tmpFile.Close()
		return errors.Wrap(errors.ErrStateSave, err.Error())
	}
	if err := tmpFile.Close(); err != nil {
		return errors.Wrap(errors.ErrStateSave, err.Error())
	}
	if err := os.Rename(tmpPath, st.path); err != nil {
		return errors.Wrap(errors.ErrStateSave, err.Error())
	}
	return nil
}

// Repository returns the configured repository base URL.
func (st *Store) Repository() string {
	return st.state.Repository
}

// SetRepository changes the repository base URL in memory. The caller is
// expected to Save afterwards.
func (st *Store) SetRepository(url string) {
	st.state.Repository = url
}

// IsInstalled checks whether a package name is part of the installed set.
func (st *Store) IsInstalled(name string) bool {
	_, ok := st.state.Installed[name]
	return ok
}

// Get returns the installed entry for a name.
func (st *Store) Get(name string) (model.InstalledEntry, bool) {
	entry, ok := st.state.Installed[name]
	return entry, ok
}

// Add records an installed entry, replacing any previous entry of that name.
func (st *Store) Add(name string, entry model.InstalledEntry) {
	st.state.Installed[name] = entry
}

// Remove drops a package from the installed set. It reports whether the
// name was present.
func (st *Store) Remove(name string) bool {
	if _, ok := st.state.Installed[name]; !ok {
		return false
	}
	delete(st.state.Installed, name)
	return true
}

// InstalledNames returns the sorted names of all installed packages.
func (st *Store) InstalledNames() []string {
	names := make([]string, 0, len(st.state.Installed))
	for name := range st.state.Installed {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Installed returns a copy of the installed set.
func (st *Store) Installed() map[string]model.InstalledEntry {
	out := make(map[string]model.InstalledEntry, len(st.state.Installed))
	for name, entry := range st.state.Installed {
		out[name] = entry
	}
	return out
}
