// seehuhn.de/go/dcp - read and apply DNG camera profiles
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package dcp

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	log "github.com/sirupsen/logrus"
	"golang.org/x/exp/maps"
)

// StoreConfig configures a [Store].
type StoreConfig struct {
	// ProfileDir is scanned recursively for standard camera profiles.
	// Files named "<camera>.dcp" are registered under the upper-cased
	// camera name.  If ProfileDir is empty, no standard profiles are
	// available.
	ProfileDir string

	// Logger receives diagnostic messages.
	// If this is nil, the standard logrus logger is used.
	Logger *log.Logger
}

// Store caches decoded camera profiles.
//
// Every profile file is decoded at most once, even when requested
// concurrently.  Profiles are never evicted.  A Store is safe for
// concurrent use.
type Store struct {
	log *log.Logger

	mu    sync.Mutex
	cache map[string]*Profile
	std   map[string]string // upper-cased camera name -> file name
}

// NewStore creates a new profile store and scans the profile directory.
func NewStore(cfg StoreConfig) (*Store, error) {
	s := &Store{
		log:   cfg.Logger,
		cache: make(map[string]*Profile),
		std:   make(map[string]string),
	}
	if s.log == nil {
		s.log = log.StandardLogger()
	}

	if cfg.ProfileDir != "" {
		err := s.scan(cfg.ProfileDir)
		if err != nil {
			return nil, err
		}
	}
	return s, nil
}

// scan registers all .dcp files below root, breadth first.
func (s *Store) scan(root string) error {
	fi, err := os.Stat(root)
	if err != nil {
		return fmt.Errorf("dcp: profile directory: %w", err)
	}
	if !fi.IsDir() {
		return fmt.Errorf("dcp: profile directory %q is not a directory", root)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	queue := []string{root}
	for len(queue) > 0 {
		dirName := queue[0]
		queue = queue[1:]

		entries, err := os.ReadDir(dirName)
		if err != nil {
			s.log.Warnf("skipping profile directory %q: %v", dirName, err)
			continue
		}
		for _, e := range entries {
			fname := filepath.Join(dirName, e.Name())
			if e.IsDir() {
				queue = append(queue, fname)
				continue
			}

			ext := filepath.Ext(e.Name())
			if !strings.EqualFold(ext, ".dcp") || len(ext) == len(e.Name()) {
				continue
			}
			camera := strings.ToUpper(strings.TrimSuffix(e.Name(), ext))
			s.std[camera] = fname
			s.log.Debugf("found camera profile %q for %s", fname, camera)
		}
	}

	s.log.Infof("%d standard camera profiles in %q", len(s.std), root)
	return nil
}

// Profile returns the decoded profile stored in the named file.
// The profile is read from disk on first use and cached afterwards.
// Failures are not cached.
func (s *Store) Profile(fname string) (*Profile, error) {
	key := fname
	if abs, err := filepath.Abs(fname); err == nil {
		key = abs
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if p, ok := s.cache[key]; ok {
		return p, nil
	}

	p, err := ReadFile(fname)
	if err != nil {
		return nil, err
	}
	s.cache[key] = p
	s.log.Debugf("loaded camera profile %q", key)
	return p, nil
}

// StdProfile returns the standard profile for the given camera.
// The camera name is matched case-insensitively.  If there is no profile
// for the camera, [ErrNoProfile] is returned.
func (s *Store) StdProfile(camera string) (*Profile, error) {
	s.mu.Lock()
	fname, ok := s.std[strings.ToUpper(camera)]
	s.mu.Unlock()

	if !ok {
		return nil, fmt.Errorf("%w for %q", ErrNoProfile, camera)
	}
	return s.Profile(fname)
}

// Cameras returns the upper-cased names of all cameras with a standard
// profile, in sorted order.
func (s *Store) Cameras() []string {
	s.mu.Lock()
	names := maps.Keys(s.std)
	s.mu.Unlock()

	slices.Sort(names)
	return names
}

// IsValidFileName reports whether fname is an existing regular file with
// extension .dcp or .dng (in any case).
func IsValidFileName(fname string) bool {
	fi, err := os.Stat(fname)
	if err != nil || fi.IsDir() {
		return false
	}

	ext := strings.ToLower(filepath.Ext(fname))
	if ext != ".dcp" && ext != ".dng" {
		return false
	}
	return len(filepath.Base(fname)) > len(ext)
}

// ErrNoProfile is returned by [Store.StdProfile] if no profile is known
// for a camera.
var ErrNoProfile = errors.New("dcp: no camera profile")
