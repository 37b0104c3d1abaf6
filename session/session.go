// Package session tracks the one file a save operation targets.
package session

import (
	"errors"
	"sync"

	"github.com/rustyeddy/tradebook/sheet"
)

// ErrNoActiveFile rejects a save with no load or create before it.
// Saves never create files implicitly.
var ErrNoActiveFile = errors.New("no active file")

// Session holds the active file state for one logical client. Load and
// create replace the state wholesale; nothing merges or diffs against
// the previous value. The mutex only guards the HTTP handlers sharing
// the object, there is no multi-client reconciliation.
type Session struct {
	mu   sync.Mutex
	path string
	name string
	rows []sheet.Row
}

func New() *Session {
	return &Session{}
}

// SetActive unconditionally replaces the active file.
func (s *Session) SetActive(path, name string, rows []sheet.Row) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.path, s.name, s.rows = path, name, rows
}

// Target returns the path a save should write, or ErrNoActiveFile.
func (s *Session) Target() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.path == "" {
		return "", ErrNoActiveFile
	}
	return s.path, nil
}

// Name returns the active file's name, if one is set.
func (s *Session) Name() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.name, s.name != ""
}

// Rows returns the raw rows recorded at the last load or save.
func (s *Session) Rows() []sheet.Row {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rows
}

// SetRows records the rows just written without touching path or name.
func (s *Session) SetRows(rows []sheet.Row) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.path != "" {
		s.rows = rows
	}
}

// ClearIfMatches empties the session only when the named file is the
// active one. Deleting any other file is a no-op.
func (s *Session) ClearIfMatches(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.name == "" || s.name != name {
		return false
	}
	s.path, s.name, s.rows = "", "", nil
	return true
}
