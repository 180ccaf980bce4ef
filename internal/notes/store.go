package notes

import (
	"errors"
	"sync"

	"github.com/google/uuid"

	"nota/internal/logs"
)

// ErrNotFound is returned by Update and Delete when no note has the given
// ID. Callers check it with errors.Is and fall back to the listing view;
// it is an expected condition, not a fault.
var ErrNotFound = errors.New("note not found")

// Store owns the ordered note collection. There is exactly one Store per
// process and every screen reads through it; nothing else holds a copy.
//
// All access normally happens on the bubbletea event loop, but the store
// guards itself with a lock so a future background writer can't corrupt
// the slice.
type Store struct {
	mu    sync.RWMutex
	notes []Note
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{}
}

// Create makes a new note with a fresh unique ID, appends it to the end
// of the collection, and returns it. Insertion order is display order.
// Fields are not validated here; callers validate before committing.
func (s *Store) Create(title, content string) Note {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := Note{
		ID:      uuid.NewString(),
		Title:   title,
		Content: content,
	}
	s.notes = append(s.notes, n)
	logs.Logger.Debug("note created", "id", n.ID)
	return n
}

// Get returns the note with the given ID, or ok=false when it does not
// exist. Absence is an explicit result, never a panic.
func (s *Store) Get(id string) (Note, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, n := range s.notes {
		if n.ID == id {
			return n, true
		}
	}
	return Note{}, false
}

// Update overwrites the title and content of the note with the given ID,
// leaving its ID and position unchanged. Returns ErrNotFound when no
// note has that ID; the collection is untouched in that case.
func (s *Store) Update(id, title, content string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.notes {
		if s.notes[i].ID == id {
			s.notes[i].Title = title
			s.notes[i].Content = content
			logs.Logger.Debug("note updated", "id", id)
			return nil
		}
	}
	return ErrNotFound
}

// Delete removes the note with the given ID. The relative order of the
// remaining notes is preserved. Returns ErrNotFound when absent.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.notes {
		if s.notes[i].ID == id {
			s.notes = append(s.notes[:i], s.notes[i+1:]...)
			logs.Logger.Debug("note deleted", "id", id)
			return nil
		}
	}
	return ErrNotFound
}

// List returns the collection in display order as of the call. The
// returned slice is a copy; mutations route through the store only.
func (s *Store) List() []Note {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Note, len(s.notes))
	copy(out, s.notes)
	return out
}

// Len returns the number of notes.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.notes)
}
