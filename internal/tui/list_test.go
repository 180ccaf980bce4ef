package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"nota/internal/notes"
	"nota/internal/tui/messages"
)

func newTestList(store *notes.Store) ListModel {
	return NewListModel(store, 40, true)
}

func TestListShowsStoreContents(t *testing.T) {
	store := notes.NewStore()
	store.Create("First", "aaa")
	store.Create("Second", "bbb")

	m := newTestList(store)
	if len(m.items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(m.items))
	}

	store.Create("Third", "ccc")
	m.Refresh()
	if len(m.items) != 3 {
		t.Errorf("expected refresh to pick up new note, got %d", len(m.items))
	}
}

func TestListEnterOpensSelectedNote(t *testing.T) {
	store := notes.NewStore()
	store.Create("First", "")
	second := store.Create("Second", "")

	m := newTestList(store)
	m, _ = m.Update(keyRune('j'))
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected an open command")
	}
	msg, ok := cmd().(messages.OpenNoteMsg)
	if !ok {
		t.Fatalf("expected OpenNoteMsg, got %T", cmd())
	}
	if msg.ID != second.ID {
		t.Errorf("expected second note selected, got %s", msg.ID)
	}
}

func TestListNewNoteKey(t *testing.T) {
	store := notes.NewStore()
	m := newTestList(store)

	m, cmd := m.Update(keyRune('n'))
	if cmd == nil {
		t.Fatal("expected an edit command")
	}
	msg, ok := cmd().(messages.EditNoteMsg)
	if !ok {
		t.Fatalf("expected EditNoteMsg, got %T", cmd())
	}
	if msg.ID != "" {
		t.Error("expected empty ID for a new note")
	}
}

func TestListEnterOnEmptyListStartsNewNote(t *testing.T) {
	store := notes.NewStore()
	m := newTestList(store)

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command")
	}
	if _, ok := cmd().(messages.EditNoteMsg); !ok {
		t.Fatalf("expected EditNoteMsg, got %T", cmd())
	}
}

func TestListDeleteWithConfirmation(t *testing.T) {
	store := notes.NewStore()
	a := store.Create("Keep me", "")
	store.Create("Delete me", "")

	m := newTestList(store)
	m, _ = m.Update(keyRune('j'))
	m, _ = m.Update(keyRune('d'))
	if m.confirm == nil {
		t.Fatal("expected confirmation modal")
	}

	m, cmd := m.Update(keyRune('y'))
	if cmd == nil {
		t.Fatal("expected modal result command")
	}
	m, _ = m.Update(cmd())

	if store.Len() != 1 {
		t.Fatalf("expected 1 note left, got %d", store.Len())
	}
	if _, ok := store.Get(a.ID); !ok {
		t.Error("expected the unselected note to survive")
	}
	if len(m.items) != 1 {
		t.Errorf("expected list refreshed, got %d items", len(m.items))
	}
}

func TestListDeleteWithoutConfirmation(t *testing.T) {
	store := notes.NewStore()
	store.Create("Delete me", "")

	m := NewListModel(store, 40, false)
	m, _ = m.Update(keyRune('d'))

	if store.Len() != 0 {
		t.Error("expected immediate deletion with confirm_delete disabled")
	}
}

func TestListSearchFiltersByTitle(t *testing.T) {
	store := notes.NewStore()
	store.Create("Groceries", "milk")
	store.Create("Meeting notes", "standup")
	store.Create("Gift ideas", "books")

	m := newTestList(store)
	m, _ = m.Update(keyRune('/'))
	if !m.IsTyping() {
		t.Fatal("expected search mode")
	}
	for _, r := range "groc" {
		m, _ = m.Update(keyRune(r))
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	if len(m.filtered) != 1 {
		t.Fatalf("expected 1 match, got %d", len(m.filtered))
	}
	if m.items[m.filtered[0]].Title != "Groceries" {
		t.Errorf("unexpected match: %q", m.items[m.filtered[0]].Title)
	}

	// esc clears the committed filter
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if len(m.filtered) != 3 {
		t.Errorf("expected filter cleared, got %d items", len(m.filtered))
	}
}

func TestListSearchEscCancels(t *testing.T) {
	store := notes.NewStore()
	store.Create("Groceries", "")

	m := newTestList(store)
	m, _ = m.Update(keyRune('/'))
	for _, r := range "xyz" {
		m, _ = m.Update(keyRune(r))
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})

	if m.IsTyping() {
		t.Error("expected search mode exited")
	}
	if len(m.filtered) != 1 {
		t.Errorf("expected filter discarded, got %d items", len(m.filtered))
	}
}
