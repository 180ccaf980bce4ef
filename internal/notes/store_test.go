package notes

import (
	"errors"
	"testing"
)

func TestCreateAppendsInOrder(t *testing.T) {
	s := NewStore()

	first := s.Create("First note", "alpha")
	second := s.Create("Second note", "beta")

	list := s.List()
	if len(list) != 2 {
		t.Fatalf("expected 2 notes, got %d", len(list))
	}
	if list[0].ID != first.ID || list[1].ID != second.ID {
		t.Error("expected insertion order to be display order")
	}
	if list[1] != second {
		t.Errorf("expected last element to be the created note, got %+v", list[1])
	}

	got, ok := s.Get(second.ID)
	if !ok {
		t.Fatal("expected to find created note")
	}
	if got.Title != "Second note" || got.Content != "beta" {
		t.Errorf("unexpected fields: %+v", got)
	}
}

func TestCreateAssignsUniqueIDs(t *testing.T) {
	s := NewStore()

	seen := make(map[string]bool)
	for i := 0; i < 10000; i++ {
		n := s.Create("Uniqueness check", "")
		if n.ID == "" {
			t.Fatal("expected non-empty ID")
		}
		if seen[n.ID] {
			t.Fatalf("duplicate ID after %d creates: %s", i+1, n.ID)
		}
		seen[n.ID] = true
	}
}

func TestGetMissing(t *testing.T) {
	s := NewStore()
	s.Create("Some note", "")

	if _, ok := s.Get("nope"); ok {
		t.Error("expected ok=false for unknown ID")
	}
}

func TestUpdateOverwritesInPlace(t *testing.T) {
	s := NewStore()
	a := s.Create("Note a", "aaa")
	b := s.Create("Note b", "bbb")
	c := s.Create("Note c", "ccc")

	if err := s.Update(b.ID, "Note b2", "b-revised"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, ok := s.Get(b.ID)
	if !ok {
		t.Fatal("expected note to still exist")
	}
	if got.Title != "Note b2" || got.Content != "b-revised" {
		t.Errorf("unexpected fields after update: %+v", got)
	}
	if got.ID != b.ID {
		t.Error("update must not change the ID")
	}

	list := s.List()
	if len(list) != 3 {
		t.Fatalf("expected 3 notes, got %d", len(list))
	}
	if list[0].ID != a.ID || list[1].ID != b.ID || list[2].ID != c.ID {
		t.Error("update must not change positions")
	}
}

func TestUpdateMissing(t *testing.T) {
	s := NewStore()
	before := s.Create("Keep me", "unchanged")

	err := s.Update("nope", "Other", "other")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	list := s.List()
	if len(list) != 1 {
		t.Fatalf("expected collection untouched, got %d notes", len(list))
	}
	if list[0] != before {
		t.Errorf("expected note unchanged, got %+v", list[0])
	}
}

func TestDeletePreservesOrder(t *testing.T) {
	s := NewStore()
	a := s.Create("Note a", "aaa")
	b := s.Create("Note b", "bbb")
	c := s.Create("Note c", "ccc")

	if err := s.Delete(b.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, ok := s.Get(b.ID); ok {
		t.Error("expected deleted note to be gone")
	}

	list := s.List()
	if len(list) != 2 {
		t.Fatalf("expected 2 notes, got %d", len(list))
	}
	if list[0] != a || list[1] != c {
		t.Errorf("expected remaining notes unchanged and in order, got %+v", list)
	}
}

func TestDeleteMissing(t *testing.T) {
	s := NewStore()
	s.Create("Survivor", "")

	err := s.Delete("nope")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if s.Len() != 1 {
		t.Errorf("expected collection untouched, got %d notes", s.Len())
	}
}

func TestListIsASnapshotCopy(t *testing.T) {
	s := NewStore()
	n := s.Create("Original", "text")

	list := s.List()
	list[0].Title = "Tampered"

	got, _ := s.Get(n.ID)
	if got.Title != "Original" {
		t.Error("mutating the returned slice must not affect the store")
	}
}

func TestCreateUpdateDeleteScenario(t *testing.T) {
	s := NewStore()

	n := s.Create("My Title", "Hello")
	list := s.List()
	if len(list) != 1 || list[0].Title != "My Title" || list[0].Content != "Hello" {
		t.Fatalf("unexpected list after create: %+v", list)
	}

	if err := s.Update(n.ID, "Hi", ""); err != nil {
		t.Fatalf("update error: %v", err)
	}
	got, ok := s.Get(n.ID)
	if !ok || got.Title != "Hi" || got.Content != "" {
		t.Fatalf("unexpected note after update: %+v", got)
	}

	if err := s.Delete(n.ID); err != nil {
		t.Fatalf("delete error: %v", err)
	}
	if len(s.List()) != 0 {
		t.Errorf("expected empty list after delete, got %d notes", len(s.List()))
	}
}
