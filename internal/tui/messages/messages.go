package messages

import tea "github.com/charmbracelet/bubbletea"

// ViewType represents the different views in the application
type ViewType int

const (
	ViewList ViewType = iota
	ViewDetail
	ViewEditor
)

// SwitchViewMsg is sent by child views to switch to a different view
type SwitchViewMsg struct {
	View ViewType
}

// OpenNoteMsg requests opening the detail view for a specific note
type OpenNoteMsg struct {
	ID string
}

// EditNoteMsg requests the editor. An empty ID means a new note.
type EditNoteMsg struct {
	ID string
}

// NoteSavedMsg signals that the editor committed a create or update
type NoteSavedMsg struct {
	ID      string
	Created bool
}

// NoteDeletedMsg signals that a note was removed from the store
type NoteDeletedMsg struct {
	ID string
}

func SwitchView(v ViewType) tea.Cmd {
	return func() tea.Msg {
		return SwitchViewMsg{View: v}
	}
}
