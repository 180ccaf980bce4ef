package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"nota/internal/logs"
	"nota/internal/notes"
	"nota/internal/tui/messages"
	"nota/internal/tui/theme"
)

var (
	detailContentStyle = lipgloss.NewStyle().Foreground(theme.Text)
	detailEmptyStyle   = lipgloss.NewStyle().Italic(true).Foreground(theme.TextMuted)
)

// DetailModel shows a single note. The note is resolved through the store
// by ID on every render, so the view can never show stale fields; when the
// ID stops resolving (deleted elsewhere) the view backs out to the list.
type DetailModel struct {
	store   *notes.Store
	id      string
	confirm *ConfirmationModal

	confirmDelete bool
	width         int
	height        int
}

// NewDetailModel creates the detail view backed by the shared store.
func NewDetailModel(store *notes.Store, confirmDelete bool) DetailModel {
	return DetailModel{
		store:         store,
		confirmDelete: confirmDelete,
	}
}

// SetNote points the view at a note ID.
func (m *DetailModel) SetNote(id string) {
	m.id = id
	m.confirm = nil
}

// SetSize updates the view dimensions
func (m *DetailModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// HintText returns the status-bar hint for the current state.
func (m DetailModel) HintText() string {
	if m.confirm != nil {
		return "y:delete  n/esc:keep"
	}
	return "e:edit  d:delete  q/esc:back  ?:help"
}

func (m DetailModel) Init() tea.Cmd {
	return nil
}

// Update handles detail events, returns (DetailModel, tea.Cmd) as a child view
func (m DetailModel) Update(msg tea.Msg) (DetailModel, tea.Cmd) {
	switch msg := msg.(type) {
	case ConfirmationResultMsg:
		if m.confirm == nil {
			return m, nil
		}
		m.confirm = nil
		if msg.Confirmed {
			return m, m.deleteNote()
		}
		return m, nil

	case tea.KeyMsg:
		if m.confirm != nil {
			return m, m.confirm.Update(msg)
		}

		// The note may have vanished underneath us (stale ID). Nothing
		// destructive to do here: hand control back to the listing.
		note, ok := m.store.Get(m.id)
		if !ok {
			logs.Logger.Debug("detail view on missing note", "id", m.id)
			return m, messages.SwitchView(messages.ViewList)
		}

		switch msg.String() {
		case "esc", "q":
			return m, messages.SwitchView(messages.ViewList)

		case "e":
			id := note.ID
			return m, func() tea.Msg {
				return messages.EditNoteMsg{ID: id}
			}

		case "d":
			if !m.confirmDelete {
				return m, m.deleteNote()
			}
			m.confirm = NewConfirmationModal("Delete note?", note.Title, 40)
			return m, nil
		}
	}

	return m, nil
}

func (m DetailModel) deleteNote() tea.Cmd {
	id := m.id
	if err := m.store.Delete(id); err != nil {
		logs.Logger.Debug("delete on missing note", "id", id)
	}
	return func() tea.Msg {
		return messages.NoteDeletedMsg{ID: id}
	}
}

func (m DetailModel) View() string {
	if m.confirm != nil {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.confirm.View())
	}

	note, ok := m.store.Get(m.id)
	if !ok {
		content := detailEmptyStyle.Render("This note no longer exists.")
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}

	bodyWidth := min(m.width-8, 72)
	if bodyWidth < 20 {
		bodyWidth = 20
	}

	var lines []string
	lines = append(lines, theme.Title.Render(note.Title))
	lines = append(lines, "")

	if note.Content == "" {
		lines = append(lines, detailEmptyStyle.Render("(no text)"))
	} else {
		lines = append(lines, detailContentStyle.Width(bodyWidth).Render(note.Content))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}
