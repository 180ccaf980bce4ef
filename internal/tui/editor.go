package tui

import (
	"errors"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"nota/internal/logs"
	"nota/internal/notes"
	"nota/internal/tui/messages"
	"nota/internal/tui/theme"
)

const (
	focusTitle = iota
	focusContent
)

var (
	editorLabelStyle = lipgloss.NewStyle().Foreground(theme.Secondary)
	editorErrorStyle = lipgloss.NewStyle().Foreground(theme.Danger)
	editorBoxStyle   = theme.ModalBox
)

// EditorModel is the add/edit screen: a title input and a content area.
// Both fields are validated on every keystroke and again on save; the
// store is only touched when both validators pass.
type EditorModel struct {
	store *notes.Store
	id    string // empty while composing a new note

	titleInput   textinput.Model
	contentInput textarea.Model
	focus        int
	titleErr     error
	contentErr   error

	width  int
	height int
}

// NewEditorModel creates the editor backed by the shared store.
func NewEditorModel(store *notes.Store) EditorModel {
	ti := textinput.New()
	ti.Placeholder = "Note title"
	ti.CharLimit = 256
	ti.Width = 46

	ta := textarea.New()
	ta.Placeholder = "Write something..."
	ta.CharLimit = 0
	ta.SetWidth(48)
	ta.SetHeight(6)

	return EditorModel{
		store:        store,
		titleInput:   ti,
		contentInput: ta,
	}
}

// StartNew resets the editor for composing a new note.
func (m *EditorModel) StartNew() tea.Cmd {
	m.id = ""
	m.titleInput.SetValue("")
	m.contentInput.SetValue("")
	m.titleErr = nil
	m.contentErr = nil
	return m.setFocus(focusTitle)
}

// StartEdit loads an existing note into the editor. Returns false when
// the ID no longer resolves; the caller falls back to the listing.
func (m *EditorModel) StartEdit(id string) (tea.Cmd, bool) {
	note, ok := m.store.Get(id)
	if !ok {
		return nil, false
	}
	m.id = note.ID
	m.titleInput.SetValue(note.Title)
	m.contentInput.SetValue(note.Content)
	m.titleErr = nil
	m.contentErr = nil
	return m.setFocus(focusTitle), true
}

// SetSize updates the view dimensions
func (m *EditorModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// HintText returns the status-bar hint.
func (m EditorModel) HintText() string {
	return "tab:switch field  ctrl+s:save  esc:cancel"
}

func (m *EditorModel) setFocus(target int) tea.Cmd {
	m.focus = target
	if target == focusTitle {
		m.contentInput.Blur()
		return m.titleInput.Focus()
	}
	m.titleInput.Blur()
	return m.contentInput.Focus()
}

func (m EditorModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles editor events, returns (EditorModel, tea.Cmd) as a child view
func (m EditorModel) Update(msg tea.Msg) (EditorModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.forward(msg)
	}

	switch keyMsg.String() {
	case "esc":
		// Discard staged edits; nothing was committed to the store
		if m.id == "" {
			return m, messages.SwitchView(messages.ViewList)
		}
		id := m.id
		return m, func() tea.Msg {
			return messages.OpenNoteMsg{ID: id}
		}

	case "tab", "shift+tab":
		if m.focus == focusTitle {
			return m, m.setFocus(focusContent)
		}
		return m, m.setFocus(focusTitle)

	case "enter":
		// Enter on the title row drops into the content area;
		// inside the content area it inserts a newline as usual.
		if m.focus == focusTitle {
			return m, m.setFocus(focusContent)
		}
		return m.forward(msg)

	case "ctrl+s":
		cmd := m.save()
		return m, cmd
	}

	return m.forward(msg)
}

func (m EditorModel) forward(msg tea.Msg) (EditorModel, tea.Cmd) {
	var cmd tea.Cmd
	if m.focus == focusTitle {
		m.titleInput, cmd = m.titleInput.Update(msg)
	} else {
		m.contentInput, cmd = m.contentInput.Update(msg)
	}

	// Re-run both validators on every keystroke so messages appear and
	// clear as the user types. Blink ticks and the like don't count; a
	// pristine form shows no violations.
	if _, isKey := msg.(tea.KeyMsg); isKey {
		m.titleErr = notes.ValidateTitle(m.titleInput.Value())
		m.contentErr = notes.ValidateContent(m.contentInput.Value())
	}

	return m, cmd
}

// save commits the staged fields, but only when both validators pass.
func (m *EditorModel) save() tea.Cmd {
	m.titleErr = notes.ValidateTitle(m.titleInput.Value())
	m.contentErr = notes.ValidateContent(m.contentInput.Value())
	if m.titleErr != nil || m.contentErr != nil {
		return nil
	}

	title := m.titleInput.Value()
	content := m.contentInput.Value()

	if m.id == "" {
		note := m.store.Create(title, content)
		return func() tea.Msg {
			return messages.NoteSavedMsg{ID: note.ID, Created: true}
		}
	}

	if err := m.store.Update(m.id, title, content); err != nil {
		if errors.Is(err, notes.ErrNotFound) {
			// Deleted from another path while editing; nothing to save onto
			logs.Logger.Debug("save on missing note", "id", m.id)
			return messages.SwitchView(messages.ViewList)
		}
		return nil
	}

	id := m.id
	return func() tea.Msg {
		return messages.NoteSavedMsg{ID: id}
	}
}

func (m EditorModel) View() string {
	heading := "New Note"
	if m.id != "" {
		heading = "Edit Note"
	}

	var lines []string
	lines = append(lines, theme.Title.Render(heading))
	lines = append(lines, "")

	lines = append(lines, editorLabelStyle.Render("Title"))
	lines = append(lines, m.titleInput.View())
	if m.titleErr != nil {
		lines = append(lines, editorErrorStyle.Render(m.titleErr.Error()))
	}
	lines = append(lines, "")

	lines = append(lines, editorLabelStyle.Render("Text"))
	lines = append(lines, m.contentInput.View())
	if m.contentErr != nil {
		lines = append(lines, editorErrorStyle.Render(m.contentErr.Error()))
	}

	box := editorBoxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
