package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"nota/internal/logs"
	"nota/internal/notes"
	"nota/internal/tui/messages"
	"nota/internal/tui/theme"
)

type listMode int

const (
	modeBrowse listMode = iota
	modeSearch
)

var (
	listItemStyle     = lipgloss.NewStyle().Foreground(theme.Text)
	selectedItemStyle = theme.SelectedBg
	previewStyle      = lipgloss.NewStyle().Foreground(theme.TextMuted)
	filterStyle       = lipgloss.NewStyle().Bold(true).Foreground(theme.Warning)
)

// ListModel is the listing view: every note in display order, with fuzzy
// search over titles and a delete confirmation flow.
type ListModel struct {
	store         *notes.Store
	previewLen    int
	confirmDelete bool

	items       []notes.Note
	filtered    []int // indices into items
	selected    int
	mode        listMode
	textInput   textinput.Model
	searchQuery string

	confirm  *ConfirmationModal
	deleteID string

	width  int
	height int
}

// NewListModel creates the listing view backed by the shared store.
func NewListModel(store *notes.Store, previewLen int, confirmDelete bool) ListModel {
	ti := textinput.New()
	ti.Placeholder = "Search notes..."
	ti.CharLimit = 50
	ti.Width = 40

	m := ListModel{
		store:         store,
		previewLen:    previewLen,
		confirmDelete: confirmDelete,
	}
	m.textInput = ti
	m.Refresh()
	return m
}

// SetSize updates the view dimensions
func (m *ListModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Refresh re-reads the store. Called whenever this view becomes current.
func (m *ListModel) Refresh() {
	m.items = m.store.List()
	m.applyFilter()
}

// IsTyping returns true while the search input is capturing keys
func (m ListModel) IsTyping() bool {
	return m.mode == modeSearch
}

// HintText returns the status-bar hint for the current mode.
func (m ListModel) HintText() string {
	switch {
	case m.confirm != nil:
		return "y:delete  n/esc:keep"
	case m.mode == modeSearch:
		return "type to filter  enter:confirm  esc:cancel"
	default:
		return "j/k:navigate  enter:open  n:new  d:delete  /:search  ?:help  q:quit"
	}
}

func (m *ListModel) applyFilter() {
	if m.searchQuery == "" {
		m.filtered = make([]int, len(m.items))
		for i := range m.items {
			m.filtered[i] = i
		}
	} else {
		titles := make([]string, len(m.items))
		for i, n := range m.items {
			titles[i] = n.Title
		}
		matches := fuzzy.Find(m.searchQuery, titles)
		m.filtered = make([]int, len(matches))
		for i, match := range matches {
			m.filtered[i] = match.Index
		}
	}
	if m.selected >= len(m.filtered) {
		m.selected = max(0, len(m.filtered)-1)
	}
}

func (m ListModel) currentNote() (notes.Note, bool) {
	if len(m.filtered) == 0 || m.selected >= len(m.filtered) {
		return notes.Note{}, false
	}
	return m.items[m.filtered[m.selected]], true
}

func (m ListModel) Init() tea.Cmd {
	return nil
}

// Update handles list events, returns (ListModel, tea.Cmd) as a child view
func (m ListModel) Update(msg tea.Msg) (ListModel, tea.Cmd) {
	switch msg := msg.(type) {
	case ConfirmationResultMsg:
		if m.confirm == nil {
			return m, nil
		}
		m.confirm = nil
		if msg.Confirmed {
			m.deleteNote(m.deleteID)
		}
		m.deleteID = ""
		return m, nil

	case tea.KeyMsg:
		if m.confirm != nil {
			return m, m.confirm.Update(msg)
		}
		switch m.mode {
		case modeBrowse:
			return m.updateBrowse(msg)
		case modeSearch:
			return m.updateSearch(msg)
		}
	}

	return m, nil
}

func (m ListModel) updateBrowse(msg tea.KeyMsg) (ListModel, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "esc":
		if m.searchQuery != "" {
			m.searchQuery = ""
			m.applyFilter()
		}
		return m, nil

	case "/":
		m.mode = modeSearch
		m.textInput.SetValue(m.searchQuery)
		m.textInput.Focus()
		return m, textinput.Blink

	case "j", "down":
		if len(m.filtered) > 0 && m.selected < len(m.filtered)-1 {
			m.selected++
		}

	case "k", "up":
		if m.selected > 0 {
			m.selected--
		}

	case "n":
		return m, func() tea.Msg {
			return messages.EditNoteMsg{}
		}

	case "enter":
		if note, ok := m.currentNote(); ok {
			return m, func() tea.Msg {
				return messages.OpenNoteMsg{ID: note.ID}
			}
		}
		// Empty list: enter starts a new note
		return m, func() tea.Msg {
			return messages.EditNoteMsg{}
		}

	case "d":
		note, ok := m.currentNote()
		if !ok {
			return m, nil
		}
		if !m.confirmDelete {
			m.deleteNote(note.ID)
			return m, nil
		}
		m.deleteID = note.ID
		m.confirm = NewConfirmationModal("Delete note?", note.Title, 40)
		return m, nil
	}

	return m, nil
}

func (m ListModel) updateSearch(msg tea.KeyMsg) (ListModel, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeBrowse
		m.searchQuery = ""
		m.textInput.SetValue("")
		m.applyFilter()
		return m, nil

	case "enter":
		m.searchQuery = m.textInput.Value()
		m.mode = modeBrowse
		m.applyFilter()
		return m, nil
	}

	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	m.searchQuery = m.textInput.Value()
	m.applyFilter()
	return m, cmd
}

func (m *ListModel) deleteNote(id string) {
	if err := m.store.Delete(id); err != nil {
		// Already gone; nothing to do beyond refreshing the view
		logs.Logger.Debug("delete on missing note", "id", id)
	}
	m.Refresh()
}

func (m ListModel) View() string {
	if m.confirm != nil {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.confirm.View())
	}
	if m.mode == modeSearch {
		return m.viewSearch()
	}
	return m.viewBrowse()
}

func (m ListModel) viewBrowse() string {
	var lines []string

	lines = append(lines, theme.Title.Render(fmt.Sprintf("Notes (%d)", len(m.items))))
	lines = append(lines, "")

	if m.searchQuery != "" {
		lines = append(lines, filterStyle.Render("  Filter: ")+previewStyle.Render(m.searchQuery))
		lines = append(lines, "")
	}

	if len(m.filtered) == 0 {
		if len(m.items) == 0 {
			lines = append(lines, listItemStyle.Render("No notes yet. Press 'n' to write one."))
		} else {
			lines = append(lines, listItemStyle.Render("No matching notes."))
		}
		lines = append(lines, "")
	} else {
		// Align the preview column after the longest title
		maxTitleWidth := 0
		for _, idx := range m.filtered {
			w := lipgloss.Width("► " + m.items[idx].Title)
			if w > maxTitleWidth {
				maxTitleWidth = w
			}
		}

		for i, idx := range m.filtered {
			note := m.items[idx]
			style := listItemStyle
			prefix := "  "
			if i == m.selected {
				style = selectedItemStyle
				prefix = "► "
			}
			titleCol := style.Width(maxTitleWidth).Render(prefix + note.Title)
			line := titleCol + "  " + previewStyle.Render(notes.Preview(note.Content, m.previewLen))
			lines = append(lines, line)
		}
		lines = append(lines, "")
	}

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func (m ListModel) viewSearch() string {
	var lines []string
	lines = append(lines, theme.Title.Render("Search Notes"))
	lines = append(lines, "")
	lines = append(lines, "  "+m.textInput.View())
	lines = append(lines, "")

	// Live results
	if len(m.filtered) > 0 {
		show := min(8, len(m.filtered))
		for i := 0; i < show; i++ {
			note := m.items[m.filtered[i]]
			prefix := "  "
			if i == m.selected {
				prefix = "► "
			}
			lines = append(lines, listItemStyle.Render(prefix+note.Title))
		}
		if len(m.filtered) > show {
			lines = append(lines, previewStyle.Render(fmt.Sprintf("  ... %d more", len(m.filtered)-show)))
		}
	} else {
		lines = append(lines, listItemStyle.Render("  No matches"))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}
