package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"nota/internal/config"
	"nota/internal/logs"
	"nota/internal/notes"
	"nota/internal/tui/shared"
	"nota/internal/tui/theme"
)

// AppModel is the root model that dispatches to child views
type AppModel struct {
	cfg   *config.Config
	store *notes.Store

	currentView ViewType
	listView    ListModel
	detailView  DetailModel
	editorView  EditorModel

	showHelp bool
	width    int
	height   int
	ready    bool
}

// NewAppModel creates the root application model
func NewAppModel(cfg *config.Config, store *notes.Store) AppModel {
	return AppModel{
		cfg:         cfg,
		store:       store,
		currentView: ViewList,
		listView:    NewListModel(store, cfg.PreviewLength, cfg.ConfirmDelete),
		detailView:  NewDetailModel(store, cfg.ConfirmDelete),
		editorView:  NewEditorModel(store),
	}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		contentHeight := msg.Height - 3 // Reserve space for status bar
		m.listView.SetSize(msg.Width, contentHeight)
		m.detailView.SetSize(msg.Width, contentHeight)
		m.editorView.SetSize(msg.Width, contentHeight)
		return m, nil

	case SwitchViewMsg:
		m.currentView = msg.View
		if msg.View == ViewList {
			m.listView.Refresh()
		}
		return m, nil

	case OpenNoteMsg:
		// The ID may be stale (deleted from another path); fall back to
		// the listing instead of opening an absent note.
		if _, ok := m.store.Get(msg.ID); !ok {
			logs.Logger.Debug("open on missing note", "id", msg.ID)
			m.currentView = ViewList
			m.listView.Refresh()
			return m, nil
		}
		m.detailView.SetNote(msg.ID)
		m.currentView = ViewDetail
		return m, nil

	case EditNoteMsg:
		if msg.ID == "" {
			cmd := m.editorView.StartNew()
			m.currentView = ViewEditor
			return m, cmd
		}
		cmd, ok := m.editorView.StartEdit(msg.ID)
		if !ok {
			logs.Logger.Debug("edit on missing note", "id", msg.ID)
			m.currentView = ViewList
			m.listView.Refresh()
			return m, nil
		}
		m.currentView = ViewEditor
		return m, cmd

	case NoteSavedMsg:
		m.currentView = ViewList
		m.listView.Refresh()
		return m, nil

	case NoteDeletedMsg:
		m.currentView = ViewList
		m.listView.Refresh()
		return m, nil

	case tea.KeyMsg:
		// Global keys: ctrl+c always quits
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		// Dismiss help overlay on any key
		if m.showHelp {
			m.showHelp = false
			return m, nil
		}

		// The editor and the list's search input own every key; the
		// other views share a few globals.
		if m.currentView != ViewEditor && !(m.currentView == ViewList && m.listView.IsTyping()) {
			if msg.String() == "?" {
				m.showHelp = true
				return m, nil
			}
		}
	}

	// Dispatch to current child view
	var cmd tea.Cmd
	switch m.currentView {
	case ViewList:
		m.listView, cmd = m.listView.Update(msg)
		return m, cmd
	case ViewDetail:
		m.detailView, cmd = m.detailView.Update(msg)
		return m, cmd
	case ViewEditor:
		m.editorView, cmd = m.editorView.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m AppModel) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelpOverlay()
	}

	var content, hint string
	switch m.currentView {
	case ViewList:
		content = m.listView.View()
		hint = m.listView.HintText()
	case ViewDetail:
		content = m.detailView.View()
		hint = m.detailView.HintText()
	case ViewEditor:
		content = m.editorView.View()
		hint = m.editorView.HintText()
	}

	statusBar := theme.StatusBar.Width(m.width).Render(
		theme.HelpHint.Render(hint),
	)

	return shared.CenterWithBottomHints(content, statusBar, m.height)
}

func (m AppModel) renderHelpOverlay() string {
	sections := []shared.HelpSection{
		{
			Title: "Notes List",
			Binds: []shared.HelpBind{
				{Key: "j / k", Desc: "Navigate notes"},
				{Key: "enter", Desc: "Open selected note"},
				{Key: "n", Desc: "New note"},
				{Key: "d", Desc: "Delete selected note"},
				{Key: "/", Desc: "Search by title"},
				{Key: "q", Desc: "Quit"},
			},
		},
		{
			Title: "Note Detail",
			Binds: []shared.HelpBind{
				{Key: "e", Desc: "Edit note"},
				{Key: "d", Desc: "Delete note"},
				{Key: "esc", Desc: "Back to list"},
			},
		},
		{
			Title: "Editor",
			Binds: []shared.HelpBind{
				{Key: "tab", Desc: "Switch field"},
				{Key: "ctrl+s", Desc: "Save"},
				{Key: "esc", Desc: "Cancel without saving"},
			},
		},
		{
			Title: "Global",
			Binds: []shared.HelpBind{
				{Key: "?", Desc: "Show this help"},
				{Key: "ctrl+c", Desc: "Force quit"},
			},
		},
	}
	return shared.RenderHelpPopup(sections, m.width, m.height)
}
