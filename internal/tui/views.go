package tui

import "nota/internal/tui/messages"

// Re-export types from messages package for convenience
type ViewType = messages.ViewType

const (
	ViewList   = messages.ViewList
	ViewDetail = messages.ViewDetail
	ViewEditor = messages.ViewEditor
)

type SwitchViewMsg = messages.SwitchViewMsg
type OpenNoteMsg = messages.OpenNoteMsg
type EditNoteMsg = messages.EditNoteMsg
type NoteSavedMsg = messages.NoteSavedMsg
type NoteDeletedMsg = messages.NoteDeletedMsg
