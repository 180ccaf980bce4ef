package notes

// Note is a single text note. Notes are constructed only by the Store,
// which assigns the ID; the ID never changes afterwards.
type Note struct {
	ID      string
	Title   string
	Content string
}
