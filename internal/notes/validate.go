package notes

import (
	"errors"
	"unicode/utf8"
)

// Field limits, measured in characters (code points), bounds inclusive.
const (
	TitleMinLen   = 3
	TitleMaxLen   = 50
	ContentMaxLen = 120
)

var (
	errTitleTooShort  = errors.New("Title must be at least 3 characters long")
	errTitleTooLong   = errors.New("Title must be at most 50 characters long")
	errContentTooLong = errors.New("Text must be at most 120 characters long")
)

// ValidateTitle checks the title length. It returns nil when the title is
// valid, otherwise an error whose message is shown to the user as-is.
func ValidateTitle(title string) error {
	n := utf8.RuneCountInString(title)
	if n < TitleMinLen {
		return errTitleTooShort
	}
	if n > TitleMaxLen {
		return errTitleTooLong
	}
	return nil
}

// ValidateContent checks the content length. Empty content is valid.
func ValidateContent(content string) error {
	if utf8.RuneCountInString(content) > ContentMaxLen {
		return errContentTooLong
	}
	return nil
}
