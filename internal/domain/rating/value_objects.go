package rating

import (
	"strings"
	"unicode/utf8"
)

const (
	MinScore      = 1
	MaxScore      = 5
	MaxNoteLength = 1000
)

type Score struct {
	value int
}

func NewScore(v int) (Score, error) {
	if v < MinScore || v > MaxScore {
		return Score{}, ErrInvalidScore
	}
	return Score{value: v}, nil
}

func (s Score) Value() int { return s.value }

// Note is optional free text; a blank note is stored as absent.
type Note struct {
	text  string
	valid bool
}

func NewNote(s *string) (Note, error) {
	if s == nil {
		return Note{}, nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return Note{}, nil
	}
	if utf8.RuneCountInString(t) > MaxNoteLength {
		return Note{}, ErrNoteTooLong
	}
	return Note{text: t, valid: true}, nil
}

func (n Note) Ptr() *string {
	if !n.valid {
		return nil
	}
	t := n.text
	return &t
}

func (n Note) String() string { return n.text }
