package state

import "strings"

// DefaultTerminalLimit bounds the retained console text.
const DefaultTerminalLimit = 64 * 1024

// TerminalStore holds the console text shown by the terminal view.
type TerminalStore interface {
	Header() string
	SetHeader(string)
	Append(chunk string)
	Text() string
	Len() int
	Reset()
}

type terminalStore struct {
	header string
	buf    strings.Builder
	limit  int
}

// NewTerminalStore returns a store that keeps at most limit bytes, dropping
// the oldest text first. A non-positive limit selects DefaultTerminalLimit.
func NewTerminalStore(limit int) TerminalStore {
	if limit <= 0 {
		limit = DefaultTerminalLimit
	}
	return &terminalStore{limit: limit}
}

func (s *terminalStore) Header() string {
	return s.header
}

func (s *terminalStore) SetHeader(header string) {
	s.header = header
}

func (s *terminalStore) Append(chunk string) {
	if chunk == "" {
		return
	}
	s.buf.WriteString(chunk)
	if s.buf.Len() <= s.limit {
		return
	}
	text := s.buf.String()
	text = text[len(text)-s.limit:]
	// resume at the next line so the view never starts mid-line
	if i := strings.IndexByte(text, '\n'); i >= 0 && i < len(text)-1 {
		text = text[i+1:]
	}
	s.buf.Reset()
	s.buf.WriteString(text)
}

func (s *terminalStore) Text() string {
	return s.buf.String()
}

func (s *terminalStore) Len() int {
	return s.buf.Len()
}

func (s *terminalStore) Reset() {
	s.header = ""
	s.buf.Reset()
}
