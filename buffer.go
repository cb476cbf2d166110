package tangle

import "strings"

// Buffer owns the raw bytes of one source document plus its file name.
// Bytes are stable for the buffer's lifetime, and for the lifetime of
// every string derived from it via a Scanner — this is what makes the
// zero-copy Segment model in segment.go safe. A Go string is itself a
// read-only view over its backing array, so segments hold substrings of a
// Buffer's data directly; nothing here needs an explicit pointer+length
// view type.
type Buffer struct {
	File string
	data string
}

// NewBuffer wraps the given bytes (read once, at load time) as a Buffer
// named file.
func NewBuffer(file string, data []byte) *Buffer {
	return &Buffer{File: file, data: string(data)}
}

// NewScanner returns a line-at-a-time Scanner over b.
func (b *Buffer) NewScanner() *Scanner {
	return &Scanner{data: b.data}
}

// Scanner yields a Buffer's lines one at a time, in the style of
// bufio.Scanner, but each line's Text *includes* its trailing '\n'
// (bufio.Scanner's default ScanLines split strips it), and Start/End
// expose the line's byte offsets so a caller can accumulate a run of
// contiguous lines into a single zero-copy substring without concatenating
// strings line by line.
type Scanner struct {
	data  string
	pos   int
	num   int
	start int
	text  string
}

// Next advances to the next line, returning false at end of input.
func (s *Scanner) Next() bool {
	if s.pos >= len(s.data) {
		return false
	}
	s.num++
	s.start = s.pos
	if i := strings.IndexByte(s.data[s.pos:], '\n'); i < 0 {
		s.pos = len(s.data)
	} else {
		s.pos = s.start + i + 1
	}
	s.text = s.data[s.start:s.pos]
	return true
}

// Text returns the current line, including its trailing '\n' if present.
func (s *Scanner) Text() string { return s.text }

// Num returns the current line's 1-based line number.
func (s *Scanner) Num() int { return s.num }

// Start returns the byte offset of the current line's first byte.
func (s *Scanner) Start() int { return s.start }

// End returns the byte offset just past the current line's last byte.
func (s *Scanner) End() int { return s.pos }

// Slice returns the substring of the underlying buffer from byte offset
// start to end, for reassembling a run of lines accumulated via Start/End
// into one zero-copy Segment body.
func (s *Scanner) Slice(start, end int) string { return s.data[start:end] }
