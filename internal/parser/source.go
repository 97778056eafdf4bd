package parser

import (
	"bufio"
	"io"
)

// source is the sequential character source the productions read from. It
// supports peeking one byte without consuming it; exhaustion surfaces as
// io.EOF from peek and next. The grammar dispatches on ASCII bytes only,
// so multi-byte characters inside strings pass through untouched.
type source struct {
	br *bufio.Reader
}

func newSource(r io.Reader) *source {
	return &source{br: bufio.NewReader(r)}
}

// peek returns the next byte without consuming it.
func (s *source) peek() (byte, error) {
	b, err := s.br.Peek(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// next consumes and returns the next byte.
func (s *source) next() (byte, error) {
	return s.br.ReadByte()
}

// skipWhitespace discards a run of space, tab, newline and carriage-return
// bytes. Exhaustion is not an error here; it is reported by whichever read
// follows.
func (s *source) skipWhitespace() error {
	for {
		c, err := s.peek()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return eofError(err)
		}
		if c != ' ' && c != '\t' && c != '\n' && c != '\r' {
			return nil
		}
		s.br.ReadByte()
	}
}
