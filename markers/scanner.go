package markers

import (
	"bufio"
	"io"
	"strings"
	"unicode"

	"github.com/pkg/errors"

	"github.com/vast-data/sane-optgen/core"
)

// Line is one non-empty line inside a descriptor block.
type Line struct {
	// Num is the 1-based line number in the input stream.
	Num int
	// Text is the whole line with surrounding whitespace removed.
	Text string
	// Keyword is the first word, lowercased.
	Keyword string
	// Value is everything after the keyword, trimmed.
	Value string
}

// IsVerbatim reports whether the value is a raw C expression.
func (l Line) IsVerbatim() bool {
	return core.IsVerbatim(l.Value)
}

// Scanner yields the keyword lines of every descriptor block in a stream.
// Input lines may be of any length.
type Scanner struct {
	rd      *bufio.Reader
	begin   string
	num     int
	inBlock bool
	blocks  int
	done    bool
}

// NewScanner returns a Scanner that treats lines starting with begin as block openers.
func NewScanner(r io.Reader, begin string) *Scanner {
	return &Scanner{rd: bufio.NewReader(r), begin: begin}
}

// Blocks returns how many opening markers have been seen so far.
func (s *Scanner) Blocks() int {
	return s.blocks
}

// Next returns the next keyword line. ok is false once the stream is exhausted.
// An `end` line is returned to the caller and closes the current block.
func (s *Scanner) Next() (line Line, ok bool, err error) {
	for !s.done {
		raw, readErr := s.rd.ReadString('\n')
		if readErr != nil {
			if readErr != io.EOF {
				return Line{}, false, errors.Wrapf(readErr, "read descriptor input at line %d", s.num+1)
			}
			s.done = true
			if raw == "" {
				break
			}
		}
		s.num++
		text := strings.TrimSpace(raw)

		if !s.inBlock {
			if strings.HasPrefix(text, s.begin) {
				s.inBlock = true
				s.blocks++
			}
			continue
		}
		if text == "" {
			continue
		}

		line = splitLine(s.num, text)
		if line.Keyword == core.EndKeyword {
			s.inBlock = false
		}
		return line, true, nil
	}
	return Line{}, false, nil
}

func splitLine(num int, text string) Line {
	keyword, value := cutSpace(text)
	return Line{
		Num:     num,
		Text:    text,
		Keyword: strings.ToLower(keyword),
		Value:   value,
	}
}

// cutSpace splits s at its first whitespace run.
func cutSpace(s string) (head, tail string) {
	i := strings.IndexFunc(s, unicode.IsSpace)
	if i < 0 {
		return s, ""
	}
	return s[:i], strings.TrimSpace(s[i:])
}
