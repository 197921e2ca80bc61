// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package ini

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// A Kind classifies one logical line of INI input.
type Kind int

const (
	// Blank is an empty line, a whitespace-only line, or a comment.
	Blank Kind = iota
	// SectionHeader is a [name] line. The trimmed bracket interior may be
	// empty; legality is checked downstream, not here.
	SectionHeader
	// Assignment is a key = value or key : value line.
	Assignment
	// Malformed is any other non-blank line.
	Malformed
	// EndOfStream is reported once, after the last line.
	EndOfStream
)

// A LineEvent is one classified line of input. Line is 1-based. Raw holds
// the line as read, without its terminator.
type LineEvent struct {
	Kind  Kind
	Line  int
	Name  string // section name, for SectionHeader
	Key   string // for Assignment
	Value string // for Assignment
	Raw   string
}

// A Scanner reads INI input one logical line at a time, growing its buffer
// as needed; there is no maximum line length. The Scanner does not close the
// underlying reader.
type Scanner struct {
	r    *bufio.Reader
	line int
	done bool
}

// NewScanner returns a Scanner reading from r.
func NewScanner(r io.Reader) *Scanner {
	return &Scanner{r: bufio.NewReader(r)}
}

// Next returns the next line event. Once Next has reported EndOfStream,
// further calls keep reporting it. A non-nil error means the underlying
// stream failed to read; syntax problems are not errors at this layer, they
// are Malformed events.
func (s *Scanner) Next() (LineEvent, error) {
	if s.done {
		return LineEvent{Kind: EndOfStream, Line: s.line}, nil
	}
	raw, err := s.r.ReadString('\n')
	if err != nil && err != io.EOF {
		return LineEvent{}, fmt.Errorf("read ini input: line %d: %w", s.line+1, err)
	}
	if err == io.EOF {
		s.done = true
		if raw == "" {
			return LineEvent{Kind: EndOfStream, Line: s.line}, nil
		}
	}
	s.line++
	raw = strings.TrimSuffix(raw, "\n")
	raw = strings.TrimSuffix(raw, "\r")
	return classify(raw, s.line), nil
}

func classify(raw string, lineno int) LineEvent {
	line := strings.TrimSpace(raw)
	if line == "" || line[0] == ';' || line[0] == '#' {
		return LineEvent{Kind: Blank, Line: lineno, Raw: raw}
	}
	if line[0] == '[' && line[len(line)-1] == ']' {
		name := strings.TrimSpace(line[1 : len(line)-1])
		return LineEvent{Kind: SectionHeader, Line: lineno, Name: name, Raw: raw}
	}
	// Split on the first '=' or ':', whichever appears first.
	if i := strings.IndexAny(line, "=:"); i >= 0 {
		return LineEvent{
			Kind:  Assignment,
			Line:  lineno,
			Key:   strings.TrimSpace(line[:i]),
			Value: strings.TrimSpace(line[i+1:]),
			Raw:   raw,
		}
	}
	return LineEvent{Kind: Malformed, Line: lineno, Raw: raw}
}
