// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

// Package shell emits projected INI data as an eval-able sequence of Bash
// declare statements: one associative array listing the sections, plus one
// associative array per section holding its key/value pairs.
package shell

import (
	"fmt"
	"io"
	"strings"

	"github.com/yourbase/inibind/ini"
)

// A Sink is an ini.Sink that writes Bash statements to an io.Writer as bind
// operations arrive. NewSink declares the root array immediately, so it
// exists after eval even when the input holds no sections or fails before
// its first section header. Output order follows input order, so a later
// binding for the same key overwrites the earlier one when the script is
// evaluated.
//
// With ini.Local scope the arrays are created with `declare -A`, which is
// local when evaluated inside a function; with ini.Global they are created
// with `declare -gA`. The root array uses the scope given to NewSink, each
// section array the scope passed to OpenSection. The first writer error is
// kept and returned from the next OpenSection or Bind call, aborting the
// parse.
type Sink struct {
	w      io.Writer
	root   string
	opened map[string]bool
	err    error
}

// NewSink returns a Sink writing statements for the root array named root,
// declaring it right away in the given scope.
func NewSink(w io.Writer, root string, scope ini.Scope) *Sink {
	s := &Sink{w: w, root: root, opened: make(map[string]bool)}
	s.declare(root, scope)
	return s
}

func (s *Sink) writef(format string, args ...interface{}) {
	if s.err != nil {
		return
	}
	_, err := fmt.Fprintf(s.w, format, args...)
	s.err = err
}

func (s *Sink) declare(id string, scope ini.Scope) {
	flags := "-A"
	if scope == ini.Global {
		flags = "-gA"
	}
	s.writef("declare %s %s\n", flags, id)
}

// RegisterSection adds a section name to the root array, bound to "true".
// Re-registering a name rewrites the same entry, which is harmless.
func (s *Sink) RegisterSection(name string) {
	s.writef("%s[%s]=true\n", s.root, Quote(name))
}

// OpenSection declares the section array in the requested scope. Reopening
// an already-declared identifier writes nothing, so earlier entries
// survive.
func (s *Sink) OpenSection(id string, scope ini.Scope) error {
	if !s.opened[id] {
		s.declare(id, scope)
		s.opened[id] = true
	}
	return s.err
}

// Bind writes one array assignment.
func (s *Sink) Bind(id, key, value string) error {
	s.writef("%s[%s]=%s\n", id, Quote(key), Quote(value))
	return s.err
}

// IsLegalIdentifier reports whether candidate is a legal Bash variable name.
func (s *Sink) IsLegalIdentifier(candidate string) bool {
	return LegalIdentifier(candidate)
}

// LegalIdentifier reports whether s matches Bash's variable-name grammar:
// a letter or underscore followed by letters, digits, or underscores.
func LegalIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '_', 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z':
		case '0' <= c && c <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// Quote returns s single-quoted for Bash, splicing in an escaped quote for
// each embedded single quote.
func Quote(s string) string {
	if s == "" {
		return "''"
	}
	sb := new(strings.Builder)
	sb.Grow(len(s) + 2)
	sb.WriteByte('\'')
	for i := 0; i < len(s); i++ {
		if s[i] == '\'' {
			sb.WriteString(`'\''`)
			continue
		}
		sb.WriteByte(s[i])
	}
	sb.WriteByte('\'')
	return sb.String()
}
