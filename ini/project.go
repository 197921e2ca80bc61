// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package ini

import (
	"fmt"
	"io"
)

// Scope selects the lifetime class a sink should give collections created
// during one projection. The caller picks it once per Project call; the
// engine passes it through unchanged.
type Scope int

const (
	// Local scope: visible to the caller's immediate context.
	Local Scope = iota
	// Global scope: visible program-wide.
	Global
)

func (s Scope) String() string {
	if s == Global {
		return "global"
	}
	return "local"
}

// A Sink materializes projected INI data. Implementations own the actual
// storage; the engine only reports intent and never touches host state
// directly.
type Sink interface {
	// RegisterSection records that a section exists. Registering the same
	// name again is a no-op.
	RegisterSection(name string)

	// OpenSection creates or reuses the collection addressed by id, in the
	// requested scope. Reopening an id must preserve its existing bindings.
	OpenSection(id string, scope Scope) error

	// Bind assigns value to key in the collection addressed by id. A later
	// Bind for the same id and key overwrites the earlier value.
	Bind(id, key, value string) error

	// IsLegalIdentifier reports whether candidate may address a collection.
	IsLegalIdentifier(candidate string) bool
}

// Project reads INI text from r and projects it into sink. Each [section]
// header registers the section name and opens a collection addressed by
// root + "_" + name; each key/value line inside it becomes one Bind call.
// The identifier is validated with the sink's predicate before anything for
// that section reaches the sink. A section header seen again later resumes
// binding into the same identifier.
//
// The first error stops the parse. Sink calls already made are not undone:
// after a failed Project the sink holds every section and binding that
// preceded the offending line. The returned error is a *SyntaxError, an
// *IdentifierError, or a wrapped stream or sink error. Project never prints
// and never closes r.
func Project(r io.Reader, sink Sink, root string, scope Scope) error {
	sc := NewScanner(r)
	id := "" // composite identifier of the current section; empty until the first header
	for {
		ev, err := sc.Next()
		if err != nil {
			return err
		}
		switch ev.Kind {
		case EndOfStream:
			return nil
		case Malformed:
			return &SyntaxError{Line: ev.Line, Text: ev.Raw}
		case SectionHeader:
			candidate := root + "_" + ev.Name
			if !sink.IsLegalIdentifier(candidate) {
				return &IdentifierError{Line: ev.Line, Identifier: candidate}
			}
			sink.RegisterSection(ev.Name)
			if err := sink.OpenSection(candidate, scope); err != nil {
				return fmt.Errorf("parse ini: line %d: open %s: %w", ev.Line, candidate, err)
			}
			id = candidate
		case Assignment:
			if id == "" {
				return &SyntaxError{Line: ev.Line, Text: ev.Raw}
			}
			if err := sink.Bind(id, ev.Key, ev.Value); err != nil {
				return fmt.Errorf("parse ini: line %d: bind %s[%s]: %w", ev.Line, id, ev.Key, err)
			}
		}
	}
}
