// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

package ini

import "fmt"

// A SyntaxError reports a line that matched no recognized line shape, or an
// assignment that appeared before any section header.
type SyntaxError struct {
	Line int
	Text string // the offending line, without its terminator
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("parse ini: line %d: syntax error in %q", e.Line, e.Text)
}

// An IdentifierError reports a derived section identifier that the sink's
// legality predicate rejected.
type IdentifierError struct {
	Line       int
	Identifier string
}

func (e *IdentifierError) Error() string {
	return fmt.Sprintf("parse ini: line %d: invalid identifier %q", e.Line, e.Identifier)
}
