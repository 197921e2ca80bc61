// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

// Package namespace provides an in-memory materialization of projected INI
// data, for hosts that consume the namespace programmatically and for tests.
package namespace

import (
	"fmt"

	"github.com/yourbase/inibind/ini"
)

// A Namespace is an ini.Sink holding a table of contents of section names
// and one string table per composite identifier. The zero value is not
// usable; call New.
//
// Legal, if non-nil, is the identifier legality predicate reported to the
// engine. If nil, any non-empty identifier is accepted: legality is a host
// policy, and the in-memory tables have no naming rules of their own.
type Namespace struct {
	Legal func(candidate string) bool

	names  []string // table of contents, in first-seen order
	seen   map[string]struct{}
	tables map[string]map[string]string
	scopes map[string]ini.Scope
}

// New returns an empty Namespace.
func New() *Namespace {
	return &Namespace{
		seen:   make(map[string]struct{}),
		tables: make(map[string]map[string]string),
		scopes: make(map[string]ini.Scope),
	}
}

// RegisterSection records that a section exists. Registering a name again
// is a no-op; the table of contents has set semantics.
func (ns *Namespace) RegisterSection(name string) {
	if _, ok := ns.seen[name]; ok {
		return
	}
	ns.seen[name] = struct{}{}
	ns.names = append(ns.names, name)
}

// OpenSection creates the table addressed by id if it does not exist yet
// and records the requested scope. Reopening preserves existing bindings.
func (ns *Namespace) OpenSection(id string, scope ini.Scope) error {
	if _, ok := ns.tables[id]; !ok {
		ns.tables[id] = make(map[string]string)
	}
	ns.scopes[id] = scope
	return nil
}

// Bind assigns value to key in the table addressed by id, overwriting any
// earlier value. Binding into an identifier that was never opened is an
// error.
func (ns *Namespace) Bind(id, key, value string) error {
	t, ok := ns.tables[id]
	if !ok {
		return fmt.Errorf("namespace: %s not opened", id)
	}
	t[key] = value
	return nil
}

// IsLegalIdentifier reports whether candidate may address a table.
func (ns *Namespace) IsLegalIdentifier(candidate string) bool {
	if ns.Legal != nil {
		return ns.Legal(candidate)
	}
	return candidate != ""
}

// Sections returns the table of contents in first-seen order.
func (ns *Namespace) Sections() []string {
	out := make([]string, len(ns.names))
	copy(out, ns.names)
	return out
}

// Has reports whether a section name is in the table of contents.
func (ns *Namespace) Has(name string) bool {
	_, ok := ns.seen[name]
	return ok
}

// Table returns a copy of the string table addressed by id, or nil if the
// identifier was never opened.
func (ns *Namespace) Table(id string) map[string]string {
	t, ok := ns.tables[id]
	if !ok {
		return nil
	}
	out := make(map[string]string, len(t))
	for k, v := range t {
		out[k] = v
	}
	return out
}

// Get returns the value bound to key in the table addressed by id, or the
// empty string if there is none.
func (ns *Namespace) Get(id, key string) string {
	return ns.tables[id][key]
}

// Scope returns the scope the table addressed by id was last opened with.
// The second result reports whether the identifier was ever opened.
func (ns *Namespace) Scope(id string) (ini.Scope, bool) {
	s, ok := ns.scopes[id]
	return s, ok
}
