// Copyright 2020 YourBase Inc.
// SPDX-License-Identifier: BSD-3-Clause

/*
Package ini implements a streaming INI parser that projects sections and
their keys into a caller-supplied namespace sink.

Unlike a document-model parser, this package never builds an in-memory file:
it scans one line at a time and emits ordered bind operations against the
Sink interface. The caller decides what a "namespace" is — an in-memory map,
a shell script, a live variable table — by choosing the Sink.

Syntax

Input is Unicode text encoded in UTF-8, read line by line. Lines have no
maximum length. Whitespace at the beginning or end of a line, around section
names, and around keys and values is ignored. If the first non-whitespace
character of a line is a semicolon (';') or a hash ('#'), the whole line is
a comment. Inline comments are not supported.

A section is started by writing its name in square brackets on its own line:

	[section]
	key1 = value1
	key2 : value2

Keys and values are separated by the first equals sign ('=') or colon (':'),
whichever comes first. Values are plain strings: there is no quoting, no
escape sequences, and no type coercion. A key/value line before the first
section header is an error; this dialect has no global section.

Every section is addressed in the sink by a composite identifier derived as
root + "_" + name. The sink's IsLegalIdentifier predicate decides which
identifiers are acceptable, and it is consulted before anything for the
section reaches the sink.

Errors

Parsing stops at the first problem and reports it with its 1-based line
number. Bind operations delivered before the failing line are not undone;
the sink is populated incrementally and may hold a partial namespace after a
failed parse.
*/
package ini
