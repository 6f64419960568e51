// Copyright 2026 Wes Koerber.
// SPDX-License-Identifier: BSD-3-Clause

/*
Package inez loads INI-format configuration text into a queryable, mutable
in-memory document.

A Session holds the raw source bytes, either borrowed from the caller or
copied into session-owned memory, and Session.Parse scans them into a
Document of (section, key, value) entries. Entries produced by parsing are
sub-slices of the loaded buffer, so parsing a borrowed buffer performs no
copies; the tradeoff is that the buffer must stay alive and unmodified for
as long as any derived Document is in use.

# Syntax

The accepted dialect is deliberately strict and small. Lines are separated
by '\n' and empty lines are skipped; no other line-level normalization is
performed, so a stray '\r' or tab is part of the data.

A line whose first byte is ';' is a comment and is ignored in full,
regardless of what follows. '#' is not a comment marker, and there are no
inline comments.

A line whose first byte is '[' opens a section and must end with ']' with
nothing after it:

	[section]

The text strictly between the brackets becomes the section name. It is
stored as written; leading and trailing ASCII spaces are removed only when
names are compared.

Every other line is a property declaration and must appear after at least
one section header:

	key=value

The line is split on its first '='; any further '=' bytes belong to the
value. A declaration with no '=', a section header with no closing bracket,
or a declaration before any section header fails the whole parse with a
*SyntaxError. No partial document is returned.

# Repeated names

Multiple entries in the same section may have the same key. Parse keeps
them all in source order, and lookups resolve to the first match. Put, by
contrast, rejects duplicates with ErrKeyExists; use PutOrUpdate to
overwrite an existing value.
*/
package inez
