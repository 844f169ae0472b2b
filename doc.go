// Package desktopentry implements a pure Go parser and serializer for
// freedesktop Desktop Entry style files: bracketed group headers,
// `key[locale]=value;value;...` lines, `#` comments and blank lines.
// The parsed document keeps every comment and blank-line run verbatim,
// so a file that is read, edited and written back only changes where its
// content actually changed.
//
// The reference for the grammar is
// https://specifications.freedesktop.org/desktop-entry-spec/1.1/
// (syntax only; this package does not validate files against the
// specification's schema).
//
// # Usage
//
// Everything is a Document under the hood. Parse one from bytes or a
// string, navigate it with Find/Require, edit entries in place and
// render it back with String:
//
//	doc, err := desktopentry.ParseString(input)
//	if err != nil { ... }
//	group, err := doc.Require("Desktop Entry")
//	if err != nil { ... }
//	if kv, ok := group.Find("Name"); ok {
//		fmt.Println(kv.Value())
//	}
//	out := doc.String()
//
// Lookups always return the first match in document order; duplicate
// groups and duplicate keys are legal and fully preserved.
//
// # Localized entries
//
// Keys may carry a `lang_COUNTRY.ENCODING@MODIFIER` qualifier. Locale
// lookups take a LocaleMatcher, a reference locale plus a significance
// toggle per optional sub-tag (language is always significant):
//
//	m := desktopentry.LocaleMatcher{
//		Locale:  desktopentry.ParseLocale("de_DE"),
//		Country: true,
//	}
//	kv, ok := group.FindLocale("Name", m)
//
// An unlocalized entry matches any locale query, mirroring the desktop
// entry fallback to the plain key.
//
// # Trash info files
//
// The TrashInfo type maps the well-known `[Trash Info]` group onto a
// path and a deletion timestamp:
//
//	ti, err := desktopentry.LoadTrashInfo(fn)
//	if err != nil { ... }
//	ti.Path = "/new/location"
//	if err := ti.Write(fn); err != nil { ... }
//
// Rewriting only touches the first Path and DeletionDate entries; all
// other content of the file survives byte for byte.
//
// # Error handling
//
// Every fallible operation returns a typed error; nothing is logged,
// retried or swallowed. Use errors.As to get at the payload:
//
//	var perr *desktopentry.ParseError
//	if errors.As(err, &perr) {
//		fmt.Printf("bad input at byte %d\n", perr.Offset)
//	}
//
// Find returns (value, ok) and never fails on a missing key; Require
// returns a *NotFoundError naming the key.
//
// # Known limitations
//
// * Values are stored decoded; escape sequences (`\n \r \s \t \\ \;`)
// are not re-applied on output, so values containing those characters,
// or leading/trailing whitespace, do not round-trip exactly.
// * A single trailing newline after the last content entry is consumed
// by the value grammar and not re-emitted.
// * `\r\n` line endings after a group header or a value list are
// accepted and re-rendered as `\n`. Blank runs between entries are
// still preserved verbatim, carriage returns included.
// * Whitespace between a group header's `]` and its line break is
// captured as a blank run and re-renders below the header, on a line of
// its own.
// * `#comment` without a space after the `#` re-renders as `# comment`;
// any further spacing is part of the body and preserved.
// * Parsing does not recover: the first grammar violation fails the
// whole parse.
package desktopentry
