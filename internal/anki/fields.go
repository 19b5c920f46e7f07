// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package anki reads the notes of an Anki collection and indexes the words
// they contain. Anki stores all fields of a note in a single column,
// separated by the ASCII unit separator.
package anki

import "strings"

// FieldSeparator delimits the fields of a note in the notes.flds column.
const FieldSeparator = "\x1f"

// SplitFields splits a raw notes.flds value into its fields. Empty fields
// are preserved; a value without separators yields a single field.
func SplitFields(flds string) []string {
	return strings.Split(flds, FieldSeparator)
}

// SplitNotes applies SplitFields to every raw note.
func SplitNotes(notes []string) [][]string {
	fieldLists := make([][]string, len(notes))
	for i, n := range notes {
		fieldLists[i] = SplitFields(n)
	}
	return fieldLists
}
