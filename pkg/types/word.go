// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "fmt"

// WordRecord is one entry of a Duolingo "Words" export: the word, its part
// of speech, and a free-text description of when it was last practiced
// (e.g. "33 minutes ago").
type WordRecord struct {
	// Word is the vocabulary item itself, compared verbatim against the
	// Anki collection.
	Word string `json:"word" yaml:"word"`

	// WordClass is the part of speech as exported (e.g. "Noun", "Adjective").
	WordClass string `json:"word_class" yaml:"word_class"`

	// LastStudied is the recency text exactly as exported.
	LastStudied string `json:"last_studied" yaml:"last_studied"`
}

// String renders the record as a single report line.
func (w WordRecord) String() string {
	return fmt.Sprintf("Word: %s\tType: %s\tLast Studied: %s", w.Word, w.WordClass, w.LastStudied)
}
