// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package anki

import (
	"context"
	"slices"
	"unicode/utf8"
)

// KnownWords is the set of tokens found in a collection's notes. Lookups are
// exact and case-sensitive. A KnownWords is not modified after it is built.
type KnownWords struct {
	words map[string]struct{}
}

// Contains reports whether word is in the set.
func (k *KnownWords) Contains(word string) bool {
	if k == nil {
		return false
	}
	_, ok := k.words[word]
	return ok
}

// Len returns the number of distinct tokens.
func (k *KnownWords) Len() int {
	if k == nil {
		return 0
	}
	return len(k.words)
}

// Words returns the tokens in sorted order.
func (k *KnownWords) Words() []string {
	if k == nil {
		return nil
	}
	out := make([]string, 0, len(k.words))
	for w := range k.words {
		out = append(out, w)
	}
	slices.Sort(out)
	return out
}

// BuildIndex flattens every field list into one set.
func BuildIndex(fieldLists [][]string) *KnownWords {
	return buildIndex(fieldLists, IndexOptions{})
}

// IndexOptions narrows which note fields enter the index.
// The zero value keeps every field.
type IndexOptions struct {
	// SkipEmpty drops empty fields.
	SkipEmpty bool

	// MaxFieldLength drops fields longer than this many runes. Fields that
	// long are sentences or markup rather than vocabulary. Zero disables
	// the limit.
	MaxFieldLength int
}

func (o IndexOptions) keep(field string) bool {
	if o.SkipEmpty && field == "" {
		return false
	}
	if o.MaxFieldLength > 0 && utf8.RuneCountInString(field) > o.MaxFieldLength {
		return false
	}
	return true
}

// IndexNotes splits each raw notes.flds value and indexes the fields that
// pass opts.
func IndexNotes(notes []string, opts IndexOptions) *KnownWords {
	return buildIndex(SplitNotes(notes), opts)
}

func buildIndex(fieldLists [][]string, opts IndexOptions) *KnownWords {
	k := &KnownWords{words: make(map[string]struct{})}
	for _, fields := range fieldLists {
		for _, f := range fields {
			if opts.keep(f) {
				k.words[f] = struct{}{}
			}
		}
	}
	return k
}

// NoteSource supplies the raw notes.flds value of every note.
type NoteSource interface {
	Notes(ctx context.Context) ([]string, error)
}

// LoadKnownWords reads all notes from src and indexes them.
func LoadKnownWords(ctx context.Context, src NoteSource, opts IndexOptions) (*KnownWords, error) {
	notes, err := src.Notes(ctx)
	if err != nil {
		return nil, err
	}
	return IndexNotes(notes, opts), nil
}
