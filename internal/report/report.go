// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report compares parsed Duolingo words against the known-word
// index of an Anki collection and writes the words that are missing.
package report

import (
	"slices"

	"github.com/pdiddy/vocab-checker/pkg/types"
)

// Index is the known-word set a report is checked against.
type Index interface {
	Contains(word string) bool
	Len() int
}

// Report holds the records whose word is not in the index.
type Report struct {
	// Unmatched lists the missing records in input order, duplicates included.
	Unmatched []types.WordRecord `json:"unmatched" yaml:"unmatched"`

	// Count is the number of unmatched records.
	Count int `json:"count" yaml:"count"`

	// Total is the number of records checked.
	Total int `json:"total" yaml:"total"`

	// Known is the number of distinct tokens in the index.
	Known int `json:"known" yaml:"known"`
}

// Diff returns every record whose Word is not in known, in input order.
func Diff(records []types.WordRecord, known Index) Report {
	rep := Report{
		Unmatched: []types.WordRecord{},
		Total:     len(records),
		Known:     known.Len(),
	}
	for _, r := range records {
		if !known.Contains(r.Word) {
			rep.Unmatched = append(rep.Unmatched, r)
			rep.Count++
		}
	}
	return rep
}

// Filter keeps the records whose WordClass is one of partsOfSpeech.
// An empty partsOfSpeech keeps every record.
func Filter(records []types.WordRecord, partsOfSpeech []string) []types.WordRecord {
	if len(partsOfSpeech) == 0 {
		return records
	}
	var out []types.WordRecord
	for _, r := range records {
		if slices.Contains(partsOfSpeech, r.WordClass) {
			out = append(out, r)
		}
	}
	return out
}
