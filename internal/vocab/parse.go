// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package vocab parses the tab-separated word list copied from the Duolingo
// "Words" page. Each line has the form
//
//	<word>\t<part of speech>\t<last practiced>\t
//
// and anything after the third tab is ignored. Parsing is all-or-nothing:
// one malformed line rejects the whole batch.
package vocab

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/pdiddy/vocab-checker/pkg/types"
)

const (
	fieldDelimiter = '\t'
	recordFields   = 3
)

// ErrMalformedRecord matches every *MalformedRecordError via errors.Is.
var ErrMalformedRecord = errors.New("malformed record")

// MalformedRecordError reports an input line that does not hold three
// tab-terminated text fields.
type MalformedRecordError struct {
	// Line is the 1-based line number within the parsed content.
	Line int

	// Text is the offending line.
	Text string

	// Reason describes what was wrong with the line.
	Reason string
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("line %d: %s: %s: %q", e.Line, ErrMalformedRecord, e.Reason, e.Text)
}

// Is reports whether target is ErrMalformedRecord.
func (e *MalformedRecordError) Is(target error) bool {
	return target == ErrMalformedRecord
}

// ParseLine extracts a WordRecord from a single line. lineNo is used only
// for error reporting.
func ParseLine(line string, lineNo int) (types.WordRecord, error) {
	var fields [recordFields]string
	rest := line
	for i := range fields {
		idx := strings.IndexByte(rest, fieldDelimiter)
		if idx < 0 {
			return types.WordRecord{}, &MalformedRecordError{
				Line:   lineNo,
				Text:   line,
				Reason: fmt.Sprintf("expected %d tab-terminated fields, found %d", recordFields, i),
			}
		}
		field := rest[:idx]
		if !utf8.ValidString(field) {
			return types.WordRecord{}, &MalformedRecordError{
				Line:   lineNo,
				Text:   line,
				Reason: fmt.Sprintf("field %d is not valid UTF-8", i+1),
			}
		}
		fields[i] = field
		rest = rest[idx+1:]
	}

	return types.WordRecord{
		Word:        fields[0],
		WordClass:   fields[1],
		LastStudied: fields[2],
	}, nil
}

// ParseAll parses every line of content in order. LF and CRLF line endings
// are accepted and empty lines are skipped. The first malformed line aborts
// the parse and no records are returned.
func ParseAll(content string) ([]types.WordRecord, error) {
	var records []types.WordRecord
	for i, line := range strings.Split(content, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if line == "" {
			continue
		}
		rec, err := ParseLine(line, i+1)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

// Parse reads r to the end and parses it with ParseAll.
func Parse(r io.Reader) ([]types.WordRecord, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading word list: %w", err)
	}
	return ParseAll(string(data))
}
