// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package anki

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- test helpers ---

// writeCollection creates a minimal collection.anki2 holding one note per
// entry of flds.
func writeCollection(t *testing.T, flds ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "collection.anki2")

	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec(`CREATE TABLE notes (
		id INTEGER PRIMARY KEY,
		mid INTEGER NOT NULL DEFAULT 0,
		flds TEXT NOT NULL,
		sfld TEXT NOT NULL DEFAULT ''
	)`)
	require.NoError(t, err)

	for _, f := range flds {
		_, err := db.Exec(`INSERT INTO notes (flds) VALUES (?)`, f)
		require.NoError(t, err)
	}
	return path
}

type stubSource struct {
	notes []string
	err   error
}

func (s stubSource) Notes(context.Context) ([]string, error) {
	return s.notes, s.err
}

// --- field splitting ---

func TestSplitFields(t *testing.T) {
	tests := []struct {
		name string
		flds string
		want []string
	}{
		{name: "three fields", flds: "a\x1fb\x1fc", want: []string{"a", "b", "c"}},
		{name: "single field", flds: "a", want: []string{"a"}},
		{name: "empty string", flds: "", want: []string{""}},
		{name: "empty segments preserved", flds: "a\x1f\x1fc\x1f", want: []string{"a", "", "c", ""}},
		{name: "tabs are not separators", flds: "a\tb\x1fc", want: []string{"a\tb", "c"}},
		{name: "html field content", flds: "der Mann<br>\x1fthe man", want: []string{"der Mann<br>", "the man"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitFields(tt.flds))
		})
	}
}

func TestSplitFieldsIdempotentOnSingleField(t *testing.T) {
	first := SplitFields("Glas")
	require.Len(t, first, 1)
	assert.Equal(t, first, SplitFields(first[0]))
}

func TestSplitNotes(t *testing.T) {
	got := SplitNotes([]string{"a\x1fb\x1fc", "d\x1fe", "a"})
	assert.Equal(t, [][]string{{"a", "b", "c"}, {"d", "e"}, {"a"}}, got)
}

// --- index ---

func TestBuildIndex(t *testing.T) {
	known := BuildIndex([][]string{{"a", "b", "c"}, {"d", "e"}, {"a"}})

	assert.Equal(t, 5, known.Len())
	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, known.Words())
	assert.True(t, known.Contains("a"))
	assert.True(t, known.Contains("e"))
	assert.False(t, known.Contains("f"))
}

func TestBuildIndexOrderIndependent(t *testing.T) {
	forward := BuildIndex([][]string{{"a", "b"}, {"c"}, {"b", "a"}})
	reverse := BuildIndex([][]string{{"c"}, {"a"}, {"b", "a"}, {"b"}})

	assert.Equal(t, forward.Words(), reverse.Words())
}

func TestBuildIndexDeduplicates(t *testing.T) {
	known := BuildIndex([][]string{{"Mann", "Mann"}, {"Mann"}})
	assert.Equal(t, 1, known.Len())
	assert.True(t, known.Contains("Mann"))
}

func TestBuildIndexExactMatch(t *testing.T) {
	known := BuildIndex([][]string{{"Mann"}})
	assert.False(t, known.Contains("mann"), "lookups are case-sensitive")
	assert.False(t, known.Contains("Mann "), "lookups do not trim")
}

func TestBuildIndexEmpty(t *testing.T) {
	known := BuildIndex(nil)
	assert.Equal(t, 0, known.Len())
	assert.False(t, known.Contains(""))
	assert.Empty(t, known.Words())
}

func TestNilKnownWords(t *testing.T) {
	var known *KnownWords
	assert.False(t, known.Contains("a"))
	assert.Equal(t, 0, known.Len())
	assert.Nil(t, known.Words())
}

func TestIndexNotes(t *testing.T) {
	notes := []string{"a\x1fb\x1fc", "d\x1fe", "a", "\x1flong field with many words"}

	tests := []struct {
		name string
		opts IndexOptions
		want []string
	}{
		{
			name: "zero options keep every field",
			want: []string{"", "a", "b", "c", "d", "e", "long field with many words"},
		},
		{
			name: "skip empty",
			opts: IndexOptions{SkipEmpty: true},
			want: []string{"a", "b", "c", "d", "e", "long field with many words"},
		},
		{
			name: "max field length",
			opts: IndexOptions{MaxFieldLength: 10},
			want: []string{"", "a", "b", "c", "d", "e"},
		},
		{
			name: "both filters",
			opts: IndexOptions{SkipEmpty: true, MaxFieldLength: 10},
			want: []string{"a", "b", "c", "d", "e"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IndexNotes(notes, tt.opts).Words())
		})
	}
}

func TestIndexOptionsCountsRunes(t *testing.T) {
	known := IndexNotes([]string{"schön\x1fschöner"}, IndexOptions{MaxFieldLength: 5})
	assert.True(t, known.Contains("schön"), "five runes, six bytes")
	assert.False(t, known.Contains("schöner"))
}

func TestLoadKnownWords(t *testing.T) {
	known, err := LoadKnownWords(context.Background(), stubSource{notes: []string{"a\x1fb", "c"}}, IndexOptions{})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, known.Words())
}

func TestLoadKnownWordsSourceError(t *testing.T) {
	boom := errors.New("boom")
	known, err := LoadKnownWords(context.Background(), stubSource{err: boom}, IndexOptions{})
	require.ErrorIs(t, err, boom)
	assert.Nil(t, known)
}

// --- collection ---

func TestCollectionNotes(t *testing.T) {
	path := writeCollection(t, "a\x1fb\x1fc", "d\x1fe", "a")

	c, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { c.Close() })

	assert.Equal(t, path, c.Path())

	notes, err := c.Notes(context.Background())
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a\x1fb\x1fc", "d\x1fe", "a"}, notes)

	known, err := LoadKnownWords(context.Background(), c, IndexOptions{})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, known.Words())
}

func TestCollectionEmpty(t *testing.T) {
	c, err := Open(writeCollection(t))
	require.NoError(t, err)
	t.Cleanup(func() { c.Close() })

	notes, err := c.Notes(context.Background())
	require.NoError(t, err)
	assert.Empty(t, notes)
}

func TestCollectionIsReadOnly(t *testing.T) {
	c, err := Open(writeCollection(t, "a"))
	require.NoError(t, err)
	t.Cleanup(func() { c.Close() })

	_, err = c.db.Exec(`INSERT INTO notes (flds) VALUES ('b')`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "readonly")
}

func TestOpenMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.anki2")

	_, err := Open(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "Open must not create the file")
}

func TestCollectionWithoutNotesTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "other.db")
	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	_, err = db.Exec(`CREATE TABLE cards (id INTEGER PRIMARY KEY)`)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	c, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { c.Close() })

	_, err = c.Notes(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "querying notes")
}

func TestCollectionNotesCancelled(t *testing.T) {
	c, err := Open(writeCollection(t, "a"))
	require.NoError(t, err)
	t.Cleanup(func() { c.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = c.Notes(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
