// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package anki

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"os"

	_ "github.com/mattn/go-sqlite3"
)

const notesQuery = `SELECT flds FROM notes`

// Collection is a read-only handle on an Anki collection database
// (collection.anki2). It never writes to the file.
type Collection struct {
	db   *sql.DB
	path string
}

// Open opens the collection at path in read-only mode. The file must exist;
// SQLite would otherwise create an empty database.
func Open(path string) (*Collection, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("opening collection: %w", err)
	}

	dsn := "file:" + (&url.URL{Path: path}).EscapedPath() + "?mode=ro"
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening collection %s: %w", path, err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("opening collection %s: %w", path, err)
	}

	return &Collection{db: db, path: path}, nil
}

// Path returns the file the collection was opened from.
func (c *Collection) Path() string {
	return c.path
}

// Close releases the database connection.
func (c *Collection) Close() error {
	return c.db.Close()
}

// Notes returns the raw notes.flds value of every note.
func (c *Collection) Notes(ctx context.Context) ([]string, error) {
	rows, err := c.db.QueryContext(ctx, notesQuery)
	if err != nil {
		return nil, fmt.Errorf("querying notes: %w", err)
	}
	defer rows.Close()

	var notes []string
	for rows.Next() {
		var flds string
		if err := rows.Scan(&flds); err != nil {
			return nil, fmt.Errorf("scanning note: %w", err)
		}
		notes = append(notes, flds)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating notes: %w", err)
	}
	return notes, nil
}
