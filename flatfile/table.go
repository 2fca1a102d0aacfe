package flatfile

import (
	"context"
)

type (
	// Table binds the parse/append primitives to one file path.
	Table struct {
		path    string
		storage Storage
	}
)

// NewTable binds a table to path. A nil storage binds to the real
// filesystem.
func NewTable(path string, storage Storage) *Table {
	if storage == nil {
		storage = OSStorage()
	}
	return &Table{path: path, storage: storage}
}

// Path returns the file the table is bound to.
func (t *Table) Path() string {
	return t.path
}

// Load reads and parses the whole file. There is no caching, every call
// observes the file as it is right now. A file that cannot be read is an
// UnavailableStore error, never an empty document.
func (t *Table) Load(ctx context.Context) (Document, error) {
	buf, err := t.storage.ReadFile(ctx, t.path)
	if err != nil {
		return Document{}, UnavailableStore{Path: t.path, cause: err}
	}
	return Parse(buf), nil
}

// Append writes one record at the end of the file, creating the file when
// absent. The header is never written here, a freshly created file stays
// headerless until provisioned out-of-band. Concurrent appends are not
// serialized against readers, a reader may observe a partially written row
// if the OS append is not atomic.
func (t *Table) Append(ctx context.Context, key, value string) error {
	line := rowSeparator + key + cellSeparator + value
	if err := t.storage.AppendLine(ctx, t.path, line); err != nil {
		return UnavailableStore{Path: t.path, cause: err}
	}
	return nil
}
