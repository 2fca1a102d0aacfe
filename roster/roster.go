// Package roster exposes the student record file as a list of students
// keyed by their position in the file.
package roster

import (
	"context"
	"fmt"

	"github.com/rollbook/rollbook/flatfile"
)

type (
	// Student is one row of the student file, first column is the name,
	// second the school.
	Student struct {
		Name   string `json:"name"`
		School string `json:"school"`
	}

	// Roster wraps the flatfile table holding the students.
	Roster struct {
		table *flatfile.Table
	}

	// NotFound reports a position with no student behind it.
	NotFound struct {
		Index int
	}
)

func (n NotFound) Error() string {
	return fmt.Sprintf("no student at position %v", n.Index)
}

// Open binds the roster to path. A nil storage uses the real filesystem.
func Open(path string, storage flatfile.Storage) *Roster {
	return &Roster{table: flatfile.NewTable(path, storage)}
}

// List returns every student in file order. Rows that lost cells come
// back with empty strings, the page layer has nothing useful to do with a
// missing marker.
func (r *Roster) List(ctx context.Context) ([]Student, error) {
	doc, err := r.table.Load(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]Student, 0, len(doc.Rows))
	for _, rec := range doc.Rows {
		out = append(out, Student{Name: rec.Key.Value, School: rec.Value.Value})
	}
	return out, nil
}

// Get returns the student at the given position in file order.
func (r *Roster) Get(ctx context.Context, index int) (Student, error) {
	students, err := r.List(ctx)
	if err != nil {
		return Student{}, err
	}
	if index < 0 || index >= len(students) {
		return Student{}, NotFound{Index: index}
	}
	return students[index], nil
}

// Add appends the student at the end of the file. The file format has no
// rewrite-in-place, updates land here as a fresh row as well.
func (r *Roster) Add(ctx context.Context, s Student) error {
	return r.table.Append(ctx, s.Name, s.School)
}
