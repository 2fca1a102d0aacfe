// Package flatfile reads and appends two-column delimited text files with a
// header row. It is the only storage primitive of the application, both the
// student roster and the credential file sit on top of it.
package flatfile

import (
	"strings"
)

type (
	// Field is a single cell of a data row. Missing marks a cell that was
	// not present in the row at all, which is not the same thing as a cell
	// holding the empty string.
	Field struct {
		Value   string
		Missing bool
	}

	// Record is one data row. Column order is significant: Key is always
	// the first column, Value the second.
	Record struct {
		Key   Field
		Value Field
	}

	// Document is the parsed form of one file: the two header names plus
	// every data row in file order.
	Document struct {
		Columns [2]string
		Rows    []Record
	}
)

const (
	rowSeparator  = "\n"
	cellSeparator = ","
)

// Parse decodes a header-plus-rows file. A row that is too short keeps its
// absent cells flagged as Missing instead of aborting the whole document,
// one mangled row should not take every other row down with it. Cells
// beyond the second are dropped. There is no quoting, a separator inside a
// cell corrupts that row.
func Parse(content []byte) Document {
	rows := strings.Split(string(content), rowSeparator)
	var doc Document
	header := strings.Split(rows[0], cellSeparator)
	for i := range doc.Columns {
		if i < len(header) {
			doc.Columns[i] = header[i]
		}
	}
	for _, row := range rows[1:] {
		cells := strings.Split(row, cellSeparator)
		doc.Rows = append(doc.Rows, Record{
			Key:   cellAt(cells, 0),
			Value: cellAt(cells, 1),
		})
	}
	return doc
}

func cellAt(cells []string, idx int) Field {
	if idx >= len(cells) {
		return Field{Missing: true}
	}
	return Field{Value: cells[idx]}
}
