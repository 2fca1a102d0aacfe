package flatfile

import (
	"reflect"
	"testing"
)

func TestParse(t *testing.T) {
	doc := Parse([]byte("username,password\nalice,secret\nbob,hunter2"))
	expected := Document{
		Columns: [2]string{"username", "password"},
		Rows: []Record{
			{Key: Field{Value: "alice"}, Value: Field{Value: "secret"}},
			{Key: Field{Value: "bob"}, Value: Field{Value: "hunter2"}},
		},
	}
	if !reflect.DeepEqual(expected, doc) {
		t.Fatalf("Expecting: %v\nGot: %v", expected, doc)
	}
}

func TestParseMalformedRow(t *testing.T) {
	doc := Parse([]byte("username,password\nalice,secret\ncharlie\nbob,hunter2"))
	if len(doc.Rows) != 3 {
		t.Fatalf("expecting 3 rows, got %v", len(doc.Rows))
	}
	charlie := doc.Rows[1]
	if charlie.Key.Value != "charlie" || charlie.Key.Missing {
		t.Fatalf("short row should keep its first cell, got %v", charlie.Key)
	}
	if !charlie.Value.Missing {
		t.Fatal("short row should flag the absent cell as Missing, not as empty")
	}
	if doc.Rows[2].Value.Value != "hunter2" {
		t.Fatal("rows after a short one should parse as usual")
	}
}

func TestParseMissingIsNotEmpty(t *testing.T) {
	doc := Parse([]byte("username,password\nalice,"))
	if doc.Rows[0].Value.Missing {
		t.Fatal("an empty trailing cell is present, not Missing")
	}
	if doc.Rows[0].Value.Value != "" {
		t.Fatalf("expecting empty cell, got %q", doc.Rows[0].Value.Value)
	}
}

func TestParseExtraCellsIgnored(t *testing.T) {
	doc := Parse([]byte("username,password\nalice,se,cret"))
	if doc.Rows[0].Value.Value != "se" {
		t.Fatalf("cells beyond the second should be dropped, got %q", doc.Rows[0].Value.Value)
	}
}

func TestParseIdempotent(t *testing.T) {
	content := []byte("username,password\nalice,secret\ncharlie\n,x")
	if !reflect.DeepEqual(Parse(content), Parse(content)) {
		t.Fatal("parsing the same content twice should yield identical documents")
	}
}

func TestParseHeaderOnly(t *testing.T) {
	doc := Parse([]byte("username,password"))
	if len(doc.Rows) != 0 {
		t.Fatalf("expecting no rows, got %v", len(doc.Rows))
	}
	if doc.Columns != [2]string{"username", "password"} {
		t.Fatalf("unexpected header: %v", doc.Columns)
	}
}
