package catalog

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ulikunitz/xz"

	"github.com/FocuswithJustin/scripref/core/errors"
	"github.com/FocuswithJustin/scripref/core/sqlite"
)

func TestCanonicalLookup(t *testing.T) {
	cat := Canonical()

	tests := []struct {
		name   string
		wantID string
	}{
		{"John", "John"},
		{"john", "John"},
		{"  JOHN  ", "John"},
		{"Jn", "John"},
		{"Genesis", "Gen"},
		{"Gen.", "Gen"},
		{"1 John", "1John"},
		{"1  john", "1John"},
		{"1John", "1John"},
		{"1 Cor", "1Cor"},
		{"Song of Solomon", "Song"},
		{"song  of songs", "Song"},
		{"Psalm", "Ps"},
		{"Revelation", "Rev"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			book, err := cat.Lookup(tt.name)
			if err != nil {
				t.Fatalf("Lookup(%q) error = %v", tt.name, err)
			}
			if book.ID() != tt.wantID {
				t.Errorf("Lookup(%q).ID() = %q, want %q", tt.name, book.ID(), tt.wantID)
			}
		})
	}
}

func TestCanonicalShape(t *testing.T) {
	cat := Canonical()
	if cat.Len() != 66 {
		t.Fatalf("Len() = %d, want 66", cat.Len())
	}

	books := cat.Books()
	if books[0].ID() != "Gen" || books[0].Order() != 1 || books[0].Chapters() != 50 {
		t.Errorf("first book = %+v, want Gen order 1 with 50 chapters", books[0])
	}
	if last := books[65]; last.ID() != "Rev" || last.Order() != 66 {
		t.Errorf("last book = %+v, want Rev order 66", last)
	}
	if Canonical() != cat {
		t.Error("Canonical() returned a different instance on second call")
	}
}

func TestLookupFailures(t *testing.T) {
	cat := Canonical()

	if _, err := cat.Lookup("Hezekiah"); !errors.Is(err, errors.ErrNotFound) {
		t.Errorf("Lookup(Hezekiah) error = %v, want ErrNotFound", err)
	}
	if _, err := cat.Lookup("   "); !errors.Is(err, errors.ErrInvalidReference) {
		t.Errorf("Lookup(blank) error = %v, want ErrInvalidReference", err)
	}

	var nf *errors.NotFoundError
	_, err := cat.Lookup(" Jhon ")
	if !errors.As(err, &nf) {
		t.Fatalf("Lookup(Jhon) error = %T, want *NotFoundError", err)
	}
	if nf.ID != "Jhon" {
		t.Errorf("NotFoundError.ID = %q, want %q", nf.ID, "Jhon")
	}
}

func TestNewRejectsBadEntries(t *testing.T) {
	tests := []struct {
		name    string
		entries []Entry
		wantErr error
	}{
		{"empty", nil, errors.ErrInvalidInput},
		{"missing id", []Entry{{Name: "Genesis"}}, errors.ErrInvalidReference},
		{"negative chapters", []Entry{{ID: "Gen", Chapters: -1}}, errors.ErrInvalidRange},
		{"colon in name", []Entry{{ID: "Gen", Name: "Gen:esis"}}, errors.ErrInvalidReference},
		{"dash in alias", []Entry{{ID: "Gen", Aliases: []string{"Ge-n"}}}, errors.ErrInvalidReference},
		{"embedded digit", []Entry{{ID: "Gen", Aliases: []string{"Gen2"}}}, errors.ErrInvalidReference},
		{"only digits", []Entry{{ID: "12"}}, errors.ErrInvalidReference},
		{
			"alias shared by two books",
			[]Entry{{ID: "Jonah", Aliases: []string{"Jon"}}, {ID: "John", Aliases: []string{"jon"}}},
			errors.ErrInvalidReference,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.entries)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("New() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestNewAllowsRepeatedNamesForSameBook(t *testing.T) {
	cat, err := New([]Entry{{ID: "Job", Name: "Job", Aliases: []string{"job", "Jb", "Jb"}}})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if got := cat.Aliases("Job"); len(got) != 2 {
		t.Errorf("Aliases(Job) = %v, want 2 distinct aliases", got)
	}
	if cat.Aliases("Gen") != nil {
		t.Error("Aliases(Gen) on catalog without Gen should be nil")
	}
}

func TestValidateName(t *testing.T) {
	valid := []string{"John", "1 John", "2Cor", "Song of Solomon", "Gen.", "St. John"}
	for _, name := range valid {
		if err := ValidateName(name); err != nil {
			t.Errorf("ValidateName(%q) error = %v", name, err)
		}
	}

	invalid := []string{"", " ", "1", "John 3", "Jo;hn", "A,B", "1 .John"}
	for _, name := range invalid {
		if err := ValidateName(name); err == nil {
			t.Errorf("ValidateName(%q) succeeded, want error", name)
		}
	}
}

func TestDigest(t *testing.T) {
	a := MustNew(CanonicalEntries())
	b := MustNew(CanonicalEntries())
	if a.Digest() != b.Digest() {
		t.Errorf("Digest() differs for identical catalogs: %s vs %s", a.Digest(), b.Digest())
	}
	if len(a.Digest()) != 64 {
		t.Errorf("Digest() length = %d, want 64 hex chars", len(a.Digest()))
	}

	entries := CanonicalEntries()
	entries[0].Aliases = append(entries[0].Aliases, "Bereshit")
	c := MustNew(entries)
	if c.Digest() == a.Digest() {
		t.Error("Digest() unchanged after adding an alias")
	}
}

func TestCanonicalEntriesIsACopy(t *testing.T) {
	entries := CanonicalEntries()
	entries[0].Aliases[0] = "changed"
	if canonicalEntries[0].Aliases[0] == "changed" {
		t.Error("CanonicalEntries() shares alias slices with the built-in table")
	}
}

const sampleXML = `<?xml version="1.0" encoding="UTF-8"?>
<catalog>
  <book id="Gen" name="Genesis" chapters="50">
    <alias>Gn</alias>
    <alias>Bereshit</alias>
  </book>
  <book id="John" name="John" chapters="21">
    <alias>Jn</alias>
  </book>
</catalog>`

func TestLoadXML(t *testing.T) {
	cat, err := LoadXML(strings.NewReader(sampleXML))
	if err != nil {
		t.Fatalf("LoadXML() error = %v", err)
	}
	if cat.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", cat.Len())
	}

	book, err := cat.Lookup("bereshit")
	if err != nil {
		t.Fatalf("Lookup(bereshit) error = %v", err)
	}
	if book.ID() != "Gen" || book.Chapters() != 50 || book.Order() != 1 {
		t.Errorf("Lookup(bereshit) = %+v, want Gen/50/1", book)
	}
	if book, _ := cat.Lookup("jn"); book.Order() != 2 {
		t.Errorf("Lookup(jn).Order() = %d, want 2", book.Order())
	}
}

func TestLoadXMLErrors(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr error
	}{
		{"malformed", `<catalog><book id="Gen">`, errors.ErrParse},
		{"bad chapters", `<catalog><book id="Gen" chapters="fifty"/></catalog>`, errors.ErrParse},
		{"no books", `<catalog/>`, errors.ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadXML(strings.NewReader(tt.doc))
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("LoadXML() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestOpenFileXMLAndXZ(t *testing.T) {
	dir := t.TempDir()

	plain := filepath.Join(dir, "books.xml")
	if err := os.WriteFile(plain, []byte(sampleXML), 0o644); err != nil {
		t.Fatalf("write xml: %v", err)
	}

	var buf bytes.Buffer
	w, err := xz.NewWriter(&buf)
	if err != nil {
		t.Fatalf("xz.NewWriter() error = %v", err)
	}
	if _, err := w.Write([]byte(sampleXML)); err != nil {
		t.Fatalf("xz write: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("xz close: %v", err)
	}
	compressed := filepath.Join(dir, "books.xml.xz")
	if err := os.WriteFile(compressed, buf.Bytes(), 0o644); err != nil {
		t.Fatalf("write xz: %v", err)
	}

	a, err := OpenFile(context.Background(), plain)
	if err != nil {
		t.Fatalf("OpenFile(xml) error = %v", err)
	}
	b, err := OpenFile(context.Background(), compressed)
	if err != nil {
		t.Fatalf("OpenFile(xml.xz) error = %v", err)
	}
	if a.Digest() != b.Digest() {
		t.Errorf("digest mismatch between plain and compressed catalogs")
	}
}

func TestOpenFileErrors(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	if _, err := OpenFile(ctx, filepath.Join(dir, "missing.xml")); !errors.Is(err, errors.ErrNotFound) {
		t.Errorf("OpenFile(missing.xml) error = %v, want ErrNotFound", err)
	}
	if _, err := OpenFile(ctx, filepath.Join(dir, "missing.db")); !errors.Is(err, errors.ErrNotFound) {
		t.Errorf("OpenFile(missing.db) error = %v, want ErrNotFound", err)
	}

	bogus := filepath.Join(dir, "books.xml.xz")
	if err := os.WriteFile(bogus, []byte("not xz"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := OpenFile(ctx, bogus); !errors.Is(err, errors.ErrParse) {
		t.Errorf("OpenFile(bogus xz) error = %v, want ErrParse", err)
	}

	if _, err := OpenFile(ctx, filepath.Join(dir, "books.db.xz")); !errors.Is(err, errors.ErrNotFound) && !errors.Is(err, errors.ErrInvalidInput) {
		t.Errorf("OpenFile(books.db.xz) error = %v, want ErrNotFound or ErrInvalidInput", err)
	}
}

func writeSQLiteCatalog(t *testing.T, path string) {
	t.Helper()
	db, err := sqlite.Open(path)
	if err != nil {
		t.Fatalf("sqlite.Open() error = %v", err)
	}
	defer db.Close()

	stmts := []string{
		`CREATE TABLE books (id TEXT PRIMARY KEY, name TEXT, ord INTEGER, chapters INTEGER)`,
		`CREATE TABLE book_aliases (book_id TEXT, alias TEXT)`,
		`INSERT INTO books VALUES ('John', 'John', 2, 21)`,
		`INSERT INTO books VALUES ('Gen', 'Genesis', 1, 50)`,
		`INSERT INTO book_aliases VALUES ('Gen', 'Gn')`,
		`INSERT INTO book_aliases VALUES ('John', 'Jn')`,
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			t.Fatalf("exec %q: %v", stmt, err)
		}
	}
}

func TestLoadSQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "books.db")
	writeSQLiteCatalog(t, path)

	cat, err := OpenFile(context.Background(), path)
	if err != nil {
		t.Fatalf("OpenFile(db) error = %v", err)
	}
	books := cat.Books()
	if len(books) != 2 || books[0].ID() != "Gen" || books[1].ID() != "John" {
		t.Fatalf("Books() = %+v, want [Gen John] ordered by ord", books)
	}
	if book, err := cat.Lookup("gn"); err != nil || book.ID() != "Gen" {
		t.Errorf("Lookup(gn) = %+v, %v; want Gen", book, err)
	}
}

func TestLoadSQLiteOrphanAlias(t *testing.T) {
	path := filepath.Join(t.TempDir(), "books.db")
	writeSQLiteCatalog(t, path)

	db, err := sqlite.Open(path)
	if err != nil {
		t.Fatalf("sqlite.Open() error = %v", err)
	}
	defer db.Close()
	if _, err := db.Exec(`INSERT INTO book_aliases VALUES ('Rev', 'Apocalypse')`); err != nil {
		t.Fatalf("insert: %v", err)
	}

	if _, err := LoadSQLite(context.Background(), db); !errors.Is(err, errors.ErrNotFound) {
		t.Errorf("LoadSQLite() error = %v, want ErrNotFound", err)
	}
}

func TestWriteSQLiteRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "canon.sqlite")

	db, err := sqlite.Open(path)
	if err != nil {
		t.Fatalf("sqlite.Open() error = %v", err)
	}
	// Writing twice replaces rather than duplicates.
	for range 2 {
		if err := WriteSQLite(ctx, db, Canonical()); err != nil {
			t.Fatalf("WriteSQLite() error = %v", err)
		}
	}
	db.Close()

	cat, err := OpenFile(ctx, path)
	if err != nil {
		t.Fatalf("OpenFile() error = %v", err)
	}
	if cat.Len() != 66 {
		t.Errorf("Len() = %d, want 66", cat.Len())
	}
	if cat.Digest() != Canonical().Digest() {
		t.Errorf("Digest() = %s, want %s", cat.Digest(), Canonical().Digest())
	}
	if book, err := cat.Lookup("Song of Songs"); err != nil || book.ID() != "Song" {
		t.Errorf("Lookup(Song of Songs) = %+v, %v; want Song", book, err)
	}
}
