package output

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/fxamacker/cbor/v2"

	"github.com/FocuswithJustin/scripref/core/citation"
)

func parse(t *testing.T, text string) Result {
	t.Helper()
	refs, err := citation.Parse(text)
	if err != nil {
		t.Fatalf("Parse(%q) error = %v", text, err)
	}
	return NewResult(text, refs, nil)
}

func TestNewResult(t *testing.T) {
	r := parse(t, "John 3:16a-18; 4:1-5:2")

	if len(r.References) != 2 {
		t.Fatalf("len(References) = %d, want 2", len(r.References))
	}
	first := r.References[0]
	if first.Book.ID != "John" || first.Book.Name != "John" || first.Book.Order != 43 {
		t.Errorf("Book = %+v", first.Book)
	}
	if first.Extent != "verses" {
		t.Errorf("Extent = %q, want verses", first.Extent)
	}
	want := VerseRange{Start: Verse{Chapter: 3, Number: 16, Part: "a"}, End: Verse{Chapter: 3, Number: 18}}
	if len(first.Verses) != 1 || first.Verses[0] != want {
		t.Errorf("Verses = %+v, want [%+v]", first.Verses, want)
	}
	if first.Chapters != nil {
		t.Errorf("Chapters = %+v, want nil", first.Chapters)
	}

	cross := r.References[1].Verses[0]
	if cross.Start.Chapter != 4 || cross.End.Chapter != 5 {
		t.Errorf("cross-chapter range = %+v", cross)
	}
}

func TestNewResult_ChaptersAndWholeBook(t *testing.T) {
	r := parse(t, "Genesis 3,1-2")
	got := r.References[0].Chapters
	if len(got) != 2 || got[0] != (ChapterRange{1, 2}) || got[1] != (ChapterRange{3, 3}) {
		t.Errorf("Chapters = %+v", got)
	}

	r = parse(t, "Ruth")
	if ref := r.References[0]; ref.Extent != "book" || ref.Chapters != nil || ref.Verses != nil {
		t.Errorf("whole book reference = %+v", ref)
	}
}

func TestNewResult_Error(t *testing.T) {
	r := NewResult("Hezekiah 1", nil, errors.New("book not found: Hezekiah"))
	if r.Error != "book not found: Hezekiah" || r.References != nil {
		t.Errorf("Result = %+v", r)
	}
}

func TestEncoder_JSON(t *testing.T) {
	var buf bytes.Buffer
	enc, err := NewEncoder(&buf, FormatJSON)
	if err != nil {
		t.Fatal(err)
	}
	if err := enc.Encode(parse(t, "John 3:16")); err != nil {
		t.Fatal(err)
	}
	if err := enc.Encode(parse(t, "Genesis")); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2:\n%s", len(lines), buf.String())
	}
	for _, want := range []string{`"input":"John 3:16"`, `"id":"John"`, `"start":{"chapter":3,"verse":16}`} {
		if !strings.Contains(lines[0], want) {
			t.Errorf("line 1 missing %s: %s", want, lines[0])
		}
	}
	if strings.Contains(lines[0], `"part"`) {
		t.Errorf("empty part should be omitted: %s", lines[0])
	}

	var decoded Result
	if err := json.Unmarshal([]byte(lines[1]), &decoded); err != nil {
		t.Fatal(err)
	}
	if decoded.References[0].Extent != "book" {
		t.Errorf("decoded extent = %q", decoded.References[0].Extent)
	}
}

func TestEncoder_CBOR(t *testing.T) {
	in := parse(t, "Matthew 5:3,5-7")

	encode := func() []byte {
		var buf bytes.Buffer
		enc, err := NewEncoder(&buf, FormatCBOR)
		if err != nil {
			t.Fatal(err)
		}
		if err := enc.Encode(in); err != nil {
			t.Fatal(err)
		}
		return buf.Bytes()
	}

	first, second := encode(), encode()
	if !bytes.Equal(first, second) {
		t.Error("CBOR encoding is not deterministic")
	}

	var out Result
	if err := cbor.Unmarshal(first, &out); err != nil {
		t.Fatalf("cbor.Unmarshal() error = %v", err)
	}
	if out.Input != in.Input || len(out.References) != 1 || len(out.References[0].Verses) != 2 {
		t.Errorf("decoded = %+v, want %+v", out, in)
	}
	if out.References[0].Verses[1] != in.References[0].Verses[1] {
		t.Errorf("decoded verse range = %+v, want %+v", out.References[0].Verses[1], in.References[0].Verses[1])
	}
}

func TestNewEncoder_TableRejected(t *testing.T) {
	if _, err := NewEncoder(&bytes.Buffer{}, FormatTable); err == nil {
		t.Error("NewEncoder(table) expected error")
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{"json", FormatJSON, false},
		{"CBOR", FormatCBOR, false},
		{" table ", FormatTable, false},
		{"xml", "", true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.input)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParseFormat(%q) = %q, %v; want %q, wantErr %v", tt.input, got, err, tt.want, tt.wantErr)
		}
	}
}

func TestWriteBooks(t *testing.T) {
	books := []Book{
		{ID: "Gen", Name: "Genesis", Order: 1, Chapters: 50, Aliases: []string{"Ge", "Gn"}},
		{ID: "Exod", Name: "Exodus", Order: 2, Chapters: 40},
	}

	var buf bytes.Buffer
	if err := WriteBooks(&buf, FormatTable, books); err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"ID", "NAME", "Genesis", "50", "Ge, Gn", "Exodus"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("table missing %q:\n%s", want, buf.String())
		}
	}

	buf.Reset()
	if err := WriteBooks(&buf, FormatJSON, books); err != nil {
		t.Fatal(err)
	}
	var decoded []Book
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatal(err)
	}
	if len(decoded) != 2 || decoded[0].Aliases[1] != "Gn" || decoded[1].Aliases != nil {
		t.Errorf("decoded = %+v", decoded)
	}
}
