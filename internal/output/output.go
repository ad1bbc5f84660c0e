// Package output encodes parse results and catalog listings for the CLI.
package output

import (
	"github.com/FocuswithJustin/scripref/core/scripture"
)

// Result is the outcome of parsing one citation.
type Result struct {
	Input      string      `json:"input" cbor:"input"`
	References []Reference `json:"references,omitempty" cbor:"references,omitempty"`
	Error      string      `json:"error,omitempty" cbor:"error,omitempty"`
}

// Reference mirrors scripture.Reference.
type Reference struct {
	Book     Book           `json:"book" cbor:"book"`
	Extent   string         `json:"extent" cbor:"extent"`
	Chapters []ChapterRange `json:"chapters,omitempty" cbor:"chapters,omitempty"`
	Verses   []VerseRange   `json:"verses,omitempty" cbor:"verses,omitempty"`
}

// Book mirrors scripture.Book.
type Book struct {
	ID       string   `json:"id" cbor:"id"`
	Name     string   `json:"name" cbor:"name"`
	Order    int      `json:"order" cbor:"order"`
	Chapters int      `json:"chapters" cbor:"chapters"`
	Aliases  []string `json:"aliases,omitempty" cbor:"aliases,omitempty"`
}

type ChapterRange struct {
	Start int `json:"start" cbor:"start"`
	End   int `json:"end" cbor:"end"`
}

type Verse struct {
	Chapter int    `json:"chapter" cbor:"chapter"`
	Number  int    `json:"verse" cbor:"verse"`
	Part    string `json:"part,omitempty" cbor:"part,omitempty"`
}

type VerseRange struct {
	Start Verse `json:"start" cbor:"start"`
	End   Verse `json:"end" cbor:"end"`
}

// NewResult converts parsed references, or the error that prevented them.
func NewResult(input string, refs []scripture.Reference, err error) Result {
	r := Result{Input: input}
	if err != nil {
		r.Error = err.Error()
		return r
	}
	r.References = make([]Reference, 0, len(refs))
	for _, ref := range refs {
		r.References = append(r.References, NewReference(ref))
	}
	return r
}

// NewReference converts a scripture.Reference.
func NewReference(ref scripture.Reference) Reference {
	out := Reference{
		Book:   NewBook(ref.Book(), nil),
		Extent: ref.Extent().String(),
	}
	for c := range ref.Chapters().All() {
		out.Chapters = append(out.Chapters, ChapterRange{Start: c.Start(), End: c.End()})
	}
	for v := range ref.Verses().All() {
		out.Verses = append(out.Verses, VerseRange{Start: newVerse(v.Start()), End: newVerse(v.End())})
	}
	return out
}

// NewBook converts a scripture.Book with its aliases.
func NewBook(b scripture.Book, aliases []string) Book {
	return Book{
		ID:       b.ID(),
		Name:     b.Name(),
		Order:    b.Order(),
		Chapters: b.Chapters(),
		Aliases:  aliases,
	}
}

func newVerse(v scripture.Verse) Verse {
	return Verse{Chapter: v.Chapter(), Number: v.Number(), Part: v.Part()}
}
