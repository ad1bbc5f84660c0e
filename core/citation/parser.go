// Package citation parses human-typed scripture citations such as
// "John 3:16-18", "Genesis 1" or "Matthew 5:3,5-7; 6:9-13" into
// scripture.Reference values.
//
// A citation is one or more segments separated by ';'. Each segment is a
// whole book, a chapter list, a verse list within one chapter, or a single
// verse span crossing chapters. Segments after the first inherit the book of
// the first segment when that segment named a chapter or verse:
//
//	John 3:16; 4:5   →  John 3:16, John 4:5
//
// Parsing is a pure function of the text and the catalog, so a Parser is safe
// for concurrent use when its catalog is.
package citation

import (
	"fmt"
	"strings"

	"github.com/FocuswithJustin/scripref/core/catalog"
	"github.com/FocuswithJustin/scripref/core/errors"
	"github.com/FocuswithJustin/scripref/core/scripture"
)

// segmentSeparator separates the segments of a multi-part citation.
const segmentSeparator = ";"

// Parser resolves citations against a book catalog.
type Parser struct {
	catalog catalog.Catalog
}

// New returns a Parser that resolves book names with cat.
func New(cat catalog.Catalog) *Parser {
	return &Parser{catalog: cat}
}

// Catalog returns the catalog the parser resolves book names with.
func (p *Parser) Catalog() catalog.Catalog {
	return p.catalog
}

// Parse parses text with the built-in canonical catalog.
func Parse(text string) ([]scripture.Reference, error) {
	return New(catalog.Canonical()).Parse(text)
}

// Parse parses a citation into one Reference per segment, in input order.
// The first failure aborts the whole call and no references are returned.
//
// Failures are typed: *errors.InvalidInputError for blank input,
// *errors.InvalidReferenceError for a malformed segment,
// *errors.InvalidRangeError for a reversed or out-of-domain range,
// *errors.ParseError for a malformed number or verse, and
// *errors.NotFoundError for a book the catalog does not know.
func (p *Parser) Parse(text string) ([]scripture.Reference, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, errors.NewInvalidInput("citation is empty")
	}

	parts := strings.Split(text, segmentSeparator)
	refs := make([]scripture.Reference, 0, len(parts))

	var prefix bookPrefix
	for i, part := range parts {
		if i > 0 {
			var err error
			if part, err = prefix.apply(part); err != nil {
				return nil, segmentError(err, i, len(parts))
			}
		}

		seg, err := classify(part)
		if err != nil {
			return nil, segmentError(err, i, len(parts))
		}
		ref, err := p.resolve(seg)
		if err != nil {
			return nil, segmentError(err, i, len(parts))
		}
		refs = append(refs, ref)

		if i == 0 {
			prefix = seg.prefix()
		}
	}
	return refs, nil
}

// ParseOne parses a citation that must consist of exactly one segment.
func (p *Parser) ParseOne(text string) (scripture.Reference, error) {
	refs, err := p.Parse(text)
	if err != nil {
		return scripture.Reference{}, err
	}
	if len(refs) != 1 {
		return scripture.Reference{}, errors.NewInvalidReference(strings.TrimSpace(text), fmt.Sprintf("expected one segment, got %d", len(refs)))
	}
	return refs[0], nil
}

// resolve looks up the segment's book and parses its numeric part.
func (p *Parser) resolve(seg segment) (scripture.Reference, error) {
	book, err := p.catalog.Lookup(seg.book)
	if err != nil {
		return scripture.Reference{}, err
	}

	switch seg.shape {
	case shapeWholeBook:
		return scripture.WholeBook(book), nil

	case shapeChapters:
		chapters, err := parseChapterList(seg.spec)
		if err != nil {
			return scripture.Reference{}, err
		}
		return scripture.ChapterReference(book, chapters)

	case shapeVerses:
		chapter, err := parseChapterNumber(seg.chapter)
		if err != nil {
			return scripture.Reference{}, err
		}
		verses, err := parseVerseList(chapter, seg.spec)
		if err != nil {
			return scripture.Reference{}, err
		}
		return scripture.VerseReference(book, verses)

	case shapeCrossChapter:
		start, err := parseChapterVerse(seg.from)
		if err != nil {
			return scripture.Reference{}, err
		}
		end, err := parseChapterVerse(seg.to)
		if err != nil {
			return scripture.Reference{}, err
		}
		r, err := scripture.NewVerseRange(start, end)
		if err != nil {
			return scripture.Reference{}, err
		}
		return scripture.VerseReference(book, scripture.NewVerseRanges(r))
	}

	return scripture.Reference{}, errors.NewInvalidReference(seg.text, "unrecognized citation shape")
}

// segmentError names the failing segment when the citation has several.
// The typed error stays reachable through errors.As.
func segmentError(err error, index, total int) error {
	if total < 2 {
		return err
	}
	return errors.Wrapf(err, "segment %d", index+1)
}
