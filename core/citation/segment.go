package citation

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/FocuswithJustin/scripref/core/errors"
)

// shape is the form of a single citation segment:
//
//	segment → book chapter ':' verse '-' chapter ':' verse   (shapeCrossChapter)
//	        | book chapter ':' verseList                     (shapeVerses)
//	        | book chapterList                               (shapeChapters)
//	        | book                                           (shapeWholeBook)
type shape int

const (
	shapeWholeBook shape = iota
	shapeChapters
	shapeVerses
	shapeCrossChapter
)

// segment is a classified citation segment. Only the fields relevant to its
// shape are set.
type segment struct {
	text  string
	shape shape

	// book is the book name as written, trimmed.
	book string

	// spaced is true when whitespace separates the book from the numbers.
	spaced bool

	// chapter is the chapter preceding ':' (shapeVerses).
	chapter string

	// spec is the chapter list (shapeChapters) or verse list (shapeVerses).
	spec string

	// from and to are the chapter:verse halves (shapeCrossChapter).
	from string
	to   string
}

// bookPrefix is the book name carried from the first segment of a
// multi-segment citation to the ones that follow it.
type bookPrefix struct {
	name string
	ok   bool
}

// prefix returns the book name later segments inherit. A bare book, or a book
// written flush against its chapter ("Genesis1"), does not propagate.
func (s segment) prefix() bookPrefix {
	if s.shape == shapeWholeBook || !s.spaced {
		return bookPrefix{}
	}
	return bookPrefix{name: s.book, ok: true}
}

// apply builds the text of a continuation segment ("4:5" → "John 4:5").
// An empty continuation yields the bare book name, a whole-book reference.
func (p bookPrefix) apply(text string) (string, error) {
	text = strings.TrimSpace(text)
	if !p.ok {
		return "", errors.NewInvalidReference(text, "segment follows a citation with no chapter or verse to continue")
	}
	return p.name + " " + text, nil
}

// classify determines the shape of one segment and splits it into its book
// and numeric parts. Every split is on the first occurrence of its delimiter.
func classify(text string) (segment, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return segment{}, errors.NewInvalidReference(text, "empty segment")
	}
	seg := segment{text: s}

	switch {
	case strings.Count(s, ":") > 1 && strings.Contains(s, "-"):
		left, right, _ := strings.Cut(s, "-")
		book, from, err := splitBook(s, left)
		if err != nil {
			return segment{}, err
		}
		seg.shape = shapeCrossChapter
		seg.book, seg.from, seg.to, seg.spaced = book, from, strings.TrimSpace(right), true

	case strings.Contains(s, ":"):
		left, right, _ := strings.Cut(s, ":")
		book, chapter, err := splitBook(s, left)
		if err != nil {
			return segment{}, err
		}
		seg.shape = shapeVerses
		seg.book, seg.chapter, seg.spec, seg.spaced = book, chapter, right, true

	default:
		i := firstDigitAfterStart(s)
		if i < 0 {
			seg.shape = shapeWholeBook
			seg.book = s
			break
		}
		seg.shape = shapeChapters
		seg.book = strings.TrimSpace(s[:i])
		seg.spec = s[i:]
		r, _ := utf8.DecodeLastRuneInString(s[:i])
		seg.spaced = unicode.IsSpace(r)
	}

	if seg.book == "" {
		return segment{}, errors.NewInvalidReference(s, "missing book name")
	}
	return seg, nil
}

// splitBook applies the book rule for segments that contain ':': the book
// name is everything before the last whitespace of the text preceding the
// first delimiter, and the rest is the chapter (or chapter:verse).
func splitBook(segment, left string) (book, rest string, err error) {
	left = strings.TrimSpace(left)
	i := strings.LastIndexFunc(left, unicode.IsSpace)
	if i < 0 {
		return "", "", errors.NewInvalidReference(segment, "expected a space between book and chapter")
	}
	book = strings.TrimSpace(left[:i])
	if book == "" {
		return "", "", errors.NewInvalidReference(segment, "missing book name")
	}
	_, w := utf8.DecodeRuneInString(left[i:])
	return book, left[i+w:], nil
}

// firstDigitAfterStart returns the index of the first ASCII digit after
// position 0, or -1. A digit at position 0 is a book ordinal ("1 John").
func firstDigitAfterStart(s string) int {
	for i := 1; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			return i
		}
	}
	return -1
}
