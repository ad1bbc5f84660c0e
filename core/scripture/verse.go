// Package scripture holds the value model for parsed citations: books, verses,
// chapter and verse ranges, ordered range sets, and references.
//
// Every value is immutable once constructed. Constructors validate their
// arguments and report violations as *errors.InvalidRangeError.
package scripture

import (
	"cmp"
	"fmt"

	"github.com/FocuswithJustin/scripref/core/errors"
)

// Verse is a single verse position, optionally narrowed to a lettered part
// (e.g., 16a).
type Verse struct {
	chapter int
	number  int
	part    byte // 0 when absent, otherwise 'a'..'z'
}

// NewVerse creates a verse with no part.
func NewVerse(chapter, number int) (Verse, error) {
	if chapter < 1 {
		return Verse{}, errors.NewInvalidRange(fmt.Sprintf("%d:%d", chapter, number), "chapter must be >= 1")
	}
	if number < 1 {
		return Verse{}, errors.NewInvalidRange(fmt.Sprintf("%d:%d", chapter, number), "verse must be >= 1")
	}
	return Verse{chapter: chapter, number: number}, nil
}

// NewVersePart creates a verse with a lettered part. The part must be a single
// ASCII letter and is stored in lower case.
func NewVersePart(chapter, number int, part rune) (Verse, error) {
	v, err := NewVerse(chapter, number)
	if err != nil {
		return Verse{}, err
	}
	switch {
	case part >= 'a' && part <= 'z':
		v.part = byte(part)
	case part >= 'A' && part <= 'Z':
		v.part = byte(part - 'A' + 'a')
	default:
		return Verse{}, errors.NewInvalidRange(fmt.Sprintf("%d:%d%c", chapter, number, part), "verse part must be a letter a-z")
	}
	return v, nil
}

// Chapter returns the chapter number.
func (v Verse) Chapter() int { return v.chapter }

// Number returns the verse number within the chapter.
func (v Verse) Number() int { return v.number }

// Part returns the lower-case part letter, or "" if the verse has none.
func (v Verse) Part() string {
	if v.part == 0 {
		return ""
	}
	return string(rune(v.part))
}

// HasPart reports whether the verse carries a part letter.
func (v Verse) HasPart() bool { return v.part != 0 }

// Compare orders verses by chapter, then number, then part. A verse without a
// part sorts before any lettered part of the same verse.
func (v Verse) Compare(other Verse) int {
	if c := cmp.Compare(v.chapter, other.chapter); c != 0 {
		return c
	}
	if c := cmp.Compare(v.number, other.number); c != 0 {
		return c
	}
	return cmp.Compare(v.part, other.part)
}

// Before reports whether v sorts strictly before other.
func (v Verse) Before(other Verse) bool { return v.Compare(other) < 0 }
