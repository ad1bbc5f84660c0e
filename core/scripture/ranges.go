package scripture

import (
	"cmp"
	"fmt"

	"github.com/FocuswithJustin/scripref/core/errors"
)

// ChapterRange is an inclusive interval of whole chapters.
type ChapterRange struct {
	start int
	end   int
}

// NewChapterRange creates the chapter interval start..end.
func NewChapterRange(start, end int) (ChapterRange, error) {
	input := fmt.Sprintf("%d-%d", start, end)
	if start < 1 {
		return ChapterRange{}, errors.NewInvalidRange(input, "chapter must be >= 1")
	}
	if end < start {
		return ChapterRange{}, errors.NewInvalidRange(input, "end chapter precedes start chapter")
	}
	return ChapterRange{start: start, end: end}, nil
}

// SingleChapter creates the range n..n.
func SingleChapter(n int) (ChapterRange, error) {
	return NewChapterRange(n, n)
}

// Start returns the first chapter.
func (r ChapterRange) Start() int { return r.start }

// End returns the last chapter.
func (r ChapterRange) End() int { return r.end }

// IsSingle reports whether the range covers exactly one chapter.
func (r ChapterRange) IsSingle() bool { return r.start == r.end }

// Contains reports whether chapter lies within the range.
func (r ChapterRange) Contains(chapter int) bool {
	return chapter >= r.start && chapter <= r.end
}

// Compare orders chapter ranges by start, then end.
func (r ChapterRange) Compare(other ChapterRange) int {
	if c := cmp.Compare(r.start, other.start); c != 0 {
		return c
	}
	return cmp.Compare(r.end, other.end)
}

// VerseRange is an inclusive interval of verses. It may cross chapters.
type VerseRange struct {
	start Verse
	end   Verse
}

// NewVerseRange creates the verse interval start..end.
func NewVerseRange(start, end Verse) (VerseRange, error) {
	if start.chapter < 1 || end.chapter < 1 {
		return VerseRange{}, errors.NewInvalidRange("", "verse range bounds must be constructed verses")
	}
	if end.Before(start) {
		return VerseRange{}, errors.NewInvalidRange(
			fmt.Sprintf("%d:%d%s-%d:%d%s", start.chapter, start.number, start.Part(), end.chapter, end.number, end.Part()),
			"end verse precedes start verse")
	}
	return VerseRange{start: start, end: end}, nil
}

// SingleVerse creates the range v..v.
func SingleVerse(v Verse) VerseRange {
	return VerseRange{start: v, end: v}
}

// Start returns the first verse.
func (r VerseRange) Start() Verse { return r.start }

// End returns the last verse.
func (r VerseRange) End() Verse { return r.end }

// IsSingle reports whether the range covers exactly one verse.
func (r VerseRange) IsSingle() bool { return r.start == r.end }

// Contains reports whether v lies within the range.
func (r VerseRange) Contains(v Verse) bool {
	return !v.Before(r.start) && !r.end.Before(v)
}

// Compare orders verse ranges by start verse, then end verse.
func (r VerseRange) Compare(other VerseRange) int {
	if c := r.start.Compare(other.start); c != 0 {
		return c
	}
	return r.end.Compare(other.end)
}
