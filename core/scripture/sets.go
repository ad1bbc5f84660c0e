package scripture

import (
	"iter"
	"slices"
)

// insertSorted returns items with v inserted at its ordered position. Items
// equal to v under compare are not duplicated. items is never modified.
func insertSorted[T any](items []T, v T, compare func(a, b T) int) []T {
	i, found := slices.BinarySearchFunc(items, v, compare)
	if found {
		return items
	}
	out := make([]T, 0, len(items)+1)
	out = append(out, items[:i]...)
	out = append(out, v)
	return append(out, items[i:]...)
}

// ChapterRanges is a set of chapter ranges kept in ascending order by
// (start, end). Structurally equal ranges collapse into one entry.
type ChapterRanges struct {
	items []ChapterRange
}

// NewChapterRanges builds a set from ranges in any order.
func NewChapterRanges(ranges ...ChapterRange) ChapterRanges {
	var s ChapterRanges
	for _, r := range ranges {
		s = s.Add(r)
	}
	return s
}

// Add returns a set that also contains r. The receiver is unchanged.
func (s ChapterRanges) Add(r ChapterRange) ChapterRanges {
	return ChapterRanges{items: insertSorted(s.items, r, ChapterRange.Compare)}
}

// Len returns the number of ranges.
func (s ChapterRanges) Len() int { return len(s.items) }

// At returns the i-th range in ascending order.
func (s ChapterRanges) At(i int) ChapterRange { return s.items[i] }

// All iterates the ranges in ascending order.
func (s ChapterRanges) All() iter.Seq[ChapterRange] { return slices.Values(s.items) }

// Slice returns a copy of the ranges in ascending order.
func (s ChapterRanges) Slice() []ChapterRange { return slices.Clone(s.items) }

// Contains reports whether any range covers chapter.
func (s ChapterRanges) Contains(chapter int) bool {
	return slices.ContainsFunc(s.items, func(r ChapterRange) bool { return r.Contains(chapter) })
}

// Equal reports set equality.
func (s ChapterRanges) Equal(other ChapterRanges) bool {
	return slices.Equal(s.items, other.items)
}

// VerseRanges is a set of verse ranges kept in ascending order by
// (start, end). Structurally equal ranges collapse into one entry.
type VerseRanges struct {
	items []VerseRange
}

// NewVerseRanges builds a set from ranges in any order.
func NewVerseRanges(ranges ...VerseRange) VerseRanges {
	var s VerseRanges
	for _, r := range ranges {
		s = s.Add(r)
	}
	return s
}

// Add returns a set that also contains r. The receiver is unchanged.
func (s VerseRanges) Add(r VerseRange) VerseRanges {
	return VerseRanges{items: insertSorted(s.items, r, VerseRange.Compare)}
}

// Len returns the number of ranges.
func (s VerseRanges) Len() int { return len(s.items) }

// At returns the i-th range in ascending order.
func (s VerseRanges) At(i int) VerseRange { return s.items[i] }

// All iterates the ranges in ascending order.
func (s VerseRanges) All() iter.Seq[VerseRange] { return slices.Values(s.items) }

// Slice returns a copy of the ranges in ascending order.
func (s VerseRanges) Slice() []VerseRange { return slices.Clone(s.items) }

// Contains reports whether any range covers v.
func (s VerseRanges) Contains(v Verse) bool {
	return slices.ContainsFunc(s.items, func(r VerseRange) bool { return r.Contains(v) })
}

// Equal reports set equality.
func (s VerseRanges) Equal(other VerseRanges) bool {
	return slices.Equal(s.items, other.items)
}
