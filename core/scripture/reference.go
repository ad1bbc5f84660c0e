package scripture

import "github.com/FocuswithJustin/scripref/core/errors"

// Extent is the granularity of a reference.
type Extent int

// Extent values.
const (
	ExtentWholeBook Extent = iota
	ExtentChapters
	ExtentVerses
)

// String returns the lower-case extent name.
func (e Extent) String() string {
	switch e {
	case ExtentWholeBook:
		return "book"
	case ExtentChapters:
		return "chapters"
	case ExtentVerses:
		return "verses"
	default:
		return "unknown"
	}
}

// Reference is a resolved citation: a book plus its extent.
type Reference struct {
	book     Book
	extent   Extent
	chapters ChapterRanges
	verses   VerseRanges
}

// WholeBook creates a reference to all of book.
func WholeBook(book Book) Reference {
	return Reference{book: book, extent: ExtentWholeBook}
}

// ChapterReference creates a reference to one or more chapter ranges of book.
func ChapterReference(book Book, chapters ChapterRanges) (Reference, error) {
	if chapters.Len() == 0 {
		return Reference{}, errors.NewInvalidReference(book.Name(), "chapter reference needs at least one range")
	}
	return Reference{book: book, extent: ExtentChapters, chapters: chapters}, nil
}

// VerseReference creates a reference to one or more verse ranges of book.
func VerseReference(book Book, verses VerseRanges) (Reference, error) {
	if verses.Len() == 0 {
		return Reference{}, errors.NewInvalidReference(book.Name(), "verse reference needs at least one range")
	}
	return Reference{book: book, extent: ExtentVerses, verses: verses}, nil
}

// Book returns the referenced book.
func (r Reference) Book() Book { return r.book }

// Extent returns the reference granularity.
func (r Reference) Extent() Extent { return r.extent }

// Chapters returns the chapter ranges. Empty unless Extent is ExtentChapters.
func (r Reference) Chapters() ChapterRanges { return r.chapters }

// Verses returns the verse ranges. Empty unless Extent is ExtentVerses.
func (r Reference) Verses() VerseRanges { return r.verses }

// Equal reports whether r and other name the same book with the same extent.
func (r Reference) Equal(other Reference) bool {
	return r.book.Same(other.book) &&
		r.extent == other.extent &&
		r.chapters.Equal(other.chapters) &&
		r.verses.Equal(other.verses)
}
