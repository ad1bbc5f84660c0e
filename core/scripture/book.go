package scripture

// Book is a catalog entry. Two books are the same book when their IDs match.
// Books are normally obtained from a catalog lookup rather than built by hand.
type Book struct {
	id       string
	name     string
	order    int
	chapters int
}

// NewBook creates a book entry. id is the OSIS book ID (e.g., "Gen", "1John"),
// name the display name, order the 1-indexed canonical position and chapters
// the chapter count (0 when unknown).
func NewBook(id, name string, order, chapters int) Book {
	return Book{
		id:       id,
		name:     name,
		order:    order,
		chapters: chapters,
	}
}

// ID returns the OSIS book ID.
func (b Book) ID() string { return b.id }

// Name returns the display name.
func (b Book) Name() string { return b.name }

// Order returns the 1-indexed canonical position.
func (b Book) Order() int { return b.order }

// Chapters returns the number of chapters, or 0 if the catalog did not say.
func (b Book) Chapters() int { return b.chapters }

// IsZero reports whether b is the zero Book.
func (b Book) IsZero() bool { return b.id == "" }

// Same reports whether b and other identify the same book.
func (b Book) Same(other Book) bool { return b.id == other.id }
