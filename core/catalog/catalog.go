// Package catalog resolves book names to canonical scripture.Book values.
//
// A catalog maps each book's OSIS ID, display name and aliases to the book.
// Matching is case-insensitive, ignores surrounding whitespace, treats runs of
// inner whitespace as a single space and tolerates one trailing period
// ("Gen." matches "Gen"). Catalogs are immutable after construction and safe
// for concurrent use.
package catalog

import (
	"fmt"
	"slices"
	"strings"
	"unicode"

	"github.com/FocuswithJustin/scripref/core/errors"
	"github.com/FocuswithJustin/scripref/core/scripture"
)

// Catalog resolves a book name to a Book.
type Catalog interface {
	// Lookup returns the book matching name. It fails with
	// *errors.NotFoundError when no book matches.
	Lookup(name string) (scripture.Book, error)
}

// Entry describes one book when building a catalog.
type Entry struct {
	// ID is the OSIS book ID (e.g., "Gen", "1John").
	ID string

	// Name is the display name (e.g., "Genesis", "1 John").
	Name string

	// Chapters is the number of chapters (0 if unknown).
	Chapters int

	// Aliases are additional names and abbreviations.
	Aliases []string
}

// Static is an in-memory catalog.
type Static struct {
	books   []scripture.Book
	aliases [][]string
	index   map[string]int
	digest  string
}

// New builds a catalog from entries. Book order follows entry order. Every
// ID, name and alias must be a valid book name and must not resolve to two
// different books.
func New(entries []Entry) (*Static, error) {
	if len(entries) == 0 {
		return nil, errors.NewInvalidInput("catalog has no books")
	}

	c := &Static{
		books:   make([]scripture.Book, 0, len(entries)),
		aliases: make([][]string, 0, len(entries)),
		index:   make(map[string]int),
	}

	for i, e := range entries {
		if e.ID == "" {
			return nil, errors.NewInvalidReference(e.Name, fmt.Sprintf("book %d has no id", i+1))
		}
		if e.Name == "" {
			e.Name = e.ID
		}
		if e.Chapters < 0 {
			return nil, errors.NewInvalidRange(e.ID, "chapter count must not be negative")
		}

		names := append([]string{e.ID, e.Name}, e.Aliases...)
		for _, name := range names {
			if err := ValidateName(name); err != nil {
				return nil, errors.Wrapf(err, "book %s", e.ID)
			}
			key := normalize(name)
			if prev, ok := c.index[key]; ok && prev != i {
				return nil, errors.NewInvalidReference(name,
					fmt.Sprintf("name used by both %s and %s", c.books[prev].ID(), e.ID))
			}
			c.index[key] = i
		}

		aliases := make([]string, 0, len(e.Aliases))
		for _, a := range e.Aliases {
			aliases = append(aliases, strings.TrimSpace(a))
		}
		slices.Sort(aliases)

		c.books = append(c.books, scripture.NewBook(strings.TrimSpace(e.ID), strings.TrimSpace(e.Name), i+1, e.Chapters))
		c.aliases = append(c.aliases, slices.Compact(aliases))
	}

	c.digest = digest(c.books, c.aliases)
	return c, nil
}

// MustNew is like New but panics on error. It is intended for package-level
// catalogs built from literal data.
func MustNew(entries []Entry) *Static {
	c, err := New(entries)
	if err != nil {
		panic(fmt.Sprintf("catalog: %v", err))
	}
	return c
}

// Lookup implements Catalog.
func (c *Static) Lookup(name string) (scripture.Book, error) {
	key := normalize(name)
	if key == "" {
		return scripture.Book{}, errors.NewInvalidReference(name, "empty book name")
	}
	if i, ok := c.index[key]; ok {
		return c.books[i], nil
	}
	if trimmed := strings.TrimSuffix(key, "."); trimmed != key {
		if i, ok := c.index[trimmed]; ok {
			return c.books[i], nil
		}
	}
	return scripture.Book{}, errors.NewNotFound("book", strings.TrimSpace(name))
}

// Books returns all books in catalog order.
func (c *Static) Books() []scripture.Book {
	return slices.Clone(c.books)
}

// Aliases returns the sorted aliases registered for the book with the given
// ID, or nil if there is no such book.
func (c *Static) Aliases(id string) []string {
	for i, b := range c.books {
		if b.ID() == id {
			return slices.Clone(c.aliases[i])
		}
	}
	return nil
}

// Len returns the number of books.
func (c *Static) Len() int {
	return len(c.books)
}

// Digest returns the hex BLAKE3 digest of the catalog contents.
func (c *Static) Digest() string {
	return c.digest
}

// ValidateName checks that name can be recognised by the citation grammar: a
// name may start with an ordinal number ("1 John", "2Cor") but must otherwise
// be free of digits and of the delimiters ':', '-', ',' and ';'.
func ValidateName(name string) error {
	s := strings.TrimSpace(name)
	if s == "" {
		return errors.NewInvalidReference(name, "empty book name")
	}

	rest := strings.TrimLeftFunc(s, unicode.IsDigit)
	rest = strings.TrimLeftFunc(rest, unicode.IsSpace)
	if rest == "" {
		return errors.NewInvalidReference(name, "book name has no letters")
	}
	for _, r := range rest {
		switch {
		case unicode.IsDigit(r):
			return errors.NewInvalidReference(name, "book name contains a digit after its ordinal")
		case strings.ContainsRune(":-,;", r):
			return errors.NewInvalidReference(name, fmt.Sprintf("book name contains reserved character %q", r))
		}
	}
	if !unicode.IsLetter([]rune(rest)[0]) {
		return errors.NewInvalidReference(name, "book name must start with a letter or ordinal")
	}
	return nil
}

// normalize folds case and whitespace for index keys.
func normalize(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}
