package catalog

import (
	"context"
	"database/sql"

	"github.com/FocuswithJustin/scripref/core/errors"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS books (
	id       TEXT PRIMARY KEY,
	name     TEXT NOT NULL,
	ord      INTEGER NOT NULL,
	chapters INTEGER NOT NULL DEFAULT 0
);
CREATE TABLE IF NOT EXISTS book_aliases (
	book_id TEXT NOT NULL REFERENCES books(id),
	alias   TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS book_aliases_book_id ON book_aliases(book_id);
`

// WriteSQLite stores c in db using the schema read by LoadSQLite. Existing
// rows are replaced. The write is a single transaction.
func WriteSQLite(ctx context.Context, db *sql.DB, c *Static) (err error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "begin transaction")
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, sqliteSchema); err != nil {
		return errors.Wrap(err, "create schema")
	}
	for _, stmt := range []string{`DELETE FROM book_aliases`, `DELETE FROM books`} {
		if _, err = tx.ExecContext(ctx, stmt); err != nil {
			return errors.Wrap(err, "clear catalog")
		}
	}

	insertBook, err := tx.PrepareContext(ctx, `INSERT INTO books (id, name, ord, chapters) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return errors.Wrap(err, "prepare book insert")
	}
	defer insertBook.Close()

	insertAlias, err := tx.PrepareContext(ctx, `INSERT INTO book_aliases (book_id, alias) VALUES (?, ?)`)
	if err != nil {
		return errors.Wrap(err, "prepare alias insert")
	}
	defer insertAlias.Close()

	for i, b := range c.books {
		if _, err = insertBook.ExecContext(ctx, b.ID(), b.Name(), b.Order(), b.Chapters()); err != nil {
			return errors.Wrapf(err, "insert book %s", b.ID())
		}
		for _, alias := range c.aliases[i] {
			if _, err = insertAlias.ExecContext(ctx, b.ID(), alias); err != nil {
				return errors.Wrapf(err, "insert alias %s of %s", alias, b.ID())
			}
		}
	}

	return tx.Commit()
}
