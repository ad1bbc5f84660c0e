package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/antchfx/xmlquery"
	"github.com/antchfx/xpath"
	"github.com/ulikunitz/xz"

	"github.com/FocuswithJustin/scripref/core/errors"
	"github.com/FocuswithJustin/scripref/core/sqlite"
)

var (
	bookExpr  = xpath.MustCompile("//book")
	aliasExpr = xpath.MustCompile("alias")
)

// LoadXML reads a catalog document of the form
//
//	<catalog>
//	  <book id="Gen" name="Genesis" chapters="50">
//	    <alias>Gn</alias>
//	  </book>
//	</catalog>
//
// Books keep document order.
func LoadXML(r io.Reader) (*Static, error) {
	doc, err := xmlquery.Parse(r)
	if err != nil {
		return nil, &errors.ParseError{Input: "catalog", Message: "malformed XML", Err: err}
	}

	var entries []Entry
	for _, node := range xmlquery.QuerySelectorAll(doc, bookExpr) {
		e := Entry{
			ID:   strings.TrimSpace(node.SelectAttr("id")),
			Name: strings.TrimSpace(node.SelectAttr("name")),
		}
		if ch := strings.TrimSpace(node.SelectAttr("chapters")); ch != "" {
			n, err := strconv.Atoi(ch)
			if err != nil {
				return nil, &errors.ParseError{Input: ch, Message: fmt.Sprintf("chapters of book %q", e.ID), Err: err}
			}
			e.Chapters = n
		}
		for _, alias := range xmlquery.QuerySelectorAll(node, aliasExpr) {
			if text := strings.TrimSpace(alias.InnerText()); text != "" {
				e.Aliases = append(e.Aliases, text)
			}
		}
		entries = append(entries, e)
	}

	return New(entries)
}

// LoadSQLite reads a catalog from the tables
//
//	books(id TEXT PRIMARY KEY, name TEXT, ord INTEGER, chapters INTEGER)
//	book_aliases(book_id TEXT, alias TEXT)
//
// Books are ordered by ord.
func LoadSQLite(ctx context.Context, db *sql.DB) (*Static, error) {
	rows, err := db.QueryContext(ctx, `SELECT id, name, chapters FROM books ORDER BY ord, id`)
	if err != nil {
		return nil, errors.Wrap(err, "query books")
	}
	defer rows.Close()

	var entries []Entry
	position := make(map[string]int)
	for rows.Next() {
		var (
			e        Entry
			name     sql.NullString
			chapters sql.NullInt64
		)
		if err := rows.Scan(&e.ID, &name, &chapters); err != nil {
			return nil, errors.Wrap(err, "scan book")
		}
		e.Name = name.String
		e.Chapters = int(chapters.Int64)
		position[e.ID] = len(entries)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "read books")
	}

	aliasRows, err := db.QueryContext(ctx, `SELECT book_id, alias FROM book_aliases ORDER BY book_id, alias`)
	if err != nil {
		return nil, errors.Wrap(err, "query book aliases")
	}
	defer aliasRows.Close()

	for aliasRows.Next() {
		var id, alias string
		if err := aliasRows.Scan(&id, &alias); err != nil {
			return nil, errors.Wrap(err, "scan book alias")
		}
		i, ok := position[id]
		if !ok {
			return nil, &errors.NotFoundError{Resource: "book", ID: id}
		}
		entries[i].Aliases = append(entries[i].Aliases, alias)
	}
	if err := aliasRows.Err(); err != nil {
		return nil, errors.Wrap(err, "read book aliases")
	}

	return New(entries)
}

// OpenFile loads a catalog from path. Files ending in .db, .sqlite or .sqlite3
// are read as SQLite databases; anything else is read as XML. A trailing .xz
// suffix on an XML file is decompressed transparently.
func OpenFile(ctx context.Context, path string) (*Static, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".db", ".sqlite", ".sqlite3":
		if _, err := os.Stat(path); err != nil {
			return nil, &errors.NotFoundError{Resource: "catalog", ID: path, Err: err}
		}
		db, err := sqlite.OpenReadOnly(path)
		if err != nil {
			return nil, errors.Wrapf(err, "open catalog %s", path)
		}
		defer db.Close()
		return LoadSQLite(ctx, db)
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &errors.NotFoundError{Resource: "catalog", ID: path, Err: err}
		}
		return nil, errors.Wrapf(err, "open catalog %s", path)
	}
	defer f.Close()

	var r io.Reader = f
	if ext == ".xz" {
		inner := strings.ToLower(filepath.Ext(strings.TrimSuffix(path, filepath.Ext(path))))
		if inner == ".db" || inner == ".sqlite" || inner == ".sqlite3" {
			return nil, errors.NewInvalidInput(fmt.Sprintf("compressed SQLite catalog %s is not supported", path))
		}
		xr, err := xz.NewReader(f)
		if err != nil {
			return nil, &errors.ParseError{Input: path, Message: "malformed xz stream", Err: err}
		}
		r = xr
	}

	c, err := LoadXML(r)
	if err != nil {
		return nil, errors.Wrapf(err, "load catalog %s", path)
	}
	return c, nil
}
