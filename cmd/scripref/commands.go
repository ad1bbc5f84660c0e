package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"iter"
	"os"
	"strings"

	"github.com/FocuswithJustin/scripref/core/catalog"
	"github.com/FocuswithJustin/scripref/core/citation"
	"github.com/FocuswithJustin/scripref/core/errors"
	"github.com/FocuswithJustin/scripref/core/sqlite"
	"github.com/FocuswithJustin/scripref/internal/logging"
	"github.com/FocuswithJustin/scripref/internal/output"
	"github.com/FocuswithJustin/scripref/internal/validation"
)

// runtime carries per-invocation state into command Run methods.
type runtime struct {
	ctx    context.Context
	cli    *CLI
	stdin  io.Reader
	stdout io.Writer
}

// catalog loads the configured catalog, or the built-in one.
func (r *runtime) catalog() (*catalog.Static, error) {
	var (
		cat    *catalog.Static
		source = "builtin"
	)
	if r.cli.Catalog == "" {
		cat = catalog.Canonical()
	} else {
		kind, err := validation.CheckCatalogFile(r.cli.Catalog)
		if err != nil && !os.IsNotExist(err) {
			return nil, errors.Wrapf(err, "catalog %s", r.cli.Catalog)
		}
		logging.DebugContext(r.ctx, "catalog_detected", "path", r.cli.Catalog, "type", string(kind))
		if cat, err = catalog.OpenFile(r.ctx, r.cli.Catalog); err != nil {
			return nil, err
		}
		source = r.cli.Catalog
	}
	logging.CatalogLoaded(r.ctx, source, cat.Len(), cat.Digest())
	return cat, nil
}

// ParseCmd parses citations.
type ParseCmd struct {
	Citations []string `arg:"" optional:"" help:"Citations to parse, e.g. \"John 3:16-18\""`
	Stdin     bool     `help:"Also read newline-delimited citations from standard input"`
	Output    string   `short:"o" help:"Output format" enum:"json,cbor" default:"json"`
	KeepGoing bool     `name:"keep-going" short:"k" help:"Report failed citations in the output and continue"`
}

func (c *ParseCmd) Run(r *runtime) error {
	if len(c.Citations) == 0 && !c.Stdin {
		return errors.NewInvalidInput("no citations given")
	}

	cat, err := r.catalog()
	if err != nil {
		return err
	}
	parser := citation.NewCached(citation.New(cat), r.cli.CacheSize)

	format, err := output.ParseFormat(c.Output)
	if err != nil {
		return err
	}
	enc, err := output.NewEncoder(r.stdout, format)
	if err != nil {
		return err
	}

	var total, failed int
	for text, err := range c.inputs(r.stdin) {
		if err != nil {
			return errors.Wrap(err, "read standard input")
		}
		total++

		refs, err := parser.Parse(text)
		if err != nil {
			logging.CitationFailed(r.ctx, text, err)
			if !c.KeepGoing {
				return err
			}
			failed++
			if err := enc.Encode(output.NewResult(text, nil, err)); err != nil {
				return err
			}
			continue
		}

		logging.CitationParsed(r.ctx, text, len(refs))
		if err := enc.Encode(output.NewResult(text, refs, nil)); err != nil {
			return err
		}
	}

	stats := parser.Stats()
	logging.DebugContext(r.ctx, "parse_cache", "hits", stats.Hits, "misses", stats.Misses, "size", stats.Size)

	if failed > 0 {
		logging.WarnContext(r.ctx, "citations_failed", "failed", failed, "total", total)
		return fmt.Errorf("%d of %d citations failed", failed, total)
	}
	return nil
}

// inputs yields the citation arguments, then non-blank stdin lines when
// --stdin is set.
func (c *ParseCmd) inputs(stdin io.Reader) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		for _, text := range c.Citations {
			if !yield(text, nil) {
				return
			}
		}
		if !c.Stdin {
			return
		}
		sc := bufio.NewScanner(stdin)
		for sc.Scan() {
			line := strings.TrimSpace(sc.Text())
			if line == "" {
				continue
			}
			if !yield(line, nil) {
				return
			}
		}
		if err := sc.Err(); err != nil {
			yield("", err)
		}
	}
}

// BooksCmd lists catalog books.
type BooksCmd struct {
	Output string `short:"o" help:"Output format" enum:"table,json,cbor" default:"table"`
}

func (c *BooksCmd) Run(r *runtime) error {
	cat, err := r.catalog()
	if err != nil {
		return err
	}
	format, err := output.ParseFormat(c.Output)
	if err != nil {
		return err
	}

	books := make([]output.Book, 0, cat.Len())
	for _, b := range cat.Books() {
		books = append(books, output.NewBook(b, cat.Aliases(b.ID())))
	}
	return output.WriteBooks(r.stdout, format, books)
}

// CatalogDigestCmd prints the catalog digest.
type CatalogDigestCmd struct{}

func (c *CatalogDigestCmd) Run(r *runtime) error {
	cat, err := r.catalog()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(r.stdout, cat.Digest())
	return err
}

// CatalogExportCmd writes the catalog to a SQLite database.
type CatalogExportCmd struct {
	Path  string `arg:"" help:"Destination SQLite database" type:"path"`
	Force bool   `short:"f" help:"Overwrite an existing database"`
}

func (c *CatalogExportCmd) Run(r *runtime) error {
	if err := validation.ValidatePath(c.Path); err != nil {
		return errors.Wrap(err, "export path")
	}
	if _, err := os.Stat(c.Path); err == nil && !c.Force {
		return errors.NewInvalidInput(fmt.Sprintf("%s already exists (use --force to overwrite)", c.Path))
	}

	cat, err := r.catalog()
	if err != nil {
		return err
	}

	db, err := sqlite.Open(c.Path)
	if err != nil {
		return errors.Wrapf(err, "open %s", c.Path)
	}
	defer db.Close()

	if err := catalog.WriteSQLite(r.ctx, db, cat); err != nil {
		return errors.Wrapf(err, "export catalog to %s", c.Path)
	}
	logging.InfoContext(r.ctx, "catalog_exported", "path", c.Path, "books", cat.Len())
	_, err = fmt.Fprintf(r.stdout, "exported %d books to %s\n", cat.Len(), c.Path)
	return err
}

// VersionCmd prints version information.
type VersionCmd struct{}

func (c *VersionCmd) Run(r *runtime) error {
	info := sqlite.GetInfo()
	_, err := fmt.Fprintf(r.stdout, "scripref version %s (sqlite: %s, %s)\n", version, info.Package, info.Driver)
	return err
}
