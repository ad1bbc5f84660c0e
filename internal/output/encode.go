package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/fxamacker/cbor/v2"
)

// Format selects how values are encoded.
type Format string

const (
	// FormatJSON writes one JSON document per line.
	FormatJSON Format = "json"
	// FormatCBOR writes a CBOR sequence (RFC 8742) with deterministic map
	// key order.
	FormatCBOR Format = "cbor"
	// FormatTable writes an aligned text table. Only catalog listings
	// support it.
	FormatTable Format = "table"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatJSON, FormatCBOR, FormatTable:
		return f, nil
	}
	return "", fmt.Errorf("unknown output format %q", s)
}

// cborMode encodes with core deterministic key ordering so equal values
// produce identical bytes.
var cborMode = func() cbor.EncMode {
	em, err := cbor.EncOptions{Sort: cbor.SortCoreDeterministic}.EncMode()
	if err != nil {
		panic(err)
	}
	return em
}()

// Encoder writes a stream of values in one format.
type Encoder struct {
	format Format
	json   *json.Encoder
	cbor   *cbor.Encoder
}

// NewEncoder returns an Encoder writing to w. FormatTable is not a stream
// format; use WriteBooks for tables.
func NewEncoder(w io.Writer, format Format) (*Encoder, error) {
	e := &Encoder{format: format}
	switch format {
	case FormatJSON:
		e.json = json.NewEncoder(w)
	case FormatCBOR:
		e.cbor = cborMode.NewEncoder(w)
	default:
		return nil, fmt.Errorf("output format %q cannot encode a stream", format)
	}
	return e, nil
}

// Encode writes one value.
func (e *Encoder) Encode(v any) error {
	if e.cbor != nil {
		return e.cbor.Encode(v)
	}
	return e.json.Encode(v)
}

// WriteBooks writes a catalog listing.
func WriteBooks(w io.Writer, format Format, books []Book) error {
	if format != FormatTable {
		enc, err := NewEncoder(w, format)
		if err != nil {
			return err
		}
		return enc.Encode(books)
	}

	header := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cell := lipgloss.NewStyle().Padding(0, 1)
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "NAME", "CHAPTERS", "ALIASES").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return cell
		})
	for _, b := range books {
		t.Row(b.ID, b.Name, strconv.Itoa(b.Chapters), strings.Join(b.Aliases, ", "))
	}

	_, err := fmt.Fprintln(w, t.Render())
	return err
}
