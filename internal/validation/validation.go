// Package validation checks user-supplied file paths and catalog files
// before they reach the catalog loader or the SQLite exporter.
package validation

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode"
)

// Limits on user-supplied input.
const (
	// MaxPathLength is the maximum allowed path length.
	MaxPathLength = 4096
	// MaxCatalogSize is the largest catalog file accepted (16 MB).
	MaxCatalogSize = 16 << 20
)

// Common validation errors.
var (
	ErrEmptyPath        = errors.New("path cannot be empty")
	ErrPathTooLong      = errors.New("path too long")
	ErrInvalidCharacter = errors.New("invalid character in path")
	ErrTypeMismatch     = errors.New("file type mismatch")
	ErrTooLarge         = errors.New("file too large")
)

// ValidatePath rejects empty paths, overlong paths, and paths carrying
// null bytes or control characters.
func ValidatePath(path string) error {
	if path == "" {
		return ErrEmptyPath
	}
	if len(path) > MaxPathLength {
		return ErrPathTooLong
	}
	if strings.Contains(path, "\x00") {
		return fmt.Errorf("%w: null byte not allowed", ErrInvalidCharacter)
	}
	for _, r := range path {
		if unicode.IsControl(r) {
			return fmt.Errorf("%w: control character not allowed", ErrInvalidCharacter)
		}
	}
	return nil
}

// FileType is a catalog file encoding.
type FileType string

const (
	FileTypeXML     FileType = "xml"
	FileTypeXZ      FileType = "xz"
	FileTypeSQLite  FileType = "sqlite"
	FileTypeUnknown FileType = "unknown"
)

var magicBytes = []struct {
	fileType FileType
	magic    []byte
}{
	{FileTypeXZ, []byte{0xfd, 0x37, 0x7a, 0x58, 0x5a, 0x00}},
	{FileTypeSQLite, []byte("SQLite format 3\x00")},
}

// DetectFileType returns the type implied by the filename extension, after
// checking it against the leading bytes of r.
func DetectFileType(r io.Reader, filename string) (FileType, error) {
	buf := make([]byte, 512)
	n, err := io.ReadFull(r, buf)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return FileTypeUnknown, fmt.Errorf("failed to read file header: %w", err)
	}
	buf = buf[:n]

	detected := detectFromMagic(buf)
	expected := detectFromExtension(filename)

	switch {
	case detected == expected:
		return expected, nil
	case detected == FileTypeUnknown && expected == FileTypeXML:
		if !isLikelyText(buf) {
			return FileTypeUnknown, fmt.Errorf("%w: %s is not a text file", ErrTypeMismatch, filename)
		}
		return FileTypeXML, nil
	default:
		return FileTypeUnknown, fmt.Errorf("%w: extension suggests %s but content is %s", ErrTypeMismatch, expected, detected)
	}
}

// CheckCatalogFile validates path and confirms the file's content matches
// its extension and stays under MaxCatalogSize. A missing file is reported
// with an error satisfying os.IsNotExist.
func CheckCatalogFile(path string) (FileType, error) {
	if err := ValidatePath(path); err != nil {
		return FileTypeUnknown, err
	}
	f, err := os.Open(path)
	if err != nil {
		return FileTypeUnknown, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return FileTypeUnknown, err
	}
	if info.IsDir() {
		return FileTypeUnknown, fmt.Errorf("%w: %s is a directory", ErrTypeMismatch, path)
	}
	if info.Size() > MaxCatalogSize {
		return FileTypeUnknown, fmt.Errorf("%w: %s is %d bytes", ErrTooLarge, path, info.Size())
	}
	return DetectFileType(f, filepath.Base(path))
}

func detectFromMagic(buf []byte) FileType {
	for _, sig := range magicBytes {
		if bytes.HasPrefix(buf, sig.magic) {
			return sig.fileType
		}
	}
	return FileTypeUnknown
}

func detectFromExtension(filename string) FileType {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xz":
		return FileTypeXZ
	case ".db", ".sqlite", ".sqlite3":
		return FileTypeSQLite
	default:
		return FileTypeXML
	}
}

// isLikelyText reports whether buf looks like UTF-8 or ASCII text.
func isLikelyText(buf []byte) bool {
	if len(buf) == 0 {
		return false
	}
	if bytes.IndexByte(buf, 0) != -1 {
		return false
	}

	printable, control := 0, 0
	for _, b := range buf {
		switch {
		case b >= 0x20 || b == '\t' || b == '\n' || b == '\r':
			printable++
		default:
			control++
		}
	}
	return float64(printable)/float64(printable+control) > 0.95
}
