package catalog

import (
	"encoding/hex"
	"strconv"
	"strings"

	"github.com/zeebo/blake3"

	"github.com/FocuswithJustin/scripref/core/scripture"
)

// digest hashes the catalog contents in order. Two catalogs with the same
// books, names, chapter counts and alias sets produce the same digest.
func digest(books []scripture.Book, aliases [][]string) string {
	h := blake3.New()
	for i, b := range books {
		fields := []string{
			b.ID(),
			b.Name(),
			strconv.Itoa(b.Order()),
			strconv.Itoa(b.Chapters()),
			strings.Join(aliases[i], "\x1f"),
		}
		_, _ = h.Write([]byte(strings.Join(fields, "\x00")))
		_, _ = h.Write([]byte{'\n'})
	}
	return hex.EncodeToString(h.Sum(nil))
}
