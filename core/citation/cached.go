package citation

import (
	"slices"
	"strings"

	"github.com/FocuswithJustin/scripref/core/cache"
	"github.com/FocuswithJustin/scripref/core/scripture"
)

// digester is implemented by catalogs that can fingerprint their contents.
type digester interface {
	Digest() string
}

// CachedParser memoises successful parses in an LRU cache. Failed parses are
// not cached. Entries are keyed by the catalog digest and the trimmed input,
// so parsers over different catalogs never share results.
type CachedParser struct {
	parser    *Parser
	namespace string
	cache     cache.Cache[string, []scripture.Reference]
}

// NewCached wraps p with a cache of up to size entries. A size of zero or
// less disables caching.
func NewCached(p *Parser, size int) *CachedParser {
	cp := &CachedParser{parser: p}
	if d, ok := p.catalog.(digester); ok {
		cp.namespace = d.Digest()
	}
	if size > 0 {
		cp.cache = cache.NewLRUCache[string, []scripture.Reference](cache.Config{MaxSize: size})
	}
	return cp
}

// Parse behaves like Parser.Parse.
func (c *CachedParser) Parse(text string) ([]scripture.Reference, error) {
	if c.cache == nil {
		return c.parser.Parse(text)
	}

	key := c.namespace + "\x00" + strings.TrimSpace(text)
	if refs, ok := c.cache.Get(key); ok {
		return slices.Clone(refs), nil
	}

	refs, err := c.parser.Parse(text)
	if err != nil {
		return nil, err
	}
	c.cache.Put(key, slices.Clone(refs))
	return refs, nil
}

// Stats reports cache statistics. A disabled cache reports zero values.
func (c *CachedParser) Stats() cache.Stats {
	if c.cache == nil {
		return cache.Stats{}
	}
	return c.cache.Stats()
}
