package highlight

import (
	"strings"
	"sync"

	"github.com/alexisbeaulieu97/tinte/internal/providers/vscode"
)

type cacheKey struct {
	theme     string
	languages string
}

func keyFor(themeName string, languages []string) cacheKey {
	return cacheKey{theme: themeName, languages: strings.Join(NormalizeLanguages(languages), ",")}
}

// Cache holds highlighters keyed by theme name and language set. The caller
// owns it and decides when entries go stale.
type Cache struct {
	mu      sync.RWMutex
	entries map[cacheKey]*Highlighter
	builds  int
}

// NewCache returns an empty cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[cacheKey]*Highlighter)}
}

// Get returns the cached highlighter for (t.Name, languages), building it on
// a miss. Language order and duplicates do not affect the key.
func (c *Cache) Get(t vscode.Theme, languages []string) *Highlighter {
	key := keyFor(t.Name, languages)

	c.mu.RLock()
	h, ok := c.entries[key]
	c.mu.RUnlock()
	if ok {
		return h
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if h, ok := c.entries[key]; ok {
		return h
	}
	h = New(t, languages)
	c.entries[key] = h
	c.builds++
	return h
}

// Lookup returns a cached highlighter without building one.
func (c *Cache) Lookup(themeName string, languages []string) (*Highlighter, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	h, ok := c.entries[keyFor(themeName, languages)]
	return h, ok
}

// Invalidate drops one (theme, language set) entry.
func (c *Cache) Invalidate(themeName string, languages []string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, keyFor(themeName, languages))
}

// InvalidateTheme drops every entry built for themeName.
func (c *Cache) InvalidateTheme(themeName string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for key := range c.entries {
		if key.theme == themeName {
			delete(c.entries, key)
		}
	}
}

// InvalidateAll empties the cache.
func (c *Cache) InvalidateAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[cacheKey]*Highlighter)
}

// Len returns the number of cached highlighters.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Builds returns how many highlighters the cache has constructed.
func (c *Cache) Builds() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.builds
}
