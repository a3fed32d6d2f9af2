// Package catalog holds the ordered list of candidate image paths being
// browsed, and prunes entries that turn out not to decode.
package catalog

import "image"

// Source decodes a file path into an in-memory raster. Implementations
// must return an error for files that are not decodable images, never
// panic.
type Source interface {
	Decode(path string) (image.Image, error)
}

// Catalog is an ordered, mutable list of file paths. Entries may be
// removed but never reordered or re-inserted, and no two entries are
// equal as paths.
type Catalog struct {
	entries []string
}

// New builds a catalog from an enumerated path list, dropping duplicate
// paths while keeping first-occurrence order.
func New(paths []string) *Catalog {
	seen := make(map[string]struct{}, len(paths))
	entries := make([]string, 0, len(paths))
	for _, p := range paths {
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		entries = append(entries, p)
	}
	return &Catalog{entries: entries}
}

// Len returns the current number of entries. Callers must re-read it
// after any pruning call; removals shrink the index space in place.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// At returns the entry at index i.
func (c *Catalog) At(i int) string {
	return c.entries[i]
}

// RemoveAt removes the entry at index i. Indices of all later entries
// shift down by one.
func (c *Catalog) RemoveAt(i int) {
	c.entries = append(c.entries[:i], c.entries[i+1:]...)
}

// Paths returns a copy of the current entries.
func (c *Catalog) Paths() []string {
	out := make([]string, len(c.entries))
	copy(out, c.entries)
	return out
}
