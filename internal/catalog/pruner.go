package catalog

import (
	"image"

	"viewd/internal/errors"
	"viewd/internal/log"
)

// Pruner validates catalog entries on demand, removing any entry the
// source cannot decode. It is the only component that mutates the
// catalog after construction.
type Pruner struct {
	cat *Catalog
	src Source
}

// NewPruner wraps a catalog and an image source.
func NewPruner(cat *Catalog, src Source) *Pruner {
	return &Pruner{cat: cat, src: src}
}

// EnsureValidAt decodes the entry at cursor. While decoding fails, the
// failing entry is removed in place, so the entry that was after it
// shifts into the cursor slot and is tried next. When a removal leaves
// the cursor equal to the catalog length there is nothing left to try
// and ErrEndOfCatalog is returned.
//
// On success it returns the decoded raster and the path it came from.
// The catalog may be shorter afterwards than before the call.
func (p *Pruner) EnsureValidAt(cursor int) (image.Image, string, error) {
	if cursor >= p.cat.Len() {
		return nil, "", errors.ErrEndOfCatalog
	}

	for {
		path := p.cat.At(cursor)
		img, err := p.src.Decode(path)
		if err == nil {
			return img, path, nil
		}

		log.Debugf("pruning undecodable entry %s: %v", path, err)
		p.cat.RemoveAt(cursor)
		if cursor == p.cat.Len() {
			return nil, "", errors.ErrEndOfCatalog
		}
	}
}
