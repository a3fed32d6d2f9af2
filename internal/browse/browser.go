// Package browse drives the viewing loop: fetch a valid raster at the
// cursor, scale it, show it, and move the cursor by the pressed key.
package browse

import (
	"fmt"
	"image"
	"io"

	"viewd/internal/catalog"
	"viewd/internal/errors"
	"viewd/internal/scale"
	"viewd/pkg/types"
)

// Surface renders a frame and blocks until a key is pressed. It is the
// only blocking point of the whole program.
type Surface interface {
	Show(frame image.Image) (types.Key, error)
	Close() error
}

// Browser owns the catalog cursor for the lifetime of one run. It is
// single-threaded; no state is shared outside the loop.
type Browser struct {
	cat     *catalog.Catalog
	pruner  *catalog.Pruner
	scaler  *scale.Scaler
	surface Surface
	trace   io.Writer
}

// Option configures a Browser.
type Option func(*Browser)

// WithTrace makes the browser print an index/path line for every
// displayed entry, as the catalog is walked.
func WithTrace(w io.Writer) Option {
	return func(b *Browser) { b.trace = w }
}

// New builds a browser over an already populated catalog.
func New(cat *catalog.Catalog, pruner *catalog.Pruner, scaler *scale.Scaler, surface Surface, opts ...Option) *Browser {
	b := &Browser{
		cat:     cat,
		pruner:  pruner,
		scaler:  scaler,
		surface: surface,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Run walks the catalog from the first entry until the user quits or
// the catalog is exhausted. An empty catalog at start is fatal. Decode
// failures never surface; they only shrink the catalog. Surface
// failures abort the run with the offending path.
func (b *Browser) Run() error {
	if b.cat.Len() == 0 {
		return errors.ErrEmptyCatalog
	}

	for cursor := 0; cursor < b.cat.Len(); {
		img, path, err := b.pruner.EnsureValidAt(cursor)
		if err != nil {
			if errors.IsEndOfCatalog(err) {
				return nil
			}
			return err
		}

		frame := b.scaler.Fit(img)
		if b.trace != nil {
			fmt.Fprintf(b.trace, "%5d. %-60s\n", cursor, path)
		}

		key, err := b.surface.Show(frame)
		if err != nil {
			return errors.NewDisplayError("display surface failed", "", path, err)
		}

		next, done := transition(key, cursor)
		if done {
			return nil
		}
		cursor = next
	}
	return nil
}

// transition is the navigation state machine's single source of truth.
// It maps a key press in Viewing(cursor) to the next cursor, or reports
// that the terminal state was reached.
//
// Going back one displayed image means stepping the cursor back one,
// except at the very first entry, where 'p' redisplays entry 0.
func transition(key types.Key, cursor int) (next int, done bool) {
	switch key {
	case types.KeyQuit:
		return cursor, true
	case types.KeyNext, types.KeySpace:
		return cursor + 1, false
	case types.KeyPrev:
		if cursor == 0 {
			return 0, false
		}
		return cursor - 1, false
	default:
		return cursor, false
	}
}
