// Package display provides the surfaces that render frames and report
// keypresses: a desktop window and an in-terminal fallback. Both block
// in Show until the user presses a key.
package display

import (
	"image"
	"os"

	"viewd/internal/config"
	"viewd/internal/errors"
	"viewd/pkg/types"

	"golang.org/x/term"
)

// Surface renders frames and reports the key pressed for each. Main
// runs the backend's event loop on the calling goroutine and returns
// once the surface is closed.
type Surface interface {
	Show(frame image.Image) (types.Key, error)
	Close() error
	Main() error
}

// New selects a surface from the configured backend.
func New(cfg *config.Config) (Surface, error) {
	switch cfg.Display.Backend {
	case config.BackendWindow:
		return newWindow(cfg.Display.Title, cfg.Viewport)
	case config.BackendTerminal:
		return newTerminal(types.DefaultKeyMap()), nil
	default:
		return nil, errors.NewConfigError("unknown display backend", cfg.Display.Backend, errors.InvalidConfig, nil)
	}
}

// TerminalViewport derives a viewport bound from the current terminal
// size. Half-block rendering packs two pixel rows into every cell, and
// one row is reserved for the help line.
func TerminalViewport() (types.Viewport, bool) {
	cols, rows, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || cols <= 0 || rows <= 1 {
		return types.Viewport{}, false
	}
	return types.Viewport{Rows: (rows - 1) * 2, Cols: cols}, true
}
