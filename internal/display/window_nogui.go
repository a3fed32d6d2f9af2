//go:build nogui
// +build nogui

package display

import (
	"viewd/internal/errors"
	"viewd/pkg/types"
)

// newWindow is a stub for builds with the GUI disabled. Use the
// terminal backend instead.
func newWindow(string, types.Viewport) (Surface, error) {
	return nil, errors.New("window backend not available in this build")
}
