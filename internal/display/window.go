//go:build !nogui
// +build !nogui

package display

import (
	"image"
	"sync"

	"viewd/pkg/types"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
)

// Window is the desktop display surface. Frames are shown in a fyne
// window sized to the viewport bound; typed runes feed the key channel
// Show blocks on.
type Window struct {
	app fyne.App
	win fyne.Window
	img *canvas.Image

	keys chan types.Key
	done chan struct{}
	once sync.Once
}

func newWindow(title string, bound types.Viewport) (Surface, error) {
	a := app.NewWithID("io.github.viewd")
	win := a.NewWindow(title)

	s := &Window{
		app:  a,
		win:  win,
		keys: make(chan types.Key, 8),
		done: make(chan struct{}),
	}

	s.img = &canvas.Image{FillMode: canvas.ImageFillContain}
	win.SetContent(s.img)
	win.Resize(fyne.NewSize(float32(bound.Cols), float32(bound.Rows)))

	win.Canvas().SetOnTypedRune(func(r rune) {
		s.sendKey(types.Key(r))
	})
	win.Canvas().SetOnTypedKey(func(ev *fyne.KeyEvent) {
		// Space arrives as a key event on some drivers, not a rune.
		if ev.Name == fyne.KeySpace {
			s.sendKey(types.KeySpace)
		}
	})
	// Closing the window counts as quitting.
	win.SetCloseIntercept(func() {
		s.sendKey(types.KeyQuit)
	})

	return s, nil
}

func (s *Window) sendKey(k types.Key) {
	select {
	case s.keys <- k:
	default:
		// Drop keys typed while no frame is waiting.
	}
}

// Show swaps the displayed frame and blocks until a key is pressed or
// the surface is closed.
func (s *Window) Show(frame image.Image) (types.Key, error) {
	s.img.Image = frame
	s.img.Refresh()

	select {
	case k := <-s.keys:
		return k, nil
	case <-s.done:
		return types.KeyQuit, nil
	}
}

// Close shuts the window down and unblocks any pending Show.
func (s *Window) Close() error {
	s.once.Do(func() {
		close(s.done)
		s.app.Quit()
	})
	return nil
}

// Main shows the window and runs the fyne event loop until Close.
func (s *Window) Main() error {
	s.win.Show()
	s.app.Run()
	return nil
}
