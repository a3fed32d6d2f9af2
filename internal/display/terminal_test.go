package display

import (
	"image"
	"image/color"
	"strings"
	"testing"

	"viewd/pkg/types"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTerminal() (*Terminal, *termModel) {
	t := &Terminal{
		keys:  make(chan types.Key, 8),
		done:  make(chan struct{}),
		ready: make(chan struct{}),
	}
	m := &termModel{surface: t, keymap: types.DefaultKeyMap(), help: help.New()}
	return t, m
}

func recvKey(t *testing.T, surface *Terminal) types.Key {
	t.Helper()
	select {
	case k := <-surface.keys:
		return k
	default:
		t.Fatal("no key was sent")
		return 0
	}
}

func TestTermModelKeys(t *testing.T) {
	cases := []struct {
		name string
		msg  tea.KeyMsg
		want types.Key
	}{
		{"n advances", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'n'}}, types.KeyNext},
		{"space advances", tea.KeyMsg{Type: tea.KeySpace}, types.KeyNext},
		{"p goes back", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'p'}}, types.KeyPrev},
		{"q quits", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}, types.KeyQuit},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, types.KeyQuit},
		{"other runes pass through", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}}, types.Key('x')},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			surface, m := newTestTerminal()
			m.Update(tc.msg)
			assert.Equal(t, tc.want, recvKey(t, surface))
		})
	}
}

func TestTermModelView(t *testing.T) {
	_, m := newTestTerminal()

	t.Run("placeholder before the first frame", func(t *testing.T) {
		assert.Contains(t, m.View(), "loading")
	})

	t.Run("frame plus help line", func(t *testing.T) {
		m.Update(frameMsg("FRAME"))
		view := m.View()
		assert.Contains(t, view, "FRAME")
		assert.Contains(t, view, "next image")
	})
}

func TestRenderHalfBlocks(t *testing.T) {
	t.Run("pixel pair becomes foreground over background", func(t *testing.T) {
		img := image.NewRGBA(image.Rect(0, 0, 1, 2))
		img.Set(0, 0, color.RGBA{R: 255, A: 255})
		img.Set(0, 1, color.RGBA{B: 255, A: 255})

		out := renderHalfBlocks(img)
		assert.Equal(t, "\x1b[38;2;255;0;0m\x1b[48;2;0;0;255m▀\x1b[0m", out)
	})

	t.Run("odd final row renders foreground only", func(t *testing.T) {
		img := image.NewRGBA(image.Rect(0, 0, 1, 1))
		img.Set(0, 0, color.RGBA{R: 10, G: 20, B: 30, A: 255})

		out := renderHalfBlocks(img)
		assert.Equal(t, "\x1b[38;2;10;20;30m▀\x1b[0m", out)
	})

	t.Run("two pixel rows per text line", func(t *testing.T) {
		img := image.NewRGBA(image.Rect(0, 0, 3, 6))
		out := renderHalfBlocks(img)
		require.Equal(t, 3, len(strings.Split(out, "\n")))
	})
}
