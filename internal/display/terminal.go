package display

import (
	"fmt"
	"image"
	"strings"
	"sync"

	"viewd/pkg/types"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var statusStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#5A9"))

// Terminal renders frames inside the terminal as truecolor half-block
// cells, two pixel rows per character cell. The whole session runs in a
// bubbletea program on the alternate screen; Show hands frames to it
// and blocks on the key channel its Update feeds.
type Terminal struct {
	prog *tea.Program

	keys  chan types.Key
	done  chan struct{}
	ready chan struct{}

	readyOnce sync.Once
	closeOnce sync.Once
}

type frameMsg string

type termModel struct {
	surface *Terminal
	keymap  types.KeyMap
	help    help.Model
	frame   string
}

func newTerminal(km types.KeyMap) *Terminal {
	t := &Terminal{
		keys:  make(chan types.Key, 8),
		done:  make(chan struct{}),
		ready: make(chan struct{}),
	}
	m := &termModel{
		surface: t,
		keymap:  km,
		help:    help.New(),
	}
	t.prog = tea.NewProgram(m, tea.WithAltScreen())
	return t
}

// Init implements tea.Model
func (m *termModel) Init() tea.Cmd {
	m.surface.readyOnce.Do(func() { close(m.surface.ready) })
	return nil
}

// Update implements tea.Model
func (m *termModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case frameMsg:
		m.frame = string(msg)
	case tea.KeyMsg:
		switch {
		case msg.Type == tea.KeyCtrlC, key.Matches(msg, m.keymap.Quit):
			m.surface.sendKey(types.KeyQuit)
		case key.Matches(msg, m.keymap.Next):
			m.surface.sendKey(types.KeyNext)
		case key.Matches(msg, m.keymap.Prev):
			m.surface.sendKey(types.KeyPrev)
		default:
			if len(msg.Runes) > 0 {
				m.surface.sendKey(types.Key(msg.Runes[0]))
			} else {
				m.surface.sendKey(0)
			}
		}
	}
	return m, nil
}

// View implements tea.Model
func (m *termModel) View() string {
	if m.frame == "" {
		return statusStyle.Render("loading...")
	}
	return m.frame + "\n" + statusStyle.Render(m.help.View(m.keymap))
}

func (t *Terminal) sendKey(k types.Key) {
	select {
	case t.keys <- k:
	default:
	}
}

// Show renders the frame and blocks until a key is pressed or the
// surface is closed.
func (t *Terminal) Show(frame image.Image) (types.Key, error) {
	select {
	case <-t.ready:
	case <-t.done:
		return types.KeyQuit, nil
	}

	t.prog.Send(frameMsg(renderHalfBlocks(frame)))

	select {
	case k := <-t.keys:
		return k, nil
	case <-t.done:
		return types.KeyQuit, nil
	}
}

// Close stops the program and unblocks any pending Show.
func (t *Terminal) Close() error {
	t.closeOnce.Do(func() {
		close(t.done)
		t.prog.Quit()
	})
	return nil
}

// Main runs the bubbletea program until Close.
func (t *Terminal) Main() error {
	_, err := t.prog.Run()
	return err
}

// renderHalfBlocks turns a raster into ANSI truecolor text, one "▀" per
// pixel pair: the upper pixel as foreground, the lower as background.
func renderHalfBlocks(img image.Image) string {
	b := img.Bounds()
	var sb strings.Builder

	for y := b.Min.Y; y < b.Max.Y; y += 2 {
		for x := b.Min.X; x < b.Max.X; x++ {
			tr, tg, tb := rgb8(img, x, y)
			if y+1 < b.Max.Y {
				br, bg, bb := rgb8(img, x, y+1)
				fmt.Fprintf(&sb, "\x1b[38;2;%d;%d;%dm\x1b[48;2;%d;%d;%dm▀", tr, tg, tb, br, bg, bb)
			} else {
				fmt.Fprintf(&sb, "\x1b[38;2;%d;%d;%dm▀", tr, tg, tb)
			}
		}
		sb.WriteString("\x1b[0m")
		if y+2 < b.Max.Y {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func rgb8(img image.Image, x, y int) (uint8, uint8, uint8) {
	r, g, b, _ := img.At(x, y).RGBA()
	return uint8(r >> 8), uint8(g >> 8), uint8(b >> 8)
}
