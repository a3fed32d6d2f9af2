package types

// Key is a single keypress reported by a display surface.
type Key rune

// Keys the browser reacts to. Anything else redisplays the current image.
const (
	KeyQuit  Key = 'q'
	KeyNext  Key = 'n'
	KeySpace Key = ' '
	KeyPrev  Key = 'p'
)
