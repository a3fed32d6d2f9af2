package types

import "fmt"

// Viewport is the maximum rows/columns a displayed frame may occupy.
// It is resolved once at startup and passed by value; nothing mutates it
// after that.
type Viewport struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

// Valid reports whether both dimensions are positive.
func (v Viewport) Valid() bool {
	return v.Rows > 0 && v.Cols > 0
}

// String returns the viewport as "ColsxRows", the convention used for
// image resolutions throughout the application.
func (v Viewport) String() string {
	return fmt.Sprintf("%dx%d", v.Cols, v.Rows)
}
