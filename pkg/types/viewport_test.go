package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestViewportValid(t *testing.T) {
	assert.True(t, Viewport{Rows: 720, Cols: 1280}.Valid())
	assert.False(t, Viewport{Rows: 0, Cols: 1280}.Valid())
	assert.False(t, Viewport{Rows: 720, Cols: -1}.Valid())
	assert.False(t, Viewport{}.Valid())
}

func TestViewportString(t *testing.T) {
	assert.Equal(t, "1280x720", Viewport{Rows: 720, Cols: 1280}.String())
}
