package image

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScaledHeight(t *testing.T) {
	for _, cs := range []struct {
		ow, oh, max, want int
	}{
		{4000, 3000, 2000, 1500},
		{1000, 333, 500, 166},
		{3000, 4000, 1980, 2640},
		{1999, 1000, 1000, 500},
		{5000, 1, 100, 1},
	} {
		assert.Equal(t, cs.want, ScaledHeight(cs.ow, cs.oh, cs.max), "%dx%d@%d", cs.ow, cs.oh, cs.max)
	}
}

func TestResizeToWidth(t *testing.T) {
	src := gradient(400, 300)

	m, changed := ResizeToWidth(src, 200)
	assert.True(t, changed)
	assert.Equal(t, 200, m.Bounds().Dx())
	assert.Equal(t, 150, m.Bounds().Dy())

	m, changed = ResizeToWidth(src, 400)
	assert.False(t, changed)
	assert.Same(t, src, m)

	_, changed = ResizeToWidth(src, 2000)
	assert.False(t, changed)
}

func TestResizeDeterministic(t *testing.T) {
	src := gradient(321, 123)
	a, _ := ResizeToWidth(src, 100)
	b, _ := ResizeToWidth(src, 100)
	assert.Equal(t, a, b)
}
