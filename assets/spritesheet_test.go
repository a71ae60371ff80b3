package assets

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripRects(t *testing.T) {
	rects := StripRects(0, 75, 24, 24, 4, 1)

	assert.Len(t, rects, 4)
	wantX := []int{0, 25, 50, 75}
	for i, r := range rects {
		assert.Equal(t, wantX[i], r.Min.X)
		assert.Equal(t, 75, r.Min.Y)
		assert.Equal(t, 24, r.Dx())
		assert.Equal(t, 24, r.Dy())
	}
}

func TestStripRectsNoSpacing(t *testing.T) {
	rects := StripRects(10, 0, 16, 16, 3, 0)

	assert.Equal(t, 10, rects[0].Min.X)
	assert.Equal(t, 26, rects[1].Min.X)
	assert.Equal(t, 42, rects[2].Min.X)
}

func TestStripRectsZeroCount(t *testing.T) {
	assert.Empty(t, StripRects(0, 0, 24, 24, 0, 1))
}

func TestNewSpritesheetMissingFile(t *testing.T) {
	_, err := NewSpritesheet(assetFS, "images/missing.png")
	assert.Error(t, err)
}

func TestMustLoadSpritesheetCaches(t *testing.T) {
	first := MustLoadSpritesheet()
	second := MustLoadSpritesheet()

	assert.NotNil(t, first)
	assert.Same(t, first, second)
}
