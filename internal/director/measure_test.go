package director

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ivlev/scenegen/internal/scene"
)

func TestMeasureText(t *testing.T) {
	// The reference face advances 7px per glyph at 13px.
	size := MeasureText("abcd", 13)
	assert.InDelta(t, 28, size.X, 1e-9)
	assert.Equal(t, float64(13), size.Y)

	double := MeasureText("abcd", 26)
	assert.InDelta(t, 56, double.X, 1e-9)
}

func TestAnchorText(t *testing.T) {
	at := scene.V2(100, 100)

	got, err := anchorText("abcd", 13, at, "")
	assert.NoError(t, err)
	assert.Equal(t, at, got)

	got, err = anchorText("abcd", 13, at, "center")
	assert.NoError(t, err)
	assert.InDelta(t, 86, got.X, 1e-9)
	assert.InDelta(t, 93.5, got.Y, 1e-9)

	_, err = anchorText("abcd", 13, at, "middle")
	assert.Error(t, err)
}
