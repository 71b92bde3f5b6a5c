package director

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/ivlev/scenegen/internal/scene"
)

// referenceFace approximates the renderer's default font. Its metrics are
// scaled linearly to the requested font size.
var referenceFace = basicfont.Face7x13

// MeasureText returns the approximate width and height of text drawn at fontSize.
func MeasureText(text string, fontSize float64) scene.Vector2 {
	adv := font.MeasureString(referenceFace, text)
	scale := fontSize / float64(referenceFace.Height)
	return scene.V2(float64(adv)/64*scale, fontSize)
}

// anchorText converts an anchored position into the top-left position the
// renderer expects.
func anchorText(text string, fontSize float64, at scene.Vector2, anchor string) (scene.Vector2, error) {
	size := MeasureText(text, fontSize)
	switch anchor {
	case "", "top-left":
		return at, nil
	case "center":
		return scene.V2(at.X-size.X/2, at.Y-size.Y/2), nil
	case "top-right":
		return scene.V2(at.X-size.X, at.Y), nil
	case "bottom-left":
		return scene.V2(at.X, at.Y-size.Y), nil
	case "bottom-right":
		return scene.V2(at.X-size.X, at.Y-size.Y), nil
	}
	return at, fmt.Errorf("unknown anchor %q", anchor)
}
