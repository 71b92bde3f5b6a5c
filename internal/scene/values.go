package scene

// Vector2 is a 2D point or extent in canvas pixels.
type Vector2 struct {
	X float64
	Y float64
}

// V2 is shorthand for Vector2{X: x, Y: y}.
func V2(x, y float64) Vector2 {
	return Vector2{X: x, Y: y}
}

// AsSequence returns [x, y].
func (v Vector2) AsSequence() [2]float64 {
	return [2]float64{v.X, v.Y}
}

// Color is an RGBA color with 8-bit channels.
type Color struct {
	R, G, B, A uint8
}

// NewColor builds a Color, clamping every channel into [0, 255].
// Out-of-range input is normalized, never rejected.
func NewColor(r, g, b, a int) Color {
	return Color{
		R: clampChannel(r),
		G: clampChannel(g),
		B: clampChannel(b),
		A: clampChannel(a),
	}
}

// AsSequence returns [r, g, b, a].
func (c Color) AsSequence() [4]int {
	return [4]int{int(c.R), int(c.G), int(c.B), int(c.A)}
}

func clampChannel(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
