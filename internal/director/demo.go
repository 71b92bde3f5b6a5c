package director

import (
	"gopkg.in/yaml.v3"

	"github.com/ivlev/scenegen/internal/scene"
)

// DemoScript is the greeting scene: a text that turns green while sliding
// to the mirrored position.
func DemoScript() *Script {
	return &Script{
		Canvas: &CanvasSpec{Width: 800, Height: 600, FPS: 30, Output: "out1.mov"},
		Objects: []ObjectSpec{
			{
				Name:     "greeting",
				Kind:     "text",
				Text:     "Hello, world!",
				FontSize: 32,
				Position: Vec{X: 123, Y: 321},
				Color:    Col(scene.NewColor(249, 134, 102, 255)),
			},
		},
		Actions: []ActionSpec{
			{Target: "greeting", Kind: "fade", Duration: 3, To: ColorValue(scene.NewColor(0, 255, 0, 255))},
			{Target: "greeting", Kind: "move", Duration: 1, To: VecValue(321, 123)},
		},
	}
}

// ColorValue encodes c for ActionSpec.From and ActionSpec.To.
func ColorValue(c scene.Color) *yaml.Node {
	seq := c.AsSequence()
	return flowSeq(seq[:]...)
}

// VecValue encodes (x, y) for ActionSpec.From and ActionSpec.To.
func VecValue(x, y float64) *yaml.Node {
	return flowSeq(x, y)
}
