package director

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"

	"github.com/ivlev/scenegen/internal/scene"
)

// ColorSpec is a YAML color: [r, g, b] or [r, g, b, a], a CSS/SVG color
// name such as "coral", or hex "#rrggbb" / "#rrggbbaa".
// Channel values outside [0, 255] are clamped.
type ColorSpec struct {
	scene.Color
	set bool
}

func (c *ColorSpec) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.SequenceNode:
		var ch []int
		if err := node.Decode(&ch); err != nil {
			return err
		}
		switch len(ch) {
		case 3:
			c.Color = scene.NewColor(ch[0], ch[1], ch[2], 255)
		case 4:
			c.Color = scene.NewColor(ch[0], ch[1], ch[2], ch[3])
		default:
			return fmt.Errorf("line %d: color needs 3 or 4 channels, got %d", node.Line, len(ch))
		}
	case yaml.ScalarNode:
		col, err := ParseColor(node.Value)
		if err != nil {
			return fmt.Errorf("line %d: %w", node.Line, err)
		}
		c.Color = col
	default:
		return fmt.Errorf("line %d: color must be a list or a string", node.Line)
	}
	c.set = true
	return nil
}

func (c ColorSpec) MarshalYAML() (interface{}, error) {
	seq := c.Color.AsSequence()
	return flowSeq(seq[:]...), nil
}

// IsZero reports whether the color was left out of the script.
func (c ColorSpec) IsZero() bool { return !c.set }

// Col wraps a scene color for scripts built in code.
func Col(c scene.Color) ColorSpec {
	return ColorSpec{Color: c, set: true}
}

// ParseColor resolves a color name or hex string.
func ParseColor(s string) (scene.Color, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		return parseHex(s[1:])
	}
	rgba, ok := colornames.Map[strings.ToLower(s)]
	if !ok {
		return scene.Color{}, fmt.Errorf("unknown color %q", s)
	}
	return scene.NewColor(int(rgba.R), int(rgba.G), int(rgba.B), int(rgba.A)), nil
}

func parseHex(h string) (scene.Color, error) {
	if len(h) != 6 && len(h) != 8 {
		return scene.Color{}, fmt.Errorf("hex color #%s must have 6 or 8 digits", h)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return scene.Color{}, fmt.Errorf("hex color #%s: %w", h, err)
	}
	if len(h) == 6 {
		v = v<<8 | 0xff
	}
	return scene.NewColor(int(v>>24&0xff), int(v>>16&0xff), int(v>>8&0xff), int(v&0xff)), nil
}
