package director

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Script is a declarative scene description read from YAML.
type Script struct {
	Canvas  *CanvasSpec  `yaml:"canvas,omitempty"`
	Objects []ObjectSpec `yaml:"objects"`
	Actions []ActionSpec `yaml:"actions,omitempty"`
}

// CanvasSpec overrides the director's default canvas. Zero fields keep the default.
type CanvasSpec struct {
	Width  int    `yaml:"width,omitempty"`
	Height int    `yaml:"height,omitempty"`
	FPS    int    `yaml:"fps,omitempty"`
	Output string `yaml:"output,omitempty"`
}

// ObjectSpec declares one object. Kind is one of text, rect or qr.
// A qr object expands into rectangles, one per run of dark modules.
type ObjectSpec struct {
	Name string `yaml:"name,omitempty"`
	Kind string `yaml:"kind"`

	Position Vec       `yaml:"position"`
	Color    ColorSpec `yaml:"color,omitempty"`

	// text
	Text     string  `yaml:"text,omitempty"`
	FontSize float64 `yaml:"font_size,omitempty"`
	Anchor   string  `yaml:"anchor,omitempty"`

	// rect
	Size Vec `yaml:"size,omitempty"`

	// qr
	Content string  `yaml:"content,omitempty"`
	Module  float64 `yaml:"module,omitempty"`
	Level   string  `yaml:"level,omitempty"`
	Border  bool    `yaml:"border,omitempty"`
}

// ActionSpec declares one action against a named object.
//
// Kind is clrInterp or v2Interp, or one of the shorthands fade (color),
// move (position) and grow (size from zero). When From is omitted the
// start value is the target's current property value.
type ActionSpec struct {
	Target   string  `yaml:"target"`
	Kind     string  `yaml:"kind"`
	Prop     string  `yaml:"prop,omitempty"`
	Duration float64 `yaml:"duration"`

	From *yaml.Node `yaml:"from,omitempty"`
	To   *yaml.Node `yaml:"to,omitempty"`
}

// Vec is a YAML [x, y] pair, also accepted as {x: .., y: ..}.
type Vec struct {
	X, Y float64
}

func (v *Vec) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.SequenceNode:
		var xy []float64
		if err := node.Decode(&xy); err != nil {
			return err
		}
		if len(xy) != 2 {
			return fmt.Errorf("line %d: vector needs 2 values, got %d", node.Line, len(xy))
		}
		v.X, v.Y = xy[0], xy[1]
		return nil
	case yaml.MappingNode:
		var m struct {
			X float64 `yaml:"x"`
			Y float64 `yaml:"y"`
		}
		if err := node.Decode(&m); err != nil {
			return err
		}
		v.X, v.Y = m.X, m.Y
		return nil
	}
	return fmt.Errorf("line %d: vector must be [x, y] or {x, y}", node.Line)
}

func (v Vec) MarshalYAML() (interface{}, error) {
	return flowSeq(v.X, v.Y), nil
}

// ParseScript decodes a YAML script.
func ParseScript(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// LoadScript reads a YAML script from path.
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("director: load %s: %w", path, err)
	}
	s, err := ParseScript(data)
	if err != nil {
		return nil, fmt.Errorf("director: unmarshal %s: %w", path, err)
	}
	return s, nil
}

// WriteScript writes s as YAML to path.
func WriteScript(s *Script, path string) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// flowSeq builds an inline YAML sequence node so vectors and colors stay on one line.
func flowSeq[T int | float64](vals ...T) *yaml.Node {
	n := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	for _, v := range vals {
		var item yaml.Node
		_ = item.Encode(v)
		n.Content = append(n.Content, &item)
	}
	return n
}
