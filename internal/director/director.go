package director

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ivlev/scenegen/internal/scene"
)

// Director turns scripts into scenes.
type Director struct {
	Canvas    scene.Canvas // defaults for scripts without a canvas block
	SharedIDs bool         // stamp actions from the object counter
}

// NewDirector creates a Director with the given default canvas.
func NewDirector(canvas scene.Canvas) *Director {
	return &Director{Canvas: canvas}
}

// Build registers every object and action of s on a fresh scene, in
// script order. Objects are registered before actions.
func (d *Director) Build(s *Script) (*scene.Scene, error) {
	var opts []scene.Option
	if d.SharedIDs {
		opts = append(opts, scene.WithSharedIDCounter())
	}
	sc := scene.New(d.canvasFor(s), opts...)

	named := make(map[string][]scene.Object)
	for i, spec := range s.Objects {
		objs, err := d.buildObject(spec)
		if err != nil {
			return nil, fmt.Errorf("director: object %d (%s): %w", i, label(spec.Name, spec.Kind), err)
		}
		for _, obj := range objs {
			if err := sc.AddObject(obj); err != nil {
				return nil, err
			}
		}
		if spec.Name == "" {
			continue
		}
		if _, dup := named[spec.Name]; dup {
			return nil, fmt.Errorf("director: object %d: duplicate name %q", i, spec.Name)
		}
		named[spec.Name] = objs
	}

	for i, spec := range s.Actions {
		targets, ok := named[spec.Target]
		if !ok {
			return nil, fmt.Errorf("director: action %d: unknown target %q", i, spec.Target)
		}
		for _, obj := range targets {
			action, err := buildAction(spec, obj)
			if err != nil {
				return nil, fmt.Errorf("director: action %d (%s on %s): %w", i, spec.Kind, spec.Target, err)
			}
			if err := sc.AddAction(action); err != nil {
				return nil, err
			}
		}
	}

	return sc, nil
}

func (d *Director) canvasFor(s *Script) scene.Canvas {
	c := d.Canvas
	if s.Canvas == nil {
		return c
	}
	if s.Canvas.Width > 0 {
		c.Width = s.Canvas.Width
	}
	if s.Canvas.Height > 0 {
		c.Height = s.Canvas.Height
	}
	if s.Canvas.FPS > 0 {
		c.FPS = s.Canvas.FPS
	}
	if s.Canvas.Output != "" {
		c.OutputPath = s.Canvas.Output
	}
	return c
}

func (d *Director) buildObject(spec ObjectSpec) ([]scene.Object, error) {
	pos := scene.V2(spec.Position.X, spec.Position.Y)
	col := spec.Color.Color
	if spec.Color.IsZero() {
		col = scene.NewColor(255, 255, 255, 255)
	}

	switch strings.ToLower(spec.Kind) {
	case "text":
		if spec.FontSize <= 0 {
			return nil, fmt.Errorf("font_size must be positive")
		}
		at, err := anchorText(spec.Text, spec.FontSize, pos, spec.Anchor)
		if err != nil {
			return nil, err
		}
		return []scene.Object{scene.NewText(spec.Text, spec.FontSize, at, col)}, nil
	case "rect":
		size := scene.V2(spec.Size.X, spec.Size.Y)
		return []scene.Object{scene.NewRect(pos, size, col)}, nil
	case "qr":
		rects, err := QRRects(spec.Content, pos, spec.Module, spec.Level, spec.Border, col)
		if err != nil {
			return nil, err
		}
		objs := make([]scene.Object, len(rects))
		for i, r := range rects {
			objs[i] = r
		}
		return objs, nil
	}
	return nil, fmt.Errorf("unknown kind %q", spec.Kind)
}

func buildAction(spec ActionSpec, obj scene.Object) (scene.Action, error) {
	kind, prop := spec.Kind, spec.Prop
	switch kind {
	case "fade":
		kind, prop = string(scene.KindColorInterp), "color"
	case "move":
		kind, prop = string(scene.KindVectorInterp), "position"
	case "grow":
		rect, ok := obj.(*scene.Rect)
		if !ok {
			return nil, fmt.Errorf("grow needs a rect target, got %s", obj.Kind())
		}
		return rect.Grow(spec.Duration)
	}
	if prop == "" {
		return nil, fmt.Errorf("prop is required for %s", kind)
	}

	switch scene.ActionKind(kind) {
	case scene.KindColorInterp:
		start, ok := colorProp(obj, prop)
		if err := decodeColor(spec.From, &start, ok, "from"); err != nil {
			return nil, err
		}
		var end scene.Color
		if err := decodeColor(spec.To, &end, false, "to"); err != nil {
			return nil, err
		}
		return scene.NewColorInterp(start, end, obj, prop, spec.Duration)
	case scene.KindVectorInterp:
		start, ok := vectorProp(obj, prop)
		if err := decodeVec(spec.From, &start, ok, "from"); err != nil {
			return nil, err
		}
		var end scene.Vector2
		if err := decodeVec(spec.To, &end, false, "to"); err != nil {
			return nil, err
		}
		return scene.NewVectorInterp(start, end, obj, prop, spec.Duration)
	}
	return nil, fmt.Errorf("unknown kind %q", spec.Kind)
}

// colorProp reads a color-valued property of obj.
func colorProp(obj scene.Object, prop string) (scene.Color, bool) {
	if prop != "color" {
		return scene.Color{}, false
	}
	switch o := obj.(type) {
	case *scene.Text:
		return o.Color, true
	case *scene.Rect:
		return o.Color, true
	}
	return scene.Color{}, false
}

// vectorProp reads a vector-valued property of obj.
func vectorProp(obj scene.Object, prop string) (scene.Vector2, bool) {
	switch o := obj.(type) {
	case *scene.Text:
		if prop == "position" {
			return o.Position, true
		}
	case *scene.Rect:
		switch prop {
		case "position":
			return o.Position, true
		case "size":
			return o.Size, true
		}
	}
	return scene.Vector2{}, false
}

// decodeColor fills dst from node. A nil node keeps dst when hasDefault.
func decodeColor(node *yaml.Node, dst *scene.Color, hasDefault bool, field string) error {
	if node == nil {
		if hasDefault {
			return nil
		}
		return fmt.Errorf("%s is required", field)
	}
	var spec ColorSpec
	if err := node.Decode(&spec); err != nil {
		return fmt.Errorf("%s: %w", field, err)
	}
	*dst = spec.Color
	return nil
}

func decodeVec(node *yaml.Node, dst *scene.Vector2, hasDefault bool, field string) error {
	if node == nil {
		if hasDefault {
			return nil
		}
		return fmt.Errorf("%s is required", field)
	}
	var v Vec
	if err := node.Decode(&v); err != nil {
		return fmt.Errorf("%s: %w", field, err)
	}
	*dst = scene.V2(v.X, v.Y)
	return nil
}

func label(name, kind string) string {
	if name != "" {
		return name
	}
	return kind
}
