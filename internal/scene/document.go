package scene

import (
	"encoding/json"
	"fmt"
)

// Document is the serialized scene consumed by the renderer.
// Field names and order are part of the renderer contract.
type Document struct {
	Objs    []ObjectDoc `json:"objs"`
	Actions []ActionDoc `json:"actions"`
}

// ObjectDoc is one entry of Document.Objs.
type ObjectDoc struct {
	Kind  ObjectKind  `json:"kind"`
	ID    int         `json:"obj_id"`
	Props ObjectProps `json:"props"`
}

// ObjectProps is implemented by TextProps and RectProps only.
type ObjectProps interface {
	objectKind() ObjectKind
}

type TextProps struct {
	Text     string     `json:"text"`
	FontSize float64    `json:"fontSize"`
	Position [2]float64 `json:"position"`
	Color    [4]int     `json:"color"`
}

func (TextProps) objectKind() ObjectKind { return KindText }

type RectProps struct {
	Position [2]float64 `json:"position"`
	Size     [2]float64 `json:"size"`
	Color    [4]int     `json:"color"`
}

func (RectProps) objectKind() ObjectKind { return KindRect }

// ActionDoc is one entry of Document.Actions.
type ActionDoc struct {
	Kind     ActionKind  `json:"kind"`
	ID       int         `json:"action_id"`
	Duration float64     `json:"duration"`
	Props    ActionProps `json:"props"`
}

// ActionProps is implemented by ColorInterpProps and VectorInterpProps only.
type ActionProps interface {
	actionKind() ActionKind
	Target() (objID int, prop string)
}

type ColorInterpProps struct {
	Start    [4]int `json:"start"`
	End      [4]int `json:"end"`
	ObjID    int    `json:"obj_id"`
	PropName string `json:"prop_name"`
}

func (ColorInterpProps) actionKind() ActionKind  { return KindColorInterp }
func (p ColorInterpProps) Target() (int, string) { return p.ObjID, p.PropName }

type VectorInterpProps struct {
	Start    [2]float64 `json:"start"`
	End      [2]float64 `json:"end"`
	ObjID    int        `json:"obj_id"`
	PropName string     `json:"prop_name"`
}

func (VectorInterpProps) actionKind() ActionKind  { return KindVectorInterp }
func (p VectorInterpProps) Target() (int, string) { return p.ObjID, p.PropName }

type rawObjectDoc struct {
	Kind  ObjectKind      `json:"kind"`
	ID    int             `json:"obj_id"`
	Props json.RawMessage `json:"props"`
}

// UnmarshalJSON decodes props according to kind.
func (d *ObjectDoc) UnmarshalJSON(data []byte) error {
	var raw rawObjectDoc
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	var props ObjectProps
	switch raw.Kind {
	case KindText:
		var p TextProps
		if err := json.Unmarshal(raw.Props, &p); err != nil {
			return fmt.Errorf("obj %d: %w", raw.ID, err)
		}
		props = p
	case KindRect:
		var p RectProps
		if err := json.Unmarshal(raw.Props, &p); err != nil {
			return fmt.Errorf("obj %d: %w", raw.ID, err)
		}
		props = p
	default:
		return fmt.Errorf("obj %d: unknown kind %q", raw.ID, raw.Kind)
	}

	*d = ObjectDoc{Kind: raw.Kind, ID: raw.ID, Props: props}
	return nil
}

type rawActionDoc struct {
	Kind     ActionKind      `json:"kind"`
	ID       int             `json:"action_id"`
	Duration float64         `json:"duration"`
	Props    json.RawMessage `json:"props"`
}

// UnmarshalJSON decodes props according to kind.
func (d *ActionDoc) UnmarshalJSON(data []byte) error {
	var raw rawActionDoc
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	var props ActionProps
	switch raw.Kind {
	case KindColorInterp:
		var p ColorInterpProps
		if err := json.Unmarshal(raw.Props, &p); err != nil {
			return fmt.Errorf("action %d: %w", raw.ID, err)
		}
		props = p
	case KindVectorInterp:
		var p VectorInterpProps
		if err := json.Unmarshal(raw.Props, &p); err != nil {
			return fmt.Errorf("action %d: %w", raw.ID, err)
		}
		props = p
	default:
		return fmt.Errorf("action %d: unknown kind %q", raw.ID, raw.Kind)
	}

	*d = ActionDoc{Kind: raw.Kind, ID: raw.ID, Duration: raw.Duration, Props: props}
	return nil
}
