package scene

// Action is a timed mutation of one property on one object.
type Action interface {
	Entity
	Kind() ActionKind
	Document() (ActionDoc, error)
}

// ColorInterp interpolates a color property between Start and End.
type ColorInterp struct {
	identity

	Start    Color
	End      Color
	ObjID    int
	PropName string
	Duration float64
}

// NewColorInterp targets prop on an already registered object.
// It fails with ErrPrecondition when target has no id yet.
// Duration is passed through unchecked.
func NewColorInterp(start, end Color, target Entity, prop string, duration float64) (*ColorInterp, error) {
	objID, err := idOf(target)
	if err != nil {
		return nil, err
	}
	return &ColorInterp{
		Start:    start,
		End:      end,
		ObjID:    objID,
		PropName: prop,
		Duration: duration,
	}, nil
}

func (a *ColorInterp) Kind() ActionKind { return KindColorInterp }

func (a *ColorInterp) Document() (ActionDoc, error) {
	id, err := a.requireID(string(KindColorInterp))
	if err != nil {
		return ActionDoc{}, err
	}
	return ActionDoc{
		Kind:     KindColorInterp,
		ID:       id,
		Duration: a.Duration,
		Props: ColorInterpProps{
			Start:    a.Start.AsSequence(),
			End:      a.End.AsSequence(),
			ObjID:    a.ObjID,
			PropName: a.PropName,
		},
	}, nil
}

// VectorInterp interpolates a Vector2 property between Start and End.
type VectorInterp struct {
	identity

	Start    Vector2
	End      Vector2
	ObjID    int
	PropName string
	Duration float64
}

// NewVectorInterp targets prop on an already registered object.
// It fails with ErrPrecondition when target has no id yet.
func NewVectorInterp(start, end Vector2, target Entity, prop string, duration float64) (*VectorInterp, error) {
	objID, err := idOf(target)
	if err != nil {
		return nil, err
	}
	return &VectorInterp{
		Start:    start,
		End:      end,
		ObjID:    objID,
		PropName: prop,
		Duration: duration,
	}, nil
}

func (a *VectorInterp) Kind() ActionKind { return KindVectorInterp }

func (a *VectorInterp) Document() (ActionDoc, error) {
	id, err := a.requireID(string(KindVectorInterp))
	if err != nil {
		return ActionDoc{}, err
	}
	return ActionDoc{
		Kind:     KindVectorInterp,
		ID:       id,
		Duration: a.Duration,
		Props: VectorInterpProps{
			Start:    a.Start.AsSequence(),
			End:      a.End.AsSequence(),
			ObjID:    a.ObjID,
			PropName: a.PropName,
		},
	}, nil
}
