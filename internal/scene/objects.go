package scene

// Object is a visual primitive owned by a Scene.
type Object interface {
	Entity
	Kind() ObjectKind
	Document() (ObjectDoc, error)
}

// Text draws a string at Position.
type Text struct {
	identity

	Text     string
	FontSize float64
	Position Vector2
	Color    Color
}

// NewText returns an unregistered text object.
func NewText(text string, fontSize float64, position Vector2, color Color) *Text {
	return &Text{
		Text:     text,
		FontSize: fontSize,
		Position: position,
		Color:    color,
	}
}

func (t *Text) Kind() ObjectKind { return KindText }

// Document fails with ErrPrecondition if t was never registered.
func (t *Text) Document() (ObjectDoc, error) {
	id, err := t.requireID(string(KindText))
	if err != nil {
		return ObjectDoc{}, err
	}
	return ObjectDoc{
		Kind: KindText,
		ID:   id,
		Props: TextProps{
			Text:     t.Text,
			FontSize: t.FontSize,
			Position: t.Position.AsSequence(),
			Color:    t.Color.AsSequence(),
		},
	}, nil
}

// FadeTo interpolates the text color from its current value to target.
func (t *Text) FadeTo(target Color, duration float64) (*ColorInterp, error) {
	return NewColorInterp(t.Color, target, t, "color", duration)
}

// MoveTo interpolates the text position from its current value to target.
func (t *Text) MoveTo(target Vector2, duration float64) (*VectorInterp, error) {
	return NewVectorInterp(t.Position, target, t, "position", duration)
}

// Rect draws a filled rectangle with its top-left corner at Position.
type Rect struct {
	identity

	Position Vector2
	Size     Vector2
	Color    Color
}

// NewRect returns an unregistered rectangle.
func NewRect(position, size Vector2, color Color) *Rect {
	return &Rect{
		Position: position,
		Size:     size,
		Color:    color,
	}
}

func (r *Rect) Kind() ObjectKind { return KindRect }

// Document fails with ErrPrecondition if r was never registered.
func (r *Rect) Document() (ObjectDoc, error) {
	id, err := r.requireID(string(KindRect))
	if err != nil {
		return ObjectDoc{}, err
	}
	return ObjectDoc{
		Kind: KindRect,
		ID:   id,
		Props: RectProps{
			Position: r.Position.AsSequence(),
			Size:     r.Size.AsSequence(),
			Color:    r.Color.AsSequence(),
		},
	}, nil
}

func (r *Rect) FadeTo(target Color, duration float64) (*ColorInterp, error) {
	return NewColorInterp(r.Color, target, r, "color", duration)
}

func (r *Rect) MoveTo(target Vector2, duration float64) (*VectorInterp, error) {
	return NewVectorInterp(r.Position, target, r, "position", duration)
}

// Grow interpolates the size from zero to the rectangle's current size.
func (r *Rect) Grow(duration float64) (*VectorInterp, error) {
	return NewVectorInterp(Vector2{}, r.Size, r, "size", duration)
}
