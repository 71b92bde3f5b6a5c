package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func helloScene(t *testing.T, opts ...Option) *Scene {
	t.Helper()

	sc := New(Canvas{Width: 800, Height: 600, FPS: 30, OutputPath: "out1.mov"}, opts...)

	text := NewText("Hello, world!", 32, V2(123, 321), NewColor(249, 134, 102, 255))
	require.NoError(t, sc.AddObject(text))

	ci, err := NewColorInterp(text.Color, NewColor(0, 255, 0, 255), text, "color", 3)
	require.NoError(t, err)
	require.NoError(t, sc.AddAction(ci))

	vi, err := NewVectorInterp(text.Position, V2(321, 123), text, "position", 1)
	require.NoError(t, err)
	require.NoError(t, sc.AddAction(vi))

	return sc
}

func TestHelloSceneDocument(t *testing.T) {
	doc, err := helloScene(t).Document()
	require.NoError(t, err)

	require.Len(t, doc.Objs, 1)
	assert.Equal(t, ObjectDoc{
		Kind: KindText,
		ID:   0,
		Props: TextProps{
			Text:     "Hello, world!",
			FontSize: 32,
			Position: [2]float64{123, 321},
			Color:    [4]int{249, 134, 102, 255},
		},
	}, doc.Objs[0])

	require.Len(t, doc.Actions, 2)
	assert.Equal(t, ActionDoc{
		Kind:     KindColorInterp,
		ID:       0,
		Duration: 3,
		Props: ColorInterpProps{
			Start:    [4]int{249, 134, 102, 255},
			End:      [4]int{0, 255, 0, 255},
			ObjID:    0,
			PropName: "color",
		},
	}, doc.Actions[0])
	assert.Equal(t, ActionDoc{
		Kind:     KindVectorInterp,
		ID:       1,
		Duration: 1,
		Props: VectorInterpProps{
			Start:    [2]float64{123, 321},
			End:      [2]float64{321, 123},
			ObjID:    0,
			PropName: "position",
		},
	}, doc.Actions[1])
}

func TestObjectIDsFollowRegistrationOrder(t *testing.T) {
	sc := New(Canvas{Width: 100, Height: 100})

	const n = 25
	objs := make([]Object, 0, n)
	for i := 0; i < n; i++ {
		var obj Object
		if i%2 == 0 {
			obj = NewRect(V2(float64(i), 0), V2(10, 10), NewColor(i, i, i, 255))
		} else {
			obj = NewText("t", 12, V2(0, float64(i)), NewColor(0, 0, 0, 255))
		}
		require.NoError(t, sc.AddObject(obj))
		objs = append(objs, obj)
	}

	doc, err := sc.Document()
	require.NoError(t, err)
	require.Len(t, doc.Objs, n)

	for i, obj := range objs {
		id, ok := obj.ID()
		require.True(t, ok)
		assert.Equal(t, i, id)
		assert.Equal(t, i, doc.Objs[i].ID)
		assert.Equal(t, obj.Kind(), doc.Objs[i].Kind)
	}
}

func TestActionIDsUseOwnCounter(t *testing.T) {
	sc := New(Canvas{})

	a := NewRect(V2(0, 0), V2(1, 1), NewColor(0, 0, 0, 255))
	b := NewRect(V2(0, 0), V2(1, 1), NewColor(0, 0, 0, 255))
	require.NoError(t, sc.AddObject(a))
	require.NoError(t, sc.AddObject(b))

	fade, err := a.FadeTo(NewColor(255, 255, 255, 255), 1)
	require.NoError(t, err)
	require.NoError(t, sc.AddAction(fade))

	c := NewText("late", 10, V2(0, 0), NewColor(0, 0, 0, 255))
	require.NoError(t, sc.AddObject(c))

	grow, err := b.Grow(2)
	require.NoError(t, err)
	require.NoError(t, sc.AddAction(grow))

	doc, err := sc.Document()
	require.NoError(t, err)

	assert.Equal(t, []int{0, 1, 2}, objIDs(doc))
	assert.Equal(t, []int{0, 1}, actionIDs(doc))
}

func TestSharedIDCounter(t *testing.T) {
	sc := New(Canvas{}, WithSharedIDCounter())

	a := NewRect(V2(0, 0), V2(1, 1), NewColor(0, 0, 0, 255))
	b := NewRect(V2(0, 0), V2(1, 1), NewColor(0, 0, 0, 255))
	require.NoError(t, sc.AddObject(a))
	require.NoError(t, sc.AddObject(b))

	fade, err := a.FadeTo(NewColor(255, 255, 255, 255), 1)
	require.NoError(t, err)
	require.NoError(t, sc.AddAction(fade))

	move, err := a.MoveTo(V2(5, 5), 1)
	require.NoError(t, err)
	require.NoError(t, sc.AddAction(move))

	c := NewText("late", 10, V2(0, 0), NewColor(0, 0, 0, 255))
	require.NoError(t, sc.AddObject(c))

	grow, err := b.Grow(2)
	require.NoError(t, err)
	require.NoError(t, sc.AddAction(grow))

	doc, err := sc.Document()
	require.NoError(t, err)

	// Actions skip ids already taken by objects and vice versa.
	assert.Equal(t, []int{0, 1, 4}, objIDs(doc))
	assert.Equal(t, []int{2, 3, 5}, actionIDs(doc))
}

func TestSharedIDCounterHelloScene(t *testing.T) {
	doc, err := helloScene(t, WithSharedIDCounter()).Document()
	require.NoError(t, err)

	assert.Equal(t, []int{0}, objIDs(doc))
	assert.Equal(t, []int{1, 2}, actionIDs(doc))
}

func TestUnregisteredDocumentFails(t *testing.T) {
	text := NewText("x", 1, V2(0, 0), NewColor(0, 0, 0, 0))
	_, err := text.Document()
	assert.ErrorIs(t, err, ErrPrecondition)

	rect := NewRect(V2(0, 0), V2(1, 1), NewColor(0, 0, 0, 0))
	_, err = rect.Document()
	assert.ErrorIs(t, err, ErrPrecondition)

	sc := New(Canvas{})
	require.NoError(t, sc.AddObject(rect))

	ci, err := rect.FadeTo(NewColor(1, 1, 1, 1), 1)
	require.NoError(t, err)
	_, err = ci.Document()
	assert.ErrorIs(t, err, ErrPrecondition)

	vi, err := rect.Grow(1)
	require.NoError(t, err)
	_, err = vi.Document()
	assert.ErrorIs(t, err, ErrPrecondition)
}

func TestActionAgainstUnregisteredObject(t *testing.T) {
	text := NewText("x", 1, V2(0, 0), NewColor(0, 0, 0, 0))

	_, err := NewColorInterp(text.Color, NewColor(1, 2, 3, 4), text, "color", 1)
	assert.ErrorIs(t, err, ErrPrecondition)

	_, err = NewVectorInterp(text.Position, V2(1, 1), text, "position", 1)
	assert.ErrorIs(t, err, ErrPrecondition)

	_, err = NewVectorInterp(V2(0, 0), V2(1, 1), nil, "position", 1)
	assert.ErrorIs(t, err, ErrPrecondition)

	_, err = text.FadeTo(NewColor(0, 0, 0, 0), 1)
	assert.ErrorIs(t, err, ErrPrecondition)
}

func TestNilPointerTargets(t *testing.T) {
	var text *Text
	var rect *Rect

	assert.NotPanics(t, func() {
		_, err := NewColorInterp(NewColor(0, 0, 0, 0), NewColor(1, 1, 1, 1), text, "color", 1)
		assert.ErrorIs(t, err, ErrPrecondition)

		_, err = NewVectorInterp(V2(0, 0), V2(1, 1), rect, "position", 1)
		assert.ErrorIs(t, err, ErrPrecondition)
	})

	sc := New(Canvas{})
	assert.NotPanics(t, func() {
		assert.ErrorIs(t, sc.AddObject(text), ErrPrecondition)
		assert.ErrorIs(t, sc.AddObject(rect), ErrPrecondition)

		var ci *ColorInterp
		assert.ErrorIs(t, sc.AddAction(ci), ErrPrecondition)
	})
	assert.Empty(t, sc.Objects())
	assert.Empty(t, sc.Actions())
}

func TestRegisterTwiceRejected(t *testing.T) {
	sc := New(Canvas{})
	rect := NewRect(V2(0, 0), V2(1, 1), NewColor(0, 0, 0, 0))
	require.NoError(t, sc.AddObject(rect))

	err := sc.AddObject(rect)
	assert.ErrorIs(t, err, ErrPrecondition)
	assert.Len(t, sc.Objects(), 1)

	assert.ErrorIs(t, sc.AddObject(nil), ErrPrecondition)
	assert.ErrorIs(t, sc.AddAction(nil), ErrPrecondition)
}

func TestDocumentIsIdempotent(t *testing.T) {
	sc := helloScene(t)

	first, err := sc.Document()
	require.NoError(t, err)
	second, err := sc.Document()
	require.NoError(t, err)
	assert.Equal(t, first, second)

	a, err := Marshal(first)
	require.NoError(t, err)
	b, err := Marshal(second)
	require.NoError(t, err)
	assert.Equal(t, string(a), string(b))
}

func TestEmptySceneEmitsEmptyArrays(t *testing.T) {
	doc, err := New(Canvas{}).Document()
	require.NoError(t, err)

	data, err := Marshal(doc)
	require.NoError(t, err)
	assert.JSONEq(t, `{"objs": [], "actions": []}`, string(data))
}

func TestCanvasDefaults(t *testing.T) {
	assert.Equal(t, 30, New(Canvas{Width: 1, Height: 1}).Canvas().FPS)
	assert.Equal(t, 60, New(Canvas{FPS: 60}).Canvas().FPS)
}

func objIDs(doc *Document) []int {
	ids := make([]int, 0, len(doc.Objs))
	for _, o := range doc.Objs {
		ids = append(ids, o.ID)
	}
	return ids
}

func actionIDs(doc *Document) []int {
	ids := make([]int, 0, len(doc.Actions))
	for _, a := range doc.Actions {
		ids = append(ids, a.ID)
	}
	return ids
}
