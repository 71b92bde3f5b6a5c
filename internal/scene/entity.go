package scene

import "reflect"

// ObjectKind tags the visual primitive variants.
type ObjectKind string

const (
	KindText ObjectKind = "text"
	KindRect ObjectKind = "rect"
)

// ActionKind tags the timed mutation variants.
type ActionKind string

const (
	KindColorInterp  ActionKind = "clrInterp"
	KindVectorInterp ActionKind = "v2Interp"
)

// Entity is the identity capability shared by objects and actions.
//
// An entity is Unregistered until a Scene stamps it with AssignID, and
// Registered afterwards. Only registered entities can produce a document.
// Objects and actions draw ids from separate spaces.
type Entity interface {
	// ID returns the assigned id and whether one has been assigned.
	ID() (int, bool)
	// AssignID stamps the entity. Only Scene calls it, once per entity.
	AssignID(id int)
}

// identity is embedded by every concrete object and action.
type identity struct {
	id       int
	assigned bool
}

func (e *identity) ID() (int, bool) {
	return e.id, e.assigned
}

func (e *identity) AssignID(id int) {
	e.id = id
	e.assigned = true
}

func (e *identity) requireID(kind string) (int, error) {
	if !e.assigned {
		return 0, preconditionf("%s has no id; register it with a Scene first", kind)
	}
	return e.id, nil
}

// idOf returns the id of a registered entity.
func idOf(e Entity) (int, error) {
	if isNil(e) {
		return 0, preconditionf("target object is nil")
	}
	id, ok := e.ID()
	if !ok {
		return 0, preconditionf("target object has no id; register it with a Scene first")
	}
	return id, nil
}

// isNil reports whether e is nil or wraps a nil pointer such as (*Text)(nil).
func isNil(e Entity) bool {
	if e == nil {
		return true
	}
	v := reflect.ValueOf(e)
	return v.Kind() == reflect.Pointer && v.IsNil()
}
