package scene

// Canvas is the render target configuration. It is held by the Scene
// but not emitted in the document.
type Canvas struct {
	Width      int
	Height     int
	FPS        int
	OutputPath string
}

// Option configures a Scene.
type Option func(*Scene)

// WithSharedIDCounter makes actions share the object counter: each action
// takes the next object id and advances it, so object and action ids never
// collide. Without it actions get their own counter starting at 0.
func WithSharedIDCounter() Option {
	return func(s *Scene) {
		s.sharedIDs = true
	}
}

// Scene owns objects and actions in insertion order and assigns their ids.
// It is append-only and not safe for concurrent use.
type Scene struct {
	canvas Canvas

	objs    []Object
	actions []Action

	nextObjID    int
	nextActionID int
	sharedIDs    bool
}

// New returns an empty scene. FPS defaults to 30 when unset.
func New(canvas Canvas, opts ...Option) *Scene {
	if canvas.FPS == 0 {
		canvas.FPS = 30
	}
	s := &Scene{canvas: canvas}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Scene) Canvas() Canvas { return s.canvas }

// AddObject stamps obj with the next object id and appends it.
// Nil or already registered objects are rejected with ErrPrecondition.
func (s *Scene) AddObject(obj Object) error {
	if isNil(obj) {
		return preconditionf("nil object")
	}
	if id, ok := obj.ID(); ok {
		return preconditionf("%s already registered as obj %d", obj.Kind(), id)
	}

	obj.AssignID(s.nextObjID)
	s.objs = append(s.objs, obj)
	s.nextObjID++

	Logger().Debug("object registered", "kind", obj.Kind(), "obj_id", s.nextObjID-1)
	return nil
}

// AddAction stamps action with the next action id and appends it.
func (s *Scene) AddAction(action Action) error {
	if isNil(action) {
		return preconditionf("nil action")
	}
	if id, ok := action.ID(); ok {
		return preconditionf("%s already registered as action %d", action.Kind(), id)
	}

	var id int
	if s.sharedIDs {
		id = s.nextObjID
		s.nextObjID++
	} else {
		id = s.nextActionID
		s.nextActionID++
	}
	action.AssignID(id)
	s.actions = append(s.actions, action)

	Logger().Debug("action registered", "kind", action.Kind(), "action_id", id)
	return nil
}

// Objects returns the registered objects in insertion order.
func (s *Scene) Objects() []Object {
	out := make([]Object, len(s.objs))
	copy(out, s.objs)
	return out
}

// Actions returns the registered actions in insertion order.
func (s *Scene) Actions() []Action {
	out := make([]Action, len(s.actions))
	copy(out, s.actions)
	return out
}

// Document projects the current state. Repeated calls without
// intervening registrations return equal documents.
func (s *Scene) Document() (*Document, error) {
	doc := &Document{
		Objs:    make([]ObjectDoc, 0, len(s.objs)),
		Actions: make([]ActionDoc, 0, len(s.actions)),
	}

	for _, obj := range s.objs {
		od, err := obj.Document()
		if err != nil {
			return nil, err
		}
		doc.Objs = append(doc.Objs, od)
	}

	for _, action := range s.actions {
		ad, err := action.Document()
		if err != nil {
			return nil, err
		}
		doc.Actions = append(doc.Actions, ad)
	}

	return doc, nil
}
