// Package scene builds scene descriptions for the external renderer.
//
// A Scene owns visual objects (text, rectangles) and timed actions
// (color and vector interpolations) that target those objects. Every
// object and action is stamped with an integer id when it is registered
// with the Scene; only registered entities can be serialized.
//
// Basic usage:
//
//	sc := scene.New(scene.Canvas{Width: 800, Height: 600, FPS: 30})
//
//	t := scene.NewText("Hello, world!", 32, scene.V2(123, 321), scene.NewColor(249, 134, 102, 255))
//	if err := sc.AddObject(t); err != nil {
//		return err
//	}
//
//	fade, err := t.FadeTo(scene.NewColor(0, 255, 0, 255), 3)
//	if err != nil {
//		return err
//	}
//	if err := sc.AddAction(fade); err != nil {
//		return err
//	}
//
//	err = sc.Persist("scene.json", false)
//
// The emitted document has the shape
//
//	{"objs": [{"kind", "obj_id", "props"}], "actions": [{"kind", "action_id", "duration", "props"}]}
//
// and its key names are a compatibility contract with the renderer.
package scene
