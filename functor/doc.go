// Package functor maps diagrams along structure-preserving functors
// between hypergraph categories.
//
// 🚀 What is a hypergraph functor?
//
//	A pair of tables — atomic objects to types, boxes to diagrams —
//	extended homomorphically over composition, tensoring and dagger,
//	with one structural override: a spider is never looked up in the
//	box table. Its image is rebuilt by the *target* category's own
//	spider synthesizer over the image type:
//
//	    F(Spider(i, o, t)) = target.Spiders(i, o, F(t))
//
//	This is the naturality law that makes functor images well-defined
//	for every type and arity, including ones never listed in any table.
//
// ✨ Key features:
//
//   - ApplyOb / ApplyTy / Apply — image of an object, a type, or a
//     whole diagram
//   - Box images are validated eagerly: the image's dom/cod must equal
//     the mapped dom/cod of the source box (ErrImageMismatch)
//   - Daggered boxes map to the dagger of the undaggered image, so one
//     table entry serves both directions
//   - Cups, caps and swaps map structurally; composite object images
//     yield nested cups/caps via core.Cups and core.Caps
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/hypercat/functor"
//
//	F := functor.New(
//		map[string]core.Ty{"x": core.TyOf("y")},
//		map[string]core.Diagram{},
//		functor.Hypergraph(),
//	)
//	img, err := F.Apply(diagram)
//
// Errors:
//
//	ErrUnmappedObject - an atomic object missing from the object table.
//	ErrUnmappedBox    - a box missing from the box table.
//	ErrImageMismatch  - a box image with the wrong dom/cod.
//	ErrNilTarget      - the target category has no spider synthesizer.
package functor
