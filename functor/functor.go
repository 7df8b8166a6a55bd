package functor

import (
	"fmt"

	"github.com/katalvlaran/hypercat/core"
)

// Functor maps objects and boxes of the free hypergraph category into a
// target category via lookup tables, extended structurally to types and
// diagrams. Spiders bypass the box table: their images are synthesized
// by the target (see the package documentation).
//
// A Functor is an immutable value; New copies both tables.
type Functor struct {
	obs    map[string]core.Ty
	boxes  map[string]core.Diagram
	target Category
}

// New returns the functor with the given object table (keyed by object
// name), box table (keyed by the Key of the undaggered box) and target
// category.
func New(obs map[string]core.Ty, boxes map[string]core.Diagram, target Category) Functor {
	o := make(map[string]core.Ty, len(obs))
	for k, v := range obs {
		o[k] = v
	}
	b := make(map[string]core.Diagram, len(boxes))
	for k, v := range boxes {
		b[k] = v
	}

	return Functor{obs: o, boxes: b, target: target}
}

// ApplyOb returns the image type of an atomic object.
func (f Functor) ApplyOb(o core.Ob) (core.Ty, error) {
	img, ok := f.obs[o.Name()]
	if !ok {
		return core.Ty{}, fmt.Errorf("object %q: %w", o.Name(), ErrUnmappedObject)
	}

	return img, nil
}

// ApplyTy returns the image of a type: the concatenation of the images
// of its objects, so that F(u ⊗ v) = F(u) ⊗ F(v).
func (f Functor) ApplyTy(t core.Ty) (core.Ty, error) {
	out := core.Ty{}
	for i := 0; i < t.Len(); i++ {
		img, err := f.ApplyOb(t.At(i))
		if err != nil {
			return core.Ty{}, err
		}
		out = out.Tensor(img)
	}

	return out, nil
}

// Apply returns the image of a diagram: each layer maps to
// id(F(left)) ⊗ F(gen) ⊗ id(F(right)), composed in order.
// Complexity: O(layers) generator images.
func (f Functor) Apply(d core.Diagram) (core.Diagram, error) {
	domImg, err := f.ApplyTy(d.Dom())
	if err != nil {
		return core.Diagram{}, err
	}
	out := core.Id(domImg)
	for _, l := range d.Layers() {
		left, err := f.ApplyTy(l.Left)
		if err != nil {
			return core.Diagram{}, err
		}
		right, err := f.ApplyTy(l.Right)
		if err != nil {
			return core.Diagram{}, err
		}
		gen, err := f.applyGenerator(l.Gen)
		if err != nil {
			return core.Diagram{}, err
		}
		out, err = out.Compose(core.Id(left).Tensor(gen, core.Id(right)))
		if err != nil {
			return core.Diagram{}, err
		}
	}

	return out, nil
}

// applyGenerator returns the image of one generator, selected by
// variant.
func (f Functor) applyGenerator(g core.Generator) (core.Diagram, error) {
	switch gen := g.(type) {
	case core.Spider:
		// Naturality: never the box table, always the target's own
		// synthesizer over the image type.
		if f.target.Spiders == nil {
			return core.Diagram{}, ErrNilTarget
		}
		typ, err := f.ApplyTy(gen.Type())
		if err != nil {
			return core.Diagram{}, err
		}

		return f.target.Spiders(gen.LegsIn(), gen.LegsOut(), typ)

	case core.Box:
		base := gen.Undagger()
		img, ok := f.boxes[base.Key()]
		if !ok {
			return core.Diagram{}, fmt.Errorf("box %q: %w", base.Name(), ErrUnmappedBox)
		}
		dom, err := f.ApplyTy(base.Dom())
		if err != nil {
			return core.Diagram{}, err
		}
		cod, err := f.ApplyTy(base.Cod())
		if err != nil {
			return core.Diagram{}, err
		}
		if !img.Dom().Equal(dom) || !img.Cod().Equal(cod) {
			return core.Diagram{}, fmt.Errorf("box %q image %v -> %v, want %v -> %v: %w",
				base.Name(), img.Dom(), img.Cod(), dom, cod, ErrImageMismatch)
		}
		if gen.IsDagger() {
			return img.Dagger(), nil
		}

		return img, nil

	case core.Swap:
		left, err := f.ApplyTy(gen.Left())
		if err != nil {
			return core.Diagram{}, err
		}
		right, err := f.ApplyTy(gen.Right())
		if err != nil {
			return core.Diagram{}, err
		}

		return core.Single(core.NewSwap(left, right)), nil

	case core.Cup:
		left, right, err := f.applyPair(gen.Left(), gen.Right())
		if err != nil {
			return core.Diagram{}, err
		}

		return core.Cups(left, right)

	case core.Cap:
		left, right, err := f.applyPair(gen.Left(), gen.Right())
		if err != nil {
			return core.Diagram{}, err
		}

		return core.Caps(left, right)

	default:
		// Generator is sealed; a new variant here is a programmer error.
		panic(fmt.Sprintf("functor: unknown generator variant %T", g))
	}
}

// applyPair maps both sides of a cup or cap.
func (f Functor) applyPair(left, right core.Ty) (core.Ty, core.Ty, error) {
	l, err := f.ApplyTy(left)
	if err != nil {
		return core.Ty{}, core.Ty{}, err
	}
	r, err := f.ApplyTy(right)
	if err != nil {
		return core.Ty{}, core.Ty{}, err
	}

	return l, r, nil
}
