// This file declares the generator set: the primitive morphisms a
// Diagram is layered out of. Generator is a sealed tagged union over
// Box, Cup, Cap, Swap and Spider; callers select behavior with a type
// switch, never with inheritance.

package core

import "fmt"

// Generator is one primitive morphism variant: Box, Cup, Cap, Swap or
// Spider. The interface is sealed; no outside type can implement it.
type Generator interface {
	// Dom returns the input type of the generator.
	Dom() Ty

	// Cod returns the output type of the generator.
	Cod() Ty

	// Dagger returns the reversed generator.
	Dagger() Generator

	// Key returns a canonical string for the generator, suitable for
	// map keys. Structural equality of generators is equality of keys.
	Key() string

	fmt.Stringer

	sealed()
}

// Box is a named atomic generator with explicit domain and codomain.
type Box struct {
	name     string
	dom, cod Ty
	dag      bool
}

// NewBox returns the box with the given name, domain and codomain.
func NewBox(name string, dom, cod Ty) Box {
	return Box{name: name, dom: dom, cod: cod}
}

// Name returns the name of the box.
func (b Box) Name() string { return b.name }

// Dom returns the input type of the box.
func (b Box) Dom() Ty { return b.dom }

// Cod returns the output type of the box.
func (b Box) Cod() Ty { return b.cod }

// IsDagger reports whether the box is the dagger of a named box.
func (b Box) IsDagger() bool { return b.dag }

// Dagger returns the box with domain and codomain swapped and the
// dagger flag toggled. It is an involution.
func (b Box) Dagger() Generator {
	return Box{name: b.name, dom: b.cod, cod: b.dom, dag: !b.dag}
}

// Undagger returns the underlying named box, dropping a dagger if any.
func (b Box) Undagger() Box {
	if !b.dag {
		return b
	}

	return Box{name: b.name, dom: b.cod, cod: b.dom}
}

// Key returns a canonical string for the box.
func (b Box) Key() string {
	return fmt.Sprintf("Box(%s|%s|%s|%t)", b.name, b.dom.Key(), b.cod.Key(), b.dag)
}

// String renders the box as its name, with a dagger mark if reversed.
func (b Box) String() string {
	if b.dag {
		return b.name + "†"
	}

	return b.name
}

func (Box) sealed() {}

// Cup is the duality generator bending two adjoint wires into each
// other: dom = left ⊗ right, cod = empty.
type Cup struct {
	left, right Ty
}

// NewCup returns the cup between an atomic type and its adjoint.
// It fails with ErrNotAtomic if either argument is composite, and with
// ErrAdjointMismatch unless the arguments are exact adjoints — equality
// alone is not enough.
func NewCup(left, right Ty) (Cup, error) {
	if err := checkAdjointPair(left, right); err != nil {
		return Cup{}, err
	}

	return Cup{left: left, right: right}, nil
}

// Left returns the left wire type of the cup.
func (c Cup) Left() Ty { return c.left }

// Right returns the right wire type of the cup.
func (c Cup) Right() Ty { return c.right }

// Dom returns left ⊗ right.
func (c Cup) Dom() Ty { return c.left.Tensor(c.right) }

// Cod returns the empty type.
func (c Cup) Cod() Ty { return Ty{} }

// Dagger returns the cap on the same pair of wires.
func (c Cup) Dagger() Generator { return Cap{left: c.left, right: c.right} }

// Key returns a canonical string for the cup.
func (c Cup) Key() string {
	return fmt.Sprintf("Cup(%s|%s)", c.left.Key(), c.right.Key())
}

// String renders the cup as "Cup(x, y)".
func (c Cup) String() string { return fmt.Sprintf("Cup(%s, %s)", c.left, c.right) }

func (Cup) sealed() {}

// Cap is the duality generator creating two adjoint wires out of
// nothing: dom = empty, cod = left ⊗ right.
type Cap struct {
	left, right Ty
}

// NewCap returns the cap between an atomic type and its adjoint.
// Validation is identical to NewCup.
func NewCap(left, right Ty) (Cap, error) {
	if err := checkAdjointPair(left, right); err != nil {
		return Cap{}, err
	}

	return Cap{left: left, right: right}, nil
}

// Left returns the left wire type of the cap.
func (c Cap) Left() Ty { return c.left }

// Right returns the right wire type of the cap.
func (c Cap) Right() Ty { return c.right }

// Dom returns the empty type.
func (c Cap) Dom() Ty { return Ty{} }

// Cod returns left ⊗ right.
func (c Cap) Cod() Ty { return c.left.Tensor(c.right) }

// Dagger returns the cup on the same pair of wires.
func (c Cap) Dagger() Generator { return Cup{left: c.left, right: c.right} }

// Key returns a canonical string for the cap.
func (c Cap) Key() string {
	return fmt.Sprintf("Cap(%s|%s)", c.left.Key(), c.right.Key())
}

// String renders the cap as "Cap(x, y)".
func (c Cap) String() string { return fmt.Sprintf("Cap(%s, %s)", c.left, c.right) }

func (Cap) sealed() {}

// checkAdjointPair validates the shared Cup/Cap constructor invariant:
// both arguments atomic, and each the exact adjoint of the other.
func checkAdjointPair(left, right Ty) error {
	if !left.Atomic() || !right.Atomic() {
		return fmt.Errorf("cup/cap over %v and %v: %w", left, right, ErrNotAtomic)
	}
	if !right.Equal(left.R()) || !left.Equal(right.L()) {
		return fmt.Errorf("cup/cap over %v and %v: %w", left, right, ErrAdjointMismatch)
	}

	return nil
}

// Swap exchanges a left block of wires with a right block:
// dom = left ⊗ right, cod = right ⊗ left.
type Swap struct {
	left, right Ty
}

// NewSwap returns the swap of the two type blocks. Either block may be
// empty or composite; Swap(x, y) >> Swap(y, x) is the identity on x ⊗ y.
func NewSwap(left, right Ty) Swap {
	return Swap{left: left, right: right}
}

// Left returns the block entering on the left.
func (s Swap) Left() Ty { return s.left }

// Right returns the block entering on the right.
func (s Swap) Right() Ty { return s.right }

// Dom returns left ⊗ right.
func (s Swap) Dom() Ty { return s.left.Tensor(s.right) }

// Cod returns right ⊗ left.
func (s Swap) Cod() Ty { return s.right.Tensor(s.left) }

// Dagger returns the swap of the blocks in the other order.
func (s Swap) Dagger() Generator { return Swap{left: s.right, right: s.left} }

// Key returns a canonical string for the swap.
func (s Swap) Key() string {
	return fmt.Sprintf("Swap(%s|%s)", s.left.Key(), s.right.Key())
}

// String renders the swap as "Swap(x, y)".
func (s Swap) String() string { return fmt.Sprintf("Swap(%s, %s)", s.left, s.right) }

func (Swap) sealed() {}

// Spider is the Frobenius generator with nIn legs in and nOut legs out
// on one atomic type: dom = typ^nIn, cod = typ^nOut. It generalizes
// copying and merging of a wire.
type Spider struct {
	nIn, nOut int
	typ       Ty
}

// NewSpider returns the (nIn, nOut)-legged spider on the atomic type
// typ. It fails with ErrNotAtomic if typ is composite or empty, and
// with ErrNegativeLegs if either leg count is negative.
func NewSpider(nIn, nOut int, typ Ty) (Spider, error) {
	if nIn < 0 || nOut < 0 {
		return Spider{}, fmt.Errorf("spider (%d, %d): %w", nIn, nOut, ErrNegativeLegs)
	}
	if !typ.Atomic() {
		return Spider{}, fmt.Errorf("spider over %v: %w", typ, ErrNotAtomic)
	}

	return Spider{nIn: nIn, nOut: nOut, typ: typ}, nil
}

// LegsIn returns the number of input legs.
func (s Spider) LegsIn() int { return s.nIn }

// LegsOut returns the number of output legs.
func (s Spider) LegsOut() int { return s.nOut }

// Type returns the atomic type of the spider's legs.
func (s Spider) Type() Ty { return s.typ }

// Dom returns typ^nIn.
func (s Spider) Dom() Ty { return s.typ.Pow(s.nIn) }

// Cod returns typ^nOut.
func (s Spider) Cod() Ty { return s.typ.Pow(s.nOut) }

// Dagger returns the spider with legs in and out exchanged.
func (s Spider) Dagger() Generator {
	return Spider{nIn: s.nOut, nOut: s.nIn, typ: s.typ}
}

// L returns the left adjoint: the type adjoint is pushed through while
// the arities stay unchanged, since the spider is self-dual.
func (s Spider) L() Spider {
	return Spider{nIn: s.nIn, nOut: s.nOut, typ: s.typ.L()}
}

// R returns the right adjoint; see L.
func (s Spider) R() Spider {
	return Spider{nIn: s.nIn, nOut: s.nOut, typ: s.typ.R()}
}

// Key returns a canonical string for the spider.
func (s Spider) Key() string {
	return fmt.Sprintf("Spider(%d|%d|%s)", s.nIn, s.nOut, s.typ.Key())
}

// String renders the spider as "Spider(1, 2, x)".
func (s Spider) String() string {
	return fmt.Sprintf("Spider(%d, %d, %s)", s.nIn, s.nOut, s.typ)
}

func (Spider) sealed() {}
