// This file declares Ob and Ty, the object model of the free hypergraph
// category: atomic wire labels and ordered sequences of them.
//
// Both are immutable values. Every operation returns a fresh value and
// constructors copy their input slices, so an Ob or Ty can be shared
// freely across goroutines.

package core

import "strings"

// keySep separates object names inside canonical keys. It is a control
// character so that user-chosen names can never collide with the joiner.
const keySep = "\x1f"

// Ob is an atomic wire label.
//
// A hypergraph object is self-dual: its left and right adjoints both
// equal the object itself. This is what distinguishes it from a general
// pivotal object, which need not be self-dual.
type Ob struct {
	name string
}

// NewOb returns the object with the given name.
func NewOb(name string) Ob { return Ob{name: name} }

// Name returns the label of the object.
func (o Ob) Name() string { return o.name }

// L returns the left adjoint of the object, which is the object itself.
func (o Ob) L() Ob { return o }

// R returns the right adjoint of the object, which is the object itself.
func (o Ob) R() Ob { return o }

// Equal reports structural equality of two objects.
func (o Ob) Equal(other Ob) bool { return o.name == other.name }

// String returns the object's name.
func (o Ob) String() string { return o.name }

// Ty is an ordered sequence of objects: the type of a bundle of wires,
// read left to right. The empty Ty is the monoidal unit.
type Ty struct {
	obs []Ob
}

// NewTy returns the type holding the given objects in order.
// Complexity: O(n)
func NewTy(obs ...Ob) Ty {
	out := make([]Ob, len(obs))
	copy(out, obs)

	return Ty{obs: out}
}

// TyOf is a convenience constructor building a Ty from object names.
func TyOf(names ...string) Ty {
	obs := make([]Ob, len(names))
	for i, n := range names {
		obs[i] = NewOb(n)
	}

	return Ty{obs: obs}
}

// Len returns the number of objects in the type.
func (t Ty) Len() int { return len(t.obs) }

// Atomic reports whether the type holds exactly one object.
func (t Ty) Atomic() bool { return len(t.obs) == 1 }

// At returns the i-th object of the type.
func (t Ty) At(i int) Ob { return t.obs[i] }

// Objects returns a copy of the objects inside the type.
func (t Ty) Objects() []Ob {
	out := make([]Ob, len(t.obs))
	copy(out, t.obs)

	return out
}

// Tensor concatenates the receiver with the given types, left to right.
// Complexity: O(total length)
func (t Ty) Tensor(others ...Ty) Ty {
	n := len(t.obs)
	for _, o := range others {
		n += len(o.obs)
	}
	out := make([]Ob, 0, n)
	out = append(out, t.obs...)
	for _, o := range others {
		out = append(out, o.obs...)
	}

	return Ty{obs: out}
}

// Slice returns the sub-type t[i:j].
func (t Ty) Slice(i, j int) Ty {
	out := make([]Ob, j-i)
	copy(out, t.obs[i:j])

	return Ty{obs: out}
}

// Pow returns the n-fold tensor of the type with itself.
// Pow(0) is the empty type; negative n is treated as zero.
// Complexity: O(n·len)
func (t Ty) Pow(n int) Ty {
	if n <= 0 {
		return Ty{}
	}
	out := make([]Ob, 0, n*len(t.obs))
	for i := 0; i < n; i++ {
		out = append(out, t.obs...)
	}

	return Ty{obs: out}
}

// L returns the left adjoint of the type: the adjoint of each object in
// reversed order. With self-dual objects this is plain reversal.
func (t Ty) L() Ty {
	out := make([]Ob, len(t.obs))
	for i, o := range t.obs {
		out[len(t.obs)-1-i] = o.L()
	}

	return Ty{obs: out}
}

// R returns the right adjoint of the type: the adjoint of each object in
// reversed order. With self-dual objects this is plain reversal.
func (t Ty) R() Ty {
	out := make([]Ob, len(t.obs))
	for i, o := range t.obs {
		out[len(t.obs)-1-i] = o.R()
	}

	return Ty{obs: out}
}

// Equal reports structural equality: same objects in the same order.
func (t Ty) Equal(other Ty) bool {
	if len(t.obs) != len(other.obs) {
		return false
	}
	for i, o := range t.obs {
		if !o.Equal(other.obs[i]) {
			return false
		}
	}

	return true
}

// Key returns a canonical string for the type, suitable for map keys.
func (t Ty) Key() string {
	names := make([]string, len(t.obs))
	for i, o := range t.obs {
		names[i] = o.name
	}

	return strings.Join(names, keySep)
}

// String renders the type as "x @ y @ z"; the empty type as "Ty()".
func (t Ty) String() string {
	if len(t.obs) == 0 {
		return "Ty()"
	}
	names := make([]string, len(t.obs))
	for i, o := range t.obs {
		names[i] = o.name
	}

	return strings.Join(names, " @ ")
}
