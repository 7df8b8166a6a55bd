// This file declares Layer and Diagram, and the diagram algebra:
// identity, composition, tensoring and dagger.
//
// A Diagram is a morphism from its domain type to its codomain type,
// built as an ordered sequence of layers. Each layer places one
// generator at a wire offset, with identity wires on both sides; layers
// compose left to right into the declared dom/cod. Diagrams are
// immutable: every operation below returns a newly constructed value.

package core

import (
	"fmt"
	"strings"
)

// Layer places one generator inside a context of identity wires:
// Left ⊗ Gen ⊗ Right.
type Layer struct {
	// Left is the type of the identity wires left of the generator.
	Left Ty

	// Gen is the generator of the layer.
	Gen Generator

	// Right is the type of the identity wires right of the generator.
	Right Ty
}

// Dom returns Left ⊗ Gen.Dom ⊗ Right.
func (l Layer) Dom() Ty { return l.Left.Tensor(l.Gen.Dom(), l.Right) }

// Cod returns Left ⊗ Gen.Cod ⊗ Right.
func (l Layer) Cod() Ty { return l.Left.Tensor(l.Gen.Cod(), l.Right) }

// Offset returns the number of wires left of the generator.
func (l Layer) Offset() int { return l.Left.Len() }

// dagger returns the layer with its generator reversed; the identity
// context is unchanged.
func (l Layer) dagger() Layer {
	return Layer{Left: l.Left, Gen: l.Gen.Dagger(), Right: l.Right}
}

// equal reports structural equality of two layers.
func (l Layer) equal(o Layer) bool {
	return l.Left.Equal(o.Left) && l.Right.Equal(o.Right) && l.Gen.Key() == o.Gen.Key()
}

// Diagram is an immutable morphism with a domain type, a codomain type
// and an ordered sequence of generator layers.
//
// The zero Diagram is the identity on the empty type.
type Diagram struct {
	dom, cod Ty
	layers   []Layer
}

// Id returns the identity diagram on the given type: no layers.
func Id(t Ty) Diagram { return Diagram{dom: t, cod: t} }

// Single returns the one-layer diagram holding just the generator.
func Single(g Generator) Diagram {
	return Diagram{
		dom:    g.Dom(),
		cod:    g.Cod(),
		layers: []Layer{{Gen: g}},
	}
}

// Dom returns the domain type of the diagram.
func (d Diagram) Dom() Ty { return d.dom }

// Cod returns the codomain type of the diagram.
func (d Diagram) Cod() Ty { return d.cod }

// Layers returns a copy of the diagram's layers.
func (d Diagram) Layers() []Layer {
	out := make([]Layer, len(d.layers))
	copy(out, d.layers)

	return out
}

// Size returns the number of layers, i.e. the generator count.
func (d Diagram) Size() int { return len(d.layers) }

// Compose returns the sequential composite d >> others[0] >> others[1]…
// It fails with ErrComposeMismatch when the codomain of one diagram does
// not equal the domain of the next.
// Complexity: O(total layers)
func (d Diagram) Compose(others ...Diagram) (Diagram, error) {
	out := d
	for _, e := range others {
		if !out.cod.Equal(e.dom) {
			return Diagram{}, fmt.Errorf("compose cod %v with dom %v: %w", out.cod, e.dom, ErrComposeMismatch)
		}
		layers := make([]Layer, 0, len(out.layers)+len(e.layers))
		layers = append(layers, out.layers...)
		layers = append(layers, e.layers...)
		out = Diagram{dom: out.dom, cod: e.cod, layers: layers}
	}

	return out, nil
}

// Tensor returns the parallel composite d ⊗ others[0] ⊗ others[1]…
// built as (d ⊗ id) >> (id ⊗ e): d's layers run first with the other
// diagram's domain appended on the right, then the other diagram's
// layers run with d's codomain prepended on the left.
// Complexity: O(total layers)
func (d Diagram) Tensor(others ...Diagram) Diagram {
	out := d
	for _, e := range others {
		layers := make([]Layer, 0, len(out.layers)+len(e.layers))
		for _, l := range out.layers {
			layers = append(layers, Layer{Left: l.Left, Gen: l.Gen, Right: l.Right.Tensor(e.dom)})
		}
		for _, l := range e.layers {
			layers = append(layers, Layer{Left: out.cod.Tensor(l.Left), Gen: l.Gen, Right: l.Right})
		}
		out = Diagram{
			dom:    out.dom.Tensor(e.dom),
			cod:    out.cod.Tensor(e.cod),
			layers: layers,
		}
	}

	return out
}

// Dagger returns the reversed diagram: layers in reverse order, each
// generator daggered, dom and cod exchanged. It is an involution.
func (d Diagram) Dagger() Diagram {
	layers := make([]Layer, len(d.layers))
	for i, l := range d.layers {
		layers[len(d.layers)-1-i] = l.dagger()
	}

	return Diagram{dom: d.cod, cod: d.dom, layers: layers}
}

// Equal reports structural equality: same dom, cod, and layer sequence.
func (d Diagram) Equal(o Diagram) bool {
	if !d.dom.Equal(o.dom) || !d.cod.Equal(o.cod) || len(d.layers) != len(o.layers) {
		return false
	}
	for i, l := range d.layers {
		if !l.equal(o.layers[i]) {
			return false
		}
	}

	return true
}

// Key returns a canonical string for the diagram, suitable for map keys
// and memoization.
func (d Diagram) Key() string {
	var sb strings.Builder
	sb.WriteString("Diagram(")
	sb.WriteString(d.dom.Key())
	sb.WriteString("->")
	sb.WriteString(d.cod.Key())
	for _, l := range d.layers {
		sb.WriteString(";")
		sb.WriteString(l.Left.Key())
		sb.WriteString("[")
		sb.WriteString(l.Gen.Key())
		sb.WriteString("]")
		sb.WriteString(l.Right.Key())
	}
	sb.WriteString(")")

	return sb.String()
}

// String renders the diagram as its generator sequence, e.g.
// "Spider(2, 1, x) >> f", or "Id(x @ y)" for an identity.
func (d Diagram) String() string {
	if len(d.layers) == 0 {
		return fmt.Sprintf("Id(%s)", d.dom)
	}
	parts := make([]string, len(d.layers))
	for i, l := range d.layers {
		parts[i] = l.Gen.String()
	}

	return strings.Join(parts, " >> ")
}
