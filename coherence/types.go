package coherence

import (
	"errors"

	"github.com/katalvlaran/hypercat/core"
)

// DefaultMaxLegs bounds requested arities when no option is given. The
// fan-out branch of the recursion is linear in the arity, so the bound
// also caps recursion depth.
const DefaultMaxLegs = 1 << 16

var (
	// ErrNilFactory is returned by builders obtained from a nil factory.
	ErrNilFactory = errors.New("coherence: nil factory")

	// ErrLegLimit is returned when a requested arity, or the total wire
	// count it implies, exceeds Options.MaxLegs.
	ErrLegLimit = errors.New("coherence: leg limit exceeded")
)

// Factory produces the primitive diagram of a single-wire family for an
// atomic type x: a legs in, b legs out, optionally carrying a phase.
// A nil phase means the plain, unphased member of the family.
type Factory func(a, b int, x core.Ty, phase any) (core.Diagram, error)

// Builder is the lifted family: like Factory, but defined for every
// composite type x.
type Builder func(a, b int, x core.Ty, phase any) (core.Diagram, error)

// Options configures a lifted builder.
//   - MaxLegs: upper bound on arities and on total wires
//     (arity × type width); values ≤ 0 fall back to DefaultMaxLegs.
type Options struct {
	MaxLegs int
}

// DefaultOptions returns the options used when nil is passed.
func DefaultOptions() *Options {
	return &Options{MaxLegs: DefaultMaxLegs}
}

// maxLegs resolves the effective bound for possibly-nil options.
func (o *Options) maxLegs() int {
	if o == nil || o.MaxLegs <= 0 {
		return DefaultMaxLegs
	}

	return o.MaxLegs
}
