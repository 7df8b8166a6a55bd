// SPDX-License-Identifier: MIT

package spider

import "errors"

// DefaultMaxLegs bounds spider arities when no explicit option is given.
// The decomposition recursion is logarithmic in the leg count, so the
// default is generous while still ruling out runaway call stacks.
const DefaultMaxLegs = 1 << 16

// ErrLegLimit is returned when a requested arity, or the total wire
// count it implies, exceeds Options.MaxLegs.
var ErrLegLimit = errors.New("spider: leg limit exceeded")

// Options configures the synthesizer and the decomposition.
//   - MaxLegs: upper bound on leg counts and on total wires
//     (legs × type width); values ≤ 0 fall back to DefaultMaxLegs.
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
