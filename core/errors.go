// Package core: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the core
// package. All constructors and operations MUST return these sentinels and
// tests MUST check them via errors.Is. No operation panics on
// user-triggered error conditions; panics are reserved for programmer
// errors in private helpers.

package core

import "errors"

var (
	// ErrNotAtomic is returned when a composite (or empty) type is passed
	// where an atomic type — exactly one object — is required, e.g. the
	// type of a Spider or an argument of Cup/Cap.
	ErrNotAtomic = errors.New("core: type is not atomic")

	// ErrAdjointMismatch is returned when the two arguments of Cup, Cap,
	// Cups or Caps are not exact left/right adjoints of each other.
	ErrAdjointMismatch = errors.New("core: types are not adjoint")

	// ErrComposeMismatch is returned when the codomain of a diagram does
	// not equal the domain of the diagram composed after it.
	ErrComposeMismatch = errors.New("core: codomain does not match domain")

	// ErrNegativeLegs is returned when a spider is requested with a
	// negative number of legs in or out.
	ErrNegativeLegs = errors.New("core: negative number of legs")

	// ErrBadPermutation is returned when the index slice passed to
	// Permutation is not a permutation of 0..len-1.
	ErrBadPermutation = errors.New("core: indices are not a permutation")
)
