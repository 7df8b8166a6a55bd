package functor

import (
	"errors"

	"github.com/katalvlaran/hypercat/core"
	"github.com/katalvlaran/hypercat/spider"
)

var (
	// ErrUnmappedObject is returned when an atomic object has no entry
	// in the functor's object table.
	ErrUnmappedObject = errors.New("functor: object not in table")

	// ErrUnmappedBox is returned when a box has no entry in the
	// functor's box table.
	ErrUnmappedBox = errors.New("functor: box not in table")

	// ErrImageMismatch is returned when a box image's dom/cod differ
	// from the functor image of the source box's dom/cod.
	ErrImageMismatch = errors.New("functor: box image has wrong type")

	// ErrNilTarget is returned when the target category carries no
	// spider synthesizer.
	ErrNilTarget = errors.New("functor: target category has no spider synthesizer")
)

// Category bundles the constructors of a functor's codomain that the
// structural rules need. Spiders is the target's own synthesizer; the
// naturality rule routes every spider image through it.
type Category struct {
	Spiders func(nIn, nOut int, t core.Ty) (core.Diagram, error)
}

// Hypergraph returns the default target: the free hypergraph category
// itself, with spider.Spiders as the synthesizer.
func Hypergraph() Category {
	return Category{
		Spiders: func(nIn, nOut int, t core.Ty) (core.Diagram, error) {
			return spider.Spiders(nIn, nOut, t, nil)
		},
	}
}
