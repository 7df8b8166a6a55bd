// Package hypercat is your in-memory toolkit for building, rewriting and
// transporting typed string diagrams in hypergraph categories — compact
// closed, self-dual monoidal categories with swaps and spiders.
//
// 🚀 What is hypercat?
//
//	A pure, zero-side-effect library that brings together:
//		• Core primitives: objects, types, boxes, cups, caps, swaps, spiders
//		• Diagram algebra: composition, tensoring, dagger, nested cups/caps
//		• Spider synthesis: interleaved spiders over composite types
//		• Spider decomposition: balanced binary trees of (1,0)/(2,1) primitives
//		• Coherence: lift any single-wire generator family to composite types
//		• Functors: structure-preserving maps with spider naturality
//
// ✨ Why choose hypercat?
//
//   - Immutable values – every operation returns a fresh Diagram, nothing
//     is ever mutated, so values are safe to share across goroutines
//     without any locking
//   - Eager validation – no invalid diagram is ever observable; all
//     failures are sentinel errors matched with errors.Is
//   - Deterministic algorithms – one canonical output per input, always
//
// Under the hood, everything is organized under four subpackages:
//
//	core/      — Ob, Ty, the generator set and the Diagram value
//	spider/    — spider synthesis over composite types + decomposition
//	coherence/ — generic lift of single-wire factories to composite types
//	functor/   — object/box-table functors preserving spiders
//
// Quick ASCII example:
//
//	    │   │
//	    ╰─●─╯        Spider(2, 1, x): two legs in, one leg out.
//	      │
//
// Dive into each package's doc.go for algorithm outlines, complexity
// notes and runnable examples.
//
//	go get github.com/katalvlaran/hypercat
package hypercat
