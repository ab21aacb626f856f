// Copyright 2024 Settype Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package bdd implements a generic binary decision diagram whose internal
// nodes carry arbitrary totally ordered literals (§4.2 of the engine
// design). It is deliberately opaque to literal semantics: callers supply
// the literal type and its total order, and get back balanced-merge
// union/intersection/difference and DNF path extraction.
//
// The node/Apply shape is grounded on the retrieved rudd BDD reference
// (other_examples/34c4aa9e_dalzilio-rudd__bdd.go.go), adapted from a
// fixed numbered-variable table to a literal-carrying, pointer-free
// encoding: this engine's "variables" are open-ended structured literals
// (map literals), not members of a small fixed universe, so there is no
// Varnum/Ithvar table here — a diagram node embeds its literal directly.
package bdd

// Literal is the total-order constraint a BDD's decision labels must
// satisfy. Compare follows the usual convention: negative if the
// receiver sorts before other, zero if equal, positive otherwise.
type Literal[L any] interface {
	Compare(other L) int
}

// Diagram is either a boolean leaf or an internal decision node
// (Lit, High, Low) with High chosen when Lit holds and Low otherwise.
// The invariant enforced by construction is that Lit sorts strictly
// before any label appearing in High or Low.
type Diagram[L Literal[L]] struct {
	isLeaf bool
	leaf   bool

	lit  L
	high *Diagram[L]
	low  *Diagram[L]
}

func True[L Literal[L]]() *Diagram[L] { return &Diagram[L]{isLeaf: true, leaf: true} }

func False[L Literal[L]]() *Diagram[L] { return &Diagram[L]{isLeaf: true, leaf: false} }

// From lifts a boolean constant into a Diagram.
func From[L Literal[L]](v bool) *Diagram[L] {
	if v {
		return True[L]()
	}
	return False[L]()
}

// Node builds a decision node for lit with the given branches. When both
// branches are the same leaf, that leaf is returned instead.
func Node[L Literal[L]](lit L, high, low *Diagram[L]) *Diagram[L] {
	if high.isLeaf && low.isLeaf && high.leaf == low.leaf {
		return high
	}
	return &Diagram[L]{lit: lit, high: high, low: low}
}

func (d *Diagram[L]) IsLeaf() bool { return d.isLeaf }

// LeafValue returns the boolean value of a leaf diagram; it panics if d
// is not a leaf, which is an internal-invariant violation for callers
// that are expected to have checked IsLeaf first.
func (d *Diagram[L]) LeafValue() bool {
	if !d.isLeaf {
		panic("bdd: LeafValue called on an internal node")
	}
	return d.leaf
}

func (d *Diagram[L]) Literal() L { return d.lit }

func (d *Diagram[L]) High() *Diagram[L] { return d.high }

func (d *Diagram[L]) Low() *Diagram[L] { return d.low }

// Union computes a ∨ b.
func Union[L Literal[L]](a, b *Diagram[L]) *Diagram[L] {
	switch {
	case a.isLeaf && a.leaf:
		return a
	case b.isLeaf && b.leaf:
		return b
	case a.isLeaf && !a.leaf:
		return b
	case b.isLeaf && !b.leaf:
		return a
	}
	switch c := a.lit.Compare(b.lit); {
	case c == 0:
		return Node(a.lit, Union(a.high, b.high), Union(a.low, b.low))
	case c < 0:
		return Node(a.lit, Union(a.high, b), Union(a.low, b))
	default:
		return Node(b.lit, Union(a, b.high), Union(a, b.low))
	}
}

// Intersection computes a ∧ b.
func Intersection[L Literal[L]](a, b *Diagram[L]) *Diagram[L] {
	switch {
	case a.isLeaf && !a.leaf:
		return a
	case b.isLeaf && !b.leaf:
		return b
	case a.isLeaf && a.leaf:
		return b
	case b.isLeaf && b.leaf:
		return a
	}
	switch c := a.lit.Compare(b.lit); {
	case c == 0:
		return Node(a.lit, Intersection(a.high, b.high), Intersection(a.low, b.low))
	case c < 0:
		return Node(a.lit, Intersection(a.high, b), Intersection(a.low, b))
	default:
		return Node(b.lit, Intersection(a, b.high), Intersection(a, b.low))
	}
}

// Difference computes a ∖ b.
func Difference[L Literal[L]](a, b *Diagram[L]) *Diagram[L] {
	switch {
	case b.isLeaf && b.leaf:
		return False[L]()
	case a.isLeaf && !a.leaf:
		return a
	case b.isLeaf && !b.leaf:
		return a
	case a.isLeaf && a.leaf:
		return Negate(b)
	}
	switch c := a.lit.Compare(b.lit); {
	case c == 0:
		return Node(a.lit, Difference(a.high, b.high), Difference(a.low, b.low))
	case c < 0:
		return Node(a.lit, Difference(a.high, b), Difference(a.low, b))
	default:
		return Node(b.lit, Difference(a, b.high), Difference(a, b.low))
	}
}

// Negate computes ¬a.
func Negate[L Literal[L]](a *Diagram[L]) *Diagram[L] {
	if a.isLeaf {
		return From[L](!a.leaf)
	}
	return Node(a.lit, Negate(a.high), Negate(a.low))
}

// Path is one line of the DNF extracted by Paths: the conjunction of
// every positive literal and the negation of every negative literal.
type Path[L any] struct {
	Pos []L
	Neg []L
}

// Paths extracts every root-to-leaf path ending in a true leaf, as the
// DNF line it represents.
func Paths[L Literal[L]](d *Diagram[L]) []Path[L] {
	var out []Path[L]
	var walk func(d *Diagram[L], pos, neg []L)
	walk = func(d *Diagram[L], pos, neg []L) {
		if d.isLeaf {
			if d.leaf {
				out = append(out, Path[L]{Pos: append([]L(nil), pos...), Neg: append([]L(nil), neg...)})
			}
			return
		}
		walk(d.high, append(append([]L(nil), pos...), d.lit), neg)
		walk(d.low, pos, append(append([]L(nil), neg...), d.lit))
	}
	walk(d, nil, nil)
	return out
}
