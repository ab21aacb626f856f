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

package kindset

import (
	"slices"
	"strings"
)

// Sign distinguishes an atom set from its complement.
type Sign int

const (
	Union Sign = iota
	Negation
)

// Atom is the tagged pair (union, S) meaning "exactly the atoms in S",
// or (negation, S) meaning "every atom except those in S". A nil *Atom
// denotes the absent kind (the empty union, per the normalization
// invariant); Negation with an empty set denotes the top atom (every
// atom, i.e. the unconstrained `atom()` type).
type Atom struct {
	Sign Sign
	Set  []string // sorted, deduplicated
}

func sortedUnique(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	out := slices.Clone(in)
	slices.Sort(out)
	return slices.Compact(out)
}

// NewUnion builds (union, set), collapsing the empty union to the
// absent-kind sentinel nil.
func NewUnion(set []string) *Atom {
	s := sortedUnique(set)
	if len(s) == 0 {
		return nil
	}
	return &Atom{Sign: Union, Set: s}
}

// NewNegation builds (negation, set). An empty set denotes the top atom.
func NewNegation(set []string) *Atom {
	return &Atom{Sign: Negation, Set: sortedUnique(set)}
}

// Top is the atom type containing every atom.
func Top() *Atom { return &Atom{Sign: Negation, Set: nil} }

func (a *Atom) Empty() bool {
	return a == nil || (a.Sign == Union && len(a.Set) == 0)
}

func diffSorted(a, b []string) []string {
	var out []string
	for _, x := range a {
		if _, found := slices.BinarySearch(b, x); !found {
			out = append(out, x)
		}
	}
	return out
}

func unionSorted(a, b []string) []string {
	out := append(slices.Clone(a), b...)
	slices.Sort(out)
	return slices.Compact(out)
}

func interSorted(a, b []string) []string {
	var out []string
	for _, x := range a {
		if _, found := slices.BinarySearch(b, x); found {
			out = append(out, x)
		}
	}
	return out
}

// Intersect implements the four-case intersection table of §4.1.
func Intersect(a, b *Atom) *Atom {
	if a.Empty() || b.Empty() {
		return nil
	}
	switch {
	case a.Sign == Union && b.Sign == Union:
		return NewUnion(interSorted(a.Set, b.Set))
	case a.Sign == Negation && b.Sign == Negation:
		return NewNegation(unionSorted(a.Set, b.Set))
	case a.Sign == Union && b.Sign == Negation:
		return NewUnion(diffSorted(a.Set, b.Set))
	default: // Negation, Union
		return NewUnion(diffSorted(b.Set, a.Set))
	}
}

// UnionOp implements the four-case union table of §4.1.
func UnionOp(a, b *Atom) *Atom {
	if a.Empty() {
		return b
	}
	if b.Empty() {
		return a
	}
	switch {
	case a.Sign == Union && b.Sign == Union:
		return NewUnion(unionSorted(a.Set, b.Set))
	case a.Sign == Negation && b.Sign == Negation:
		return NewNegation(interSorted(a.Set, b.Set))
	case a.Sign == Union && b.Sign == Negation:
		return NewNegation(diffSorted(b.Set, a.Set))
	default: // Negation, Union
		return NewNegation(diffSorted(a.Set, b.Set))
	}
}

// Negate swaps the sign, implementing atom complementation.
func Negate(a *Atom) *Atom {
	if a.Empty() {
		return Top()
	}
	if a.Sign == Union {
		return NewNegation(a.Set)
	}
	return NewUnion(a.Set)
}

// Diff implements a ∖ b = a ∩ ¬b, which matches the four-case
// difference table of §4.1 directly (verified against the spec's table
// by case analysis in the package tests).
func Diff(a, b *Atom) *Atom {
	return Intersect(a, Negate(b))
}

func (a *Atom) String() string {
	if a.Empty() {
		return "atom(none)"
	}
	if a.Sign == Union {
		return "atom(" + strings.Join(a.Set, "|") + ")"
	}
	if len(a.Set) == 0 {
		return "atom"
	}
	return "atom(!" + strings.Join(a.Set, "|") + ")"
}
