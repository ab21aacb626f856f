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

package adt

import "github.com/settype/settype/internal/core/bdd"

// pair is one (value_at_key, rest_of_map) line produced by splitting a
// map BDD on a key (§4.3). rest is itself a map BDD to recurse into.
// stepped records the ids of any nodes that were stepped to build
// value, so that a caller checking Empty(value) can extend its own
// coinductive seen set with exactly the obligations this pair's
// construction already discharged (see mapNotEmpty in split.go).
type pair struct {
	value   *Descriptor
	rest    *bdd.Diagram[*MapLiteral]
	stepped []uint64
}

// splitResult is the outcome of single_split (§4.3 step 2) for one
// literal against one key, including the two "no split" sentinels.
type splitResult struct {
	value        *Descriptor
	rest         *MapLiteral
	stepped      []uint64
	dropPositive bool // universal open literal met in a positive position
	discardPath  bool // universal open literal met in a negative position
}

// singleSplit implements §4.3 step 2. Stepping a field's node is always
// safe here: Step only ever evaluates one generator layer, so it
// terminates regardless of whether the node recurs further down. The
// coinductive cycle guard lives one level up, in mapNotEmpty, which
// decides whether to descend into checking this result's own emptiness
// or to assume the coinductive unit instead (see split.go).
func singleSplit(lit *MapLiteral, key string, positive bool) splitResult {
	if n, ok := lit.Fields[key]; ok {
		return splitResult{value: Step(n), rest: lit.withoutKey(key), stepped: []uint64{n.ID()}}
	}
	if lit.Tag == Closed {
		return splitResult{value: notSet(), rest: lit.withoutKey(key)}
	}
	if len(lit.Fields) == 0 {
		if positive {
			return splitResult{dropPositive: true}
		}
		return splitResult{discardPath: true}
	}
	return splitResult{value: termOrNotSet(), rest: lit.withoutKey(key)}
}

// splitOnKey normalizes a map BDD's DNF into disjoint (value, rest)
// pairs for one key, per §4.3 steps 2-3 and §4.3.1, memoized per the
// Design Notes. The resulting pairs never depend on a caller's
// coinductive seen set (see split.go's splitMemo doc comment), so the
// memo can be shared across callers with different seen sets.
func splitOnKey(memo *splitMemo, d *bdd.Diagram[*MapLiteral], key string) []pair {
	if cached, ok := memo.get(d, key); ok {
		return cached
	}
	var out []pair
	for _, line := range bdd.Paths(d) {
		out = append(out, splitLine(line, key)...)
	}
	memo.put(d, key, out)
	return out
}

func splitLine(line bdd.Path[*MapLiteral], key string) []pair {
	// Field values may carry not_set, so the identity for intersecting
	// them is termOrNotSet, not Term.
	F := termOrNotSet()
	S := bdd.True[*MapLiteral]()
	var stepped []uint64
	for _, lit := range line.Pos {
		r := singleSplit(lit, key, true)
		if r.dropPositive {
			continue
		}
		F = Intersection(F, r.value)
		S = bdd.Intersection(S, literalDiagram(r.rest))
		stepped = append(stepped, r.stepped...)
	}
	if emptyRec(unionSeen(nil, stepped), F) {
		return nil
	}

	var negs []pair
	for _, lit := range line.Neg {
		r := singleSplit(lit, key, false)
		if r.discardPath {
			return nil
		}
		negs = append(negs, pair{value: r.value, rest: literalDiagram(r.rest), stepped: r.stepped})
	}
	disjoint := disjointifyNegatives(negs)

	var out []pair
	unionT := None()
	for _, n := range disjoint {
		unionT = Union(unionT, n.value)
		fMinusT := Intersection(F, n.value)
		sMinusS := bdd.Difference(S, n.rest)
		allStepped := append(append([]uint64{}, stepped...), n.stepped...)
		if !emptyRec(unionSeen(nil, allStepped), fMinusT) && !isFalseDiagram(sMinusS) {
			out = append(out, pair{value: fMinusT, rest: sMinusS, stepped: allStepped})
		}
	}
	remainder := Difference(F, unionT)
	if !emptyRec(unionSeen(nil, stepped), remainder) && !isFalseDiagram(S) {
		out = append(out, pair{value: remainder, rest: S, stepped: stepped})
	}
	return out
}

func isFalseDiagram(d *bdd.Diagram[*MapLiteral]) bool {
	return d.IsLeaf() && !d.LeafValue()
}

// unionSeen builds a fresh set containing seen plus every id in extra,
// without mutating seen.
func unionSeen(seen map[uint64]bool, extra []uint64) map[uint64]bool {
	out := make(map[uint64]bool, len(seen)+len(extra))
	for id := range seen {
		out[id] = true
	}
	for _, id := range extra {
		out[id] = true
	}
	return out
}

// disjointifyNegatives makes the first components of a set of pairs
// pairwise disjoint (§4.3.1 step 2), folding each new pair into an
// accumulator via the standard three-way split on overlap.
func disjointifyNegatives(negs []pair) []pair {
	var acc []pair
	for _, t := range negs {
		acc = insertDisjoint(acc, t)
	}
	return acc
}

func insertDisjoint(acc []pair, t pair) []pair {
	remaining := t.value
	var out []pair
	for _, s := range acc {
		if Empty(remaining) {
			out = append(out, s)
			continue
		}
		switch {
		case staticSubtype(remaining, s.value) && staticSubtype(s.value, remaining):
			// remaining == s.value: fully absorbed into s.
			out = append(out, pair{value: s.value, rest: bdd.Union(s.rest, t.rest), stepped: mergeStepped(s.stepped, t.stepped)})
			remaining = None()
		case staticSubtype(remaining, s.value):
			// t1 ⊆ s1
			rest1 := Difference(s.value, remaining)
			if !Empty(rest1) {
				out = append(out, pair{value: rest1, rest: s.rest, stepped: s.stepped})
			}
			out = append(out, pair{value: remaining, rest: bdd.Union(s.rest, t.rest), stepped: mergeStepped(s.stepped, t.stepped)})
			remaining = None()
		case staticSubtype(s.value, remaining):
			// s1 ⊆ t1
			out = append(out, pair{value: s.value, rest: bdd.Union(s.rest, t.rest), stepped: mergeStepped(s.stepped, t.stepped)})
			remaining = Difference(remaining, s.value)
		default:
			inter := Intersection(remaining, s.value)
			if Empty(inter) {
				out = append(out, s)
				continue
			}
			rest1 := Difference(s.value, inter)
			if !Empty(rest1) {
				out = append(out, pair{value: rest1, rest: s.rest, stepped: s.stepped})
			}
			out = append(out, pair{value: inter, rest: bdd.Union(s.rest, t.rest), stepped: mergeStepped(s.stepped, t.stepped)})
			remaining = Difference(remaining, inter)
		}
	}
	if !Empty(remaining) {
		out = append(out, pair{value: remaining, rest: t.rest, stepped: t.stepped})
	}
	return out
}

func mergeStepped(a, b []uint64) []uint64 {
	return append(append([]uint64{}, a...), b...)
}
