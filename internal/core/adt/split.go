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

// splitMemo caches splitOnKey results for the lifetime of one top-level
// emptiness call, keyed by (bdd identity, key), per the Design Notes'
// recommendation that map_split_on_key may be memoized per (bdd, key)
// pair to tame the worst-case exponential blowup in the number of keys.
// Cached pairs record only which node ids were stepped to build them
// (pair.stepped), not a caller's in-progress seen set, so the cache is
// valid regardless of which coinductive traversal is consulting it; the
// seen set relevant to checking a pair's own value is reconstituted at
// each use site as the union of the caller's seen and pair.stepped. A
// fresh memo is created at the start of every public Empty/MapGet/...
// entry point.
type splitMemo struct {
	cache map[splitMemoKey][]pair
}

type splitMemoKey struct {
	bdd *bdd.Diagram[*MapLiteral]
	key string
}

func newSplitMemo() *splitMemo { return &splitMemo{cache: map[splitMemoKey][]pair{}} }

func (m *splitMemo) get(d *bdd.Diagram[*MapLiteral], key string) ([]pair, bool) {
	p, ok := m.cache[splitMemoKey{d, key}]
	return p, ok
}

func (m *splitMemo) put(d *bdd.Diagram[*MapLiteral], key string, pairs []pair) {
	m.cache[splitMemoKey{d, key}] = pairs
}

// findKey returns some field key present in any literal of any node of
// d that is not already in excluded (§4.3 step 1). Keys are walked in a
// stable order (each literal's own sorted field order) so the choice is
// deterministic for a given diagram shape.
func findKey(d *bdd.Diagram[*MapLiteral], excluded map[string]bool) (string, bool) {
	seen := map[*bdd.Diagram[*MapLiteral]]bool{}
	var walk func(d *bdd.Diagram[*MapLiteral]) (string, bool)
	walk = func(d *bdd.Diagram[*MapLiteral]) (string, bool) {
		if d.IsLeaf() || seen[d] {
			return "", false
		}
		seen[d] = true
		for _, k := range sortedKeys(d.Literal().Fields) {
			if !excluded[k] {
				return k, true
			}
		}
		if k, ok := walk(d.High()); ok {
			return k, true
		}
		return walk(d.Low())
	}
	return walk(d)
}

// openEmptyOf computes (is_open, has_empty_witness) for a map BDD all of
// whose literals have had every splittable key removed (§4.3 step 1).
// true is (true,true); false is (false,false); an internal node's own
// literal contributes (true,true) when open, (false,true) when closed,
// and each component of the node's result is taken from the high child
// where the literal's component is true and from the low child where it
// is false, matching the "(b∧c ∨ ¬b∧d)" formula of spec.md §4.3 step 1.
func openEmptyOf(d *bdd.Diagram[*MapLiteral]) (isOpen, hasEmpty bool) {
	if d.IsLeaf() {
		v := d.LeafValue()
		return v, v
	}
	litOpen, litEmpty := d.Literal().Tag == Open, true
	hOpen, hEmpty := openEmptyOf(d.High())
	lOpen, lEmpty := openEmptyOf(d.Low())
	isOpen = (litOpen && hOpen) || (!litOpen && lOpen)
	hasEmpty = (litEmpty && hEmpty) || (!litEmpty && lEmpty)
	return isOpen, hasEmpty
}

// mapNotEmpty decides non-emptiness of a map BDD by repeatedly finding a
// splittable key, normalizing to disjoint (value, rest) pairs, and
// recursing into each rest with the key excluded, terminating via
// openEmptyOf once no more keys remain (§4.3). It short-circuits on the
// first witnessing pair, as the Design Notes direct.
//
// seen carries the set of node ids whose step is already in progress
// further up this same call chain (§4.5's coinductive traversal): a type
// built by the recursive builder routes back through a bounded set of
// fixed occurrence nodes (see BuildRecursive), so re-encountering one of
// them here means the search has looped back on an obligation it is
// already in the middle of discharging. Per spec.md §4.5 the coinductive
// unit for this judgment is true (not-empty): assume the cycle does not
// contradict non-emptiness unless some other, non-cyclic branch already
// has.
func mapNotEmpty(seen map[uint64]bool, memo *splitMemo, d *bdd.Diagram[*MapLiteral], excluded map[string]bool) bool {
	key, ok := findKey(d, excluded)
	if !ok {
		// The remaining maps are inhabited if they admit extra keys or
		// admit none.
		isOpen, hasEmpty := openEmptyOf(d)
		return isOpen || hasEmpty
	}
	pairs := splitOnKey(memo, d, key)
	nextExcluded := make(map[string]bool, len(excluded)+1)
	for k := range excluded {
		nextExcluded[k] = true
	}
	nextExcluded[key] = true
	for _, p := range pairs {
		if !overlapsSeen(seen, p.stepped) {
			if emptyRec(unionSeen(seen, p.stepped), p.value) {
				continue
			}
		}
		// p.stepped re-enters a node whose step is already in progress
		// further up this call chain: assume the coinductive unit for
		// p.value (not-empty) and let rest settle the question instead.
		if mapNotEmpty(seen, memo, p.rest, nextExcluded) {
			return true
		}
	}
	return false
}

// overlapsSeen reports whether any id appears both in seen and ids.
func overlapsSeen(seen map[uint64]bool, ids []uint64) bool {
	for _, id := range ids {
		if seen[id] {
			return true
		}
	}
	return false
}

// MapEmpty reports whether a map BDD denotes the empty set of maps.
func MapEmpty(d *bdd.Diagram[*MapLiteral]) bool {
	if d == nil {
		return true
	}
	return !mapNotEmpty(map[uint64]bool{}, newSplitMemo(), d, map[string]bool{})
}
