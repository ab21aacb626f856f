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

import (
	"github.com/settype/settype/internal/core/bdd"
	"github.com/settype/settype/internal/core/kindset"
)

// mapOnly extracts a descriptor's Map kind, rejecting anything that
// also carries bitmap or atom content: the map-query operations below
// are defined only on descriptors that are maps, and nothing else
// (§6). A gradual descriptor's dynamic bound must itself be map-only.
func mapOnly(d *Descriptor) *bdd.Diagram[*MapLiteral] {
	td := dynamicBound(d)
	if !td.Bitmap.Empty() || !td.Atom.Empty() {
		misuse("map operation applied to a non-map type")
	}
	if td.Map == nil {
		misuse("map operation applied to the empty type")
	}
	return td.Map
}

// MapGet returns the value type at key, splitting the map's BDD on key
// and unioning the value across every disjoint pair (§6 map_get). It
// panics via DomainMisuse if d is not (only) a map type.
func MapGet(d *Descriptor, key string) *Descriptor {
	m := mapOnly(d)
	memo := newSplitMemo()
	out := None()
	for _, p := range splitOnKey(memo, m, key) {
		out = Union(out, p.value)
	}
	return out
}

// HasNotSet reports whether d's static bitmap carries the not_set
// marker, i.e. whether d denotes a map field value that may be absent.
// Callers check this before StripNotSet discards the marker (§3
// invariant 3: not_set is a field-value marker only, never part of a
// user-visible value type).
func HasNotSet(d *Descriptor) bool { return d.Bitmap.Has(kindset.NotSet) }

// StripNotSet removes the not_set marker from d, at both the static
// level and, if d is gradual, its Dynamic bound. Every public boundary
// that returns a value type derived from a map field (settype.MapGet and
// the quote package's field rendering) must call this before handing the
// result to a caller.
func StripNotSet(d *Descriptor) *Descriptor {
	if d == nil {
		return nil
	}
	out := &Descriptor{Bitmap: d.Bitmap &^ kindset.NotSet, Atom: d.Atom, Map: d.Map}
	if d.Dynamic != nil {
		out.Dynamic = StripNotSet(d.Dynamic)
	}
	return out
}

// MapHasKey reports whether every value of d's map type has key bound
// to a value other than not_set (§6 map_has_key?).
func MapHasKey(d *Descriptor, key string) bool {
	v := MapGet(d, key)
	return !Intersects(v, notSet())
}

// MapMayHaveKey reports whether some value of d's map type has key
// bound to a value other than not_set (§6 map_may_have_key?).
func MapMayHaveKey(d *Descriptor, key string) bool {
	v := MapGet(d, key)
	return !Equal(v, notSet())
}

// declaredKeys collects every field key mentioned in any literal
// reachable from d's map BDD. This is only a candidate set (open maps
// admit keys no literal declares, and a declared key need not be
// guaranteed present); MapKeys below narrows it to the keys that are
// actually guaranteed.
func declaredKeys(m *bdd.Diagram[*MapLiteral]) []string {
	set := map[string]bool{}
	var walk func(n *bdd.Diagram[*MapLiteral])
	visited := map[*bdd.Diagram[*MapLiteral]]bool{}
	walk = func(n *bdd.Diagram[*MapLiteral]) {
		if n.IsLeaf() || visited[n] {
			return
		}
		visited[n] = true
		for _, k := range sortedKeys(n.Literal().Fields) {
			set[k] = true
		}
		walk(n.High())
		walk(n.Low())
	}
	walk(m)
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	return sortStrings(out)
}

// MapKeys returns the guaranteed keys of d's map type, in sorted order:
// every key bound to a value other than not_set in every map the type
// denotes (§6 map_keys). A key declared optional on any literal, or
// present on only some disjuncts of a union, is excluded since
// MapHasKey is false for it.
func MapKeys(d *Descriptor) []string {
	m := mapOnly(d)
	var out []string
	for _, k := range declaredKeys(m) {
		if MapHasKey(d, k) {
			out = append(out, k)
		}
	}
	return out
}

func sortStrings(in []string) []string {
	for i := 1; i < len(in); i++ {
		for j := i; j > 0 && in[j-1] > in[j]; j-- {
			in[j-1], in[j] = in[j], in[j-1]
		}
	}
	return in
}
