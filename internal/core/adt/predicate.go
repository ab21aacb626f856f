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

// emptyRec is the seen-threaded core of emptiness (§4.4/§4.5): a
// descriptor is empty iff its dynamic upper bound T_d is empty, and T_d
// is empty iff every one of its kinds is empty. seen carries the set of
// node ids whose step is already in progress further up this call
// chain; see split.go's mapNotEmpty for where it is consulted.
func emptyRec(seen map[uint64]bool, d *Descriptor) bool {
	td := dynamicBound(d)
	if !td.Bitmap.Empty() || !td.Atom.Empty() {
		return false
	}
	if td.Map == nil {
		return true
	}
	return !mapNotEmpty(seen, newSplitMemo(), td.Map, map[string]bool{})
}

// emptyStatic decides emptiness of a descriptor known to carry no
// dynamic component of its own (the result of staticOnly/combine with
// gradualAware=false), starting a fresh coinductive traversal.
func emptyStatic(d *Descriptor) bool {
	if !d.Bitmap.Empty() || !d.Atom.Empty() {
		return false
	}
	if d.Map == nil {
		return true
	}
	return !mapNotEmpty(map[uint64]bool{}, newSplitMemo(), d.Map, map[string]bool{})
}

// Empty reports whether d denotes no value (§4.4 empty?).
func Empty(d *Descriptor) bool { return emptyRec(map[uint64]bool{}, d) }

// Subtype reports whether l is a subtype of r, honoring the three-way
// gradual rule of §4.4: a gradual left side only needs its dynamic
// bound inside r; a gradual right side only needs l inside r's static
// lower bound; two static sides compare statically.
func Subtype(l, r *Descriptor) bool {
	switch {
	case l.Dynamic != nil && r.Dynamic == nil:
		return staticSubtype(l.Dynamic, r)
	case l.Dynamic == nil && r.Dynamic != nil:
		return staticSubtype(l, staticOnly(r))
	default:
		return staticSubtype(l, r)
	}
}

// Equal reports mutual subtyping.
func Equal(a, b *Descriptor) bool { return Subtype(a, b) && Subtype(b, a) }

// Intersects reports whether a and b share at least one value.
func Intersects(a, b *Descriptor) bool { return !Empty(Intersection(a, b)) }

// Compatible reports whether an inferred type i is consistent with an
// expected type e, per §4.4: if i carries a non-empty static part, that
// part must fit inside e's dynamic upper bound; otherwise (i is wholly
// dynamic), it is enough that i's and e's dynamic upper bounds share a
// value.
func Compatible(i, e *Descriptor) bool {
	is := staticOnly(i)
	if !Empty(is) {
		return staticSubtype(is, dynamicBound(e))
	}
	return Intersects(dynamicBound(i), dynamicBound(e))
}

// IsTerm reports whether d is the top type.
func IsTerm(d *Descriptor) bool { return Equal(d, Term()) }

// IsGradual reports whether d carries an explicit dynamic component.
func IsGradual(d *Descriptor) bool { return d.Dynamic != nil }
