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

// kindOps bundles the per-kind operation to apply when combining two
// descriptors; combine (below) threads the same three functions through
// every set operation, varying only which table gets plugged in.
type kindOps struct {
	bitmap func(a, b kindset.Bitmap) kindset.Bitmap
	atom   func(a, b *kindset.Atom) *kindset.Atom
	mapv   func(a, b *bdd.Diagram[*MapLiteral]) *bdd.Diagram[*MapLiteral]
}

func orNone(d *Descriptor) *Descriptor {
	if d == nil {
		return None()
	}
	return d
}

// staticOnly strips a descriptor's Dynamic component.
func staticOnly(d *Descriptor) *Descriptor {
	return &Descriptor{Bitmap: d.Bitmap, Atom: d.Atom, Map: d.Map}
}

// dynamicBound returns T_d: the Dynamic component, defaulting to the
// descriptor itself when it is purely static (§4.4).
func dynamicBound(d *Descriptor) *Descriptor {
	if d.Dynamic != nil {
		return d.Dynamic
	}
	return d
}

// liftTrivial makes a purely static descriptor trivially gradual by
// setting its own static content as its Dynamic bound (§4.4: ":dynamic
// := itself").
func liftTrivial(d *Descriptor) *Descriptor {
	s := staticOnly(d)
	return &Descriptor{Bitmap: s.Bitmap, Atom: s.Atom, Map: s.Map, Dynamic: s}
}

// liftGradualPair lifts whichever side is not gradual when exactly one
// of a, b carries a Dynamic component, per §4.4's union/intersection/
// difference rule.
func liftGradualPair(a, b *Descriptor) (*Descriptor, *Descriptor) {
	ag, bg := a.Dynamic != nil, b.Dynamic != nil
	if ag == bg {
		return a, b
	}
	if !ag {
		a = liftTrivial(a)
	}
	if !bg {
		b = liftTrivial(b)
	}
	return a, b
}

// combine is the shared shape of Union/Intersection/Difference: lift
// the gradual pair, apply ops kind-wise, and recurse once into the
// Dynamic components (which are never themselves gradual, so this
// recursion is exactly one level deep).
func combine(a, b *Descriptor, ops kindOps, gradualAware bool) *Descriptor {
	if gradualAware {
		a, b = liftGradualPair(a, b)
	}
	out := &Descriptor{
		Bitmap: ops.bitmap(a.Bitmap, b.Bitmap),
		Atom:   ops.atom(a.Atom, b.Atom),
		Map:    normalizeMap(ops.mapv(a.Map, b.Map)),
	}
	if a.Dynamic != nil || b.Dynamic != nil {
		out.Dynamic = combine(orNone(a.Dynamic), orNone(b.Dynamic), ops, false)
	}
	return out
}

// normalizeMap collapses the false diagram (the empty map set) back to
// the absent-kind sentinel nil, per the normalization invariant.
func normalizeMap(d *bdd.Diagram[*MapLiteral]) *bdd.Diagram[*MapLiteral] {
	if d == nil {
		return nil
	}
	if d.IsLeaf() && !d.LeafValue() {
		return nil
	}
	return d
}

func bitmapUnion(a, b kindset.Bitmap) kindset.Bitmap { return a.Union(b) }

func bitmapInter(a, b kindset.Bitmap) kindset.Bitmap { return a.Intersect(b) }

func bitmapDiff(a, b kindset.Bitmap) kindset.Bitmap { return a.Diff(b) }

func mapUnion(a, b *bdd.Diagram[*MapLiteral]) *bdd.Diagram[*MapLiteral] {
	a, b = defaultMap(a), defaultMap(b)
	return bdd.Union(a, b)
}

func mapInter(a, b *bdd.Diagram[*MapLiteral]) *bdd.Diagram[*MapLiteral] {
	a, b = defaultMap(a), defaultMap(b)
	return bdd.Intersection(a, b)
}

func mapDiff(a, b *bdd.Diagram[*MapLiteral]) *bdd.Diagram[*MapLiteral] {
	a, b = defaultMap(a), defaultMap(b)
	return bdd.Difference(a, b)
}

func defaultMap(d *bdd.Diagram[*MapLiteral]) *bdd.Diagram[*MapLiteral] {
	if d == nil {
		return bdd.False[*MapLiteral]()
	}
	return d
}

var (
	unionOps = kindOps{bitmap: bitmapUnion, atom: kindset.UnionOp, mapv: mapUnion}
	interOps = kindOps{bitmap: bitmapInter, atom: kindset.Intersect, mapv: mapInter}
	diffOps  = kindOps{bitmap: bitmapDiff, atom: kindset.Diff, mapv: mapDiff}
)
