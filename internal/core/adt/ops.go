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

// Union, Intersection and Difference are the top-level descriptor set
// operations of §4.4, gradual-aware per the rules there.
func Union(a, b *Descriptor) *Descriptor { return combine(a, b, unionOps, true) }

func Intersection(a, b *Descriptor) *Descriptor { return combine(a, b, interOps, true) }

func Difference(a, b *Descriptor) *Descriptor { return combine(a, b, diffOps, true) }

// Negation is defined in terms of Difference from the top type, which
// satisfies the complementation laws of §8 for any descriptor built by
// this package's constructors.
func Negation(a *Descriptor) *Descriptor { return Difference(Term(), a) }

func staticSubtype(l, r *Descriptor) bool {
	return emptyStatic(combine(staticOnly(l), staticOnly(r), diffOps, false))
}

func unionStatic(l, r *Descriptor) *Descriptor {
	return combine(staticOnly(l), staticOnly(r), unionOps, false)
}
