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

package bdd

import (
	"testing"

	"github.com/go-quicktest/qt"
)

// intLit is a minimal Literal for exercising the generic engine without
// pulling in the adt package's map literals.
type intLit int

func (a intLit) Compare(b intLit) int { return int(a) - int(b) }

func lit(i int, high, low *Diagram[intLit]) *Diagram[intLit] {
	return Node(intLit(i), high, low)
}

func TestUnionIdentities(t *testing.T) {
	x := lit(1, True[intLit](), False[intLit]())
	qt.Assert(t, qt.Equals(Union(x, False[intLit]()), x))
	qt.Assert(t, qt.DeepEquals(Union(x, True[intLit]()), True[intLit]()))
}

func TestIntersectionIdentities(t *testing.T) {
	x := lit(1, True[intLit](), False[intLit]())
	qt.Assert(t, qt.DeepEquals(Intersection(x, True[intLit]()), x))
	qt.Assert(t, qt.DeepEquals(Intersection(x, False[intLit]()), False[intLit]()))
}

func TestDifferenceAndNegate(t *testing.T) {
	x := lit(1, True[intLit](), False[intLit]())
	notX := lit(1, False[intLit](), True[intLit]())
	qt.Assert(t, qt.DeepEquals(Negate(x), notX))
	qt.Assert(t, qt.DeepEquals(Difference(x, x), False[intLit]()))
	qt.Assert(t, qt.DeepEquals(Difference(True[intLit](), x), notX))
}

func TestPathsExtractsDNF(t *testing.T) {
	// x1 AND NOT x2
	x1x2 := Node(intLit(1), Node(intLit(2), False[intLit](), True[intLit]()), False[intLit]())
	paths := Paths(x1x2)
	qt.Assert(t, qt.HasLen(paths, 1))
	qt.Assert(t, qt.DeepEquals(paths[0].Pos, []intLit{1}))
	qt.Assert(t, qt.DeepEquals(paths[0].Neg, []intLit{2}))
}

func TestMergeRespectsLiteralOrderAcrossIndependentValues(t *testing.T) {
	// Two diagrams built with the literals in different relative shapes
	// still merge correctly because Union/Intersection compare on
	// the literal order rather than structural position.
	a := lit(2, True[intLit](), lit(1, True[intLit](), False[intLit]()))
	b := lit(1, True[intLit](), False[intLit]())
	got := Union(a, b)
	// Union must be satisfied whenever lit 1 holds, regardless of lit 2.
	qt.Assert(t, qt.DeepEquals(got.Literal(), intLit(1)))
	qt.Assert(t, qt.IsTrue(got.High().IsLeaf() && got.High().LeafValue()))
}
