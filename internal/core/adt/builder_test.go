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
	"testing"
	"time"

	"github.com/go-quicktest/qt"
)

// selfMap builds the equation Z = {tail: Z} (an open map whose only
// declared field recurs into itself).
func selfMap() map[string]*Node {
	return BuildRecursive(map[string]Expr{
		"Z": ExprMap{Fields: []MapField{{Key: "tail", Value: ExprVar{Name: "Z"}}}, Tag: Open},
	})
}

func TestBuildRecursiveStableOccurrenceIdentity(t *testing.T) {
	z := selfMap()["Z"]
	d1 := Step(z)
	d2 := Step(z)
	// Stepping twice must route through the same occurrence node for the
	// "tail" field both times, or the coinductive seen set could never
	// recognize the cycle.
	n1 := d1.Map.Literal().Fields["tail"]
	n2 := d2.Map.Literal().Fields["tail"]
	qt.Assert(t, qt.Equals(n1.ID(), n2.ID()))
	// The occurrence node steps back to a map whose "tail" is itself.
	n3 := Step(n1).Map.Literal().Fields["tail"]
	qt.Assert(t, qt.Equals(n3.ID(), n1.ID()))
}

func TestBuildRecursiveCyclicTypeIsNotEmpty(t *testing.T) {
	z := selfMap()["Z"]
	d := Step(z)
	// An infinite stream of {tail: ...} maps is inhabited under the
	// coinductive (greatest-fixed-point) reading: a cycle alone never
	// proves emptiness.
	qt.Assert(t, qt.IsFalse(Empty(d)))
}

func TestBuildRecursiveTerminatesOnEquality(t *testing.T) {
	z1 := selfMap()["Z"]
	z2 := selfMap()["Z"]
	// Two independently compiled equation systems for the same cyclic
	// definition denote the same set and the comparison terminates.
	done := make(chan bool, 1)
	go func() { done <- Equal(Step(z1), Step(z2)) }()
	select {
	case ok := <-done:
		qt.Assert(t, qt.IsTrue(ok))
	case <-time.After(5 * time.Second):
		t.Fatal("Equal did not terminate on a cyclic recursive type")
	}
}

func TestBuildRecursiveMutualRecursion(t *testing.T) {
	// X = {n: int, next: Y}, Y = {n: int, next: X}; both denote the same
	// set of infinite alternating chains once stepped one level in, so X
	// and Y's own top-level shapes should each be non-empty.
	nodes := BuildRecursive(map[string]Expr{
		"X": ExprMap{Fields: []MapField{
			{Key: "n", Value: ExprDescr{D: Integer()}},
			{Key: "next", Value: ExprVar{Name: "Y"}},
		}, Tag: Open},
		"Y": ExprMap{Fields: []MapField{
			{Key: "n", Value: ExprDescr{D: Integer()}},
			{Key: "next", Value: ExprVar{Name: "X"}},
		}, Tag: Open},
	})
	qt.Assert(t, qt.IsFalse(Empty(Step(nodes["X"]))))
	qt.Assert(t, qt.IsFalse(Empty(Step(nodes["Y"]))))
}
