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

package settype

import (
	"strings"
	"testing"
	"time"

	"github.com/go-quicktest/qt"
)

func TestBasicConstructorsAndPredicates(t *testing.T) {
	qt.Assert(t, qt.IsTrue(Empty(None())))
	qt.Assert(t, qt.IsFalse(Empty(Term())))
	qt.Assert(t, qt.IsTrue(IsTerm(Term())))
	qt.Assert(t, qt.IsTrue(Subtype(Integer(), Term())))
	qt.Assert(t, qt.IsFalse(IsGradual(Integer())))
	qt.Assert(t, qt.IsTrue(IsGradual(Dynamic())))
}

// Union and Intersection are idempotent (spec.md §8 law 1).
func TestLawIdempotence(t *testing.T) {
	a := Union(Integer(), Boolean())
	qt.Assert(t, qt.IsTrue(Equal(Union(a, a), a)))
	qt.Assert(t, qt.IsTrue(Equal(Intersection(a, a), a)))
}

// Union and Intersection are commutative (law 2).
func TestLawCommutativity(t *testing.T) {
	a, b := Integer(), Boolean()
	qt.Assert(t, qt.IsTrue(Equal(Union(a, b), Union(b, a))))
	qt.Assert(t, qt.IsTrue(Equal(Intersection(a, b), Intersection(b, a))))
}

// Union and Intersection are associative (law 3).
func TestLawAssociativity(t *testing.T) {
	a, b, c := Integer(), Boolean(), Binary()
	qt.Assert(t, qt.IsTrue(Equal(Union(Union(a, b), c), Union(a, Union(b, c)))))
	qt.Assert(t, qt.IsTrue(Equal(Intersection(Intersection(a, b), c), Intersection(a, Intersection(b, c)))))
}

// Intersection distributes over union (law 4).
func TestLawDistributivity(t *testing.T) {
	a, b, c := Integer(), Boolean(), Binary()
	lhs := Intersection(a, Union(b, c))
	rhs := Union(Intersection(a, b), Intersection(a, c))
	qt.Assert(t, qt.IsTrue(Equal(lhs, rhs)))
}

// A type unioned with its negation is Term; intersected, None (law 5).
func TestLawComplementation(t *testing.T) {
	a := Integer()
	qt.Assert(t, qt.IsTrue(Equal(Union(a, Negation(a)), Term())))
	qt.Assert(t, qt.IsTrue(Empty(Intersection(a, Negation(a)))))
}

// Subtype is reflexive and transitive (laws 6-7).
func TestLawSubtypeReflexiveTransitive(t *testing.T) {
	a := Union(Integer(), Boolean())
	qt.Assert(t, qt.IsTrue(Subtype(a, a)))

	x, y, z := Integer(), Union(Integer(), Boolean()), Term()
	qt.Assert(t, qt.IsTrue(Subtype(x, y)))
	qt.Assert(t, qt.IsTrue(Subtype(y, z)))
	qt.Assert(t, qt.IsTrue(Subtype(x, z)))
}

// De Morgan's laws hold under Negation (law 8).
func TestLawDeMorgan(t *testing.T) {
	a, b := Integer(), Boolean()
	qt.Assert(t, qt.IsTrue(Equal(Negation(Union(a, b)), Intersection(Negation(a), Negation(b)))))
	qt.Assert(t, qt.IsTrue(Equal(Negation(Intersection(a, b)), Union(Negation(a), Negation(b)))))
}

// Against a gradual right side only its static lower bound counts, and
// Dynamic() carries no static guarantee, so a static Integer is not a
// subtype of it.
func TestSubtypeGradualRightSideUsesStaticBound(t *testing.T) {
	a := Integer()
	g := Dynamic() // wholly unknown: its static part is empty
	qt.Assert(t, qt.IsFalse(Subtype(a, g)))
}

// Rendering a type and parsing it back is not offered by this engine
// (quoting is one-directional), but String is at least stable and
// non-empty for a non-bottom type (law 10, restricted to what the
// engine actually implements).
func TestLawQuoteStringStable(t *testing.T) {
	a := Union(Integer(), Boolean())
	s1, s2 := a.String(), a.String()
	qt.Assert(t, qt.Equals(s1, s2))
	qt.Assert(t, qt.IsTrue(len(s1) > 0))
}

// Stepping a node built from a ground type is idempotent: it always
// yields the same descriptor back (law 11).
func TestLawNodeStepIdempotence(t *testing.T) {
	a := Integer()
	n := a.ToNode()
	qt.Assert(t, qt.IsTrue(Equal(n.Step(), a)))
	qt.Assert(t, qt.IsTrue(Equal(n.Step(), n.Step())))
}

func TestMapConstructorAndQueries(t *testing.T) {
	person := Map([]Field{
		RequiredField("name", Binary().ToNode()),
		OptionalField("age", Integer().ToNode()),
	}, Closed)
	qt.Assert(t, qt.IsTrue(MapHasKey(person, "name")))
	qt.Assert(t, qt.IsFalse(MapHasKey(person, "age")))
	qt.Assert(t, qt.IsTrue(MapMayHaveKey(person, "age")))
	// MapKeys is the guaranteed keys only (§6): "age" is optional, so it
	// is excluded even though it is declared on the literal.
	qt.Assert(t, qt.DeepEquals(MapKeys(person), []string{"name"}))
}

// MapGet is a public boundary returning a value type (§6): the
// internal not_set marker must never escape it, even for an optional
// field whose value, unioned with absence, would otherwise carry the
// marker in its bitmap (§3 invariant 3).
func TestMapGetStripsNotSetAtPublicBoundary(t *testing.T) {
	person := Map([]Field{
		OptionalField("age", Integer().ToNode()),
	}, Closed)
	age := MapGet(person, "age")
	qt.Assert(t, qt.IsTrue(Equal(age, Integer())))
	qt.Assert(t, qt.IsFalse(strings.Contains(age.String(), "not_set")))
}

func TestBuildRecursiveTerminatesAndQuotes(t *testing.T) {
	nodes := BuildRecursive(map[string]Equation{
		"Stream": MapOf([]EquationField{
			{Key: "value", Value: Lit(Integer())},
			{Key: "rest", Value: Var("Stream")},
		}, Open),
	})
	stream := nodes["Stream"]

	done := make(chan bool, 1)
	go func() { done <- !Empty(stream.Step()) }()
	select {
	case notEmpty := <-done:
		qt.Assert(t, qt.IsTrue(notEmpty))
	case <-time.After(5 * time.Second):
		t.Fatal("Empty did not terminate on a cyclic recursive type")
	}

	s := ToQuotedNodeString(stream)
	qt.Assert(t, qt.IsTrue(len(s) > 0))
}

func TestWithUUIDNodeIDsOption(t *testing.T) {
	// Configuring the UUID id scheme must not change any observable
	// predicate result; it only changes how identities are minted.
	Configure(WithUUIDNodeIDs())
	a := Integer()
	qt.Assert(t, qt.IsTrue(Equal(a, a)))
}
