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

	"github.com/go-quicktest/qt"
	"github.com/kr/pretty"
)

func closedMap(fields ...Field) *Descriptor { return Map(fields, Closed) }

// assertKeys compares MapKeys against want, annotated with a
// pretty-formatted rendering of both sides rather than Go's default
// %v dump.
func assertKeys(t *testing.T, got, want []string) {
	t.Helper()
	qt.Check(t, qt.DeepEquals(got, want),
		qt.Commentf("got:\n%s\nwant:\n%s", pretty.Sprint(got), pretty.Sprint(want)))
}

func TestMapGetRequiredField(t *testing.T) {
	m := closedMap(RequiredField("id", FreshNode(Integer())))
	got := MapGet(m, "id")
	qt.Assert(t, qt.IsTrue(Equal(got, Integer())))
}

func TestMapGetMissingClosedKeyIsNotSet(t *testing.T) {
	m := closedMap(RequiredField("id", FreshNode(Integer())))
	got := MapGet(m, "missing")
	qt.Assert(t, qt.IsTrue(Equal(got, notSet())))
}

func TestMapGetMissingOpenKeyIsTermOrNotSet(t *testing.T) {
	m := Map([]Field{RequiredField("id", FreshNode(Integer()))}, Open)
	got := MapGet(m, "missing")
	qt.Assert(t, qt.IsTrue(Equal(got, termOrNotSet())))
}

func TestMapHasKeyRequiredVsOptional(t *testing.T) {
	required := closedMap(RequiredField("id", FreshNode(Integer())))
	optional := closedMap(OptionalField("id", FreshNode(Integer())))
	qt.Assert(t, qt.IsTrue(MapHasKey(required, "id")))
	qt.Assert(t, qt.IsFalse(MapHasKey(optional, "id")))
	qt.Assert(t, qt.IsTrue(MapMayHaveKey(optional, "id")))
}

func TestMapHasKeyAbsentClosedKey(t *testing.T) {
	m := closedMap(RequiredField("id", FreshNode(Integer())))
	qt.Assert(t, qt.IsFalse(MapHasKey(m, "missing")))
	qt.Assert(t, qt.IsFalse(MapMayHaveKey(m, "missing")))
}

func TestMapKeysSorted(t *testing.T) {
	m := closedMap(
		RequiredField("zeta", FreshNode(Integer())),
		RequiredField("alpha", FreshNode(Boolean())),
	)
	assertKeys(t, MapKeys(m), []string{"alpha", "zeta"})
}

// MapKeys returns the guaranteed key names only (§6): a key declared
// optional, or present on only some disjuncts of
// a union, must not appear even though it is syntactically declared.
func TestMapKeysExcludesOptionalAndPartialUnionKeys(t *testing.T) {
	m := closedMap(
		RequiredField("id", FreshNode(Integer())),
		OptionalField("nickname", FreshNode(Binary())),
	)
	assertKeys(t, MapKeys(m), []string{"id"})

	a := closedMap(RequiredField("id", FreshNode(Integer())))
	b := closedMap(
		RequiredField("id", FreshNode(Integer())),
		RequiredField("kind", FreshNode(AtomSet("b"))),
	)
	assertKeys(t, MapKeys(Union(a, b)), []string{"id"})
}

func TestMapGetAcrossUnion(t *testing.T) {
	a := closedMap(RequiredField("kind", FreshNode(AtomSet("a"))))
	b := closedMap(RequiredField("kind", FreshNode(AtomSet("b"))))
	u := Union(a, b)
	got := MapGet(u, "kind")
	qt.Assert(t, qt.IsTrue(Equal(got, Union(AtomSet("a"), AtomSet("b")))))
}
