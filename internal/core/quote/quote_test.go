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

package quote

import (
	"strings"
	"testing"

	"github.com/go-quicktest/qt"
	"github.com/google/go-cmp/cmp"

	"github.com/settype/settype/internal/core/adt"
)

func TestStringBottom(t *testing.T) {
	qt.Assert(t, qt.Equals(String(ToQuoted(adt.None())), "_|_"))
}

func TestStringAtomSet(t *testing.T) {
	s := String(ToQuoted(adt.AtomSet("true", "false")))
	qt.Assert(t, qt.IsTrue(strings.HasPrefix(s, "atom(")))
	qt.Assert(t, qt.IsTrue(strings.Contains(s, "false")))
	qt.Assert(t, qt.IsTrue(strings.Contains(s, "true")))
}

func TestStringDynamic(t *testing.T) {
	// adt.Dynamic() has an unrestricted runtime bound (Term) and no
	// static guarantee of its own (None), so both halves should show up.
	s := String(ToQuoted(adt.Dynamic()))
	qt.Assert(t, qt.IsTrue(strings.Contains(s, ":dynamic")))
	qt.Assert(t, qt.IsTrue(strings.Contains(s, "_|_")))
}

func TestStringMapType(t *testing.T) {
	m := adt.Map([]adt.Field{
		adt.RequiredField("id", adt.FreshNode(adt.Integer())),
		adt.OptionalField("name", adt.FreshNode(adt.Binary())),
	}, adt.Closed)
	s := String(ToQuoted(m))
	qt.Assert(t, qt.IsTrue(strings.HasPrefix(s, "map!(")))
	qt.Assert(t, qt.IsTrue(strings.Contains(s, "id: integer")))
	// The not_set marker is internal (§3 invariant 3): an optional field
	// renders with a "?" and its value type alone, never a "not_set" atom.
	qt.Assert(t, qt.IsTrue(strings.Contains(s, "name?: binary")))
	qt.Assert(t, qt.IsFalse(strings.Contains(s, "not_set")))
}

// A node shared across two non-nested positions (here, two sibling map
// fields) is not a cycle: each occurrence must render its own full
// value, not a dangling Ref to a label nothing ever binds.
func TestStringSharedNodeRendersFullyAtEachOccurrence(t *testing.T) {
	shared := adt.FreshNode(adt.Integer())
	m := adt.Map([]adt.Field{
		adt.RequiredField("a", shared),
		adt.RequiredField("b", shared),
	}, adt.Closed)
	s := String(ToQuoted(m))
	qt.Assert(t, qt.IsTrue(strings.Contains(s, "a: integer")))
	qt.Assert(t, qt.IsTrue(strings.Contains(s, "b: integer")))
	qt.Assert(t, qt.IsFalse(strings.Contains(s, ": X")))
}

// Two descriptors built from the same constructors in a different
// union order render to the same neutral tree, since ToQuoted walks the
// normalized kind partition rather than the construction history.
func TestToQuotedStableAcrossUnionOrder(t *testing.T) {
	a := adt.Union(adt.Integer(), adt.Boolean())
	b := adt.Union(adt.Boolean(), adt.Integer())
	if diff := cmp.Diff(ToQuoted(a), ToQuoted(b)); diff != "" {
		t.Fatalf("ToQuoted differs across union order (-a +b):\n%s", diff)
	}
}

func TestStringRecursiveNodeUsesLabel(t *testing.T) {
	nodes := adt.BuildRecursive(map[string]adt.Expr{
		"Z": adt.ExprMap{Fields: []adt.MapField{{Key: "tail", Value: adt.ExprVar{Name: "Z"}}}, Tag: adt.Open},
	})
	s := String(ToQuotedNode(nodes["Z"]))
	// The recursive occurrence must render as a label reference, not
	// loop forever building an infinitely deep tree.
	qt.Assert(t, qt.IsTrue(strings.Contains(s, ": map(")))
	qt.Assert(t, qt.IsTrue(strings.Contains(s, "tail:")))
}
