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

// Package quote renders a type descriptor into a neutral syntax tree
// and, from there, into text (§4.6 of the engine design), the way the
// teacher's export+format split turns a Vertex into an ast.Expr and
// then into source. It depends on adt in one direction only: adt knows
// nothing about how its values get printed.
package quote

import (
	"sort"
	"strings"

	"github.com/settype/settype/internal/core/adt"
	"github.com/settype/settype/internal/core/bdd"
	"github.com/settype/settype/internal/core/kindset"
)

// Node is one neutral syntax node. It has no behavior beyond sitting in
// the tree String walks; callers needing something richer than text
// (an editor integration, a doc generator) can write their own walker
// against this tree instead of the renderer below.
type Node interface{ isQuoteNode() }

// Union is a flat "|" of two or more alternatives.
type Union struct{ Args []Node }

// Intersection renders a BDD path's ANDed literals: the positive
// literals of a map path, together with the negated literals excluded
// from it.
type Intersection struct{ Args []Node }

// Negate wraps a literal excluded from a map path ("!map(...)").
type Negate struct{ Arg Node }

// Atom is one indivisible kind name (integer, binary, a tuple, ...).
type Atom struct{ Name string }

// AtomSet is an atom-kind value: either exactly Names, or its complement.
type AtomSet struct {
	Names   []string
	Negated bool
	IsTop   bool
}

// MapType is one map literal: open or closed, with its declared fields.
type MapType struct {
	Open   bool
	Fields []MapField
}

// MapField is one rendered (key, value) entry of a MapType.
type MapField struct {
	Key      string
	Optional bool
	Value    Node
}

// Dynamic wraps a type that also carries a runtime/static split: Static
// is nil when the static lower bound coincides with the dynamic bound.
type Dynamic struct {
	Bound  Node
	Static Node
}

// Ref stands in for a recursive reference this renderer has already
// started printing further up the tree; it prints as a synthetic label
// rather than stepping forever.
type Ref struct{ Label string }

// Labeled attaches the label a tree's own Ref occurrences point back
// to, printed as "label: body".
type Labeled struct {
	Label string
	Body  Node
}

// Bottom is the empty type; Top is the unconstrained type.
type Bottom struct{}
type Top struct{}

func (Union) isQuoteNode()        {}
func (Intersection) isQuoteNode() {}
func (Negate) isQuoteNode()       {}
func (Atom) isQuoteNode()         {}
func (AtomSet) isQuoteNode()      {}
func (MapType) isQuoteNode()      {}
func (Dynamic) isQuoteNode()      {}
func (Ref) isQuoteNode()          {}
func (Labeled) isQuoteNode()      {}
func (Bottom) isQuoteNode()       {}
func (Top) isQuoteNode()          {}

// quoter threads the id->label assignment used to break cycles: a node
// id holds a label only while its own rendering is in progress, and an
// encounter of that id during that rendering renders as a Ref to the
// label instead of stepping again (see node).
type quoter struct {
	labels map[uint64]string
	next   int
}

// ToQuoted renders a descriptor's shape into the neutral tree.
func ToQuoted(d *adt.Descriptor) Node {
	q := &quoter{labels: map[uint64]string{}}
	return q.descr(d)
}

// ToQuotedNode renders one node by stepping it first, the entry point
// used when quoting a recursively built type by name.
func ToQuotedNode(n *adt.Node) Node {
	q := &quoter{labels: map[uint64]string{}}
	return q.node(n)
}

// String renders a neutral syntax tree to text (§4.6 quote_string).
func String(n Node) string {
	var b strings.Builder
	write(&b, n)
	return b.String()
}

// node renders one node, breaking genuine cycles with a synthetic
// label. q.labels tracks only the ids currently being rendered further
// up this call's own stack, not every id ever seen: a node revisited
// while its own rendering is still in progress is a real cycle and gets
// a Ref; a node merely reused in two unrelated, non-nested positions
// (e.g. the same field value shared by two map keys) is popped off
// q.labels once its first rendering finishes, so the second occurrence
// renders its own, unlabeled copy instead of a Ref with nothing to
// bind it.
func (q *quoter) node(n *adt.Node) Node {
	id := n.ID()
	if label, ok := q.labels[id]; ok {
		return Ref{Label: label}
	}
	label := recLabel(q.next)
	q.next++
	q.labels[id] = label
	defer delete(q.labels, id)
	body := q.descr(adt.Step(n))
	if !containsRef(body, label) {
		return body
	}
	return Labeled{Label: label, Body: body}
}

func recLabel(i int) string {
	const letters = "XYZABCDEFGHIJKLMNOPQRSTUVW"
	if i < len(letters) {
		return string(letters[i])
	}
	return "T" + strconvItoa(i)
}

func strconvItoa(i int) string {
	if i == 0 {
		return "0"
	}
	var digits []byte
	for i > 0 {
		digits = append([]byte{byte('0' + i%10)}, digits...)
		i /= 10
	}
	return string(digits)
}

func containsRef(n Node, label string) bool {
	switch v := n.(type) {
	case Ref:
		return v.Label == label
	case Union:
		return anyContainsRef(v.Args, label)
	case Intersection:
		return anyContainsRef(v.Args, label)
	case Negate:
		return containsRef(v.Arg, label)
	case MapType:
		for _, f := range v.Fields {
			if containsRef(f.Value, label) {
				return true
			}
		}
	case Dynamic:
		if containsRef(v.Bound, label) {
			return true
		}
		return v.Static != nil && containsRef(v.Static, label)
	}
	return false
}

func anyContainsRef(ns []Node, label string) bool {
	for _, n := range ns {
		if containsRef(n, label) {
			return true
		}
	}
	return false
}

func (q *quoter) descr(d *adt.Descriptor) Node {
	if d.Dynamic != nil {
		bound := q.descr(d.Dynamic)
		var static Node
		if !(d.Bitmap == d.Dynamic.Bitmap && sameAtom(d.Atom, d.Dynamic.Atom) && d.Map == d.Dynamic.Map) {
			static = q.staticOnly(d)
		}
		return Dynamic{Bound: bound, Static: static}
	}
	return q.staticOnly(d)
}

func sameAtom(a, b *kindset.Atom) bool {
	if a.Empty() && b.Empty() {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.Sign != b.Sign || len(a.Set) != len(b.Set) {
		return false
	}
	for i, s := range a.Set {
		if b.Set[i] != s {
			return false
		}
	}
	return true
}

func (q *quoter) staticOnly(d *adt.Descriptor) Node {
	var args []Node
	for _, name := range d.Bitmap.ToQuoted() {
		args = append(args, Atom{Name: name})
	}
	if !d.Atom.Empty() {
		args = append(args, q.atomSet(d.Atom))
	}
	if d.Map != nil {
		args = append(args, q.mapDiagram(d.Map)...)
	}
	switch len(args) {
	case 0:
		return Bottom{}
	case 1:
		return args[0]
	default:
		return Union{Args: args}
	}
}

func (q *quoter) atomSet(a *kindset.Atom) Node {
	if a.Sign == kindset.Negation && len(a.Set) == 0 {
		return AtomSet{IsTop: true}
	}
	return AtomSet{Names: append([]string{}, a.Set...), Negated: a.Sign == kindset.Negation}
}

func (q *quoter) mapDiagram(d *bdd.Diagram[*adt.MapLiteral]) []Node {
	var out []Node
	for _, path := range bdd.Paths(d) {
		out = append(out, q.mapPath(path))
	}
	return out
}

func (q *quoter) mapPath(path bdd.Path[*adt.MapLiteral]) Node {
	var args []Node
	for _, lit := range path.Pos {
		args = append(args, q.mapLiteral(lit))
	}
	for _, lit := range path.Neg {
		args = append(args, Negate{Arg: q.mapLiteral(lit)})
	}
	if len(args) == 1 {
		return args[0]
	}
	return Intersection{Args: args}
}

func (q *quoter) mapLiteral(lit *adt.MapLiteral) Node {
	out := MapType{Open: lit.Tag == adt.Open}
	keys := make([]string, 0, len(lit.Fields))
	for k := range lit.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		value, optional := q.field(lit.Fields[k])
		out.Fields = append(out.Fields, MapField{Key: k, Optional: optional, Value: value})
	}
	return out
}

// field renders one map field's value node, the way node does, except
// it first checks the field value for the not_set marker (§3 invariant
// 3: not_set is meaningful only as a field value marker and must never
// reach a rendered, user-visible type) and reports that as Optional
// instead of rendering a "not_set" atom alongside the real value.
func (q *quoter) field(n *adt.Node) (value Node, optional bool) {
	id := n.ID()
	if label, ok := q.labels[id]; ok {
		return Ref{Label: label}, false
	}
	label := recLabel(q.next)
	q.next++
	q.labels[id] = label
	defer delete(q.labels, id)
	d := adt.Step(n)
	optional = adt.HasNotSet(d)
	if optional {
		d = adt.StripNotSet(d)
	}
	body := q.descr(d)
	if !containsRef(body, label) {
		return body, optional
	}
	return Labeled{Label: label, Body: body}, optional
}

func write(b *strings.Builder, n Node) {
	switch v := n.(type) {
	case Bottom:
		b.WriteString("_|_")
	case Top:
		b.WriteString("_")
	case Ref:
		b.WriteString(v.Label)
	case Labeled:
		b.WriteString(v.Label)
		b.WriteString(": ")
		write(b, v.Body)
	case Atom:
		b.WriteString(v.Name)
	case AtomSet:
		switch {
		case v.IsTop:
			b.WriteString("atom")
		case v.Negated:
			b.WriteString("atom(!")
			b.WriteString(strings.Join(v.Names, "|"))
			b.WriteString(")")
		default:
			b.WriteString("atom(")
			b.WriteString(strings.Join(v.Names, "|"))
			b.WriteString(")")
		}
	case MapType:
		if v.Open {
			b.WriteString("map(")
		} else {
			b.WriteString("map!(")
		}
		for i, f := range v.Fields {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(f.Key)
			if f.Optional {
				b.WriteString("?")
			}
			b.WriteString(": ")
			write(b, f.Value)
		}
		b.WriteString(")")
	case Negate:
		b.WriteString("!")
		write(b, v.Arg)
	case Dynamic:
		write(b, v.Bound)
		if v.Static != nil {
			b.WriteString(" :dynamic ")
			write(b, v.Static)
		}
	case Intersection:
		for i, a := range v.Args {
			if i > 0 {
				b.WriteString(" & ")
			}
			write(b, a)
		}
	case Union:
		for i, a := range v.Args {
			if i > 0 {
				b.WriteString(" | ")
			}
			write(b, a)
		}
	default:
		b.WriteString("<?>")
	}
}
