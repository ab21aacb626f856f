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

// Package settype is the public surface of the set-theoretic type
// engine: a thin facade over internal/core/adt and internal/core/quote,
// the way the teacher's cue package sits over
// internal/core/adt and internal/core/eval. Everything here is either a
// direct re-export or a small wrapper; the algebra itself lives in the
// internal packages.
package settype

import (
	"github.com/settype/settype/internal/core/adt"
	"github.com/settype/settype/internal/core/quote"
)

// Type is an immutable, normalized set-theoretic type.
type Type struct{ d *adt.Descriptor }

func wrap(d *adt.Descriptor) Type { return Type{d: d} }

func (t Type) descriptor() *adt.Descriptor {
	if t.d == nil {
		return adt.None()
	}
	return t.d
}

// Node is a coinductive, possibly self-referential type definition: the
// unit BuildRecursive hands back for each equation, and the unit
// UnionNode/InterNode/... combine.
type Node struct{ n *adt.Node }

func wrapNode(n *adt.Node) Node { return Node{n: n} }

// ID is the node's process-wide identity (never recycled).
func (n Node) ID() uint64 { return n.n.ID() }

// Step materializes one layer of a node's type, with any recursive
// self-references replaced by self-contained nodes (for a BuildRecursive
// node, the same ones on every step).
func (n Node) Step() Type { return wrap(adt.Step(n.n)) }

func (n Node) String() string { return n.n.String() }

// ToNode promotes t to a node with fresh identity and a constant
// generator; stepping it always yields t back.
func (t Type) ToNode() Node { return wrapNode(adt.FreshNode(t.descriptor())) }

// Basic kind constructors.

func None() Type         { return wrap(adt.None()) }
func Term() Type         { return wrap(adt.Term()) }
func Dynamic() Type      { return wrap(adt.Dynamic()) }
func Boolean() Type      { return wrap(adt.Boolean()) }
func Integer() Type      { return wrap(adt.Integer()) }
func Float() Type        { return wrap(adt.Float()) }
func Binary() Type       { return wrap(adt.Binary()) }
func Pid() Type          { return wrap(adt.Pid()) }
func Port() Type         { return wrap(adt.Port()) }
func Reference() Type    { return wrap(adt.Reference()) }
func EmptyList() Type    { return wrap(adt.EmptyList()) }
func NonEmptyList() Type { return wrap(adt.NonEmptyList()) }
func Tuple() Type        { return wrap(adt.Tuple()) }
func Fun() Type          { return wrap(adt.Fun()) }

// AtomAny is the type of every atom. AtomSet is the type of exactly the
// named atoms.
func AtomAny() Type            { return wrap(adt.AtomAny()) }
func AtomSet(names ...string) Type { return wrap(adt.AtomSet(names...)) }

// Field is one (key, value) entry of a Map constructor call.
type Field struct {
	Key      string
	Value    Node
	Optional bool
}

// OptionalField and RequiredField build one Field each, the way
// adt.OptionalField/RequiredField do for the internal constructor.
func OptionalField(key string, value Node) Field {
	return Field{Key: key, Value: value, Optional: true}
}

func RequiredField(key string, value Node) Field {
	return Field{Key: key, Value: value}
}

// MapTag is the open/closed tag of a map literal.
type MapTag = adt.MapTag

const (
	Open   = adt.Open
	Closed = adt.Closed
)

// Map builds the map(fields, open|closed) constructor.
func Map(fields []Field, tag MapTag) Type {
	fs := make([]adt.Field, len(fields))
	for i, f := range fields {
		if f.Optional {
			fs[i] = adt.OptionalField(f.Key, f.Value.n)
		} else {
			fs[i] = adt.RequiredField(f.Key, f.Value.n)
		}
	}
	return wrap(adt.Map(fs, tag))
}

// Set operations (§4.4).

func Union(a, b Type) Type        { return wrap(adt.Union(a.descriptor(), b.descriptor())) }
func Intersection(a, b Type) Type { return wrap(adt.Intersection(a.descriptor(), b.descriptor())) }
func Difference(a, b Type) Type   { return wrap(adt.Difference(a.descriptor(), b.descriptor())) }
func Negation(a Type) Type        { return wrap(adt.Negation(a.descriptor())) }

// Predicates (§4.4).

func Empty(t Type) bool          { return adt.Empty(t.descriptor()) }
func Subtype(l, r Type) bool     { return adt.Subtype(l.descriptor(), r.descriptor()) }
func Equal(a, b Type) bool       { return adt.Equal(a.descriptor(), b.descriptor()) }
func Intersects(a, b Type) bool  { return adt.Intersects(a.descriptor(), b.descriptor()) }
func Compatible(i, e Type) bool  { return adt.Compatible(i.descriptor(), e.descriptor()) }
func IsTerm(t Type) bool         { return adt.IsTerm(t.descriptor()) }
func IsGradual(t Type) bool      { return adt.IsGradual(t.descriptor()) }

// Map queries (§6).

func MapGet(t Type, key string) Type {
	return wrap(adt.StripNotSet(adt.MapGet(t.descriptor(), key)))
}
func MapHasKey(t Type, key string) bool  { return adt.MapHasKey(t.descriptor(), key) }
func MapMayHaveKey(t Type, key string) bool {
	return adt.MapMayHaveKey(t.descriptor(), key)
}
func MapKeys(t Type) []string { return adt.MapKeys(t.descriptor()) }

// Node-level combinators (§4.5): each steps its operands, applies the
// descriptor operation, and wraps the result in a fresh node.
func UnionNode(a, b Node) Node { return wrapNode(adt.UnionNode(a.n, b.n)) }
func InterNode(a, b Node) Node { return wrapNode(adt.InterNode(a.n, b.n)) }
func DiffNode(a, b Node) Node  { return wrapNode(adt.DiffNode(a.n, b.n)) }
func NegateNode(a Node) Node   { return wrapNode(adt.NegateNode(a.n)) }

// Equation is one named type definition in a call to BuildRecursive: a
// set-theoretic expression that may refer to other equations by name,
// forming the recursion.
type Equation = adt.Expr

// Var references another equation by name.
func Var(name string) Equation { return adt.ExprVar{Name: name} }

// Lit lifts a ground Type into an equation body.
func Lit(t Type) Equation { return adt.ExprDescr{D: t.descriptor()} }

// UnionOf, IntersectionOf and DifferenceOf build the corresponding
// equation-language set operations.
func UnionOf(args ...Equation) Equation { return adt.ExprUnion{Args: args} }

func IntersectionOf(args ...Equation) Equation { return adt.ExprIntersection{Args: args} }

func DifferenceOf(a, b Equation) Equation { return adt.ExprDifference{A: a, B: b} }

func NegationOf(a Equation) Equation { return adt.ExprNegate{A: a} }

// EquationField is one field of a MapOf equation.
type EquationField struct {
	Key      string
	Value    Equation
	Optional bool
}

// MapOf builds a map(...) equation whose field values may themselves
// recursively reference other equations.
func MapOf(fields []EquationField, tag MapTag) Equation {
	fs := make([]adt.MapField, len(fields))
	for i, f := range fields {
		fs[i] = adt.MapField{Key: f.Key, Value: f.Value, Optional: f.Optional}
	}
	return adt.ExprMap{Fields: fs, Tag: tag}
}

// BuildRecursive compiles a system of mutually recursive type
// equations into one node per equation (§4.5 build_recursive).
func BuildRecursive(equations map[string]Equation) map[string]Node {
	nodes := adt.BuildRecursive(equations)
	out := make(map[string]Node, len(nodes))
	for name, n := range nodes {
		out[name] = wrapNode(n)
	}
	return out
}

// ToQuoted renders t into the neutral syntax tree of internal/core/quote.
func ToQuoted(t Type) quote.Node { return quote.ToQuoted(t.descriptor()) }

// ToQuotedNode renders one step of n into the neutral syntax tree,
// breaking cycles with synthetic recursion labels.
func ToQuotedNode(n Node) quote.Node { return quote.ToQuotedNode(n.n) }

// ToQuotedString renders t directly to text.
func ToQuotedString(t Type) string { return quote.String(ToQuoted(t)) }

// ToQuotedNodeString renders n directly to text.
func ToQuotedNodeString(n Node) string { return quote.String(ToQuotedNode(n)) }

func (t Type) String() string { return ToQuotedString(t) }

// Option configures node identity allocation (settype's only global
// setting, per the engine's concurrency model).
type Option func()

// WithUUIDNodeIDs switches node identity allocation to UUID-derived
// ids, for callers who shard node creation across processes and so
// cannot share one monotonic counter.
func WithUUIDNodeIDs() Option { return adt.UseUUIDNodeIDs }

// Configure applies a set of process-wide options.
func Configure(opts ...Option) {
	for _, o := range opts {
		o()
	}
}
