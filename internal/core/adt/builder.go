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

// Expr is the neutral expression language the recursive builder
// compiles into a generator (§4.5 build_recursive). It mirrors the
// handful of constructs a set of mutually recursive type equations can
// be written in: a reference to another equation, a ground descriptor,
// the three set operations, negation, and a map literal whose field
// values are themselves expressions.
type Expr interface{ isExpr() }

// ExprVar references another equation by name, forming the recursion.
type ExprVar struct{ Name string }

// ExprDescr is a ground descriptor with no recursive content.
type ExprDescr struct{ D *Descriptor }

type ExprUnion struct{ Args []Expr }

type ExprIntersection struct{ Args []Expr }

type ExprDifference struct{ A, B Expr }

type ExprNegate struct{ A Expr }

// MapField is one field of an ExprMap.
type MapField struct {
	Key      string
	Value    Expr
	Optional bool
}

type ExprMap struct {
	Fields []MapField
	Tag    MapTag
}

func (ExprVar) isExpr()          {}
func (ExprDescr) isExpr()        {}
func (ExprUnion) isExpr()        {}
func (ExprIntersection) isExpr() {}
func (ExprDifference) isExpr()   {}
func (ExprNegate) isExpr()       {}
func (ExprMap) isExpr()          {}

// compiledNode and compiledDescr are the two shapes BuildRecursive's
// single compile pass produces: a fixed Node built once (for anything
// that will sit in a map field, so that stepping the same recursive
// reference twice returns the identical node — the property the
// coinductive seen-set traversal in predicate.go/split.go relies on to
// terminate), and a re-evaluated-per-step Descriptor (for anything
// combined at the top of an equation's body, where there is no node
// identity to preserve).
type compiledNode func() *Node
type compiledDescr func() *Descriptor

// varOccurrenceNode builds the one Node standing for a single syntactic
// occurrence of an ExprVar in an equation's body. state is resolved by
// name at step time, not at construction time, so mutually recursive
// equations (X referring to Y before Y's own generator is installed
// into state) compile in one pass regardless of declaration order.
func varOccurrenceNode(name string, state map[string]Generator) *Node {
	return MakeNode(state, func(st map[string]Generator) *Descriptor {
		gen, ok := st[name]
		if !ok {
			misuse("build_recursive: unbound recursion variable %q", name)
		}
		return gen(st)
	})
}

func compileNode(e Expr, state map[string]Generator) compiledNode {
	if v, ok := e.(ExprVar); ok {
		n := varOccurrenceNode(v.Name, state)
		return func() *Node { return n }
	}
	cd := compileDescr(e, state)
	n := MakeNode(state, func(map[string]Generator) *Descriptor { return cd() })
	return func() *Node { return n }
}

func compileDescr(e Expr, state map[string]Generator) compiledDescr {
	switch v := e.(type) {
	case ExprVar:
		n := varOccurrenceNode(v.Name, state)
		return func() *Descriptor { return Step(n) }
	case ExprDescr:
		d := v.D
		return func() *Descriptor { return d }
	case ExprUnion:
		cs := compileAll(v.Args, state)
		return func() *Descriptor {
			out := None()
			for _, c := range cs {
				out = Union(out, c())
			}
			return out
		}
	case ExprIntersection:
		cs := compileAll(v.Args, state)
		return func() *Descriptor {
			out := Term()
			for _, c := range cs {
				out = Intersection(out, c())
			}
			return out
		}
	case ExprDifference:
		ca, cb := compileDescr(v.A, state), compileDescr(v.B, state)
		return func() *Descriptor { return Difference(ca(), cb()) }
	case ExprNegate:
		ca := compileDescr(v.A, state)
		return func() *Descriptor { return Negation(ca()) }
	case ExprMap:
		fields := make([]struct {
			key      string
			optional bool
			node     compiledNode
		}, len(v.Fields))
		for i, f := range v.Fields {
			fields[i].key = f.Key
			fields[i].optional = f.Optional
			fields[i].node = compileNode(f.Value, state)
		}
		tag := v.Tag
		return func() *Descriptor {
			fs := make([]Field, len(fields))
			for i, f := range fields {
				if f.optional {
					fs[i] = OptionalField(f.key, f.node())
				} else {
					fs[i] = RequiredField(f.key, f.node())
				}
			}
			return Map(fs, tag)
		}
	default:
		misuse("build_recursive: unsupported expression %T", e)
		return nil
	}
}

func compileAll(es []Expr, state map[string]Generator) []compiledDescr {
	out := make([]compiledDescr, len(es))
	for i, e := range es {
		out[i] = compileDescr(e, state)
	}
	return out
}

// BuildRecursive compiles a system of mutually recursive type equations
// into one node per equation (§4.5 build_recursive, steps 1-4). Every
// ExprVar occurrence anywhere in the bodies is compiled into exactly
// one Node, built once here and closed over by the generators that
// reference it; re-stepping an equation's node therefore always routes
// back through the same, finite set of node identities, which is what
// lets Empty/Subtype/Equal terminate on genuinely cyclic equations.
func BuildRecursive(equations map[string]Expr) map[string]*Node {
	state := make(map[string]Generator, len(equations))
	compiled := make(map[string]compiledDescr, len(equations))
	for name, body := range equations {
		compiled[name] = compileDescr(body, state)
	}
	for name, cd := range compiled {
		cd := cd
		state[name] = func(map[string]Generator) *Descriptor { return cd() }
	}
	nodes := make(map[string]*Node, len(equations))
	for name, gen := range state {
		nodes[name] = MakeNode(state, gen)
	}
	return nodes
}
