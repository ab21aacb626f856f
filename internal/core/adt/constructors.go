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

import "github.com/settype/settype/internal/core/kindset"

// None is the empty type: no kind is present.
func None() *Descriptor { return &Descriptor{} }

// universalMapLiteral is the single literal "open, no declared fields":
// the unconstrained map, matching every map value. Splitting on any key
// against it hits the "no split" sentinel of §4.3 step 2.
func universalMapLiteral() *MapLiteral { return &MapLiteral{Tag: Open, Fields: map[string]*Node{}} }

func universalMap() *Descriptor { return &Descriptor{Map: literalDiagram(universalMapLiteral())} }

// Term is the top type: the union of every kind's full domain.
func Term() *Descriptor {
	return &Descriptor{
		Bitmap: kindset.All,
		Atom:   kindset.Top(),
		Map:    literalDiagram(universalMapLiteral()),
	}
}

// Dynamic is the fully gradual, fully unknown type: its runtime upper
// bound is everything and it carries no static guarantee.
func Dynamic() *Descriptor { return &Descriptor{Dynamic: Term()} }

func AtomAny() *Descriptor { return &Descriptor{Atom: kindset.Top()} }

func AtomSet(names ...string) *Descriptor {
	a := kindset.NewUnion(names)
	if a == nil {
		return None()
	}
	return &Descriptor{Atom: a}
}

func Boolean() *Descriptor { return AtomSet("true", "false") }

func Integer() *Descriptor { return &Descriptor{Bitmap: kindset.Integer} }

func Float() *Descriptor { return &Descriptor{Bitmap: kindset.Float} }

func Binary() *Descriptor { return &Descriptor{Bitmap: kindset.Binary} }

func Pid() *Descriptor { return &Descriptor{Bitmap: kindset.Pid} }

func Port() *Descriptor { return &Descriptor{Bitmap: kindset.Port} }

func Reference() *Descriptor { return &Descriptor{Bitmap: kindset.Reference} }

func EmptyList() *Descriptor { return &Descriptor{Bitmap: kindset.EmptyList} }

func NonEmptyList() *Descriptor { return &Descriptor{Bitmap: kindset.NonEmptyList} }

// Tuple and Fun are indivisible bitmap bits in this CORE: spec.md's
// second Open Question (§9) notes the source never finalized a BDD
// encoding for tuples/functions, and directs implementers to treat them
// as indivisible absent such an encoding (see DESIGN.md).
func Tuple() *Descriptor { return &Descriptor{Bitmap: kindset.TupleUnknown} }

func Fun() *Descriptor { return &Descriptor{Bitmap: kindset.FunUnknown} }

func notSet() *Descriptor { return &Descriptor{Bitmap: kindset.NotSet} }

// termOrNotSet is the value type assigned to a key declared on neither
// side of an open literal: the key may hold any value, or be absent.
func termOrNotSet() *Descriptor {
	t := Term()
	t.Bitmap |= kindset.NotSet
	return t
}

// Field is one (key, value) entry for the Map constructor.
type Field struct {
	Key      string
	Value    *Node
	Optional bool
}

// OptionalField marks a field's value as possibly-absent (§6 optional).
func OptionalField(key string, value *Node) Field {
	return Field{Key: key, Value: value, Optional: true}
}

// RequiredField is the non-optional counterpart of OptionalField.
func RequiredField(key string, value *Node) Field {
	return Field{Key: key, Value: value}
}

// Map builds the map(pairs, open|closed) constructor of §6. Duplicate
// keys are a domain misuse: the spec's host language enforces unique
// keys in literal map syntax, a guarantee this constructor must restate
// explicitly since Go has no literal map-expression syntax to lean on.
func Map(fields []Field, tag MapTag) *Descriptor {
	lit := &MapLiteral{Tag: tag, Fields: make(map[string]*Node, len(fields))}
	for _, f := range fields {
		if _, dup := lit.Fields[f.Key]; dup {
			misuse("map: duplicate key %q", f.Key)
		}
		v := f.Value
		if f.Optional {
			vd := Union(Step(v), notSet())
			v = FreshNode(vd)
		}
		lit.Fields[f.Key] = v
	}
	return &Descriptor{Map: literalDiagram(lit)}
}
