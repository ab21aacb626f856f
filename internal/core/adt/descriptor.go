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
	"github.com/settype/settype/internal/core/bdd"
	"github.com/settype/settype/internal/core/kindset"
)

// Descriptor is the immutable, normalized value of a type (§3). Each
// field holds the kind value for one partition, or its zero value when
// that kind is absent (empty-kind entries are never distinguished from
// "kind absent", per the normalization invariant). Dynamic, when set,
// is itself a Descriptor with no Dynamic field of its own (a Dynamic
// component is never itself gradual).
type Descriptor struct {
	Bitmap  kindset.Bitmap
	Atom    *kindset.Atom
	Map     *bdd.Diagram[*MapLiteral]
	Dynamic *Descriptor
}

// MapTag is the open/closed tag of a map literal.
type MapTag int

const (
	Open MapTag = iota
	Closed
)

// MapLiteral is one internal node label of a map BDD: a tag plus the
// keys it declares, each mapped to the Node producing that field's
// value type. MapLiteral implements bdd.Literal so it can label BDD
// decision nodes directly.
type MapLiteral struct {
	Tag    MapTag
	Fields map[string]*Node
}

func sortedKeys(m map[string]*Node) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	// small maps; simple insertion sort avoids importing sort here and
	// keeps this file's dependency surface minimal.
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j-1] > out[j]; j-- {
			out[j-1], out[j] = out[j], out[j-1]
		}
	}
	return out
}

// Compare gives map literals a total order: by tag, then by the sorted
// list of declared keys, then by the identity of each key's node. Two
// literals with equal content but distinct node identities compare as
// different labels; this is a deliberate scoping simplification that
// preserves correctness of the set denoted by a BDD
// (union/intersection/difference never depend on literal merging) while
// leaving some compaction on the table.
func (l *MapLiteral) Compare(o *MapLiteral) int {
	if l.Tag != o.Tag {
		return int(l.Tag) - int(o.Tag)
	}
	lk, ok := sortedKeys(l.Fields), sortedKeys(o.Fields)
	if c := compareStringSlices(lk, ok); c != 0 {
		return c
	}
	for _, k := range lk {
		a, b := l.Fields[k].ID(), o.Fields[k].ID()
		if a != b {
			if a < b {
				return -1
			}
			return 1
		}
	}
	return 0
}

func compareStringSlices(a, b []string) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	return len(a) - len(b)
}

// withoutKey returns a shallow copy of l with key removed.
func (l *MapLiteral) withoutKey(key string) *MapLiteral {
	fields := make(map[string]*Node, len(l.Fields))
	for k, v := range l.Fields {
		if k != key {
			fields[k] = v
		}
	}
	return &MapLiteral{Tag: l.Tag, Fields: fields}
}

// literalDiagram wraps a single literal as the one-node BDD it denotes:
// "exactly the maps matching this literal".
func literalDiagram(l *MapLiteral) *bdd.Diagram[*MapLiteral] {
	return bdd.Node(l, bdd.True[*MapLiteral](), bdd.False[*MapLiteral]())
}
