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
	"sync/atomic"

	"github.com/google/uuid"
)

// Generator is a node's stepping function: applying it to the shared
// state yields one layer of descriptor, with recursion variables
// replaced by self-contained nodes (§3 Node, §4.5); for BuildRecursive
// these are the same occurrence nodes on every step.
type Generator func(state map[string]Generator) *Descriptor

// idAllocator issues globally unique node identities. It is the one
// piece of global, shared state this engine has (§5): a process-wide
// monotonic source, safe for concurrent allocation.
var idAllocator atomic.Uint64

// idScheme selects how node identities are minted. The default
// (monotonic counter) is what the Design Notes call sufficient; UUIDs
// are the explicitly offered alternative for callers who shard node
// creation across processes and so cannot share one counter.
var idScheme = monotonicIDs

func monotonicIDs() uint64 { return idAllocator.Add(1) }

func uuidIDs() uint64 {
	// Fold a random UUID down to a uint64. Collisions are astronomically
	// unlikely (this is a convenience id space, not a security boundary)
	// and O(1) equality/hash is preserved since the result is still a
	// plain uint64.
	u := uuid.New()
	var v uint64
	for i := 0; i < 8; i++ {
		v = v<<8 | uint64(u[i])
	}
	return v
}

// UseUUIDNodeIDs switches node identity allocation to the UUID-derived
// scheme (settype.WithUUIDNodeIDs). It is a process-wide setting, since
// id allocation is the engine's only global state.
func UseUUIDNodeIDs() { idScheme = uuidIDs }

// Node is the coinductive wrapper of §3/§4.5: an identity, shared
// recursion-variable state, and the generator that steps it. Nodes are
// immutable after construction and their identity is never recycled.
type Node struct {
	id    uint64
	state map[string]Generator
	gen   Generator
}

// MakeNode is the public node constructor (§6 make_node).
func MakeNode(state map[string]Generator, gen Generator) *Node {
	if gen == nil {
		invariant("make_node: generator must not be nil")
	}
	return &Node{id: idScheme(), state: state, gen: gen}
}

// FreshNode wraps a concrete descriptor in a node with new identity,
// empty state, and a constant generator (§4.5 fresh_node).
func FreshNode(d *Descriptor) *Node {
	if d == nil {
		d = None()
	}
	return &Node{id: idScheme(), gen: func(map[string]Generator) *Descriptor { return d }}
}

// ToNode accepts either a Node or a Descriptor and returns a Node
// (§4.5 to_node). Anything else is a domain misuse.
func ToNode(x interface{}) *Node {
	switch v := x.(type) {
	case *Node:
		return v
	case *Descriptor:
		return FreshNode(v)
	default:
		misuse("to_node: expected a Node or Descriptor, got %T", x)
		return nil
	}
}

func (n *Node) ID() uint64 { return n.id }

// Step applies the node's generator to its state (§4.5 step).
func Step(n *Node) *Descriptor {
	if n == nil || n.gen == nil {
		invariant("step: malformed node")
	}
	d := n.gen(n.state)
	if d == nil {
		invariant("step: generator produced a nil descriptor")
	}
	return d
}

// String renders one step of the node. It is a minimal, internal
// rendition kept in this package to avoid a dependency cycle with the
// quote package (which depends on adt, not the reverse); quote.String
// is the full neutral-AST renderer callers should reach for.
func (n *Node) String() string { return describeShallow(Step(n)) }

// UnionNode, InterNode, DiffNode and NegateNode step their operands,
// apply the descriptor-level operation, and wrap the result in a fresh
// node (§4.5).
func UnionNode(a, b *Node) *Node { return FreshNode(Union(Step(a), Step(b))) }

func InterNode(a, b *Node) *Node { return FreshNode(Intersection(Step(a), Step(b))) }

func DiffNode(a, b *Node) *Node { return FreshNode(Difference(Step(a), Step(b))) }

func NegateNode(a *Node) *Node { return FreshNode(Negation(Step(a))) }
