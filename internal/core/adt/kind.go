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

// Kind is the closed enumeration of top-level partitions a Descriptor
// may carry (§3). It is a bitmask so callers can ask about several
// kinds at once, the way the teacher's own adt.Kind is tested and
// combined with `|` (internal/core/adt's TestKindString).
//
//go:generate go tool stringer -type=Kind -linecomment
type Kind uint8

const (
	BitmapKind  Kind = 1 << iota // bitmap
	AtomKind                     // atom
	MapKind                      // map
	DynamicKind                  // dynamic
)

func (k Kind) Is(k2 Kind) bool { return k&k2 != 0 }
