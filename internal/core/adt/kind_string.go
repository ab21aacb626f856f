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

// Code generated by "stringer -type=Kind -linecomment"; adapted by hand,
// see errorkind_string.go for why.

package adt

import "strings"

func (k Kind) String() string {
	if k == 0 {
		return "none"
	}
	var parts []string
	if k.Is(BitmapKind) {
		parts = append(parts, "bitmap")
	}
	if k.Is(AtomKind) {
		parts = append(parts, "atom")
	}
	if k.Is(MapKind) {
		parts = append(parts, "map")
	}
	if k.Is(DynamicKind) {
		parts = append(parts, "dynamic")
	}
	return strings.Join(parts, "|")
}
