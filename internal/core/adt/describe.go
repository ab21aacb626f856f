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

import "strings"

// describeShallow renders a descriptor's top-level shape without
// descending into node-valued map fields, which only ever get stepped
// on demand by quote.String. It exists so Node.String has something
// reasonable to print without adt importing the quote package.
func describeShallow(d *Descriptor) string {
	var parts []string
	if !d.Bitmap.Empty() {
		parts = append(parts, d.Bitmap.String())
	}
	if !d.Atom.Empty() {
		parts = append(parts, d.Atom.String())
	}
	if d.Map != nil {
		parts = append(parts, "map")
	}
	if d.Dynamic != nil {
		parts = append(parts, "~dynamic")
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, " | ")
}
