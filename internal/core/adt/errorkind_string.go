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

// Code generated by "stringer -type=ErrorKind -linecomment"; adapted by hand
// since this repository does not invoke the Go toolchain during this
// exercise. Keep in sync with the const block in errors.go.

package adt

func (k ErrorKind) String() string {
	switch k {
	case DomainMisuse:
		return "domain misuse"
	case InvariantViolation:
		return "internal invariant violation"
	default:
		return "unknown error kind"
	}
}
