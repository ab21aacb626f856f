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

import "fmt"

// ErrorKind distinguishes the two fail-fast error classes this engine
// raises (§7): a caller misusing the API versus an internal invariant
// violation (a bug in the library itself, not in the caller).
//
//go:generate go tool stringer -type=ErrorKind -linecomment
type ErrorKind int8

const (
	DomainMisuse        ErrorKind = iota // domain misuse
	InvariantViolation                   // internal invariant violation
)

// Error is the typed panic value every fail-fast operation raises. There
// is no recoverable variant: operations in this package are total on
// well-typed inputs, so an *Error always indicates either a programmer
// error at the call site or a bug in the engine, mirroring the teacher's
// own typed-panic control flow for unrecoverable conditions
// (internal/core/adt's Bottom/ErrorCode idiom) rather than a bare
// panic(string).
type Error struct {
	Kind ErrorKind
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

func fail(kind ErrorKind, format string, args ...interface{}) {
	panic(&Error{Kind: kind, Msg: fmt.Sprintf(format, args...)})
}

func misuse(format string, args ...interface{}) { fail(DomainMisuse, format, args...) }

func invariant(format string, args ...interface{}) { fail(InvariantViolation, format, args...) }
