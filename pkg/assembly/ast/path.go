// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// Package ast holds the data model produced by the module assembler: the
// library path / import / constant / procedure / module types of the
// assembly language, along with the minimal instruction tree needed by the
// const-evaluation and invoke-target-verification passes.
package ast

import "strings"

// LibraryPath is an ordered sequence of identifiers identifying a module,
// e.g. "std::math::u64".  The last component is the leaf name; everything
// before it is the namespace.
type LibraryPath struct {
	components []string
}

// NewLibraryPath constructs a library path from its dot/colon-separated
// components, given already split.
func NewLibraryPath(components ...string) LibraryPath {
	return LibraryPath{components: append([]string(nil), components...)}
}

// ParseLibraryPath splits a "::"-separated path string into a LibraryPath.
func ParseLibraryPath(path string) LibraryPath {
	return NewLibraryPath(strings.Split(path, "::")...)
}

// Components returns the path's components, in order.  The returned slice
// is owned by the caller; mutating it does not affect the LibraryPath.
func (p LibraryPath) Components() []string {
	return append([]string(nil), p.components...)
}

// IsEmpty returns true if this path has no components.
func (p LibraryPath) IsEmpty() bool {
	return len(p.components) == 0
}

// Leaf returns the final component of the path, e.g. "u64" for
// "std::math::u64".
func (p LibraryPath) Leaf() string {
	if len(p.components) == 0 {
		return ""
	}

	return p.components[len(p.components)-1]
}

// Namespace returns the path with its leaf component removed, e.g.
// "std::math" for "std::math::u64".
func (p LibraryPath) Namespace() LibraryPath {
	if len(p.components) == 0 {
		return p
	}

	return LibraryPath{components: p.components[:len(p.components)-1]}
}

// Join appends a leaf component to this path, returning a new path.
func (p LibraryPath) Join(leaf string) LibraryPath {
	return LibraryPath{components: append(append([]string(nil), p.components...), leaf)}
}

// Equal reports whether two library paths have identical components.
func (p LibraryPath) Equal(other LibraryPath) bool {
	if len(p.components) != len(other.components) {
		return false
	}

	for i := range p.components {
		if p.components[i] != other.components[i] {
			return false
		}
	}

	return true
}

// String renders the path in "a::b::c" form.
func (p LibraryPath) String() string {
	return strings.Join(p.components, "::")
}
