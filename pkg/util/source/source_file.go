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
package source

// SourceFile is an immutable, shareable source file: byte content plus a
// name, used to anchor diagnostic spans.  A SourceFile may be shared by
// zero or more modules.
type SourceFile struct {
	// File name for this source file.
	filename string
	// Contents of this file.
	contents []rune
}

// NewSourceFile constructs a new source file from a given byte array.
func NewSourceFile(filename string, bytes []byte) *SourceFile {
	// Convert bytes into runes for easier parsing
	contents := []rune(string(bytes))
	return &SourceFile{filename, contents}
}

// Filename returns the filename associated with this source file.
func (s *SourceFile) Filename() string {
	return s.filename
}

// Contents returns the contents of this source file.
func (s *SourceFile) Contents() []rune {
	return s.contents
}
