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

// Package host declares the capability set the operation dispatcher (C5)
// consumes from an external host: non-deterministic advice inputs, Merkle
// tree queries/updates, and an event sink (spec.md §4.6). Concrete hosts
// (advice providers, prover integrations) are out of scope for this
// module; MemHost below exists only to drive the dispatcher's tests.
package host

import "github.com/stackzkvm/corevm/pkg/felt"

// WordSize mirrors process.WordSize without importing the process package,
// since host must not depend on the very package that depends on it.
const WordSize = 4

// ProcessView is the read-only slice of process state a Host's OnEvent
// callback is handed. *process.Process satisfies this interface.
type ProcessView interface {
	StackSnapshot() [WordSize]felt.Element
	Clock() uint64
	Fmp() felt.Element
}

// Host is the abstract capability set C5 consumes for non-deterministic
// input and side effects. Implementations may be stateful; the dispatcher
// treats every response as adversarial and validates its length/shape
// before use (spec.md §4.6).
type Host interface {
	// PopAdvice removes and returns the top element of the advice stack.
	PopAdvice() (felt.Element, error)
	// PopAdviceWord removes and returns the top four elements of the
	// advice stack, most-significant first.
	PopAdviceWord() ([WordSize]felt.Element, error)
	// MerklePath returns the authentication path for the leaf at index
	// within a tree of the given depth rooted at root.
	MerklePath(root [WordSize]felt.Element, depth uint32, index uint64) ([][WordSize]felt.Element, error)
	// MerkleUpdate replaces the leaf at index with newLeaf and returns the
	// new root.
	MerkleUpdate(root [WordSize]felt.Element, depth uint32, index uint64, newLeaf [WordSize]felt.Element) ([WordSize]felt.Element, error)
	// OnEvent notifies the host of an Emit(id) instruction, handing it a
	// read-only view of the process at the point of emission.
	OnEvent(id uint32, view ProcessView) error
}
