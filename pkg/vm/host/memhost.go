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
package host

import (
	"github.com/stackzkvm/corevm/pkg/felt"
	"github.com/stackzkvm/corevm/pkg/vm/hash"
	"github.com/stackzkvm/corevm/pkg/vm/verrors"
)

// MemHost is an in-memory Host: a FIFO advice stack plus a single
// in-memory Merkle tree, built eagerly from a leaf set whose size is a
// power of two. It exists to drive this module's own tests, standing in
// for the externally-supplied, possibly-adversarial hosts spec.md §4.6
// describes. Real advice providers and prover-side host integrations are
// out of scope for this module.
type MemHost struct {
	advice []felt.Element
	tree   [][][4]felt.Element // tree[0] = leaves, tree[len-1] = [root]
	events []EventRecord
}

// EventRecord captures one OnEvent call, for test assertions.
type EventRecord struct {
	ID    uint32
	Clock uint64
}

// NewMemHost constructs a MemHost with the given advice stack (consumed
// front-to-back by PopAdvice/PopAdviceWord) and Merkle leaves (len(leaves)
// must be a power of two).
func NewMemHost(advice []felt.Element, leaves [][4]felt.Element) *MemHost {
	h := &MemHost{advice: append([]felt.Element(nil), advice...)}
	h.tree = buildTree(leaves)

	return h
}

func buildTree(leaves [][4]felt.Element) [][][4]felt.Element {
	levels := [][][4]felt.Element{append([][4]felt.Element(nil), leaves...)}

	for len(levels[len(levels)-1]) > 1 {
		cur := levels[len(levels)-1]
		next := make([][4]felt.Element, len(cur)/2)

		for i := range next {
			next[i] = hash.Compress(cur[2*i], cur[2*i+1])
		}

		levels = append(levels, next)
	}

	return levels
}

// Root returns the tree's current root.
func (h *MemHost) Root() [4]felt.Element {
	return h.tree[len(h.tree)-1][0]
}

// PopAdvice implements Host.
func (h *MemHost) PopAdvice() (felt.Element, error) {
	if len(h.advice) == 0 {
		return felt.Zero(), &verrors.AdviceStackEmpty{Requested: 1}
	}

	v := h.advice[0]
	h.advice = h.advice[1:]

	return v, nil
}

// PopAdviceWord implements Host.
func (h *MemHost) PopAdviceWord() ([WordSize]felt.Element, error) {
	var word [WordSize]felt.Element

	if len(h.advice) < WordSize {
		return word, &verrors.AdviceStackEmpty{Requested: WordSize}
	}

	copy(word[:], h.advice[:WordSize])
	h.advice = h.advice[WordSize:]

	return word, nil
}

// MerklePath implements Host. depth must match the tree's own depth and
// root must match the tree's current root; both are validated by the
// caller (MpVerify), which treats every response as adversarial.
func (h *MemHost) MerklePath(root [WordSize]felt.Element, depth uint32, index uint64) ([][WordSize]felt.Element, error) {
	path := make([][WordSize]felt.Element, 0, depth)
	idx := index

	for level := 0; level < int(depth) && level < len(h.tree)-1; level++ {
		siblingIdx := idx ^ 1
		path = append(path, h.tree[level][siblingIdx])
		idx /= 2
	}

	return path, nil
}

// MerkleUpdate implements Host: it replaces the leaf at index, recomputes
// every ancestor up to the root, and returns the new root.
func (h *MemHost) MerkleUpdate(root [WordSize]felt.Element, depth uint32, index uint64, newLeaf [WordSize]felt.Element) ([WordSize]felt.Element, error) {
	h.tree[0][index] = newLeaf
	idx := index

	for level := 0; level < len(h.tree)-1; level++ {
		parentIdx := idx / 2
		leftIdx := parentIdx * 2
		h.tree[level+1][parentIdx] = hash.Compress(h.tree[level][leftIdx], h.tree[level][leftIdx+1])
		idx = parentIdx
	}

	return h.Root(), nil
}

// OnEvent implements Host: it records the event for later test assertions.
func (h *MemHost) OnEvent(id uint32, view ProcessView) error {
	h.events = append(h.events, EventRecord{ID: id, Clock: view.Clock()})
	return nil
}

// Events returns every event recorded so far.
func (h *MemHost) Events() []EventRecord {
	return h.events
}
