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

// Package hash implements the single permutation primitive the
// cryptographic operation family (HPerm, MpVerify, MrUpdate) is built on
// top of: a fixed-width state transformation over field elements, in the
// same shape as a sponge-construction permutation (12-element state: an
// 8-element rate and a 4-element capacity).
//
// This is a reference permutation for this module's own self-consistency
// (Merkle paths verify against roots produced by this same permutation,
// and nothing else) rather than a specific named cryptographic primitive
// such as Poseidon or Rescue; the underlying field library is used for
// its element arithmetic, not a primitive it exposes directly.
package hash

import "github.com/stackzkvm/corevm/pkg/felt"

// StateWidth is the width of the permutation's state.
const StateWidth = 12

// Rounds is the number of rounds applied per permutation call.
const Rounds = 7

// roundConstant returns a fixed, round- and position-dependent constant,
// so the permutation is not linear in its input.
func roundConstant(round, pos int) felt.Element {
	return felt.FromUint64(uint64(round)*uint64(StateWidth) + uint64(pos) + 1)
}

// Permute applies the fixed-round permutation to a 12-element state,
// returning the transformed state. Each round adds a position-dependent
// constant, cubes every element (the S-box), then mixes elements via a
// simple all-pairs sum (a dense linear layer).
func Permute(state [StateWidth]felt.Element) [StateWidth]felt.Element {
	cur := state

	for r := 0; r < Rounds; r++ {
		var sboxed [StateWidth]felt.Element

		for i := 0; i < StateWidth; i++ {
			x := cur[i].Add(roundConstant(r, i))
			sboxed[i] = x.Mul(x).Mul(x)
		}

		var total felt.Element
		for i := 0; i < StateWidth; i++ {
			total = total.Add(sboxed[i])
		}

		var mixed [StateWidth]felt.Element
		for i := 0; i < StateWidth; i++ {
			mixed[i] = total.Add(sboxed[i])
		}

		cur = mixed
	}

	return cur
}

// Compress folds two 4-element words into one, via Permute with the
// capacity (the final four state elements) held at zero. This is the
// 2-to-1 function Merkle path folding (MpVerify/MrUpdate) uses.
func Compress(left, right [4]felt.Element) [4]felt.Element {
	var state [StateWidth]felt.Element

	copy(state[0:4], left[:])
	copy(state[4:8], right[:])

	out := Permute(state)

	var digest [4]felt.Element
	copy(digest[:], out[0:4])

	return digest
}
