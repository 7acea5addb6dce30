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
package hash

import (
	"testing"

	"github.com/stackzkvm/corevm/pkg/felt"
)

func TestPermute_IsDeterministic(t *testing.T) {
	var state [StateWidth]felt.Element
	for i := range state {
		state[i] = felt.FromUint64(uint64(i + 1))
	}

	a := Permute(state)
	b := Permute(state)

	if a != b {
		t.Error("Permute must be deterministic for the same input")
	}
}

func TestPermute_DiffersFromIdentity(t *testing.T) {
	var state [StateWidth]felt.Element

	out := Permute(state)

	same := true
	for i := range state {
		if !out[i].Equal(state[i]) {
			same = false
			break
		}
	}

	if same {
		t.Error("Permute must not be the identity transform")
	}
}

func TestCompress_IsDeterministicAndOrderSensitive(t *testing.T) {
	left := [4]felt.Element{felt.FromUint64(1), felt.FromUint64(2), felt.FromUint64(3), felt.FromUint64(4)}
	right := [4]felt.Element{felt.FromUint64(5), felt.FromUint64(6), felt.FromUint64(7), felt.FromUint64(8)}

	a := Compress(left, right)
	b := Compress(left, right)

	if a != b {
		t.Error("Compress must be deterministic for the same inputs")
	}

	swapped := Compress(right, left)
	if a == swapped {
		t.Error("Compress(left, right) must differ from Compress(right, left)")
	}
}
