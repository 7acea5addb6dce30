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
package process

import (
	"testing"

	"github.com/stackzkvm/corevm/pkg/felt"
)

func TestStack_EmptyReadsAsZeroPadding(t *testing.T) {
	s := NewStack()

	for i := uint(0); i < MinStackDepth; i++ {
		if got := s.Peek(i); !got.IsZero() {
			t.Errorf("position %d of an empty stack should read zero, got %s", i, got)
		}
	}
}

func TestStack_PushThenPeekOrder(t *testing.T) {
	s := NewStack()
	s.Push(felt.FromUint64(1))
	s.Push(felt.FromUint64(2))
	s.Push(felt.FromUint64(3))

	want := []uint64{3, 2, 1}
	for i, w := range want {
		if got := s.Peek(uint(i)); !got.Equal(felt.FromUint64(w)) {
			t.Errorf("position %d: got %s want %d", i, got, w)
		}
	}
}

func TestStack_DropAtFloorUnderflows(t *testing.T) {
	s := NewStack()

	for i := uint64(0); i < MinStackDepth; i++ {
		s.Push(felt.FromUint64(i))
	}

	if err := s.Drop(); err == nil {
		t.Fatal("expected StackUnderflow when dropping at the MinStackDepth floor")
	}
}

func TestStack_DropAboveFloorSucceeds(t *testing.T) {
	s := NewStack()

	for i := uint64(0); i < MinStackDepth+1; i++ {
		s.Push(felt.FromUint64(i))
	}

	if err := s.Drop(); err != nil {
		t.Fatalf("unexpected failure dropping above the floor: %v", err)
	}

	if s.Depth() != MinStackDepth {
		t.Errorf("expected depth to settle at MinStackDepth, got %d", s.Depth())
	}
}

func TestStack_SetExtendsBackingSlice(t *testing.T) {
	s := NewStack()
	s.Set(3, felt.FromUint64(9))

	if got := s.Peek(3); !got.Equal(felt.FromUint64(9)) {
		t.Errorf("expected position 3 to read 9, got %s", got)
	}

	for _, i := range []uint{0, 1, 2} {
		if got := s.Peek(i); !got.IsZero() {
			t.Errorf("positions skipped by Set should read zero, got %s at %d", got, i)
		}
	}
}

func TestStack_CSwapBranches(t *testing.T) {
	s := NewStack()
	s.Push(felt.FromUint64(1))
	s.Push(felt.FromUint64(2))

	s.CSwap(felt.Zero())

	if got, want := s.Peek(0), felt.FromUint64(2); !got.Equal(want) {
		t.Errorf("CSwap(0) must not swap, got %s want %s", got, want)
	}

	s.CSwap(felt.One())

	if got, want := s.Peek(0), felt.FromUint64(1); !got.Equal(want) {
		t.Errorf("CSwap(1) must swap, got %s want %s", got, want)
	}
}
