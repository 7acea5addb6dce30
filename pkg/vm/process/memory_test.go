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

func TestMemory_UnwrittenCellReadsZero(t *testing.T) {
	m := NewMemory()

	if got := m.Load(123); !got.IsZero() {
		t.Errorf("expected an unwritten cell to read zero, got %s", got)
	}
}

func TestMemory_StoreLoadRoundTrip(t *testing.T) {
	m := NewMemory()
	m.Store(5, felt.FromUint64(99))

	if got := m.Load(5); !got.Equal(felt.FromUint64(99)) {
		t.Errorf("expected store/load round trip to return 99, got %s", got)
	}
}

func TestMemory_WordRoundTrip(t *testing.T) {
	m := NewMemory()
	word := [WordSize]felt.Element{felt.FromUint64(1), felt.FromUint64(2), felt.FromUint64(3), felt.FromUint64(4)}

	if err := m.StoreWord(8, word); err != nil {
		t.Fatalf("unexpected failure storing an aligned word: %v", err)
	}

	got, err := m.LoadWord(8)
	if err != nil {
		t.Fatalf("unexpected failure loading an aligned word: %v", err)
	}

	if got != word {
		t.Errorf("expected word round trip, got %v want %v", got, word)
	}
}

func TestMemory_UnalignedWordAccessFails(t *testing.T) {
	m := NewMemory()
	word := [WordSize]felt.Element{}

	if err := m.StoreWord(1, word); err == nil {
		t.Fatal("expected an unaligned StoreWord address to fail")
	}

	if _, err := m.LoadWord(1); err == nil {
		t.Fatal("expected an unaligned LoadWord address to fail")
	}
}

func TestMemory_DecodeRejectsOversizedAddress(t *testing.T) {
	oversized := felt.FromUint64(^uint64(0))
	if _, err := Decode(oversized); err == nil {
		t.Fatal("expected an address exceeding uint32 range to fail Decode")
	}
}
