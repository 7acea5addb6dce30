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
	"github.com/stackzkvm/corevm/pkg/felt"
	"github.com/stackzkvm/corevm/pkg/vm/verrors"
)

// WordSize is the number of elements in a memory word (used by the MLoadW/
// MStoreW/MStream/Pipe family).
const WordSize = 4

// Memory is an element-addressed linear store of field elements.  All
// locations read as zero until written, and the backing store grows
// monotonically, matching spec.md §4.4's "element-addressed linear store
// ... with word-sized variants".
type Memory struct {
	cells map[uint32]felt.Element
}

// NewMemory constructs an empty memory.
func NewMemory() *Memory {
	return &Memory{cells: make(map[uint32]felt.Element)}
}

// Decode converts a field-element address into a flat uint32 index,
// reporting MemoryAddressOutOfRange if it does not fit.
func Decode(address felt.Element) (uint32, error) {
	v := address.BigInt()
	if !v.IsUint64() || v.Uint64() > uint64(^uint32(0)) {
		return 0, &verrors.MemoryAddressOutOfRange{Address: address}
	}

	return uint32(v.Uint64()), nil
}

// Load reads a single element, returning zero if the address was never
// written.
func (m *Memory) Load(addr uint32) felt.Element {
	if v, ok := m.cells[addr]; ok {
		return v
	}

	return felt.Zero()
}

// Store writes a single element.
func (m *Memory) Store(addr uint32, v felt.Element) {
	m.cells[addr] = v
}

// LoadWord reads WordSize consecutive elements starting at a
// WordSize-aligned address, failing with MemoryAddressOutOfRange if addr
// is not aligned.
func (m *Memory) LoadWord(addr uint32) ([WordSize]felt.Element, error) {
	var word [WordSize]felt.Element

	if addr%WordSize != 0 {
		return word, &verrors.MemoryAddressOutOfRange{Address: felt.FromUint64(uint64(addr))}
	}

	for i := uint32(0); i < WordSize; i++ {
		word[i] = m.Load(addr + i)
	}

	return word, nil
}

// StoreWord writes WordSize consecutive elements starting at a
// WordSize-aligned address, failing with MemoryAddressOutOfRange if addr
// is not aligned.
func (m *Memory) StoreWord(addr uint32, word [WordSize]felt.Element) error {
	if addr%WordSize != 0 {
		return &verrors.MemoryAddressOutOfRange{Address: felt.FromUint64(uint64(addr))}
	}

	for i := uint32(0); i < WordSize; i++ {
		m.Store(addr+i, word[i])
	}

	return nil
}
