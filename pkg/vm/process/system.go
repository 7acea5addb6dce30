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

// System holds the process's system registers: the free-memory pointer,
// clock, calling context, and the configured cycle budget.
type System struct {
	fmp       felt.Element
	clock     uint64
	caller    felt.Element
	maxCycles uint64
}

// NewSystem constructs a System with fmp and caller at zero and the given
// cycle budget.  maxCycles == 0 means unbounded.
func NewSystem(maxCycles uint64) *System {
	return &System{maxCycles: maxCycles}
}

// Fmp returns the current free-memory pointer.
func (s *System) Fmp() felt.Element {
	return s.fmp
}

// SetFmp overwrites the free-memory pointer.
func (s *System) SetFmp(v felt.Element) {
	s.fmp = v
}

// Clock returns the current cycle count.
func (s *System) Clock() uint64 {
	return s.clock
}

// Caller returns the identifier of the calling context (the hash of the
// calling procedure, in a linked program; zero at the root).
func (s *System) Caller() felt.Element {
	return s.caller
}

// SetCaller overwrites the calling-context identifier.
func (s *System) SetCaller(v felt.Element) {
	s.caller = v
}

// AdvanceClock increments the clock, failing with CycleLimitExceeded if
// doing so would exceed the configured budget.
func (s *System) AdvanceClock() error {
	if s.maxCycles != 0 && s.clock+1 > s.maxCycles {
		return &verrors.CycleLimitExceeded{Clock: s.clock + 1, Max: s.maxCycles}
	}

	s.clock++

	return nil
}
