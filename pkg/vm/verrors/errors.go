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

// Package verrors holds the closed taxonomy of execution errors (spec.md
// §7): every process-level execution error the process state and
// operation dispatcher can produce is one of these eight, and every one
// poisons the process: the caller must discard it and may not continue
// dispatching operations against it.  The dispatcher's internal
// control-flow error (ops.ErrUnreachableControlFlow) is not part of this
// set.
package verrors

import (
	"fmt"

	"github.com/stackzkvm/corevm/pkg/felt"
)

// FailedAssertion reports a failed Assert (or an internal boolean-input
// check, which is implemented as an assertion against a fixed code).
type FailedAssertion struct {
	Code uint32
}

func (e *FailedAssertion) Error() string {
	return fmt.Sprintf("failed assertion: code %d", e.Code)
}

// DivisionByZero reports an attempt to invert the zero field element.
type DivisionByZero struct{}

func (e *DivisionByZero) Error() string { return "division by zero" }

// NotU32Value reports an operand outside [0, 2^32) where a canonical
// 32-bit value was required.
type NotU32Value struct {
	Value felt.Element
}

func (e *NotU32Value) Error() string {
	return fmt.Sprintf("value %s is not a valid u32", e.Value)
}

// AdviceStackEmpty reports an AdvPop/AdvPopW with insufficient elements
// remaining on the host's advice stack.
type AdviceStackEmpty struct {
	Requested uint
}

func (e *AdviceStackEmpty) Error() string {
	return fmt.Sprintf("advice stack exhausted: requested %d element(s)", e.Requested)
}

// MerklePathVerificationFailed reports a Merkle path that does not
// authenticate against the expected root.
type MerklePathVerificationFailed struct {
	Code uint32
}

func (e *MerklePathVerificationFailed) Error() string {
	return fmt.Sprintf("merkle path verification failed: code %d", e.Code)
}

// MemoryAddressOutOfRange reports a memory access whose address does not
// fit the addressable range, or whose word access is not aligned.
type MemoryAddressOutOfRange struct {
	Address felt.Element
}

func (e *MemoryAddressOutOfRange) Error() string {
	return fmt.Sprintf("memory address %s out of range", e.Address)
}

// CycleLimitExceeded reports that advancing the clock would exceed the
// process's configured maximum cycle count.
type CycleLimitExceeded struct {
	Clock uint64
	Max   uint64
}

func (e *CycleLimitExceeded) Error() string {
	return fmt.Sprintf("cycle limit exceeded: clock %d max %d", e.Clock, e.Max)
}

// StackUnderflow reports an operation that would shrink the operand stack
// below MIN_STACK_DEPTH.
type StackUnderflow struct{}

func (e *StackUnderflow) Error() string { return "stack underflow" }
