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

import "github.com/stackzkvm/corevm/pkg/felt"

// Process is the runtime state driven by the operation dispatcher (C5): the
// operand stack, linear memory, system registers, and decoder trace.
//
// A Process is single-owner and synchronous: one execution makes progress
// per call into the dispatcher, and after any execution error the process
// must be discarded (spec.md §5); its fields are left in an unspecified
// but still-readable state, never corrupted memory.
type Process struct {
	System  *System
	Stack   *Stack
	Memory  *Memory
	Decoder *Decoder
}

// New constructs a process with empty stack and memory, kernel-less
// caller context, and the given cycle budget (0 meaning unbounded).
func New(maxCycles uint64) *Process {
	return &Process{
		System:  NewSystem(maxCycles),
		Stack:   NewStack(),
		Memory:  NewMemory(),
		Decoder: NewDecoder(),
	}
}

// EnsureTraceCapacity grows every component's row buffer ahead of the next
// cycle, per the C4 contract each component individually exposes.
func (p *Process) EnsureTraceCapacity() {
	p.Decoder.EnsureTraceCapacity()
}

// RecordRow appends a decoder trace row labeled with the given operation
// name and the process's current clock and stack-top snapshot.  Called by
// the dispatcher (C5) as the last step of execute_op, after the state
// transition and before advancing the clock, so Clock reflects the cycle
// just completed.
func (p *Process) RecordRow(operation string) {
	p.Decoder.Record(Row{
		Clock:     p.System.Clock(),
		Operation: operation,
		StackTop:  [WordSize]felt.Element{p.Stack.Peek(0), p.Stack.Peek(1), p.Stack.Peek(2), p.Stack.Peek(3)},
	})
}

// StackSnapshot returns the top WordSize elements of the operand stack, for
// consumption by a Host's on_event callback (host.ProcessView).
func (p *Process) StackSnapshot() [WordSize]felt.Element {
	return [WordSize]felt.Element{p.Stack.Peek(0), p.Stack.Peek(1), p.Stack.Peek(2), p.Stack.Peek(3)}
}

// Clock returns the process's current cycle count (host.ProcessView).
func (p *Process) Clock() uint64 {
	return p.System.Clock()
}

// Fmp returns the process's current free-memory pointer (host.ProcessView).
func (p *Process) Fmp() felt.Element {
	return p.System.Fmp()
}
