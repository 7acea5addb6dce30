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

// Row is one cycle's worth of decoder trace: the dispatched operation's
// name, the clock at which it was dispatched, and a snapshot of the top of
// the stack after the transition completed.  This is deliberately a thin
// slice of the full process state; downstream arithmetization (out of
// scope here) is expected to derive its own, richer column layout from the
// same sequence of (op, state) pairs.
type Row struct {
	Clock     uint64
	Operation string
	StackTop  [WordSize]felt.Element
}

// Decoder accumulates a structured trace of executed operations, one Row
// per cycle.
type Decoder struct {
	rows []Row
}

// NewDecoder constructs an empty decoder.
func NewDecoder() *Decoder {
	return &Decoder{}
}

// EnsureTraceCapacity grows the row buffer's capacity ahead of the next
// append, matching the ensure_trace_capacity contract every C4 component
// exposes (spec.md §4.4).
func (d *Decoder) EnsureTraceCapacity() {
	if len(d.rows) == cap(d.rows) {
		grown := make([]Row, len(d.rows), 2*cap(d.rows)+16)
		copy(grown, d.rows)
		d.rows = grown
	}
}

// Record appends a trace row for the just-executed operation.
func (d *Decoder) Record(row Row) {
	d.rows = append(d.rows, row)
}

// Rows returns every row recorded so far, in execution order.
func (d *Decoder) Rows() []Row {
	return d.rows
}
