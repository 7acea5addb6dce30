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
package ops

import "fmt"

// ErrUnreachableControlFlow is returned if a control-flow operation
// (Join/Split/Loop/Call/SysCall/Dyn/Dyncall/Span/Repeat/Respan/End/Halt)
// ever reaches Execute. These are declared as Kinds so the ABI between the
// external structural decoder and the dispatcher is complete, but they are
// consumed by that decoder, never passed to execute_op. Reaching here is
// an implementation bug in the decoder, not a process-level execution
// error, so it is kept out of the verrors taxonomy (spec.md §9).
type ErrUnreachableControlFlow struct {
	Kind Kind
}

func (e *ErrUnreachableControlFlow) Error() string {
	return fmt.Sprintf("internal error: control-flow operation %d dispatched directly", e.Kind)
}

func isControlFlow(k Kind) bool {
	switch k {
	case OpJoin, OpSplit, OpLoop, OpCall, OpSysCall, OpDyn, OpDyncall, OpSpan, OpRepeat, OpRespan, OpEnd, OpHalt:
		return true
	default:
		return false
	}
}
