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

import (
	"github.com/stackzkvm/corevm/pkg/vm/host"
	"github.com/stackzkvm/corevm/pkg/vm/process"
)

// Execute drives a single cycle: it ensures trace capacity, performs the
// state transition named by op, records a trace row, and advances the
// clock, in that order, matching the C5 contract (spec.md §4.5,
// §5 "ensure_trace_capacity, state transition, advance_clock").
//
// Control-flow Kinds (Join, Split, Loop, Call, SysCall, Dyn, Dyncall, Span,
// Repeat, Respan, End, Halt) are consumed by the program decoder before
// they ever reach here; Execute rejects them with
// ErrUnreachableControlFlow rather than silently doing nothing.
func Execute(p *process.Process, op Operation, h host.Host) error {
	if isControlFlow(op.Kind) {
		return &ErrUnreachableControlFlow{Kind: op.Kind}
	}

	p.EnsureTraceCapacity()

	if err := dispatch(p, op, h); err != nil {
		return err
	}

	p.RecordRow(mnemonic(op.Kind))

	return p.System.AdvanceClock()
}

func dispatch(p *process.Process, op Operation, h host.Host) error {
	switch op.Kind {
	// System.
	case OpNoop:
		return execNoop(p)
	case OpAssert:
		return execAssert(p, op.Code)
	case OpFmpAdd:
		return execFmpAdd(p)
	case OpFmpUpdate:
		return execFmpUpdate(p)
	case OpSDepth:
		return execSDepth(p)
	case OpCaller:
		return execCaller(p)
	case OpClk:
		return execClk(p)
	case OpEmit:
		return execEmit(p, op.Event, h)

	// Field arithmetic.
	case OpAdd:
		return execAdd(p)
	case OpNeg:
		return execNeg(p)
	case OpMul:
		return execMul(p)
	case OpInv:
		return execInv(p)
	case OpIncr:
		return execIncr(p)
	case OpAnd:
		return execAnd(p)
	case OpOr:
		return execOr(p)
	case OpNot:
		return execNot(p)
	case OpEq:
		return execEq(p)
	case OpEqz:
		return execEqz(p)
	case OpExpacc:
		return execExpacc(p)

	// Quadratic extension.
	case OpExt2Mul:
		return execExt2Mul(p)

	// u32 arithmetic.
	case OpU32split:
		return execU32split(p)
	case OpU32add:
		return execU32add(p)
	case OpU32add3:
		return execU32add3(p)
	case OpU32sub:
		return execU32sub(p)
	case OpU32mul:
		return execU32mul(p)
	case OpU32madd:
		return execU32madd(p)
	case OpU32div:
		return execU32div(p, op.Code)
	case OpU32and:
		return execU32and(p)
	case OpU32xor:
		return execU32xor(p)
	case OpU32assert2:
		return execU32assert2(p, op.Code)

	// Stack manipulation.
	case OpPad:
		return execPad(p)
	case OpDrop:
		return execDrop(p)
	case OpDup:
		return execDup(p, op.N)
	case OpSwap:
		return execSwap(p)
	case OpSwapW:
		return execSwapW(p)
	case OpSwapW2:
		return execSwapW2(p)
	case OpSwapW3:
		return execSwapW3(p)
	case OpSwapDW:
		return execSwapDW(p)
	case OpMovUp:
		return execMovUp(p, op.N)
	case OpMovDn:
		return execMovDn(p, op.N)
	case OpCSwap:
		return execCSwap(p)
	case OpCSwapW:
		return execCSwapW(p)

	// I/O.
	case OpPush:
		return execPush(p, op.Value)
	case OpAdvPop:
		return execAdvPop(p, h)
	case OpAdvPopW:
		return execAdvPopW(p, h)
	case OpMLoad:
		return execMLoad(p)
	case OpMStore:
		return execMStore(p)
	case OpMLoadW:
		return execMLoadW(p)
	case OpMStoreW:
		return execMStoreW(p)
	case OpMStream:
		return execMStream(p)
	case OpPipe:
		return execPipe(p, h)

	// Cryptographic.
	case OpHPerm:
		return execHPerm(p)
	case OpMpVerify:
		return execMpVerify(p, h, op.Code)
	case OpMrUpdate:
		return execMrUpdate(p, h)
	case OpFriE2F4:
		return execFriE2F4(p)
	case OpHornerBase:
		return execHornerBase(p)
	case OpHornerExt:
		return execHornerExt(p)

	default:
		return &ErrUnreachableControlFlow{Kind: op.Kind}
	}
}

// mnemonic returns the trace-row label for a Kind. Kept distinct from any
// user-facing assembly syntax; it exists purely so decoder trace rows are
// human-readable.
func mnemonic(k Kind) string {
	if name, ok := mnemonics[k]; ok {
		return name
	}

	return "unknown"
}

var mnemonics = map[Kind]string{
	OpNoop:       "noop",
	OpAssert:     "assert",
	OpFmpAdd:     "fmpadd",
	OpFmpUpdate:  "fmpupdate",
	OpSDepth:     "sdepth",
	OpCaller:     "caller",
	OpClk:        "clk",
	OpEmit:       "emit",
	OpAdd:        "add",
	OpNeg:        "neg",
	OpMul:        "mul",
	OpInv:        "inv",
	OpIncr:       "incr",
	OpAnd:        "and",
	OpOr:         "or",
	OpNot:        "not",
	OpEq:         "eq",
	OpEqz:        "eqz",
	OpExpacc:     "expacc",
	OpExt2Mul:    "ext2mul",
	OpU32split:   "u32split",
	OpU32add:     "u32add",
	OpU32add3:    "u32add3",
	OpU32sub:     "u32sub",
	OpU32mul:     "u32mul",
	OpU32madd:    "u32madd",
	OpU32div:     "u32div",
	OpU32and:     "u32and",
	OpU32xor:     "u32xor",
	OpU32assert2: "u32assert2",
	OpPad:        "pad",
	OpDrop:       "drop",
	OpDup:        "dup",
	OpSwap:       "swap",
	OpSwapW:      "swapw",
	OpSwapW2:     "swapw2",
	OpSwapW3:     "swapw3",
	OpSwapDW:     "swapdw",
	OpMovUp:      "movup",
	OpMovDn:      "movdn",
	OpCSwap:      "cswap",
	OpCSwapW:     "cswapw",
	OpPush:       "push",
	OpAdvPop:     "advpop",
	OpAdvPopW:    "advpopw",
	OpMLoad:      "mload",
	OpMStore:     "mstore",
	OpMLoadW:     "mloadw",
	OpMStoreW:    "mstorew",
	OpMStream:    "mstream",
	OpPipe:       "pipe",
	OpHPerm:      "hperm",
	OpMpVerify:   "mpverify",
	OpMrUpdate:   "mrupdate",
	OpFriE2F4:    "friE2F4",
	OpHornerBase: "hornerbase",
	OpHornerExt:  "hornerext",
}
