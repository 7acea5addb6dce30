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

// Package ops implements the operation dispatcher (C5): a single
// execute_op entry point that performs, in order, trace-capacity
// bookkeeping, the state transition named by an Operation, and clock
// advancement (spec.md §4.5).
package ops

import "github.com/stackzkvm/corevm/pkg/felt"

// Kind is the dense operation code the dispatcher switches on. Operations
// that share a shape (e.g. every Dup{i}) are a single Kind carrying an
// operand, rather than 12 distinct Kinds: the handlers are identical but
// for that operand, and the named constructors below (Dup0 ... Dup15)
// still give every mnemonic spec.md §4.5 names its own entry point.
type Kind uint8

// Operation kinds, grouped by family in the same order as spec.md §4.5.
const (
	// System.
	OpNoop Kind = iota
	OpAssert
	OpFmpAdd
	OpFmpUpdate
	OpSDepth
	OpCaller
	OpClk
	OpEmit

	// Control flow, declared but never dispatched (see control_flow.go).
	OpJoin
	OpSplit
	OpLoop
	OpCall
	OpSysCall
	OpDyn
	OpDyncall
	OpSpan
	OpRepeat
	OpRespan
	OpEnd
	OpHalt

	// Field arithmetic.
	OpAdd
	OpNeg
	OpMul
	OpInv
	OpIncr
	OpAnd
	OpOr
	OpNot
	OpEq
	OpEqz
	OpExpacc

	// Quadratic extension.
	OpExt2Mul

	// u32 arithmetic.
	OpU32split
	OpU32add
	OpU32add3
	OpU32sub
	OpU32mul
	OpU32madd
	OpU32div
	OpU32and
	OpU32xor
	OpU32assert2

	// Stack manipulation.
	OpPad
	OpDrop
	OpDup
	OpSwap
	OpSwapW
	OpSwapW2
	OpSwapW3
	OpSwapDW
	OpMovUp
	OpMovDn
	OpCSwap
	OpCSwapW

	// I/O.
	OpPush
	OpAdvPop
	OpAdvPopW
	OpMLoad
	OpMStore
	OpMLoadW
	OpMStoreW
	OpMStream
	OpPipe

	// Cryptographic.
	OpHPerm
	OpMpVerify
	OpMrUpdate
	OpFriE2F4
	OpHornerBase
	OpHornerExt
)

// Operation is a single dispatchable instruction. Only the fields relevant
// to Kind are meaningful; the named constructors below populate exactly
// those.
type Operation struct {
	Kind  Kind
	Code  uint32      // Assert, U32div, U32assert2, MpVerify
	Event uint32      // Emit
	Value felt.Element // Push
	N     uint         // Dup, MovUp, MovDn
}

func op(k Kind) Operation { return Operation{Kind: k} }

// System family.
func Noop() Operation             { return op(OpNoop) }
func Assert(code uint32) Operation { return Operation{Kind: OpAssert, Code: code} }
func FmpAdd() Operation            { return op(OpFmpAdd) }
func FmpUpdate() Operation         { return op(OpFmpUpdate) }
func SDepth() Operation            { return op(OpSDepth) }
func Caller() Operation            { return op(OpCaller) }
func Clk() Operation               { return op(OpClk) }
func Emit(id uint32) Operation     { return Operation{Kind: OpEmit, Event: id} }

// Field arithmetic family.
func Add() Operation    { return op(OpAdd) }
func Neg() Operation    { return op(OpNeg) }
func Mul() Operation    { return op(OpMul) }
func Inv() Operation    { return op(OpInv) }
func Incr() Operation   { return op(OpIncr) }
func And() Operation    { return op(OpAnd) }
func Or() Operation     { return op(OpOr) }
func Not() Operation    { return op(OpNot) }
func Eq() Operation     { return op(OpEq) }
func Eqz() Operation    { return op(OpEqz) }
func Expacc() Operation { return op(OpExpacc) }

// Quadratic extension family.
func Ext2Mul() Operation { return op(OpExt2Mul) }

// u32 arithmetic family.
func U32split() Operation          { return op(OpU32split) }
func U32add() Operation            { return op(OpU32add) }
func U32add3() Operation           { return op(OpU32add3) }
func U32sub() Operation            { return op(OpU32sub) }
func U32mul() Operation            { return op(OpU32mul) }
func U32madd() Operation           { return op(OpU32madd) }
func U32div(code uint32) Operation { return Operation{Kind: OpU32div, Code: code} }
func U32and() Operation            { return op(OpU32and) }
func U32xor() Operation            { return op(OpU32xor) }
func U32assert2(code uint32) Operation { return Operation{Kind: OpU32assert2, Code: code} }

// Stack manipulation family.
func Pad() Operation  { return op(OpPad) }
func Drop() Operation { return op(OpDrop) }
func Swap() Operation { return op(OpSwap) }
func SwapW() Operation  { return op(OpSwapW) }
func SwapW2() Operation { return op(OpSwapW2) }
func SwapW3() Operation { return op(OpSwapW3) }
func SwapDW() Operation { return op(OpSwapDW) }
func CSwap() Operation  { return op(OpCSwap) }
func CSwapW() Operation { return op(OpCSwapW) }

func dupN(n uint) Operation   { return Operation{Kind: OpDup, N: n} }
func Dup0() Operation  { return dupN(0) }
func Dup1() Operation  { return dupN(1) }
func Dup2() Operation  { return dupN(2) }
func Dup3() Operation  { return dupN(3) }
func Dup4() Operation  { return dupN(4) }
func Dup5() Operation  { return dupN(5) }
func Dup6() Operation  { return dupN(6) }
func Dup7() Operation  { return dupN(7) }
func Dup9() Operation  { return dupN(9) }
func Dup11() Operation { return dupN(11) }
func Dup13() Operation { return dupN(13) }
func Dup15() Operation { return dupN(15) }

func movUpN(n uint) Operation { return Operation{Kind: OpMovUp, N: n} }
func MovUp2() Operation { return movUpN(2) }
func MovUp3() Operation { return movUpN(3) }
func MovUp4() Operation { return movUpN(4) }
func MovUp5() Operation { return movUpN(5) }
func MovUp6() Operation { return movUpN(6) }
func MovUp7() Operation { return movUpN(7) }
func MovUp8() Operation { return movUpN(8) }

func movDnN(n uint) Operation { return Operation{Kind: OpMovDn, N: n} }
func MovDn2() Operation { return movDnN(2) }
func MovDn3() Operation { return movDnN(3) }
func MovDn4() Operation { return movDnN(4) }
func MovDn5() Operation { return movDnN(5) }
func MovDn6() Operation { return movDnN(6) }
func MovDn7() Operation { return movDnN(7) }
func MovDn8() Operation { return movDnN(8) }

// I/O family.
func Push(v felt.Element) Operation { return Operation{Kind: OpPush, Value: v} }
func AdvPop() Operation              { return op(OpAdvPop) }
func AdvPopW() Operation             { return op(OpAdvPopW) }
func MLoad() Operation               { return op(OpMLoad) }
func MStore() Operation              { return op(OpMStore) }
func MLoadW() Operation              { return op(OpMLoadW) }
func MStoreW() Operation             { return op(OpMStoreW) }
func MStream() Operation             { return op(OpMStream) }
func Pipe() Operation                { return op(OpPipe) }

// Cryptographic family.
func HPerm() Operation               { return op(OpHPerm) }
func MpVerify(code uint32) Operation { return Operation{Kind: OpMpVerify, Code: code} }
func MrUpdate() Operation            { return op(OpMrUpdate) }
func FriE2F4() Operation             { return op(OpFriE2F4) }
func HornerBase() Operation          { return op(OpHornerBase) }
func HornerExt() Operation           { return op(OpHornerExt) }

// Control flow family, declared but never dispatched; see
// control_flow.go for Execute's handling of them.
func Join() Operation    { return op(OpJoin) }
func Split() Operation   { return op(OpSplit) }
func Loop() Operation    { return op(OpLoop) }
func Call() Operation    { return op(OpCall) }
func SysCall() Operation { return op(OpSysCall) }
func Dyn() Operation     { return op(OpDyn) }
func Dyncall() Operation { return op(OpDyncall) }
func Span() Operation    { return op(OpSpan) }
func Repeat() Operation  { return op(OpRepeat) }
func Respan() Operation  { return op(OpRespan) }
func End() Operation     { return op(OpEnd) }
func Halt() Operation    { return op(OpHalt) }
