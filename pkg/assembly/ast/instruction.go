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
package ast

import (
	"github.com/stackzkvm/corevm/pkg/felt"
	"github.com/stackzkvm/corevm/pkg/util/source"
)

// NodeKind identifies what kind of thing an Instruction node represents.
type NodeKind uint8

const (
	// NodeOp is a primitive operation, optionally carrying an immediate
	// (e.g. "push.3", "add", "assert.7").
	NodeOp NodeKind = iota
	// NodeInvoke transfers control to another procedure: call, syscall or
	// exec.
	NodeInvoke
	// NodeBlock is a structured control-flow block: if/else, while, or
	// repeat.  Its children are never dispatched directly by the
	// execution engine (see spec.md §4.5); they are consumed by the
	// external structural decoder.
	NodeBlock
)

// InvokeKind distinguishes the ways a procedure may be invoked.
type InvokeKind uint8

// Invocation kinds.
const (
	InvokeExec InvokeKind = iota
	InvokeCall
	InvokeSysCall
)

// String renders the invocation kind as the corresponding mnemonic.
func (k InvokeKind) String() string {
	switch k {
	case InvokeExec:
		return "exec"
	case InvokeCall:
		return "call"
	case InvokeSysCall:
		return "syscall"
	default:
		return "invoke?"
	}
}

// BlockKind distinguishes the kinds of structured control-flow block.
type BlockKind uint8

// Block kinds.
const (
	BlockIf BlockKind = iota
	BlockWhile
	BlockRepeat
)

// ImmediateKind distinguishes a literal immediate from one that references a
// named constant (resolved by the ConstEval pass).
type ImmediateKind uint8

// Immediate kinds.
const (
	ImmediateNone ImmediateKind = iota
	ImmediateLiteral
	ImmediateNamed
)

// Immediate is the operand of a primitive operation such as push.N or
// assert.CODE.  Before ConstEval runs, a named immediate holds only a Name;
// afterwards it is rewritten in place to hold the resolved Value.
type Immediate struct {
	Kind  ImmediateKind
	Name  string
	Value felt.Element
	Span  source.Span
}

// Callee identifies the target of an invocation (alias re-exports use
// AliasTarget instead).  A
// callee with a non-empty Module prefix that is not Absolute refers to an
// import's local name, which C3 rewrites to the import's fully-qualified
// LibraryPath.
type Callee struct {
	HasModule  bool
	IsAbsolute bool
	Module     LibraryPath
	Name       string
	Span       source.Span
}

// Instruction is a single node of a procedure body.  It is a tagged union
// over NodeKind: only the fields relevant to Kind are meaningful.
type Instruction struct {
	Kind NodeKind
	Span source.Span

	// NodeOp
	Mnemonic  string
	Immediate *Immediate

	// NodeInvoke
	InvokeKind InvokeKind
	Target     Callee

	// NodeBlock
	BlockKind   BlockKind
	RepeatCount uint32
	Body        []*Instruction
	Else        []*Instruction
}

// NewOp constructs a primitive operation node with no immediate.
func NewOp(span source.Span, mnemonic string) *Instruction {
	return &Instruction{Kind: NodeOp, Span: span, Mnemonic: mnemonic}
}

// NewOpImm constructs a primitive operation node carrying an immediate.
func NewOpImm(span source.Span, mnemonic string, imm *Immediate) *Instruction {
	return &Instruction{Kind: NodeOp, Span: span, Mnemonic: mnemonic, Immediate: imm}
}

// NewInvoke constructs an invocation node.
func NewInvoke(span source.Span, kind InvokeKind, target Callee) *Instruction {
	return &Instruction{Kind: NodeInvoke, Span: span, InvokeKind: kind, Target: target}
}

// NewBlock constructs a structured control-flow block node.
func NewBlock(span source.Span, kind BlockKind, body []*Instruction) *Instruction {
	return &Instruction{Kind: NodeBlock, Span: span, BlockKind: kind, Body: body}
}

// Walk applies fn to this instruction and recursively to every nested
// instruction within control-flow blocks, in textual order.
func (n *Instruction) Walk(fn func(*Instruction)) {
	if n == nil {
		return
	}

	fn(n)

	if n.Kind == NodeBlock {
		for _, c := range n.Body {
			c.Walk(fn)
		}

		for _, c := range n.Else {
			c.Walk(fn)
		}
	}
}

// WalkBody applies Walk to every instruction in a procedure body, in order.
func WalkBody(body []*Instruction, fn func(*Instruction)) {
	for _, n := range body {
		n.Walk(fn)
	}
}
