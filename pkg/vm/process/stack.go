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

// Package process implements the process state (C4): the operand stack,
// linear memory, system registers, and trace-row decoder driven by the
// operation dispatcher.
package process

import (
	"github.com/stackzkvm/corevm/pkg/felt"
	"github.com/stackzkvm/corevm/pkg/vm/verrors"
)

// MinStackDepth is the enforced minimum depth of the operand stack.
// Positions at or beyond the current real depth, up to MinStackDepth, read
// as zero; an operation that would shrink the real depth below
// MinStackDepth once it has reached that floor fails with StackUnderflow.
const MinStackDepth = 16

// Stack is the operand stack of field elements.  Index 0 is the top of the
// stack; index i is the element i positions below the top.  The backing
// slice only ever holds as many elements as have actually been pushed;
// reads beyond it report the logically-zero padding down to
// MinStackDepth, matching spec.md §4.4.
type Stack struct {
	elems []felt.Element
}

// NewStack constructs an empty operand stack (logical depth MinStackDepth,
// every position reading as zero).
func NewStack() *Stack {
	return &Stack{}
}

// Depth returns the stack's real (unpadded) depth.
func (s *Stack) Depth() uint {
	return uint(len(s.elems))
}

// Peek returns the element i positions below the top, or zero if i is at
// or beyond the real depth.
func (s *Stack) Peek(i uint) felt.Element {
	if int(i) >= len(s.elems) {
		return felt.Zero()
	}

	return s.elems[i]
}

// Top returns the element at the top of the stack.
func (s *Stack) Top() felt.Element {
	return s.Peek(0)
}

// Push places a new element on top of the stack.
func (s *Stack) Push(v felt.Element) {
	s.elems = append(s.elems, felt.Zero())
	copy(s.elems[1:], s.elems)
	s.elems[0] = v
}

// Pop removes and returns the top element.  On an empty stack it returns
// the zero padding and leaves the stack unchanged.  Pop never fails and
// does not enforce the MinStackDepth floor; only Drop reports
// StackUnderflow.
func (s *Stack) Pop() felt.Element {
	top := s.Top()

	if len(s.elems) > 0 {
		copy(s.elems, s.elems[1:])
		s.elems = s.elems[:len(s.elems)-1]
	}

	return top
}

// Drop removes the top element, failing with StackUnderflow if the real
// depth is already at the MinStackDepth floor.
func (s *Stack) Drop() error {
	if uint(len(s.elems)) <= MinStackDepth {
		return &verrors.StackUnderflow{}
	}

	s.Pop()

	return nil
}

// Set overwrites the element i positions below the top, zero-extending the
// backing slice as needed.
func (s *Stack) Set(i uint, v felt.Element) {
	for uint(len(s.elems)) <= i {
		s.elems = append(s.elems, felt.Zero())
	}

	s.elems[i] = v
}

// Dup duplicates the element i positions below the top onto a new top.
func (s *Stack) Dup(i uint) {
	s.Push(s.Peek(i))
}

// Swap exchanges the top two elements.
func (s *Stack) Swap() {
	a, b := s.Peek(0), s.Peek(1)
	s.Set(0, b)
	s.Set(1, a)
}

// SwapBlock exchanges the top size elements with the size elements
// starting offset positions below the top.  SwapW is SwapBlock(4, 4);
// SwapW2 is SwapBlock(4, 8); SwapW3 is SwapBlock(4, 12); SwapDW is
// SwapBlock(8, 8).
func (s *Stack) SwapBlock(size, offset uint) {
	for i := uint(0); i < size; i++ {
		a, b := s.Peek(i), s.Peek(i+offset)
		s.Set(i, b)
		s.Set(i+offset, a)
	}
}

// MovUp moves the element n positions below the top to the top, shifting
// the elements above it down by one.
func (s *Stack) MovUp(n uint) {
	v := s.Peek(n)
	for i := n; i > 0; i-- {
		s.Set(i, s.Peek(i-1))
	}

	s.Set(0, v)
}

// MovDn moves the top element to position n, shifting the elements
// previously at positions 1..n up by one.
func (s *Stack) MovDn(n uint) {
	v := s.Peek(0)
	for i := uint(0); i < n; i++ {
		s.Set(i, s.Peek(i+1))
	}

	s.Set(n, v)
}

// CSwap conditionally swaps the top two elements according to a selector
// c (0 or 1) that the caller has already popped: c == 1 swaps them, c == 0
// leaves them in place. c must
// have already been validated as boolean by the caller (Cswap's handler).
func (s *Stack) CSwap(c felt.Element) {
	if c.IsOne() {
		s.Swap()
	}
}

// CSwapWords is the word-granularity analogue of CSwap, conditionally
// swapping the two 4-element windows immediately below the selector.
func (s *Stack) CSwapWords(c felt.Element) {
	if c.IsOne() {
		s.SwapBlock(4, 4)
	}
}

// CopyState is the Noop handler: it leaves every element of the stack
// unchanged.  It exists as a named operation so the dispatcher's
// trace-row bookkeeping has a uniform entry point even for the operation
// that changes no stack content.
func (s *Stack) CopyState() {}
