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
	"github.com/stackzkvm/corevm/pkg/felt"
	"github.com/stackzkvm/corevm/pkg/vm/process"
	"github.com/stackzkvm/corevm/pkg/vm/verrors"
)

// notBinaryAssertionCode is the fixed assertion code reported when a
// boolean-input operation (And/Or/Not/CSwap/...) is given an operand that
// is neither 0 nor 1. These checks are internally implemented as
// assertions, so they are reported through FailedAssertion rather than
// widening the closed execution-error taxonomy (spec.md §7).
const notBinaryAssertionCode = 0

func requireBinary(v felt.Element) error {
	if !v.IsBool() {
		return &verrors.FailedAssertion{Code: notBinaryAssertionCode}
	}

	return nil
}

func execAdd(p *process.Process) error {
	b, a := p.Stack.Pop(), p.Stack.Pop()
	p.Stack.Push(a.Add(b))

	return nil
}

func execNeg(p *process.Process) error {
	a := p.Stack.Pop()
	p.Stack.Push(a.Neg())

	return nil
}

func execMul(p *process.Process) error {
	b, a := p.Stack.Pop(), p.Stack.Pop()
	p.Stack.Push(a.Mul(b))

	return nil
}

func execInv(p *process.Process) error {
	a := p.Stack.Pop()
	if a.IsZero() {
		return &verrors.DivisionByZero{}
	}

	p.Stack.Push(a.Inverse())

	return nil
}

func execIncr(p *process.Process) error {
	a := p.Stack.Pop()
	p.Stack.Push(a.Add(felt.One()))

	return nil
}

func execAnd(p *process.Process) error {
	b, a := p.Stack.Pop(), p.Stack.Pop()
	if err := requireBinary(a); err != nil {
		return err
	}

	if err := requireBinary(b); err != nil {
		return err
	}

	if a.IsOne() && b.IsOne() {
		p.Stack.Push(felt.One())
	} else {
		p.Stack.Push(felt.Zero())
	}

	return nil
}

func execOr(p *process.Process) error {
	b, a := p.Stack.Pop(), p.Stack.Pop()
	if err := requireBinary(a); err != nil {
		return err
	}

	if err := requireBinary(b); err != nil {
		return err
	}

	if a.IsOne() || b.IsOne() {
		p.Stack.Push(felt.One())
	} else {
		p.Stack.Push(felt.Zero())
	}

	return nil
}

func execNot(p *process.Process) error {
	a := p.Stack.Pop()
	if err := requireBinary(a); err != nil {
		return err
	}

	if a.IsZero() {
		p.Stack.Push(felt.One())
	} else {
		p.Stack.Push(felt.Zero())
	}

	return nil
}

func execEq(p *process.Process) error {
	b, a := p.Stack.Pop(), p.Stack.Pop()
	if a.Equal(b) {
		p.Stack.Push(felt.One())
	} else {
		p.Stack.Push(felt.Zero())
	}

	return nil
}

func execEqz(p *process.Process) error {
	a := p.Stack.Pop()
	if a.IsZero() {
		p.Stack.Push(felt.One())
	} else {
		p.Stack.Push(felt.Zero())
	}

	return nil
}

// execExpacc performs a single bit-by-bit exponent-accumulation step:
// given a stack of [bit, accumulator, base, ...], it squares base and
// conditionally (when bit is 1) folds the pre-squared base into the
// accumulator, leaving [accumulator', base^2, ...]. Repeating this once
// per bit of an exponent, least-significant first, computes
// base_0^exponent via square-and-multiply without a dedicated Pow
// operation.
func execExpacc(p *process.Process) error {
	bit := p.Stack.Pop()
	if err := requireBinary(bit); err != nil {
		return err
	}

	acc := p.Stack.Pop()
	base := p.Stack.Pop()

	if bit.IsOne() {
		acc = acc.Mul(base)
	}

	p.Stack.Push(base.Mul(base))
	p.Stack.Push(acc)

	return nil
}
