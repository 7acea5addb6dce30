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
	"math/big"

	"github.com/stackzkvm/corevm/pkg/felt"
	"github.com/stackzkvm/corevm/pkg/vm/process"
	"github.com/stackzkvm/corevm/pkg/vm/verrors"
)

const u32Mod = uint64(1) << 32

func toU32(v felt.Element) (uint32, error) {
	b := v.BigInt()
	if !b.IsUint64() || b.Uint64() >= u32Mod {
		return 0, &verrors.NotU32Value{Value: v}
	}

	return uint32(b.Uint64()), nil
}

func splitU64(v uint64) (hi, lo felt.Element) {
	return felt.FromUint64(v >> 32), felt.FromUint64(v & (u32Mod - 1))
}

// execU32split splits an arbitrary field element into its low and high
// 32-bit halves, modulo 2^64. It does not require its input to itself be
// a canonical u32 (unlike every other operation in this family), since its
// purpose is precisely to produce two values that are.
func execU32split(p *process.Process) error {
	x := p.Stack.Pop()

	mask := big.NewInt(int64(u32Mod - 1))
	v := x.BigInt()
	lo := new(big.Int).And(v, mask)
	hi := new(big.Int).And(new(big.Int).Rsh(v, 32), mask)

	p.Stack.Push(felt.FromBigInt(hi))
	p.Stack.Push(felt.FromBigInt(lo))

	return nil
}

func popU32Pair(p *process.Process) (a, b uint32, err error) {
	bv, av := p.Stack.Pop(), p.Stack.Pop()

	a, err = toU32(av)
	if err != nil {
		return 0, 0, err
	}

	b, err = toU32(bv)
	if err != nil {
		return 0, 0, err
	}

	return a, b, nil
}

func execU32add(p *process.Process) error {
	a, b, err := popU32Pair(p)
	if err != nil {
		return err
	}

	hi, lo := splitU64(uint64(a) + uint64(b))
	p.Stack.Push(hi)
	p.Stack.Push(lo)

	return nil
}

func execU32add3(p *process.Process) error {
	c, err := toU32(p.Stack.Pop())
	if err != nil {
		return err
	}

	a, b, err := popU32Pair(p)
	if err != nil {
		return err
	}

	hi, lo := splitU64(uint64(a) + uint64(b) + uint64(c))
	p.Stack.Push(hi)
	p.Stack.Push(lo)

	return nil
}

func execU32sub(p *process.Process) error {
	a, b, err := popU32Pair(p)
	if err != nil {
		return err
	}

	var borrow uint32
	diff := int64(a) - int64(b)

	if diff < 0 {
		borrow = 1
		diff += int64(u32Mod)
	}

	p.Stack.Push(felt.FromUint64(uint64(borrow)))
	p.Stack.Push(felt.FromUint64(uint64(diff)))

	return nil
}

func execU32mul(p *process.Process) error {
	a, b, err := popU32Pair(p)
	if err != nil {
		return err
	}

	hi, lo := splitU64(uint64(a) * uint64(b))
	p.Stack.Push(hi)
	p.Stack.Push(lo)

	return nil
}

func execU32madd(p *process.Process) error {
	c, err := toU32(p.Stack.Pop())
	if err != nil {
		return err
	}

	a, b, err := popU32Pair(p)
	if err != nil {
		return err
	}

	hi, lo := splitU64(uint64(a)*uint64(b) + uint64(c))
	p.Stack.Push(hi)
	p.Stack.Push(lo)

	return nil
}

func execU32div(p *process.Process, code uint32) error {
	divisor, dividend, err := popU32Pair(p)
	if err != nil {
		return err
	}

	if divisor == 0 {
		return &verrors.FailedAssertion{Code: code}
	}

	p.Stack.Push(felt.FromUint64(uint64(dividend % divisor)))
	p.Stack.Push(felt.FromUint64(uint64(dividend / divisor)))

	return nil
}

func execU32and(p *process.Process) error {
	a, b, err := popU32Pair(p)
	if err != nil {
		return err
	}

	p.Stack.Push(felt.FromUint64(uint64(a & b)))

	return nil
}

func execU32xor(p *process.Process) error {
	a, b, err := popU32Pair(p)
	if err != nil {
		return err
	}

	p.Stack.Push(felt.FromUint64(uint64(a ^ b)))

	return nil
}

func execU32assert2(p *process.Process, code uint32) error {
	b, a := p.Stack.Pop(), p.Stack.Pop()

	if _, err := toU32(a); err != nil {
		return &verrors.FailedAssertion{Code: code}
	}

	if _, err := toU32(b); err != nil {
		return &verrors.FailedAssertion{Code: code}
	}

	p.Stack.Push(a)
	p.Stack.Push(b)

	return nil
}
