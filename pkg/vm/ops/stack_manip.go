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
)

func execPad(p *process.Process) error {
	p.Stack.Push(felt.Zero())
	return nil
}

func execDrop(p *process.Process) error {
	return p.Stack.Drop()
}

func execDup(p *process.Process, n uint) error {
	p.Stack.Dup(n)
	return nil
}

func execSwap(p *process.Process) error {
	p.Stack.Swap()
	return nil
}

func execSwapW(p *process.Process) error {
	p.Stack.SwapBlock(4, 4)
	return nil
}

func execSwapW2(p *process.Process) error {
	p.Stack.SwapBlock(4, 8)
	return nil
}

func execSwapW3(p *process.Process) error {
	p.Stack.SwapBlock(4, 12)
	return nil
}

func execSwapDW(p *process.Process) error {
	p.Stack.SwapBlock(8, 8)
	return nil
}

func execMovUp(p *process.Process, n uint) error {
	p.Stack.MovUp(n)
	return nil
}

func execMovDn(p *process.Process, n uint) error {
	p.Stack.MovDn(n)
	return nil
}

func execCSwap(p *process.Process) error {
	c := p.Stack.Pop()
	if err := requireBinary(c); err != nil {
		return err
	}

	p.Stack.CSwap(c)

	return nil
}

func execCSwapW(p *process.Process) error {
	c := p.Stack.Pop()
	if err := requireBinary(c); err != nil {
		return err
	}

	p.Stack.CSwapWords(c)

	return nil
}
