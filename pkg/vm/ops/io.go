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
	"github.com/stackzkvm/corevm/pkg/vm/host"
	"github.com/stackzkvm/corevm/pkg/vm/process"
)

func execPush(p *process.Process, v felt.Element) error {
	p.Stack.Push(v)
	return nil
}

func execAdvPop(p *process.Process, h host.Host) error {
	v, err := h.PopAdvice()
	if err != nil {
		return err
	}

	p.Stack.Push(v)

	return nil
}

func execAdvPopW(p *process.Process, h host.Host) error {
	word, err := h.PopAdviceWord()
	if err != nil {
		return err
	}

	pushWord(p, word)

	return nil
}

// pushWord pushes a 4-element word so that, after the call, the stack
// top-down reads word[0], word[1], word[2], word[3].
func pushWord(p *process.Process, word [process.WordSize]felt.Element) {
	for i := process.WordSize - 1; i >= 0; i-- {
		p.Stack.Push(word[i])
	}
}

// popWord pops 4 elements and returns them as a word in the same order
// pushWord expects, i.e. the element that was on top becomes word[0].
func popWord(p *process.Process) [process.WordSize]felt.Element {
	var word [process.WordSize]felt.Element
	for i := 0; i < process.WordSize; i++ {
		word[i] = p.Stack.Pop()
	}

	return word
}

func execMLoad(p *process.Process) error {
	addr, err := process.Decode(p.Stack.Pop())
	if err != nil {
		return err
	}

	p.Stack.Push(p.Memory.Load(addr))

	return nil
}

func execMStore(p *process.Process) error {
	addr, err := process.Decode(p.Stack.Pop())
	if err != nil {
		return err
	}

	v := p.Stack.Pop()
	p.Memory.Store(addr, v)
	p.Stack.Push(v)

	return nil
}

func execMLoadW(p *process.Process) error {
	addr, err := process.Decode(p.Stack.Pop())
	if err != nil {
		return err
	}

	word, err := p.Memory.LoadWord(addr)
	if err != nil {
		return err
	}

	pushWord(p, word)

	return nil
}

func execMStoreW(p *process.Process) error {
	addr, err := process.Decode(p.Stack.Pop())
	if err != nil {
		return err
	}

	word := popWord(p)
	if err := p.Memory.StoreWord(addr, word); err != nil {
		return err
	}

	pushWord(p, word)

	return nil
}

// execMStream reads the two words at addr and addr+WordSize, pushes them
// (first the word at addr+WordSize, so the final top-down order is the
// word at addr followed by the word at addr+WordSize), and pushes the
// advanced address addr+2*WordSize on top for a chained sequence of reads.
func execMStream(p *process.Process) error {
	addr, err := process.Decode(p.Stack.Pop())
	if err != nil {
		return err
	}

	w0, err := p.Memory.LoadWord(addr)
	if err != nil {
		return err
	}

	w1, err := p.Memory.LoadWord(addr + process.WordSize)
	if err != nil {
		return err
	}

	pushWord(p, w1)
	pushWord(p, w0)
	p.Stack.Push(felt.FromUint64(uint64(addr) + 2*process.WordSize))

	return nil
}

// execPipe is execMStream's advice-driven counterpart: it pulls two words
// from the host's advice stack, writes them to memory at addr and
// addr+WordSize, pushes them the same way execMStream does, and pushes the
// advanced address.
func execPipe(p *process.Process, h host.Host) error {
	addr, err := process.Decode(p.Stack.Pop())
	if err != nil {
		return err
	}

	w0, err := h.PopAdviceWord()
	if err != nil {
		return err
	}

	w1, err := h.PopAdviceWord()
	if err != nil {
		return err
	}

	if err := p.Memory.StoreWord(addr, w0); err != nil {
		return err
	}

	if err := p.Memory.StoreWord(addr+process.WordSize, w1); err != nil {
		return err
	}

	pushWord(p, w1)
	pushWord(p, w0)
	p.Stack.Push(felt.FromUint64(uint64(addr) + 2*process.WordSize))

	return nil
}
