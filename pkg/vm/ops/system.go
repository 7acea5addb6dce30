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
	"github.com/stackzkvm/corevm/pkg/vm/verrors"
)

func execNoop(p *process.Process) error {
	p.Stack.CopyState()
	return nil
}

func execAssert(p *process.Process, code uint32) error {
	if !p.Stack.Pop().IsOne() {
		return &verrors.FailedAssertion{Code: code}
	}

	return nil
}

func execFmpAdd(p *process.Process) error {
	delta := p.Stack.Pop()
	p.System.SetFmp(p.System.Fmp().Add(delta))

	return nil
}

func execFmpUpdate(p *process.Process) error {
	p.System.SetFmp(p.Stack.Pop())
	return nil
}

func execSDepth(p *process.Process) error {
	p.Stack.Push(felt.FromUint64(uint64(p.Stack.Depth())))
	return nil
}

func execCaller(p *process.Process) error {
	p.Stack.Push(p.System.Caller())
	return nil
}

func execClk(p *process.Process) error {
	p.Stack.Push(felt.FromUint64(p.System.Clock()))
	return nil
}

func execEmit(p *process.Process, id uint32, h host.Host) error {
	return h.OnEvent(id, p)
}
