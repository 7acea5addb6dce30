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
package main

import (
	"fmt"

	"github.com/stackzkvm/corevm/pkg/assembly/ast"
	"github.com/stackzkvm/corevm/pkg/felt"
	"github.com/stackzkvm/corevm/pkg/util/source"
	"github.com/stackzkvm/corevm/pkg/vm/host"
	"github.com/stackzkvm/corevm/pkg/vm/ops"
)

// assembleScenario is a named, built-in form stream fed to sema.Analyze.
// The source-text tokenizer/parser that would normally produce a form
// stream is out of scope for this module (spec.md §1); these scenarios
// stand in for it so the CLI has something to assemble.
type assembleScenario struct {
	name             string
	kind             ast.ModuleKind
	path             ast.LibraryPath
	forms            []ast.Form
	warningsAsErrors bool
}

func sp(n int) source.Span { return source.NewSpan(n, n+1) }

var assembleScenarios = []assembleScenario{
	{
		// spec.md §8 scenario 1: a Kernel with a public procedure
		// containing add. Its visibility is rewritten to Syscall by C3.
		name: "kernel-syscall",
		kind: ast.ModuleKernel,
		path: ast.ParseLibraryPath("miden::kernels::tx"),
		forms: []ast.Form{
			ast.NewProcedureForm(ast.NewProcedureExport(&ast.Procedure{
				Name:       "foo",
				Visibility: ast.VisibilityPublic,
				Body: []*ast.Instruction{
					ast.NewOp(sp(1), "add"),
				},
				Span: sp(0),
			})),
		},
	},
	{
		// spec.md §8 scenario 2: a Library importing std::math::u64 and
		// defining an alias re-export of one of its procedures.
		name: "library-alias",
		kind: ast.ModuleLibrary,
		path: ast.ParseLibraryPath("std::wrappers"),
		forms: []ast.Form{
			ast.NewImportForm(&ast.Import{
				LocalName: "u64",
				Path:      ast.ParseLibraryPath("std::math::u64"),
				Span:      sp(0),
			}),
			ast.NewProcedureForm(ast.NewAliasExport(&ast.Alias{
				LocalName: "mod64",
				Target: ast.AliasTarget{
					Module: ast.ParseLibraryPath("u64"),
					Name:   "wrapping_add",
				},
				Span: sp(1),
			})),
		},
	},
	{
		// spec.md §8 scenario 3: an Executable lacking begin.
		name:  "executable-missing-entrypoint",
		kind:  ast.ModuleExecutable,
		path:  ast.ParseLibraryPath("examples::empty"),
		forms: nil,
	},
	{
		// spec.md §8 scenario 6: two imports sharing the same local_name.
		// Analysis reports ImportConflict for the second and continues,
		// still resolving bodies (including a deliberately unresolved
		// callee, reported as MissingImport).
		name: "duplicate-import",
		kind: ast.ModuleLibrary,
		path: ast.ParseLibraryPath("examples::conflict"),
		forms: []ast.Form{
			ast.NewImportForm(&ast.Import{
				LocalName: "u64",
				Path:      ast.ParseLibraryPath("std::math::u64"),
				Span:      sp(0),
			}),
			ast.NewImportForm(&ast.Import{
				LocalName: "u64",
				Path:      ast.ParseLibraryPath("std::math::u64v2"),
				Span:      sp(1),
			}),
			ast.NewProcedureForm(ast.NewProcedureExport(&ast.Procedure{
				Name:       "bad",
				Visibility: ast.VisibilityPrivate,
				Body: []*ast.Instruction{
					ast.NewInvoke(sp(2), ast.InvokeExec, ast.Callee{
						HasModule: true,
						Module:    ast.ParseLibraryPath("nope"),
						Name:      "whatever",
						Span:      sp(2),
					}),
				},
				Span: sp(1),
			})),
		},
	},
}

func findAssembleScenario(name string) (assembleScenario, error) {
	for _, s := range assembleScenarios {
		if s.name == name {
			return s, nil
		}
	}

	return assembleScenario{}, fmt.Errorf("unknown assemble scenario %q", name)
}

// executeScenario is a named, built-in operation sequence driven directly
// through the dispatcher. The structural decoder that would normally turn
// a linked program into this sequence is out of scope for this module.
type executeScenario struct {
	name string
	ops  []ops.Operation
	host host.Host
}

var executeScenarios = []executeScenario{
	{
		// spec.md §8 scenario 4: push.3 push.4 add assert.1, with the
		// stack primed so the assert's top-of-stack condition holds.
		name: "push-add-assert",
		ops: []ops.Operation{
			ops.Push(felt.FromUint64(3)),
			ops.Push(felt.FromUint64(4)),
			ops.Add(),
			ops.Push(felt.One()),
			ops.Assert(1),
		},
		host: host.NewMemHost(nil, nil),
	},
	{
		// spec.md §8 scenario 5: u32div with divisor 0 fails with
		// FailedAssertion(0x2A).
		name: "u32div-by-zero",
		ops: []ops.Operation{
			ops.Push(felt.Zero()),
			ops.Push(felt.FromUint64(7)),
			ops.U32div(0x2A),
		},
		host: host.NewMemHost(nil, nil),
	},
}

func findExecuteScenario(name string) (executeScenario, error) {
	for _, s := range executeScenarios {
		if s.name == name {
			return s, nil
		}
	}

	return executeScenario{}, fmt.Errorf("unknown execute scenario %q", name)
}
