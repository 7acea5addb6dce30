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
package sema

import "github.com/stackzkvm/corevm/pkg/assembly/ast"

// runConstEval (C3) rewrites every named immediate within every procedure
// body to hold its resolved field-element value.  It runs after the form
// loop has fully populated the constant environment, so a procedure body
// may reference a constant defined anywhere in the same source file, even
// after the procedure; only constant-to-constant references must point
// at already-defined constants (enforced by Context.DefineConstant).
func runConstEval(ctx *Context, module *ast.Module) {
	for _, export := range module.Procedures {
		if export.Kind != ast.ExportIsProcedure {
			continue
		}

		ast.WalkBody(export.Proc.Body, func(n *ast.Instruction) {
			if n.Kind != ast.NodeOp || n.Immediate == nil {
				return
			}

			if n.Immediate.Kind != ast.ImmediateNamed {
				return
			}

			val, ok := ctx.Constant(n.Immediate.Name)
			if !ok {
				ctx.Error(KindUnresolvedConstant, n.Immediate.Span, "unresolved constant %q", n.Immediate.Name)
				return
			}

			n.Immediate.Kind = ast.ImmediateLiteral
			n.Immediate.Value = val
		})
	}
}

// rewriteKernelVisibility (C3) applies the Kernel finalization rule: every
// procedure exported Public from a Kernel module becomes callable only via
// syscall.  A Kernel's Private procedures are unaffected, and Kernel
// modules may not contain aliases at all (rejected earlier, during the
// form loop, as ReexportFromKernel).
func rewriteKernelVisibility(module *ast.Module) {
	if !module.IsKernel() {
		return
	}

	for _, export := range module.Procedures {
		if export.Kind == ast.ExportIsProcedure && export.Proc.Visibility == ast.VisibilityPublic {
			export.Proc.Visibility = ast.VisibilitySyscall
		}
	}
}

// runVerifyInvokeTargets (C3) is the pass responsible for:
//
//   - rejecting call/syscall instructions within a Kernel module's own
//     procedure bodies (a kernel may only be entered from the outside; it
//     may not re-enter itself or another kernel via call/syscall; the
//     check is made at the call site, inside the kernel's own bodies,
//     rather than at the callee);
//   - resolving every invocation's callee and every alias's target against
//     the module's imports, local procedure names, or an absolute path,
//     rewriting the import-local prefix to a fully-qualified LibraryPath
//     and incrementing the import's use count;
//   - reporting any callee that resolves against none of the above as
//     MissingImport;
//   - reporting, once every resolution has run, every import whose use
//     count remains zero as UnusedImport.
func runVerifyInvokeTargets(ctx *Context, module *ast.Module) {
	for _, export := range module.Procedures {
		switch export.Kind {
		case ast.ExportIsProcedure:
			ast.WalkBody(export.Proc.Body, func(n *ast.Instruction) {
				if n.Kind != ast.NodeInvoke {
					return
				}

				if module.IsKernel() && (n.InvokeKind == ast.InvokeCall || n.InvokeKind == ast.InvokeSysCall) {
					ctx.Error(KindKernelInvokeForbidden, n.Span, "kernel module may not %s", n.InvokeKind)
				}

				resolveCallee(ctx, module, &n.Target)
			})
		case ast.ExportIsAlias:
			resolveAliasTarget(ctx, module, export.Alias)
		}
	}

	for _, imp := range module.Imports {
		if !imp.IsUsed() {
			ctx.Warn(KindUnusedImport, imp.Span, "import %q is never used", imp.LocalName)
		}
	}
}

// resolveCallee resolves and, on success, rewrites an invocation target in
// place so it carries a fully-qualified, absolute module path.
func resolveCallee(ctx *Context, module *ast.Module, target *ast.Callee) {
	if !target.HasModule {
		if !ctx.IsLocalProcedure(target.Name) {
			ctx.Error(KindMissingImport, target.Span, "cannot resolve %q: no local procedure with that name", target.Name)
		}

		return
	}

	if target.IsAbsolute {
		return
	}

	resolved, ok := resolveImportPrefixed(module, target.Module)
	if !ok {
		ctx.Error(KindMissingImport, target.Span, "cannot resolve module prefix %q: no matching import", target.Module)
		return
	}

	target.Module = resolved
	target.IsAbsolute = true
}

// resolveAliasTarget resolves and, on success, rewrites an alias's target
// module in place, exactly as resolveCallee does for an invocation.
func resolveAliasTarget(ctx *Context, module *ast.Module, alias *ast.Alias) {
	if alias.IsAbsolute {
		return
	}

	resolved, ok := resolveImportPrefixed(module, alias.Target.Module)
	if !ok {
		ctx.Error(KindMissingImport, alias.Span, "cannot resolve module prefix %q: no matching import", alias.Target.Module)
		return
	}

	alias.Target.Module = resolved
	alias.IsAbsolute = true
}

// resolveImportPrefixed resolves a non-absolute module path's leading
// component against the module's imports: the leading component names an
// import's local alias, and any remaining components are appended to the
// import's own (fully-qualified) path.  On resolution, the matched import's
// use count is incremented.
func resolveImportPrefixed(module *ast.Module, prefixed ast.LibraryPath) (ast.LibraryPath, bool) {
	components := prefixed.Components()
	if len(components) == 0 {
		return prefixed, false
	}

	imp, ok := module.ResolveImport(components[0])
	if !ok {
		return prefixed, false
	}

	imp.MarkUsed()

	resolved := imp.Path
	for _, c := range components[1:] {
		resolved = resolved.Join(c)
	}

	return resolved, true
}
