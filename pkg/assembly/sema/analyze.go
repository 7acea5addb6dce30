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

import (
	"errors"

	"github.com/stackzkvm/corevm/pkg/assembly/ast"
	"github.com/stackzkvm/corevm/pkg/util/source"
)

// Analyze (C2) consumes a form stream, in source order, and produces a
// validated Module.  It is the single entry point of the module assembler:
// every other function in this package exists to serve this one.
//
// On success, err is nil and module is fully resolved: named immediates
// have been replaced with concrete field elements, Kernel procedures have
// been rewritten to syscall visibility, import-local callee prefixes have
// been rewritten to fully-qualified paths, and every import's use count is
// final.
//
// On failure, err wraps the complete diagnostic list (as does a successful
// call's diagnostics return value); module may be partially built and
// should not be used by the caller.
func Analyze(
	src *source.SourceFile,
	kind ast.ModuleKind,
	path ast.LibraryPath,
	moduleSpan source.Span,
	forms []ast.Form,
	warningsAsErrors bool,
) (*ast.Module, []*Diagnostic, error) {
	ctx := NewContext(src, warningsAsErrors)
	module := ast.NewModule(kind, path).WithSourceFile(src)

	var pendingDoc *string
	var pendingDocSpan source.Span

	takeDoc := func() *string {
		d := pendingDoc
		pendingDoc = nil
		return d
	}

	for _, form := range forms {
		switch form.Kind {
		case ast.FormModuleDoc:
			doc := form.Doc
			module.SetDocs(&doc)

		case ast.FormDoc:
			if pendingDoc != nil {
				ctx.Warn(KindUnusedDocstring, pendingDocSpan, "docstring is not attached to any item")
			}

			doc := form.Doc
			pendingDoc = &doc
			pendingDocSpan = form.Span

		case ast.FormConstant:
			con := form.Constant.WithDocs(takeDoc())
			if err := ctx.DefineConstant(con); err != nil {
				return module, ctx.Diagnostics(), err
			}

		case ast.FormImport:
			if pendingDoc != nil {
				ctx.Warn(KindImportDocstring, pendingDocSpan, "docstring before an import is discarded")
				pendingDoc = nil
			}

			if err := module.DefineImport(form.Import); err != nil {
				var conflict *ast.ErrImportConflict
				if errors.As(err, &conflict) {
					ctx.Error(KindImportConflict, conflict.Span, "%s", conflict.Error())
				} else {
					// DefineImport only ever returns ErrImportConflict today,
					// but any other definition error is fatal rather than
					// recoverable: record it and gate immediately.
					ctx.Error(KindImportConflict, form.Import.Span, "%s", err.Error())
					return module, ctx.Diagnostics(), ctx.Gate()
				}
			}

		case ast.FormProcedure:
			docs := takeDoc()
			export := form.Export
			rejected := false

			switch export.Kind {
			case ast.ExportIsProcedure:
				export.Proc.Docs = docs

				if export.IsMain() && !module.IsExecutable() {
					ctx.Error(KindUnexpectedEntrypoint, export.Span(), "entrypoint procedure %q is only allowed in an executable module", ast.EntrypointName)
					rejected = true
				}

				if module.IsExecutable() && export.Proc.Visibility.IsExported() && !export.IsMain() {
					ctx.Error(KindUnexpectedExport, export.Span(), "executable module %q may not export %q: only %q may be exported", path, export.Name(), ast.EntrypointName)
					rejected = true
				}
			case ast.ExportIsAlias:
				export.Alias.Docs = docs

				switch {
				case module.IsKernel():
					ctx.Error(KindReexportFromKernel, export.Span(), "kernel module %q may not re-export %q", path, export.Name())
					rejected = true
				case module.IsExecutable():
					ctx.Error(KindUnexpectedExport, export.Span(), "executable module %q may not re-export %q", path, export.Name())
					rejected = true
				}
			}

			if rejected {
				continue
			}

			if err := module.DefineProcedure(export); err != nil {
				var conflict *ast.ErrSymbolConflict
				if errors.As(err, &conflict) {
					ctx.Error(KindSymbolConflict, conflict.Span, "%s", conflict.Error())
				}
			} else {
				ctx.RegisterProcedureName(export.Name())
			}

		case ast.FormBegin:
			docs := takeDoc()

			if !module.IsExecutable() {
				ctx.Error(KindUnexpectedEntrypoint, form.Span, "a top-level begin block is only allowed in an executable module")
				continue
			}

			proc := &ast.Procedure{
				Name:       ast.EntrypointName,
				Visibility: ast.VisibilityPublic,
				Body:       form.Body,
				Docs:       docs,
				SourceFile: src,
				Span:       form.Span,
			}
			export := ast.NewProcedureExport(proc)

			if err := module.DefineProcedure(export); err != nil {
				var conflict *ast.ErrSymbolConflict
				if errors.As(err, &conflict) {
					ctx.Error(KindSymbolConflict, conflict.Span, "%s", conflict.Error())
				}
			} else {
				ctx.RegisterProcedureName(ast.EntrypointName)
			}
		}
	}

	if pendingDoc != nil {
		ctx.Warn(KindUnusedDocstring, pendingDocSpan, "docstring is not attached to any item")
	}

	if module.IsExecutable() && !module.HasEntrypoint() {
		ctx.Error(KindMissingEntrypoint, moduleSpan, "executable module %q has no %q procedure", path, ast.EntrypointName)
	}

	runConstEval(ctx, module)
	rewriteKernelVisibility(module)
	runVerifyInvokeTargets(ctx, module)

	return module, ctx.Diagnostics(), ctx.Gate()
}
