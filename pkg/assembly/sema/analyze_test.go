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
	"testing"

	"github.com/stackzkvm/corevm/pkg/assembly/ast"
	"github.com/stackzkvm/corevm/pkg/felt"
	"github.com/stackzkvm/corevm/pkg/util/source"
)

func sp(n int) source.Span { return source.NewSpan(n, n+1) }

func newSrc() *source.SourceFile { return source.NewSourceFile("test.masm", []byte{}) }

func proc(name string, vis ast.Visibility, body []*ast.Instruction) ast.Export {
	return ast.NewProcedureExport(&ast.Procedure{Name: name, Visibility: vis, Body: body, Span: sp(0)})
}

func hasKind(diags []*Diagnostic, k Kind) bool {
	for _, d := range diags {
		if d.Kind == k {
			return true
		}
	}

	return false
}

func TestAnalyze_KernelPublicBecomesSyscall(t *testing.T) {
	forms := []ast.Form{
		ast.NewProcedureForm(proc("foo", ast.VisibilityPublic, nil)),
	}

	module, _, err := Analyze(newSrc(), ast.ModuleKernel, ast.ParseLibraryPath("k"), sp(0), forms, false)
	if err != nil {
		t.Fatalf("unexpected failure: %v", err)
	}

	if got := module.Procedures[0].Proc.Visibility; got != ast.VisibilitySyscall {
		t.Errorf("expected kernel-exported procedure to become syscall, got %s", got)
	}
}

func TestAnalyze_KernelPrivateUnaffected(t *testing.T) {
	forms := []ast.Form{
		ast.NewProcedureForm(proc("foo", ast.VisibilityPrivate, nil)),
	}

	module, _, err := Analyze(newSrc(), ast.ModuleKernel, ast.ParseLibraryPath("k"), sp(0), forms, false)
	if err != nil {
		t.Fatalf("unexpected failure: %v", err)
	}

	if got := module.Procedures[0].Proc.Visibility; got != ast.VisibilityPrivate {
		t.Errorf("expected private procedure to remain private, got %s", got)
	}
}

func TestAnalyze_KernelReexportRejected(t *testing.T) {
	forms := []ast.Form{
		ast.NewImportForm(&ast.Import{LocalName: "u64", Path: ast.ParseLibraryPath("std::math::u64"), Span: sp(0)}),
		ast.NewProcedureForm(ast.NewAliasExport(&ast.Alias{
			LocalName: "fwd",
			Target:    ast.AliasTarget{Module: ast.ParseLibraryPath("u64"), Name: "add"},
			Span:      sp(1),
		})),
	}

	_, diags, err := Analyze(newSrc(), ast.ModuleKernel, ast.ParseLibraryPath("k"), sp(0), forms, false)
	if err == nil {
		t.Fatal("expected failure for a kernel re-export")
	}

	if !hasKind(diags, KindReexportFromKernel) {
		t.Errorf("expected ReexportFromKernel diagnostic, got %v", diags)
	}
}

func TestAnalyze_KernelInvokeForbidden(t *testing.T) {
	forms := []ast.Form{
		ast.NewProcedureForm(proc("foo", ast.VisibilityPrivate, []*ast.Instruction{
			ast.NewInvoke(sp(1), ast.InvokeCall, ast.Callee{Name: "foo"}),
		})),
	}

	_, diags, err := Analyze(newSrc(), ast.ModuleKernel, ast.ParseLibraryPath("k"), sp(0), forms, false)
	if err == nil {
		t.Fatal("expected failure for a call from within a kernel")
	}

	if !hasKind(diags, KindKernelInvokeForbidden) {
		t.Errorf("expected KernelInvokeForbidden diagnostic, got %v", diags)
	}
}

func TestAnalyze_ExecutableRequiresEntrypoint(t *testing.T) {
	_, diags, err := Analyze(newSrc(), ast.ModuleExecutable, ast.ParseLibraryPath("e"), sp(0), nil, false)
	if err == nil {
		t.Fatal("expected failure for an executable with no entrypoint")
	}

	if !hasKind(diags, KindMissingEntrypoint) {
		t.Errorf("expected MissingEntrypoint diagnostic, got %v", diags)
	}
}

func TestAnalyze_ExecutableWithEntrypointSucceeds(t *testing.T) {
	forms := []ast.Form{
		ast.NewBeginForm(sp(0), []*ast.Instruction{ast.NewOp(sp(1), "add")}),
	}

	module, _, err := Analyze(newSrc(), ast.ModuleExecutable, ast.ParseLibraryPath("e"), sp(0), forms, false)
	if err != nil {
		t.Fatalf("unexpected failure: %v", err)
	}

	if !module.HasEntrypoint() {
		t.Error("expected module to report an entrypoint")
	}
}

func TestAnalyze_BeginOutsideExecutableIsUnexpectedEntrypoint(t *testing.T) {
	forms := []ast.Form{
		ast.NewBeginForm(sp(0), nil),
	}

	_, diags, err := Analyze(newSrc(), ast.ModuleLibrary, ast.ParseLibraryPath("l"), sp(0), forms, false)
	if err == nil {
		t.Fatal("expected failure for a top-level begin outside an executable")
	}

	if !hasKind(diags, KindUnexpectedEntrypoint) {
		t.Errorf("expected UnexpectedEntrypoint diagnostic, got %v", diags)
	}
}

func TestAnalyze_MainOutsideExecutableIsUnexpectedEntrypoint(t *testing.T) {
	forms := []ast.Form{
		ast.NewProcedureForm(proc(ast.EntrypointName, ast.VisibilityPrivate, nil)),
	}

	_, diags, err := Analyze(newSrc(), ast.ModuleLibrary, ast.ParseLibraryPath("l"), sp(0), forms, false)
	if err == nil {
		t.Fatal("expected failure for a main procedure outside an executable")
	}

	if !hasKind(diags, KindUnexpectedEntrypoint) {
		t.Errorf("expected UnexpectedEntrypoint diagnostic, got %v", diags)
	}
}

func TestAnalyze_ExecutableMayOnlyExportMain(t *testing.T) {
	forms := []ast.Form{
		ast.NewBeginForm(sp(0), nil),
		ast.NewProcedureForm(proc("helper", ast.VisibilityPublic, nil)),
	}

	_, diags, err := Analyze(newSrc(), ast.ModuleExecutable, ast.ParseLibraryPath("e"), sp(0), forms, false)
	if err == nil {
		t.Fatal("expected failure for an executable exporting a non-entrypoint procedure")
	}

	if !hasKind(diags, KindUnexpectedExport) {
		t.Errorf("expected UnexpectedExport diagnostic, got %v", diags)
	}
}

func TestAnalyze_ExecutablePrivateHelperAllowed(t *testing.T) {
	forms := []ast.Form{
		ast.NewBeginForm(sp(0), nil),
		ast.NewProcedureForm(proc("helper", ast.VisibilityPrivate, nil)),
	}

	_, _, err := Analyze(newSrc(), ast.ModuleExecutable, ast.ParseLibraryPath("e"), sp(0), forms, false)
	if err != nil {
		t.Fatalf("unexpected failure: %v", err)
	}
}

func TestAnalyze_ExecutableMayNotReexportAlias(t *testing.T) {
	forms := []ast.Form{
		ast.NewBeginForm(sp(0), nil),
		ast.NewProcedureForm(ast.NewAliasExport(&ast.Alias{
			LocalName: "helper",
			Target:    ast.AliasTarget{Module: ast.ParseLibraryPath("std::math::u64"), Name: "wrapping_add"},
			Span:      sp(1),
		})),
	}

	_, diags, err := Analyze(newSrc(), ast.ModuleExecutable, ast.ParseLibraryPath("e"), sp(0), forms, false)
	if err == nil {
		t.Fatal("expected failure for an executable re-exporting an alias")
	}

	if !hasKind(diags, KindUnexpectedExport) {
		t.Errorf("expected UnexpectedExport diagnostic, got %v", diags)
	}
}

func TestAnalyze_DuplicateImportConflict(t *testing.T) {
	forms := []ast.Form{
		ast.NewImportForm(&ast.Import{LocalName: "u64", Path: ast.ParseLibraryPath("std::math::u64"), Span: sp(0)}),
		ast.NewImportForm(&ast.Import{LocalName: "u64", Path: ast.ParseLibraryPath("std::math::u64v2"), Span: sp(1)}),
		ast.NewProcedureForm(proc("bad", ast.VisibilityPrivate, []*ast.Instruction{
			ast.NewInvoke(sp(2), ast.InvokeExec, ast.Callee{HasModule: true, Module: ast.ParseLibraryPath("nope"), Name: "whatever"}),
		})),
	}

	_, diags, err := Analyze(newSrc(), ast.ModuleLibrary, ast.ParseLibraryPath("l"), sp(0), forms, false)
	if err == nil {
		t.Fatal("expected overall failure")
	}

	if !hasKind(diags, KindImportConflict) {
		t.Errorf("expected ImportConflict diagnostic, got %v", diags)
	}

	if !hasKind(diags, KindMissingImport) {
		t.Errorf("expected MissingImport diagnostic to still be reported, got %v", diags)
	}
}

func TestAnalyze_DuplicateSymbolConflict(t *testing.T) {
	forms := []ast.Form{
		ast.NewProcedureForm(proc("dup", ast.VisibilityPrivate, nil)),
		ast.NewProcedureForm(proc("dup", ast.VisibilityPrivate, nil)),
	}

	_, diags, err := Analyze(newSrc(), ast.ModuleLibrary, ast.ParseLibraryPath("l"), sp(0), forms, false)
	if err == nil {
		t.Fatal("expected failure for a duplicate procedure name")
	}

	if !hasKind(diags, KindSymbolConflict) {
		t.Errorf("expected SymbolConflict diagnostic, got %v", diags)
	}
}

func TestAnalyze_UnusedImportWarning(t *testing.T) {
	forms := []ast.Form{
		ast.NewImportForm(&ast.Import{LocalName: "u64", Path: ast.ParseLibraryPath("std::math::u64"), Span: sp(0)}),
	}

	_, diags, err := Analyze(newSrc(), ast.ModuleLibrary, ast.ParseLibraryPath("l"), sp(0), forms, false)
	if err != nil {
		t.Fatalf("an unused import alone should not fail analysis: %v", err)
	}

	if !hasKind(diags, KindUnusedImport) {
		t.Errorf("expected UnusedImport diagnostic, got %v", diags)
	}
}

func TestAnalyze_UnusedImportPromotedUnderWarningsAsErrors(t *testing.T) {
	forms := []ast.Form{
		ast.NewImportForm(&ast.Import{LocalName: "u64", Path: ast.ParseLibraryPath("std::math::u64"), Span: sp(0)}),
	}

	_, _, err := Analyze(newSrc(), ast.ModuleLibrary, ast.ParseLibraryPath("l"), sp(0), forms, true)
	if err == nil {
		t.Fatal("expected an unused import to be fatal under warningsAsErrors")
	}
}

func TestAnalyze_ImportResolvedAndUseCounted(t *testing.T) {
	forms := []ast.Form{
		ast.NewImportForm(&ast.Import{LocalName: "u64", Path: ast.ParseLibraryPath("std::math::u64"), Span: sp(0)}),
		ast.NewProcedureForm(proc("caller", ast.VisibilityPrivate, []*ast.Instruction{
			ast.NewInvoke(sp(1), ast.InvokeExec, ast.Callee{HasModule: true, Module: ast.ParseLibraryPath("u64"), Name: "wrapping_add"}),
		})),
	}

	module, diags, err := Analyze(newSrc(), ast.ModuleLibrary, ast.ParseLibraryPath("l"), sp(0), forms, false)
	if err != nil {
		t.Fatalf("unexpected failure: %v", err)
	}

	if hasKind(diags, KindUnusedImport) {
		t.Error("import was used, should not be reported unused")
	}

	imp, ok := module.ResolveImport("u64")
	if !ok || !imp.IsUsed() {
		t.Fatal("expected import to be marked used")
	}

	invoke := module.Procedures[0].Proc.Body[0]

	want := ast.ParseLibraryPath("std::math::u64")
	if !invoke.Target.Module.Equal(want) || !invoke.Target.IsAbsolute {
		t.Errorf("expected callee rewritten to %s (absolute), got %s (absolute=%v)", want, invoke.Target.Module, invoke.Target.IsAbsolute)
	}
}

func TestAnalyze_AliasTargetResolvedAgainstImport(t *testing.T) {
	forms := []ast.Form{
		ast.NewImportForm(&ast.Import{LocalName: "u64", Path: ast.ParseLibraryPath("std::math::u64"), Span: sp(0)}),
		ast.NewProcedureForm(ast.NewAliasExport(&ast.Alias{
			LocalName: "mod64",
			Target:    ast.AliasTarget{Module: ast.ParseLibraryPath("u64"), Name: "wrapping_add"},
			Span:      sp(1),
		})),
	}

	module, _, err := Analyze(newSrc(), ast.ModuleLibrary, ast.ParseLibraryPath("std::wrappers"), sp(0), forms, false)
	if err != nil {
		t.Fatalf("unexpected failure: %v", err)
	}

	want := ast.ParseLibraryPath("std::math::u64")
	target := module.Procedures[0].Alias.Target

	if !target.Module.Equal(want) || !module.Procedures[0].Alias.IsAbsolute {
		t.Errorf("expected alias target rewritten to %s (absolute), got %s", want, target.Module)
	}
}

func TestAnalyze_MissingImportOnUnresolvedCallee(t *testing.T) {
	forms := []ast.Form{
		ast.NewProcedureForm(proc("caller", ast.VisibilityPrivate, []*ast.Instruction{
			ast.NewInvoke(sp(1), ast.InvokeExec, ast.Callee{Name: "ghost"}),
		})),
	}

	_, diags, err := Analyze(newSrc(), ast.ModuleLibrary, ast.ParseLibraryPath("l"), sp(0), forms, false)
	if err == nil {
		t.Fatal("expected failure for an unqualified callee matching no local procedure")
	}

	if !hasKind(diags, KindMissingImport) {
		t.Errorf("expected MissingImport diagnostic, got %v", diags)
	}
}

func TestAnalyze_LocalUnqualifiedCalleeResolves(t *testing.T) {
	forms := []ast.Form{
		ast.NewProcedureForm(proc("helper", ast.VisibilityPrivate, nil)),
		ast.NewProcedureForm(proc("caller", ast.VisibilityPrivate, []*ast.Instruction{
			ast.NewInvoke(sp(1), ast.InvokeExec, ast.Callee{Name: "helper"}),
		})),
	}

	_, diags, err := Analyze(newSrc(), ast.ModuleLibrary, ast.ParseLibraryPath("l"), sp(0), forms, false)
	if err != nil {
		t.Fatalf("unexpected failure: %v, diags=%v", err, diags)
	}
}

func TestAnalyze_ConstEvalRewritesNamedImmediate(t *testing.T) {
	forms := []ast.Form{
		ast.NewConstantForm(&ast.Constant{Name: "CODE", Expr: ast.Lit(sp(0), felt.FromUint64(42)), Span: sp(0)}),
		ast.NewProcedureForm(proc("foo", ast.VisibilityPrivate, []*ast.Instruction{
			ast.NewOpImm(sp(1), "assert", &ast.Immediate{Kind: ast.ImmediateNamed, Name: "CODE", Span: sp(1)}),
		})),
	}

	module, _, err := Analyze(newSrc(), ast.ModuleLibrary, ast.ParseLibraryPath("l"), sp(0), forms, false)
	if err != nil {
		t.Fatalf("unexpected failure: %v", err)
	}

	imm := module.Procedures[0].Proc.Body[0].Immediate
	if imm.Kind != ast.ImmediateLiteral || !imm.Value.Equal(felt.FromUint64(42)) {
		t.Errorf("expected immediate rewritten to literal 42, got kind=%v value=%s", imm.Kind, imm.Value)
	}
}

func TestAnalyze_ConstEvalReferencingUndeclaredConstantIsUnresolved(t *testing.T) {
	forms := []ast.Form{
		ast.NewProcedureForm(proc("foo", ast.VisibilityPrivate, []*ast.Instruction{
			ast.NewOpImm(sp(1), "assert", &ast.Immediate{Kind: ast.ImmediateNamed, Name: "GHOST", Span: sp(1)}),
		})),
	}

	_, diags, err := Analyze(newSrc(), ast.ModuleLibrary, ast.ParseLibraryPath("l"), sp(0), forms, false)
	if err == nil {
		t.Fatal("expected failure referencing a never-declared constant")
	}

	if !hasKind(diags, KindUnresolvedConstant) {
		t.Errorf("expected UnresolvedConstant diagnostic, got %v", diags)
	}
}

func TestAnalyze_ConstEvalSeesConstantDeclaredLaterInFile(t *testing.T) {
	// runConstEval walks every procedure body only after the entire form
	// stream has been consumed, so a body may reference a constant
	// textually declared after it; only constant-to-constant references
	// are ordering-sensitive (enforced by Context.DefineConstant itself).
	forms := []ast.Form{
		ast.NewProcedureForm(proc("foo", ast.VisibilityPrivate, []*ast.Instruction{
			ast.NewOpImm(sp(1), "assert", &ast.Immediate{Kind: ast.ImmediateNamed, Name: "LATER", Span: sp(1)}),
		})),
		ast.NewConstantForm(&ast.Constant{Name: "LATER", Expr: ast.Lit(sp(2), felt.FromUint64(7)), Span: sp(2)}),
	}

	module, _, err := Analyze(newSrc(), ast.ModuleLibrary, ast.ParseLibraryPath("l"), sp(0), forms, false)
	if err != nil {
		t.Fatalf("unexpected failure: %v", err)
	}

	imm := module.Procedures[0].Proc.Body[0].Immediate
	if imm.Kind != ast.ImmediateLiteral || !imm.Value.Equal(felt.FromUint64(7)) {
		t.Errorf("expected immediate rewritten to literal 7, got kind=%v value=%s", imm.Kind, imm.Value)
	}
}

func TestAnalyze_ConstantReferencingLaterConstantIsUnresolved(t *testing.T) {
	forms := []ast.Form{
		ast.NewConstantForm(&ast.Constant{Name: "A", Expr: ast.Ref(sp(0), "B"), Span: sp(0)}),
		ast.NewConstantForm(&ast.Constant{Name: "B", Expr: ast.Lit(sp(1), felt.One()), Span: sp(1)}),
	}

	_, diags, err := Analyze(newSrc(), ast.ModuleLibrary, ast.ParseLibraryPath("l"), sp(0), forms, false)
	if err == nil {
		t.Fatal("expected failure for a constant referencing one declared later")
	}

	if !hasKind(diags, KindUnresolvedConstant) {
		t.Errorf("expected UnresolvedConstant diagnostic, got %v", diags)
	}
}

func TestAnalyze_ConstantRedefinitionIsFatal(t *testing.T) {
	forms := []ast.Form{
		ast.NewConstantForm(&ast.Constant{Name: "X", Expr: ast.Lit(sp(0), felt.One()), Span: sp(0)}),
		ast.NewConstantForm(&ast.Constant{Name: "X", Expr: ast.Lit(sp(1), felt.Zero()), Span: sp(1)}),
	}

	_, diags, err := Analyze(newSrc(), ast.ModuleLibrary, ast.ParseLibraryPath("l"), sp(0), forms, false)
	if err == nil {
		t.Fatal("expected failure for constant redefinition")
	}

	if !hasKind(diags, KindConstantRedefinition) {
		t.Errorf("expected ConstantRedefinition diagnostic, got %v", diags)
	}
}

func TestAnalyze_DanglingDocstringWarns(t *testing.T) {
	forms := []ast.Form{
		ast.NewDocForm(sp(0), "orphaned"),
	}

	_, diags, err := Analyze(newSrc(), ast.ModuleLibrary, ast.ParseLibraryPath("l"), sp(0), forms, false)
	if err != nil {
		t.Fatalf("a dangling docstring alone should not fail analysis: %v", err)
	}

	if !hasKind(diags, KindUnusedDocstring) {
		t.Errorf("expected UnusedDocstring diagnostic, got %v", diags)
	}
}

func TestAnalyze_DocstringAttachesToFollowingProcedure(t *testing.T) {
	forms := []ast.Form{
		ast.NewDocForm(sp(0), "does a thing"),
		ast.NewProcedureForm(proc("foo", ast.VisibilityPrivate, nil)),
	}

	module, diags, err := Analyze(newSrc(), ast.ModuleLibrary, ast.ParseLibraryPath("l"), sp(0), forms, false)
	if err != nil {
		t.Fatalf("unexpected failure: %v", err)
	}

	if hasKind(diags, KindUnusedDocstring) {
		t.Error("docstring was attached to a procedure, should not be reported unused")
	}

	docs := module.Procedures[0].Proc.Docs
	if docs == nil || *docs != "does a thing" {
		t.Errorf("expected docstring attached to foo, got %v", docs)
	}
}

func TestAnalyze_ImportDocstringDiscarded(t *testing.T) {
	forms := []ast.Form{
		ast.NewDocForm(sp(0), "orphaned before import"),
		ast.NewImportForm(&ast.Import{LocalName: "u64", Path: ast.ParseLibraryPath("std::math::u64"), Span: sp(1)}),
	}

	_, diags, err := Analyze(newSrc(), ast.ModuleLibrary, ast.ParseLibraryPath("l"), sp(0), forms, false)
	if err != nil {
		t.Fatalf("unexpected failure: %v", err)
	}

	if !hasKind(diags, KindImportDocstring) {
		t.Errorf("expected ImportDocstring diagnostic, got %v", diags)
	}
}
