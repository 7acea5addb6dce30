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

// Package sema implements the module assembler (C2) and procedure passes
// (C3) of the toolchain: it consumes a form stream produced by the
// (external) parser and produces a validated, fully-resolved Module.
package sema

import (
	"fmt"

	"github.com/stackzkvm/corevm/pkg/util/source"
)

// Severity distinguishes a recoverable warning from an error.
type Severity uint8

// Severities.
const (
	SeverityWarning Severity = iota
	SeverityError
)

// Kind enumerates the closed taxonomy of semantic diagnostics (spec.md §7).
type Kind uint8

// Diagnostic kinds.
const (
	KindUnusedDocstring Kind = iota
	KindImportDocstring
	KindUnexpectedExport
	KindReexportFromKernel
	KindUnexpectedEntrypoint
	KindMissingEntrypoint
	KindImportConflict
	KindSymbolConflict
	KindMissingImport
	KindUnusedImport
	KindConstantRedefinition
	KindUnresolvedConstant
	KindKernelInvokeForbidden
)

func (k Kind) String() string {
	switch k {
	case KindUnusedDocstring:
		return "UnusedDocstring"
	case KindImportDocstring:
		return "ImportDocstring"
	case KindUnexpectedExport:
		return "UnexpectedExport"
	case KindReexportFromKernel:
		return "ReexportFromKernel"
	case KindUnexpectedEntrypoint:
		return "UnexpectedEntrypoint"
	case KindMissingEntrypoint:
		return "MissingEntrypoint"
	case KindImportConflict:
		return "ImportConflict"
	case KindSymbolConflict:
		return "SymbolConflict"
	case KindMissingImport:
		return "MissingImport"
	case KindUnusedImport:
		return "UnusedImport"
	case KindConstantRedefinition:
		return "ConstantRedefinition"
	case KindUnresolvedConstant:
		return "UnresolvedConstant"
	case KindKernelInvokeForbidden:
		return "KernelInvokeForbidden"
	default:
		return "UnknownDiagnostic"
	}
}

// Diagnostic is a single semantic diagnostic, carrying the span of the
// syntactic item that triggered it (spec.md §7: "Each carries a Span").
type Diagnostic struct {
	Kind     Kind
	Severity Severity
	Span     source.Span
	Message  string
}

// Error implements the error interface so a Diagnostic can be returned
// directly wherever a plain error is expected.
func (d *Diagnostic) Error() string {
	return fmt.Sprintf("%s: %s", d.Kind, d.Message)
}

// Failed is returned by Context.Gate (and, by extension, Analyze) once at
// least one error-severity Diagnostic has been recorded.  It carries the
// complete diagnostic list accumulated so far.
type Failed struct {
	Diagnostics []*Diagnostic
}

func (f *Failed) Error() string {
	return fmt.Sprintf("semantic analysis failed with %d diagnostic(s)", len(f.Diagnostics))
}
