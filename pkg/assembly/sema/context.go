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
	"fmt"

	"github.com/stackzkvm/corevm/pkg/assembly/ast"
	"github.com/stackzkvm/corevm/pkg/felt"
	"github.com/stackzkvm/corevm/pkg/util/source"
)

// Context (C1) accumulates diagnostics across a single module's analysis and
// holds the constant environment, using a recoverable-error accumulation
// pattern gated by a fatal short-circuit: most diagnostics are recorded
// and analysis continues, but a handful of conditions (chiefly: an
// invalid constant definition) are fatal and abort analysis immediately
// via Gate.
type Context struct {
	source           *source.SourceFile
	warningsAsErrors bool

	diagnostics []*Diagnostic
	errorCount  int

	constants map[string]felt.Element

	procedureNames map[string]bool
}

// NewContext constructs an empty analysis context for the given source file.
func NewContext(src *source.SourceFile, warningsAsErrors bool) *Context {
	return &Context{
		source:           src,
		warningsAsErrors: warningsAsErrors,
		constants:        make(map[string]felt.Element),
		procedureNames:   make(map[string]bool),
	}
}

// SourceFile returns the source file this context is analyzing.
func (c *Context) SourceFile() *source.SourceFile {
	return c.source
}

// report records a diagnostic, promoting warnings to errors when
// warningsAsErrors is set.
func (c *Context) report(kind Kind, severity Severity, span source.Span, msg string) *Diagnostic {
	if severity == SeverityWarning && c.warningsAsErrors {
		severity = SeverityError
	}

	d := &Diagnostic{Kind: kind, Severity: severity, Span: span, Message: msg}
	c.diagnostics = append(c.diagnostics, d)

	if severity == SeverityError {
		c.errorCount++
	}

	return d
}

// Error records an error-severity diagnostic.
func (c *Context) Error(kind Kind, span source.Span, format string, args ...any) *Diagnostic {
	return c.report(kind, SeverityError, span, fmt.Sprintf(format, args...))
}

// Warn records a warning-severity diagnostic (promoted to an error if the
// context was constructed with warningsAsErrors).
func (c *Context) Warn(kind Kind, span source.Span, format string, args ...any) *Diagnostic {
	return c.report(kind, SeverityWarning, span, fmt.Sprintf(format, args...))
}

// HasFailed reports whether at least one error-severity diagnostic has been
// recorded.
func (c *Context) HasFailed() bool {
	return c.errorCount > 0
}

// Gate returns a *Failed wrapping every diagnostic recorded so far if
// HasFailed, or nil otherwise.  Callers use it the way the original
// implementation uses the `?` operator after a fallible step: propagate
// immediately on fatal failure, continue otherwise.
func (c *Context) Gate() error {
	if !c.HasFailed() {
		return nil
	}

	return &Failed{Diagnostics: append([]*Diagnostic(nil), c.diagnostics...)}
}

// Diagnostics returns every diagnostic recorded so far, in emission order.
func (c *Context) Diagnostics() []*Diagnostic {
	return append([]*Diagnostic(nil), c.diagnostics...)
}

// RegisterProcedureName records that name has been bound within the module
// being analyzed, ahead of body validation.  VerifyInvokeTargets consults
// this set to resolve unqualified callees against locally-defined
// procedures.
func (c *Context) RegisterProcedureName(name string) {
	c.procedureNames[name] = true
}

// IsLocalProcedure reports whether name was previously registered via
// RegisterProcedureName.
func (c *Context) IsLocalProcedure(name string) bool {
	return c.procedureNames[name]
}

// Constant looks up a previously defined constant's value by name.
func (c *Context) Constant(name string) (felt.Element, bool) {
	v, ok := c.constants[name]
	return v, ok
}

// DefineConstant evaluates and records a constant definition.  Both a
// duplicate name and an unresolved reference are fatal: the diagnostic is
// recorded and Gate's resulting error is returned immediately, matching the
// original implementation's `analyzer.define_constant(...)?` short-circuit.
func (c *Context) DefineConstant(con ast.Constant) error {
	if _, exists := c.constants[con.Name]; exists {
		c.Error(KindConstantRedefinition, con.Span, "constant %q is already defined", con.Name)
		return c.Gate()
	}

	val, err := ast.Eval(con.Expr, c.constants)
	if err != nil {
		var unresolved *ast.ErrUnresolvedConstant
		if errors.As(err, &unresolved) {
			c.Error(KindUnresolvedConstant, unresolved.Span, "%s", unresolved.Error())
		} else {
			c.Error(KindUnresolvedConstant, con.Span, "%s", err.Error())
		}

		return c.Gate()
	}

	c.constants[con.Name] = val

	return nil
}
