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
package ast

import "github.com/stackzkvm/corevm/pkg/util/source"

// FormKind distinguishes the six shapes a top-level Form may take.
type FormKind uint8

// Form kinds.
const (
	FormModuleDoc FormKind = iota
	FormDoc
	FormConstant
	FormImport
	FormProcedure
	FormBegin
)

// Form is a single top-level item produced by the (external) parser and fed
// into the module assembler (C2) in source order.
type Form struct {
	Kind FormKind
	Span source.Span

	Doc      string         // FormModuleDoc, FormDoc
	Constant *Constant      // FormConstant
	Import   *Import        // FormImport
	Export   Export         // FormProcedure
	Body     []*Instruction // FormBegin
}

// NewModuleDocForm constructs a ModuleDoc form.
func NewModuleDocForm(span source.Span, doc string) Form {
	return Form{Kind: FormModuleDoc, Span: span, Doc: doc}
}

// NewDocForm constructs a Doc form.
func NewDocForm(span source.Span, doc string) Form {
	return Form{Kind: FormDoc, Span: span, Doc: doc}
}

// NewConstantForm constructs a Constant form.
func NewConstantForm(c *Constant) Form {
	return Form{Kind: FormConstant, Span: c.Span, Constant: c}
}

// NewImportForm constructs an Import form.
func NewImportForm(i *Import) Form {
	return Form{Kind: FormImport, Span: i.Span, Import: i}
}

// NewProcedureForm constructs a Procedure form.
func NewProcedureForm(e Export) Form {
	return Form{Kind: FormProcedure, Span: e.Span(), Export: e}
}

// NewBeginForm constructs a Begin form.
func NewBeginForm(span source.Span, body []*Instruction) Form {
	return Form{Kind: FormBegin, Span: span, Body: body}
}
