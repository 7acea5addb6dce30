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

import (
	"fmt"

	"github.com/stackzkvm/corevm/pkg/util/source"
)

// ModuleKind governs what forms a module may contain and its final
// visibility rewrites.
type ModuleKind uint8

// Module kinds.
const (
	ModuleLibrary ModuleKind = iota
	ModuleKernel
	ModuleExecutable
)

func (k ModuleKind) String() string {
	switch k {
	case ModuleLibrary:
		return "library"
	case ModuleKernel:
		return "kernel"
	case ModuleExecutable:
		return "executable"
	default:
		return "module?"
	}
}

// Visibility governs whether, and how, a procedure may be invoked from
// outside its defining module.
type Visibility uint8

// Visibilities.
const (
	VisibilityPrivate Visibility = iota
	VisibilityPublic
	// VisibilitySyscall is never syntactically writable; C3 assigns it to
	// every originally-Public procedure of a Kernel module.
	VisibilitySyscall
)

// IsExported reports whether procedures of this visibility are reachable
// from outside their defining module.
func (v Visibility) IsExported() bool {
	return v == VisibilityPublic || v == VisibilitySyscall
}

func (v Visibility) String() string {
	switch v {
	case VisibilityPrivate:
		return "private"
	case VisibilityPublic:
		return "public"
	case VisibilitySyscall:
		return "syscall"
	default:
		return "visibility?"
	}
}

// EntrypointName is the conventional name of an Executable module's single
// entry point.
const EntrypointName = "main"

// Import records a module brought into scope under a local name.
type Import struct {
	LocalName string
	Path      LibraryPath
	Span      source.Span
	// Uses is monotonically non-decreasing; an import with Uses == 0 after
	// C3 is reported as unused.
	Uses uint
}

// MarkUsed increments the use counter.
func (p *Import) MarkUsed() {
	p.Uses++
}

// IsUsed reports whether this import has been referenced at least once.
func (p *Import) IsUsed() bool {
	return p.Uses > 0
}

// AliasTarget identifies what a re-export alias points at.
type AliasTarget struct {
	Module LibraryPath
	Name   string
}

// Alias is a re-export: a local name bound to a procedure defined in
// another (possibly external) module.
type Alias struct {
	LocalName  string
	Target     AliasTarget
	IsAbsolute bool
	Docs       *string
	Span       source.Span
}

// Procedure is a named, locally-unique unit of code.
type Procedure struct {
	Name       string
	Visibility Visibility
	NumLocals  uint32
	Body       []*Instruction
	Docs       *string
	SourceFile *source.SourceFile
	Span       source.Span
}

// WithDocs attaches (or clears) a docstring.
func (p Procedure) WithDocs(docs *string) Procedure {
	p.Docs = docs
	return p
}

// WithSourceFile attaches the originating source file.
func (p Procedure) WithSourceFile(sf *source.SourceFile) Procedure {
	p.SourceFile = sf
	return p
}

// ExportKind distinguishes the two cases of the Export tagged union.
type ExportKind uint8

// Export kinds.
const (
	ExportIsProcedure ExportKind = iota
	ExportIsAlias
)

// Export is a tagged union over {Procedure, Alias}: the two things that may
// occupy a slot in Module.Procedures.
type Export struct {
	Kind  ExportKind
	Proc  *Procedure
	Alias *Alias
}

// NewProcedureExport wraps a Procedure as an Export.
func NewProcedureExport(p *Procedure) Export {
	return Export{Kind: ExportIsProcedure, Proc: p}
}

// NewAliasExport wraps an Alias as an Export.
func NewAliasExport(a *Alias) Export {
	return Export{Kind: ExportIsAlias, Alias: a}
}

// Name returns the locally-unique name of this export.
func (e Export) Name() string {
	if e.Kind == ExportIsProcedure {
		return e.Proc.Name
	}

	return e.Alias.LocalName
}

// Span returns the defining span of this export.
func (e Export) Span() source.Span {
	if e.Kind == ExportIsProcedure {
		return e.Proc.Span
	}

	return e.Alias.Span
}

// Visibility returns the export's visibility.  Aliases are always
// (indirectly) exported, so this reports VisibilityPublic for them.
func (e Export) Visibility() Visibility {
	if e.Kind == ExportIsProcedure {
		return e.Proc.Visibility
	}

	return VisibilityPublic
}

// IsMain reports whether this export is the conventional entry point.
func (e Export) IsMain() bool {
	return e.Kind == ExportIsProcedure && e.Proc.Name == EntrypointName
}

// ErrImportConflict reports a second import declared under a local name
// already in use.
type ErrImportConflict struct {
	LocalName string
	Span      source.Span
}

func (e *ErrImportConflict) Error() string {
	return fmt.Sprintf("import %q conflicts with an existing import", e.LocalName)
}

// ErrSymbolConflict reports a second procedure/alias declared under a name
// already in use within the module.
type ErrSymbolConflict struct {
	Name string
	Span source.Span
}

func (e *ErrSymbolConflict) Error() string {
	return fmt.Sprintf("symbol %q is already defined in this module", e.Name)
}

// Module is a named collection of procedures, imports, and constants
// produced from one source file.
type Module struct {
	Kind       ModuleKind
	Path       LibraryPath
	Docs       *string
	Imports    []*Import
	Procedures []Export
	SourceFile *source.SourceFile

	importIndex map[string]int
	nameIndex   map[string]bool
}

// NewModule constructs an empty module of the given kind and path.
func NewModule(kind ModuleKind, path LibraryPath) *Module {
	return &Module{
		Kind:        kind,
		Path:        path,
		importIndex: make(map[string]int),
		nameIndex:   make(map[string]bool),
	}
}

// WithSourceFile attaches the originating source file, returning the
// receiver for chaining.
func (m *Module) WithSourceFile(sf *source.SourceFile) *Module {
	m.SourceFile = sf
	return m
}

// SetDocs sets the module's top-level documentation.
func (m *Module) SetDocs(docs *string) {
	m.Docs = docs
}

// IsKernel reports whether this is a Kernel module.
func (m *Module) IsKernel() bool {
	return m.Kind == ModuleKernel
}

// IsExecutable reports whether this is an Executable module.
func (m *Module) IsExecutable() bool {
	return m.Kind == ModuleExecutable
}

// IsLibrary reports whether this is a Library module.
func (m *Module) IsLibrary() bool {
	return m.Kind == ModuleLibrary
}

// HasEntrypoint reports whether an entry-point procedure has been defined.
func (m *Module) HasEntrypoint() bool {
	for _, e := range m.Procedures {
		if e.IsMain() {
			return true
		}
	}

	return false
}

// DefineImport records a new import, enforcing local_name uniqueness.
func (m *Module) DefineImport(imp *Import) error {
	if _, ok := m.importIndex[imp.LocalName]; ok {
		return &ErrImportConflict{LocalName: imp.LocalName, Span: imp.Span}
	}

	m.importIndex[imp.LocalName] = len(m.Imports)
	m.Imports = append(m.Imports, imp)

	return nil
}

// DefineProcedure records a new procedure or alias export, enforcing
// module-local name uniqueness.
func (m *Module) DefineProcedure(export Export) error {
	name := export.Name()
	if m.nameIndex[name] {
		return &ErrSymbolConflict{Name: name, Span: export.Span()}
	}

	m.nameIndex[name] = true
	m.Procedures = append(m.Procedures, export)

	return nil
}

// ResolveImport looks up an import by local name.
func (m *Module) ResolveImport(localName string) (*Import, bool) {
	idx, ok := m.importIndex[localName]
	if !ok {
		return nil, false
	}

	return m.Imports[idx], true
}
