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

	"github.com/stackzkvm/corevm/pkg/felt"
	"github.com/stackzkvm/corevm/pkg/util/source"
)

// ConstExprKind distinguishes the shapes a constant expression can take.
type ConstExprKind uint8

// Constant expression kinds.
const (
	ConstExprLiteral ConstExprKind = iota
	ConstExprRef
	ConstExprAdd
	ConstExprSub
	ConstExprMul
)

// ConstExpr is a constant-valued expression, as it may reference another,
// already-defined, constant by name.  It is evaluated eagerly (and once) by
// sema.Context.DefineConstant.
type ConstExpr struct {
	Kind    ConstExprKind
	Literal felt.Element
	RefName string
	Left    *ConstExpr
	Right   *ConstExpr
	Span    source.Span
}

// Lit constructs a literal constant expression.
func Lit(span source.Span, value felt.Element) *ConstExpr {
	return &ConstExpr{Kind: ConstExprLiteral, Literal: value, Span: span}
}

// Ref constructs a constant expression referencing another constant by name.
func Ref(span source.Span, name string) *ConstExpr {
	return &ConstExpr{Kind: ConstExprRef, RefName: name, Span: span}
}

// Bin constructs a binary constant expression.
func Bin(span source.Span, kind ConstExprKind, left, right *ConstExpr) *ConstExpr {
	return &ConstExpr{Kind: kind, Left: left, Right: right, Span: span}
}

// ErrUnresolvedConstant reports a reference to an undefined (or
// not-yet-defined) constant.
type ErrUnresolvedConstant struct {
	Name string
	Span source.Span
}

func (e *ErrUnresolvedConstant) Error() string {
	return fmt.Sprintf("unresolved constant %q", e.Name)
}

// Eval evaluates a constant expression to a concrete field element, given the
// set of constants already defined (in definition order).  A reference to a
// name not present in defined is reported as ErrUnresolvedConstant; this
// also enforces that a constant expression may only refer to
// already-defined constants, since later ones are simply absent from the
// map at the point an earlier constant is evaluated.
func Eval(expr *ConstExpr, defined map[string]felt.Element) (felt.Element, error) {
	switch expr.Kind {
	case ConstExprLiteral:
		return expr.Literal, nil
	case ConstExprRef:
		if v, ok := defined[expr.RefName]; ok {
			return v, nil
		}

		return felt.Zero(), &ErrUnresolvedConstant{Name: expr.RefName, Span: expr.Span}
	case ConstExprAdd, ConstExprSub, ConstExprMul:
		l, err := Eval(expr.Left, defined)
		if err != nil {
			return felt.Zero(), err
		}

		r, err := Eval(expr.Right, defined)
		if err != nil {
			return felt.Zero(), err
		}

		switch expr.Kind {
		case ConstExprAdd:
			return l.Add(r), nil
		case ConstExprSub:
			return l.Sub(r), nil
		default:
			return l.Mul(r), nil
		}
	default:
		panic("unknown constant expression kind")
	}
}

// Constant is a named, docstring-annotated constant definition.
type Constant struct {
	Name string
	Expr *ConstExpr
	Docs *string
	Span source.Span
}

// WithDocs attaches (or clears) a docstring, returning the same value for
// chaining.
func (c Constant) WithDocs(docs *string) Constant {
	c.Docs = docs
	return c
}
