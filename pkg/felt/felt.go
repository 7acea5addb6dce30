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

// Package felt provides the field-element primitive consumed by the
// assembler and execution engine: a thin wrapper around gnark-crypto's
// bls12-377 scalar field exposing the small set of operations the
// assembler's constant folding and the dispatcher's arithmetic family
// need.
package felt

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
)

// Element is a single value in the underlying prime field.  The zero value
// is the field element 0.
type Element struct {
	inner fr.Element
}

// Zero constructs the additive identity.
func Zero() Element {
	return Element{}
}

// One constructs the multiplicative identity.
func One() Element {
	var e Element
	e.inner.SetOne()

	return e
}

// FromUint64 constructs a field element from a uint64 value.
func FromUint64(val uint64) Element {
	var e Element
	e.inner.SetUint64(val)

	return e
}

// FromBytes constructs a field element from a big-endian byte slice,
// reducing modulo the field's characteristic.
func FromBytes(bytes []byte) Element {
	var e Element
	e.inner.SetBytes(bytes)

	return e
}

// FromBigInt constructs a field element from a non-negative big.Int.
func FromBigInt(val *big.Int) Element {
	if val.Sign() < 0 {
		panic("felt: negative value")
	}

	var e Element
	e.inner.SetBigInt(val)

	return e
}

// Add returns x+y.
func (x Element) Add(y Element) Element {
	var r Element
	r.inner.Add(&x.inner, &y.inner)

	return r
}

// Sub returns x-y.
func (x Element) Sub(y Element) Element {
	var r Element
	r.inner.Sub(&x.inner, &y.inner)

	return r
}

// Mul returns x*y.
func (x Element) Mul(y Element) Element {
	var r Element
	r.inner.Mul(&x.inner, &y.inner)

	return r
}

// Neg returns -x.
func (x Element) Neg() Element {
	var r Element
	r.inner.Neg(&x.inner)

	return r
}

// Inverse returns x⁻¹, or 0 if x is zero.
func (x Element) Inverse() Element {
	var r Element

	if x.inner.IsZero() {
		return r
	}

	r.inner.Inverse(&x.inner)

	return r
}

// IsZero reports whether x is the additive identity.
func (x Element) IsZero() bool {
	return x.inner.IsZero()
}

// IsOne reports whether x is the multiplicative identity.
func (x Element) IsOne() bool {
	return x.inner.IsOne()
}

// Equal reports whether x and y represent the same field element.
func (x Element) Equal(y Element) bool {
	return x.inner.Equal(&y.inner)
}

// Cmp returns 1 if x > y, 0 if x = y, and -1 if x < y (canonical
// representative ordering).
func (x Element) Cmp(y Element) int {
	return x.inner.Cmp(&y.inner)
}

// IsBool reports whether x is either 0 or 1.
func (x Element) IsBool() bool {
	return x.IsZero() || x.IsOne()
}

// ToUint64 returns the canonical uint64 value of x.  Panics if x does not
// fit within 64 bits.
func (x Element) ToUint64() uint64 {
	if !x.inner.IsUint64() {
		panic("felt: value does not fit in a uint64")
	}

	return x.inner.Uint64()
}

// BigInt returns the canonical big.Int representation of x.
func (x Element) BigInt() *big.Int {
	var out big.Int

	x.inner.BigInt(&out)

	return &out
}

// String returns the decimal representation of x.
func (x Element) String() string {
	return x.inner.String()
}
