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
package felt

import (
	"math/big"
	"testing"
)

func TestElement_AddSubRoundTrip(t *testing.T) {
	x := FromUint64(17)
	y := FromUint64(5)

	if got := x.Add(y).Sub(y); !got.Equal(x) {
		t.Errorf("(x+y)-y should equal x, got %s want %s", got, x)
	}
}

func TestElement_MulInverseRoundTrip(t *testing.T) {
	x := FromUint64(42)

	if got := x.Mul(x.Inverse()); !got.IsOne() {
		t.Errorf("x * x^-1 should equal 1, got %s", got)
	}
}

func TestElement_InverseOfZeroIsZero(t *testing.T) {
	if got := Zero().Inverse(); !got.IsZero() {
		t.Errorf("0^-1 should be defined as 0, got %s", got)
	}
}

func TestElement_NegIsAdditiveInverse(t *testing.T) {
	x := FromUint64(9)

	if got := x.Add(x.Neg()); !got.IsZero() {
		t.Errorf("x + (-x) should equal 0, got %s", got)
	}
}

func TestElement_IsBool(t *testing.T) {
	if !Zero().IsBool() {
		t.Error("0 should be a boolean element")
	}

	if !One().IsBool() {
		t.Error("1 should be a boolean element")
	}

	if FromUint64(2).IsBool() {
		t.Error("2 should not be a boolean element")
	}
}

func TestElement_BigIntRoundTrip(t *testing.T) {
	want := big.NewInt(123456789)

	x := FromBigInt(want)

	if got := x.BigInt(); got.Cmp(want) != 0 {
		t.Errorf("BigInt round trip: got %s want %s", got, want)
	}
}

func TestElement_ToUint64RoundTrip(t *testing.T) {
	x := FromUint64(987654321)

	if got := x.ToUint64(); got != 987654321 {
		t.Errorf("ToUint64 round trip: got %d want %d", got, 987654321)
	}
}

func TestElement_CmpOrdersCanonicalValues(t *testing.T) {
	small := FromUint64(1)
	big := FromUint64(2)

	if small.Cmp(big) != -1 {
		t.Error("expected 1 < 2")
	}

	if big.Cmp(small) != 1 {
		t.Error("expected 2 > 1")
	}

	if small.Cmp(small) != 0 {
		t.Error("expected 1 == 1")
	}
}

func TestElement_FromBigIntRejectsNegative(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected a negative big.Int to panic")
		}
	}()

	FromBigInt(big.NewInt(-1))
}
