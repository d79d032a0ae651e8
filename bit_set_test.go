// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

import (
	"reflect"
	"testing"
)

func TestBitSetAddContainsValues(t *testing.T) {
	b := NewBitSet()
	b.Add(3)
	b.Add(130)
	b.Add(0)

	for _, v := range []int{0, 3, 130} {
		if !b.Contains(v) {
			t.Errorf("expected Contains(%d) to be true", v)
		}
	}
	if b.Contains(1) {
		t.Errorf("expected Contains(1) to be false")
	}
	if got, want := b.Len(), 3; got != want {
		t.Fatalf("Len() = %d, want %d", got, want)
	}
	if got, want := b.Values(), []int{0, 3, 130}; !reflect.DeepEqual(got, want) {
		t.Fatalf("Values() = %v, want %v (ascending order)", got, want)
	}
}

func TestBitSetOrUnionsAcrossWordBoundaries(t *testing.T) {
	a := NewBitSet()
	a.Add(1)
	b := NewBitSet()
	b.Add(65)

	got := a.Or(b)
	if got.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", got.Len())
	}
	if !got.Contains(1) || !got.Contains(65) {
		t.Fatalf("expected union to contain both bits, got %v", got.Values())
	}
	// Inputs must be left untouched by Or.
	if a.Contains(65) || b.Contains(1) {
		t.Fatalf("Or must not mutate its operands")
	}
}

func TestBitSetStringFormat(t *testing.T) {
	b := NewBitSet()
	b.Add(2)
	b.Add(5)

	if got, want := b.String(), "{2, 5}"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}
