// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

import "testing"

func TestIntervalSetAddRangeMergesAdjacentAndOverlapping(t *testing.T) {
	s := NewIntervalSet()
	s.AddRange(5, 8)
	s.AddRange(10, 12)
	s.AddRange(9, 9) // bridges the two ranges above

	if got, want := s.Len(), 8; got != want {
		t.Fatalf("Len() = %d, want %d", got, want)
	}
	ivs := s.Intervals()
	if len(ivs) != 1 {
		t.Fatalf("expected a single merged interval, got %v", ivs)
	}
	if ivs[0] != (Interval{5, 12}) {
		t.Fatalf("got %v, want {5 12}", ivs[0])
	}
}

func TestIntervalSetAddRangeKeepsDisjointRangesSorted(t *testing.T) {
	s := NewIntervalSet()
	s.AddRange(20, 25)
	s.AddRange(1, 3)
	s.AddRange(10, 12)

	ivs := s.Intervals()
	want := []Interval{{1, 3}, {10, 12}, {20, 25}}
	if len(ivs) != len(want) {
		t.Fatalf("got %v, want %v", ivs, want)
	}
	for i := range want {
		if ivs[i] != want[i] {
			t.Fatalf("got %v, want %v", ivs, want)
		}
	}
}

func TestIntervalSetContains(t *testing.T) {
	s := NewIntervalSet()
	s.AddRange(5, 10)
	s.AddRange(20, 20)

	for _, v := range []int{5, 7, 10, 20} {
		if !s.Contains(v) {
			t.Errorf("expected Contains(%d) to be true", v)
		}
	}
	for _, v := range []int{4, 11, 19, 21} {
		if s.Contains(v) {
			t.Errorf("expected Contains(%d) to be false", v)
		}
	}
}

func TestIntervalSetAndIntersects(t *testing.T) {
	a := NewIntervalSet()
	a.AddRange(1, 10)
	b := NewIntervalSet()
	b.AddRange(5, 15)

	got := a.And(b)
	if got.Len() != 6 {
		t.Fatalf("Len() = %d, want 6", got.Len())
	}
	if !got.Contains(5) || !got.Contains(10) || got.Contains(4) || got.Contains(11) {
		t.Fatalf("unexpected intersection contents: %v", got.Intervals())
	}
}

func TestIntervalSetComplement(t *testing.T) {
	s := NewIntervalSet()
	s.AddRange(3, 5)

	got := s.Complement(0, 9)
	want := []Interval{{0, 2}, {6, 9}}
	ivs := got.Intervals()
	if len(ivs) != len(want) {
		t.Fatalf("got %v, want %v", ivs, want)
	}
	for i := range want {
		if ivs[i] != want[i] {
			t.Fatalf("got %v, want %v", ivs, want)
		}
	}
}

func TestIntervalSetRemoveOneSplitsInterval(t *testing.T) {
	s := NewIntervalSet()
	s.AddRange(1, 5)
	s.RemoveOne(3)

	if s.Contains(3) {
		t.Fatalf("expected 3 to be removed")
	}
	for _, v := range []int{1, 2, 4, 5} {
		if !s.Contains(v) {
			t.Errorf("expected Contains(%d) to remain true", v)
		}
	}
	if len(s.Intervals()) != 2 {
		t.Fatalf("expected RemoveOne to split into two intervals, got %v", s.Intervals())
	}
}

func TestIntervalSetSetReadonlyPanicsOnMutation(t *testing.T) {
	s := NewIntervalSet()
	s.AddOne(1)
	s.SetReadonly(true)

	defer func() {
		if recover() == nil {
			t.Fatalf("expected AddRange on a read-only set to panic")
		}
	}()
	s.AddRange(2, 3)
}

func TestIntervalSetStringVerboseUsesVocabulary(t *testing.T) {
	s := NewIntervalSet()
	s.AddOne(2)
	literals := []string{"", "", "'foo'"}

	if got, want := s.StringVerbose(literals, nil, false), "'foo'"; got != want {
		t.Fatalf("StringVerbose() = %q, want %q", got, want)
	}
}
