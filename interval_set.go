// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

import (
	"fmt"
	"strings"
)

// TokenEOF is the reserved symbol value for end of input on any IntStream.
const TokenEOF = -1

// Interval is a closed range [Start, Stop], both inclusive. A single-element
// interval has Start == Stop.
type Interval struct {
	Start, Stop int
}

func NewInterval(start, stop int) Interval {
	return Interval{Start: start, Stop: stop}
}

func (i Interval) Length() int {
	if i.Stop < i.Start {
		return 0
	}
	return i.Stop - i.Start + 1
}

func (i Interval) Contains(item int) bool {
	return item >= i.Start && item <= i.Stop
}

func (i Interval) String() string {
	if i.Start == i.Stop {
		return fmt.Sprintf("%d", i.Start)
	}
	return fmt.Sprintf("%d..%d", i.Start, i.Stop)
}

// IntervalSet is an ordered, disjoint, non-adjacent set of closed intervals
// over the integers. Every mutator is responsible for restoring that
// invariant before returning — see the (Interval normalization) property in
// spec §8.
type IntervalSet struct {
	intervals []Interval
	readOnly  bool
}

func NewIntervalSet() *IntervalSet {
	return &IntervalSet{intervals: make([]Interval, 0)}
}

func (s *IntervalSet) Intervals() []Interval {
	return s.intervals
}

func (s *IntervalSet) clone() *IntervalSet {
	out := NewIntervalSet()
	out.intervals = append(out.intervals, s.intervals...)
	return out
}

// AddOne inserts the single value v, merging with any adjacent/overlapping
// interval.
func (s *IntervalSet) AddOne(v int) {
	s.AddRange(v, v)
}

// AddRange inserts [a,b] (a <= b), merging with adjacent/overlapping
// intervals so the set stays sorted and non-overlapping.
func (s *IntervalSet) AddRange(a, b int) {
	if s.readOnly {
		panic("IllegalState: cannot mutate a read-only IntervalSet")
	}
	if b < a {
		return
	}
	for i, iv := range s.intervals {
		if b < iv.Start-1 {
			// strictly before, with a gap: insert here
			next := append([]Interval{}, s.intervals[:i]...)
			next = append(next, Interval{a, b})
			next = append(next, s.intervals[i:]...)
			s.intervals = next
			return
		}
		if a > iv.Stop+1 {
			continue
		}
		// overlaps or is adjacent to iv: merge and keep scanning right
		if a < iv.Start {
			iv.Start = a
		}
		if b > iv.Stop {
			iv.Stop = b
		}
		s.intervals[i] = iv
		s.mergeForward(i)
		return
	}
	s.intervals = append(s.intervals, Interval{a, b})
}

// mergeForward absorbs any following intervals that now overlap or touch
// s.intervals[i] after a merge widened it.
func (s *IntervalSet) mergeForward(i int) {
	j := i + 1
	for j < len(s.intervals) && s.intervals[j].Start <= s.intervals[i].Stop+1 {
		if s.intervals[j].Stop > s.intervals[i].Stop {
			s.intervals[i].Stop = s.intervals[j].Stop
		}
		j++
	}
	if j > i+1 {
		s.intervals = append(s.intervals[:i+1], s.intervals[j:]...)
	}
}

// AddSet unions other into s in place and returns s.
func (s *IntervalSet) AddSet(other *IntervalSet) *IntervalSet {
	if other == nil {
		return s
	}
	for _, iv := range other.intervals {
		s.AddRange(iv.Start, iv.Stop)
	}
	return s
}

// Or returns a new set containing the union of s and other.
func (s *IntervalSet) Or(other *IntervalSet) *IntervalSet {
	out := s.clone()
	out.AddSet(other)
	return out
}

// And returns a new set containing the intersection of s and other.
func (s *IntervalSet) And(other *IntervalSet) *IntervalSet {
	out := NewIntervalSet()
	if other == nil {
		return out
	}
	i, j := 0, 0
	for i < len(s.intervals) && j < len(other.intervals) {
		a, b := s.intervals[i], other.intervals[j]
		lo := a.Start
		if b.Start > lo {
			lo = b.Start
		}
		hi := a.Stop
		if b.Stop < hi {
			hi = b.Stop
		}
		if lo <= hi {
			out.AddRange(lo, hi)
		}
		if a.Stop < b.Stop {
			i++
		} else {
			j++
		}
	}
	return out
}

// Complement returns the intervals of [minVal,maxVal] not covered by s.
func (s *IntervalSet) Complement(minVal, maxVal int) *IntervalSet {
	out := NewIntervalSet()
	out.AddRange(minVal, maxVal)
	for _, iv := range s.intervals {
		lo, hi := iv.Start, iv.Stop
		if lo < minVal {
			lo = minVal
		}
		if hi > maxVal {
			hi = maxVal
		}
		if lo > hi {
			continue
		}
		out = out.subtractRange(lo, hi)
	}
	return out
}

func (s *IntervalSet) subtractRange(a, b int) *IntervalSet {
	out := NewIntervalSet()
	for _, iv := range s.intervals {
		if iv.Stop < a || iv.Start > b {
			out.AddRange(iv.Start, iv.Stop)
			continue
		}
		if iv.Start < a {
			out.AddRange(iv.Start, a-1)
		}
		if iv.Stop > b {
			out.AddRange(b+1, iv.Stop)
		}
	}
	return out
}

func (s *IntervalSet) Contains(v int) bool {
	lo, hi := 0, len(s.intervals)-1
	for lo <= hi {
		mid := (lo + hi) / 2
		iv := s.intervals[mid]
		if v < iv.Start {
			hi = mid - 1
		} else if v > iv.Stop {
			lo = mid + 1
		} else {
			return true
		}
	}
	return false
}

func (s *IntervalSet) Len() int {
	n := 0
	for _, iv := range s.intervals {
		n += iv.Length()
	}
	return n
}

func (s *IntervalSet) IsEmpty() bool {
	return len(s.intervals) == 0
}

// RemoveOne removes a single value, splitting its containing interval if
// necessary. Used by ATN.getExpectedTokens to strip the TokenEpsilon
// marker before reporting an expected-token set to a caller.
func (s *IntervalSet) RemoveOne(v int) {
	if s.readOnly {
		panic("IllegalState: cannot mutate a read-only IntervalSet")
	}
	for i, iv := range s.intervals {
		if v < iv.Start || v > iv.Stop {
			continue
		}
		switch {
		case iv.Start == iv.Stop:
			s.intervals = append(s.intervals[:i], s.intervals[i+1:]...)
		case v == iv.Start:
			s.intervals[i].Start++
		case v == iv.Stop:
			s.intervals[i].Stop--
		default:
			right := Interval{v + 1, iv.Stop}
			s.intervals[i].Stop = v - 1
			s.intervals = append(s.intervals[:i+1], append([]Interval{right}, s.intervals[i+1:]...)...)
		}
		return
	}
}

// SetReadonly freezes the set: further mutation calls panic. Installed
// FOLLOW/expected sets returned by the parser driver are frozen this way so
// callers cannot accidentally corrupt shared state.
func (s *IntervalSet) SetReadonly(readonly bool) {
	s.readOnly = readonly
}

func (s *IntervalSet) String() string {
	return s.StringVerbose(nil, nil, false)
}

// StringVerbose renders the set either as token literals/names (when a
// vocabulary is supplied) or as raw numeric intervals, matching the
// generated-recognizer "expecting {...}" error message format.
func (s *IntervalSet) StringVerbose(literalNames, symbolicNames []string, elemsAreChar bool) string {
	if s == nil || len(s.intervals) == 0 {
		return "{}"
	}
	named := literalNames != nil || symbolicNames != nil
	var parts []string
	for _, iv := range s.intervals {
		if !named {
			parts = append(parts, iv.String())
			continue
		}
		for v := iv.Start; v <= iv.Stop; v++ {
			parts = append(parts, elementName(literalNames, symbolicNames, v))
		}
	}
	if len(parts) == 1 {
		return parts[0]
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

func elementName(literalNames, symbolicNames []string, v int) string {
	if v == TokenEOF {
		return "<EOF>"
	}
	if v >= 0 && v < len(literalNames) && literalNames[v] != "" {
		return literalNames[v]
	}
	if v >= 0 && v < len(symbolicNames) {
		return symbolicNames[v]
	}
	return fmt.Sprintf("%d", v)
}
