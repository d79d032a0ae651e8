// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

import (
	"strconv"
	"sync"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// DFA is the per-decision memoization table described in spec §3/§5: a
// dedupe set of DFAState (keyed by ATNConfigSet equality) plus a start
// state, optionally indexed by parser precedence for a left-recursive
// rule's decision.
type DFA struct {
	atnStartState DecisionState
	decision      int

	mu sync.Mutex

	// states indexes installed DFAState values by configs hash for O(1)
	// dedupe during install; states are never removed.
	states map[int][]*DFAState
	numStates int

	s0 *DFAState
	// s0Precedence indexes per-precedence start states when precedenceDfa
	// is set (spec §3 "for precedence decisions, s0.edges is indexed by
	// precedence").
	s0Precedence map[int]*DFAState

	precedenceDfa bool
}

func NewDFA(atnStartState DecisionState, decision int) *DFA {
	_, precedenceDfa := atnStartState.(*StarLoopEntryState)
	precedenceDfa = precedenceDfa && atnStartState.(*StarLoopEntryState).isPrecedenceDecision
	d := &DFA{
		atnStartState: atnStartState,
		decision:      decision,
		states:        map[int][]*DFAState{},
	}
	if precedenceDfa {
		d.precedenceDfa = true
		d.s0Precedence = map[int]*DFAState{}
		d.s0 = NewDFAState(-1, NewATNConfigSet(false))
		d.s0.isAcceptState = false
		d.s0.requiresFullContext = false
	}
	return d
}

// GetPrecedenceStartState returns the start state for the given precedence
// level, or nil if none has been computed yet.
func (d *DFA) GetPrecedenceStartState(precedence int) *DFAState {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.precedenceDfa {
		panic("IllegalState: GetPrecedenceStartState called on a non-precedence DFA")
	}
	return d.s0Precedence[precedence]
}

func (d *DFA) SetPrecedenceStartState(precedence int, startState *DFAState) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.precedenceDfa {
		panic("IllegalState: SetPrecedenceStartState called on a non-precedence DFA")
	}
	if precedence < 0 {
		return
	}
	d.s0Precedence[precedence] = startState
}

// addState installs target into the dedupe table if no congruent state
// (by ATNConfigSet equality) already exists, returning whichever DFAState
// should be used going forward — the freshly installed one, or the
// pre-existing congruent one. Caller must hold d.mu (spec §5 "a short
// mutex guards mutations of DFA.states and edge installations").
func (d *DFA) addState(target *DFAState) *DFAState {
	h := target.Hash()
	for _, existing := range d.states[h] {
		if existing.Equals(target) {
			return existing
		}
	}
	target.stateNumber = d.numStates
	d.numStates++
	target.configs.SetReadonly(true)
	d.states[h] = append(d.states[h], target)
	return target
}

// Lock/Unlock expose the DFA's mutex to the simulator for the
// double-checked-lookup discipline in spec §5: an unlocked optimistic read
// of an edge, then lock + re-check + compute + install + unlock on miss.
func (d *DFA) Lock()   { d.mu.Lock() }
func (d *DFA) Unlock() { d.mu.Unlock() }

func (d *DFA) getState(configs *ATNConfigSet) (*DFAState, bool) {
	probe := &DFAState{configs: configs}
	h := probe.Hash()
	for _, existing := range d.states[h] {
		if existing.Equals(probe) {
			return existing, true
		}
	}
	return nil, false
}

// sortedStates returns every installed state ordered by stateNumber, for
// dump/debug purposes (not on any hot path).
func (d *DFA) sortedStates() []*DFAState {
	out := make([]*DFAState, d.numStates)
	for _, bucket := range d.states {
		for _, s := range bucket {
			if s.stateNumber >= 0 && s.stateNumber < len(out) {
				out[s.stateNumber] = s
			}
		}
	}
	return out
}

func (d *DFA) String(literalNames, symbolicNames []string) string {
	if d.s0 == nil {
		return ""
	}
	out := ""
	for _, s := range d.sortedStates() {
		if s == nil || len(s.edges) == 0 {
			continue
		}
		symbols := maps.Keys(s.edges)
		slices.Sort(symbols)
		for _, symbol := range symbols {
			target := s.edges[symbol]
			if target == nil {
				continue
			}
			label := "EOF"
			if symbol != TokenEOF {
				label = elementName(literalNames, symbolicNames, symbol)
			}
			out += sprintfEdge(s.stateNumber, label, target.stateNumber)
		}
	}
	return out
}

func sprintfEdge(from int, label string, to int) string {
	return "s" + strconv.Itoa(from) + "-" + label + "->s" + strconv.Itoa(to) + "\n"
}
