// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

import "fmt"

// PredPrediction pairs a semantic predicate with the alternative it
// guards, used by a DFAState that predicts its alt only conditionally
// (spec §3 DFAState.predicates).
type PredPrediction struct {
	pred SemanticContext
	alt  int
}

func NewPredPrediction(pred SemanticContext, alt int) *PredPrediction {
	return &PredPrediction{pred: pred, alt: alt}
}

func (p *PredPrediction) String() string {
	return fmt.Sprintf("(%v, %d)", p.pred, p.alt)
}

// DFAStateErrorStateNumber is the INT_MAX sentinel (spec §4.7 "Error
// states carry stateNumber = INT_MAX") marking a known-dead edge so "no
// edge computed yet" and "computed and it's an error" are distinguishable
// without allocating a tombstone value.
const DFAStateErrorStateNumber = int(^uint(0) >> 1)

// DFAState is one memoized node of a decision's subset-construction cache
// (spec §3). edges is keyed directly by symbol, including TokenEOF (−1),
// so a missing key means "not yet computed" and a value of
// ATNSimulatorError means a known dead edge.
type DFAState struct {
	stateNumber int
	configs     *ATNConfigSet

	edges map[int]*DFAState

	isAcceptState bool
	prediction    int

	lexerActionExecutor *LexerActionExecutor
	requiresFullContext bool
	predicates          []*PredPrediction
}

func NewDFAState(stateNumber int, configs *ATNConfigSet) *DFAState {
	if configs == nil {
		configs = NewATNConfigSet(false)
	}
	return &DFAState{stateNumber: stateNumber, configs: configs, edges: map[int]*DFAState{}}
}

func (d *DFAState) GetAltSet() *BitSet {
	out := NewBitSet()
	if d.configs == nil {
		return out
	}
	for _, c := range d.configs.GetItems() {
		out.Add(c.GetAlt())
	}
	return out
}

func (d *DFAState) getEdge(symbol int) *DFAState { return d.edges[symbol] }

func (d *DFAState) setEdge(symbol int, target *DFAState) { d.edges[symbol] = target }

// Hash/Equals implement "DFAState equality is by ATNConfigSet equality"
// (spec §3), so the DFA's states map can dedupe newly computed targets
// against ones already installed.
func (d *DFAState) Hash() int {
	if d.configs == nil {
		return 0
	}
	return d.configs.Hash()
}

func (d *DFAState) Equals(other *DFAState) bool {
	if d == other {
		return true
	}
	if other == nil {
		return false
	}
	return d.configs.Equals(other.configs)
}

func (d *DFAState) String() string {
	s := fmt.Sprintf("%d:%s", d.stateNumber, d.configs)
	if d.isAcceptState {
		if d.predicates != nil {
			s += fmt.Sprintf("=>%v", d.predicates)
		} else {
			s += fmt.Sprintf("=>%d", d.prediction)
		}
	}
	return s
}
