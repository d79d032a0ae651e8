// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

import (
	"math"
	"testing"
)

func newTestDecisionState(n int) *BasicBlockStartState {
	s := NewBasicBlockStartState()
	s.SetStateNumber(n)
	return s
}

func TestDFAAddStateDedupesByConfigSetEquality(t *testing.T) {
	dfa := NewDFA(newTestDecisionState(0), 0)

	state1 := newTestState(1)
	ctx := NewSingletonPredictionContext(BasePredictionContextEMPTY, 10)

	configsA := NewATNConfigSet(false)
	configsA.Add(NewATNConfig5(state1, 1, ctx), nil)
	configsB := NewATNConfigSet(false)
	configsB.Add(NewATNConfig5(state1, 1, ctx), nil)

	installed := dfa.addState(NewDFAState(-1, configsA))
	again := dfa.addState(NewDFAState(-1, configsB))

	if installed != again {
		t.Fatalf("expected a second structurally-equal DFAState to dedupe to the first installed instance")
	}
	if installed.stateNumber != 0 {
		t.Fatalf("expected the first installed state to get stateNumber 0, got %d", installed.stateNumber)
	}
}

func TestDFAAddStateAssignsIncreasingStateNumbers(t *testing.T) {
	dfa := NewDFA(newTestDecisionState(0), 0)
	state1 := newTestState(1)
	state2 := newTestState(2)

	configsA := NewATNConfigSet(false)
	configsA.Add(NewATNConfig5(state1, 1, BasePredictionContextEMPTY), nil)
	configsB := NewATNConfigSet(false)
	configsB.Add(NewATNConfig5(state2, 1, BasePredictionContextEMPTY), nil)

	a := dfa.addState(NewDFAState(-1, configsA))
	b := dfa.addState(NewDFAState(-1, configsB))

	if a.stateNumber == b.stateNumber {
		t.Fatalf("expected distinct configs to get distinct state numbers")
	}
	if a.stateNumber != 0 || b.stateNumber != 1 {
		t.Fatalf("expected state numbers to be assigned in install order, got %d and %d", a.stateNumber, b.stateNumber)
	}
}

func TestDFAGetStateFindsInstalledCongruentState(t *testing.T) {
	dfa := NewDFA(newTestDecisionState(0), 0)
	state1 := newTestState(1)
	ctx := NewSingletonPredictionContext(BasePredictionContextEMPTY, 10)

	configs := NewATNConfigSet(false)
	configs.Add(NewATNConfig5(state1, 1, ctx), nil)
	installed := dfa.addState(NewDFAState(-1, configs))

	probe := NewATNConfigSet(false)
	probe.Add(NewATNConfig5(state1, 1, ctx), nil)

	found, ok := dfa.getState(probe)
	if !ok || found != installed {
		t.Fatalf("expected getState to find the previously installed congruent state")
	}
}

func TestDFAStateErrorStateNumberIsMaxInt(t *testing.T) {
	if DFAStateErrorStateNumber != math.MaxInt {
		t.Fatalf("expected DFAStateErrorStateNumber to be math.MaxInt, got %d", DFAStateErrorStateNumber)
	}
}
