// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

import "testing"

// buildTestLexerATN wires a minimal two-rule lexer ATN by hand (no
// serialized-ATN deserializer involved): rule 0 ("A") matches one-or-more
// 'a', rule 1 ("B") matches a single 'b'. Token type == rule index + 1
// (0 is reserved for TokenInvalidType-style bookkeeping in this harness).
func buildTestLexerATN() (*ATN, []*DFA) {
	atn := NewATN(ATNTypeLexer, 2)

	addState := func(s ATNState) { atn.addState(s) }

	tokensStart := NewTokensStartState()
	addState(tokensStart)
	atn.defineDecisionState(tokensStart)

	// Rule 0: A : 'a'+ ;
	ruleStartA := NewRuleStartState()
	addState(ruleStartA)
	ruleStartA.SetRuleIndex(0)
	loopBodyA := NewBasicState()
	addState(loopBodyA)
	loopBodyA.SetRuleIndex(0)
	loopEntryA := NewStarLoopEntryState()
	addState(loopEntryA)
	loopEntryA.SetRuleIndex(0)
	atn.defineDecisionState(loopEntryA)
	loopBackA := NewStarLoopbackState()
	addState(loopBackA)
	loopBackA.SetRuleIndex(0)
	loopEndA := NewLoopEndState()
	addState(loopEndA)
	loopEndA.SetRuleIndex(0)
	ruleStopA := NewRuleStopState()
	addState(ruleStopA)
	ruleStopA.SetRuleIndex(0)

	ruleStartA.AddTransition(NewEpsilonTransition(loopEntryA, -1), -1)
	loopEntryA.AddTransition(NewRangeTransition(loopBodyA, int('a'), int('a')), -1)
	loopBodyA.AddTransition(NewEpsilonTransition(loopBackA, -1), -1)
	loopBackA.AddTransition(NewEpsilonTransition(loopEntryA, -1), -1)
	loopBackA.AddTransition(NewEpsilonTransition(loopEndA, -1), -1)
	loopEndA.AddTransition(NewEpsilonTransition(ruleStopA, -1), -1)

	// Rule 1: B : 'b' ;
	ruleStartB := NewRuleStartState()
	addState(ruleStartB)
	ruleStartB.SetRuleIndex(1)
	bodyB := NewBasicState()
	addState(bodyB)
	bodyB.SetRuleIndex(1)
	ruleStopB := NewRuleStopState()
	addState(ruleStopB)
	ruleStopB.SetRuleIndex(1)

	ruleStartB.AddTransition(NewEpsilonTransition(bodyB, -1), -1)
	bodyB.AddTransition(NewRangeTransition(ruleStopB, int('b'), int('b')), -1)

	tokensStart.AddTransition(NewEpsilonTransition(ruleStartA, -1), -1)
	tokensStart.AddTransition(NewEpsilonTransition(ruleStartB, -1), -1)

	atn.ruleToStartState = []*RuleStartState{ruleStartA, ruleStartB}
	atn.ruleToStopState = []*RuleStopState{ruleStopA, ruleStopB}
	atn.ruleToTokenType = []int{1, 2}
	atn.modeToStartState = []*TokensStartState{tokensStart}

	decisionToDFA := []*DFA{NewDFA(tokensStart, 0)}
	return atn, decisionToDFA
}

func TestLexerATNSimulatorLongestMatch(t *testing.T) {
	atn, decisionToDFA := buildTestLexerATN()
	sim := NewLexerATNSimulator(nil, atn, decisionToDFA, NewPredictionContextCache())

	input := NewInputStream("aaab")
	tt := sim.Match(input, LexerDefaultMode)

	if tt != 1 {
		t.Fatalf("expected token type 1 (rule A), got %d", tt)
	}
	if got, want := input.Index(), 3; got != want {
		t.Fatalf("expected longest match to consume 3 'a's, input index = %d, want %d", got, want)
	}
}

func TestLexerATNSimulatorMatchesSecondRule(t *testing.T) {
	atn, decisionToDFA := buildTestLexerATN()
	sim := NewLexerATNSimulator(nil, atn, decisionToDFA, NewPredictionContextCache())

	input := NewInputStream("b")
	tt := sim.Match(input, LexerDefaultMode)

	if tt != 2 {
		t.Fatalf("expected token type 2 (rule B), got %d", tt)
	}
}

func TestLexerATNSimulatorNoViableAltPanics(t *testing.T) {
	atn, decisionToDFA := buildTestLexerATN()
	sim := NewLexerATNSimulator(nil, atn, decisionToDFA, NewPredictionContextCache())

	input := NewInputStream("c")
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected Match to panic on input with no viable alt")
		}
		if _, ok := r.(*LexerNoViableAltException); !ok {
			t.Fatalf("expected *LexerNoViableAltException, got %T", r)
		}
	}()
	sim.Match(input, LexerDefaultMode)
}

func TestLexerATNSimulatorReusesDFAAcrossCalls(t *testing.T) {
	atn, decisionToDFA := buildTestLexerATN()
	sim := NewLexerATNSimulator(nil, atn, decisionToDFA, NewPredictionContextCache())

	first := sim.Match(NewInputStream("aaa"), LexerDefaultMode)
	if decisionToDFA[LexerDefaultMode].s0 == nil {
		t.Fatalf("expected the DFA to have an installed start state after matching")
	}

	second := sim.Match(NewInputStream("aa"), LexerDefaultMode)
	if first != 1 || second != 1 {
		t.Fatalf("expected both matches to resolve to rule A, got %d and %d", first, second)
	}
}
