// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

import "sync"

// ATNInvalidAltNumber represents an alt number that has not yet been
// computed, or that is invalid for a particular config (e.g. a freshly
// constructed BaseRuleContext before prediction has run).
var ATNInvalidAltNumber int

// ATN is the Augmented Transition Network described in spec §3: a directed
// graph of typed states connected by typed transitions, produced offline
// by the grammar compiler and deserialized here (atn_deserializer.go). It
// is immutable after deserialization and safely shared across recognizer
// instances and threads (spec §5).
type ATN struct {
	// DecisionToState maps decision number to the ATN state where that
	// decision begins — every sub-rule, (), (), (), +, * and rule entry
	// that requires adaptive prediction has an entry here.
	DecisionToState []DecisionState

	grammarType  ATNType
	maxTokenType int

	lexerActions []LexerAction

	modeNameToStartState map[string]*TokensStartState
	modeToStartState     []*TokensStartState

	ruleToStartState []*RuleStartState
	ruleToStopState  []*RuleStopState

	// ruleToTokenType maps rule index to the resulting token type for
	// lexer ATNs; nil for parser ATNs unless rule-bypass transitions were
	// generated.
	ruleToTokenType []int

	states []ATNState

	mu      sync.Mutex
	stateMu sync.RWMutex
}

// NewATN returns an empty ATN of the given grammar type, ready for the
// deserializer to populate via addState/readRules/etc.
func NewATN(grammarType ATNType, maxTokenType int) *ATN {
	return &ATN{
		grammarType:          grammarType,
		maxTokenType:         maxTokenType,
		modeNameToStartState: make(map[string]*TokensStartState),
	}
}

// NextTokensInContext computes the set of valid tokens that can occur
// starting in state s given the live call-stack ctx; when ctx is nil the
// result is restricted to tokens reachable while staying in s's own rule.
func (a *ATN) NextTokensInContext(s ATNState, ctx RuleContext) *IntervalSet {
	return NewLL1Analyzer(a).Look(s, nil, ctx)
}

// NextTokensNoContext computes and memoizes (on the state itself) the set
// of tokens reachable from s while staying inside its own rule.
// TokenEpsilon is present in the set if the rule can exit without
// consuming anything.
func (a *ATN) NextTokensNoContext(s ATNState) *IntervalSet {
	a.mu.Lock()
	defer a.mu.Unlock()
	iset := s.GetNextTokenWithinRule()
	if iset == nil {
		iset = a.NextTokensInContext(s, nil)
		iset.SetReadonly(true)
		s.SetNextTokenWithinRule(iset)
	}
	return iset
}

// NextTokens dispatches to NextTokensNoContext or NextTokensInContext
// depending on whether a call-stack context was supplied.
func (a *ATN) NextTokens(s ATNState, ctx RuleContext) *IntervalSet {
	if ctx == nil {
		return a.NextTokensNoContext(s)
	}
	return a.NextTokensInContext(s, ctx)
}

func (a *ATN) addState(state ATNState) {
	if state != nil {
		state.SetATN(a)
		state.SetStateNumber(len(a.states))
	}
	a.states = append(a.states, state)
}

func (a *ATN) removeState(state ATNState) {
	a.states[state.GetStateNumber()] = nil
}

func (a *ATN) defineDecisionState(s DecisionState) int {
	a.DecisionToState = append(a.DecisionToState, s)
	s.setDecision(len(a.DecisionToState) - 1)
	return s.getDecision()
}

func (a *ATN) getDecisionState(decision int) DecisionState {
	if len(a.DecisionToState) == 0 {
		return nil
	}
	return a.DecisionToState[decision]
}

// getExpectedTokens computes the set of symbols that could follow ATN
// state stateNumber under the full call-stack ctx, without evaluating any
// semantic predicate (every predicate along the way is assumed true).
// TokenEOF is added when a path exists to the outermost rule's stop state
// without consuming anything. A nil ctx is treated as ParserRuleContextEmpty.
func (a *ATN) getExpectedTokens(stateNumber int, ctx RuleContext) *IntervalSet {
	if stateNumber < 0 || stateNumber >= len(a.states) {
		panic("IllegalArgument: invalid ATN state number")
	}
	s := a.states[stateNumber]
	following := a.NextTokens(s, nil)
	if !following.Contains(TokenEpsilon) {
		return following
	}

	expected := NewIntervalSet()
	expected.AddSet(following)
	expected.RemoveOne(TokenEpsilon)

	for ctx != nil && ctx.GetInvokingState() >= 0 && following.Contains(TokenEpsilon) {
		invokingState := a.states[ctx.GetInvokingState()]
		rt := invokingState.GetTransitions()[0]
		following = a.NextTokens(rt.(*RuleTransition).followState, nil)
		expected.AddSet(following)
		expected.RemoveOne(TokenEpsilon)
		parent := ctx.GetParent()
		if parent == nil {
			break
		}
		ctx = parent.(RuleContext)
	}
	if following.Contains(TokenEpsilon) {
		expected.AddOne(TokenEOF)
	}
	return expected
}

func (a *ATN) GetRuleToStartState(index int) *RuleStartState { return a.ruleToStartState[index] }
func (a *ATN) GetRuleToStopState(index int) *RuleStopState   { return a.ruleToStopState[index] }
func (a *ATN) GetMaxTokenType() int                          { return a.maxTokenType }
func (a *ATN) GetGrammarType() ATNType                       { return a.grammarType }
