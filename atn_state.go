// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

import "strconv"

const ATNStateInvalidStateNumber = -1

// ATN state type tags (spec §3: "each has a type").
const (
	ATNStateInvalid = iota
	ATNStateBasic
	ATNStateRuleStart
	ATNStateBlockStart
	ATNStatePlusBlockStart
	ATNStateStarBlockStart
	ATNStateTokenStart
	ATNStateRuleStop
	ATNStateBlockEnd
	ATNStateStarLoopBack
	ATNStateStarLoopEntry
	ATNStatePlusLoopBack
	ATNStateLoopEnd
)

// ATNState is the closed family of ATN vertex kinds. Concrete state structs
// embed BaseATNState and add only the fields their kind needs (loop-back
// pointer, end-state pointer, etc.) rather than carrying every optional
// field on a single struct.
type ATNState interface {
	GetStateType() int
	GetRuleIndex() int
	SetRuleIndex(int)
	GetATN() *ATN
	SetATN(*ATN)
	GetStateNumber() int
	SetStateNumber(int)
	GetTransitions() []Transition
	AddTransition(Transition, int)
	SetTransitions([]Transition)
	GetNextTokenWithinRule() *IntervalSet
	SetNextTokenWithinRule(*IntervalSet)
	onlyHasEpsilonTransitions() bool
	String() string
}

type BaseATNState struct {
	atn                   *ATN
	stateNumber           int
	stateType             int
	ruleIndex             int
	epsilonOnlyTransitions bool
	transitions           []Transition
	nextTokenWithinRule   *IntervalSet
}

func NewBaseATNState() *BaseATNState {
	return &BaseATNState{stateNumber: ATNStateInvalidStateNumber}
}

func (s *BaseATNState) GetRuleIndex() int        { return s.ruleIndex }
func (s *BaseATNState) SetRuleIndex(v int)       { s.ruleIndex = v }
func (s *BaseATNState) GetATN() *ATN             { return s.atn }
func (s *BaseATNState) SetATN(atn *ATN)          { s.atn = atn }
func (s *BaseATNState) GetStateType() int        { return s.stateType }
func (s *BaseATNState) GetStateNumber() int      { return s.stateNumber }
func (s *BaseATNState) SetStateNumber(v int)     { s.stateNumber = v }
func (s *BaseATNState) GetTransitions() []Transition { return s.transitions }
func (s *BaseATNState) SetTransitions(t []Transition) { s.transitions = t }
func (s *BaseATNState) GetNextTokenWithinRule() *IntervalSet { return s.nextTokenWithinRule }
func (s *BaseATNState) SetNextTokenWithinRule(set *IntervalSet) { s.nextTokenWithinRule = set }

func (s *BaseATNState) AddTransition(t Transition, index int) {
	if len(s.transitions) == 0 {
		s.epsilonOnlyTransitions = t.getIsEpsilon()
	} else if s.epsilonOnlyTransitions != t.getIsEpsilon() {
		panic("IllegalState: ATN state mixes epsilon and non-epsilon transitions")
	}
	if index == -1 {
		s.transitions = append(s.transitions, t)
	} else {
		s.transitions = append(s.transitions[:index], append([]Transition{t}, s.transitions[index:]...)...)
	}
}

func (s *BaseATNState) onlyHasEpsilonTransitions() bool { return s.epsilonOnlyTransitions }

func (s *BaseATNState) String() string {
	return strconv.Itoa(s.stateNumber)
}

// DecisionState is any ATN state that begins an adaptive-prediction
// decision (spec §3 "decisionToState"): block starts, loop entries, plus
// blocks — anything the parser ATN simulator treats as a branch point.
type DecisionState interface {
	ATNState
	getDecision() int
	setDecision(int)
	getNonGreedy() bool
	setNonGreedy(bool)
}

type BaseDecisionState struct {
	*BaseATNState
	decision  int
	nonGreedy bool
}

func NewBaseDecisionState() *BaseDecisionState {
	return &BaseDecisionState{BaseATNState: NewBaseATNState(), decision: -1}
}

func (s *BaseDecisionState) getDecision() int     { return s.decision }
func (s *BaseDecisionState) setDecision(v int)    { s.decision = v }
func (s *BaseDecisionState) getNonGreedy() bool   { return s.nonGreedy }
func (s *BaseDecisionState) setNonGreedy(v bool)  { s.nonGreedy = v }

type RuleStartState struct {
	*BaseATNState
	stopState      *RuleStopState
	isLeftRecursive bool
}

func NewRuleStartState() *RuleStartState {
	s := &RuleStartState{BaseATNState: NewBaseATNState()}
	s.stateType = ATNStateRuleStart
	return s
}

type RuleStopState struct {
	*BaseATNState
}

func NewRuleStopState() *RuleStopState {
	s := &RuleStopState{BaseATNState: NewBaseATNState()}
	s.stateType = ATNStateRuleStop
	return s
}

type BasicState struct {
	*BaseATNState
}

func NewBasicState() *BasicState {
	s := &BasicState{BaseATNState: NewBaseATNState()}
	s.stateType = ATNStateBasic
	return s
}

// BlockStartState is implemented by every state variant that begins a
// `(...)` / `(...)?` / `(...)*` / `(...)+` subrule.
type BlockStartState interface {
	DecisionState
	getEndState() *BlockEndState
	setEndState(*BlockEndState)
}

type BaseBlockStartState struct {
	*BaseDecisionState
	endState *BlockEndState
}

func NewBaseBlockStartState() *BaseBlockStartState {
	return &BaseBlockStartState{BaseDecisionState: NewBaseDecisionState()}
}
func (s *BaseBlockStartState) getEndState() *BlockEndState     { return s.endState }
func (s *BaseBlockStartState) setEndState(e *BlockEndState)    { s.endState = e }

type BasicBlockStartState struct {
	*BaseBlockStartState
}

func NewBasicBlockStartState() *BasicBlockStartState {
	s := &BasicBlockStartState{BaseBlockStartState: NewBaseBlockStartState()}
	s.stateType = ATNStateBlockStart
	return s
}

type BlockEndState struct {
	*BaseATNState
	startState BlockStartState
}

func NewBlockEndState() *BlockEndState {
	s := &BlockEndState{BaseATNState: NewBaseATNState()}
	s.stateType = ATNStateBlockEnd
	return s
}

type PlusBlockStartState struct {
	*BaseBlockStartState
	loopBackState *PlusLoopbackState
}

func NewPlusBlockStartState() *PlusBlockStartState {
	s := &PlusBlockStartState{BaseBlockStartState: NewBaseBlockStartState()}
	s.stateType = ATNStatePlusBlockStart
	return s
}

type PlusLoopbackState struct {
	*BaseDecisionState
}

func NewPlusLoopbackState() *PlusLoopbackState {
	s := &PlusLoopbackState{BaseDecisionState: NewBaseDecisionState()}
	s.stateType = ATNStatePlusLoopBack
	return s
}

type StarBlockStartState struct {
	*BaseBlockStartState
}

func NewStarBlockStartState() *StarBlockStartState {
	s := &StarBlockStartState{BaseBlockStartState: NewBaseBlockStartState()}
	s.stateType = ATNStateStarBlockStart
	return s
}

type StarLoopbackState struct {
	*BaseATNState
}

func NewStarLoopbackState() *StarLoopbackState {
	s := &StarLoopbackState{BaseATNState: NewBaseATNState()}
	s.stateType = ATNStateStarLoopBack
	return s
}

type StarLoopEntryState struct {
	*BaseDecisionState
	loopBackState         *StarLoopbackState
	isPrecedenceDecision   bool
}

func NewStarLoopEntryState() *StarLoopEntryState {
	s := &StarLoopEntryState{BaseDecisionState: NewBaseDecisionState()}
	s.stateType = ATNStateStarLoopEntry
	return s
}

type LoopEndState struct {
	*BaseATNState
	loopBackState ATNState
}

func NewLoopEndState() *LoopEndState {
	s := &LoopEndState{BaseATNState: NewBaseATNState()}
	s.stateType = ATNStateLoopEnd
	return s
}

// TokensStartState is the lexer-mode start state; ATN.modeToStartState
// points at one of these per mode.
type TokensStartState struct {
	*BaseDecisionState
}

func NewTokensStartState() *TokensStartState {
	s := &TokensStartState{BaseDecisionState: NewBaseDecisionState()}
	s.stateType = ATNStateTokenStart
	return s
}
