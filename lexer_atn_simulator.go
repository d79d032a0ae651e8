// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

import "fmt"

const (
	lexerSimMinDFAEdge = 0
	lexerSimMaxDFAEdge = 127 + 1 // ''+1 matches generated-lexer tables
)

// simState snapshots the longest match seen so far, so the simulator can
// back up to it when reach becomes empty (spec §4.6 "record accept
// position... and continue").
type simState struct {
	index               int
	line                int
	column              int
	dfaState            *DFAState
}

func newSimState() *simState {
	return &simState{index: -1}
}

func (s *simState) reset() {
	s.index = -1
	s.line = 0
	s.column = -1
	s.dfaState = nil
}

// LexerATNSimulator implements the longest-match algorithm of spec §4.6:
// consult the mode's DFA first, falling back to reach+closure to compute
// and install new DFA edges on demand.
type LexerATNSimulator struct {
	*ATNSimulator

	recog Lexer

	mode int

	prevAccept *simState

	DecisionToDFA []*DFA

	MatchCalls int

	startIndex int
	line       int
	column     int
}

func NewLexerATNSimulator(recog Lexer, atn *ATN, decisionToDFA []*DFA, sharedContextCache *PredictionContextCache) *LexerATNSimulator {
	return &LexerATNSimulator{
		ATNSimulator:  NewATNSimulator(atn, sharedContextCache),
		recog:         recog,
		DecisionToDFA: decisionToDFA,
		mode:          LexerDefaultMode,
		line:          1,
		column:        0,
		prevAccept:    newSimState(),
	}
}

func (l *LexerATNSimulator) copyState(other *LexerATNSimulator) {
	l.column = other.column
	l.line = other.line
	l.mode = other.mode
	l.startIndex = other.startIndex
}

// Match runs the longest-match loop for the given mode over input, leaves
// input positioned just past the longest match, and returns the predicted
// token type (TokenEOF when input is already at EOF). If no accept state is
// reached it panics with a *LexerNoViableAltException, which the driver
// (Lexer.NextToken) recovers and reports to the error listeners.
func (l *LexerATNSimulator) Match(input CharStream, mode int) int {
	l.MatchCalls++
	l.mode = mode
	mark := input.Mark()
	defer input.Release(mark)

	l.startIndex = input.Index()
	l.prevAccept.reset()

	dfa := l.DecisionToDFA[mode]
	var s0 *DFAState
	dfa.Lock()
	s0 = dfa.s0
	dfa.Unlock()

	if s0 == nil {
		return l.matchATN(input)
	}
	return l.execATN(input, s0)
}

func (l *LexerATNSimulator) matchATN(input CharStream) int {
	startState := l.atn.modeToStartState[l.mode]
	s0Closure := l.computeStartState(input, startState)
	suppressEdge := s0Closure.HasSemanticContext()
	s0Closure.SetHasSemanticContext(false)

	next := l.addDFAState(s0Closure)
	if !suppressEdge {
		dfa := l.DecisionToDFA[l.mode]
		dfa.Lock()
		dfa.s0 = next
		dfa.Unlock()
	}
	return l.execATN(input, next)
}

func (l *LexerATNSimulator) execATN(input CharStream, ds0 *DFAState) int {
	if ds0.isAcceptState {
		l.captureSimState(l.prevAccept, input, ds0)
	}
	t := input.LA(1)
	s := ds0

	for {
		target := l.getExistingTargetState(s, t)
		if target == nil {
			target = l.computeTargetState(input, s, t)
		}
		if target == ATNSimulatorError {
			break
		}
		if t != TokenEOF {
			l.Consume(input)
		}
		if target.isAcceptState {
			l.captureSimState(l.prevAccept, input, target)
			if t == TokenEOF {
				break
			}
		}
		t = input.LA(1)
		s = target
	}
	return l.failOrAccept(l.prevAccept, input, s.configs, t)
}

// getExistingTargetState implements the unlocked optimistic read half of
// the double-checked-lookup discipline in spec §5.
func (l *LexerATNSimulator) getExistingTargetState(s *DFAState, t int) *DFAState {
	if s.edges == nil {
		return nil
	}
	target, ok := s.edges[t]
	if !ok {
		return nil
	}
	return target
}

// computeTargetState is the locked "compute and install" half: reach then
// closure, then install into the DFA under the decision's mutex.
func (l *LexerATNSimulator) computeTargetState(input CharStream, s *DFAState, t int) *DFAState {
	reach := NewOrderedATNConfigSet()
	l.getReachableConfigSet(input, s.configs, reach, t)

	if reach.Length() == 0 {
		if !reach.HasSemanticContext() {
			l.addDFAEdge(s, t, ATNSimulatorError, nil)
		}
		return ATNSimulatorError
	}
	return l.addDFAEdge(s, t, nil, reach)
}

func (l *LexerATNSimulator) failOrAccept(prevAccept *simState, input CharStream, reach *ATNConfigSet, t int) int {
	if prevAccept.dfaState != nil {
		executor := prevAccept.dfaState.lexerActionExecutor
		l.accept(input, executor, l.startIndex, prevAccept.index, prevAccept.line, prevAccept.column)
		return prevAccept.dfaState.prediction
	}
	if t == TokenEOF && input.Index() == l.startIndex {
		return TokenEOF
	}
	panic(NewLexerNoViableAltException(l.recog, input, l.startIndex, reach))
}

// getReachableConfigSet computes `reach` (spec GLOSSARY): the configs that
// survive consuming symbol t from configs's closure, deduplicating on
// (state,alt) since only the best context/executor per state matters for
// a lexer (spec §4.6: longest-match never needs more than one winner per
// ATN state).
func (l *LexerATNSimulator) getReachableConfigSet(input CharStream, configs *ATNConfigSet, reach *ATNConfigSet, t int) {
	var skipAlt = ATNInvalidAltNumber
	for _, cfg := range configs.GetItems() {
		c := cfg.(*LexerATNConfig)
		currentAltReachedAcceptState := c.GetAlt() == skipAlt
		if currentAltReachedAcceptState && c.passedThroughNonGreedyDecision {
			continue
		}
		for _, trans := range c.GetState().GetTransitions() {
			if target := l.getReachableTarget(trans, t); target != nil {
				lexerExecutor := c.lexerActionExecutor
				if lexerExecutor != nil {
					lexerExecutor = lexerExecutor.FixOffsetBeforeMatch(input.Index() - l.startIndex)
				}
				treatEofAsEpsilon := t == TokenEOF
				cfgCopy := NewLexerATNConfigDup(c, target)
				cfgCopy.lexerActionExecutor = lexerExecutor
				if l.closure(input, cfgCopy, reach, currentAltReachedAcceptState, true, treatEofAsEpsilon) {
					skipAlt = c.GetAlt()
				}
			}
		}
	}
}

func (l *LexerATNSimulator) accept(input CharStream, executor *LexerActionExecutor, startIndex, index, line, column int) {
	input.Seek(index)
	l.line = line
	l.column = column
	if executor != nil && l.recog != nil {
		executor.Execute(l.recog, input, startIndex)
	}
}

func (l *LexerATNSimulator) getReachableTarget(trans Transition, t int) ATNState {
	if trans.Matches(t, 0, 0x10FFFF) {
		return trans.getTarget()
	}
	return nil
}

func (l *LexerATNSimulator) computeStartState(input CharStream, p ATNState) *ATNConfigSet {
	configs := NewOrderedATNConfigSet()
	for i, t := range p.GetTransitions() {
		target := t.getTarget()
		cfg := NewLexerATNConfig3(target, i+1, BasePredictionContextEMPTY)
		l.closure(input, cfg, configs, false, false, false)
	}
	return configs
}

// closure walks epsilon transitions (spec §4.7's closure, reused for the
// lexer), popping RuleStopState with a non-empty call stack and
// accumulating lexer actions encountered along the way (spec §4.6).
func (l *LexerATNSimulator) closure(input CharStream, config *LexerATNConfig, configs *ATNConfigSet, currentAltReachedAcceptState, speculative, treatEofAsEpsilon bool) bool {
	if _, ok := config.GetState().(*RuleStopState); ok {
		if config.GetContext() != nil && !config.GetContext().hasEmptyPath() {
			ctx := config.GetContext()
			for i := 0; i < ctx.length(); i++ {
				if ctx.getReturnState(i) == predictionContextEmptyReturnState {
					continue
				}
				newContext := ctx.GetParent(i)
				returnState := l.atn.states[ctx.getReturnState(i)]
				cfg := NewLexerATNConfigDup(config, returnState)
				cfg.SetContext(newContext)
				currentAltReachedAcceptState = l.closure(input, cfg, configs, currentAltReachedAcceptState, speculative, treatEofAsEpsilon)
			}
			return currentAltReachedAcceptState
		}
		if config.GetContext() != nil && config.GetContext().hasEmptyPath() {
			// fall through to add config below
		} else {
			return currentAltReachedAcceptState
		}
	}

	if config.GetState().onlyHasEpsilonTransitions() == false {
		if !currentAltReachedAcceptState || !config.passedThroughNonGreedyDecision {
			configs.Add(config, nil)
		}
	}

	for _, t := range config.GetState().GetTransitions() {
		if cfg := l.closureTransition(input, config, t, configs, currentAltReachedAcceptState, speculative, treatEofAsEpsilon); cfg {
			currentAltReachedAcceptState = true
		}
	}
	return currentAltReachedAcceptState
}

func (l *LexerATNSimulator) closureTransition(input CharStream, config *LexerATNConfig, t Transition, configs *ATNConfigSet, currentAltReachedAcceptState, speculative, treatEofAsEpsilon bool) bool {
	var cfg *LexerATNConfig
	switch tt := t.(type) {
	case *RuleTransition:
		newContext := SingletonBasePredictionContextCreate(config.GetContext(), tt.followState.GetStateNumber())
		cfg = NewLexerATNConfigDup(config, tt.getTarget())
		cfg.SetContext(newContext)
	case *PredicateTransition:
		if l.evaluatePredicate(input, tt.ruleIndex, tt.predIndex, speculative) {
			cfg = NewLexerATNConfigDup(config, tt.getTarget())
		}
	case *ActionTransition:
		if config.GetContext() == nil || config.GetContext().hasEmptyPath() {
			executor := LexerActionExecutorAppend(config.lexerActionExecutor, l.atn.lexerActions[tt.actionIndex])
			cfg = NewLexerATNConfigDup(config, tt.getTarget())
			cfg.lexerActionExecutor = executor
		} else {
			cfg = NewLexerATNConfigDup(config, tt.getTarget())
		}
	case *EpsilonTransition:
		cfg = NewLexerATNConfigDup(config, tt.getTarget())
	default:
		if t.getIsEpsilon() {
			cfg = NewLexerATNConfigDup(config, t.getTarget())
		} else if treatEofAsEpsilon && t.Matches(TokenEOF, 0, 0x10FFFF) {
			cfg = NewLexerATNConfigDup(config, t.getTarget())
		}
	}
	if cfg == nil {
		return false
	}
	return l.closure(input, cfg, configs, currentAltReachedAcceptState, speculative, treatEofAsEpsilon)
}

func (l *LexerATNSimulator) evaluatePredicate(input CharStream, ruleIndex, predIndex int, speculative bool) bool {
	if !speculative {
		return l.recog.SempredContext(nil, ruleIndex, predIndex)
	}
	savedCol, savedLine := l.column, l.line
	index := input.Index()
	marker := input.Mark()
	defer func() {
		l.column = savedCol
		l.line = savedLine
		input.Seek(index)
		input.Release(marker)
	}()
	l.Consume(input)
	return l.recog.SempredContext(nil, ruleIndex, predIndex)
}

// addDFAEdge installs edge s->t->q under the DFA's mutex, matching the
// spec §5 discipline: compute, then lock, re-check, install, unlock.
func (l *LexerATNSimulator) addDFAEdge(from *DFAState, tk int, to *DFAState, cfgs *ATNConfigSet) *DFAState {
	if to == nil && cfgs != nil {
		suppressEdge := cfgs.HasSemanticContext()
		cfgs.SetHasSemanticContext(false)
		to = l.addDFAState(cfgs)
		if suppressEdge {
			return to
		}
	}
	dfa := l.DecisionToDFA[l.mode]
	dfa.Lock()
	defer dfa.Unlock()
	if from.edges == nil {
		from.edges = map[int]*DFAState{}
	}
	if existing, ok := from.edges[tk]; ok {
		return existing
	}
	from.edges[tk] = to
	return to
}

// addDFAState canonicalizes configs into a (possibly newly installed)
// DFAState, computing its accept/prediction/lexerActionExecutor fields
// from the winning LexerATNConfig the way spec §4.6 describes.
func (l *LexerATNSimulator) addDFAState(configs *ATNConfigSet) *DFAState {
	proposed := NewDFAState(-1, configs)
	var firstConfigWithRuleStopState ATNConfig
	for _, c := range configs.GetItems() {
		if _, ok := c.GetState().(*RuleStopState); ok {
			firstConfigWithRuleStopState = c
			break
		}
	}
	if firstConfigWithRuleStopState != nil {
		proposed.isAcceptState = true
		proposed.lexerActionExecutor = firstConfigWithRuleStopState.(*LexerATNConfig).lexerActionExecutor
		proposed.prediction = l.atn.ruleToTokenType[firstConfigWithRuleStopState.GetState().GetRuleIndex()]
	}

	dfa := l.DecisionToDFA[l.mode]
	dfa.Lock()
	defer dfa.Unlock()
	return dfa.addState(proposed)
}

func (l *LexerATNSimulator) getDFA(mode int) *DFA { return l.DecisionToDFA[mode] }

func (l *LexerATNSimulator) Consume(input CharStream) {
	if input.LA(1) == int('\n') {
		l.line++
		l.column = 0
	} else {
		l.column++
	}
	input.Consume()
}

func (l *LexerATNSimulator) GetCharPositionInLine() int { return l.column }
func (l *LexerATNSimulator) GetLine() int                { return l.line }

func (l *LexerATNSimulator) captureSimState(settings *simState, input CharStream, dfaState *DFAState) {
	settings.index = input.Index()
	settings.line = l.line
	settings.column = l.column
	settings.dfaState = dfaState
}

func (l *LexerATNSimulator) String() string {
	return fmt.Sprintf("LexerATNSimulator{mode=%d}", l.mode)
}
