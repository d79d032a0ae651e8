// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

import "fmt"

// ATNDeserializer reads the compact integer payload described in spec §6
// into a live *ATN graph, then runs the post-processing passes of spec
// §4.4: resolve transition targets, wire RuleTransition follow states,
// and mark non-greedy/precedence decisions. It does not precompute or
// check RuleStopState FOLLOW sets.
type ATNDeserializer struct {
	options ATNDeserializationOptions
	data    []int32
	pos     int
}

// ATNDeserializationOptions is the configuration surface for
// deserialization (SPEC_FULL ambient-stack note): whether to run the
// (expensive, debug-only) ATN verification pass and whether to generate
// rule-bypass transitions used by parse-tree pattern matching.
type ATNDeserializationOptions struct {
	VerifyATN                          bool
	GenerateRuleBypassTransitions bool
}

func DefaultATNDeserializationOptions() ATNDeserializationOptions {
	return ATNDeserializationOptions{VerifyATN: true}
}

// serializedATNVersion is the sentinel version byte guarding compatibility
// (spec §4.4): unknown/forward versions fail fast rather than silently
// misinterpreting the payload.
const serializedATNVersion = 4

func NewATNDeserializer(options ATNDeserializationOptions) *ATNDeserializer {
	return &ATNDeserializer{options: options}
}

// Deserialize consumes data (already unescaped from the wire's 16-bit
// little-endian words per spec §6's integer-encoding rule) and returns the
// fully linked, immutable ATN.
func (d *ATNDeserializer) Deserialize(data []int32) *ATN {
	d.data = data
	d.pos = 0

	d.checkVersion()
	uuid := d.readUUID()
	_ = uuid // read past and discarded; the UUID is not compared to any constant

	grammarType := ATNType(d.readInt())
	maxTokenType := d.readInt()
	atn := NewATN(grammarType, maxTokenType)

	d.readStates(atn)
	d.readRules(atn)
	d.readModes(atn)

	sets := d.readSets(atn, true)
	sets = append(sets, d.readSets(atn, false)...)

	d.readEdges(atn, sets)
	d.readDecisions(atn)

	if grammarType == ATNTypeLexer {
		d.readLexerActions(atn)
	}

	d.markPrecedenceDecisions(atn)
	d.verifyATN(atn)
	if d.options.GenerateRuleBypassTransitions && grammarType == ATNTypeParser {
		d.generateRuleBypassTransitions(atn)
		d.verifyATN(atn)
	}
	return atn
}

func (d *ATNDeserializer) checkVersion() {
	version := d.readInt()
	if version != serializedATNVersion {
		panic(fmt.Sprintf("UnsupportedOperation: could not deserialize ATN with version %d (expected %d)", version, serializedATNVersion))
	}
}

func (d *ATNDeserializer) readUUID() []byte {
	uuid := make([]byte, 16)
	for i := 0; i < 8; i++ {
		v := d.readInt()
		uuid[2*i] = byte(v)
		uuid[2*i+1] = byte(v >> 8)
	}
	return uuid
}

func (d *ATNDeserializer) readInt() int {
	v := d.data[d.pos]
	d.pos++
	return int(v)
}

func (d *ATNDeserializer) readStates(atn *ATN) {
	loopBackStateNumbers := map[int]int{}
	endStateNumbers := map[int]int{}

	numStates := d.readInt()
	for i := 0; i < numStates; i++ {
		stype := d.readInt()
		if stype == ATNStateInvalid {
			atn.addState(nil)
			continue
		}
		ruleIndex := d.readInt()
		if ruleIndex == 0xFFFF {
			ruleIndex = -1
		}
		s := newATNStateOfType(stype)
		s.SetRuleIndex(ruleIndex)

		if stype == ATNStateLoopEnd {
			loopBackStateNumbers[i] = d.readInt()
		} else {
			switch s.(type) {
			case *PlusBlockStartState, *StarBlockStartState, *BasicBlockStartState:
				endStateNumbers[i] = d.readInt()
			}
		}
		atn.addState(s)
	}

	// Non-greedy / precedence markers back-patches (spec §6 segment 4).
	numNonGreedy := d.readInt()
	for i := 0; i < numNonGreedy; i++ {
		stateNumber := d.readInt()
		atn.states[stateNumber].(DecisionState).setNonGreedy(true)
	}

	numPrecedence := d.readInt()
	for i := 0; i < numPrecedence; i++ {
		stateNumber := d.readInt()
		if sl, ok := atn.states[stateNumber].(*StarLoopEntryState); ok {
			sl.isPrecedenceDecision = true
		}
	}

	for stateNumber, endStateNumber := range endStateNumbers {
		state := atn.states[stateNumber]
		switch st := state.(type) {
		case *PlusBlockStartState:
			st.endState = atn.states[endStateNumber].(*BlockEndState)
		case *StarBlockStartState:
			st.endState = atn.states[endStateNumber].(*BlockEndState)
		case *BasicBlockStartState:
			st.endState = atn.states[endStateNumber].(*BlockEndState)
		}
	}
	for stateNumber, loopBackNumber := range loopBackStateNumbers {
		end := atn.states[stateNumber].(*LoopEndState)
		end.loopBackState = atn.states[loopBackNumber]
	}
}

func newATNStateOfType(stype int) ATNState {
	switch stype {
	case ATNStateBasic:
		return NewBasicState()
	case ATNStateRuleStart:
		return NewRuleStartState()
	case ATNStateBlockStart:
		return NewBasicBlockStartState()
	case ATNStatePlusBlockStart:
		return NewPlusBlockStartState()
	case ATNStateStarBlockStart:
		return NewStarBlockStartState()
	case ATNStateTokenStart:
		return NewTokensStartState()
	case ATNStateRuleStop:
		return NewRuleStopState()
	case ATNStateBlockEnd:
		return NewBlockEndState()
	case ATNStateStarLoopBack:
		return NewStarLoopbackState()
	case ATNStateStarLoopEntry:
		return NewStarLoopEntryState()
	case ATNStatePlusLoopBack:
		return NewPlusLoopbackState()
	case ATNStateLoopEnd:
		return NewLoopEndState()
	default:
		panic(fmt.Sprintf("IllegalState: unknown ATN state type %d", stype))
	}
}

func (d *ATNDeserializer) readRules(atn *ATN) {
	numRules := d.readInt()
	if atn.grammarType == ATNTypeLexer {
		atn.ruleToTokenType = make([]int, numRules)
	}
	atn.ruleToStartState = make([]*RuleStartState, numRules)
	for i := 0; i < numRules; i++ {
		startState := d.readInt()
		ruleStart := atn.states[startState].(*RuleStartState)
		atn.ruleToStartState[i] = ruleStart
		if atn.grammarType == ATNTypeLexer {
			tokenType := d.readInt()
			atn.ruleToTokenType[i] = tokenType
		}
	}
	atn.ruleToStopState = make([]*RuleStopState, numRules)
	for _, s := range atn.states {
		stop, ok := s.(*RuleStopState)
		if !ok {
			continue
		}
		atn.ruleToStopState[stop.GetRuleIndex()] = stop
		atn.ruleToStartState[stop.GetRuleIndex()].stopState = stop
	}
}

func (d *ATNDeserializer) readModes(atn *ATN) {
	numModes := d.readInt()
	for i := 0; i < numModes; i++ {
		s := d.readInt()
		atn.modeToStartState = append(atn.modeToStartState, atn.states[s].(*TokensStartState))
	}
}

func (d *ATNDeserializer) readSets(atn *ATN, bmp bool) []*IntervalSet {
	numSets := d.readInt()
	sets := make([]*IntervalSet, numSets)
	for i := 0; i < numSets; i++ {
		set := NewIntervalSet()
		sets[i] = set
		containsEof := d.readInt() != 0
		if containsEof {
			set.AddOne(TokenEOF)
		}
		numIntervals := d.readInt()
		for j := 0; j < numIntervals; j++ {
			a := d.readInt()
			b := d.readInt()
			set.AddRange(a, b)
		}
	}
	return sets
}

func (d *ATNDeserializer) readEdges(atn *ATN, sets []*IntervalSet) {
	numEdges := d.readInt()
	for i := 0; i < numEdges; i++ {
		src := d.readInt()
		trg := d.readInt()
		ttype := d.readInt()
		arg1 := d.readInt()
		arg2 := d.readInt()
		arg3 := d.readInt()
		transition := d.edgeFactory(atn, ttype, src, trg, arg1, arg2, arg3, sets)
		srcState := atn.states[src]
		srcState.AddTransition(transition, -1)
	}
	// RuleTransition.followState is already wired at construction time
	// (edgeFactory passes the follow target straight through); step 2 of
	// spec §4.4 is therefore a no-op pass over an already-consistent graph.
}

func (d *ATNDeserializer) edgeFactory(atn *ATN, ttype, src, trg, arg1, arg2, arg3 int, sets []*IntervalSet) Transition {
	target := atn.states[trg]
	switch ttype {
	case TransitionEpsilon:
		return NewEpsilonTransition(target, arg1)
	case TransitionRange:
		if arg3 != 0 {
			return NewRangeTransition(target, TokenEOF, arg2)
		}
		return NewRangeTransition(target, arg1, arg2)
	case TransitionRule:
		return NewRuleTransition(atn.states[arg1], arg2, arg3, target)
	case TransitionPredicate:
		return NewPredicateTransition(target, arg1, arg2, arg3 != 0)
	case TransitionPrecedence:
		return NewPrecedencePredicateTransition(target, arg1)
	case TransitionAtom:
		if arg3 != 0 {
			return NewAtomTransition(target, TokenEOF)
		}
		return NewAtomTransition(target, arg1)
	case TransitionAction:
		return NewActionTransition(target, arg1, arg2, arg3 != 0)
	case TransitionSet:
		return NewSetTransition(target, sets[arg1])
	case TransitionNotSet:
		return NewNotSetTransition(target, sets[arg1])
	case TransitionWildcard:
		return NewWildcardTransition(target)
	default:
		panic(fmt.Sprintf("IllegalState: invalid transition type %d", ttype))
	}
}

func (d *ATNDeserializer) readDecisions(atn *ATN) {
	numDecisions := d.readInt()
	for i := 0; i < numDecisions; i++ {
		s := d.readInt()
		decState := atn.states[s].(DecisionState)
		atn.DecisionToState = append(atn.DecisionToState, decState)
		decState.setDecision(i)
	}
}

func (d *ATNDeserializer) readLexerActions(atn *ATN) {
	numActions := d.readInt()
	atn.lexerActions = make([]LexerAction, numActions)
	for i := 0; i < numActions; i++ {
		actionType := d.readInt()
		data1 := d.readInt()
		data2 := d.readInt()
		atn.lexerActions[i] = d.lexerActionFactory(actionType, data1, data2)
	}
}

func (d *ATNDeserializer) lexerActionFactory(actionType, data1, data2 int) LexerAction {
	switch actionType {
	case LexerActionTypeChannel:
		return NewLexerChannelAction(data1)
	case LexerActionTypeCustom:
		return NewLexerCustomAction(data1, data2)
	case LexerActionTypeMode:
		return NewLexerModeAction(data1)
	case LexerActionTypeMore:
		return LexerMoreActionINSTANCE
	case LexerActionTypePopMode:
		return LexerPopModeActionINSTANCE
	case LexerActionTypePushMode:
		return NewLexerPushModeAction(data1)
	case LexerActionTypeSkip:
		return LexerSkipActionINSTANCE
	case LexerActionTypeType:
		return NewLexerTypeAction(data1)
	default:
		panic(fmt.Sprintf("IllegalState: invalid lexer action type %d", actionType))
	}
}

// markPrecedenceDecisions implements spec §4.4 step 4 for rules that were
// not already flagged by the explicit precedence-marker segment: any
// star-loop-entry whose loopback state begins a left-recursive rule's
// alternative-selection decision is itself a precedence decision.
func (d *ATNDeserializer) markPrecedenceDecisions(atn *ATN) {
	for _, state := range atn.states {
		sl, ok := state.(*StarLoopEntryState)
		if !ok {
			continue
		}
		if sl.loopBackState == nil {
			continue
		}
		maybeLoopEnd, ok := sl.loopBackState.GetTransitions()[0].getTarget().(*LoopEndState)
		if !ok {
			continue
		}
		if _, ok := maybeLoopEnd.GetTransitions()[0].getTarget().(*RuleStopState); !ok {
			continue
		}
		ruleStart := atn.ruleToStartState[sl.GetRuleIndex()]
		if ruleStart != nil && ruleStart.isLeftRecursive {
			sl.isPrecedenceDecision = true
		}
	}
}

func (d *ATNDeserializer) verifyATN(atn *ATN) {
	if !d.options.VerifyATN {
		return
	}
	for _, state := range atn.states {
		if state == nil {
			continue
		}
		d.checkCondition(state.onlyHasEpsilonTransitions() || len(state.GetTransitions()) <= 1)

		switch state.(type) {
		case *PlusBlockStartState:
			d.checkCondition(state.(*PlusBlockStartState).endState != nil)
		case *StarLoopEntryState:
			s := state.(*StarLoopEntryState)
			d.checkCondition(s.loopBackState != nil)
			d.checkCondition(len(s.GetTransitions()) == 2)
		}

		for _, t := range state.GetTransitions() {
			if t.getTarget().GetATN() != nil {
				d.checkCondition(t.getTarget().GetATN() == atn)
			}
		}
	}
}

func (d *ATNDeserializer) checkCondition(cond bool) {
	if !cond {
		panic("IllegalState: ATN verification failed")
	}
}

// generateRuleBypassTransitions synthesizes, for every rule, a parallel
// "bypass" path that matches the rule's synthetic token type directly
// instead of descending into its real alternatives (spec §4.4's tree
// pattern matching support: a bypass ATN lets `ParseTreePattern` match a
// rule reference as one atom without re-deriving its internal structure).
func (d *ATNDeserializer) generateRuleBypassTransitions(atn *ATN) {
	count := len(atn.ruleToStartState)
	atn.ruleToTokenType = make([]int, count)
	for i := 0; i < count; i++ {
		atn.ruleToTokenType[i] = atn.maxTokenType + i + 1
	}
	for i := 0; i < count; i++ {
		d.generateRuleBypassTransition(atn, i)
	}
}

func (d *ATNDeserializer) generateRuleBypassTransition(atn *ATN, idx int) {
	bypassStart := NewBasicBlockStartState()
	bypassStart.ruleIndex = idx
	atn.addState(bypassStart)

	bypassStop := NewBlockEndState()
	bypassStop.ruleIndex = idx
	atn.addState(bypassStop)

	bypassStart.endState = bypassStop
	atn.defineDecisionState(bypassStart)

	bypassStop.startState = bypassStart

	var excludeTransition Transition
	var endState ATNState

	ruleStart := atn.ruleToStartState[idx]
	if ruleStart.isLeftRecursive {
		// Wrap only the left-recursion prefix: everything up to the
		// StarLoopEntryState that feeds straight into the rule stop.
		endState = nil
		for _, s := range atn.states {
			if s == nil || s.GetRuleIndex() != idx {
				continue
			}
			entry, ok := s.(*StarLoopEntryState)
			if !ok {
				continue
			}
			transitions := entry.GetTransitions()
			maybeLoopEnd := transitions[len(transitions)-1].getTarget()
			loopEnd, ok := maybeLoopEnd.(*LoopEndState)
			if !ok {
				continue
			}
			loopEndTransitions := loopEnd.GetTransitions()
			if loopEnd.onlyHasEpsilonTransitions() && len(loopEndTransitions) > 0 {
				if _, ok := loopEndTransitions[0].getTarget().(*RuleStopState); ok {
					endState = entry
					break
				}
			}
		}
		if endState == nil {
			panic("UnsupportedOperation: couldn't identify final state of the precedence rule prefix section.")
		}
		excludeTransition = entryLoopBackTransition(endState.(*StarLoopEntryState))
	} else {
		endState = atn.ruleToStopState[idx]
	}

	// Every transition that currently targets endState (other than the
	// excluded loop-back edge of a left-recursive rule) now targets
	// bypassStop instead.
	for _, s := range atn.states {
		if s == nil {
			continue
		}
		for _, t := range s.GetTransitions() {
			if t == excludeTransition {
				continue
			}
			if t.getTarget() == endState {
				t.setTarget(bypassStop)
			}
		}
	}

	// Every transition leaving the rule start state now leaves bypassStart
	// instead.
	for _, t := range ruleStart.GetTransitions() {
		bypassStart.AddTransition(t, -1)
	}
	ruleStart.SetTransitions(nil)
	ruleStart.AddTransition(NewEpsilonTransition(bypassStart, -1), -1)
	bypassStop.AddTransition(NewEpsilonTransition(endState, -1), -1)

	matchState := NewBasicState()
	atn.addState(matchState)
	matchState.AddTransition(NewAtomTransition(bypassStop, atn.ruleToTokenType[idx]), -1)
	bypassStart.AddTransition(NewEpsilonTransition(matchState, -1), -1)
}

func entryLoopBackTransition(entry *StarLoopEntryState) Transition {
	transitions := entry.loopBackState.GetTransitions()
	return transitions[0]
}
