// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

// Transition serialization-type tags (spec §3).
const (
	TransitionEpsilon = iota + 1
	TransitionRange
	TransitionRule
	TransitionPredicate
	TransitionAtom
	TransitionAction
	TransitionSet
	TransitionNotSet
	TransitionWildcard
	TransitionPrecedence
)

// Transition is the closed family of ATN edges. Every variant can answer
// "does this edge match input symbol x" (`Matches`); epsilon-only variants
// (Epsilon, Rule, Predicate, Action, Precedence) are matched only during
// closure, never during reach.
type Transition interface {
	getTarget() ATNState
	setTarget(ATNState)
	getIsEpsilon() bool
	getLabel() *IntervalSet
	getSerializationType() int
	Matches(symbol, minVocabSymbol, maxVocabSymbol int) bool
}

type BaseTransition struct {
	target      ATNState
	isEpsilon   bool
	label       int
	intervalSet *IntervalSet
	serializationType int
}

func (t *BaseTransition) getTarget() ATNState   { return t.target }
func (t *BaseTransition) setTarget(s ATNState)  { t.target = s }
func (t *BaseTransition) getIsEpsilon() bool    { return t.isEpsilon }
func (t *BaseTransition) getLabel() *IntervalSet { return t.intervalSet }
func (t *BaseTransition) getSerializationType() int { return t.serializationType }

type EpsilonTransition struct {
	*BaseTransition
	outermostPrecedenceReturn int
}

func NewEpsilonTransition(target ATNState, outermostPrecedenceReturn int) *EpsilonTransition {
	return &EpsilonTransition{
		BaseTransition:            &BaseTransition{target: target, isEpsilon: true, serializationType: TransitionEpsilon},
		outermostPrecedenceReturn: outermostPrecedenceReturn,
	}
}

func (t *EpsilonTransition) Matches(int, int, int) bool { return false }

type RangeTransition struct {
	*BaseTransition
	start, stop int
}

func NewRangeTransition(target ATNState, start, stop int) *RangeTransition {
	t := &RangeTransition{
		BaseTransition: &BaseTransition{target: target, serializationType: TransitionRange},
		start:          start,
		stop:           stop,
	}
	set := NewIntervalSet()
	set.AddRange(start, stop)
	t.intervalSet = set
	return t
}

func (t *RangeTransition) Matches(symbol, _, _ int) bool {
	return symbol >= t.start && symbol <= t.stop
}

type RuleTransition struct {
	*BaseTransition
	ruleIndex   int
	precedence  int
	followState ATNState
}

func NewRuleTransition(ruleStart ATNState, ruleIndex, precedence int, followState ATNState) *RuleTransition {
	return &RuleTransition{
		BaseTransition: &BaseTransition{target: ruleStart, isEpsilon: true, serializationType: TransitionRule},
		ruleIndex:      ruleIndex,
		precedence:     precedence,
		followState:    followState,
	}
}

func (t *RuleTransition) Matches(int, int, int) bool { return false }

type PredicateTransition struct {
	*BaseTransition
	ruleIndex     int
	predIndex     int
	isCtxDependent bool
}

func NewPredicateTransition(target ATNState, ruleIndex, predIndex int, isCtxDependent bool) *PredicateTransition {
	return &PredicateTransition{
		BaseTransition: &BaseTransition{target: target, isEpsilon: true, serializationType: TransitionPredicate},
		ruleIndex:      ruleIndex,
		predIndex:      predIndex,
		isCtxDependent: isCtxDependent,
	}
}

func (t *PredicateTransition) Matches(int, int, int) bool { return false }

func (t *PredicateTransition) getPredicate() *Predicate {
	return NewPredicate(t.ruleIndex, t.predIndex, t.isCtxDependent)
}

type ActionTransition struct {
	*BaseTransition
	ruleIndex       int
	actionIndex     int
	isCtxDependent  bool
}

func NewActionTransition(target ATNState, ruleIndex, actionIndex int, isCtxDependent bool) *ActionTransition {
	return &ActionTransition{
		BaseTransition: &BaseTransition{target: target, isEpsilon: true, serializationType: TransitionAction},
		ruleIndex:      ruleIndex,
		actionIndex:    actionIndex,
		isCtxDependent: isCtxDependent,
	}
}

func (t *ActionTransition) Matches(int, int, int) bool { return false }

type AtomTransition struct {
	*BaseTransition
}

func NewAtomTransition(target ATNState, label int) *AtomTransition {
	t := &AtomTransition{BaseTransition: &BaseTransition{target: target, label: label, serializationType: TransitionAtom}}
	set := NewIntervalSet()
	set.AddOne(label)
	t.intervalSet = set
	return t
}

func (t *AtomTransition) Matches(symbol, _, _ int) bool { return symbol == t.label }

type SetTransition struct {
	*BaseTransition
}

func NewSetTransition(target ATNState, set *IntervalSet) *SetTransition {
	if set == nil {
		set = NewIntervalSet()
		set.AddOne(TokenInvalidType)
	}
	return &SetTransition{BaseTransition: &BaseTransition{target: target, intervalSet: set, serializationType: TransitionSet}}
}

func (t *SetTransition) Matches(symbol, _, _ int) bool { return t.intervalSet.Contains(symbol) }

type NotSetTransition struct {
	*SetTransition
}

func NewNotSetTransition(target ATNState, set *IntervalSet) *NotSetTransition {
	t := &NotSetTransition{SetTransition: NewSetTransition(target, set)}
	t.serializationType = TransitionNotSet
	return t
}

func (t *NotSetTransition) Matches(symbol, minVocab, maxVocab int) bool {
	return symbol >= minVocab && symbol <= maxVocab && !t.intervalSet.Contains(symbol)
}

type WildcardTransition struct {
	*BaseTransition
}

func NewWildcardTransition(target ATNState) *WildcardTransition {
	return &WildcardTransition{BaseTransition: &BaseTransition{target: target, serializationType: TransitionWildcard}}
}

func (t *WildcardTransition) Matches(symbol, minVocab, maxVocab int) bool {
	return symbol >= minVocab && symbol <= maxVocab
}

type PrecedencePredicateTransition struct {
	*BaseTransition
	precedence int
}

func NewPrecedencePredicateTransition(target ATNState, precedence int) *PrecedencePredicateTransition {
	return &PrecedencePredicateTransition{
		BaseTransition: &BaseTransition{target: target, isEpsilon: true, serializationType: TransitionPrecedence},
		precedence:     precedence,
	}
}

func (t *PrecedencePredicateTransition) Matches(int, int, int) bool { return false }

func (t *PrecedencePredicateTransition) getPredicate() *PrecedencePredicate {
	return NewPrecedencePredicate(t.precedence)
}
