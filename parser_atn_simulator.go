// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

// ParserATNSimulator implements the ALL(*) adaptive prediction algorithm
// of spec §4.7: an SLL simulation first, falling back to a full-context
// (LL) simulation only when SLL can't resolve a unique alt, with a
// per-decision DFA cache shared across every parse using the same
// decision (spec §5).
type ParserATNSimulator struct {
	*ATNSimulator

	parser Parser

	predictionMode PredictionMode
	decisionToDFA  []*DFA

	mergeCache *mergeCache
}

func NewParserATNSimulator(parser Parser, atn *ATN, decisionToDFA []*DFA, sharedContextCache *PredictionContextCache) *ParserATNSimulator {
	return &ParserATNSimulator{
		ATNSimulator:   NewATNSimulator(atn, sharedContextCache),
		parser:         parser,
		decisionToDFA:  decisionToDFA,
		predictionMode: PredictionModeLL,
	}
}

// AdaptivePredict is the public entry point generated rule methods call
// at every decision point (spec §4.7): it returns the 1-based alt number
// to take, installing/reusing DFA state along the way.
func (p *ParserATNSimulator) AdaptivePredict(input TokenStream, decision int, outerContext ParserRuleContext) int {
	dfa := p.decisionToDFA[decision]
	m := input.Mark()
	index := input.Index()
	defer func() {
		input.Seek(index)
		input.Release(m)
	}()

	if outerContext == nil {
		outerContext = ParserRuleContextEmpty
	}

	dfa.Lock()
	s0 := dfa.s0
	if dfa.precedenceDfa {
		s0 = dfa.s0Precedence[p.parser.GetPrecedence()]
	}
	dfa.Unlock()

	if s0 == nil {
		fullCtx := false
		s0Closure := p.computeStartState(dfa.atnStartState, ParserRuleContextEmpty, fullCtx)
		dfa.Lock()
		if dfa.precedenceDfa {
			s0Closure = p.applyPrecedenceFilter(s0Closure)
			s0 = p.addDFAState(dfa, NewDFAState(-1, s0Closure))
			dfa.SetPrecedenceStartState(p.parser.GetPrecedence(), s0)
		} else {
			s0 = p.addDFAState(dfa, NewDFAState(-1, s0Closure))
			dfa.s0 = s0
		}
		dfa.Unlock()
	}

	alt := p.execATN(dfa, s0, input, index, outerContext)
	return alt
}

func (p *ParserATNSimulator) execATN(dfa *DFA, s0 *DFAState, input TokenStream, startIndex int, outerContext ParserRuleContext) int {
	previousD := s0
	t := input.LA(1)

	for {
		D := p.getExistingTargetState(previousD, t)
		if D == nil {
			D = p.computeTargetState(dfa, previousD, t)
		}
		if D == ATNSimulatorError {
			panic(p.noViableAlt(input, outerContext, previousD.configs, startIndex))
		}
		if D.requiresFullContext && p.predictionMode != PredictionModeSLL {
			conflictingAlts := D.configs.GetConflictingAlts()
			if D.predicates != nil {
				conflictIndex := input.Index()
				if conflictIndex != startIndex {
					input.Seek(startIndex)
				}
				conflictingAlts = p.evalSemanticContext(D.predicates, outerContext, true)
				if conflictingAlts.Len() == 1 {
					return conflictingAlts.Values()[0]
				}
			}
			return p.execATNWithFullContext(dfa, D, previousD.configs, input, startIndex, outerContext)
		}
		if D.isAcceptState {
			if D.predicates == nil {
				return D.prediction
			}
			stopIndex := input.Index()
			input.Seek(startIndex)
			alts := p.evalSemanticContext(D.predicates, outerContext, true)
			switch alts.Len() {
			case 0:
				panic(p.noViableAlt(input, outerContext, D.configs, startIndex))
			case 1:
				return alts.Values()[0]
			default:
				input.Seek(stopIndex)
				return alts.Values()[0]
			}
		}
		previousD = D
		if t != TokenEOF {
			input.Consume()
			t = input.LA(1)
		}
	}
}

func (p *ParserATNSimulator) getExistingTargetState(previousD *DFAState, t int) *DFAState {
	if previousD.edges == nil {
		return nil
	}
	target, ok := previousD.edges[t]
	if !ok {
		return nil
	}
	return target
}

func (p *ParserATNSimulator) computeTargetState(dfa *DFA, previousD *DFAState, t int) *DFAState {
	reach := p.computeReachSet(previousD.configs, t, false)
	if reach == nil {
		p.addDFAEdge(dfa, previousD, t, ATNSimulatorError)
		return ATNSimulatorError
	}

	D := NewDFAState(-1, reach)
	predictedAlt := p.getUniqueAlt(reach)
	switch {
	case predictedAlt != ATNInvalidAltNumber:
		D.isAcceptState = true
		D.prediction = predictedAlt
	case p.hasConflictTerminatingPrediction(reach):
		altsets := getConflictingAltSubsets(reach)
		D.configs.SetConflictingAlts(p.getAltsFromSets(altsets))
		D.requiresFullContext = true
		D.isAcceptState = true
		D.prediction = D.configs.GetConflictingAlts().Values()[0]
	}
	return p.addDFAEdge(dfa, previousD, t, D)
}

func (p *ParserATNSimulator) hasConflictTerminatingPrediction(configs *ATNConfigSet) bool {
	return hasSLLConflictTerminatingPrediction(p.predictionMode, configs)
}

func (p *ParserATNSimulator) getAltsFromSets(altsets []*BitSet) *BitSet {
	return getAlts(altsets)
}

func (p *ParserATNSimulator) getUniqueAlt(configs *ATNConfigSet) int {
	return getUniqueAlt(configs)
}

// execATNWithFullContext is the LL fallback (spec §4.7 LL.1-LL.3): replay
// from startIndex with the real call-stack context, resolve any
// remaining ambiguity by taking the minimum alt, and report whichever of
// reportAttemptingFullContext/reportContextSensitivity/reportAmbiguity
// applies.
func (p *ParserATNSimulator) execATNWithFullContext(dfa *DFA, D *DFAState, s0 *ATNConfigSet, input TokenStream, startIndex int, outerContext ParserRuleContext) int {
	reportedAmbiguity := false
	fullCtx := true

	s0Closure := p.computeStartState(dfa.atnStartState, outerContext, fullCtx)
	p.reportAttemptingFullContext(dfa, nil, s0Closure, startIndex, input.Index())

	input.Seek(startIndex)
	t := input.LA(1)
	previous := s0Closure
	var reach *ATNConfigSet

	for {
		reach = p.computeReachSet(previous, t, fullCtx)
		if reach == nil {
			panic(p.noViableAlt(input, outerContext, previous, startIndex))
		}
		altSubsets := getConflictingAltSubsets(reach)
		reach.SetUniqueAlt(p.getUniqueAlt(reach))
		if reach.GetUniqueAlt() != ATNInvalidAltNumber {
			break
		}
		if p.predictionMode != PredictionModeLLExactAmbigDetection {
			if predictionModeResolvesToJustOneViableAlt(altSubsets) != ATNInvalidAltNumber {
				reach.SetUniqueAlt(predictionModeResolvesToJustOneViableAlt(altSubsets))
				break
			}
		} else if allSubsetsConflict(altSubsets) && !hasNonConflictingAltSet(altSubsets) {
			// Every partition has genuinely conflicted and none resolved to a
			// single alt on its own: this is the LLExactAmbigDetection fixed
			// point, not just a heuristic single-viable-alt resolution.
			reportedAmbiguity = true
			reach.SetUniqueAlt(getSingleViableAlt(altSubsets))
			break
		}
		previous = reach
		if t != TokenEOF {
			input.Consume()
			t = input.LA(1)
		} else {
			break
		}
	}

	if reach.GetUniqueAlt() != ATNInvalidAltNumber {
		p.reportContextSensitivity(dfa, reach.GetUniqueAlt(), reach, startIndex, input.Index())
		return reach.GetUniqueAlt()
	}

	alts := getAlts(getConflictingAltSubsets(reach))
	p.reportAmbiguity(dfa, D, startIndex, input.Index(), reportedAmbiguity, alts, reach)
	return alts.Values()[0]
}

func predictionModeResolvesToJustOneViableAlt(altsets []*BitSet) int {
	return resolvesToJustOneViableAlt(altsets)
}

// computeStartState seeds the closure for a decision: one config per
// alternative leaving the decision state, alt number = alt index.
func (p *ParserATNSimulator) computeStartState(a DecisionState, ctx RuleContext, fullCtx bool) *ATNConfigSet {
	initialContext := predictionContextFromRuleContext(p.atn, ctx)
	configs := NewATNConfigSet(fullCtx)
	for i, t := range a.GetTransitions() {
		target := t.getTarget()
		c := NewATNConfig5(target, i+1, initialContext)
		closureBusy := newClosureBusySet()
		p.closure(c, configs, closureBusy, true, fullCtx, false)
	}
	return configs
}

// closureBusySet guards against infinite recursion when a
// PredictionContext graph is cyclic (spec §4.2 "contexts may be
// cyclic"): closureWork refuses to re-expand a (state, alt, context) it
// has already seen in this closure computation.
type closureBusySet struct {
	seen map[closureBusyKey]bool
}

type closureBusyKey struct {
	state int
	alt   int
	ctx   PredictionContext
}

func newClosureBusySet() *closureBusySet { return &closureBusySet{seen: map[closureBusyKey]bool{}} }

func (s *closureBusySet) visit(config ATNConfig) bool {
	key := closureBusyKey{config.GetState().GetStateNumber(), config.GetAlt(), config.GetContext()}
	if s.seen[key] {
		return false
	}
	s.seen[key] = true
	return true
}

// closure walks epsilon transitions to produce the subset-construction
// closure of a single config, popping RuleStopState with a SLL "pretend
// wildcard" fallback when the context is empty and fullCtx is false
// (spec §4.7's "epsilon closure over the ATN").
func (p *ParserATNSimulator) closure(config ATNConfig, configs *ATNConfigSet, closureBusy *closureBusySet, collectPredicates, fullCtx, treatEofAsEpsilon bool) {
	p.closureCheckingStopState(config, configs, closureBusy, collectPredicates, fullCtx, 0, treatEofAsEpsilon)
}

func (p *ParserATNSimulator) closureCheckingStopState(config ATNConfig, configs *ATNConfigSet, closureBusy *closureBusySet, collectPredicates, fullCtx bool, depth int, treatEofAsEpsilon bool) {
	if _, ok := config.GetState().(*RuleStopState); ok {
		if config.GetContext() != nil && !config.GetContext().isEmpty() {
			for i := 0; i < config.GetContext().length(); i++ {
				if config.GetContext().getReturnState(i) == predictionContextEmptyReturnState {
					if fullCtx {
						configs.Add(NewATNConfigDup(config, nil, BasePredictionContextEMPTY, nil), p.mergeCache)
						continue
					}
					p.closureWork(config, configs, closureBusy, collectPredicates, fullCtx, depth, treatEofAsEpsilon)
					continue
				}
				returnState := p.atn.states[config.GetContext().getReturnState(i)]
				newContext := config.GetContext().GetParent(i)
				c := NewATNConfig1(returnState, config.GetAlt(), newContext, config.GetSemanticContext())
				c.SetReachesIntoOuterContext(config.GetReachesIntoOuterContext())
				p.closureCheckingStopState(c, configs, closureBusy, collectPredicates, fullCtx, depth-1, treatEofAsEpsilon)
			}
			return
		}
		if fullCtx {
			configs.Add(config, p.mergeCache)
			return
		}
	}
	p.closureWork(config, configs, closureBusy, collectPredicates, fullCtx, depth, treatEofAsEpsilon)
}

func (p *ParserATNSimulator) closureWork(config ATNConfig, configs *ATNConfigSet, closureBusy *closureBusySet, collectPredicates, fullCtx bool, depth int, treatEofAsEpsilon bool) {
	if !closureBusy.visit(config) {
		return
	}
	state := config.GetState()
	if !state.onlyHasEpsilonTransitions() {
		configs.Add(config, p.mergeCache)
	}
	for _, t := range state.GetTransitions() {
		if depth == 0 {
			if _, ok := t.(*RuleTransition); !ok && treatEofAsEpsilon {
				if t.Matches(TokenEOF, 0, 1) {
					continue
				}
			}
		}
		c := p.getEpsilonTarget(config, t, collectPredicates, depth == 0, fullCtx, treatEofAsEpsilon)
		if c == nil {
			continue
		}
		if _, ok := t.(*RuleTransition); ok {
			newDepth := depth + 1
			p.closureCheckingStopState(c, configs, closureBusy, collectPredicates, fullCtx, newDepth, treatEofAsEpsilon)
		} else {
			p.closureCheckingStopState(c, configs, closureBusy, collectPredicates, fullCtx, depth, treatEofAsEpsilon)
		}
	}
}

func (p *ParserATNSimulator) getEpsilonTarget(config ATNConfig, t Transition, collectPredicates, inContext, fullCtx, treatEofAsEpsilon bool) ATNConfig {
	switch tr := t.(type) {
	case *RuleTransition:
		newContext := SingletonBasePredictionContextCreate(config.GetContext(), tr.followState.GetStateNumber())
		return NewATNConfig1(tr.getTarget(), config.GetAlt(), newContext, config.GetSemanticContext())
	case *PredicateTransition:
		if collectPredicates {
			newSemCtx := SemanticContextAnd(config.GetSemanticContext(), tr.getPredicate())
			return NewATNConfig1(tr.getTarget(), config.GetAlt(), config.GetContext(), newSemCtx)
		}
		return NewATNConfig5(tr.getTarget(), config.GetAlt(), config.GetContext())
	case *PrecedencePredicateTransition:
		if collectPredicates {
			newSemCtx := SemanticContextAnd(config.GetSemanticContext(), tr.getPredicate())
			return NewATNConfig1(tr.getTarget(), config.GetAlt(), config.GetContext(), newSemCtx)
		}
		return NewATNConfig5(tr.getTarget(), config.GetAlt(), config.GetContext())
	case *ActionTransition:
		return NewATNConfig5(tr.getTarget(), config.GetAlt(), config.GetContext())
	default:
		if t.getIsEpsilon() {
			return NewATNConfig5(t.getTarget(), config.GetAlt(), config.GetContext())
		}
		if treatEofAsEpsilon && t.Matches(TokenEOF, 0, 1) {
			return NewATNConfig5(t.getTarget(), config.GetAlt(), config.GetContext())
		}
		return nil
	}
}

// computeReachSet consumes symbol t from every config in closure and
// returns the new closure of survivors, or nil when nothing survives
// (spec §4.7's per-step "reach then closure").
func (p *ParserATNSimulator) computeReachSet(closure *ATNConfigSet, t int, fullCtx bool) *ATNConfigSet {
	intermediate := NewATNConfigSet(fullCtx)
	var skippedStopStates []ATNConfig

	for _, c := range closure.GetItems() {
		if _, ok := c.GetState().(*RuleStopState); ok {
			if c.GetContext() == nil || c.GetContext().hasEmptyPath() {
				skippedStopStates = append(skippedStopStates, c)
			}
			continue
		}
		for _, tr := range c.GetState().GetTransitions() {
			if target := p.getReachableTarget(tr, t); target != nil {
				cfg := NewATNConfig5(target, c.GetAlt(), c.GetContext())
				cfg.SetReachesIntoOuterContext(c.GetReachesIntoOuterContext())
				cfg.SetPrecedenceFilterSuppressed(c.GetPrecedenceFilterSuppressed())
				intermediate.Add(cfg, p.mergeCache)
			}
		}
	}

	var reach *ATNConfigSet
	if skippedStopStates == nil && t != TokenEOF {
		if intermediate.Length() == 1 {
			reach = intermediate
		}
	}
	if reach == nil {
		reach = NewATNConfigSet(fullCtx)
		closureBusy := newClosureBusySet()
		for _, c := range intermediate.GetItems() {
			p.closure(c, reach, closureBusy, false, fullCtx, true)
		}
	}
	if t == TokenEOF {
		reach = p.removeAllConfigsNotInRuleStopState(reach, fullCtx)
	}
	for _, c := range skippedStopStates {
		reach.Add(c, p.mergeCache)
	}
	if reach.IsEmpty() {
		return nil
	}
	return reach
}

func (p *ParserATNSimulator) removeAllConfigsNotInRuleStopState(configs *ATNConfigSet, fullCtx bool) *ATNConfigSet {
	out := NewATNConfigSet(fullCtx)
	for _, c := range configs.GetItems() {
		if _, ok := c.GetState().(*RuleStopState); ok {
			out.Add(c, p.mergeCache)
			continue
		}
	}
	return out
}

func (p *ParserATNSimulator) getReachableTarget(tr Transition, ttype int) ATNState {
	if tr.Matches(ttype, 0, p.atn.maxTokenType) {
		return tr.getTarget()
	}
	return nil
}

// applyPrecedenceFilter strips configs whose guarding precedence
// predicate can never hold at the current invocation's precedence level
// (spec §6 "left-recursive rules filter their own start state by
// precedence"), keeping the first (highest-priority) alt per state.
func (p *ParserATNSimulator) applyPrecedenceFilter(configs *ATNConfigSet) *ATNConfigSet {
	statesFromAlt1 := map[int]PredictionContext{}
	out := NewATNConfigSet(configs.FullContext())
	for _, c := range configs.GetItems() {
		if c.GetAlt() != 1 {
			continue
		}
		pred := c.GetSemanticContext().evalPrecedence(p.parser, nil)
		if pred != nil {
			statesFromAlt1[c.GetState().GetStateNumber()] = c.GetContext()
		}
	}
	for _, c := range configs.GetItems() {
		if c.GetAlt() == 1 {
			if c.GetSemanticContext().evalPrecedence(p.parser, nil) != nil {
				out.Add(c, p.mergeCache)
			}
			continue
		}
		ctx, ok := statesFromAlt1[c.GetState().GetStateNumber()]
		if ok && ctx != nil && ctx.Equals(c.GetContext()) {
			continue
		}
		out.Add(c, p.mergeCache)
	}
	return out
}

// evalSemanticContext evaluates each guarded PredPrediction in order,
// returning the set of alts whose predicate passed (spec §4.3's
// predicate algebra applied at an accept DFAState).
func (p *ParserATNSimulator) evalSemanticContext(predPredictions []*PredPrediction, outerContext RuleContext, complete bool) *BitSet {
	predictions := NewBitSet()
	for _, pair := range predPredictions {
		if pair.pred == SemanticContextNONE {
			predictions.Add(pair.alt)
			if !complete {
				break
			}
			continue
		}
		if pair.pred.evaluate(p.parser, outerContext) {
			predictions.Add(pair.alt)
			if !complete {
				break
			}
		}
	}
	return predictions
}

func (p *ParserATNSimulator) addDFAEdge(dfa *DFA, from *DFAState, t int, to *DFAState) *DFAState {
	dfa.Lock()
	defer dfa.Unlock()
	if to != nil {
		to = dfa.addState(to)
	}
	if from.edges == nil {
		from.edges = map[int]*DFAState{}
	}
	from.edges[t] = to
	return to
}

func (p *ParserATNSimulator) addDFAState(dfa *DFA, d *DFAState) *DFAState {
	if d == ATNSimulatorError {
		return d
	}
	existing, ok := dfa.getState(d.configs)
	if ok {
		return existing
	}
	d.configs.SetReadonly(true)
	return dfa.addState(d)
}

func (p *ParserATNSimulator) noViableAlt(input TokenStream, outerContext ParserRuleContext, configs *ATNConfigSet, startIndex int) *NoViableAltException {
	return NewNoViableAltException(p.parser, input, input.Get(startIndex), input.LT(1), configs, outerContext)
}

func (p *ParserATNSimulator) reportAttemptingFullContext(dfa *DFA, conflictingAlts *BitSet, configs *ATNConfigSet, startIndex, stopIndex int) {
	listener := p.parser.GetErrorListenerDispatch()
	listener.ReportAttemptingFullContext(p.parser, dfa, startIndex, stopIndex, conflictingAlts, configs)
}

func (p *ParserATNSimulator) reportContextSensitivity(dfa *DFA, prediction int, configs *ATNConfigSet, startIndex, stopIndex int) {
	listener := p.parser.GetErrorListenerDispatch()
	listener.ReportContextSensitivity(p.parser, dfa, startIndex, stopIndex, prediction, configs)
}

func (p *ParserATNSimulator) reportAmbiguity(dfa *DFA, d *DFAState, startIndex, stopIndex int, exact bool, ambigAlts *BitSet, configs *ATNConfigSet) {
	listener := p.parser.GetErrorListenerDispatch()
	listener.ReportAmbiguity(p.parser, dfa, startIndex, stopIndex, exact, ambigAlts, configs)
}
