// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

// ATNType distinguishes a lexer ATN from a parser ATN — grammar type byte
// in the serialized format (spec §6, segment 2).
type ATNType int

const (
	ATNTypeLexer ATNType = iota
	ATNTypeParser
)

// LL1Analyzer computes FOLLOW-style lookahead sets by walking the ATN —
// used by the default error strategy (single-token insertion, sync). The
// deserializer does not use it; no FOLLOW sets are precomputed there.
type LL1Analyzer struct {
	atn *ATN
}

const ll1AnalyzerHitPred = -2 // TokenEpsilon reuse: sentinel meaning "predicate guarded"

func NewLL1Analyzer(atn *ATN) *LL1Analyzer {
	return &LL1Analyzer{atn: atn}
}

// GetDecisionLookahead returns, for each outgoing transition of a decision
// state, the set of symbols that transition can start with.
func (la *LL1Analyzer) GetDecisionLookahead(s ATNState) []*IntervalSet {
	if s == nil {
		return nil
	}
	count := len(s.GetTransitions())
	look := make([]*IntervalSet, count)
	for alt := 0; alt < count; alt++ {
		look[alt] = NewIntervalSet()
		seen := map[ATNState]bool{}
		la.look(s.GetTransitions()[alt].getTarget(), nil, BasePredictionContextEMPTY, look[alt], seen, NewBitSet(), true, false)
		if look[alt].IsEmpty() {
			look[alt] = nil
		}
	}
	return look
}

// Look computes the full lookahead set reachable from s in context ctx.
func (la *LL1Analyzer) Look(s, stopState ATNState, ctx RuleContext) *IntervalSet {
	r := NewIntervalSet()
	var lookContext PredictionContext
	if ctx != nil {
		lookContext = predictionContextFromRuleContext(la.atn, ctx)
	}
	la.look(s, stopState, lookContext, r, map[ATNState]bool{}, NewBitSet(), true, true)
	return r
}

func (la *LL1Analyzer) look(s, stopState ATNState, ctx PredictionContext, look *IntervalSet, seen map[ATNState]bool, calledRuleStack *BitSet, seeThruPreds, addEOF bool) {
	cfg := NewATNConfig5(s, 0, ctx)
	if seen[cfg.GetState()] {
		return
	}
	seen[cfg.GetState()] = true

	if s == stopState {
		if ctx == nil {
			look.AddOne(TokenEpsilon)
			return
		} else if ctx.isEmpty() && addEOF {
			look.AddOne(TokenEOF)
			return
		}
	}

	if rs, ok := s.(*RuleStopState); ok {
		if ctx == nil {
			look.AddOne(TokenEpsilon)
			return
		} else if ctx.isEmpty() && addEOF {
			look.AddOne(TokenEOF)
			return
		}
		if ctx != BasePredictionContextEMPTY {
			for i := 0; i < ctx.length(); i++ {
				returnState := la.atn.states[ctx.getReturnState(i)]
				newContext := ctx.GetParent(i)
				la.look(returnState, stopState, newContext, look, seen, calledRuleStack, seeThruPreds, addEOF)
			}
			return
		}
	}

	for _, t := range s.GetTransitions() {
		switch tt := t.(type) {
		case *RuleTransition:
			if calledRuleStack.Contains(tt.ruleIndex) {
				continue
			}
			newContext := SingletonBasePredictionContextCreate(ctx, tt.followState.GetStateNumber())
			calledRuleStack.Add(tt.ruleIndex)
			la.look(tt.getTarget(), stopState, newContext, look, seen, calledRuleStack, seeThruPreds, addEOF)
		case *PredicateTransition:
			if seeThruPreds {
				la.look(tt.getTarget(), stopState, ctx, look, seen, calledRuleStack, seeThruPreds, addEOF)
			} else {
				look.AddOne(ll1AnalyzerHitPred)
			}
		case *WildcardTransition:
			look.AddRange(TokenMinUserTokenType, la.atn.maxTokenType)
		default:
			if t.getIsEpsilon() {
				la.look(t.getTarget(), stopState, ctx, look, seen, calledRuleStack, seeThruPreds, addEOF)
				continue
			}
			set := t.getLabel()
			if set != nil {
				if _, ok := t.(*NotSetTransition); ok {
					set = set.Complement(TokenMinUserTokenType, la.atn.maxTokenType)
				}
				look.AddSet(set)
			}
		}
	}
}
