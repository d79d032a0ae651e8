// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

import "strconv"

// ATNConfig is a single position in the subset construction: (state, alt,
// call-stack, semantic predicates), per spec §3. Equality for config-set
// membership is over (state, alt, semanticContext) only — context
// participates in merging, not membership (spec §4.5).
type ATNConfig interface {
	Collectable[ATNConfig]
	GetState() ATNState
	GetAlt() int
	GetContext() PredictionContext
	SetContext(PredictionContext)
	GetSemanticContext() SemanticContext
	GetReachesIntoOuterContext() int
	SetReachesIntoOuterContext(int)
	GetPrecedenceFilterSuppressed() bool
	SetPrecedenceFilterSuppressed(bool)
	String() string
}

type BaseATNConfig struct {
	state                       ATNState
	alt                         int
	context                     PredictionContext
	semanticContext             SemanticContext
	reachesIntoOuterContext     int
	precedenceFilterSuppressed  bool
}

func NewATNConfig5(state ATNState, alt int, context PredictionContext) *BaseATNConfig {
	return NewATNConfig1(state, alt, context, SemanticContextNONE)
}

func NewATNConfig1(state ATNState, alt int, context PredictionContext, semanticContext SemanticContext) *BaseATNConfig {
	if semanticContext == nil {
		semanticContext = SemanticContextNONE
	}
	return &BaseATNConfig{state: state, alt: alt, context: context, semanticContext: semanticContext}
}

// NewATNConfigDup copies c with state/context/semanticContext overridden
// where non-nil/non-zero, the pattern closure() uses to derive a successor
// config from its predecessor without losing reachesIntoOuterContext etc.
func NewATNConfigDup(c ATNConfig, state ATNState, context PredictionContext, semanticContext SemanticContext) *BaseATNConfig {
	if state == nil {
		state = c.GetState()
	}
	if context == nil {
		context = c.GetContext()
	}
	if semanticContext == nil {
		semanticContext = c.GetSemanticContext()
	}
	return &BaseATNConfig{
		state:                      state,
		alt:                        c.GetAlt(),
		context:                    context,
		semanticContext:            semanticContext,
		reachesIntoOuterContext:    c.GetReachesIntoOuterContext(),
		precedenceFilterSuppressed: c.GetPrecedenceFilterSuppressed(),
	}
}

func (c *BaseATNConfig) GetState() ATNState                      { return c.state }
func (c *BaseATNConfig) GetAlt() int                             { return c.alt }
func (c *BaseATNConfig) GetContext() PredictionContext           { return c.context }
func (c *BaseATNConfig) SetContext(ctx PredictionContext)        { c.context = ctx }
func (c *BaseATNConfig) GetSemanticContext() SemanticContext     { return c.semanticContext }
func (c *BaseATNConfig) GetReachesIntoOuterContext() int         { return c.reachesIntoOuterContext }
func (c *BaseATNConfig) SetReachesIntoOuterContext(v int)        { c.reachesIntoOuterContext = v }
func (c *BaseATNConfig) GetPrecedenceFilterSuppressed() bool     { return c.precedenceFilterSuppressed }
func (c *BaseATNConfig) SetPrecedenceFilterSuppressed(v bool)    { c.precedenceFilterSuppressed = v }

// Hash/Equals are the (state, alt, semanticContext) congruence used by
// ATNConfigSet's index (spec §4.5); context is deliberately excluded.
func (c *BaseATNConfig) Hash() int {
	h := murmurInit(7)
	h = murmurUpdate(h, c.state.GetStateNumber())
	h = murmurUpdate(h, c.alt)
	h = murmurUpdate(h, c.semanticContext.Hash())
	return murmurFinish(h, 3)
}

func (c *BaseATNConfig) Equals(other ATNConfig) bool {
	if other == nil {
		return false
	}
	return c.state.GetStateNumber() == other.GetState().GetStateNumber() &&
		c.alt == other.GetAlt() &&
		c.semanticContext.Equals(other.GetSemanticContext())
}

func (c *BaseATNConfig) String() string {
	s := "(" + c.state.String() + "," + strconv.Itoa(c.alt)
	if c.context != nil {
		s += ",[" + c.context.String() + "]"
	}
	if c.semanticContext != SemanticContextNONE {
		s += "," + c.semanticContext.String()
	}
	if c.reachesIntoOuterContext > 0 {
		s += ",up=" + strconv.Itoa(c.reachesIntoOuterContext)
	}
	return s + ")"
}

// LexerATNConfig additionally tracks, per spec §3, whether closure passed
// through a non-greedy decision (blocks longest-match from preferring a
// later accept over an already-found shorter one past that point) and the
// accumulated LexerActionExecutor for deferred action firing (spec §4.6).
type LexerATNConfig struct {
	*BaseATNConfig
	lexerActionExecutor        *LexerActionExecutor
	passedThroughNonGreedyDecision bool
}

func NewLexerATNConfig3(state ATNState, alt int, context PredictionContext) *LexerATNConfig {
	return &LexerATNConfig{BaseATNConfig: NewATNConfig5(state, alt, context)}
}

func NewLexerATNConfig4(state ATNState, alt int, context PredictionContext, lexerActionExecutor *LexerActionExecutor) *LexerATNConfig {
	return &LexerATNConfig{BaseATNConfig: NewATNConfig5(state, alt, context), lexerActionExecutor: lexerActionExecutor}
}

func NewLexerATNConfigDup(c *LexerATNConfig, state ATNState) *LexerATNConfig {
	lc := &LexerATNConfig{
		BaseATNConfig:                  NewATNConfigDup(c, state, nil, nil),
		lexerActionExecutor:            c.lexerActionExecutor,
		passedThroughNonGreedyDecision: checkNonGreedyDecision(c, state),
	}
	return lc
}

func checkNonGreedyDecision(c *LexerATNConfig, target ATNState) bool {
	if c.passedThroughNonGreedyDecision {
		return true
	}
	if ds, ok := target.(DecisionState); ok {
		return ds.getNonGreedy()
	}
	return false
}

func (c *LexerATNConfig) Hash() int {
	h := murmurInit(7)
	h = murmurUpdate(h, c.state.GetStateNumber())
	h = murmurUpdate(h, c.alt)
	h = murmurUpdate(h, c.semanticContext.Hash())
	h = murmurUpdate(h, boolToInt(c.passedThroughNonGreedyDecision))
	if c.lexerActionExecutor != nil {
		h = murmurUpdate(h, c.lexerActionExecutor.Hash())
	} else {
		h = murmurUpdate(h, 1)
	}
	return murmurFinish(h, 5)
}

func (c *LexerATNConfig) Equals(other ATNConfig) bool {
	o, ok := other.(*LexerATNConfig)
	if !ok {
		return c.BaseATNConfig.Equals(other)
	}
	if c.passedThroughNonGreedyDecision != o.passedThroughNonGreedyDecision {
		return false
	}
	if c.lexerActionExecutor == nil {
		if o.lexerActionExecutor != nil {
			return false
		}
	} else if !c.lexerActionExecutor.Equals(o.lexerActionExecutor) {
		return false
	}
	return c.BaseATNConfig.Equals(other)
}
