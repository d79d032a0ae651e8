// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

import "fmt"

// ErrorStrategy is the pluggable recovery protocol spec §7 describes:
// generated rule methods call RecoverInline on every Match failure and
// Sync at loop decision points; everything else is driven from inside
// the strategy itself once an exception has been raised.
type ErrorStrategy interface {
	reset(recognizer Parser)
	RecoverInline(recognizer Parser) Token
	Recover(recognizer Parser, e RecognitionException)
	Sync(recognizer Parser)
	InErrorRecoveryMode(recognizer Parser) bool
	ReportError(recognizer Parser, e RecognitionException)
	ReportMatch(recognizer Parser)
}

// DefaultErrorStrategy implements ANTLR's three-tier recovery (spec §7):
// single-token deletion, single-token insertion, then a FOLLOW-set-based
// Sync at subrule boundaries. errorRecoveryMode suppresses cascading
// reports until a Match actually succeeds again.
type DefaultErrorStrategy struct {
	errorRecoveryMode bool
	lastErrorIndex    int
	lastErrorStates   *IntervalSet
}

func NewDefaultErrorStrategy() *DefaultErrorStrategy {
	return &DefaultErrorStrategy{lastErrorIndex: -1}
}

func (d *DefaultErrorStrategy) reset(recognizer Parser) {
	d.endErrorCondition(recognizer)
}

func (d *DefaultErrorStrategy) beginErrorCondition(recognizer Parser) { d.errorRecoveryMode = true }
func (d *DefaultErrorStrategy) endErrorCondition(recognizer Parser)   { d.errorRecoveryMode = false }
func (d *DefaultErrorStrategy) InErrorRecoveryMode(recognizer Parser) bool {
	return d.errorRecoveryMode
}

func (d *DefaultErrorStrategy) ReportMatch(recognizer Parser) {
	d.endErrorCondition(recognizer)
}

// ReportError dispatches to the specific handler for e's concrete type
// (spec §7's "NoViableAlt / InputMismatch / FailedPredicate each format
// their own message"). Once an error is reported the strategy is in
// recovery mode, and every further report is suppressed until ReportMatch
// ends that mode, so errors cascading from one bad token don't all surface.
func (d *DefaultErrorStrategy) ReportError(recognizer Parser, e RecognitionException) {
	if d.InErrorRecoveryMode(recognizer) {
		return
	}
	d.beginErrorCondition(recognizer)
	switch ex := e.(type) {
	case *NoViableAltException:
		d.reportNoViableAlternative(recognizer, ex)
	case *InputMismatchException:
		d.reportInputMismatch(recognizer, ex)
	case *FailedPredicateException:
		d.reportFailedPredicate(recognizer, ex)
	default:
		recognizer.NotifyErrorListeners(e.Error(), e.GetOffendingToken(), e)
	}
}

func (d *DefaultErrorStrategy) reportNoViableAlternative(recognizer Parser, e *NoViableAltException) {
	input := "<unknown input>"
	if e.startToken != nil {
		input = recognizer.GetTokenStream().GetTextFromTokens(e.startToken, e.GetOffendingToken())
	}
	msg := "no viable alternative at input " + escapeWSAndQuote(input)
	recognizer.NotifyErrorListeners(msg, e.GetOffendingToken(), e)
}

func (d *DefaultErrorStrategy) reportInputMismatch(recognizer Parser, e *InputMismatchException) {
	msg := "mismatched input " + d.getTokenErrorDisplay(e.GetOffendingToken(), recognizer) +
		" expecting " + e.GetExpectedTokens().StringVerbose(recognizer.GetLiteralNames(), recognizer.GetSymbolicNames(), false)
	recognizer.NotifyErrorListeners(msg, e.GetOffendingToken(), e)
}

func (d *DefaultErrorStrategy) reportFailedPredicate(recognizer Parser, e *FailedPredicateException) {
	ruleNames := recognizer.GetRuleNames()
	ruleName := ""
	if e.ruleIndex >= 0 && e.ruleIndex < len(ruleNames) {
		ruleName = ruleNames[e.ruleIndex]
	}
	msg := "rule " + ruleName + " " + e.message
	recognizer.NotifyErrorListeners(msg, e.GetOffendingToken(), e)
}

func (d *DefaultErrorStrategy) reportUnwantedToken(recognizer Parser) {
	if d.InErrorRecoveryMode(recognizer) {
		return
	}
	d.beginErrorCondition(recognizer)
	t := recognizer.GetCurrentToken()
	msg := "extraneous input " + d.getTokenErrorDisplay(t, recognizer) +
		" expecting " + d.getExpectedTokensDisplay(recognizer)
	recognizer.NotifyErrorListeners(msg, t, nil)
}

func (d *DefaultErrorStrategy) reportMissingToken(recognizer Parser) {
	if d.InErrorRecoveryMode(recognizer) {
		return
	}
	d.beginErrorCondition(recognizer)
	t := recognizer.GetCurrentToken()
	expecting := recognizer.GetExpectedTokens()
	msg := "missing " + expecting.StringVerbose(recognizer.GetLiteralNames(), recognizer.GetSymbolicNames(), false) +
		" at " + d.getTokenErrorDisplay(t, recognizer)
	recognizer.NotifyErrorListeners(msg, t, nil)
}

func (d *DefaultErrorStrategy) getExpectedTokensDisplay(recognizer Parser) string {
	return recognizer.GetExpectedTokens().StringVerbose(recognizer.GetLiteralNames(), recognizer.GetSymbolicNames(), false)
}

// RecoverInline implements spec §7's single-token deletion then
// single-token insertion attempt, falling back to an InputMismatch panic
// when neither applies.
func (d *DefaultErrorStrategy) RecoverInline(recognizer Parser) Token {
	if t, ok := d.singleTokenDeletion(recognizer); ok {
		return t
	}
	if d.singleTokenInsertion(recognizer) {
		return d.getMissingSymbol(recognizer)
	}
	panic(NewInputMismatchException(recognizer))
}

func (d *DefaultErrorStrategy) singleTokenInsertion(recognizer Parser) bool {
	currentSymbolType := recognizer.GetCurrentToken().GetTokenType()
	atn := recognizer.GetInterpreter().atn
	currentState := atn.states[recognizer.GetState()]
	next := currentState.GetTransitions()[0].getTarget()
	expectingAtLL2 := atn.NextTokens(next, recognizer.GetParserRuleContext())
	if expectingAtLL2.Contains(currentSymbolType) {
		d.reportMissingToken(recognizer)
		return true
	}
	return false
}

func (d *DefaultErrorStrategy) singleTokenDeletion(recognizer Parser) (Token, bool) {
	nextTokenType := recognizer.GetTokenStream().LA(2)
	expecting := d.getExpectedTokens(recognizer)
	if expecting.Contains(nextTokenType) {
		d.reportUnwantedToken(recognizer)
		recognizer.Consume()
		matchedSymbol := recognizer.GetCurrentToken()
		d.ReportMatch(recognizer)
		return matchedSymbol, true
	}
	return nil, false
}

func (d *DefaultErrorStrategy) getMissingSymbol(recognizer Parser) Token {
	currentSymbol := recognizer.GetCurrentToken()
	expecting := d.getExpectedTokens(recognizer)
	expectedTokenType := TokenInvalidType
	if !expecting.IsEmpty() {
		expectedTokenType = expecting.Intervals()[0].Start
	}
	var tokenText string
	if expectedTokenType == TokenEOF {
		tokenText = "<missing EOF>"
	} else {
		tokenText = "<missing " + recognizer.GetTokenTypeDisplayName(expectedTokenType) + ">"
	}
	current := currentSymbol
	lookback := recognizer.GetTokenStream().LT(-1)
	if current.GetTokenType() == TokenEOF && lookback != nil {
		current = lookback
	}
	factory := CommonTokenFactoryDefault
	tok := factory.Create(current.GetTokenSource(), current.GetInputStream(), expectedTokenType, TokenDefaultChannel, -1, -1, current.GetLine(), current.GetColumn())
	tok.SetText(tokenText)
	return tok
}

func (d *DefaultErrorStrategy) getExpectedTokens(recognizer Parser) *IntervalSet {
	return recognizer.GetExpectedTokens()
}

func (d *DefaultErrorStrategy) getTokenErrorDisplay(t Token, recognizer Parser) string {
	if t == nil {
		return "<no token>"
	}
	s := t.GetText()
	if s == "" {
		if t.GetTokenType() == TokenEOF {
			s = "<EOF>"
		} else {
			s = fmt.Sprintf("<%d>", t.GetTokenType())
		}
	}
	return escapeWSAndQuote(s)
}

func escapeWSAndQuote(s string) string {
	return "'" + s + "'"
}

// Recover discards tokens until it finds one in the current rule's
// recovery set, the fallback used outside Match (e.g. after a failed
// adaptivePredict raises NoViableAltException, spec §7).
func (d *DefaultErrorStrategy) Recover(recognizer Parser, e RecognitionException) {
	if d.lastErrorIndex == recognizer.GetInputStream().(TokenStream).Index() &&
		d.lastErrorStates != nil && d.lastErrorStates.Contains(recognizer.GetState()) {
		recognizer.Consume()
	}
	d.lastErrorIndex = recognizer.GetInputStream().(TokenStream).Index()
	if d.lastErrorStates == nil {
		d.lastErrorStates = NewIntervalSet()
	}
	d.lastErrorStates.AddOne(recognizer.GetState())
	followSet := d.getErrorRecoverySet(recognizer)
	d.consumeUntil(recognizer, followSet)
}

// Sync is called at loop-decision entry points; it only takes action
// when the current token cannot possibly continue or exit the loop,
// deleting it and reporting an extraneous-input error (spec §7's
// "FOLLOW-set resynchronization").
func (d *DefaultErrorStrategy) Sync(recognizer Parser) {
	if d.InErrorRecoveryMode(recognizer) {
		return
	}
	s := recognizer.GetInterpreter().atn.states[recognizer.GetState()]
	la := recognizer.GetTokenStream().LA(1)
	nextTokens := recognizer.GetATN().NextTokens(s, nil)
	if nextTokens.Contains(TokenEpsilon) || nextTokens.Contains(la) {
		return
	}
	switch s.(type) {
	case *PlusBlockStartState, *StarLoopEntryState, *PlusLoopbackState, *StarLoopbackState:
		d.reportUnwantedToken(recognizer)
		expecting := recognizer.GetExpectedTokens()
		whatFollowsLoopIterationOrRule := expecting.Or(d.getErrorRecoverySet(recognizer))
		d.consumeUntil(recognizer, whatFollowsLoopIterationOrRule)
	default:
	}
}

// getErrorRecoverySet unions the FOLLOW sets of every rule on the
// current call stack (spec §7 "recovery set is FOLLOW(outer) union
// FOLLOW(caller) union ... up to the root").
func (d *DefaultErrorStrategy) getErrorRecoverySet(recognizer Parser) *IntervalSet {
	atn := recognizer.GetInterpreter().atn
	ctx := recognizer.GetParserRuleContext()
	recoverSet := NewIntervalSet()
	for ctx != nil && ctx.GetInvokingState() >= 0 {
		invokingState := atn.states[ctx.GetInvokingState()]
		rt := invokingState.GetTransitions()[0].(*RuleTransition)
		follow := atn.NextTokens(rt.followState, nil)
		recoverSet.AddSet(follow)
		parent := ctx.GetParent()
		if parent == nil {
			break
		}
		ctx = parent.(ParserRuleContext)
	}
	recoverSet.RemoveOne(TokenEpsilon)
	return recoverSet
}

func (d *DefaultErrorStrategy) consumeUntil(recognizer Parser, set *IntervalSet) {
	ttype := recognizer.GetTokenStream().LA(1)
	for ttype != TokenEOF && !set.Contains(ttype) {
		recognizer.Consume()
		ttype = recognizer.GetTokenStream().LA(1)
	}
}

// BailErrorStrategy is used when a caller wants prediction/parse failures
// to abort immediately instead of attempting recovery (spec §7's Open
// Question on tooling that wants a hard stop, e.g. a "try parse and fall
// back" strategy selector).
type BailErrorStrategy struct {
	*DefaultErrorStrategy
}

func NewBailErrorStrategy() *BailErrorStrategy {
	return &BailErrorStrategy{NewDefaultErrorStrategy()}
}

func (b *BailErrorStrategy) Recover(recognizer Parser, e RecognitionException) {
	panic(e)
}

func (b *BailErrorStrategy) RecoverInline(recognizer Parser) Token {
	panic(NewInputMismatchException(recognizer))
}

func (b *BailErrorStrategy) Sync(recognizer Parser) {}
