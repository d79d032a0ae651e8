// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

import "fmt"

// RecognitionException is the family spec §7 describes: thrown by the ATN
// simulators and caught by the default error strategy, never by user code
// directly. Go has no exceptions, so these are carried as panic values and
// recovered at the recognizer boundary (generated rule methods /
// Lexer.NextToken).
type RecognitionException interface {
	error
	GetOffendingToken() Token
	GetInputStream() IntStream
	GetRecognizer() Recognizer
}

type BaseRecognitionException struct {
	message        string
	recognizer     Recognizer
	offendingToken Token
	offendingState int
	ctx            RuleContext
	input          IntStream
}

func NewBaseRecognitionException(message string, recognizer Recognizer, input IntStream, ctx RuleContext) *BaseRecognitionException {
	e := &BaseRecognitionException{
		message:    message,
		recognizer: recognizer,
		input:      input,
		ctx:        ctx,
	}
	if recognizer != nil {
		e.offendingState = recognizer.GetState()
	} else {
		e.offendingState = -1
	}
	return e
}

func (e *BaseRecognitionException) Error() string                  { return e.message }
func (e *BaseRecognitionException) GetOffendingToken() Token        { return e.offendingToken }
func (e *BaseRecognitionException) GetInputStream() IntStream       { return e.input }
func (e *BaseRecognitionException) GetRecognizer() Recognizer       { return e.recognizer }
func (e *BaseRecognitionException) GetCtx() RuleContext             { return e.ctx }
func (e *BaseRecognitionException) setOffendingToken(t Token)       { e.offendingToken = t }

// GetExpectedTokens computes the tokens valid at the point of failure,
// delegating to ATN.getExpectedTokens under the failing rule context
// (spec §7 "expected set" on a syntax error).
func (e *BaseRecognitionException) GetExpectedTokens() *IntervalSet {
	if e.recognizer == nil {
		return nil
	}
	return e.recognizer.GetATN().getExpectedTokens(e.offendingState, e.ctx)
}

// NoViableAltException is raised when adaptivePredict finds no alt with a
// surviving config (spec §4.7 "predict() returns ATN_INVALID_ALT_NUMBER").
type NoViableAltException struct {
	*BaseRecognitionException
	startToken     Token
	deadEndConfigs *ATNConfigSet
}

func NewNoViableAltException(recognizer Parser, input TokenStream, startToken, offendingToken Token, deadEndConfigs *ATNConfigSet, ctx RuleContext) *NoViableAltException {
	if ctx == nil {
		ctx = recognizer.GetParserRuleContext()
	}
	if offendingToken == nil {
		offendingToken = recognizer.GetCurrentToken()
	}
	if startToken == nil {
		startToken = recognizer.GetCurrentToken()
	}
	if input == nil {
		input = recognizer.GetInputStream().(TokenStream)
	}
	e := &NoViableAltException{
		BaseRecognitionException: NewBaseRecognitionException("", recognizer, input, ctx),
		startToken:                startToken,
		deadEndConfigs:            deadEndConfigs,
	}
	e.offendingToken = offendingToken
	return e
}

func (e *NoViableAltException) Error() string { return "no viable alternative at input" }

// InputMismatchException is raised by the default error strategy when the
// current token's type doesn't match what Match() expected and no
// single-token insertion/deletion recovers it (spec §7).
type InputMismatchException struct {
	*BaseRecognitionException
}

func NewInputMismatchException(recognizer Parser) *InputMismatchException {
	e := &InputMismatchException{
		BaseRecognitionException: NewBaseRecognitionException("", recognizer, recognizer.GetInputStream(), recognizer.GetParserRuleContext()),
	}
	e.offendingToken = recognizer.GetCurrentToken()
	return e
}

func (e *InputMismatchException) Error() string { return "mismatched input" }

// FailedPredicateException is raised when a semantic predicate embedded
// in a rule evaluates false during Parser.Sempred (spec §6 segment on
// semantic predicates).
type FailedPredicateException struct {
	*BaseRecognitionException
	ruleIndex, predicateIndex int
	predicate                 string
}

func NewFailedPredicateException(recognizer Parser, predicate, message string) *FailedPredicateException {
	e := &FailedPredicateException{
		BaseRecognitionException: NewBaseRecognitionException(formatFailedPredicateMessage(message, predicate), recognizer, recognizer.GetInputStream(), recognizer.GetParserRuleContext()),
		predicate:                predicate,
	}
	e.offendingToken = recognizer.GetCurrentToken()
	s := recognizer.GetInterpreter().atn.states[recognizer.GetState()]
	trans := s.GetTransitions()[0]
	if pt, ok := trans.(*PredicateTransition); ok {
		e.ruleIndex = pt.ruleIndex
		e.predicateIndex = pt.predIndex
	}
	return e
}

func formatFailedPredicateMessage(message, predicate string) string {
	if message != "" {
		return message
	}
	return fmt.Sprintf("failed predicate: {%s}?", predicate)
}

func (e *FailedPredicateException) Error() string { return e.message }

// LexerNoViableAltException is the lexer's analogue: no DFA/ATN path
// accepted any prefix of the remaining input (spec §4.6 "fail if no
// accept state was ever recorded").
type LexerNoViableAltException struct {
	startIndex     int
	deadEndConfigs *ATNConfigSet
	input          CharStream
}

func NewLexerNoViableAltException(lexer Lexer, input CharStream, startIndex int, deadEndConfigs *ATNConfigSet) *LexerNoViableAltException {
	return &LexerNoViableAltException{startIndex: startIndex, deadEndConfigs: deadEndConfigs, input: input}
}

func (l *LexerNoViableAltException) Error() string {
	text := ""
	if l.startIndex >= 0 && l.startIndex < l.input.Size() {
		text = l.input.GetText(l.startIndex, l.input.Index())
	}
	return fmt.Sprintf("token recognition error at: '%s'", text)
}
