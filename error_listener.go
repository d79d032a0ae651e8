// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

import (
	"fmt"
	"os"
)

// ErrorListener is the sink for every diagnostic event the simulators and
// the default error strategy raise (spec §7): plain syntax errors plus
// the three prediction-quality events (ambiguity, SLL-to-LL fallback,
// context sensitivity) used to profile or debug a grammar.
type ErrorListener interface {
	SyntaxError(recognizer Recognizer, offendingSymbol interface{}, line, column int, msg string, e RecognitionException)
	ReportAmbiguity(recognizer Parser, dfa *DFA, startIndex, stopIndex int, exact bool, ambigAlts *BitSet, configs *ATNConfigSet)
	ReportAttemptingFullContext(recognizer Parser, dfa *DFA, startIndex, stopIndex int, conflictingAlts *BitSet, configs *ATNConfigSet)
	ReportContextSensitivity(recognizer Parser, dfa *DFA, startIndex, stopIndex, prediction int, configs *ATNConfigSet)
}

type BaseErrorListener struct{}

func (b *BaseErrorListener) SyntaxError(recognizer Recognizer, offendingSymbol interface{}, line, column int, msg string, e RecognitionException) {
}
func (b *BaseErrorListener) ReportAmbiguity(recognizer Parser, dfa *DFA, startIndex, stopIndex int, exact bool, ambigAlts *BitSet, configs *ATNConfigSet) {
}
func (b *BaseErrorListener) ReportAttemptingFullContext(recognizer Parser, dfa *DFA, startIndex, stopIndex int, conflictingAlts *BitSet, configs *ATNConfigSet) {
}
func (b *BaseErrorListener) ReportContextSensitivity(recognizer Parser, dfa *DFA, startIndex, stopIndex, prediction int, configs *ATNConfigSet) {
}

// ConsoleErrorListener is installed by default on every fresh recognizer;
// it just prints syntax errors to stderr the way the generated-parser
// default driver does.
type ConsoleErrorListener struct{ *BaseErrorListener }

func NewConsoleErrorListener() *ConsoleErrorListener {
	return &ConsoleErrorListener{&BaseErrorListener{}}
}

var ConsoleErrorListenerINSTANCE = NewConsoleErrorListener()

func (c *ConsoleErrorListener) SyntaxError(recognizer Recognizer, offendingSymbol interface{}, line, column int, msg string, e RecognitionException) {
	fmt.Fprintf(os.Stderr, "line %d:%d %s\n", line, column, msg)
}

// ProxyErrorListener fans every call out to each listener in turn, the
// dispatch BaseRecognizer.GetErrorListenerDispatch returns.
type ProxyErrorListener struct {
	*BaseErrorListener
	delegates []ErrorListener
}

func NewProxyErrorListener(delegates []ErrorListener) *ProxyErrorListener {
	return &ProxyErrorListener{delegates: delegates}
}

func (p *ProxyErrorListener) SyntaxError(recognizer Recognizer, offendingSymbol interface{}, line, column int, msg string, e RecognitionException) {
	for _, d := range p.delegates {
		d.SyntaxError(recognizer, offendingSymbol, line, column, msg, e)
	}
}
func (p *ProxyErrorListener) ReportAmbiguity(recognizer Parser, dfa *DFA, startIndex, stopIndex int, exact bool, ambigAlts *BitSet, configs *ATNConfigSet) {
	for _, d := range p.delegates {
		d.ReportAmbiguity(recognizer, dfa, startIndex, stopIndex, exact, ambigAlts, configs)
	}
}
func (p *ProxyErrorListener) ReportAttemptingFullContext(recognizer Parser, dfa *DFA, startIndex, stopIndex int, conflictingAlts *BitSet, configs *ATNConfigSet) {
	for _, d := range p.delegates {
		d.ReportAttemptingFullContext(recognizer, dfa, startIndex, stopIndex, conflictingAlts, configs)
	}
}
func (p *ProxyErrorListener) ReportContextSensitivity(recognizer Parser, dfa *DFA, startIndex, stopIndex, prediction int, configs *ATNConfigSet) {
	for _, d := range p.delegates {
		d.ReportContextSensitivity(recognizer, dfa, startIndex, stopIndex, prediction, configs)
	}
}

// DiagnosticErrorListener turns on exact-ambiguity detection reporting:
// installed when a grammar author wants every ambiguity/full-context
// fallback surfaced as a syntax error instead of silently resolved (spec
// §4.7 "PredictionModeLLExactAmbigDetection").
type DiagnosticErrorListener struct {
	*BaseErrorListener
	exactOnly bool
}

func NewDiagnosticErrorListener(exactOnly bool) *DiagnosticErrorListener {
	return &DiagnosticErrorListener{exactOnly: exactOnly}
}

func (d *DiagnosticErrorListener) ReportAmbiguity(recognizer Parser, dfa *DFA, startIndex, stopIndex int, exact bool, ambigAlts *BitSet, configs *ATNConfigSet) {
	if d.exactOnly && !exact {
		return
	}
	msg := fmt.Sprintf("reportAmbiguity d=%s: ambigAlts=%s, input='%s'",
		d.getDecisionDescription(recognizer, dfa),
		d.getConflictingAlts(ambigAlts, configs),
		recognizer.GetTokenStream().GetTextFromInterval(NewInterval(startIndex, stopIndex)))
	recognizer.NotifyErrorListeners(msg, nil, nil)
}

func (d *DiagnosticErrorListener) ReportAttemptingFullContext(recognizer Parser, dfa *DFA, startIndex, stopIndex int, conflictingAlts *BitSet, configs *ATNConfigSet) {
	msg := fmt.Sprintf("reportAttemptingFullContext d=%s, input='%s'",
		d.getDecisionDescription(recognizer, dfa),
		recognizer.GetTokenStream().GetTextFromInterval(NewInterval(startIndex, stopIndex)))
	recognizer.NotifyErrorListeners(msg, nil, nil)
}

func (d *DiagnosticErrorListener) ReportContextSensitivity(recognizer Parser, dfa *DFA, startIndex, stopIndex, prediction int, configs *ATNConfigSet) {
	msg := fmt.Sprintf("reportContextSensitivity d=%s, input='%s'",
		d.getDecisionDescription(recognizer, dfa),
		recognizer.GetTokenStream().GetTextFromInterval(NewInterval(startIndex, stopIndex)))
	recognizer.NotifyErrorListeners(msg, nil, nil)
}

func (d *DiagnosticErrorListener) getDecisionDescription(recognizer Parser, dfa *DFA) string {
	decision := dfa.decision
	ruleIndex := dfa.atnStartState.GetRuleIndex()
	ruleNames := recognizer.GetRuleNames()
	if ruleIndex < 0 || ruleIndex >= len(ruleNames) {
		return fmt.Sprintf("%d", decision)
	}
	return fmt.Sprintf("%d (%s)", decision, ruleNames[ruleIndex])
}

func (d *DiagnosticErrorListener) getConflictingAlts(reportedAlts *BitSet, configs *ATNConfigSet) *BitSet {
	if reportedAlts != nil {
		return reportedAlts
	}
	result := NewBitSet()
	for _, c := range configs.GetItems() {
		result.Add(c.GetAlt())
	}
	return result
}
