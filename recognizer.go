// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

import "fmt"

// BaseRecognizer is embedded by both Parser and Lexer: it carries the
// ATN state cursor, the installed error listeners, and the token
// vocabulary lookups every generated recognizer needs (spec §6).
type BaseRecognizer struct {
	listeners []ErrorListener
	state     int

	RuleNames     []string
	LiteralNames  []string
	SymbolicNames []string
	GrammarFileName string

	ruleIndexMap  map[string]int
	tokenTypeMap  map[string]int
}

func NewBaseRecognizer() *BaseRecognizer {
	return &BaseRecognizer{
		listeners: []ErrorListener{NewConsoleErrorListener()},
		state:     -1,
	}
}

func (b *BaseRecognizer) GetState() int   { return b.state }
func (b *BaseRecognizer) SetState(v int)  { b.state = v }

func (b *BaseRecognizer) GetRuleNames() []string      { return b.RuleNames }
func (b *BaseRecognizer) GetLiteralNames() []string   { return b.LiteralNames }
func (b *BaseRecognizer) GetSymbolicNames() []string  { return b.SymbolicNames }

func (b *BaseRecognizer) AddErrorListener(listener ErrorListener) {
	b.listeners = append(b.listeners, listener)
}

func (b *BaseRecognizer) RemoveErrorListeners() {
	b.listeners = make([]ErrorListener, 0)
}

// GetErrorListenerDispatch fans out to every installed listener at once
// (spec §7 "listener dispatch mirrors the tree-listener pattern").
func (b *BaseRecognizer) GetErrorListenerDispatch() ErrorListener {
	return NewProxyErrorListener(b.listeners)
}

func (b *BaseRecognizer) Precpred(localctx RuleContext, precedence int) bool { return true }

func (b *BaseRecognizer) SempredContext(localctx RuleContext, ruleIndex, actionIndex int) bool { return true }

// getRuleIndexMap lazily builds and caches the rule-name-to-index lookup
// generated parsers use to resolve a rule by name (e.g. for tracing or
// externally-driven invocation).
func (b *BaseRecognizer) getRuleIndexMap() map[string]int {
	if b.ruleIndexMap != nil {
		return b.ruleIndexMap
	}
	if b.RuleNames == nil {
		panic("The current recognizer does not provide a list of rule names.")
	}
	m := make(map[string]int, len(b.RuleNames))
	for i, name := range b.RuleNames {
		m[name] = i
	}
	b.ruleIndexMap = m
	return m
}

// getTokenTypeMap lazily builds and caches the display-name-to-token-type
// lookup, covering literal and symbolic names plus the built-in "EOF".
func (b *BaseRecognizer) getTokenTypeMap() map[string]int {
	if b.tokenTypeMap != nil {
		return b.tokenTypeMap
	}
	m := make(map[string]int, len(b.LiteralNames)+len(b.SymbolicNames)+1)
	for ttype := range b.LiteralNames {
		m[b.GetTokenTypeDisplayName(ttype)] = ttype
	}
	for ttype := range b.SymbolicNames {
		m[b.GetTokenTypeDisplayName(ttype)] = ttype
	}
	m["EOF"] = TokenEOF
	b.tokenTypeMap = m
	return m
}

// GetTokenTypeDisplayName renders the vocabulary's preferred name for a
// token type, falling back to its literal, symbolic, then numeric form
// (spec §6 "vocabulary display names").
func (b *BaseRecognizer) GetTokenTypeDisplayName(ttype int) string {
	if ttype == TokenEOF {
		return "EOF"
	}
	if ttype >= 0 {
		if ttype < len(b.LiteralNames) && b.LiteralNames[ttype] != "" {
			return b.LiteralNames[ttype]
		}
		if ttype < len(b.SymbolicNames) && b.SymbolicNames[ttype] != "" {
			return b.SymbolicNames[ttype]
		}
	}
	return fmt.Sprintf("%d", ttype)
}
