// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

import "fmt"

// Parser is the driver a generated parser embeds a BaseParser into: it
// owns the token stream cursor, the current rule context, and the
// installed ErrorStrategy the generated rule methods call into on every
// Match (spec §6/§7).
type Parser interface {
	Recognizer

	GetInterpreter() *ParserATNSimulator

	GetTokenStream() TokenStream
	SetTokenStream(TokenStream)

	GetCurrentToken() Token
	GetParserRuleContext() ParserRuleContext
	SetParserRuleContext(ParserRuleContext)

	Match(ttype int) Token
	MatchWildcard() Token
	Consume() Token

	GetErrorHandler() ErrorStrategy
	SetErrorHandler(ErrorStrategy)
	NotifyErrorListeners(msg string, offendingToken Token, err RecognitionException)

	GetInputStream() IntStream

	HasError() bool
	GetError() RecognitionException
	SetError(RecognitionException)

	GetExpectedTokens() *IntervalSet

	EnterRecursionRule(localctx ParserRuleContext, state, ruleIndex, precedence int)
	PushNewRecursionContext(localctx ParserRuleContext, state, ruleIndex int)
	UnrollRecursionContexts(parentCtx ParserRuleContext)
	Precpred(localctx RuleContext, precedence int) bool
}

type BaseParser struct {
	*BaseRecognizer

	Interpreter *ParserATNSimulator

	input TokenStream
	ctx   ParserRuleContext

	errHandler ErrorStrategy
	err        RecognitionException

	BuildParseTrees bool

	precedenceStack []int

	_SyntaxErrors int
}

func NewBaseParser(input TokenStream) *BaseParser {
	p := &BaseParser{
		BaseRecognizer:  NewBaseRecognizer(),
		errHandler:      NewDefaultErrorStrategy(),
		BuildParseTrees: true,
		precedenceStack: []int{0},
	}
	p.SetInputStream(input)
	return p
}

func (p *BaseParser) GetInterpreter() *ParserATNSimulator { return p.Interpreter }
func (p *BaseParser) GetATN() *ATN                        { return p.Interpreter.atn }

func (p *BaseParser) GetTokenStream() TokenStream { return p.input }
func (p *BaseParser) SetTokenStream(input TokenStream) {
	p.input = nil
	p.SetInputStream(input)
}
func (p *BaseParser) SetInputStream(input TokenStream) {
	p.input = input
}
func (p *BaseParser) GetInputStream() IntStream { return p.GetTokenStream() }

func (p *BaseParser) GetCurrentToken() Token { return p.input.LT(1) }

func (p *BaseParser) GetParserRuleContext() ParserRuleContext  { return p.ctx }
func (p *BaseParser) SetParserRuleContext(v ParserRuleContext) { p.ctx = v }

func (p *BaseParser) GetErrorHandler() ErrorStrategy    { return p.errHandler }
func (p *BaseParser) SetErrorHandler(e ErrorStrategy)   { p.errHandler = e }

func (p *BaseParser) HasError() bool                 { return p.err != nil }
func (p *BaseParser) GetError() RecognitionException { return p.err }
func (p *BaseParser) SetError(e RecognitionException) { p.err = e }

// NotifyErrorListeners fans a diagnostic out to the installed listeners
// (spec §7); offendingToken defaults to the current lookahead token.
func (p *BaseParser) NotifyErrorListeners(msg string, offendingToken Token, err RecognitionException) {
	if offendingToken == nil {
		offendingToken = p.GetCurrentToken()
	}
	p._SyntaxErrors++
	line := offendingToken.GetLine()
	column := offendingToken.GetColumn()
	listener := p.GetErrorListenerDispatch()
	listener.SyntaxError(p, offendingToken, line, column, msg, err)
}

// Match consumes the current token if it has type ttype, otherwise hands
// off to the error strategy's single-token insertion/deletion recovery
// (spec §7). Panics with *InputMismatchException if recovery fails.
func (p *BaseParser) Match(ttype int) Token {
	t := p.GetCurrentToken()
	if t.GetTokenType() == ttype {
		p.errHandler.ReportMatch(p)
		return p.Consume()
	}
	t = p.errHandler.RecoverInline(p)
	if p.BuildParseTrees && t.GetTokenIndex() == -1 {
		p.ctx.addChild(nil)
	}
	return t
}

func (p *BaseParser) MatchWildcard() Token {
	t := p.GetCurrentToken()
	if t.GetTokenType() == TokenEOF {
		// fall through to recovery like any other mismatch
	}
	p.errHandler.ReportMatch(p)
	return p.Consume()
}

// Consume advances the token stream by one, attaching the consumed token
// to the current rule context's child list if tree construction is on
// (spec §6).
func (p *BaseParser) Consume() Token {
	o := p.GetCurrentToken()
	if o.GetTokenType() != TokenEOF {
		p.GetTokenStream().Consume()
	}
	hasListener := p.BuildParseTrees
	if hasListener {
		if o.GetTokenType() == TokenInvalidType {
			p.ctx.addChild(nil)
		} else {
			node := p.ctx.AddTokenNode(o)
			_ = node
		}
	}
	return o
}

func (p *BaseParser) GetExpectedTokens() *IntervalSet {
	return p.GetATN().getExpectedTokens(p.GetState(), p.GetParserRuleContext())
}

// EnterRule pushes a fresh ParserRuleContext as the current one, wiring
// parent/invokingState as every generated rule method's prologue does
// (spec §6).
func (p *BaseParser) EnterRule(localctx ParserRuleContext, state, ruleIndex int) {
	p.SetState(state)
	p.ctx = localctx
	p.ctx.SetStart(p.input.LT(1))
	if p.BuildParseTrees {
		p.triggerEnterRuleEvent()
	}
}

func (p *BaseParser) ExitRule() {
	p.ctx.SetStop(p.input.LT(-1))
	if p.BuildParseTrees {
		p.triggerExitRuleEvent()
	}
	p.SetState(p.ctx.GetInvokingState())
	if parent := p.ctx.GetParent(); parent != nil {
		p.ctx = parent.(ParserRuleContext)
	}
}

func (p *BaseParser) EnterOuterAlt(localctx ParserRuleContext, altNum int) {
	localctx.SetAltNumber(altNum)
	if p.BuildParseTrees && p.ctx != localctx {
		if parent := p.ctx.GetParent(); parent != nil {
			parent.(ParserRuleContext).removeLastChild()
			parent.(ParserRuleContext).addChild(localctx)
		}
	}
	p.ctx = localctx
}

// EnterRecursionRule is the left-recursive-rule prologue (spec §6
// "left-recursion rewriting uses a precedence-indexed DFA"): it pushes
// the new context and remembers the minimum precedence this invocation
// will accept.
func (p *BaseParser) EnterRecursionRule(localctx ParserRuleContext, state, ruleIndex, precedence int) {
	p.SetState(state)
	p.precedenceStack = append(p.precedenceStack, precedence)
	p.ctx = localctx
	p.ctx.SetStart(p.input.LT(1))
	if p.BuildParseTrees {
		p.triggerEnterRuleEvent()
	}
}

func (p *BaseParser) PushNewRecursionContext(localctx ParserRuleContext, state, ruleIndex int) {
	previous := p.ctx
	previous.SetParent(localctx)
	previous.SetInvokingState(state)
	previous.SetStop(p.input.LT(-1))

	p.ctx = localctx
	p.ctx.SetStart(previous.GetStart())
	if p.BuildParseTrees {
		p.ctx.addChild(previous)
	}
	if p.BuildParseTrees {
		p.triggerEnterRuleEvent()
	}
}

func (p *BaseParser) UnrollRecursionContexts(parentCtx ParserRuleContext) {
	p.precedenceStack = p.precedenceStack[:len(p.precedenceStack)-1]
	p.ctx.SetStop(p.input.LT(-1))
	retCtx := p.ctx
	if p.BuildParseTrees {
		p.triggerExitRuleEvent()
	}
	p.ctx = parentCtx
	_ = retCtx
}

func (p *BaseParser) GetPrecedence() int {
	if len(p.precedenceStack) == 0 {
		return -1
	}
	return p.precedenceStack[len(p.precedenceStack)-1]
}

// Precpred answers the left-recursion elimination's precedence predicate
// (spec §6 "{precedence >= _p}?" guards each recursive alternative).
func (p *BaseParser) Precpred(localctx RuleContext, precedence int) bool {
	return precedence >= p.GetPrecedence()
}

func (p *BaseParser) triggerEnterRuleEvent() {}
func (p *BaseParser) triggerExitRuleEvent()  {}

func (p *BaseParser) SempredContext(localctx RuleContext, ruleIndex, actionIndex int) bool { return true }

func (p *BaseParser) String() string { return fmt.Sprintf("Parser{state=%d}", p.GetState()) }
