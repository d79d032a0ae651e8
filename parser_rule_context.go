// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

// ParserRuleContext is the concrete interior node the parser builds for
// every rule invocation (spec §6 "parse-tree construction"): it accumulates
// children as the rule's alternative is matched and tracks the token
// interval it spans plus, for rules reached during error recovery, an
// exception describing what went wrong.
type ParserRuleContext interface {
	RuleContext

	SetException(RecognitionException)
	GetException() RecognitionException

	SetStart(Token)
	GetStart() Token
	SetStop(Token)
	GetStop() Token

	AddTokenNode(token Token) TerminalNode
	AddErrorNode(badToken Token) ErrorNode

	EnterRule(listener ParseTreeListener)
	ExitRule(listener ParseTreeListener)

	addChild(child RuleContext)
	removeLastChild()
}

type BaseParserRuleContext struct {
	*BaseRuleContext

	start, stop Token
	exception   RecognitionException
	children    []Tree
}

func NewBaseParserRuleContext(parent ParserRuleContext, invokingStateNumber int) *BaseParserRuleContext {
	var parentCtx RuleContext
	if parent != nil {
		parentCtx = parent
	}
	return &BaseParserRuleContext{BaseRuleContext: NewBaseRuleContext(parentCtx, invokingStateNumber)}
}

func (p *BaseParserRuleContext) SetException(e RecognitionException) { p.exception = e }
func (p *BaseParserRuleContext) GetException() RecognitionException  { return p.exception }

func (p *BaseParserRuleContext) SetStart(t Token) { p.start = t }
func (p *BaseParserRuleContext) GetStart() Token  { return p.start }
func (p *BaseParserRuleContext) SetStop(t Token)  { p.stop = t }
func (p *BaseParserRuleContext) GetStop() Token   { return p.stop }

func (p *BaseParserRuleContext) GetChildCount() int { return len(p.children) }
func (p *BaseParserRuleContext) GetChild(i int) Tree {
	if i < 0 || i >= len(p.children) {
		return nil
	}
	return p.children[i]
}
func (p *BaseParserRuleContext) GetChildren() []Tree { return p.children }

func (p *BaseParserRuleContext) addChild(child RuleContext) {
	p.children = append(p.children, child)
}

func (p *BaseParserRuleContext) removeLastChild() {
	if len(p.children) > 0 {
		p.children = p.children[:len(p.children)-1]
	}
}

// AddTokenNode appends a terminal wrapping token and links it to p as its
// parent, the leaf-construction step of spec §6.
func (p *BaseParserRuleContext) AddTokenNode(token Token) TerminalNode {
	node := NewTerminalNodeImpl(token)
	node.SetParent(p)
	p.children = append(p.children, node)
	return node
}

// AddErrorNode appends an ErrorNode for badToken, marking the place the
// error strategy recovered a mismatched/missing token (spec §7).
func (p *BaseParserRuleContext) AddErrorNode(badToken Token) ErrorNode {
	node := NewErrorNodeImpl(badToken)
	node.SetParent(p)
	p.children = append(p.children, node)
	return node
}

func (p *BaseParserRuleContext) EnterRule(listener ParseTreeListener) {}
func (p *BaseParserRuleContext) ExitRule(listener ParseTreeListener)  {}

func (p *BaseParserRuleContext) GetRuleContext() RuleContext { return p }

func (p *BaseParserRuleContext) GetText() string {
	if p.GetChildCount() == 0 {
		return ""
	}
	s := ""
	for _, c := range p.children {
		s += c.(ParseTree).GetText()
	}
	return s
}

// GetSourceInterval spans from Start's index to Stop's, or the empty
// interval [-1,-2] for a rule that never matched anything (e.g. pure
// error recovery, spec §6).
func (p *BaseParserRuleContext) GetSourceInterval() Interval {
	if p.start == nil || p.stop == nil {
		return NewInterval(-1, -2)
	}
	return NewInterval(p.start.GetTokenIndex(), p.stop.GetTokenIndex())
}

func (p *BaseParserRuleContext) Accept(v ParseTreeVisitor) interface{} { return v.VisitChildren(p) }

func (p *BaseParserRuleContext) ToStringTree(ruleNames []string, recog Recognizer) string {
	return TreesStringTree(p, ruleNames, recog)
}

func (p *BaseParserRuleContext) String() string { return "" }

// ParserRuleContextEmpty is the sentinel outermost context: its parent is
// nil and invokingState is -1, matching RuleContext.IsEmpty() == true. It
// is what predictionContextFromRuleContext treats as "no call stack".
var ParserRuleContextEmpty = NewBaseParserRuleContext(nil, -1)
