// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

// Tree is the minimal parent/child contract shared by every node the
// parser builds (spec §6, parse-tree construction).
type Tree interface {
	GetParent() Tree
	SetParent(Tree)
	GetChild(i int) Tree
	GetChildCount() int
	GetChildren() []Tree
}

// SyntaxTree additionally knows its own input span, used by error
// reporting and by tooling that needs source positions.
type SyntaxTree interface {
	Tree
	GetSourceInterval() Interval
}

// ParseTree is a SyntaxTree node that can render itself textually and
// accept a Visitor/listener walk (spec §6 "tree construction + listener
// dispatch").
type ParseTree interface {
	SyntaxTree
	Accept(visitor ParseTreeVisitor) interface{}
	GetText() string
	ToStringTree(ruleNames []string, recog Recognizer) string
}

type RuleNode interface {
	ParseTree
	GetRuleContext() RuleContext
}

type TerminalNode interface {
	ParseTree
	GetSymbol() Token
}

type ErrorNode interface {
	TerminalNode
	errorNode()
}

// ParseTreeVisitor is the double-dispatch hook generated visitors
// implement; the interpreter core only needs the entry point.
type ParseTreeVisitor interface {
	Visit(tree ParseTree) interface{}
	VisitChildren(node RuleNode) interface{}
	VisitTerminal(node TerminalNode) interface{}
	VisitErrorNode(node ErrorNode) interface{}
}

// BaseParseTreeVisitor is an embeddable no-op visitor; generated visitors
// override the methods for the rules they care about.
type BaseParseTreeVisitor struct{}

func (v *BaseParseTreeVisitor) Visit(tree ParseTree) interface{} {
	if tree == nil {
		return nil
	}
	return tree.Accept(v)
}
func (v *BaseParseTreeVisitor) VisitChildren(node RuleNode) interface{} { return nil }
func (v *BaseParseTreeVisitor) VisitTerminal(node TerminalNode) interface{} { return nil }
func (v *BaseParseTreeVisitor) VisitErrorNode(node ErrorNode) interface{}   { return nil }

// ParseTreeListener is the enter/exit dispatch pair Trees.Walk drives
// (spec §6 "listener dispatch").
type ParseTreeListener interface {
	VisitTerminal(node TerminalNode)
	VisitErrorNode(node ErrorNode)
	EnterEveryRule(ctx ParserRuleContext)
	ExitEveryRule(ctx ParserRuleContext)
}

type BaseParseTreeListener struct{}

func (l *BaseParseTreeListener) VisitTerminal(node TerminalNode)       {}
func (l *BaseParseTreeListener) VisitErrorNode(node ErrorNode)         {}
func (l *BaseParseTreeListener) EnterEveryRule(ctx ParserRuleContext)  {}
func (l *BaseParseTreeListener) ExitEveryRule(ctx ParserRuleContext)   {}

// BaseTerminalNode wraps the single Token a leaf of the parse tree
// stands for (spec §6 "terminal nodes are leaves wrapping a Token").
type BaseTerminalNode struct {
	parentCtx RuleContext
	symbol    Token
}

func NewTerminalNodeImpl(symbol Token) *BaseTerminalNode { return &BaseTerminalNode{symbol: symbol} }

func (t *BaseTerminalNode) GetChild(i int) Tree         { return nil }
func (t *BaseTerminalNode) GetChildren() []Tree         { return nil }
func (t *BaseTerminalNode) GetChildCount() int          { return 0 }
func (t *BaseTerminalNode) GetParent() Tree {
	if t.parentCtx == nil {
		return nil
	}
	return t.parentCtx
}
func (t *BaseTerminalNode) SetParent(tree Tree) { t.parentCtx = tree.(RuleContext) }
func (t *BaseTerminalNode) GetSymbol() Token    { return t.symbol }
func (t *BaseTerminalNode) GetText() string {
	if t.symbol == nil {
		return "<EOF>"
	}
	return t.symbol.GetText()
}
func (t *BaseTerminalNode) GetSourceInterval() Interval {
	if t.symbol == nil {
		return NewInterval(-1, -2)
	}
	i := t.symbol.GetTokenIndex()
	return NewInterval(i, i)
}
func (t *BaseTerminalNode) Accept(v ParseTreeVisitor) interface{} { return v.VisitTerminal(t) }
func (t *BaseTerminalNode) ToStringTree([]string, Recognizer) string { return t.GetText() }
func (t *BaseTerminalNode) String() string                           { return t.GetText() }

// ErrorNodeImpl is the terminal inserted in place of a mismatched token
// that the error strategy recovered from (spec §7 "error nodes mark
// recovery points in the tree").
type ErrorNodeImpl struct {
	*BaseTerminalNode
}

func NewErrorNodeImpl(symbol Token) *ErrorNodeImpl {
	return &ErrorNodeImpl{BaseTerminalNode: NewTerminalNodeImpl(symbol)}
}
func (e *ErrorNodeImpl) errorNode() {}
func (e *ErrorNodeImpl) Accept(v ParseTreeVisitor) interface{} { return v.VisitErrorNode(e) }
