// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

import (
	"strconv"
	"strings"
)

// TreesStringTree renders t as a LISP-style parenthesized tree, using
// ruleNames to label interior nodes when recog/ruleNames is available
// (spec §6, parse-tree textual dump used by tooling and test goldens).
func TreesStringTree(t Tree, ruleNames []string, recog Recognizer) string {
	if ruleNames == nil {
		if p, ok := recog.(Parser); ok {
			ruleNames = p.GetRuleNames()
		}
	}
	s := treesNodeText(t, ruleNames)
	if t.GetChildCount() == 0 {
		return s
	}
	var b strings.Builder
	b.WriteString("(")
	b.WriteString(s)
	b.WriteString(" ")
	for i := 0; i < t.GetChildCount(); i++ {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(TreesStringTree(t.GetChild(i), ruleNames, recog))
	}
	b.WriteString(")")
	return b.String()
}

func treesNodeText(t Tree, ruleNames []string) string {
	if ruleNames != nil {
		if rc, ok := t.(RuleContext); ok {
			idx := rc.GetRuleIndex()
			altNumber := rc.GetAltNumber()
			if altNumber != ATNInvalidAltNumber {
				return ruleNames[idx] + ":" + strconv.Itoa(altNumber)
			}
			return ruleNames[idx]
		}
	}
	if p, ok := t.(ParseTree); ok {
		return p.GetText()
	}
	return "<unknown>"
}

// TreesGetChildren returns t's children as a plain slice, used by
// walkers that don't care about the concrete Tree implementation.
func TreesGetChildren(t Tree) []Tree {
	out := make([]Tree, 0, t.GetChildCount())
	for i := 0; i < t.GetChildCount(); i++ {
		out = append(out, t.GetChild(i))
	}
	return out
}

// TreesWalk performs a depth-first, pre/post-order listener dispatch over
// t (spec §6 "listener dispatch"): EnterEveryRule/ExitEveryRule bracket
// interior rule nodes, terminals and error nodes are visited once.
func TreesWalk(listener ParseTreeListener, t ParseTree) {
	switch node := t.(type) {
	case ErrorNode:
		listener.VisitErrorNode(node)
		return
	case TerminalNode:
		listener.VisitTerminal(node)
		return
	}
	ctx := t.(ParserRuleContext)
	enterRule(listener, ctx)
	for i := 0; i < t.GetChildCount(); i++ {
		TreesWalk(listener, t.GetChild(i).(ParseTree))
	}
	exitRule(listener, ctx)
}

func enterRule(listener ParseTreeListener, ctx ParserRuleContext) {
	listener.EnterEveryRule(ctx)
	ctx.EnterRule(listener)
}

func exitRule(listener ParseTreeListener, ctx ParserRuleContext) {
	ctx.ExitRule(listener)
	listener.ExitEveryRule(ctx)
}
