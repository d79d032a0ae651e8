// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

import "testing"

func TestParserRuleContextAddTokenNodeAppendsChild(t *testing.T) {
	ctx := NewBaseParserRuleContext(nil, -1)
	tok := NewCommonToken(nil, nil, 1, TokenDefaultChannel, 0, 0)

	node := ctx.AddTokenNode(tok)

	if ctx.GetChildCount() != 1 {
		t.Fatalf("expected one child after AddTokenNode, got %d", ctx.GetChildCount())
	}
	if ctx.GetChild(0) != Tree(node) {
		t.Fatalf("expected GetChild(0) to return the node just added")
	}
	if node.GetSymbol() != Token(tok) {
		t.Fatalf("expected the terminal node to wrap the token it was given")
	}
}

func TestParserRuleContextAddErrorNodeAppendsChild(t *testing.T) {
	ctx := NewBaseParserRuleContext(nil, -1)
	tok := NewCommonToken(nil, nil, TokenInvalidType, TokenDefaultChannel, 0, 0)

	node := ctx.AddErrorNode(tok)

	if ctx.GetChildCount() != 1 {
		t.Fatalf("expected one child after AddErrorNode, got %d", ctx.GetChildCount())
	}
	if _, ok := ctx.GetChild(0).(ErrorNode); !ok {
		t.Fatalf("expected the appended child to be an ErrorNode, got %T", ctx.GetChild(0))
	}
	_ = node
}

func TestParserRuleContextGetParentWalksUpTheTree(t *testing.T) {
	root := NewBaseParserRuleContext(nil, -1)
	child := NewBaseParserRuleContext(root, 5)

	if child.GetParent() != Tree(root) {
		t.Fatalf("expected child's parent to be the root context it was constructed with")
	}
}

func TestTreesStringTreeRendersLeafTerminalAsItsText(t *testing.T) {
	tok := NewCommonToken(nil, nil, 1, TokenDefaultChannel, 0, 0)
	tok.SetText("hello")
	node := NewTerminalNodeImpl(tok)

	got := TreesStringTree(node, nil, nil)
	if got != "hello" {
		t.Fatalf("TreesStringTree(leaf terminal) = %q, want %q", got, "hello")
	}
}

func TestTreesStringTreeWrapsChildrenInParens(t *testing.T) {
	ctx := NewBaseParserRuleContext(nil, -1)
	a := NewCommonToken(nil, nil, 1, TokenDefaultChannel, 0, 0)
	a.SetText("a")
	b := NewCommonToken(nil, nil, 1, TokenDefaultChannel, 0, 0)
	b.SetText("b")
	ctx.AddTokenNode(a)
	ctx.AddTokenNode(b)

	got := TreesStringTree(ctx, nil, nil)
	want := "(ab a b)" // node text with nil ruleNames falls back to GetText(), which concatenates children
	if got != want {
		t.Fatalf("TreesStringTree(two children) = %q, want %q", got, want)
	}
}
