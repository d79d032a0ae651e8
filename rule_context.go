// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

// RuleContext is the call-stack node the parser pushes on EnterRule and
// pops on ExitRule (spec §3 GLOSSARY "rule context"): it doubles as the
// parse-tree's interior node once parsing finishes. invokingState is the
// ATN state the caller was in when it invoked this rule, or -1 for the
// outermost context — PredictionContext construction reads exactly this
// chain (spec §4.2).
type RuleContext interface {
	RuleNode

	GetInvokingState() int
	SetInvokingState(int)

	GetRuleIndex() int
	IsEmpty() bool

	GetAltNumber() int
	SetAltNumber(altNumber int)
}

type BaseRuleContext struct {
	parentCtx     RuleContext
	invokingState int
	RuleIndex     int
}

func NewBaseRuleContext(parent RuleContext, invokingState int) *BaseRuleContext {
	ctx := &BaseRuleContext{invokingState: -1}
	if parent != nil {
		ctx.parentCtx = parent
		ctx.invokingState = invokingState
	}
	return ctx
}

func (b *BaseRuleContext) GetInvokingState() int        { return b.invokingState }
func (b *BaseRuleContext) SetInvokingState(t int)        { b.invokingState = t }
func (b *BaseRuleContext) GetRuleIndex() int             { return b.RuleIndex }
func (b *BaseRuleContext) GetAltNumber() int             { return ATNInvalidAltNumber }
func (b *BaseRuleContext) SetAltNumber(altNumber int)    {}

func (b *BaseRuleContext) IsEmpty() bool { return b.invokingState == -1 }

func (b *BaseRuleContext) GetParent() Tree {
	if b.parentCtx == nil {
		return nil
	}
	return b.parentCtx
}

func (b *BaseRuleContext) SetParent(parent Tree) {
	if parent == nil {
		b.parentCtx = nil
		return
	}
	b.parentCtx = parent.(RuleContext)
}

func (b *BaseRuleContext) GetChild(i int) Tree { return nil }
func (b *BaseRuleContext) GetChildCount() int  { return 0 }
func (b *BaseRuleContext) GetChildren() []Tree { return nil }

func (b *BaseRuleContext) GetRuleContext() RuleContext { return b }

func (b *BaseRuleContext) GetSourceInterval() Interval { return NewInterval(-1, -2) }

func (b *BaseRuleContext) GetText() string {
	if b.GetChildCount() == 0 {
		return ""
	}
	return ""
}

func (b *BaseRuleContext) Accept(v ParseTreeVisitor) interface{} { return v.VisitChildren(b) }

func (b *BaseRuleContext) ToStringTree(ruleNames []string, recog Recognizer) string {
	return TreesStringTree(b, ruleNames, recog)
}

func (b *BaseRuleContext) String() string { return "" }
