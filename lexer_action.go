// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

// Lexer action type tags (spec §6, segment 10 and §4.6).
const (
	LexerActionTypeChannel = iota
	LexerActionTypeCustom
	LexerActionTypeMode
	LexerActionTypeMore
	LexerActionTypePopMode
	LexerActionTypePushMode
	LexerActionTypeSkip
	LexerActionTypeType
)

// LexerAction is executed by the lexer driver at token-emission time, never
// during closure itself — closure only records which actions a config
// passed through (spec §4.6 "accumulated... execution deferred until
// accept").
type LexerAction interface {
	getActionType() int
	getIsPositionDependent() bool
	execute(lexer Lexer)
	Hash() int
	Equals(other LexerAction) bool
}

type BaseLexerAction struct {
	actionType         int
	isPositionDependent bool
}

func (a *BaseLexerAction) getActionType() int        { return a.actionType }
func (a *BaseLexerAction) getIsPositionDependent() bool { return a.isPositionDependent }
func (a *BaseLexerAction) execute(Lexer)             {}
func (a *BaseLexerAction) Hash() int                 { return a.actionType }

type LexerSkipAction struct{ *BaseLexerAction }

var LexerSkipActionINSTANCE = NewLexerSkipAction()

func NewLexerSkipAction() *LexerSkipAction {
	return &LexerSkipAction{&BaseLexerAction{actionType: LexerActionTypeSkip}}
}
func (a *LexerSkipAction) execute(lexer Lexer) { lexer.Skip() }
func (a *LexerSkipAction) Equals(o LexerAction) bool { _, ok := o.(*LexerSkipAction); return ok }

type LexerMoreAction struct{ *BaseLexerAction }

var LexerMoreActionINSTANCE = NewLexerMoreAction()

func NewLexerMoreAction() *LexerMoreAction {
	return &LexerMoreAction{&BaseLexerAction{actionType: LexerActionTypeMore}}
}
func (a *LexerMoreAction) execute(lexer Lexer) { lexer.More() }
func (a *LexerMoreAction) Equals(o LexerAction) bool { _, ok := o.(*LexerMoreAction); return ok }

type LexerTypeAction struct {
	*BaseLexerAction
	theType int
}

func NewLexerTypeAction(t int) *LexerTypeAction {
	return &LexerTypeAction{&BaseLexerAction{actionType: LexerActionTypeType}, t}
}
func (a *LexerTypeAction) execute(lexer Lexer) { lexer.SetType(a.theType) }
func (a *LexerTypeAction) Hash() int           { return murmurCombine(a.actionType, a.theType) }
func (a *LexerTypeAction) Equals(o LexerAction) bool {
	other, ok := o.(*LexerTypeAction)
	return ok && other.theType == a.theType
}

type LexerChannelAction struct {
	*BaseLexerAction
	channel int
}

func NewLexerChannelAction(channel int) *LexerChannelAction {
	return &LexerChannelAction{&BaseLexerAction{actionType: LexerActionTypeChannel}, channel}
}
func (a *LexerChannelAction) execute(lexer Lexer) { lexer.SetChannel(a.channel) }
func (a *LexerChannelAction) Hash() int           { return murmurCombine(a.actionType, a.channel) }
func (a *LexerChannelAction) Equals(o LexerAction) bool {
	other, ok := o.(*LexerChannelAction)
	return ok && other.channel == a.channel
}

type LexerModeAction struct {
	*BaseLexerAction
	mode int
}

func NewLexerModeAction(mode int) *LexerModeAction {
	return &LexerModeAction{&BaseLexerAction{actionType: LexerActionTypeMode}, mode}
}
func (a *LexerModeAction) execute(lexer Lexer) { lexer.SetMode(a.mode) }
func (a *LexerModeAction) Hash() int           { return murmurCombine(a.actionType, a.mode) }
func (a *LexerModeAction) Equals(o LexerAction) bool {
	other, ok := o.(*LexerModeAction)
	return ok && other.mode == a.mode
}

type LexerPushModeAction struct {
	*BaseLexerAction
	mode int
}

func NewLexerPushModeAction(mode int) *LexerPushModeAction {
	return &LexerPushModeAction{&BaseLexerAction{actionType: LexerActionTypePushMode}, mode}
}
func (a *LexerPushModeAction) execute(lexer Lexer) { lexer.PushMode(a.mode) }
func (a *LexerPushModeAction) Hash() int           { return murmurCombine(a.actionType, a.mode) }
func (a *LexerPushModeAction) Equals(o LexerAction) bool {
	other, ok := o.(*LexerPushModeAction)
	return ok && other.mode == a.mode
}

type LexerPopModeAction struct{ *BaseLexerAction }

var LexerPopModeActionINSTANCE = NewLexerPopModeAction()

func NewLexerPopModeAction() *LexerPopModeAction {
	return &LexerPopModeAction{&BaseLexerAction{actionType: LexerActionTypePopMode}}
}
func (a *LexerPopModeAction) execute(lexer Lexer) { lexer.PopMode() }
func (a *LexerPopModeAction) Equals(o LexerAction) bool { _, ok := o.(*LexerPopModeAction); return ok }

// LexerCustomAction wraps a generated rule's embedded action code; the
// simulator only ever stores the (ruleIndex, actionIndex) pair, never the
// action body itself — execution is dispatched back into the generated
// lexer's Action(ruleIndex, actionIndex) method.
type LexerCustomAction struct {
	*BaseLexerAction
	ruleIndex, actionIndex int
}

func NewLexerCustomAction(ruleIndex, actionIndex int) *LexerCustomAction {
	return &LexerCustomAction{&BaseLexerAction{actionType: LexerActionTypeCustom, isPositionDependent: true}, ruleIndex, actionIndex}
}
func (a *LexerCustomAction) execute(lexer Lexer) { lexer.Action(nil, a.ruleIndex, a.actionIndex) }
func (a *LexerCustomAction) Hash() int {
	return murmurCombine(murmurCombine(a.actionType, a.ruleIndex), a.actionIndex)
}
func (a *LexerCustomAction) Equals(o LexerAction) bool {
	other, ok := o.(*LexerCustomAction)
	return ok && other.ruleIndex == a.ruleIndex && other.actionIndex == a.actionIndex
}

// LexerIndexedCustomAction tags a position-dependent action with the input
// offset at which it must fire, because closure may traverse the same
// action transition at several different input offsets.
type LexerIndexedCustomAction struct {
	*BaseLexerAction
	offset int
	action LexerAction
}

func NewLexerIndexedCustomAction(offset int, action LexerAction) *LexerIndexedCustomAction {
	return &LexerIndexedCustomAction{&BaseLexerAction{actionType: action.getActionType(), isPositionDependent: true}, offset, action}
}
func (a *LexerIndexedCustomAction) execute(lexer Lexer) { a.action.execute(lexer) }
func (a *LexerIndexedCustomAction) Hash() int           { return murmurCombine(a.offset, a.action.Hash()) }
func (a *LexerIndexedCustomAction) Equals(o LexerAction) bool {
	other, ok := o.(*LexerIndexedCustomAction)
	return ok && other.offset == a.offset && other.action.Equals(a.action)
}
