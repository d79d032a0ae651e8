// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

// LexerActionExecutor accumulates the lexer actions a DFA/ATN path passed
// through during closure and fires them in order at accept time. It is
// cached on the DFAState so a repeat match of the same rule does not
// re-walk the ATN to rediscover which actions apply (spec §4.6).
type LexerActionExecutor struct {
	lexerActions []LexerAction
	cachedHash   int
}

func NewLexerActionExecutor(actions []LexerAction) *LexerActionExecutor {
	e := &LexerActionExecutor{lexerActions: actions}
	h := murmurInit(0)
	for _, a := range actions {
		h = murmurUpdate(h, a.Hash())
	}
	e.cachedHash = murmurFinish(h, len(actions))
	return e
}

// LexerActionExecutorAppend returns an executor that contains executor's
// actions plus lexerAction, rewriting it to a position-dependent wrapper if
// necessary so that replaying it later re-targets the correct input offset.
func LexerActionExecutorAppend(executor *LexerActionExecutor, lexerAction LexerAction) *LexerActionExecutor {
	if executor == nil {
		return NewLexerActionExecutor([]LexerAction{lexerAction})
	}
	newActions := make([]LexerAction, len(executor.lexerActions)+1)
	copy(newActions, executor.lexerActions)
	newActions[len(executor.lexerActions)] = lexerAction
	return NewLexerActionExecutor(newActions)
}

// FixOffsetBeforeMatch rewrites every position-dependent action to carry
// the given input offset, used when the DFA edge that triggered this
// executor is reused at a different input position than where it was
// first computed.
func (e *LexerActionExecutor) FixOffsetBeforeMatch(offset int) *LexerActionExecutor {
	var updated []LexerAction
	for i, a := range e.lexerActions {
		if a.getIsPositionDependent() {
			if updated == nil {
				updated = append([]LexerAction{}, e.lexerActions...)
			}
			updated[i] = NewLexerIndexedCustomAction(offset, a)
		}
	}
	if updated == nil {
		return e
	}
	return NewLexerActionExecutor(updated)
}

// Execute runs every accumulated action against the lexer, restoring the
// lexer's input position for each position-dependent action first so
// side-effecting custom actions see the text they were recorded against.
func (e *LexerActionExecutor) Execute(lexer Lexer, input CharStream, startIndex int) {
	requiresSeek := false
	stopIndex := input.Index()
	defer func() {
		if requiresSeek {
			input.Seek(stopIndex)
		}
	}()
	for _, action := range e.lexerActions {
		cur := action
		if indexed, ok := cur.(*LexerIndexedCustomAction); ok {
			offset := indexed.offset
			input.Seek(startIndex + offset)
			cur = indexed.action
			requiresSeek = startIndex+offset != stopIndex
		} else if cur.getIsPositionDependent() {
			input.Seek(stopIndex)
			requiresSeek = false
		}
		cur.execute(lexer)
	}
}

func (e *LexerActionExecutor) Hash() int { return e.cachedHash }

func (e *LexerActionExecutor) Equals(other *LexerActionExecutor) bool {
	if other == nil {
		return false
	}
	if e == other {
		return true
	}
	if len(e.lexerActions) != len(other.lexerActions) {
		return false
	}
	for i, a := range e.lexerActions {
		if !a.Equals(other.lexerActions[i]) {
			return false
		}
	}
	return true
}
