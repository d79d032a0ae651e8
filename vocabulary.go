// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

import "fmt"

// Vocabulary maps token type to the names a grammar gave it: the literal
// spelling for fixed tokens ('if', '+'), the symbolic name assigned in the
// grammar (IDENTIFIER), and a display name for diagnostics that prefers
// the literal, falls back to the symbolic name, then the bare number.
type Vocabulary interface {
	GetMaxTokenType() int
	GetLiteralName(tokenType int) string
	GetSymbolicName(tokenType int) string
	GetDisplayName(tokenType int) string
}

type vocabularyImpl struct {
	literalNames  []string
	symbolicNames []string
}

// NewVocabulary builds a Vocabulary from the literal/symbolic name tables
// the ATN deserializer attaches to a generated recognizer.
func NewVocabulary(literalNames, symbolicNames []string) Vocabulary {
	return &vocabularyImpl{literalNames: literalNames, symbolicNames: symbolicNames}
}

// VocabularyEmptyVocabulary is used when a recognizer carries no name
// tables at all; every token renders as its bare numeric type.
var VocabularyEmptyVocabulary = NewVocabulary(nil, nil)

func (v *vocabularyImpl) GetMaxTokenType() int {
	if len(v.symbolicNames) > len(v.literalNames) {
		return len(v.symbolicNames) - 1
	}
	return len(v.literalNames) - 1
}

func (v *vocabularyImpl) GetLiteralName(tokenType int) string {
	if tokenType >= 0 && tokenType < len(v.literalNames) {
		return v.literalNames[tokenType]
	}
	return ""
}

func (v *vocabularyImpl) GetSymbolicName(tokenType int) string {
	if tokenType == TokenEOF {
		return "EOF"
	}
	if tokenType >= 0 && tokenType < len(v.symbolicNames) {
		return v.symbolicNames[tokenType]
	}
	return ""
}

func (v *vocabularyImpl) GetDisplayName(tokenType int) string {
	if name := v.GetLiteralName(tokenType); name != "" {
		return name
	}
	if name := v.GetSymbolicName(tokenType); name != "" {
		return name
	}
	return fmt.Sprintf("%d", tokenType)
}
