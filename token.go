// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

import "fmt"

const (
	TokenInvalidType = 0
	TokenEpsilon     = -2
	TokenMinUserTokenType = 1
	TokenDefaultChannel   = 0
	TokenHiddenChannel    = 1
)

// Token is the unit recognized by the lexer ATN simulator and consumed by
// the parser ATN simulator. Concrete tokens are produced by a TokenFactory
// so that generated lexers can swap in custom token representations without
// touching the simulator.
type Token interface {
	GetSource() (TokenSource, CharStream)
	GetTokenType() int
	GetChannel() int
	GetStart() int
	GetStop() int
	GetLine() int
	GetColumn() int
	GetText() string
	SetText(s string)
	GetTokenIndex() int
	SetTokenIndex(v int)
	GetTokenSource() TokenSource
	GetInputStream() CharStream
	String() string
}

// CommonToken is the default Token implementation, mirroring a plain data
// record: no behavior beyond accessors, matching how the teacher keeps
// tokens dumb and puts all logic in the simulators and streams.
type CommonToken struct {
	tokenType   int
	channel     int
	start       int
	stop        int
	line        int
	column      int
	tokenIndex  int
	text        string
	textSet     bool
	source      TokenSource
	inputStream CharStream
}

func NewCommonToken(source TokenSource, input CharStream, tokenType, channel, start, stop int) *CommonToken {
	t := &CommonToken{
		tokenType:  tokenType,
		channel:    channel,
		start:      start,
		stop:       stop,
		tokenIndex: -1,
		source:     source,
		inputStream: input,
	}
	if source != nil {
		t.line = source.GetLine()
		t.column = source.GetCharPositionInLine()
	} else {
		t.column = -1
	}
	return t
}

func (t *CommonToken) GetSource() (TokenSource, CharStream) { return t.source, t.inputStream }
func (t *CommonToken) GetTokenSource() TokenSource          { return t.source }
func (t *CommonToken) GetInputStream() CharStream           { return t.inputStream }
func (t *CommonToken) GetTokenType() int                    { return t.tokenType }
func (t *CommonToken) GetChannel() int                      { return t.channel }
func (t *CommonToken) GetStart() int                        { return t.start }
func (t *CommonToken) GetStop() int                         { return t.stop }
func (t *CommonToken) GetLine() int                         { return t.line }
func (t *CommonToken) GetColumn() int                       { return t.column }
func (t *CommonToken) GetTokenIndex() int                   { return t.tokenIndex }
func (t *CommonToken) SetTokenIndex(v int)                  { t.tokenIndex = v }

func (t *CommonToken) GetText() string {
	if t.textSet {
		return t.text
	}
	if t.inputStream == nil {
		return ""
	}
	n := t.inputStream.Size()
	if t.start < n && t.stop < n {
		return t.inputStream.GetTextFromInterval(NewInterval(t.start, t.stop))
	}
	return "<EOF>"
}

func (t *CommonToken) SetText(s string) {
	t.text = s
	t.textSet = true
}

func (t *CommonToken) String() string {
	txt := t.GetText()
	return fmt.Sprintf("[@%d,%d:%d='%s',<%d>,%d:%d]", t.tokenIndex, t.start, t.stop, txt, t.tokenType, t.line, t.column)
}

// TokenFactory produces Token values for the lexer driver. Generated
// lexers rarely override this; it exists so custom token representations
// plug in without the simulator needing to know about them.
type TokenFactory interface {
	Create(source TokenSource, input CharStream, tokenType, channel, start, stop, line, column int) Token
}

type CommonTokenFactory struct {
	copyText bool
}

var CommonTokenFactoryDefault = NewCommonTokenFactory(false)

func NewCommonTokenFactory(copyText bool) *CommonTokenFactory {
	return &CommonTokenFactory{copyText: copyText}
}

func (f *CommonTokenFactory) Create(source TokenSource, input CharStream, tokenType, channel, start, stop, line, column int) Token {
	t := NewCommonToken(source, input, tokenType, channel, start, stop)
	t.line = line
	t.column = column
	if f.copyText && input != nil {
		n := input.Size()
		if start < n && stop < n {
			t.SetText(input.GetTextFromInterval(NewInterval(start, stop)))
		}
	}
	return t
}

// TokenSource is implemented by generated lexers (and by anything that can
// hand out tokens, e.g. a pre-tokenized replay source).
type TokenSource interface {
	NextToken() Token
	GetLine() int
	GetCharPositionInLine() int
	GetInputStream() CharStream
	GetSourceName() string
	GetTokenFactory() TokenFactory
	SetTokenFactory(factory TokenFactory)
}
