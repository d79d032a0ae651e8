// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

const (
	LexerDefaultMode   = 0
	LexerMore          = -2
	LexerSkip          = -3
	LexerDefaultTokenChannel = TokenDefaultChannel
	LexerHidden              = TokenHiddenChannel
	LexerMinCharValue  = 0x0000
	LexerMaxCharValue  = 0x10FFFF
)

// Lexer is the driver loop a generated lexer embeds a BaseLexer into: it
// owns the character stream, the mode stack, and the emit-buffer the
// ATN's lexer actions mutate mid-match (spec §4.6, segment 10).
type Lexer interface {
	TokenSource
	Recognizer

	Emit() Token

	Action(localctx RuleContext, ruleIndex, actionIndex int)

	GetInterpreter() *LexerATNSimulator

	GetCharPositionInLine() int
	GetLine() int
	NextToken() Token

	Skip()
	More()
	SetChannel(int)
	PushMode(int)
	PopMode() int
	SetMode(int)
	SetType(int)
	GetType() int
}

type BaseLexer struct {
	*BaseRecognizer

	Interpreter *LexerATNSimulator
	Virt        Lexer // overridden by generated lexers for Action/Sempred dispatch

	Input CharStream

	factory         TokenFactory
	tokenFactorySourcePair *TokenSourceCharStreamPair

	Channel int
	Type    int
	modeStack []int
	mode      int

	text        string
	thetoken    Token
	tokenStartCharIndex int
	tokenStartLine      int
	tokenStartColumn    int
	actionType  int
	hitEOFset   bool
}

// TokenSourceCharStreamPair is the (source, input) pair CommonToken
// stashes so a token can be asked to recompute its own text lazily.
type TokenSourceCharStreamPair struct {
	tokenSource TokenSource
	charStream  CharStream
}

func NewBaseLexer(input CharStream) *BaseLexer {
	l := &BaseLexer{
		BaseRecognizer: NewBaseRecognizer(),
		Input:          input,
		factory:        CommonTokenFactoryDefault,
		Channel:        TokenDefaultChannel,
		Type:           TokenInvalidType,
		tokenStartCharIndex: -1,
	}
	l.tokenFactorySourcePair = &TokenSourceCharStreamPair{tokenSource: l, charStream: input}
	return l
}

func (b *BaseLexer) GetInterpreter() *LexerATNSimulator { return b.Interpreter }
func (b *BaseLexer) GetInputStream() CharStream         { return b.Input }
func (b *BaseLexer) GetSourceName() string              { return b.Input.GetSourceName() }
func (b *BaseLexer) GetATN() *ATN                       { return b.Interpreter.atn }

func (b *BaseLexer) GetTokenFactory() TokenFactory         { return b.factory }
func (b *BaseLexer) SetTokenFactory(factory TokenFactory)  { b.factory = factory }

func (b *BaseLexer) GetLine() int               { return b.Interpreter.GetLine() }
func (b *BaseLexer) GetCharPositionInLine() int { return b.Interpreter.GetCharPositionInLine() }

func (b *BaseLexer) GetType() int    { return b.Type }
func (b *BaseLexer) SetType(t int)   { b.Type = t }
func (b *BaseLexer) SetChannel(c int) { b.Channel = c }

// Action dispatches an embedded rule action by (ruleIndex, actionIndex), the
// pair a LexerCustomAction carries. Generated lexers override this through
// Virt; a plain BaseLexer with no generated action code has nothing to run.
func (b *BaseLexer) Action(localctx RuleContext, ruleIndex, actionIndex int) {
	if b.Virt != nil {
		b.Virt.Action(localctx, ruleIndex, actionIndex)
	}
}

func (b *BaseLexer) Skip() { b.Type = LexerSkip }
func (b *BaseLexer) More() { b.Type = LexerMore }

func (b *BaseLexer) SetMode(m int) { b.mode = m }
func (b *BaseLexer) PushMode(m int) {
	b.modeStack = append(b.modeStack, b.mode)
	b.mode = m
}
func (b *BaseLexer) PopMode() int {
	if len(b.modeStack) == 0 {
		panic("IllegalState: empty mode stack")
	}
	b.mode = b.modeStack[len(b.modeStack)-1]
	b.modeStack = b.modeStack[:len(b.modeStack)-1]
	return b.mode
}

func (b *BaseLexer) Reset() {
	if b.Input != nil {
		b.Input.Seek(0)
	}
	b.thetoken = nil
	b.Type = TokenInvalidType
	b.Channel = TokenDefaultChannel
	b.tokenStartCharIndex = -1
	b.tokenStartColumn = -1
	b.tokenStartLine = -1
	b.text = ""
	b.mode = LexerDefaultMode
	b.modeStack = nil
}

// NextToken runs the longest-match loop (spec §4.6) until a real token
// (not Skip/More) is produced, or EOF. Lexer rule actions can request
// Skip (discard this match and retry) or More (keep matching without
// emitting, accumulating text for the next accept).
func (b *BaseLexer) NextToken() Token {
	if b.Input == nil {
		panic("IllegalState: NextToken called with no input stream")
	}
	tokenStartMarker := b.Input.Mark()
	defer b.Input.Release(tokenStartMarker)

	for {
		if b.hitEOF() {
			b.emitEOF()
			return b.thetoken
		}
		b.thetoken = nil
		b.Channel = TokenDefaultChannel
		b.tokenStartCharIndex = b.Input.Index()
		b.tokenStartColumn = b.Interpreter.GetCharPositionInLine()
		b.tokenStartLine = b.Interpreter.GetLine()
		b.text = ""

		continueOuter := false
		for {
			b.Type = TokenInvalidType
			ttype := LexerSkip
			func() {
				defer func() {
					if r := recover(); r != nil {
						if lnvae, ok := r.(*LexerNoViableAltException); ok {
							b.NotifyListeners(lnvae)
							b.Recover(lnvae)
							ttype = LexerSkip
							return
						}
						panic(r)
					}
				}()
				ttype = b.Interpreter.Match(b.Input, b.mode)
			}()
			if b.Input.LA(1) == TokenEOF {
				b.hitEOFset = true
			}
			if b.Type == TokenInvalidType {
				b.Type = ttype
			}
			if b.Type == LexerSkip {
				continueOuter = true
				break
			}
			if b.Type != LexerMore {
				break
			}
		}
		if continueOuter {
			continue
		}
		if b.thetoken == nil {
			b.Emit()
		}
		return b.thetoken
	}
}

func (b *BaseLexer) hitEOF() bool { return b.hitEOFset && b.Input.LA(1) == TokenEOF }

// Emit constructs the Token for the text/bounds accumulated since the
// last call and records it as "the" current token (spec §4.6 "token
// construction happens after an accept, via the installed TokenFactory").
func (b *BaseLexer) Emit() Token {
	t := b.factory.Create(b, b.Input, b.Type, b.Channel, b.tokenStartCharIndex, b.GetCharIndex()-1, b.tokenStartLine, b.tokenStartColumn)
	b.thetoken = t
	return t
}

func (b *BaseLexer) emitEOF() Token {
	t := b.factory.Create(b, b.Input, TokenEOF, TokenDefaultChannel, b.Input.Index(), b.Input.Index()-1, b.GetLine(), b.GetCharPositionInLine())
	b.thetoken = t
	return t
}

func (b *BaseLexer) GetCharIndex() int { return b.Input.Index() }

func (b *BaseLexer) GetText() string {
	if b.text != "" {
		return b.text
	}
	return b.Input.GetTextFromInterval(NewInterval(b.tokenStartCharIndex, b.GetCharIndex()-1))
}

func (b *BaseLexer) SetText(text string) { b.text = text }

// Recover discards the current character and keeps going, the default
// lexer error-recovery strategy (spec §7 "the lexer has no token-level
// recovery, only character-skip").
func (b *BaseLexer) Recover(re RecognitionException) {
	if b.Input.LA(1) != TokenEOF {
		b.Interpreter.Consume(b.Input)
	}
}

func (b *BaseLexer) NotifyListeners(e *LexerNoViableAltException) {
	text := b.Input.GetText(b.tokenStartCharIndex, b.Input.Index())
	msg := "token recognition error at: '" + text + "'"
	listener := b.GetErrorListenerDispatch()
	listener.SyntaxError(b, nil, b.tokenStartLine, b.tokenStartColumn, msg, e)
}
