// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

// TokenStream is what the parser ATN simulator and generated rule methods
// consume: LT/LA lookahead plus random access by index, layered over a
// TokenSource.
type TokenStream interface {
	IntStream
	LT(k int) Token
	Get(index int) Token
	GetTokenSource() TokenSource
	GetAllText() string
	GetTextFromInterval(i Interval) string
	GetTextFromTokens(start, stop Token) string
	GetTextFromRuleContext(ctx RuleContext) string
	Fill()
}

// BufferedTokenStream pulls tokens from a TokenSource on demand and keeps
// them all in memory, exactly like the teacher's buffered stream: the
// parser never asks the lexer for a token it has already seen twice.
type BufferedTokenStream struct {
	tokenSource TokenSource
	tokens      []Token
	index       int
	fetchedEOF  bool
}

func NewBufferedTokenStream(src TokenSource) *BufferedTokenStream {
	return &BufferedTokenStream{tokenSource: src, index: -1}
}

func (b *BufferedTokenStream) GetTokenSource() TokenSource { return b.tokenSource }

func (b *BufferedTokenStream) Mark() int { return 0 }

func (b *BufferedTokenStream) Release(marker int) {}

func (b *BufferedTokenStream) Index() int { return b.index }

func (b *BufferedTokenStream) Seek(index int) {
	b.lazyInit()
	b.index = b.adjustSeekIndex(index)
}

func (b *BufferedTokenStream) GetSourceName() string { return b.tokenSource.GetSourceName() }

func (b *BufferedTokenStream) adjustSeekIndex(i int) int { return i }

func (b *BufferedTokenStream) lazyInit() {
	if b.index == -1 {
		b.setup()
	}
}

func (b *BufferedTokenStream) setup() {
	b.sync(0)
	b.index = b.adjustSeekIndex(0)
}

// sync makes sure the buffer has at least `want+1` tokens, fetching more
// from the source as needed and stopping once EOF has been seen.
func (b *BufferedTokenStream) sync(want int) bool {
	need := want - len(b.tokens) + 1
	if need <= 0 {
		return true
	}
	fetched := b.fetch(need)
	return fetched >= need
}

func (b *BufferedTokenStream) fetch(n int) int {
	if b.fetchedEOF {
		return 0
	}
	for i := 0; i < n; i++ {
		t := b.tokenSource.NextToken()
		t.SetTokenIndex(len(b.tokens))
		b.tokens = append(b.tokens, t)
		if t.GetTokenType() == TokenEOF {
			b.fetchedEOF = true
			return i + 1
		}
	}
	return n
}

func (b *BufferedTokenStream) Get(index int) Token {
	b.lazyInit()
	return b.tokens[index]
}

func (b *BufferedTokenStream) Consume() {
	b.lazyInit()
	if b.index >= 0 && b.index < len(b.tokens) && b.tokens[b.index].GetTokenType() == TokenEOF {
		panic("IllegalState: cannot consume EOF")
	}
	if b.sync(b.index + 1) {
		b.index = b.adjustSeekIndex(b.index + 1)
	}
}

func (b *BufferedTokenStream) LA(i int) int {
	t := b.LT(i)
	if t == nil {
		return TokenEOF
	}
	return t.GetTokenType()
}

func (b *BufferedTokenStream) LT(k int) Token {
	b.lazyInit()
	if k == 0 {
		return nil
	}
	if k < 0 {
		return b.lbLT(-k)
	}
	i := b.index + k - 1
	b.sync(i)
	if i >= len(b.tokens) {
		return b.tokens[len(b.tokens)-1]
	}
	return b.tokens[i]
}

func (b *BufferedTokenStream) lbLT(k int) Token {
	if b.index-k < 0 {
		return nil
	}
	return b.tokens[b.index-k]
}

func (b *BufferedTokenStream) Size() int { return len(b.tokens) }

func (b *BufferedTokenStream) Fill() {
	b.lazyInit()
	for b.fetch(1000) == 1000 {
	}
}

func (b *BufferedTokenStream) GetAllText() string {
	b.Fill()
	return b.GetTextFromInterval(NewInterval(0, len(b.tokens)-1))
}

func (b *BufferedTokenStream) GetTextFromInterval(iv Interval) string {
	b.lazyInit()
	if iv.Start < 0 || iv.Stop >= len(b.tokens) {
		return ""
	}
	var out []byte
	for i := iv.Start; i <= iv.Stop; i++ {
		out = append(out, b.tokens[i].GetText()...)
	}
	return string(out)
}

func (b *BufferedTokenStream) GetTextFromTokens(start, stop Token) string {
	if start == nil || stop == nil {
		return ""
	}
	return b.GetTextFromInterval(NewInterval(start.GetTokenIndex(), stop.GetTokenIndex()))
}

func (b *BufferedTokenStream) GetTextFromRuleContext(ctx RuleContext) string {
	if ctx == nil {
		return ""
	}
	iv := ctx.GetSourceInterval()
	return b.GetTextFromInterval(iv)
}
