// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

import "os"

// IntStream is the shared contract between CharStream and TokenStream: a
// cursor over a sequence of int-valued symbols with nested mark/release.
type IntStream interface {
	Consume()
	LA(i int) int
	Mark() int
	Release(marker int)
	Index() int
	Seek(index int)
	Size() int
	GetSourceName() string
}

// CharStream is the input to a lexer ATN simulator. LA returns Unicode code
// points (or TokenEOF), never raw bytes, so the ATN's range transitions
// operate directly on rune values.
type CharStream interface {
	IntStream
	GetText(start, stop int) string
	GetTextFromInterval(i Interval) string
}

// InputStream is the default CharStream: an in-memory rune slice with a
// LIFO mark stack. Marks must be released in LIFO order (spec §6); a
// violation panics rather than silently desyncing the stream.
type InputStream struct {
	name      string
	data      []rune
	index     int
	size      int
	marks     []int
}

func NewInputStream(data string) *InputStream {
	runes := []rune(data)
	return &InputStream{
		name: "<empty>",
		data: runes,
		size: len(runes),
	}
}

// NewInputStreamFromFile reads path whole and wraps it as an InputStream,
// naming the stream after path for diagnostics.
func NewInputStreamFromFile(path string) (*InputStream, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	is := NewInputStream(string(buf))
	is.name = path
	return is, nil
}

func (is *InputStream) Index() int { return is.index }
func (is *InputStream) Size() int  { return is.size }

func (is *InputStream) Mark() int {
	is.marks = append(is.marks, is.index)
	return -len(is.marks)
}

func (is *InputStream) Release(marker int) {
	expect := -marker
	if expect != len(is.marks) {
		panic("IllegalState: mark/release must nest LIFO")
	}
	is.marks = is.marks[:len(is.marks)-1]
}

func (is *InputStream) Consume() {
	if is.index >= is.size {
		panic("IllegalState: cannot consume EOF")
	}
	is.index++
}

func (is *InputStream) LA(offset int) int {
	if offset == 0 {
		return 0
	}
	pos := is.index
	if offset < 0 {
		pos += offset
		if pos < 0 {
			return TokenEOF
		}
	} else {
		pos += offset - 1
	}
	if pos < 0 || pos >= is.size {
		return TokenEOF
	}
	return int(is.data[pos])
}

func (is *InputStream) LT(offset int) int { return is.LA(offset) }

func (is *InputStream) Seek(index int) {
	if index <= is.index {
		is.index = index
		return
	}
	is.index = min(index, is.size)
}

func (is *InputStream) GetText(start, stop int) string {
	return is.GetTextFromInterval(NewInterval(start, stop))
}

func (is *InputStream) GetTextFromInterval(i Interval) string {
	start, stop := i.Start, i.Stop
	if stop >= is.size {
		stop = is.size - 1
	}
	if start >= is.size || stop < start {
		return ""
	}
	return string(is.data[start : stop+1])
}

func (is *InputStream) GetSourceName() string { return is.name }

func (is *InputStream) String() string { return string(is.data) }

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
