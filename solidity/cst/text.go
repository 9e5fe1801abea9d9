package cst

import (
	"fmt"
	"sort"
	"unicode/utf16"
	"unicode/utf8"
)

// TextRange is a half-open byte range into the source.
type TextRange struct {
	Start int
	End   int
}

func (r TextRange) Len() int {
	return r.End - r.Start
}

func (r TextRange) IsEmpty() bool {
	return r.Start == r.End
}

func (r TextRange) Contains(offset int) bool {
	return r.Start <= offset && offset < r.End
}

func (r TextRange) String() string {
	return fmt.Sprintf("%d..%d", r.Start, r.End)
}

// Position is a 1-based line and byte column.
type Position struct {
	Offset int
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// LineIndex maps byte offsets to lines. Lines end at "\n", "\r\n" or a lone
// "\r", matching the end-of-line trivia.
type LineIndex struct {
	src    string
	starts []int
}

func NewLineIndex(src string) *LineIndex {
	starts := []int{0}
	for i := 0; i < len(src); i++ {
		switch src[i] {
		case '\n':
			starts = append(starts, i+1)
		case '\r':
			if i+1 < len(src) && src[i+1] == '\n' {
				i++
			}
			starts = append(starts, i+1)
		}
	}
	return &LineIndex{src: src, starts: starts}
}

func (li *LineIndex) LineCount() int {
	return len(li.starts)
}

// Position resolves offset, clamped to the source.
func (li *LineIndex) Position(offset int) Position {
	offset = max(0, min(offset, len(li.src)))
	line := sort.Search(len(li.starts), func(i int) bool { return li.starts[i] > offset }) - 1
	return Position{Offset: offset, Line: line + 1, Column: offset - li.starts[line] + 1}
}

// Line returns the text of the 1-based line n without its terminator.
func (li *LineIndex) Line(n int) string {
	if n < 1 || n > len(li.starts) {
		return ""
	}
	start := li.starts[n-1]
	end := len(li.src)
	if n < len(li.starts) {
		end = li.starts[n]
	}
	for end > start && (li.src[end-1] == '\n' || li.src[end-1] == '\r') {
		end--
	}
	return li.src[start:end]
}

// UTF16Column counts the UTF-16 code units between the start of the line
// holding offset and offset itself, as editors count columns.
func (li *LineIndex) UTF16Column(offset int) int {
	p := li.Position(offset)
	text := li.src[li.starts[p.Line-1]:p.Offset]
	n := 0
	for len(text) > 0 {
		r, size := utf8.DecodeRuneInString(text)
		text = text[size:]
		if utf16.RuneLen(r) == 2 {
			n += 2
		} else {
			n++
		}
	}
	return n
}
