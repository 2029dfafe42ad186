// Package textdocument provides offset and position math over a document's
// full text. Columns are counted in UTF-16 code units for compatibility
// with editor protocols.
package textdocument

import (
	"sort"
	"unicode/utf8"
)

// Position is a point in source text, zero-based.
type Position struct {
	Line      int `json:"line"`
	Character int `json:"character"`
}

// Range is a section of source text between two positions. Start is never
// after End.
type Range struct {
	Start Position `json:"start"`
	End   Position `json:"end"`
}

// Before reports whether p is strictly before other.
func (p Position) Before(other Position) bool {
	if p.Line != other.Line {
		return p.Line < other.Line
	}
	return p.Character < other.Character
}

// Contains reports whether pos lies within r, end-inclusive.
func (r Range) Contains(pos Position) bool {
	return !pos.Before(r.Start) && !r.End.Before(pos)
}

// TextDocument wraps document text with precomputed line starts so that
// byte offsets and protocol positions convert both ways.
type TextDocument struct {
	text        string
	lineOffsets []int // byte offset of the first character of each line
}

// New builds a TextDocument from the full document text.
func New(text string) *TextDocument {
	offsets := []int{0}
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			offsets = append(offsets, i+1)
		}
	}
	return &TextDocument{text: text, lineOffsets: offsets}
}

// Text returns the full document text.
func (d *TextDocument) Text() string {
	return d.text
}

// LineCount returns the number of lines in the document.
func (d *TextDocument) LineCount() int {
	return len(d.lineOffsets)
}

// PositionAt converts a byte offset into a Position. Offsets outside the
// document are clamped.
func (d *TextDocument) PositionAt(offset int) Position {
	if offset < 0 {
		offset = 0
	}
	if offset > len(d.text) {
		offset = len(d.text)
	}
	line := sort.Search(len(d.lineOffsets), func(i int) bool {
		return d.lineOffsets[i] > offset
	}) - 1
	character := 0
	for i := d.lineOffsets[line]; i < offset; {
		r, size := utf8.DecodeRuneInString(d.text[i:])
		character += utf16Len(r)
		i += size
	}
	return Position{Line: line, Character: character}
}

// OffsetAt converts a Position into a byte offset. Positions beyond the
// end of a line or of the document are clamped.
func (d *TextDocument) OffsetAt(pos Position) int {
	if pos.Line < 0 {
		return 0
	}
	if pos.Line >= len(d.lineOffsets) {
		return len(d.text)
	}
	offset := d.lineOffsets[pos.Line]
	end := len(d.text)
	if pos.Line+1 < len(d.lineOffsets) {
		end = d.lineOffsets[pos.Line+1]
	}
	for character := 0; offset < end && character < pos.Character; {
		r, size := utf8.DecodeRuneInString(d.text[offset:])
		if r == '\n' {
			break
		}
		character += utf16Len(r)
		offset += size
	}
	return offset
}

// RangeOf converts a byte offset pair into a Range.
func (d *TextDocument) RangeOf(start, end int) Range {
	return Range{Start: d.PositionAt(start), End: d.PositionAt(end)}
}

func utf16Len(r rune) int {
	if r > 0xFFFF {
		return 2
	}
	return 1
}
