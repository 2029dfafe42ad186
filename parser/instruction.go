package parser

import (
	"github.com/docklint/docklint/textdocument"
)

// Argument is a whitespace-delimited instruction argument token. Value has
// line continuations spliced out; Range covers the token as written,
// including any continuation characters inside it.
type Argument struct {
	Value string
	Range textdocument.Range
}

// Instruction is one logical Dockerfile instruction, possibly spanning
// multiple physical lines via continuations.
type Instruction struct {
	// Keyword is the canonical uppercase instruction keyword.
	Keyword string
	// Written is the keyword exactly as it appears in the text.
	Written string

	// Range covers the keyword through the last argument.
	Range textdocument.Range
	// KeywordRange covers only the keyword.
	KeywordRange textdocument.Range

	args []Argument

	keywordEndOffset int
	scanEndOffset    int
}

// Arguments returns the instruction's argument tokens in source order.
func (i *Instruction) Arguments() []Argument {
	return i.args
}

// ArgumentsOffsets returns the byte offsets of the raw text following the
// keyword, through the line break (or end of text) that terminates the
// instruction. Callers re-scanning argument text character by character
// start here.
func (i *Instruction) ArgumentsOffsets() (start, end int) {
	return i.keywordEndOffset, i.scanEndOffset
}
