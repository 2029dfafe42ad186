// Package parser builds the Dockerfile instruction model consumed by the
// validator: an optional line-0 directive and the ordered instruction list
// with keyword, range, and escape-aware argument information.
//
// The parser never fails on malformed text; it produces a best-effort
// model and leaves diagnosis to the validator.
package parser

import (
	"strings"

	"github.com/docklint/docklint/textdocument"
)

// Dockerfile is the parsed document model.
type Dockerfile struct {
	Document *textdocument.TextDocument

	// Directive is the line-0 parser directive, or nil.
	Directive *Directive

	// Instructions in source order.
	Instructions []*Instruction

	// EscapeCharacter in effect for the document, `\` or a backtick.
	EscapeCharacter byte
}

// Parse builds the document model from full Dockerfile text.
func Parse(text string) *Dockerfile {
	doc := textdocument.New(text)
	directive := parseDirective(doc)
	escape := EscapeCharacter(directive)

	body := 0
	if directive != nil {
		body = doc.OffsetAt(directive.Range.End)
	}

	p := &docParser{text: text, escape: escape, doc: doc}
	return &Dockerfile{
		Document:        doc,
		Directive:       directive,
		Instructions:    p.parse(body),
		EscapeCharacter: escape,
	}
}

type docParser struct {
	text   string
	escape byte
	doc    *textdocument.TextDocument
}

func (p *docParser) parse(offset int) []*Instruction {
	var instructions []*Instruction
	i := offset
	for i < len(p.text) {
		switch c := p.text[i]; {
		case c == ' ' || c == '\t' || c == '\r' || c == '\n':
			i++
		case c == '#':
			for i < len(p.text) && p.text[i] != '\n' {
				i++
			}
		default:
			var ins *Instruction
			ins, i = p.parseInstruction(i)
			instructions = append(instructions, ins)
		}
	}
	return instructions
}

// continuation reports whether an escape character immediately followed by
// a line break starts at i, returning the offset just past the line break.
func (p *docParser) continuation(i int) (int, bool) {
	if i < len(p.text) && p.text[i] == p.escape {
		j := i + 1
		if j < len(p.text) && p.text[j] == '\r' {
			j++
		}
		if j < len(p.text) && p.text[j] == '\n' {
			return j + 1, true
		}
	}
	return i, false
}

// splice consumes a continuation at i together with any blank or
// comment-only lines that follow it, so that a continued instruction
// resumes at its next significant character.
func (p *docParser) splice(i int) (int, bool) {
	next, ok := p.continuation(i)
	if !ok {
		return i, false
	}
	i = next
	for {
		j := i
		for j < len(p.text) && (p.text[j] == ' ' || p.text[j] == '\t' || p.text[j] == '\r') {
			j++
		}
		if j < len(p.text) && p.text[j] == '#' {
			for j < len(p.text) && p.text[j] != '\n' {
				j++
			}
			if j < len(p.text) {
				j++
			}
			i = j
			continue
		}
		if j < len(p.text) && p.text[j] == '\n' {
			i = j + 1
			continue
		}
		return i, true
	}
}

func (p *docParser) parseInstruction(start int) (*Instruction, int) {
	var word strings.Builder
	i := start
	for i < len(p.text) {
		if next, ok := p.splice(i); ok {
			i = next
			continue
		}
		c := p.text[i]
		if c == ' ' || c == '\t' || c == '\r' || c == '\n' {
			break
		}
		word.WriteByte(c)
		i++
	}
	keywordEnd := i

	written := word.String()
	ins := &Instruction{
		Keyword:          strings.ToUpper(written),
		Written:          written,
		KeywordRange:     p.doc.RangeOf(start, keywordEnd),
		keywordEndOffset: keywordEnd,
	}

	contentEnd := keywordEnd
	for i < len(p.text) {
		if next, ok := p.splice(i); ok {
			i = next
			continue
		}
		c := p.text[i]
		if c == '\n' {
			break
		}
		if c == ' ' || c == '\t' || c == '\r' {
			i++
			continue
		}
		tokStart := i
		var tok strings.Builder
		for i < len(p.text) {
			if next, ok := p.splice(i); ok {
				i = next
				continue
			}
			c := p.text[i]
			if c == ' ' || c == '\t' || c == '\r' || c == '\n' {
				break
			}
			tok.WriteByte(c)
			i++
		}
		ins.args = append(ins.args, Argument{Value: tok.String(), Range: p.doc.RangeOf(tokStart, i)})
		contentEnd = i
	}

	ins.Range = p.doc.RangeOf(start, contentEnd)
	ins.scanEndOffset = i
	return ins, i
}
