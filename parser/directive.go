package parser

import (
	"strings"

	"github.com/docklint/docklint/textdocument"
)

// Escape is the name of the only recognized parser directive.
const Escape = "escape"

// Directive is a `# name=value` declaration on line 0 of the document.
// Directives anywhere else in the text are plain comments.
type Directive struct {
	// Name is the directive name as written.
	Name string
	// Value is the directive value with surrounding whitespace removed.
	Value string

	Range      textdocument.Range
	NameRange  textdocument.Range
	ValueRange textdocument.Range
}

// Directive returns the lowercased directive name used for lookups.
func (d *Directive) Directive() string {
	return strings.ToLower(d.Name)
}

// EscapeCharacter resolves the active escape character from an optional
// line-0 directive. A directive value of `\` or a backtick is honored even
// when the directive name itself is not "escape"; anything else falls back
// to `\`.
func EscapeCharacter(d *Directive) byte {
	if d != nil && (d.Value == "\\" || d.Value == "`") {
		return d.Value[0]
	}
	return '\\'
}

// parseDirective reads a directive from line 0 of text, returning nil if
// the line does not have the `# name=value` shape.
func parseDirective(doc *textdocument.TextDocument) *Directive {
	text := doc.Text()
	end := strings.IndexByte(text, '\n')
	if end == -1 {
		end = len(text)
	}
	line := text[:end]

	i := 0
	for i < len(line) && (line[i] == ' ' || line[i] == '\t') {
		i++
	}
	if i >= len(line) || line[i] != '#' {
		return nil
	}
	start := i
	i++
	for i < len(line) && (line[i] == ' ' || line[i] == '\t') {
		i++
	}
	nameStart := i
	for i < len(line) && line[i] != '=' && line[i] != ' ' && line[i] != '\t' {
		i++
	}
	nameEnd := i
	if nameEnd == nameStart {
		return nil
	}
	for i < len(line) && (line[i] == ' ' || line[i] == '\t') {
		i++
	}
	if i >= len(line) || line[i] != '=' {
		return nil
	}
	i++
	for i < len(line) && (line[i] == ' ' || line[i] == '\t') {
		i++
	}
	valueStart := i
	valueEnd := len(line)
	for valueEnd > valueStart {
		c := line[valueEnd-1]
		if c != ' ' && c != '\t' && c != '\r' {
			break
		}
		valueEnd--
	}

	return &Directive{
		Name:       line[nameStart:nameEnd],
		Value:      line[valueStart:valueEnd],
		Range:      doc.RangeOf(start, end),
		NameRange:  doc.RangeOf(nameStart, nameEnd),
		ValueRange: doc.RangeOf(valueStart, valueEnd),
	}
}
