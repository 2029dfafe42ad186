package validator

import (
	"strings"
)

// scanState enumerates the structural scanner's states. The JSON-array
// machine in jsonarray.go continues the set.
type scanState int

const (
	stateScanningLine scanState = iota
	stateInComment
	stateInWord
)

// scan is the structural pass: an independent walk over the raw text from
// the resolved body offset, checking instruction boundaries the document
// model cannot see. Continuations are spliced while accumulating a word,
// so a continuation never breaks a keyword.
//
// The first word that is not in the keyword whitelist stops the scan
// entirely; only diagnostics accumulated so far are kept. This single-shot
// bail-out is intentional.
func (r *validation) scan(offset int) {
	c := newCursor(r.text, r.escape, offset, len(r.text))
	state := stateScanningLine
	var word strings.Builder

	for {
		switch state {
		case stateScanningLine:
			if !c.more() {
				return
			}
			switch c.ch() {
			case ' ', '\t', '\r', '\n':
				c.pos++
			case '#':
				state = stateInComment
			default:
				word.Reset()
				state = stateInWord
			}

		case stateInComment:
			for c.more() && c.ch() != '\n' {
				c.pos++
			}
			if !c.more() {
				return
			}
			state = stateScanningLine

		case stateInWord:
			for c.more() {
				if c.splice() {
					continue
				}
				ch := c.ch()
				if ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n' {
					break
				}
				word.WriteByte(ch)
				c.pos++
			}
			keyword := strings.ToUpper(word.String())
			if !r.keywords[keyword] {
				return
			}
			if handlers[keyword].volume {
				r.volumeBody(c)
			} else {
				r.skipToLineBreak(c)
			}
			state = stateScanningLine
		}
	}
}

// skipToLineBreak advances to the next real line break, splicing
// continuations, and leaves the cursor on it. At end of text the cursor is
// exhausted and the outer loop terminates.
func (r *validation) skipToLineBreak(c *cursor) {
	for c.more() {
		if c.splice() {
			continue
		}
		if c.ch() == '\n' {
			return
		}
		c.pos++
	}
}
