package validator

// volumeBody checks the text after a VOLUME keyword. If the line's first
// significant character is `[` the bracketed array body is validated;
// anything else means shell form, which has no structural check here. The
// cursor is left where the outer scan resumes.
func (r *validation) volumeBody(c *cursor) {
	for c.more() {
		if c.splice() {
			continue
		}
		switch c.ch() {
		case '\n':
			return // shell form, nothing on the line
		case ' ', '\t', '\r':
			c.pos++
		case '[':
			c.pos++
			r.arrayBody(c)
			return
		default:
			// content before any bracket: shell form for this line
			r.skipToLineBreak(c)
			return
		}
	}
}

// arrayBody validates the restricted JSON-array grammar following `[`:
// double-quoted strings separated by commas, closed by `]`, confined to
// one logical line. One UNEXPECTED_TOKEN is reported per array; further
// stray characters on the same line are tolerated once flagged. A string
// adjacent to a closed string short-circuits the rest of the array, with
// the cursor left on the offending quote.
func (r *validation) arrayBody(c *cursor) {
	var (
		inString    bool
		expectComma bool
		flagged     bool
		end         bool
	)
	last := c.pos - 1 // the opening bracket

	for c.more() {
		if c.splice() {
			continue
		}
		i := c.pos
		switch ch := c.ch(); {
		case ch == '"':
			if expectComma && !flagged {
				r.addOffsets(SeverityError, CodeUnexpectedToken, i, i+1, messageUnexpectedToken)
				return
			}
			inString = !inString
			expectComma = !inString
			last = i
			c.pos++
		case ch == '\n':
			if !end && !flagged {
				r.addOffsets(SeverityError, CodeUnexpectedToken, last, last+1, messageUnexpectedToken)
			}
			return
		case inString:
			last = i
			c.pos++
		case ch == ' ' || ch == '\t' || ch == '\r':
			c.pos++
		case ch == ']':
			end = true
			last = i
			c.pos++
		case ch == ',':
			expectComma = false
			last = i
			c.pos++
		default:
			if !flagged {
				r.addOffsets(SeverityError, CodeUnexpectedToken, i, i+1, messageUnexpectedToken)
				flagged = true
			}
			last = i
			c.pos++
		}
	}

	if !flagged && (inString || !end) {
		r.addOffsets(SeverityError, CodeUnexpectedToken, last, last+1, messageUnexpectedToken)
	}
}
