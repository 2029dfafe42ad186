package validator

// cursor walks a slice of raw text applying escape-aware line-continuation
// splicing. The argument presence check, the structural scanner, and the
// JSON-array validator all advance through text with the same cursor so
// their continuation behavior cannot drift apart.
type cursor struct {
	text   string
	escape byte
	pos    int
	end    int
}

func newCursor(text string, escape byte, start, end int) *cursor {
	return &cursor{text: text, escape: escape, pos: start, end: end}
}

func (c *cursor) more() bool {
	return c.pos < c.end
}

func (c *cursor) ch() byte {
	return c.text[c.pos]
}

// splice consumes consecutive escape+line-break continuations at the
// current position, reporting whether any were crossed. An escape
// character not followed by a line break is left in place; it is content.
func (c *cursor) splice() bool {
	moved := false
	for c.pos < c.end && c.text[c.pos] == c.escape {
		j := c.pos + 1
		if j < c.end && c.text[j] == '\r' {
			j++
		}
		if j < c.end && c.text[j] == '\n' {
			c.pos = j + 1
			moved = true
			continue
		}
		break
	}
	return moved
}
