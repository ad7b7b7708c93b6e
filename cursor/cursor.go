/*
Package cursor implements a sequential reader over the text of a grammar rule.

A Cursor hands out runes one at a time and supports exactly one rune of
pushback: a client may read a rune, inspect it and then step back with Undo.
No further lookahead is offered.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package cursor

// EOF is returned by Read as soon as the cursor has consumed all of its input.
const EOF rune = -1

// Cursor reads runes from a rule text.
type Cursor struct {
	text []rune // the input, decoded once
	pos  int    // index of the next rune to read
}

// New creates a cursor positioned at the start of text.
func New(text string) *Cursor {
	return &Cursor{text: []rune(text)}
}

// Read returns the next rune and advances the cursor. At the end of the input
// Read returns EOF and does not advance.
func (c *Cursor) Read() rune {
	if c.pos >= len(c.text) {
		return EOF
	}
	r := c.text[c.pos]
	c.pos++
	return r
}

// Undo steps back one position. Undo at the start of the input is a no-op.
//
// Clients must not call Undo after Read returned EOF, as Read did not advance
// in that case.
func (c *Cursor) Undo() {
	if c.pos > 0 {
		c.pos--
	}
}

// Finished is true once every rune of the input has been read.
func (c *Cursor) Finished() bool {
	return c.pos >= len(c.text)
}

// Pos returns the index (in runes) of the next rune to be read.
func (c *Cursor) Pos() int {
	return c.pos
}
