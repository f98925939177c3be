package textparser

// Cursor keeps the state of a single parse over a sequence of
// tokens: the current position, the furthest position any attempt
// reached, and a stack of checkpoints used for backtracking.
//
// The token sequence must end with a KindEOF token.  Patterns never
// consume the EOF token, so the position never runs past it.
type Cursor struct {
	tokens    []Token
	pos       int
	maxPos    int
	stack     []int
	tokenTree bool
}

// NewCursor creates a cursor over `tokens`.  When `tokenTree` is set,
// GetValue returns the whole Token instead of just its value.
func NewCursor(tokens []Token, tokenTree bool) *Cursor {
	return &Cursor{
		tokens:    tokens,
		maxPos:    -1,
		stack:     make([]int, 0, 32),
		tokenTree: tokenTree,
	}
}

// GetValue consumes the token under the cursor and returns either its
// value or the token itself, depending on the cursor mode.  The
// caller must have checked that a token is available with Peek.
func (c *Cursor) GetValue() any {
	t := c.tokens[c.pos]
	c.pos++
	if c.tokenTree {
		return t
	}
	return t.Value
}

// Peek returns the token under the cursor without consuming it
func (c *Cursor) Peek() Token {
	return c.tokens[c.pos]
}

// PeekMax returns the token at the furthest position reached by any
// attempt so far, or the current token if no attempt went further.
// It's meant for error reporting after a failed parse.
func (c *Cursor) PeekMax() Token {
	pos := c.pos
	if c.maxPos > pos {
		pos = c.maxPos
	}
	return c.tokens[pos]
}

// Save pushes the current position onto the checkpoint stack
func (c *Cursor) Save() {
	c.stack = append(c.stack, c.pos)
}

// Restore pops the top checkpoint and moves the cursor back to it
func (c *Cursor) Restore() {
	c.pos = c.pop()
}

// Drop pops the top checkpoint keeping the current position
func (c *Cursor) Drop() {
	c.pop()
}

// Update overwrites the top checkpoint with the current position
func (c *Cursor) Update() {
	c.stack[len(c.stack)-1] = c.pos
}

// MarkMaxRestore records the current position as the furthest one
// reached if it is, then pops the top checkpoint and moves back to it
func (c *Cursor) MarkMaxRestore() {
	c.markMax()
	c.pos = c.pop()
}

// MarkMaxLoad records the current position as the furthest one
// reached if it is, then moves back to the top checkpoint without
// popping it
func (c *Cursor) MarkMaxLoad() {
	c.markMax()
	c.pos = c.stack[len(c.stack)-1]
}

// Position returns the index of the token under the cursor
func (c *Cursor) Position() int { return c.pos }

// MaxPosition returns the furthest token index recorded, or -1
func (c *Cursor) MaxPosition() int { return c.maxPos }

// Depth returns how many checkpoints are currently saved
func (c *Cursor) Depth() int { return len(c.stack) }

func (c *Cursor) markMax() {
	if c.pos > c.maxPos {
		c.maxPos = c.pos
	}
}

func (c *Cursor) pop() int {
	idx := len(c.stack) - 1
	top := c.stack[idx]
	c.stack = c.stack[:idx]
	return top
}
