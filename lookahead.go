package textparser

import "fmt"

// Pattern Type: And

type and struct {
	pattern Pattern
}

// And succeeds when `pattern` matches at the current position.  It
// never consumes tokens and its result is an empty sequence.
func And(pattern Pattern) Pattern {
	return &and{pattern: pattern}
}

func (p *and) Match(c *Cursor) (any, bool) {
	c.Save()
	_, ok := p.pattern.Match(c)

	// unconditionally backtrack as the predicate never consumes any input
	c.Restore()

	if !ok {
		return nil, false
	}
	return []any{}, true
}

func (p *and) children() []Pattern { return []Pattern{p.pattern} }
func (p *and) String() string      { return fmt.Sprintf("And(%s)", p.pattern) }

// Pattern Type: Not

type not struct {
	pattern Pattern
}

// Not succeeds when `pattern` does not match at the current position.
// It never consumes tokens and its result is an empty sequence.
func Not(pattern Pattern) Pattern {
	return &not{pattern: pattern}
}

func (p *not) Match(c *Cursor) (any, bool) {
	c.Save()
	_, ok := p.pattern.Match(c)

	// unconditionally backtrack as the predicate never consumes any input
	c.Restore()

	if ok {
		return nil, false
	}
	return []any{}, true
}

func (p *not) children() []Pattern { return []Pattern{p.pattern} }
func (p *not) String() string      { return fmt.Sprintf("Not(%s)", p.pattern) }
