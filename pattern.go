package textparser

import (
	"fmt"
	"strings"
)

// Pattern is a node of a grammar.  Match tries the pattern at the
// current position of the cursor and returns the parse tree of what
// it consumed and true, or false if the pattern doesn't match.
//
// A pattern that returns false may leave the cursor moved forward;
// restoring it is the job of whichever pattern checkpointed before
// calling Match.  Patterns hold no per-parse state, so the same
// grammar can be matched by many cursors at once.
type Pattern interface {
	Match(c *Cursor) (any, bool)
	String() string
}

// parent is implemented by patterns that wrap other patterns.  It's
// used to walk the grammar graph before parsing.
type parent interface {
	children() []Pattern
}

// Literal matches a single token of the given kind
type Literal string

// Lits wraps each kind within a Literal pattern
func Lits(kinds ...string) []Pattern {
	patterns := make([]Pattern, len(kinds))
	for i, kind := range kinds {
		patterns[i] = Literal(kind)
	}
	return patterns
}

func (l Literal) Match(c *Cursor) (any, bool) {
	if c.Peek().Kind != string(l) {
		return nil, false
	}
	return c.GetValue(), true
}

func (l Literal) String() string { return fmt.Sprintf("'%s'", string(l)) }

// Pattern Type: Sequence

type sequence struct {
	patterns []Pattern
}

// Sequence matches all the patterns, one after the other.  The result
// has one item per pattern.
func Sequence(patterns ...Pattern) Pattern {
	return &sequence{patterns: patterns}
}

func (p *sequence) Match(c *Cursor) (any, bool) {
	matched := make([]any, 0, len(p.patterns))
	for _, pattern := range p.patterns {
		mo, ok := pattern.Match(c)
		if !ok {
			return nil, false
		}
		matched = append(matched, mo)
	}
	return matched, true
}

func (p *sequence) children() []Pattern { return p.patterns }
func (p *sequence) String() string      { return patternsString("Sequence", p.patterns) }

// Pattern Type: Optional

type optional struct {
	pattern Pattern
}

// Optional matches `pattern` zero or one time.  It never fails: the
// result is an empty sequence when `pattern` doesn't match, or a
// sequence with its single match otherwise.
func Optional(pattern Pattern) Pattern {
	return &optional{pattern: pattern}
}

func (p *optional) Match(c *Cursor) (any, bool) {
	c.Save()
	mo, ok := p.pattern.Match(c)
	if !ok {
		c.MarkMaxRestore()
		return []any{}, true
	}
	c.Drop()
	return []any{mo}, true
}

func (p *optional) children() []Pattern { return []Pattern{p.pattern} }
func (p *optional) String() string      { return fmt.Sprintf("Optional(%s)", p.pattern) }

// Pattern Type: Any

type anyToken struct{}

// Any matches any token but the end of file
func Any() Pattern { return anyToken{} }

func (anyToken) Match(c *Cursor) (any, bool) {
	if c.Peek().Kind == KindEOF {
		return nil, false
	}
	return c.GetValue(), true
}

func (anyToken) String() string { return "Any()" }

// Pattern Type: AnyUntil

type anyUntil struct {
	pattern Pattern
}

// AnyUntil consumes tokens until `pattern` would match.  The tokens
// `pattern` matches are not consumed.  It fails if the end of file is
// reached first.
func AnyUntil(pattern Pattern) Pattern {
	return &anyUntil{pattern: pattern}
}

func (p *anyUntil) Match(c *Cursor) (any, bool) {
	matched := []any{}
	for {
		c.Save()
		_, ok := p.pattern.Match(c)
		c.MarkMaxRestore()
		if ok {
			return matched, true
		}
		if c.Peek().Kind == KindEOF {
			return nil, false
		}
		matched = append(matched, c.GetValue())
	}
}

func (p *anyUntil) children() []Pattern { return []Pattern{p.pattern} }
func (p *anyUntil) String() string      { return fmt.Sprintf("AnyUntil(%s)", p.pattern) }

// Pattern Type: NoMatch

type noMatch struct{}

// NoMatch never matches.  It marks branches of a grammar that are
// placeholders or meant to be unreachable.
func NoMatch() Pattern { return noMatch{} }

func (noMatch) Match(*Cursor) (any, bool) { return nil, false }
func (noMatch) String() string            { return "NoMatch()" }

// Pattern Type: Tag

type tag struct {
	name    string
	pattern Pattern
}

// Tag wraps the result of `pattern` into a Tagged value named `name`
func Tag(name string, pattern Pattern) Pattern {
	return &tag{name: name, pattern: pattern}
}

func (p *tag) Match(c *Cursor) (any, bool) {
	mo, ok := p.pattern.Match(c)
	if !ok {
		return nil, false
	}
	return Tagged{Name: p.name, Value: mo}, true
}

func (p *tag) children() []Pattern { return []Pattern{p.pattern} }
func (p *tag) String() string      { return fmt.Sprintf("Tag(%s, %s)", p.name, p.pattern) }

func patternsString(name string, patterns []Pattern) string {
	var s strings.Builder
	s.WriteString(name)
	s.WriteString("(")
	for i, pattern := range patterns {
		if i > 0 {
			s.WriteString(", ")
		}
		s.WriteString(pattern.String())
	}
	s.WriteString(")")
	return s.String()
}
