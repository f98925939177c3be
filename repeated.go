package textparser

import "fmt"

// Pattern Type: Repeated

type repeated struct {
	pattern Pattern
	minimum int
}

// Repeated matches `pattern` as many times as possible and fails if it
// matched fewer than `minimum` times
func Repeated(pattern Pattern, minimum int) Pattern {
	return &repeated{pattern: pattern, minimum: minimum}
}

// ZeroOrMore matches `pattern` any number of times
func ZeroOrMore(pattern Pattern) Pattern { return Repeated(pattern, 0) }

// OneOrMore matches `pattern` at least once
func OneOrMore(pattern Pattern) Pattern { return Repeated(pattern, 1) }

func (p *repeated) Match(c *Cursor) (any, bool) {
	matched := []any{}
	c.Save()
	for {
		start := c.Position()
		mo, ok := p.pattern.Match(c)
		if !ok {
			c.MarkMaxRestore()
			break
		}
		if c.Position() == start {
			// a match that consumes nothing would repeat forever, it
			// only counts towards the minimum
			for len(matched) < p.minimum {
				matched = append(matched, mo)
			}
			c.Drop()
			break
		}
		matched = append(matched, mo)
		c.Update()
	}
	if len(matched) < p.minimum {
		return nil, false
	}
	return matched, true
}

func (p *repeated) children() []Pattern { return []Pattern{p.pattern} }
func (p *repeated) String() string {
	return fmt.Sprintf("Repeated(%s, %d)", p.pattern, p.minimum)
}

// Pattern Type: RepeatedDict

// KeyFunc picks the key a RepeatedDict files a match under
type KeyFunc func(match any) any

// FirstItem is the default KeyFunc: the first item of a sequence
// match, or the match itself when it isn't a sequence
func FirstItem(match any) any {
	if items, ok := match.([]any); ok && len(items) > 0 {
		return items[0]
	}
	return match
}

type repeatedDict struct {
	pattern Pattern
	minimum int
	key     KeyFunc
}

// RepeatedDict works like Repeated but collects the matches in a
// *Dict keyed by `key`.  A nil `key` means FirstItem.
func RepeatedDict(pattern Pattern, minimum int, key KeyFunc) Pattern {
	if key == nil {
		key = FirstItem
	}
	return &repeatedDict{pattern: pattern, minimum: minimum, key: key}
}

// ZeroOrMoreDict is RepeatedDict with no minimum
func ZeroOrMoreDict(pattern Pattern, key KeyFunc) Pattern {
	return RepeatedDict(pattern, 0, key)
}

// OneOrMoreDict is RepeatedDict that requires at least one match
func OneOrMoreDict(pattern Pattern, key KeyFunc) Pattern {
	return RepeatedDict(pattern, 1, key)
}

func (p *repeatedDict) Match(c *Cursor) (any, bool) {
	matched := NewDict()
	count := 0
	c.Save()
	for {
		start := c.Position()
		mo, ok := p.pattern.Match(c)
		if !ok {
			c.MarkMaxRestore()
			break
		}
		if c.Position() == start {
			for ; count < p.minimum; count++ {
				matched.Add(p.key(mo), mo)
			}
			c.Drop()
			break
		}
		matched.Add(p.key(mo), mo)
		count++
		c.Update()
	}
	if count < p.minimum {
		return nil, false
	}
	return matched, true
}

func (p *repeatedDict) children() []Pattern { return []Pattern{p.pattern} }
func (p *repeatedDict) String() string {
	return fmt.Sprintf("RepeatedDict(%s, %d)", p.pattern, p.minimum)
}

// Pattern Type: DelimitedList

type delimitedList struct {
	pattern Pattern
	delim   Pattern
}

// DelimitedList matches one or more `pattern`s separated by `delim`,
// which defaults to a ',' literal when nil.  Delimiters are left out
// of the result.
func DelimitedList(pattern, delim Pattern) Pattern {
	if delim == nil {
		delim = Literal(",")
	}
	return &delimitedList{pattern: pattern, delim: delim}
}

func (p *delimitedList) Match(c *Cursor) (any, bool) {
	mo, ok := p.pattern.Match(c)
	if !ok {
		return nil, false
	}
	matched := []any{mo}
	c.Save()
	for {
		start := c.Position()
		if _, ok := p.delim.Match(c); !ok {
			break
		}
		mo, ok := p.pattern.Match(c)
		if !ok || c.Position() == start {
			break
		}
		matched = append(matched, mo)
		c.Update()
	}
	c.MarkMaxRestore()
	return matched, true
}

func (p *delimitedList) children() []Pattern { return []Pattern{p.pattern, p.delim} }
func (p *delimitedList) String() string {
	return fmt.Sprintf("DelimitedList(%s, %s)", p.pattern, p.delim)
}
