package textparser

// Pattern Type: Choice

type choice struct {
	patterns []Pattern
}

// Choice tries each pattern in order and returns the result of the
// first one that matches.  Order matters: when alternatives share a
// prefix, the more specific one must come first.
//
// Each failed alternative is rolled back before the next one is
// tried, so grammars with many overlapping alternatives can take
// exponential time.  Prefer AutoChoice, which dispatches on the next
// token kind whenever the alternatives allow it.
func Choice(patterns ...Pattern) Pattern {
	return &choice{patterns: patterns}
}

func (p *choice) Match(c *Cursor) (any, bool) {
	for _, pattern := range p.patterns {
		c.Save()
		mo, ok := pattern.Match(c)
		if ok {
			c.Drop()
			return mo, true
		}
		c.MarkMaxRestore()
	}
	return nil, false
}

func (p *choice) children() []Pattern { return p.patterns }
func (p *choice) String() string      { return patternsString("Choice", p.patterns) }

// ChoiceDict is a choice that picks its alternative by looking at the
// kind of the next token, without backtracking.  The first token kind
// of every alternative must be known when the grammar is built and
// must be unique among the alternatives.
type ChoiceDict struct {
	patterns   []Pattern
	patternMap map[string]Pattern
}

// NewChoiceDict indexes `patterns` by their first token kind.  The
// first kind is found by looking into Literal, Sequence (first item),
// Tag, assigned Forward and nested ChoiceDict patterns.  Any other
// pattern, or two alternatives with the same first kind, is a
// ConfigError.
func NewChoiceDict(patterns ...Pattern) (*ChoiceDict, error) {
	d := &ChoiceDict{
		patterns:   patterns,
		patternMap: make(map[string]Pattern, len(patterns)),
	}
	for _, pattern := range patterns {
		if err := d.index(pattern, pattern); err != nil {
			return nil, err
		}
	}
	return d, nil
}

func (d *ChoiceDict) index(inner, outer Pattern) error {
	switch p := inner.(type) {
	case Literal:
		return d.add(string(p), outer)
	case *sequence:
		if len(p.patterns) == 0 {
			return newConfigError("Unsupported pattern %s in ChoiceDict.", p)
		}
		return d.index(p.patterns[0], outer)
	case *tag:
		return d.index(p.pattern, outer)
	case *Forward:
		if p.pattern == nil {
			return newConfigError("Unassigned Forward in ChoiceDict.")
		}
		return d.index(p.pattern, outer)
	case *ChoiceDict:
		for _, pattern := range p.patterns {
			if err := d.index(pattern, outer); err != nil {
				return err
			}
		}
		return nil
	default:
		return newConfigError("Unsupported pattern %s in ChoiceDict.", inner)
	}
}

func (d *ChoiceDict) add(kind string, pattern Pattern) error {
	if _, ok := d.patternMap[kind]; ok {
		return newConfigError("First token kind must be unique, but %s isn't.", kind)
	}
	d.patternMap[kind] = pattern
	return nil
}

func (d *ChoiceDict) Match(c *Cursor) (any, bool) {
	pattern, ok := d.patternMap[c.Peek().Kind]
	if !ok {
		return nil, false
	}
	return pattern.Match(c)
}

// Kinds returns how many distinct first token kinds the dict knows
func (d *ChoiceDict) Kinds() int { return len(d.patternMap) }

func (d *ChoiceDict) children() []Pattern { return d.patterns }
func (d *ChoiceDict) String() string      { return patternsString("ChoiceDict", d.patterns) }

// AutoChoice returns a ChoiceDict over `patterns` when their first
// token kinds allow it, and falls back to an ordered Choice otherwise
func AutoChoice(patterns ...Pattern) Pattern {
	if d, err := NewChoiceDict(patterns...); err == nil {
		return d
	}
	return Choice(patterns...)
}
