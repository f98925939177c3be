package textparser

// Forward is a placeholder for a pattern defined later, which allows
// recursive grammars.  It must be Set exactly once before parsing.
type Forward struct {
	pattern Pattern
}

// NewForward creates an unassigned Forward
func NewForward() *Forward {
	return &Forward{}
}

// Set assigns the pattern the Forward stands for
func (f *Forward) Set(pattern Pattern) error {
	if f.pattern != nil {
		return newConfigError("Forward already assigned to %s.", f.pattern)
	}
	if pattern == nil {
		return newConfigError("Forward can't be assigned a nil pattern.")
	}
	f.pattern = pattern
	return nil
}

// Assigned tells if Set was called
func (f *Forward) Assigned() bool { return f.pattern != nil }

func (f *Forward) Match(c *Cursor) (any, bool) {
	if f.pattern == nil {
		panic(newConfigError("Forward matched before being assigned."))
	}
	return f.pattern.Match(c)
}

func (f *Forward) children() []Pattern {
	if f.pattern == nil {
		return nil
	}
	return []Pattern{f.pattern}
}

// String doesn't descend into the pattern, grammars are often cyclic
// through forwards
func (f *Forward) String() string { return "Forward()" }
