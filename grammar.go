package textparser

// Grammar matches a whole token stream against a root pattern
type Grammar struct {
	root Pattern
}

// NewGrammar checks the pattern graph under `root` and wraps it in a
// Grammar.  It returns a ConfigError if any Forward reachable from
// `root` was never assigned.
func NewGrammar(root Pattern) (*Grammar, error) {
	if root == nil {
		return nil, newConfigError("Grammar needs a root pattern.")
	}
	if err := checkForwards(root, map[parent]struct{}{}); err != nil {
		return nil, err
	}
	return &Grammar{root: root}, nil
}

// MustGrammar is like NewGrammar but panics on configuration errors
func MustGrammar(root Pattern) *Grammar {
	g, err := NewGrammar(root)
	if err != nil {
		panic(err)
	}
	return g
}

// Root returns the root pattern of the grammar
func (g *Grammar) Root() Pattern { return g.root }

// Parse matches `tokens`, which must end with an EOF token, and
// returns the parse tree.  It fails unless the root pattern matches
// and consumes every token before EOF.  The GrammarError it returns
// points at the furthest token any alternative reached, which is
// usually where the input stops making sense.
//
// With `tokenTree` set, the leaves of the tree are Token values
// instead of token values.
func (g *Grammar) Parse(tokens []Token, tokenTree bool) (any, error) {
	if len(tokens) == 0 {
		return nil, &GrammarError{Offset: 0}
	}
	if last := tokens[len(tokens)-1]; last.Kind != KindEOF {
		return nil, &GrammarError{Offset: last.Offset}
	}

	c := NewCursor(tokens, tokenTree)
	parsed, ok := g.root.Match(c)
	if ok && c.Peek().Kind == KindEOF {
		return parsed, nil
	}
	return nil, &GrammarError{Offset: c.PeekMax().Offset}
}

// checkForwards walks every pattern reachable from `p` once.  Only
// package patterns implement parent, and all of them are pointers, so
// they are safe map keys.
func checkForwards(p Pattern, seen map[parent]struct{}) error {
	if f, ok := p.(*Forward); ok && !f.Assigned() {
		return newConfigError("Forward reachable from the grammar root was never assigned.")
	}
	n, ok := p.(parent)
	if !ok {
		return nil
	}
	if _, ok := seen[n]; ok {
		return nil
	}
	seen[n] = struct{}{}
	for _, child := range n.children() {
		if err := checkForwards(child, seen); err != nil {
			return err
		}
	}
	return nil
}
