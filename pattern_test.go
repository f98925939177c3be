package textparser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// match runs `p` over `tokens` from the first token
func match(p Pattern, tokens []Token) (any, bool, *Cursor) {
	c := NewCursor(tokens, false)
	mo, ok := p.Match(c)
	return mo, ok, c
}

func TestPatterns(t *testing.T) {
	for _, test := range []struct {
		name     string
		pattern  Pattern
		tokens   []Token
		expected any
		consumed int
	}{
		{
			name:     "Literal matches a token of its kind",
			pattern:  Literal("WORD"),
			tokens:   stream(tok("WORD", "foo")),
			expected: "foo",
			consumed: 1,
		},
		{
			name:     "Sequence returns one item per pattern",
			pattern:  Sequence(Lits("NUMBER", "WORD")...),
			tokens:   stream(tok("NUMBER", "1.45"), tok("WORD", "m")),
			expected: []any{"1.45", "m"},
			consumed: 2,
		},
		{
			name:     "Choice returns the first alternative that matches",
			pattern:  Choice(Sequence(Lits("A", "C")...), Sequence(Lits("A", "B")...), Literal("A")),
			tokens:   kinds("A", "B"),
			expected: []any{"A", "B"},
			consumed: 2,
		},
		{
			name:     "Optional matches once",
			pattern:  Optional(Literal("A")),
			tokens:   kinds("A", "A"),
			expected: []any{"A"},
			consumed: 1,
		},
		{
			name:     "ZeroOrMore matches as much as possible",
			pattern:  ZeroOrMore(Literal("A")),
			tokens:   kinds("A", "A", "B"),
			expected: []any{"A", "A"},
			consumed: 2,
		},
		{
			name:     "ZeroOrMore matches nothing",
			pattern:  ZeroOrMore(Literal("A")),
			tokens:   kinds("B"),
			expected: []any{},
			consumed: 0,
		},
		{
			name:     "Repeated drops the last partial iteration",
			pattern:  Repeated(Sequence(Lits("A", "B")...), 1),
			tokens:   kinds("A", "B", "A", "C"),
			expected: []any{[]any{"A", "B"}},
			consumed: 2,
		},
		{
			name:     "DelimitedList leaves the delimiters out",
			pattern:  DelimitedList(Literal("WORD"), nil),
			tokens:   stream(tok("WORD", "foo"), tok(",", ","), tok("WORD", "bar")),
			expected: []any{"foo", "bar"},
			consumed: 3,
		},
		{
			name:     "DelimitedList leaves a trailing delimiter alone",
			pattern:  DelimitedList(Literal("WORD"), nil),
			tokens:   stream(tok("WORD", "foo"), tok(",", ",")),
			expected: []any{"foo"},
			consumed: 1,
		},
		{
			name:     "DelimitedList takes custom delimiters",
			pattern:  DelimitedList(Literal("IDENT"), Literal(".")),
			tokens:   stream(tok("IDENT", "foo"), tok(".", "."), tok("IDENT", "Bar")),
			expected: []any{"foo", "Bar"},
			consumed: 3,
		},
		{
			name:     "Any matches a single token of any kind",
			pattern:  Any(),
			tokens:   kinds("WHATEVER"),
			expected: "WHATEVER",
			consumed: 1,
		},
		{
			name:     "AnyUntil stops right before the pattern",
			pattern:  AnyUntil(Literal(";")),
			tokens:   kinds("A", "B", ";"),
			expected: []any{"A", "B"},
			consumed: 2,
		},
		{
			name:     "AnyUntil matches nothing when the pattern is next",
			pattern:  AnyUntil(Literal(";")),
			tokens:   kinds(";"),
			expected: []any{},
			consumed: 0,
		},
		{
			name:     "Tag wraps the result",
			pattern:  Tag("name", Literal("WORD")),
			tokens:   stream(tok("WORD", "foo")),
			expected: Tagged{Name: "name", Value: "foo"},
			consumed: 1,
		},
		{
			name:     "And looks ahead without consuming",
			pattern:  And(Literal("A")),
			tokens:   kinds("A"),
			expected: []any{},
			consumed: 0,
		},
		{
			name:     "Not succeeds when the pattern doesn't match",
			pattern:  Not(Literal("A")),
			tokens:   kinds("B"),
			expected: []any{},
			consumed: 0,
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			mo, ok, c := match(test.pattern, test.tokens)
			require.True(t, ok)
			assert.Equal(t, test.expected, mo)
			assert.Equal(t, test.consumed, c.Position())
			assert.Equal(t, 0, c.Depth())
		})
	}
}

func TestPatternsMismatch(t *testing.T) {
	for _, test := range []struct {
		name    string
		pattern Pattern
		tokens  []Token
	}{
		{"Literal of another kind", Literal("WORD"), kinds("NUMBER")},
		{"Sequence missing its last item", Sequence(Lits("NUMBER", "WORD")...), kinds("NUMBER")},
		{"Choice without matching alternatives", Choice(Lits("A", "B")...), kinds("C")},
		{"OneOrMore without any match", OneOrMore(Literal("A")), kinds("B")},
		{"Repeated below its minimum", Repeated(Literal("A"), 3), kinds("A", "A", "B")},
		{"DelimitedList without a first element", DelimitedList(Literal("A"), nil), kinds(",", "A")},
		{"Any at the end of file", Any(), kinds()},
		{"AnyUntil reaching the end of file", AnyUntil(Literal(";")), kinds("A", "B")},
		{"NoMatch", NoMatch(), kinds("A")},
		{"Tag of a mismatch", Tag("name", Literal("A")), kinds("B")},
		{"And of a mismatch", And(Literal("A")), kinds("B")},
		{"Not of a match", Not(Literal("A")), kinds("A")},
		{"OneOrMoreDict without any match", OneOrMoreDict(Literal("A"), nil), kinds("B")},
	} {
		t.Run(test.name, func(t *testing.T) {
			mo, ok, _ := match(test.pattern, test.tokens)
			assert.False(t, ok)
			assert.Nil(t, mo)
		})
	}
}

func TestOptional(t *testing.T) {
	t.Run("Optional never fails and consumes nothing on mismatch", func(t *testing.T) {
		mo, ok, c := match(Optional(Sequence(Lits("A", "B")...)), kinds("A", "C"))
		require.True(t, ok)
		assert.Equal(t, []any{}, mo)
		assert.Equal(t, 0, c.Position())
		assert.Equal(t, 1, c.MaxPosition())
	})

	t.Run("Optional items keep their place in a sequence", func(t *testing.T) {
		p := Sequence(Optional(Literal("WORD")), Optional(Literal("WORD")), Optional(Literal("NUMBER")))
		mo, ok, _ := match(p, stream(tok("WORD", "a"), tok("NUMBER", "c")))
		require.True(t, ok)
		assert.Equal(t, []any{[]any{"a"}, []any{}, []any{"c"}}, mo)
	})
}

func TestLookahead(t *testing.T) {
	for _, test := range []struct {
		name    string
		pattern Pattern
		tokens  []Token
	}{
		{"And of a match", And(Sequence(Lits("A", "B")...)), kinds("A", "B")},
		{"And of a partial match", And(Sequence(Lits("A", "B")...)), kinds("A", "C")},
		{"Not of a match", Not(Sequence(Lits("A", "B")...)), kinds("A", "B")},
		{"Not of a partial match", Not(Sequence(Lits("A", "B")...)), kinds("A", "C")},
	} {
		t.Run(test.name+" leaves the cursor where it was", func(t *testing.T) {
			c := NewCursor(test.tokens, false)
			test.pattern.Match(c)
			assert.Equal(t, 0, c.Position())
			assert.Equal(t, 0, c.Depth())
		})
	}

	t.Run("Not guards an alternative", func(t *testing.T) {
		p := Sequence(Not(Literal("KEYWORD")), Any())
		_, ok, _ := match(p, kinds("KEYWORD"))
		assert.False(t, ok)

		mo, ok, _ := match(p, kinds("IDENT"))
		require.True(t, ok)
		assert.Equal(t, []any{[]any{}, "IDENT"}, mo)
	})
}

func TestRepeatedDict(t *testing.T) {
	t.Run("groups matches under their first item", func(t *testing.T) {
		p := ZeroOrMoreDict(Sequence(Literal("KEY"), Literal("=")), nil)
		tokens := stream(
			tok("KEY", "a"), tok("=", "1"),
			tok("KEY", "b"), tok("=", "2"),
			tok("KEY", "a"), tok("=", "3"),
		)
		mo, ok, _ := match(p, tokens)
		require.True(t, ok)

		d, ok := mo.(*Dict)
		require.True(t, ok)
		assert.Equal(t, []any{"a", "b"}, d.Keys())

		items, ok := d.Get("a")
		require.True(t, ok)
		assert.Equal(t, []any{[]any{"a", "1"}, []any{"a", "3"}}, items)

		items, ok = d.Get("b")
		require.True(t, ok)
		assert.Equal(t, []any{[]any{"b", "2"}}, items)
	})

	t.Run("uses a custom key", func(t *testing.T) {
		p := OneOrMoreDict(Sequence(Literal("KEY"), Literal("=")), func(mo any) any {
			return mo.([]any)[1]
		})
		mo, ok, _ := match(p, stream(tok("KEY", "a"), tok("=", "1")))
		require.True(t, ok)
		assert.Equal(t, []any{"1"}, mo.(*Dict).Keys())
	})

	t.Run("scalar matches are their own key", func(t *testing.T) {
		mo, ok, _ := match(ZeroOrMoreDict(Literal("A"), nil), kinds("A", "A"))
		require.True(t, ok)
		items, _ := mo.(*Dict).Get("A")
		assert.Equal(t, []any{"A", "A"}, items)
	})
}

func TestRepeatedEmptyMatches(t *testing.T) {
	for _, test := range []struct {
		name     string
		pattern  Pattern
		expected any
	}{
		{"ZeroOrMore of Optional stops", ZeroOrMore(Optional(Literal("A"))), []any{}},
		{"ZeroOrMore of And stops", ZeroOrMore(And(Literal("B"))), []any{}},
		{"ZeroOrMore of ZeroOrMore stops", ZeroOrMore(ZeroOrMore(Literal("A"))), []any{}},
		{"OneOrMore of Optional fills the minimum", OneOrMore(Optional(Literal("A"))), []any{[]any{}}},
		{"Repeated of Optional fills the minimum", Repeated(Optional(Literal("A")), 2), []any{[]any{}, []any{}}},
	} {
		t.Run(test.name, func(t *testing.T) {
			c := NewCursor(kinds("B"), false)
			mo, ok := test.pattern.Match(c)
			require.True(t, ok)
			assert.Equal(t, test.expected, mo)
			assert.Equal(t, 0, c.Position())
			assert.Equal(t, 0, c.Depth())
		})
	}

	t.Run("items before the empty match are kept", func(t *testing.T) {
		mo, ok, c := match(ZeroOrMore(Optional(Literal("A"))), kinds("A", "A", "B"))
		require.True(t, ok)
		assert.Equal(t, []any{[]any{"A"}, []any{"A"}}, mo)
		assert.Equal(t, 2, c.Position())
	})

	t.Run("RepeatedDict stops too", func(t *testing.T) {
		mo, ok, c := match(OneOrMoreDict(Optional(Literal("A")), nil), kinds("A", "B"))
		require.True(t, ok)
		assert.Equal(t, []any{"A"}, mo.(*Dict).Keys())
		assert.Equal(t, 1, c.Position())
		assert.Equal(t, 0, c.Depth())
	})

	t.Run("DelimitedList stops when nothing is consumed", func(t *testing.T) {
		p := DelimitedList(Optional(Literal("A")), Optional(Literal(",")))
		mo, ok, c := match(p, kinds("A", "B"))
		require.True(t, ok)
		assert.Equal(t, []any{[]any{"A"}}, mo)
		assert.Equal(t, 1, c.Position())
	})

	t.Run("a grammar around it parses", func(t *testing.T) {
		g := MustGrammar(Sequence(ZeroOrMore(Optional(Literal("A"))), Literal("B")))
		tree, err := g.Parse(kinds("B"), false)
		require.NoError(t, err)
		assert.Equal(t, []any{[]any{}, "B"}, tree)
	})
}

func TestDictKeys(t *testing.T) {
	t.Run("nested sequences are grouped by their first item", func(t *testing.T) {
		p := ZeroOrMoreDict(Sequence(Sequence(Lits("A", "B")...), Literal("C")), nil)
		mo, ok, _ := match(p, kinds("A", "B", "C", "A", "B", "C"))
		require.True(t, ok)

		d := mo.(*Dict)
		assert.Equal(t, []any{[]any{"A", "B"}}, d.Keys())
		items, ok := d.Get([]any{"A", "B"})
		require.True(t, ok)
		assert.Len(t, items, 2)
	})

	t.Run("tags holding slices can be keys", func(t *testing.T) {
		p := ZeroOrMoreDict(Sequence(Tag("pair", Sequence(Lits("A", "B")...)), Literal("C")), nil)
		mo, ok, _ := match(p, kinds("A", "B", "C"))
		require.True(t, ok)

		key := Tagged{Name: "pair", Value: []any{"A", "B"}}
		items, ok := mo.(*Dict).Get(key)
		require.True(t, ok)
		assert.Equal(t, []any{[]any{key, "C"}}, items)
	})

	t.Run("printed keys don't clash with string keys", func(t *testing.T) {
		d := NewDict()
		d.Add([]any{"A"}, 1)
		d.Add(`[]interface {}{"A"}`, 2)
		assert.Equal(t, 2, d.Len())
	})
}

func TestPatternString(t *testing.T) {
	p := Sequence(Literal("A"), Optional(Choice(Lits("B", "C")...)), ZeroOrMore(Tag("t", Any())))
	assert.Equal(t, "Sequence('A', Optional(Choice('B', 'C')), Repeated(Tag(t, Any()), 0))", p.String())
}
