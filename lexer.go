package textparser

import (
	"fmt"
	"regexp"
	"strings"
)

// TokenSpec describes one kind of token.  Regexp is a Go regular
// expression and Name, when set, replaces Kind in the tokens emitted,
// so a grammar can refer to the token by its spelling, e.g. '('
// instead of LPAREN.
type TokenSpec struct {
	Kind   string
	Name   string
	Regexp string
}

// Spec creates a TokenSpec without a display name
func Spec(kind, re string) TokenSpec {
	return TokenSpec{Kind: kind, Regexp: re}
}

// NamedSpec creates a TokenSpec whose tokens are emitted as `name`
func NamedSpec(kind, name, re string) TokenSpec {
	return TokenSpec{Kind: kind, Name: name, Regexp: re}
}

var groupNameRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// CreateTokenRe joins the specs in a single alternation of named
// groups, in the order they are given
func CreateTokenRe(specs []TokenSpec) (string, error) {
	groups := make([]string, len(specs))
	for i, spec := range specs {
		if !groupNameRe.MatchString(spec.Kind) {
			return "", newConfigError("Token kind %q is not a valid group name.", spec.Kind)
		}
		groups[i] = fmt.Sprintf("(?P<%s>%s)", spec.Kind, spec.Regexp)
	}
	return strings.Join(groups, "|"), nil
}

// Lexer splits text into tokens with a single regular expression
// made of all token specs.  Specs listed first take priority.  A
// Lexer is immutable and safe for concurrent use.
type Lexer struct {
	re       *regexp.Regexp
	specs    []TokenSpec
	groups   []int
	keywords map[string]struct{}
	names    map[string]string

	skipKind     string
	mismatchKind string
}

// NewLexer compiles `specs`.  Tokens whose value is one of `keywords`
// get the value as their kind.  The settings `lexer.skip_kind` and
// `lexer.mismatch_kind` of `cfg` name the specs whose matches are
// dropped and the catch-all spec whose matches are errors.
func NewLexer(specs []TokenSpec, keywords []string, cfg *Config) (*Lexer, error) {
	cfg = configOrDefault(cfg)
	if len(specs) == 0 {
		return nil, newConfigError("Lexer needs at least one token spec.")
	}
	expr, err := CreateTokenRe(specs)
	if err != nil {
		return nil, err
	}
	re, err := regexp.Compile("(?s)" + expr)
	if err != nil {
		return nil, newConfigError("Invalid token specs: %s", err)
	}

	// Each spec is wrapped in its own group, and may have groups of
	// its own that shift the index of the next spec's group.
	groups := make([]int, len(specs))
	next := 1
	for i, spec := range specs {
		sub, err := regexp.Compile(spec.Regexp)
		if err != nil {
			return nil, newConfigError("Invalid regexp for token kind %s: %s", spec.Kind, err)
		}
		if sub.MatchString("") {
			return nil, newConfigError("Regexp for token kind %s matches the empty string.", spec.Kind)
		}
		groups[i] = next
		next += 1 + sub.NumSubexp()
	}

	names := map[string]string{}
	for _, spec := range specs {
		if spec.Name != "" {
			names[spec.Kind] = spec.Name
		}
	}

	kw := make(map[string]struct{}, len(keywords))
	for _, k := range keywords {
		kw[k] = struct{}{}
	}

	return &Lexer{
		re:           re,
		specs:        specs,
		groups:       groups,
		keywords:     kw,
		names:        names,
		skipKind:     cfg.GetString("lexer.skip_kind"),
		mismatchKind: cfg.GetString("lexer.mismatch_kind"),
	}, nil
}

// Tokenize returns the tokens of `text`, starting with a SOF token
// and ending with an EOF token.  The first character no spec matches,
// or that the mismatch spec matches, makes it fail with a
// TokenizeError.
func (l *Lexer) Tokenize(text string) ([]Token, error) {
	tokens := []Token{SOF()}
	pos := 0
	for _, loc := range l.re.FindAllStringSubmatchIndex(text, -1) {
		start, end := loc[0], loc[1]
		// only context dependent regexps like `\b` get here, and the
		// gap they leave is reported below
		if end == start {
			continue
		}
		if start != pos {
			return nil, &TokenizeError{Text: text, Offset: pos}
		}
		pos = end

		spec := l.matchedSpec(loc)
		switch spec.Kind {
		case l.skipKind:
			continue
		case l.mismatchKind:
			return nil, &TokenizeError{Text: text, Offset: start}
		}

		value := text[start:end]
		kind := spec.Kind
		if _, ok := l.keywords[value]; ok {
			kind = value
		}
		if name, ok := l.names[kind]; ok {
			kind = name
		}
		tokens = append(tokens, NewToken(kind, value, start))
	}
	if pos != len(text) {
		return nil, &TokenizeError{Text: text, Offset: pos}
	}
	return append(tokens, EOF(len(text))), nil
}

func (l *Lexer) matchedSpec(loc []int) TokenSpec {
	for i, group := range l.groups {
		if loc[2*group] >= 0 {
			return l.specs[i]
		}
	}
	// the whole expression is an alternation of the spec groups
	panic("lexer matched no token spec")
}
