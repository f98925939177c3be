package textparser

import (
	"errors"
	"fmt"
	"sort"

	"github.com/agnivade/levenshtein"
	"github.com/sirupsen/logrus"
)

// Definition is what a concrete language supplies to build a Parser:
// the token specs for its lexer, its keywords and the root pattern of
// its grammar.
type Definition interface {
	// TokenSpecs returns the token specs in priority order.  The
	// last one is usually a catch-all spec of kind MISMATCH, e.g.
	// Spec("MISMATCH", `.`).
	TokenSpecs() []TokenSpec

	// Keywords returns spellings that become token kinds of their
	// own when a token has them as value.
	Keywords() []string

	// Grammar builds the root pattern.  It's called once per Parser.
	Grammar() (Pattern, error)
}

// Tokenizer can be implemented by a Definition to replace the
// regular expression based lexer.  Errors other than *TokenizeError
// are reported by the Parser at offset 0.
type Tokenizer interface {
	Tokenize(text string) ([]Token, error)
}

// BaseDefinition can be embedded in definitions that have no keywords
type BaseDefinition struct{}

func (BaseDefinition) Keywords() []string { return nil }

// Parser glues the lexer and the grammar of a Definition together and
// reports invalid input as a ParseError.  A Parser is safe for
// concurrent use.
type Parser struct {
	def       Definition
	lexer     *Lexer
	tokenizer Tokenizer
	grammar   *Grammar
	keywords  []string
	cfg       *Config
	log       logrus.FieldLogger
}

// NewParser compiles the lexer and the grammar of `def`.  Problems in
// the definition are returned as ConfigError.  The `lexer.*` settings
// of `cfg` are read here, the other ones on each Parse call.
func NewParser(def Definition, cfg *Config) (*Parser, error) {
	cfg = configOrDefault(cfg)
	keywords := append([]string(nil), def.Keywords()...)
	sort.Strings(keywords)

	p := &Parser{
		def:      def,
		keywords: keywords,
		cfg:      cfg,
		log:      logrus.StandardLogger(),
	}

	if t, ok := def.(Tokenizer); ok {
		p.tokenizer = t
	} else {
		lexer, err := NewLexer(def.TokenSpecs(), keywords, cfg)
		if err != nil {
			return nil, err
		}
		p.lexer = lexer
		p.tokenizer = lexer
	}

	root, err := def.Grammar()
	if err != nil {
		return nil, err
	}
	grammar, err := NewGrammar(root)
	if err != nil {
		return nil, err
	}
	p.grammar = grammar
	return p, nil
}

// MustParser is like NewParser but panics on configuration errors
func MustParser(def Definition, cfg *Config) *Parser {
	p, err := NewParser(def, cfg)
	if err != nil {
		panic(err)
	}
	return p
}

// WithConfig returns a parser sharing the compiled lexer and grammar
// of `p` that reads the parse settings from `cfg`
func (p *Parser) WithConfig(cfg *Config) *Parser {
	c := *p
	c.cfg = configOrDefault(cfg)
	return &c
}

// SetLogger replaces the logger, logrus' standard logger by default
func (p *Parser) SetLogger(log logrus.FieldLogger) {
	p.log = log
}

// Config returns the settings the parser reads on each Parse call
func (p *Parser) Config() *Config { return p.cfg }

// Grammar returns the compiled grammar
func (p *Parser) Grammar() *Grammar { return p.grammar }

// Tokenize splits `text` into tokens with the definition's own
// Tokenizer if it has one, or with the lexer compiled from its token
// specs otherwise
func (p *Parser) Tokenize(text string) ([]Token, error) {
	return p.tokenizer.Tokenize(text)
}

// Parse tokenizes `text` and matches the tokens against the grammar
// with the `parser.token_tree` and `parser.match_sof` settings.  Every
// failure is returned as *ParseError.
func (p *Parser) Parse(text string) (any, error) {
	return p.ParseWith(text, p.cfg.GetBool("parser.token_tree"), p.cfg.GetBool("parser.match_sof"))
}

// ParseWith is Parse with the tree shape and the start of file
// handling chosen by the caller instead of the config
func (p *Parser) ParseWith(text string, tokenTree, matchSOF bool) (any, error) {
	tokens, err := p.Tokenize(text)
	if err != nil {
		return nil, p.translate(text, nil, err)
	}
	tokens = prepareTokens(tokens, len(text), matchSOF)

	tree, err := p.grammar.Parse(tokens, tokenTree)
	if err != nil {
		return nil, p.translate(text, tokens, err)
	}
	p.log.WithField("tokens", len(tokens)).Debug("parsed input")
	return tree, nil
}

// prepareTokens makes sure the stream ends with EOF and starts with
// SOF only when the grammar is meant to match it.  `tokens` is never
// written to.
func prepareTokens(tokens []Token, length int, matchSOF bool) []Token {
	hasSOF := len(tokens) > 0 && tokens[0].Kind == KindSOF
	hasEOF := len(tokens) > 0 && tokens[len(tokens)-1].Kind == KindEOF

	if hasSOF && !matchSOF {
		tokens = tokens[1:]
	}
	injectSOF := matchSOF && !hasSOF
	if !injectSOF && hasEOF {
		return tokens
	}

	out := make([]Token, 0, len(tokens)+2)
	if injectSOF {
		out = append(out, SOF())
	}
	out = append(out, tokens...)
	if !hasEOF {
		out = append(out, EOF(length))
	}
	return out
}

func (p *Parser) translate(text string, tokens []Token, err error) error {
	var (
		offset  int
		tokErr  *TokenizeError
		gramErr *GrammarError
	)
	switch {
	case errors.As(err, &tokErr):
		offset = tokErr.Offset
	case errors.As(err, &gramErr):
		offset = gramErr.Offset
	}

	pe := newParseError(text, offset, p.cfg.GetString("errors.marker"), err)
	if gramErr != nil && p.cfg.GetBool("errors.hints") {
		pe.Hint = p.hint(tokens, offset)
	}
	p.log.WithFields(logrus.Fields{
		"offset": pe.Offset,
		"line":   pe.Line,
		"column": pe.Column,
	}).Debug("invalid syntax")
	return pe
}

// hint suggests the keyword closest to the token found at `offset`,
// if any is close enough
func (p *Parser) hint(tokens []Token, offset int) string {
	var value string
	for _, t := range tokens {
		if t.Offset == offset && t.Kind != KindEOF && t.Kind != KindSOF {
			value = t.Value
			break
		}
	}
	if value == "" {
		return ""
	}

	var (
		best     string
		bestDist = p.cfg.GetInt("errors.hint_distance") + 1
	)
	for _, kw := range p.keywords {
		if kw == value {
			return ""
		}
		d := levenshtein.ComputeDistance(value, kw)
		if d < bestDist && d < len(kw) {
			best, bestDist = kw, d
		}
	}
	if best == "" {
		return ""
	}
	return fmt.Sprintf("did you mean %q?", best)
}
