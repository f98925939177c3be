package textparser

import (
	"errors"
	"fmt"
)

// ErrConfig is matched by every ConfigError through errors.Is
var ErrConfig = errors.New("grammar configuration error")

// ConfigError is returned while a grammar or a lexer is being built
// and is never produced by a parse.  It signals a programming error
// in the grammar definition, like two ChoiceDict alternatives
// starting with the same token kind or a Forward that was never set.
type ConfigError struct {
	Message string
}

func newConfigError(format string, args ...any) *ConfigError {
	return &ConfigError{Message: fmt.Sprintf(format, args...)}
}

func (e *ConfigError) Error() string { return e.Message }

// Is makes errors.Is(err, ErrConfig) hold for any ConfigError
func (e *ConfigError) Is(target error) bool { return target == ErrConfig }

// TokenizeError is returned by the lexer when no token spec matches
// at Offset, or when the catch-all mismatch spec does.
type TokenizeError struct {
	Text   string
	Offset int
}

func (e *TokenizeError) Error() string {
	return invalidSyntax(e.Text, e.Offset, DefaultMarker)
}

// GrammarError is returned when the root pattern can't match the
// whole token stream.  Offset points at the token furthest reached by
// any of the attempted alternatives.
type GrammarError struct {
	Offset int
}

func (e *GrammarError) Error() string {
	return fmt.Sprintf("Invalid syntax at offset %d.", e.Offset)
}

// ParseError is the only error type that crosses the Parser boundary
// for invalid input.  It wraps a TokenizeError, a GrammarError or the
// error of a custom Tokenizer in Err.
type ParseError struct {
	Text   string
	Offset int
	Line   int
	Column int

	// Hint is an optional suggestion, e.g. a keyword close to the
	// offending token
	Hint string

	Err    error
	marker string
}

func newParseError(text string, offset int, marker string, err error) *ParseError {
	return &ParseError{
		Text:   text,
		Offset: offset,
		Line:   Line(text, offset),
		Column: Column(text, offset),
		Err:    err,
		marker: marker,
	}
}

func (e *ParseError) Error() string {
	marker := e.marker
	if marker == "" {
		marker = DefaultMarker
	}
	msg := invalidSyntax(e.Text, e.Offset, marker)
	var (
		tokErr  *TokenizeError
		gramErr *GrammarError
	)
	if e.Err != nil && !errors.As(e.Err, &tokErr) && !errors.As(e.Err, &gramErr) {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ParseError) Unwrap() error { return e.Err }

func invalidSyntax(text string, offset int, marker string) string {
	return fmt.Sprintf(
		"Invalid syntax at line %d, column %d: \"%s\"",
		Line(text, offset),
		Column(text, offset),
		MarkupLine(text, offset, marker),
	)
}
