package textparser

import "fmt"

// Kinds of the sentinel tokens that delimit a token stream
const (
	KindSOF = "__SOF__"
	KindEOF = "__EOF__"
)

// Token is a single lexeme produced by a Lexer.  Tokens are values
// and are never mutated after the lexer emits them.
type Token struct {
	Kind   string
	Value  string
	Offset int
}

// NewToken creates a token of `kind` holding `value` found at byte
// `offset` of the input text
func NewToken(kind, value string, offset int) Token {
	return Token{Kind: kind, Value: value, Offset: offset}
}

// EOF returns the end of file sentinel for an input of `length` bytes
func EOF(length int) Token {
	return Token{Kind: KindEOF, Offset: length}
}

// SOF returns the start of file sentinel
func SOF() Token {
	return Token{Kind: KindSOF}
}

func (t Token) String() string {
	return fmt.Sprintf("Token(%s, %q) @ %d", t.Kind, t.Value, t.Offset)
}
