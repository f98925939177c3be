package textparser

// stream numbers `tokens` with their index as offset and closes the
// stream with an EOF token
func stream(tokens ...Token) []Token {
	out := make([]Token, 0, len(tokens)+1)
	for i, t := range tokens {
		t.Offset = i
		out = append(out, t)
	}
	return append(out, EOF(len(tokens)))
}

// tok creates a token without offset, see stream
func tok(kind, value string) Token {
	return Token{Kind: kind, Value: value}
}

// kinds creates tokens whose value is their own kind
func kinds(ks ...string) []Token {
	tokens := make([]Token, len(ks))
	for i, k := range ks {
		tokens[i] = tok(k, k)
	}
	return stream(tokens...)
}
