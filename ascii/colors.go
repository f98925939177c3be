// Package ascii provides terminal ANSI color codes and semantic names
// for them so they can be grouped in themes.
package ascii

import "fmt"

const (
	Reset  = "\033[0m"
	Red    = "\033[1;31m"
	Yellow = "\033[1;33m"
	Green  = "\033[1;32m"
	Cyan   = "\033[1;36m"
	Gray   = "\033[90m" // Bright black, actually

	// 256-color palette
	Orange  = "\033[38;5;208m"
	Gray245 = "\033[1;38;5;245m"
	Pink    = "\033[1;38;5;127m"
)

// Theme defines semantic color mappings
type Theme struct {
	// Diagnostics
	Error   string
	Warning string
	Hint    string

	Muted  string // secondary/dimmed text
	Accent string

	// Parse tree printer
	Kind    string
	Literal string
	Offset  string
}

// DefaultTheme is used by the CLI when stdout is a terminal
var DefaultTheme = Theme{
	Error:   Red,
	Warning: Yellow,
	Hint:    Gray,

	Muted:  Gray,
	Accent: Cyan,

	Kind:    Pink,
	Literal: Green,
	Offset:  Orange,
}

// NoColor leaves every piece of text untouched
var NoColor = Theme{}

// Color wraps the formatted text in `color`.  An empty color returns
// the text without any escape sequence.
func Color(color, format string, args ...any) string {
	if color == "" {
		return fmt.Sprintf(format, args...)
	}
	return fmt.Sprintf(color+format+Reset, args...)
}
