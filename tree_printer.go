package textparser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/textparser-go/textparser/ascii"
)

// FormatTree renders a parse tree, as returned by Parser.Parse, one
// node per line with box drawing characters connecting children to
// their parents
func FormatTree(v any) string {
	return FormatTreeTheme(v, ascii.NoColor)
}

// FormatTreeTheme is FormatTree with the kinds, literals and offsets
// painted with the colors of `theme`
func FormatTreeTheme(v any, theme ascii.Theme) string {
	tp := newTreePrinter(theme)
	tp.visit(v)
	return tp.output.String()
}

type treePrinter struct {
	padStr []string
	output *strings.Builder
	theme  ascii.Theme
}

func newTreePrinter(theme ascii.Theme) *treePrinter {
	return &treePrinter{output: &strings.Builder{}, theme: theme}
}

func (tp *treePrinter) indent(s string) {
	tp.padStr = append(tp.padStr, s)
}

func (tp *treePrinter) unindent() {
	tp.padStr = tp.padStr[:len(tp.padStr)-1]
}

func (tp *treePrinter) padding() {
	for _, item := range tp.padStr {
		tp.write(item)
	}
}

func (tp *treePrinter) write(s string) {
	tp.output.WriteString(s)
}

func (tp *treePrinter) pwrite(s string) {
	tp.padding()
	tp.write(s)
}

// child writes the branch leading to the i-th of n children and
// leaves the padding in place for the child's own children
func (tp *treePrinter) child(i, n int, visit func()) {
	tp.write("\n")
	if i == n-1 {
		tp.pwrite("└── ")
		tp.indent("    ")
	} else {
		tp.pwrite("├── ")
		tp.indent("│   ")
	}
	visit()
	tp.unindent()
}

func (tp *treePrinter) visit(v any) {
	switch node := v.(type) {
	case []any:
		tp.write(ascii.Color(tp.theme.Kind, "Sequence<%d>", len(node)))
		for i, item := range node {
			tp.child(i, len(node), func() { tp.visit(item) })
		}

	case *Dict:
		keys := node.Keys()
		tp.write(ascii.Color(tp.theme.Kind, "Dict<%d>", len(keys)))
		for i, key := range keys {
			items, _ := node.Get(key)
			tp.child(i, len(keys), func() {
				tp.write(tp.scalar(key) + ": ")
				tp.visit(items)
			})
		}

	case Tagged:
		tp.write(ascii.Color(tp.theme.Kind, "Tag[%s]", node.Name))
		tp.child(0, 1, func() { tp.visit(node.Value) })

	default:
		tp.write(tp.scalar(v))
	}
}

func (tp *treePrinter) scalar(v any) string {
	switch value := v.(type) {
	case Token:
		return ascii.Color(tp.theme.Kind, "Token[%s]", value.Kind) + " " +
			ascii.Color(tp.theme.Literal, "%s", strconv.Quote(value.Value)) + " " +
			ascii.Color(tp.theme.Offset, "@ %d", value.Offset)
	case string:
		return ascii.Color(tp.theme.Literal, "%s", strconv.Quote(value))
	case nil:
		return ascii.Color(tp.theme.Muted, "nil")
	default:
		return ascii.Color(tp.theme.Literal, "%s", fmt.Sprint(value))
	}
}
