package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/textparser-go/textparser"
	"github.com/textparser-go/textparser/ascii"
	"github.com/textparser-go/textparser/examples/hello"
	jsonexample "github.com/textparser-go/textparser/examples/json"
	"github.com/textparser-go/textparser/examples/proto3"
)

type parserFactory func(cfg *textparser.Config) (*textparser.Parser, error)

var grammars = map[string]parserFactory{
	"hello":  hello.NewParser,
	"json":   jsonexample.NewParser,
	"proto3": proto3.NewParser,
}

func grammarNames() string {
	names := make([]string, 0, len(grammars))
	for name := range grammars {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}

// app holds what the root command sets up for its subcommands
type app struct {
	log   *logrus.Logger
	theme ascii.Theme

	logLevel  string
	logFormat string
	color     bool
}

func newApp() *app {
	return &app{log: logrus.New(), theme: ascii.NoColor}
}

func (a *app) setup(stderr io.Writer) error {
	level, err := logrus.ParseLevel(a.logLevel)
	if err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	a.log.SetLevel(level)
	a.log.SetOutput(stderr)

	switch a.logFormat {
	case "text":
		a.log.SetFormatter(&logrus.TextFormatter{})
	case "json":
		a.log.SetFormatter(&logrus.JSONFormatter{})
	default:
		return fmt.Errorf("unknown log format: %s", a.logFormat)
	}

	if a.color {
		a.theme = ascii.DefaultTheme
	}
	return nil
}

// newParser builds the parser of the grammar called `name`, logging
// through the app logger
func (a *app) newParser(name string, cfg *textparser.Config) (*textparser.Parser, error) {
	factory, ok := grammars[name]
	if !ok {
		return nil, fmt.Errorf("unknown grammar %q, pick one of: %s", name, grammarNames())
	}
	p, err := factory(cfg)
	if err != nil {
		return nil, fmt.Errorf("build %s parser: %w", name, err)
	}
	p.SetLogger(a.log)
	return p, nil
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "textparser",
		Short:         "Tokenize and parse text with the bundled grammars",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd.ErrOrStderr())
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.logLevel, "log-level", "warning", "Log level (debug, info, warning, error)")
	flags.StringVar(&a.logFormat, "log-format", "text", "Log format (text or json)")
	flags.BoolVar(&a.color, "color", true, "Paint error markers with ANSI colors")

	rootCmd.AddCommand(newTokensCmd(a))
	rootCmd.AddCommand(newParseCmd(a))
	rootCmd.AddCommand(newReplCmd(a))
	rootCmd.AddCommand(newConfigCmd())
	return rootCmd
}

// reportError writes `err` to `w`.  Parse errors show the offending
// line with the marker and the hint, if any.
func reportError(w io.Writer, err error, theme ascii.Theme) {
	var pe *textparser.ParseError
	if !errors.As(err, &pe) {
		fmt.Fprintln(w, ascii.Color(theme.Error, "error:"), err)
		return
	}
	fmt.Fprintf(w, "%s line %d, column %d\n", ascii.Color(theme.Error, "Invalid syntax at"), pe.Line, pe.Column)
	fmt.Fprintf(w, "  %s\n", textparser.Highlight(pe.Text, pe.Offset, theme))
	if pe.Hint != "" {
		fmt.Fprintf(w, "  %s\n", ascii.Color(theme.Hint, "hint: %s", pe.Hint))
	}
}

func main() {
	a := newApp()
	rootCmd := newRootCmd(a)
	if err := rootCmd.Execute(); err != nil {
		reportError(os.Stderr, err, a.theme)
		os.Exit(1)
	}
}
