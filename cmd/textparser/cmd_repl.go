package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"github.com/textparser-go/textparser"
	"github.com/textparser-go/textparser/ascii"
)

func newReplCmd(a *app) *cobra.Command {
	var grammar string

	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Parse lines typed in an interactive prompt",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.newParser(grammar, nil)
			if err != nil {
				return err
			}
			r := &repl{parser: p, output: cmd.OutOrStdout(), theme: a.theme, prompt: grammar + "> "}
			return r.loop()
		},
	}

	cmd.Flags().StringVarP(&grammar, "grammar", "g", "", "Grammar to use ("+grammarNames()+")")
	cmd.MarkFlagRequired("grammar")
	return cmd
}

type repl struct {
	parser *textparser.Parser
	output io.Writer
	theme  ascii.Theme
	prompt string
}

func (r *repl) loop() error {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	for {
		input, err := line.Prompt(r.prompt)
		if err == liner.ErrPromptAborted || err == io.EOF {
			fmt.Fprintln(r.output, "Exiting")
			return nil
		}
		if err != nil {
			return fmt.Errorf("prompt: %w", err)
		}
		if strings.TrimSpace(input) == "" {
			continue
		}
		line.AppendHistory(input)
		r.eval(input)
	}
}

// eval parses one line and prints either its tree or the error
func (r *repl) eval(input string) {
	tree, err := r.parser.Parse(input)
	if err != nil {
		reportError(r.output, err, r.theme)
		return
	}
	fmt.Fprintln(r.output, textparser.FormatTreeTheme(tree, r.theme))
}
