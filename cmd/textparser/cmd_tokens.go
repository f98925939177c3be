package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newTokensCmd(a *app) *cobra.Command {
	var grammar string

	cmd := &cobra.Command{
		Use:   "tokens <file|->",
		Short: "Print the tokens the lexer of a grammar produces",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.newParser(grammar, nil)
			if err != nil {
				return err
			}
			text, err := readInput(cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}
			tokens, err := p.Tokenize(text)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, t := range tokens {
				fmt.Fprintf(out, "%s %q @%d\n", t.Kind, t.Value, t.Offset)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&grammar, "grammar", "g", "", "Grammar to use ("+grammarNames()+")")
	cmd.MarkFlagRequired("grammar")
	return cmd
}
