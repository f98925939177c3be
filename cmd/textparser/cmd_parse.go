package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/textparser-go/textparser"
)

func newParseCmd(a *app) *cobra.Command {
	var (
		grammar   string
		format    string
		tokenTree bool
		matchSOF  bool
	)

	cmd := &cobra.Command{
		Use:   "parse <file|->",
		Short: "Parse a file and print its parse tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := textparser.NewConfig()
			cfg.SetBool("parser.token_tree", tokenTree)
			cfg.SetBool("parser.match_sof", matchSOF)

			p, err := a.newParser(grammar, cfg)
			if err != nil {
				return err
			}
			text, err := readInput(cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}
			tree, err := p.Parse(text)
			if err != nil {
				return err
			}
			return writeTree(cmd.OutOrStdout(), tree, format)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&grammar, "grammar", "g", "", "Grammar to use ("+grammarNames()+")")
	flags.StringVarP(&format, "format", "f", "tree", "Output format (tree, json or yaml)")
	flags.BoolVar(&tokenTree, "token-tree", false, "Keep whole tokens as the leaves of the tree")
	flags.BoolVar(&matchSOF, "match-sof", false, "Keep the start of file token for the grammar to match")
	cmd.MarkFlagRequired("grammar")
	return cmd
}

// readInput reads the file at `path`, or `stdin` when path is "-"
func readInput(stdin io.Reader, path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return string(data), nil
}
