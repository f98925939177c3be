package main

import (
	"github.com/spf13/cobra"

	"github.com/textparser-go/textparser"
)

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the default parser settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			textparser.NewConfig().Debug(cmd.OutOrStdout())
			return nil
		},
	}
}
