package commands

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/gangaji/numfmt"
)

var formatCmd = &cobra.Command{
	Use:   "format <n>",
	Short: "Render an integer in canonical decimal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := intArg(args[0])
		if err != nil {
			return err
		}
		cmd.Println(numfmt.FormatNumber(n))
		return nil
	},
}

var parseCmd = &cobra.Command{
	Use:   "parse <text>",
	Short: "Extract a leading integer from text, ignoring trailing junk",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := numfmt.ParseNumber(args[0])
		if err != nil {
			return err
		}
		cmd.Println(numfmt.FormatNumber(n))
		return nil
	},
}
