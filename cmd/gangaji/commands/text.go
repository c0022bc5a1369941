package commands

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/gangaji/textx"
)

var reverseCmd = &cobra.Command{
	Use:   "reverse <text>",
	Short: "Reverse a string byte-wise",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.Println(textx.Reverse(args[0]))
		return nil
	},
}

var upperCmd = &cobra.Command{
	Use:   "upper <text>",
	Short: "Map ASCII letters to uppercase",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.Println(textx.ToUpper(args[0]))
		return nil
	},
}

var lowerCmd = &cobra.Command{
	Use:   "lower <text>",
	Short: "Map ASCII letters to lowercase",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.Println(textx.ToLower(args[0]))
		return nil
	},
}
