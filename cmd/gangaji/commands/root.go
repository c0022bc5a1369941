// Package commands provides the CLI commands for the gangaji tool.
package commands

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gangaji/mathx"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "gangaji",
	Short: "gangaji - integer arithmetic, ASCII text transforms and decimal formatting",
	Long: `gangaji exposes a small library of pure helper functions on the command line.

Commands:
  demo        Print the classic sample session
  add         Sum two integers
  multiply    Multiply two integers
  factorial   Compute n! iteratively
  reverse     Reverse a string byte-wise
  upper       Uppercase ASCII letters
  lower       Lowercase ASCII letters
  format      Render an integer in decimal
  parse       Extract a leading integer from text
  ask         Pick an operation interactively

Use "gangaji [command] --help" for more information about a command.`,
}

// Execute adds all child commands to the root command and sets flags appropriately
func Execute() error {
	// cobra's Print helpers fall back to stderr; results belong on stdout.
	RootCmd.SetOut(os.Stdout)
	return RootCmd.Execute()
}

func init() {
	RootCmd.PersistentFlags().String("overflow", "checked",
		"overflow policy for arithmetic: checked, wrap or saturate")

	// Add subcommands
	RootCmd.AddCommand(demoCmd)
	RootCmd.AddCommand(addCmd)
	RootCmd.AddCommand(multiplyCmd)
	RootCmd.AddCommand(factorialCmd)
	RootCmd.AddCommand(reverseCmd)
	RootCmd.AddCommand(upperCmd)
	RootCmd.AddCommand(lowerCmd)
	RootCmd.AddCommand(formatCmd)
	RootCmd.AddCommand(parseCmd)
	RootCmd.AddCommand(askCmd)
}

// arithmeticOptions maps the persistent --overflow flag to mathx.Options.
func arithmeticOptions(cmd *cobra.Command) (*mathx.Options, error) {
	name, err := cmd.Flags().GetString("overflow")
	if err != nil {
		return nil, fmt.Errorf("getting overflow flag: %w", err)
	}
	mode, err := mathx.ParseOverflowMode(name)
	if err != nil {
		return nil, fmt.Errorf("parsing --overflow %q: %w", name, err)
	}
	opts := mathx.NewOptions(mathx.WithOverflowMode(mode))
	return &opts, nil
}

// intArg parses a strict decimal CLI argument.
func intArg(raw string) (int64, error) {
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("argument %q is not an integer: %w", raw, err)
	}
	return n, nil
}
