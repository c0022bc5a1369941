package commands

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/gangaji/mathx"
	"github.com/katalvlaran/gangaji/numfmt"
)

var addCmd = &cobra.Command{
	Use:   "add <a> <b>",
	Short: "Sum two integers under the selected overflow policy",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := arithmeticOptions(cmd)
		if err != nil {
			return err
		}
		a, err := intArg(args[0])
		if err != nil {
			return err
		}
		b, err := intArg(args[1])
		if err != nil {
			return err
		}

		sum, err := mathx.Add(a, b, opts)
		if err != nil {
			return err
		}
		cmd.Println(numfmt.FormatNumber(sum))
		return nil
	},
}

var multiplyCmd = &cobra.Command{
	Use:   "multiply <a> <b>",
	Short: "Multiply two integers under the selected overflow policy",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := arithmeticOptions(cmd)
		if err != nil {
			return err
		}
		a, err := intArg(args[0])
		if err != nil {
			return err
		}
		b, err := intArg(args[1])
		if err != nil {
			return err
		}

		prod, err := mathx.Multiply(a, b, opts)
		if err != nil {
			return err
		}
		cmd.Println(numfmt.FormatNumber(prod))
		return nil
	},
}

var factorialCmd = &cobra.Command{
	Use:   "factorial <n>",
	Short: "Compute n! iteratively (n >= 0)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := arithmeticOptions(cmd)
		if err != nil {
			return err
		}
		n, err := intArg(args[0])
		if err != nil {
			return err
		}

		f, err := mathx.Factorial(n, opts)
		if err != nil {
			return err
		}
		cmd.Println(numfmt.FormatNumber(f))
		return nil
	},
}
